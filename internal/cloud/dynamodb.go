package cloud

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

// DynamoDBClient keeps the latest reading of every device in one table,
// keyed by deviceId.
type DynamoDBClient struct {
	svc   *dynamodb.Client
	table string
}

func NewDynamoDBClient(ctx context.Context, region, table string) (*DynamoDBClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &DynamoDBClient{
		svc:   dynamodb.NewFromConfig(cfg),
		table: table,
	}, nil
}

type deviceState struct {
	DeviceID      int64    `dynamodbav:"deviceId"`
	MeasurementID int64    `dynamodbav:"measurementId"`
	Timestamp     int64    `dynamodbav:"timestamp"`
	Temperature   *float64 `dynamodbav:"temperature,omitempty"`
	Humidity      *float64 `dynamodbav:"humidity,omitempty"`
	CO2Level      *float64 `dynamodbav:"co2Level,omitempty"`
	PowerUsage    *float64 `dynamodbav:"powerUsage,omitempty"`
}

func toDeviceState(m domain.Measurement) deviceState {
	return deviceState{
		DeviceID:      m.DeviceID,
		MeasurementID: m.ID,
		Timestamp:     m.Timestamp.UnixMilli(),
		Temperature:   m.Temperature,
		Humidity:      m.Humidity,
		CO2Level:      m.CO2Level,
		PowerUsage:    m.PowerUsage,
	}
}

// MirrorMeasurement overwrites the device's item unless the stored item is
// newer than m.
func (c *DynamoDBClient) MirrorMeasurement(ctx context.Context, m domain.Measurement) error {
	item, err := attributevalue.MarshalMap(toDeviceState(m))
	if err != nil {
		return fmt.Errorf("failed to marshal device state: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(c.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(deviceId) OR #ts <= :ts"),
		ExpressionAttributeNames: map[string]string{
			"#ts": "timestamp",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ts": item["timestamp"],
		},
	}

	_, err = c.svc.PutItem(ctx, input)
	var stale *types.ConditionalCheckFailedException
	if errors.As(err, &stale) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to put item in DynamoDB: %w", err)
	}
	return nil
}
