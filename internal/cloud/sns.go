package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

// SNSClient publishes generated alerts to an SNS topic.
type SNSClient struct {
	svc      *sns.Client
	topicArn string
}

// NewSNSClient loads AWS credentials from the environment/shared config.
func NewSNSClient(ctx context.Context, region, topicArn string) (*SNSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &SNSClient{
		svc:      sns.NewFromConfig(cfg),
		topicArn: topicArn,
	}, nil
}

// NotifyAlert publishes a notification for a device alert.
func (c *SNSClient) NotifyAlert(ctx context.Context, alert domain.Alert) error {
	subject, message := alertNotification(alert)
	input := &sns.PublishInput{
		TopicArn: aws.String(c.topicArn),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	result, err := c.svc.Publish(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to publish to SNS: %w", err)
	}

	log.Debug().Str("message_id", aws.ToString(result.MessageId)).Int64("alert_id", alert.ID).Msg("alert published")
	return nil
}

func alertNotification(alert domain.Alert) (subject, message string) {
	subject = fmt.Sprintf("Smart Climate Alert (%s): device %d", alert.Severity, alert.DeviceID)
	message = fmt.Sprintf(
		"Smart Climate Alert\n\n"+
			"Device: %d\n"+
			"Severity: %s\n"+
			"Message: %s\n"+
			"Time: %s\n",
		alert.DeviceID,
		alert.Severity,
		alert.Message,
		alert.Timestamp.UTC().Format(time.RFC3339),
	)
	return subject, message
}
