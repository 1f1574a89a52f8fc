package cloud

import (
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

func TestAlertNotification(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	subject, message := alertNotification(domain.Alert{
		ID:        7,
		DeviceID:  3,
		Severity:  domain.SeverityHigh,
		Message:   "High temperature detected: 30.00°C exceeds limit 28.00°C",
		Timestamp: ts,
	})

	assert.Equal(t, "Smart Climate Alert (HIGH): device 3", subject)
	assert.Contains(t, message, "Device: 3")
	assert.Contains(t, message, "exceeds limit 28.00°C")
	assert.Contains(t, message, "2026-03-01T12:00:00Z")
}

func TestArchiveKey(t *testing.T) {
	key := archiveKey(time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(key, "audit-logs/2026/10/19/"))
	assert.True(t, strings.HasSuffix(key, ".json"))
}

func TestDeviceStateItem(t *testing.T) {
	temp := 23.4
	item, err := attributevalue.MarshalMap(toDeviceState(domain.Measurement{
		ID:          12,
		DeviceID:    3,
		Temperature: &temp,
		Timestamp:   time.UnixMilli(1760000000123),
	}))
	require.NoError(t, err)

	assert.Equal(t, &types.AttributeValueMemberN{Value: "3"}, item["deviceId"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "12"}, item["measurementId"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "1760000000123"}, item["timestamp"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "23.4"}, item["temperature"])
	assert.NotContains(t, item, "humidity")
	assert.NotContains(t, item, "powerUsage")
}
