package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

// S3Client archives audit logs to an S3 bucket.
type S3Client struct {
	svc    *s3.Client
	bucket string
}

func NewS3Client(ctx context.Context, region, bucket string) (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &S3Client{
		svc:    s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// ArchiveAuditLogs uploads logs as one JSON object and returns its key and a
// presigned download URL valid for an hour.
func (c *S3Client) ArchiveAuditLogs(ctx context.Context, logs []domain.AuditLog) (string, string, error) {
	data, err := json.Marshal(logs)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal audit logs: %w", err)
	}

	key := archiveKey(time.Now().UTC())
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
			"entries":     fmt.Sprintf("%d", len(logs)),
		},
	}

	if _, err := c.svc.PutObject(ctx, input); err != nil {
		return "", "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	presignClient := s3.NewPresignClient(c.svc)
	presignResult, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = 1 * time.Hour
	})
	if err != nil {
		return key, "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return key, presignResult.URL, nil
}

func archiveKey(now time.Time) string {
	return fmt.Sprintf("audit-logs/%s/%s.json", now.Format("2006/01/02"), uuid.NewString())
}
