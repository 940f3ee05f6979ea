// internal/storage/s3.go
package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/config"
)

// Uploader stores requisition attachments in an S3 bucket. Object keys
// are prefixed with the organization id so bucket listings stay
// partitioned per tenant.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
}

// ObjectStore is the surface handlers depend on.
type ObjectStore interface {
	Upload(ctx context.Context, orgID, requisitionID uuid.UUID, filename, contentType string, body io.Reader) (key, url string, err error)
	Delete(ctx context.Context, key string) error
}

func NewUploader(cfg *config.Config) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, "")))
	}

	sdkConfig, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		client: client,
		bucket: cfg.S3.Bucket,
		region: cfg.S3.Region,
	}, nil
}

// Upload writes the attachment and returns its object key and URL. The
// key embeds a fresh UUID so a re-uploaded filename never collides.
func (u *Uploader) Upload(ctx context.Context, orgID, requisitionID uuid.UUID, filename, contentType string, body io.Reader) (string, string, error) {
	key := path.Join(orgID.String(), requisitionID.String(), uuid.New().String()+path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload attachment: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	return key, url, nil
}

// Delete removes an attachment object.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
