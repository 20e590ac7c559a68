// internal/services/storage_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/javajoker/subscription-index/internal/config"
)

var (
	ErrStorageNotConfigured = errors.New("object storage is not configured")
	ErrObjectNotFound       = errors.New("object not found")
)

// StorageService reads catalog objects from S3 or an S3 compatible store.
type StorageService struct {
	s3Client s3iface.S3API
	bucket   string
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.S3Bucket == "" {
		// Return service without S3 for local development
		return &StorageService{}, nil
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		)
	}
	if cfg.AWS.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWS.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	// Create AWS session
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageServiceWithClient(s3.New(sess), cfg.AWS.S3Bucket), nil
}

func NewStorageServiceWithClient(client s3iface.S3API, bucket string) *StorageService {
	return &StorageService{
		s3Client: client,
		bucket:   bucket,
	}
}

// GetObject downloads key from the configured bucket.
func (s *StorageService) GetObject(ctx context.Context, key string) ([]byte, error) {
	if s.s3Client == nil {
		return nil, ErrStorageNotConfigured
	}

	out, err := s.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && (aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == s3.ErrCodeNoSuchBucket) {
			return nil, fmt.Errorf("%w: s3://%s/%s", ErrObjectNotFound, s.bucket, key)
		}
		return nil, fmt.Errorf("failed to download from S3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object: %w", err)
	}
	return data, nil
}
