package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/utils"
)

// objectPutter is the slice of the S3 client the store needs
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads post media to an S3-compatible bucket
type S3Store struct {
	client objectPutter
	cfg    *models.S3Config
}

// NewS3Store creates an S3-backed media store from static credentials. A
// non-empty BaseEndpoint points the client at a MinIO-compatible server.
func NewS3Store(ctx context.Context, cfg *models.S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
	})

	return &S3Store{client: client, cfg: cfg}, nil
}

// Upload stores the file under a collision-free key and returns its public
// URL.
func (s *S3Store) Upload(ctx context.Context, file *models.FileUpload) (string, error) {
	key := utils.ObjectKeyFromFileName(file.Name)

	timeout := time.Duration(s.cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	putCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := s.client.PutObject(putCtx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.objectURL(key), nil
}

// objectURL builds the public URL of a stored object
func (s *S3Store) objectURL(key string) string {
	if s.cfg.BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.cfg.BaseEndpoint, s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
