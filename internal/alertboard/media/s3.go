package media

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/infofatec/alertboard/internal/config"
)

// s3API is the subset of the S3 client the adapter needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store uploads alert images to a single bucket under a fixed folder and
// serves them through a public base URL (CDN or bucket endpoint).
type S3Store struct {
	client  s3API
	bucket  string
	folder  string
	baseURL string
}

func NewS3Store(ctx context.Context, cfg *config.MediaConfig) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Store{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		folder:  strings.Trim(cfg.Folder, "/"),
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, data []byte, contentType string) (*Asset, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	key := fmt.Sprintf("%s/%s%s", s.folder, uuid.NewString(), extensionFor(contentType))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &Asset{URL: fmt.Sprintf("%s/%s", s.baseURL, key), Key: key}, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// extensionFor picks a file extension for the object key from the uploaded
// part's content type. jpeg is special-cased so we never get ".jpe".
func extensionFor(contentType string) string {
	contentType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "":
		return ""
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		return "." + parts[1]
	}
	return ""
}
