package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	appifaces "github.com/ai-solution/site-backend/internal/application/interfaces"
	"github.com/ai-solution/site-backend/pkg/env"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Storage struct {
	client *s3.Client
	bucket string
	region string
}

var _ appifaces.Storage = (*Storage)(nil)

func NewStorage(config aws.Config) *Storage {
	return &Storage{
		initClient(config),
		env.GetEnv("S3_BUCKET", "ai-solution-media"),
		env.GetEnv("AWS_DEFAULT_REGION", "eu-north-1"),
	}
}

func initClient(config aws.Config) *s3.Client {
	client := s3.NewFromConfig(config, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return client
}

func (s *Storage) UploadFile(ctx context.Context, key string, contentType *string, body io.Reader) (string, error) {
	var ct string

	data, err := io.ReadAll(body)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading for content-type detection: %v", err)
	}

	if contentType == nil {
		ct = http.DetectContentType(data)
		if strings.HasSuffix(key, ".svg") {
			ct = "image/svg+xml"
		}
	} else {
		ct = *contentType
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(ct),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", err
	}

	fileURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	return fileURL, nil
}

func (s *Storage) DeleteFile(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting file %v: %v", key, err)
	}
	return nil
}
