package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"sapataria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage implements IBlobStorage on a single bucket.
//
// Env vars:
//   - S3_BUCKET_NAME (required)
//   - AWS_REGION / S3_ENDPOINT drive the public URL shape.

type S3Storage struct {
	client *s3.Client
	bucket string
	region string

	// endpoint, when set, points at a local S3 stand-in and changes the
	// public URL to path-style.
	endpoint string
}

var _ interfaces.IBlobStorage = (*S3Storage)(nil)

func NewS3Storage(client *s3.Client) *S3Storage {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		log.Printf("[storage][s3] S3_BUCKET_NAME not set; uploads will fail")
	}
	return &S3Storage{
		client:   client,
		bucket:   bucket,
		region:   getenvDefault("AWS_REGION", "us-east-1"),
		endpoint: os.Getenv("S3_ENDPOINT"),
	}
}

func (s *S3Storage) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *S3Storage) List(ctx context.Context, prefix string) ([]interfaces.StoredObject, error) {
	var objects []interfaces.StoredObject

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			objects = append(objects, interfaces.StoredObject{Key: key, URL: s.objectURL(key)})
		}
	}
	if objects == nil {
		objects = []interfaces.StoredObject{}
	}
	return objects, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
