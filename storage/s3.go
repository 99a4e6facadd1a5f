package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore uploads product images and returns their public URLs in upload
// order.
type ImageStore interface {
	UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

// S3ImageStore stores images in an S3 bucket under a key prefix. A custom
// endpoint switches URL construction to path style (LocalStack, MinIO).
type S3ImageStore struct {
	client   *s3.Client
	bucket   string
	prefix   string
	endpoint string
}

// NewS3ImageStore creates a new S3ImageStore.
func NewS3ImageStore(client *s3.Client, bucket, prefix, endpoint string) *S3ImageStore {
	return &S3ImageStore{client: client, bucket: bucket, prefix: prefix, endpoint: endpoint}
}

func (s *S3ImageStore) UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", fileHeader.Filename, err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload %s: %w", fileHeader.Filename, err)
		}

		key := fmt.Sprintf("%s%s%s", s.prefix, uuid.NewString(), extension(fileHeader.Filename))
		_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", fileHeader.Filename, err)
		}

		urls = append(urls, s.objectURL(key))
	}
	return urls, nil
}

func (s *S3ImageStore) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

func extension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return strings.ToLower(filename[idx:])
	}
	return ""
}
