package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"go.uber.org/zap"
)

// S3Options configures an S3-compatible bucket used as a document store
type S3Options struct {
	Bucket          string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Store writes each document as <collection>/<id>.json
type S3Store struct {
	client *s3.Client
	bucket string
	now    func() time.Time
}

// NewS3Store creates a store for an S3-compatible bucket.
// A custom endpoint switches to path-style addressing (MinIO, Yandex, R2).
func NewS3Store(opts S3Options) *S3Store {
	s3Opts := s3.Options{
		Region: opts.Region,
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		s3Opts.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")
	}
	if opts.Endpoint != "" {
		s3Opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3Opts.UsePathStyle = true
	}

	logger.Info("S3 document store initialized",
		zap.String("bucket", opts.Bucket),
		zap.String("endpoint", opts.Endpoint),
		zap.String("region", opts.Region),
	)

	return &S3Store{
		client: s3.New(s3Opts),
		bucket: opts.Bucket,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateDocument uploads doc as JSON and returns its uuid
func (s *S3Store) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	body, err := json.Marshal(stamp(doc, s.now()))
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := uuid.NewString()
	key := path.Join(collection, id+".json")

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return id, nil
}

// ListCollections returns the top-level key prefixes in the bucket
func (s *S3Store) ListCollections(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Delimiter: aws.String("/"),
	})

	names := []string{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list collections: %w", err)
		}
		for _, prefix := range page.CommonPrefixes {
			name := strings.TrimSuffix(aws.ToString(prefix.Prefix), "/")
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

// Close is a no-op for S3
func (s *S3Store) Close(context.Context) error {
	return nil
}
