// Package s3 keeps catalog records as objects in an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"photocatalog/internal/domain"
)

const (
	keyPrefix   = "catalog/"
	contentType = "application/json"
)

// ObjectAPI is the subset of the S3 client used by SlotStore.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Config holds what NewClient needs to reach a bucket. Endpoint is optional
// and switches to path-style addressing for S3-compatible stores.
type Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type SlotStore struct {
	client ObjectAPI
	bucket string
}

// NewClient builds an S3 client from static credentials. Without an access
// key the client sends anonymous requests.
func NewClient(cfg Config) *s3.Client {
	awsCfg := aws.Config{Region: cfg.Region}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewSlotStore(client ObjectAPI, bucket string) *SlotStore {
	return &SlotStore{client: client, bucket: bucket}
}

func (s *SlotStore) ReadSlot(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(slotKey(name)),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", s.bucket, slotKey(name), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", s.bucket, slotKey(name), err)
	}
	return data, nil
}

// WriteSlot uploads the record with one PutObject call; S3 replaces objects
// atomically so readers never see a partial record.
func (s *SlotStore) WriteSlot(ctx context.Context, name string, record []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(slotKey(name)),
		Body:          bytes.NewReader(record),
		ContentLength: aws.Int64(int64(len(record))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", s.bucket, slotKey(name), err)
	}
	return nil
}

func slotKey(name string) string {
	return keyPrefix + name + ".json"
}

func isNoSuchKey(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
