package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// StoredObject describes one object under a prefix.
type StoredObject struct {
	Key          string
	Size         int64
	LastModified time.Time
}

type StorageService interface {
	EnsureBucket(ctx context.Context) error
	Archive(ctx context.Context, key string, data []byte, contentType string) error
	List(ctx context.Context, prefix string) ([]StoredObject, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Move(ctx context.Context, src, dst string) error
	RemoveOlderThan(ctx context.Context, prefix string, age time.Duration) (int, error)
}

type minioStorage struct {
	client *minio.Client
	bucket string
	log    zerolog.Logger
}

func NewStorageService(endpoint, accessKey, secretKey string, useSSL bool, bucket string, log zerolog.Logger) (StorageService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioStorage{
		client: client,
		bucket: bucket,
		log:    log.With().Str("service", "storage").Str("bucket", bucket).Logger(),
	}, nil
}

func (m *minioStorage) EnsureBucket(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		m.log.Info().Msg("Creating bucket")
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (m *minioStorage) Archive(ctx context.Context, key string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (m *minioStorage) List(ctx context.Context, prefix string) ([]StoredObject, error) {
	var objects []StoredObject
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, StoredObject{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	return objects, nil
}

func (m *minioStorage) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// Move copies src to dst and then removes src.
func (m *minioStorage) Move(ctx context.Context, src, dst string) error {
	_, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: m.bucket, Object: dst},
		minio.CopySrcOptions{Bucket: m.bucket, Object: src},
	)
	if err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return m.client.RemoveObject(ctx, m.bucket, src, minio.RemoveObjectOptions{})
}

func (m *minioStorage) RemoveOlderThan(ctx context.Context, prefix string, age time.Duration) (int, error) {
	objects, err := m.List(ctx, prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, obj := range Expired(objects, time.Now().Add(-age)) {
		if err := m.client.RemoveObject(ctx, m.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, fmt.Errorf("remove %s: %w", obj.Key, err)
		}
		removed++
	}
	return removed, nil
}

// Expired keeps the objects last modified before cutoff.
func Expired(objects []StoredObject, cutoff time.Time) []StoredObject {
	var out []StoredObject
	for _, obj := range objects {
		if obj.LastModified.Before(cutoff) {
			out = append(out, obj)
		}
	}
	return out
}
