package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// ErrTooLarge is returned when an object exceeds the requested read limit.
var ErrTooLarge = errors.New("object too large")

// Object describes a stored object.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Bucket scopes Client operations to a single bucket.
type Bucket struct {
	client Client
	name   string
}

// DefaultBucket is used when no bucket name is configured.
const DefaultBucket = "stock-audit"

// NewBucket returns a view of the named bucket, or of DefaultBucket when
// name is empty.
func NewBucket(client Client, name string) *Bucket {
	if name == "" {
		name = DefaultBucket
	}
	return &Bucket{client: client, name: name}
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Ensure creates the bucket when missing and makes sure every prefix has a
// folder marker, returning the prefixes that had to be created.
func (b *Bucket) Ensure(ctx context.Context, region string, prefixes ...string) ([]string, error) {
	exists, err := b.client.BucketExists(ctx, b.name)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := b.client.MakeBucket(ctx, b.name, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", b.name, err)
		}
	}

	var created []string
	for _, prefix := range prefixes {
		folder := folderPath(prefix)
		if folder == "" {
			continue
		}

		found := false
		for range b.client.ListObjects(ctx, b.name, minio.ListObjectsOptions{Prefix: folder, MaxKeys: 1}) {
			found = true
			break
		}
		if found {
			continue
		}

		if _, err := b.client.PutObject(ctx, b.name, folder, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{}); err != nil {
			return created, fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		created = append(created, folder)
	}

	return created, nil
}

// Put uploads data under key.
func (b *Bucket) Put(ctx context.Context, key string, data []byte, contentType string) (minio.UploadInfo, error) {
	info, err := b.client.PutObject(ctx, b.name, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return info, nil
}

// Get downloads key. A positive limit rejects objects larger than limit bytes.
func (b *Bucket) Get(ctx context.Context, key string, limit int64) ([]byte, error) {
	obj, err := b.client.GetObject(ctx, b.name, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	var r io.Reader = obj
	if limit > 0 {
		r = io.LimitReader(obj, limit+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, key, limit)
	}
	return data, nil
}

// List returns the objects under prefix, folder markers excluded, sorted by key.
func (b *Bucket) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	for info := range b.client.ListObjects(ctx, b.name, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, info.Err)
		}
		if strings.HasSuffix(info.Key, "/") {
			continue
		}
		objects = append(objects, Object{
			Key:          info.Key,
			Size:         info.Size,
			LastModified: info.LastModified,
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Key < objects[j].Key
	})
	return objects, nil
}

// Remove deletes key.
func (b *Bucket) Remove(ctx context.Context, key string) error {
	if err := b.client.RemoveObject(ctx, b.name, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func folderPath(prefix string) string {
	prefix = strings.TrimLeft(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
