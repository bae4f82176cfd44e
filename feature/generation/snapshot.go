package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"item-bias/core/storage"
	"item-bias/feature/bias"

	"github.com/minio/minio-go/v7"
)

// SnapshotStore keeps frozen bias configurations in object storage.
type SnapshotStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewSnapshotStore creates a SnapshotStore writing under prefix in bucket.
func NewSnapshotStore(client storage.Client, bucket, prefix string) *SnapshotStore {
	return &SnapshotStore{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key of the snapshot for id.
func (s *SnapshotStore) Key(id string) string {
	return path.Join(s.prefix, id+".json")
}

func (s *SnapshotStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Put stores snap for id and returns its object key.
func (s *SnapshotStore) Put(ctx context.Context, id string, snap bias.Snapshot) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot %s: %w", id, err)
	}
	key := s.Key(id)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot %s: %w", key, err)
	}
	return key, nil
}

// Get loads the snapshot for id, or returns ErrNotFound.
func (s *SnapshotStore) Get(ctx context.Context, id string) (*bias.Snapshot, error) {
	key := s.Key(id)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(key, err)
	}
	defer obj.Close()

	var snap bias.Snapshot
	if err := json.NewDecoder(obj).Decode(&snap); err != nil {
		return nil, objectError(key, err)
	}
	return &snap, nil
}

// Delete removes the snapshot for id. Removing a missing object is not an error.
func (s *SnapshotStore) Delete(ctx context.Context, id string) error {
	key := s.Key(id)
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return objectError(key, err)
	}
	return nil
}

func objectError(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("snapshot %s: %w", key, ErrNotFound)
	}
	return fmt.Errorf("snapshot %s: %w", key, err)
}
