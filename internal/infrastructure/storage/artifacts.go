// Package storage retrieves classifier artifact files from a backing store.
// Two implementations exist: a local directory for development and single
// node deployments, and a MinIO bucket for clustered deployments where the
// artifacts are published by the training pipeline.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// ArtifactStore fetches named artifact files (model.json, label_decoder.json,
// feature_order.json) from a backing store.
type ArtifactStore interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// LocalStore reads artifacts from a directory on disk.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Fetch reads the named file from the store directory.  The name must be a
// bare file name; path separators are rejected.
func (s *LocalStore) Fetch(_ context.Context, name string) ([]byte, error) {
	if strings.ContainsAny(name, `/\`) || name == "" {
		return nil, apperrors.New(apperrors.ErrCodeBadRequest, fmt.Sprintf("invalid artifact name %q", name))
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed,
				fmt.Sprintf("artifact %s not found in %s", name, s.dir))
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("read artifact %s", name))
	}
	return data, nil
}

// MinIOStore reads artifacts from an object storage bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
	prefix string
}

// MinIOOptions configures a MinIOStore.
type MinIOOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// NewMinIOStore connects to the object store and verifies the bucket exists.
func NewMinIOStore(ctx context.Context, opts MinIOOptions) (*MinIOStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("connect to object store %s", opts.Endpoint))
	}
	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("check bucket %s", opts.Bucket))
	}
	if !exists {
		return nil, apperrors.New(apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("bucket %s does not exist", opts.Bucket))
	}
	return &MinIOStore{client: client, bucket: opts.Bucket, prefix: opts.Prefix}, nil
}

// Fetch downloads the named object from the bucket.
func (s *MinIOStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := name
	if s.prefix != "" {
		key = strings.TrimSuffix(s.prefix, "/") + "/" + name
	}
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("get object %s/%s", s.bucket, key))
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("read object %s/%s", s.bucket, key))
	}
	return data, nil
}
