package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	BucketPhotos       = "photos"
	BucketPublications = "publications"
)

// Upload is a pending binary waiting to be placed into a bucket.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Driver moves bytes in and out of the remote store. Delete must treat a
// missing object as success so callers can retry cleanups blindly.
type Driver interface {
	Put(ctx context.Context, bucket, path string, src io.Reader, contentType string) error
	Delete(ctx context.Context, bucket, path string) error
}

var D Driver

func Setup() error {
	switch driver := viper.GetString("storage.driver"); driver {
	case "", "gcs":
		gcs, err := newGcsDriver()
		if err != nil {
			return err
		}
		D = gcs
	case "memory":
		D = NewMemoryDriver()
	default:
		return fmt.Errorf("unknown storage driver %q", driver)
	}

	return nil
}

type bucketPolicy struct {
	MaxSize      int64
	AllowedTypes []string
}

var defaultPolicies = map[string]bucketPolicy{
	BucketPhotos: {
		MaxSize:      10 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	},
	BucketPublications: {
		MaxSize:      5 << 20,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	},
}

func policyOf(bucket string) bucketPolicy {
	policy, ok := defaultPolicies[bucket]
	if !ok {
		policy = bucketPolicy{MaxSize: 5 << 20}
	}

	base := "storage.buckets." + bucket
	if viper.IsSet(base + ".max_size") {
		policy.MaxSize = viper.GetInt64(base + ".max_size")
	}
	if viper.IsSet(base + ".allowed_types") {
		policy.AllowedTypes = viper.GetStringSlice(base + ".allowed_types")
	}

	return policy
}

// UploadFile validates the upload against the bucket policy before any
// network traffic, then stores it under a fresh collision-resistant path.
func UploadFile(ctx context.Context, bucket, prefix string, file Upload) (string, error) {
	policy := policyOf(bucket)

	if file.Size > policy.MaxSize {
		return "", &models.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("%d bytes exceeds the %s bucket ceiling of %d bytes", file.Size, bucket, policy.MaxSize),
		}
	}
	if len(policy.AllowedTypes) > 0 && !lo.Contains(policy.AllowedTypes, file.ContentType) {
		return "", &models.ValidationError{
			Field:  "file",
			Reason: fmt.Sprintf("content type %q is not allowed in the %s bucket", file.ContentType, bucket),
		}
	}

	path := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if len(prefix) > 0 {
		path = strings.Trim(prefix, "/") + "/" + path
	}

	if err := D.Put(ctx, bucket, path, file.Content, file.ContentType); err != nil {
		return "", &models.TransientStoreError{Op: "upload", Err: err}
	}

	return path, nil
}

// FileURL derives the public URL of a stored object. Pure, no network.
func FileURL(bucket, path string) string {
	if len(path) == 0 {
		return ""
	}
	if base := viper.GetString("storage.public_base"); len(base) > 0 {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), bucket, path)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, path)
}

// DeleteFile removes an object; a path that is already gone is a success.
func DeleteFile(ctx context.Context, bucket, path string) error {
	if len(path) == 0 {
		return nil
	}
	if err := D.Delete(ctx, bucket, path); err != nil {
		return &models.TransientStoreError{Op: "delete", Err: err}
	}
	return nil
}
