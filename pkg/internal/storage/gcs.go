package storage

import (
	"context"
	"errors"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

type gcsDriver struct {
	client *gcs.Client
}

func newGcsDriver() (*gcsDriver, error) {
	opts := []option.ClientOption{option.WithScopes(gcs.ScopeReadWrite)}
	if credentials := viper.GetString("storage.credentials"); len(credentials) > 0 {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	client, err := gcs.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return &gcsDriver{client: client}, nil
}

func (d *gcsDriver) Put(ctx context.Context, bucket, path string, src io.Reader, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	writer := d.client.Bucket(bucket).Object(path).NewWriter(ctx)
	writer.ContentType = contentType
	if _, err := io.Copy(writer, src); err != nil {
		_ = writer.Close()
		return err
	}

	return writer.Close()
}

func (d *gcsDriver) Delete(ctx context.Context, bucket, path string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := d.client.Bucket(bucket).Object(path).Delete(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil
		}
		return err
	}

	return nil
}
