// Package storage archives rendered documents in Google Cloud Storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"rental_console/internal/usecase/interfaces"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var ErrMissingBucket = errors.New("document bucket is required")

const publicBaseURL = "https://storage.googleapis.com"

// GCSArchive writes documents to one bucket. It holds a single client for the
// process lifetime; call Close on shutdown.
type GCSArchive struct {
	client    *storage.Client
	bucket    string
	newWriter func(ctx context.Context, name, contentType string) io.WriteCloser
}

var _ interfaces.IDocumentArchive = (*GCSArchive)(nil)

// NewGCSArchive prefers Application Default Credentials. credentialsJSON,
// when set, is used instead (e.g. locally).
func NewGCSArchive(ctx context.Context, bucket, credentialsJSON string) (*GCSArchive, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, ErrMissingBucket
	}

	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	a := &GCSArchive{client: client, bucket: bucket}
	a.newWriter = func(ctx context.Context, name, contentType string) io.WriteCloser {
		w := client.Bucket(bucket).Object(name).NewWriter(ctx)
		w.ContentType = contentType
		return w
	}
	return a, nil
}

// Put uploads data as name and returns the object's URL.
func (a *GCSArchive) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	if name == "" {
		return "", errors.New("object name is required")
	}

	wc := a.newWriter(ctx, name, contentType)
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", publicBaseURL, a.bucket, name), nil
}

func (a *GCSArchive) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}
