package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/guadalupeabrile/authentic"
)

// documentKey is where the photography document lives inside the bucket.
const documentKey = keyPrefix + "/photography.json"

// DocumentStore persists the photography document as a bucket object, so
// config edits made through the admin UI survive serverless redeploys.
type DocumentStore struct {
	client *Client
}

// NewDocumentStore returns a DocumentStore backed by the given client.
func NewDocumentStore(client *Client) *DocumentStore {
	return &DocumentStore{client: client}
}

// Load fetches the document bytes, mapping a missing object to
// authentic.ErrNotFound.
func (d *DocumentStore) Load(ctx context.Context) ([]byte, error) {
	obj, err := d.client.mc.GetObject(ctx, d.client.bucket, documentKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("get document: %w", authentic.ErrNotFound)
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// Save replaces the document object wholesale.
func (d *DocumentStore) Save(ctx context.Context, data []byte) error {
	opts := minio.PutObjectOptions{ContentType: "application/json"}
	if _, err := d.client.mc.PutObject(ctx, d.client.bucket, documentKey, bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return fmt.Errorf("put document: %w", err)
	}
	return nil
}

// isNoSuchKey reports whether the error definitively means the object does
// not exist (S3/MinIO: NoSuchKey/NotFound).
func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch strings.ToLower(strings.TrimSpace(minioErr.Code)) {
		case "nosuchkey", "notfound":
			return true
		}
	}

	// Some gateways flatten the error into a plain string.
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "nosuchkey") ||
		strings.Contains(lower, "specified key does not exist") ||
		strings.Contains(lower, "not found")
}
