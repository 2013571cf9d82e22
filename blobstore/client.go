// Package blobstore provides the object-store storage backend used in
// serverless deployments: uploaded images and the photography document live
// in an S3-compatible bucket with public-read access, so they survive
// instance recycling.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// keyPrefix namespaces every object this service writes into the bucket.
const keyPrefix = "photography"

// Config holds the connection options for the S3-compatible store.
type Config struct {
	Endpoint         string
	AccessKeyID      string
	SecretAccessKey  string
	UseSSL           bool
	Region           string
	Bucket           string
	PublicBaseURL    string
	AutoCreateBucket bool
}

// Client wraps the minio client for this service's two needs: public image
// uploads and the single JSON document.
type Client struct {
	mc         *minio.Client
	bucket     string
	publicBase string
}

// New initializes the client and ensures the target bucket exists.
func New(cfg Config) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if !cfg.AutoCreateBucket {
			return nil, fmt.Errorf("bucket %q does not exist (auto create disabled)", cfg.Bucket)
		}
		if err := mc.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	publicBase := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &Client{
		mc:         mc,
		bucket:     cfg.Bucket,
		publicBase: publicBase,
	}, nil
}

// Put uploads an image under photography/{category}/{filename} with
// public-read semantics and returns its public URL.
func (c *Client) Put(ctx context.Context, category, filename string, content io.Reader, size int64, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s", keyPrefix, category, filename)
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := c.mc.PutObject(ctx, c.bucket, key, content, size, opts); err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return c.publicBase + "/" + key, nil
}
