// Package filesystem provides the local-disk storage backend: uploaded
// images under a sandboxed directory tree keyed by category slug, and the
// photography JSON document with atomic temp-file-and-rename writes.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/guadalupeabrile/authentic"
)

// PublicPrefix is the URL prefix under which locally stored images are
// served.
const PublicPrefix = "/uploads/photography"

// ImageStore writes uploaded images below a root directory. The os.Root
// sandbox guarantees no write can escape it regardless of input.
type ImageStore struct {
	root *os.Root
}

// NewImageStore creates an ImageStore rooted at the given directory.
func NewImageStore(root *os.Root) *ImageStore {
	return &ImageStore{root: root}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

// Put stores an image under {category}/{filename} and returns its public
// root-relative path. The write is atomic: content goes to a temp file that
// is renamed into place only once fully written and synced.
func (s *ImageStore) Put(ctx context.Context, category, filename string, content io.Reader, size int64, contentType string) (string, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	tmpFile := tmpFileName()
	t, createErr := s.root.Create(tmpFile)
	if createErr != nil {
		return "", fmt.Errorf("could not open temp file: %w", createErr)
	}

	success := false
	defer func() {
		if closeErr := t.Close(); closeErr != nil {
			slog.Warn("failed to close tmp file", "err", closeErr)
		}
		if !success {
			if rmErr := s.root.Remove(t.Name()); rmErr != nil {
				slog.Warn("failed to remove tmp file", "err", rmErr)
			}
		}
	}()

	if _, err := io.Copy(t, &ctxReader{ctx: ctx, r: content}); err != nil {
		return "", fmt.Errorf("could not copy file contents: %w", err)
	}

	if err := t.Sync(); err != nil {
		return "", fmt.Errorf("could not sync written file: %w", err)
	}

	if err := s.root.MkdirAll(category, 0o755); err != nil {
		return "", fmt.Errorf("could not create category directory: %w", err)
	}

	dest := filepath.Join(category, filename)
	if renameErr := s.root.Rename(tmpFile, dest); renameErr != nil {
		return "", fmt.Errorf("failed to rename file: %w", renameErr)
	}
	success = true

	return PublicPrefix + "/" + category + "/" + filename, nil
}

func tmpFileName() string {
	return fmt.Sprintf(".t%s", uuid.New().String())
}

// DocumentStore persists the photography JSON document on disk. Reads try
// each read path in order; in the degraded serverless mode the persistent
// deployment snapshot comes first and the temp write path second. Writes
// always go to the single write path.
type DocumentStore struct {
	writePath string
	readPaths []string
}

// NewDocumentStore creates a DocumentStore writing to writePath. When no
// explicit read paths are given, reads come from the write path.
func NewDocumentStore(writePath string, readPaths ...string) *DocumentStore {
	if len(readPaths) == 0 {
		readPaths = []string{writePath}
	}
	return &DocumentStore{writePath: writePath, readPaths: readPaths}
}

// Load returns the raw bytes of the first readable document, or
// authentic.ErrNotFound when none of the read paths exist.
func (d *DocumentStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, p := range d.readPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read document %s: %w", p, err)
		}
	}
	return nil, fmt.Errorf("read document: %w", authentic.ErrNotFound)
}

// Save atomically replaces the document: the parent directory is created if
// needed, content goes to a temp file in the same directory, and the rename
// is the commit point.
func (d *DocumentStore) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(d.writePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}

	tmp := filepath.Join(dir, tmpFileName())
	success := false
	defer func() {
		if !success {
			if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				slog.Warn("failed to remove tmp document", "err", rmErr)
			}
		}
	}()

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	if err := os.Rename(tmp, d.writePath); err != nil {
		return fmt.Errorf("commit document: %w", err)
	}
	success = true
	return nil
}
