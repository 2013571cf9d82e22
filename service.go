package authentic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"
)

// MaxUploadBytes is the hard cap on a single uploaded image.
const MaxUploadBytes = 10 << 20

// UncategorizedSlug is used when an upload carries no category at all.
const UncategorizedSlug = "uncategorized"

// allowedImageTypes is the upload mime allow-list.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
	"image/avif": {},
}

// AllowedImageType reports whether a mime type may be uploaded.
func AllowedImageType(mimeType string) bool {
	_, ok := allowedImageTypes[mimeType]
	return ok
}

// DocumentStore persists the single photography document as raw bytes.
// Load returns ErrNotFound when no document has ever been written.
type DocumentStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// ImageStorage stores uploaded image bytes under a category/filename pair and
// returns the public-facing path or URL clients should use to fetch them.
type ImageStorage interface {
	Put(ctx context.Context, category, filename string, content io.Reader, size int64, contentType string) (string, error)
}

// UploadRequest carries one validated-by-the-caller multipart file.
type UploadRequest struct {
	Filename    string
	ContentType string
	Size        int64
	Category    string
	Content     io.Reader
}

// UploadResult is the outcome of a stored upload.
type UploadResult struct {
	Path string `json:"path"`
}

// Service implements the content operations behind the HTTP API: reads and
// full-document writes of the photography configuration, and the upload
// relay. Both collaborators are injected once at startup; the service itself
// holds no mutable state, so concurrent use is safe to the extent the
// backends are (the document itself is last-writer-wins by design).
type Service struct {
	documents DocumentStore
	images    ImageStorage
}

// NewService wires a Service to its storage backends.
func NewService(documents DocumentStore, images ImageStorage) *Service {
	return &Service{documents: documents, images: images}
}

// Photography returns the persisted document, or the built-in default when
// the document is missing, unreadable, or has the wrong shape. A broken
// config must never break page rendering, so this method never fails.
func (s *Service) Photography(ctx context.Context) *PhotographyConfig {
	data, err := s.documents.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("photography config unreadable, serving default", "err", err)
		}
		return DefaultConfig()
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		slog.Warn("photography config invalid, serving default", "err", err)
		return DefaultConfig()
	}
	return cfg
}

// SavePhotography replaces the whole persisted document. The only shape
// requirement is a present categories array; everything below it is opaque
// to the store. There is no merge and no concurrency control: two concurrent
// writers race and the last one wins, which is acceptable at manual-admin
// write rates.
func (s *Service) SavePhotography(ctx context.Context, cfg *PhotographyConfig) error {
	if cfg == nil || cfg.Categories == nil {
		return fmt.Errorf("save photography: %w: categories must be an array", ErrInvalidInput)
	}

	data, err := EncodeConfig(cfg)
	if err != nil {
		return fmt.Errorf("save photography: %w", err)
	}

	if err := s.documents.Save(ctx, data); err != nil {
		return fmt.Errorf("save photography: %w: %v", ErrStorage, err)
	}
	return nil
}

// Init writes the default document if none exists yet, so the first read
// after a fresh deployment already has something on disk. Any other load
// error is left for Photography to recover from.
func (s *Service) Init(ctx context.Context) error {
	_, err := s.documents.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("init config: %w", err)
	}
	return s.SavePhotography(ctx, DefaultConfig())
}

// Upload validates and stores a single image, returning the public path.
// Retried uploads of identical bytes produce distinct files: the generated
// filename embeds a timestamp and a random suffix precisely so that retries
// can never overwrite an earlier upload.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return UploadResult{}, fmt.Errorf("upload: %w", err)
	}

	if req.Content == nil {
		return UploadResult{}, fmt.Errorf("upload: %w: file is required", ErrInvalidInput)
	}
	if !AllowedImageType(req.ContentType) {
		return UploadResult{}, fmt.Errorf("upload: %w: content type %q is not an allowed image type", ErrInvalidInput, req.ContentType)
	}
	if req.Size > MaxUploadBytes {
		return UploadResult{}, fmt.Errorf("upload: %w: file exceeds %d bytes", ErrInvalidInput, MaxUploadBytes)
	}

	category := UncategorizedSlug
	if req.Category != "" {
		category = Slugify(req.Category)
	}

	filename := uploadFilename(req.Filename)

	publicPath, err := s.images.Put(ctx, category, filename, req.Content, req.Size, req.ContentType)
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload %s/%s: %w: %v", category, filename, ErrStorage, err)
	}

	return UploadResult{Path: publicPath}, nil
}

// uploadFilename builds a collision-resistant name preserving the original
// extension: unix milliseconds plus a random UUID.
func uploadFilename(original string) string {
	ext := path.Ext(original)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
