package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/guadalupeabrile/authentic"
)

// maxConfigBodyBytes caps the PUT /api/photography request body.
const maxConfigBodyBytes = 5 << 20

// multipartOverheadBytes is headroom for multipart framing on top of the
// image size cap.
const multipartOverheadBytes = 1 << 20

// ContentService is the surface of the domain service the handlers need.
type ContentService interface {
	Photography(ctx context.Context) *authentic.PhotographyConfig
	SavePhotography(ctx context.Context, cfg *authentic.PhotographyConfig) error
	Upload(ctx context.Context, req authentic.UploadRequest) (authentic.UploadResult, error)
}

// Authenticator issues and verifies admin bearer tokens.
type Authenticator interface {
	Login(username, password string) (string, error)
	Verify(token string) (string, error)
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	CORS CORSConfig

	// UploadsDir, when set, is served read-only under /uploads/. It stays
	// empty in object-store mode where images are fetched from the bucket's
	// public URLs instead.
	UploadsDir string
}

// Handler provides the HTTP API for the portfolio content service.
type Handler struct {
	config  HandlerConfig
	service ContentService
	auth    Authenticator
}

// NewHandler creates a Handler with the given configuration, service, and
// authenticator.
func NewHandler(config *HandlerConfig, service ContentService, auth Authenticator) *Handler {
	return &Handler{
		config:  *config,
		service: service,
		auth:    auth,
	}
}

// Router returns the configured http.Handler. Mutating endpoints sit behind
// the bearer middleware; the recoverer guarantees a response is always sent
// even when a handler panics.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Post("/auth/login", h.handleLogin)
		r.Get("/photography", h.handleGetPhotography)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(h.auth))
			r.Get("/auth/validate", h.handleValidate)
			r.Put("/photography", h.handlePutPhotography)
			r.Post("/upload", h.handleUpload)
		})
	})

	if h.config.UploadsDir != "" {
		fs := http.FileServer(http.Dir(h.config.UploadsDir))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fs))
	}

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", "Malformed request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "invalid_input", "Username and password are required")
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) handleGetPhotography(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, h.service.Photography(r.Context()))
}

func (h *Handler) handlePutPhotography(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxConfigBodyBytes))
	if err != nil {
		HandleError(w, err)
		return
	}

	cfg, err := authentic.ParseConfig(body)
	if err != nil {
		HandleError(w, err)
		return
	}

	if err := h.service.SavePhotography(r.Context(), cfg); err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]string{"message": "Configuration updated"})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, authentic.MaxUploadBytes+multipartOverheadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			HandleError(w, err)
			return
		}
		WriteError(w, http.StatusBadRequest, "invalid_input", "File is required")
		return
	}
	defer func() { _ = file.Close() }()

	req := authentic.UploadRequest{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Category:    r.FormValue("category"),
		Content:     file,
	}

	result, err := h.service.Upload(r.Context(), req)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]string{
		"message": "File uploaded",
		"path":    result.Path,
	})
}
