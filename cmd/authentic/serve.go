package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guadalupeabrile/authentic"
	"github.com/guadalupeabrile/authentic/auth"
	"github.com/guadalupeabrile/authentic/blobstore"
	"github.com/guadalupeabrile/authentic/config"
	"github.com/guadalupeabrile/authentic/filesystem"
	authhttp "github.com/guadalupeabrile/authentic/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the portfolio content HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 4000, "HTTP server port")
	serveCmd.Flags().String("env", "dev", "runtime environment (dev, prod)")

	// Only env is mirrored into the global viper: setupLogging runs before
	// config.Load and needs it. Everything else reaches config.Load through
	// the flag set itself.
	_ = viper.BindPFlag("server.env", serveCmd.Flags().Lookup("env"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var configFiles []string
	if cf, _ := cmd.Flags().GetString("config"); cf != "" {
		configFiles = append(configFiles, cf)
	}

	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	backend := cfg.Storage.Resolve()

	var documents authentic.DocumentStore
	var images authentic.ImageStorage

	if backend.UseObjectStore {
		client, err := blobstore.New(blobstore.Config{
			Endpoint:         cfg.Storage.Blob.Endpoint,
			AccessKeyID:      cfg.Storage.Blob.AccessKeyID,
			SecretAccessKey:  cfg.Storage.Blob.SecretAccessKey,
			UseSSL:           cfg.Storage.Blob.UseSSL,
			Region:           cfg.Storage.Blob.Region,
			Bucket:           cfg.Storage.Blob.Bucket,
			PublicBaseURL:    cfg.Storage.Blob.PublicBaseURL,
			AutoCreateBucket: cfg.Storage.Blob.AutoCreateBucket,
		})
		if err != nil {
			return fmt.Errorf("connect object store: %w", err)
		}
		documents = blobstore.NewDocumentStore(client)
		images = client
		slog.Info("storage backend selected", "backend", "objectstore", "bucket", cfg.Storage.Blob.Bucket)
	} else {
		if err := os.MkdirAll(backend.ImageRoot, 0o750); err != nil {
			return fmt.Errorf("create image root: %w", err)
		}

		root, err := os.OpenRoot(backend.ImageRoot)
		if err != nil {
			return fmt.Errorf("open image root: %w", err)
		}
		defer func() { _ = root.Close() }()

		documents = filesystem.NewDocumentStore(backend.ConfigWritePath, backend.ConfigReadPaths...)
		images = filesystem.NewImageStore(root)
		slog.Info("storage backend selected", "backend", "filesystem", "imageRoot", backend.ImageRoot)
	}

	service := authentic.NewService(documents, images)

	if err := service.Init(ctx); err != nil {
		slog.Warn("could not seed default document", "err", err)
	}

	authService, err := auth.NewService(
		cfg.Admin.Username,
		cfg.Admin.PasswordHash,
		[]byte(cfg.Auth.Secret),
		time.Duration(cfg.Auth.TokenTTLSecs)*time.Second,
	)
	if err != nil {
		return fmt.Errorf("create auth service: %w", err)
	}

	handlerConfig := authhttp.HandlerConfig{
		CORS:       cfg.CORS,
		UploadsDir: backend.UploadsDir,
	}

	handler := authhttp.NewHandler(&handlerConfig, service, authService)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		cancel()
	}()

	slog.Info("starting server", "addr", addr, "env", cfg.Server.Env)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
