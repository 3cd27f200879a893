// Package api is the HTTP surface: the file-comparison lookup consumed
// by the external UI, the health endpoint and the Prometheus metrics
// endpoint.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moodle-tools/simwatch/pkg/cache"
	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/database"
	"github.com/moodle-tools/simwatch/pkg/digest"
)

// FileLookup is the slice of the digest repository the API uses.
type FileLookup interface {
	GetFilesBySubmission(ctx context.Context, submissionID int64, filenames []string, minScore float64, maxSimilar int, alsoLater bool) (map[string]digest.FileDetails, error)
}

// FileSource is the slice of the cache repository the API uses.
type FileSource interface {
	GetSubmissionFiles(ctx context.Context, submissionID int64) ([]cache.StoredFile, error)
}

// Server is the HTTP server.
type Server struct {
	cfg    config.APIConfig
	db     *database.Client
	lookup FileLookup
	files  FileSource

	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(cfg config.APIConfig, db *database.Client, lookup FileLookup, files FileSource) *Server {
	return &Server{
		cfg:    cfg,
		db:     db,
		lookup: lookup,
		files:  files,
	}
}

// Routes builds the gin engine with all endpoints registered.
func (s *Server) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/filecomp/submission/:id", s.FileComparison)

	return router
}

// Start begins serving in the background; startup errors surface
// through the health endpoint going away, shutdown errors through Stop.
func (s *Server) Start(_ context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("HTTP server listening", "addr", s.cfg.ListenAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	return nil
}
