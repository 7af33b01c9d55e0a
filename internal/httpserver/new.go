package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-outline-tracker/internal/middleware"
	outlineHTTP "study-outline-tracker/internal/outline/delivery/http"
	"study-outline-tracker/internal/outline/parser"
	"study-outline-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Transport policy
	middlewareConfig middleware.Config

	// Outline domain
	parser       parser.Parser
	uploadPolicy outlineHTTP.UploadPolicy
	cacheEntries int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Transport policy
	MiddlewareConfig middleware.Config

	// Outline domain
	Parser       parser.Parser
	UploadPolicy outlineHTTP.UploadPolicy
	CacheEntries int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middlewareConfig: cfg.MiddlewareConfig,
		parser:           cfg.Parser,
		uploadPolicy:     cfg.UploadPolicy,
		cacheEntries:     cfg.CacheEntries,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	if srv.uploadPolicy.MaxSizeBytes <= 0 {
		return errors.New("upload size limit is required")
	}
	if len(srv.uploadPolicy.AllowedExtensions) == 0 {
		return errors.New("at least one allowed upload extension is required")
	}
	return nil
}
