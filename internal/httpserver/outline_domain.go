package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"study-outline-tracker/internal/middleware"
	outlineHTTP "study-outline-tracker/internal/outline/delivery/http"
	outlineUC "study-outline-tracker/internal/outline/usecase"
)

// setupOutlineDomain initializes the outline domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv *HTTPServer) setupOutlineDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc, err := outlineUC.New(srv.l, srv.parser, srv.cacheEntries)
	if err != nil {
		return err
	}

	// 2. HTTP Handler
	h := outlineHTTP.New(srv.l, uc, srv.uploadPolicy)

	// 3. Routes: registers /api/v1/outline/upload and /api/v1/progress
	outlineHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Outline domain registered")
	return nil
}
