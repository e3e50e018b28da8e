package api

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/audit-api/metrics"
	"github.com/seo-optimizer/audit-api/middleware"
)

// NewRouter wires the middleware chain and routes. It fails only when the
// embedded OpenAPI description does not validate.
func NewRouter(service Auditor, recorder *metrics.Recorder, logger *slog.Logger) (*gin.Engine, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	h := &Handler{Service: service, Logger: logger}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.CORS())

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/audit", h.Audit)
	r.GET("/metrics", gin.WrapH(recorder.Handler()))
	r.GET("/openapi.json", OpenAPI(doc))
	r.GET("/docs", Docs)

	return r, nil
}
