// Package api exposes the audit service over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/audit-api/audit"
)

// Auditor runs one audit. *audit.Service implements it.
type Auditor interface {
	Audit(ctx context.Context, req audit.AuditRequest) (*audit.AuditResult, error)
}

// auditBody checks presence and type only; an empty string is a valid value.
type auditBody struct {
	URL           *string `json:"url" binding:"required"`
	TargetKeyword *string `json:"target_keyword" binding:"required"`
}

type Handler struct {
	Service Auditor
	Logger  *slog.Logger
}

// Root reports that the service is up
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "🚀 SEO Audit API is running.",
		"docs":    "/docs",
		"status":  "ok",
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Audit handles POST /audit. Every audit failure is answered with a 500 carrying
// the failure message, whichever step failed and why.
func (h *Handler) Audit(c *gin.Context) {
	var body auditBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "invalid audit request: " + err.Error(),
		})
		return
	}
	req := audit.AuditRequest{URL: *body.URL, TargetKeyword: *body.TargetKeyword}

	h.Logger.Info("audit request received",
		"url", req.URL,
		"keyword", req.TargetKeyword,
		"client_ip", c.ClientIP(),
	)

	result, err := h.Service.Audit(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
