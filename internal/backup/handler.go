// Package backup lets a user download their full punch history as JSON.
package backup

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ponto-backend/internal/platform/auth"
	"ponto-backend/internal/punches"
)

type Handler struct{ svc *punches.Service }

func RegisterRoutes(r gin.IRoutes, svc *punches.Service) {
	h := &Handler{svc: svc}
	r.GET("/backup", h.Download)
}

// GET /backup
func (h *Handler) Download(c *gin.Context) {
	accountID, ok := auth.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	all, err := h.svc.ExportAll(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "backup failed"})
		return
	}

	name := "punches_backup_" + time.Now().UTC().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.JSON(http.StatusOK, gin.H{
		"exported_at": time.Now().UTC().Format(time.RFC3339),
		"punches":     all,
	})
}
