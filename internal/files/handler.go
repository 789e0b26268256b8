package files

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
)

// 10 MB is plenty for a photo of a time clock display.
const maxUploadBytes = 10 << 20

type Handler struct{ storage Storage }

func RegisterRoutes(r gin.IRoutes, storage Storage) {
	h := &Handler{storage: storage}
	r.POST("/files/upload", h.Upload)
}

// POST /files/upload (multipart, field "file")
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if fh.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read upload failed"})
		return
	}
	defer f.Close()

	// unique object name, original name kept for readability
	name := ulid.Make().String() + "_" + sanitizeName(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storage.Put(c.Request.Context(), name, f, fh.Size, contentType)
	if err != nil {
		// the punch is still saveable without a proof
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
