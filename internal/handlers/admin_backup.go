package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/response"
)

// Stats GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, st)
}

// Backup GET /api/v1/admin/backup downloads the raw backup document (no envelope) so it can be restored as is.
func (h *AdminHandler) Backup(c *gin.Context) {
	b, err := h.svc.Export(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+admin.BackupFilename(b.Timestamp)+`"`)
	c.JSON(http.StatusOK, b)
}

// Restore POST /api/v1/admin/restore takes the document as the body or as multipart file field "file".
func (h *AdminHandler) Restore(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.images.MaxBytes())

	var src io.Reader = c.Request.Body
	if c.ContentType() == "multipart/form-data" {
		fh, err := c.FormFile("file")
		if err != nil {
			response.FailWith(c, http.StatusBadRequest, "error.invalid_backup", gin.H{"field": "file", "reason": "is required"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			writeError(c, h.logger, err, "")
			return
		}
		defer f.Close()
		src = f
	}

	b, err := admin.ParseBackup(src)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			response.FailWith(c, http.StatusBadRequest, "error.invalid_backup", gin.H{"field": verr.Field, "reason": verr.Reason})
			return
		}
		writeError(c, h.logger, err, "")
		return
	}
	if err := h.svc.Import(c.Request.Context(), b); err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.OK(c, http.StatusOK, "backup.restored", gin.H{
		"drivers":     len(b.Data.Drivers),
		"partners":    len(b.Data.Partners),
		"hero_images": len(b.Data.HeroImages),
	})
}
