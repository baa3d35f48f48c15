package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/response"
)

// writeError maps service errors onto status codes. confirmKey is the prompt sent with 428.
func writeError(c *gin.Context, logger *zap.Logger, err error, confirmKey string) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		response.FailWith(c, http.StatusBadRequest, "error.validation", gin.H{"field": verr.Field, "reason": verr.Reason})
	case errors.Is(err, admin.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "error.not_found")
	case errors.Is(err, admin.ErrConfirmationRequired):
		response.FailWith(c, http.StatusPreconditionRequired, confirmKey, gin.H{"confirm": "true"})
	case errors.Is(err, admin.ErrInvalidImage):
		response.FailWith(c, http.StatusBadRequest, "error.invalid_image", gin.H{"reason": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "error.internal")
	}
}

// bindError answers 400 for a body that failed gin binding.
func bindError(c *gin.Context, err error) {
	response.FailWith(c, http.StatusBadRequest, "error.validation", gin.H{"reason": err.Error()})
}
