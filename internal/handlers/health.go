// HTTP handlers; messages are localized with the language negotiated by middleware.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/response"
)

// Health answers 200 in the unified format (status, message, data).
func Health(c *gin.Context) {
	response.OK(c, http.StatusOK, "ok", nil)
}

// StatusCodeItem is one entry of the status code reference.
type StatusCodeItem struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var statusCodesList = []StatusCodeItem{
	{http.StatusOK, "success"},
	{http.StatusCreated, "created"},
	{http.StatusFound, "redirect to login or admin view"},
	{http.StatusBadRequest, "bad request"},
	{http.StatusUnauthorized, "unauthorized"},
	{http.StatusNotFound, "not found"},
	{http.StatusPreconditionRequired, "confirmation required (repeat with confirm=true)"},
	{http.StatusTooManyRequests, "too many requests"},
	{http.StatusInternalServerError, "internal server error"},
	{http.StatusServiceUnavailable, "storage unavailable"},
}

// StatusCodes lists every status code the API answers with (GET /status-codes).
func StatusCodes(c *gin.Context) {
	response.Success(c, http.StatusOK, response.MsgSuccess, statusCodesList)
}
