// Package response provides the unified API response format: status (HTTP code), message, data.
package response

import (
	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/i18n"
)

// languageKey is where the language middleware leaves the negotiated language.
const languageKey = "language"

// Body is the unified response structure for all API responses.
type Body struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success sends a successful response with status code, message and optional data.
func Success(c *gin.Context, statusCode int, message string, data any) {
	if message == "" {
		message = MsgSuccess
	}
	c.JSON(statusCode, Body{Status: statusCode, Message: message, Data: data})
}

// Error sends an error response with status code and message; data is nil.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Status: statusCode, Message: message})
}

// AbortWithError aborts the chain and sends the unified error response (for middleware).
func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Body{Status: statusCode, Message: message})
}

// T translates key into the request language.
func T(c *gin.Context, key string) string {
	return i18n.T(c.GetString(languageKey), key)
}

// OK is Success with a translated message.
func OK(c *gin.Context, statusCode int, key string, data any) {
	Success(c, statusCode, T(c, key), data)
}

// Fail is Error with a translated message.
func Fail(c *gin.Context, statusCode int, key string) {
	Error(c, statusCode, T(c, key))
}

// FailWith is Fail carrying data, for errors the client can act on (a field name, a prompt).
func FailWith(c *gin.Context, statusCode int, key string, data any) {
	c.JSON(statusCode, Body{Status: statusCode, Message: T(c, key), Data: data})
}

// Common messages.
const (
	MsgSuccess = "success"
	MsgCreated = "created"
)
