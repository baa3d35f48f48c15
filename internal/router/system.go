// System router: health and the status code reference.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/handlers"
)

// RegisterSystem mounts GET /health and GET /status-codes on g.
func RegisterSystem(g gin.IRoutes) {
	g.GET("/health", handlers.Health)
	g.GET("/status-codes", handlers.StatusCodes)
}
