// Auth router: login, logout and session probe of the demo admin gate.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/handlers"
)

func RegisterAuth(g *gin.RouterGroup, h *handlers.AuthHandler) {
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/session", h.Session)
}
