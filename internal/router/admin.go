package router

import (
	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/handlers"
)

// RegisterAdmin mounts management routes; the caller installs RequireAdmin on g.
func RegisterAdmin(g *gin.RouterGroup, h *handlers.AdminHandler) {
	g.GET("/drivers", h.ListDrivers)
	g.POST("/drivers", h.CreateDriver)
	g.PUT("/drivers/:id", h.UpdateDriver)
	g.PATCH("/drivers/:id", h.UpdateDriver)
	g.DELETE("/drivers/:id", h.DeleteDriver)

	g.GET("/partners", h.ListPartners)
	g.POST("/partners", h.CreatePartner)
	g.PUT("/partners/:id", h.UpdatePartner)
	g.PATCH("/partners/:id", h.UpdatePartner)
	g.DELETE("/partners/:id", h.DeletePartner)

	g.GET("/hero", h.ListHero)
	g.POST("/hero", h.AddHero)
	g.DELETE("/hero/:index", h.RemoveHero)

	g.GET("/stats", h.Stats)
	g.GET("/backup", h.Backup)
	g.POST("/restore", h.Restore)
}
