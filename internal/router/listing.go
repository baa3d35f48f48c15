package router

import (
	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/handlers"
)

// RegisterListing mounts the public read API on /api/v1/listing.
func RegisterListing(g *gin.RouterGroup, h *handlers.ListingHandler) {
	g.GET("/drivers", h.Drivers)
	g.GET("/partners", h.Partners)
	g.GET("/categories", h.Categories)
	g.GET("/hero", h.Hero)
	g.GET("/live", h.Live)
}
