package router

import (
	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/handlers"
)

// RegisterViews mounts the listing, login and admin views with their redirects.
func RegisterViews(r gin.IRoutes, h *handlers.ViewsHandler) {
	r.GET(handlers.PathListing, h.Listing)
	r.GET(handlers.PathLogin, h.Login)
	r.GET(handlers.PathAdmin, h.Admin)
}
