package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/listing"
	"github.com/connectvan/backend/internal/middleware"
	"github.com/connectvan/backend/internal/response"
)

// In-page anchors of the listing view.
const (
	AnchorDrivers  = "motoristas"
	AnchorPartners = "parceiros"
)

// Route paths of the three logical views.
const (
	PathListing = "/"
	PathLogin   = "/login"
	PathAdmin   = "/admin"
)

// ListingPage is the view model of the public page.
type ListingPage struct {
	Hero             HeroView          `json:"hero"`
	Query            string            `json:"query"`
	Drivers          []DriverView      `json:"drivers"`
	Category         string            `json:"category"`
	Categories       []string          `json:"categories"`
	Partners         []PartnerView     `json:"partners"`
	Anchors          map[string]string `json:"anchors"`
	AdminLinkVisible bool              `json:"admin_link_visible"`
}

// LoginPage is the view model of the login form.
type LoginPage struct {
	Action   string `json:"action"`
	Redirect string `json:"redirect"`
}

// AdminPage is the dashboard view model.
type AdminPage struct {
	Stats      admin.Stats               `json:"stats"`
	Drivers    []catalog.Driver          `json:"drivers"`
	Partners   []catalog.Partner         `json:"partners"`
	HeroImages []string                  `json:"hero_images"`
	Categories []catalog.PartnerCategory `json:"categories"`
	LogoutURL  string                    `json:"logout_url"`
}

// ViewsHandler serves the three logical routes and their guards.
type ViewsHandler struct {
	logger   *zap.Logger
	listing  *ListingHandler
	svc      *admin.Service
	sessions middleware.SessionChecker
}

func NewViewsHandler(logger *zap.Logger, lh *ListingHandler, svc *admin.Service, sessions middleware.SessionChecker) *ViewsHandler {
	return &ViewsHandler{logger: logger, listing: lh, svc: svc, sessions: sessions}
}

func (h *ViewsHandler) authenticated(c *gin.Context) bool {
	return h.sessions.Authenticated(c.Request.Context(), middleware.SessionToken(c))
}

// Listing GET /?q=&category=
func (h *ViewsHandler) Listing(c *gin.Context) {
	ctx := c.Request.Context()
	hero, err := h.listing.heroView(c)
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	drivers, err := h.listing.store.Drivers(ctx)
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	partners, err := h.listing.store.Partners(ctx)
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	q, category := c.Query("q"), c.Query("category")
	response.Success(c, http.StatusOK, response.MsgSuccess, ListingPage{
		Hero:       hero,
		Query:      q,
		Drivers:    driverViews(listing.SearchDrivers(drivers, q)),
		Category:   category,
		Categories: listing.Categories(partners),
		Partners:   partnerViews(listing.FilterPartners(partners, category)),
		Anchors: map[string]string{
			"drivers":  "#" + AnchorDrivers,
			"partners": "#" + AnchorPartners,
		},
		AdminLinkVisible: h.authenticated(c),
	})
}

// Login GET /login; an authenticated visitor is sent to the dashboard.
func (h *ViewsHandler) Login(c *gin.Context) {
	if h.authenticated(c) {
		c.Redirect(http.StatusFound, PathAdmin)
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, LoginPage{
		Action:   "/api/v1/auth/login",
		Redirect: PathAdmin,
	})
}

// Admin GET /admin; anonymous visitors are sent to the login view.
func (h *ViewsHandler) Admin(c *gin.Context) {
	if !h.authenticated(c) {
		c.Redirect(http.StatusFound, PathLogin)
		return
	}
	ctx := c.Request.Context()
	st, err := h.svc.Stats(ctx)
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	drivers, err := h.svc.ListDrivers(ctx, c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	partners, err := h.svc.ListPartners(ctx, c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	hero, err := h.svc.HeroImages(ctx)
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, AdminPage{
		Stats:      st,
		Drivers:    drivers,
		Partners:   partners,
		HeroImages: hero,
		Categories: catalog.Categories,
		LogoutURL:  "/api/v1/auth/logout",
	})
}
