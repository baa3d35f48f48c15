package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/listing"
	"github.com/connectvan/backend/internal/realtime"
	"github.com/connectvan/backend/internal/response"
	"github.com/connectvan/backend/internal/store"
)

// DriverView is a driver as shown on the public page.
type DriverView struct {
	catalog.Driver
	WhatsAppURL string `json:"whatsapp_url"`
}

// PartnerView is a partner as shown on the public page.
type PartnerView struct {
	catalog.Partner
	WhatsAppURL string `json:"whatsapp_url"`
}

// HeroView is the banner state for a page load; live viewers get updates over /listing/live.
type HeroView struct {
	Images     []string      `json:"images"`
	Current    listing.Frame `json:"current"`
	IntervalMS int64         `json:"interval_ms"`
}

func driverViews(in []catalog.Driver) []DriverView {
	out := make([]DriverView, len(in))
	for i, d := range in {
		out[i] = DriverView{Driver: d, WhatsAppURL: catalog.WhatsAppLink(d.WhatsApp)}
	}
	return out
}

func partnerViews(in []catalog.Partner) []PartnerView {
	out := make([]PartnerView, len(in))
	for i, p := range in {
		out[i] = PartnerView{Partner: p, WhatsAppURL: catalog.WhatsAppLink(p.WhatsApp)}
	}
	return out
}

type ListingHandler struct {
	logger   *zap.Logger
	store    *store.CatalogStore
	hub      *realtime.Hub
	interval time.Duration
	upgrader websocket.Upgrader
}

func NewListingHandler(logger *zap.Logger, cs *store.CatalogStore, hub *realtime.Hub, interval time.Duration, allowedOrigins []string) *ListingHandler {
	return &ListingHandler{
		logger:   logger,
		store:    cs,
		hub:      hub,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Drivers GET /api/v1/listing/drivers?q=
func (h *ListingHandler) Drivers(c *gin.Context) {
	drivers, err := h.store.Drivers(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, driverViews(listing.SearchDrivers(drivers, c.Query("q"))))
}

// Partners GET /api/v1/listing/partners?category=
func (h *ListingHandler) Partners(c *gin.Context) {
	partners, err := h.store.Partners(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, partnerViews(listing.FilterPartners(partners, c.Query("category"))))
}

// Categories GET /api/v1/listing/categories: only categories present in the collection.
func (h *ListingHandler) Categories(c *gin.Context) {
	partners, err := h.store.Partners(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, listing.Categories(partners))
}

// Hero GET /api/v1/listing/hero
func (h *ListingHandler) Hero(c *gin.Context) {
	hero, err := h.heroView(c)
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, hero)
}

func (h *ListingHandler) heroView(c *gin.Context) (HeroView, error) {
	images, err := h.store.HeroImages(c.Request.Context())
	if err != nil {
		return HeroView{}, err
	}
	return HeroView{
		Images:     images,
		Current:    listing.NewCarousel(images).Current(),
		IntervalMS: h.interval.Milliseconds(),
	}, nil
}

// Live GET /api/v1/listing/live upgrades to WebSocket and streams hero frames and catalog changes.
func (h *ListingHandler) Live(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.Serve(c.Request.Context(), conn)
}
