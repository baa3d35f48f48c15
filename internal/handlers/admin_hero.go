package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/response"
)

type addHeroReq struct {
	Image string `json:"image" binding:"required"`
}

// ListHero GET /api/v1/admin/hero
func (h *AdminHandler) ListHero(c *gin.Context) {
	images, err := h.svc.HeroImages(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, images)
}

// AddHero POST /api/v1/admin/hero: JSON {"image": url} or multipart file field "image".
func (h *AdminHandler) AddHero(c *gin.Context) {
	var ref string
	if c.ContentType() == "multipart/form-data" {
		uri, err := h.uploadedImage(c, "image")
		if err != nil {
			writeError(c, h.logger, err, "")
			return
		}
		ref = uri
		if ref == "" {
			ref = c.PostForm("image")
		}
	} else {
		var req addHeroReq
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
		ref = req.Image
	}
	images, err := h.svc.AddHeroImage(c.Request.Context(), ref)
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.OK(c, http.StatusCreated, "created", images)
}

// RemoveHero DELETE /api/v1/admin/hero/:index?confirm=true
func (h *AdminHandler) RemoveHero(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.FailWith(c, http.StatusBadRequest, "error.validation", gin.H{"field": "index", "reason": "must be an integer"})
		return
	}
	removed, err := h.svc.RemoveHeroImage(c.Request.Context(), index, confirmed(c))
	if err != nil {
		writeError(c, h.logger, err, "confirm.delete_hero")
		return
	}
	deleted(c, removed)
}
