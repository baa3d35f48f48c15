package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/response"
)

type createPartnerReq struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Logo        string `json:"logo" form:"logo"`
	Category    string `json:"category" form:"category" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	WhatsApp    string `json:"whatsapp" form:"whatsapp" binding:"required"`
}

type updatePartnerReq struct {
	Name        *string `json:"name" form:"name"`
	Logo        *string `json:"logo" form:"logo"`
	Category    *string `json:"category" form:"category"`
	Description *string `json:"description" form:"description"`
	WhatsApp    *string `json:"whatsapp" form:"whatsapp"`
}

// ListPartners GET /api/v1/admin/partners?q=
func (h *AdminHandler) ListPartners(c *gin.Context) {
	partners, err := h.svc.ListPartners(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, partners)
}

// CreatePartner POST /api/v1/admin/partners (JSON or multipart with file field "logo")
func (h *AdminHandler) CreatePartner(c *gin.Context) {
	var req createPartnerReq
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	logo, err := h.uploadedImage(c, "logo")
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	if logo != "" {
		req.Logo = logo
	}
	p, err := h.svc.CreatePartner(c.Request.Context(), catalog.PartnerInput{
		Name:        req.Name,
		Logo:        req.Logo,
		Category:    req.Category,
		Description: req.Description,
		WhatsApp:    req.WhatsApp,
	})
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.OK(c, http.StatusCreated, "created", p)
}

// UpdatePartner PUT|PATCH /api/v1/admin/partners/:id
func (h *AdminHandler) UpdatePartner(c *gin.Context) {
	var req updatePartnerReq
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	logo, err := h.uploadedImage(c, "logo")
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	if logo != "" {
		req.Logo = &logo
	}
	p, err := h.svc.UpdatePartner(c.Request.Context(), c.Param("id"), catalog.PartnerPatch{
		Name:        req.Name,
		Logo:        req.Logo,
		Category:    req.Category,
		Description: req.Description,
		WhatsApp:    req.WhatsApp,
	})
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.OK(c, http.StatusOK, "ok", p)
}

// DeletePartner DELETE /api/v1/admin/partners/:id?confirm=true
func (h *AdminHandler) DeletePartner(c *gin.Context) {
	removed, err := h.svc.DeletePartner(c.Request.Context(), c.Param("id"), confirmed(c))
	if err != nil {
		writeError(c, h.logger, err, "confirm.delete_partner")
		return
	}
	deleted(c, removed)
}
