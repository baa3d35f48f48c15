package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/admin"
	"github.com/connectvan/backend/internal/catalog"
	"github.com/connectvan/backend/internal/response"
)

// AdminHandler serves /api/v1/admin/*; every route sits behind middleware.RequireAdmin.
type AdminHandler struct {
	logger *zap.Logger
	svc    *admin.Service
	images *admin.ImageEncoder
}

func NewAdminHandler(logger *zap.Logger, svc *admin.Service, images *admin.ImageEncoder) *AdminHandler {
	return &AdminHandler{logger: logger, svc: svc, images: images}
}

// createDriverReq is bound from JSON or multipart; list fields are comma-delimited.
type createDriverReq struct {
	Name          string `json:"name" form:"name" binding:"required"`
	Email         string `json:"email" form:"email" binding:"required,email"`
	Photo         string `json:"photo" form:"photo"`
	VehicleType   string `json:"vehicleType" form:"vehicleType" binding:"required"`
	Neighborhoods string `json:"neighborhoods" form:"neighborhoods" binding:"required"`
	Schools       string `json:"schools" form:"schools" binding:"required"`
	Description   string `json:"description" form:"description" binding:"required"`
	WhatsApp      string `json:"whatsapp" form:"whatsapp" binding:"required"`
}

type updateDriverReq struct {
	Name          *string `json:"name" form:"name"`
	Email         *string `json:"email" form:"email" binding:"omitempty,email"`
	Photo         *string `json:"photo" form:"photo"`
	VehicleType   *string `json:"vehicleType" form:"vehicleType"`
	Neighborhoods *string `json:"neighborhoods" form:"neighborhoods"`
	Schools       *string `json:"schools" form:"schools"`
	Description   *string `json:"description" form:"description"`
	WhatsApp      *string `json:"whatsapp" form:"whatsapp"`
}

// ListDrivers GET /api/v1/admin/drivers?q= (name only)
func (h *AdminHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.svc.ListDrivers(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, response.MsgSuccess, drivers)
}

// CreateDriver POST /api/v1/admin/drivers (JSON or multipart with file field "photo")
func (h *AdminHandler) CreateDriver(c *gin.Context) {
	var req createDriverReq
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	photo, err := h.uploadedImage(c, "photo")
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	if photo != "" {
		req.Photo = photo
	}
	d, err := h.svc.CreateDriver(c.Request.Context(), catalog.DriverInput{
		Name:          req.Name,
		Email:         req.Email,
		Photo:         req.Photo,
		VehicleType:   req.VehicleType,
		Neighborhoods: req.Neighborhoods,
		Schools:       req.Schools,
		Description:   req.Description,
		WhatsApp:      req.WhatsApp,
	})
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.OK(c, http.StatusCreated, "created", d)
}

// UpdateDriver PUT|PATCH /api/v1/admin/drivers/:id; blank fields keep the stored value.
func (h *AdminHandler) UpdateDriver(c *gin.Context) {
	var req updateDriverReq
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	photo, err := h.uploadedImage(c, "photo")
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	if photo != "" {
		req.Photo = &photo
	}
	d, err := h.svc.UpdateDriver(c.Request.Context(), c.Param("id"), catalog.DriverPatch{
		Name:          req.Name,
		Email:         req.Email,
		Photo:         req.Photo,
		VehicleType:   req.VehicleType,
		Neighborhoods: req.Neighborhoods,
		Schools:       req.Schools,
		Description:   req.Description,
		WhatsApp:      req.WhatsApp,
	})
	if err != nil {
		writeError(c, h.logger, err, "")
		return
	}
	response.OK(c, http.StatusOK, "ok", d)
}

// DeleteDriver DELETE /api/v1/admin/drivers/:id?confirm=true
func (h *AdminHandler) DeleteDriver(c *gin.Context) {
	removed, err := h.svc.DeleteDriver(c.Request.Context(), c.Param("id"), confirmed(c))
	if err != nil {
		writeError(c, h.logger, err, "confirm.delete_driver")
		return
	}
	deleted(c, removed)
}

// confirmed reads the confirm query parameter (true/1/yes).
func confirmed(c *gin.Context) bool {
	v := c.Query("confirm")
	if ok, err := strconv.ParseBool(v); err == nil {
		return ok
	}
	return v == "yes"
}

func deleted(c *gin.Context, removed bool) {
	key := "deleted"
	if !removed {
		key = "not_deleted"
	}
	response.OK(c, http.StatusOK, key, gin.H{"removed": removed})
}

// uploadedImage encodes the multipart file in field, or returns "" when there is none.
func (h *AdminHandler) uploadedImage(c *gin.Context, field string) (string, error) {
	if c.ContentType() != "multipart/form-data" {
		return "", nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	return h.images.EncodeFile(fh)
}
