package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connectvan/backend/internal/auth"
	"github.com/connectvan/backend/internal/middleware"
	"github.com/connectvan/backend/internal/response"
)

type AuthHandler struct {
	logger       *zap.Logger
	gate         *auth.Gate
	cookieSecure bool
}

func NewAuthHandler(logger *zap.Logger, gate *auth.Gate, cookieSecure bool) *AuthHandler {
	return &AuthHandler{logger: logger, gate: gate, cookieSecure: cookieSecure}
}

type loginReq struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login POST /api/v1/auth/login. The session cookie has no Max-Age, so it ends with the browser session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	sess, err := h.gate.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "auth.invalid_credentials")
			return
		}
		writeError(c, h.logger, err, "")
		return
	}
	h.setSessionCookie(c, sess.Token, 0)
	response.OK(c, http.StatusOK, "auth.logged_in", sess)
}

// Logout POST /api/v1/auth/logout always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		h.logger.Warn("logout: session not cleared", zap.Error(err))
	}
	h.setSessionCookie(c, "", -1)
	response.OK(c, http.StatusOK, "auth.logged_out", nil)
}

// Session GET /api/v1/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	ok := h.gate.Authenticated(c.Request.Context(), middleware.SessionToken(c))
	response.Success(c, http.StatusOK, response.MsgSuccess, gin.H{"authenticated": ok})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.cookieSecure, true)
}
