package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourtravels/config"
	"tourtravels/middleware"
	"tourtravels/services/admin"
	"tourtravels/utils"
)

// AdminHandler serves back-office auth: signup, login and logout. Sessions
// ride an httpOnly cookie rather than an Authorization header.
type AdminHandler struct {
	Svc admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

type adminCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler handles POST /admin/signup.
func (h *AdminHandler) SignupHandler(c *gin.Context) {
	var creds adminCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and password are required"})
		return
	}

	token, err := h.Svc.Signup(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Admin account created."})
}

// LoginHandler handles POST /admin/login.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var creds adminCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email and password are required"})
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged in."})
}

// LogoutHandler handles POST /admin/logout. It revokes the cached session
// and clears the cookie; an absent cookie still gets a clean 200.
func (h *AdminHandler) LogoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if token, err := c.Cookie(middleware.AdminCookieName); err == nil && token != "" {
		if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
			logger.Warn("Failed to revoke admin session", zap.Error(err))
		}
	}

	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out."})
}

func (h *AdminHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.AdminCookieName, token, int(admin.TokenTTL.Seconds()), "/", "", config.IsProduction(), true)
}

func (h *AdminHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrAdminExists):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, admin.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
	default:
		respondError(c, err)
	}
}
