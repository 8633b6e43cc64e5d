package auth

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/middleware"
	"github.com/stewartjane/packet-core/internal/pkg/jwt"
	"github.com/stewartjane/packet-core/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 7 * 24 * time.Hour

type LoginDTO struct {
	Password string `json:"password" binding:"required"`
}

// Handler implements the single-password admin gate. The configured value
// may be a bcrypt hash or, for local development, a plaintext password.
type Handler struct {
	adminPassword string
	secureCookies bool
	rateLimit     gin.HandlerFunc
}

func NewHandler(adminPassword string, secureCookies bool, rateLimit gin.HandlerFunc) *Handler {
	return &Handler{
		adminPassword: adminPassword,
		secureCookies: secureCookies,
		rateLimit:     rateLimit,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	login := []gin.HandlerFunc{h.login}
	if h.rateLimit != nil {
		login = append([]gin.HandlerFunc{h.rateLimit}, login...)
	}
	rg.POST("/auth/login", login...)
	rg.POST("/auth/logout", h.logout)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !h.passwordMatches(dto.Password) {
		response.UnauthorizedMsg(c, "invalid password")
		return
	}

	token, err := jwt.Sign("admin", sessionTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", h.secureCookies, true)
	response.Success(c)
}

// POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookies, true)
	response.Success(c)
}

func (h *Handler) passwordMatches(candidate string) bool {
	if h.adminPassword == "" {
		return false
	}
	if strings.HasPrefix(h.adminPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(h.adminPassword), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.adminPassword), []byte(candidate)) == 1
}
