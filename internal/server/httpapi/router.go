// Package httpapi exposes the sync service over HTTP: auth endpoints, the
// batch push endpoint, and presigned photo URLs.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/logging"
	"github.com/hsaleh/talentdesk/internal/server/services"
	"github.com/hsaleh/talentdesk/internal/wire"
)

// Handlers bundles the services the HTTP layer dispatches to.
type Handlers struct {
	users  *services.UserService
	sync   *services.SyncService
	photos *services.PhotoService
	log    logging.Logger
}

func NewHandlers(users *services.UserService, sync *services.SyncService, photos *services.PhotoService, log logging.Logger) *Handlers {
	return &Handlers{users: users, sync: sync, photos: photos, log: log}
}

// NewRouter builds the gin engine with all routes registered. Everything
// under /api except the user endpoints requires a Bearer access token.
func NewRouter(h *Handlers, jwtSecret []byte) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/user/register", h.register)
	api.POST("/user/login", h.login)
	api.POST("/user/refresh", h.refresh)

	authed := api.Group("", AuthRequired(jwtSecret))
	authed.POST("/sync/push", h.pushBatch)
	authed.POST("/photos/presign", h.presignPhoto)
	authed.POST("/photos/url", h.photoURL)

	return r
}

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *Handlers) register(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	pair, err := h.users.Register(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "username is already taken"})
			return
		}
		h.log.Error(c.Request.Context(), "register failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *Handlers) login(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	pair, err := h.users.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidLoginPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		h.log.Error(c.Request.Context(), "login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *Handlers) refresh(c *gin.Context) {
	var in struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	pair, err := h.users.RefreshToken(c.Request.Context(), in.RefreshToken)
	if err != nil {
		// An unknown or expired refresh token both mean the session is gone.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, log in again"})
		return
	}

	c.JSON(http.StatusOK, tokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *Handlers) pushBatch(c *gin.Context) {
	var batch wire.Batch
	if err := c.ShouldBindJSON(&batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed batch"})
		return
	}

	if err := h.sync.ApplyBatch(c.Request.Context(), currentUserID(c), batch); err != nil {
		h.log.Error(c.Request.Context(), "batch apply failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply batch"})
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handlers) presignPhoto(c *gin.Context) {
	key, url, err := h.photos.GetPresignedPutURL(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.log.Error(c.Request.Context(), "presign failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to presign upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}

func (h *Handlers) photoURL(c *gin.Context) {
	var in struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	url, err := h.photos.GetPresignedGetURL(c.Request.Context(), in.Key)
	if err != nil {
		h.log.Error(c.Request.Context(), "presign failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to presign download"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
