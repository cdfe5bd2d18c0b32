package api

import (
	"net/http"

	"github.com/astralvoyages/spacebooking/internal/domain"
	"github.com/astralvoyages/spacebooking/internal/repository"
	"github.com/gin-gonic/gin"
)

// SessionHandler manages the advisory login state record. There is no real
// authentication behind it; the record only drives what the UI shows.
type SessionHandler struct {
	users repository.BookingRepository
}

type loginRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewSessionHandler(users repository.BookingRepository) *SessionHandler {
	return &SessionHandler{users: users}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.current)
	router.POST("/", h.login)
	router.DELETE("/", h.logout)
}

func (h *SessionHandler) current(c *gin.Context) {
	user, err := h.users.CurrentUser(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": user})
}

func (h *SessionHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	user := &domain.User{ID: req.ID, Name: req.Name, Email: req.Email}
	if err := h.users.SetCurrentUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": user})
}

func (h *SessionHandler) logout(c *gin.Context) {
	if err := h.users.ClearCurrentUser(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": false})
}
