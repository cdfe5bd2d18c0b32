package api

import (
	"errors"
	"net/http"

	"github.com/astralvoyages/spacebooking/internal/repository"
	"github.com/astralvoyages/spacebooking/internal/service/booking"
	"github.com/astralvoyages/spacebooking/internal/ticket"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
	users   repository.BookingRepository
}

func NewBookingHandler(service booking.BookingUseCase, users repository.BookingRepository) *BookingHandler {
	return &BookingHandler{service: service, users: users}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.edit)
	router.DELETE("/:id", h.cancel)
	router.GET("/:id/ticket", h.ticket)
}

// list returns the session user's bookings, or any user's when userId is
// given explicitly.
func (h *BookingHandler) list(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		user, err := h.users.CurrentUser(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		userID = user.ID
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, booking.ErrBookingNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		user, err := h.users.CurrentUser(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user != nil {
			req.UserID = user.ID
		}
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) edit(c *gin.Context) {
	var req booking.EditBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.BookingID = c.Param("id")

	b, err := h.service.EditBooking(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// cancel requires a logged-in session, as the page did. The service itself
// does not check ownership.
func (h *BookingHandler) cancel(c *gin.Context) {
	user, err := h.users.CurrentUser(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ticket(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	pdf, filename, err := ticket.Generate(*b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func statusFor(err error) int {
	var ve *booking.ValidationError
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
