package api

import (
	"net/http"

	"github.com/astralvoyages/spacebooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/destinations", h.destinations)
	router.GET("/accommodations", h.accommodations)
}

func (h *CatalogHandler) destinations(c *gin.Context) {
	destinations, err := h.service.Destinations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *CatalogHandler) accommodations(c *gin.Context) {
	accommodations, err := h.service.Accommodations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accommodations)
}
