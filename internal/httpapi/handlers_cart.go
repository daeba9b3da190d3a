package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pantrycore/internal/core"
)

func (s *Server) handleCartView(c *gin.Context) {
	groups, err := s.service.CartByCategory(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if groups == nil {
		groups = []core.CategoryCart{}
	}
	count := 0
	for _, group := range groups {
		count += len(group.Entries)
	}
	c.JSON(http.StatusOK, gin.H{"categories": groups, "count": count})
}

type cartAddPayload struct {
	Item     string `json:"item" binding:"required"`
	Quantity *int   `json:"quantity"`
	Unit     string `json:"unit"`
	Brand    string `json:"brand"`
}

// handleCartAdd appends a cart line. Quantity defaults to one when omitted;
// explicit non-positive values reach the rules engine and come back as 422.
func (s *Server) handleCartAdd(c *gin.Context) {
	var payload cartAddPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	item := strings.TrimSpace(payload.Item)
	if item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item is required"})
		return
	}
	quantity := 1
	if payload.Quantity != nil {
		quantity = *payload.Quantity
	}

	entry, res, err := s.service.AddCartEntry(c.Request.Context(), item, quantity,
		strings.TrimSpace(payload.Unit), strings.TrimSpace(payload.Brand))
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"entry": entry}, res)
}

type cartAdjustPayload struct {
	Delta *int `json:"delta"`
}

func (s *Server) handleCartAdjust(c *gin.Context) {
	var payload cartAdjustPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}
	if payload.Delta == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}

	entry, res, err := s.service.AdjustCartQuantity(c.Request.Context(), c.Param("id"), *payload.Delta)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"entry": entry}, res)
}

func (s *Server) handleCartRemove(c *gin.Context) {
	if _, err := s.service.RemoveCartEntry(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCartClear(c *gin.Context) {
	removed, res, err := s.service.ClearCart(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"removed": removed}, res)
}
