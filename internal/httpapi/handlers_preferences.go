package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pantrycore/internal/core"
)

type preferencePayload struct {
	Unit  string `json:"unit"`
	Brand string `json:"brand"`
}

func (s *Server) handlePreferenceList(c *gin.Context) {
	groups, err := s.service.PreferencesByCategory(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if groups == nil {
		groups = []core.CategoryPreferences{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": groups})
}

func (s *Server) handlePreferenceSave(c *gin.Context) {
	var payload preferencePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	item := c.Param("item")
	pref, res, err := s.service.SavePreference(c.Request.Context(), item,
		strings.TrimSpace(payload.Unit), strings.TrimSpace(payload.Brand))
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"item": item, "unit": pref.Unit, "brand": pref.Brand}, res)
}

func (s *Server) handlePreferenceDelete(c *gin.Context) {
	if _, err := s.service.DeletePreference(c.Request.Context(), c.Param("item")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleHiddenList(c *gin.Context) {
	items, err := s.service.HiddenItems(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleHideItem(c *gin.Context) {
	item := c.Param("item")
	res, err := s.service.HideItem(c.Request.Context(), item)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"item": item, "hidden": true}, res)
}

func (s *Server) handleRestoreItem(c *gin.Context) {
	item := c.Param("item")
	res, err := s.service.RestoreItem(c.Request.Context(), item)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"item": item, "hidden": false}, res)
}

type customItemPayload struct {
	Category string `json:"category" binding:"required"`
	Item     string `json:"item" binding:"required"`
	Unit     string `json:"unit"`
}

func (s *Server) handleCustomItemAdd(c *gin.Context) {
	var payload customItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	category := strings.TrimSpace(payload.Category)
	item := strings.TrimSpace(payload.Item)
	if category == "" || item == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and item are required"})
		return
	}

	entry, res, err := s.service.AddCustomItem(c.Request.Context(), category, item, strings.TrimSpace(payload.Unit))
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{
		"category": entry.Category,
		"item":     entry.Item,
		"unit":     entry.Unit,
	}, res)
}

func (s *Server) handleCustomItemDelete(c *gin.Context) {
	if _, err := s.service.DeleteCustomItem(c.Request.Context(), c.Param("category"), c.Param("item")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type customBrandPayload struct {
	Group string `json:"group" binding:"required"`
	Brand string `json:"brand" binding:"required"`
}

func (s *Server) handleCustomBrandAdd(c *gin.Context) {
	var payload customBrandPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindError(c, err)
		return
	}

	group := strings.TrimSpace(payload.Group)
	brand := strings.TrimSpace(payload.Brand)
	if group == "" || brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group and brand are required"})
		return
	}

	res, err := s.service.AddCustomBrand(c.Request.Context(), group, brand)
	if err != nil {
		renderError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"group": group, "brand": brand}, res)
}

func (s *Server) handleCustomBrandDelete(c *gin.Context) {
	if _, err := s.service.RemoveCustomBrand(c.Request.Context(), c.Param("group"), c.Param("brand")); err != nil {
		renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
