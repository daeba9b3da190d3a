package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pantrycore/internal/core"
)

func (s *Server) handleCatalog(c *gin.Context) {
	groups, err := s.service.VisibleItems(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categoriesOrEmpty(groups)})
}

func (s *Server) handleCatalogSearch(c *gin.Context) {
	groups, err := s.service.SearchVisibleItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": c.Query("q"), "categories": categoriesOrEmpty(groups)})
}

// handleItemOptions returns the choices the add/edit dialogs offer for one
// item. brands is null when the item has no brand vocabulary; clients fall
// back to free-text entry.
func (s *Server) handleItemOptions(c *gin.Context) {
	item := c.Param("item")
	ctx := c.Request.Context()

	category, err := s.service.ResolveItemCategory(ctx, item)
	if err != nil {
		renderError(c, err)
		return
	}
	brands, err := s.service.ResolveEffectiveBrands(ctx, item)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":         item,
		"category":     category,
		"default_unit": s.service.ResolveDefaultUnit(item),
		"units":        s.service.ResolveUnitOptions(item),
		"brands":       brands,
	})
}

func categoriesOrEmpty(groups []core.CategoryItems) []core.CategoryItems {
	if groups == nil {
		return []core.CategoryItems{}
	}
	return groups
}
