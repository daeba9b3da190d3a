package httpapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantrycore/internal/core"
)

type catalogResponse struct {
	Categories []core.CategoryItems `json:"categories"`
}

func itemNames(groups []core.CategoryItems, category string) []string {
	for _, group := range groups {
		if group.Category != category {
			continue
		}
		names := make([]string, 0, len(group.Items))
		for _, item := range group.Items {
			names = append(names, item.Name)
		}
		return names
	}
	return nil
}

func TestCatalogListsMasterCategoriesInOrder(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/catalog", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var body catalogResponse
	decodeJSON(t, resp, &body)
	require.NotEmpty(t, body.Categories)
	assert.Equal(t, "Produce - Fruits", body.Categories[0].Category)
	assert.Contains(t, itemNames(body.Categories, "Produce - Fruits"), "Apples")
	assert.Contains(t, itemNames(body.Categories, "Dairy"), "Whole Milk")
}

func TestCatalogSearchFiltersBySubstring(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/catalog/search?q=milk", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var body catalogResponse
	decodeJSON(t, resp, &body)
	dairy := itemNames(body.Categories, "Dairy")
	assert.Contains(t, dairy, "Whole Milk")
	assert.NotContains(t, dairy, "Butter (Salted)")
	assert.Nil(t, itemNames(body.Categories, "Produce - Fruits"))
}

func TestCatalogSearchWithoutMatchesIsEmpty(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/catalog/search?q=zzzzzz", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var body catalogResponse
	decodeJSON(t, resp, &body)
	assert.Empty(t, body.Categories)
}

type optionsResponse struct {
	Item        string   `json:"item"`
	Category    string   `json:"category"`
	DefaultUnit string   `json:"default_unit"`
	Units       []string `json:"units"`
	Brands      []string `json:"brands"`
}

func TestItemOptionsForMasterListItem(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/items/"+url.PathEscape("Whole Milk")+"/options", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var body optionsResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Whole Milk", body.Item)
	assert.Equal(t, "Dairy", body.Category)
	assert.Equal(t, "half gallon", body.DefaultUnit)
	assert.Equal(t, []string{"quart", "half gallon", "gallon"}, body.Units)
	require.NotEmpty(t, body.Brands)
	assert.Equal(t, "", body.Brands[0])
	assert.Contains(t, body.Brands, "Fairlife")
}

func TestItemOptionsForUnknownItemFallsBack(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/api/items/"+url.PathEscape("Moon Cheese Wheel")+"/options", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var body optionsResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Other", body.Category)
	assert.Equal(t, "each", body.DefaultUnit)
	assert.Nil(t, body.Brands)
	assert.NotEmpty(t, body.Units)
}
