package core

import (
	"sort"
	"strings"

	"pantrycore/pkg/catalog"
)

// CatalogItem is one row of the merged browse view.
type CatalogItem struct {
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Custom bool   `json:"custom"`
}

// CategoryItems groups merged browse rows under a category.
type CategoryItems struct {
	Category string        `json:"category"`
	Items    []CatalogItem `json:"items"`
}

// CategoryCart groups cart lines under their resolved category.
type CategoryCart struct {
	Category string      `json:"category"`
	Entries  []CartEntry `json:"entries"`
}

// orderCategories sequences the present category names: master-list declared
// order first, then user-added categories by name, then the sentinel.
func orderCategories(present map[string]bool) []string {
	ordered := make([]string, 0, len(present))
	emitted := make(map[string]bool, len(present))
	for _, name := range catalog.CategoryNames() {
		if present[name] {
			ordered = append(ordered, name)
			emitted[name] = true
		}
	}
	var extra []string
	for name := range present {
		if !emitted[name] && name != catalog.OtherCategory {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	ordered = append(ordered, extra...)
	if present[catalog.OtherCategory] && !emitted[catalog.OtherCategory] {
		ordered = append(ordered, catalog.OtherCategory)
	}
	return ordered
}

// buildVisibleItems assembles the merged browse view. User-added entries
// override master-list units within their category and append after them;
// whole user-added categories follow the master list in name order. Hidden
// items are dropped everywhere. A non-empty query keeps only items whose name
// contains it case-insensitively and drops categories left empty.
func buildVisibleItems(view TransactionView, query string) []CategoryItems {
	query = strings.ToLower(strings.TrimSpace(query))
	custom := view.CustomItems()

	matches := func(name string) bool {
		return query == "" || strings.Contains(strings.ToLower(name), query)
	}

	var out []CategoryItems
	for _, cat := range catalog.Categories() {
		overrides := custom[cat.Name]
		rows := make([]CatalogItem, 0, len(cat.Items)+len(overrides))
		base := make(map[string]bool, len(cat.Items))
		for _, it := range cat.Items {
			base[it.Name] = true
			if view.IsHidden(it.Name) || !matches(it.Name) {
				continue
			}
			if unit, ok := overrides[it.Name]; ok {
				rows = append(rows, CatalogItem{Name: it.Name, Unit: unit, Custom: true})
				continue
			}
			rows = append(rows, CatalogItem{Name: it.Name, Unit: defaultUnitFor(it.Name)})
		}
		for _, name := range sortedKeys(overrides) {
			if base[name] || view.IsHidden(name) || !matches(name) {
				continue
			}
			rows = append(rows, CatalogItem{Name: name, Unit: overrides[name], Custom: true})
		}
		if query != "" && len(rows) == 0 {
			continue
		}
		out = append(out, CategoryItems{Category: cat.Name, Items: rows})
	}

	declared := make(map[string]bool)
	for _, name := range catalog.CategoryNames() {
		declared[name] = true
	}
	var extra []string
	for category := range custom {
		if !declared[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	for _, category := range extra {
		items := custom[category]
		rows := make([]CatalogItem, 0, len(items))
		for _, name := range sortedKeys(items) {
			if view.IsHidden(name) || !matches(name) {
				continue
			}
			rows = append(rows, CatalogItem{Name: name, Unit: items[name], Custom: true})
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, CategoryItems{Category: category, Items: rows})
	}
	return out
}
