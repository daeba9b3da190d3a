// Package catalog holds the compiled-in grocery reference data: the master
// item list grouped into ordered categories, brand vocabularies shared across
// related items, per-item unit option specs, and the general unit vocabulary.
// The data is immutable for the process lifetime; accessors return copies so
// callers can never alias package state.
package catalog

import "sort"

// Item pairs an item name with its default purchase unit.
type Item struct {
	Name string
	Unit string
}

// Category is one section of the master list with its items in declared order.
type Category struct {
	Name  string
	Items []Item
}

// UnitSpec is an ordered list of unit options plus the index of the option
// preselected for the item. Default is always a valid index into Options.
type UnitSpec struct {
	Options []string
	Default int
}

// FallbackUnit is returned for items unknown to every catalog structure.
const FallbackUnit = "each"

// OtherCategory is the sentinel category for items that resolve nowhere.
const OtherCategory = "Other"

var (
	itemUnits      map[string]string
	itemCategories map[string]string
	itemGroups     map[string]string
	groupNames     []string
)

func init() {
	itemUnits = make(map[string]string)
	itemCategories = make(map[string]string)
	for _, cat := range masterList {
		for _, it := range cat.Items {
			if _, ok := itemUnits[it.Name]; ok {
				continue
			}
			itemUnits[it.Name] = it.Unit
			itemCategories[it.Name] = cat.Name
		}
	}
	itemGroups = make(map[string]string, len(brandGroups))
	groupNames = make([]string, 0, len(brandGroups))
	for group, members := range brandGroups {
		groupNames = append(groupNames, group)
		for _, name := range members {
			itemGroups[name] = group
		}
	}
	sort.Strings(groupNames)
}

// Categories returns the master list in declared order. The returned slice and
// its item slices are copies.
func Categories() []Category {
	out := make([]Category, len(masterList))
	for i, cat := range masterList {
		out[i] = Category{Name: cat.Name, Items: append([]Item(nil), cat.Items...)}
	}
	return out
}

// CategoryNames returns the category names in declared order.
func CategoryNames() []string {
	out := make([]string, len(masterList))
	for i, cat := range masterList {
		out[i] = cat.Name
	}
	return out
}

// Contains reports whether item appears in any category of the master list.
func Contains(item string) bool {
	_, ok := itemUnits[item]
	return ok
}

// DefaultUnit returns the master-list unit for item. It does not consult unit
// specs; callers wanting full resolution use the resolver service.
func DefaultUnit(item string) (string, bool) {
	unit, ok := itemUnits[item]
	return unit, ok
}

// CategoryOf returns the declared category containing item. When an item name
// appears in several categories the first declared one wins.
func CategoryOf(item string) (string, bool) {
	cat, ok := itemCategories[item]
	return cat, ok
}

// UnitSpecFor returns the unit option spec for item, if one exists.
func UnitSpecFor(item string) (UnitSpec, bool) {
	spec, ok := customUnits[item]
	if !ok {
		return UnitSpec{}, false
	}
	return UnitSpec{Options: append([]string(nil), spec.Options...), Default: spec.Default}, true
}

// UnitOptions returns the unit choices offered for item: the item's spec
// options when a spec exists, the general unit vocabulary otherwise.
func UnitOptions(item string) []string {
	if spec, ok := customUnits[item]; ok {
		return append([]string(nil), spec.Options...)
	}
	return Units()
}

// Units returns the general unit vocabulary.
func Units() []string {
	return append([]string(nil), unitVocabulary...)
}

// Brands returns the static brand list for item. The first entry is always the
// empty string meaning "no preference". ok is false for items with no brand
// list; such items take free-text brands only.
func Brands(item string) ([]string, bool) {
	brands, ok := itemBrands[item]
	if !ok {
		return nil, false
	}
	return append([]string(nil), brands...), true
}

// GroupOf returns the brand group item belongs to. An item belongs to at most
// one group.
func GroupOf(item string) (string, bool) {
	group, ok := itemGroups[item]
	return group, ok
}

// HasGroup reports whether group is a declared brand group.
func HasGroup(group string) bool {
	_, ok := brandGroups[group]
	return ok
}

// Groups returns all brand group keys in lexical order.
func Groups() []string {
	return append([]string(nil), groupNames...)
}

// GroupItems returns the members of group in declared order.
func GroupItems(group string) ([]string, bool) {
	members, ok := brandGroups[group]
	if !ok {
		return nil, false
	}
	return append([]string(nil), members...), true
}
