// Package domain defines the persisted preference documents, session values,
// and rule evaluation primitives used by pantrycore.
package domain

import (
	"fmt"
	"sort"
	"time"
)

// EntityType identifies the kind of record touched by a Change or persisted in
// a storage bucket.
type EntityType string

// Supported entity type identifiers used in Change records and persistence buckets.
const (
	// EntityPreference identifies a saved unit/brand preference.
	EntityPreference EntityType = "preference"
	// EntityCustomBrand identifies a user-added brand within a brand group.
	EntityCustomBrand EntityType = "custom_brand"
	// EntityHiddenItem identifies a suppressed master-list item.
	EntityHiddenItem EntityType = "hidden_item"
	// EntityCustomItem identifies a user-added catalog entry.
	EntityCustomItem EntityType = "custom_item"
	// EntityCartEntry identifies a shopping cart line.
	EntityCartEntry EntityType = "cart_entry"
	// EntityState identifies a whole-document replacement (import/restore).
	EntityState EntityType = "state"
)

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Preference is a user's saved unit/brand choice for one item. Stored values
// may drift out of the current catalog option lists and are accepted as-is.
type Preference struct {
	Unit  string `json:"unit"`
	Brand string `json:"brand"`
}

// PreferenceSet maps item name to its saved preference. Absence means no
// preference saved.
type PreferenceSet map[string]Preference

// CustomBrandSet maps brand group key to the user-added brands for that group,
// deduplicated, insertion order preserved.
type CustomBrandSet map[string][]string

// HiddenItemSet holds master-list item names suppressed from display. Order is
// not significant; the slice is treated as a set.
type HiddenItemSet []string

// Contains reports set membership.
func (h HiddenItemSet) Contains(item string) bool {
	for _, name := range h {
		if name == item {
			return true
		}
	}
	return false
}

// CustomItemSet maps category to user-added item names and their units.
type CustomItemSet map[string]map[string]string

// CartEntry is one line of the shopping cart. Duplicate item names are
// permitted; every add appends a new entry.
type CartEntry struct {
	ID       string    `json:"id"`
	Item     string    `json:"item"`
	Quantity int       `json:"quantity"`
	Unit     string    `json:"unit"`
	Brand    string    `json:"brand"`
	AddedAt  time.Time `json:"added_at"`
}

// DisplayLine renders the entry in its list form, "<qty> <unit> <item>",
// with " - <brand>" appended when a brand is set.
func (e CartEntry) DisplayLine() string {
	line := fmt.Sprintf("%d %s %s", e.Quantity, e.Unit, e.Item)
	if e.Brand != "" {
		line += " - " + e.Brand
	}
	return line
}

// PersistedState aggregates the four durable preference documents. The cart is
// session-only and never part of persisted state.
type PersistedState struct {
	Preferences  PreferenceSet  `json:"preferences"`
	CustomBrands CustomBrandSet `json:"custom_brands"`
	HiddenItems  HiddenItemSet  `json:"hidden_items"`
	CustomItems  CustomItemSet  `json:"custom_items"`
}

// NewPersistedState returns a state with all documents allocated and empty.
func NewPersistedState() PersistedState {
	return PersistedState{
		Preferences:  PreferenceSet{},
		CustomBrands: CustomBrandSet{},
		HiddenItems:  HiddenItemSet{},
		CustomItems:  CustomItemSet{},
	}
}

// Normalize allocates any nil document so callers can mutate without nil
// checks. Used after decoding payloads where documents may be absent.
func (s *PersistedState) Normalize() {
	if s.Preferences == nil {
		s.Preferences = PreferenceSet{}
	}
	if s.CustomBrands == nil {
		s.CustomBrands = CustomBrandSet{}
	}
	if s.HiddenItems == nil {
		s.HiddenItems = HiddenItemSet{}
	}
	if s.CustomItems == nil {
		s.CustomItems = CustomItemSet{}
	}
}

// Clone deep-copies the state so transactions can mutate without aliasing.
func (s PersistedState) Clone() PersistedState {
	out := PersistedState{
		Preferences:  make(PreferenceSet, len(s.Preferences)),
		CustomBrands: make(CustomBrandSet, len(s.CustomBrands)),
		HiddenItems:  append(HiddenItemSet(nil), s.HiddenItems...),
		CustomItems:  make(CustomItemSet, len(s.CustomItems)),
	}
	for item, pref := range s.Preferences {
		out.Preferences[item] = pref
	}
	for group, brands := range s.CustomBrands {
		out.CustomBrands[group] = append([]string(nil), brands...)
	}
	for category, items := range s.CustomItems {
		dst := make(map[string]string, len(items))
		for name, unit := range items {
			dst[name] = unit
		}
		out.CustomItems[category] = dst
	}
	if out.HiddenItems == nil {
		out.HiddenItems = HiddenItemSet{}
	}
	return out
}

// BackupBundle is the single-document export/import payload. On export all
// four keys are always present; on import any subset may appear and absent
// documents leave the corresponding state untouched.
type BackupBundle struct {
	Preferences  PreferenceSet  `json:"preferences"`
	CustomBrands CustomBrandSet `json:"custom_brands"`
	HiddenItems  HiddenItemSet  `json:"hidden_items"`
	CustomItems  CustomItemSet  `json:"custom_items"`
}

// ImportMode selects the merge semantics applied to an imported bundle.
type ImportMode string

const (
	// ImportReplace wholesale-replaces each document present in the payload.
	ImportReplace ImportMode = "replace"
	// ImportMerge folds the payload into existing state, skipping malformed
	// records and entries that would shadow master-list items.
	ImportMerge ImportMode = "merge"
)

// Valid reports whether the mode is one of the supported variants.
func (m ImportMode) Valid() bool {
	return m == ImportReplace || m == ImportMerge
}

// ImportSummary counts what an import applied and what it skipped, per
// document.
type ImportSummary struct {
	Mode               ImportMode `json:"mode"`
	PreferencesApplied int        `json:"preferences_applied"`
	PreferencesSkipped int        `json:"preferences_skipped"`
	CustomBrandsAdded  int        `json:"custom_brands_added"`
	HiddenItemsApplied int        `json:"hidden_items_applied"`
	CustomItemsAdded   int        `json:"custom_items_added"`
	CustomItemsSkipped int        `json:"custom_items_skipped"`
}

// PreferenceEntry pairs an item name with its saved preference. Used in change
// payloads and grouped listings.
type PreferenceEntry struct {
	Item string `json:"item"`
	Preference
}

// CustomBrandEntry identifies one user-added brand within a group.
type CustomBrandEntry struct {
	Group string `json:"group"`
	Brand string `json:"brand"`
}

// GroupBrandList is the change payload for whole-group brand list writes.
type GroupBrandList struct {
	Group  string   `json:"group"`
	Brands []string `json:"brands"`
}

// CustomItemEntry identifies one user-added catalog entry.
type CustomItemEntry struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Unit     string `json:"unit"`
}

// HiddenItemEntry identifies one suppressed master-list item.
type HiddenItemEntry struct {
	Item string `json:"item"`
}

// CategoryPreferences groups saved preferences under their resolved category
// for review listings. Entries are sorted by item name.
type CategoryPreferences struct {
	Category string            `json:"category"`
	Entries  []PreferenceEntry `json:"entries"`
}

// SortEntries orders the group's entries by item name.
func (c *CategoryPreferences) SortEntries() {
	sort.Slice(c.Entries, func(i, j int) bool { return c.Entries[i].Item < c.Entries[j].Item })
}

// Change describes a mutation applied during a transaction.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate supported mutations captured for rules and audit.
const (
	// ActionCreate indicates a record was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates a record was updated.
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID string
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	return "transaction blocked by rules"
}
