package domain

import "context"

// Transaction exposes the state mutations a persistence implementation must
// support within an atomic scope. Primitives are deliberately dumb: dedup,
// promotion, and merge policy live in the resolver service.
type Transaction interface {
	Snapshot() TransactionView

	SetPreference(item string, pref Preference)
	DeletePreference(item string) bool

	SetGroupBrands(group string, brands []string)
	DeleteGroupBrands(group string)

	HideItem(item string) bool
	RestoreItem(item string) bool

	SetCustomItem(category, item, unit string)
	DeleteCustomItem(category, item string) bool

	ReplacePreferences(PreferenceSet)
	ReplaceCustomBrands(CustomBrandSet)
	ReplaceHiddenItems(HiddenItemSet)
	ReplaceCustomItems(CustomItemSet)

	AppendCartEntry(entry CartEntry) CartEntry
	UpdateCartEntry(id string, mutator func(*CartEntry) error) (CartEntry, error)
	RemoveCartEntry(id string) error
	ClearCart() int
}

// TransactionView provides read-only access to snapshot data for rules and
// resolution logic.
type TransactionView interface {
	Preference(item string) (Preference, bool)
	Preferences() PreferenceSet
	GroupBrands(group string) []string
	CustomBrands() CustomBrandSet
	HiddenItems() HiddenItemSet
	IsHidden(item string) bool
	CustomItems() CustomItemSet
	CustomItemCategory(item string) (string, string, bool)
	CartEntries() []CartEntry
	FindCartEntry(id string) (CartEntry, bool)
	State() PersistedState
}

// PersistentStore is a minimal abstraction over durable backends. Reads and
// transactions run against in-memory state; drivers snapshot the four
// persisted documents after every successful transaction, whole-document
// last-write-wins.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(TransactionView) error) error
	Close() error
}
