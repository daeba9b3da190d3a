// Package memory provides the in-memory implementation of the session store.
// It is the canonical transactional state holder: durable drivers wrap it and
// snapshot the four persisted documents after every successful commit. On its
// own it also serves as the "persistence disabled" deployment mode.
package memory

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"pantrycore/pkg/domain"
)

// Compile-time contract assertions for the domain persistence interfaces.
var (
	_ domain.PersistentStore = (*Store)(nil)
	_ domain.Transaction     = (*transaction)(nil)
	_ domain.TransactionView = (*transactionView)(nil)
)

type (
	// Preference aliases domain.Preference for store operations.
	Preference = domain.Preference
	// CartEntry aliases domain.CartEntry.
	CartEntry = domain.CartEntry
	// PersistedState aliases the four-document durable state bundle.
	PersistedState = domain.PersistedState
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Transaction aliases domain.Transaction representing a mutable unit of work.
	Transaction = domain.Transaction
	// TransactionView aliases domain.TransactionView providing read-only state.
	TransactionView = domain.TransactionView
)

type sessionState struct {
	docs domain.PersistedState
	cart []CartEntry
}

func newSessionState() sessionState {
	return sessionState{docs: domain.NewPersistedState()}
}

func (s sessionState) clone() sessionState {
	return sessionState{docs: s.docs.Clone(), cart: cloneCart(s.cart)}
}

func cloneCart(entries []CartEntry) []CartEntry {
	return append([]CartEntry(nil), entries...)
}

// Store provides an in-memory transactional session store.
type Store struct {
	mu     sync.RWMutex
	state  sessionState
	engine *RulesEngine
	nowFn  func() time.Time
}

// NewStore constructs an in-memory store backed by the provided rules engine.
// A nil engine disables rule evaluation.
func NewStore(engine *RulesEngine) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	return &Store{
		state:  newSessionState(),
		engine: engine,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// ExportState clones the four persisted documents for external persistence.
// The cart is session-only and never exported.
func (s *Store) ExportState() PersistedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.docs.Clone()
}

// ImportState replaces the persisted documents with the provided state,
// keeping the current cart. Nil documents are allocated empty.
func (s *Store) ImportState(state PersistedState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state = state.Clone()
	state.Normalize()
	s.state.docs = state
}

// RulesEngine exposes the configured engine for integration points.
func (s *Store) RulesEngine() *RulesEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// NowFunc returns the time provider used for cart timestamps.
func (s *Store) NowFunc() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowFn
}

// SetNowFunc overrides the time provider. Tests use it to pin timestamps; a
// nil fn restores UTC wall-clock time.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn == nil {
		fn = func() time.Time { return time.Now().UTC() }
	}
	s.nowFn = fn
}

// RunInTransaction executes fn within a transactional copy of the store state.
// The copy replaces the live state only when fn and all registered rules pass;
// any error leaves the store untouched.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx Transaction) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{
		store: s,
		state: s.state.clone(),
		now:   s.nowFn(),
	}

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		view := newTransactionView(&tx.state)
		res, err := s.engine.Evaluate(ctx, view, tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	s.state = tx.state
	return result, nil
}

// View executes fn against a read-only snapshot of the store state.
func (s *Store) View(_ context.Context, fn func(TransactionView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state.clone()
	return fn(newTransactionView(&snapshot))
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

type transaction struct {
	store   *Store
	state   sessionState
	changes []Change
	now     time.Time
}

func (tx *transaction) recordChange(change Change) {
	tx.changes = append(tx.changes, change)
}

// Snapshot returns a read-only view over the transactional state.
func (tx *transaction) Snapshot() TransactionView {
	return newTransactionView(&tx.state)
}

// SetPreference upserts the saved preference for item.
func (tx *transaction) SetPreference(item string, pref Preference) {
	action := domain.ActionCreate
	var before any
	if prev, ok := tx.state.docs.Preferences[item]; ok {
		action = domain.ActionUpdate
		before = domain.PreferenceEntry{Item: item, Preference: prev}
	}
	tx.state.docs.Preferences[item] = pref
	tx.recordChange(Change{
		Entity: domain.EntityPreference,
		Action: action,
		Before: before,
		After:  domain.PreferenceEntry{Item: item, Preference: pref},
	})
}

// DeletePreference removes the saved preference for item, reporting whether an
// entry existed.
func (tx *transaction) DeletePreference(item string) bool {
	prev, ok := tx.state.docs.Preferences[item]
	if !ok {
		return false
	}
	delete(tx.state.docs.Preferences, item)
	tx.recordChange(Change{
		Entity: domain.EntityPreference,
		Action: domain.ActionDelete,
		Before: domain.PreferenceEntry{Item: item, Preference: prev},
	})
	return true
}

// SetGroupBrands replaces the custom brand list for one group.
func (tx *transaction) SetGroupBrands(group string, brands []string) {
	action := domain.ActionCreate
	var before any
	if prev, ok := tx.state.docs.CustomBrands[group]; ok {
		action = domain.ActionUpdate
		before = domain.GroupBrandList{Group: group, Brands: append([]string(nil), prev...)}
	}
	tx.state.docs.CustomBrands[group] = append([]string(nil), brands...)
	tx.recordChange(Change{
		Entity: domain.EntityCustomBrand,
		Action: action,
		Before: before,
		After:  domain.GroupBrandList{Group: group, Brands: append([]string(nil), brands...)},
	})
}

// DeleteGroupBrands removes a group's custom brand list entirely.
func (tx *transaction) DeleteGroupBrands(group string) {
	prev, ok := tx.state.docs.CustomBrands[group]
	if !ok {
		return
	}
	delete(tx.state.docs.CustomBrands, group)
	tx.recordChange(Change{
		Entity: domain.EntityCustomBrand,
		Action: domain.ActionDelete,
		Before: domain.GroupBrandList{Group: group, Brands: append([]string(nil), prev...)},
	})
}

// HideItem adds item to the hidden set, reporting whether it was newly hidden.
func (tx *transaction) HideItem(item string) bool {
	if tx.state.docs.HiddenItems.Contains(item) {
		return false
	}
	tx.state.docs.HiddenItems = append(tx.state.docs.HiddenItems, item)
	tx.recordChange(Change{
		Entity: domain.EntityHiddenItem,
		Action: domain.ActionCreate,
		After:  domain.HiddenItemEntry{Item: item},
	})
	return true
}

// RestoreItem removes item from the hidden set, reporting whether it was
// present.
func (tx *transaction) RestoreItem(item string) bool {
	for i, name := range tx.state.docs.HiddenItems {
		if name == item {
			tx.state.docs.HiddenItems = append(tx.state.docs.HiddenItems[:i], tx.state.docs.HiddenItems[i+1:]...)
			tx.recordChange(Change{
				Entity: domain.EntityHiddenItem,
				Action: domain.ActionDelete,
				Before: domain.HiddenItemEntry{Item: item},
			})
			return true
		}
	}
	return false
}

// SetCustomItem inserts or overwrites a user-added catalog entry.
func (tx *transaction) SetCustomItem(category, item, unit string) {
	items, ok := tx.state.docs.CustomItems[category]
	if !ok {
		items = make(map[string]string)
		tx.state.docs.CustomItems[category] = items
	}
	action := domain.ActionCreate
	var before any
	if prev, exists := items[item]; exists {
		action = domain.ActionUpdate
		before = domain.CustomItemEntry{Category: category, Item: item, Unit: prev}
	}
	items[item] = unit
	tx.recordChange(Change{
		Entity: domain.EntityCustomItem,
		Action: action,
		Before: before,
		After:  domain.CustomItemEntry{Category: category, Item: item, Unit: unit},
	})
}

// DeleteCustomItem removes a user-added entry. Deleting the last item of a
// category removes the category key itself so no empty map is persisted.
func (tx *transaction) DeleteCustomItem(category, item string) bool {
	items, ok := tx.state.docs.CustomItems[category]
	if !ok {
		return false
	}
	unit, exists := items[item]
	if !exists {
		return false
	}
	delete(items, item)
	if len(items) == 0 {
		delete(tx.state.docs.CustomItems, category)
	}
	tx.recordChange(Change{
		Entity: domain.EntityCustomItem,
		Action: domain.ActionDelete,
		Before: domain.CustomItemEntry{Category: category, Item: item, Unit: unit},
	})
	return true
}

// ReplacePreferences wholesale-replaces the preferences document.
func (tx *transaction) ReplacePreferences(set domain.PreferenceSet) {
	before := tx.state.docs.Preferences
	next := make(domain.PreferenceSet, len(set))
	for item, pref := range set {
		next[item] = pref
	}
	tx.state.docs.Preferences = next
	tx.recordChange(Change{Entity: domain.EntityState, Action: domain.ActionUpdate, Before: before, After: next})
}

// ReplaceCustomBrands wholesale-replaces the custom brands document.
func (tx *transaction) ReplaceCustomBrands(set domain.CustomBrandSet) {
	before := tx.state.docs.CustomBrands
	next := make(domain.CustomBrandSet, len(set))
	for group, brands := range set {
		next[group] = append([]string(nil), brands...)
	}
	tx.state.docs.CustomBrands = next
	tx.recordChange(Change{Entity: domain.EntityState, Action: domain.ActionUpdate, Before: before, After: next})
}

// ReplaceHiddenItems wholesale-replaces the hidden items document.
func (tx *transaction) ReplaceHiddenItems(set domain.HiddenItemSet) {
	before := tx.state.docs.HiddenItems
	tx.state.docs.HiddenItems = append(domain.HiddenItemSet{}, set...)
	tx.recordChange(Change{Entity: domain.EntityState, Action: domain.ActionUpdate, Before: before, After: tx.state.docs.HiddenItems})
}

// ReplaceCustomItems wholesale-replaces the custom items document.
func (tx *transaction) ReplaceCustomItems(set domain.CustomItemSet) {
	before := tx.state.docs.CustomItems
	next := make(domain.CustomItemSet, len(set))
	for category, items := range set {
		dst := make(map[string]string, len(items))
		for name, unit := range items {
			dst[name] = unit
		}
		next[category] = dst
	}
	tx.state.docs.CustomItems = next
	tx.recordChange(Change{Entity: domain.EntityState, Action: domain.ActionUpdate, Before: before, After: next})
}

// AppendCartEntry appends a new cart line, minting an ID and stamping the add
// time when absent. Entries are never merged.
func (tx *transaction) AppendCartEntry(entry CartEntry) CartEntry {
	if entry.ID == "" {
		entry.ID = tx.store.newID()
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = tx.now
	}
	tx.state.cart = append(tx.state.cart, entry)
	tx.recordChange(Change{
		Entity: domain.EntityCartEntry,
		Action: domain.ActionCreate,
		After:  entry,
	})
	return entry
}

// UpdateCartEntry applies mutator to the entry with the given ID.
func (tx *transaction) UpdateCartEntry(id string, mutator func(*CartEntry) error) (CartEntry, error) {
	for i, entry := range tx.state.cart {
		if entry.ID != id {
			continue
		}
		updated := entry
		if err := mutator(&updated); err != nil {
			return CartEntry{}, err
		}
		updated.ID = entry.ID
		tx.state.cart[i] = updated
		tx.recordChange(Change{
			Entity: domain.EntityCartEntry,
			Action: domain.ActionUpdate,
			Before: entry,
			After:  updated,
		})
		return updated, nil
	}
	return CartEntry{}, fmt.Errorf("cart entry %s: %w", id, domain.ErrNotFound)
}

// RemoveCartEntry deletes the entry with the given ID.
func (tx *transaction) RemoveCartEntry(id string) error {
	for i, entry := range tx.state.cart {
		if entry.ID != id {
			continue
		}
		tx.state.cart = append(tx.state.cart[:i], tx.state.cart[i+1:]...)
		tx.recordChange(Change{
			Entity: domain.EntityCartEntry,
			Action: domain.ActionDelete,
			Before: entry,
		})
		return nil
	}
	return fmt.Errorf("cart entry %s: %w", id, domain.ErrNotFound)
}

// ClearCart empties the cart and returns the number of removed entries.
func (tx *transaction) ClearCart() int {
	removed := len(tx.state.cart)
	if removed == 0 {
		return 0
	}
	before := cloneCart(tx.state.cart)
	tx.state.cart = nil
	tx.recordChange(Change{
		Entity: domain.EntityCartEntry,
		Action: domain.ActionDelete,
		Before: before,
	})
	return removed
}

type transactionView struct {
	state *sessionState
}

func newTransactionView(state *sessionState) TransactionView {
	return transactionView{state: state}
}

// Preference returns the saved preference for item.
func (v transactionView) Preference(item string) (Preference, bool) {
	pref, ok := v.state.docs.Preferences[item]
	return pref, ok
}

// Preferences returns a copy of the preferences document.
func (v transactionView) Preferences() domain.PreferenceSet {
	out := make(domain.PreferenceSet, len(v.state.docs.Preferences))
	for item, pref := range v.state.docs.Preferences {
		out[item] = pref
	}
	return out
}

// GroupBrands returns a copy of the custom brands saved for group.
func (v transactionView) GroupBrands(group string) []string {
	brands, ok := v.state.docs.CustomBrands[group]
	if !ok {
		return nil
	}
	return append([]string(nil), brands...)
}

// CustomBrands returns a copy of the whole custom brands document.
func (v transactionView) CustomBrands() domain.CustomBrandSet {
	out := make(domain.CustomBrandSet, len(v.state.docs.CustomBrands))
	for group, brands := range v.state.docs.CustomBrands {
		out[group] = append([]string(nil), brands...)
	}
	return out
}

// HiddenItems returns a copy of the hidden item set.
func (v transactionView) HiddenItems() domain.HiddenItemSet {
	return append(domain.HiddenItemSet(nil), v.state.docs.HiddenItems...)
}

// IsHidden reports whether item is suppressed.
func (v transactionView) IsHidden(item string) bool {
	return v.state.docs.HiddenItems.Contains(item)
}

// CustomItems returns a copy of the custom items document.
func (v transactionView) CustomItems() domain.CustomItemSet {
	out := make(domain.CustomItemSet, len(v.state.docs.CustomItems))
	for category, items := range v.state.docs.CustomItems {
		dst := make(map[string]string, len(items))
		for name, unit := range items {
			dst[name] = unit
		}
		out[category] = dst
	}
	return out
}

// CustomItemCategory finds item among user-added entries, scanning categories
// in lexical order so resolution is stable within a session.
func (v transactionView) CustomItemCategory(item string) (string, string, bool) {
	categories := make([]string, 0, len(v.state.docs.CustomItems))
	for category := range v.state.docs.CustomItems {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		if unit, ok := v.state.docs.CustomItems[category][item]; ok {
			return category, unit, true
		}
	}
	return "", "", false
}

// CartEntries returns the cart in append order.
func (v transactionView) CartEntries() []CartEntry {
	return cloneCart(v.state.cart)
}

// FindCartEntry retrieves one cart line by ID.
func (v transactionView) FindCartEntry(id string) (CartEntry, bool) {
	for _, entry := range v.state.cart {
		if entry.ID == id {
			return entry, true
		}
	}
	return CartEntry{}, false
}

// State returns a deep copy of the four persisted documents.
func (v transactionView) State() PersistedState {
	return v.state.docs.Clone()
}
