package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"pantrycore/internal/infra/persistence/memory"
	"pantrycore/pkg/catalog"
	"pantrycore/pkg/domain"
)

// Service exposes the preference-resolution, catalog, and cart operations over
// a persistent store. Every operation runs through the configured logger,
// metrics recorder, audit recorder, and tracer.
type Service struct {
	store   PersistentStore
	clock   Clock
	logger  Logger
	audit   AuditRecorder
	metrics MetricsRecorder
	tracer  Tracer
	nowFn   func() time.Time
}

// NewService constructs a service backed by the supplied store.
func NewService(store PersistentStore, opts ...ServiceOption) *Service {
	options := defaultServiceOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Service{
		store:   store,
		clock:   options.clock,
		logger:  options.logger,
		audit:   options.audit,
		metrics: options.metrics,
		tracer:  options.tracer,
		nowFn:   selectNowFunc(store, options.clock),
	}
}

// NewInMemoryService creates a service over a fresh in-memory store. A nil
// engine gets the default rule set.
func NewInMemoryService(engine *RulesEngine, opts ...ServiceOption) *Service {
	if engine == nil {
		engine = NewDefaultRulesEngine()
	}
	return NewService(memory.NewStore(engine), opts...)
}

// Store returns the underlying storage implementation.
func (s *Service) Store() PersistentStore {
	return s.store
}

// RulesEngine returns the engine backing the store, or nil when the store does
// not expose one.
func (s *Service) RulesEngine() *RulesEngine {
	return extractRulesEngine(s.store)
}

type operationMetadata struct {
	entity EntityType
	action Action
}

// operationCatalog maps mutating operation identifiers to the entity and
// action recorded in audit entries. Read operations are absent and never
// audited.
var operationCatalog = map[string]operationMetadata{
	"save_preference":      {entity: EntityPreference, action: ActionUpdate},
	"delete_preference":    {entity: EntityPreference, action: ActionDelete},
	"hide_item":            {entity: EntityHiddenItem, action: ActionCreate},
	"restore_item":         {entity: EntityHiddenItem, action: ActionDelete},
	"add_custom_item":      {entity: EntityCustomItem, action: ActionCreate},
	"delete_custom_item":   {entity: EntityCustomItem, action: ActionDelete},
	"add_custom_brand":     {entity: EntityCustomBrand, action: ActionCreate},
	"remove_custom_brand":  {entity: EntityCustomBrand, action: ActionDelete},
	"import_state":         {entity: EntityState, action: ActionUpdate},
	"add_cart_entry":       {entity: EntityCartEntry, action: ActionCreate},
	"adjust_cart_quantity": {entity: EntityCartEntry, action: ActionUpdate},
	"remove_cart_entry":    {entity: EntityCartEntry, action: ActionDelete},
	"clear_cart":           {entity: EntityCartEntry, action: ActionDelete},
}

// run executes fn transactionally and records the outcome through every
// configured observability sink. A snapshot-persistence failure after commit
// is logged and swallowed: the in-memory state is authoritative for the
// session and durable writes are best-effort.
func (s *Service) run(ctx context.Context, op string, entityID *string, fn func(tx Transaction) error) (Result, error) {
	start := s.clock.Now()
	ctx, span := s.tracer.Start(ctx, op)
	res, err := s.store.RunInTransaction(ctx, fn)

	var persistErr *domain.PersistenceError
	if errors.As(err, &persistErr) {
		s.logger.Warn("state snapshot write failed", "operation", op, "error", persistErr.Error())
		err = nil
	}

	duration := s.clock.Now().Sub(start)
	s.metrics.Observe(ctx, op, err == nil, duration)
	span.End(err)

	if err != nil {
		s.logger.Error("operation failed", "operation", op, "error", err.Error())
		s.recordAuditError(ctx, op, err, duration)
		return res, err
	}

	id := ""
	if entityID != nil {
		id = *entityID
	}
	s.logger.Debug("operation committed", "operation", op, "entity_id", id)
	s.recordAuditSuccess(ctx, op, id, duration)
	return res, nil
}

// view executes fn against a read-only snapshot with tracing and metrics.
func (s *Service) view(ctx context.Context, op string, fn func(view TransactionView) error) error {
	start := s.clock.Now()
	ctx, span := s.tracer.Start(ctx, op)
	err := s.store.View(ctx, fn)
	s.metrics.Observe(ctx, op, err == nil, s.clock.Now().Sub(start))
	span.End(err)
	if err != nil {
		s.logger.Error("operation failed", "operation", op, "error", err.Error())
	}
	return err
}

func (s *Service) recordAuditSuccess(ctx context.Context, op, entityID string, duration time.Duration) {
	meta, ok := operationCatalog[op]
	if !ok {
		return
	}
	s.audit.Record(ctx, AuditEntry{
		Operation: op,
		Entity:    meta.entity,
		Action:    meta.action,
		EntityID:  entityID,
		Status:    AuditStatusSuccess,
		Duration:  duration,
		Timestamp: s.nowFn(),
	})
}

func (s *Service) recordAuditError(ctx context.Context, op string, err error, duration time.Duration) {
	meta, ok := operationCatalog[op]
	if !ok {
		return
	}
	s.audit.Record(ctx, AuditEntry{
		Operation: op,
		Entity:    meta.entity,
		Action:    meta.action,
		Status:    AuditStatusError,
		Error:     err.Error(),
		Duration:  duration,
		Timestamp: s.nowFn(),
	})
}

// defaultUnitFor resolves an item's preselected unit: the unit spec's declared
// default wins over the master-list unit, and unknown items fall back to the
// catalog constant.
func defaultUnitFor(item string) string {
	if spec, ok := catalog.UnitSpecFor(item); ok {
		return spec.Options[spec.Default]
	}
	if unit, ok := catalog.DefaultUnit(item); ok {
		return unit
	}
	return catalog.FallbackUnit
}

// ResolveDefaultUnit returns the unit preselected for item. The resolution is
// pure catalog data and never consults session state.
func (s *Service) ResolveDefaultUnit(item string) string {
	return defaultUnitFor(item)
}

// ResolveUnitOptions returns the unit choices offered for item: the item's
// unit spec when one exists, the general unit vocabulary otherwise.
func (s *Service) ResolveUnitOptions(item string) []string {
	return catalog.UnitOptions(item)
}

// resolveEffectiveBrands merges an item's static brand list with its group's
// custom brands and, last, a saved brand no longer sourced anywhere else.
func resolveEffectiveBrands(item string, view TransactionView) []string {
	static, ok := catalog.Brands(item)
	if !ok {
		return nil
	}
	out := static
	seen := make(map[string]struct{}, len(out))
	for _, brand := range out {
		seen[brand] = struct{}{}
	}
	if group, grouped := catalog.GroupOf(item); grouped {
		for _, brand := range view.GroupBrands(group) {
			if _, dup := seen[brand]; dup {
				continue
			}
			out = append(out, brand)
			seen[brand] = struct{}{}
		}
	}
	if pref, saved := view.Preference(item); saved && pref.Brand != "" {
		if _, dup := seen[pref.Brand]; !dup {
			out = append(out, pref.Brand)
		}
	}
	return out
}

// ResolveEffectiveBrands returns the ordered, deduplicated brand choices for
// item: static list first (leading empty string meaning "no preference"),
// then the item's group custom brands in insertion order, then at most one
// orphaned saved brand. Items without a static brand list yield nil; callers
// fall back to free-text entry.
func (s *Service) ResolveEffectiveBrands(ctx context.Context, item string) ([]string, error) {
	var brands []string
	err := s.view(ctx, "resolve_effective_brands", func(view TransactionView) error {
		brands = resolveEffectiveBrands(item, view)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return brands, nil
}

// categoryFor resolves an item's display category: master list first in
// declared order, then user-added entries, then the sentinel.
func categoryFor(item string, view TransactionView) string {
	if category, ok := catalog.CategoryOf(item); ok {
		return category
	}
	if category, _, ok := view.CustomItemCategory(item); ok {
		return category
	}
	return catalog.OtherCategory
}

// ResolveItemCategory returns the category item belongs to, or "Other" when it
// is unknown to both the master list and the user-added entries.
func (s *Service) ResolveItemCategory(ctx context.Context, item string) (string, error) {
	if category, ok := catalog.CategoryOf(item); ok {
		return category, nil
	}
	var category string
	err := s.view(ctx, "resolve_item_category", func(view TransactionView) error {
		category = categoryFor(item, view)
		return nil
	})
	if err != nil {
		return "", err
	}
	return category, nil
}

// SavePreference upserts the unit/brand preference for item. A non-empty
// brand outside the item's static list is shared with the item's brand group
// so sibling items offer it too; ungrouped items keep the brand private to
// the preference record.
func (s *Service) SavePreference(ctx context.Context, item, unit, brand string) (Preference, Result, error) {
	pref := Preference{Unit: unit, Brand: brand}
	res, err := s.run(ctx, "save_preference", &item, func(tx Transaction) error {
		tx.SetPreference(item, pref)
		promoteCustomBrand(tx, item, brand)
		return nil
	})
	if err != nil {
		return Preference{}, res, err
	}
	return pref, res, nil
}

func promoteCustomBrand(tx Transaction, item, brand string) {
	if brand == "" {
		return
	}
	static, ok := catalog.Brands(item)
	if !ok {
		return
	}
	for _, b := range static {
		if b == brand {
			return
		}
	}
	group, grouped := catalog.GroupOf(item)
	if !grouped {
		return
	}
	existing := tx.Snapshot().GroupBrands(group)
	for _, b := range existing {
		if b == brand {
			return
		}
	}
	tx.SetGroupBrands(group, append(existing, brand))
}

// DeletePreference removes the saved preference for item. Absent entries are
// a no-op.
func (s *Service) DeletePreference(ctx context.Context, item string) (Result, error) {
	return s.run(ctx, "delete_preference", &item, func(tx Transaction) error {
		tx.DeletePreference(item)
		return nil
	})
}

// PreferencesByCategory returns saved preferences grouped under their
// resolved category: master-list categories in declared order, user-added
// categories in name order, "Other" last. Entries sort by item name.
func (s *Service) PreferencesByCategory(ctx context.Context) ([]CategoryPreferences, error) {
	var groups []CategoryPreferences
	err := s.view(ctx, "preferences_by_category", func(view TransactionView) error {
		byCategory := make(map[string][]PreferenceEntry)
		for item, pref := range view.Preferences() {
			category := categoryFor(item, view)
			byCategory[category] = append(byCategory[category], PreferenceEntry{Item: item, Preference: pref})
		}
		present := make(map[string]bool, len(byCategory))
		for category := range byCategory {
			present[category] = true
		}
		for _, category := range orderCategories(present) {
			group := CategoryPreferences{Category: category, Entries: byCategory[category]}
			group.SortEntries()
			groups = append(groups, group)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// HideItem suppresses a master-list item from browse views. Hiding an already
// hidden item is a no-op.
func (s *Service) HideItem(ctx context.Context, item string) (Result, error) {
	return s.run(ctx, "hide_item", &item, func(tx Transaction) error {
		tx.HideItem(item)
		return nil
	})
}

// RestoreItem removes item from the hidden set. Restoring an absent item is a
// no-op.
func (s *Service) RestoreItem(ctx context.Context, item string) (Result, error) {
	return s.run(ctx, "restore_item", &item, func(tx Transaction) error {
		tx.RestoreItem(item)
		return nil
	})
}

// HiddenItems returns the hidden set sorted by name.
func (s *Service) HiddenItems(ctx context.Context) ([]string, error) {
	var items []string
	err := s.view(ctx, "hidden_items", func(view TransactionView) error {
		items = view.HiddenItems()
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(items)
	return items, nil
}

// AddCustomItem inserts or overwrites a user-added catalog entry. A blank
// unit takes the fallback. Names matching master-list items are accepted and
// shadow only within the category's merged view.
func (s *Service) AddCustomItem(ctx context.Context, category, item, unit string) (CustomItemEntry, Result, error) {
	if unit == "" {
		unit = catalog.FallbackUnit
	}
	entry := CustomItemEntry{Category: category, Item: item, Unit: unit}
	res, err := s.run(ctx, "add_custom_item", &item, func(tx Transaction) error {
		tx.SetCustomItem(category, item, unit)
		return nil
	})
	if err != nil {
		return CustomItemEntry{}, res, err
	}
	return entry, res, nil
}

// DeleteCustomItem removes a user-added entry, pruning the category when it
// empties. Unknown entries return ErrNotFound.
func (s *Service) DeleteCustomItem(ctx context.Context, category, item string) (Result, error) {
	return s.run(ctx, "delete_custom_item", &item, func(tx Transaction) error {
		if !tx.DeleteCustomItem(category, item) {
			return fmt.Errorf("custom item %s/%s: %w", category, item, domain.ErrNotFound)
		}
		return nil
	})
}

// AddCustomBrand appends brand to the group's custom list, deduplicating on
// exact match. The group must exist in the catalog; the brand-group rule
// blocks writes naming unknown groups.
func (s *Service) AddCustomBrand(ctx context.Context, group, brand string) (Result, error) {
	return s.run(ctx, "add_custom_brand", &brand, func(tx Transaction) error {
		existing := tx.Snapshot().GroupBrands(group)
		for _, b := range existing {
			if b == brand {
				return nil
			}
		}
		tx.SetGroupBrands(group, append(existing, brand))
		return nil
	})
}

// RemoveCustomBrand deletes brand from the group's custom list, pruning the
// group when it empties. Unknown groups or brands return ErrNotFound.
func (s *Service) RemoveCustomBrand(ctx context.Context, group, brand string) (Result, error) {
	return s.run(ctx, "remove_custom_brand", &brand, func(tx Transaction) error {
		existing := tx.Snapshot().GroupBrands(group)
		if existing == nil {
			return fmt.Errorf("custom brand group %s: %w", group, domain.ErrNotFound)
		}
		kept := existing[:0]
		found := false
		for _, b := range existing {
			if b == brand {
				found = true
				continue
			}
			kept = append(kept, b)
		}
		if !found {
			return fmt.Errorf("custom brand %s/%s: %w", group, brand, domain.ErrNotFound)
		}
		if len(kept) == 0 {
			tx.DeleteGroupBrands(group)
			return nil
		}
		tx.SetGroupBrands(group, kept)
		return nil
	})
}

// ExportBundle snapshots the four persisted documents as a backup bundle.
func (s *Service) ExportBundle(ctx context.Context) (BackupBundle, error) {
	var bundle BackupBundle
	err := s.view(ctx, "export_bundle", func(view TransactionView) error {
		state := view.State()
		bundle = BackupBundle{
			Preferences:  state.Preferences,
			CustomBrands: state.CustomBrands,
			HiddenItems:  state.HiddenItems,
			CustomItems:  state.CustomItems,
		}
		return nil
	})
	if err != nil {
		return BackupBundle{}, err
	}
	return bundle, nil
}

// Import applies a backup or scan bundle to the store. Replace mode
// wholesale-replaces each document present in the payload; merge mode folds
// records into existing state, skipping malformed preference records and
// custom items that would shadow master-list entries. Malformed payloads
// reject the whole import with *ImportError and no partial mutation.
func (s *Service) Import(ctx context.Context, payload []byte, mode ImportMode) (ImportSummary, Result, error) {
	if !mode.Valid() {
		return ImportSummary{}, Result{}, &domain.ImportError{Reason: fmt.Sprintf("unknown import mode %q", mode)}
	}
	bundle, err := decodeRawBundle(payload)
	if err != nil {
		return ImportSummary{}, Result{}, err
	}
	summary := ImportSummary{Mode: mode}
	res, err := s.run(ctx, "import_state", nil, func(tx Transaction) error {
		switch mode {
		case ImportReplace:
			return applyReplace(tx, bundle, &summary)
		default:
			return applyMerge(tx, bundle, &summary)
		}
	})
	if err != nil {
		return ImportSummary{}, res, err
	}
	return summary, res, nil
}

// VisibleItems returns the merged browse view: master-list categories in
// declared order with user-added entries folded in, minus hidden items,
// followed by user-added categories in name order.
func (s *Service) VisibleItems(ctx context.Context) ([]CategoryItems, error) {
	var view []CategoryItems
	err := s.view(ctx, "visible_items", func(v TransactionView) error {
		view = buildVisibleItems(v, "")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SearchVisibleItems filters the merged browse view by a case-insensitive
// substring match on item names, dropping categories left empty.
func (s *Service) SearchVisibleItems(ctx context.Context, query string) ([]CategoryItems, error) {
	var view []CategoryItems
	err := s.view(ctx, "search_visible_items", func(v TransactionView) error {
		view = buildVisibleItems(v, query)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddCartEntry appends a new cart line; duplicate item names never merge. A
// blank unit or brand falls back to the saved preference, then (for units)
// the user-added entry's unit or the catalog default. Non-positive
// quantities are blocked by the cart-quantity rule.
func (s *Service) AddCartEntry(ctx context.Context, item string, quantity int, unit, brand string) (CartEntry, Result, error) {
	var created CartEntry
	var entryID string
	res, err := s.run(ctx, "add_cart_entry", &entryID, func(tx Transaction) error {
		view := tx.Snapshot()
		if pref, ok := view.Preference(item); ok {
			if unit == "" {
				unit = pref.Unit
			}
			if brand == "" {
				brand = pref.Brand
			}
		}
		if unit == "" {
			if _, customUnit, ok := view.CustomItemCategory(item); ok {
				unit = customUnit
			} else {
				unit = defaultUnitFor(item)
			}
		}
		created = tx.AppendCartEntry(CartEntry{Item: item, Quantity: quantity, Unit: unit, Brand: brand})
		entryID = created.ID
		return nil
	})
	if err != nil {
		return CartEntry{}, res, err
	}
	return created, res, nil
}

// AdjustCartQuantity shifts an entry's quantity by delta, flooring at one.
// Unknown entries return ErrNotFound.
func (s *Service) AdjustCartQuantity(ctx context.Context, id string, delta int) (CartEntry, Result, error) {
	var updated CartEntry
	res, err := s.run(ctx, "adjust_cart_quantity", &id, func(tx Transaction) error {
		entry, err := tx.UpdateCartEntry(id, func(e *CartEntry) error {
			next := e.Quantity + delta
			if next < 1 {
				next = 1
			}
			e.Quantity = next
			return nil
		})
		if err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return CartEntry{}, res, err
	}
	return updated, res, nil
}

// RemoveCartEntry deletes one cart line. Unknown entries return ErrNotFound.
func (s *Service) RemoveCartEntry(ctx context.Context, id string) (Result, error) {
	return s.run(ctx, "remove_cart_entry", &id, func(tx Transaction) error {
		return tx.RemoveCartEntry(id)
	})
}

// ClearCart removes every cart line and reports how many were dropped.
func (s *Service) ClearCart(ctx context.Context) (int, Result, error) {
	var removed int
	res, err := s.run(ctx, "clear_cart", nil, func(tx Transaction) error {
		removed = tx.ClearCart()
		return nil
	})
	if err != nil {
		return 0, res, err
	}
	return removed, res, nil
}

// CartEntries returns the cart in append order.
func (s *Service) CartEntries(ctx context.Context) ([]CartEntry, error) {
	var entries []CartEntry
	err := s.view(ctx, "cart_entries", func(view TransactionView) error {
		entries = view.CartEntries()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CartByCategory groups cart lines under their resolved category, preserving
// cart order within each group. Categories follow master-list declared order,
// then user-added categories by name, with "Other" last.
func (s *Service) CartByCategory(ctx context.Context) ([]CategoryCart, error) {
	var groups []CategoryCart
	err := s.view(ctx, "cart_by_category", func(view TransactionView) error {
		byCategory := make(map[string][]CartEntry)
		for _, entry := range view.CartEntries() {
			category := categoryFor(entry.Item, view)
			byCategory[category] = append(byCategory[category], entry)
		}
		present := make(map[string]bool, len(byCategory))
		for category := range byCategory {
			present[category] = true
		}
		for _, category := range orderCategories(present) {
			groups = append(groups, CategoryCart{Category: category, Entries: byCategory[category]})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}
