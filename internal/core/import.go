package core

import (
	"bytes"
	"encoding/json"
	"sort"

	"pantrycore/pkg/catalog"
	"pantrycore/pkg/domain"
)

// rawBundle defers per-document decoding so replace and merge can apply their
// own strictness to each document independently.
type rawBundle struct {
	Preferences  json.RawMessage `json:"preferences"`
	CustomBrands json.RawMessage `json:"custom_brands"`
	HiddenItems  json.RawMessage `json:"hidden_items"`
	CustomItems  json.RawMessage `json:"custom_items"`
}

func decodeRawBundle(payload []byte) (rawBundle, error) {
	var bundle rawBundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return rawBundle{}, &domain.ImportError{Reason: "payload is not a JSON object", Err: err}
	}
	return bundle, nil
}

// docPresent treats a missing key and an explicit null the same: the document
// stays untouched.
func docPresent(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// applyReplace wholesale-replaces each document present in the bundle. A
// document that fails to decode rejects the whole import.
func applyReplace(tx Transaction, bundle rawBundle, summary *ImportSummary) error {
	if docPresent(bundle.Preferences) {
		var set PreferenceSet
		if err := json.Unmarshal(bundle.Preferences, &set); err != nil {
			return &domain.ImportError{Reason: "preferences document is malformed", Err: err}
		}
		tx.ReplacePreferences(set)
		summary.PreferencesApplied = len(set)
	}
	if docPresent(bundle.CustomBrands) {
		var set CustomBrandSet
		if err := json.Unmarshal(bundle.CustomBrands, &set); err != nil {
			return &domain.ImportError{Reason: "custom brands document is malformed", Err: err}
		}
		tx.ReplaceCustomBrands(set)
		for _, brands := range set {
			summary.CustomBrandsAdded += len(brands)
		}
	}
	if docPresent(bundle.HiddenItems) {
		var list HiddenItemSet
		if err := json.Unmarshal(bundle.HiddenItems, &list); err != nil {
			return &domain.ImportError{Reason: "hidden items document is malformed", Err: err}
		}
		// Hidden items carry set semantics: duplicates collapse on restore.
		seen := make(map[string]struct{}, len(list))
		deduped := make(HiddenItemSet, 0, len(list))
		for _, item := range list {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			deduped = append(deduped, item)
		}
		tx.ReplaceHiddenItems(deduped)
		summary.HiddenItemsApplied = len(deduped)
	}
	if docPresent(bundle.CustomItems) {
		var set CustomItemSet
		if err := json.Unmarshal(bundle.CustomItems, &set); err != nil {
			return &domain.ImportError{Reason: "custom items document is malformed", Err: err}
		}
		tx.ReplaceCustomItems(set)
		for _, items := range set {
			summary.CustomItemsAdded += len(items)
		}
	}
	return nil
}

// applyMerge folds the bundle into existing state. Preference records missing
// a unit or brand field are skipped silently; custom brands union into their
// group after the existing list; custom items are dropped when their name
// already exists in the master list. Hidden items are never merged: scan
// bundles carry them only for whole-backup restores.
func applyMerge(tx Transaction, bundle rawBundle, summary *ImportSummary) error {
	view := tx.Snapshot()
	if docPresent(bundle.Preferences) {
		var records map[string]json.RawMessage
		if err := json.Unmarshal(bundle.Preferences, &records); err != nil {
			return &domain.ImportError{Reason: "preferences document is malformed", Err: err}
		}
		merged := view.Preferences()
		for _, item := range sortedKeys(records) {
			var rec struct {
				Unit  *string `json:"unit"`
				Brand *string `json:"brand"`
			}
			if err := json.Unmarshal(records[item], &rec); err != nil || rec.Unit == nil || rec.Brand == nil {
				summary.PreferencesSkipped++
				continue
			}
			merged[item] = Preference{Unit: *rec.Unit, Brand: *rec.Brand}
			summary.PreferencesApplied++
		}
		tx.ReplacePreferences(merged)
	}
	if docPresent(bundle.CustomBrands) {
		var imported CustomBrandSet
		if err := json.Unmarshal(bundle.CustomBrands, &imported); err != nil {
			return &domain.ImportError{Reason: "custom brands document is malformed", Err: err}
		}
		merged := view.CustomBrands()
		for _, group := range sortedKeys(imported) {
			existing := merged[group]
			seen := make(map[string]struct{}, len(existing))
			for _, brand := range existing {
				seen[brand] = struct{}{}
			}
			for _, brand := range imported[group] {
				if _, dup := seen[brand]; dup {
					continue
				}
				existing = append(existing, brand)
				seen[brand] = struct{}{}
				summary.CustomBrandsAdded++
			}
			merged[group] = existing
		}
		tx.ReplaceCustomBrands(merged)
	}
	if docPresent(bundle.CustomItems) {
		var imported CustomItemSet
		if err := json.Unmarshal(bundle.CustomItems, &imported); err != nil {
			return &domain.ImportError{Reason: "custom items document is malformed", Err: err}
		}
		merged := view.CustomItems()
		for _, category := range sortedKeys(imported) {
			items := imported[category]
			dst := merged[category]
			if dst == nil {
				dst = make(map[string]string, len(items))
			}
			for _, name := range sortedKeys(items) {
				if catalog.Contains(name) {
					summary.CustomItemsSkipped++
					continue
				}
				dst[name] = items[name]
				summary.CustomItemsAdded++
			}
			merged[category] = dst
		}
		tx.ReplaceCustomItems(merged)
	}
	return nil
}
