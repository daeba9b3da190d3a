package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestPersistedStateCloneIsolation(t *testing.T) {
	state := NewPersistedState()
	state.Preferences["Whole Milk"] = Preference{Unit: "gallon", Brand: "Kirkland"}
	state.CustomBrands["milk"] = []string{"Fairlife"}
	state.HiddenItems = HiddenItemSet{"Anchovies"}
	state.CustomItems["Snacks"] = map[string]string{"Trail Mix": "bag"}

	clone := state.Clone()
	clone.Preferences["Whole Milk"] = Preference{Unit: "quart", Brand: ""}
	clone.CustomBrands["milk"][0] = "mutated"
	clone.HiddenItems[0] = "mutated"
	clone.CustomItems["Snacks"]["Trail Mix"] = "mutated"

	if state.Preferences["Whole Milk"].Unit != "gallon" {
		t.Fatalf("clone aliased preferences")
	}
	if state.CustomBrands["milk"][0] != "Fairlife" {
		t.Fatalf("clone aliased custom brands")
	}
	if state.HiddenItems[0] != "Anchovies" {
		t.Fatalf("clone aliased hidden items")
	}
	if state.CustomItems["Snacks"]["Trail Mix"] != "bag" {
		t.Fatalf("clone aliased custom items")
	}
}

func TestBackupBundleDistinguishesAbsentDocuments(t *testing.T) {
	var bundle BackupBundle
	if err := json.Unmarshal([]byte(`{"preferences":{}}`), &bundle); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if bundle.Preferences == nil {
		t.Fatalf("present empty document decoded as nil")
	}
	if bundle.CustomBrands != nil || bundle.HiddenItems != nil || bundle.CustomItems != nil {
		t.Fatalf("absent documents must decode as nil, got %+v", bundle)
	}
}

func TestHiddenItemSetContains(t *testing.T) {
	set := HiddenItemSet{"Anchovies", "Liver"}
	if !set.Contains("Liver") {
		t.Fatalf("expected membership")
	}
	if set.Contains("Apples") {
		t.Fatalf("unexpected membership")
	}
}

func TestImportModeValid(t *testing.T) {
	if !ImportReplace.Valid() || !ImportMerge.Valid() {
		t.Fatalf("canonical modes rejected")
	}
	if ImportMode("upsert").Valid() {
		t.Fatalf("unknown mode accepted")
	}
}

func TestImportErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("import: %w", &ImportError{Reason: "payload is not an object"})
	if !errors.Is(err, ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport match")
	}
	var ie *ImportError
	if !errors.As(err, &ie) || ie.Reason != "payload is not an object" {
		t.Fatalf("expected typed import error, got %v", err)
	}
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	inner := errors.New("disk full")
	err := fmt.Errorf("save: %w", &PersistenceError{Op: "file", Err: inner})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected typed persistence error")
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected unwrap to inner error")
	}
}

func TestNormalizeAllocatesDocuments(t *testing.T) {
	var state PersistedState
	state.Normalize()
	if state.Preferences == nil || state.CustomBrands == nil || state.HiddenItems == nil || state.CustomItems == nil {
		t.Fatalf("normalize left nil documents: %+v", state)
	}
}
