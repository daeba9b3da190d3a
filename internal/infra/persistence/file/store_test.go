package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pantrycore/pkg/domain"
)

func TestStoreRoundTripsDocuments(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, domain.NewRulesEngine())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if store.Dir() != dir {
		t.Fatalf("unexpected dir %q", store.Dir())
	}

	ctx := context.Background()
	if _, err := store.RunInTransaction(ctx, func(tx domain.Transaction) error {
		tx.SetPreference("Whole Milk", domain.Preference{Unit: "gallon", Brand: "Fairlife"})
		tx.SetGroupBrands("milk", []string{"Oberweis"})
		tx.HideItem("Apples")
		tx.SetCustomItem("Bulk", "Rolled Oats", "lb")
		return nil
	}); err != nil {
		t.Fatalf("RunInTransaction: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	for _, name := range []string{preferencesFile, customBrandsFile, hiddenItemsFile, customItemsFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing document %s: %v", name, err)
		}
	}

	reopened, err := NewStore(dir, domain.NewRulesEngine())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	state := reopened.ExportState()
	if state.Preferences["Whole Milk"].Unit != "gallon" || state.Preferences["Whole Milk"].Brand != "Fairlife" {
		t.Fatalf("unexpected preferences: %v", state.Preferences)
	}
	if got := state.CustomBrands["milk"]; len(got) != 1 || got[0] != "Oberweis" {
		t.Fatalf("unexpected custom brands: %v", state.CustomBrands)
	}
	if len(state.HiddenItems) != 1 || state.HiddenItems[0] != "Apples" {
		t.Fatalf("unexpected hidden items: %v", state.HiddenItems)
	}
	if state.CustomItems["Bulk"]["Rolled Oats"] != "lb" {
		t.Fatalf("unexpected custom items: %v", state.CustomItems)
	}
}

func TestStoreToleratesCorruptDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, preferencesFile, `{"Whole Milk": {"unit": "quart", "brand": ""}}`)
	writeFixture(t, dir, customBrandsFile, `{not json`)
	writeFixture(t, dir, hiddenItemsFile, `["Apples"`)

	store, err := NewStore(dir, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	state := store.ExportState()
	if state.Preferences["Whole Milk"].Unit != "quart" {
		t.Fatalf("valid document must load, got %v", state.Preferences)
	}
	if len(state.CustomBrands) != 0 || len(state.HiddenItems) != 0 {
		t.Fatalf("corrupt documents must start empty, got %v %v", state.CustomBrands, state.HiddenItems)
	}
}

func TestStoreStartsEmptyWithoutDocuments(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	state := store.ExportState()
	if len(state.Preferences) != 0 || len(state.CustomBrands) != 0 || len(state.HiddenItems) != 0 || len(state.CustomItems) != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
}

func TestStoreCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewStore(dir, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
	if _, err := store.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		tx.HideItem("Apples")
		return nil
	}); err != nil {
		t.Fatalf("RunInTransaction: %v", err)
	}
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}
