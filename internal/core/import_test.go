package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pantrycore/pkg/domain"
)

func seedImportFixture(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	if _, _, err := svc.SavePreference(ctx, "Whole Milk", "gallon", "Fairlife"); err != nil {
		t.Fatalf("seed preference: %v", err)
	}
	if _, err := svc.AddCustomBrand(ctx, "milk", "Oberweis"); err != nil {
		t.Fatalf("seed custom brand: %v", err)
	}
	if _, err := svc.HideItem(ctx, "Apples"); err != nil {
		t.Fatalf("seed hidden item: %v", err)
	}
	if _, _, err := svc.AddCustomItem(ctx, "Bulk", "Rolled Oats", "lb"); err != nil {
		t.Fatalf("seed custom item: %v", err)
	}
}

func TestImportReplaceOnlyTouchesPresentDocuments(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	payload := []byte(`{"preferences": {"2% Milk": {"unit": "half gal", "brand": ""}}}`)
	summary, _, err := svc.Import(ctx, payload, ImportReplace)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.Mode != ImportReplace || summary.PreferencesApplied != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	if len(bundle.Preferences) != 1 || bundle.Preferences["2% Milk"].Unit != "half gal" {
		t.Fatalf("expected replaced preferences, got %v", bundle.Preferences)
	}
	if got := bundle.CustomBrands["milk"]; len(got) != 1 || got[0] != "Oberweis" {
		t.Fatalf("absent document must stay untouched, got %v", bundle.CustomBrands)
	}
	if len(bundle.HiddenItems) != 1 || bundle.HiddenItems[0] != "Apples" {
		t.Fatalf("absent document must stay untouched, got %v", bundle.HiddenItems)
	}
	if bundle.CustomItems["Bulk"]["Rolled Oats"] != "lb" {
		t.Fatalf("absent document must stay untouched, got %v", bundle.CustomItems)
	}
}

func TestImportReplaceNullDocumentLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	summary, _, err := svc.Import(ctx, []byte(`{"preferences": null}`), ImportReplace)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.PreferencesApplied != 0 {
		t.Fatalf("null document must not apply, got %+v", summary)
	}
	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	if bundle.Preferences["Whole Milk"].Unit != "gallon" {
		t.Fatalf("expected seeded preference intact, got %v", bundle.Preferences)
	}
}

func TestImportReplaceWholeBackup(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	payload := []byte(`{
		"preferences": {"Skim Milk": {"unit": "quart", "brand": ""}},
		"custom_brands": {"milk": ["Kalona"], "yogurt": ["Chobani"]},
		"hidden_items": ["Bananas", "Bananas", "Apples"],
		"custom_items": {"Bulk": {"Quinoa": "lb"}, "Garden": {"Basil Plant": "each"}}
	}`)
	summary, _, err := svc.Import(ctx, payload, ImportReplace)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.PreferencesApplied != 1 || summary.CustomBrandsAdded != 2 || summary.HiddenItemsApplied != 2 || summary.CustomItemsAdded != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	if len(bundle.Preferences) != 1 || bundle.Preferences["Skim Milk"].Unit != "quart" {
		t.Fatalf("expected replaced preferences, got %v", bundle.Preferences)
	}
	// Replace applies documents verbatim: a group unknown to the static
	// catalog is restored as-is.
	if got := bundle.CustomBrands["yogurt"]; len(got) != 1 || got[0] != "Chobani" {
		t.Fatalf("expected restored group, got %v", bundle.CustomBrands)
	}
	if got := bundle.CustomBrands["milk"]; len(got) != 1 || got[0] != "Kalona" {
		t.Fatalf("expected replaced group, got %v", bundle.CustomBrands)
	}
	if len(bundle.HiddenItems) != 2 || bundle.HiddenItems[0] != "Bananas" || bundle.HiddenItems[1] != "Apples" {
		t.Fatalf("expected deduplicated hidden items, got %v", bundle.HiddenItems)
	}
	if _, ok := bundle.CustomItems["Bulk"]["Rolled Oats"]; ok {
		t.Fatalf("replace must drop prior custom items, got %v", bundle.CustomItems)
	}
	if bundle.CustomItems["Garden"]["Basil Plant"] != "each" {
		t.Fatalf("expected restored custom item, got %v", bundle.CustomItems)
	}
}

func TestImportReplaceMalformedDocumentIsAtomic(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	// Preferences decode fine and would be applied first; the malformed brand
	// document must roll the whole transaction back.
	payload := []byte(`{
		"preferences": {"Skim Milk": {"unit": "quart", "brand": ""}},
		"custom_brands": {"milk": "not-a-list"}
	}`)
	_, _, err := svc.Import(ctx, payload, ImportReplace)
	if !errors.Is(err, domain.ErrInvalidImport) {
		t.Fatalf("expected invalid import, got %v", err)
	}
	var ie *domain.ImportError
	if !errors.As(err, &ie) || !strings.Contains(ie.Reason, "custom brands") {
		t.Fatalf("unexpected import error: %v", err)
	}

	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	if _, ok := bundle.Preferences["Skim Milk"]; ok {
		t.Fatalf("rejected import must not partially apply, got %v", bundle.Preferences)
	}
	if bundle.Preferences["Whole Milk"].Unit != "gallon" {
		t.Fatalf("expected seeded preference intact, got %v", bundle.Preferences)
	}
}

func TestImportRejectsNonObjectPayload(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, payload := range []string{`[]`, `"scan"`, `{"preferences":`} {
		if _, _, err := svc.Import(ctx, []byte(payload), ImportReplace); !errors.Is(err, domain.ErrInvalidImport) {
			t.Fatalf("payload %q: expected invalid import, got %v", payload, err)
		}
	}
}

func TestImportRejectsUnknownMode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, _, err := svc.Import(ctx, []byte(`{}`), ImportMode("upsert"))
	if !errors.Is(err, domain.ErrInvalidImport) {
		t.Fatalf("expected invalid import, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown import mode") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestImportMergeSkipsMalformedPreferenceRecords(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	payload := []byte(`{"preferences": {
		"2% Milk": {"unit": "quart", "brand": "Oberweis"},
		"Skim Milk": {"unit": "quart"},
		"Eggs (Large)": 7
	}}`)
	summary, _, err := svc.Import(ctx, payload, ImportMerge)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.PreferencesApplied != 1 || summary.PreferencesSkipped != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	if bundle.Preferences["2% Milk"].Brand != "Oberweis" {
		t.Fatalf("expected merged record, got %v", bundle.Preferences)
	}
	if bundle.Preferences["Whole Milk"].Unit != "gallon" {
		t.Fatalf("merge must keep existing records, got %v", bundle.Preferences)
	}
	if _, ok := bundle.Preferences["Skim Milk"]; ok {
		t.Fatalf("incomplete record must be skipped, got %v", bundle.Preferences)
	}
}

func TestImportMergeUnionsCustomBrands(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	// Merging may introduce groups the static catalog does not know; bundles
	// are applied as documents, not per-group writes, so nothing blocks them.
	payload := []byte(`{"custom_brands": {"milk": ["Oberweis", "Kalona"], "cereal": ["Kashi"]}}`)
	summary, _, err := svc.Import(ctx, payload, ImportMerge)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.CustomBrandsAdded != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	milk := bundle.CustomBrands["milk"]
	if len(milk) != 2 || milk[0] != "Oberweis" || milk[1] != "Kalona" {
		t.Fatalf("expected union preserving existing order, got %v", milk)
	}
	if got := bundle.CustomBrands["cereal"]; len(got) != 1 || got[0] != "Kashi" {
		t.Fatalf("expected imported group, got %v", bundle.CustomBrands)
	}
}

func TestImportMergeSkipsMasterListCustomItems(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	payload := []byte(`{"custom_items": {"Bulk": {"Apples": "lb", "Dragonfruit": "each"}}}`)
	summary, _, err := svc.Import(ctx, payload, ImportMerge)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.CustomItemsAdded != 1 || summary.CustomItemsSkipped != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	if _, ok := bundle.CustomItems["Bulk"]["Apples"]; ok {
		t.Fatalf("master-list name must be skipped, got %v", bundle.CustomItems)
	}
	if bundle.CustomItems["Bulk"]["Dragonfruit"] != "each" {
		t.Fatalf("expected merged item, got %v", bundle.CustomItems)
	}
	if bundle.CustomItems["Bulk"]["Rolled Oats"] != "lb" {
		t.Fatalf("merge must keep existing items, got %v", bundle.CustomItems)
	}
}

func TestImportMergeNeverTouchesHiddenItems(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seedImportFixture(t, svc)

	summary, _, err := svc.Import(ctx, []byte(`{"hidden_items": ["Bananas"]}`), ImportMerge)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.HiddenItemsApplied != 0 {
		t.Fatalf("merge must ignore hidden items, got %+v", summary)
	}

	bundle, err := svc.ExportBundle(ctx)
	if err != nil {
		t.Fatalf("export bundle: %v", err)
	}
	if len(bundle.HiddenItems) != 1 || bundle.HiddenItems[0] != "Apples" {
		t.Fatalf("hidden items must stay untouched, got %v", bundle.HiddenItems)
	}
}
