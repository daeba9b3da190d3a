package core

import (
	"context"
	"testing"

	"pantrycore/pkg/domain"
)

func TestCartQuantityRuleBlocksNonPositiveQuantities(t *testing.T) {
	rule := NewCartQuantityRule()
	if rule.Name() != "cart_quantity_positive" {
		t.Fatalf("unexpected rule name %q", rule.Name())
	}

	changes := []Change{
		{Entity: EntityCartEntry, Action: ActionCreate, After: domain.CartEntry{ID: "a", Item: "Apples", Quantity: 0}},
		{Entity: EntityCartEntry, Action: ActionUpdate, After: domain.CartEntry{ID: "b", Item: "Bananas", Quantity: 2}},
		{Entity: EntityCartEntry, Action: ActionDelete, Before: domain.CartEntry{ID: "c", Quantity: 0}},
		{Entity: EntityState, Action: ActionUpdate},
	}
	res, err := rule.Evaluate(context.Background(), nil, changes)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 1 {
		t.Fatalf("expected one violation, got %+v", res.Violations)
	}
	v := res.Violations[0]
	if v.Rule != "cart_quantity_positive" || v.Severity != SeverityBlock || v.EntityID != "a" {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestBrandGroupRuleChecksCatalogGroups(t *testing.T) {
	rule := NewBrandGroupRule()
	if rule.Name() != "custom_brand_group_known" {
		t.Fatalf("unexpected rule name %q", rule.Name())
	}

	changes := []Change{
		{Entity: EntityCustomBrand, Action: ActionCreate, After: domain.GroupBrandList{Group: "milk", Brands: []string{"Oberweis"}}},
		{Entity: EntityCustomBrand, Action: ActionCreate, After: domain.GroupBrandList{Group: "cereal", Brands: []string{"Kashi"}}},
		{Entity: EntityCustomBrand, Action: ActionDelete, Before: domain.GroupBrandList{Group: "lost"}},
		{Entity: EntityState, Action: ActionUpdate, After: domain.NewPersistedState()},
	}
	res, err := rule.Evaluate(context.Background(), nil, changes)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 1 {
		t.Fatalf("expected one violation, got %+v", res.Violations)
	}
	v := res.Violations[0]
	if v.Rule != "custom_brand_group_known" || v.Severity != SeverityBlock || v.EntityID != "cereal" {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestDefaultRulesEngineAggregatesViolations(t *testing.T) {
	engine := NewDefaultRulesEngine()
	changes := []Change{
		{Entity: EntityCartEntry, Action: ActionCreate, After: domain.CartEntry{ID: "a", Item: "Apples", Quantity: -1}},
		{Entity: EntityCustomBrand, Action: ActionCreate, After: domain.GroupBrandList{Group: "cereal"}},
	}
	res, err := engine.Evaluate(context.Background(), nil, changes)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 2 {
		t.Fatalf("expected both rules to flag, got %+v", res.Violations)
	}
}
