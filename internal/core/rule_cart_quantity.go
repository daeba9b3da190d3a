package core

import (
	"context"
	"fmt"

	"pantrycore/pkg/domain"
)

// NewCartQuantityRule returns the default in-transaction rule rejecting cart
// writes that would commit a non-positive quantity.
func NewCartQuantityRule() domain.Rule {
	return cartQuantityRule{}
}

type cartQuantityRule struct{}

func (cartQuantityRule) Name() string { return "cart_quantity_positive" }

func (cartQuantityRule) Evaluate(_ context.Context, _ domain.TransactionView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Entity != domain.EntityCartEntry || change.Action == domain.ActionDelete {
			continue
		}
		entry, ok := change.After.(domain.CartEntry)
		if !ok {
			continue
		}
		if entry.Quantity > 0 {
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     "cart_quantity_positive",
			Severity: domain.SeverityBlock,
			Message:  fmt.Sprintf("cart entry %s (%s) has non-positive quantity %d", entry.Item, entry.ID, entry.Quantity),
			Entity:   domain.EntityCartEntry,
			EntityID: entry.ID,
		})
	}
	return res, nil
}
