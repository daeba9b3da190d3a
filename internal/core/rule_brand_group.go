package core

import (
	"context"
	"fmt"

	"pantrycore/pkg/catalog"
	"pantrycore/pkg/domain"
)

// NewBrandGroupRule returns the rule requiring per-group custom-brand writes
// to name a brand group that exists in the compiled-in catalog. Whole-document
// restores are exempt: imported state is applied verbatim.
func NewBrandGroupRule() domain.Rule {
	return brandGroupRule{}
}

type brandGroupRule struct{}

func (brandGroupRule) Name() string { return "custom_brand_group_known" }

func (brandGroupRule) Evaluate(_ context.Context, _ domain.TransactionView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Entity != domain.EntityCustomBrand || change.Action == domain.ActionDelete {
			continue
		}
		list, ok := change.After.(domain.GroupBrandList)
		if !ok {
			continue
		}
		if catalog.HasGroup(list.Group) {
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     "custom_brand_group_known",
			Severity: domain.SeverityBlock,
			Message:  fmt.Sprintf("brand group %q is not part of the catalog", list.Group),
			Entity:   domain.EntityCustomBrand,
			EntityID: list.Group,
		})
	}
	return res, nil
}
