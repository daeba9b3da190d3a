package domain

import (
	"context"
	"fmt"
)

// Rule inspects the staged changes of a transaction against a read-only view
// of session state and reports violations. A blocking violation aborts the
// commit that produced the changes.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, view TransactionView, changes []Change) (Result, error)
}

// RulesEngine runs every registered rule on each commit, in registration
// order, and folds their findings into one result.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine returns an engine with no rules registered.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Register adds a rule to the evaluation set. Nil rules are ignored.
func (e *RulesEngine) Register(rule Rule) {
	if rule == nil {
		return
	}
	e.rules = append(e.rules, rule)
}

// Evaluate accumulates the violations of all registered rules. A rule error
// stops evaluation and is reported with the rule's name; partial findings
// from earlier rules are discarded.
func (e *RulesEngine) Evaluate(ctx context.Context, view TransactionView, changes []Change) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, view, changes)
		if err != nil {
			return Result{}, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
		combined.Merge(res)
	}
	return combined, nil
}
