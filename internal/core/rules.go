package core

import "pantrycore/pkg/domain"

// NewRulesEngine returns an empty engine. Callers register rules explicitly.
func NewRulesEngine() *RulesEngine {
	return domain.NewRulesEngine()
}

// NewDefaultRulesEngine wires up the stock policy rules every deployment runs.
func NewDefaultRulesEngine() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(NewCartQuantityRule())
	engine.Register(NewBrandGroupRule())
	return engine
}
