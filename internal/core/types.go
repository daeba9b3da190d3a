package core

import "pantrycore/pkg/domain"

type (
	EntityType          = domain.EntityType
	Severity            = domain.Severity
	Preference          = domain.Preference
	PreferenceSet       = domain.PreferenceSet
	CustomBrandSet      = domain.CustomBrandSet
	HiddenItemSet       = domain.HiddenItemSet
	CustomItemSet       = domain.CustomItemSet
	CartEntry           = domain.CartEntry
	PersistedState      = domain.PersistedState
	BackupBundle        = domain.BackupBundle
	ImportMode          = domain.ImportMode
	ImportSummary       = domain.ImportSummary
	PreferenceEntry     = domain.PreferenceEntry
	CustomBrandEntry    = domain.CustomBrandEntry
	GroupBrandList      = domain.GroupBrandList
	CustomItemEntry     = domain.CustomItemEntry
	HiddenItemEntry     = domain.HiddenItemEntry
	CategoryPreferences = domain.CategoryPreferences
	Change              = domain.Change
	Action              = domain.Action
	Violation           = domain.Violation
	Result              = domain.Result
	RuleViolationError  = domain.RuleViolationError
	Rule                = domain.Rule
	RulesEngine         = domain.RulesEngine
	Transaction         = domain.Transaction
	TransactionView     = domain.TransactionView
	PersistentStore     = domain.PersistentStore
)

const (
	EntityPreference  = domain.EntityPreference
	EntityCustomBrand = domain.EntityCustomBrand
	EntityHiddenItem  = domain.EntityHiddenItem
	EntityCustomItem  = domain.EntityCustomItem
	EntityCartEntry   = domain.EntityCartEntry
	EntityState       = domain.EntityState
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
	ActionDelete = domain.ActionDelete
)

const (
	ImportReplace = domain.ImportReplace
	ImportMerge   = domain.ImportMerge
)
