package core

import "salescore/pkg/domain"

type (
	EntityType         = domain.EntityType
	Action             = domain.Action
	Severity           = domain.Severity
	Base               = domain.Base
	Record             = domain.Record
	Actor              = domain.Actor
	Bank               = domain.Bank
	BankAccount        = domain.BankAccount
	Brand              = domain.Brand
	Channel            = domain.Channel
	Source             = domain.Source
	PaymentRule        = domain.PaymentRule
	PriceList          = domain.PriceList
	Item               = domain.Item
	PriceItem          = domain.PriceItem
	Person             = domain.Person
	Customer           = domain.Customer
	Holding            = domain.Holding
	Proposal           = domain.Proposal
	ProposalDetail     = domain.ProposalDetail
	ProposalCommission = domain.ProposalCommission
	User               = domain.User
	AccessList         = domain.AccessList
	Menu               = domain.Menu
	Qualification      = domain.Qualification
	Country            = domain.Country
	State              = domain.State
	Document           = domain.Document
	Change             = domain.Change
	Violation          = domain.Violation
	Result             = domain.Result
	Rule               = domain.Rule
	RuleView           = domain.RuleView
	RulesEngine        = domain.RulesEngine
	RuleViolationError = domain.RuleViolationError
	PageSpec           = domain.PageSpec
	Transaction        = domain.Transaction
	PersistentStore    = domain.PersistentStore
)

const (
	EntityBank               = domain.EntityBank
	EntityBankAccount        = domain.EntityBankAccount
	EntityBrand              = domain.EntityBrand
	EntityChannel            = domain.EntityChannel
	EntitySource             = domain.EntitySource
	EntityPaymentRule        = domain.EntityPaymentRule
	EntityPriceList          = domain.EntityPriceList
	EntityItem               = domain.EntityItem
	EntityPriceItem          = domain.EntityPriceItem
	EntityPerson             = domain.EntityPerson
	EntityCustomer           = domain.EntityCustomer
	EntityHolding            = domain.EntityHolding
	EntityProposal           = domain.EntityProposal
	EntityProposalDetail     = domain.EntityProposalDetail
	EntityProposalCommission = domain.EntityProposalCommission
	EntityUser               = domain.EntityUser
	EntityAccessList         = domain.EntityAccessList
	EntityMenu               = domain.EntityMenu
	EntityQualification      = domain.EntityQualification
	EntityCountry            = domain.EntityCountry
	EntityState              = domain.EntityState
	EntityDocument           = domain.EntityDocument
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
	ActionDelete = domain.ActionDelete
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

// NewRulesEngine re-exports the domain constructor for callers wiring custom
// rule sets.
func NewRulesEngine() *RulesEngine { return domain.NewRulesEngine() }
