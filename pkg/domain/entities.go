// Package domain defines the persistent entities, value types, and rule
// evaluation primitives shared by the salescore service layer.
package domain

import "time"

// EntityType identifies the type of record stored in the sales domain.
type EntityType string

// Supported entity type identifiers used in Change records, audit operations
// and persistence buckets.
const (
	// EntityBank identifies a bank record.
	EntityBank EntityType = "bank"
	// EntityBankAccount identifies a bank account record.
	EntityBankAccount EntityType = "bank_account"
	// EntityBrand identifies a commercial brand record.
	EntityBrand EntityType = "brand"
	// EntityChannel identifies a sales channel record.
	EntityChannel EntityType = "channel"
	// EntitySource identifies a lead source record.
	EntitySource EntityType = "source"
	// EntityPaymentRule identifies a payment rule record.
	EntityPaymentRule EntityType = "payment_rule"
	// EntityPriceList identifies a price list record.
	EntityPriceList EntityType = "price_list"
	// EntityItem identifies a sellable item record.
	EntityItem EntityType = "item"
	// EntityPriceItem identifies a price list entry record.
	EntityPriceItem EntityType = "price_item"
	// EntityPerson identifies a person record.
	EntityPerson EntityType = "person"
	// EntityCustomer identifies a customer record.
	EntityCustomer EntityType = "customer"
	// EntityHolding identifies a customer holding record.
	EntityHolding EntityType = "holding"
	// EntityProposal identifies a sales proposal record.
	EntityProposal EntityType = "proposal"
	// EntityProposalDetail identifies a proposal detail record.
	EntityProposalDetail EntityType = "proposal_detail"
	// EntityProposalCommission identifies a proposal commission record.
	EntityProposalCommission EntityType = "proposal_commission"
	// EntityUser identifies an application user record.
	EntityUser EntityType = "user"
	// EntityAccessList identifies an access list record.
	EntityAccessList EntityType = "access_list"
	// EntityMenu identifies a navigation menu record.
	EntityMenu EntityType = "menu"
	// EntityQualification identifies a qualification tree node record.
	EntityQualification EntityType = "qualification"
	// EntityCountry identifies a country reference record.
	EntityCountry EntityType = "country"
	// EntityState identifies a state reference record.
	EntityState EntityType = "state"
	// EntityDocument identifies a commercial document record.
	EntityDocument EntityType = "document"
)

// Base contains the common fields for all domain records. A record with a
// zero identifier is considered new; persistence assigns the surrogate id.
type Base struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the surrogate identifier.
func (b Base) RecordID() int64 { return b.ID }

// IsNew reports whether the record has not been persisted yet.
func (b Base) IsNew() bool { return b.ID <= 0 }

// Record is the read-only contract every persisted entity satisfies.
type Record interface {
	RecordID() int64
	Kind() EntityType
}

// Bank is a financial institution referenced by bank accounts.
type Bank struct {
	Base
	Name string `json:"name"`
	Code string `json:"code"`
}

// Kind implements Record.
func (Bank) Kind() EntityType { return EntityBank }

// BankAccount links a person to an account held at a bank.
type BankAccount struct {
	Base
	PersonID int64  `json:"person_id"`
	BankID   int64  `json:"bank_id"`
	Agency   string `json:"agency"`
	Number   string `json:"number"`
}

// Kind implements Record.
func (BankAccount) Kind() EntityType { return EntityBankAccount }

// Brand is a commercial brand sold through channels.
type Brand struct {
	Base
	Name string `json:"name"`
}

// Kind implements Record.
func (Brand) Kind() EntityType { return EntityBrand }

// Channel is a sales channel.
type Channel struct {
	Base
	Name string `json:"name"`
}

// Kind implements Record.
func (Channel) Kind() EntityType { return EntityChannel }

// Source is a lead source.
type Source struct {
	Base
	Name string `json:"name"`
}

// Kind implements Record.
func (Source) Kind() EntityType { return EntitySource }

// PaymentRule describes an installment/payment configuration. Its natural
// key is the name plus payment method tuple.
type PaymentRule struct {
	Base
	Name         string  `json:"name"`
	Method       string  `json:"method"`
	Installments int     `json:"installments"`
	Coefficient  float64 `json:"coefficient"`
	Active       bool    `json:"active"`
}

// Kind implements Record.
func (PaymentRule) Kind() EntityType { return EntityPaymentRule }

// PriceList groups price items negotiated for a period.
type PriceList struct {
	Base
	Name string `json:"name"`
}

// Kind implements Record.
func (PriceList) Kind() EntityType { return EntityPriceList }

// Item is a sellable product or service.
type Item struct {
	Base
	Name string `json:"name"`
}

// Kind implements Record.
func (Item) Kind() EntityType { return EntityItem }

// PriceItem prices one item inside one price list. Its natural key is the
// price-list/item pair.
type PriceItem struct {
	Base
	PriceListID int64   `json:"price_list_id"`
	ItemID      int64   `json:"item_id"`
	Price       float64 `json:"price"`
}

// Kind implements Record.
func (PriceItem) Kind() EntityType { return EntityPriceItem }

// Person is an individual referenced by bank accounts and proposal details.
type Person struct {
	Base
	Name     string `json:"name"`
	Document string `json:"document"`
}

// Kind implements Record.
func (Person) Kind() EntityType { return EntityPerson }

// Customer is a buying organization or individual account.
type Customer struct {
	Base
	Name string `json:"name"`
}

// Kind implements Record.
func (Customer) Kind() EntityType { return EntityCustomer }

// Holding groups customers under one corporate umbrella.
type Holding struct {
	Base
	Name        string  `json:"name"`
	CustomerIDs []int64 `json:"customer_ids"`
}

// Kind implements Record.
func (Holding) Kind() EntityType { return EntityHolding }

// Proposal is a commercial sales proposal negotiated on a channel for a brand.
type Proposal struct {
	Base
	Number    string `json:"number"`
	ChannelID int64  `json:"channel_id"`
	BrandID   int64  `json:"brand_id"`
	Status    string `json:"status"`
}

// Kind implements Record.
func (Proposal) Kind() EntityType { return EntityProposal }

// ProposalDetail attaches a document and a responsible person to a proposal.
type ProposalDetail struct {
	Base
	ProposalID int64 `json:"proposal_id"`
	DocumentID int64 `json:"document_id"`
	PersonID   int64 `json:"person_id"`
}

// Kind implements Record.
func (ProposalDetail) Kind() EntityType { return EntityProposalDetail }

// ProposalCommission records a commission computed for a proposal.
type ProposalCommission struct {
	Base
	ProposalID int64   `json:"proposal_id"`
	Value      float64 `json:"value"`
}

// Kind implements Record.
func (ProposalCommission) Kind() EntityType { return EntityProposalCommission }

// User is an application user. Username is the natural key.
type User struct {
	Base
	Username string `json:"username"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
}

// Kind implements Record.
func (User) Kind() EntityType { return EntityUser }

// AccessList grants a profile access to a set of menus.
type AccessList struct {
	Base
	Name    string  `json:"name"`
	MenuIDs []int64 `json:"menu_ids"`
}

// Kind implements Record.
func (AccessList) Kind() EntityType { return EntityAccessList }

// Menu is a navigation entry. A nil RootID marks a root menu; submenus carry
// a reference to their root. Ordering drives display order.
type Menu struct {
	Base
	Name     string `json:"name"`
	Route    string `json:"route"`
	Ordering int    `json:"ordering"`
	RootID   *int64 `json:"root_id"`
}

// Kind implements Record.
func (Menu) Kind() EntityType { return EntityMenu }

// Qualification is a node in the qualification hierarchy. A nil ParentID
// marks a root node.
type Qualification struct {
	Base
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// Kind implements Record.
func (Qualification) Kind() EntityType { return EntityQualification }

// Country is read-mostly reference data.
type Country struct {
	Base
	Name string `json:"name"`
	Code string `json:"code"`
}

// Kind implements Record.
func (Country) Kind() EntityType { return EntityCountry }

// State is read-mostly reference data scoped to a country.
type State struct {
	Base
	Name      string `json:"name"`
	CountryID int64  `json:"country_id"`
}

// Kind implements Record.
func (State) Kind() EntityType { return EntityState }

// Document is a commercial document referenced by proposal details.
type Document struct {
	Base
	Number string `json:"number"`
}

// Kind implements Record.
func (Document) Kind() EntityType { return EntityDocument }

// Actor is the authenticated profile performing a mutating operation. Every
// mutating service call and every audit record requires one.
type Actor struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	RemoteAddr string `json:"remote_addr,omitempty"`
	RemoteHost string `json:"remote_host,omitempty"`
}

// Valid reports whether the actor carries enough identity to be audited.
func (a Actor) Valid() bool { return a.UserID > 0 && a.Username != "" }

// Change describes a mutation applied to an entity during a transaction.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate the CRUD operations captured in the audit trail.
const (
	// ActionCreate indicates an entity was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates an entity was updated.
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID int64
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// PageSpec controls list/search pagination. The zero value means "default
// paging": every row, sorted descending by surrogate id.
type PageSpec struct {
	Limit   int
	Offset  int
	SortAsc bool
}

// IsDefault reports whether the spec is the zero value placeholder.
func (p PageSpec) IsDefault() bool { return p == PageSpec{} }
