package core

import (
	"fmt"
	"strings"
)

// fieldRule checks one field of a record and returns a message when it fails.
type fieldRule struct {
	field string
	check func(Record) string
}

// naturalKey extracts a duplicate-detection key from a record. ok is false
// when the record does not carry enough data to form the key.
type naturalKey struct {
	name    string
	extract func(Record) (string, bool)
}

// reference declares a foreign-key field. Optional references are only
// checked when an id is present.
type reference struct {
	field    string
	entity   EntityType
	required bool
	id       func(Record) int64
	ids      func(Record) []int64
}

// dependent declares a table whose rows can block deletion of a record.
type dependent struct {
	entity EntityType
	refers func(Record, int64) bool
}

// descriptor carries everything the generic service and the default rules
// need to know about one entity.
type descriptor struct {
	entity      EntityType
	createRules []fieldRule
	updateRules []fieldRule
	naturalKeys []naturalKey
	references  []reference
	dependents  []dependent
	// skipAudit suppresses audit emission for specific actions, preserving
	// the historical behaviour of the reference-data and commission paths.
	skipAudit map[Action]bool
}

func requireString[T Record](field string, get func(T) string) fieldRule {
	return fieldRule{field: field, check: func(r Record) string {
		rec, ok := r.(T)
		if !ok {
			return ""
		}
		if strings.TrimSpace(get(rec)) == "" {
			return Message("error.field.required", field)
		}
		return ""
	}}
}

func requirePositive[T Record](field string, get func(T) float64) fieldRule {
	return fieldRule{field: field, check: func(r Record) string {
		rec, ok := r.(T)
		if !ok {
			return ""
		}
		if get(rec) <= 0 {
			return Message("error.field.positive", field)
		}
		return ""
	}}
}

func key[T Record](name string, get func(T) string) naturalKey {
	return naturalKey{name: name, extract: func(r Record) (string, bool) {
		rec, ok := r.(T)
		if !ok {
			return "", false
		}
		k := strings.TrimSpace(get(rec))
		return strings.ToLower(k), k != ""
	}}
}

func ref[T Record](field string, entity EntityType, required bool, get func(T) int64) reference {
	return reference{field: field, entity: entity, required: required, id: func(r Record) int64 {
		rec, ok := r.(T)
		if !ok {
			return 0
		}
		return get(rec)
	}}
}

func refList[T Record](field string, entity EntityType, get func(T) []int64) reference {
	return reference{field: field, entity: entity, required: false, ids: func(r Record) []int64 {
		rec, ok := r.(T)
		if !ok {
			return nil
		}
		return get(rec)
	}}
}

func dep[T Record](entity EntityType, refers func(T, int64) bool) dependent {
	return dependent{entity: entity, refers: func(r Record, id int64) bool {
		rec, ok := r.(T)
		if !ok {
			return false
		}
		return refers(rec, id)
	}}
}

func optID(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// descriptors is the per-entity registry. Dependent order is deliberate: the
// first dependent table with matching rows names the delete failure.
var descriptors = map[EntityType]*descriptor{
	EntityBank: {
		entity: EntityBank,
		createRules: []fieldRule{
			requireString("name", func(b Bank) string { return b.Name }),
			requireString("code", func(b Bank) string { return b.Code }),
		},
		updateRules: []fieldRule{
			requireString("name", func(b Bank) string { return b.Name }),
			requireString("code", func(b Bank) string { return b.Code }),
		},
		naturalKeys: []naturalKey{
			key("name", func(b Bank) string { return b.Name }),
			key("code", func(b Bank) string { return b.Code }),
		},
		dependents: []dependent{
			dep(EntityBankAccount, func(a BankAccount, id int64) bool { return a.BankID == id }),
		},
	},
	EntityBankAccount: {
		entity: EntityBankAccount,
		createRules: []fieldRule{
			requireString("number", func(a BankAccount) string { return a.Number }),
		},
		updateRules: []fieldRule{
			requireString("number", func(a BankAccount) string { return a.Number }),
		},
		naturalKeys: []naturalKey{
			{name: "bank and number", extract: func(r Record) (string, bool) {
				a, ok := r.(BankAccount)
				if !ok || a.BankID <= 0 || strings.TrimSpace(a.Number) == "" {
					return "", false
				}
				return fmt.Sprintf("%d:%s:%s", a.BankID, strings.ToLower(strings.TrimSpace(a.Agency)), strings.ToLower(strings.TrimSpace(a.Number))), true
			}},
		},
		references: []reference{
			ref("person", EntityPerson, true, func(a BankAccount) int64 { return a.PersonID }),
			ref("bank", EntityBank, true, func(a BankAccount) int64 { return a.BankID }),
		},
	},
	EntityBrand: {
		entity: EntityBrand,
		createRules: []fieldRule{
			requireString("name", func(b Brand) string { return b.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(b Brand) string { return b.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(b Brand) string { return b.Name }),
		},
		dependents: []dependent{
			dep(EntityProposal, func(p Proposal, id int64) bool { return p.BrandID == id }),
		},
	},
	EntityChannel: {
		entity: EntityChannel,
		createRules: []fieldRule{
			requireString("name", func(c Channel) string { return c.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(c Channel) string { return c.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(c Channel) string { return c.Name }),
		},
		dependents: []dependent{
			dep(EntityProposal, func(p Proposal, id int64) bool { return p.ChannelID == id }),
		},
	},
	EntitySource: {
		entity: EntitySource,
		createRules: []fieldRule{
			requireString("name", func(s Source) string { return s.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(s Source) string { return s.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(s Source) string { return s.Name }),
		},
	},
	EntityPaymentRule: {
		entity: EntityPaymentRule,
		createRules: []fieldRule{
			requireString("name", func(p PaymentRule) string { return p.Name }),
			requireString("method", func(p PaymentRule) string { return p.Method }),
		},
		updateRules: []fieldRule{
			requireString("name", func(p PaymentRule) string { return p.Name }),
			requireString("method", func(p PaymentRule) string { return p.Method }),
		},
		naturalKeys: []naturalKey{
			{name: "name and method", extract: func(r Record) (string, bool) {
				p, ok := r.(PaymentRule)
				if !ok || strings.TrimSpace(p.Name) == "" {
					return "", false
				}
				return strings.ToLower(strings.TrimSpace(p.Name)) + "|" + strings.ToLower(strings.TrimSpace(p.Method)), true
			}},
		},
	},
	EntityPriceList: {
		entity: EntityPriceList,
		createRules: []fieldRule{
			requireString("name", func(p PriceList) string { return p.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(p PriceList) string { return p.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(p PriceList) string { return p.Name }),
		},
		dependents: []dependent{
			dep(EntityPriceItem, func(pi PriceItem, id int64) bool { return pi.PriceListID == id }),
		},
	},
	EntityItem: {
		entity: EntityItem,
		createRules: []fieldRule{
			requireString("name", func(i Item) string { return i.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(i Item) string { return i.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(i Item) string { return i.Name }),
		},
		dependents: []dependent{
			dep(EntityPriceItem, func(pi PriceItem, id int64) bool { return pi.ItemID == id }),
		},
	},
	EntityPriceItem: {
		entity: EntityPriceItem,
		createRules: []fieldRule{
			requirePositive("price", func(p PriceItem) float64 { return p.Price }),
		},
		updateRules: []fieldRule{
			requirePositive("price", func(p PriceItem) float64 { return p.Price }),
		},
		naturalKeys: []naturalKey{
			{name: "price list and item", extract: func(r Record) (string, bool) {
				p, ok := r.(PriceItem)
				if !ok || p.PriceListID <= 0 || p.ItemID <= 0 {
					return "", false
				}
				return fmt.Sprintf("%d:%d", p.PriceListID, p.ItemID), true
			}},
		},
		references: []reference{
			ref("price list", EntityPriceList, true, func(p PriceItem) int64 { return p.PriceListID }),
			ref("item", EntityItem, true, func(p PriceItem) int64 { return p.ItemID }),
		},
	},
	EntityPerson: {
		entity: EntityPerson,
		createRules: []fieldRule{
			requireString("name", func(p Person) string { return p.Name }),
			requireString("document", func(p Person) string { return p.Document }),
		},
		updateRules: []fieldRule{
			requireString("name", func(p Person) string { return p.Name }),
			requireString("document", func(p Person) string { return p.Document }),
		},
		naturalKeys: []naturalKey{
			key("document", func(p Person) string { return p.Document }),
		},
		dependents: []dependent{
			dep(EntityBankAccount, func(a BankAccount, id int64) bool { return a.PersonID == id }),
			dep(EntityProposalDetail, func(d ProposalDetail, id int64) bool { return d.PersonID == id }),
		},
	},
	EntityCustomer: {
		entity: EntityCustomer,
		createRules: []fieldRule{
			requireString("name", func(c Customer) string { return c.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(c Customer) string { return c.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(c Customer) string { return c.Name }),
		},
		dependents: []dependent{
			dep(EntityHolding, func(h Holding, id int64) bool {
				for _, cid := range h.CustomerIDs {
					if cid == id {
						return true
					}
				}
				return false
			}),
		},
	},
	EntityHolding: {
		entity: EntityHolding,
		createRules: []fieldRule{
			requireString("name", func(h Holding) string { return h.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(h Holding) string { return h.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(h Holding) string { return h.Name }),
		},
		references: []reference{
			refList("customer", EntityCustomer, func(h Holding) []int64 { return h.CustomerIDs }),
		},
	},
	EntityProposal: {
		entity: EntityProposal,
		createRules: []fieldRule{
			requireString("number", func(p Proposal) string { return p.Number }),
		},
		updateRules: []fieldRule{
			requireString("number", func(p Proposal) string { return p.Number }),
		},
		naturalKeys: []naturalKey{
			key("number", func(p Proposal) string { return p.Number }),
		},
		references: []reference{
			ref("channel", EntityChannel, true, func(p Proposal) int64 { return p.ChannelID }),
			ref("brand", EntityBrand, true, func(p Proposal) int64 { return p.BrandID }),
		},
		dependents: []dependent{
			dep(EntityProposalDetail, func(d ProposalDetail, id int64) bool { return d.ProposalID == id }),
			dep(EntityProposalCommission, func(c ProposalCommission, id int64) bool { return c.ProposalID == id }),
		},
	},
	EntityProposalDetail: {
		entity: EntityProposalDetail,
		references: []reference{
			ref("proposal", EntityProposal, true, func(d ProposalDetail) int64 { return d.ProposalID }),
			ref("document", EntityDocument, true, func(d ProposalDetail) int64 { return d.DocumentID }),
			ref("person", EntityPerson, true, func(d ProposalDetail) int64 { return d.PersonID }),
		},
	},
	EntityProposalCommission: {
		entity: EntityProposalCommission,
		createRules: []fieldRule{
			requirePositive("value", func(c ProposalCommission) float64 { return c.Value }),
		},
		updateRules: []fieldRule{
			requirePositive("value", func(c ProposalCommission) float64 { return c.Value }),
		},
		references: []reference{
			ref("proposal", EntityProposal, true, func(c ProposalCommission) int64 { return c.ProposalID }),
		},
		skipAudit: map[Action]bool{ActionDelete: true},
	},
	EntityUser: {
		entity: EntityUser,
		createRules: []fieldRule{
			requireString("username", func(u User) string { return u.Username }),
			requireString("name", func(u User) string { return u.Name }),
		},
		updateRules: []fieldRule{
			requireString("username", func(u User) string { return u.Username }),
			requireString("name", func(u User) string { return u.Name }),
		},
		naturalKeys: []naturalKey{
			key("username", func(u User) string { return u.Username }),
		},
	},
	EntityAccessList: {
		entity: EntityAccessList,
		createRules: []fieldRule{
			requireString("name", func(a AccessList) string { return a.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(a AccessList) string { return a.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(a AccessList) string { return a.Name }),
		},
		references: []reference{
			refList("menu", EntityMenu, func(a AccessList) []int64 { return a.MenuIDs }),
		},
	},
	EntityMenu: {
		entity: EntityMenu,
		createRules: []fieldRule{
			requireString("name", func(m Menu) string { return m.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(m Menu) string { return m.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(m Menu) string { return m.Name }),
		},
		references: []reference{
			ref("root menu", EntityMenu, false, func(m Menu) int64 { return optID(m.RootID) }),
		},
		dependents: []dependent{
			dep(EntityMenu, func(m Menu, id int64) bool { return optID(m.RootID) == id }),
			dep(EntityAccessList, func(a AccessList, id int64) bool {
				for _, mid := range a.MenuIDs {
					if mid == id {
						return true
					}
				}
				return false
			}),
		},
	},
	EntityQualification: {
		entity: EntityQualification,
		createRules: []fieldRule{
			requireString("name", func(q Qualification) string { return q.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(q Qualification) string { return q.Name }),
		},
		references: []reference{
			ref("parent qualification", EntityQualification, false, func(q Qualification) int64 { return optID(q.ParentID) }),
		},
	},
	EntityCountry: {
		entity: EntityCountry,
		createRules: []fieldRule{
			requireString("name", func(c Country) string { return c.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(c Country) string { return c.Name }),
		},
		naturalKeys: []naturalKey{
			key("name", func(c Country) string { return c.Name }),
		},
		dependents: []dependent{
			dep(EntityState, func(s State, id int64) bool { return s.CountryID == id }),
		},
		skipAudit: map[Action]bool{ActionCreate: true, ActionUpdate: true},
	},
	EntityState: {
		entity: EntityState,
		createRules: []fieldRule{
			requireString("name", func(s State) string { return s.Name }),
		},
		updateRules: []fieldRule{
			requireString("name", func(s State) string { return s.Name }),
		},
		naturalKeys: []naturalKey{
			{name: "name and country", extract: func(r Record) (string, bool) {
				s, ok := r.(State)
				if !ok || strings.TrimSpace(s.Name) == "" {
					return "", false
				}
				return fmt.Sprintf("%d:%s", s.CountryID, strings.ToLower(strings.TrimSpace(s.Name))), true
			}},
		},
		references: []reference{
			ref("country", EntityCountry, true, func(s State) int64 { return s.CountryID }),
		},
		skipAudit: map[Action]bool{ActionCreate: true, ActionUpdate: true},
	},
	EntityDocument: {
		entity: EntityDocument,
		createRules: []fieldRule{
			requireString("number", func(d Document) string { return d.Number }),
		},
		updateRules: []fieldRule{
			requireString("number", func(d Document) string { return d.Number }),
		},
		naturalKeys: []naturalKey{
			key("number", func(d Document) string { return d.Number }),
		},
		dependents: []dependent{
			dep(EntityProposalDetail, func(d ProposalDetail, id int64) bool { return d.DocumentID == id }),
		},
	},
}

func descriptorFor(entity EntityType) *descriptor {
	d, ok := descriptors[entity]
	if !ok {
		return &descriptor{entity: entity}
	}
	return d
}

func (d *descriptor) rulesFor(action Action) []fieldRule {
	if action == ActionUpdate {
		return d.updateRules
	}
	return d.createRules
}

func (d *descriptor) auditsAction(action Action) bool {
	return !d.skipAudit[action]
}

// matchExact reports whether candidate carries the same natural-key values as
// probe, for every key the probe populates. Probes without any populated key
// match everything.
func (d *descriptor) matchExact(probe, candidate Record) bool {
	for _, nk := range d.naturalKeys {
		pk, ok := nk.extract(probe)
		if !ok {
			continue
		}
		ck, _ := nk.extract(candidate)
		if pk != ck {
			return false
		}
	}
	return true
}

// matchLoose is the search matcher: case-insensitive containment on each
// populated probe key.
func (d *descriptor) matchLoose(probe, candidate Record) bool {
	for _, nk := range d.naturalKeys {
		pk, ok := nk.extract(probe)
		if !ok {
			continue
		}
		ck, _ := nk.extract(candidate)
		if !strings.Contains(ck, pk) {
			return false
		}
	}
	return true
}
