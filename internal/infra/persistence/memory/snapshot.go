package memory

import (
	"sort"

	"salescore/pkg/domain"
)

// Snapshot is the serialisable representation of the in-memory state. Slices
// are sorted ascending by id so that persisted payloads stay deterministic.
type Snapshot struct {
	Banks           []domain.Bank               `json:"banks"`
	BankAccounts    []domain.BankAccount        `json:"bank_accounts"`
	Brands          []domain.Brand              `json:"brands"`
	Channels        []domain.Channel            `json:"channels"`
	Sources         []domain.Source             `json:"sources"`
	PaymentRules    []domain.PaymentRule        `json:"payment_rules"`
	PriceLists      []domain.PriceList          `json:"price_lists"`
	Items           []domain.Item               `json:"items"`
	PriceItems      []domain.PriceItem          `json:"price_items"`
	Persons         []domain.Person             `json:"persons"`
	Customers       []domain.Customer           `json:"customers"`
	Holdings        []domain.Holding            `json:"holdings"`
	Proposals       []domain.Proposal           `json:"proposals"`
	ProposalDetails []domain.ProposalDetail     `json:"proposal_details"`
	Commissions     []domain.ProposalCommission `json:"proposal_commissions"`
	Users           []domain.User               `json:"users"`
	AccessLists     []domain.AccessList         `json:"access_lists"`
	Menus           []domain.Menu               `json:"menus"`
	Qualifications  []domain.Qualification      `json:"qualifications"`
	Countries       []domain.Country            `json:"countries"`
	States          []domain.State              `json:"states"`
	Documents       []domain.Document           `json:"documents"`
}

func exportBucket[T Record](s *Store, entity EntityType) []T {
	rows := s.state.tables[entity]
	def := buckets[entity]
	out := make([]T, 0, len(rows))
	for _, rec := range rows {
		out = append(out, def.clone(rec).(T))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID() < out[j].RecordID() })
	return out
}

func importBucket[T Record](s *Store, entity EntityType, recs []T) {
	rows := map[int64]Record{}
	def := buckets[entity]
	for _, rec := range recs {
		rows[rec.RecordID()] = def.clone(rec)
		if rec.RecordID() > s.seq {
			s.seq = rec.RecordID()
		}
	}
	s.state.tables[entity] = rows
}

// ExportState captures the committed state for durable snapshotting.
func (s *Store) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Banks:           exportBucket[domain.Bank](s, domain.EntityBank),
		BankAccounts:    exportBucket[domain.BankAccount](s, domain.EntityBankAccount),
		Brands:          exportBucket[domain.Brand](s, domain.EntityBrand),
		Channels:        exportBucket[domain.Channel](s, domain.EntityChannel),
		Sources:         exportBucket[domain.Source](s, domain.EntitySource),
		PaymentRules:    exportBucket[domain.PaymentRule](s, domain.EntityPaymentRule),
		PriceLists:      exportBucket[domain.PriceList](s, domain.EntityPriceList),
		Items:           exportBucket[domain.Item](s, domain.EntityItem),
		PriceItems:      exportBucket[domain.PriceItem](s, domain.EntityPriceItem),
		Persons:         exportBucket[domain.Person](s, domain.EntityPerson),
		Customers:       exportBucket[domain.Customer](s, domain.EntityCustomer),
		Holdings:        exportBucket[domain.Holding](s, domain.EntityHolding),
		Proposals:       exportBucket[domain.Proposal](s, domain.EntityProposal),
		ProposalDetails: exportBucket[domain.ProposalDetail](s, domain.EntityProposalDetail),
		Commissions:     exportBucket[domain.ProposalCommission](s, domain.EntityProposalCommission),
		Users:           exportBucket[domain.User](s, domain.EntityUser),
		AccessLists:     exportBucket[domain.AccessList](s, domain.EntityAccessList),
		Menus:           exportBucket[domain.Menu](s, domain.EntityMenu),
		Qualifications:  exportBucket[domain.Qualification](s, domain.EntityQualification),
		Countries:       exportBucket[domain.Country](s, domain.EntityCountry),
		States:          exportBucket[domain.State](s, domain.EntityState),
		Documents:       exportBucket[domain.Document](s, domain.EntityDocument),
	}
}

// ImportState replaces the committed state with the snapshot contents and
// resumes the id sequence above the highest imported id.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newMemoryState()
	s.seq = 0
	importBucket(s, domain.EntityBank, snapshot.Banks)
	importBucket(s, domain.EntityBankAccount, snapshot.BankAccounts)
	importBucket(s, domain.EntityBrand, snapshot.Brands)
	importBucket(s, domain.EntityChannel, snapshot.Channels)
	importBucket(s, domain.EntitySource, snapshot.Sources)
	importBucket(s, domain.EntityPaymentRule, snapshot.PaymentRules)
	importBucket(s, domain.EntityPriceList, snapshot.PriceLists)
	importBucket(s, domain.EntityItem, snapshot.Items)
	importBucket(s, domain.EntityPriceItem, snapshot.PriceItems)
	importBucket(s, domain.EntityPerson, snapshot.Persons)
	importBucket(s, domain.EntityCustomer, snapshot.Customers)
	importBucket(s, domain.EntityHolding, snapshot.Holdings)
	importBucket(s, domain.EntityProposal, snapshot.Proposals)
	importBucket(s, domain.EntityProposalDetail, snapshot.ProposalDetails)
	importBucket(s, domain.EntityProposalCommission, snapshot.Commissions)
	importBucket(s, domain.EntityUser, snapshot.Users)
	importBucket(s, domain.EntityAccessList, snapshot.AccessLists)
	importBucket(s, domain.EntityMenu, snapshot.Menus)
	importBucket(s, domain.EntityQualification, snapshot.Qualifications)
	importBucket(s, domain.EntityCountry, snapshot.Countries)
	importBucket(s, domain.EntityState, snapshot.States)
	importBucket(s, domain.EntityDocument, snapshot.Documents)
}
