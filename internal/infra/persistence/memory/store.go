// Package memory provides the in-memory transactional store that the durable
// backends build upon. It lives under infra to keep domain dependencies
// one-way (domain -> nothing).
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"salescore/pkg/domain"
)

// Exported aliases keep method signatures concise while still exposing
// domain types from this infra package.
type (
	// Record is an alias of domain.Record.
	Record = domain.Record
	// EntityType is an alias of domain.EntityType.
	EntityType = domain.EntityType
	// Change is an alias of domain.Change.
	Change = domain.Change
	// Result is an alias of domain.Result.
	Result = domain.Result
	// RulesEngine is an alias of domain.RulesEngine.
	RulesEngine = domain.RulesEngine
	// Transaction is an alias of domain.Transaction.
	Transaction = domain.Transaction
	// RuleView is an alias of domain.RuleView.
	RuleView = domain.RuleView
	// PageSpec is an alias of domain.PageSpec.
	PageSpec = domain.PageSpec
)

// bucketDef wires the per-entity behaviors the generic store machinery
// cannot derive: deep cloning and re-stamping the embedded Base.
type bucketDef struct {
	clone  func(Record) Record
	rebase func(Record, domain.Base) Record
	baseOf func(Record) domain.Base
}

func entityDef[T Record](clone func(T) T, base func(*T) *domain.Base) bucketDef {
	return bucketDef{
		clone: func(r Record) Record { return clone(r.(T)) },
		rebase: func(r Record, b domain.Base) Record {
			v := r.(T)
			*base(&v) = b
			return v
		},
		baseOf: func(r Record) domain.Base {
			v := r.(T)
			return *base(&v)
		},
	}
}

func cloneValue[T Record](v T) T { return v }

func cloneHolding(h domain.Holding) domain.Holding {
	cp := h
	cp.CustomerIDs = append([]int64(nil), h.CustomerIDs...)
	return cp
}

func cloneAccessList(a domain.AccessList) domain.AccessList {
	cp := a
	cp.MenuIDs = append([]int64(nil), a.MenuIDs...)
	return cp
}

func cloneMenu(m domain.Menu) domain.Menu {
	cp := m
	if m.RootID != nil {
		root := *m.RootID
		cp.RootID = &root
	}
	return cp
}

func cloneQualification(q domain.Qualification) domain.Qualification {
	cp := q
	if q.ParentID != nil {
		parent := *q.ParentID
		cp.ParentID = &parent
	}
	return cp
}

var buckets = map[EntityType]bucketDef{
	domain.EntityBank:               entityDef(cloneValue[domain.Bank], func(v *domain.Bank) *domain.Base { return &v.Base }),
	domain.EntityBankAccount:        entityDef(cloneValue[domain.BankAccount], func(v *domain.BankAccount) *domain.Base { return &v.Base }),
	domain.EntityBrand:              entityDef(cloneValue[domain.Brand], func(v *domain.Brand) *domain.Base { return &v.Base }),
	domain.EntityChannel:            entityDef(cloneValue[domain.Channel], func(v *domain.Channel) *domain.Base { return &v.Base }),
	domain.EntitySource:             entityDef(cloneValue[domain.Source], func(v *domain.Source) *domain.Base { return &v.Base }),
	domain.EntityPaymentRule:        entityDef(cloneValue[domain.PaymentRule], func(v *domain.PaymentRule) *domain.Base { return &v.Base }),
	domain.EntityPriceList:          entityDef(cloneValue[domain.PriceList], func(v *domain.PriceList) *domain.Base { return &v.Base }),
	domain.EntityItem:               entityDef(cloneValue[domain.Item], func(v *domain.Item) *domain.Base { return &v.Base }),
	domain.EntityPriceItem:          entityDef(cloneValue[domain.PriceItem], func(v *domain.PriceItem) *domain.Base { return &v.Base }),
	domain.EntityPerson:             entityDef(cloneValue[domain.Person], func(v *domain.Person) *domain.Base { return &v.Base }),
	domain.EntityCustomer:           entityDef(cloneValue[domain.Customer], func(v *domain.Customer) *domain.Base { return &v.Base }),
	domain.EntityHolding:            entityDef(cloneHolding, func(v *domain.Holding) *domain.Base { return &v.Base }),
	domain.EntityProposal:           entityDef(cloneValue[domain.Proposal], func(v *domain.Proposal) *domain.Base { return &v.Base }),
	domain.EntityProposalDetail:     entityDef(cloneValue[domain.ProposalDetail], func(v *domain.ProposalDetail) *domain.Base { return &v.Base }),
	domain.EntityProposalCommission: entityDef(cloneValue[domain.ProposalCommission], func(v *domain.ProposalCommission) *domain.Base { return &v.Base }),
	domain.EntityUser:               entityDef(cloneValue[domain.User], func(v *domain.User) *domain.Base { return &v.Base }),
	domain.EntityAccessList:         entityDef(cloneAccessList, func(v *domain.AccessList) *domain.Base { return &v.Base }),
	domain.EntityMenu:               entityDef(cloneMenu, func(v *domain.Menu) *domain.Base { return &v.Base }),
	domain.EntityQualification:      entityDef(cloneQualification, func(v *domain.Qualification) *domain.Base { return &v.Base }),
	domain.EntityCountry:            entityDef(cloneValue[domain.Country], func(v *domain.Country) *domain.Base { return &v.Base }),
	domain.EntityState:              entityDef(cloneValue[domain.State], func(v *domain.State) *domain.Base { return &v.Base }),
	domain.EntityDocument:           entityDef(cloneValue[domain.Document], func(v *domain.Document) *domain.Base { return &v.Base }),
}

type memoryState struct {
	tables map[EntityType]map[int64]Record
}

func newMemoryState() memoryState {
	state := memoryState{tables: make(map[EntityType]map[int64]Record, len(buckets))}
	for entity := range buckets {
		state.tables[entity] = map[int64]Record{}
	}
	return state
}

func (s memoryState) clone() memoryState {
	cloned := newMemoryState()
	for entity, rows := range s.tables {
		def := buckets[entity]
		dst := cloned.tables[entity]
		for id, rec := range rows {
			dst[id] = def.clone(rec)
		}
	}
	return cloned
}

// Store provides an in-memory transactional store for the sales domain.
type Store struct {
	mu     sync.RWMutex
	state  memoryState
	engine *RulesEngine
	nowFn  func() time.Time
	seq    int64
}

// NewStore constructs an in-memory store backed by the provided rules engine.
func NewStore(engine *RulesEngine) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	return &Store{
		state:  newMemoryState(),
		engine: engine,
		nowFn:  func() time.Time { return time.Now().UTC() },
	}
}

// RulesEngine returns the engine evaluated on every transaction.
func (s *Store) RulesEngine() *RulesEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// NowFunc returns the clock used to stamp records.
func (s *Store) NowFunc() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowFn
}

// SetNowFunc overrides the record-stamping clock, for tests.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		s.nowFn = fn
	}
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// transaction applies a mutation set to a cloned copy of the store state.
type transaction struct {
	store   *Store
	state   memoryState
	changes []Change
	now     time.Time
}

type view struct {
	state *memoryState
}

func newView(state *memoryState) RuleView { return view{state: state} }

// List returns clones of all records of the given entity type.
func (v view) List(entity EntityType) []Record {
	rows, ok := v.state.tables[entity]
	if !ok {
		return nil
	}
	def := buckets[entity]
	out := make([]Record, 0, len(rows))
	for _, rec := range rows {
		out = append(out, def.clone(rec))
	}
	return out
}

// Find retrieves a record by id.
func (v view) Find(entity EntityType, id int64) (Record, bool) {
	rows, ok := v.state.tables[entity]
	if !ok {
		return nil, false
	}
	rec, ok := rows[id]
	if !ok {
		return nil, false
	}
	return buckets[entity].clone(rec), true
}

func (tx *transaction) recordChange(change Change) {
	tx.changes = append(tx.changes, change)
}

// Snapshot exposes the uncommitted transactional state to callers that need
// to read their own writes (tree traversals, cascades).
func (tx *transaction) Snapshot() RuleView { return newView(&tx.state) }

// Create stores a new record, assigning the surrogate id when absent.
func (tx *transaction) Create(rec Record) (Record, error) {
	entity := rec.Kind()
	def, ok := buckets[entity]
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
	rows := tx.state.tables[entity]
	base := def.baseOf(rec)
	if base.ID == 0 {
		base.ID = tx.store.nextID()
	} else {
		if _, exists := rows[base.ID]; exists {
			return nil, fmt.Errorf("%s %d already exists", entity, base.ID)
		}
		if base.ID > tx.store.seq {
			tx.store.seq = base.ID
		}
	}
	base.CreatedAt = tx.now
	base.UpdatedAt = tx.now
	stamped := def.rebase(rec, base)
	rows[base.ID] = def.clone(stamped)
	tx.recordChange(Change{Entity: entity, Action: domain.ActionCreate, After: def.clone(stamped)})
	return def.clone(stamped), nil
}

// Update replaces an existing record, preserving its creation timestamp.
func (tx *transaction) Update(rec Record) (Record, error) {
	entity := rec.Kind()
	def, ok := buckets[entity]
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
	rows := tx.state.tables[entity]
	current, ok := rows[rec.RecordID()]
	if !ok {
		return nil, domain.NotFoundError{Entity: entity, ID: rec.RecordID()}
	}
	before := def.clone(current)
	base := def.baseOf(rec)
	base.CreatedAt = def.baseOf(current).CreatedAt
	base.UpdatedAt = tx.now
	stamped := def.rebase(rec, base)
	rows[base.ID] = def.clone(stamped)
	tx.recordChange(Change{Entity: entity, Action: domain.ActionUpdate, Before: before, After: def.clone(stamped)})
	return def.clone(stamped), nil
}

// Delete removes a record from the transaction state.
func (tx *transaction) Delete(entity EntityType, id int64) error {
	def, ok := buckets[entity]
	if !ok {
		return fmt.Errorf("unknown entity type %q", entity)
	}
	rows := tx.state.tables[entity]
	current, ok := rows[id]
	if !ok {
		return domain.NotFoundError{Entity: entity, ID: id}
	}
	delete(rows, id)
	tx.recordChange(Change{Entity: entity, Action: domain.ActionDelete, Before: def.clone(current)})
	return nil
}

// RunInTransaction executes fn within a transactional copy of the store
// state, evaluates the rules engine against the resulting snapshot, and
// commits only when no blocking violation surfaced.
func (s *Store) RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &transaction{
		store: s,
		state: s.state.clone(),
		now:   s.nowFn(),
	}

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		res, err := s.engine.Evaluate(ctx, newView(&tx.state), tx.changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	s.state = tx.state
	return result, nil
}

// View executes fn against a read-only snapshot of committed state.
func (s *Store) View(ctx context.Context, fn func(RuleView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := s.state.clone()
	return fn(newView(&snapshot))
}

// Get retrieves a record by id from committed state.
func (s *Store) Get(entity EntityType, id int64) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.state.tables[entity]
	if !ok {
		return nil, false
	}
	rec, ok := rows[id]
	if !ok {
		return nil, false
	}
	return buckets[entity].clone(rec), true
}

// List returns all records of an entity type sorted descending by id, the
// default view everywhere in this layer.
func (s *Store) List(entity EntityType) []Record {
	return s.Search(entity, nil, PageSpec{})
}

// Search filters records of an entity type and applies paging. A nil match
// accepts every row. The zero PageSpec means all rows, newest id first.
func (s *Store) Search(entity EntityType, match func(Record) bool, page PageSpec) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, ok := s.state.tables[entity]
	if !ok {
		return nil
	}
	def := buckets[entity]
	out := make([]Record, 0, len(rows))
	for _, rec := range rows {
		if match == nil || match(rec) {
			out = append(out, def.clone(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if page.SortAsc {
			return out[i].RecordID() < out[j].RecordID()
		}
		return out[i].RecordID() > out[j].RecordID()
	})
	if page.Offset > 0 {
		if page.Offset >= len(out) {
			return nil
		}
		out = out[page.Offset:]
	}
	if page.Limit > 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out
}
