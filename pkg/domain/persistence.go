package domain

import "context"

// Transaction exposes the mutation operations a persistence implementation
// must support within an atomic scope. Records are passed and returned by
// value; Create assigns the surrogate id when the record is new.
type Transaction interface {
	Create(rec Record) (Record, error)
	Update(rec Record) (Record, error)
	Delete(entity EntityType, id int64) error
	Snapshot() RuleView
}

// PersistentStore is a minimal abstraction over durable backends. Reads see
// committed state only; RunInTransaction evaluates the configured rules
// engine against the post-transaction snapshot before committing and rolls
// back completely when a blocking violation or error surfaces.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(RuleView) error) error
	Get(entity EntityType, id int64) (Record, bool)
	List(entity EntityType) []Record
	Search(entity EntityType, match func(Record) bool, page PageSpec) []Record
}
