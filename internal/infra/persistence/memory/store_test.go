package memory

import (
	"context"
	"testing"
	"time"

	"salescore/pkg/domain"
)

func createBank(t *testing.T, store *Store, name, code string) domain.Bank {
	t.Helper()
	var created domain.Bank
	if _, err := store.RunInTransaction(context.Background(), func(tx Transaction) error {
		rec, err := tx.Create(domain.Bank{Name: name, Code: code})
		if err != nil {
			return err
		}
		created = rec.(domain.Bank)
		return nil
	}); err != nil {
		t.Fatalf("create bank: %v", err)
	}
	return created
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	store := NewStore(nil)
	first := createBank(t, store, "First", "001")
	second := createBank(t, store, "Second", "002")
	if first.ID <= 0 || second.ID != first.ID+1 {
		t.Fatalf("expected monotonic ids, got %d then %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be stamped")
	}
}

func TestCreateWithExplicitIDRejectsDuplicates(t *testing.T) {
	store := NewStore(nil)
	if _, err := store.RunInTransaction(context.Background(), func(tx Transaction) error {
		if _, err := tx.Create(domain.Bank{Base: domain.Base{ID: 9}, Name: "Nine", Code: "009"}); err != nil {
			return err
		}
		_, err := tx.Create(domain.Bank{Base: domain.Base{ID: 9}, Name: "Other", Code: "010"})
		return err
	}); err == nil {
		t.Fatalf("expected duplicate explicit id to fail")
	}
	// The sequence resumes above the highest explicit id.
	store2 := NewStore(nil)
	if _, err := store2.RunInTransaction(context.Background(), func(tx Transaction) error {
		_, err := tx.Create(domain.Bank{Base: domain.Base{ID: 9}, Name: "Nine", Code: "009"})
		return err
	}); err != nil {
		t.Fatalf("explicit id create: %v", err)
	}
	next := createBank(t, store2, "Ten", "010")
	if next.ID != 10 {
		t.Fatalf("expected sequence to resume at 10, got %d", next.ID)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(nil)
	store.SetNowFunc(func() time.Time { return base })
	bank := createBank(t, store, "Orig", "001")

	store.SetNowFunc(func() time.Time { return base.Add(time.Hour) })
	var updated domain.Bank
	if _, err := store.RunInTransaction(context.Background(), func(tx Transaction) error {
		bank.Name = "Renamed"
		rec, err := tx.Update(bank)
		if err != nil {
			return err
		}
		updated = rec.(domain.Bank)
		return nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(base) {
		t.Fatalf("expected CreatedAt preserved, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("expected UpdatedAt advanced, got %v", updated.UpdatedAt)
	}
}

func TestUpdateAndDeleteMissingReturnNotFound(t *testing.T) {
	store := NewStore(nil)
	if _, err := store.RunInTransaction(context.Background(), func(tx Transaction) error {
		_, err := tx.Update(domain.Bank{Base: domain.Base{ID: 404}, Name: "Ghost", Code: "404"})
		return err
	}); err == nil {
		t.Fatalf("expected update of missing record to fail")
	} else if _, ok := err.(domain.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if _, err := store.RunInTransaction(context.Background(), func(tx Transaction) error {
		return tx.Delete(domain.EntityBank, 404)
	}); err == nil {
		t.Fatalf("expected delete of missing record to fail")
	}
}

type blockingRule struct{}

func (blockingRule) Name() string { return "always_block" }

func (blockingRule) Evaluate(_ context.Context, _ RuleView, changes []Change) (Result, error) {
	if len(changes) == 0 {
		return Result{}, nil
	}
	return Result{Violations: []domain.Violation{{Rule: "always_block", Severity: domain.SeverityBlock, Message: "blocked"}}}, nil
}

func TestBlockingViolationRollsBack(t *testing.T) {
	engine := domain.NewRulesEngine()
	engine.Register(blockingRule{})
	store := NewStore(engine)
	_, err := store.RunInTransaction(context.Background(), func(tx Transaction) error {
		_, err := tx.Create(domain.Bank{Name: "Blocked", Code: "001"})
		return err
	})
	if err == nil {
		t.Fatalf("expected blocking violation error")
	}
	if _, ok := err.(domain.RuleViolationError); !ok {
		t.Fatalf("expected RuleViolationError, got %T", err)
	}
	if rows := store.List(domain.EntityBank); len(rows) != 0 {
		t.Fatalf("expected rollback, found %d rows", len(rows))
	}
}

func TestSearchDefaultPagingIsDescending(t *testing.T) {
	store := NewStore(nil)
	for i := 0; i < 5; i++ {
		createBank(t, store, "Bank", "00"+string(rune('1'+i)))
	}
	rows := store.Search(domain.EntityBank, nil, PageSpec{})
	if len(rows) != 5 {
		t.Fatalf("expected all rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].RecordID() < rows[i].RecordID() {
			t.Fatalf("expected descending order")
		}
	}
	paged := store.Search(domain.EntityBank, nil, PageSpec{Limit: 2, Offset: 1, SortAsc: true})
	if len(paged) != 2 || paged[0].RecordID() != 2 || paged[1].RecordID() != 3 {
		t.Fatalf("unexpected page: %+v", paged)
	}
}

func TestSnapshotRoundTripResumesSequence(t *testing.T) {
	store := NewStore(nil)
	createBank(t, store, "One", "001")
	createBank(t, store, "Two", "002")
	if _, err := store.RunInTransaction(context.Background(), func(tx Transaction) error {
		rec, err := tx.Create(domain.Qualification{Name: "Root"})
		if err != nil {
			return err
		}
		parent := rec.RecordID()
		_, err = tx.Create(domain.Qualification{Name: "Child", ParentID: &parent})
		return err
	}); err != nil {
		t.Fatalf("seed qualifications: %v", err)
	}

	snapshot := store.ExportState()
	restored := NewStore(nil)
	restored.ImportState(snapshot)

	if got := len(restored.List(domain.EntityBank)); got != 2 {
		t.Fatalf("expected 2 banks after import, got %d", got)
	}
	children := restored.List(domain.EntityQualification)
	if len(children) != 2 {
		t.Fatalf("expected 2 qualifications, got %d", len(children))
	}
	next := createBank(t, restored, "Three", "003")
	if next.ID <= 4 {
		t.Fatalf("expected sequence above imported ids, got %d", next.ID)
	}
}

func TestViewIsIsolatedFromCommits(t *testing.T) {
	store := NewStore(nil)
	bank := createBank(t, store, "Iso", "001")
	if err := store.View(context.Background(), func(v RuleView) error {
		rec, ok := v.Find(domain.EntityBank, bank.ID)
		if !ok {
			t.Fatalf("expected bank in view")
		}
		got := rec.(domain.Bank)
		got.Name = "mutated"
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
	rec, _ := store.Get(domain.EntityBank, bank.ID)
	if rec.(domain.Bank).Name != "Iso" {
		t.Fatalf("view mutation leaked into committed state")
	}
}
