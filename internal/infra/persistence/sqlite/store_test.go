package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"salescore/pkg/domain"
)

func TestStatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var created domain.Bank
	if _, err := store.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		rec, err := tx.Create(domain.Bank{Name: "Banco Alfa", Code: "001"})
		if err != nil {
			return err
		}
		created = rec.(domain.Bank)
		return nil
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	rec, ok := reopened.Get(domain.EntityBank, created.ID)
	if !ok {
		t.Fatalf("expected bank after reopen")
	}
	if rec.(domain.Bank).Name != "Banco Alfa" {
		t.Fatalf("unexpected bank: %+v", rec)
	}

	// The id sequence resumes above the hydrated rows.
	if _, err := reopened.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		next, err := tx.Create(domain.Bank{Name: "Banco Beta", Code: "002"})
		if err != nil {
			return err
		}
		if next.RecordID() <= created.ID {
			t.Fatalf("expected id above %d, got %d", created.ID, next.RecordID())
		}
		return nil
	}); err != nil {
		t.Fatalf("create after reopen: %v", err)
	}
}

type blockingRule struct{}

func (blockingRule) Name() string { return "always_block" }

func (blockingRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	if len(changes) == 0 {
		return domain.Result{}, nil
	}
	return domain.Result{Violations: []domain.Violation{{Rule: "always_block", Severity: domain.SeverityBlock, Message: "blocked"}}}, nil
}

func TestRejectedTransactionIsNotSnapshotted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	engine := domain.NewRulesEngine()
	engine.Register(blockingRule{})
	store, err := NewStore(path, engine)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := store.RunInTransaction(context.Background(), func(tx domain.Transaction) error {
		_, err := tx.Create(domain.Bank{Name: "Blocked", Code: "001"})
		return err
	}); err == nil {
		t.Fatalf("expected blocking violation")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if rows := reopened.List(domain.EntityBank); len(rows) != 0 {
		t.Fatalf("expected empty state after rollback, got %d rows", len(rows))
	}
}
