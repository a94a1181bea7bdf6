package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsBusinessErrorClassification(t *testing.T) {
	business := []error{
		RuleViolationError{Result: Result{Violations: []Violation{{Severity: SeverityBlock, Message: "blocked"}}}},
		NotFoundError{Entity: EntityBank, ID: 7},
		InvalidActorError{},
		InvalidIDError{Entity: EntityBank, ID: -1},
	}
	for _, err := range business {
		if !IsBusinessError(err) {
			t.Fatalf("expected %T to classify as business", err)
		}
	}
	system := []error{
		fmt.Errorf("disk full"),
		SystemError{Op: "save_bank", Entity: EntityBank, Cause: fmt.Errorf("disk full")},
	}
	for _, err := range system {
		if IsBusinessError(err) {
			t.Fatalf("expected %T to classify as system", err)
		}
	}
}

func TestIsBusinessErrorSeesWrappedCauses(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NotFoundError{Entity: EntityPerson, ID: 3})
	if !IsBusinessError(wrapped) {
		t.Fatalf("expected wrapped not-found to classify as business")
	}
}

func TestRuleViolationErrorMessageIsFirstBlocking(t *testing.T) {
	err := RuleViolationError{Result: Result{Violations: []Violation{
		{Severity: SeverityWarn, Message: "warned"},
		{Severity: SeverityBlock, Message: "first block"},
		{Severity: SeverityBlock, Message: "second block"},
	}}}
	if err.Error() != "first block" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestSystemErrorHidesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := SystemError{Op: "save_bank", Entity: EntityBank, Cause: cause}
	if err.Error() != "operation save_bank failed for bank" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
}

func TestOperationFor(t *testing.T) {
	cases := []struct {
		entity EntityType
		action Action
		want   OperationType
	}{
		{EntityBank, ActionCreate, "BANK_INSERTED"},
		{EntityBankAccount, ActionUpdate, "BANK_ACCOUNT_UPDATED"},
		{EntityProposalCommission, ActionDelete, "PROPOSAL_COMMISSION_DELETED"},
	}
	for _, tc := range cases {
		if got := OperationFor(tc.entity, tc.action); got != tc.want {
			t.Fatalf("OperationFor(%s,%s) = %s, want %s", tc.entity, tc.action, got, tc.want)
		}
	}
}

func TestBaseIsNew(t *testing.T) {
	if !(Base{}).IsNew() {
		t.Fatalf("zero id should be new")
	}
	if (Base{ID: 12}).IsNew() {
		t.Fatalf("positive id should not be new")
	}
}

func TestPageSpecIsDefault(t *testing.T) {
	if !(PageSpec{}).IsDefault() {
		t.Fatalf("zero spec should be default")
	}
	if (PageSpec{Limit: 10}).IsDefault() {
		t.Fatalf("non-zero spec should not be default")
	}
}

func TestRulesEngineStopsAfterBlockingRule(t *testing.T) {
	engine := NewRulesEngine()
	var order []string
	engine.Register(stubRule{name: "first", fn: func() Result {
		order = append(order, "first")
		return Result{Violations: []Violation{{Rule: "first", Severity: SeverityBlock, Message: "stop"}}}
	}})
	engine.Register(stubRule{name: "second", fn: func() Result {
		order = append(order, "second")
		return Result{}
	}})
	res, err := engine.Evaluate(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !res.HasBlocking() {
		t.Fatalf("expected blocking result")
	}
	if len(order) != 1 || order[0] != "first" {
		t.Fatalf("expected evaluation to stop after first rule, got %v", order)
	}
}

type stubRule struct {
	name string
	fn   func() Result
}

func (r stubRule) Name() string { return r.name }

func (r stubRule) Evaluate(_ context.Context, _ RuleView, _ []Change) (Result, error) {
	return r.fn(), nil
}
