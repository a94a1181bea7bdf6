package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"salescore/pkg/domain"
)

var testActor = Actor{UserID: 1, Username: "back.office", RemoteAddr: "10.0.0.5"}

type captureAuditRecorder struct {
	entries []AuditEntry
}

func (c *captureAuditRecorder) Record(_ context.Context, entry AuditEntry) {
	c.entries = append(c.entries, entry)
}

func (c *captureAuditRecorder) ops() []string {
	out := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, entry.Operation)
	}
	return out
}

type metricsCall struct {
	op       string
	success  bool
	duration time.Duration
}

type captureMetricsRecorder struct {
	calls []metricsCall
}

func (c *captureMetricsRecorder) Observe(_ context.Context, op string, success bool, duration time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success, duration: duration})
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}

type spanRecord struct {
	op  string
	err error
}

type captureTracer struct {
	started []string
	ended   []spanRecord
}

func (c *captureTracer) Start(ctx context.Context, op string) (context.Context, TraceSpan) {
	c.started = append(c.started, op)
	return ctx, &captureSpan{tracer: c, op: op}
}

type captureSpan struct {
	tracer *captureTracer
	op     string
}

func (s *captureSpan) End(err error) {
	s.tracer.ended = append(s.tracer.ended, spanRecord{op: s.op, err: err})
}

type logCall struct {
	level string
	msg   string
	args  []any
}

type captureLogger struct {
	calls []logCall
}

func (l *captureLogger) Debug(msg string, args ...any) { l.calls = append(l.calls, logCall{"debug", msg, args}) }
func (l *captureLogger) Info(msg string, args ...any)  { l.calls = append(l.calls, logCall{"info", msg, args}) }
func (l *captureLogger) Warn(msg string, args ...any)  { l.calls = append(l.calls, logCall{"warn", msg, args}) }
func (l *captureLogger) Error(msg string, args ...any) { l.calls = append(l.calls, logCall{"error", msg, args}) }

func mustSaveBank(t *testing.T, svc *Service, name, code string) Bank {
	t.Helper()
	bank, _, err := svc.SaveBank(context.Background(), Bank{Name: name, Code: code}, testActor)
	if err != nil {
		t.Fatalf("save bank %s: %v", name, err)
	}
	return bank
}

func TestSaveOrUpdateDispatchesOnID(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil, WithAuditRecorder(audit))

	bank, _, err := svc.SaveOrUpdateBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, testActor)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if bank.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", bank.ID)
	}

	bank.Name = "Banco Alfa Renamed"
	updated, _, err := svc.SaveOrUpdateBank(ctx, bank, testActor)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != bank.ID {
		t.Fatalf("expected same id after update")
	}
	if rows := svc.ListBanks(ctx, PageSpec{}); len(rows) != 1 {
		t.Fatalf("expected a single bank, got %d", len(rows))
	}

	wantOps := []string{"save_bank", "update_bank"}
	gotOps := audit.ops()
	if len(gotOps) != len(wantOps) {
		t.Fatalf("expected %v audit ops, got %v", wantOps, gotOps)
	}
	for i := range wantOps {
		if gotOps[i] != wantOps[i] {
			t.Fatalf("expected %v audit ops, got %v", wantOps, gotOps)
		}
	}
	if audit.entries[0].Tag != "BANK_INSERTED" || audit.entries[1].Tag != "BANK_UPDATED" {
		t.Fatalf("unexpected audit tags: %s, %s", audit.entries[0].Tag, audit.entries[1].Tag)
	}
}

func TestSaveRejectsMissingRequiredFields(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil, WithAuditRecorder(audit))

	_, _, err := svc.SaveBank(ctx, Bank{Code: "001"}, testActor)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	var violation domain.RuleViolationError
	if !errors.As(err, &violation) {
		t.Fatalf("expected RuleViolationError, got %T", err)
	}
	if err.Error() != "name is required" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if len(audit.entries) != 0 {
		t.Fatalf("failed save must not audit, got %d entries", len(audit.entries))
	}
	if rows := svc.ListBanks(ctx, PageSpec{}); len(rows) != 0 {
		t.Fatalf("failed save must not persist")
	}
}

func TestDuplicateNaturalKeysRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(nil)
	first := mustSaveBank(t, svc, "Banco Alfa", "001")

	if _, _, err := svc.SaveBank(ctx, Bank{Name: "banco alfa", Code: "002"}, testActor); err == nil {
		t.Fatalf("expected duplicate name rejection")
	} else if !strings.Contains(err.Error(), "same name") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if _, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Beta", Code: "001"}, testActor); err == nil {
		t.Fatalf("expected duplicate code rejection")
	} else if !strings.Contains(err.Error(), "same code") {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	// Updating a record keeping its own key is not a duplicate of itself.
	first.Code = "003"
	if _, _, err := svc.UpdateBank(ctx, first, testActor); err != nil {
		t.Fatalf("self-key update should pass: %v", err)
	}

	// Updating a record onto another record's key is still a duplicate.
	second := mustSaveBank(t, svc, "Banco Beta", "004")
	second.Name = "Banco Alfa"
	if _, _, err := svc.UpdateBank(ctx, second, testActor); err == nil {
		t.Fatalf("expected cross-record duplicate rejection")
	} else if !strings.Contains(err.Error(), "same name") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if got, _ := svc.GetBank(ctx, second.ID); got.Name != "Banco Beta" {
		t.Fatalf("rejected update must not persist, got %q", got.Name)
	}
}

func TestMandatoryReferencesChecked(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(nil)

	_, _, err := svc.SaveBankAccount(ctx, BankAccount{PersonID: 99, BankID: 98, Number: "777-1"}, testActor)
	if err == nil {
		t.Fatalf("expected missing reference rejection")
	}
	if !strings.Contains(err.Error(), "missing person") {
		t.Fatalf("expected first missing reference to win, got: %s", err.Error())
	}

	person, _, err := svc.SavePerson(ctx, Person{Name: "Ana", Document: "123"}, testActor)
	if err != nil {
		t.Fatalf("save person: %v", err)
	}
	bank := mustSaveBank(t, svc, "Banco Alfa", "001")
	if _, _, err := svc.SaveBankAccount(ctx, BankAccount{PersonID: person.ID, BankID: bank.ID, Number: "777-1"}, testActor); err != nil {
		t.Fatalf("save account with valid refs: %v", err)
	}
}

func TestDeleteGuardFirstDependentWins(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(nil)

	person, _, err := svc.SavePerson(ctx, Person{Name: "Ana", Document: "123"}, testActor)
	if err != nil {
		t.Fatalf("save person: %v", err)
	}
	bank := mustSaveBank(t, svc, "Banco Alfa", "001")
	if _, _, err := svc.SaveBankAccount(ctx, BankAccount{PersonID: person.ID, BankID: bank.ID, Number: "777-1"}, testActor); err != nil {
		t.Fatalf("save account: %v", err)
	}
	channel, _, _ := svc.SaveChannel(ctx, Channel{Name: "Direct"}, testActor)
	brand, _, _ := svc.SaveBrand(ctx, Brand{Name: "Prime"}, testActor)
	proposal, _, err := svc.SaveProposal(ctx, Proposal{Number: "P-1", ChannelID: channel.ID, BrandID: brand.ID}, testActor)
	if err != nil {
		t.Fatalf("save proposal: %v", err)
	}
	document, _, _ := svc.SaveDocument(ctx, Document{Number: "D-1"}, testActor)
	if _, _, err := svc.SaveProposalDetail(ctx, ProposalDetail{ProposalID: proposal.ID, DocumentID: document.ID, PersonID: person.ID}, testActor); err != nil {
		t.Fatalf("save detail: %v", err)
	}

	// Both bank accounts and proposal details reference the person; the first
	// declared dependent names the failure.
	_, err = svc.DeletePerson(ctx, person.ID, testActor)
	if err == nil {
		t.Fatalf("expected delete guard rejection")
	}
	if !strings.Contains(err.Error(), "bank account") {
		t.Fatalf("expected first guard to win, got: %s", err.Error())
	}
	if _, ok := svc.GetPerson(ctx, person.ID); !ok {
		t.Fatalf("guarded delete must not remove the row")
	}
}

func TestDeleteMissingIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil, WithAuditRecorder(audit))

	if _, err := svc.DeleteBank(ctx, 12345, testActor); err != nil {
		t.Fatalf("expected no-op delete, got %v", err)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("no-op delete must not audit")
	}
}

func TestDeleteInvalidIDIsBusinessFailure(t *testing.T) {
	svc := NewInMemoryService(nil)
	_, err := svc.DeleteBank(context.Background(), 0, testActor)
	var invalid domain.InvalidIDError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidIDError, got %v", err)
	}
}

func TestMutationsRequireValidActor(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(nil)
	_, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, Actor{})
	var invalid domain.InvalidActorError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidActorError, got %v", err)
	}
	if rows := svc.ListBanks(ctx, PageSpec{}); len(rows) != 0 {
		t.Fatalf("actor failure must not persist")
	}
}

type failingStore struct {
	cause error
}

func (f failingStore) RunInTransaction(context.Context, func(Transaction) error) (Result, error) {
	return Result{}, f.cause
}
func (failingStore) View(context.Context, func(RuleView) error) error { return nil }
func (failingStore) Get(EntityType, int64) (Record, bool)             { return nil, false }
func (failingStore) List(EntityType) []Record                         { return nil }
func (failingStore) Search(EntityType, func(Record) bool, PageSpec) []Record {
	return nil
}
func (failingStore) NowFunc() func() time.Time { return nil }

func TestUnexpectedFailuresWrapIntoSystemError(t *testing.T) {
	cause := errors.New("connection reset")
	logger := &captureLogger{}
	svc := NewService(failingStore{cause: cause}, WithLogger(logger))

	_, _, err := svc.SaveBank(context.Background(), Bank{Name: "Banco Alfa", Code: "001"}, testActor)
	var system domain.SystemError
	if !errors.As(err, &system) {
		t.Fatalf("expected SystemError, got %v", err)
	}
	if err.Error() != "operation save_bank failed for bank" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause preserved in chain")
	}
	if len(logger.calls) == 0 || logger.calls[0].level != "error" {
		t.Fatalf("expected cause to be logged")
	}
}

func TestFindAndSearchUseNaturalKeys(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(nil)
	alfa := mustSaveBank(t, svc, "Banco Alfa", "001")
	mustSaveBank(t, svc, "Banco Beta", "002")

	found, ok := svc.FindBank(ctx, Bank{Name: "BANCO ALFA"})
	if !ok || found.ID != alfa.ID {
		t.Fatalf("expected exact match on name, got ok=%v id=%d", ok, found.ID)
	}
	if _, ok := svc.FindBank(ctx, Bank{Name: "Banco Gama"}); ok {
		t.Fatalf("expected no match")
	}
	matches := svc.SearchBanks(ctx, Bank{Name: "banco"}, PageSpec{})
	if len(matches) != 2 {
		t.Fatalf("expected loose match on both banks, got %d", len(matches))
	}
}

func TestFindReturnsNewestMatch(t *testing.T) {
	ctx := context.Background()
	// Empty engine so two rows may share a name.
	svc := NewInMemoryService(NewRulesEngine())
	if _, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, testActor); err != nil {
		t.Fatalf("save first: %v", err)
	}
	newest, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "002"}, testActor)
	if err != nil {
		t.Fatalf("save second: %v", err)
	}

	found, ok := svc.FindBank(ctx, Bank{Name: "Banco Alfa"})
	if !ok || found.ID != newest.ID {
		t.Fatalf("expected newest match id=%d, got ok=%v id=%d", newest.ID, ok, found.ID)
	}
}

func TestDefaultPagingIsAllRowsDescending(t *testing.T) {
	ctx := context.Background()
	svc := NewInMemoryService(nil)
	for _, code := range []string{"001", "002", "003"} {
		mustSaveBank(t, svc, "Banco "+code, code)
	}
	rows := svc.ListBanks(ctx, PageSpec{})
	if len(rows) != 3 {
		t.Fatalf("expected all rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].ID < rows[i].ID {
			t.Fatalf("expected newest first")
		}
	}
	asc := svc.ListBanks(ctx, PageSpec{SortAsc: true})
	if asc[0].ID != rows[len(rows)-1].ID {
		t.Fatalf("expected ascending listing to reverse the default")
	}
}
