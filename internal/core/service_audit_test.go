package core

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestAuditEntryCarriesOperationContext(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil,
		WithAuditRecorder(audit),
		WithClock(ClockFunc(func() time.Time { return fixed })),
	)

	bank, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, testActor)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if len(entry.ID) != 36 {
		t.Fatalf("expected uuid entry id, got %q", entry.ID)
	}
	if entry.Operation != "save_bank" || entry.Tag != "BANK_INSERTED" {
		t.Fatalf("unexpected operation %s / tag %s", entry.Operation, entry.Tag)
	}
	if entry.Entity != EntityBank || entry.Action != ActionCreate {
		t.Fatalf("unexpected entity %s / action %s", entry.Entity, entry.Action)
	}
	if entry.EntityID != bank.ID {
		t.Fatalf("expected entity id %d, got %d", bank.ID, entry.EntityID)
	}
	if entry.Username != testActor.Username || entry.RemoteAddr != testActor.RemoteAddr {
		t.Fatalf("expected actor identity on the entry")
	}
	if entry.Status != AuditStatusSuccess {
		t.Fatalf("expected success status, got %s", entry.Status)
	}
	if !entry.Timestamp.Equal(fixed) {
		t.Fatalf("expected clock timestamp, got %v", entry.Timestamp)
	}
	if !strings.Contains(entry.Details, `"name":"Banco Alfa"`) {
		t.Fatalf("expected record snapshot in details, got %s", entry.Details)
	}
}

func TestDeleteAuditCarriesRecordSnapshot(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil, WithAuditRecorder(audit))

	bank, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, testActor)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.DeleteBank(ctx, bank.ID, testActor); err != nil {
		t.Fatalf("delete: %v", err)
	}

	entry := audit.entries[len(audit.entries)-1]
	if entry.Operation != "delete_bank" || entry.Tag != "BANK_DELETED" {
		t.Fatalf("unexpected operation %s / tag %s", entry.Operation, entry.Tag)
	}
	if !strings.Contains(entry.Details, `"name":"Banco Alfa"`) || !strings.Contains(entry.Details, `"code":"001"`) {
		t.Fatalf("expected deleted record snapshot in details, got %s", entry.Details)
	}
}

func TestFailedMutationsEmitNoAudit(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil, WithAuditRecorder(audit))

	if _, _, err := svc.SaveBank(ctx, Bank{}, testActor); err == nil {
		t.Fatalf("expected validation failure")
	}
	if _, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, Actor{}); err == nil {
		t.Fatalf("expected actor failure")
	}
	if _, err := svc.DeleteBank(ctx, 999, testActor); err != nil {
		t.Fatalf("missing delete: %v", err)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("expected no audit entries, got %d", len(audit.entries))
	}
}

func TestReferenceDataWritesSkipAuditButDeletesDoNot(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil, WithAuditRecorder(audit))

	country, _, err := svc.SaveCountry(ctx, Country{Name: "Brazil", Code: "BR"}, testActor)
	if err != nil {
		t.Fatalf("save country: %v", err)
	}
	state, _, err := svc.SaveState(ctx, State{Name: "Bahia", CountryID: country.ID}, testActor)
	if err != nil {
		t.Fatalf("save state: %v", err)
	}
	country.Name = "Brasil"
	if _, _, err := svc.UpdateCountry(ctx, country, testActor); err != nil {
		t.Fatalf("update country: %v", err)
	}
	if len(audit.entries) != 0 {
		t.Fatalf("reference data writes must not audit, got %v", audit.ops())
	}

	if _, err := svc.DeleteState(ctx, state.ID, testActor); err != nil {
		t.Fatalf("delete state: %v", err)
	}
	if _, err := svc.DeleteCountry(ctx, country.ID, testActor); err != nil {
		t.Fatalf("delete country: %v", err)
	}
	ops := audit.ops()
	if len(ops) != 2 || ops[0] != "delete_state" || ops[1] != "delete_country" {
		t.Fatalf("expected delete audits only, got %v", ops)
	}
	if audit.entries[0].Tag != "STATE_DELETED" || audit.entries[1].Tag != "COUNTRY_DELETED" {
		t.Fatalf("unexpected tags: %s, %s", audit.entries[0].Tag, audit.entries[1].Tag)
	}
}

func TestCommissionDeleteSkipsAudit(t *testing.T) {
	ctx := context.Background()
	audit := &captureAuditRecorder{}
	svc := NewInMemoryService(nil, WithAuditRecorder(audit))

	channel, _, _ := svc.SaveChannel(ctx, Channel{Name: "Direct"}, testActor)
	brand, _, _ := svc.SaveBrand(ctx, Brand{Name: "Prime"}, testActor)
	proposal, _, err := svc.SaveProposal(ctx, Proposal{Number: "P-1", ChannelID: channel.ID, BrandID: brand.ID}, testActor)
	if err != nil {
		t.Fatalf("save proposal: %v", err)
	}
	commission, _, err := svc.SaveProposalCommission(ctx, ProposalCommission{ProposalID: proposal.ID, Value: 125.5}, testActor)
	if err != nil {
		t.Fatalf("save commission: %v", err)
	}

	before := len(audit.entries)
	if _, err := svc.DeleteProposalCommission(ctx, commission.ID, testActor); err != nil {
		t.Fatalf("delete commission: %v", err)
	}
	if len(audit.entries) != before {
		t.Fatalf("commission delete must not audit, got %v", audit.ops())
	}
	// The insert itself is still audited.
	found := false
	for _, op := range audit.ops() {
		if op == "save_proposal_commission" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected commission insert audit, got %v", audit.ops())
	}
}
