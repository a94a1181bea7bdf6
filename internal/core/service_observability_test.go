package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestInstrumentationObservesOutcomes(t *testing.T) {
	ctx := context.Background()
	metrics := &captureMetricsRecorder{}
	tracer := &captureTracer{}
	svc := NewInMemoryService(nil, WithMetricsRecorder(metrics), WithTracer(tracer))

	if _, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, testActor); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, _, err := svc.SaveBank(ctx, Bank{}, testActor); err == nil {
		t.Fatalf("expected validation failure")
	}

	if !metrics.has("save_bank", true) {
		t.Fatalf("expected success observation, got %+v", metrics.calls)
	}
	if !metrics.has("save_bank", false) {
		t.Fatalf("expected failure observation, got %+v", metrics.calls)
	}
	if len(tracer.started) != 2 || len(tracer.ended) != 2 {
		t.Fatalf("expected two spans, got %d started %d ended", len(tracer.started), len(tracer.ended))
	}
	if tracer.ended[0].err != nil {
		t.Fatalf("first span should end clean, got %v", tracer.ended[0].err)
	}
	if tracer.ended[1].err == nil {
		t.Fatalf("second span should carry the failure")
	}
}

func TestReadsAreNotInstrumented(t *testing.T) {
	ctx := context.Background()
	metrics := &captureMetricsRecorder{}
	svc := NewInMemoryService(nil, WithMetricsRecorder(metrics))
	if _, _, err := svc.SaveBank(ctx, Bank{Name: "Banco Alfa", Code: "001"}, testActor); err != nil {
		t.Fatalf("save: %v", err)
	}
	before := len(metrics.calls)
	svc.ListBanks(ctx, PageSpec{})
	svc.GetBank(ctx, 1)
	if len(metrics.calls) != before {
		t.Fatalf("reads must not observe metrics, got %+v", metrics.calls)
	}
}

func TestExpvarMetricsRecorderAggregates(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	if !strings.HasPrefix(rec.Name(), "salescore_service_metrics_") {
		t.Fatalf("unexpected generated name %q", rec.Name())
	}
	ctx := context.Background()
	rec.Observe(ctx, "save_bank", true, 20*time.Millisecond)
	rec.Observe(ctx, "save_bank", false, 10*time.Millisecond)
	rec.Observe(ctx, "", true, time.Millisecond)

	snap := rec.Snapshot()
	if snap.Results["save_bank"]["success"] != 1 || snap.Results["save_bank"]["error"] != 1 {
		t.Fatalf("unexpected results: %+v", snap.Results)
	}
	if got := snap.DurationsMS["save_bank"]; got < 29.9 || got > 30.1 {
		t.Fatalf("expected ~30ms total, got %f", got)
	}
	if len(snap.Results) != 1 {
		t.Fatalf("empty operation must be ignored, got %+v", snap.Results)
	}
}

func TestJSONTracerRecordsSpans(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewJSONTracer(&buf)
	ctx := context.Background()

	_, span := tracer.Start(ctx, "save_bank")
	span.End(nil)
	_, span = tracer.Start(ctx, "delete_bank")
	span.End(errors.New("boom"))

	entries := tracer.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	if entries[0].Operation != "save_bank" || entries[0].Status != "success" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Status != "error" || entries[1].Error != "boom" {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two encoded lines, got %d", len(lines))
	}
}
