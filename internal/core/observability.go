package core

import (
	"context"
	"time"

	"salescore/pkg/domain"
)

// Logger is the minimal structured logging contract used by the service.
// Implementations accept alternating key/value args after the message.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// AuditStatus describes the outcome recorded on an audit entry.
type AuditStatus string

// Audit entry statuses.
const (
	// AuditStatusSuccess marks a committed mutation.
	AuditStatusSuccess AuditStatus = "success"
	// AuditStatusError marks a failed mutation attempt.
	AuditStatusError AuditStatus = "error"
)

// AuditEntry captures a committed mutation for the audit trail. Details holds
// a JSON snapshot of the mutated record.
type AuditEntry struct {
	ID         string               `json:"id"`
	Operation  string               `json:"operation"`
	Tag        domain.OperationType `json:"tag"`
	Entity     EntityType           `json:"entity"`
	Action     Action               `json:"action"`
	EntityID   int64                `json:"entity_id"`
	Username   string               `json:"username"`
	RemoteAddr string               `json:"remote_addr,omitempty"`
	RemoteHost string               `json:"remote_host,omitempty"`
	Details    string               `json:"details,omitempty"`
	Status     AuditStatus          `json:"status"`
	Duration   time.Duration        `json:"duration"`
	Timestamp  time.Time            `json:"timestamp"`
}

// AuditRecorder consumes audit entries emitted after committed mutations.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditEntry)
}

// MetricsRecorder observes service operation outcomes.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// TraceSpan ends an in-flight trace span.
type TraceSpan interface {
	End(err error)
}

// Tracer starts spans around service operations.
type Tracer interface {
	Start(ctx context.Context, operation string) (context.Context, TraceSpan)
}

// Clock abstracts time for audit timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

type noopAuditRecorder struct{}

func (noopAuditRecorder) Record(context.Context, AuditEntry) {}

type noopMetricsRecorder struct{}

func (noopMetricsRecorder) Observe(context.Context, string, bool, time.Duration) {}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, TraceSpan) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(error) {}

// Option customises a Service at construction time.
type Option func(*Service)

// WithLogger injects a structured logger.
func WithLogger(logger Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAuditRecorder injects an audit sink.
func WithAuditRecorder(recorder AuditRecorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.audit = recorder
		}
	}
}

// WithMetricsRecorder injects a metrics sink.
func WithMetricsRecorder(recorder MetricsRecorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.metrics = recorder
		}
	}
}

// WithTracer injects a tracer.
func WithTracer(tracer Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithClock overrides the audit timestamp clock.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocale selects the message catalog locale for the tree guard
// violations the service renders itself. Violations raised by the store's
// rule stages render in the default locale.
func WithLocale(locale string) Option {
	return func(s *Service) {
		if locale != "" {
			s.locale = locale
		}
	}
}
