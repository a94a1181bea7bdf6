// Package core implements the transactional service layer for the sales
// back office: generic CRUD orchestration over a persistent store, the
// default business rules, hierarchy operations, and audit emission.
package core

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"salescore/internal/infra/persistence/memory"
	"salescore/pkg/domain"
)

// Store is the persistence contract the service builds on. NowFunc exposes
// the record-stamping clock so the service can reuse it for audit timestamps.
type Store interface {
	domain.PersistentStore
	NowFunc() func() time.Time
}

// Service exposes higher-level transactional CRUD operations for the sales
// schema. Every mutating operation requires a valid Actor, runs inside a
// store transaction guarded by the rules engine, and emits one audit entry
// when it commits.
type Service struct {
	store   Store
	logger  Logger
	audit   AuditRecorder
	metrics MetricsRecorder
	tracer  Tracer
	clock   Clock
	locale  string
	refs    *referenceCache
}

// NewService constructs a service backed by the supplied store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		logger:  noopLogger{},
		audit:   noopAuditRecorder{},
		metrics: noopMetricsRecorder{},
		tracer:  noopTracer{},
		locale:  DefaultLocale,
		refs:    newReferenceCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		if fn := store.NowFunc(); fn != nil {
			s.clock = ClockFunc(fn)
		} else {
			s.clock = ClockFunc(func() time.Time { return time.Now().UTC() })
		}
	}
	return s
}

// NewInMemoryService creates a service with an in-memory store and the given
// rules engine. A nil engine gets the default rule sequence.
func NewInMemoryService(engine *RulesEngine, opts ...Option) *Service {
	if engine == nil {
		engine = NewDefaultRulesEngine()
	}
	return NewService(memory.NewStore(engine), opts...)
}

// Store returns the underlying storage implementation.
func (s *Service) Store() Store { return s.store }

type operationMetadata struct {
	entity EntityType
	action Action
}

// auditOperations maps service operation names to the entity and action they
// mutate. Unknown operations never produce audit entries.
var auditOperations = func() map[string]operationMetadata {
	ops := make(map[string]operationMetadata, 3*len(descriptors))
	for entity := range descriptors {
		ops["save_"+string(entity)] = operationMetadata{entity: entity, action: ActionCreate}
		ops["update_"+string(entity)] = operationMetadata{entity: entity, action: ActionUpdate}
		ops["delete_"+string(entity)] = operationMetadata{entity: entity, action: ActionDelete}
	}
	return ops
}()

// instrument wraps a service operation with tracing and metrics and returns
// the measured duration alongside the operation error.
func (s *Service) instrument(ctx context.Context, op string, fn func(context.Context) error) (time.Duration, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, op)
	err := fn(ctx)
	duration := time.Since(start)
	s.metrics.Observe(ctx, op, err == nil, duration)
	span.End(err)
	return duration, err
}

// recordAuditSuccess emits one audit entry for a committed mutation. Unknown
// operations and actions the entity opts out of are ignored.
func (s *Service) recordAuditSuccess(ctx context.Context, op string, entityID int64, actor Actor, details string, duration time.Duration) {
	meta, ok := auditOperations[op]
	if !ok {
		return
	}
	if !descriptorFor(meta.entity).auditsAction(meta.action) {
		return
	}
	s.audit.Record(ctx, AuditEntry{
		ID:         uuid.NewString(),
		Operation:  op,
		Tag:        domain.OperationFor(meta.entity, meta.action),
		Entity:     meta.entity,
		Action:     meta.action,
		EntityID:   entityID,
		Username:   actor.Username,
		RemoteAddr: actor.RemoteAddr,
		RemoteHost: actor.RemoteHost,
		Details:    details,
		Status:     AuditStatusSuccess,
		Duration:   duration,
		Timestamp:  s.clock.Now(),
	})
}

// failure classifies an operation error. Business failures propagate
// unchanged; anything else is logged with its cause and wrapped into a
// SystemError so callers see only the templated message.
func (s *Service) failure(op string, entity EntityType, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsBusinessError(err) {
		return err
	}
	s.logger.Error("operation failed", "operation", op, "entity", string(entity), "error", err.Error())
	return domain.SystemError{Op: op, Entity: entity, Cause: err}
}

func (s *Service) detailsJSON(op string, entity EntityType, v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("audit payload encoding failed", "operation", op, "entity", string(entity), "error", err.Error())
		return "", domain.SystemError{Op: op, Entity: entity, Cause: err}
	}
	return string(payload), nil
}

func saveRecord[T Record](ctx context.Context, s *Service, rec T, actor Actor) (T, Result, error) {
	entity := rec.Kind()
	op := "save_" + string(entity)
	var created T
	var result Result
	duration, err := s.instrument(ctx, op, func(ctx context.Context) error {
		if !actor.Valid() {
			return domain.InvalidActorError{}
		}
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			stored, err := tx.Create(rec)
			if err != nil {
				return err
			}
			created = stored.(T)
			return nil
		})
		result = res
		return err
	})
	if err != nil {
		return created, result, s.failure(op, entity, err)
	}
	details, derr := s.detailsJSON(op, entity, created)
	if derr != nil {
		return created, result, derr
	}
	s.recordAuditSuccess(ctx, op, created.RecordID(), actor, details, duration)
	return created, result, nil
}

func updateRecord[T Record](ctx context.Context, s *Service, rec T, actor Actor) (T, Result, error) {
	entity := rec.Kind()
	op := "update_" + string(entity)
	var updated T
	var result Result
	duration, err := s.instrument(ctx, op, func(ctx context.Context) error {
		if rec.RecordID() <= 0 {
			return domain.InvalidIDError{Entity: entity, ID: rec.RecordID()}
		}
		if !actor.Valid() {
			return domain.InvalidActorError{}
		}
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			stored, err := tx.Update(rec)
			if err != nil {
				return err
			}
			updated = stored.(T)
			return nil
		})
		result = res
		return err
	})
	if err != nil {
		return updated, result, s.failure(op, entity, err)
	}
	details, derr := s.detailsJSON(op, entity, updated)
	if derr != nil {
		return updated, result, derr
	}
	s.recordAuditSuccess(ctx, op, updated.RecordID(), actor, details, duration)
	return updated, result, nil
}

// saveOrUpdateRecord dispatches on the surrogate id: positive ids update,
// everything else inserts.
func saveOrUpdateRecord[T Record](ctx context.Context, s *Service, rec T, actor Actor) (T, Result, error) {
	if rec.RecordID() > 0 {
		return updateRecord(ctx, s, rec, actor)
	}
	return saveRecord(ctx, s, rec, actor)
}

// deleteRecord removes a record by id. Deleting an id that does not exist is
// a silent no-op: no error, no audit entry.
func (s *Service) deleteRecord(ctx context.Context, entity EntityType, id int64, actor Actor) (Result, error) {
	op := "delete_" + string(entity)
	var result Result
	var deleted Record
	duration, err := s.instrument(ctx, op, func(ctx context.Context) error {
		if id <= 0 {
			return domain.InvalidIDError{Entity: entity, ID: id}
		}
		if !actor.Valid() {
			return domain.InvalidActorError{}
		}
		before, ok := s.store.Get(entity, id)
		if !ok {
			return nil
		}
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			return tx.Delete(entity, id)
		})
		result = res
		if err != nil {
			var nf domain.NotFoundError
			if errors.As(err, &nf) {
				return nil
			}
			return err
		}
		deleted = before
		return nil
	})
	if err != nil {
		return result, s.failure(op, entity, err)
	}
	if deleted != nil {
		details, derr := s.detailsJSON(op, entity, deleted)
		if derr != nil {
			return result, derr
		}
		s.recordAuditSuccess(ctx, op, id, actor, details, duration)
	}
	return result, nil
}

func getRecord[T Record](s *Service, entity EntityType, id int64) (T, bool) {
	var zero T
	if id <= 0 {
		return zero, false
	}
	rec, ok := s.store.Get(entity, id)
	if !ok {
		return zero, false
	}
	return rec.(T), true
}

func collect[T Record](recs []Record) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.(T))
	}
	return out
}

func listRecords[T Record](s *Service, entity EntityType, page PageSpec) []T {
	return collect[T](s.store.Search(entity, nil, page))
}

// findRecord returns the first record under the default ordering (newest id
// first) matching every natural-key field the probe populates.
func findRecord[T Record](s *Service, probe T) (T, bool) {
	var zero T
	d := descriptorFor(probe.Kind())
	recs := s.store.Search(probe.Kind(), func(r Record) bool {
		return d.matchExact(probe, r)
	}, PageSpec{Limit: 1})
	if len(recs) == 0 {
		return zero, false
	}
	return recs[0].(T), true
}

// searchRecords applies loose, case-insensitive containment matching on the
// probe's populated natural-key fields.
func searchRecords[T Record](s *Service, probe T, page PageSpec) []T {
	d := descriptorFor(probe.Kind())
	return collect[T](s.store.Search(probe.Kind(), func(r Record) bool {
		return d.matchLoose(probe, r)
	}, page))
}
