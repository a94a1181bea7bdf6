package core

import (
	"context"
	"strings"
)

func entityLabel(entity EntityType) string {
	return strings.ReplaceAll(string(entity), "_", " ")
}

// fieldValidationRule runs the per-entity field checks. Unlike the later
// stages it enumerates every failing field of a change instead of stopping at
// the first one.
type fieldValidationRule struct{}

func (fieldValidationRule) Name() string { return "field_validation" }

func (fieldValidationRule) Evaluate(_ context.Context, _ RuleView, changes []Change) (Result, error) {
	var res Result
	for _, change := range changes {
		if change.Action != ActionCreate && change.Action != ActionUpdate {
			continue
		}
		rec, ok := change.After.(Record)
		if !ok {
			continue
		}
		d := descriptorFor(change.Entity)
		for _, fr := range d.rulesFor(change.Action) {
			if msg := fr.check(rec); msg != "" {
				res.Violations = append(res.Violations, Violation{
					Rule:     "field_validation",
					Severity: SeverityBlock,
					Message:  msg,
					Entity:   change.Entity,
					EntityID: rec.RecordID(),
				})
			}
		}
	}
	return res, nil
}

// referenceRule verifies declared foreign keys against the transactional
// snapshot. The first missing reference ends the check.
type referenceRule struct{}

func (referenceRule) Name() string { return "reference_existence" }

func (referenceRule) Evaluate(_ context.Context, view RuleView, changes []Change) (Result, error) {
	var res Result
	for _, change := range changes {
		if change.Action != ActionCreate && change.Action != ActionUpdate {
			continue
		}
		rec, ok := change.After.(Record)
		if !ok {
			continue
		}
		d := descriptorFor(change.Entity)
		for _, r := range d.references {
			var missing bool
			switch {
			case r.ids != nil:
				for _, id := range r.ids(rec) {
					if _, found := view.Find(r.entity, id); !found {
						missing = true
						break
					}
				}
			default:
				id := r.id(rec)
				if id == 0 && !r.required {
					continue
				}
				if id <= 0 {
					missing = true
					break
				}
				_, found := view.Find(r.entity, id)
				missing = !found
			}
			if missing {
				res.Violations = append(res.Violations, Violation{
					Rule:     "reference_existence",
					Severity: SeverityBlock,
					Message:  Message("error.reference", entityLabel(change.Entity), r.field),
					Entity:   change.Entity,
					EntityID: rec.RecordID(),
				})
				return res, nil
			}
		}
	}
	return res, nil
}

// uniquenessRule enforces natural-key uniqueness with a linear scan over the
// snapshot, excluding the changed record itself so updates keeping their own
// key pass.
type uniquenessRule struct{}

func (uniquenessRule) Name() string { return "uniqueness" }

func (uniquenessRule) Evaluate(_ context.Context, view RuleView, changes []Change) (Result, error) {
	var res Result
	for _, change := range changes {
		if change.Action != ActionCreate && change.Action != ActionUpdate {
			continue
		}
		rec, ok := change.After.(Record)
		if !ok {
			continue
		}
		d := descriptorFor(change.Entity)
		for _, nk := range d.naturalKeys {
			k, populated := nk.extract(rec)
			if !populated {
				continue
			}
			for _, other := range view.List(change.Entity) {
				if other.RecordID() == rec.RecordID() {
					continue
				}
				otherKey, present := nk.extract(other)
				if present && otherKey == k {
					res.Violations = append(res.Violations, Violation{
						Rule:     "uniqueness",
						Severity: SeverityBlock,
						Message:  Message("error.duplicate", entityLabel(change.Entity), nk.name),
						Entity:   change.Entity,
						EntityID: rec.RecordID(),
					})
					return res, nil
				}
			}
		}
	}
	return res, nil
}

// deleteGuardRule blocks deletions while dependent rows exist. Dependent
// tables are checked in descriptor order and the first hit names the failure.
type deleteGuardRule struct{}

func (deleteGuardRule) Name() string { return "delete_guard" }

func (deleteGuardRule) Evaluate(_ context.Context, view RuleView, changes []Change) (Result, error) {
	var res Result
	for _, change := range changes {
		if change.Action != ActionDelete {
			continue
		}
		rec, ok := change.Before.(Record)
		if !ok {
			continue
		}
		d := descriptorFor(change.Entity)
		for _, dp := range d.dependents {
			for _, row := range view.List(dp.entity) {
				if dp.refers(row, rec.RecordID()) {
					res.Violations = append(res.Violations, Violation{
						Rule:     "delete_guard",
						Severity: SeverityBlock,
						Message:  Message("error.delete.blocked", entityLabel(change.Entity), entityLabel(dp.entity)),
						Entity:   change.Entity,
						EntityID: rec.RecordID(),
					})
					return res, nil
				}
			}
		}
	}
	return res, nil
}

// NewDefaultRulesEngine wires the standard rule sequence. Registration order
// matters: field checks run before relationship checks, which run before
// duplicate checks, and the engine stops at the first blocking stage.
func NewDefaultRulesEngine() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(fieldValidationRule{})
	engine.Register(referenceRule{})
	engine.Register(uniquenessRule{})
	engine.Register(deleteGuardRule{})
	return engine
}
