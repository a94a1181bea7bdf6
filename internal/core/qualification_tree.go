package core

import (
	"context"
	"sort"
	"strings"

	"salescore/pkg/domain"
)

// QualificationPath pairs a tree node with its ancestry rendered root-first.
type QualificationPath struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

const qualificationPathSeparator = " > "

// SaveQualification persists a new tree node. A non-nil parent must exist.
func (s *Service) SaveQualification(ctx context.Context, node Qualification, actor Actor) (Qualification, Result, error) {
	return saveRecord(ctx, s, node, actor)
}

// UpdateQualification replaces an existing tree node. Reparenting goes
// through MoveQualification, which guards against cycles.
func (s *Service) UpdateQualification(ctx context.Context, node Qualification, actor Actor) (Qualification, Result, error) {
	return updateRecord(ctx, s, node, actor)
}

// SaveOrUpdateQualification inserts or updates depending on the id.
func (s *Service) SaveOrUpdateQualification(ctx context.Context, node Qualification, actor Actor) (Qualification, Result, error) {
	return saveOrUpdateRecord(ctx, s, node, actor)
}

// GetQualification fetches a tree node by id.
func (s *Service) GetQualification(ctx context.Context, id int64) (Qualification, bool) {
	return getRecord[Qualification](s, EntityQualification, id)
}

// ListQualifications returns tree nodes using the supplied paging.
func (s *Service) ListQualifications(ctx context.Context, page PageSpec) []Qualification {
	return listRecords[Qualification](s, EntityQualification, page)
}

func (s *Service) treeViolation(key string) error {
	return domain.RuleViolationError{Result: Result{Violations: []Violation{{
		Rule:     "qualification_tree",
		Severity: SeverityBlock,
		Message:  LookupMessage(s.locale, key),
		Entity:   EntityQualification,
	}}}}
}

// isDescendant walks candidate's ancestor chain looking for ancestorID.
func isDescendant(view RuleView, candidateID, ancestorID int64) bool {
	seen := map[int64]bool{candidateID: true}
	cur := candidateID
	for {
		rec, ok := view.Find(EntityQualification, cur)
		if !ok {
			return false
		}
		node := rec.(Qualification)
		if node.ParentID == nil {
			return false
		}
		parent := *node.ParentID
		if parent == ancestorID {
			return true
		}
		if seen[parent] {
			return false
		}
		seen[parent] = true
		cur = parent
	}
}

// AttachQualification links a node under a parent. Both must exist, the edge
// must not already exist, and the parent must not be the node itself or one
// of its descendants.
func (s *Service) AttachQualification(ctx context.Context, id, parentID int64, actor Actor) (Qualification, Result, error) {
	op := "attach_qualification"
	var updated Qualification
	var result Result
	duration, err := s.instrument(ctx, op, func(ctx context.Context) error {
		if id <= 0 || parentID <= 0 {
			return domain.InvalidIDError{Entity: EntityQualification, ID: id}
		}
		if !actor.Valid() {
			return domain.InvalidActorError{}
		}
		if id == parentID {
			return s.treeViolation("error.tree.self")
		}
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			snap := tx.Snapshot()
			rec, ok := snap.Find(EntityQualification, id)
			if !ok {
				return domain.NotFoundError{Entity: EntityQualification, ID: id}
			}
			if _, ok := snap.Find(EntityQualification, parentID); !ok {
				return domain.NotFoundError{Entity: EntityQualification, ID: parentID}
			}
			node := rec.(Qualification)
			if node.ParentID != nil && *node.ParentID == parentID {
				return s.treeViolation("error.tree.edge")
			}
			if isDescendant(snap, parentID, id) {
				return s.treeViolation("error.tree.descendant")
			}
			parent := parentID
			node.ParentID = &parent
			stored, err := tx.Update(node)
			if err != nil {
				return err
			}
			updated = stored.(Qualification)
			return nil
		})
		result = res
		return err
	})
	if err != nil {
		return updated, result, s.failure(op, EntityQualification, err)
	}
	details, derr := s.detailsJSON(op, EntityQualification, updated)
	if derr != nil {
		return updated, result, derr
	}
	s.recordAuditSuccess(ctx, "update_qualification", updated.ID, actor, details, duration)
	return updated, result, nil
}

// MoveQualification reparents a node in a single transaction. Moving a node
// to itself or into its own descendant is rejected; a parent id of zero
// detaches the node and makes it a root.
func (s *Service) MoveQualification(ctx context.Context, id, newParentID int64, actor Actor) (Qualification, Result, error) {
	op := "move_qualification"
	var updated Qualification
	var result Result
	duration, err := s.instrument(ctx, op, func(ctx context.Context) error {
		if id <= 0 {
			return domain.InvalidIDError{Entity: EntityQualification, ID: id}
		}
		if !actor.Valid() {
			return domain.InvalidActorError{}
		}
		if id == newParentID {
			return s.treeViolation("error.tree.self")
		}
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			snap := tx.Snapshot()
			rec, ok := snap.Find(EntityQualification, id)
			if !ok {
				return domain.NotFoundError{Entity: EntityQualification, ID: id}
			}
			node := rec.(Qualification)
			if newParentID > 0 {
				if _, ok := snap.Find(EntityQualification, newParentID); !ok {
					return domain.NotFoundError{Entity: EntityQualification, ID: newParentID}
				}
				if isDescendant(snap, newParentID, id) {
					return s.treeViolation("error.tree.descendant")
				}
				parent := newParentID
				node.ParentID = &parent
			} else {
				node.ParentID = nil
			}
			stored, err := tx.Update(node)
			if err != nil {
				return err
			}
			updated = stored.(Qualification)
			return nil
		})
		result = res
		return err
	})
	if err != nil {
		return updated, result, s.failure(op, EntityQualification, err)
	}
	details, derr := s.detailsJSON(op, EntityQualification, updated)
	if derr != nil {
		return updated, result, derr
	}
	s.recordAuditSuccess(ctx, "update_qualification", updated.ID, actor, details, duration)
	return updated, result, nil
}

// DeleteQualification removes a node and detaches its direct children in the
// same transaction. Deleting a missing id is a silent no-op.
func (s *Service) DeleteQualification(ctx context.Context, id int64, actor Actor) (Result, error) {
	op := "delete_qualification"
	var result Result
	var deleted Record
	duration, err := s.instrument(ctx, op, func(ctx context.Context) error {
		if id <= 0 {
			return domain.InvalidIDError{Entity: EntityQualification, ID: id}
		}
		if !actor.Valid() {
			return domain.InvalidActorError{}
		}
		before, ok := s.store.Get(EntityQualification, id)
		if !ok {
			return nil
		}
		res, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
			snap := tx.Snapshot()
			for _, rec := range snap.List(EntityQualification) {
				child := rec.(Qualification)
				if child.ParentID != nil && *child.ParentID == id {
					child.ParentID = nil
					if _, err := tx.Update(child); err != nil {
						return err
					}
				}
			}
			return tx.Delete(EntityQualification, id)
		})
		result = res
		if err != nil {
			return err
		}
		deleted = before
		return nil
	})
	if err != nil {
		return result, s.failure(op, EntityQualification, err)
	}
	if deleted != nil {
		details, derr := s.detailsJSON(op, EntityQualification, deleted)
		if derr != nil {
			return result, derr
		}
		s.recordAuditSuccess(ctx, op, id, actor, details, duration)
	}
	return result, nil
}

func qualificationPathOf(byID map[int64]Qualification, node Qualification) string {
	names := []string{node.Name}
	seen := map[int64]bool{node.ID: true}
	cur := node
	for cur.ParentID != nil {
		parent, ok := byID[*cur.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		names = append([]string{parent.Name}, names...)
		seen[parent.ID] = true
		cur = parent
	}
	return strings.Join(names, qualificationPathSeparator)
}

func (s *Service) qualificationPaths(filter func(Qualification) bool) []QualificationPath {
	nodes := listRecords[Qualification](s, EntityQualification, PageSpec{SortAsc: true})
	byID := make(map[int64]Qualification, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	out := make([]QualificationPath, 0, len(nodes))
	for _, n := range nodes {
		if filter != nil && !filter(n) {
			continue
		}
		out = append(out, QualificationPath{ID: n.ID, Name: n.Name, Path: qualificationPathOf(byID, n)})
	}
	return out
}

// ListQualificationPaths returns every node with its root-to-node path.
func (s *Service) ListQualificationPaths(ctx context.Context) []QualificationPath {
	return s.qualificationPaths(nil)
}

// SearchQualificationPaths returns path descriptors for nodes whose name
// contains the query, case-insensitively.
func (s *Service) SearchQualificationPaths(ctx context.Context, name string) []QualificationPath {
	query := strings.ToLower(strings.TrimSpace(name))
	return s.qualificationPaths(func(q Qualification) bool {
		return query == "" || strings.Contains(strings.ToLower(q.Name), query)
	})
}

// ListQualificationChildren returns the direct children of a parent sorted by
// id. A parent id of zero selects the roots.
func (s *Service) ListQualificationChildren(ctx context.Context, parentID int64) []Qualification {
	nodes := listRecords[Qualification](s, EntityQualification, PageSpec{SortAsc: true})
	out := make([]Qualification, 0, len(nodes))
	for _, n := range nodes {
		switch {
		case parentID == 0 && n.ParentID == nil:
			out = append(out, n)
		case n.ParentID != nil && *n.ParentID == parentID:
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
