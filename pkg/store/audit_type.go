package store

import (
	"context"

	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/domain/model"
)

// AuditTypeStore owns the audit type catalog
type AuditTypeStore struct {
	eng *engine[model.AuditType, model.AuditTypePatch]
}

func newAuditTypeStore(backend interfaces.Backend, clock interfaces.Clock, seed []model.AuditType) *AuditTypeStore {
	return &AuditTypeStore{
		eng: newEngine(backend, clock, config[model.AuditType, model.AuditTypePatch]{
			name:  "audit_types",
			seed:  seed,
			id:    func(t *model.AuditType) int { return t.ID },
			setID: func(t *model.AuditType, id int) { t.ID = id },
			stamp: func(t *model.AuditType, clock interfaces.Clock) { t.CreatedAt = clock() },
			clone: model.AuditType.Clone,
			apply: model.AuditTypePatch.Apply,
			normalize: func(t *model.AuditType) error { return t.Normalize() },
		}),
	}
}

func (s *AuditTypeStore) List(ctx context.Context) []model.AuditType {
	return s.eng.List(ctx)
}

// ListActive returns only the types currently offered to new audits
func (s *AuditTypeStore) ListActive(ctx context.Context) []model.AuditType {
	all := s.eng.List(ctx)
	active := make([]model.AuditType, 0, len(all))
	for _, t := range all {
		if t.Active {
			active = append(active, t)
		}
	}
	return active
}

func (s *AuditTypeStore) Get(ctx context.Context, id int) (model.AuditType, bool) {
	return s.eng.Get(ctx, id)
}

func (s *AuditTypeStore) Add(ctx context.Context, t model.AuditType) model.AuditType {
	return s.eng.Add(ctx, t)
}

func (s *AuditTypeStore) Update(ctx context.Context, id int, patch model.AuditTypePatch) {
	s.eng.Update(ctx, id, patch)
}

// ToggleActive flips the active flag of the type. Missing ID is a
// silent no-op.
func (s *AuditTypeStore) ToggleActive(ctx context.Context, id int) {
	s.eng.mutate(ctx, id, func(t *model.AuditType) bool {
		t.Active = !t.Active
		return true
	})
}

func (s *AuditTypeStore) Remove(ctx context.Context, id int) {
	s.eng.Remove(ctx, id)
}

func (s *AuditTypeStore) ClearAll(ctx context.Context) {
	s.eng.ClearAll(ctx)
}

func (s *AuditTypeStore) Count(ctx context.Context) int {
	return s.eng.Count(ctx)
}
