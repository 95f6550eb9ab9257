package store

import (
	"context"

	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/domain/model"
)

// AuditStore owns the audit collection. Audits carry their own dates
// from the planning form, so the store stamps nothing on Add.
type AuditStore struct {
	eng *engine[model.Audit, model.AuditPatch]
}

func newAuditStore(backend interfaces.Backend, clock interfaces.Clock, seed []model.Audit) *AuditStore {
	return &AuditStore{
		eng: newEngine(backend, clock, config[model.Audit, model.AuditPatch]{
			name:  "audits",
			seed:  seed,
			id:    func(a *model.Audit) int { return a.ID },
			setID: func(a *model.Audit, id int) { a.ID = id },
			clone: model.Audit.Clone,
			apply: model.AuditPatch.Apply,
			normalize: func(a *model.Audit) error { return a.Normalize() },
		}),
	}
}

func (s *AuditStore) List(ctx context.Context) []model.Audit {
	return s.eng.List(ctx)
}

func (s *AuditStore) Get(ctx context.Context, id int) (model.Audit, bool) {
	return s.eng.Get(ctx, id)
}

func (s *AuditStore) Add(ctx context.Context, a model.Audit) model.Audit {
	return s.eng.Add(ctx, a)
}

func (s *AuditStore) Update(ctx context.Context, id int, patch model.AuditPatch) {
	s.eng.Update(ctx, id, patch)
}

// Remove deletes the audit only. Executions, actions and reports that
// reference it keep their denormalized copy of its name; dangling
// references are tolerated by design.
func (s *AuditStore) Remove(ctx context.Context, id int) {
	s.eng.Remove(ctx, id)
}

func (s *AuditStore) ClearAll(ctx context.Context) {
	s.eng.ClearAll(ctx)
}

func (s *AuditStore) Count(ctx context.Context) int {
	return s.eng.Count(ctx)
}
