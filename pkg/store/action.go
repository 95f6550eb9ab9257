package store

import (
	"context"

	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/domain/model"
)

// ActionStore owns the corrective action collection
type ActionStore struct {
	eng *engine[model.CorrectiveAction, model.CorrectiveActionPatch]
}

func newActionStore(backend interfaces.Backend, clock interfaces.Clock, seed []model.CorrectiveAction) *ActionStore {
	return &ActionStore{
		eng: newEngine(backend, clock, config[model.CorrectiveAction, model.CorrectiveActionPatch]{
			name:  "corrective_actions",
			seed:  seed,
			id:    func(a *model.CorrectiveAction) int { return a.ID },
			setID: func(a *model.CorrectiveAction, id int) { a.ID = id },
			stamp: func(a *model.CorrectiveAction, clock interfaces.Clock) {
				a.CreatedAt = clock()
			},
			clone: model.CorrectiveAction.Clone,
			apply: model.CorrectiveActionPatch.Apply,
			normalize: func(a *model.CorrectiveAction) error { return a.Normalize() },
		}),
	}
}

func (s *ActionStore) List(ctx context.Context) []model.CorrectiveAction {
	return s.eng.List(ctx)
}

func (s *ActionStore) Get(ctx context.Context, id int) (model.CorrectiveAction, bool) {
	return s.eng.Get(ctx, id)
}

func (s *ActionStore) Add(ctx context.Context, a model.CorrectiveAction) model.CorrectiveAction {
	return s.eng.Add(ctx, a)
}

func (s *ActionStore) Update(ctx context.Context, id int, patch model.CorrectiveActionPatch) {
	s.eng.Update(ctx, id, patch)
}

func (s *ActionStore) Remove(ctx context.Context, id int) {
	s.eng.Remove(ctx, id)
}

func (s *ActionStore) ClearAll(ctx context.Context) {
	s.eng.ClearAll(ctx)
}

func (s *ActionStore) Count(ctx context.Context) int {
	return s.eng.Count(ctx)
}
