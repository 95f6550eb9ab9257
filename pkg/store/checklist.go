package store

import (
	"context"

	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/domain/model"
)

// ChecklistStore owns the checklist execution collection. It is the
// only store with the deleted-ids ledger: deleting a seed execution is
// recorded so a defaults restore never resurrects it.
type ChecklistStore struct {
	eng *engine[model.ChecklistExecution, model.ChecklistExecutionPatch]
}

func newChecklistStore(backend interfaces.Backend, clock interfaces.Clock, seed []model.ChecklistExecution) *ChecklistStore {
	return &ChecklistStore{
		eng: newEngine(backend, clock, config[model.ChecklistExecution, model.ChecklistExecutionPatch]{
			name:   "checklist_executions",
			seed:   seed,
			ledger: true,
			id:     func(e *model.ChecklistExecution) int { return e.ID },
			setID:  func(e *model.ChecklistExecution, id int) { e.ID = id },
			stamp: func(e *model.ChecklistExecution, clock interfaces.Clock) {
				e.CreatedAt = clock()
			},
			clone: model.ChecklistExecution.Clone,
			apply: model.ChecklistExecutionPatch.Apply,
			normalize: func(e *model.ChecklistExecution) error { return e.Normalize() },
		}),
	}
}

func (s *ChecklistStore) List(ctx context.Context) []model.ChecklistExecution {
	return s.eng.List(ctx)
}

func (s *ChecklistStore) Get(ctx context.Context, id int) (model.ChecklistExecution, bool) {
	return s.eng.Get(ctx, id)
}

func (s *ChecklistStore) Add(ctx context.Context, e model.ChecklistExecution) model.ChecklistExecution {
	if e.Items == nil {
		e.Items = []model.ChecklistItem{}
	}
	if e.Findings == nil {
		e.Findings = []model.Finding{}
	}
	return s.eng.Add(ctx, e)
}

func (s *ChecklistStore) Update(ctx context.Context, id int, patch model.ChecklistExecutionPatch) {
	s.eng.Update(ctx, id, patch)
}

func (s *ChecklistStore) Remove(ctx context.Context, id int) {
	s.eng.Remove(ctx, id)
}

// AddItem appends a checklist item to the execution, assigning the next
// item ID within that execution. Missing execution is a silent no-op.
func (s *ChecklistStore) AddItem(ctx context.Context, execID int, item model.ChecklistItem) (model.ChecklistItem, bool) {
	var created model.ChecklistItem
	found := false
	s.eng.mutate(ctx, execID, func(e *model.ChecklistExecution) bool {
		maxID := 0
		for _, existing := range e.Items {
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		item.ID = maxID + 1
		e.Items = append(e.Items, item)
		created = item
		found = true
		return true
	})
	return created, found
}

func (s *ChecklistStore) UpdateItem(ctx context.Context, execID, itemID int, patch model.ChecklistItemPatch) {
	s.eng.mutate(ctx, execID, func(e *model.ChecklistExecution) bool {
		for i := range e.Items {
			if e.Items[i].ID == itemID {
				patch.Apply(&e.Items[i])
				return true
			}
		}
		return false
	})
}

func (s *ChecklistStore) RemoveItem(ctx context.Context, execID, itemID int) {
	s.eng.mutate(ctx, execID, func(e *model.ChecklistExecution) bool {
		for i := range e.Items {
			if e.Items[i].ID == itemID {
				e.Items = append(e.Items[:i], e.Items[i+1:]...)
				return true
			}
		}
		return false
	})
}

// ToggleCompliance flips the compliance flag of one checklist item
func (s *ChecklistStore) ToggleCompliance(ctx context.Context, execID, itemID int) {
	s.eng.mutate(ctx, execID, func(e *model.ChecklistExecution) bool {
		for i := range e.Items {
			if e.Items[i].ID == itemID {
				e.Items[i].Compliant = !e.Items[i].Compliant
				return true
			}
		}
		return false
	})
}

// AddFinding appends a finding, assigning both the next finding ID and
// the next sequence number within the execution. Numbers are never
// reassigned after deletions, so sequences may have gaps.
func (s *ChecklistStore) AddFinding(ctx context.Context, execID int, f model.Finding) (model.Finding, bool) {
	var created model.Finding
	found := false
	s.eng.mutate(ctx, execID, func(e *model.ChecklistExecution) bool {
		maxID, maxNumber := 0, 0
		for _, existing := range e.Findings {
			if existing.ID > maxID {
				maxID = existing.ID
			}
			if existing.Number > maxNumber {
				maxNumber = existing.Number
			}
		}
		f.ID = maxID + 1
		f.Number = maxNumber + 1
		e.Findings = append(e.Findings, f)
		created = f
		found = true
		return true
	})
	return created, found
}

func (s *ChecklistStore) UpdateFinding(ctx context.Context, execID, findingID int, patch model.FindingPatch) {
	s.eng.mutate(ctx, execID, func(e *model.ChecklistExecution) bool {
		for i := range e.Findings {
			if e.Findings[i].ID == findingID {
				patch.Apply(&e.Findings[i])
				return true
			}
		}
		return false
	})
}

func (s *ChecklistStore) RemoveFinding(ctx context.Context, execID, findingID int) {
	s.eng.mutate(ctx, execID, func(e *model.ChecklistExecution) bool {
		for i := range e.Findings {
			if e.Findings[i].ID == findingID {
				e.Findings = append(e.Findings[:i], e.Findings[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *ChecklistStore) ClearAll(ctx context.Context) {
	s.eng.ClearAll(ctx)
}

// RestoreDefaults rebuilds the seed set minus the deleted-ids ledger
func (s *ChecklistStore) RestoreDefaults(ctx context.Context) {
	s.eng.RestoreDefaults(ctx)
}

func (s *ChecklistStore) Count(ctx context.Context) int {
	return s.eng.Count(ctx)
}
