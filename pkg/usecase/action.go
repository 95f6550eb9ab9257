package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/store"
)

type ActionUseCase struct {
	actions    *store.ActionStore
	executions *store.ChecklistStore
}

func NewActionUseCase(actions *store.ActionStore, executions *store.ChecklistStore) *ActionUseCase {
	return &ActionUseCase{actions: actions, executions: executions}
}

// FindingView is a flattened finding offered when creating a
// corrective action. The composite ID ties the action back to the
// execution and finding it answers.
type FindingView struct {
	CompositeID    string         `json:"id"`
	ExecutionID    int            `json:"executionId"`
	ExecutionName  string         `json:"executionName"`
	Number         int            `json:"number"`
	Description    string         `json:"description"`
	Severity       types.Severity `json:"severity"`
	Recommendation string         `json:"recommendation"`
}

// AvailableFindings lists every finding across all executions. The
// projection is recomputed from the live collections on each call, so
// deleted executions drop out without bookkeeping.
func (uc *ActionUseCase) AvailableFindings(ctx context.Context) []FindingView {
	views := []FindingView{}
	for _, exec := range uc.executions.List(ctx) {
		for _, f := range exec.Findings {
			views = append(views, FindingView{
				CompositeID:    fmt.Sprintf("%d-%d", exec.ID, f.ID),
				ExecutionID:    exec.ID,
				ExecutionName:  exec.Name,
				Number:         f.Number,
				Description:    f.Description,
				Severity:       f.Severity,
				Recommendation: f.Recommendation,
			})
		}
	}
	return views
}

func (uc *ActionUseCase) CreateAction(ctx context.Context, action model.CorrectiveAction) (model.CorrectiveAction, error) {
	if action.Title == "" {
		return model.CorrectiveAction{}, goerr.New("action title is required")
	}
	if action.DueDate.IsZero() {
		return model.CorrectiveAction{}, goerr.New("due date is required")
	}
	if action.Progress < 0 || action.Progress > 100 {
		return model.CorrectiveAction{}, goerr.New("progress must be between 0 and 100", goerr.V("progress", action.Progress))
	}
	if action.Status == "" {
		action.Status = types.ActionStatusPending
	}
	if !action.Status.IsValid() {
		return model.CorrectiveAction{}, goerr.New("invalid action status", goerr.V("status", action.Status))
	}
	if action.Priority != "" && !action.Priority.IsValid() {
		return model.CorrectiveAction{}, goerr.New("invalid priority", goerr.V("priority", action.Priority))
	}

	return uc.actions.Add(ctx, action), nil
}

func (uc *ActionUseCase) UpdateAction(ctx context.Context, id int, patch model.CorrectiveActionPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return goerr.New("action title is required")
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return goerr.New("progress must be between 0 and 100", goerr.V("progress", *patch.Progress))
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return goerr.New("invalid action status", goerr.V("status", *patch.Status))
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return goerr.New("invalid priority", goerr.V("priority", *patch.Priority))
	}

	uc.actions.Update(ctx, id, patch)
	return nil
}

func (uc *ActionUseCase) DeleteAction(ctx context.Context, id int) {
	uc.actions.Remove(ctx, id)
}

func (uc *ActionUseCase) GetAction(ctx context.Context, id int) (model.CorrectiveAction, bool) {
	return uc.actions.Get(ctx, id)
}

func (uc *ActionUseCase) ListActions(ctx context.Context) []model.CorrectiveAction {
	return uc.actions.List(ctx)
}
