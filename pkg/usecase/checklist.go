package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/store"
)

type ChecklistUseCase struct {
	executions *store.ChecklistStore
	audits     *store.AuditStore
}

func NewChecklistUseCase(executions *store.ChecklistStore, audits *store.AuditStore) *ChecklistUseCase {
	return &ChecklistUseCase{executions: executions, audits: audits}
}

// deriveName builds the display name stored on each execution. The
// name is recomputed on every save so a renamed audit shows up after
// the next update.
func deriveName(auditName, category string) string {
	if auditName != "" {
		return "Execution - " + auditName
	}
	if category != "" {
		return "Execution - " + category
	}
	return "Audit Execution"
}

// resolveAuditName looks up the linked audit, if any. A dangling
// AuditID is not an error; the denormalized name simply stays empty.
func (uc *ChecklistUseCase) resolveAuditName(ctx context.Context, auditID *int) string {
	if auditID == nil {
		return ""
	}
	audit, ok := uc.audits.Get(ctx, *auditID)
	if !ok {
		return ""
	}
	return audit.Name
}

func (uc *ChecklistUseCase) CreateExecution(ctx context.Context, exec model.ChecklistExecution) (model.ChecklistExecution, error) {
	if exec.Category == "" && exec.Description == "" && exec.AuditID == nil {
		return model.ChecklistExecution{}, goerr.New("execution needs a category, description or linked audit")
	}

	exec.AuditName = uc.resolveAuditName(ctx, exec.AuditID)
	exec.Name = deriveName(exec.AuditName, exec.Category)
	return uc.executions.Add(ctx, exec), nil
}

func (uc *ChecklistUseCase) UpdateExecution(ctx context.Context, id int, patch model.ChecklistExecutionPatch) error {
	current, ok := uc.executions.Get(ctx, id)
	if !ok {
		return nil
	}

	// Apply the patch to a scratch copy to learn the effective
	// audit link and category, then derive the stored name from
	// those merged values.
	merged := current.Clone()
	patch.Apply(&merged)
	auditName := uc.resolveAuditName(ctx, merged.AuditID)
	name := deriveName(auditName, merged.Category)
	patch.AuditName = &auditName
	patch.Name = &name

	uc.executions.Update(ctx, id, patch)
	return nil
}

func (uc *ChecklistUseCase) DeleteExecution(ctx context.Context, id int) {
	uc.executions.Remove(ctx, id)
}

func (uc *ChecklistUseCase) GetExecution(ctx context.Context, id int) (model.ChecklistExecution, bool) {
	return uc.executions.Get(ctx, id)
}

func (uc *ChecklistUseCase) ListExecutions(ctx context.Context) []model.ChecklistExecution {
	return uc.executions.List(ctx)
}

func (uc *ChecklistUseCase) RestoreDefaults(ctx context.Context) {
	uc.executions.RestoreDefaults(ctx)
}

func (uc *ChecklistUseCase) AddItem(ctx context.Context, execID int, item model.ChecklistItem) error {
	if item.Description == "" {
		return goerr.New("item description is required")
	}
	uc.executions.AddItem(ctx, execID, item)
	return nil
}

func (uc *ChecklistUseCase) UpdateItem(ctx context.Context, execID, itemID int, patch model.ChecklistItemPatch) {
	uc.executions.UpdateItem(ctx, execID, itemID, patch)
}

func (uc *ChecklistUseCase) RemoveItem(ctx context.Context, execID, itemID int) {
	uc.executions.RemoveItem(ctx, execID, itemID)
}

func (uc *ChecklistUseCase) ToggleCompliance(ctx context.Context, execID, itemID int) {
	uc.executions.ToggleCompliance(ctx, execID, itemID)
}

func (uc *ChecklistUseCase) AddFinding(ctx context.Context, execID int, finding model.Finding) error {
	if finding.Description == "" {
		return goerr.New("finding description is required")
	}
	if finding.Severity != "" && !finding.Severity.IsValid() {
		return goerr.New("invalid severity", goerr.V("severity", finding.Severity))
	}
	uc.executions.AddFinding(ctx, execID, finding)
	return nil
}

func (uc *ChecklistUseCase) UpdateFinding(ctx context.Context, execID, findingID int, patch model.FindingPatch) error {
	if patch.Severity != nil && !patch.Severity.IsValid() {
		return goerr.New("invalid severity", goerr.V("severity", *patch.Severity))
	}
	uc.executions.UpdateFinding(ctx, execID, findingID, patch)
	return nil
}

func (uc *ChecklistUseCase) RemoveFinding(ctx context.Context, execID, findingID int) {
	uc.executions.RemoveFinding(ctx, execID, findingID)
}
