package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/store"
)

const (
	minPlanYear = 2000
	maxPlanYear = 2100
)

type AuditUseCase struct {
	audits *store.AuditStore
}

func NewAuditUseCase(audits *store.AuditStore) *AuditUseCase {
	return &AuditUseCase{audits: audits}
}

func (uc *AuditUseCase) CreateAudit(ctx context.Context, audit model.Audit) (model.Audit, error) {
	if audit.Name == "" {
		return model.Audit{}, goerr.New("audit name is required")
	}
	if audit.PlanYear < minPlanYear || audit.PlanYear > maxPlanYear {
		return model.Audit{}, goerr.New("plan year out of range", goerr.V("planYear", audit.PlanYear))
	}
	if audit.StartDate.IsZero() || audit.EndDate.IsZero() {
		return model.Audit{}, goerr.New("start and end dates are required")
	}
	if audit.EndDate.Before(audit.StartDate) {
		return model.Audit{}, goerr.New("end date precedes start date",
			goerr.V("start", audit.StartDate), goerr.V("end", audit.EndDate))
	}
	if audit.Status == "" {
		audit.Status = types.AuditStatusPending
	}
	if !audit.Status.IsValid() {
		return model.Audit{}, goerr.New("invalid audit status", goerr.V("status", audit.Status))
	}

	return uc.audits.Add(ctx, audit), nil
}

func (uc *AuditUseCase) UpdateAudit(ctx context.Context, id int, patch model.AuditPatch) error {
	if patch.Name != nil && *patch.Name == "" {
		return goerr.New("audit name is required")
	}
	if patch.PlanYear != nil && (*patch.PlanYear < minPlanYear || *patch.PlanYear > maxPlanYear) {
		return goerr.New("plan year out of range", goerr.V("planYear", *patch.PlanYear))
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return goerr.New("invalid audit status", goerr.V("status", *patch.Status))
	}

	uc.audits.Update(ctx, id, patch)
	return nil
}

func (uc *AuditUseCase) DeleteAudit(ctx context.Context, id int) {
	uc.audits.Remove(ctx, id)
}

func (uc *AuditUseCase) GetAudit(ctx context.Context, id int) (model.Audit, bool) {
	return uc.audits.Get(ctx, id)
}

func (uc *AuditUseCase) ListAudits(ctx context.Context) []model.Audit {
	return uc.audits.List(ctx)
}
