package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/kv/memory"
	"github.com/revisor-lab/revisor/pkg/store"
	"github.com/revisor-lab/revisor/pkg/usecase"
)

func newUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	backend := memory.New()
	stores := store.New(backend)

	cfg := usecase.DefaultAuthConfig()
	cfg.LoginDelay = 0
	return usecase.New(stores, backend, usecase.WithAuthConfig(cfg))
}

func intPtr(v int) *int { return &v }

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestCreateAuditTypeValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	t.Run("valid type", func(t *testing.T) {
		created, err := uc.AuditTypes.CreateType(ctx, "Compliance", "Regulatory compliance audits", "#ff8800", true)
		gt.NoError(t, err).Required()
		gt.Number(t, created.ID).Equal(7)
		gt.Value(t, created.Color).Equal("#ff8800")
	})

	t.Run("empty name fails", func(t *testing.T) {
		_, err := uc.AuditTypes.CreateType(ctx, "", "desc", "#ff8800", true)
		gt.Value(t, err).NotNil()
	})

	t.Run("bad color fails", func(t *testing.T) {
		_, err := uc.AuditTypes.CreateType(ctx, "Compliance", "desc", "red", true)
		gt.Value(t, err).NotNil()
	})
}

func TestCreateAuditValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	base := model.Audit{
		Name:      "Procurement Audit",
		Type:      "Finance",
		PlanYear:  2025,
		StartDate: date(2025, 3, 1),
		EndDate:   date(2025, 3, 20),
		Auditor:   "Juan Perez",
	}

	t.Run("valid audit defaults to pending", func(t *testing.T) {
		created, err := uc.Audits.CreateAudit(ctx, base)
		gt.NoError(t, err).Required()
		gt.Value(t, created.Status).Equal(types.AuditStatusPending)
	})

	t.Run("end before start fails", func(t *testing.T) {
		bad := base
		bad.StartDate, bad.EndDate = bad.EndDate, bad.StartDate
		_, err := uc.Audits.CreateAudit(ctx, bad)
		gt.Value(t, err).NotNil()
	})

	t.Run("plan year out of range fails", func(t *testing.T) {
		bad := base
		bad.PlanYear = 1950
		_, err := uc.Audits.CreateAudit(ctx, bad)
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid status patch fails", func(t *testing.T) {
		bad := types.AuditStatus("DONE")
		err := uc.Audits.UpdateAudit(ctx, 1, model.AuditPatch{Status: &bad})
		gt.Value(t, err).NotNil()
	})
}

func TestExecutionDerivedName(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	t.Run("named after linked audit", func(t *testing.T) {
		created, err := uc.Checklists.CreateExecution(ctx, model.ChecklistExecution{
			AuditID: intPtr(1),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Name).Equal("Execution - Information Security Audit")
		gt.Value(t, created.AuditName).Equal("Information Security Audit")
	})

	t.Run("falls back to category", func(t *testing.T) {
		created, err := uc.Checklists.CreateExecution(ctx, model.ChecklistExecution{
			Category: "Security",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Name).Equal("Execution - Security")
	})

	t.Run("generic when nothing to derive from", func(t *testing.T) {
		created, err := uc.Checklists.CreateExecution(ctx, model.ChecklistExecution{
			Description: "Ad-hoc review",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Name).Equal("Audit Execution")
	})

	t.Run("dangling audit link keeps empty audit name", func(t *testing.T) {
		created, err := uc.Checklists.CreateExecution(ctx, model.ChecklistExecution{
			AuditID:  intPtr(999),
			Category: "Finance",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.AuditName).Equal("")
		gt.Value(t, created.Name).Equal("Execution - Finance")
	})

	t.Run("name recomputed on update", func(t *testing.T) {
		created, err := uc.Checklists.CreateExecution(ctx, model.ChecklistExecution{
			Category: "Security",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Checklists.UpdateExecution(ctx, created.ID, model.ChecklistExecutionPatch{
			AuditID: intPtr(2),
		}))
		updated, ok := uc.Checklists.GetExecution(ctx, created.ID)
		gt.Value(t, ok).Equal(true)
		gt.Value(t, updated.Name).Equal("Execution - Human Resources Audit")
	})

	t.Run("empty execution fails", func(t *testing.T) {
		_, err := uc.Checklists.CreateExecution(ctx, model.ChecklistExecution{})
		gt.Value(t, err).NotNil()
	})
}

func TestAvailableFindings(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	views := uc.Actions.AvailableFindings(ctx)
	gt.Number(t, len(views)).Equal(1)
	gt.Value(t, views[0].CompositeID).Equal("1-1")
	gt.Value(t, views[0].ExecutionID).Equal(1)
	gt.Value(t, views[0].Severity).Equal(types.SeverityMedium)

	// The projection follows the live collections.
	gt.NoError(t, uc.Checklists.AddFinding(ctx, 2, model.Finding{
		Description: "Contracts lack renewal dates",
		Severity:    types.SeverityLow,
	}))
	views = uc.Actions.AvailableFindings(ctx)
	gt.Number(t, len(views)).Equal(2)

	uc.Checklists.DeleteExecution(ctx, 1)
	views = uc.Actions.AvailableFindings(ctx)
	gt.Number(t, len(views)).Equal(1)
	gt.Value(t, views[0].ExecutionID).Equal(2)
}

func TestActionValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	t.Run("progress bounds", func(t *testing.T) {
		_, err := uc.Actions.CreateAction(ctx, model.CorrectiveAction{
			Title:    "Fix access logs",
			DueDate:  date(2025, 9, 1),
			Progress: 150,
		})
		gt.Value(t, err).NotNil()

		bad := -1
		gotErr := uc.Actions.UpdateAction(ctx, 1, model.CorrectiveActionPatch{Progress: &bad})
		gt.Value(t, gotErr).NotNil()
	})

	t.Run("missing due date fails", func(t *testing.T) {
		_, err := uc.Actions.CreateAction(ctx, model.CorrectiveAction{Title: "Fix access logs"})
		gt.Value(t, err).NotNil()
	})

	t.Run("status defaults to pending", func(t *testing.T) {
		created, err := uc.Actions.CreateAction(ctx, model.CorrectiveAction{
			Title:   "Fix access logs",
			DueDate: date(2025, 9, 1),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Status).Equal(types.ActionStatusPending)
	})
}

func TestReportPrefill(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	t.Run("execution with findings", func(t *testing.T) {
		prefill, err := uc.Reports.Prefill(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Value(t, strings.HasPrefix(prefill.Observations, "Finding #1:")).Equal(true)
		gt.Value(t, strings.HasPrefix(prefill.Recommendations, "Recommendation #1:")).Equal(true)
	})

	t.Run("execution without findings", func(t *testing.T) {
		prefill, err := uc.Reports.Prefill(ctx, 2)
		gt.NoError(t, err).Required()
		gt.Value(t, prefill.Observations).Equal("No findings were recorded in this audit execution.")
		gt.Value(t, prefill.Recommendations).Equal("No recommendations were recorded in this audit execution.")
	})

	t.Run("unknown execution", func(t *testing.T) {
		_, err := uc.Reports.Prefill(ctx, 999)
		gt.Error(t, err)
	})
}

func TestReportValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	created, err := uc.Reports.CreateReport(ctx, model.Report{Title: "Q3 Security Report"})
	gt.NoError(t, err).Required()
	gt.Value(t, created.Status).Equal(types.ReportStatusDraft)

	_, err = uc.Reports.CreateReport(ctx, model.Report{})
	gt.Value(t, err).NotNil()

	bad := types.ReportSeverity("HUGE")
	err = uc.Reports.UpdateFinding(ctx, created.ID, 1, model.ReportFindingPatch{Severity: &bad})
	gt.Value(t, err).NotNil()
}
