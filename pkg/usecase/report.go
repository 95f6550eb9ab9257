package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/store"
)

type ReportUseCase struct {
	reports    *store.ReportStore
	executions *store.ChecklistStore
}

func NewReportUseCase(reports *store.ReportStore, executions *store.ChecklistStore) *ReportUseCase {
	return &ReportUseCase{reports: reports, executions: executions}
}

// ReportPrefill carries draft text composed from an execution's
// findings, offered to the author when a new report is started.
type ReportPrefill struct {
	Observations    string `json:"observations"`
	Recommendations string `json:"recommendations"`
}

const (
	noFindingsText        = "No findings were recorded in this audit execution."
	noRecommendationsText = "No recommendations were recorded in this audit execution."
)

// Prefill composes observation and recommendation text from the
// findings of the given execution.
func (uc *ReportUseCase) Prefill(ctx context.Context, execID int) (ReportPrefill, error) {
	exec, ok := uc.executions.Get(ctx, execID)
	if !ok {
		return ReportPrefill{}, goerr.Wrap(ErrExecutionNotFound, "prefill source missing", goerr.V("executionID", execID))
	}

	var obs, recs []string
	for _, f := range exec.Findings {
		if f.Description != "" {
			obs = append(obs, fmt.Sprintf("Finding #%d: %s", f.Number, f.Description))
		}
		if f.Recommendation != "" {
			recs = append(recs, fmt.Sprintf("Recommendation #%d: %s", f.Number, f.Recommendation))
		}
	}

	prefill := ReportPrefill{
		Observations:    noFindingsText,
		Recommendations: noRecommendationsText,
	}
	if len(obs) > 0 {
		prefill.Observations = strings.Join(obs, "\n")
	}
	if len(recs) > 0 {
		prefill.Recommendations = strings.Join(recs, "\n")
	}
	return prefill, nil
}

func (uc *ReportUseCase) CreateReport(ctx context.Context, report model.Report) (model.Report, error) {
	if report.Title == "" {
		return model.Report{}, goerr.New("report title is required")
	}
	if report.Status == "" {
		report.Status = types.ReportStatusDraft
	}
	if !report.Status.IsValid() {
		return model.Report{}, goerr.New("invalid report status", goerr.V("status", report.Status))
	}

	return uc.reports.Add(ctx, report), nil
}

func (uc *ReportUseCase) UpdateReport(ctx context.Context, id int, patch model.ReportPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return goerr.New("report title is required")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return goerr.New("invalid report status", goerr.V("status", *patch.Status))
	}

	uc.reports.Update(ctx, id, patch)
	return nil
}

func (uc *ReportUseCase) DeleteReport(ctx context.Context, id int) {
	uc.reports.Remove(ctx, id)
}

func (uc *ReportUseCase) GetReport(ctx context.Context, id int) (model.Report, bool) {
	return uc.reports.Get(ctx, id)
}

func (uc *ReportUseCase) ListReports(ctx context.Context) []model.Report {
	return uc.reports.List(ctx)
}

func (uc *ReportUseCase) AddFinding(ctx context.Context, reportID int, finding model.ReportFinding) error {
	if finding.Description == "" {
		return goerr.New("finding description is required")
	}
	if finding.Severity != "" && !finding.Severity.IsValid() {
		return goerr.New("invalid report severity", goerr.V("severity", finding.Severity))
	}
	uc.reports.AddFinding(ctx, reportID, finding)
	return nil
}

func (uc *ReportUseCase) UpdateFinding(ctx context.Context, reportID, findingID int, patch model.ReportFindingPatch) error {
	if patch.Severity != nil && !patch.Severity.IsValid() {
		return goerr.New("invalid report severity", goerr.V("severity", *patch.Severity))
	}
	uc.reports.UpdateFinding(ctx, reportID, findingID, patch)
	return nil
}

func (uc *ReportUseCase) RemoveFinding(ctx context.Context, reportID, findingID int) {
	uc.reports.RemoveFinding(ctx, reportID, findingID)
}
