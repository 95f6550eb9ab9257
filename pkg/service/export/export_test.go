package export_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/revisor-lab/revisor/pkg/domain/model"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/service/export"
)

func sampleReport(findings int) model.Report {
	report := model.Report{
		ID:        1,
		Title:     "Information Security Report",
		AuditName: "Information Security Audit",
		CreatedAt: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		Status:    types.ReportStatusDraft,
		Summary:   "The audit covered the authentication and logging controls.",
		Scope:     "IT department",
	}
	for i := 1; i <= findings; i++ {
		report.Findings = append(report.Findings, model.ReportFinding{
			ID:          i,
			Number:      i,
			Description: fmt.Sprintf("Finding number %d", i),
			Severity:    types.ReportSeverityMinor,
		})
	}
	return report
}

func TestRenderSectionOrder(t *testing.T) {
	svc := export.New()
	doc, err := svc.Render(sampleReport(1))
	gt.NoError(t, err).Required()
	gt.Value(t, doc.Title).Equal("Information Security Report")

	body := doc.Pages[0]
	order := []string{
		"Information Security Report",
		"Executive Summary",
		"Scope",
		"Methodology",
		"Conclusions",
		"Observations",
		"Recommendations",
	}
	last := -1
	for _, section := range order {
		idx := strings.Index(body, section)
		gt.Value(t, idx > last).Equal(true)
		last = idx
	}

	// Empty sections still appear, marked as not provided.
	gt.Value(t, strings.Contains(body, "(not provided)")).Equal(true)
}

func TestRenderFindingPagination(t *testing.T) {
	svc := export.New()

	t.Run("few findings fit one page", func(t *testing.T) {
		doc, err := svc.Render(sampleReport(3))
		gt.NoError(t, err).Required()
		gt.Number(t, len(doc.Pages)).Equal(2)
	})

	t.Run("overflow creates continuation pages", func(t *testing.T) {
		doc, err := svc.Render(sampleReport(12))
		gt.NoError(t, err).Required()
		gt.Number(t, len(doc.Pages)).Equal(4)
		gt.Value(t, strings.Contains(doc.Pages[2], "Findings (continued)")).Equal(true)
		gt.Value(t, strings.Contains(doc.Pages[3], "Finding #11")).Equal(true)
	})

	t.Run("no findings renders placeholder", func(t *testing.T) {
		doc, err := svc.Render(sampleReport(0))
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(doc.Pages[1], "No findings recorded.")).Equal(true)
	})

	t.Run("pages are numbered", func(t *testing.T) {
		doc, err := svc.Render(sampleReport(7))
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(doc.Pages[0], "Page 1 of 3")).Equal(true)
		gt.Value(t, strings.Contains(doc.Pages[2], "Page 3 of 3")).Equal(true)
	})
}

func TestRenderRequiresTitle(t *testing.T) {
	svc := export.New()
	_, err := svc.Render(model.Report{ID: 9})
	gt.Error(t, err)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)
	name := export.Filename(sampleReport(0), now)
	gt.Value(t, name).Equal("information-security-report-20250831.txt")

	fallback := export.Filename(model.Report{ID: 7, Title: "???"}, now)
	gt.Value(t, fallback).Equal("report-7-20250831.txt")
}
