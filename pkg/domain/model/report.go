package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/types"
)

// ReportFinding is a finding included in an audit report. ID and Number
// are scoped to the report, with the same monotonic-never-renumbered
// rule as execution findings.
type ReportFinding struct {
	ID             int                  `json:"id"`
	Number         int                  `json:"number"`
	Description    string               `json:"description"`
	Severity       types.ReportSeverity `json:"severity"`
	Recommendation string               `json:"recommendation"`
	DueDate        *time.Time           `json:"dueDate,omitempty"`
}

// Report is an assembled audit report with narrative sections and a
// findings list. AuditName is a denormalized copy of the source audit's
// name.
type Report struct {
	ID              int                `json:"id"`
	Title           string             `json:"title"`
	AuditID         int                `json:"auditId"`
	AuditName       string             `json:"auditName"`
	CreatedAt       time.Time          `json:"createdAt"`
	ReviewedAt      *time.Time         `json:"reviewedAt,omitempty"`
	Status          types.ReportStatus `json:"status"`
	Summary         string             `json:"summary"`
	Scope           string             `json:"scope"`
	Methodology     string             `json:"methodology"`
	Conclusions     string             `json:"conclusions"`
	Recommendations string             `json:"recommendations"`
	Observations    string             `json:"observations"`
	Findings        []ReportFinding    `json:"findings"`
}

// Clone returns a deep copy of the report
func (r Report) Clone() Report {
	copied := r
	if r.ReviewedAt != nil {
		t := *r.ReviewedAt
		copied.ReviewedAt = &t
	}
	copied.Findings = make([]ReportFinding, len(r.Findings))
	copy(copied.Findings, r.Findings)
	for i, f := range r.Findings {
		if f.DueDate != nil {
			t := *f.DueDate
			copied.Findings[i].DueDate = &t
		}
	}
	return copied
}

// Normalize validates a record reconstructed from the persisted blob.
func (r *Report) Normalize() error {
	if r.ID <= 0 {
		return goerr.New("report has no ID")
	}
	if r.CreatedAt.IsZero() {
		return goerr.New("report has no creation date", goerr.V("id", r.ID))
	}
	if r.Findings == nil {
		r.Findings = []ReportFinding{}
	}
	return nil
}

// ReportPatch carries the fields of a report update. The findings list
// is managed through its own operations, not through the patch.
type ReportPatch struct {
	Title           *string             `json:"title,omitempty"`
	AuditID         *int                `json:"auditId,omitempty"`
	AuditName       *string             `json:"auditName,omitempty"`
	ReviewedAt      *time.Time          `json:"reviewedAt,omitempty"`
	Status          *types.ReportStatus `json:"status,omitempty"`
	Summary         *string             `json:"summary,omitempty"`
	Scope           *string             `json:"scope,omitempty"`
	Methodology     *string             `json:"methodology,omitempty"`
	Conclusions     *string             `json:"conclusions,omitempty"`
	Recommendations *string             `json:"recommendations,omitempty"`
	Observations    *string             `json:"observations,omitempty"`
}

// Apply merges the patch onto the report
func (p ReportPatch) Apply(r *Report) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.AuditID != nil {
		r.AuditID = *p.AuditID
	}
	if p.AuditName != nil {
		r.AuditName = *p.AuditName
	}
	if p.ReviewedAt != nil {
		t := *p.ReviewedAt
		r.ReviewedAt = &t
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Summary != nil {
		r.Summary = *p.Summary
	}
	if p.Scope != nil {
		r.Scope = *p.Scope
	}
	if p.Methodology != nil {
		r.Methodology = *p.Methodology
	}
	if p.Conclusions != nil {
		r.Conclusions = *p.Conclusions
	}
	if p.Recommendations != nil {
		r.Recommendations = *p.Recommendations
	}
	if p.Observations != nil {
		r.Observations = *p.Observations
	}
}

// ReportFindingPatch carries the fields of a report finding update
type ReportFindingPatch struct {
	Description    *string               `json:"description,omitempty"`
	Severity       *types.ReportSeverity `json:"severity,omitempty"`
	Recommendation *string               `json:"recommendation,omitempty"`
	DueDate        *time.Time            `json:"dueDate,omitempty"`
}

// Apply merges the patch onto the report finding
func (p ReportFindingPatch) Apply(f *ReportFinding) {
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Severity != nil {
		f.Severity = *p.Severity
	}
	if p.Recommendation != nil {
		f.Recommendation = *p.Recommendation
	}
	if p.DueDate != nil {
		t := *p.DueDate
		f.DueDate = &t
	}
}
