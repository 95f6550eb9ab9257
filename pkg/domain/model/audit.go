package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/types"
)

// Audit is a scheduled or recorded audit engagement. Type holds the
// display name of an AuditType at the time the audit was saved; it is a
// denormalized reference and may go stale if the type is later renamed.
type Audit struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	PlanYear        int               `json:"planYear"`
	StartDate       time.Time         `json:"startDate"`
	EndDate         time.Time         `json:"endDate"`
	Auditor         string            `json:"auditor"`
	Status          types.AuditStatus `json:"status"`
	Description     string            `json:"description"`
	Scope           string            `json:"scope"`
	Department      string            `json:"department"`
	Procedures      string            `json:"procedures"`
	Observations    string            `json:"observations,omitempty"`
	Recommendations string            `json:"recommendations,omitempty"`
}

// Clone returns a copy of the audit
func (a Audit) Clone() Audit {
	return a
}

// Normalize validates a record reconstructed from the persisted blob.
func (a *Audit) Normalize() error {
	if a.ID <= 0 {
		return goerr.New("audit has no ID")
	}
	if a.StartDate.IsZero() || a.EndDate.IsZero() {
		return goerr.New("audit has no reconstructable dates", goerr.V("id", a.ID))
	}
	return nil
}

// AuditPatch carries the fields of an audit update. Nil fields are left
// unchanged.
type AuditPatch struct {
	Name            *string            `json:"name,omitempty"`
	Type            *string            `json:"type,omitempty"`
	PlanYear        *int               `json:"planYear,omitempty"`
	StartDate       *time.Time         `json:"startDate,omitempty"`
	EndDate         *time.Time         `json:"endDate,omitempty"`
	Auditor         *string            `json:"auditor,omitempty"`
	Status          *types.AuditStatus `json:"status,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Scope           *string            `json:"scope,omitempty"`
	Department      *string            `json:"department,omitempty"`
	Procedures      *string            `json:"procedures,omitempty"`
	Observations    *string            `json:"observations,omitempty"`
	Recommendations *string            `json:"recommendations,omitempty"`
}

// Apply merges the patch onto the audit
func (p AuditPatch) Apply(a *Audit) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.PlanYear != nil {
		a.PlanYear = *p.PlanYear
	}
	if p.StartDate != nil {
		a.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		a.EndDate = *p.EndDate
	}
	if p.Auditor != nil {
		a.Auditor = *p.Auditor
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Scope != nil {
		a.Scope = *p.Scope
	}
	if p.Department != nil {
		a.Department = *p.Department
	}
	if p.Procedures != nil {
		a.Procedures = *p.Procedures
	}
	if p.Observations != nil {
		a.Observations = *p.Observations
	}
	if p.Recommendations != nil {
		a.Recommendations = *p.Recommendations
	}
}
