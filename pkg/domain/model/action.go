package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/types"
)

// CorrectiveAction tracks remediation of a finding. FindingRef is the
// composite key "<executionID>-<findingID>" of the source finding;
// FindingDescription and AuditName are denormalized copies taken when
// the action was linked.
type CorrectiveAction struct {
	ID                 int                  `json:"id"`
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	AuditID            int                  `json:"auditId"`
	AuditName          string               `json:"auditName"`
	FindingRef         string               `json:"findingRef"`
	FindingDescription string               `json:"findingDescription"`
	Responsible        string               `json:"responsible"`
	Priority           types.ActionPriority `json:"priority"`
	Status             types.ActionStatus   `json:"status"`
	CreatedAt          time.Time            `json:"createdAt"`
	DueDate            time.Time            `json:"dueDate"`
	CompletedAt        *time.Time           `json:"completedAt,omitempty"`
	Progress           int                  `json:"progress"`
	Observations       string               `json:"observations"`
	Resources          string               `json:"resources"`
	Comments           string               `json:"comments"`
}

// Clone returns a copy of the corrective action
func (a CorrectiveAction) Clone() CorrectiveAction {
	copied := a
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		copied.CompletedAt = &t
	}
	return copied
}

// Normalize validates a record reconstructed from the persisted blob.
func (a *CorrectiveAction) Normalize() error {
	if a.ID <= 0 {
		return goerr.New("corrective action has no ID")
	}
	if a.CreatedAt.IsZero() || a.DueDate.IsZero() {
		return goerr.New("corrective action has no reconstructable dates", goerr.V("id", a.ID))
	}
	return nil
}

// CorrectiveActionPatch carries the fields of a corrective action
// update. Nil fields are left unchanged.
type CorrectiveActionPatch struct {
	Title              *string               `json:"title,omitempty"`
	Description        *string               `json:"description,omitempty"`
	AuditID            *int                  `json:"auditId,omitempty"`
	AuditName          *string               `json:"auditName,omitempty"`
	FindingRef         *string               `json:"findingRef,omitempty"`
	FindingDescription *string               `json:"findingDescription,omitempty"`
	Responsible        *string               `json:"responsible,omitempty"`
	Priority           *types.ActionPriority `json:"priority,omitempty"`
	Status             *types.ActionStatus   `json:"status,omitempty"`
	DueDate            *time.Time            `json:"dueDate,omitempty"`
	CompletedAt        *time.Time            `json:"completedAt,omitempty"`
	Progress           *int                  `json:"progress,omitempty"`
	Observations       *string               `json:"observations,omitempty"`
	Resources          *string               `json:"resources,omitempty"`
	Comments           *string               `json:"comments,omitempty"`
}

// Apply merges the patch onto the corrective action
func (p CorrectiveActionPatch) Apply(a *CorrectiveAction) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.AuditID != nil {
		a.AuditID = *p.AuditID
	}
	if p.AuditName != nil {
		a.AuditName = *p.AuditName
	}
	if p.FindingRef != nil {
		a.FindingRef = *p.FindingRef
	}
	if p.FindingDescription != nil {
		a.FindingDescription = *p.FindingDescription
	}
	if p.Responsible != nil {
		a.Responsible = *p.Responsible
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.DueDate != nil {
		a.DueDate = *p.DueDate
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		a.CompletedAt = &t
	}
	if p.Progress != nil {
		a.Progress = *p.Progress
	}
	if p.Observations != nil {
		a.Observations = *p.Observations
	}
	if p.Resources != nil {
		a.Resources = *p.Resources
	}
	if p.Comments != nil {
		a.Comments = *p.Comments
	}
}
