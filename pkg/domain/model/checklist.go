package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/types"
)

// ChecklistItem is a single verification item within a checklist
// execution. Item IDs are scoped to the execution.
type ChecklistItem struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	Compliant    bool   `json:"compliant"`
	Observations string `json:"observations"`
	Evidence     string `json:"evidence"`
}

// Finding is an issue recorded during a checklist execution. ID and
// Number are scoped to the execution. Numbers grow monotonically and
// are never reassigned after deletions, so gaps are normal.
type Finding struct {
	ID             int            `json:"id"`
	Number         int            `json:"number"`
	Description    string         `json:"description"`
	Severity       types.Severity `json:"severity"`
	Recommendation string         `json:"recommendation"`
}

// ChecklistExecution is one run of a verification checklist, optionally
// linked to an audit. AuditName is a denormalized copy of the audit's
// name at link time. Name is derived from the linked audit or the
// category when the execution is saved, not edited freely.
type ChecklistExecution struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	AuditID         *int            `json:"auditId"`
	AuditName       string          `json:"auditName,omitempty"`
	Items           []ChecklistItem `json:"items"`
	Findings        []Finding       `json:"findings"`
	CreatedAt       time.Time       `json:"createdAt"`
	Status          string          `json:"status"`
	Observations    string          `json:"observations,omitempty"`
	Recommendations string          `json:"recommendations,omitempty"`
}

// Clone returns a deep copy of the execution
func (e ChecklistExecution) Clone() ChecklistExecution {
	copied := e
	if e.AuditID != nil {
		id := *e.AuditID
		copied.AuditID = &id
	}
	copied.Items = make([]ChecklistItem, len(e.Items))
	copy(copied.Items, e.Items)
	copied.Findings = make([]Finding, len(e.Findings))
	copy(copied.Findings, e.Findings)
	return copied
}

// Normalize validates a record reconstructed from the persisted blob.
func (e *ChecklistExecution) Normalize() error {
	if e.ID <= 0 {
		return goerr.New("checklist execution has no ID")
	}
	if e.CreatedAt.IsZero() {
		return goerr.New("checklist execution has no creation date", goerr.V("id", e.ID))
	}
	if e.Items == nil {
		e.Items = []ChecklistItem{}
	}
	if e.Findings == nil {
		e.Findings = []Finding{}
	}
	return nil
}

// ChecklistExecutionPatch carries the fields of an execution update.
// Nested collections are managed through their own operations, not
// through the patch.
type ChecklistExecutionPatch struct {
	Name            *string `json:"name,omitempty"`
	Category        *string `json:"category,omitempty"`
	Description     *string `json:"description,omitempty"`
	AuditID         *int    `json:"auditId,omitempty"`
	AuditName       *string `json:"auditName,omitempty"`
	Status          *string `json:"status,omitempty"`
	Observations    *string `json:"observations,omitempty"`
	Recommendations *string `json:"recommendations,omitempty"`
}

// Apply merges the patch onto the execution
func (p ChecklistExecutionPatch) Apply(e *ChecklistExecution) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.AuditID != nil {
		id := *p.AuditID
		e.AuditID = &id
	}
	if p.AuditName != nil {
		e.AuditName = *p.AuditName
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Observations != nil {
		e.Observations = *p.Observations
	}
	if p.Recommendations != nil {
		e.Recommendations = *p.Recommendations
	}
}

// ChecklistItemPatch carries the fields of a checklist item update
type ChecklistItemPatch struct {
	Description  *string `json:"description,omitempty"`
	Compliant    *bool   `json:"compliant,omitempty"`
	Observations *string `json:"observations,omitempty"`
	Evidence     *string `json:"evidence,omitempty"`
}

// Apply merges the patch onto the item
func (p ChecklistItemPatch) Apply(i *ChecklistItem) {
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Compliant != nil {
		i.Compliant = *p.Compliant
	}
	if p.Observations != nil {
		i.Observations = *p.Observations
	}
	if p.Evidence != nil {
		i.Evidence = *p.Evidence
	}
}

// FindingPatch carries the fields of a finding update. ID and Number
// are assigned by the store and never patched.
type FindingPatch struct {
	Description    *string         `json:"description,omitempty"`
	Severity       *types.Severity `json:"severity,omitempty"`
	Recommendation *string         `json:"recommendation,omitempty"`
}

// Apply merges the patch onto the finding
func (p FindingPatch) Apply(f *Finding) {
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Severity != nil {
		f.Severity = *p.Severity
	}
	if p.Recommendation != nil {
		f.Recommendation = *p.Recommendation
	}
}
