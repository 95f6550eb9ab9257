package model

import (
	"regexp"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// AuditType is a user-defined category of audits. Audits reference a
// type by its display name, not by ID, so renaming or deactivating a
// type leaves existing audits untouched.
type AuditType struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

var colorCodePattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColorCode reports whether s is a #rrggbb color code.
func ValidColorCode(s string) bool {
	return colorCodePattern.MatchString(s)
}

// Clone returns a copy of the audit type
func (t AuditType) Clone() AuditType {
	return t
}

// Normalize validates a record reconstructed from the persisted blob.
// A record that fails normalization is treated as absent.
func (t *AuditType) Normalize() error {
	if t.ID <= 0 {
		return goerr.New("audit type has no ID")
	}
	if t.CreatedAt.IsZero() {
		return goerr.New("audit type has no creation date", goerr.V("id", t.ID))
	}
	return nil
}

// AuditTypePatch carries the fields of an audit type update. Nil fields
// are left unchanged.
type AuditTypePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// Apply merges the patch onto the audit type
func (p AuditTypePatch) Apply(t *AuditType) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
}
