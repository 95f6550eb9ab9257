package types

import "fmt"

// AuditStatus represents the lifecycle status of an audit
type AuditStatus string

const (
	AuditStatusPending    AuditStatus = "PENDING"
	AuditStatusInProgress AuditStatus = "IN_PROGRESS"
	AuditStatusCompleted  AuditStatus = "COMPLETED"
)

// AllAuditStatuses returns all valid audit statuses
func AllAuditStatuses() []AuditStatus {
	return []AuditStatus{
		AuditStatusPending,
		AuditStatusInProgress,
		AuditStatusCompleted,
	}
}

// IsValid checks if the audit status is valid
func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusPending, AuditStatusInProgress, AuditStatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the audit status
func (s AuditStatus) String() string {
	return string(s)
}

// ParseAuditStatus parses a string into an AuditStatus
func ParseAuditStatus(s string) (AuditStatus, error) {
	status := AuditStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid audit status: %s", s)
	}
	return status, nil
}
