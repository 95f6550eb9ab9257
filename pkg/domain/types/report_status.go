package types

import "fmt"

// ReportStatus represents the review status of an audit report
type ReportStatus string

const (
	ReportStatusDraft    ReportStatus = "DRAFT"
	ReportStatusInReview ReportStatus = "IN_REVIEW"
	ReportStatusApproved ReportStatus = "APPROVED"
	ReportStatusFinal    ReportStatus = "FINAL"
)

// AllReportStatuses returns all valid report statuses
func AllReportStatuses() []ReportStatus {
	return []ReportStatus{
		ReportStatusDraft,
		ReportStatusInReview,
		ReportStatusApproved,
		ReportStatusFinal,
	}
}

// IsValid checks if the report status is valid
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusDraft, ReportStatusInReview, ReportStatusApproved, ReportStatusFinal:
		return true
	default:
		return false
	}
}

// String returns the string representation of the report status
func (s ReportStatus) String() string {
	return string(s)
}

// ParseReportStatus parses a string into a ReportStatus
func ParseReportStatus(s string) (ReportStatus, error) {
	status := ReportStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid report status: %s", s)
	}
	return status, nil
}
