package types

import "fmt"

// ReportSeverity represents the severity of a finding included in an
// audit report. Report findings use a coarser scale than execution
// findings, so the two enums are kept separate.
type ReportSeverity string

const (
	ReportSeverityCritical ReportSeverity = "CRITICAL"
	ReportSeverityMajor    ReportSeverity = "MAJOR"
	ReportSeverityMinor    ReportSeverity = "MINOR"
)

// AllReportSeverities returns all valid report finding severities
func AllReportSeverities() []ReportSeverity {
	return []ReportSeverity{
		ReportSeverityCritical,
		ReportSeverityMajor,
		ReportSeverityMinor,
	}
}

// IsValid checks if the report severity is valid
func (s ReportSeverity) IsValid() bool {
	switch s {
	case ReportSeverityCritical, ReportSeverityMajor, ReportSeverityMinor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the report severity
func (s ReportSeverity) String() string {
	return string(s)
}

// ParseReportSeverity parses a string into a ReportSeverity
func ParseReportSeverity(s string) (ReportSeverity, error) {
	sev := ReportSeverity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid report severity: %s", s)
	}
	return sev, nil
}
