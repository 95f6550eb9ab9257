package types

import "fmt"

// ActionStatus represents the status of a corrective action
type ActionStatus string

const (
	ActionStatusPending     ActionStatus = "PENDING"
	ActionStatusInProgress  ActionStatus = "IN_PROGRESS"
	ActionStatusRegularized ActionStatus = "REGULARIZED"
	ActionStatusVerified    ActionStatus = "VERIFIED"
)

// AllActionStatuses returns all valid corrective action statuses
func AllActionStatuses() []ActionStatus {
	return []ActionStatus{
		ActionStatusPending,
		ActionStatusInProgress,
		ActionStatusRegularized,
		ActionStatusVerified,
	}
}

// IsValid checks if the action status is valid
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending,
		ActionStatusInProgress,
		ActionStatusRegularized,
		ActionStatusVerified:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action status
func (s ActionStatus) String() string {
	return string(s)
}

// ParseActionStatus parses a string into an ActionStatus
func ParseActionStatus(s string) (ActionStatus, error) {
	status := ActionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid action status: %s", s)
	}
	return status, nil
}
