package types

import "fmt"

// ActionPriority represents the priority of a corrective action
type ActionPriority string

const (
	ActionPriorityHigh   ActionPriority = "HIGH"
	ActionPriorityMedium ActionPriority = "MEDIUM"
	ActionPriorityLow    ActionPriority = "LOW"
)

// AllActionPriorities returns all valid corrective action priorities
func AllActionPriorities() []ActionPriority {
	return []ActionPriority{
		ActionPriorityHigh,
		ActionPriorityMedium,
		ActionPriorityLow,
	}
}

// IsValid checks if the action priority is valid
func (p ActionPriority) IsValid() bool {
	switch p {
	case ActionPriorityHigh, ActionPriorityMedium, ActionPriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action priority
func (p ActionPriority) String() string {
	return string(p)
}

// ParseActionPriority parses a string into an ActionPriority
func ParseActionPriority(s string) (ActionPriority, error) {
	priority := ActionPriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid action priority: %s", s)
	}
	return priority, nil
}
