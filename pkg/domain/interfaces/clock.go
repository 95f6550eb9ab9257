package interfaces

import "time"

// Clock provides the current time. Stores take a Clock instead of
// calling time.Now so tests can pin timestamps.
type Clock func() time.Time

// RealClock returns the wall-clock time in UTC
func RealClock() time.Time {
	return time.Now().UTC()
}
