// Package skills derives weighted skill maps and candidate classification
// from candidate profiles.
package skills

import "fmt"

// InvalidProfileError indicates a caller contract violation: the profile is
// missing data this package requires rather than guesses defaults for.
type InvalidProfileError struct {
	Message string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s", e.Message)
}
