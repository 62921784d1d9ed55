// Package selection filters and picks question templates for a candidate
// against job requirements.
package selection

import "errors"

// ErrNoSuitableTemplates indicates the relevance filter matched nothing.
// Callers treat this as a warning and produce an empty question set.
var ErrNoSuitableTemplates = errors.New("no suitable templates for candidate and job requirements")
