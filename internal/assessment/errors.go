package assessment

import "errors"

// ErrNoCandidate is returned when AcceptCandidate or DiscardCandidate is
// called for an area with no pending diagnosis candidate.
var ErrNoCandidate = errors.New("no pending candidate")

// ErrNoInterview is returned when an interview operation targets an area
// with no active interview.
var ErrNoInterview = errors.New("no active interview")

// ErrNoProvider is returned when a protocol operation is invoked on a
// session created without a reasoning-service provider.
var ErrNoProvider = errors.New("no reasoning service configured")
