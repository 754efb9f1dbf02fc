package diagnose

import "errors"

// ErrEmptyEvidence is returned when Diagnose is called with no evidence
// text. The UI gates this, but the protocol re-checks defensively.
var ErrEmptyEvidence = errors.New("empty evidence")

// ErrUnavailable is returned when the reasoning service call failed.
// The protocol never retries on its own; the caller exposes a manual
// retry affordance.
var ErrUnavailable = errors.New("diagnosis unavailable")

// ErrTimedOut is returned when the reasoning service did not answer
// within the configured timeout.
var ErrTimedOut = errors.New("diagnosis timed out")

// ErrMalformedResponse is returned when the service answered but the
// payload is unusable, e.g. a level outside the area's rubric. Malformed
// responses are surfaced, never guessed around.
var ErrMalformedResponse = errors.New("malformed diagnosis response")
