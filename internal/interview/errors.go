package interview

import "errors"

// ErrEmptyMessage is returned when SubmitTurn is called with blank text.
var ErrEmptyMessage = errors.New("empty message")

// ErrServiceUnavailable is returned when the reasoning service call
// failed. It is recoverable: the session reverts to awaiting user input
// with the transcript intact, and the user may simply send again.
var ErrServiceUnavailable = errors.New("interview service unavailable")

// ErrTimedOut is returned when the reasoning service did not answer
// within the configured timeout. Recoverable, like ErrServiceUnavailable.
var ErrTimedOut = errors.New("interview timed out")

// ErrMalformedResponse is returned when the service answered but the
// payload violates the step contract, e.g. finished without a
// conclusion, or a score outside the area's rubric. Surfaced, never
// guessed around.
var ErrMalformedResponse = errors.New("malformed interview response")

// ErrNotConcluded is returned when Confirm is called before the
// interview reached a conclusion.
var ErrNotConcluded = errors.New("interview not concluded")

// ErrConcluded is returned when SubmitTurn is called after the
// interview concluded. The only remaining actions are Confirm and Cancel.
var ErrConcluded = errors.New("interview already concluded")

// ErrClosed is returned for any action on a closed session.
var ErrClosed = errors.New("interview closed")
