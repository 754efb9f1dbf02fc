package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/maturiz/internal/ledger"
	"github.com/abhisek/maturiz/internal/rubric"
)

// ScoreWriter is the ledger operation a confirmed conclusion needs.
type ScoreWriter interface {
	SetScore(areaID string, rank int) (ledger.Progress, error)
}

// Session is one interview run over a single area. It owns the
// transcript and the state machine; the reasoning-service calls go
// through the Interviewer. A session is an explicit object, never
// ambient state: concurrent interviews on different areas each hold
// their own Session. Callers serialize access per session; the only
// suspending operation is SubmitTurn.
type Session struct {
	interviewer *Interviewer
	axisLabel   string
	area        *rubric.Area
	lang        Language

	turns      []Turn
	state      State
	conclusion *Conclusion
}

// NewSession starts an interview for an area. It seeds one synthetic
// model greeting referencing the area; no external call is made.
func NewSession(interviewer *Interviewer, axisLabel string, area *rubric.Area, lang Language) *Session {
	return &Session{
		interviewer: interviewer,
		axisLabel:   axisLabel,
		area:        area,
		lang:        lang,
		turns:       []Turn{{Role: RoleModel, Text: greetingText(lang, area.Name)}},
		state:       StateGreeting,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// AreaID returns the area this interview assesses.
func (s *Session) AreaID() string {
	return s.area.ID
}

// Turns returns a copy of the transcript.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Conclusion returns the structured conclusion once the interview has
// concluded. The second return is false before that.
func (s *Session) Conclusion() (Conclusion, bool) {
	if s.conclusion == nil {
		return Conclusion{}, false
	}
	return *s.conclusion, true
}

// SubmitTurn appends the user's message and asks the reasoning service
// for the next step. It returns the model turn that was appended: the
// next question, the rendered conclusion, or, on failure, a synthetic
// error turn. A failure is recoverable: the state reverts to awaiting
// user input and the transcript is preserved, so the user can retry by
// sending another message. The service call itself is never retried here.
func (s *Session) SubmitTurn(ctx context.Context, text string) (Turn, error) {
	switch s.state {
	case StateClosed:
		return Turn{}, ErrClosed
	case StateConcluded:
		return Turn{}, ErrConcluded
	case StateAwaitingModel:
		return Turn{}, fmt.Errorf("turn already in flight for area %q", s.area.ID)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Turn{}, ErrEmptyMessage
	}

	s.turns = append(s.turns, Turn{Role: RoleUser, Text: text})
	s.state = StateAwaitingModel

	step, err := s.interviewer.Next(ctx, s.axisLabel, s.area, s.lang, s.turns)
	if err != nil {
		errTurn := Turn{Role: RoleModel, Text: errorTurnText(s.lang)}
		s.turns = append(s.turns, errTurn)
		s.state = StateAwaitingUser
		return errTurn, err
	}

	if step.Finished {
		s.conclusion = step.Conclusion
		s.state = StateConcluded
		// Display text is derived from the structured conclusion. The
		// score is carried in s.conclusion, never re-parsed from here.
		turn := Turn{Role: RoleModel, Text: conclusionText(s.lang, s.area.Name, *step.Conclusion)}
		s.turns = append(s.turns, turn)
		return turn, nil
	}

	turn := Turn{Role: RoleModel, Text: step.Question}
	s.turns = append(s.turns, turn)
	s.state = StateAwaitingUser
	return turn, nil
}

// Confirm writes the conclusion's score to the ledger and closes the
// session. Only valid from the concluded state.
func (s *Session) Confirm(w ScoreWriter) error {
	if s.state == StateClosed {
		return ErrClosed
	}
	if s.state != StateConcluded || s.conclusion == nil {
		return ErrNotConcluded
	}
	if _, err := w.SetScore(s.area.ID, s.conclusion.Score); err != nil {
		return err
	}
	s.state = StateClosed
	return nil
}

// Cancel closes the session without touching the ledger. The transcript
// and any conclusion are discarded. Closing an interview without an
// explicit confirm is treated the same way: discarded, not resumable.
// Cancel is idempotent.
func (s *Session) Cancel() {
	s.state = StateClosed
}
