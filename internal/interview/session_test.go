package interview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/maturiz/internal/ledger"
	"github.com/abhisek/maturiz/internal/llm"
	"github.com/abhisek/maturiz/internal/rubric"
)

func testArea(t *testing.T) *rubric.Area {
	t.Helper()
	area, err := rubric.Default().GetArea("data-quality")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return area
}

func newTestSession(mock *llm.MockProvider, lang Language, area *rubric.Area) *Session {
	iv := NewInterviewer(mock, DefaultConfig())
	return NewSession(iv, "Operations", area, lang)
}

func TestSession_GreetingSeeded(t *testing.T) {
	mock := llm.NewMockProvider()
	s := newTestSession(mock, LangEnglish, testArea(t))

	if s.State() != StateGreeting {
		t.Errorf("expected greeting state, got %s", s.State())
	}
	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("expected 1 seeded turn, got %d", len(turns))
	}
	if turns[0].Role != RoleModel {
		t.Error("greeting must be a model turn")
	}
	if !strings.Contains(turns[0].Text, "Data Quality") {
		t.Error("greeting must reference the area")
	}
	if mock.CallCount() != 0 {
		t.Error("greeting must not call the service")
	}
}

func TestSession_FrenchGreeting(t *testing.T) {
	s := newTestSession(llm.NewMockProvider(), LangFrench, testArea(t))
	if !strings.Contains(s.Turns()[0].Text, "Bonjour") {
		t.Error("expected French greeting")
	}
}

func TestSession_ScriptedRunToConclusion(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":false,"next_question":"Q1"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":true,"conclusion":{"score":4,"reasoning":"R"}}`)},
	)
	area := testArea(t)
	s := newTestSession(mock, LangEnglish, area)

	turn, err := s.SubmitTurn(context.Background(), "We review dashboards weekly.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turn.Text != "Q1" {
		t.Errorf("expected question Q1, got %q", turn.Text)
	}
	if s.State() != StateAwaitingUser {
		t.Errorf("expected awaiting-user after question, got %s", s.State())
	}
	if len(s.Turns()) != 3 {
		t.Fatalf("expected 3 turns (greeting, user, question), got %d", len(s.Turns()))
	}

	turn, err = s.SubmitTurn(context.Background(), "Each dataset has a named owner.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != StateConcluded {
		t.Fatalf("expected concluded, got %s", s.State())
	}
	c, ok := s.Conclusion()
	if !ok {
		t.Fatal("expected a structured conclusion")
	}
	if c.Score != 4 || c.Reasoning != "R" {
		t.Errorf("unexpected conclusion: %+v", c)
	}
	// The display turn is derived from the structured value.
	if !strings.Contains(turn.Text, "level 4") {
		t.Errorf("conclusion turn should mention the level, got %q", turn.Text)
	}

	ld := ledger.New(rubric.Default(), ledger.SingleSelect)
	if err := s.Confirm(ld); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scores := ld.Scores(area.ID)
	if len(scores) != 1 || !scores[4] {
		t.Errorf("expected scores {4}, got %v", scores)
	}
	if s.State() != StateClosed {
		t.Errorf("expected closed after confirm, got %s", s.State())
	}
	if err := s.Confirm(ld); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed on second confirm, got %v", err)
	}
}

func TestSession_TranscriptSentToService(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":false,"next_question":"Q1"}`)},
	)
	s := newTestSession(mock, LangEnglish, testArea(t))

	if _, err := s.SubmitTurn(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := mock.LastCall()
	if call == nil {
		t.Fatal("expected a service call")
	}
	// Greeting as assistant, then the user message.
	if len(call.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(call.Messages))
	}
	if call.Messages[0].Role != llm.RoleAssistant || call.Messages[1].Role != llm.RoleUser {
		t.Error("transcript roles not mapped onto provider roles")
	}
	if call.Schema != StepSchema {
		t.Error("expected step schema on the request")
	}
	if !strings.Contains(call.System, "Data Quality") {
		t.Error("system prompt missing area name")
	}
}

func TestSession_EmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	s := newTestSession(mock, LangEnglish, testArea(t))

	if _, err := s.SubmitTurn(context.Background(), "  \n"); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if len(s.Turns()) != 1 {
		t.Error("empty message must not enter the transcript")
	}
	if mock.CallCount() != 0 {
		t.Error("empty message must not call the service")
	}
}

func TestSession_ServiceFailureIsRecoverable(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := newTestSession(mock, LangEnglish, testArea(t))

	turn, err := s.SubmitTurn(context.Background(), "hello")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
	if s.State() != StateAwaitingUser {
		t.Errorf("expected state to revert to awaiting-user, got %s", s.State())
	}
	// Greeting + user message + one synthetic error turn.
	turns := s.Turns()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns after failure, got %d", len(turns))
	}
	if turns[1].Text != "hello" {
		t.Error("user message must be preserved across the failure")
	}
	if turn.Role != RoleModel || !strings.Contains(turn.Text, "error") {
		t.Errorf("expected a synthetic error turn, got %+v", turn)
	}

	// The user retries by sending another message.
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`{"is_finished":false,"next_question":"Q1"}`)})
	turn, err = s.SubmitTurn(context.Background(), "hello again")
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if turn.Text != "Q1" {
		t.Errorf("expected Q1 after retry, got %q", turn.Text)
	}
}

func TestSession_MalformedSteps(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"finished without conclusion", `{"is_finished":true}`},
		{"finished with question", `{"is_finished":true,"next_question":"Q","conclusion":{"score":2,"reasoning":"r"}}`},
		{"unfinished without question", `{"is_finished":false}`},
		{"unfinished with conclusion", `{"is_finished":false,"next_question":"Q","conclusion":{"score":2,"reasoning":"r"}}`},
		{"score outside rubric", `{"is_finished":true,"conclusion":{"score":9,"reasoning":"r"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tc.content)})
			s := newTestSession(mock, LangEnglish, testArea(t))

			_, err := s.SubmitTurn(context.Background(), "hello")
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("expected ErrMalformedResponse, got %v", err)
			}
			if s.State() != StateAwaitingUser {
				t.Errorf("malformed step must be recoverable, got state %s", s.State())
			}
		})
	}
}

func TestSession_ConfirmBeforeConclusion(t *testing.T) {
	s := newTestSession(llm.NewMockProvider(), LangEnglish, testArea(t))
	ld := ledger.New(rubric.Default(), ledger.SingleSelect)

	if err := s.Confirm(ld); !errors.Is(err, ErrNotConcluded) {
		t.Fatalf("expected ErrNotConcluded, got %v", err)
	}
}

func TestSession_CancelDiscards(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":true,"conclusion":{"score":3,"reasoning":"r"}}`)},
	)
	area := testArea(t)
	s := newTestSession(mock, LangEnglish, area)

	if _, err := s.SubmitTurn(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Cancel()

	if s.State() != StateClosed {
		t.Errorf("expected closed, got %s", s.State())
	}
	if _, err := s.SubmitTurn(context.Background(), "more"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	// Cancelled conclusions never reach the ledger.
	ld := ledger.New(rubric.Default(), ledger.SingleSelect)
	if len(ld.Scores(area.ID)) != 0 {
		t.Error("cancel must leave the ledger untouched")
	}
}

func TestSession_ConcludedRejectsTurns(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":true,"conclusion":{"score":3,"reasoning":"r"}}`)},
	)
	s := newTestSession(mock, LangEnglish, testArea(t))

	if _, err := s.SubmitTurn(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.SubmitTurn(context.Background(), "one more"); !errors.Is(err, ErrConcluded) {
		t.Fatalf("expected ErrConcluded, got %v", err)
	}
}
