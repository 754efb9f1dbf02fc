package diagnose

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/maturiz/internal/llm"
	"github.com/abhisek/maturiz/internal/rubric"
)

func testArea(t *testing.T) *rubric.Area {
	t.Helper()
	area, err := rubric.Default().GetArea("process-automation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return area
}

func TestDiagnose_ReturnsCandidate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level":3,"justification":"High-volume processes are automated with named owners."}`),
	})
	d := New(mock, DefaultConfig())

	cand, err := d.Diagnose(context.Background(), "Operations", testArea(t), "We automated invoicing and onboarding last year; each flow has an owning team.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.Level != 3 {
		t.Errorf("expected level 3, got %d", cand.Level)
	}
	if cand.Justification == "" {
		t.Error("expected non-empty justification")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 service call, got %d", mock.CallCount())
	}
}

func TestDiagnose_PromptCarriesRubricAndEvidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level":1,"justification":"x"}`),
	})
	d := New(mock, DefaultConfig())

	evidence := "Everything is manual, spreadsheets everywhere."
	if _, err := d.Diagnose(context.Background(), "Operations", testArea(t), evidence); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := mock.LastCall()
	if call == nil || len(call.Messages) != 1 {
		t.Fatal("expected a single user message")
	}
	msg := call.Messages[0].Content
	if !strings.Contains(msg, evidence) {
		t.Error("prompt missing evidence text")
	}
	if !strings.Contains(msg, "Process Automation") {
		t.Error("prompt missing area name")
	}
	for _, l := range testArea(t).Levels {
		if !strings.Contains(msg, l.Rubric) {
			t.Errorf("prompt missing rubric for level %d", l.Rank)
		}
	}
	if call.Schema != CandidateSchema {
		t.Error("expected candidate schema on the request")
	}
}

func TestDiagnose_EmptyEvidence(t *testing.T) {
	mock := llm.NewMockProvider()
	d := New(mock, DefaultConfig())

	_, err := d.Diagnose(context.Background(), "Operations", testArea(t), "   \n ")
	if !errors.Is(err, ErrEmptyEvidence) {
		t.Fatalf("expected ErrEmptyEvidence, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatal("no service call expected for empty evidence")
	}
}

func TestDiagnose_ServiceFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	d := New(mock, DefaultConfig())

	_, err := d.Diagnose(context.Background(), "Operations", testArea(t), "some evidence")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	// One call, no automatic retry at the protocol layer.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestDiagnose_LevelOutsideRubric(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level":9,"justification":"made up"}`),
	})
	d := New(mock, DefaultConfig())

	_, err := d.Diagnose(context.Background(), "Operations", testArea(t), "some evidence")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestDiagnose_ManualRetryGetsFreshCall(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: json.RawMessage(`{"level":2,"justification":"y"}`)},
	)
	d := New(mock, DefaultConfig())

	if _, err := d.Diagnose(context.Background(), "Operations", testArea(t), "evidence"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	// "Try Again" is just a fresh Diagnose call.
	cand, err := d.Diagnose(context.Background(), "Operations", testArea(t), "evidence")
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if cand.Level != 2 {
		t.Errorf("expected level 2, got %d", cand.Level)
	}
}
