package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/maturiz/internal/diagnose"
	"github.com/abhisek/maturiz/internal/interview"
	"github.com/abhisek/maturiz/internal/ledger"
	"github.com/abhisek/maturiz/internal/llm"
	"github.com/abhisek/maturiz/internal/rubric"
	"github.com/abhisek/maturiz/internal/store"
)

// stallProvider blocks until the caller's context is done.
type stallProvider struct{}

func (stallProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallProvider) ModelID() string { return "stall" }

// memEvents is an in-memory EventRepo for wiring assertions.
type memEvents struct {
	scores     []store.ScoreEventData
	diagnoses  []store.DiagnosisEventData
	interviews []store.InterviewEventData
}

func (m *memEvents) AppendScoreEvent(_ context.Context, d store.ScoreEventData) error {
	m.scores = append(m.scores, d)
	return nil
}

func (m *memEvents) AppendDiagnosisEvent(_ context.Context, d store.DiagnosisEventData) error {
	m.diagnoses = append(m.diagnoses, d)
	return nil
}

func (m *memEvents) AppendInterviewEvent(_ context.Context, d store.InterviewEventData) error {
	m.interviews = append(m.interviews, d)
	return nil
}

func (m *memEvents) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *memEvents) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// memSnapshots is an in-memory SnapshotRepo.
type memSnapshots struct {
	saved []store.SnapshotData
}

func (m *memSnapshots) Save(_ context.Context, d store.SnapshotData) error {
	m.saved = append(m.saved, d)
	return nil
}

func (m *memSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return &store.Snapshot{Data: m.saved[len(m.saved)-1]}, nil
}

func (m *memSnapshots) Prune(_ context.Context, _ int) error { return nil }

func TestSession_ManualScoring(t *testing.T) {
	s := New(Config{})
	ctx := context.Background()

	p, err := s.SetScore(ctx, "data-quality", 3)
	require.NoError(t, err)
	assert.Equal(t, "operations", p.AxisID)
	assert.Equal(t, 1, p.ScoredAreas)

	scores, err := s.GetScores("data-quality")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true}, scores)

	_, err = s.SetScore(ctx, "data-quality", 9)
	assert.ErrorIs(t, err, ledger.ErrInvalidLevel)

	_, err = s.GetScores("nope")
	assert.ErrorIs(t, err, rubric.ErrUnknownArea)
}

func TestSession_ProgressAndCompletion(t *testing.T) {
	s := New(Config{})
	ctx := context.Background()

	areas, err := s.ListAreas("people")
	require.NoError(t, err)
	require.Len(t, areas, 3)

	for i, area := range areas {
		complete, err := s.IsAxisComplete("people")
		require.NoError(t, err)
		assert.False(t, complete, "axis complete before area %d scored", i)

		_, err = s.SetScore(ctx, area.ID, 2)
		require.NoError(t, err)
	}

	p, err := s.ComputeProgress("people")
	require.NoError(t, err)
	assert.Equal(t, 100, p.Percent)
	assert.True(t, p.Complete)
}

func TestSession_DiagnoseAcceptFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level":3,"justification":"x"}`),
	})
	events := &memEvents{}
	s := New(Config{Provider: mock, Events: events})
	ctx := context.Background()

	cand, err := s.StartDiagnose(ctx, "process-automation", "We automated the main flows.")
	require.NoError(t, err)
	assert.Equal(t, 3, cand.Level)

	// Nothing in the ledger until acceptance.
	scores, err := s.GetScores("process-automation")
	require.NoError(t, err)
	assert.Empty(t, scores)

	_, err = s.AcceptCandidate(ctx, "process-automation")
	require.NoError(t, err)

	scores, err = s.GetScores("process-automation")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true}, scores)

	// The candidate was consumed.
	_, err = s.AcceptCandidate(ctx, "process-automation")
	assert.ErrorIs(t, err, ErrNoCandidate)

	require.Len(t, events.scores, 1)
	assert.Equal(t, store.SourceDiagnose, events.scores[0].Source)
	require.Len(t, events.diagnoses, 1)
	assert.Equal(t, "accepted", events.diagnoses[0].Outcome)
}

func TestSession_DiscardCandidate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level":2,"justification":"x"}`),
	})
	events := &memEvents{}
	s := New(Config{Provider: mock, Events: events})
	ctx := context.Background()

	_, err := s.StartDiagnose(ctx, "process-automation", "evidence")
	require.NoError(t, err)

	require.NoError(t, s.DiscardCandidate(ctx, "process-automation"))

	scores, err := s.GetScores("process-automation")
	require.NoError(t, err)
	assert.Empty(t, scores, "discard must not write to the ledger")

	err = s.DiscardCandidate(ctx, "process-automation")
	assert.ErrorIs(t, err, ErrNoCandidate)

	require.Len(t, events.diagnoses, 1)
	assert.Equal(t, "discarded", events.diagnoses[0].Outcome)
}

func TestSession_RediagnoseDiscardsSupersededCandidate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"level":2,"justification":"first"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"level":3,"justification":"second"}`)},
	)
	events := &memEvents{}
	s := New(Config{Provider: mock, Events: events})
	ctx := context.Background()

	_, err := s.StartDiagnose(ctx, "process-automation", "old evidence")
	require.NoError(t, err)
	_, err = s.StartDiagnose(ctx, "process-automation", "new evidence")
	require.NoError(t, err)

	// The replaced run stays in the event history.
	require.Len(t, events.diagnoses, 1)
	assert.Equal(t, "discarded", events.diagnoses[0].Outcome)
	assert.Equal(t, 2, events.diagnoses[0].Level)
	assert.Equal(t, "old evidence", events.diagnoses[0].Evidence)

	_, err = s.AcceptCandidate(ctx, "process-automation")
	require.NoError(t, err)

	require.Len(t, events.diagnoses, 2)
	assert.Equal(t, "accepted", events.diagnoses[1].Outcome)
	assert.Equal(t, 3, events.diagnoses[1].Level)

	scores, err := s.GetScores("process-automation")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true}, scores)
}

func TestSession_TimeoutBoundsProtocolCalls(t *testing.T) {
	s := New(Config{Provider: stallProvider{}, Timeout: 10 * time.Millisecond})
	ctx := context.Background()

	_, err := s.StartDiagnose(ctx, "data-quality", "evidence")
	assert.ErrorIs(t, err, diagnose.ErrTimedOut)

	_, err = s.StartInterview(ctx, "data-quality")
	require.NoError(t, err)
	turn, err := s.SubmitInterviewTurn(ctx, "data-quality", "hello")
	assert.ErrorIs(t, err, interview.ErrTimedOut)
	assert.Equal(t, interview.RoleModel, turn.Role)
}

func TestSession_InterviewConfirmFlow(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":false,"next_question":"Q1"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":true,"conclusion":{"score":4,"reasoning":"R"}}`)},
	)
	events := &memEvents{}
	s := New(Config{Provider: mock, Events: events})
	ctx := context.Background()

	greeting, err := s.StartInterview(ctx, "digital-skills")
	require.NoError(t, err)
	assert.Equal(t, interview.RoleModel, greeting.Role)
	assert.Contains(t, greeting.Text, "Digital Skills")

	turn, err := s.SubmitInterviewTurn(ctx, "digital-skills", "We run yearly training.")
	require.NoError(t, err)
	assert.Equal(t, "Q1", turn.Text)

	_, err = s.SubmitInterviewTurn(ctx, "digital-skills", "Engineers self-assess quarterly.")
	require.NoError(t, err)

	c, err := s.InterviewConclusion("digital-skills")
	require.NoError(t, err)
	assert.Equal(t, interview.Conclusion{Score: 4, Reasoning: "R"}, c)

	p, err := s.ConfirmConclusion(ctx, "digital-skills")
	require.NoError(t, err)
	assert.Equal(t, "people", p.AxisID)

	scores, err := s.GetScores("digital-skills")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{4: true}, scores)

	// The interview is gone once confirmed.
	_, err = s.SubmitInterviewTurn(ctx, "digital-skills", "more")
	assert.ErrorIs(t, err, ErrNoInterview)

	require.Len(t, events.scores, 1)
	assert.Equal(t, store.SourceInterview, events.scores[0].Source)
	require.Len(t, events.interviews, 1)
	assert.Equal(t, "confirmed", events.interviews[0].Outcome)
	assert.Equal(t, 4, events.interviews[0].Score)
}

func TestSession_CancelInterview(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":true,"conclusion":{"score":5,"reasoning":"R"}}`)},
	)
	events := &memEvents{}
	s := New(Config{Provider: mock, Events: events})
	ctx := context.Background()

	_, err := s.StartInterview(ctx, "digital-skills")
	require.NoError(t, err)
	_, err = s.SubmitInterviewTurn(ctx, "digital-skills", "hello")
	require.NoError(t, err)

	require.NoError(t, s.CancelInterview(ctx, "digital-skills"))

	scores, err := s.GetScores("digital-skills")
	require.NoError(t, err)
	assert.Empty(t, scores, "cancel must leave the ledger untouched")

	require.Len(t, events.interviews, 1)
	assert.Equal(t, "cancelled", events.interviews[0].Outcome)
}

func TestSession_IndependentAreaRuns(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":false,"next_question":"A-Q1"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":false,"next_question":"B-Q1"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":true,"conclusion":{"score":2,"reasoning":"RA"}}`)},
		llm.MockResponse{Content: json.RawMessage(`{"is_finished":true,"conclusion":{"score":5,"reasoning":"RB"}}`)},
	)
	s := New(Config{Provider: mock})
	ctx := context.Background()

	// Two interviews on different areas, interleaved. Each owns its
	// transcript and conclusion.
	_, err := s.StartInterview(ctx, "customer-insight")
	require.NoError(t, err)
	_, err = s.StartInterview(ctx, "channel-integration")
	require.NoError(t, err)

	turn, err := s.SubmitInterviewTurn(ctx, "customer-insight", "a1")
	require.NoError(t, err)
	assert.Equal(t, "A-Q1", turn.Text)

	turn, err = s.SubmitInterviewTurn(ctx, "channel-integration", "b1")
	require.NoError(t, err)
	assert.Equal(t, "B-Q1", turn.Text)

	_, err = s.SubmitInterviewTurn(ctx, "customer-insight", "a2")
	require.NoError(t, err)
	_, err = s.SubmitInterviewTurn(ctx, "channel-integration", "b2")
	require.NoError(t, err)

	_, err = s.ConfirmConclusion(ctx, "customer-insight")
	require.NoError(t, err)
	_, err = s.ConfirmConclusion(ctx, "channel-integration")
	require.NoError(t, err)

	a, err := s.GetScores("customer-insight")
	require.NoError(t, err)
	b, err := s.GetScores("channel-integration")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{2: true}, a)
	assert.Equal(t, map[int]bool{5: true}, b)
}

func TestSession_RecoverableInterviewFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := New(Config{Provider: mock})
	ctx := context.Background()

	_, err := s.StartInterview(ctx, "customer-insight")
	require.NoError(t, err)

	turn, err := s.SubmitInterviewTurn(ctx, "customer-insight", "hello")
	assert.ErrorIs(t, err, interview.ErrServiceUnavailable)
	assert.Equal(t, interview.RoleModel, turn.Role)

	state, err := s.InterviewState("customer-insight")
	require.NoError(t, err)
	assert.Equal(t, interview.StateAwaitingUser, state)
}

func TestSession_SnapshotAndRestore(t *testing.T) {
	snaps := &memSnapshots{}
	s := New(Config{Snapshots: snaps})
	ctx := context.Background()

	_, err := s.SetScore(ctx, "data-quality", 3)
	require.NoError(t, err)
	_, err = s.SetScore(ctx, "digital-skills", 4)
	require.NoError(t, err)
	require.Len(t, snaps.saved, 2)

	restored := New(Config{Snapshots: snaps})
	require.NoError(t, restored.Restore(ctx))

	scores, err := restored.GetScores("data-quality")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true}, scores)
	scores, err = restored.GetScores("digital-skills")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{4: true}, scores)
}

func TestSession_ProtocolsNeedProvider(t *testing.T) {
	s := New(Config{})
	ctx := context.Background()

	_, err := s.StartDiagnose(ctx, "data-quality", "evidence")
	assert.ErrorIs(t, err, ErrNoProvider)
	_, err = s.StartInterview(ctx, "data-quality")
	assert.ErrorIs(t, err, ErrNoProvider)
}
