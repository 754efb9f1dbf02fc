package assessment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/maturiz/internal/diagnose"
	"github.com/abhisek/maturiz/internal/interview"
	"github.com/abhisek/maturiz/internal/ledger"
	"github.com/abhisek/maturiz/internal/llm"
	"github.com/abhisek/maturiz/internal/rubric"
	"github.com/abhisek/maturiz/internal/store"
)

// Config configures an assessment session.
type Config struct {
	// Catalog is the rubric to assess against. Defaults to the seed catalog.
	Catalog *rubric.Catalog

	// Policy is the ledger selection policy. Defaults to SingleSelect.
	Policy ledger.Policy

	// Provider is the reasoning service backend. Nil disables the
	// diagnose and interview protocols; direct scoring still works.
	Provider llm.Provider

	// Language for interview turns.
	Language interview.Language

	// Timeout bounds one protocol service call (diagnose or interview
	// step). Zero keeps the protocol defaults.
	Timeout time.Duration

	// Events receives score/diagnosis/interview events when set. Event
	// logging never fails an operation.
	Events store.EventRepo

	// Snapshots receives ledger snapshots after each write when set.
	Snapshots store.SnapshotRepo
}

// Session is one assessment run: an explicit object owning the catalog,
// the score ledger, and the ephemeral protocol state. Nothing here is
// ambient or global; two sessions never share mutable state. Within a
// session, pending candidates and interviews are keyed by area, so
// concurrent protocol runs against different areas never collide.
// Callers serialize operations per area.
type Session struct {
	id          string
	catalog     *rubric.Catalog
	ledger      *ledger.Ledger
	diagnoser   *diagnose.Diagnoser
	interviewer *interview.Interviewer
	lang        interview.Language
	events      store.EventRepo
	snapshots   store.SnapshotRepo

	mu         sync.Mutex
	candidates map[string]*pendingCandidate
	interviews map[string]*interview.Session
}

// pendingCandidate holds an unreviewed diagnosis result together with
// the evidence that produced it, for event logging on accept/discard.
type pendingCandidate struct {
	candidate *diagnose.Candidate
	evidence  string
}

// New creates an assessment session.
func New(cfg Config) *Session {
	if cfg.Catalog == nil {
		cfg.Catalog = rubric.Default()
	}
	if cfg.Language == "" {
		cfg.Language = interview.LangEnglish
	}

	s := &Session{
		id:         uuid.NewString(),
		catalog:    cfg.Catalog,
		ledger:     ledger.New(cfg.Catalog, cfg.Policy),
		lang:       cfg.Language,
		events:     cfg.Events,
		snapshots:  cfg.Snapshots,
		candidates: make(map[string]*pendingCandidate),
		interviews: make(map[string]*interview.Session),
	}
	if cfg.Provider != nil {
		dcfg := diagnose.DefaultConfig()
		icfg := interview.DefaultConfig()
		if cfg.Timeout > 0 {
			dcfg.Timeout = cfg.Timeout
			icfg.Timeout = cfg.Timeout
		}
		s.diagnoser = diagnose.New(cfg.Provider, dcfg)
		s.interviewer = interview.NewInterviewer(cfg.Provider, icfg)
	}
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the rubric this session assesses against.
func (s *Session) Catalog() *rubric.Catalog {
	return s.catalog
}

// ListAreas returns the axis's areas in catalog order.
func (s *Session) ListAreas(axisID string) ([]rubric.Area, error) {
	return s.catalog.AreasForAxis(axisID)
}

// GetScores returns the selected ranks for an area. Never scored means
// an empty set, not an error.
func (s *Session) GetScores(areaID string) (map[int]bool, error) {
	if _, err := s.catalog.GetArea(areaID); err != nil {
		return nil, err
	}
	return s.ledger.Scores(areaID), nil
}

// SetScore records a direct user selection.
func (s *Session) SetScore(ctx context.Context, areaID string, rank int) (ledger.Progress, error) {
	return s.writeScore(ctx, areaID, rank, store.SourceManual)
}

// ComputeProgress returns the axis's completion state.
func (s *Session) ComputeProgress(axisID string) (ledger.Progress, error) {
	return s.ledger.Progress(axisID)
}

// IsAxisComplete reports whether every area in the axis has a score.
func (s *Session) IsAxisComplete(axisID string) (bool, error) {
	return s.ledger.IsAxisComplete(axisID)
}

// Restore loads the most recent ledger snapshot, if any.
func (s *Session) Restore(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}
	return s.ledger.Restore(snap.Data.Scores)
}

// StartDiagnose runs the single-shot diagnose protocol for an area and
// parks the returned candidate for review. The candidate does not touch
// the ledger; AcceptCandidate does. A fresh run replaces any candidate
// already pending for the area; the superseded candidate is logged as
// discarded.
func (s *Session) StartDiagnose(ctx context.Context, areaID, evidence string) (*diagnose.Candidate, error) {
	if s.diagnoser == nil {
		return nil, ErrNoProvider
	}
	area, axis, err := s.resolve(areaID)
	if err != nil {
		return nil, err
	}

	cand, err := s.diagnoser.Diagnose(ctx, axis.Label(), area, evidence)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	prev := s.candidates[areaID]
	s.candidates[areaID] = &pendingCandidate{candidate: cand, evidence: evidence}
	s.mu.Unlock()

	if prev != nil {
		s.logDiagnosis(ctx, areaID, prev, "discarded")
	}
	return cand, nil
}

// AcceptCandidate writes the pending candidate's level to the ledger and
// discards it from protocol state.
func (s *Session) AcceptCandidate(ctx context.Context, areaID string) (ledger.Progress, error) {
	s.mu.Lock()
	pending := s.candidates[areaID]
	delete(s.candidates, areaID)
	s.mu.Unlock()

	if pending == nil {
		return ledger.Progress{}, ErrNoCandidate
	}

	p, err := s.writeScore(ctx, areaID, pending.candidate.Level, store.SourceDiagnose)
	if err != nil {
		return ledger.Progress{}, err
	}
	s.logDiagnosis(ctx, areaID, pending, "accepted")
	return p, nil
}

// DiscardCandidate drops the pending candidate without side effects.
// A fresh StartDiagnose call may follow.
func (s *Session) DiscardCandidate(ctx context.Context, areaID string) error {
	s.mu.Lock()
	pending := s.candidates[areaID]
	delete(s.candidates, areaID)
	s.mu.Unlock()

	if pending == nil {
		return ErrNoCandidate
	}
	s.logDiagnosis(ctx, areaID, pending, "discarded")
	return nil
}

// StartInterview opens an interview for an area and returns the seeded
// greeting turn. An interview already active for the area is discarded
// and replaced.
func (s *Session) StartInterview(ctx context.Context, areaID string) (interview.Turn, error) {
	if s.interviewer == nil {
		return interview.Turn{}, ErrNoProvider
	}
	area, axis, err := s.resolve(areaID)
	if err != nil {
		return interview.Turn{}, err
	}

	run := interview.NewSession(s.interviewer, axis.Label(), area, s.lang)

	s.mu.Lock()
	prev := s.interviews[areaID]
	s.interviews[areaID] = run
	s.mu.Unlock()

	if prev != nil {
		prev.Cancel()
		s.logInterview(ctx, areaID, prev, "discarded")
	}
	return run.Turns()[0], nil
}

// SubmitInterviewTurn forwards the user's message to the area's active
// interview. Service failures are recoverable: the returned turn is a
// synthetic error turn and the interview keeps waiting for user input.
func (s *Session) SubmitInterviewTurn(ctx context.Context, areaID, text string) (interview.Turn, error) {
	run, err := s.activeInterview(areaID)
	if err != nil {
		return interview.Turn{}, err
	}
	return run.SubmitTurn(ctx, text)
}

// InterviewState returns the state of the area's active interview.
func (s *Session) InterviewState(areaID string) (interview.State, error) {
	run, err := s.activeInterview(areaID)
	if err != nil {
		return 0, err
	}
	return run.State(), nil
}

// InterviewConclusion returns the structured conclusion of the area's
// active interview, once it has concluded.
func (s *Session) InterviewConclusion(areaID string) (interview.Conclusion, error) {
	run, err := s.activeInterview(areaID)
	if err != nil {
		return interview.Conclusion{}, err
	}
	c, ok := run.Conclusion()
	if !ok {
		return interview.Conclusion{}, interview.ErrNotConcluded
	}
	return c, nil
}

// ConfirmConclusion writes the interview's conclusion to the ledger and
// closes the interview.
func (s *Session) ConfirmConclusion(ctx context.Context, areaID string) (ledger.Progress, error) {
	run, err := s.activeInterview(areaID)
	if err != nil {
		return ledger.Progress{}, err
	}

	var progress ledger.Progress
	err = run.Confirm(scoreWriterFunc(func(areaID string, rank int) (ledger.Progress, error) {
		p, werr := s.writeScore(ctx, areaID, rank, store.SourceInterview)
		progress = p
		return p, werr
	}))
	if err != nil {
		return ledger.Progress{}, err
	}

	s.dropInterview(areaID, run)
	s.logInterview(ctx, areaID, run, "confirmed")
	return progress, nil
}

// CancelInterview closes the area's interview without touching the ledger.
func (s *Session) CancelInterview(ctx context.Context, areaID string) error {
	run, err := s.activeInterview(areaID)
	if err != nil {
		return err
	}
	run.Cancel()
	s.dropInterview(areaID, run)
	s.logInterview(ctx, areaID, run, "cancelled")
	return nil
}

// Close discards all ephemeral protocol state. Pending candidates and
// open interviews are dropped without ledger writes.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	candidates := s.candidates
	interviews := s.interviews
	s.candidates = make(map[string]*pendingCandidate)
	s.interviews = make(map[string]*interview.Session)
	s.mu.Unlock()

	for areaID, pending := range candidates {
		s.logDiagnosis(ctx, areaID, pending, "discarded")
	}
	for areaID, run := range interviews {
		run.Cancel()
		s.logInterview(ctx, areaID, run, "discarded")
	}
}

// scoreWriterFunc adapts a function to interview.ScoreWriter.
type scoreWriterFunc func(areaID string, rank int) (ledger.Progress, error)

func (f scoreWriterFunc) SetScore(areaID string, rank int) (ledger.Progress, error) {
	return f(areaID, rank)
}

// writeScore is the single path every score takes into the ledger,
// whatever its source. The event log and snapshot follow the write but
// never fail it.
func (s *Session) writeScore(ctx context.Context, areaID string, rank int, source string) (ledger.Progress, error) {
	area, _, err := s.resolve(areaID)
	if err != nil {
		return ledger.Progress{}, err
	}

	p, err := s.ledger.SetScore(areaID, rank)
	if err != nil {
		return ledger.Progress{}, err
	}

	if s.events != nil {
		_ = s.events.AppendScoreEvent(ctx, store.ScoreEventData{
			SessionID:   s.id,
			AxisID:      area.AxisID,
			AreaID:      areaID,
			Rank:        rank,
			Selected:    s.ledger.Scores(areaID)[rank],
			Source:      source,
			AxisPercent: p.Percent,
		})
	}
	s.saveSnapshot(ctx)
	return p, nil
}

func (s *Session) saveSnapshot(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	_ = s.snapshots.Save(ctx, store.SnapshotData{
		Version:   1,
		SessionID: s.id,
		Policy:    s.ledger.Policy().String(),
		Scores:    s.ledger.Snapshot(),
	})
}

func (s *Session) logDiagnosis(ctx context.Context, areaID string, pending *pendingCandidate, outcome string) {
	if s.events == nil {
		return
	}
	area, _, err := s.resolve(areaID)
	if err != nil {
		return
	}
	_ = s.events.AppendDiagnosisEvent(ctx, store.DiagnosisEventData{
		SessionID:     s.id,
		AxisID:        area.AxisID,
		AreaID:        areaID,
		Evidence:      pending.evidence,
		Level:         pending.candidate.Level,
		Justification: pending.candidate.Justification,
		Outcome:       outcome,
	})
}

func (s *Session) logInterview(ctx context.Context, areaID string, run *interview.Session, outcome string) {
	if s.events == nil {
		return
	}
	area, _, err := s.resolve(areaID)
	if err != nil {
		return
	}
	data := store.InterviewEventData{
		SessionID: s.id,
		AxisID:    area.AxisID,
		AreaID:    areaID,
		Language:  string(s.lang),
		Turns:     len(run.Turns()),
		Outcome:   outcome,
	}
	if c, ok := run.Conclusion(); ok {
		data.Score = c.Score
		data.Reasoning = c.Reasoning
	}
	_ = s.events.AppendInterviewEvent(ctx, data)
}

func (s *Session) activeInterview(areaID string) (*interview.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run := s.interviews[areaID]
	if run == nil {
		return nil, ErrNoInterview
	}
	return run, nil
}

// dropInterview removes the run from the active set if it is still the
// one registered for the area.
func (s *Session) dropInterview(areaID string, run *interview.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interviews[areaID] == run {
		delete(s.interviews, areaID)
	}
}

// resolve looks up an area and its owning axis.
func (s *Session) resolve(areaID string) (*rubric.Area, *rubric.Axis, error) {
	area, err := s.catalog.GetArea(areaID)
	if err != nil {
		return nil, nil, err
	}
	axis, err := s.catalog.GetAxis(area.AxisID)
	if err != nil {
		return nil, nil, err
	}
	return area, axis, nil
}
