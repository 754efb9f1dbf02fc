package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the ledger state of one assessment session.
type SnapshotData struct {
	Version   int              `json:"version"`
	SessionID string           `json:"session_id"`
	Policy    string           `json:"policy"`
	Scores    map[string][]int `json:"scores"`
}

// Snapshot represents a point-in-time capture of ledger state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages ledger snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot at the current sequence.
	Save(ctx context.Context, data SnapshotData) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ScoreEventData captures a single ledger mutation.
type ScoreEventData struct {
	SessionID   string
	AxisID      string
	AreaID      string
	Rank        int
	Selected    bool // false when a multi-select toggle removed the rank
	Source      string
	AxisPercent int
}

// Score-entry sources.
const (
	SourceManual    = "manual"
	SourceDiagnose  = "diagnose"
	SourceInterview = "interview"
)

// DiagnosisEventData captures one diagnose run and its outcome.
type DiagnosisEventData struct {
	SessionID     string
	AxisID        string
	AreaID        string
	Evidence      string
	Level         int
	Justification string
	Outcome       string // accepted, discarded
}

// InterviewEventData captures the terminal outcome of an interview.
type InterviewEventData struct {
	SessionID string
	AxisID    string
	AreaID    string
	Language  string
	Turns     int
	Score     int
	Reasoning string
	Outcome   string // confirmed, cancelled, discarded
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage and recorded cost for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendScoreEvent records a ledger mutation.
	AppendScoreEvent(ctx context.Context, data ScoreEventData) error

	// AppendDiagnosisEvent records a diagnose run outcome.
	AppendDiagnosisEvent(ctx context.Context, data DiagnosisEventData) error

	// AppendInterviewEvent records an interview outcome.
	AppendInterviewEvent(ctx context.Context, data InterviewEventData) error

	// AppendLLMRequest records a reasoning-service call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single LLM request event by ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage and cost per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
