package store

import (
	"context"
	"math"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "score_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	current, err := s.seq.Current(ctx)
	if err != nil {
		t.Fatalf("current (fresh): %v", err)
	}
	if current != 0 {
		t.Errorf("fresh counter current = %d, want 0", current)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	current, err = s.seq.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current != 5 {
		t.Errorf("current = %d, want 5", current)
	}
}

func TestEventSequenceSpansTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendScoreEvent(ctx, ScoreEventData{
		SessionID: "sess", AxisID: "operations", AreaID: "data-quality",
		Rank: 3, Selected: true, Source: SourceManual, AxisPercent: 33,
	})
	if err != nil {
		t.Fatalf("append score event: %v", err)
	}

	err = repo.AppendDiagnosisEvent(ctx, DiagnosisEventData{
		SessionID: "sess", AxisID: "operations", AreaID: "data-quality",
		Evidence: "e", Level: 3, Justification: "j", Outcome: "accepted",
	})
	if err != nil {
		t.Fatalf("append diagnosis event: %v", err)
	}

	err = repo.AppendInterviewEvent(ctx, InterviewEventData{
		SessionID: "sess", AxisID: "operations", AreaID: "data-quality",
		Language: "en", Turns: 5, Score: 3, Reasoning: "r", Outcome: "confirmed",
	})
	if err != nil {
		t.Fatalf("append interview event: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "diagnose", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request event: %v", err)
	}

	// One global counter orders events across all tables.
	score, err := s.Client().ScoreEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query score event: %v", err)
	}
	diag, err := s.Client().DiagnosisEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query diagnosis event: %v", err)
	}
	iv, err := s.Client().InterviewEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query interview event: %v", err)
	}
	req, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm request event: %v", err)
	}

	got := []int64{score.Sequence, diag.Sequence, iv.Sequence, req.Sequence}
	for i, seq := range got {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("sequence[%d] = %d, want %d", i, seq, expected)
		}
	}

	if score.Source != SourceManual {
		t.Errorf("score source = %q, want %q", score.Source, SourceManual)
	}
	if iv.Outcome != "confirmed" {
		t.Errorf("interview outcome = %q, want confirmed", iv.Outcome)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Two events first, so the snapshot pins a non-zero sequence.
	events := s.EventRepo()
	for _, rank := range []int{2, 3} {
		err := events.AppendScoreEvent(ctx, ScoreEventData{
			SessionID: "sess", AxisID: "operations", AreaID: "data-quality",
			Rank: rank, Selected: true, Source: SourceManual,
		})
		if err != nil {
			t.Fatalf("append score event: %v", err)
		}
	}

	data := SnapshotData{
		Version:   1,
		SessionID: "sess",
		Policy:    "single",
		Scores:    map[string][]int{"data-quality": {3}},
	}
	if err := repo.Save(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 2 {
		t.Errorf("sequence = %d, want 2", snap.Sequence)
	}
	if snap.Data.Version != 1 || snap.Data.SessionID != "sess" || snap.Data.Policy != "single" {
		t.Errorf("data did not round-trip: %+v", snap.Data)
	}
	if got := snap.Data.Scores["data-quality"]; len(got) != 1 || got[0] != 3 {
		t.Errorf("scores did not round-trip: %v", snap.Data.Scores)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Save(ctx, SnapshotData{Version: i + 1}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		// Timestamps default to now; keep them distinct.
		time.Sleep(5 * time.Millisecond)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if err := repo.Save(ctx, SnapshotData{Version: i + 1}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest is untouched by pruning.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Version != 7 {
		t.Errorf("latest data.version = %d, want 7", snap.Data.Version)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, SnapshotData{Version: 1}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func appendLLM(t *testing.T, repo EventRepo, purpose, model string, in, out int, latency int64, cost float64) {
	t.Helper()
	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "mock",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMs:    latency,
		CostUSD:      cost,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendLLM(t, repo, "diagnose", "model-a", 100, 10, 50, 0.01)
	appendLLM(t, repo, "interview", "model-a", 200, 20, 150, 0.02)
	appendLLM(t, repo, "diagnose", "model-b", 50, 5, 100, 0.005)

	// Newest first, limit respected.
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Sequence != 3 || events[1].Sequence != 2 {
		t.Errorf("sequences = [%d %d], want [3 2]", events[0].Sequence, events[1].Sequence)
	}
	if events[0].Purpose != "diagnose" || events[0].Model != "model-b" {
		t.Errorf("newest event = %s/%s, want diagnose/model-b", events[0].Purpose, events[0].Model)
	}

	// Sequence filter.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{After: 2})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(events) != 1 || events[0].Sequence != 3 {
		t.Errorf("after=2 returned %d events, want the single seq-3 event", len(events))
	}

	// Lookup by ID.
	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "model-b" {
		t.Errorf("get returned %+v, want model-b event", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendLLM(t, repo, "diagnose", "model-a", 100, 10, 50, 0.01)
	appendLLM(t, repo, "diagnose", "model-a", 200, 20, 150, 0.02)
	appendLLM(t, repo, "interview", "model-b", 50, 5, 100, 0.005)

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	byPurpose := make(map[string]LLMUsageStats, len(stats))
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}

	d := byPurpose["diagnose"]
	if d.Calls != 2 || d.InputTokens != 300 || d.OutputTokens != 30 {
		t.Errorf("diagnose usage = %+v, want 2 calls, 300 in, 30 out", d)
	}
	if d.AvgLatencyMs != 100 {
		t.Errorf("diagnose avg latency = %d, want 100", d.AvgLatencyMs)
	}
	i := byPurpose["interview"]
	if i.Calls != 1 || i.InputTokens != 50 || i.OutputTokens != 5 {
		t.Errorf("interview usage = %+v, want 1 call, 50 in, 5 out", i)
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	byModel := make(map[string]LLMModelUsage, len(usage))
	for _, mu := range usage {
		byModel[mu.Model] = mu
	}

	a := byModel["model-a"]
	if a.Calls != 2 || a.InputTokens != 300 {
		t.Errorf("model-a usage = %+v, want 2 calls, 300 in", a)
	}
	if math.Abs(a.CostUSD-0.03) > 1e-9 {
		t.Errorf("model-a cost = %f, want 0.03", a.CostUSD)
	}
	b := byModel["model-b"]
	if math.Abs(b.CostUSD-0.005) > 1e-9 {
		t.Errorf("model-b cost = %f, want 0.005", b.CostUSD)
	}
}
