package diagnose

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/abhisek/maturiz/internal/llm"
	"github.com/abhisek/maturiz/internal/rubric"
)

// Candidate is the ephemeral output of one diagnose run: a proposed
// level with the model's justification. It never enters the ledger on
// its own; acceptance is a separate, explicit user action.
type Candidate struct {
	Level         int
	Justification string
}

// Config holds configuration for the diagnoser.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds one diagnose call. Zero means no deadline beyond
	// the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
		Timeout:     30 * time.Second,
	}
}

// Diagnoser turns free-text evidence into one level candidate for an
// area. It is stateless between calls; each invocation is independent.
type Diagnoser struct {
	provider llm.Provider
	cfg      Config
}

// New creates a diagnoser.
func New(provider llm.Provider, cfg Config) *Diagnoser {
	return &Diagnoser{provider: provider, cfg: cfg}
}

// candidateOutput is the raw service response.
type candidateOutput struct {
	Level         int    `json:"level"`
	Justification string `json:"justification"`
}

// Diagnose sends evidence text to the reasoning service and returns one
// candidate for user review. Exactly one service call is made; a failed
// call is reported, not retried at this layer.
func (d *Diagnoser) Diagnose(ctx context.Context, axisLabel string, area *rubric.Area, evidence string) (*Candidate, error) {
	if strings.TrimSpace(evidence) == "" {
		return nil, ErrEmptyEvidence
	}

	ctx = llm.WithPurpose(ctx, "diagnose")
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	userMsg, err := buildDiagnoseMessage(axisLabel, area, evidence)
	if err != nil {
		return nil, fmt.Errorf("build diagnose prompt: %w", err)
	}

	resp, err := d.provider.Generate(ctx, llm.Request{
		System: diagnoseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      CandidateSchema,
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimedOut, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var raw candidateOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// The model must answer with one of the area's defined ranks.
	if !area.HasRank(raw.Level) {
		return nil, fmt.Errorf("%w: level %d not defined for area %q", ErrMalformedResponse, raw.Level, area.ID)
	}

	return &Candidate{
		Level:         raw.Level,
		Justification: raw.Justification,
	}, nil
}

const diagnoseSystemPrompt = `You are an expert organizational maturity assessor. You receive free-text evidence about how an organization works in one area, together with that area's maturity rubric.

Instructions:
- Pick the single level whose rubric description best matches the evidence.
- Only use level ranks from the list provided. Do NOT invent ranks.
- When the evidence spans two levels, pick the lower one: maturity must be demonstrated, not implied.
- Justify the choice in two or three sentences, citing the evidence.`

var diagnoseUserTemplate = template.Must(template.New("diagnose").Parse(`Axis: {{.AxisLabel}}
Area: {{.AreaName}}

Maturity levels for this area:
{{range .Levels}}- {{.Rank}} ({{.Title}}): {{.Rubric}}
{{end}}
Evidence:
{{.Evidence}}`))

func buildDiagnoseMessage(axisLabel string, area *rubric.Area, evidence string) (string, error) {
	var buf bytes.Buffer
	err := diagnoseUserTemplate.Execute(&buf, struct {
		AxisLabel string
		AreaName  string
		Levels    []rubric.Level
		Evidence  string
	}{
		AxisLabel: axisLabel,
		AreaName:  area.Name,
		Levels:    area.Levels,
		Evidence:  evidence,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
