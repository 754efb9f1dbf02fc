package interview

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

// Config holds configuration for the interviewer.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds one service call. Zero means no deadline beyond
	// the caller's context.
	Timeout time.Duration
	// TargetTurns hints the model at how many user answers to gather
	// before concluding.
	TargetTurns int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
		TargetTurns: 4,
	}
}

// Step is one reasoning-service reply: either the next question to ask
// or the final conclusion, never both.
type Step struct {
	Finished   bool
	Question   string
	Conclusion *Conclusion
}

// Interviewer sends interview transcripts to the reasoning service and
// decodes step replies. It is stateless; the Session owns the transcript.
type Interviewer struct {
	provider llm.Provider
	cfg      Config
}

// NewInterviewer creates an interviewer.
func NewInterviewer(provider llm.Provider, cfg Config) *Interviewer {
	return &Interviewer{provider: provider, cfg: cfg}
}

// stepOutput is the raw service response.
type stepOutput struct {
	IsFinished   bool   `json:"is_finished"`
	NextQuestion string `json:"next_question"`
	Conclusion   *struct {
		Score     int    `json:"score"`
		Reasoning string `json:"reasoning"`
	} `json:"conclusion"`
}

// Next sends the full transcript to the reasoning service and returns
// the decoded step. Exactly one service call is made; failures are
// reported, not retried at this layer.
func (iv *Interviewer) Next(ctx context.Context, axisLabel string, area *rubric.Area, lang Language, turns []Turn) (*Step, error) {
	ctx = llm.WithPurpose(ctx, "interview")
	if iv.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, iv.cfg.Timeout)
		defer cancel()
	}

	system, err := buildInterviewSystemPrompt(axisLabel, area, lang, iv.cfg.TargetTurns)
	if err != nil {
		return nil, fmt.Errorf("build interview prompt: %w", err)
	}

	resp, err := iv.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    transcriptToMessages(turns),
		Schema:      StepSchema,
		MaxTokens:   iv.cfg.MaxTokens,
		Temperature: iv.cfg.Temperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimedOut, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	var raw stepOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return decodeStep(raw, area)
}

// decodeStep enforces the step contract: a finished step carries a
// conclusion with a valid rank and no question; an unfinished step
// carries a question and no conclusion.
func decodeStep(raw stepOutput, area *rubric.Area) (*Step, error) {
	if raw.IsFinished {
		if raw.Conclusion == nil {
			return nil, fmt.Errorf("%w: finished step missing conclusion", ErrMalformedResponse)
		}
		if strings.TrimSpace(raw.NextQuestion) != "" {
			return nil, fmt.Errorf("%w: finished step carries a next question", ErrMalformedResponse)
		}
		if !area.HasRank(raw.Conclusion.Score) {
			return nil, fmt.Errorf("%w: score %d not defined for area %q", ErrMalformedResponse, raw.Conclusion.Score, area.ID)
		}
		return &Step{
			Finished: true,
			Conclusion: &Conclusion{
				Score:     raw.Conclusion.Score,
				Reasoning: raw.Conclusion.Reasoning,
			},
		}, nil
	}

	if strings.TrimSpace(raw.NextQuestion) == "" {
		return nil, fmt.Errorf("%w: unfinished step missing next question", ErrMalformedResponse)
	}
	if raw.Conclusion != nil {
		return nil, fmt.Errorf("%w: unfinished step carries a conclusion", ErrMalformedResponse)
	}
	return &Step{Question: raw.NextQuestion}, nil
}

// transcriptToMessages maps the session transcript onto provider roles.
// The seeded greeting is a model turn, so transcripts always start with
// an assistant message followed by the first user message.
func transcriptToMessages(turns []Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		role := llm.RoleUser
		if t.Role == RoleModel {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return msgs
}

var interviewSystemTemplate = template.Must(template.New("interview").Parse(`You are an expert organizational maturity assessor conducting a short structured interview, in {{.Language}}.

Axis: {{.AxisLabel}}
Area under assessment: {{.AreaName}}

Maturity levels for this area:
{{range .Levels}}- {{.Rank}} ({{.Title}}): {{.Rubric}}
{{end}}
Instructions:
- Ask one focused question at a time, in {{.Language}}, probing for concrete evidence of how the organization works in this area.
- After roughly {{.TargetTurns}} substantive answers, or as soon as the answers clearly pin down one level, conclude.
- When concluding, pick the single level whose rubric best matches the conversation. Only use level ranks from the list above. When the evidence spans two levels, pick the lower one.
- The reasoning must be two or three sentences in {{.Language}}, citing what was said.`))

func buildInterviewSystemPrompt(axisLabel string, area *rubric.Area, lang Language, targetTurns int) (string, error) {
	var buf bytes.Buffer
	err := interviewSystemTemplate.Execute(&buf, struct {
		Language    string
		AxisLabel   string
		AreaName    string
		Levels      []rubric.Level
		TargetTurns int
	}{
		Language:    languageName(lang),
		AxisLabel:   axisLabel,
		AreaName:    area.Name,
		Levels:      area.Levels,
		TargetTurns: targetTurns,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
