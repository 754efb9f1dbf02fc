// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/maturiz/ent/diagnosisevent"
	"github.com/abhisek/maturiz/ent/interviewevent"
	"github.com/abhisek/maturiz/ent/llmrequestevent"
	"github.com/abhisek/maturiz/ent/schema"
	"github.com/abhisek/maturiz/ent/scoreevent"
	"github.com/abhisek/maturiz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diagnosiseventMixin := schema.DiagnosisEvent{}.Mixin()
	diagnosiseventMixinFields0 := diagnosiseventMixin[0].Fields()
	_ = diagnosiseventMixinFields0
	diagnosiseventFields := schema.DiagnosisEvent{}.Fields()
	_ = diagnosiseventFields
	// diagnosiseventDescTimestamp is the schema descriptor for timestamp field.
	diagnosiseventDescTimestamp := diagnosiseventMixinFields0[1].Descriptor()
	// diagnosisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisevent.DefaultTimestamp = diagnosiseventDescTimestamp.Default.(func() time.Time)
	// diagnosiseventDescSessionID is the schema descriptor for session_id field.
	diagnosiseventDescSessionID := diagnosiseventFields[0].Descriptor()
	// diagnosisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	diagnosisevent.SessionIDValidator = diagnosiseventDescSessionID.Validators[0].(func(string) error)
	// diagnosiseventDescAxisID is the schema descriptor for axis_id field.
	diagnosiseventDescAxisID := diagnosiseventFields[1].Descriptor()
	// diagnosisevent.AxisIDValidator is a validator for the "axis_id" field. It is called by the builders before save.
	diagnosisevent.AxisIDValidator = diagnosiseventDescAxisID.Validators[0].(func(string) error)
	// diagnosiseventDescAreaID is the schema descriptor for area_id field.
	diagnosiseventDescAreaID := diagnosiseventFields[2].Descriptor()
	// diagnosisevent.AreaIDValidator is a validator for the "area_id" field. It is called by the builders before save.
	diagnosisevent.AreaIDValidator = diagnosiseventDescAreaID.Validators[0].(func(string) error)
	// diagnosiseventDescEvidence is the schema descriptor for evidence field.
	diagnosiseventDescEvidence := diagnosiseventFields[3].Descriptor()
	// diagnosisevent.EvidenceValidator is a validator for the "evidence" field. It is called by the builders before save.
	diagnosisevent.EvidenceValidator = diagnosiseventDescEvidence.Validators[0].(func(string) error)
	// diagnosiseventDescJustification is the schema descriptor for justification field.
	diagnosiseventDescJustification := diagnosiseventFields[5].Descriptor()
	// diagnosisevent.DefaultJustification holds the default value on creation for the justification field.
	diagnosisevent.DefaultJustification = diagnosiseventDescJustification.Default.(string)
	// diagnosiseventDescOutcome is the schema descriptor for outcome field.
	diagnosiseventDescOutcome := diagnosiseventFields[6].Descriptor()
	// diagnosisevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	diagnosisevent.OutcomeValidator = diagnosiseventDescOutcome.Validators[0].(func(string) error)
	intervieweventMixin := schema.InterviewEvent{}.Mixin()
	intervieweventMixinFields0 := intervieweventMixin[0].Fields()
	_ = intervieweventMixinFields0
	intervieweventFields := schema.InterviewEvent{}.Fields()
	_ = intervieweventFields
	// intervieweventDescTimestamp is the schema descriptor for timestamp field.
	intervieweventDescTimestamp := intervieweventMixinFields0[1].Descriptor()
	// interviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interviewevent.DefaultTimestamp = intervieweventDescTimestamp.Default.(func() time.Time)
	// intervieweventDescSessionID is the schema descriptor for session_id field.
	intervieweventDescSessionID := intervieweventFields[0].Descriptor()
	// interviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interviewevent.SessionIDValidator = intervieweventDescSessionID.Validators[0].(func(string) error)
	// intervieweventDescAxisID is the schema descriptor for axis_id field.
	intervieweventDescAxisID := intervieweventFields[1].Descriptor()
	// interviewevent.AxisIDValidator is a validator for the "axis_id" field. It is called by the builders before save.
	interviewevent.AxisIDValidator = intervieweventDescAxisID.Validators[0].(func(string) error)
	// intervieweventDescAreaID is the schema descriptor for area_id field.
	intervieweventDescAreaID := intervieweventFields[2].Descriptor()
	// interviewevent.AreaIDValidator is a validator for the "area_id" field. It is called by the builders before save.
	interviewevent.AreaIDValidator = intervieweventDescAreaID.Validators[0].(func(string) error)
	// intervieweventDescLanguage is the schema descriptor for language field.
	intervieweventDescLanguage := intervieweventFields[3].Descriptor()
	// interviewevent.DefaultLanguage holds the default value on creation for the language field.
	interviewevent.DefaultLanguage = intervieweventDescLanguage.Default.(string)
	// intervieweventDescScore is the schema descriptor for score field.
	intervieweventDescScore := intervieweventFields[5].Descriptor()
	// interviewevent.DefaultScore holds the default value on creation for the score field.
	interviewevent.DefaultScore = intervieweventDescScore.Default.(int)
	// intervieweventDescReasoning is the schema descriptor for reasoning field.
	intervieweventDescReasoning := intervieweventFields[6].Descriptor()
	// interviewevent.DefaultReasoning holds the default value on creation for the reasoning field.
	interviewevent.DefaultReasoning = intervieweventDescReasoning.Default.(string)
	// intervieweventDescOutcome is the schema descriptor for outcome field.
	intervieweventDescOutcome := intervieweventFields[7].Descriptor()
	// interviewevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	interviewevent.OutcomeValidator = intervieweventDescOutcome.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	scoreeventMixin := schema.ScoreEvent{}.Mixin()
	scoreeventMixinFields0 := scoreeventMixin[0].Fields()
	_ = scoreeventMixinFields0
	scoreeventFields := schema.ScoreEvent{}.Fields()
	_ = scoreeventFields
	// scoreeventDescTimestamp is the schema descriptor for timestamp field.
	scoreeventDescTimestamp := scoreeventMixinFields0[1].Descriptor()
	// scoreevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scoreevent.DefaultTimestamp = scoreeventDescTimestamp.Default.(func() time.Time)
	// scoreeventDescSessionID is the schema descriptor for session_id field.
	scoreeventDescSessionID := scoreeventFields[0].Descriptor()
	// scoreevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	scoreevent.SessionIDValidator = scoreeventDescSessionID.Validators[0].(func(string) error)
	// scoreeventDescAxisID is the schema descriptor for axis_id field.
	scoreeventDescAxisID := scoreeventFields[1].Descriptor()
	// scoreevent.AxisIDValidator is a validator for the "axis_id" field. It is called by the builders before save.
	scoreevent.AxisIDValidator = scoreeventDescAxisID.Validators[0].(func(string) error)
	// scoreeventDescAreaID is the schema descriptor for area_id field.
	scoreeventDescAreaID := scoreeventFields[2].Descriptor()
	// scoreevent.AreaIDValidator is a validator for the "area_id" field. It is called by the builders before save.
	scoreevent.AreaIDValidator = scoreeventDescAreaID.Validators[0].(func(string) error)
	// scoreeventDescSource is the schema descriptor for source field.
	scoreeventDescSource := scoreeventFields[5].Descriptor()
	// scoreevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	scoreevent.SourceValidator = scoreeventDescSource.Validators[0].(func(string) error)
	// scoreeventDescAxisPercent is the schema descriptor for axis_percent field.
	scoreeventDescAxisPercent := scoreeventFields[6].Descriptor()
	// scoreevent.DefaultAxisPercent holds the default value on creation for the axis_percent field.
	scoreevent.DefaultAxisPercent = scoreeventDescAxisPercent.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
