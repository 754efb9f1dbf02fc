// Code generated by ent, DO NOT EDIT.

package interviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/maturiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// AxisID applies equality check predicate on the "axis_id" field. It's identical to AxisIDEQ.
func AxisID(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAxisID, v))
}

// AreaID applies equality check predicate on the "area_id" field. It's identical to AreaIDEQ.
func AreaID(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAreaID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldLanguage, v))
}

// Turns applies equality check predicate on the "turns" field. It's identical to TurnsEQ.
func Turns(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTurns, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldScore, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldReasoning, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldOutcome, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// AxisIDEQ applies the EQ predicate on the "axis_id" field.
func AxisIDEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAxisID, v))
}

// AxisIDNEQ applies the NEQ predicate on the "axis_id" field.
func AxisIDNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldAxisID, v))
}

// AxisIDIn applies the In predicate on the "axis_id" field.
func AxisIDIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldAxisID, vs...))
}

// AxisIDNotIn applies the NotIn predicate on the "axis_id" field.
func AxisIDNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldAxisID, vs...))
}

// AxisIDGT applies the GT predicate on the "axis_id" field.
func AxisIDGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldAxisID, v))
}

// AxisIDGTE applies the GTE predicate on the "axis_id" field.
func AxisIDGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldAxisID, v))
}

// AxisIDLT applies the LT predicate on the "axis_id" field.
func AxisIDLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldAxisID, v))
}

// AxisIDLTE applies the LTE predicate on the "axis_id" field.
func AxisIDLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldAxisID, v))
}

// AxisIDContains applies the Contains predicate on the "axis_id" field.
func AxisIDContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldAxisID, v))
}

// AxisIDHasPrefix applies the HasPrefix predicate on the "axis_id" field.
func AxisIDHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldAxisID, v))
}

// AxisIDHasSuffix applies the HasSuffix predicate on the "axis_id" field.
func AxisIDHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldAxisID, v))
}

// AxisIDEqualFold applies the EqualFold predicate on the "axis_id" field.
func AxisIDEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldAxisID, v))
}

// AxisIDContainsFold applies the ContainsFold predicate on the "axis_id" field.
func AxisIDContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldAxisID, v))
}

// AreaIDEQ applies the EQ predicate on the "area_id" field.
func AreaIDEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldAreaID, v))
}

// AreaIDNEQ applies the NEQ predicate on the "area_id" field.
func AreaIDNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldAreaID, v))
}

// AreaIDIn applies the In predicate on the "area_id" field.
func AreaIDIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldAreaID, vs...))
}

// AreaIDNotIn applies the NotIn predicate on the "area_id" field.
func AreaIDNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldAreaID, vs...))
}

// AreaIDGT applies the GT predicate on the "area_id" field.
func AreaIDGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldAreaID, v))
}

// AreaIDGTE applies the GTE predicate on the "area_id" field.
func AreaIDGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldAreaID, v))
}

// AreaIDLT applies the LT predicate on the "area_id" field.
func AreaIDLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldAreaID, v))
}

// AreaIDLTE applies the LTE predicate on the "area_id" field.
func AreaIDLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldAreaID, v))
}

// AreaIDContains applies the Contains predicate on the "area_id" field.
func AreaIDContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldAreaID, v))
}

// AreaIDHasPrefix applies the HasPrefix predicate on the "area_id" field.
func AreaIDHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldAreaID, v))
}

// AreaIDHasSuffix applies the HasSuffix predicate on the "area_id" field.
func AreaIDHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldAreaID, v))
}

// AreaIDEqualFold applies the EqualFold predicate on the "area_id" field.
func AreaIDEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldAreaID, v))
}

// AreaIDContainsFold applies the ContainsFold predicate on the "area_id" field.
func AreaIDContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldAreaID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldLanguage, v))
}

// TurnsEQ applies the EQ predicate on the "turns" field.
func TurnsEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldTurns, v))
}

// TurnsNEQ applies the NEQ predicate on the "turns" field.
func TurnsNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldTurns, v))
}

// TurnsIn applies the In predicate on the "turns" field.
func TurnsIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldTurns, vs...))
}

// TurnsNotIn applies the NotIn predicate on the "turns" field.
func TurnsNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldTurns, vs...))
}

// TurnsGT applies the GT predicate on the "turns" field.
func TurnsGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldTurns, v))
}

// TurnsGTE applies the GTE predicate on the "turns" field.
func TurnsGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldTurns, v))
}

// TurnsLT applies the LT predicate on the "turns" field.
func TurnsLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldTurns, v))
}

// TurnsLTE applies the LTE predicate on the "turns" field.
func TurnsLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldTurns, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldScore, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewEvent) predicate.InterviewEvent {
	return predicate.InterviewEvent(sql.NotPredicates(p))
}
