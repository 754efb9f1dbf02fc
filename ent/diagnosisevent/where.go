// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/maturiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// AxisID applies equality check predicate on the "axis_id" field. It's identical to AxisIDEQ.
func AxisID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldAxisID, v))
}

// AreaID applies equality check predicate on the "area_id" field. It's identical to AreaIDEQ.
func AreaID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldAreaID, v))
}

// Evidence applies equality check predicate on the "evidence" field. It's identical to EvidenceEQ.
func Evidence(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldEvidence, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldLevel, v))
}

// Justification applies equality check predicate on the "justification" field. It's identical to JustificationEQ.
func Justification(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldJustification, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldOutcome, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// AxisIDEQ applies the EQ predicate on the "axis_id" field.
func AxisIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldAxisID, v))
}

// AxisIDNEQ applies the NEQ predicate on the "axis_id" field.
func AxisIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldAxisID, v))
}

// AxisIDIn applies the In predicate on the "axis_id" field.
func AxisIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldAxisID, vs...))
}

// AxisIDNotIn applies the NotIn predicate on the "axis_id" field.
func AxisIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldAxisID, vs...))
}

// AxisIDGT applies the GT predicate on the "axis_id" field.
func AxisIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldAxisID, v))
}

// AxisIDGTE applies the GTE predicate on the "axis_id" field.
func AxisIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldAxisID, v))
}

// AxisIDLT applies the LT predicate on the "axis_id" field.
func AxisIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldAxisID, v))
}

// AxisIDLTE applies the LTE predicate on the "axis_id" field.
func AxisIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldAxisID, v))
}

// AxisIDContains applies the Contains predicate on the "axis_id" field.
func AxisIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldAxisID, v))
}

// AxisIDHasPrefix applies the HasPrefix predicate on the "axis_id" field.
func AxisIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldAxisID, v))
}

// AxisIDHasSuffix applies the HasSuffix predicate on the "axis_id" field.
func AxisIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldAxisID, v))
}

// AxisIDEqualFold applies the EqualFold predicate on the "axis_id" field.
func AxisIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldAxisID, v))
}

// AxisIDContainsFold applies the ContainsFold predicate on the "axis_id" field.
func AxisIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldAxisID, v))
}

// AreaIDEQ applies the EQ predicate on the "area_id" field.
func AreaIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldAreaID, v))
}

// AreaIDNEQ applies the NEQ predicate on the "area_id" field.
func AreaIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldAreaID, v))
}

// AreaIDIn applies the In predicate on the "area_id" field.
func AreaIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldAreaID, vs...))
}

// AreaIDNotIn applies the NotIn predicate on the "area_id" field.
func AreaIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldAreaID, vs...))
}

// AreaIDGT applies the GT predicate on the "area_id" field.
func AreaIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldAreaID, v))
}

// AreaIDGTE applies the GTE predicate on the "area_id" field.
func AreaIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldAreaID, v))
}

// AreaIDLT applies the LT predicate on the "area_id" field.
func AreaIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldAreaID, v))
}

// AreaIDLTE applies the LTE predicate on the "area_id" field.
func AreaIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldAreaID, v))
}

// AreaIDContains applies the Contains predicate on the "area_id" field.
func AreaIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldAreaID, v))
}

// AreaIDHasPrefix applies the HasPrefix predicate on the "area_id" field.
func AreaIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldAreaID, v))
}

// AreaIDHasSuffix applies the HasSuffix predicate on the "area_id" field.
func AreaIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldAreaID, v))
}

// AreaIDEqualFold applies the EqualFold predicate on the "area_id" field.
func AreaIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldAreaID, v))
}

// AreaIDContainsFold applies the ContainsFold predicate on the "area_id" field.
func AreaIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldAreaID, v))
}

// EvidenceEQ applies the EQ predicate on the "evidence" field.
func EvidenceEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldEvidence, v))
}

// EvidenceNEQ applies the NEQ predicate on the "evidence" field.
func EvidenceNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldEvidence, v))
}

// EvidenceIn applies the In predicate on the "evidence" field.
func EvidenceIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldEvidence, vs...))
}

// EvidenceNotIn applies the NotIn predicate on the "evidence" field.
func EvidenceNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldEvidence, vs...))
}

// EvidenceGT applies the GT predicate on the "evidence" field.
func EvidenceGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldEvidence, v))
}

// EvidenceGTE applies the GTE predicate on the "evidence" field.
func EvidenceGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldEvidence, v))
}

// EvidenceLT applies the LT predicate on the "evidence" field.
func EvidenceLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldEvidence, v))
}

// EvidenceLTE applies the LTE predicate on the "evidence" field.
func EvidenceLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldEvidence, v))
}

// EvidenceContains applies the Contains predicate on the "evidence" field.
func EvidenceContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldEvidence, v))
}

// EvidenceHasPrefix applies the HasPrefix predicate on the "evidence" field.
func EvidenceHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldEvidence, v))
}

// EvidenceHasSuffix applies the HasSuffix predicate on the "evidence" field.
func EvidenceHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldEvidence, v))
}

// EvidenceEqualFold applies the EqualFold predicate on the "evidence" field.
func EvidenceEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldEvidence, v))
}

// EvidenceContainsFold applies the ContainsFold predicate on the "evidence" field.
func EvidenceContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldEvidence, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldLevel, v))
}

// JustificationEQ applies the EQ predicate on the "justification" field.
func JustificationEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldJustification, v))
}

// JustificationNEQ applies the NEQ predicate on the "justification" field.
func JustificationNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldJustification, v))
}

// JustificationIn applies the In predicate on the "justification" field.
func JustificationIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldJustification, vs...))
}

// JustificationNotIn applies the NotIn predicate on the "justification" field.
func JustificationNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldJustification, vs...))
}

// JustificationGT applies the GT predicate on the "justification" field.
func JustificationGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldJustification, v))
}

// JustificationGTE applies the GTE predicate on the "justification" field.
func JustificationGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldJustification, v))
}

// JustificationLT applies the LT predicate on the "justification" field.
func JustificationLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldJustification, v))
}

// JustificationLTE applies the LTE predicate on the "justification" field.
func JustificationLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldJustification, v))
}

// JustificationContains applies the Contains predicate on the "justification" field.
func JustificationContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldJustification, v))
}

// JustificationHasPrefix applies the HasPrefix predicate on the "justification" field.
func JustificationHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldJustification, v))
}

// JustificationHasSuffix applies the HasSuffix predicate on the "justification" field.
func JustificationHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldJustification, v))
}

// JustificationEqualFold applies the EqualFold predicate on the "justification" field.
func JustificationEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldJustification, v))
}

// JustificationContainsFold applies the ContainsFold predicate on the "justification" field.
func JustificationContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldJustification, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.NotPredicates(p))
}
