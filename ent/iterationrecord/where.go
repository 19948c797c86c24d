// Code generated by ent, DO NOT EDIT.

package iterationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldSessionID, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldIteration, v))
}

// InputVersion applies equality check predicate on the "input_version" field. It's identical to InputVersionEQ.
func InputVersion(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldInputVersion, v))
}

// OutputVersion applies equality check predicate on the "output_version" field. It's identical to OutputVersionEQ.
func OutputVersion(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldOutputVersion, v))
}

// HighCount applies equality check predicate on the "high_count" field. It's identical to HighCountEQ.
func HighCount(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldHighCount, v))
}

// MediumCount applies equality check predicate on the "medium_count" field. It's identical to MediumCountEQ.
func MediumCount(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldMediumCount, v))
}

// LowCount applies equality check predicate on the "low_count" field. It's identical to LowCountEQ.
func LowCount(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldLowCount, v))
}

// Delta applies equality check predicate on the "delta" field. It's identical to DeltaEQ.
func Delta(v float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldDelta, v))
}

// ShouldStop applies equality check predicate on the "should_stop" field. It's identical to ShouldStopEQ.
func ShouldStop(v bool) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldShouldStop, v))
}

// DecisionReason applies equality check predicate on the "decision_reason" field. It's identical to DecisionReasonEQ.
func DecisionReason(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldDecisionReason, v))
}

// StoppedBy applies equality check predicate on the "stopped_by" field. It's identical to StoppedByEQ.
func StoppedBy(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldStoppedBy, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldEndedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldIteration, v))
}

// InputVersionEQ applies the EQ predicate on the "input_version" field.
func InputVersionEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldInputVersion, v))
}

// InputVersionNEQ applies the NEQ predicate on the "input_version" field.
func InputVersionNEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldInputVersion, v))
}

// InputVersionIn applies the In predicate on the "input_version" field.
func InputVersionIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldInputVersion, vs...))
}

// InputVersionNotIn applies the NotIn predicate on the "input_version" field.
func InputVersionNotIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldInputVersion, vs...))
}

// InputVersionGT applies the GT predicate on the "input_version" field.
func InputVersionGT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldInputVersion, v))
}

// InputVersionGTE applies the GTE predicate on the "input_version" field.
func InputVersionGTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldInputVersion, v))
}

// InputVersionLT applies the LT predicate on the "input_version" field.
func InputVersionLT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldInputVersion, v))
}

// InputVersionLTE applies the LTE predicate on the "input_version" field.
func InputVersionLTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldInputVersion, v))
}

// OutputVersionEQ applies the EQ predicate on the "output_version" field.
func OutputVersionEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldOutputVersion, v))
}

// OutputVersionNEQ applies the NEQ predicate on the "output_version" field.
func OutputVersionNEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldOutputVersion, v))
}

// OutputVersionIn applies the In predicate on the "output_version" field.
func OutputVersionIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldOutputVersion, vs...))
}

// OutputVersionNotIn applies the NotIn predicate on the "output_version" field.
func OutputVersionNotIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldOutputVersion, vs...))
}

// OutputVersionGT applies the GT predicate on the "output_version" field.
func OutputVersionGT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldOutputVersion, v))
}

// OutputVersionGTE applies the GTE predicate on the "output_version" field.
func OutputVersionGTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldOutputVersion, v))
}

// OutputVersionLT applies the LT predicate on the "output_version" field.
func OutputVersionLT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldOutputVersion, v))
}

// OutputVersionLTE applies the LTE predicate on the "output_version" field.
func OutputVersionLTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldOutputVersion, v))
}

// HighCountEQ applies the EQ predicate on the "high_count" field.
func HighCountEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldHighCount, v))
}

// HighCountNEQ applies the NEQ predicate on the "high_count" field.
func HighCountNEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldHighCount, v))
}

// HighCountIn applies the In predicate on the "high_count" field.
func HighCountIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldHighCount, vs...))
}

// HighCountNotIn applies the NotIn predicate on the "high_count" field.
func HighCountNotIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldHighCount, vs...))
}

// HighCountGT applies the GT predicate on the "high_count" field.
func HighCountGT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldHighCount, v))
}

// HighCountGTE applies the GTE predicate on the "high_count" field.
func HighCountGTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldHighCount, v))
}

// HighCountLT applies the LT predicate on the "high_count" field.
func HighCountLT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldHighCount, v))
}

// HighCountLTE applies the LTE predicate on the "high_count" field.
func HighCountLTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldHighCount, v))
}

// MediumCountEQ applies the EQ predicate on the "medium_count" field.
func MediumCountEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldMediumCount, v))
}

// MediumCountNEQ applies the NEQ predicate on the "medium_count" field.
func MediumCountNEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldMediumCount, v))
}

// MediumCountIn applies the In predicate on the "medium_count" field.
func MediumCountIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldMediumCount, vs...))
}

// MediumCountNotIn applies the NotIn predicate on the "medium_count" field.
func MediumCountNotIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldMediumCount, vs...))
}

// MediumCountGT applies the GT predicate on the "medium_count" field.
func MediumCountGT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldMediumCount, v))
}

// MediumCountGTE applies the GTE predicate on the "medium_count" field.
func MediumCountGTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldMediumCount, v))
}

// MediumCountLT applies the LT predicate on the "medium_count" field.
func MediumCountLT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldMediumCount, v))
}

// MediumCountLTE applies the LTE predicate on the "medium_count" field.
func MediumCountLTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldMediumCount, v))
}

// LowCountEQ applies the EQ predicate on the "low_count" field.
func LowCountEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldLowCount, v))
}

// LowCountNEQ applies the NEQ predicate on the "low_count" field.
func LowCountNEQ(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldLowCount, v))
}

// LowCountIn applies the In predicate on the "low_count" field.
func LowCountIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldLowCount, vs...))
}

// LowCountNotIn applies the NotIn predicate on the "low_count" field.
func LowCountNotIn(vs ...int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldLowCount, vs...))
}

// LowCountGT applies the GT predicate on the "low_count" field.
func LowCountGT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldLowCount, v))
}

// LowCountGTE applies the GTE predicate on the "low_count" field.
func LowCountGTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldLowCount, v))
}

// LowCountLT applies the LT predicate on the "low_count" field.
func LowCountLT(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldLowCount, v))
}

// LowCountLTE applies the LTE predicate on the "low_count" field.
func LowCountLTE(v int) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldLowCount, v))
}

// DeltaEQ applies the EQ predicate on the "delta" field.
func DeltaEQ(v float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldDelta, v))
}

// DeltaNEQ applies the NEQ predicate on the "delta" field.
func DeltaNEQ(v float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldDelta, v))
}

// DeltaIn applies the In predicate on the "delta" field.
func DeltaIn(vs ...float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldDelta, vs...))
}

// DeltaNotIn applies the NotIn predicate on the "delta" field.
func DeltaNotIn(vs ...float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldDelta, vs...))
}

// DeltaGT applies the GT predicate on the "delta" field.
func DeltaGT(v float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldDelta, v))
}

// DeltaGTE applies the GTE predicate on the "delta" field.
func DeltaGTE(v float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldDelta, v))
}

// DeltaLT applies the LT predicate on the "delta" field.
func DeltaLT(v float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldDelta, v))
}

// DeltaLTE applies the LTE predicate on the "delta" field.
func DeltaLTE(v float64) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldDelta, v))
}

// ShouldStopEQ applies the EQ predicate on the "should_stop" field.
func ShouldStopEQ(v bool) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldShouldStop, v))
}

// ShouldStopNEQ applies the NEQ predicate on the "should_stop" field.
func ShouldStopNEQ(v bool) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldShouldStop, v))
}

// DecisionReasonEQ applies the EQ predicate on the "decision_reason" field.
func DecisionReasonEQ(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldDecisionReason, v))
}

// DecisionReasonNEQ applies the NEQ predicate on the "decision_reason" field.
func DecisionReasonNEQ(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldDecisionReason, v))
}

// DecisionReasonIn applies the In predicate on the "decision_reason" field.
func DecisionReasonIn(vs ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldDecisionReason, vs...))
}

// DecisionReasonNotIn applies the NotIn predicate on the "decision_reason" field.
func DecisionReasonNotIn(vs ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldDecisionReason, vs...))
}

// DecisionReasonGT applies the GT predicate on the "decision_reason" field.
func DecisionReasonGT(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldDecisionReason, v))
}

// DecisionReasonGTE applies the GTE predicate on the "decision_reason" field.
func DecisionReasonGTE(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldDecisionReason, v))
}

// DecisionReasonLT applies the LT predicate on the "decision_reason" field.
func DecisionReasonLT(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldDecisionReason, v))
}

// DecisionReasonLTE applies the LTE predicate on the "decision_reason" field.
func DecisionReasonLTE(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldDecisionReason, v))
}

// DecisionReasonContains applies the Contains predicate on the "decision_reason" field.
func DecisionReasonContains(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldContains(FieldDecisionReason, v))
}

// DecisionReasonHasPrefix applies the HasPrefix predicate on the "decision_reason" field.
func DecisionReasonHasPrefix(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldHasPrefix(FieldDecisionReason, v))
}

// DecisionReasonHasSuffix applies the HasSuffix predicate on the "decision_reason" field.
func DecisionReasonHasSuffix(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldHasSuffix(FieldDecisionReason, v))
}

// DecisionReasonIsNil applies the IsNil predicate on the "decision_reason" field.
func DecisionReasonIsNil() predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIsNull(FieldDecisionReason))
}

// DecisionReasonNotNil applies the NotNil predicate on the "decision_reason" field.
func DecisionReasonNotNil() predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotNull(FieldDecisionReason))
}

// DecisionReasonEqualFold applies the EqualFold predicate on the "decision_reason" field.
func DecisionReasonEqualFold(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEqualFold(FieldDecisionReason, v))
}

// DecisionReasonContainsFold applies the ContainsFold predicate on the "decision_reason" field.
func DecisionReasonContainsFold(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldContainsFold(FieldDecisionReason, v))
}

// StoppedByEQ applies the EQ predicate on the "stopped_by" field.
func StoppedByEQ(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldStoppedBy, v))
}

// StoppedByNEQ applies the NEQ predicate on the "stopped_by" field.
func StoppedByNEQ(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldStoppedBy, v))
}

// StoppedByIn applies the In predicate on the "stopped_by" field.
func StoppedByIn(vs ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldStoppedBy, vs...))
}

// StoppedByNotIn applies the NotIn predicate on the "stopped_by" field.
func StoppedByNotIn(vs ...string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldStoppedBy, vs...))
}

// StoppedByGT applies the GT predicate on the "stopped_by" field.
func StoppedByGT(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldStoppedBy, v))
}

// StoppedByGTE applies the GTE predicate on the "stopped_by" field.
func StoppedByGTE(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldStoppedBy, v))
}

// StoppedByLT applies the LT predicate on the "stopped_by" field.
func StoppedByLT(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldStoppedBy, v))
}

// StoppedByLTE applies the LTE predicate on the "stopped_by" field.
func StoppedByLTE(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldStoppedBy, v))
}

// StoppedByContains applies the Contains predicate on the "stopped_by" field.
func StoppedByContains(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldContains(FieldStoppedBy, v))
}

// StoppedByHasPrefix applies the HasPrefix predicate on the "stopped_by" field.
func StoppedByHasPrefix(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldHasPrefix(FieldStoppedBy, v))
}

// StoppedByHasSuffix applies the HasSuffix predicate on the "stopped_by" field.
func StoppedByHasSuffix(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldHasSuffix(FieldStoppedBy, v))
}

// StoppedByIsNil applies the IsNil predicate on the "stopped_by" field.
func StoppedByIsNil() predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIsNull(FieldStoppedBy))
}

// StoppedByNotNil applies the NotNil predicate on the "stopped_by" field.
func StoppedByNotNil() predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotNull(FieldStoppedBy))
}

// StoppedByEqualFold applies the EqualFold predicate on the "stopped_by" field.
func StoppedByEqualFold(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEqualFold(FieldStoppedBy, v))
}

// StoppedByContainsFold applies the ContainsFold predicate on the "stopped_by" field.
func StoppedByContainsFold(v string) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldContainsFold(FieldStoppedBy, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.IterationRecord {
	return predicate.IterationRecord(sql.FieldLTE(FieldEndedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.IterationRecord {
	return predicate.IterationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.RefinementSession) predicate.IterationRecord {
	return predicate.IterationRecord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IterationRecord) predicate.IterationRecord {
	return predicate.IterationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IterationRecord) predicate.IterationRecord {
	return predicate.IterationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IterationRecord) predicate.IterationRecord {
	return predicate.IterationRecord(sql.NotPredicates(p))
}
