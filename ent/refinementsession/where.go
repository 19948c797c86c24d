// Code generated by ent, DO NOT EDIT.

package refinementsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldTitle, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldGoal, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldDocumentType, v))
}

// ModeratorFocus applies equality check predicate on the "moderator_focus" field. It's identical to ModeratorFocusEQ.
func ModeratorFocus(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldModeratorFocus, v))
}

// PlannerWarning applies equality check predicate on the "planner_warning" field. It's identical to PlannerWarningEQ.
func PlannerWarning(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldPlannerWarning, v))
}

// CurrentIteration applies equality check predicate on the "current_iteration" field. It's identical to CurrentIterationEQ.
func CurrentIteration(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldCurrentIteration, v))
}

// FinalVersion applies equality check predicate on the "final_version" field. It's identical to FinalVersionEQ.
func FinalVersion(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldFinalVersion, v))
}

// StoppedBy applies equality check predicate on the "stopped_by" field. It's identical to StoppedByEQ.
func StoppedBy(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldStoppedBy, v))
}

// ConvergenceReason applies equality check predicate on the "convergence_reason" field. It's identical to ConvergenceReasonEQ.
func ConvergenceReason(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldConvergenceReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ContinuedFromIteration applies equality check predicate on the "continued_from_iteration" field. It's identical to ContinuedFromIterationEQ.
func ContinuedFromIteration(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldContinuedFromIteration, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldTitle, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldGoal, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldDocumentType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ParticipantsIsNil applies the IsNil predicate on the "participants" field.
func ParticipantsIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldParticipants))
}

// ParticipantsNotNil applies the NotNil predicate on the "participants" field.
func ParticipantsNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldParticipants))
}

// ModeratorFocusEQ applies the EQ predicate on the "moderator_focus" field.
func ModeratorFocusEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldModeratorFocus, v))
}

// ModeratorFocusNEQ applies the NEQ predicate on the "moderator_focus" field.
func ModeratorFocusNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldModeratorFocus, v))
}

// ModeratorFocusIn applies the In predicate on the "moderator_focus" field.
func ModeratorFocusIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldModeratorFocus, vs...))
}

// ModeratorFocusNotIn applies the NotIn predicate on the "moderator_focus" field.
func ModeratorFocusNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldModeratorFocus, vs...))
}

// ModeratorFocusGT applies the GT predicate on the "moderator_focus" field.
func ModeratorFocusGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldModeratorFocus, v))
}

// ModeratorFocusGTE applies the GTE predicate on the "moderator_focus" field.
func ModeratorFocusGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldModeratorFocus, v))
}

// ModeratorFocusLT applies the LT predicate on the "moderator_focus" field.
func ModeratorFocusLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldModeratorFocus, v))
}

// ModeratorFocusLTE applies the LTE predicate on the "moderator_focus" field.
func ModeratorFocusLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldModeratorFocus, v))
}

// ModeratorFocusContains applies the Contains predicate on the "moderator_focus" field.
func ModeratorFocusContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldModeratorFocus, v))
}

// ModeratorFocusHasPrefix applies the HasPrefix predicate on the "moderator_focus" field.
func ModeratorFocusHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldModeratorFocus, v))
}

// ModeratorFocusHasSuffix applies the HasSuffix predicate on the "moderator_focus" field.
func ModeratorFocusHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldModeratorFocus, v))
}

// ModeratorFocusIsNil applies the IsNil predicate on the "moderator_focus" field.
func ModeratorFocusIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldModeratorFocus))
}

// ModeratorFocusNotNil applies the NotNil predicate on the "moderator_focus" field.
func ModeratorFocusNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldModeratorFocus))
}

// ModeratorFocusEqualFold applies the EqualFold predicate on the "moderator_focus" field.
func ModeratorFocusEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldModeratorFocus, v))
}

// ModeratorFocusContainsFold applies the ContainsFold predicate on the "moderator_focus" field.
func ModeratorFocusContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldModeratorFocus, v))
}

// PlannerWarningEQ applies the EQ predicate on the "planner_warning" field.
func PlannerWarningEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldPlannerWarning, v))
}

// PlannerWarningNEQ applies the NEQ predicate on the "planner_warning" field.
func PlannerWarningNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldPlannerWarning, v))
}

// PlannerWarningIn applies the In predicate on the "planner_warning" field.
func PlannerWarningIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldPlannerWarning, vs...))
}

// PlannerWarningNotIn applies the NotIn predicate on the "planner_warning" field.
func PlannerWarningNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldPlannerWarning, vs...))
}

// PlannerWarningGT applies the GT predicate on the "planner_warning" field.
func PlannerWarningGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldPlannerWarning, v))
}

// PlannerWarningGTE applies the GTE predicate on the "planner_warning" field.
func PlannerWarningGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldPlannerWarning, v))
}

// PlannerWarningLT applies the LT predicate on the "planner_warning" field.
func PlannerWarningLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldPlannerWarning, v))
}

// PlannerWarningLTE applies the LTE predicate on the "planner_warning" field.
func PlannerWarningLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldPlannerWarning, v))
}

// PlannerWarningContains applies the Contains predicate on the "planner_warning" field.
func PlannerWarningContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldPlannerWarning, v))
}

// PlannerWarningHasPrefix applies the HasPrefix predicate on the "planner_warning" field.
func PlannerWarningHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldPlannerWarning, v))
}

// PlannerWarningHasSuffix applies the HasSuffix predicate on the "planner_warning" field.
func PlannerWarningHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldPlannerWarning, v))
}

// PlannerWarningIsNil applies the IsNil predicate on the "planner_warning" field.
func PlannerWarningIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldPlannerWarning))
}

// PlannerWarningNotNil applies the NotNil predicate on the "planner_warning" field.
func PlannerWarningNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldPlannerWarning))
}

// PlannerWarningEqualFold applies the EqualFold predicate on the "planner_warning" field.
func PlannerWarningEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldPlannerWarning, v))
}

// PlannerWarningContainsFold applies the ContainsFold predicate on the "planner_warning" field.
func PlannerWarningContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldPlannerWarning, v))
}

// CurrentIterationEQ applies the EQ predicate on the "current_iteration" field.
func CurrentIterationEQ(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldCurrentIteration, v))
}

// CurrentIterationNEQ applies the NEQ predicate on the "current_iteration" field.
func CurrentIterationNEQ(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldCurrentIteration, v))
}

// CurrentIterationIn applies the In predicate on the "current_iteration" field.
func CurrentIterationIn(vs ...int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldCurrentIteration, vs...))
}

// CurrentIterationNotIn applies the NotIn predicate on the "current_iteration" field.
func CurrentIterationNotIn(vs ...int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldCurrentIteration, vs...))
}

// CurrentIterationGT applies the GT predicate on the "current_iteration" field.
func CurrentIterationGT(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldCurrentIteration, v))
}

// CurrentIterationGTE applies the GTE predicate on the "current_iteration" field.
func CurrentIterationGTE(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldCurrentIteration, v))
}

// CurrentIterationLT applies the LT predicate on the "current_iteration" field.
func CurrentIterationLT(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldCurrentIteration, v))
}

// CurrentIterationLTE applies the LTE predicate on the "current_iteration" field.
func CurrentIterationLTE(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldCurrentIteration, v))
}

// FinalVersionEQ applies the EQ predicate on the "final_version" field.
func FinalVersionEQ(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldFinalVersion, v))
}

// FinalVersionNEQ applies the NEQ predicate on the "final_version" field.
func FinalVersionNEQ(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldFinalVersion, v))
}

// FinalVersionIn applies the In predicate on the "final_version" field.
func FinalVersionIn(vs ...int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldFinalVersion, vs...))
}

// FinalVersionNotIn applies the NotIn predicate on the "final_version" field.
func FinalVersionNotIn(vs ...int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldFinalVersion, vs...))
}

// FinalVersionGT applies the GT predicate on the "final_version" field.
func FinalVersionGT(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldFinalVersion, v))
}

// FinalVersionGTE applies the GTE predicate on the "final_version" field.
func FinalVersionGTE(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldFinalVersion, v))
}

// FinalVersionLT applies the LT predicate on the "final_version" field.
func FinalVersionLT(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldFinalVersion, v))
}

// FinalVersionLTE applies the LTE predicate on the "final_version" field.
func FinalVersionLTE(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldFinalVersion, v))
}

// FinalVersionIsNil applies the IsNil predicate on the "final_version" field.
func FinalVersionIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldFinalVersion))
}

// FinalVersionNotNil applies the NotNil predicate on the "final_version" field.
func FinalVersionNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldFinalVersion))
}

// StoppedByEQ applies the EQ predicate on the "stopped_by" field.
func StoppedByEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldStoppedBy, v))
}

// StoppedByNEQ applies the NEQ predicate on the "stopped_by" field.
func StoppedByNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldStoppedBy, v))
}

// StoppedByIn applies the In predicate on the "stopped_by" field.
func StoppedByIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldStoppedBy, vs...))
}

// StoppedByNotIn applies the NotIn predicate on the "stopped_by" field.
func StoppedByNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldStoppedBy, vs...))
}

// StoppedByGT applies the GT predicate on the "stopped_by" field.
func StoppedByGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldStoppedBy, v))
}

// StoppedByGTE applies the GTE predicate on the "stopped_by" field.
func StoppedByGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldStoppedBy, v))
}

// StoppedByLT applies the LT predicate on the "stopped_by" field.
func StoppedByLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldStoppedBy, v))
}

// StoppedByLTE applies the LTE predicate on the "stopped_by" field.
func StoppedByLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldStoppedBy, v))
}

// StoppedByContains applies the Contains predicate on the "stopped_by" field.
func StoppedByContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldStoppedBy, v))
}

// StoppedByHasPrefix applies the HasPrefix predicate on the "stopped_by" field.
func StoppedByHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldStoppedBy, v))
}

// StoppedByHasSuffix applies the HasSuffix predicate on the "stopped_by" field.
func StoppedByHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldStoppedBy, v))
}

// StoppedByIsNil applies the IsNil predicate on the "stopped_by" field.
func StoppedByIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldStoppedBy))
}

// StoppedByNotNil applies the NotNil predicate on the "stopped_by" field.
func StoppedByNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldStoppedBy))
}

// StoppedByEqualFold applies the EqualFold predicate on the "stopped_by" field.
func StoppedByEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldStoppedBy, v))
}

// StoppedByContainsFold applies the ContainsFold predicate on the "stopped_by" field.
func StoppedByContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldStoppedBy, v))
}

// ConvergenceReasonEQ applies the EQ predicate on the "convergence_reason" field.
func ConvergenceReasonEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldConvergenceReason, v))
}

// ConvergenceReasonNEQ applies the NEQ predicate on the "convergence_reason" field.
func ConvergenceReasonNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldConvergenceReason, v))
}

// ConvergenceReasonIn applies the In predicate on the "convergence_reason" field.
func ConvergenceReasonIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldConvergenceReason, vs...))
}

// ConvergenceReasonNotIn applies the NotIn predicate on the "convergence_reason" field.
func ConvergenceReasonNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldConvergenceReason, vs...))
}

// ConvergenceReasonGT applies the GT predicate on the "convergence_reason" field.
func ConvergenceReasonGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldConvergenceReason, v))
}

// ConvergenceReasonGTE applies the GTE predicate on the "convergence_reason" field.
func ConvergenceReasonGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldConvergenceReason, v))
}

// ConvergenceReasonLT applies the LT predicate on the "convergence_reason" field.
func ConvergenceReasonLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldConvergenceReason, v))
}

// ConvergenceReasonLTE applies the LTE predicate on the "convergence_reason" field.
func ConvergenceReasonLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldConvergenceReason, v))
}

// ConvergenceReasonContains applies the Contains predicate on the "convergence_reason" field.
func ConvergenceReasonContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldConvergenceReason, v))
}

// ConvergenceReasonHasPrefix applies the HasPrefix predicate on the "convergence_reason" field.
func ConvergenceReasonHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldConvergenceReason, v))
}

// ConvergenceReasonHasSuffix applies the HasSuffix predicate on the "convergence_reason" field.
func ConvergenceReasonHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldConvergenceReason, v))
}

// ConvergenceReasonIsNil applies the IsNil predicate on the "convergence_reason" field.
func ConvergenceReasonIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldConvergenceReason))
}

// ConvergenceReasonNotNil applies the NotNil predicate on the "convergence_reason" field.
func ConvergenceReasonNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldConvergenceReason))
}

// ConvergenceReasonEqualFold applies the EqualFold predicate on the "convergence_reason" field.
func ConvergenceReasonEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldConvergenceReason, v))
}

// ConvergenceReasonContainsFold applies the ContainsFold predicate on the "convergence_reason" field.
func ConvergenceReasonContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldConvergenceReason, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ContinuedFromIterationEQ applies the EQ predicate on the "continued_from_iteration" field.
func ContinuedFromIterationEQ(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldContinuedFromIteration, v))
}

// ContinuedFromIterationNEQ applies the NEQ predicate on the "continued_from_iteration" field.
func ContinuedFromIterationNEQ(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldContinuedFromIteration, v))
}

// ContinuedFromIterationIn applies the In predicate on the "continued_from_iteration" field.
func ContinuedFromIterationIn(vs ...int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldContinuedFromIteration, vs...))
}

// ContinuedFromIterationNotIn applies the NotIn predicate on the "continued_from_iteration" field.
func ContinuedFromIterationNotIn(vs ...int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldContinuedFromIteration, vs...))
}

// ContinuedFromIterationGT applies the GT predicate on the "continued_from_iteration" field.
func ContinuedFromIterationGT(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldContinuedFromIteration, v))
}

// ContinuedFromIterationGTE applies the GTE predicate on the "continued_from_iteration" field.
func ContinuedFromIterationGTE(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldContinuedFromIteration, v))
}

// ContinuedFromIterationLT applies the LT predicate on the "continued_from_iteration" field.
func ContinuedFromIterationLT(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldContinuedFromIteration, v))
}

// ContinuedFromIterationLTE applies the LTE predicate on the "continued_from_iteration" field.
func ContinuedFromIterationLTE(v int) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldContinuedFromIteration, v))
}

// ContinuedFromIterationIsNil applies the IsNil predicate on the "continued_from_iteration" field.
func ContinuedFromIterationIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldContinuedFromIteration))
}

// ContinuedFromIterationNotNil applies the NotNil predicate on the "continued_from_iteration" field.
func ContinuedFromIterationNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldContinuedFromIteration))
}

// TokensIsNil applies the IsNil predicate on the "tokens" field.
func TokensIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldTokens))
}

// TokensNotNil applies the NotNil predicate on the "tokens" field.
func TokensNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldTokens))
}

// SessionMetadataIsNil applies the IsNil predicate on the "session_metadata" field.
func SessionMetadataIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldSessionMetadata))
}

// SessionMetadataNotNil applies the NotNil predicate on the "session_metadata" field.
func SessionMetadataNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldSessionMetadata))
}

// ConvergenceReportIsNil applies the IsNil predicate on the "convergence_report" field.
func ConvergenceReportIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldConvergenceReport))
}

// ConvergenceReportNotNil applies the NotNil predicate on the "convergence_report" field.
func ConvergenceReportNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldConvergenceReport))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.RefinementSession {
	return predicate.RefinementSession(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.DocumentVersion) predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReviews applies the HasEdge predicate on the "reviews" edge.
func HasReviews() predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewsTable, ReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewsWith applies the HasEdge predicate on the "reviews" edge with a given conditions (other predicates).
func HasReviewsWith(preds ...predicate.Review) predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := newReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIterations applies the HasEdge predicate on the "iterations" edge.
func HasIterations() predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IterationsTable, IterationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIterationsWith applies the HasEdge predicate on the "iterations" edge with a given conditions (other predicates).
func HasIterationsWith(preds ...predicate.IterationRecord) predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := newIterationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.RefinementSession {
	return predicate.RefinementSession(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RefinementSession) predicate.RefinementSession {
	return predicate.RefinementSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RefinementSession) predicate.RefinementSession {
	return predicate.RefinementSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RefinementSession) predicate.RefinementSession {
	return predicate.RefinementSession(sql.NotPredicates(p))
}
