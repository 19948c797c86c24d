// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/documentversion"
	"github.com/roundtable-ai/roundtable/ent/event"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
	"github.com/roundtable-ai/roundtable/ent/review"
)

// RefinementSessionUpdate is the builder for updating RefinementSession entities.
type RefinementSessionUpdate struct {
	config
	hooks    []Hook
	mutation *RefinementSessionMutation
}

// Where appends a list predicates to the RefinementSessionUpdate builder.
func (_u *RefinementSessionUpdate) Where(ps ...predicate.RefinementSession) *RefinementSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RefinementSessionUpdate) SetTitle(v string) *RefinementSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableTitle(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *RefinementSessionUpdate) SetGoal(v string) *RefinementSessionUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableGoal(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *RefinementSessionUpdate) SetDocumentType(v string) *RefinementSessionUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableDocumentType(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RefinementSessionUpdate) SetStatus(v refinementsession.Status) *RefinementSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableStatus(v *refinementsession.Status) *RefinementSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *RefinementSessionUpdate) SetConfig(v map[string]interface{}) *RefinementSessionUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *RefinementSessionUpdate) SetParticipants(v []map[string]interface{}) *RefinementSessionUpdate {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *RefinementSessionUpdate) AppendParticipants(v []map[string]interface{}) *RefinementSessionUpdate {
	_u.mutation.AppendParticipants(v)
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *RefinementSessionUpdate) ClearParticipants() *RefinementSessionUpdate {
	_u.mutation.ClearParticipants()
	return _u
}

// SetModeratorFocus sets the "moderator_focus" field.
func (_u *RefinementSessionUpdate) SetModeratorFocus(v string) *RefinementSessionUpdate {
	_u.mutation.SetModeratorFocus(v)
	return _u
}

// SetNillableModeratorFocus sets the "moderator_focus" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableModeratorFocus(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetModeratorFocus(*v)
	}
	return _u
}

// ClearModeratorFocus clears the value of the "moderator_focus" field.
func (_u *RefinementSessionUpdate) ClearModeratorFocus() *RefinementSessionUpdate {
	_u.mutation.ClearModeratorFocus()
	return _u
}

// SetPlannerWarning sets the "planner_warning" field.
func (_u *RefinementSessionUpdate) SetPlannerWarning(v string) *RefinementSessionUpdate {
	_u.mutation.SetPlannerWarning(v)
	return _u
}

// SetNillablePlannerWarning sets the "planner_warning" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillablePlannerWarning(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetPlannerWarning(*v)
	}
	return _u
}

// ClearPlannerWarning clears the value of the "planner_warning" field.
func (_u *RefinementSessionUpdate) ClearPlannerWarning() *RefinementSessionUpdate {
	_u.mutation.ClearPlannerWarning()
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *RefinementSessionUpdate) SetCurrentIteration(v int) *RefinementSessionUpdate {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableCurrentIteration(v *int) *RefinementSessionUpdate {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *RefinementSessionUpdate) AddCurrentIteration(v int) *RefinementSessionUpdate {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// SetFinalVersion sets the "final_version" field.
func (_u *RefinementSessionUpdate) SetFinalVersion(v int) *RefinementSessionUpdate {
	_u.mutation.ResetFinalVersion()
	_u.mutation.SetFinalVersion(v)
	return _u
}

// SetNillableFinalVersion sets the "final_version" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableFinalVersion(v *int) *RefinementSessionUpdate {
	if v != nil {
		_u.SetFinalVersion(*v)
	}
	return _u
}

// AddFinalVersion adds value to the "final_version" field.
func (_u *RefinementSessionUpdate) AddFinalVersion(v int) *RefinementSessionUpdate {
	_u.mutation.AddFinalVersion(v)
	return _u
}

// ClearFinalVersion clears the value of the "final_version" field.
func (_u *RefinementSessionUpdate) ClearFinalVersion() *RefinementSessionUpdate {
	_u.mutation.ClearFinalVersion()
	return _u
}

// SetStoppedBy sets the "stopped_by" field.
func (_u *RefinementSessionUpdate) SetStoppedBy(v string) *RefinementSessionUpdate {
	_u.mutation.SetStoppedBy(v)
	return _u
}

// SetNillableStoppedBy sets the "stopped_by" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableStoppedBy(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetStoppedBy(*v)
	}
	return _u
}

// ClearStoppedBy clears the value of the "stopped_by" field.
func (_u *RefinementSessionUpdate) ClearStoppedBy() *RefinementSessionUpdate {
	_u.mutation.ClearStoppedBy()
	return _u
}

// SetConvergenceReason sets the "convergence_reason" field.
func (_u *RefinementSessionUpdate) SetConvergenceReason(v string) *RefinementSessionUpdate {
	_u.mutation.SetConvergenceReason(v)
	return _u
}

// SetNillableConvergenceReason sets the "convergence_reason" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableConvergenceReason(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetConvergenceReason(*v)
	}
	return _u
}

// ClearConvergenceReason clears the value of the "convergence_reason" field.
func (_u *RefinementSessionUpdate) ClearConvergenceReason() *RefinementSessionUpdate {
	_u.mutation.ClearConvergenceReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RefinementSessionUpdate) SetErrorMessage(v string) *RefinementSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableErrorMessage(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RefinementSessionUpdate) ClearErrorMessage() *RefinementSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetContinuedFromIteration sets the "continued_from_iteration" field.
func (_u *RefinementSessionUpdate) SetContinuedFromIteration(v int) *RefinementSessionUpdate {
	_u.mutation.ResetContinuedFromIteration()
	_u.mutation.SetContinuedFromIteration(v)
	return _u
}

// SetNillableContinuedFromIteration sets the "continued_from_iteration" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableContinuedFromIteration(v *int) *RefinementSessionUpdate {
	if v != nil {
		_u.SetContinuedFromIteration(*v)
	}
	return _u
}

// AddContinuedFromIteration adds value to the "continued_from_iteration" field.
func (_u *RefinementSessionUpdate) AddContinuedFromIteration(v int) *RefinementSessionUpdate {
	_u.mutation.AddContinuedFromIteration(v)
	return _u
}

// ClearContinuedFromIteration clears the value of the "continued_from_iteration" field.
func (_u *RefinementSessionUpdate) ClearContinuedFromIteration() *RefinementSessionUpdate {
	_u.mutation.ClearContinuedFromIteration()
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *RefinementSessionUpdate) SetTokens(v map[string]interface{}) *RefinementSessionUpdate {
	_u.mutation.SetTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *RefinementSessionUpdate) ClearTokens() *RefinementSessionUpdate {
	_u.mutation.ClearTokens()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *RefinementSessionUpdate) SetSessionMetadata(v map[string]interface{}) *RefinementSessionUpdate {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *RefinementSessionUpdate) ClearSessionMetadata() *RefinementSessionUpdate {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetConvergenceReport sets the "convergence_report" field.
func (_u *RefinementSessionUpdate) SetConvergenceReport(v map[string]interface{}) *RefinementSessionUpdate {
	_u.mutation.SetConvergenceReport(v)
	return _u
}

// ClearConvergenceReport clears the value of the "convergence_report" field.
func (_u *RefinementSessionUpdate) ClearConvergenceReport() *RefinementSessionUpdate {
	_u.mutation.ClearConvergenceReport()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RefinementSessionUpdate) SetCreatedAt(v time.Time) *RefinementSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableCreatedAt(v *time.Time) *RefinementSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RefinementSessionUpdate) SetStartedAt(v time.Time) *RefinementSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableStartedAt(v *time.Time) *RefinementSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RefinementSessionUpdate) ClearStartedAt() *RefinementSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RefinementSessionUpdate) SetCompletedAt(v time.Time) *RefinementSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableCompletedAt(v *time.Time) *RefinementSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RefinementSessionUpdate) ClearCompletedAt() *RefinementSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RefinementSessionUpdate) SetPodID(v string) *RefinementSessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillablePodID(v *string) *RefinementSessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RefinementSessionUpdate) ClearPodID() *RefinementSessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RefinementSessionUpdate) SetLastHeartbeatAt(v time.Time) *RefinementSessionUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RefinementSessionUpdate) SetNillableLastHeartbeatAt(v *time.Time) *RefinementSessionUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RefinementSessionUpdate) ClearLastHeartbeatAt() *RefinementSessionUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddVersionIDs adds the "versions" edge to the DocumentVersion entity by IDs.
func (_u *RefinementSessionUpdate) AddVersionIDs(ids ...string) *RefinementSessionUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the DocumentVersion entity.
func (_u *RefinementSessionUpdate) AddVersions(v ...*DocumentVersion) *RefinementSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *RefinementSessionUpdate) AddReviewIDs(ids ...string) *RefinementSessionUpdate {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *RefinementSessionUpdate) AddReviews(v ...*Review) *RefinementSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// AddIterationIDs adds the "iterations" edge to the IterationRecord entity by IDs.
func (_u *RefinementSessionUpdate) AddIterationIDs(ids ...string) *RefinementSessionUpdate {
	_u.mutation.AddIterationIDs(ids...)
	return _u
}

// AddIterations adds the "iterations" edges to the IterationRecord entity.
func (_u *RefinementSessionUpdate) AddIterations(v ...*IterationRecord) *RefinementSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIterationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RefinementSessionUpdate) AddEventIDs(ids ...int) *RefinementSessionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RefinementSessionUpdate) AddEvents(v ...*Event) *RefinementSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RefinementSessionMutation object of the builder.
func (_u *RefinementSessionUpdate) Mutation() *RefinementSessionMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the DocumentVersion entity.
func (_u *RefinementSessionUpdate) ClearVersions() *RefinementSessionUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to DocumentVersion entities by IDs.
func (_u *RefinementSessionUpdate) RemoveVersionIDs(ids ...string) *RefinementSessionUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to DocumentVersion entities.
func (_u *RefinementSessionUpdate) RemoveVersions(v ...*DocumentVersion) *RefinementSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *RefinementSessionUpdate) ClearReviews() *RefinementSessionUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *RefinementSessionUpdate) RemoveReviewIDs(ids ...string) *RefinementSessionUpdate {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *RefinementSessionUpdate) RemoveReviews(v ...*Review) *RefinementSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearIterations clears all "iterations" edges to the IterationRecord entity.
func (_u *RefinementSessionUpdate) ClearIterations() *RefinementSessionUpdate {
	_u.mutation.ClearIterations()
	return _u
}

// RemoveIterationIDs removes the "iterations" edge to IterationRecord entities by IDs.
func (_u *RefinementSessionUpdate) RemoveIterationIDs(ids ...string) *RefinementSessionUpdate {
	_u.mutation.RemoveIterationIDs(ids...)
	return _u
}

// RemoveIterations removes "iterations" edges to IterationRecord entities.
func (_u *RefinementSessionUpdate) RemoveIterations(v ...*IterationRecord) *RefinementSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIterationIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RefinementSessionUpdate) ClearEvents() *RefinementSessionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RefinementSessionUpdate) RemoveEventIDs(ids ...int) *RefinementSessionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RefinementSessionUpdate) RemoveEvents(v ...*Event) *RefinementSessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RefinementSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefinementSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RefinementSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefinementSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefinementSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := refinementsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RefinementSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RefinementSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refinementsession.Table, refinementsession.Columns, sqlgraph.NewFieldSpec(refinementsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(refinementsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(refinementsession.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(refinementsession.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(refinementsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(refinementsession.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(refinementsession.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, refinementsession.FieldParticipants, value)
		})
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(refinementsession.FieldParticipants, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModeratorFocus(); ok {
		_spec.SetField(refinementsession.FieldModeratorFocus, field.TypeString, value)
	}
	if _u.mutation.ModeratorFocusCleared() {
		_spec.ClearField(refinementsession.FieldModeratorFocus, field.TypeString)
	}
	if value, ok := _u.mutation.PlannerWarning(); ok {
		_spec.SetField(refinementsession.FieldPlannerWarning, field.TypeString, value)
	}
	if _u.mutation.PlannerWarningCleared() {
		_spec.ClearField(refinementsession.FieldPlannerWarning, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(refinementsession.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(refinementsession.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalVersion(); ok {
		_spec.SetField(refinementsession.FieldFinalVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalVersion(); ok {
		_spec.AddField(refinementsession.FieldFinalVersion, field.TypeInt, value)
	}
	if _u.mutation.FinalVersionCleared() {
		_spec.ClearField(refinementsession.FieldFinalVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.StoppedBy(); ok {
		_spec.SetField(refinementsession.FieldStoppedBy, field.TypeString, value)
	}
	if _u.mutation.StoppedByCleared() {
		_spec.ClearField(refinementsession.FieldStoppedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ConvergenceReason(); ok {
		_spec.SetField(refinementsession.FieldConvergenceReason, field.TypeString, value)
	}
	if _u.mutation.ConvergenceReasonCleared() {
		_spec.ClearField(refinementsession.FieldConvergenceReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(refinementsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(refinementsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ContinuedFromIteration(); ok {
		_spec.SetField(refinementsession.FieldContinuedFromIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContinuedFromIteration(); ok {
		_spec.AddField(refinementsession.FieldContinuedFromIteration, field.TypeInt, value)
	}
	if _u.mutation.ContinuedFromIterationCleared() {
		_spec.ClearField(refinementsession.FieldContinuedFromIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(refinementsession.FieldTokens, field.TypeJSON, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(refinementsession.FieldTokens, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(refinementsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(refinementsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConvergenceReport(); ok {
		_spec.SetField(refinementsession.FieldConvergenceReport, field.TypeJSON, value)
	}
	if _u.mutation.ConvergenceReportCleared() {
		_spec.ClearField(refinementsession.FieldConvergenceReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(refinementsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(refinementsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(refinementsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(refinementsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(refinementsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(refinementsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(refinementsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(refinementsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(refinementsession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.VersionsTable,
			Columns: []string{refinementsession.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.VersionsTable,
			Columns: []string{refinementsession.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.VersionsTable,
			Columns: []string{refinementsession.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.ReviewsTable,
			Columns: []string{refinementsession.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.ReviewsTable,
			Columns: []string{refinementsession.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.ReviewsTable,
			Columns: []string{refinementsession.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.IterationsTable,
			Columns: []string{refinementsession.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIterationsIDs(); len(nodes) > 0 && !_u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.IterationsTable,
			Columns: []string{refinementsession.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IterationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.IterationsTable,
			Columns: []string{refinementsession.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.EventsTable,
			Columns: []string{refinementsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.EventsTable,
			Columns: []string{refinementsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.EventsTable,
			Columns: []string{refinementsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refinementsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RefinementSessionUpdateOne is the builder for updating a single RefinementSession entity.
type RefinementSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RefinementSessionMutation
}

// SetTitle sets the "title" field.
func (_u *RefinementSessionUpdateOne) SetTitle(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableTitle(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *RefinementSessionUpdateOne) SetGoal(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableGoal(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *RefinementSessionUpdateOne) SetDocumentType(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableDocumentType(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RefinementSessionUpdateOne) SetStatus(v refinementsession.Status) *RefinementSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableStatus(v *refinementsession.Status) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *RefinementSessionUpdateOne) SetConfig(v map[string]interface{}) *RefinementSessionUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *RefinementSessionUpdateOne) SetParticipants(v []map[string]interface{}) *RefinementSessionUpdateOne {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *RefinementSessionUpdateOne) AppendParticipants(v []map[string]interface{}) *RefinementSessionUpdateOne {
	_u.mutation.AppendParticipants(v)
	return _u
}

// ClearParticipants clears the value of the "participants" field.
func (_u *RefinementSessionUpdateOne) ClearParticipants() *RefinementSessionUpdateOne {
	_u.mutation.ClearParticipants()
	return _u
}

// SetModeratorFocus sets the "moderator_focus" field.
func (_u *RefinementSessionUpdateOne) SetModeratorFocus(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetModeratorFocus(v)
	return _u
}

// SetNillableModeratorFocus sets the "moderator_focus" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableModeratorFocus(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetModeratorFocus(*v)
	}
	return _u
}

// ClearModeratorFocus clears the value of the "moderator_focus" field.
func (_u *RefinementSessionUpdateOne) ClearModeratorFocus() *RefinementSessionUpdateOne {
	_u.mutation.ClearModeratorFocus()
	return _u
}

// SetPlannerWarning sets the "planner_warning" field.
func (_u *RefinementSessionUpdateOne) SetPlannerWarning(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetPlannerWarning(v)
	return _u
}

// SetNillablePlannerWarning sets the "planner_warning" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillablePlannerWarning(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetPlannerWarning(*v)
	}
	return _u
}

// ClearPlannerWarning clears the value of the "planner_warning" field.
func (_u *RefinementSessionUpdateOne) ClearPlannerWarning() *RefinementSessionUpdateOne {
	_u.mutation.ClearPlannerWarning()
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *RefinementSessionUpdateOne) SetCurrentIteration(v int) *RefinementSessionUpdateOne {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableCurrentIteration(v *int) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *RefinementSessionUpdateOne) AddCurrentIteration(v int) *RefinementSessionUpdateOne {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// SetFinalVersion sets the "final_version" field.
func (_u *RefinementSessionUpdateOne) SetFinalVersion(v int) *RefinementSessionUpdateOne {
	_u.mutation.ResetFinalVersion()
	_u.mutation.SetFinalVersion(v)
	return _u
}

// SetNillableFinalVersion sets the "final_version" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableFinalVersion(v *int) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetFinalVersion(*v)
	}
	return _u
}

// AddFinalVersion adds value to the "final_version" field.
func (_u *RefinementSessionUpdateOne) AddFinalVersion(v int) *RefinementSessionUpdateOne {
	_u.mutation.AddFinalVersion(v)
	return _u
}

// ClearFinalVersion clears the value of the "final_version" field.
func (_u *RefinementSessionUpdateOne) ClearFinalVersion() *RefinementSessionUpdateOne {
	_u.mutation.ClearFinalVersion()
	return _u
}

// SetStoppedBy sets the "stopped_by" field.
func (_u *RefinementSessionUpdateOne) SetStoppedBy(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetStoppedBy(v)
	return _u
}

// SetNillableStoppedBy sets the "stopped_by" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableStoppedBy(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetStoppedBy(*v)
	}
	return _u
}

// ClearStoppedBy clears the value of the "stopped_by" field.
func (_u *RefinementSessionUpdateOne) ClearStoppedBy() *RefinementSessionUpdateOne {
	_u.mutation.ClearStoppedBy()
	return _u
}

// SetConvergenceReason sets the "convergence_reason" field.
func (_u *RefinementSessionUpdateOne) SetConvergenceReason(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetConvergenceReason(v)
	return _u
}

// SetNillableConvergenceReason sets the "convergence_reason" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableConvergenceReason(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetConvergenceReason(*v)
	}
	return _u
}

// ClearConvergenceReason clears the value of the "convergence_reason" field.
func (_u *RefinementSessionUpdateOne) ClearConvergenceReason() *RefinementSessionUpdateOne {
	_u.mutation.ClearConvergenceReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RefinementSessionUpdateOne) SetErrorMessage(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableErrorMessage(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RefinementSessionUpdateOne) ClearErrorMessage() *RefinementSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetContinuedFromIteration sets the "continued_from_iteration" field.
func (_u *RefinementSessionUpdateOne) SetContinuedFromIteration(v int) *RefinementSessionUpdateOne {
	_u.mutation.ResetContinuedFromIteration()
	_u.mutation.SetContinuedFromIteration(v)
	return _u
}

// SetNillableContinuedFromIteration sets the "continued_from_iteration" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableContinuedFromIteration(v *int) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetContinuedFromIteration(*v)
	}
	return _u
}

// AddContinuedFromIteration adds value to the "continued_from_iteration" field.
func (_u *RefinementSessionUpdateOne) AddContinuedFromIteration(v int) *RefinementSessionUpdateOne {
	_u.mutation.AddContinuedFromIteration(v)
	return _u
}

// ClearContinuedFromIteration clears the value of the "continued_from_iteration" field.
func (_u *RefinementSessionUpdateOne) ClearContinuedFromIteration() *RefinementSessionUpdateOne {
	_u.mutation.ClearContinuedFromIteration()
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *RefinementSessionUpdateOne) SetTokens(v map[string]interface{}) *RefinementSessionUpdateOne {
	_u.mutation.SetTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *RefinementSessionUpdateOne) ClearTokens() *RefinementSessionUpdateOne {
	_u.mutation.ClearTokens()
	return _u
}

// SetSessionMetadata sets the "session_metadata" field.
func (_u *RefinementSessionUpdateOne) SetSessionMetadata(v map[string]interface{}) *RefinementSessionUpdateOne {
	_u.mutation.SetSessionMetadata(v)
	return _u
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (_u *RefinementSessionUpdateOne) ClearSessionMetadata() *RefinementSessionUpdateOne {
	_u.mutation.ClearSessionMetadata()
	return _u
}

// SetConvergenceReport sets the "convergence_report" field.
func (_u *RefinementSessionUpdateOne) SetConvergenceReport(v map[string]interface{}) *RefinementSessionUpdateOne {
	_u.mutation.SetConvergenceReport(v)
	return _u
}

// ClearConvergenceReport clears the value of the "convergence_report" field.
func (_u *RefinementSessionUpdateOne) ClearConvergenceReport() *RefinementSessionUpdateOne {
	_u.mutation.ClearConvergenceReport()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RefinementSessionUpdateOne) SetCreatedAt(v time.Time) *RefinementSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RefinementSessionUpdateOne) SetStartedAt(v time.Time) *RefinementSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableStartedAt(v *time.Time) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RefinementSessionUpdateOne) ClearStartedAt() *RefinementSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RefinementSessionUpdateOne) SetCompletedAt(v time.Time) *RefinementSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RefinementSessionUpdateOne) ClearCompletedAt() *RefinementSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RefinementSessionUpdateOne) SetPodID(v string) *RefinementSessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillablePodID(v *string) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RefinementSessionUpdateOne) ClearPodID() *RefinementSessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *RefinementSessionUpdateOne) SetLastHeartbeatAt(v time.Time) *RefinementSessionUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *RefinementSessionUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *RefinementSessionUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *RefinementSessionUpdateOne) ClearLastHeartbeatAt() *RefinementSessionUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddVersionIDs adds the "versions" edge to the DocumentVersion entity by IDs.
func (_u *RefinementSessionUpdateOne) AddVersionIDs(ids ...string) *RefinementSessionUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the DocumentVersion entity.
func (_u *RefinementSessionUpdateOne) AddVersions(v ...*DocumentVersion) *RefinementSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *RefinementSessionUpdateOne) AddReviewIDs(ids ...string) *RefinementSessionUpdateOne {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *RefinementSessionUpdateOne) AddReviews(v ...*Review) *RefinementSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// AddIterationIDs adds the "iterations" edge to the IterationRecord entity by IDs.
func (_u *RefinementSessionUpdateOne) AddIterationIDs(ids ...string) *RefinementSessionUpdateOne {
	_u.mutation.AddIterationIDs(ids...)
	return _u
}

// AddIterations adds the "iterations" edges to the IterationRecord entity.
func (_u *RefinementSessionUpdateOne) AddIterations(v ...*IterationRecord) *RefinementSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIterationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *RefinementSessionUpdateOne) AddEventIDs(ids ...int) *RefinementSessionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *RefinementSessionUpdateOne) AddEvents(v ...*Event) *RefinementSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the RefinementSessionMutation object of the builder.
func (_u *RefinementSessionUpdateOne) Mutation() *RefinementSessionMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the DocumentVersion entity.
func (_u *RefinementSessionUpdateOne) ClearVersions() *RefinementSessionUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to DocumentVersion entities by IDs.
func (_u *RefinementSessionUpdateOne) RemoveVersionIDs(ids ...string) *RefinementSessionUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to DocumentVersion entities.
func (_u *RefinementSessionUpdateOne) RemoveVersions(v ...*DocumentVersion) *RefinementSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *RefinementSessionUpdateOne) ClearReviews() *RefinementSessionUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *RefinementSessionUpdateOne) RemoveReviewIDs(ids ...string) *RefinementSessionUpdateOne {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *RefinementSessionUpdateOne) RemoveReviews(v ...*Review) *RefinementSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearIterations clears all "iterations" edges to the IterationRecord entity.
func (_u *RefinementSessionUpdateOne) ClearIterations() *RefinementSessionUpdateOne {
	_u.mutation.ClearIterations()
	return _u
}

// RemoveIterationIDs removes the "iterations" edge to IterationRecord entities by IDs.
func (_u *RefinementSessionUpdateOne) RemoveIterationIDs(ids ...string) *RefinementSessionUpdateOne {
	_u.mutation.RemoveIterationIDs(ids...)
	return _u
}

// RemoveIterations removes "iterations" edges to IterationRecord entities.
func (_u *RefinementSessionUpdateOne) RemoveIterations(v ...*IterationRecord) *RefinementSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIterationIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *RefinementSessionUpdateOne) ClearEvents() *RefinementSessionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *RefinementSessionUpdateOne) RemoveEventIDs(ids ...int) *RefinementSessionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *RefinementSessionUpdateOne) RemoveEvents(v ...*Event) *RefinementSessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the RefinementSessionUpdate builder.
func (_u *RefinementSessionUpdateOne) Where(ps ...predicate.RefinementSession) *RefinementSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RefinementSessionUpdateOne) Select(field string, fields ...string) *RefinementSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RefinementSession entity.
func (_u *RefinementSessionUpdateOne) Save(ctx context.Context) (*RefinementSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RefinementSessionUpdateOne) SaveX(ctx context.Context) *RefinementSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RefinementSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RefinementSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RefinementSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := refinementsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RefinementSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RefinementSessionUpdateOne) sqlSave(ctx context.Context) (_node *RefinementSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(refinementsession.Table, refinementsession.Columns, sqlgraph.NewFieldSpec(refinementsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RefinementSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refinementsession.FieldID)
		for _, f := range fields {
			if !refinementsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != refinementsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(refinementsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(refinementsession.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(refinementsession.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(refinementsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(refinementsession.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(refinementsession.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, refinementsession.FieldParticipants, value)
		})
	}
	if _u.mutation.ParticipantsCleared() {
		_spec.ClearField(refinementsession.FieldParticipants, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModeratorFocus(); ok {
		_spec.SetField(refinementsession.FieldModeratorFocus, field.TypeString, value)
	}
	if _u.mutation.ModeratorFocusCleared() {
		_spec.ClearField(refinementsession.FieldModeratorFocus, field.TypeString)
	}
	if value, ok := _u.mutation.PlannerWarning(); ok {
		_spec.SetField(refinementsession.FieldPlannerWarning, field.TypeString, value)
	}
	if _u.mutation.PlannerWarningCleared() {
		_spec.ClearField(refinementsession.FieldPlannerWarning, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(refinementsession.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(refinementsession.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalVersion(); ok {
		_spec.SetField(refinementsession.FieldFinalVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalVersion(); ok {
		_spec.AddField(refinementsession.FieldFinalVersion, field.TypeInt, value)
	}
	if _u.mutation.FinalVersionCleared() {
		_spec.ClearField(refinementsession.FieldFinalVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.StoppedBy(); ok {
		_spec.SetField(refinementsession.FieldStoppedBy, field.TypeString, value)
	}
	if _u.mutation.StoppedByCleared() {
		_spec.ClearField(refinementsession.FieldStoppedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ConvergenceReason(); ok {
		_spec.SetField(refinementsession.FieldConvergenceReason, field.TypeString, value)
	}
	if _u.mutation.ConvergenceReasonCleared() {
		_spec.ClearField(refinementsession.FieldConvergenceReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(refinementsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(refinementsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ContinuedFromIteration(); ok {
		_spec.SetField(refinementsession.FieldContinuedFromIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContinuedFromIteration(); ok {
		_spec.AddField(refinementsession.FieldContinuedFromIteration, field.TypeInt, value)
	}
	if _u.mutation.ContinuedFromIterationCleared() {
		_spec.ClearField(refinementsession.FieldContinuedFromIteration, field.TypeInt)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(refinementsession.FieldTokens, field.TypeJSON, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(refinementsession.FieldTokens, field.TypeJSON)
	}
	if value, ok := _u.mutation.SessionMetadata(); ok {
		_spec.SetField(refinementsession.FieldSessionMetadata, field.TypeJSON, value)
	}
	if _u.mutation.SessionMetadataCleared() {
		_spec.ClearField(refinementsession.FieldSessionMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConvergenceReport(); ok {
		_spec.SetField(refinementsession.FieldConvergenceReport, field.TypeJSON, value)
	}
	if _u.mutation.ConvergenceReportCleared() {
		_spec.ClearField(refinementsession.FieldConvergenceReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(refinementsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(refinementsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(refinementsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(refinementsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(refinementsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(refinementsession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(refinementsession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(refinementsession.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(refinementsession.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.VersionsTable,
			Columns: []string{refinementsession.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.VersionsTable,
			Columns: []string{refinementsession.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.VersionsTable,
			Columns: []string{refinementsession.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.ReviewsTable,
			Columns: []string{refinementsession.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.ReviewsTable,
			Columns: []string{refinementsession.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.ReviewsTable,
			Columns: []string{refinementsession.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.IterationsTable,
			Columns: []string{refinementsession.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIterationsIDs(); len(nodes) > 0 && !_u.mutation.IterationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.IterationsTable,
			Columns: []string{refinementsession.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IterationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.IterationsTable,
			Columns: []string{refinementsession.IterationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.EventsTable,
			Columns: []string{refinementsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.EventsTable,
			Columns: []string{refinementsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   refinementsession.EventsTable,
			Columns: []string{refinementsession.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RefinementSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{refinementsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
