// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/documentversion"
	"github.com/roundtable-ai/roundtable/ent/event"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
	"github.com/roundtable-ai/roundtable/ent/review"
)

// RefinementSessionCreate is the builder for creating a RefinementSession entity.
type RefinementSessionCreate struct {
	config
	mutation *RefinementSessionMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *RefinementSessionCreate) SetTitle(v string) *RefinementSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *RefinementSessionCreate) SetGoal(v string) *RefinementSessionCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *RefinementSessionCreate) SetDocumentType(v string) *RefinementSessionCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RefinementSessionCreate) SetStatus(v refinementsession.Status) *RefinementSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableStatus(v *refinementsession.Status) *RefinementSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *RefinementSessionCreate) SetConfig(v map[string]interface{}) *RefinementSessionCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *RefinementSessionCreate) SetParticipants(v []map[string]interface{}) *RefinementSessionCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetModeratorFocus sets the "moderator_focus" field.
func (_c *RefinementSessionCreate) SetModeratorFocus(v string) *RefinementSessionCreate {
	_c.mutation.SetModeratorFocus(v)
	return _c
}

// SetNillableModeratorFocus sets the "moderator_focus" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableModeratorFocus(v *string) *RefinementSessionCreate {
	if v != nil {
		_c.SetModeratorFocus(*v)
	}
	return _c
}

// SetPlannerWarning sets the "planner_warning" field.
func (_c *RefinementSessionCreate) SetPlannerWarning(v string) *RefinementSessionCreate {
	_c.mutation.SetPlannerWarning(v)
	return _c
}

// SetNillablePlannerWarning sets the "planner_warning" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillablePlannerWarning(v *string) *RefinementSessionCreate {
	if v != nil {
		_c.SetPlannerWarning(*v)
	}
	return _c
}

// SetCurrentIteration sets the "current_iteration" field.
func (_c *RefinementSessionCreate) SetCurrentIteration(v int) *RefinementSessionCreate {
	_c.mutation.SetCurrentIteration(v)
	return _c
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableCurrentIteration(v *int) *RefinementSessionCreate {
	if v != nil {
		_c.SetCurrentIteration(*v)
	}
	return _c
}

// SetFinalVersion sets the "final_version" field.
func (_c *RefinementSessionCreate) SetFinalVersion(v int) *RefinementSessionCreate {
	_c.mutation.SetFinalVersion(v)
	return _c
}

// SetNillableFinalVersion sets the "final_version" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableFinalVersion(v *int) *RefinementSessionCreate {
	if v != nil {
		_c.SetFinalVersion(*v)
	}
	return _c
}

// SetStoppedBy sets the "stopped_by" field.
func (_c *RefinementSessionCreate) SetStoppedBy(v string) *RefinementSessionCreate {
	_c.mutation.SetStoppedBy(v)
	return _c
}

// SetNillableStoppedBy sets the "stopped_by" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableStoppedBy(v *string) *RefinementSessionCreate {
	if v != nil {
		_c.SetStoppedBy(*v)
	}
	return _c
}

// SetConvergenceReason sets the "convergence_reason" field.
func (_c *RefinementSessionCreate) SetConvergenceReason(v string) *RefinementSessionCreate {
	_c.mutation.SetConvergenceReason(v)
	return _c
}

// SetNillableConvergenceReason sets the "convergence_reason" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableConvergenceReason(v *string) *RefinementSessionCreate {
	if v != nil {
		_c.SetConvergenceReason(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RefinementSessionCreate) SetErrorMessage(v string) *RefinementSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableErrorMessage(v *string) *RefinementSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetContinuedFromIteration sets the "continued_from_iteration" field.
func (_c *RefinementSessionCreate) SetContinuedFromIteration(v int) *RefinementSessionCreate {
	_c.mutation.SetContinuedFromIteration(v)
	return _c
}

// SetNillableContinuedFromIteration sets the "continued_from_iteration" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableContinuedFromIteration(v *int) *RefinementSessionCreate {
	if v != nil {
		_c.SetContinuedFromIteration(*v)
	}
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *RefinementSessionCreate) SetTokens(v map[string]interface{}) *RefinementSessionCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetSessionMetadata sets the "session_metadata" field.
func (_c *RefinementSessionCreate) SetSessionMetadata(v map[string]interface{}) *RefinementSessionCreate {
	_c.mutation.SetSessionMetadata(v)
	return _c
}

// SetConvergenceReport sets the "convergence_report" field.
func (_c *RefinementSessionCreate) SetConvergenceReport(v map[string]interface{}) *RefinementSessionCreate {
	_c.mutation.SetConvergenceReport(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RefinementSessionCreate) SetCreatedAt(v time.Time) *RefinementSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableCreatedAt(v *time.Time) *RefinementSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RefinementSessionCreate) SetStartedAt(v time.Time) *RefinementSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableStartedAt(v *time.Time) *RefinementSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RefinementSessionCreate) SetCompletedAt(v time.Time) *RefinementSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableCompletedAt(v *time.Time) *RefinementSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RefinementSessionCreate) SetPodID(v string) *RefinementSessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillablePodID(v *string) *RefinementSessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *RefinementSessionCreate) SetLastHeartbeatAt(v time.Time) *RefinementSessionCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *RefinementSessionCreate) SetNillableLastHeartbeatAt(v *time.Time) *RefinementSessionCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RefinementSessionCreate) SetID(v string) *RefinementSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddVersionIDs adds the "versions" edge to the DocumentVersion entity by IDs.
func (_c *RefinementSessionCreate) AddVersionIDs(ids ...string) *RefinementSessionCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the DocumentVersion entity.
func (_c *RefinementSessionCreate) AddVersions(v ...*DocumentVersion) *RefinementSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_c *RefinementSessionCreate) AddReviewIDs(ids ...string) *RefinementSessionCreate {
	_c.mutation.AddReviewIDs(ids...)
	return _c
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_c *RefinementSessionCreate) AddReviews(v ...*Review) *RefinementSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewIDs(ids...)
}

// AddIterationIDs adds the "iterations" edge to the IterationRecord entity by IDs.
func (_c *RefinementSessionCreate) AddIterationIDs(ids ...string) *RefinementSessionCreate {
	_c.mutation.AddIterationIDs(ids...)
	return _c
}

// AddIterations adds the "iterations" edges to the IterationRecord entity.
func (_c *RefinementSessionCreate) AddIterations(v ...*IterationRecord) *RefinementSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIterationIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *RefinementSessionCreate) AddEventIDs(ids ...int) *RefinementSessionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *RefinementSessionCreate) AddEvents(v ...*Event) *RefinementSessionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the RefinementSessionMutation object of the builder.
func (_c *RefinementSessionCreate) Mutation() *RefinementSessionMutation {
	return _c.mutation
}

// Save creates the RefinementSession in the database.
func (_c *RefinementSessionCreate) Save(ctx context.Context) (*RefinementSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RefinementSessionCreate) SaveX(ctx context.Context) *RefinementSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefinementSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefinementSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RefinementSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := refinementsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentIteration(); !ok {
		v := refinementsession.DefaultCurrentIteration
		_c.mutation.SetCurrentIteration(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := refinementsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RefinementSessionCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "RefinementSession.title"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "RefinementSession.goal"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "RefinementSession.document_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RefinementSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := refinementsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RefinementSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "RefinementSession.config"`)}
	}
	if _, ok := _c.mutation.CurrentIteration(); !ok {
		return &ValidationError{Name: "current_iteration", err: errors.New(`ent: missing required field "RefinementSession.current_iteration"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RefinementSession.created_at"`)}
	}
	return nil
}

func (_c *RefinementSessionCreate) sqlSave(ctx context.Context) (*RefinementSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RefinementSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RefinementSessionCreate) createSpec() (*RefinementSession, *sqlgraph.CreateSpec) {
	var (
		_node = &RefinementSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(refinementsession.Table, sqlgraph.NewFieldSpec(refinementsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(refinementsession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(refinementsession.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(refinementsession.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(refinementsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(refinementsession.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(refinementsession.FieldParticipants, field.TypeJSON, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.ModeratorFocus(); ok {
		_spec.SetField(refinementsession.FieldModeratorFocus, field.TypeString, value)
		_node.ModeratorFocus = value
	}
	if value, ok := _c.mutation.PlannerWarning(); ok {
		_spec.SetField(refinementsession.FieldPlannerWarning, field.TypeString, value)
		_node.PlannerWarning = &value
	}
	if value, ok := _c.mutation.CurrentIteration(); ok {
		_spec.SetField(refinementsession.FieldCurrentIteration, field.TypeInt, value)
		_node.CurrentIteration = value
	}
	if value, ok := _c.mutation.FinalVersion(); ok {
		_spec.SetField(refinementsession.FieldFinalVersion, field.TypeInt, value)
		_node.FinalVersion = &value
	}
	if value, ok := _c.mutation.StoppedBy(); ok {
		_spec.SetField(refinementsession.FieldStoppedBy, field.TypeString, value)
		_node.StoppedBy = &value
	}
	if value, ok := _c.mutation.ConvergenceReason(); ok {
		_spec.SetField(refinementsession.FieldConvergenceReason, field.TypeString, value)
		_node.ConvergenceReason = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(refinementsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ContinuedFromIteration(); ok {
		_spec.SetField(refinementsession.FieldContinuedFromIteration, field.TypeInt, value)
		_node.ContinuedFromIteration = &value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(refinementsession.FieldTokens, field.TypeJSON, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.SessionMetadata(); ok {
		_spec.SetField(refinementsession.FieldSessionMetadata, field.TypeJSON, value)
		_node.SessionMetadata = value
	}
	if value, ok := _c.mutation.ConvergenceReport(); ok {
		_spec.SetField(refinementsession.FieldConvergenceReport, field.TypeJSON, value)
		_node.ConvergenceReport = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(refinementsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(refinementsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(refinementsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(refinementsession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(refinementsession.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IterationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RefinementSessionCreateBulk is the builder for creating many RefinementSession entities in bulk.
type RefinementSessionCreateBulk struct {
	config
	err      error
	builders []*RefinementSessionCreate
}

// Save creates the RefinementSession entities in the database.
func (_c *RefinementSessionCreateBulk) Save(ctx context.Context) ([]*RefinementSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RefinementSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RefinementSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RefinementSessionCreateBulk) SaveX(ctx context.Context) []*RefinementSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RefinementSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RefinementSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
