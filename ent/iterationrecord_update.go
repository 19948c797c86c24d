// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// IterationRecordUpdate is the builder for updating IterationRecord entities.
type IterationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *IterationRecordMutation
}

// Where appends a list predicates to the IterationRecordUpdate builder.
func (_u *IterationRecordUpdate) Where(ps ...predicate.IterationRecord) *IterationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOutputVersion sets the "output_version" field.
func (_u *IterationRecordUpdate) SetOutputVersion(v int) *IterationRecordUpdate {
	_u.mutation.ResetOutputVersion()
	_u.mutation.SetOutputVersion(v)
	return _u
}

// SetNillableOutputVersion sets the "output_version" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableOutputVersion(v *int) *IterationRecordUpdate {
	if v != nil {
		_u.SetOutputVersion(*v)
	}
	return _u
}

// AddOutputVersion adds value to the "output_version" field.
func (_u *IterationRecordUpdate) AddOutputVersion(v int) *IterationRecordUpdate {
	_u.mutation.AddOutputVersion(v)
	return _u
}

// SetHighCount sets the "high_count" field.
func (_u *IterationRecordUpdate) SetHighCount(v int) *IterationRecordUpdate {
	_u.mutation.ResetHighCount()
	_u.mutation.SetHighCount(v)
	return _u
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableHighCount(v *int) *IterationRecordUpdate {
	if v != nil {
		_u.SetHighCount(*v)
	}
	return _u
}

// AddHighCount adds value to the "high_count" field.
func (_u *IterationRecordUpdate) AddHighCount(v int) *IterationRecordUpdate {
	_u.mutation.AddHighCount(v)
	return _u
}

// SetMediumCount sets the "medium_count" field.
func (_u *IterationRecordUpdate) SetMediumCount(v int) *IterationRecordUpdate {
	_u.mutation.ResetMediumCount()
	_u.mutation.SetMediumCount(v)
	return _u
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableMediumCount(v *int) *IterationRecordUpdate {
	if v != nil {
		_u.SetMediumCount(*v)
	}
	return _u
}

// AddMediumCount adds value to the "medium_count" field.
func (_u *IterationRecordUpdate) AddMediumCount(v int) *IterationRecordUpdate {
	_u.mutation.AddMediumCount(v)
	return _u
}

// SetLowCount sets the "low_count" field.
func (_u *IterationRecordUpdate) SetLowCount(v int) *IterationRecordUpdate {
	_u.mutation.ResetLowCount()
	_u.mutation.SetLowCount(v)
	return _u
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableLowCount(v *int) *IterationRecordUpdate {
	if v != nil {
		_u.SetLowCount(*v)
	}
	return _u
}

// AddLowCount adds value to the "low_count" field.
func (_u *IterationRecordUpdate) AddLowCount(v int) *IterationRecordUpdate {
	_u.mutation.AddLowCount(v)
	return _u
}

// SetDelta sets the "delta" field.
func (_u *IterationRecordUpdate) SetDelta(v float64) *IterationRecordUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableDelta(v *float64) *IterationRecordUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *IterationRecordUpdate) AddDelta(v float64) *IterationRecordUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetShouldStop sets the "should_stop" field.
func (_u *IterationRecordUpdate) SetShouldStop(v bool) *IterationRecordUpdate {
	_u.mutation.SetShouldStop(v)
	return _u
}

// SetNillableShouldStop sets the "should_stop" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableShouldStop(v *bool) *IterationRecordUpdate {
	if v != nil {
		_u.SetShouldStop(*v)
	}
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *IterationRecordUpdate) SetDecisionReason(v string) *IterationRecordUpdate {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableDecisionReason(v *string) *IterationRecordUpdate {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *IterationRecordUpdate) ClearDecisionReason() *IterationRecordUpdate {
	_u.mutation.ClearDecisionReason()
	return _u
}

// SetStoppedBy sets the "stopped_by" field.
func (_u *IterationRecordUpdate) SetStoppedBy(v string) *IterationRecordUpdate {
	_u.mutation.SetStoppedBy(v)
	return _u
}

// SetNillableStoppedBy sets the "stopped_by" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableStoppedBy(v *string) *IterationRecordUpdate {
	if v != nil {
		_u.SetStoppedBy(*v)
	}
	return _u
}

// ClearStoppedBy clears the value of the "stopped_by" field.
func (_u *IterationRecordUpdate) ClearStoppedBy() *IterationRecordUpdate {
	_u.mutation.ClearStoppedBy()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *IterationRecordUpdate) SetEndedAt(v time.Time) *IterationRecordUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *IterationRecordUpdate) SetNillableEndedAt(v *time.Time) *IterationRecordUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// Mutation returns the IterationRecordMutation object of the builder.
func (_u *IterationRecordUpdate) Mutation() *IterationRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IterationRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IterationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IterationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IterationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IterationRecordUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IterationRecord.session"`)
	}
	return nil
}

func (_u *IterationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(iterationrecord.Table, iterationrecord.Columns, sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OutputVersion(); ok {
		_spec.SetField(iterationrecord.FieldOutputVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputVersion(); ok {
		_spec.AddField(iterationrecord.FieldOutputVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighCount(); ok {
		_spec.SetField(iterationrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighCount(); ok {
		_spec.AddField(iterationrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumCount(); ok {
		_spec.SetField(iterationrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumCount(); ok {
		_spec.AddField(iterationrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowCount(); ok {
		_spec.SetField(iterationrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowCount(); ok {
		_spec.AddField(iterationrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(iterationrecord.FieldDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(iterationrecord.FieldDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShouldStop(); ok {
		_spec.SetField(iterationrecord.FieldShouldStop, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(iterationrecord.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(iterationrecord.FieldDecisionReason, field.TypeString)
	}
	if value, ok := _u.mutation.StoppedBy(); ok {
		_spec.SetField(iterationrecord.FieldStoppedBy, field.TypeString, value)
	}
	if _u.mutation.StoppedByCleared() {
		_spec.ClearField(iterationrecord.FieldStoppedBy, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(iterationrecord.FieldEndedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{iterationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IterationRecordUpdateOne is the builder for updating a single IterationRecord entity.
type IterationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IterationRecordMutation
}

// SetOutputVersion sets the "output_version" field.
func (_u *IterationRecordUpdateOne) SetOutputVersion(v int) *IterationRecordUpdateOne {
	_u.mutation.ResetOutputVersion()
	_u.mutation.SetOutputVersion(v)
	return _u
}

// SetNillableOutputVersion sets the "output_version" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableOutputVersion(v *int) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetOutputVersion(*v)
	}
	return _u
}

// AddOutputVersion adds value to the "output_version" field.
func (_u *IterationRecordUpdateOne) AddOutputVersion(v int) *IterationRecordUpdateOne {
	_u.mutation.AddOutputVersion(v)
	return _u
}

// SetHighCount sets the "high_count" field.
func (_u *IterationRecordUpdateOne) SetHighCount(v int) *IterationRecordUpdateOne {
	_u.mutation.ResetHighCount()
	_u.mutation.SetHighCount(v)
	return _u
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableHighCount(v *int) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetHighCount(*v)
	}
	return _u
}

// AddHighCount adds value to the "high_count" field.
func (_u *IterationRecordUpdateOne) AddHighCount(v int) *IterationRecordUpdateOne {
	_u.mutation.AddHighCount(v)
	return _u
}

// SetMediumCount sets the "medium_count" field.
func (_u *IterationRecordUpdateOne) SetMediumCount(v int) *IterationRecordUpdateOne {
	_u.mutation.ResetMediumCount()
	_u.mutation.SetMediumCount(v)
	return _u
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableMediumCount(v *int) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetMediumCount(*v)
	}
	return _u
}

// AddMediumCount adds value to the "medium_count" field.
func (_u *IterationRecordUpdateOne) AddMediumCount(v int) *IterationRecordUpdateOne {
	_u.mutation.AddMediumCount(v)
	return _u
}

// SetLowCount sets the "low_count" field.
func (_u *IterationRecordUpdateOne) SetLowCount(v int) *IterationRecordUpdateOne {
	_u.mutation.ResetLowCount()
	_u.mutation.SetLowCount(v)
	return _u
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableLowCount(v *int) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetLowCount(*v)
	}
	return _u
}

// AddLowCount adds value to the "low_count" field.
func (_u *IterationRecordUpdateOne) AddLowCount(v int) *IterationRecordUpdateOne {
	_u.mutation.AddLowCount(v)
	return _u
}

// SetDelta sets the "delta" field.
func (_u *IterationRecordUpdateOne) SetDelta(v float64) *IterationRecordUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableDelta(v *float64) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *IterationRecordUpdateOne) AddDelta(v float64) *IterationRecordUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetShouldStop sets the "should_stop" field.
func (_u *IterationRecordUpdateOne) SetShouldStop(v bool) *IterationRecordUpdateOne {
	_u.mutation.SetShouldStop(v)
	return _u
}

// SetNillableShouldStop sets the "should_stop" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableShouldStop(v *bool) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetShouldStop(*v)
	}
	return _u
}

// SetDecisionReason sets the "decision_reason" field.
func (_u *IterationRecordUpdateOne) SetDecisionReason(v string) *IterationRecordUpdateOne {
	_u.mutation.SetDecisionReason(v)
	return _u
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableDecisionReason(v *string) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetDecisionReason(*v)
	}
	return _u
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (_u *IterationRecordUpdateOne) ClearDecisionReason() *IterationRecordUpdateOne {
	_u.mutation.ClearDecisionReason()
	return _u
}

// SetStoppedBy sets the "stopped_by" field.
func (_u *IterationRecordUpdateOne) SetStoppedBy(v string) *IterationRecordUpdateOne {
	_u.mutation.SetStoppedBy(v)
	return _u
}

// SetNillableStoppedBy sets the "stopped_by" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableStoppedBy(v *string) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetStoppedBy(*v)
	}
	return _u
}

// ClearStoppedBy clears the value of the "stopped_by" field.
func (_u *IterationRecordUpdateOne) ClearStoppedBy() *IterationRecordUpdateOne {
	_u.mutation.ClearStoppedBy()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *IterationRecordUpdateOne) SetEndedAt(v time.Time) *IterationRecordUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *IterationRecordUpdateOne) SetNillableEndedAt(v *time.Time) *IterationRecordUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// Mutation returns the IterationRecordMutation object of the builder.
func (_u *IterationRecordUpdateOne) Mutation() *IterationRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the IterationRecordUpdate builder.
func (_u *IterationRecordUpdateOne) Where(ps ...predicate.IterationRecord) *IterationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IterationRecordUpdateOne) Select(field string, fields ...string) *IterationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IterationRecord entity.
func (_u *IterationRecordUpdateOne) Save(ctx context.Context) (*IterationRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IterationRecordUpdateOne) SaveX(ctx context.Context) *IterationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IterationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IterationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IterationRecordUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IterationRecord.session"`)
	}
	return nil
}

func (_u *IterationRecordUpdateOne) sqlSave(ctx context.Context) (_node *IterationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(iterationrecord.Table, iterationrecord.Columns, sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IterationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, iterationrecord.FieldID)
		for _, f := range fields {
			if !iterationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != iterationrecord.FieldID {
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
	if value, ok := _u.mutation.OutputVersion(); ok {
		_spec.SetField(iterationrecord.FieldOutputVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputVersion(); ok {
		_spec.AddField(iterationrecord.FieldOutputVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighCount(); ok {
		_spec.SetField(iterationrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighCount(); ok {
		_spec.AddField(iterationrecord.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumCount(); ok {
		_spec.SetField(iterationrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumCount(); ok {
		_spec.AddField(iterationrecord.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowCount(); ok {
		_spec.SetField(iterationrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowCount(); ok {
		_spec.AddField(iterationrecord.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(iterationrecord.FieldDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(iterationrecord.FieldDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ShouldStop(); ok {
		_spec.SetField(iterationrecord.FieldShouldStop, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DecisionReason(); ok {
		_spec.SetField(iterationrecord.FieldDecisionReason, field.TypeString, value)
	}
	if _u.mutation.DecisionReasonCleared() {
		_spec.ClearField(iterationrecord.FieldDecisionReason, field.TypeString)
	}
	if value, ok := _u.mutation.StoppedBy(); ok {
		_spec.SetField(iterationrecord.FieldStoppedBy, field.TypeString, value)
	}
	if _u.mutation.StoppedByCleared() {
		_spec.ClearField(iterationrecord.FieldStoppedBy, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(iterationrecord.FieldEndedAt, field.TypeTime, value)
	}
	_node = &IterationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{iterationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
