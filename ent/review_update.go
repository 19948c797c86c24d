// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/roundtable-ai/roundtable/ent/review"
)

// ReviewUpdate is the builder for updating Review entities.
type ReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewMutation
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdate) Where(ps ...predicate.Review) *ReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIssues sets the "issues" field.
func (_u *ReviewUpdate) SetIssues(v []map[string]interface{}) *ReviewUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ReviewUpdate) AppendIssues(v []map[string]interface{}) *ReviewUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// SetOverallAssessment sets the "overall_assessment" field.
func (_u *ReviewUpdate) SetOverallAssessment(v string) *ReviewUpdate {
	_u.mutation.SetOverallAssessment(v)
	return _u
}

// SetNillableOverallAssessment sets the "overall_assessment" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableOverallAssessment(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetOverallAssessment(*v)
	}
	return _u
}

// ClearOverallAssessment clears the value of the "overall_assessment" field.
func (_u *ReviewUpdate) ClearOverallAssessment() *ReviewUpdate {
	_u.mutation.ClearOverallAssessment()
	return _u
}

// SetHighCount sets the "high_count" field.
func (_u *ReviewUpdate) SetHighCount(v int) *ReviewUpdate {
	_u.mutation.ResetHighCount()
	_u.mutation.SetHighCount(v)
	return _u
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableHighCount(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetHighCount(*v)
	}
	return _u
}

// AddHighCount adds value to the "high_count" field.
func (_u *ReviewUpdate) AddHighCount(v int) *ReviewUpdate {
	_u.mutation.AddHighCount(v)
	return _u
}

// SetMediumCount sets the "medium_count" field.
func (_u *ReviewUpdate) SetMediumCount(v int) *ReviewUpdate {
	_u.mutation.ResetMediumCount()
	_u.mutation.SetMediumCount(v)
	return _u
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableMediumCount(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetMediumCount(*v)
	}
	return _u
}

// AddMediumCount adds value to the "medium_count" field.
func (_u *ReviewUpdate) AddMediumCount(v int) *ReviewUpdate {
	_u.mutation.AddMediumCount(v)
	return _u
}

// SetLowCount sets the "low_count" field.
func (_u *ReviewUpdate) SetLowCount(v int) *ReviewUpdate {
	_u.mutation.ResetLowCount()
	_u.mutation.SetLowCount(v)
	return _u
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableLowCount(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetLowCount(*v)
	}
	return _u
}

// AddLowCount adds value to the "low_count" field.
func (_u *ReviewUpdate) AddLowCount(v int) *ReviewUpdate {
	_u.mutation.AddLowCount(v)
	return _u
}

// SetSalvaged sets the "salvaged" field.
func (_u *ReviewUpdate) SetSalvaged(v bool) *ReviewUpdate {
	_u.mutation.SetSalvaged(v)
	return _u
}

// SetNillableSalvaged sets the "salvaged" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableSalvaged(v *bool) *ReviewUpdate {
	if v != nil {
		_u.SetSalvaged(*v)
	}
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *ReviewUpdate) SetTokens(v map[string]interface{}) *ReviewUpdate {
	_u.mutation.SetTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *ReviewUpdate) ClearTokens() *ReviewUpdate {
	_u.mutation.ClearTokens()
	return _u
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdate) Mutation() *ReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.session"`)
	}
	return nil
}

func (_u *ReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(review.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(review.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, review.FieldIssues, value)
		})
	}
	if value, ok := _u.mutation.OverallAssessment(); ok {
		_spec.SetField(review.FieldOverallAssessment, field.TypeString, value)
	}
	if _u.mutation.OverallAssessmentCleared() {
		_spec.ClearField(review.FieldOverallAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.HighCount(); ok {
		_spec.SetField(review.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighCount(); ok {
		_spec.AddField(review.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumCount(); ok {
		_spec.SetField(review.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumCount(); ok {
		_spec.AddField(review.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowCount(); ok {
		_spec.SetField(review.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowCount(); ok {
		_spec.AddField(review.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Salvaged(); ok {
		_spec.SetField(review.FieldSalvaged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(review.FieldTokens, field.TypeJSON, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(review.FieldTokens, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewUpdateOne is the builder for updating a single Review entity.
type ReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewMutation
}

// SetIssues sets the "issues" field.
func (_u *ReviewUpdateOne) SetIssues(v []map[string]interface{}) *ReviewUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *ReviewUpdateOne) AppendIssues(v []map[string]interface{}) *ReviewUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// SetOverallAssessment sets the "overall_assessment" field.
func (_u *ReviewUpdateOne) SetOverallAssessment(v string) *ReviewUpdateOne {
	_u.mutation.SetOverallAssessment(v)
	return _u
}

// SetNillableOverallAssessment sets the "overall_assessment" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableOverallAssessment(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetOverallAssessment(*v)
	}
	return _u
}

// ClearOverallAssessment clears the value of the "overall_assessment" field.
func (_u *ReviewUpdateOne) ClearOverallAssessment() *ReviewUpdateOne {
	_u.mutation.ClearOverallAssessment()
	return _u
}

// SetHighCount sets the "high_count" field.
func (_u *ReviewUpdateOne) SetHighCount(v int) *ReviewUpdateOne {
	_u.mutation.ResetHighCount()
	_u.mutation.SetHighCount(v)
	return _u
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableHighCount(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetHighCount(*v)
	}
	return _u
}

// AddHighCount adds value to the "high_count" field.
func (_u *ReviewUpdateOne) AddHighCount(v int) *ReviewUpdateOne {
	_u.mutation.AddHighCount(v)
	return _u
}

// SetMediumCount sets the "medium_count" field.
func (_u *ReviewUpdateOne) SetMediumCount(v int) *ReviewUpdateOne {
	_u.mutation.ResetMediumCount()
	_u.mutation.SetMediumCount(v)
	return _u
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableMediumCount(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetMediumCount(*v)
	}
	return _u
}

// AddMediumCount adds value to the "medium_count" field.
func (_u *ReviewUpdateOne) AddMediumCount(v int) *ReviewUpdateOne {
	_u.mutation.AddMediumCount(v)
	return _u
}

// SetLowCount sets the "low_count" field.
func (_u *ReviewUpdateOne) SetLowCount(v int) *ReviewUpdateOne {
	_u.mutation.ResetLowCount()
	_u.mutation.SetLowCount(v)
	return _u
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableLowCount(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetLowCount(*v)
	}
	return _u
}

// AddLowCount adds value to the "low_count" field.
func (_u *ReviewUpdateOne) AddLowCount(v int) *ReviewUpdateOne {
	_u.mutation.AddLowCount(v)
	return _u
}

// SetSalvaged sets the "salvaged" field.
func (_u *ReviewUpdateOne) SetSalvaged(v bool) *ReviewUpdateOne {
	_u.mutation.SetSalvaged(v)
	return _u
}

// SetNillableSalvaged sets the "salvaged" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableSalvaged(v *bool) *ReviewUpdateOne {
	if v != nil {
		_u.SetSalvaged(*v)
	}
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *ReviewUpdateOne) SetTokens(v map[string]interface{}) *ReviewUpdateOne {
	_u.mutation.SetTokens(v)
	return _u
}

// ClearTokens clears the value of the "tokens" field.
func (_u *ReviewUpdateOne) ClearTokens() *ReviewUpdateOne {
	_u.mutation.ClearTokens()
	return _u
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdateOne) Mutation() *ReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdateOne) Where(ps ...predicate.Review) *ReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewUpdateOne) Select(field string, fields ...string) *ReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Review entity.
func (_u *ReviewUpdateOne) Save(ctx context.Context) (*Review, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdateOne) SaveX(ctx context.Context) *Review {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.session"`)
	}
	return nil
}

func (_u *ReviewUpdateOne) sqlSave(ctx context.Context) (_node *Review, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Review.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, review.FieldID)
		for _, f := range fields {
			if !review.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != review.FieldID {
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
	if _u.mutation.ModelCleared() {
		_spec.ClearField(review.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(review.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, review.FieldIssues, value)
		})
	}
	if value, ok := _u.mutation.OverallAssessment(); ok {
		_spec.SetField(review.FieldOverallAssessment, field.TypeString, value)
	}
	if _u.mutation.OverallAssessmentCleared() {
		_spec.ClearField(review.FieldOverallAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.HighCount(); ok {
		_spec.SetField(review.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighCount(); ok {
		_spec.AddField(review.FieldHighCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediumCount(); ok {
		_spec.SetField(review.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMediumCount(); ok {
		_spec.AddField(review.FieldMediumCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LowCount(); ok {
		_spec.SetField(review.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowCount(); ok {
		_spec.AddField(review.FieldLowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Salvaged(); ok {
		_spec.SetField(review.FieldSalvaged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(review.FieldTokens, field.TypeJSON, value)
	}
	if _u.mutation.TokensCleared() {
		_spec.ClearField(review.FieldTokens, field.TypeJSON)
	}
	_node = &Review{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
