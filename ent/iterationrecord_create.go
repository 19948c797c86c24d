// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
)

// IterationRecordCreate is the builder for creating a IterationRecord entity.
type IterationRecordCreate struct {
	config
	mutation *IterationRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *IterationRecordCreate) SetSessionID(v string) *IterationRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *IterationRecordCreate) SetIteration(v int) *IterationRecordCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetInputVersion sets the "input_version" field.
func (_c *IterationRecordCreate) SetInputVersion(v int) *IterationRecordCreate {
	_c.mutation.SetInputVersion(v)
	return _c
}

// SetOutputVersion sets the "output_version" field.
func (_c *IterationRecordCreate) SetOutputVersion(v int) *IterationRecordCreate {
	_c.mutation.SetOutputVersion(v)
	return _c
}

// SetNillableOutputVersion sets the "output_version" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableOutputVersion(v *int) *IterationRecordCreate {
	if v != nil {
		_c.SetOutputVersion(*v)
	}
	return _c
}

// SetHighCount sets the "high_count" field.
func (_c *IterationRecordCreate) SetHighCount(v int) *IterationRecordCreate {
	_c.mutation.SetHighCount(v)
	return _c
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableHighCount(v *int) *IterationRecordCreate {
	if v != nil {
		_c.SetHighCount(*v)
	}
	return _c
}

// SetMediumCount sets the "medium_count" field.
func (_c *IterationRecordCreate) SetMediumCount(v int) *IterationRecordCreate {
	_c.mutation.SetMediumCount(v)
	return _c
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableMediumCount(v *int) *IterationRecordCreate {
	if v != nil {
		_c.SetMediumCount(*v)
	}
	return _c
}

// SetLowCount sets the "low_count" field.
func (_c *IterationRecordCreate) SetLowCount(v int) *IterationRecordCreate {
	_c.mutation.SetLowCount(v)
	return _c
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableLowCount(v *int) *IterationRecordCreate {
	if v != nil {
		_c.SetLowCount(*v)
	}
	return _c
}

// SetDelta sets the "delta" field.
func (_c *IterationRecordCreate) SetDelta(v float64) *IterationRecordCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableDelta(v *float64) *IterationRecordCreate {
	if v != nil {
		_c.SetDelta(*v)
	}
	return _c
}

// SetShouldStop sets the "should_stop" field.
func (_c *IterationRecordCreate) SetShouldStop(v bool) *IterationRecordCreate {
	_c.mutation.SetShouldStop(v)
	return _c
}

// SetNillableShouldStop sets the "should_stop" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableShouldStop(v *bool) *IterationRecordCreate {
	if v != nil {
		_c.SetShouldStop(*v)
	}
	return _c
}

// SetDecisionReason sets the "decision_reason" field.
func (_c *IterationRecordCreate) SetDecisionReason(v string) *IterationRecordCreate {
	_c.mutation.SetDecisionReason(v)
	return _c
}

// SetNillableDecisionReason sets the "decision_reason" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableDecisionReason(v *string) *IterationRecordCreate {
	if v != nil {
		_c.SetDecisionReason(*v)
	}
	return _c
}

// SetStoppedBy sets the "stopped_by" field.
func (_c *IterationRecordCreate) SetStoppedBy(v string) *IterationRecordCreate {
	_c.mutation.SetStoppedBy(v)
	return _c
}

// SetNillableStoppedBy sets the "stopped_by" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableStoppedBy(v *string) *IterationRecordCreate {
	if v != nil {
		_c.SetStoppedBy(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IterationRecordCreate) SetStartedAt(v time.Time) *IterationRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *IterationRecordCreate) SetEndedAt(v time.Time) *IterationRecordCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *IterationRecordCreate) SetNillableEndedAt(v *time.Time) *IterationRecordCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IterationRecordCreate) SetID(v string) *IterationRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the RefinementSession entity.
func (_c *IterationRecordCreate) SetSession(v *RefinementSession) *IterationRecordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the IterationRecordMutation object of the builder.
func (_c *IterationRecordCreate) Mutation() *IterationRecordMutation {
	return _c.mutation
}

// Save creates the IterationRecord in the database.
func (_c *IterationRecordCreate) Save(ctx context.Context) (*IterationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IterationRecordCreate) SaveX(ctx context.Context) *IterationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IterationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IterationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IterationRecordCreate) defaults() {
	if _, ok := _c.mutation.OutputVersion(); !ok {
		v := iterationrecord.DefaultOutputVersion
		_c.mutation.SetOutputVersion(v)
	}
	if _, ok := _c.mutation.HighCount(); !ok {
		v := iterationrecord.DefaultHighCount
		_c.mutation.SetHighCount(v)
	}
	if _, ok := _c.mutation.MediumCount(); !ok {
		v := iterationrecord.DefaultMediumCount
		_c.mutation.SetMediumCount(v)
	}
	if _, ok := _c.mutation.LowCount(); !ok {
		v := iterationrecord.DefaultLowCount
		_c.mutation.SetLowCount(v)
	}
	if _, ok := _c.mutation.Delta(); !ok {
		v := iterationrecord.DefaultDelta
		_c.mutation.SetDelta(v)
	}
	if _, ok := _c.mutation.ShouldStop(); !ok {
		v := iterationrecord.DefaultShouldStop
		_c.mutation.SetShouldStop(v)
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		v := iterationrecord.DefaultEndedAt()
		_c.mutation.SetEndedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IterationRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "IterationRecord.session_id"`)}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "IterationRecord.iteration"`)}
	}
	if _, ok := _c.mutation.InputVersion(); !ok {
		return &ValidationError{Name: "input_version", err: errors.New(`ent: missing required field "IterationRecord.input_version"`)}
	}
	if _, ok := _c.mutation.OutputVersion(); !ok {
		return &ValidationError{Name: "output_version", err: errors.New(`ent: missing required field "IterationRecord.output_version"`)}
	}
	if _, ok := _c.mutation.HighCount(); !ok {
		return &ValidationError{Name: "high_count", err: errors.New(`ent: missing required field "IterationRecord.high_count"`)}
	}
	if _, ok := _c.mutation.MediumCount(); !ok {
		return &ValidationError{Name: "medium_count", err: errors.New(`ent: missing required field "IterationRecord.medium_count"`)}
	}
	if _, ok := _c.mutation.LowCount(); !ok {
		return &ValidationError{Name: "low_count", err: errors.New(`ent: missing required field "IterationRecord.low_count"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "IterationRecord.delta"`)}
	}
	if _, ok := _c.mutation.ShouldStop(); !ok {
		return &ValidationError{Name: "should_stop", err: errors.New(`ent: missing required field "IterationRecord.should_stop"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "IterationRecord.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "IterationRecord.ended_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "IterationRecord.session"`)}
	}
	return nil
}

func (_c *IterationRecordCreate) sqlSave(ctx context.Context) (*IterationRecord, error) {
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
			return nil, fmt.Errorf("unexpected IterationRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IterationRecordCreate) createSpec() (*IterationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &IterationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(iterationrecord.Table, sqlgraph.NewFieldSpec(iterationrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(iterationrecord.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.InputVersion(); ok {
		_spec.SetField(iterationrecord.FieldInputVersion, field.TypeInt, value)
		_node.InputVersion = value
	}
	if value, ok := _c.mutation.OutputVersion(); ok {
		_spec.SetField(iterationrecord.FieldOutputVersion, field.TypeInt, value)
		_node.OutputVersion = value
	}
	if value, ok := _c.mutation.HighCount(); ok {
		_spec.SetField(iterationrecord.FieldHighCount, field.TypeInt, value)
		_node.HighCount = value
	}
	if value, ok := _c.mutation.MediumCount(); ok {
		_spec.SetField(iterationrecord.FieldMediumCount, field.TypeInt, value)
		_node.MediumCount = value
	}
	if value, ok := _c.mutation.LowCount(); ok {
		_spec.SetField(iterationrecord.FieldLowCount, field.TypeInt, value)
		_node.LowCount = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(iterationrecord.FieldDelta, field.TypeFloat64, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.ShouldStop(); ok {
		_spec.SetField(iterationrecord.FieldShouldStop, field.TypeBool, value)
		_node.ShouldStop = value
	}
	if value, ok := _c.mutation.DecisionReason(); ok {
		_spec.SetField(iterationrecord.FieldDecisionReason, field.TypeString, value)
		_node.DecisionReason = value
	}
	if value, ok := _c.mutation.StoppedBy(); ok {
		_spec.SetField(iterationrecord.FieldStoppedBy, field.TypeString, value)
		_node.StoppedBy = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(iterationrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(iterationrecord.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   iterationrecord.SessionTable,
			Columns: []string{iterationrecord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(refinementsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IterationRecordCreateBulk is the builder for creating many IterationRecord entities in bulk.
type IterationRecordCreateBulk struct {
	config
	err      error
	builders []*IterationRecordCreate
}

// Save creates the IterationRecord entities in the database.
func (_c *IterationRecordCreateBulk) Save(ctx context.Context) ([]*IterationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IterationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IterationRecordMutation)
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
func (_c *IterationRecordCreateBulk) SaveX(ctx context.Context) []*IterationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IterationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IterationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
