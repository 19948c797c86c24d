// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
	"github.com/roundtable-ai/roundtable/ent/review"
)

// ReviewCreate is the builder for creating a Review entity.
type ReviewCreate struct {
	config
	mutation *ReviewMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ReviewCreate) SetSessionID(v string) *ReviewCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *ReviewCreate) SetIteration(v int) *ReviewCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetDocumentVersion sets the "document_version" field.
func (_c *ReviewCreate) SetDocumentVersion(v int) *ReviewCreate {
	_c.mutation.SetDocumentVersion(v)
	return _c
}

// SetReviewerName sets the "reviewer_name" field.
func (_c *ReviewCreate) SetReviewerName(v string) *ReviewCreate {
	_c.mutation.SetReviewerName(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ReviewCreate) SetModel(v string) *ReviewCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableModel(v *string) *ReviewCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetIssues sets the "issues" field.
func (_c *ReviewCreate) SetIssues(v []map[string]interface{}) *ReviewCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetOverallAssessment sets the "overall_assessment" field.
func (_c *ReviewCreate) SetOverallAssessment(v string) *ReviewCreate {
	_c.mutation.SetOverallAssessment(v)
	return _c
}

// SetNillableOverallAssessment sets the "overall_assessment" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableOverallAssessment(v *string) *ReviewCreate {
	if v != nil {
		_c.SetOverallAssessment(*v)
	}
	return _c
}

// SetHighCount sets the "high_count" field.
func (_c *ReviewCreate) SetHighCount(v int) *ReviewCreate {
	_c.mutation.SetHighCount(v)
	return _c
}

// SetNillableHighCount sets the "high_count" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableHighCount(v *int) *ReviewCreate {
	if v != nil {
		_c.SetHighCount(*v)
	}
	return _c
}

// SetMediumCount sets the "medium_count" field.
func (_c *ReviewCreate) SetMediumCount(v int) *ReviewCreate {
	_c.mutation.SetMediumCount(v)
	return _c
}

// SetNillableMediumCount sets the "medium_count" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableMediumCount(v *int) *ReviewCreate {
	if v != nil {
		_c.SetMediumCount(*v)
	}
	return _c
}

// SetLowCount sets the "low_count" field.
func (_c *ReviewCreate) SetLowCount(v int) *ReviewCreate {
	_c.mutation.SetLowCount(v)
	return _c
}

// SetNillableLowCount sets the "low_count" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableLowCount(v *int) *ReviewCreate {
	if v != nil {
		_c.SetLowCount(*v)
	}
	return _c
}

// SetSalvaged sets the "salvaged" field.
func (_c *ReviewCreate) SetSalvaged(v bool) *ReviewCreate {
	_c.mutation.SetSalvaged(v)
	return _c
}

// SetNillableSalvaged sets the "salvaged" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableSalvaged(v *bool) *ReviewCreate {
	if v != nil {
		_c.SetSalvaged(*v)
	}
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *ReviewCreate) SetTokens(v map[string]interface{}) *ReviewCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewCreate) SetCreatedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableCreatedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewCreate) SetID(v string) *ReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the RefinementSession entity.
func (_c *ReviewCreate) SetSession(v *RefinementSession) *ReviewCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ReviewMutation object of the builder.
func (_c *ReviewCreate) Mutation() *ReviewMutation {
	return _c.mutation
}

// Save creates the Review in the database.
func (_c *ReviewCreate) Save(ctx context.Context) (*Review, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewCreate) SaveX(ctx context.Context) *Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewCreate) defaults() {
	if _, ok := _c.mutation.HighCount(); !ok {
		v := review.DefaultHighCount
		_c.mutation.SetHighCount(v)
	}
	if _, ok := _c.mutation.MediumCount(); !ok {
		v := review.DefaultMediumCount
		_c.mutation.SetMediumCount(v)
	}
	if _, ok := _c.mutation.LowCount(); !ok {
		v := review.DefaultLowCount
		_c.mutation.SetLowCount(v)
	}
	if _, ok := _c.mutation.Salvaged(); !ok {
		v := review.DefaultSalvaged
		_c.mutation.SetSalvaged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := review.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Review.session_id"`)}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "Review.iteration"`)}
	}
	if _, ok := _c.mutation.DocumentVersion(); !ok {
		return &ValidationError{Name: "document_version", err: errors.New(`ent: missing required field "Review.document_version"`)}
	}
	if _, ok := _c.mutation.ReviewerName(); !ok {
		return &ValidationError{Name: "reviewer_name", err: errors.New(`ent: missing required field "Review.reviewer_name"`)}
	}
	if _, ok := _c.mutation.Issues(); !ok {
		return &ValidationError{Name: "issues", err: errors.New(`ent: missing required field "Review.issues"`)}
	}
	if _, ok := _c.mutation.HighCount(); !ok {
		return &ValidationError{Name: "high_count", err: errors.New(`ent: missing required field "Review.high_count"`)}
	}
	if _, ok := _c.mutation.MediumCount(); !ok {
		return &ValidationError{Name: "medium_count", err: errors.New(`ent: missing required field "Review.medium_count"`)}
	}
	if _, ok := _c.mutation.LowCount(); !ok {
		return &ValidationError{Name: "low_count", err: errors.New(`ent: missing required field "Review.low_count"`)}
	}
	if _, ok := _c.mutation.Salvaged(); !ok {
		return &ValidationError{Name: "salvaged", err: errors.New(`ent: missing required field "Review.salvaged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Review.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Review.session"`)}
	}
	return nil
}

func (_c *ReviewCreate) sqlSave(ctx context.Context) (*Review, error) {
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
			return nil, fmt.Errorf("unexpected Review.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewCreate) createSpec() (*Review, *sqlgraph.CreateSpec) {
	var (
		_node = &Review{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(review.Table, sqlgraph.NewFieldSpec(review.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(review.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.DocumentVersion(); ok {
		_spec.SetField(review.FieldDocumentVersion, field.TypeInt, value)
		_node.DocumentVersion = value
	}
	if value, ok := _c.mutation.ReviewerName(); ok {
		_spec.SetField(review.FieldReviewerName, field.TypeString, value)
		_node.ReviewerName = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(review.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(review.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.OverallAssessment(); ok {
		_spec.SetField(review.FieldOverallAssessment, field.TypeString, value)
		_node.OverallAssessment = value
	}
	if value, ok := _c.mutation.HighCount(); ok {
		_spec.SetField(review.FieldHighCount, field.TypeInt, value)
		_node.HighCount = value
	}
	if value, ok := _c.mutation.MediumCount(); ok {
		_spec.SetField(review.FieldMediumCount, field.TypeInt, value)
		_node.MediumCount = value
	}
	if value, ok := _c.mutation.LowCount(); ok {
		_spec.SetField(review.FieldLowCount, field.TypeInt, value)
		_node.LowCount = value
	}
	if value, ok := _c.mutation.Salvaged(); ok {
		_spec.SetField(review.FieldSalvaged, field.TypeBool, value)
		_node.Salvaged = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(review.FieldTokens, field.TypeJSON, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(review.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.SessionTable,
			Columns: []string{review.SessionColumn},
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

// ReviewCreateBulk is the builder for creating many Review entities in bulk.
type ReviewCreateBulk struct {
	config
	err      error
	builders []*ReviewCreate
}

// Save creates the Review entities in the database.
func (_c *ReviewCreateBulk) Save(ctx context.Context) ([]*Review, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Review, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewMutation)
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
func (_c *ReviewCreateBulk) SaveX(ctx context.Context) []*Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
