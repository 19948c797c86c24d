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
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
)

// DocumentVersionCreate is the builder for creating a DocumentVersion entity.
type DocumentVersionCreate struct {
	config
	mutation *DocumentVersionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DocumentVersionCreate) SetSessionID(v string) *DocumentVersionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *DocumentVersionCreate) SetVersion(v int) *DocumentVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentVersionCreate) SetTitle(v string) *DocumentVersionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *DocumentVersionCreate) SetDocumentType(v string) *DocumentVersionCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DocumentVersionCreate) SetContent(v string) *DocumentVersionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetProducedFromVersion sets the "produced_from_version" field.
func (_c *DocumentVersionCreate) SetProducedFromVersion(v int) *DocumentVersionCreate {
	_c.mutation.SetProducedFromVersion(v)
	return _c
}

// SetLengthChars sets the "length_chars" field.
func (_c *DocumentVersionCreate) SetLengthChars(v int) *DocumentVersionCreate {
	_c.mutation.SetLengthChars(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentVersionCreate) SetCreatedAt(v time.Time) *DocumentVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentVersionCreate) SetNillableCreatedAt(v *time.Time) *DocumentVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentVersionCreate) SetID(v string) *DocumentVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the RefinementSession entity.
func (_c *DocumentVersionCreate) SetSession(v *RefinementSession) *DocumentVersionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the DocumentVersionMutation object of the builder.
func (_c *DocumentVersionCreate) Mutation() *DocumentVersionMutation {
	return _c.mutation
}

// Save creates the DocumentVersion in the database.
func (_c *DocumentVersionCreate) Save(ctx context.Context) (*DocumentVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentVersionCreate) SaveX(ctx context.Context) *DocumentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentVersionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DocumentVersion.session_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "DocumentVersion.version"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "DocumentVersion.title"`)}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "DocumentVersion.document_type"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DocumentVersion.content"`)}
	}
	if _, ok := _c.mutation.ProducedFromVersion(); !ok {
		return &ValidationError{Name: "produced_from_version", err: errors.New(`ent: missing required field "DocumentVersion.produced_from_version"`)}
	}
	if _, ok := _c.mutation.LengthChars(); !ok {
		return &ValidationError{Name: "length_chars", err: errors.New(`ent: missing required field "DocumentVersion.length_chars"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentVersion.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "DocumentVersion.session"`)}
	}
	return nil
}

func (_c *DocumentVersionCreate) sqlSave(ctx context.Context) (*DocumentVersion, error) {
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
			return nil, fmt.Errorf("unexpected DocumentVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentVersionCreate) createSpec() (*DocumentVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentversion.Table, sqlgraph.NewFieldSpec(documentversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(documentversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(documentversion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(documentversion.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(documentversion.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ProducedFromVersion(); ok {
		_spec.SetField(documentversion.FieldProducedFromVersion, field.TypeInt, value)
		_node.ProducedFromVersion = value
	}
	if value, ok := _c.mutation.LengthChars(); ok {
		_spec.SetField(documentversion.FieldLengthChars, field.TypeInt, value)
		_node.LengthChars = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentversion.SessionTable,
			Columns: []string{documentversion.SessionColumn},
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

// DocumentVersionCreateBulk is the builder for creating many DocumentVersion entities in bulk.
type DocumentVersionCreateBulk struct {
	config
	err      error
	builders []*DocumentVersionCreate
}

// Save creates the DocumentVersion entities in the database.
func (_c *DocumentVersionCreateBulk) Save(ctx context.Context) ([]*DocumentVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentVersionMutation)
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
func (_c *DocumentVersionCreateBulk) SaveX(ctx context.Context) []*DocumentVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
