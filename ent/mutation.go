// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/roundtable-ai/roundtable/ent/documentversion"
	"github.com/roundtable-ai/roundtable/ent/event"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
	"github.com/roundtable-ai/roundtable/ent/review"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocumentVersion   = "DocumentVersion"
	TypeEvent             = "Event"
	TypeIterationRecord   = "IterationRecord"
	TypeRefinementSession = "RefinementSession"
	TypeReview            = "Review"
)

// DocumentVersionMutation represents an operation that mutates the DocumentVersion nodes in the graph.
type DocumentVersionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	version                  *int
	addversion               *int
	title                    *string
	document_type            *string
	content                  *string
	produced_from_version    *int
	addproduced_from_version *int
	length_chars             *int
	addlength_chars          *int
	created_at               *time.Time
	clearedFields            map[string]struct{}
	session                  *string
	clearedsession           bool
	done                     bool
	oldValue                 func(context.Context) (*DocumentVersion, error)
	predicates               []predicate.DocumentVersion
}

var _ ent.Mutation = (*DocumentVersionMutation)(nil)

// documentversionOption allows management of the mutation configuration using functional options.
type documentversionOption func(*DocumentVersionMutation)

// newDocumentVersionMutation creates new mutation for the DocumentVersion entity.
func newDocumentVersionMutation(c config, op Op, opts ...documentversionOption) *DocumentVersionMutation {
	m := &DocumentVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentVersionID sets the ID field of the mutation.
func withDocumentVersionID(id string) documentversionOption {
	return func(m *DocumentVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentVersion
		)
		m.oldValue = func(ctx context.Context) (*DocumentVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentVersion sets the old DocumentVersion of the mutation.
func withDocumentVersion(node *DocumentVersion) documentversionOption {
	return func(m *DocumentVersionMutation) {
		m.oldValue = func(context.Context) (*DocumentVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentVersion entities.
func (m *DocumentVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DocumentVersionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DocumentVersionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DocumentVersionMutation) ResetSessionID() {
	m.session = nil
}

// SetVersion sets the "version" field.
func (m *DocumentVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *DocumentVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *DocumentVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *DocumentVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *DocumentVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetTitle sets the "title" field.
func (m *DocumentVersionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentVersionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentVersionMutation) ResetTitle() {
	m.title = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentVersionMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentVersionMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentVersionMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetContent sets the "content" field.
func (m *DocumentVersionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentVersionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentVersionMutation) ResetContent() {
	m.content = nil
}

// SetProducedFromVersion sets the "produced_from_version" field.
func (m *DocumentVersionMutation) SetProducedFromVersion(i int) {
	m.produced_from_version = &i
	m.addproduced_from_version = nil
}

// ProducedFromVersion returns the value of the "produced_from_version" field in the mutation.
func (m *DocumentVersionMutation) ProducedFromVersion() (r int, exists bool) {
	v := m.produced_from_version
	if v == nil {
		return
	}
	return *v, true
}

// OldProducedFromVersion returns the old "produced_from_version" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldProducedFromVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducedFromVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducedFromVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducedFromVersion: %w", err)
	}
	return oldValue.ProducedFromVersion, nil
}

// AddProducedFromVersion adds i to the "produced_from_version" field.
func (m *DocumentVersionMutation) AddProducedFromVersion(i int) {
	if m.addproduced_from_version != nil {
		*m.addproduced_from_version += i
	} else {
		m.addproduced_from_version = &i
	}
}

// AddedProducedFromVersion returns the value that was added to the "produced_from_version" field in this mutation.
func (m *DocumentVersionMutation) AddedProducedFromVersion() (r int, exists bool) {
	v := m.addproduced_from_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetProducedFromVersion resets all changes to the "produced_from_version" field.
func (m *DocumentVersionMutation) ResetProducedFromVersion() {
	m.produced_from_version = nil
	m.addproduced_from_version = nil
}

// SetLengthChars sets the "length_chars" field.
func (m *DocumentVersionMutation) SetLengthChars(i int) {
	m.length_chars = &i
	m.addlength_chars = nil
}

// LengthChars returns the value of the "length_chars" field in the mutation.
func (m *DocumentVersionMutation) LengthChars() (r int, exists bool) {
	v := m.length_chars
	if v == nil {
		return
	}
	return *v, true
}

// OldLengthChars returns the old "length_chars" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldLengthChars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLengthChars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLengthChars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLengthChars: %w", err)
	}
	return oldValue.LengthChars, nil
}

// AddLengthChars adds i to the "length_chars" field.
func (m *DocumentVersionMutation) AddLengthChars(i int) {
	if m.addlength_chars != nil {
		*m.addlength_chars += i
	} else {
		m.addlength_chars = &i
	}
}

// AddedLengthChars returns the value that was added to the "length_chars" field in this mutation.
func (m *DocumentVersionMutation) AddedLengthChars() (r int, exists bool) {
	v := m.addlength_chars
	if v == nil {
		return
	}
	return *v, true
}

// ResetLengthChars resets all changes to the "length_chars" field.
func (m *DocumentVersionMutation) ResetLengthChars() {
	m.length_chars = nil
	m.addlength_chars = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentVersion entity.
// If the DocumentVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the RefinementSession entity.
func (m *DocumentVersionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[documentversion.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the RefinementSession entity was cleared.
func (m *DocumentVersionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *DocumentVersionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *DocumentVersionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the DocumentVersionMutation builder.
func (m *DocumentVersionMutation) Where(ps ...predicate.DocumentVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentVersion).
func (m *DocumentVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentVersionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, documentversion.FieldSessionID)
	}
	if m.version != nil {
		fields = append(fields, documentversion.FieldVersion)
	}
	if m.title != nil {
		fields = append(fields, documentversion.FieldTitle)
	}
	if m.document_type != nil {
		fields = append(fields, documentversion.FieldDocumentType)
	}
	if m.content != nil {
		fields = append(fields, documentversion.FieldContent)
	}
	if m.produced_from_version != nil {
		fields = append(fields, documentversion.FieldProducedFromVersion)
	}
	if m.length_chars != nil {
		fields = append(fields, documentversion.FieldLengthChars)
	}
	if m.created_at != nil {
		fields = append(fields, documentversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentversion.FieldSessionID:
		return m.SessionID()
	case documentversion.FieldVersion:
		return m.Version()
	case documentversion.FieldTitle:
		return m.Title()
	case documentversion.FieldDocumentType:
		return m.DocumentType()
	case documentversion.FieldContent:
		return m.Content()
	case documentversion.FieldProducedFromVersion:
		return m.ProducedFromVersion()
	case documentversion.FieldLengthChars:
		return m.LengthChars()
	case documentversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentversion.FieldSessionID:
		return m.OldSessionID(ctx)
	case documentversion.FieldVersion:
		return m.OldVersion(ctx)
	case documentversion.FieldTitle:
		return m.OldTitle(ctx)
	case documentversion.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case documentversion.FieldContent:
		return m.OldContent(ctx)
	case documentversion.FieldProducedFromVersion:
		return m.OldProducedFromVersion(ctx)
	case documentversion.FieldLengthChars:
		return m.OldLengthChars(ctx)
	case documentversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentversion.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case documentversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case documentversion.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case documentversion.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case documentversion.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case documentversion.FieldProducedFromVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducedFromVersion(v)
		return nil
	case documentversion.FieldLengthChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLengthChars(v)
		return nil
	case documentversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, documentversion.FieldVersion)
	}
	if m.addproduced_from_version != nil {
		fields = append(fields, documentversion.FieldProducedFromVersion)
	}
	if m.addlength_chars != nil {
		fields = append(fields, documentversion.FieldLengthChars)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentversion.FieldVersion:
		return m.AddedVersion()
	case documentversion.FieldProducedFromVersion:
		return m.AddedProducedFromVersion()
	case documentversion.FieldLengthChars:
		return m.AddedLengthChars()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case documentversion.FieldProducedFromVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProducedFromVersion(v)
		return nil
	case documentversion.FieldLengthChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLengthChars(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentVersionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentVersionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DocumentVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentVersionMutation) ResetField(name string) error {
	switch name {
	case documentversion.FieldSessionID:
		m.ResetSessionID()
		return nil
	case documentversion.FieldVersion:
		m.ResetVersion()
		return nil
	case documentversion.FieldTitle:
		m.ResetTitle()
		return nil
	case documentversion.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case documentversion.FieldContent:
		m.ResetContent()
		return nil
	case documentversion.FieldProducedFromVersion:
		m.ResetProducedFromVersion()
		return nil
	case documentversion.FieldLengthChars:
		m.ResetLengthChars()
		return nil
	case documentversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, documentversion.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentversion.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, documentversion.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case documentversion.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentVersionMutation) ClearEdge(name string) error {
	switch name {
	case documentversion.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentVersionMutation) ResetEdge(name string) error {
	switch name {
	case documentversion.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown DocumentVersion edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the RefinementSession entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the RefinementSession entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// IterationRecordMutation represents an operation that mutates the IterationRecord nodes in the graph.
type IterationRecordMutation struct {
	config
	op                Op
	typ               string
	id                *string
	iteration         *int
	additeration      *int
	input_version     *int
	addinput_version  *int
	output_version    *int
	addoutput_version *int
	high_count        *int
	addhigh_count     *int
	medium_count      *int
	addmedium_count   *int
	low_count         *int
	addlow_count      *int
	delta             *float64
	adddelta          *float64
	should_stop       *bool
	decision_reason   *string
	stopped_by        *string
	started_at        *time.Time
	ended_at          *time.Time
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*IterationRecord, error)
	predicates        []predicate.IterationRecord
}

var _ ent.Mutation = (*IterationRecordMutation)(nil)

// iterationrecordOption allows management of the mutation configuration using functional options.
type iterationrecordOption func(*IterationRecordMutation)

// newIterationRecordMutation creates new mutation for the IterationRecord entity.
func newIterationRecordMutation(c config, op Op, opts ...iterationrecordOption) *IterationRecordMutation {
	m := &IterationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeIterationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIterationRecordID sets the ID field of the mutation.
func withIterationRecordID(id string) iterationrecordOption {
	return func(m *IterationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *IterationRecord
		)
		m.oldValue = func(ctx context.Context) (*IterationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IterationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIterationRecord sets the old IterationRecord of the mutation.
func withIterationRecord(node *IterationRecord) iterationrecordOption {
	return func(m *IterationRecordMutation) {
		m.oldValue = func(context.Context) (*IterationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IterationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IterationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IterationRecord entities.
func (m *IterationRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IterationRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IterationRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IterationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *IterationRecordMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *IterationRecordMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *IterationRecordMutation) ResetSessionID() {
	m.session = nil
}

// SetIteration sets the "iteration" field.
func (m *IterationRecordMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *IterationRecordMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *IterationRecordMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *IterationRecordMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *IterationRecordMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetInputVersion sets the "input_version" field.
func (m *IterationRecordMutation) SetInputVersion(i int) {
	m.input_version = &i
	m.addinput_version = nil
}

// InputVersion returns the value of the "input_version" field in the mutation.
func (m *IterationRecordMutation) InputVersion() (r int, exists bool) {
	v := m.input_version
	if v == nil {
		return
	}
	return *v, true
}

// OldInputVersion returns the old "input_version" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldInputVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputVersion: %w", err)
	}
	return oldValue.InputVersion, nil
}

// AddInputVersion adds i to the "input_version" field.
func (m *IterationRecordMutation) AddInputVersion(i int) {
	if m.addinput_version != nil {
		*m.addinput_version += i
	} else {
		m.addinput_version = &i
	}
}

// AddedInputVersion returns the value that was added to the "input_version" field in this mutation.
func (m *IterationRecordMutation) AddedInputVersion() (r int, exists bool) {
	v := m.addinput_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputVersion resets all changes to the "input_version" field.
func (m *IterationRecordMutation) ResetInputVersion() {
	m.input_version = nil
	m.addinput_version = nil
}

// SetOutputVersion sets the "output_version" field.
func (m *IterationRecordMutation) SetOutputVersion(i int) {
	m.output_version = &i
	m.addoutput_version = nil
}

// OutputVersion returns the value of the "output_version" field in the mutation.
func (m *IterationRecordMutation) OutputVersion() (r int, exists bool) {
	v := m.output_version
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputVersion returns the old "output_version" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldOutputVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputVersion: %w", err)
	}
	return oldValue.OutputVersion, nil
}

// AddOutputVersion adds i to the "output_version" field.
func (m *IterationRecordMutation) AddOutputVersion(i int) {
	if m.addoutput_version != nil {
		*m.addoutput_version += i
	} else {
		m.addoutput_version = &i
	}
}

// AddedOutputVersion returns the value that was added to the "output_version" field in this mutation.
func (m *IterationRecordMutation) AddedOutputVersion() (r int, exists bool) {
	v := m.addoutput_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputVersion resets all changes to the "output_version" field.
func (m *IterationRecordMutation) ResetOutputVersion() {
	m.output_version = nil
	m.addoutput_version = nil
}

// SetHighCount sets the "high_count" field.
func (m *IterationRecordMutation) SetHighCount(i int) {
	m.high_count = &i
	m.addhigh_count = nil
}

// HighCount returns the value of the "high_count" field in the mutation.
func (m *IterationRecordMutation) HighCount() (r int, exists bool) {
	v := m.high_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHighCount returns the old "high_count" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldHighCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighCount: %w", err)
	}
	return oldValue.HighCount, nil
}

// AddHighCount adds i to the "high_count" field.
func (m *IterationRecordMutation) AddHighCount(i int) {
	if m.addhigh_count != nil {
		*m.addhigh_count += i
	} else {
		m.addhigh_count = &i
	}
}

// AddedHighCount returns the value that was added to the "high_count" field in this mutation.
func (m *IterationRecordMutation) AddedHighCount() (r int, exists bool) {
	v := m.addhigh_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHighCount resets all changes to the "high_count" field.
func (m *IterationRecordMutation) ResetHighCount() {
	m.high_count = nil
	m.addhigh_count = nil
}

// SetMediumCount sets the "medium_count" field.
func (m *IterationRecordMutation) SetMediumCount(i int) {
	m.medium_count = &i
	m.addmedium_count = nil
}

// MediumCount returns the value of the "medium_count" field in the mutation.
func (m *IterationRecordMutation) MediumCount() (r int, exists bool) {
	v := m.medium_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMediumCount returns the old "medium_count" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldMediumCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediumCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediumCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediumCount: %w", err)
	}
	return oldValue.MediumCount, nil
}

// AddMediumCount adds i to the "medium_count" field.
func (m *IterationRecordMutation) AddMediumCount(i int) {
	if m.addmedium_count != nil {
		*m.addmedium_count += i
	} else {
		m.addmedium_count = &i
	}
}

// AddedMediumCount returns the value that was added to the "medium_count" field in this mutation.
func (m *IterationRecordMutation) AddedMediumCount() (r int, exists bool) {
	v := m.addmedium_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMediumCount resets all changes to the "medium_count" field.
func (m *IterationRecordMutation) ResetMediumCount() {
	m.medium_count = nil
	m.addmedium_count = nil
}

// SetLowCount sets the "low_count" field.
func (m *IterationRecordMutation) SetLowCount(i int) {
	m.low_count = &i
	m.addlow_count = nil
}

// LowCount returns the value of the "low_count" field in the mutation.
func (m *IterationRecordMutation) LowCount() (r int, exists bool) {
	v := m.low_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLowCount returns the old "low_count" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldLowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowCount: %w", err)
	}
	return oldValue.LowCount, nil
}

// AddLowCount adds i to the "low_count" field.
func (m *IterationRecordMutation) AddLowCount(i int) {
	if m.addlow_count != nil {
		*m.addlow_count += i
	} else {
		m.addlow_count = &i
	}
}

// AddedLowCount returns the value that was added to the "low_count" field in this mutation.
func (m *IterationRecordMutation) AddedLowCount() (r int, exists bool) {
	v := m.addlow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowCount resets all changes to the "low_count" field.
func (m *IterationRecordMutation) ResetLowCount() {
	m.low_count = nil
	m.addlow_count = nil
}

// SetDelta sets the "delta" field.
func (m *IterationRecordMutation) SetDelta(f float64) {
	m.delta = &f
	m.adddelta = nil
}

// Delta returns the value of the "delta" field in the mutation.
func (m *IterationRecordMutation) Delta() (r float64, exists bool) {
	v := m.delta
	if v == nil {
		return
	}
	return *v, true
}

// OldDelta returns the old "delta" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelta: %w", err)
	}
	return oldValue.Delta, nil
}

// AddDelta adds f to the "delta" field.
func (m *IterationRecordMutation) AddDelta(f float64) {
	if m.adddelta != nil {
		*m.adddelta += f
	} else {
		m.adddelta = &f
	}
}

// AddedDelta returns the value that was added to the "delta" field in this mutation.
func (m *IterationRecordMutation) AddedDelta() (r float64, exists bool) {
	v := m.adddelta
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelta resets all changes to the "delta" field.
func (m *IterationRecordMutation) ResetDelta() {
	m.delta = nil
	m.adddelta = nil
}

// SetShouldStop sets the "should_stop" field.
func (m *IterationRecordMutation) SetShouldStop(b bool) {
	m.should_stop = &b
}

// ShouldStop returns the value of the "should_stop" field in the mutation.
func (m *IterationRecordMutation) ShouldStop() (r bool, exists bool) {
	v := m.should_stop
	if v == nil {
		return
	}
	return *v, true
}

// OldShouldStop returns the old "should_stop" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldShouldStop(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShouldStop is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShouldStop requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShouldStop: %w", err)
	}
	return oldValue.ShouldStop, nil
}

// ResetShouldStop resets all changes to the "should_stop" field.
func (m *IterationRecordMutation) ResetShouldStop() {
	m.should_stop = nil
}

// SetDecisionReason sets the "decision_reason" field.
func (m *IterationRecordMutation) SetDecisionReason(s string) {
	m.decision_reason = &s
}

// DecisionReason returns the value of the "decision_reason" field in the mutation.
func (m *IterationRecordMutation) DecisionReason() (r string, exists bool) {
	v := m.decision_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionReason returns the old "decision_reason" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldDecisionReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionReason: %w", err)
	}
	return oldValue.DecisionReason, nil
}

// ClearDecisionReason clears the value of the "decision_reason" field.
func (m *IterationRecordMutation) ClearDecisionReason() {
	m.decision_reason = nil
	m.clearedFields[iterationrecord.FieldDecisionReason] = struct{}{}
}

// DecisionReasonCleared returns if the "decision_reason" field was cleared in this mutation.
func (m *IterationRecordMutation) DecisionReasonCleared() bool {
	_, ok := m.clearedFields[iterationrecord.FieldDecisionReason]
	return ok
}

// ResetDecisionReason resets all changes to the "decision_reason" field.
func (m *IterationRecordMutation) ResetDecisionReason() {
	m.decision_reason = nil
	delete(m.clearedFields, iterationrecord.FieldDecisionReason)
}

// SetStoppedBy sets the "stopped_by" field.
func (m *IterationRecordMutation) SetStoppedBy(s string) {
	m.stopped_by = &s
}

// StoppedBy returns the value of the "stopped_by" field in the mutation.
func (m *IterationRecordMutation) StoppedBy() (r string, exists bool) {
	v := m.stopped_by
	if v == nil {
		return
	}
	return *v, true
}

// OldStoppedBy returns the old "stopped_by" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldStoppedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoppedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoppedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoppedBy: %w", err)
	}
	return oldValue.StoppedBy, nil
}

// ClearStoppedBy clears the value of the "stopped_by" field.
func (m *IterationRecordMutation) ClearStoppedBy() {
	m.stopped_by = nil
	m.clearedFields[iterationrecord.FieldStoppedBy] = struct{}{}
}

// StoppedByCleared returns if the "stopped_by" field was cleared in this mutation.
func (m *IterationRecordMutation) StoppedByCleared() bool {
	_, ok := m.clearedFields[iterationrecord.FieldStoppedBy]
	return ok
}

// ResetStoppedBy resets all changes to the "stopped_by" field.
func (m *IterationRecordMutation) ResetStoppedBy() {
	m.stopped_by = nil
	delete(m.clearedFields, iterationrecord.FieldStoppedBy)
}

// SetStartedAt sets the "started_at" field.
func (m *IterationRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IterationRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IterationRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *IterationRecordMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *IterationRecordMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the IterationRecord entity.
// If the IterationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IterationRecordMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *IterationRecordMutation) ResetEndedAt() {
	m.ended_at = nil
}

// ClearSession clears the "session" edge to the RefinementSession entity.
func (m *IterationRecordMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[iterationrecord.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the RefinementSession entity was cleared.
func (m *IterationRecordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *IterationRecordMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *IterationRecordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the IterationRecordMutation builder.
func (m *IterationRecordMutation) Where(ps ...predicate.IterationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IterationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IterationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IterationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IterationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IterationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IterationRecord).
func (m *IterationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IterationRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, iterationrecord.FieldSessionID)
	}
	if m.iteration != nil {
		fields = append(fields, iterationrecord.FieldIteration)
	}
	if m.input_version != nil {
		fields = append(fields, iterationrecord.FieldInputVersion)
	}
	if m.output_version != nil {
		fields = append(fields, iterationrecord.FieldOutputVersion)
	}
	if m.high_count != nil {
		fields = append(fields, iterationrecord.FieldHighCount)
	}
	if m.medium_count != nil {
		fields = append(fields, iterationrecord.FieldMediumCount)
	}
	if m.low_count != nil {
		fields = append(fields, iterationrecord.FieldLowCount)
	}
	if m.delta != nil {
		fields = append(fields, iterationrecord.FieldDelta)
	}
	if m.should_stop != nil {
		fields = append(fields, iterationrecord.FieldShouldStop)
	}
	if m.decision_reason != nil {
		fields = append(fields, iterationrecord.FieldDecisionReason)
	}
	if m.stopped_by != nil {
		fields = append(fields, iterationrecord.FieldStoppedBy)
	}
	if m.started_at != nil {
		fields = append(fields, iterationrecord.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, iterationrecord.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IterationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case iterationrecord.FieldSessionID:
		return m.SessionID()
	case iterationrecord.FieldIteration:
		return m.Iteration()
	case iterationrecord.FieldInputVersion:
		return m.InputVersion()
	case iterationrecord.FieldOutputVersion:
		return m.OutputVersion()
	case iterationrecord.FieldHighCount:
		return m.HighCount()
	case iterationrecord.FieldMediumCount:
		return m.MediumCount()
	case iterationrecord.FieldLowCount:
		return m.LowCount()
	case iterationrecord.FieldDelta:
		return m.Delta()
	case iterationrecord.FieldShouldStop:
		return m.ShouldStop()
	case iterationrecord.FieldDecisionReason:
		return m.DecisionReason()
	case iterationrecord.FieldStoppedBy:
		return m.StoppedBy()
	case iterationrecord.FieldStartedAt:
		return m.StartedAt()
	case iterationrecord.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IterationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case iterationrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case iterationrecord.FieldIteration:
		return m.OldIteration(ctx)
	case iterationrecord.FieldInputVersion:
		return m.OldInputVersion(ctx)
	case iterationrecord.FieldOutputVersion:
		return m.OldOutputVersion(ctx)
	case iterationrecord.FieldHighCount:
		return m.OldHighCount(ctx)
	case iterationrecord.FieldMediumCount:
		return m.OldMediumCount(ctx)
	case iterationrecord.FieldLowCount:
		return m.OldLowCount(ctx)
	case iterationrecord.FieldDelta:
		return m.OldDelta(ctx)
	case iterationrecord.FieldShouldStop:
		return m.OldShouldStop(ctx)
	case iterationrecord.FieldDecisionReason:
		return m.OldDecisionReason(ctx)
	case iterationrecord.FieldStoppedBy:
		return m.OldStoppedBy(ctx)
	case iterationrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case iterationrecord.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IterationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IterationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case iterationrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case iterationrecord.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case iterationrecord.FieldInputVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputVersion(v)
		return nil
	case iterationrecord.FieldOutputVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputVersion(v)
		return nil
	case iterationrecord.FieldHighCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighCount(v)
		return nil
	case iterationrecord.FieldMediumCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediumCount(v)
		return nil
	case iterationrecord.FieldLowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowCount(v)
		return nil
	case iterationrecord.FieldDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelta(v)
		return nil
	case iterationrecord.FieldShouldStop:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShouldStop(v)
		return nil
	case iterationrecord.FieldDecisionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionReason(v)
		return nil
	case iterationrecord.FieldStoppedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoppedBy(v)
		return nil
	case iterationrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case iterationrecord.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IterationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IterationRecordMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, iterationrecord.FieldIteration)
	}
	if m.addinput_version != nil {
		fields = append(fields, iterationrecord.FieldInputVersion)
	}
	if m.addoutput_version != nil {
		fields = append(fields, iterationrecord.FieldOutputVersion)
	}
	if m.addhigh_count != nil {
		fields = append(fields, iterationrecord.FieldHighCount)
	}
	if m.addmedium_count != nil {
		fields = append(fields, iterationrecord.FieldMediumCount)
	}
	if m.addlow_count != nil {
		fields = append(fields, iterationrecord.FieldLowCount)
	}
	if m.adddelta != nil {
		fields = append(fields, iterationrecord.FieldDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IterationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case iterationrecord.FieldIteration:
		return m.AddedIteration()
	case iterationrecord.FieldInputVersion:
		return m.AddedInputVersion()
	case iterationrecord.FieldOutputVersion:
		return m.AddedOutputVersion()
	case iterationrecord.FieldHighCount:
		return m.AddedHighCount()
	case iterationrecord.FieldMediumCount:
		return m.AddedMediumCount()
	case iterationrecord.FieldLowCount:
		return m.AddedLowCount()
	case iterationrecord.FieldDelta:
		return m.AddedDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IterationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case iterationrecord.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case iterationrecord.FieldInputVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputVersion(v)
		return nil
	case iterationrecord.FieldOutputVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputVersion(v)
		return nil
	case iterationrecord.FieldHighCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighCount(v)
		return nil
	case iterationrecord.FieldMediumCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMediumCount(v)
		return nil
	case iterationrecord.FieldLowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowCount(v)
		return nil
	case iterationrecord.FieldDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelta(v)
		return nil
	}
	return fmt.Errorf("unknown IterationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IterationRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(iterationrecord.FieldDecisionReason) {
		fields = append(fields, iterationrecord.FieldDecisionReason)
	}
	if m.FieldCleared(iterationrecord.FieldStoppedBy) {
		fields = append(fields, iterationrecord.FieldStoppedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IterationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IterationRecordMutation) ClearField(name string) error {
	switch name {
	case iterationrecord.FieldDecisionReason:
		m.ClearDecisionReason()
		return nil
	case iterationrecord.FieldStoppedBy:
		m.ClearStoppedBy()
		return nil
	}
	return fmt.Errorf("unknown IterationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IterationRecordMutation) ResetField(name string) error {
	switch name {
	case iterationrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case iterationrecord.FieldIteration:
		m.ResetIteration()
		return nil
	case iterationrecord.FieldInputVersion:
		m.ResetInputVersion()
		return nil
	case iterationrecord.FieldOutputVersion:
		m.ResetOutputVersion()
		return nil
	case iterationrecord.FieldHighCount:
		m.ResetHighCount()
		return nil
	case iterationrecord.FieldMediumCount:
		m.ResetMediumCount()
		return nil
	case iterationrecord.FieldLowCount:
		m.ResetLowCount()
		return nil
	case iterationrecord.FieldDelta:
		m.ResetDelta()
		return nil
	case iterationrecord.FieldShouldStop:
		m.ResetShouldStop()
		return nil
	case iterationrecord.FieldDecisionReason:
		m.ResetDecisionReason()
		return nil
	case iterationrecord.FieldStoppedBy:
		m.ResetStoppedBy()
		return nil
	case iterationrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case iterationrecord.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown IterationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IterationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, iterationrecord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IterationRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case iterationrecord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IterationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IterationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IterationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, iterationrecord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IterationRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case iterationrecord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IterationRecordMutation) ClearEdge(name string) error {
	switch name {
	case iterationrecord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown IterationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IterationRecordMutation) ResetEdge(name string) error {
	switch name {
	case iterationrecord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown IterationRecord edge %s", name)
}

// RefinementSessionMutation represents an operation that mutates the RefinementSession nodes in the graph.
type RefinementSessionMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	title                       *string
	goal                        *string
	document_type               *string
	status                      *refinementsession.Status
	_config                     *map[string]interface{}
	participants                *[]map[string]interface{}
	appendparticipants          []map[string]interface{}
	moderator_focus             *string
	planner_warning             *string
	current_iteration           *int
	addcurrent_iteration        *int
	final_version               *int
	addfinal_version            *int
	stopped_by                  *string
	convergence_reason          *string
	error_message               *string
	continued_from_iteration    *int
	addcontinued_from_iteration *int
	tokens                      *map[string]interface{}
	session_metadata            *map[string]interface{}
	convergence_report          *map[string]interface{}
	created_at                  *time.Time
	started_at                  *time.Time
	completed_at                *time.Time
	pod_id                      *string
	last_heartbeat_at           *time.Time
	clearedFields               map[string]struct{}
	versions                    map[string]struct{}
	removedversions             map[string]struct{}
	clearedversions             bool
	reviews                     map[string]struct{}
	removedreviews              map[string]struct{}
	clearedreviews              bool
	iterations                  map[string]struct{}
	removediterations           map[string]struct{}
	clearediterations           bool
	events                      map[int]struct{}
	removedevents               map[int]struct{}
	clearedevents               bool
	done                        bool
	oldValue                    func(context.Context) (*RefinementSession, error)
	predicates                  []predicate.RefinementSession
}

var _ ent.Mutation = (*RefinementSessionMutation)(nil)

// refinementsessionOption allows management of the mutation configuration using functional options.
type refinementsessionOption func(*RefinementSessionMutation)

// newRefinementSessionMutation creates new mutation for the RefinementSession entity.
func newRefinementSessionMutation(c config, op Op, opts ...refinementsessionOption) *RefinementSessionMutation {
	m := &RefinementSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeRefinementSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRefinementSessionID sets the ID field of the mutation.
func withRefinementSessionID(id string) refinementsessionOption {
	return func(m *RefinementSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *RefinementSession
		)
		m.oldValue = func(ctx context.Context) (*RefinementSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RefinementSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRefinementSession sets the old RefinementSession of the mutation.
func withRefinementSession(node *RefinementSession) refinementsessionOption {
	return func(m *RefinementSessionMutation) {
		m.oldValue = func(context.Context) (*RefinementSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RefinementSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RefinementSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RefinementSession entities.
func (m *RefinementSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RefinementSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RefinementSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RefinementSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *RefinementSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RefinementSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RefinementSessionMutation) ResetTitle() {
	m.title = nil
}

// SetGoal sets the "goal" field.
func (m *RefinementSessionMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *RefinementSessionMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *RefinementSessionMutation) ResetGoal() {
	m.goal = nil
}

// SetDocumentType sets the "document_type" field.
func (m *RefinementSessionMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *RefinementSessionMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *RefinementSessionMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetStatus sets the "status" field.
func (m *RefinementSessionMutation) SetStatus(r refinementsession.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RefinementSessionMutation) Status() (r refinementsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldStatus(ctx context.Context) (v refinementsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RefinementSessionMutation) ResetStatus() {
	m.status = nil
}

// SetConfig sets the "config" field.
func (m *RefinementSessionMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *RefinementSessionMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *RefinementSessionMutation) ResetConfig() {
	m._config = nil
}

// SetParticipants sets the "participants" field.
func (m *RefinementSessionMutation) SetParticipants(value []map[string]interface{}) {
	m.participants = &value
	m.appendparticipants = nil
}

// Participants returns the value of the "participants" field in the mutation.
func (m *RefinementSessionMutation) Participants() (r []map[string]interface{}, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldParticipants(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// AppendParticipants adds value to the "participants" field.
func (m *RefinementSessionMutation) AppendParticipants(value []map[string]interface{}) {
	m.appendparticipants = append(m.appendparticipants, value...)
}

// AppendedParticipants returns the list of values that were appended to the "participants" field in this mutation.
func (m *RefinementSessionMutation) AppendedParticipants() ([]map[string]interface{}, bool) {
	if len(m.appendparticipants) == 0 {
		return nil, false
	}
	return m.appendparticipants, true
}

// ClearParticipants clears the value of the "participants" field.
func (m *RefinementSessionMutation) ClearParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	m.clearedFields[refinementsession.FieldParticipants] = struct{}{}
}

// ParticipantsCleared returns if the "participants" field was cleared in this mutation.
func (m *RefinementSessionMutation) ParticipantsCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldParticipants]
	return ok
}

// ResetParticipants resets all changes to the "participants" field.
func (m *RefinementSessionMutation) ResetParticipants() {
	m.participants = nil
	m.appendparticipants = nil
	delete(m.clearedFields, refinementsession.FieldParticipants)
}

// SetModeratorFocus sets the "moderator_focus" field.
func (m *RefinementSessionMutation) SetModeratorFocus(s string) {
	m.moderator_focus = &s
}

// ModeratorFocus returns the value of the "moderator_focus" field in the mutation.
func (m *RefinementSessionMutation) ModeratorFocus() (r string, exists bool) {
	v := m.moderator_focus
	if v == nil {
		return
	}
	return *v, true
}

// OldModeratorFocus returns the old "moderator_focus" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldModeratorFocus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModeratorFocus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModeratorFocus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModeratorFocus: %w", err)
	}
	return oldValue.ModeratorFocus, nil
}

// ClearModeratorFocus clears the value of the "moderator_focus" field.
func (m *RefinementSessionMutation) ClearModeratorFocus() {
	m.moderator_focus = nil
	m.clearedFields[refinementsession.FieldModeratorFocus] = struct{}{}
}

// ModeratorFocusCleared returns if the "moderator_focus" field was cleared in this mutation.
func (m *RefinementSessionMutation) ModeratorFocusCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldModeratorFocus]
	return ok
}

// ResetModeratorFocus resets all changes to the "moderator_focus" field.
func (m *RefinementSessionMutation) ResetModeratorFocus() {
	m.moderator_focus = nil
	delete(m.clearedFields, refinementsession.FieldModeratorFocus)
}

// SetPlannerWarning sets the "planner_warning" field.
func (m *RefinementSessionMutation) SetPlannerWarning(s string) {
	m.planner_warning = &s
}

// PlannerWarning returns the value of the "planner_warning" field in the mutation.
func (m *RefinementSessionMutation) PlannerWarning() (r string, exists bool) {
	v := m.planner_warning
	if v == nil {
		return
	}
	return *v, true
}

// OldPlannerWarning returns the old "planner_warning" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldPlannerWarning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlannerWarning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlannerWarning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlannerWarning: %w", err)
	}
	return oldValue.PlannerWarning, nil
}

// ClearPlannerWarning clears the value of the "planner_warning" field.
func (m *RefinementSessionMutation) ClearPlannerWarning() {
	m.planner_warning = nil
	m.clearedFields[refinementsession.FieldPlannerWarning] = struct{}{}
}

// PlannerWarningCleared returns if the "planner_warning" field was cleared in this mutation.
func (m *RefinementSessionMutation) PlannerWarningCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldPlannerWarning]
	return ok
}

// ResetPlannerWarning resets all changes to the "planner_warning" field.
func (m *RefinementSessionMutation) ResetPlannerWarning() {
	m.planner_warning = nil
	delete(m.clearedFields, refinementsession.FieldPlannerWarning)
}

// SetCurrentIteration sets the "current_iteration" field.
func (m *RefinementSessionMutation) SetCurrentIteration(i int) {
	m.current_iteration = &i
	m.addcurrent_iteration = nil
}

// CurrentIteration returns the value of the "current_iteration" field in the mutation.
func (m *RefinementSessionMutation) CurrentIteration() (r int, exists bool) {
	v := m.current_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIteration returns the old "current_iteration" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldCurrentIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIteration: %w", err)
	}
	return oldValue.CurrentIteration, nil
}

// AddCurrentIteration adds i to the "current_iteration" field.
func (m *RefinementSessionMutation) AddCurrentIteration(i int) {
	if m.addcurrent_iteration != nil {
		*m.addcurrent_iteration += i
	} else {
		m.addcurrent_iteration = &i
	}
}

// AddedCurrentIteration returns the value that was added to the "current_iteration" field in this mutation.
func (m *RefinementSessionMutation) AddedCurrentIteration() (r int, exists bool) {
	v := m.addcurrent_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentIteration resets all changes to the "current_iteration" field.
func (m *RefinementSessionMutation) ResetCurrentIteration() {
	m.current_iteration = nil
	m.addcurrent_iteration = nil
}

// SetFinalVersion sets the "final_version" field.
func (m *RefinementSessionMutation) SetFinalVersion(i int) {
	m.final_version = &i
	m.addfinal_version = nil
}

// FinalVersion returns the value of the "final_version" field in the mutation.
func (m *RefinementSessionMutation) FinalVersion() (r int, exists bool) {
	v := m.final_version
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalVersion returns the old "final_version" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldFinalVersion(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalVersion: %w", err)
	}
	return oldValue.FinalVersion, nil
}

// AddFinalVersion adds i to the "final_version" field.
func (m *RefinementSessionMutation) AddFinalVersion(i int) {
	if m.addfinal_version != nil {
		*m.addfinal_version += i
	} else {
		m.addfinal_version = &i
	}
}

// AddedFinalVersion returns the value that was added to the "final_version" field in this mutation.
func (m *RefinementSessionMutation) AddedFinalVersion() (r int, exists bool) {
	v := m.addfinal_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearFinalVersion clears the value of the "final_version" field.
func (m *RefinementSessionMutation) ClearFinalVersion() {
	m.final_version = nil
	m.addfinal_version = nil
	m.clearedFields[refinementsession.FieldFinalVersion] = struct{}{}
}

// FinalVersionCleared returns if the "final_version" field was cleared in this mutation.
func (m *RefinementSessionMutation) FinalVersionCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldFinalVersion]
	return ok
}

// ResetFinalVersion resets all changes to the "final_version" field.
func (m *RefinementSessionMutation) ResetFinalVersion() {
	m.final_version = nil
	m.addfinal_version = nil
	delete(m.clearedFields, refinementsession.FieldFinalVersion)
}

// SetStoppedBy sets the "stopped_by" field.
func (m *RefinementSessionMutation) SetStoppedBy(s string) {
	m.stopped_by = &s
}

// StoppedBy returns the value of the "stopped_by" field in the mutation.
func (m *RefinementSessionMutation) StoppedBy() (r string, exists bool) {
	v := m.stopped_by
	if v == nil {
		return
	}
	return *v, true
}

// OldStoppedBy returns the old "stopped_by" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldStoppedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoppedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoppedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoppedBy: %w", err)
	}
	return oldValue.StoppedBy, nil
}

// ClearStoppedBy clears the value of the "stopped_by" field.
func (m *RefinementSessionMutation) ClearStoppedBy() {
	m.stopped_by = nil
	m.clearedFields[refinementsession.FieldStoppedBy] = struct{}{}
}

// StoppedByCleared returns if the "stopped_by" field was cleared in this mutation.
func (m *RefinementSessionMutation) StoppedByCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldStoppedBy]
	return ok
}

// ResetStoppedBy resets all changes to the "stopped_by" field.
func (m *RefinementSessionMutation) ResetStoppedBy() {
	m.stopped_by = nil
	delete(m.clearedFields, refinementsession.FieldStoppedBy)
}

// SetConvergenceReason sets the "convergence_reason" field.
func (m *RefinementSessionMutation) SetConvergenceReason(s string) {
	m.convergence_reason = &s
}

// ConvergenceReason returns the value of the "convergence_reason" field in the mutation.
func (m *RefinementSessionMutation) ConvergenceReason() (r string, exists bool) {
	v := m.convergence_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldConvergenceReason returns the old "convergence_reason" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldConvergenceReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvergenceReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvergenceReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvergenceReason: %w", err)
	}
	return oldValue.ConvergenceReason, nil
}

// ClearConvergenceReason clears the value of the "convergence_reason" field.
func (m *RefinementSessionMutation) ClearConvergenceReason() {
	m.convergence_reason = nil
	m.clearedFields[refinementsession.FieldConvergenceReason] = struct{}{}
}

// ConvergenceReasonCleared returns if the "convergence_reason" field was cleared in this mutation.
func (m *RefinementSessionMutation) ConvergenceReasonCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldConvergenceReason]
	return ok
}

// ResetConvergenceReason resets all changes to the "convergence_reason" field.
func (m *RefinementSessionMutation) ResetConvergenceReason() {
	m.convergence_reason = nil
	delete(m.clearedFields, refinementsession.FieldConvergenceReason)
}

// SetErrorMessage sets the "error_message" field.
func (m *RefinementSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RefinementSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RefinementSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[refinementsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RefinementSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RefinementSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, refinementsession.FieldErrorMessage)
}

// SetContinuedFromIteration sets the "continued_from_iteration" field.
func (m *RefinementSessionMutation) SetContinuedFromIteration(i int) {
	m.continued_from_iteration = &i
	m.addcontinued_from_iteration = nil
}

// ContinuedFromIteration returns the value of the "continued_from_iteration" field in the mutation.
func (m *RefinementSessionMutation) ContinuedFromIteration() (r int, exists bool) {
	v := m.continued_from_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldContinuedFromIteration returns the old "continued_from_iteration" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldContinuedFromIteration(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContinuedFromIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContinuedFromIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContinuedFromIteration: %w", err)
	}
	return oldValue.ContinuedFromIteration, nil
}

// AddContinuedFromIteration adds i to the "continued_from_iteration" field.
func (m *RefinementSessionMutation) AddContinuedFromIteration(i int) {
	if m.addcontinued_from_iteration != nil {
		*m.addcontinued_from_iteration += i
	} else {
		m.addcontinued_from_iteration = &i
	}
}

// AddedContinuedFromIteration returns the value that was added to the "continued_from_iteration" field in this mutation.
func (m *RefinementSessionMutation) AddedContinuedFromIteration() (r int, exists bool) {
	v := m.addcontinued_from_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ClearContinuedFromIteration clears the value of the "continued_from_iteration" field.
func (m *RefinementSessionMutation) ClearContinuedFromIteration() {
	m.continued_from_iteration = nil
	m.addcontinued_from_iteration = nil
	m.clearedFields[refinementsession.FieldContinuedFromIteration] = struct{}{}
}

// ContinuedFromIterationCleared returns if the "continued_from_iteration" field was cleared in this mutation.
func (m *RefinementSessionMutation) ContinuedFromIterationCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldContinuedFromIteration]
	return ok
}

// ResetContinuedFromIteration resets all changes to the "continued_from_iteration" field.
func (m *RefinementSessionMutation) ResetContinuedFromIteration() {
	m.continued_from_iteration = nil
	m.addcontinued_from_iteration = nil
	delete(m.clearedFields, refinementsession.FieldContinuedFromIteration)
}

// SetTokens sets the "tokens" field.
func (m *RefinementSessionMutation) SetTokens(value map[string]interface{}) {
	m.tokens = &value
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *RefinementSessionMutation) Tokens() (r map[string]interface{}, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldTokens(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// ClearTokens clears the value of the "tokens" field.
func (m *RefinementSessionMutation) ClearTokens() {
	m.tokens = nil
	m.clearedFields[refinementsession.FieldTokens] = struct{}{}
}

// TokensCleared returns if the "tokens" field was cleared in this mutation.
func (m *RefinementSessionMutation) TokensCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldTokens]
	return ok
}

// ResetTokens resets all changes to the "tokens" field.
func (m *RefinementSessionMutation) ResetTokens() {
	m.tokens = nil
	delete(m.clearedFields, refinementsession.FieldTokens)
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *RefinementSessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *RefinementSessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *RefinementSessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[refinementsession.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *RefinementSessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *RefinementSessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, refinementsession.FieldSessionMetadata)
}

// SetConvergenceReport sets the "convergence_report" field.
func (m *RefinementSessionMutation) SetConvergenceReport(value map[string]interface{}) {
	m.convergence_report = &value
}

// ConvergenceReport returns the value of the "convergence_report" field in the mutation.
func (m *RefinementSessionMutation) ConvergenceReport() (r map[string]interface{}, exists bool) {
	v := m.convergence_report
	if v == nil {
		return
	}
	return *v, true
}

// OldConvergenceReport returns the old "convergence_report" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldConvergenceReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvergenceReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvergenceReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvergenceReport: %w", err)
	}
	return oldValue.ConvergenceReport, nil
}

// ClearConvergenceReport clears the value of the "convergence_report" field.
func (m *RefinementSessionMutation) ClearConvergenceReport() {
	m.convergence_report = nil
	m.clearedFields[refinementsession.FieldConvergenceReport] = struct{}{}
}

// ConvergenceReportCleared returns if the "convergence_report" field was cleared in this mutation.
func (m *RefinementSessionMutation) ConvergenceReportCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldConvergenceReport]
	return ok
}

// ResetConvergenceReport resets all changes to the "convergence_report" field.
func (m *RefinementSessionMutation) ResetConvergenceReport() {
	m.convergence_report = nil
	delete(m.clearedFields, refinementsession.FieldConvergenceReport)
}

// SetCreatedAt sets the "created_at" field.
func (m *RefinementSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RefinementSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RefinementSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RefinementSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RefinementSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RefinementSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[refinementsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RefinementSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RefinementSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, refinementsession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RefinementSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RefinementSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RefinementSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[refinementsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RefinementSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RefinementSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, refinementsession.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *RefinementSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RefinementSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RefinementSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[refinementsession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RefinementSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RefinementSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, refinementsession.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *RefinementSessionMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *RefinementSessionMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the RefinementSession entity.
// If the RefinementSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RefinementSessionMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *RefinementSessionMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[refinementsession.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *RefinementSessionMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[refinementsession.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *RefinementSessionMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, refinementsession.FieldLastHeartbeatAt)
}

// AddVersionIDs adds the "versions" edge to the DocumentVersion entity by ids.
func (m *RefinementSessionMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the DocumentVersion entity.
func (m *RefinementSessionMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the DocumentVersion entity was cleared.
func (m *RefinementSessionMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the DocumentVersion entity by IDs.
func (m *RefinementSessionMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the DocumentVersion entity.
func (m *RefinementSessionMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *RefinementSessionMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *RefinementSessionMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// AddReviewIDs adds the "reviews" edge to the Review entity by ids.
func (m *RefinementSessionMutation) AddReviewIDs(ids ...string) {
	if m.reviews == nil {
		m.reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.reviews[ids[i]] = struct{}{}
	}
}

// ClearReviews clears the "reviews" edge to the Review entity.
func (m *RefinementSessionMutation) ClearReviews() {
	m.clearedreviews = true
}

// ReviewsCleared reports if the "reviews" edge to the Review entity was cleared.
func (m *RefinementSessionMutation) ReviewsCleared() bool {
	return m.clearedreviews
}

// RemoveReviewIDs removes the "reviews" edge to the Review entity by IDs.
func (m *RefinementSessionMutation) RemoveReviewIDs(ids ...string) {
	if m.removedreviews == nil {
		m.removedreviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reviews, ids[i])
		m.removedreviews[ids[i]] = struct{}{}
	}
}

// RemovedReviews returns the removed IDs of the "reviews" edge to the Review entity.
func (m *RefinementSessionMutation) RemovedReviewsIDs() (ids []string) {
	for id := range m.removedreviews {
		ids = append(ids, id)
	}
	return
}

// ReviewsIDs returns the "reviews" edge IDs in the mutation.
func (m *RefinementSessionMutation) ReviewsIDs() (ids []string) {
	for id := range m.reviews {
		ids = append(ids, id)
	}
	return
}

// ResetReviews resets all changes to the "reviews" edge.
func (m *RefinementSessionMutation) ResetReviews() {
	m.reviews = nil
	m.clearedreviews = false
	m.removedreviews = nil
}

// AddIterationIDs adds the "iterations" edge to the IterationRecord entity by ids.
func (m *RefinementSessionMutation) AddIterationIDs(ids ...string) {
	if m.iterations == nil {
		m.iterations = make(map[string]struct{})
	}
	for i := range ids {
		m.iterations[ids[i]] = struct{}{}
	}
}

// ClearIterations clears the "iterations" edge to the IterationRecord entity.
func (m *RefinementSessionMutation) ClearIterations() {
	m.clearediterations = true
}

// IterationsCleared reports if the "iterations" edge to the IterationRecord entity was cleared.
func (m *RefinementSessionMutation) IterationsCleared() bool {
	return m.clearediterations
}

// RemoveIterationIDs removes the "iterations" edge to the IterationRecord entity by IDs.
func (m *RefinementSessionMutation) RemoveIterationIDs(ids ...string) {
	if m.removediterations == nil {
		m.removediterations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.iterations, ids[i])
		m.removediterations[ids[i]] = struct{}{}
	}
}

// RemovedIterations returns the removed IDs of the "iterations" edge to the IterationRecord entity.
func (m *RefinementSessionMutation) RemovedIterationsIDs() (ids []string) {
	for id := range m.removediterations {
		ids = append(ids, id)
	}
	return
}

// IterationsIDs returns the "iterations" edge IDs in the mutation.
func (m *RefinementSessionMutation) IterationsIDs() (ids []string) {
	for id := range m.iterations {
		ids = append(ids, id)
	}
	return
}

// ResetIterations resets all changes to the "iterations" edge.
func (m *RefinementSessionMutation) ResetIterations() {
	m.iterations = nil
	m.clearediterations = false
	m.removediterations = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *RefinementSessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *RefinementSessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *RefinementSessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *RefinementSessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *RefinementSessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *RefinementSessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *RefinementSessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the RefinementSessionMutation builder.
func (m *RefinementSessionMutation) Where(ps ...predicate.RefinementSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RefinementSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RefinementSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RefinementSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RefinementSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RefinementSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RefinementSession).
func (m *RefinementSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RefinementSessionMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.title != nil {
		fields = append(fields, refinementsession.FieldTitle)
	}
	if m.goal != nil {
		fields = append(fields, refinementsession.FieldGoal)
	}
	if m.document_type != nil {
		fields = append(fields, refinementsession.FieldDocumentType)
	}
	if m.status != nil {
		fields = append(fields, refinementsession.FieldStatus)
	}
	if m._config != nil {
		fields = append(fields, refinementsession.FieldConfig)
	}
	if m.participants != nil {
		fields = append(fields, refinementsession.FieldParticipants)
	}
	if m.moderator_focus != nil {
		fields = append(fields, refinementsession.FieldModeratorFocus)
	}
	if m.planner_warning != nil {
		fields = append(fields, refinementsession.FieldPlannerWarning)
	}
	if m.current_iteration != nil {
		fields = append(fields, refinementsession.FieldCurrentIteration)
	}
	if m.final_version != nil {
		fields = append(fields, refinementsession.FieldFinalVersion)
	}
	if m.stopped_by != nil {
		fields = append(fields, refinementsession.FieldStoppedBy)
	}
	if m.convergence_reason != nil {
		fields = append(fields, refinementsession.FieldConvergenceReason)
	}
	if m.error_message != nil {
		fields = append(fields, refinementsession.FieldErrorMessage)
	}
	if m.continued_from_iteration != nil {
		fields = append(fields, refinementsession.FieldContinuedFromIteration)
	}
	if m.tokens != nil {
		fields = append(fields, refinementsession.FieldTokens)
	}
	if m.session_metadata != nil {
		fields = append(fields, refinementsession.FieldSessionMetadata)
	}
	if m.convergence_report != nil {
		fields = append(fields, refinementsession.FieldConvergenceReport)
	}
	if m.created_at != nil {
		fields = append(fields, refinementsession.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, refinementsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, refinementsession.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, refinementsession.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, refinementsession.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RefinementSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case refinementsession.FieldTitle:
		return m.Title()
	case refinementsession.FieldGoal:
		return m.Goal()
	case refinementsession.FieldDocumentType:
		return m.DocumentType()
	case refinementsession.FieldStatus:
		return m.Status()
	case refinementsession.FieldConfig:
		return m.Config()
	case refinementsession.FieldParticipants:
		return m.Participants()
	case refinementsession.FieldModeratorFocus:
		return m.ModeratorFocus()
	case refinementsession.FieldPlannerWarning:
		return m.PlannerWarning()
	case refinementsession.FieldCurrentIteration:
		return m.CurrentIteration()
	case refinementsession.FieldFinalVersion:
		return m.FinalVersion()
	case refinementsession.FieldStoppedBy:
		return m.StoppedBy()
	case refinementsession.FieldConvergenceReason:
		return m.ConvergenceReason()
	case refinementsession.FieldErrorMessage:
		return m.ErrorMessage()
	case refinementsession.FieldContinuedFromIteration:
		return m.ContinuedFromIteration()
	case refinementsession.FieldTokens:
		return m.Tokens()
	case refinementsession.FieldSessionMetadata:
		return m.SessionMetadata()
	case refinementsession.FieldConvergenceReport:
		return m.ConvergenceReport()
	case refinementsession.FieldCreatedAt:
		return m.CreatedAt()
	case refinementsession.FieldStartedAt:
		return m.StartedAt()
	case refinementsession.FieldCompletedAt:
		return m.CompletedAt()
	case refinementsession.FieldPodID:
		return m.PodID()
	case refinementsession.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RefinementSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case refinementsession.FieldTitle:
		return m.OldTitle(ctx)
	case refinementsession.FieldGoal:
		return m.OldGoal(ctx)
	case refinementsession.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case refinementsession.FieldStatus:
		return m.OldStatus(ctx)
	case refinementsession.FieldConfig:
		return m.OldConfig(ctx)
	case refinementsession.FieldParticipants:
		return m.OldParticipants(ctx)
	case refinementsession.FieldModeratorFocus:
		return m.OldModeratorFocus(ctx)
	case refinementsession.FieldPlannerWarning:
		return m.OldPlannerWarning(ctx)
	case refinementsession.FieldCurrentIteration:
		return m.OldCurrentIteration(ctx)
	case refinementsession.FieldFinalVersion:
		return m.OldFinalVersion(ctx)
	case refinementsession.FieldStoppedBy:
		return m.OldStoppedBy(ctx)
	case refinementsession.FieldConvergenceReason:
		return m.OldConvergenceReason(ctx)
	case refinementsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case refinementsession.FieldContinuedFromIteration:
		return m.OldContinuedFromIteration(ctx)
	case refinementsession.FieldTokens:
		return m.OldTokens(ctx)
	case refinementsession.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	case refinementsession.FieldConvergenceReport:
		return m.OldConvergenceReport(ctx)
	case refinementsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case refinementsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case refinementsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case refinementsession.FieldPodID:
		return m.OldPodID(ctx)
	case refinementsession.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown RefinementSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefinementSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case refinementsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case refinementsession.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case refinementsession.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case refinementsession.FieldStatus:
		v, ok := value.(refinementsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case refinementsession.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case refinementsession.FieldParticipants:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case refinementsession.FieldModeratorFocus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModeratorFocus(v)
		return nil
	case refinementsession.FieldPlannerWarning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlannerWarning(v)
		return nil
	case refinementsession.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIteration(v)
		return nil
	case refinementsession.FieldFinalVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalVersion(v)
		return nil
	case refinementsession.FieldStoppedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoppedBy(v)
		return nil
	case refinementsession.FieldConvergenceReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvergenceReason(v)
		return nil
	case refinementsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case refinementsession.FieldContinuedFromIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContinuedFromIteration(v)
		return nil
	case refinementsession.FieldTokens:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case refinementsession.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	case refinementsession.FieldConvergenceReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvergenceReport(v)
		return nil
	case refinementsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case refinementsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case refinementsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case refinementsession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case refinementsession.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown RefinementSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RefinementSessionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_iteration != nil {
		fields = append(fields, refinementsession.FieldCurrentIteration)
	}
	if m.addfinal_version != nil {
		fields = append(fields, refinementsession.FieldFinalVersion)
	}
	if m.addcontinued_from_iteration != nil {
		fields = append(fields, refinementsession.FieldContinuedFromIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RefinementSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case refinementsession.FieldCurrentIteration:
		return m.AddedCurrentIteration()
	case refinementsession.FieldFinalVersion:
		return m.AddedFinalVersion()
	case refinementsession.FieldContinuedFromIteration:
		return m.AddedContinuedFromIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RefinementSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case refinementsession.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIteration(v)
		return nil
	case refinementsession.FieldFinalVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalVersion(v)
		return nil
	case refinementsession.FieldContinuedFromIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContinuedFromIteration(v)
		return nil
	}
	return fmt.Errorf("unknown RefinementSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RefinementSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(refinementsession.FieldParticipants) {
		fields = append(fields, refinementsession.FieldParticipants)
	}
	if m.FieldCleared(refinementsession.FieldModeratorFocus) {
		fields = append(fields, refinementsession.FieldModeratorFocus)
	}
	if m.FieldCleared(refinementsession.FieldPlannerWarning) {
		fields = append(fields, refinementsession.FieldPlannerWarning)
	}
	if m.FieldCleared(refinementsession.FieldFinalVersion) {
		fields = append(fields, refinementsession.FieldFinalVersion)
	}
	if m.FieldCleared(refinementsession.FieldStoppedBy) {
		fields = append(fields, refinementsession.FieldStoppedBy)
	}
	if m.FieldCleared(refinementsession.FieldConvergenceReason) {
		fields = append(fields, refinementsession.FieldConvergenceReason)
	}
	if m.FieldCleared(refinementsession.FieldErrorMessage) {
		fields = append(fields, refinementsession.FieldErrorMessage)
	}
	if m.FieldCleared(refinementsession.FieldContinuedFromIteration) {
		fields = append(fields, refinementsession.FieldContinuedFromIteration)
	}
	if m.FieldCleared(refinementsession.FieldTokens) {
		fields = append(fields, refinementsession.FieldTokens)
	}
	if m.FieldCleared(refinementsession.FieldSessionMetadata) {
		fields = append(fields, refinementsession.FieldSessionMetadata)
	}
	if m.FieldCleared(refinementsession.FieldConvergenceReport) {
		fields = append(fields, refinementsession.FieldConvergenceReport)
	}
	if m.FieldCleared(refinementsession.FieldStartedAt) {
		fields = append(fields, refinementsession.FieldStartedAt)
	}
	if m.FieldCleared(refinementsession.FieldCompletedAt) {
		fields = append(fields, refinementsession.FieldCompletedAt)
	}
	if m.FieldCleared(refinementsession.FieldPodID) {
		fields = append(fields, refinementsession.FieldPodID)
	}
	if m.FieldCleared(refinementsession.FieldLastHeartbeatAt) {
		fields = append(fields, refinementsession.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RefinementSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RefinementSessionMutation) ClearField(name string) error {
	switch name {
	case refinementsession.FieldParticipants:
		m.ClearParticipants()
		return nil
	case refinementsession.FieldModeratorFocus:
		m.ClearModeratorFocus()
		return nil
	case refinementsession.FieldPlannerWarning:
		m.ClearPlannerWarning()
		return nil
	case refinementsession.FieldFinalVersion:
		m.ClearFinalVersion()
		return nil
	case refinementsession.FieldStoppedBy:
		m.ClearStoppedBy()
		return nil
	case refinementsession.FieldConvergenceReason:
		m.ClearConvergenceReason()
		return nil
	case refinementsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case refinementsession.FieldContinuedFromIteration:
		m.ClearContinuedFromIteration()
		return nil
	case refinementsession.FieldTokens:
		m.ClearTokens()
		return nil
	case refinementsession.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	case refinementsession.FieldConvergenceReport:
		m.ClearConvergenceReport()
		return nil
	case refinementsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case refinementsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case refinementsession.FieldPodID:
		m.ClearPodID()
		return nil
	case refinementsession.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown RefinementSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RefinementSessionMutation) ResetField(name string) error {
	switch name {
	case refinementsession.FieldTitle:
		m.ResetTitle()
		return nil
	case refinementsession.FieldGoal:
		m.ResetGoal()
		return nil
	case refinementsession.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case refinementsession.FieldStatus:
		m.ResetStatus()
		return nil
	case refinementsession.FieldConfig:
		m.ResetConfig()
		return nil
	case refinementsession.FieldParticipants:
		m.ResetParticipants()
		return nil
	case refinementsession.FieldModeratorFocus:
		m.ResetModeratorFocus()
		return nil
	case refinementsession.FieldPlannerWarning:
		m.ResetPlannerWarning()
		return nil
	case refinementsession.FieldCurrentIteration:
		m.ResetCurrentIteration()
		return nil
	case refinementsession.FieldFinalVersion:
		m.ResetFinalVersion()
		return nil
	case refinementsession.FieldStoppedBy:
		m.ResetStoppedBy()
		return nil
	case refinementsession.FieldConvergenceReason:
		m.ResetConvergenceReason()
		return nil
	case refinementsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case refinementsession.FieldContinuedFromIteration:
		m.ResetContinuedFromIteration()
		return nil
	case refinementsession.FieldTokens:
		m.ResetTokens()
		return nil
	case refinementsession.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	case refinementsession.FieldConvergenceReport:
		m.ResetConvergenceReport()
		return nil
	case refinementsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case refinementsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case refinementsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case refinementsession.FieldPodID:
		m.ResetPodID()
		return nil
	case refinementsession.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown RefinementSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RefinementSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.versions != nil {
		edges = append(edges, refinementsession.EdgeVersions)
	}
	if m.reviews != nil {
		edges = append(edges, refinementsession.EdgeReviews)
	}
	if m.iterations != nil {
		edges = append(edges, refinementsession.EdgeIterations)
	}
	if m.events != nil {
		edges = append(edges, refinementsession.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RefinementSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case refinementsession.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case refinementsession.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.reviews))
		for id := range m.reviews {
			ids = append(ids, id)
		}
		return ids
	case refinementsession.EdgeIterations:
		ids := make([]ent.Value, 0, len(m.iterations))
		for id := range m.iterations {
			ids = append(ids, id)
		}
		return ids
	case refinementsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RefinementSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedversions != nil {
		edges = append(edges, refinementsession.EdgeVersions)
	}
	if m.removedreviews != nil {
		edges = append(edges, refinementsession.EdgeReviews)
	}
	if m.removediterations != nil {
		edges = append(edges, refinementsession.EdgeIterations)
	}
	if m.removedevents != nil {
		edges = append(edges, refinementsession.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RefinementSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case refinementsession.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	case refinementsession.EdgeReviews:
		ids := make([]ent.Value, 0, len(m.removedreviews))
		for id := range m.removedreviews {
			ids = append(ids, id)
		}
		return ids
	case refinementsession.EdgeIterations:
		ids := make([]ent.Value, 0, len(m.removediterations))
		for id := range m.removediterations {
			ids = append(ids, id)
		}
		return ids
	case refinementsession.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RefinementSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedversions {
		edges = append(edges, refinementsession.EdgeVersions)
	}
	if m.clearedreviews {
		edges = append(edges, refinementsession.EdgeReviews)
	}
	if m.clearediterations {
		edges = append(edges, refinementsession.EdgeIterations)
	}
	if m.clearedevents {
		edges = append(edges, refinementsession.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RefinementSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case refinementsession.EdgeVersions:
		return m.clearedversions
	case refinementsession.EdgeReviews:
		return m.clearedreviews
	case refinementsession.EdgeIterations:
		return m.clearediterations
	case refinementsession.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RefinementSessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RefinementSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RefinementSessionMutation) ResetEdge(name string) error {
	switch name {
	case refinementsession.EdgeVersions:
		m.ResetVersions()
		return nil
	case refinementsession.EdgeReviews:
		m.ResetReviews()
		return nil
	case refinementsession.EdgeIterations:
		m.ResetIterations()
		return nil
	case refinementsession.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown RefinementSession edge %s", name)
}

// ReviewMutation represents an operation that mutates the Review nodes in the graph.
type ReviewMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	iteration           *int
	additeration        *int
	document_version    *int
	adddocument_version *int
	reviewer_name       *string
	model               *string
	issues              *[]map[string]interface{}
	appendissues        []map[string]interface{}
	overall_assessment  *string
	high_count          *int
	addhigh_count       *int
	medium_count        *int
	addmedium_count     *int
	low_count           *int
	addlow_count        *int
	salvaged            *bool
	tokens              *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*Review, error)
	predicates          []predicate.Review
}

var _ ent.Mutation = (*ReviewMutation)(nil)

// reviewOption allows management of the mutation configuration using functional options.
type reviewOption func(*ReviewMutation)

// newReviewMutation creates new mutation for the Review entity.
func newReviewMutation(c config, op Op, opts ...reviewOption) *ReviewMutation {
	m := &ReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewID sets the ID field of the mutation.
func withReviewID(id string) reviewOption {
	return func(m *ReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *Review
		)
		m.oldValue = func(ctx context.Context) (*Review, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Review.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReview sets the old Review of the mutation.
func withReview(node *Review) reviewOption {
	return func(m *ReviewMutation) {
		m.oldValue = func(context.Context) (*Review, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Review entities.
func (m *ReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Review.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ReviewMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ReviewMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ReviewMutation) ResetSessionID() {
	m.session = nil
}

// SetIteration sets the "iteration" field.
func (m *ReviewMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *ReviewMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *ReviewMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *ReviewMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *ReviewMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetDocumentVersion sets the "document_version" field.
func (m *ReviewMutation) SetDocumentVersion(i int) {
	m.document_version = &i
	m.adddocument_version = nil
}

// DocumentVersion returns the value of the "document_version" field in the mutation.
func (m *ReviewMutation) DocumentVersion() (r int, exists bool) {
	v := m.document_version
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentVersion returns the old "document_version" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldDocumentVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentVersion: %w", err)
	}
	return oldValue.DocumentVersion, nil
}

// AddDocumentVersion adds i to the "document_version" field.
func (m *ReviewMutation) AddDocumentVersion(i int) {
	if m.adddocument_version != nil {
		*m.adddocument_version += i
	} else {
		m.adddocument_version = &i
	}
}

// AddedDocumentVersion returns the value that was added to the "document_version" field in this mutation.
func (m *ReviewMutation) AddedDocumentVersion() (r int, exists bool) {
	v := m.adddocument_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetDocumentVersion resets all changes to the "document_version" field.
func (m *ReviewMutation) ResetDocumentVersion() {
	m.document_version = nil
	m.adddocument_version = nil
}

// SetReviewerName sets the "reviewer_name" field.
func (m *ReviewMutation) SetReviewerName(s string) {
	m.reviewer_name = &s
}

// ReviewerName returns the value of the "reviewer_name" field in the mutation.
func (m *ReviewMutation) ReviewerName() (r string, exists bool) {
	v := m.reviewer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewerName returns the old "reviewer_name" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldReviewerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewerName: %w", err)
	}
	return oldValue.ReviewerName, nil
}

// ResetReviewerName resets all changes to the "reviewer_name" field.
func (m *ReviewMutation) ResetReviewerName() {
	m.reviewer_name = nil
}

// SetModel sets the "model" field.
func (m *ReviewMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ReviewMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *ReviewMutation) ClearModel() {
	m.model = nil
	m.clearedFields[review.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *ReviewMutation) ModelCleared() bool {
	_, ok := m.clearedFields[review.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *ReviewMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, review.FieldModel)
}

// SetIssues sets the "issues" field.
func (m *ReviewMutation) SetIssues(value []map[string]interface{}) {
	m.issues = &value
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *ReviewMutation) Issues() (r []map[string]interface{}, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldIssues(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds value to the "issues" field.
func (m *ReviewMutation) AppendIssues(value []map[string]interface{}) {
	m.appendissues = append(m.appendissues, value...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *ReviewMutation) AppendedIssues() ([]map[string]interface{}, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ResetIssues resets all changes to the "issues" field.
func (m *ReviewMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
}

// SetOverallAssessment sets the "overall_assessment" field.
func (m *ReviewMutation) SetOverallAssessment(s string) {
	m.overall_assessment = &s
}

// OverallAssessment returns the value of the "overall_assessment" field in the mutation.
func (m *ReviewMutation) OverallAssessment() (r string, exists bool) {
	v := m.overall_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallAssessment returns the old "overall_assessment" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldOverallAssessment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallAssessment: %w", err)
	}
	return oldValue.OverallAssessment, nil
}

// ClearOverallAssessment clears the value of the "overall_assessment" field.
func (m *ReviewMutation) ClearOverallAssessment() {
	m.overall_assessment = nil
	m.clearedFields[review.FieldOverallAssessment] = struct{}{}
}

// OverallAssessmentCleared returns if the "overall_assessment" field was cleared in this mutation.
func (m *ReviewMutation) OverallAssessmentCleared() bool {
	_, ok := m.clearedFields[review.FieldOverallAssessment]
	return ok
}

// ResetOverallAssessment resets all changes to the "overall_assessment" field.
func (m *ReviewMutation) ResetOverallAssessment() {
	m.overall_assessment = nil
	delete(m.clearedFields, review.FieldOverallAssessment)
}

// SetHighCount sets the "high_count" field.
func (m *ReviewMutation) SetHighCount(i int) {
	m.high_count = &i
	m.addhigh_count = nil
}

// HighCount returns the value of the "high_count" field in the mutation.
func (m *ReviewMutation) HighCount() (r int, exists bool) {
	v := m.high_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHighCount returns the old "high_count" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldHighCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighCount: %w", err)
	}
	return oldValue.HighCount, nil
}

// AddHighCount adds i to the "high_count" field.
func (m *ReviewMutation) AddHighCount(i int) {
	if m.addhigh_count != nil {
		*m.addhigh_count += i
	} else {
		m.addhigh_count = &i
	}
}

// AddedHighCount returns the value that was added to the "high_count" field in this mutation.
func (m *ReviewMutation) AddedHighCount() (r int, exists bool) {
	v := m.addhigh_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHighCount resets all changes to the "high_count" field.
func (m *ReviewMutation) ResetHighCount() {
	m.high_count = nil
	m.addhigh_count = nil
}

// SetMediumCount sets the "medium_count" field.
func (m *ReviewMutation) SetMediumCount(i int) {
	m.medium_count = &i
	m.addmedium_count = nil
}

// MediumCount returns the value of the "medium_count" field in the mutation.
func (m *ReviewMutation) MediumCount() (r int, exists bool) {
	v := m.medium_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMediumCount returns the old "medium_count" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldMediumCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediumCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediumCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediumCount: %w", err)
	}
	return oldValue.MediumCount, nil
}

// AddMediumCount adds i to the "medium_count" field.
func (m *ReviewMutation) AddMediumCount(i int) {
	if m.addmedium_count != nil {
		*m.addmedium_count += i
	} else {
		m.addmedium_count = &i
	}
}

// AddedMediumCount returns the value that was added to the "medium_count" field in this mutation.
func (m *ReviewMutation) AddedMediumCount() (r int, exists bool) {
	v := m.addmedium_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMediumCount resets all changes to the "medium_count" field.
func (m *ReviewMutation) ResetMediumCount() {
	m.medium_count = nil
	m.addmedium_count = nil
}

// SetLowCount sets the "low_count" field.
func (m *ReviewMutation) SetLowCount(i int) {
	m.low_count = &i
	m.addlow_count = nil
}

// LowCount returns the value of the "low_count" field in the mutation.
func (m *ReviewMutation) LowCount() (r int, exists bool) {
	v := m.low_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLowCount returns the old "low_count" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldLowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowCount: %w", err)
	}
	return oldValue.LowCount, nil
}

// AddLowCount adds i to the "low_count" field.
func (m *ReviewMutation) AddLowCount(i int) {
	if m.addlow_count != nil {
		*m.addlow_count += i
	} else {
		m.addlow_count = &i
	}
}

// AddedLowCount returns the value that was added to the "low_count" field in this mutation.
func (m *ReviewMutation) AddedLowCount() (r int, exists bool) {
	v := m.addlow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowCount resets all changes to the "low_count" field.
func (m *ReviewMutation) ResetLowCount() {
	m.low_count = nil
	m.addlow_count = nil
}

// SetSalvaged sets the "salvaged" field.
func (m *ReviewMutation) SetSalvaged(b bool) {
	m.salvaged = &b
}

// Salvaged returns the value of the "salvaged" field in the mutation.
func (m *ReviewMutation) Salvaged() (r bool, exists bool) {
	v := m.salvaged
	if v == nil {
		return
	}
	return *v, true
}

// OldSalvaged returns the old "salvaged" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldSalvaged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalvaged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalvaged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalvaged: %w", err)
	}
	return oldValue.Salvaged, nil
}

// ResetSalvaged resets all changes to the "salvaged" field.
func (m *ReviewMutation) ResetSalvaged() {
	m.salvaged = nil
}

// SetTokens sets the "tokens" field.
func (m *ReviewMutation) SetTokens(value map[string]interface{}) {
	m.tokens = &value
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *ReviewMutation) Tokens() (r map[string]interface{}, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldTokens(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// ClearTokens clears the value of the "tokens" field.
func (m *ReviewMutation) ClearTokens() {
	m.tokens = nil
	m.clearedFields[review.FieldTokens] = struct{}{}
}

// TokensCleared returns if the "tokens" field was cleared in this mutation.
func (m *ReviewMutation) TokensCleared() bool {
	_, ok := m.clearedFields[review.FieldTokens]
	return ok
}

// ResetTokens resets all changes to the "tokens" field.
func (m *ReviewMutation) ResetTokens() {
	m.tokens = nil
	delete(m.clearedFields, review.FieldTokens)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Review entity.
// If the Review object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the RefinementSession entity.
func (m *ReviewMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[review.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the RefinementSession entity was cleared.
func (m *ReviewMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ReviewMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ReviewMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ReviewMutation builder.
func (m *ReviewMutation) Where(ps ...predicate.Review) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Review, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Review).
func (m *ReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, review.FieldSessionID)
	}
	if m.iteration != nil {
		fields = append(fields, review.FieldIteration)
	}
	if m.document_version != nil {
		fields = append(fields, review.FieldDocumentVersion)
	}
	if m.reviewer_name != nil {
		fields = append(fields, review.FieldReviewerName)
	}
	if m.model != nil {
		fields = append(fields, review.FieldModel)
	}
	if m.issues != nil {
		fields = append(fields, review.FieldIssues)
	}
	if m.overall_assessment != nil {
		fields = append(fields, review.FieldOverallAssessment)
	}
	if m.high_count != nil {
		fields = append(fields, review.FieldHighCount)
	}
	if m.medium_count != nil {
		fields = append(fields, review.FieldMediumCount)
	}
	if m.low_count != nil {
		fields = append(fields, review.FieldLowCount)
	}
	if m.salvaged != nil {
		fields = append(fields, review.FieldSalvaged)
	}
	if m.tokens != nil {
		fields = append(fields, review.FieldTokens)
	}
	if m.created_at != nil {
		fields = append(fields, review.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case review.FieldSessionID:
		return m.SessionID()
	case review.FieldIteration:
		return m.Iteration()
	case review.FieldDocumentVersion:
		return m.DocumentVersion()
	case review.FieldReviewerName:
		return m.ReviewerName()
	case review.FieldModel:
		return m.Model()
	case review.FieldIssues:
		return m.Issues()
	case review.FieldOverallAssessment:
		return m.OverallAssessment()
	case review.FieldHighCount:
		return m.HighCount()
	case review.FieldMediumCount:
		return m.MediumCount()
	case review.FieldLowCount:
		return m.LowCount()
	case review.FieldSalvaged:
		return m.Salvaged()
	case review.FieldTokens:
		return m.Tokens()
	case review.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case review.FieldSessionID:
		return m.OldSessionID(ctx)
	case review.FieldIteration:
		return m.OldIteration(ctx)
	case review.FieldDocumentVersion:
		return m.OldDocumentVersion(ctx)
	case review.FieldReviewerName:
		return m.OldReviewerName(ctx)
	case review.FieldModel:
		return m.OldModel(ctx)
	case review.FieldIssues:
		return m.OldIssues(ctx)
	case review.FieldOverallAssessment:
		return m.OldOverallAssessment(ctx)
	case review.FieldHighCount:
		return m.OldHighCount(ctx)
	case review.FieldMediumCount:
		return m.OldMediumCount(ctx)
	case review.FieldLowCount:
		return m.OldLowCount(ctx)
	case review.FieldSalvaged:
		return m.OldSalvaged(ctx)
	case review.FieldTokens:
		return m.OldTokens(ctx)
	case review.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Review field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case review.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case review.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case review.FieldDocumentVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentVersion(v)
		return nil
	case review.FieldReviewerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewerName(v)
		return nil
	case review.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case review.FieldIssues:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case review.FieldOverallAssessment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallAssessment(v)
		return nil
	case review.FieldHighCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighCount(v)
		return nil
	case review.FieldMediumCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediumCount(v)
		return nil
	case review.FieldLowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowCount(v)
		return nil
	case review.FieldSalvaged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalvaged(v)
		return nil
	case review.FieldTokens:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case review.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Review field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, review.FieldIteration)
	}
	if m.adddocument_version != nil {
		fields = append(fields, review.FieldDocumentVersion)
	}
	if m.addhigh_count != nil {
		fields = append(fields, review.FieldHighCount)
	}
	if m.addmedium_count != nil {
		fields = append(fields, review.FieldMediumCount)
	}
	if m.addlow_count != nil {
		fields = append(fields, review.FieldLowCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case review.FieldIteration:
		return m.AddedIteration()
	case review.FieldDocumentVersion:
		return m.AddedDocumentVersion()
	case review.FieldHighCount:
		return m.AddedHighCount()
	case review.FieldMediumCount:
		return m.AddedMediumCount()
	case review.FieldLowCount:
		return m.AddedLowCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case review.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	case review.FieldDocumentVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDocumentVersion(v)
		return nil
	case review.FieldHighCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighCount(v)
		return nil
	case review.FieldMediumCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMediumCount(v)
		return nil
	case review.FieldLowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowCount(v)
		return nil
	}
	return fmt.Errorf("unknown Review numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(review.FieldModel) {
		fields = append(fields, review.FieldModel)
	}
	if m.FieldCleared(review.FieldOverallAssessment) {
		fields = append(fields, review.FieldOverallAssessment)
	}
	if m.FieldCleared(review.FieldTokens) {
		fields = append(fields, review.FieldTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewMutation) ClearField(name string) error {
	switch name {
	case review.FieldModel:
		m.ClearModel()
		return nil
	case review.FieldOverallAssessment:
		m.ClearOverallAssessment()
		return nil
	case review.FieldTokens:
		m.ClearTokens()
		return nil
	}
	return fmt.Errorf("unknown Review nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewMutation) ResetField(name string) error {
	switch name {
	case review.FieldSessionID:
		m.ResetSessionID()
		return nil
	case review.FieldIteration:
		m.ResetIteration()
		return nil
	case review.FieldDocumentVersion:
		m.ResetDocumentVersion()
		return nil
	case review.FieldReviewerName:
		m.ResetReviewerName()
		return nil
	case review.FieldModel:
		m.ResetModel()
		return nil
	case review.FieldIssues:
		m.ResetIssues()
		return nil
	case review.FieldOverallAssessment:
		m.ResetOverallAssessment()
		return nil
	case review.FieldHighCount:
		m.ResetHighCount()
		return nil
	case review.FieldMediumCount:
		m.ResetMediumCount()
		return nil
	case review.FieldLowCount:
		m.ResetLowCount()
		return nil
	case review.FieldSalvaged:
		m.ResetSalvaged()
		return nil
	case review.FieldTokens:
		m.ResetTokens()
		return nil
	case review.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Review field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, review.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case review.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, review.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case review.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewMutation) ClearEdge(name string) error {
	switch name {
	case review.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Review unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewMutation) ResetEdge(name string) error {
	switch name {
	case review.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Review edge %s", name)
}
