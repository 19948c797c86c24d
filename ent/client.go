// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/roundtable-ai/roundtable/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/documentversion"
	"github.com/roundtable-ai/roundtable/ent/event"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
	"github.com/roundtable-ai/roundtable/ent/review"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DocumentVersion is the client for interacting with the DocumentVersion builders.
	DocumentVersion *DocumentVersionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// IterationRecord is the client for interacting with the IterationRecord builders.
	IterationRecord *IterationRecordClient
	// RefinementSession is the client for interacting with the RefinementSession builders.
	RefinementSession *RefinementSessionClient
	// Review is the client for interacting with the Review builders.
	Review *ReviewClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DocumentVersion = NewDocumentVersionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.IterationRecord = NewIterationRecordClient(c.config)
	c.RefinementSession = NewRefinementSessionClient(c.config)
	c.Review = NewReviewClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		DocumentVersion:   NewDocumentVersionClient(cfg),
		Event:             NewEventClient(cfg),
		IterationRecord:   NewIterationRecordClient(cfg),
		RefinementSession: NewRefinementSessionClient(cfg),
		Review:            NewReviewClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		DocumentVersion:   NewDocumentVersionClient(cfg),
		Event:             NewEventClient(cfg),
		IterationRecord:   NewIterationRecordClient(cfg),
		RefinementSession: NewRefinementSessionClient(cfg),
		Review:            NewReviewClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DocumentVersion.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.DocumentVersion.Use(hooks...)
	c.Event.Use(hooks...)
	c.IterationRecord.Use(hooks...)
	c.RefinementSession.Use(hooks...)
	c.Review.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DocumentVersion.Intercept(interceptors...)
	c.Event.Intercept(interceptors...)
	c.IterationRecord.Intercept(interceptors...)
	c.RefinementSession.Intercept(interceptors...)
	c.Review.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentVersionMutation:
		return c.DocumentVersion.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *IterationRecordMutation:
		return c.IterationRecord.mutate(ctx, m)
	case *RefinementSessionMutation:
		return c.RefinementSession.mutate(ctx, m)
	case *ReviewMutation:
		return c.Review.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentVersionClient is a client for the DocumentVersion schema.
type DocumentVersionClient struct {
	config
}

// NewDocumentVersionClient returns a client for the DocumentVersion from the given config.
func NewDocumentVersionClient(c config) *DocumentVersionClient {
	return &DocumentVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentversion.Hooks(f(g(h())))`.
func (c *DocumentVersionClient) Use(hooks ...Hook) {
	c.hooks.DocumentVersion = append(c.hooks.DocumentVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentversion.Intercept(f(g(h())))`.
func (c *DocumentVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentVersion = append(c.inters.DocumentVersion, interceptors...)
}

// Create returns a builder for creating a DocumentVersion entity.
func (c *DocumentVersionClient) Create() *DocumentVersionCreate {
	mutation := newDocumentVersionMutation(c.config, OpCreate)
	return &DocumentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentVersion entities.
func (c *DocumentVersionClient) CreateBulk(builders ...*DocumentVersionCreate) *DocumentVersionCreateBulk {
	return &DocumentVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentVersionClient) MapCreateBulk(slice any, setFunc func(*DocumentVersionCreate, int)) *DocumentVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentVersionCreateBulk{err: fmt.Errorf("calling to DocumentVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentVersion.
func (c *DocumentVersionClient) Update() *DocumentVersionUpdate {
	mutation := newDocumentVersionMutation(c.config, OpUpdate)
	return &DocumentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentVersionClient) UpdateOne(_m *DocumentVersion) *DocumentVersionUpdateOne {
	mutation := newDocumentVersionMutation(c.config, OpUpdateOne, withDocumentVersion(_m))
	return &DocumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentVersionClient) UpdateOneID(id string) *DocumentVersionUpdateOne {
	mutation := newDocumentVersionMutation(c.config, OpUpdateOne, withDocumentVersionID(id))
	return &DocumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentVersion.
func (c *DocumentVersionClient) Delete() *DocumentVersionDelete {
	mutation := newDocumentVersionMutation(c.config, OpDelete)
	return &DocumentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentVersionClient) DeleteOne(_m *DocumentVersion) *DocumentVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentVersionClient) DeleteOneID(id string) *DocumentVersionDeleteOne {
	builder := c.Delete().Where(documentversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentVersionDeleteOne{builder}
}

// Query returns a query builder for DocumentVersion.
func (c *DocumentVersionClient) Query() *DocumentVersionQuery {
	return &DocumentVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentVersion entity by its id.
func (c *DocumentVersionClient) Get(ctx context.Context, id string) (*DocumentVersion, error) {
	return c.Query().Where(documentversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentVersionClient) GetX(ctx context.Context, id string) *DocumentVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a DocumentVersion.
func (c *DocumentVersionClient) QuerySession(_m *DocumentVersion) *RefinementSessionQuery {
	query := (&RefinementSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentversion.Table, documentversion.FieldID, id),
			sqlgraph.To(refinementsession.Table, refinementsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentversion.SessionTable, documentversion.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentVersionClient) Hooks() []Hook {
	return c.hooks.DocumentVersion
}

// Interceptors returns the client interceptors.
func (c *DocumentVersionClient) Interceptors() []Interceptor {
	return c.inters.DocumentVersion
}

func (c *DocumentVersionClient) mutate(ctx context.Context, m *DocumentVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentVersion mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Event.
func (c *EventClient) QuerySession(_m *Event) *RefinementSessionQuery {
	query := (&RefinementSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(refinementsession.Table, refinementsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.SessionTable, event.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// IterationRecordClient is a client for the IterationRecord schema.
type IterationRecordClient struct {
	config
}

// NewIterationRecordClient returns a client for the IterationRecord from the given config.
func NewIterationRecordClient(c config) *IterationRecordClient {
	return &IterationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `iterationrecord.Hooks(f(g(h())))`.
func (c *IterationRecordClient) Use(hooks ...Hook) {
	c.hooks.IterationRecord = append(c.hooks.IterationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `iterationrecord.Intercept(f(g(h())))`.
func (c *IterationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.IterationRecord = append(c.inters.IterationRecord, interceptors...)
}

// Create returns a builder for creating a IterationRecord entity.
func (c *IterationRecordClient) Create() *IterationRecordCreate {
	mutation := newIterationRecordMutation(c.config, OpCreate)
	return &IterationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IterationRecord entities.
func (c *IterationRecordClient) CreateBulk(builders ...*IterationRecordCreate) *IterationRecordCreateBulk {
	return &IterationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IterationRecordClient) MapCreateBulk(slice any, setFunc func(*IterationRecordCreate, int)) *IterationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IterationRecordCreateBulk{err: fmt.Errorf("calling to IterationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IterationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IterationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IterationRecord.
func (c *IterationRecordClient) Update() *IterationRecordUpdate {
	mutation := newIterationRecordMutation(c.config, OpUpdate)
	return &IterationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IterationRecordClient) UpdateOne(_m *IterationRecord) *IterationRecordUpdateOne {
	mutation := newIterationRecordMutation(c.config, OpUpdateOne, withIterationRecord(_m))
	return &IterationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IterationRecordClient) UpdateOneID(id string) *IterationRecordUpdateOne {
	mutation := newIterationRecordMutation(c.config, OpUpdateOne, withIterationRecordID(id))
	return &IterationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IterationRecord.
func (c *IterationRecordClient) Delete() *IterationRecordDelete {
	mutation := newIterationRecordMutation(c.config, OpDelete)
	return &IterationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IterationRecordClient) DeleteOne(_m *IterationRecord) *IterationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IterationRecordClient) DeleteOneID(id string) *IterationRecordDeleteOne {
	builder := c.Delete().Where(iterationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IterationRecordDeleteOne{builder}
}

// Query returns a query builder for IterationRecord.
func (c *IterationRecordClient) Query() *IterationRecordQuery {
	return &IterationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIterationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a IterationRecord entity by its id.
func (c *IterationRecordClient) Get(ctx context.Context, id string) (*IterationRecord, error) {
	return c.Query().Where(iterationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IterationRecordClient) GetX(ctx context.Context, id string) *IterationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a IterationRecord.
func (c *IterationRecordClient) QuerySession(_m *IterationRecord) *RefinementSessionQuery {
	query := (&RefinementSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(iterationrecord.Table, iterationrecord.FieldID, id),
			sqlgraph.To(refinementsession.Table, refinementsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, iterationrecord.SessionTable, iterationrecord.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IterationRecordClient) Hooks() []Hook {
	return c.hooks.IterationRecord
}

// Interceptors returns the client interceptors.
func (c *IterationRecordClient) Interceptors() []Interceptor {
	return c.inters.IterationRecord
}

func (c *IterationRecordClient) mutate(ctx context.Context, m *IterationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IterationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IterationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IterationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IterationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IterationRecord mutation op: %q", m.Op())
	}
}

// RefinementSessionClient is a client for the RefinementSession schema.
type RefinementSessionClient struct {
	config
}

// NewRefinementSessionClient returns a client for the RefinementSession from the given config.
func NewRefinementSessionClient(c config) *RefinementSessionClient {
	return &RefinementSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `refinementsession.Hooks(f(g(h())))`.
func (c *RefinementSessionClient) Use(hooks ...Hook) {
	c.hooks.RefinementSession = append(c.hooks.RefinementSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `refinementsession.Intercept(f(g(h())))`.
func (c *RefinementSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RefinementSession = append(c.inters.RefinementSession, interceptors...)
}

// Create returns a builder for creating a RefinementSession entity.
func (c *RefinementSessionClient) Create() *RefinementSessionCreate {
	mutation := newRefinementSessionMutation(c.config, OpCreate)
	return &RefinementSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RefinementSession entities.
func (c *RefinementSessionClient) CreateBulk(builders ...*RefinementSessionCreate) *RefinementSessionCreateBulk {
	return &RefinementSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RefinementSessionClient) MapCreateBulk(slice any, setFunc func(*RefinementSessionCreate, int)) *RefinementSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RefinementSessionCreateBulk{err: fmt.Errorf("calling to RefinementSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RefinementSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RefinementSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RefinementSession.
func (c *RefinementSessionClient) Update() *RefinementSessionUpdate {
	mutation := newRefinementSessionMutation(c.config, OpUpdate)
	return &RefinementSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RefinementSessionClient) UpdateOne(_m *RefinementSession) *RefinementSessionUpdateOne {
	mutation := newRefinementSessionMutation(c.config, OpUpdateOne, withRefinementSession(_m))
	return &RefinementSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RefinementSessionClient) UpdateOneID(id string) *RefinementSessionUpdateOne {
	mutation := newRefinementSessionMutation(c.config, OpUpdateOne, withRefinementSessionID(id))
	return &RefinementSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RefinementSession.
func (c *RefinementSessionClient) Delete() *RefinementSessionDelete {
	mutation := newRefinementSessionMutation(c.config, OpDelete)
	return &RefinementSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RefinementSessionClient) DeleteOne(_m *RefinementSession) *RefinementSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RefinementSessionClient) DeleteOneID(id string) *RefinementSessionDeleteOne {
	builder := c.Delete().Where(refinementsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RefinementSessionDeleteOne{builder}
}

// Query returns a query builder for RefinementSession.
func (c *RefinementSessionClient) Query() *RefinementSessionQuery {
	return &RefinementSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRefinementSession},
		inters: c.Interceptors(),
	}
}

// Get returns a RefinementSession entity by its id.
func (c *RefinementSessionClient) Get(ctx context.Context, id string) (*RefinementSession, error) {
	return c.Query().Where(refinementsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RefinementSessionClient) GetX(ctx context.Context, id string) *RefinementSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a RefinementSession.
func (c *RefinementSessionClient) QueryVersions(_m *RefinementSession) *DocumentVersionQuery {
	query := (&DocumentVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, id),
			sqlgraph.To(documentversion.Table, documentversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.VersionsTable, refinementsession.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReviews queries the reviews edge of a RefinementSession.
func (c *RefinementSessionClient) QueryReviews(_m *RefinementSession) *ReviewQuery {
	query := (&ReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, id),
			sqlgraph.To(review.Table, review.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.ReviewsTable, refinementsession.ReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIterations queries the iterations edge of a RefinementSession.
func (c *RefinementSessionClient) QueryIterations(_m *RefinementSession) *IterationRecordQuery {
	query := (&IterationRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, id),
			sqlgraph.To(iterationrecord.Table, iterationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.IterationsTable, refinementsession.IterationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a RefinementSession.
func (c *RefinementSessionClient) QueryEvents(_m *RefinementSession) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.EventsTable, refinementsession.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RefinementSessionClient) Hooks() []Hook {
	return c.hooks.RefinementSession
}

// Interceptors returns the client interceptors.
func (c *RefinementSessionClient) Interceptors() []Interceptor {
	return c.inters.RefinementSession
}

func (c *RefinementSessionClient) mutate(ctx context.Context, m *RefinementSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RefinementSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RefinementSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RefinementSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RefinementSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RefinementSession mutation op: %q", m.Op())
	}
}

// ReviewClient is a client for the Review schema.
type ReviewClient struct {
	config
}

// NewReviewClient returns a client for the Review from the given config.
func NewReviewClient(c config) *ReviewClient {
	return &ReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `review.Hooks(f(g(h())))`.
func (c *ReviewClient) Use(hooks ...Hook) {
	c.hooks.Review = append(c.hooks.Review, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `review.Intercept(f(g(h())))`.
func (c *ReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.Review = append(c.inters.Review, interceptors...)
}

// Create returns a builder for creating a Review entity.
func (c *ReviewClient) Create() *ReviewCreate {
	mutation := newReviewMutation(c.config, OpCreate)
	return &ReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Review entities.
func (c *ReviewClient) CreateBulk(builders ...*ReviewCreate) *ReviewCreateBulk {
	return &ReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewClient) MapCreateBulk(slice any, setFunc func(*ReviewCreate, int)) *ReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewCreateBulk{err: fmt.Errorf("calling to ReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Review.
func (c *ReviewClient) Update() *ReviewUpdate {
	mutation := newReviewMutation(c.config, OpUpdate)
	return &ReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewClient) UpdateOne(_m *Review) *ReviewUpdateOne {
	mutation := newReviewMutation(c.config, OpUpdateOne, withReview(_m))
	return &ReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewClient) UpdateOneID(id string) *ReviewUpdateOne {
	mutation := newReviewMutation(c.config, OpUpdateOne, withReviewID(id))
	return &ReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Review.
func (c *ReviewClient) Delete() *ReviewDelete {
	mutation := newReviewMutation(c.config, OpDelete)
	return &ReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewClient) DeleteOne(_m *Review) *ReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewClient) DeleteOneID(id string) *ReviewDeleteOne {
	builder := c.Delete().Where(review.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewDeleteOne{builder}
}

// Query returns a query builder for Review.
func (c *ReviewClient) Query() *ReviewQuery {
	return &ReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReview},
		inters: c.Interceptors(),
	}
}

// Get returns a Review entity by its id.
func (c *ReviewClient) Get(ctx context.Context, id string) (*Review, error) {
	return c.Query().Where(review.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewClient) GetX(ctx context.Context, id string) *Review {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Review.
func (c *ReviewClient) QuerySession(_m *Review) *RefinementSessionQuery {
	query := (&RefinementSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(review.Table, review.FieldID, id),
			sqlgraph.To(refinementsession.Table, refinementsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, review.SessionTable, review.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReviewClient) Hooks() []Hook {
	return c.hooks.Review
}

// Interceptors returns the client interceptors.
func (c *ReviewClient) Interceptors() []Interceptor {
	return c.inters.Review
}

func (c *ReviewClient) mutate(ctx context.Context, m *ReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Review mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DocumentVersion, Event, IterationRecord, RefinementSession, Review []ent.Hook
	}
	inters struct {
		DocumentVersion, Event, IterationRecord, RefinementSession,
		Review []ent.Interceptor
	}
)
