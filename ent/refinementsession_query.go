// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/documentversion"
	"github.com/roundtable-ai/roundtable/ent/event"
	"github.com/roundtable-ai/roundtable/ent/iterationrecord"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/roundtable-ai/roundtable/ent/refinementsession"
	"github.com/roundtable-ai/roundtable/ent/review"
)

// RefinementSessionQuery is the builder for querying RefinementSession entities.
type RefinementSessionQuery struct {
	config
	ctx            *QueryContext
	order          []refinementsession.OrderOption
	inters         []Interceptor
	predicates     []predicate.RefinementSession
	withVersions   *DocumentVersionQuery
	withReviews    *ReviewQuery
	withIterations *IterationRecordQuery
	withEvents     *EventQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RefinementSessionQuery builder.
func (_q *RefinementSessionQuery) Where(ps ...predicate.RefinementSession) *RefinementSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RefinementSessionQuery) Limit(limit int) *RefinementSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RefinementSessionQuery) Offset(offset int) *RefinementSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RefinementSessionQuery) Unique(unique bool) *RefinementSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RefinementSessionQuery) Order(o ...refinementsession.OrderOption) *RefinementSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryVersions chains the current query on the "versions" edge.
func (_q *RefinementSessionQuery) QueryVersions() *DocumentVersionQuery {
	query := (&DocumentVersionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, selector),
			sqlgraph.To(documentversion.Table, documentversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.VersionsTable, refinementsession.VersionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReviews chains the current query on the "reviews" edge.
func (_q *RefinementSessionQuery) QueryReviews() *ReviewQuery {
	query := (&ReviewClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, selector),
			sqlgraph.To(review.Table, review.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.ReviewsTable, refinementsession.ReviewsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIterations chains the current query on the "iterations" edge.
func (_q *RefinementSessionQuery) QueryIterations() *IterationRecordQuery {
	query := (&IterationRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, selector),
			sqlgraph.To(iterationrecord.Table, iterationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.IterationsTable, refinementsession.IterationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *RefinementSessionQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(refinementsession.Table, refinementsession.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, refinementsession.EventsTable, refinementsession.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RefinementSession entity from the query.
// Returns a *NotFoundError when no RefinementSession was found.
func (_q *RefinementSessionQuery) First(ctx context.Context) (*RefinementSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{refinementsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RefinementSessionQuery) FirstX(ctx context.Context) *RefinementSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RefinementSession ID from the query.
// Returns a *NotFoundError when no RefinementSession ID was found.
func (_q *RefinementSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{refinementsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RefinementSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RefinementSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RefinementSession entity is found.
// Returns a *NotFoundError when no RefinementSession entities are found.
func (_q *RefinementSessionQuery) Only(ctx context.Context) (*RefinementSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{refinementsession.Label}
	default:
		return nil, &NotSingularError{refinementsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RefinementSessionQuery) OnlyX(ctx context.Context) *RefinementSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RefinementSession ID in the query.
// Returns a *NotSingularError when more than one RefinementSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RefinementSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{refinementsession.Label}
	default:
		err = &NotSingularError{refinementsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RefinementSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RefinementSessions.
func (_q *RefinementSessionQuery) All(ctx context.Context) ([]*RefinementSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RefinementSession, *RefinementSessionQuery]()
	return withInterceptors[[]*RefinementSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RefinementSessionQuery) AllX(ctx context.Context) []*RefinementSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RefinementSession IDs.
func (_q *RefinementSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(refinementsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RefinementSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RefinementSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RefinementSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RefinementSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RefinementSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RefinementSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RefinementSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RefinementSessionQuery) Clone() *RefinementSessionQuery {
	if _q == nil {
		return nil
	}
	return &RefinementSessionQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]refinementsession.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.RefinementSession{}, _q.predicates...),
		withVersions:   _q.withVersions.Clone(),
		withReviews:    _q.withReviews.Clone(),
		withIterations: _q.withIterations.Clone(),
		withEvents:     _q.withEvents.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithVersions tells the query-builder to eager-load the nodes that are connected to
// the "versions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RefinementSessionQuery) WithVersions(opts ...func(*DocumentVersionQuery)) *RefinementSessionQuery {
	query := (&DocumentVersionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVersions = query
	return _q
}

// WithReviews tells the query-builder to eager-load the nodes that are connected to
// the "reviews" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RefinementSessionQuery) WithReviews(opts ...func(*ReviewQuery)) *RefinementSessionQuery {
	query := (&ReviewClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReviews = query
	return _q
}

// WithIterations tells the query-builder to eager-load the nodes that are connected to
// the "iterations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RefinementSessionQuery) WithIterations(opts ...func(*IterationRecordQuery)) *RefinementSessionQuery {
	query := (&IterationRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIterations = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RefinementSessionQuery) WithEvents(opts ...func(*EventQuery)) *RefinementSessionQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RefinementSession.Query().
//		GroupBy(refinementsession.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RefinementSessionQuery) GroupBy(field string, fields ...string) *RefinementSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RefinementSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = refinementsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.RefinementSession.Query().
//		Select(refinementsession.FieldTitle).
//		Scan(ctx, &v)
func (_q *RefinementSessionQuery) Select(fields ...string) *RefinementSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RefinementSessionSelect{RefinementSessionQuery: _q}
	sbuild.label = refinementsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RefinementSessionSelect configured with the given aggregations.
func (_q *RefinementSessionQuery) Aggregate(fns ...AggregateFunc) *RefinementSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RefinementSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !refinementsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RefinementSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RefinementSession, error) {
	var (
		nodes       = []*RefinementSession{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withVersions != nil,
			_q.withReviews != nil,
			_q.withIterations != nil,
			_q.withEvents != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RefinementSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RefinementSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withVersions; query != nil {
		if err := _q.loadVersions(ctx, query, nodes,
			func(n *RefinementSession) { n.Edges.Versions = []*DocumentVersion{} },
			func(n *RefinementSession, e *DocumentVersion) { n.Edges.Versions = append(n.Edges.Versions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReviews; query != nil {
		if err := _q.loadReviews(ctx, query, nodes,
			func(n *RefinementSession) { n.Edges.Reviews = []*Review{} },
			func(n *RefinementSession, e *Review) { n.Edges.Reviews = append(n.Edges.Reviews, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIterations; query != nil {
		if err := _q.loadIterations(ctx, query, nodes,
			func(n *RefinementSession) { n.Edges.Iterations = []*IterationRecord{} },
			func(n *RefinementSession, e *IterationRecord) { n.Edges.Iterations = append(n.Edges.Iterations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *RefinementSession) { n.Edges.Events = []*Event{} },
			func(n *RefinementSession, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RefinementSessionQuery) loadVersions(ctx context.Context, query *DocumentVersionQuery, nodes []*RefinementSession, init func(*RefinementSession), assign func(*RefinementSession, *DocumentVersion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RefinementSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(documentversion.FieldSessionID)
	}
	query.Where(predicate.DocumentVersion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(refinementsession.VersionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RefinementSessionQuery) loadReviews(ctx context.Context, query *ReviewQuery, nodes []*RefinementSession, init func(*RefinementSession), assign func(*RefinementSession, *Review)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RefinementSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(review.FieldSessionID)
	}
	query.Where(predicate.Review(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(refinementsession.ReviewsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RefinementSessionQuery) loadIterations(ctx context.Context, query *IterationRecordQuery, nodes []*RefinementSession, init func(*RefinementSession), assign func(*RefinementSession, *IterationRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RefinementSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(iterationrecord.FieldSessionID)
	}
	query.Where(predicate.IterationRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(refinementsession.IterationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RefinementSessionQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*RefinementSession, init func(*RefinementSession), assign func(*RefinementSession, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RefinementSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldSessionID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(refinementsession.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RefinementSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RefinementSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(refinementsession.Table, refinementsession.Columns, sqlgraph.NewFieldSpec(refinementsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, refinementsession.FieldID)
		for i := range fields {
			if fields[i] != refinementsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RefinementSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(refinementsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = refinementsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *RefinementSessionQuery) ForUpdate(opts ...sql.LockOption) *RefinementSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *RefinementSessionQuery) ForShare(opts ...sql.LockOption) *RefinementSessionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// RefinementSessionGroupBy is the group-by builder for RefinementSession entities.
type RefinementSessionGroupBy struct {
	selector
	build *RefinementSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RefinementSessionGroupBy) Aggregate(fns ...AggregateFunc) *RefinementSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RefinementSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RefinementSessionQuery, *RefinementSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RefinementSessionGroupBy) sqlScan(ctx context.Context, root *RefinementSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RefinementSessionSelect is the builder for selecting fields of RefinementSession entities.
type RefinementSessionSelect struct {
	*RefinementSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RefinementSessionSelect) Aggregate(fns ...AggregateFunc) *RefinementSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RefinementSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RefinementSessionQuery, *RefinementSessionSelect](ctx, _s.RefinementSessionQuery, _s, _s.inters, v)
}

func (_s *RefinementSessionSelect) sqlScan(ctx context.Context, root *RefinementSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
