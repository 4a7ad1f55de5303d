// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// PhysicalFileQuery is the builder for querying PhysicalFile entities.
type PhysicalFileQuery struct {
	config
	ctx             *QueryContext
	order           []physicalfile.OrderOption
	inters          []Interceptor
	predicates      []predicate.PhysicalFile
	withParseRecord *ParseRecordQuery
	withExtractions *ExtractionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PhysicalFileQuery builder.
func (_q *PhysicalFileQuery) Where(ps ...predicate.PhysicalFile) *PhysicalFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PhysicalFileQuery) Limit(limit int) *PhysicalFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PhysicalFileQuery) Offset(offset int) *PhysicalFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PhysicalFileQuery) Unique(unique bool) *PhysicalFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PhysicalFileQuery) Order(o ...physicalfile.OrderOption) *PhysicalFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryParseRecord chains the current query on the "parse_record" edge.
func (_q *PhysicalFileQuery) QueryParseRecord() *ParseRecordQuery {
	query := (&ParseRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalfile.Table, physicalfile.FieldID, selector),
			sqlgraph.To(parserecord.Table, parserecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, physicalfile.ParseRecordTable, physicalfile.ParseRecordColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExtractions chains the current query on the "extractions" edge.
func (_q *PhysicalFileQuery) QueryExtractions() *ExtractionQuery {
	query := (&ExtractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalfile.Table, physicalfile.FieldID, selector),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, physicalfile.ExtractionsTable, physicalfile.ExtractionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PhysicalFile entity from the query.
// Returns a *NotFoundError when no PhysicalFile was found.
func (_q *PhysicalFileQuery) First(ctx context.Context) (*PhysicalFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{physicalfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PhysicalFileQuery) FirstX(ctx context.Context) *PhysicalFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PhysicalFile ID from the query.
// Returns a *NotFoundError when no PhysicalFile ID was found.
func (_q *PhysicalFileQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{physicalfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PhysicalFileQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PhysicalFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PhysicalFile entity is found.
// Returns a *NotFoundError when no PhysicalFile entities are found.
func (_q *PhysicalFileQuery) Only(ctx context.Context) (*PhysicalFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{physicalfile.Label}
	default:
		return nil, &NotSingularError{physicalfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PhysicalFileQuery) OnlyX(ctx context.Context) *PhysicalFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PhysicalFile ID in the query.
// Returns a *NotSingularError when more than one PhysicalFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PhysicalFileQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{physicalfile.Label}
	default:
		err = &NotSingularError{physicalfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PhysicalFileQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PhysicalFiles.
func (_q *PhysicalFileQuery) All(ctx context.Context) ([]*PhysicalFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PhysicalFile, *PhysicalFileQuery]()
	return withInterceptors[[]*PhysicalFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PhysicalFileQuery) AllX(ctx context.Context) []*PhysicalFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PhysicalFile IDs.
func (_q *PhysicalFileQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(physicalfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PhysicalFileQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PhysicalFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PhysicalFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PhysicalFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PhysicalFileQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PhysicalFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PhysicalFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PhysicalFileQuery) Clone() *PhysicalFileQuery {
	if _q == nil {
		return nil
	}
	return &PhysicalFileQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]physicalfile.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.PhysicalFile{}, _q.predicates...),
		withParseRecord: _q.withParseRecord.Clone(),
		withExtractions: _q.withExtractions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithParseRecord tells the query-builder to eager-load the nodes that are connected to
// the "parse_record" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PhysicalFileQuery) WithParseRecord(opts ...func(*ParseRecordQuery)) *PhysicalFileQuery {
	query := (&ParseRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParseRecord = query
	return _q
}

// WithExtractions tells the query-builder to eager-load the nodes that are connected to
// the "extractions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PhysicalFileQuery) WithExtractions(opts ...func(*ExtractionQuery)) *PhysicalFileQuery {
	query := (&ExtractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtractions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ContentHash []byte `json:"content_hash,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PhysicalFile.Query().
//		GroupBy(physicalfile.FieldContentHash).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PhysicalFileQuery) GroupBy(field string, fields ...string) *PhysicalFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PhysicalFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = physicalfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ContentHash []byte `json:"content_hash,omitempty"`
//	}
//
//	client.PhysicalFile.Query().
//		Select(physicalfile.FieldContentHash).
//		Scan(ctx, &v)
func (_q *PhysicalFileQuery) Select(fields ...string) *PhysicalFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PhysicalFileSelect{PhysicalFileQuery: _q}
	sbuild.label = physicalfile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PhysicalFileSelect configured with the given aggregations.
func (_q *PhysicalFileQuery) Aggregate(fns ...AggregateFunc) *PhysicalFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PhysicalFileQuery) prepareQuery(ctx context.Context) error {
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
		if !physicalfile.ValidColumn(f) {
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

func (_q *PhysicalFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PhysicalFile, error) {
	var (
		nodes       = []*PhysicalFile{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withParseRecord != nil,
			_q.withExtractions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PhysicalFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PhysicalFile{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withParseRecord; query != nil {
		if err := _q.loadParseRecord(ctx, query, nodes, nil,
			func(n *PhysicalFile, e *ParseRecord) { n.Edges.ParseRecord = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExtractions; query != nil {
		if err := _q.loadExtractions(ctx, query, nodes,
			func(n *PhysicalFile) { n.Edges.Extractions = []*Extraction{} },
			func(n *PhysicalFile, e *Extraction) { n.Edges.Extractions = append(n.Edges.Extractions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PhysicalFileQuery) loadParseRecord(ctx context.Context, query *ParseRecordQuery, nodes []*PhysicalFile, init func(*PhysicalFile), assign func(*PhysicalFile, *ParseRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*PhysicalFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(parserecord.FieldFileID)
	}
	query.Where(predicate.ParseRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(physicalfile.ParseRecordColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PhysicalFileQuery) loadExtractions(ctx context.Context, query *ExtractionQuery, nodes []*PhysicalFile, init func(*PhysicalFile), assign func(*PhysicalFile, *Extraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*PhysicalFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extraction.FieldFileID)
	}
	query.Where(predicate.Extraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(physicalfile.ExtractionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.FileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PhysicalFileQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PhysicalFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(physicalfile.Table, physicalfile.Columns, sqlgraph.NewFieldSpec(physicalfile.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, physicalfile.FieldID)
		for i := range fields {
			if fields[i] != physicalfile.FieldID {
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

func (_q *PhysicalFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(physicalfile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = physicalfile.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// PhysicalFileGroupBy is the group-by builder for PhysicalFile entities.
type PhysicalFileGroupBy struct {
	selector
	build *PhysicalFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PhysicalFileGroupBy) Aggregate(fns ...AggregateFunc) *PhysicalFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PhysicalFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhysicalFileQuery, *PhysicalFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PhysicalFileGroupBy) sqlScan(ctx context.Context, root *PhysicalFileQuery, v any) error {
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

// PhysicalFileSelect is the builder for selecting fields of PhysicalFile entities.
type PhysicalFileSelect struct {
	*PhysicalFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PhysicalFileSelect) Aggregate(fns ...AggregateFunc) *PhysicalFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PhysicalFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PhysicalFileQuery, *PhysicalFileSelect](ctx, _s.PhysicalFileQuery, _s, _s.inters, v)
}

func (_s *PhysicalFileSelect) sqlScan(ctx context.Context, root *PhysicalFileQuery, v any) error {
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
