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
	"github.com/moodle-tools/simwatch/ent/assignment"
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/ent/predicate"
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
)

// SubmittedFileQuery is the builder for querying SubmittedFile entities.
type SubmittedFileQuery struct {
	config
	ctx                  *QueryContext
	order                []submittedfile.OrderOption
	inters               []Interceptor
	predicates           []predicate.SubmittedFile
	withSubmission       *SubmissionQuery
	withAssignment       *AssignmentQuery
	withUser             *UserQuery
	withDigests          *FileDigestQuery
	withWarnings         *FileWarningQuery
	withOlderComparisons *FileComparisonQuery
	withNewerComparisons *FileComparisonQuery
	modifiers            []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SubmittedFileQuery builder.
func (_q *SubmittedFileQuery) Where(ps ...predicate.SubmittedFile) *SubmittedFileQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SubmittedFileQuery) Limit(limit int) *SubmittedFileQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SubmittedFileQuery) Offset(offset int) *SubmittedFileQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SubmittedFileQuery) Unique(unique bool) *SubmittedFileQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SubmittedFileQuery) Order(o ...submittedfile.OrderOption) *SubmittedFileQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySubmission chains the current query on the "submission" edge.
func (_q *SubmittedFileQuery) QuerySubmission() *SubmissionQuery {
	query := (&SubmissionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, selector),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submittedfile.SubmissionTable, submittedfile.SubmissionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignment chains the current query on the "assignment" edge.
func (_q *SubmittedFileQuery) QueryAssignment() *AssignmentQuery {
	query := (&AssignmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, selector),
			sqlgraph.To(assignment.Table, assignment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submittedfile.AssignmentTable, submittedfile.AssignmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUser chains the current query on the "user" edge.
func (_q *SubmittedFileQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submittedfile.UserTable, submittedfile.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDigests chains the current query on the "digests" edge.
func (_q *SubmittedFileQuery) QueryDigests() *FileDigestQuery {
	query := (&FileDigestClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, selector),
			sqlgraph.To(filedigest.Table, filedigest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.DigestsTable, submittedfile.DigestsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWarnings chains the current query on the "warnings" edge.
func (_q *SubmittedFileQuery) QueryWarnings() *FileWarningQuery {
	query := (&FileWarningClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, selector),
			sqlgraph.To(filewarning.Table, filewarning.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.WarningsTable, submittedfile.WarningsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOlderComparisons chains the current query on the "older_comparisons" edge.
func (_q *SubmittedFileQuery) QueryOlderComparisons() *FileComparisonQuery {
	query := (&FileComparisonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, selector),
			sqlgraph.To(filecomparison.Table, filecomparison.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.OlderComparisonsTable, submittedfile.OlderComparisonsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryNewerComparisons chains the current query on the "newer_comparisons" edge.
func (_q *SubmittedFileQuery) QueryNewerComparisons() *FileComparisonQuery {
	query := (&FileComparisonClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, selector),
			sqlgraph.To(filecomparison.Table, filecomparison.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.NewerComparisonsTable, submittedfile.NewerComparisonsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SubmittedFile entity from the query.
// Returns a *NotFoundError when no SubmittedFile was found.
func (_q *SubmittedFileQuery) First(ctx context.Context) (*SubmittedFile, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{submittedfile.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SubmittedFileQuery) FirstX(ctx context.Context) *SubmittedFile {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SubmittedFile ID from the query.
// Returns a *NotFoundError when no SubmittedFile ID was found.
func (_q *SubmittedFileQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{submittedfile.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SubmittedFileQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SubmittedFile entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SubmittedFile entity is found.
// Returns a *NotFoundError when no SubmittedFile entities are found.
func (_q *SubmittedFileQuery) Only(ctx context.Context) (*SubmittedFile, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{submittedfile.Label}
	default:
		return nil, &NotSingularError{submittedfile.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SubmittedFileQuery) OnlyX(ctx context.Context) *SubmittedFile {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SubmittedFile ID in the query.
// Returns a *NotSingularError when more than one SubmittedFile ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SubmittedFileQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{submittedfile.Label}
	default:
		err = &NotSingularError{submittedfile.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SubmittedFileQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SubmittedFiles.
func (_q *SubmittedFileQuery) All(ctx context.Context) ([]*SubmittedFile, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SubmittedFile, *SubmittedFileQuery]()
	return withInterceptors[[]*SubmittedFile](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SubmittedFileQuery) AllX(ctx context.Context) []*SubmittedFile {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SubmittedFile IDs.
func (_q *SubmittedFileQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(submittedfile.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SubmittedFileQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SubmittedFileQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SubmittedFileQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SubmittedFileQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SubmittedFileQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SubmittedFileQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SubmittedFileQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SubmittedFileQuery) Clone() *SubmittedFileQuery {
	if _q == nil {
		return nil
	}
	return &SubmittedFileQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]submittedfile.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.SubmittedFile{}, _q.predicates...),
		withSubmission:       _q.withSubmission.Clone(),
		withAssignment:       _q.withAssignment.Clone(),
		withUser:             _q.withUser.Clone(),
		withDigests:          _q.withDigests.Clone(),
		withWarnings:         _q.withWarnings.Clone(),
		withOlderComparisons: _q.withOlderComparisons.Clone(),
		withNewerComparisons: _q.withNewerComparisons.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSubmission tells the query-builder to eager-load the nodes that are connected to
// the "submission" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubmittedFileQuery) WithSubmission(opts ...func(*SubmissionQuery)) *SubmittedFileQuery {
	query := (&SubmissionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubmission = query
	return _q
}

// WithAssignment tells the query-builder to eager-load the nodes that are connected to
// the "assignment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubmittedFileQuery) WithAssignment(opts ...func(*AssignmentQuery)) *SubmittedFileQuery {
	query := (&AssignmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignment = query
	return _q
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubmittedFileQuery) WithUser(opts ...func(*UserQuery)) *SubmittedFileQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// WithDigests tells the query-builder to eager-load the nodes that are connected to
// the "digests" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubmittedFileQuery) WithDigests(opts ...func(*FileDigestQuery)) *SubmittedFileQuery {
	query := (&FileDigestClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDigests = query
	return _q
}

// WithWarnings tells the query-builder to eager-load the nodes that are connected to
// the "warnings" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubmittedFileQuery) WithWarnings(opts ...func(*FileWarningQuery)) *SubmittedFileQuery {
	query := (&FileWarningClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWarnings = query
	return _q
}

// WithOlderComparisons tells the query-builder to eager-load the nodes that are connected to
// the "older_comparisons" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubmittedFileQuery) WithOlderComparisons(opts ...func(*FileComparisonQuery)) *SubmittedFileQuery {
	query := (&FileComparisonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOlderComparisons = query
	return _q
}

// WithNewerComparisons tells the query-builder to eager-load the nodes that are connected to
// the "newer_comparisons" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubmittedFileQuery) WithNewerComparisons(opts ...func(*FileComparisonQuery)) *SubmittedFileQuery {
	query := (&FileComparisonClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNewerComparisons = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SubmissionID int64 `json:"submission_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SubmittedFile.Query().
//		GroupBy(submittedfile.FieldSubmissionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SubmittedFileQuery) GroupBy(field string, fields ...string) *SubmittedFileGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SubmittedFileGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = submittedfile.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SubmissionID int64 `json:"submission_id,omitempty"`
//	}
//
//	client.SubmittedFile.Query().
//		Select(submittedfile.FieldSubmissionID).
//		Scan(ctx, &v)
func (_q *SubmittedFileQuery) Select(fields ...string) *SubmittedFileSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SubmittedFileSelect{SubmittedFileQuery: _q}
	sbuild.label = submittedfile.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SubmittedFileSelect configured with the given aggregations.
func (_q *SubmittedFileQuery) Aggregate(fns ...AggregateFunc) *SubmittedFileSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SubmittedFileQuery) prepareQuery(ctx context.Context) error {
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
		if !submittedfile.ValidColumn(f) {
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

func (_q *SubmittedFileQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SubmittedFile, error) {
	var (
		nodes       = []*SubmittedFile{}
		_spec       = _q.querySpec()
		loadedTypes = [7]bool{
			_q.withSubmission != nil,
			_q.withAssignment != nil,
			_q.withUser != nil,
			_q.withDigests != nil,
			_q.withWarnings != nil,
			_q.withOlderComparisons != nil,
			_q.withNewerComparisons != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SubmittedFile).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SubmittedFile{config: _q.config}
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
	if query := _q.withSubmission; query != nil {
		if err := _q.loadSubmission(ctx, query, nodes, nil,
			func(n *SubmittedFile, e *Submission) { n.Edges.Submission = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignment; query != nil {
		if err := _q.loadAssignment(ctx, query, nodes, nil,
			func(n *SubmittedFile, e *Assignment) { n.Edges.Assignment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *SubmittedFile, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDigests; query != nil {
		if err := _q.loadDigests(ctx, query, nodes,
			func(n *SubmittedFile) { n.Edges.Digests = []*FileDigest{} },
			func(n *SubmittedFile, e *FileDigest) { n.Edges.Digests = append(n.Edges.Digests, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWarnings; query != nil {
		if err := _q.loadWarnings(ctx, query, nodes,
			func(n *SubmittedFile) { n.Edges.Warnings = []*FileWarning{} },
			func(n *SubmittedFile, e *FileWarning) { n.Edges.Warnings = append(n.Edges.Warnings, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOlderComparisons; query != nil {
		if err := _q.loadOlderComparisons(ctx, query, nodes,
			func(n *SubmittedFile) { n.Edges.OlderComparisons = []*FileComparison{} },
			func(n *SubmittedFile, e *FileComparison) {
				n.Edges.OlderComparisons = append(n.Edges.OlderComparisons, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withNewerComparisons; query != nil {
		if err := _q.loadNewerComparisons(ctx, query, nodes,
			func(n *SubmittedFile) { n.Edges.NewerComparisons = []*FileComparison{} },
			func(n *SubmittedFile, e *FileComparison) {
				n.Edges.NewerComparisons = append(n.Edges.NewerComparisons, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SubmittedFileQuery) loadSubmission(ctx context.Context, query *SubmissionQuery, nodes []*SubmittedFile, init func(*SubmittedFile), assign func(*SubmittedFile, *Submission)) error {
	ids := make([]int64, 0, len(nodes))
	nodeids := make(map[int64][]*SubmittedFile)
	for i := range nodes {
		fk := nodes[i].SubmissionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(submission.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "submission_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SubmittedFileQuery) loadAssignment(ctx context.Context, query *AssignmentQuery, nodes []*SubmittedFile, init func(*SubmittedFile), assign func(*SubmittedFile, *Assignment)) error {
	ids := make([]int64, 0, len(nodes))
	nodeids := make(map[int64][]*SubmittedFile)
	for i := range nodes {
		fk := nodes[i].AssignmentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(assignment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "assignment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SubmittedFileQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*SubmittedFile, init func(*SubmittedFile), assign func(*SubmittedFile, *User)) error {
	ids := make([]int64, 0, len(nodes))
	nodeids := make(map[int64][]*SubmittedFile)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SubmittedFileQuery) loadDigests(ctx context.Context, query *FileDigestQuery, nodes []*SubmittedFile, init func(*SubmittedFile), assign func(*SubmittedFile, *FileDigest)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*SubmittedFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(filedigest.FieldFileID)
	}
	query.Where(predicate.FileDigest(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(submittedfile.DigestsColumn), fks...))
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
func (_q *SubmittedFileQuery) loadWarnings(ctx context.Context, query *FileWarningQuery, nodes []*SubmittedFile, init func(*SubmittedFile), assign func(*SubmittedFile, *FileWarning)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*SubmittedFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(filewarning.FieldFileID)
	}
	query.Where(predicate.FileWarning(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(submittedfile.WarningsColumn), fks...))
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
func (_q *SubmittedFileQuery) loadOlderComparisons(ctx context.Context, query *FileComparisonQuery, nodes []*SubmittedFile, init func(*SubmittedFile), assign func(*SubmittedFile, *FileComparison)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*SubmittedFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(filecomparison.FieldOlderFileID)
	}
	query.Where(predicate.FileComparison(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(submittedfile.OlderComparisonsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.OlderFileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "older_file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *SubmittedFileQuery) loadNewerComparisons(ctx context.Context, query *FileComparisonQuery, nodes []*SubmittedFile, init func(*SubmittedFile), assign func(*SubmittedFile, *FileComparison)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*SubmittedFile)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(filecomparison.FieldNewerFileID)
	}
	query.Where(predicate.FileComparison(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(submittedfile.NewerComparisonsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.NewerFileID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "newer_file_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SubmittedFileQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *SubmittedFileQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(submittedfile.Table, submittedfile.Columns, sqlgraph.NewFieldSpec(submittedfile.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submittedfile.FieldID)
		for i := range fields {
			if fields[i] != submittedfile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSubmission != nil {
			_spec.Node.AddColumnOnce(submittedfile.FieldSubmissionID)
		}
		if _q.withAssignment != nil {
			_spec.Node.AddColumnOnce(submittedfile.FieldAssignmentID)
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(submittedfile.FieldUserID)
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

func (_q *SubmittedFileQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(submittedfile.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = submittedfile.Columns
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
func (_q *SubmittedFileQuery) ForUpdate(opts ...sql.LockOption) *SubmittedFileQuery {
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
func (_q *SubmittedFileQuery) ForShare(opts ...sql.LockOption) *SubmittedFileQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SubmittedFileGroupBy is the group-by builder for SubmittedFile entities.
type SubmittedFileGroupBy struct {
	selector
	build *SubmittedFileQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SubmittedFileGroupBy) Aggregate(fns ...AggregateFunc) *SubmittedFileGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SubmittedFileGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubmittedFileQuery, *SubmittedFileGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SubmittedFileGroupBy) sqlScan(ctx context.Context, root *SubmittedFileQuery, v any) error {
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

// SubmittedFileSelect is the builder for selecting fields of SubmittedFile entities.
type SubmittedFileSelect struct {
	*SubmittedFileQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SubmittedFileSelect) Aggregate(fns ...AggregateFunc) *SubmittedFileSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SubmittedFileSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubmittedFileQuery, *SubmittedFileSelect](ctx, _s.SubmittedFileQuery, _s, _s.inters, v)
}

func (_s *SubmittedFileSelect) sqlScan(ctx context.Context, root *SubmittedFileQuery, v any) error {
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
