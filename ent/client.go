// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/moodle-tools/simwatch/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/moodle-tools/simwatch/ent/assignment"
	"github.com/moodle-tools/simwatch/ent/course"
	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/ent/group"
	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/participantgroup"
	"github.com/moodle-tools/simwatch/ent/participantrole"
	"github.com/moodle-tools/simwatch/ent/role"
	"github.com/moodle-tools/simwatch/ent/submission"
	"github.com/moodle-tools/simwatch/ent/submittedfile"
	"github.com/moodle-tools/simwatch/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Assignment is the client for interacting with the Assignment builders.
	Assignment *AssignmentClient
	// Course is the client for interacting with the Course builders.
	Course *CourseClient
	// FileComparison is the client for interacting with the FileComparison builders.
	FileComparison *FileComparisonClient
	// FileDigest is the client for interacting with the FileDigest builders.
	FileDigest *FileDigestClient
	// FileWarning is the client for interacting with the FileWarning builders.
	FileWarning *FileWarningClient
	// Group is the client for interacting with the Group builders.
	Group *GroupClient
	// Participant is the client for interacting with the Participant builders.
	Participant *ParticipantClient
	// ParticipantGroup is the client for interacting with the ParticipantGroup builders.
	ParticipantGroup *ParticipantGroupClient
	// ParticipantRole is the client for interacting with the ParticipantRole builders.
	ParticipantRole *ParticipantRoleClient
	// Role is the client for interacting with the Role builders.
	Role *RoleClient
	// Submission is the client for interacting with the Submission builders.
	Submission *SubmissionClient
	// SubmittedFile is the client for interacting with the SubmittedFile builders.
	SubmittedFile *SubmittedFileClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Assignment = NewAssignmentClient(c.config)
	c.Course = NewCourseClient(c.config)
	c.FileComparison = NewFileComparisonClient(c.config)
	c.FileDigest = NewFileDigestClient(c.config)
	c.FileWarning = NewFileWarningClient(c.config)
	c.Group = NewGroupClient(c.config)
	c.Participant = NewParticipantClient(c.config)
	c.ParticipantGroup = NewParticipantGroupClient(c.config)
	c.ParticipantRole = NewParticipantRoleClient(c.config)
	c.Role = NewRoleClient(c.config)
	c.Submission = NewSubmissionClient(c.config)
	c.SubmittedFile = NewSubmittedFileClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Assignment:       NewAssignmentClient(cfg),
		Course:           NewCourseClient(cfg),
		FileComparison:   NewFileComparisonClient(cfg),
		FileDigest:       NewFileDigestClient(cfg),
		FileWarning:      NewFileWarningClient(cfg),
		Group:            NewGroupClient(cfg),
		Participant:      NewParticipantClient(cfg),
		ParticipantGroup: NewParticipantGroupClient(cfg),
		ParticipantRole:  NewParticipantRoleClient(cfg),
		Role:             NewRoleClient(cfg),
		Submission:       NewSubmissionClient(cfg),
		SubmittedFile:    NewSubmittedFileClient(cfg),
		User:             NewUserClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Assignment:       NewAssignmentClient(cfg),
		Course:           NewCourseClient(cfg),
		FileComparison:   NewFileComparisonClient(cfg),
		FileDigest:       NewFileDigestClient(cfg),
		FileWarning:      NewFileWarningClient(cfg),
		Group:            NewGroupClient(cfg),
		Participant:      NewParticipantClient(cfg),
		ParticipantGroup: NewParticipantGroupClient(cfg),
		ParticipantRole:  NewParticipantRoleClient(cfg),
		Role:             NewRoleClient(cfg),
		Submission:       NewSubmissionClient(cfg),
		SubmittedFile:    NewSubmittedFileClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Assignment.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Assignment, c.Course, c.FileComparison, c.FileDigest, c.FileWarning, c.Group,
		c.Participant, c.ParticipantGroup, c.ParticipantRole, c.Role, c.Submission,
		c.SubmittedFile, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Assignment, c.Course, c.FileComparison, c.FileDigest, c.FileWarning, c.Group,
		c.Participant, c.ParticipantGroup, c.ParticipantRole, c.Role, c.Submission,
		c.SubmittedFile, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssignmentMutation:
		return c.Assignment.mutate(ctx, m)
	case *CourseMutation:
		return c.Course.mutate(ctx, m)
	case *FileComparisonMutation:
		return c.FileComparison.mutate(ctx, m)
	case *FileDigestMutation:
		return c.FileDigest.mutate(ctx, m)
	case *FileWarningMutation:
		return c.FileWarning.mutate(ctx, m)
	case *GroupMutation:
		return c.Group.mutate(ctx, m)
	case *ParticipantMutation:
		return c.Participant.mutate(ctx, m)
	case *ParticipantGroupMutation:
		return c.ParticipantGroup.mutate(ctx, m)
	case *ParticipantRoleMutation:
		return c.ParticipantRole.mutate(ctx, m)
	case *RoleMutation:
		return c.Role.mutate(ctx, m)
	case *SubmissionMutation:
		return c.Submission.mutate(ctx, m)
	case *SubmittedFileMutation:
		return c.SubmittedFile.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssignmentClient is a client for the Assignment schema.
type AssignmentClient struct {
	config
}

// NewAssignmentClient returns a client for the Assignment from the given config.
func NewAssignmentClient(c config) *AssignmentClient {
	return &AssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assignment.Hooks(f(g(h())))`.
func (c *AssignmentClient) Use(hooks ...Hook) {
	c.hooks.Assignment = append(c.hooks.Assignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assignment.Intercept(f(g(h())))`.
func (c *AssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assignment = append(c.inters.Assignment, interceptors...)
}

// Create returns a builder for creating a Assignment entity.
func (c *AssignmentClient) Create() *AssignmentCreate {
	mutation := newAssignmentMutation(c.config, OpCreate)
	return &AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assignment entities.
func (c *AssignmentClient) CreateBulk(builders ...*AssignmentCreate) *AssignmentCreateBulk {
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignmentClient) MapCreateBulk(slice any, setFunc func(*AssignmentCreate, int)) *AssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignmentCreateBulk{err: fmt.Errorf("calling to AssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assignment.
func (c *AssignmentClient) Update() *AssignmentUpdate {
	mutation := newAssignmentMutation(c.config, OpUpdate)
	return &AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignmentClient) UpdateOne(_m *Assignment) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignment(_m))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignmentClient) UpdateOneID(id int64) *AssignmentUpdateOne {
	mutation := newAssignmentMutation(c.config, OpUpdateOne, withAssignmentID(id))
	return &AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assignment.
func (c *AssignmentClient) Delete() *AssignmentDelete {
	mutation := newAssignmentMutation(c.config, OpDelete)
	return &AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignmentClient) DeleteOne(_m *Assignment) *AssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignmentClient) DeleteOneID(id int64) *AssignmentDeleteOne {
	builder := c.Delete().Where(assignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignmentDeleteOne{builder}
}

// Query returns a query builder for Assignment.
func (c *AssignmentClient) Query() *AssignmentQuery {
	return &AssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a Assignment entity by its id.
func (c *AssignmentClient) Get(ctx context.Context, id int64) (*Assignment, error) {
	return c.Query().Where(assignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignmentClient) GetX(ctx context.Context, id int64) *Assignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCourse queries the course edge of a Assignment.
func (c *AssignmentClient) QueryCourse(_m *Assignment) *CourseQuery {
	query := (&CourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assignment.Table, assignment.FieldID, id),
			sqlgraph.To(course.Table, course.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assignment.CourseTable, assignment.CourseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmissions queries the submissions edge of a Assignment.
func (c *AssignmentClient) QuerySubmissions(_m *Assignment) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assignment.Table, assignment.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assignment.SubmissionsTable, assignment.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmittedFiles queries the submitted_files edge of a Assignment.
func (c *AssignmentClient) QuerySubmittedFiles(_m *Assignment) *SubmittedFileQuery {
	query := (&SubmittedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assignment.Table, assignment.FieldID, id),
			sqlgraph.To(submittedfile.Table, submittedfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assignment.SubmittedFilesTable, assignment.SubmittedFilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssignmentClient) Hooks() []Hook {
	return c.hooks.Assignment
}

// Interceptors returns the client interceptors.
func (c *AssignmentClient) Interceptors() []Interceptor {
	return c.inters.Assignment
}

func (c *AssignmentClient) mutate(ctx context.Context, m *AssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Assignment mutation op: %q", m.Op())
	}
}

// CourseClient is a client for the Course schema.
type CourseClient struct {
	config
}

// NewCourseClient returns a client for the Course from the given config.
func NewCourseClient(c config) *CourseClient {
	return &CourseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `course.Hooks(f(g(h())))`.
func (c *CourseClient) Use(hooks ...Hook) {
	c.hooks.Course = append(c.hooks.Course, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `course.Intercept(f(g(h())))`.
func (c *CourseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Course = append(c.inters.Course, interceptors...)
}

// Create returns a builder for creating a Course entity.
func (c *CourseClient) Create() *CourseCreate {
	mutation := newCourseMutation(c.config, OpCreate)
	return &CourseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Course entities.
func (c *CourseClient) CreateBulk(builders ...*CourseCreate) *CourseCreateBulk {
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CourseClient) MapCreateBulk(slice any, setFunc func(*CourseCreate, int)) *CourseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CourseCreateBulk{err: fmt.Errorf("calling to CourseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CourseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CourseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Course.
func (c *CourseClient) Update() *CourseUpdate {
	mutation := newCourseMutation(c.config, OpUpdate)
	return &CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CourseClient) UpdateOne(_m *Course) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourse(_m))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CourseClient) UpdateOneID(id int64) *CourseUpdateOne {
	mutation := newCourseMutation(c.config, OpUpdateOne, withCourseID(id))
	return &CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Course.
func (c *CourseClient) Delete() *CourseDelete {
	mutation := newCourseMutation(c.config, OpDelete)
	return &CourseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CourseClient) DeleteOne(_m *Course) *CourseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CourseClient) DeleteOneID(id int64) *CourseDeleteOne {
	builder := c.Delete().Where(course.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CourseDeleteOne{builder}
}

// Query returns a query builder for Course.
func (c *CourseClient) Query() *CourseQuery {
	return &CourseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCourse},
		inters: c.Interceptors(),
	}
}

// Get returns a Course entity by its id.
func (c *CourseClient) Get(ctx context.Context, id int64) (*Course, error) {
	return c.Query().Where(course.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CourseClient) GetX(ctx context.Context, id int64) *Course {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroups queries the groups edge of a Course.
func (c *CourseClient) QueryGroups(_m *Course) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(course.Table, course.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, course.GroupsTable, course.GroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipants queries the participants edge of a Course.
func (c *CourseClient) QueryParticipants(_m *Course) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(course.Table, course.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, course.ParticipantsTable, course.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignments queries the assignments edge of a Course.
func (c *CourseClient) QueryAssignments(_m *Course) *AssignmentQuery {
	query := (&AssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(course.Table, course.FieldID, id),
			sqlgraph.To(assignment.Table, assignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, course.AssignmentsTable, course.AssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CourseClient) Hooks() []Hook {
	return c.hooks.Course
}

// Interceptors returns the client interceptors.
func (c *CourseClient) Interceptors() []Interceptor {
	return c.inters.Course
}

func (c *CourseClient) mutate(ctx context.Context, m *CourseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CourseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CourseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CourseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Course mutation op: %q", m.Op())
	}
}

// FileComparisonClient is a client for the FileComparison schema.
type FileComparisonClient struct {
	config
}

// NewFileComparisonClient returns a client for the FileComparison from the given config.
func NewFileComparisonClient(c config) *FileComparisonClient {
	return &FileComparisonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filecomparison.Hooks(f(g(h())))`.
func (c *FileComparisonClient) Use(hooks ...Hook) {
	c.hooks.FileComparison = append(c.hooks.FileComparison, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filecomparison.Intercept(f(g(h())))`.
func (c *FileComparisonClient) Intercept(interceptors ...Interceptor) {
	c.inters.FileComparison = append(c.inters.FileComparison, interceptors...)
}

// Create returns a builder for creating a FileComparison entity.
func (c *FileComparisonClient) Create() *FileComparisonCreate {
	mutation := newFileComparisonMutation(c.config, OpCreate)
	return &FileComparisonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FileComparison entities.
func (c *FileComparisonClient) CreateBulk(builders ...*FileComparisonCreate) *FileComparisonCreateBulk {
	return &FileComparisonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileComparisonClient) MapCreateBulk(slice any, setFunc func(*FileComparisonCreate, int)) *FileComparisonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileComparisonCreateBulk{err: fmt.Errorf("calling to FileComparisonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileComparisonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileComparisonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FileComparison.
func (c *FileComparisonClient) Update() *FileComparisonUpdate {
	mutation := newFileComparisonMutation(c.config, OpUpdate)
	return &FileComparisonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileComparisonClient) UpdateOne(_m *FileComparison) *FileComparisonUpdateOne {
	mutation := newFileComparisonMutation(c.config, OpUpdateOne, withFileComparison(_m))
	return &FileComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileComparisonClient) UpdateOneID(id int) *FileComparisonUpdateOne {
	mutation := newFileComparisonMutation(c.config, OpUpdateOne, withFileComparisonID(id))
	return &FileComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FileComparison.
func (c *FileComparisonClient) Delete() *FileComparisonDelete {
	mutation := newFileComparisonMutation(c.config, OpDelete)
	return &FileComparisonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileComparisonClient) DeleteOne(_m *FileComparison) *FileComparisonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileComparisonClient) DeleteOneID(id int) *FileComparisonDeleteOne {
	builder := c.Delete().Where(filecomparison.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileComparisonDeleteOne{builder}
}

// Query returns a query builder for FileComparison.
func (c *FileComparisonClient) Query() *FileComparisonQuery {
	return &FileComparisonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFileComparison},
		inters: c.Interceptors(),
	}
}

// Get returns a FileComparison entity by its id.
func (c *FileComparisonClient) Get(ctx context.Context, id int) (*FileComparison, error) {
	return c.Query().Where(filecomparison.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileComparisonClient) GetX(ctx context.Context, id int) *FileComparison {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOlderFile queries the older_file edge of a FileComparison.
func (c *FileComparisonClient) QueryOlderFile(_m *FileComparison) *SubmittedFileQuery {
	query := (&SubmittedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filecomparison.Table, filecomparison.FieldID, id),
			sqlgraph.To(submittedfile.Table, submittedfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, filecomparison.OlderFileTable, filecomparison.OlderFileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNewerFile queries the newer_file edge of a FileComparison.
func (c *FileComparisonClient) QueryNewerFile(_m *FileComparison) *SubmittedFileQuery {
	query := (&SubmittedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filecomparison.Table, filecomparison.FieldID, id),
			sqlgraph.To(submittedfile.Table, submittedfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, filecomparison.NewerFileTable, filecomparison.NewerFileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FileComparisonClient) Hooks() []Hook {
	return c.hooks.FileComparison
}

// Interceptors returns the client interceptors.
func (c *FileComparisonClient) Interceptors() []Interceptor {
	return c.inters.FileComparison
}

func (c *FileComparisonClient) mutate(ctx context.Context, m *FileComparisonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileComparisonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileComparisonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileComparisonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileComparisonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FileComparison mutation op: %q", m.Op())
	}
}

// FileDigestClient is a client for the FileDigest schema.
type FileDigestClient struct {
	config
}

// NewFileDigestClient returns a client for the FileDigest from the given config.
func NewFileDigestClient(c config) *FileDigestClient {
	return &FileDigestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filedigest.Hooks(f(g(h())))`.
func (c *FileDigestClient) Use(hooks ...Hook) {
	c.hooks.FileDigest = append(c.hooks.FileDigest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filedigest.Intercept(f(g(h())))`.
func (c *FileDigestClient) Intercept(interceptors ...Interceptor) {
	c.inters.FileDigest = append(c.inters.FileDigest, interceptors...)
}

// Create returns a builder for creating a FileDigest entity.
func (c *FileDigestClient) Create() *FileDigestCreate {
	mutation := newFileDigestMutation(c.config, OpCreate)
	return &FileDigestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FileDigest entities.
func (c *FileDigestClient) CreateBulk(builders ...*FileDigestCreate) *FileDigestCreateBulk {
	return &FileDigestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileDigestClient) MapCreateBulk(slice any, setFunc func(*FileDigestCreate, int)) *FileDigestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileDigestCreateBulk{err: fmt.Errorf("calling to FileDigestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileDigestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileDigestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FileDigest.
func (c *FileDigestClient) Update() *FileDigestUpdate {
	mutation := newFileDigestMutation(c.config, OpUpdate)
	return &FileDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileDigestClient) UpdateOne(_m *FileDigest) *FileDigestUpdateOne {
	mutation := newFileDigestMutation(c.config, OpUpdateOne, withFileDigest(_m))
	return &FileDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileDigestClient) UpdateOneID(id int) *FileDigestUpdateOne {
	mutation := newFileDigestMutation(c.config, OpUpdateOne, withFileDigestID(id))
	return &FileDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FileDigest.
func (c *FileDigestClient) Delete() *FileDigestDelete {
	mutation := newFileDigestMutation(c.config, OpDelete)
	return &FileDigestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileDigestClient) DeleteOne(_m *FileDigest) *FileDigestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileDigestClient) DeleteOneID(id int) *FileDigestDeleteOne {
	builder := c.Delete().Where(filedigest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileDigestDeleteOne{builder}
}

// Query returns a query builder for FileDigest.
func (c *FileDigestClient) Query() *FileDigestQuery {
	return &FileDigestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFileDigest},
		inters: c.Interceptors(),
	}
}

// Get returns a FileDigest entity by its id.
func (c *FileDigestClient) Get(ctx context.Context, id int) (*FileDigest, error) {
	return c.Query().Where(filedigest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileDigestClient) GetX(ctx context.Context, id int) *FileDigest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a FileDigest.
func (c *FileDigestClient) QueryFile(_m *FileDigest) *SubmittedFileQuery {
	query := (&SubmittedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filedigest.Table, filedigest.FieldID, id),
			sqlgraph.To(submittedfile.Table, submittedfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, filedigest.FileTable, filedigest.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FileDigestClient) Hooks() []Hook {
	return c.hooks.FileDigest
}

// Interceptors returns the client interceptors.
func (c *FileDigestClient) Interceptors() []Interceptor {
	return c.inters.FileDigest
}

func (c *FileDigestClient) mutate(ctx context.Context, m *FileDigestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileDigestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileDigestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FileDigest mutation op: %q", m.Op())
	}
}

// FileWarningClient is a client for the FileWarning schema.
type FileWarningClient struct {
	config
}

// NewFileWarningClient returns a client for the FileWarning from the given config.
func NewFileWarningClient(c config) *FileWarningClient {
	return &FileWarningClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filewarning.Hooks(f(g(h())))`.
func (c *FileWarningClient) Use(hooks ...Hook) {
	c.hooks.FileWarning = append(c.hooks.FileWarning, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filewarning.Intercept(f(g(h())))`.
func (c *FileWarningClient) Intercept(interceptors ...Interceptor) {
	c.inters.FileWarning = append(c.inters.FileWarning, interceptors...)
}

// Create returns a builder for creating a FileWarning entity.
func (c *FileWarningClient) Create() *FileWarningCreate {
	mutation := newFileWarningMutation(c.config, OpCreate)
	return &FileWarningCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FileWarning entities.
func (c *FileWarningClient) CreateBulk(builders ...*FileWarningCreate) *FileWarningCreateBulk {
	return &FileWarningCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileWarningClient) MapCreateBulk(slice any, setFunc func(*FileWarningCreate, int)) *FileWarningCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileWarningCreateBulk{err: fmt.Errorf("calling to FileWarningClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileWarningCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileWarningCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FileWarning.
func (c *FileWarningClient) Update() *FileWarningUpdate {
	mutation := newFileWarningMutation(c.config, OpUpdate)
	return &FileWarningUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileWarningClient) UpdateOne(_m *FileWarning) *FileWarningUpdateOne {
	mutation := newFileWarningMutation(c.config, OpUpdateOne, withFileWarning(_m))
	return &FileWarningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileWarningClient) UpdateOneID(id int) *FileWarningUpdateOne {
	mutation := newFileWarningMutation(c.config, OpUpdateOne, withFileWarningID(id))
	return &FileWarningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FileWarning.
func (c *FileWarningClient) Delete() *FileWarningDelete {
	mutation := newFileWarningMutation(c.config, OpDelete)
	return &FileWarningDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileWarningClient) DeleteOne(_m *FileWarning) *FileWarningDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileWarningClient) DeleteOneID(id int) *FileWarningDeleteOne {
	builder := c.Delete().Where(filewarning.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileWarningDeleteOne{builder}
}

// Query returns a query builder for FileWarning.
func (c *FileWarningClient) Query() *FileWarningQuery {
	return &FileWarningQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFileWarning},
		inters: c.Interceptors(),
	}
}

// Get returns a FileWarning entity by its id.
func (c *FileWarningClient) Get(ctx context.Context, id int) (*FileWarning, error) {
	return c.Query().Where(filewarning.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileWarningClient) GetX(ctx context.Context, id int) *FileWarning {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a FileWarning.
func (c *FileWarningClient) QueryFile(_m *FileWarning) *SubmittedFileQuery {
	query := (&SubmittedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(filewarning.Table, filewarning.FieldID, id),
			sqlgraph.To(submittedfile.Table, submittedfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, filewarning.FileTable, filewarning.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FileWarningClient) Hooks() []Hook {
	return c.hooks.FileWarning
}

// Interceptors returns the client interceptors.
func (c *FileWarningClient) Interceptors() []Interceptor {
	return c.inters.FileWarning
}

func (c *FileWarningClient) mutate(ctx context.Context, m *FileWarningMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileWarningCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileWarningUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileWarningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileWarningDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FileWarning mutation op: %q", m.Op())
	}
}

// GroupClient is a client for the Group schema.
type GroupClient struct {
	config
}

// NewGroupClient returns a client for the Group from the given config.
func NewGroupClient(c config) *GroupClient {
	return &GroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `group.Hooks(f(g(h())))`.
func (c *GroupClient) Use(hooks ...Hook) {
	c.hooks.Group = append(c.hooks.Group, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `group.Intercept(f(g(h())))`.
func (c *GroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.Group = append(c.inters.Group, interceptors...)
}

// Create returns a builder for creating a Group entity.
func (c *GroupClient) Create() *GroupCreate {
	mutation := newGroupMutation(c.config, OpCreate)
	return &GroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Group entities.
func (c *GroupClient) CreateBulk(builders ...*GroupCreate) *GroupCreateBulk {
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupClient) MapCreateBulk(slice any, setFunc func(*GroupCreate, int)) *GroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupCreateBulk{err: fmt.Errorf("calling to GroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Group.
func (c *GroupClient) Update() *GroupUpdate {
	mutation := newGroupMutation(c.config, OpUpdate)
	return &GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupClient) UpdateOne(_m *Group) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroup(_m))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupClient) UpdateOneID(id int64) *GroupUpdateOne {
	mutation := newGroupMutation(c.config, OpUpdateOne, withGroupID(id))
	return &GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Group.
func (c *GroupClient) Delete() *GroupDelete {
	mutation := newGroupMutation(c.config, OpDelete)
	return &GroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupClient) DeleteOne(_m *Group) *GroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupClient) DeleteOneID(id int64) *GroupDeleteOne {
	builder := c.Delete().Where(group.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDeleteOne{builder}
}

// Query returns a query builder for Group.
func (c *GroupClient) Query() *GroupQuery {
	return &GroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a Group entity by its id.
func (c *GroupClient) Get(ctx context.Context, id int64) (*Group, error) {
	return c.Query().Where(group.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupClient) GetX(ctx context.Context, id int64) *Group {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCourse queries the course edge of a Group.
func (c *GroupClient) QueryCourse(_m *Group) *CourseQuery {
	query := (&CourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(course.Table, course.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, group.CourseTable, group.CourseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipantGroups queries the participant_groups edge of a Group.
func (c *GroupClient) QueryParticipantGroups(_m *Group) *ParticipantGroupQuery {
	query := (&ParticipantGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(group.Table, group.FieldID, id),
			sqlgraph.To(participantgroup.Table, participantgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, group.ParticipantGroupsTable, group.ParticipantGroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GroupClient) Hooks() []Hook {
	return c.hooks.Group
}

// Interceptors returns the client interceptors.
func (c *GroupClient) Interceptors() []Interceptor {
	return c.inters.Group
}

func (c *GroupClient) mutate(ctx context.Context, m *GroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Group mutation op: %q", m.Op())
	}
}

// ParticipantClient is a client for the Participant schema.
type ParticipantClient struct {
	config
}

// NewParticipantClient returns a client for the Participant from the given config.
func NewParticipantClient(c config) *ParticipantClient {
	return &ParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `participant.Hooks(f(g(h())))`.
func (c *ParticipantClient) Use(hooks ...Hook) {
	c.hooks.Participant = append(c.hooks.Participant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `participant.Intercept(f(g(h())))`.
func (c *ParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Participant = append(c.inters.Participant, interceptors...)
}

// Create returns a builder for creating a Participant entity.
func (c *ParticipantClient) Create() *ParticipantCreate {
	mutation := newParticipantMutation(c.config, OpCreate)
	return &ParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Participant entities.
func (c *ParticipantClient) CreateBulk(builders ...*ParticipantCreate) *ParticipantCreateBulk {
	return &ParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParticipantClient) MapCreateBulk(slice any, setFunc func(*ParticipantCreate, int)) *ParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParticipantCreateBulk{err: fmt.Errorf("calling to ParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Participant.
func (c *ParticipantClient) Update() *ParticipantUpdate {
	mutation := newParticipantMutation(c.config, OpUpdate)
	return &ParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParticipantClient) UpdateOne(_m *Participant) *ParticipantUpdateOne {
	mutation := newParticipantMutation(c.config, OpUpdateOne, withParticipant(_m))
	return &ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParticipantClient) UpdateOneID(id int) *ParticipantUpdateOne {
	mutation := newParticipantMutation(c.config, OpUpdateOne, withParticipantID(id))
	return &ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Participant.
func (c *ParticipantClient) Delete() *ParticipantDelete {
	mutation := newParticipantMutation(c.config, OpDelete)
	return &ParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParticipantClient) DeleteOne(_m *Participant) *ParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParticipantClient) DeleteOneID(id int) *ParticipantDeleteOne {
	builder := c.Delete().Where(participant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParticipantDeleteOne{builder}
}

// Query returns a query builder for Participant.
func (c *ParticipantClient) Query() *ParticipantQuery {
	return &ParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a Participant entity by its id.
func (c *ParticipantClient) Get(ctx context.Context, id int) (*Participant, error) {
	return c.Query().Where(participant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParticipantClient) GetX(ctx context.Context, id int) *Participant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCourse queries the course edge of a Participant.
func (c *ParticipantClient) QueryCourse(_m *Participant) *CourseQuery {
	query := (&CourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(course.Table, course.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participant.CourseTable, participant.CourseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a Participant.
func (c *ParticipantClient) QueryUser(_m *Participant) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participant.UserTable, participant.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoles queries the roles edge of a Participant.
func (c *ParticipantClient) QueryRoles(_m *Participant) *ParticipantRoleQuery {
	query := (&ParticipantRoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(participantrole.Table, participantrole.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.RolesTable, participant.RolesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroupMemberships queries the group_memberships edge of a Participant.
func (c *ParticipantClient) QueryGroupMemberships(_m *Participant) *ParticipantGroupQuery {
	query := (&ParticipantGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(participantgroup.Table, participantgroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.GroupMembershipsTable, participant.GroupMembershipsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParticipantClient) Hooks() []Hook {
	return c.hooks.Participant
}

// Interceptors returns the client interceptors.
func (c *ParticipantClient) Interceptors() []Interceptor {
	return c.inters.Participant
}

func (c *ParticipantClient) mutate(ctx context.Context, m *ParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Participant mutation op: %q", m.Op())
	}
}

// ParticipantGroupClient is a client for the ParticipantGroup schema.
type ParticipantGroupClient struct {
	config
}

// NewParticipantGroupClient returns a client for the ParticipantGroup from the given config.
func NewParticipantGroupClient(c config) *ParticipantGroupClient {
	return &ParticipantGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `participantgroup.Hooks(f(g(h())))`.
func (c *ParticipantGroupClient) Use(hooks ...Hook) {
	c.hooks.ParticipantGroup = append(c.hooks.ParticipantGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `participantgroup.Intercept(f(g(h())))`.
func (c *ParticipantGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParticipantGroup = append(c.inters.ParticipantGroup, interceptors...)
}

// Create returns a builder for creating a ParticipantGroup entity.
func (c *ParticipantGroupClient) Create() *ParticipantGroupCreate {
	mutation := newParticipantGroupMutation(c.config, OpCreate)
	return &ParticipantGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParticipantGroup entities.
func (c *ParticipantGroupClient) CreateBulk(builders ...*ParticipantGroupCreate) *ParticipantGroupCreateBulk {
	return &ParticipantGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParticipantGroupClient) MapCreateBulk(slice any, setFunc func(*ParticipantGroupCreate, int)) *ParticipantGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParticipantGroupCreateBulk{err: fmt.Errorf("calling to ParticipantGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParticipantGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParticipantGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParticipantGroup.
func (c *ParticipantGroupClient) Update() *ParticipantGroupUpdate {
	mutation := newParticipantGroupMutation(c.config, OpUpdate)
	return &ParticipantGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParticipantGroupClient) UpdateOne(_m *ParticipantGroup) *ParticipantGroupUpdateOne {
	mutation := newParticipantGroupMutation(c.config, OpUpdateOne, withParticipantGroup(_m))
	return &ParticipantGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParticipantGroupClient) UpdateOneID(id int) *ParticipantGroupUpdateOne {
	mutation := newParticipantGroupMutation(c.config, OpUpdateOne, withParticipantGroupID(id))
	return &ParticipantGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParticipantGroup.
func (c *ParticipantGroupClient) Delete() *ParticipantGroupDelete {
	mutation := newParticipantGroupMutation(c.config, OpDelete)
	return &ParticipantGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParticipantGroupClient) DeleteOne(_m *ParticipantGroup) *ParticipantGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParticipantGroupClient) DeleteOneID(id int) *ParticipantGroupDeleteOne {
	builder := c.Delete().Where(participantgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParticipantGroupDeleteOne{builder}
}

// Query returns a query builder for ParticipantGroup.
func (c *ParticipantGroupClient) Query() *ParticipantGroupQuery {
	return &ParticipantGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParticipantGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a ParticipantGroup entity by its id.
func (c *ParticipantGroupClient) Get(ctx context.Context, id int) (*ParticipantGroup, error) {
	return c.Query().Where(participantgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParticipantGroupClient) GetX(ctx context.Context, id int) *ParticipantGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipant queries the participant edge of a ParticipantGroup.
func (c *ParticipantGroupClient) QueryParticipant(_m *ParticipantGroup) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participantgroup.Table, participantgroup.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participantgroup.ParticipantTable, participantgroup.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGroup queries the group edge of a ParticipantGroup.
func (c *ParticipantGroupClient) QueryGroup(_m *ParticipantGroup) *GroupQuery {
	query := (&GroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participantgroup.Table, participantgroup.FieldID, id),
			sqlgraph.To(group.Table, group.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participantgroup.GroupTable, participantgroup.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParticipantGroupClient) Hooks() []Hook {
	return c.hooks.ParticipantGroup
}

// Interceptors returns the client interceptors.
func (c *ParticipantGroupClient) Interceptors() []Interceptor {
	return c.inters.ParticipantGroup
}

func (c *ParticipantGroupClient) mutate(ctx context.Context, m *ParticipantGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParticipantGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParticipantGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParticipantGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParticipantGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParticipantGroup mutation op: %q", m.Op())
	}
}

// ParticipantRoleClient is a client for the ParticipantRole schema.
type ParticipantRoleClient struct {
	config
}

// NewParticipantRoleClient returns a client for the ParticipantRole from the given config.
func NewParticipantRoleClient(c config) *ParticipantRoleClient {
	return &ParticipantRoleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `participantrole.Hooks(f(g(h())))`.
func (c *ParticipantRoleClient) Use(hooks ...Hook) {
	c.hooks.ParticipantRole = append(c.hooks.ParticipantRole, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `participantrole.Intercept(f(g(h())))`.
func (c *ParticipantRoleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParticipantRole = append(c.inters.ParticipantRole, interceptors...)
}

// Create returns a builder for creating a ParticipantRole entity.
func (c *ParticipantRoleClient) Create() *ParticipantRoleCreate {
	mutation := newParticipantRoleMutation(c.config, OpCreate)
	return &ParticipantRoleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParticipantRole entities.
func (c *ParticipantRoleClient) CreateBulk(builders ...*ParticipantRoleCreate) *ParticipantRoleCreateBulk {
	return &ParticipantRoleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParticipantRoleClient) MapCreateBulk(slice any, setFunc func(*ParticipantRoleCreate, int)) *ParticipantRoleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParticipantRoleCreateBulk{err: fmt.Errorf("calling to ParticipantRoleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParticipantRoleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParticipantRoleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParticipantRole.
func (c *ParticipantRoleClient) Update() *ParticipantRoleUpdate {
	mutation := newParticipantRoleMutation(c.config, OpUpdate)
	return &ParticipantRoleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParticipantRoleClient) UpdateOne(_m *ParticipantRole) *ParticipantRoleUpdateOne {
	mutation := newParticipantRoleMutation(c.config, OpUpdateOne, withParticipantRole(_m))
	return &ParticipantRoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParticipantRoleClient) UpdateOneID(id int) *ParticipantRoleUpdateOne {
	mutation := newParticipantRoleMutation(c.config, OpUpdateOne, withParticipantRoleID(id))
	return &ParticipantRoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParticipantRole.
func (c *ParticipantRoleClient) Delete() *ParticipantRoleDelete {
	mutation := newParticipantRoleMutation(c.config, OpDelete)
	return &ParticipantRoleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParticipantRoleClient) DeleteOne(_m *ParticipantRole) *ParticipantRoleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParticipantRoleClient) DeleteOneID(id int) *ParticipantRoleDeleteOne {
	builder := c.Delete().Where(participantrole.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParticipantRoleDeleteOne{builder}
}

// Query returns a query builder for ParticipantRole.
func (c *ParticipantRoleClient) Query() *ParticipantRoleQuery {
	return &ParticipantRoleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParticipantRole},
		inters: c.Interceptors(),
	}
}

// Get returns a ParticipantRole entity by its id.
func (c *ParticipantRoleClient) Get(ctx context.Context, id int) (*ParticipantRole, error) {
	return c.Query().Where(participantrole.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParticipantRoleClient) GetX(ctx context.Context, id int) *ParticipantRole {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipant queries the participant edge of a ParticipantRole.
func (c *ParticipantRoleClient) QueryParticipant(_m *ParticipantRole) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participantrole.Table, participantrole.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participantrole.ParticipantTable, participantrole.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRole queries the role edge of a ParticipantRole.
func (c *ParticipantRoleClient) QueryRole(_m *ParticipantRole) *RoleQuery {
	query := (&RoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participantrole.Table, participantrole.FieldID, id),
			sqlgraph.To(role.Table, role.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participantrole.RoleTable, participantrole.RoleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParticipantRoleClient) Hooks() []Hook {
	return c.hooks.ParticipantRole
}

// Interceptors returns the client interceptors.
func (c *ParticipantRoleClient) Interceptors() []Interceptor {
	return c.inters.ParticipantRole
}

func (c *ParticipantRoleClient) mutate(ctx context.Context, m *ParticipantRoleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParticipantRoleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParticipantRoleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParticipantRoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParticipantRoleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParticipantRole mutation op: %q", m.Op())
	}
}

// RoleClient is a client for the Role schema.
type RoleClient struct {
	config
}

// NewRoleClient returns a client for the Role from the given config.
func NewRoleClient(c config) *RoleClient {
	return &RoleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `role.Hooks(f(g(h())))`.
func (c *RoleClient) Use(hooks ...Hook) {
	c.hooks.Role = append(c.hooks.Role, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `role.Intercept(f(g(h())))`.
func (c *RoleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Role = append(c.inters.Role, interceptors...)
}

// Create returns a builder for creating a Role entity.
func (c *RoleClient) Create() *RoleCreate {
	mutation := newRoleMutation(c.config, OpCreate)
	return &RoleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Role entities.
func (c *RoleClient) CreateBulk(builders ...*RoleCreate) *RoleCreateBulk {
	return &RoleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoleClient) MapCreateBulk(slice any, setFunc func(*RoleCreate, int)) *RoleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoleCreateBulk{err: fmt.Errorf("calling to RoleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Role.
func (c *RoleClient) Update() *RoleUpdate {
	mutation := newRoleMutation(c.config, OpUpdate)
	return &RoleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoleClient) UpdateOne(_m *Role) *RoleUpdateOne {
	mutation := newRoleMutation(c.config, OpUpdateOne, withRole(_m))
	return &RoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoleClient) UpdateOneID(id int64) *RoleUpdateOne {
	mutation := newRoleMutation(c.config, OpUpdateOne, withRoleID(id))
	return &RoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Role.
func (c *RoleClient) Delete() *RoleDelete {
	mutation := newRoleMutation(c.config, OpDelete)
	return &RoleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoleClient) DeleteOne(_m *Role) *RoleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoleClient) DeleteOneID(id int64) *RoleDeleteOne {
	builder := c.Delete().Where(role.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoleDeleteOne{builder}
}

// Query returns a query builder for Role.
func (c *RoleClient) Query() *RoleQuery {
	return &RoleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRole},
		inters: c.Interceptors(),
	}
}

// Get returns a Role entity by its id.
func (c *RoleClient) Get(ctx context.Context, id int64) (*Role, error) {
	return c.Query().Where(role.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoleClient) GetX(ctx context.Context, id int64) *Role {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipantRoles queries the participant_roles edge of a Role.
func (c *RoleClient) QueryParticipantRoles(_m *Role) *ParticipantRoleQuery {
	query := (&ParticipantRoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(role.Table, role.FieldID, id),
			sqlgraph.To(participantrole.Table, participantrole.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, role.ParticipantRolesTable, role.ParticipantRolesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoleClient) Hooks() []Hook {
	return c.hooks.Role
}

// Interceptors returns the client interceptors.
func (c *RoleClient) Interceptors() []Interceptor {
	return c.inters.Role
}

func (c *RoleClient) mutate(ctx context.Context, m *RoleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Role mutation op: %q", m.Op())
	}
}

// SubmissionClient is a client for the Submission schema.
type SubmissionClient struct {
	config
}

// NewSubmissionClient returns a client for the Submission from the given config.
func NewSubmissionClient(c config) *SubmissionClient {
	return &SubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submission.Hooks(f(g(h())))`.
func (c *SubmissionClient) Use(hooks ...Hook) {
	c.hooks.Submission = append(c.hooks.Submission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submission.Intercept(f(g(h())))`.
func (c *SubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submission = append(c.inters.Submission, interceptors...)
}

// Create returns a builder for creating a Submission entity.
func (c *SubmissionClient) Create() *SubmissionCreate {
	mutation := newSubmissionMutation(c.config, OpCreate)
	return &SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submission entities.
func (c *SubmissionClient) CreateBulk(builders ...*SubmissionCreate) *SubmissionCreateBulk {
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionClient) MapCreateBulk(slice any, setFunc func(*SubmissionCreate, int)) *SubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionCreateBulk{err: fmt.Errorf("calling to SubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submission.
func (c *SubmissionClient) Update() *SubmissionUpdate {
	mutation := newSubmissionMutation(c.config, OpUpdate)
	return &SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionClient) UpdateOne(_m *Submission) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmission(_m))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionClient) UpdateOneID(id int64) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmissionID(id))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submission.
func (c *SubmissionClient) Delete() *SubmissionDelete {
	mutation := newSubmissionMutation(c.config, OpDelete)
	return &SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionClient) DeleteOne(_m *Submission) *SubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionClient) DeleteOneID(id int64) *SubmissionDeleteOne {
	builder := c.Delete().Where(submission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionDeleteOne{builder}
}

// Query returns a query builder for Submission.
func (c *SubmissionClient) Query() *SubmissionQuery {
	return &SubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a Submission entity by its id.
func (c *SubmissionClient) Get(ctx context.Context, id int64) (*Submission, error) {
	return c.Query().Where(submission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionClient) GetX(ctx context.Context, id int64) *Submission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAssignment queries the assignment edge of a Submission.
func (c *SubmissionClient) QueryAssignment(_m *Submission) *AssignmentQuery {
	query := (&AssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(assignment.Table, assignment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submission.AssignmentTable, submission.AssignmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a Submission.
func (c *SubmissionClient) QueryUser(_m *Submission) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submission.UserTable, submission.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Submission.
func (c *SubmissionClient) QueryFiles(_m *Submission) *SubmittedFileQuery {
	query := (&SubmittedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(submittedfile.Table, submittedfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submission.FilesTable, submission.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionClient) Hooks() []Hook {
	return c.hooks.Submission
}

// Interceptors returns the client interceptors.
func (c *SubmissionClient) Interceptors() []Interceptor {
	return c.inters.Submission
}

func (c *SubmissionClient) mutate(ctx context.Context, m *SubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Submission mutation op: %q", m.Op())
	}
}

// SubmittedFileClient is a client for the SubmittedFile schema.
type SubmittedFileClient struct {
	config
}

// NewSubmittedFileClient returns a client for the SubmittedFile from the given config.
func NewSubmittedFileClient(c config) *SubmittedFileClient {
	return &SubmittedFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submittedfile.Hooks(f(g(h())))`.
func (c *SubmittedFileClient) Use(hooks ...Hook) {
	c.hooks.SubmittedFile = append(c.hooks.SubmittedFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submittedfile.Intercept(f(g(h())))`.
func (c *SubmittedFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmittedFile = append(c.inters.SubmittedFile, interceptors...)
}

// Create returns a builder for creating a SubmittedFile entity.
func (c *SubmittedFileClient) Create() *SubmittedFileCreate {
	mutation := newSubmittedFileMutation(c.config, OpCreate)
	return &SubmittedFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmittedFile entities.
func (c *SubmittedFileClient) CreateBulk(builders ...*SubmittedFileCreate) *SubmittedFileCreateBulk {
	return &SubmittedFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmittedFileClient) MapCreateBulk(slice any, setFunc func(*SubmittedFileCreate, int)) *SubmittedFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmittedFileCreateBulk{err: fmt.Errorf("calling to SubmittedFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmittedFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmittedFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmittedFile.
func (c *SubmittedFileClient) Update() *SubmittedFileUpdate {
	mutation := newSubmittedFileMutation(c.config, OpUpdate)
	return &SubmittedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmittedFileClient) UpdateOne(_m *SubmittedFile) *SubmittedFileUpdateOne {
	mutation := newSubmittedFileMutation(c.config, OpUpdateOne, withSubmittedFile(_m))
	return &SubmittedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmittedFileClient) UpdateOneID(id int) *SubmittedFileUpdateOne {
	mutation := newSubmittedFileMutation(c.config, OpUpdateOne, withSubmittedFileID(id))
	return &SubmittedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmittedFile.
func (c *SubmittedFileClient) Delete() *SubmittedFileDelete {
	mutation := newSubmittedFileMutation(c.config, OpDelete)
	return &SubmittedFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmittedFileClient) DeleteOne(_m *SubmittedFile) *SubmittedFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmittedFileClient) DeleteOneID(id int) *SubmittedFileDeleteOne {
	builder := c.Delete().Where(submittedfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmittedFileDeleteOne{builder}
}

// Query returns a query builder for SubmittedFile.
func (c *SubmittedFileClient) Query() *SubmittedFileQuery {
	return &SubmittedFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmittedFile},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmittedFile entity by its id.
func (c *SubmittedFileClient) Get(ctx context.Context, id int) (*SubmittedFile, error) {
	return c.Query().Where(submittedfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmittedFileClient) GetX(ctx context.Context, id int) *SubmittedFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmission queries the submission edge of a SubmittedFile.
func (c *SubmittedFileClient) QuerySubmission(_m *SubmittedFile) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submittedfile.SubmissionTable, submittedfile.SubmissionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignment queries the assignment edge of a SubmittedFile.
func (c *SubmittedFileClient) QueryAssignment(_m *SubmittedFile) *AssignmentQuery {
	query := (&AssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, id),
			sqlgraph.To(assignment.Table, assignment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submittedfile.AssignmentTable, submittedfile.AssignmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUser queries the user edge of a SubmittedFile.
func (c *SubmittedFileClient) QueryUser(_m *SubmittedFile) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submittedfile.UserTable, submittedfile.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDigests queries the digests edge of a SubmittedFile.
func (c *SubmittedFileClient) QueryDigests(_m *SubmittedFile) *FileDigestQuery {
	query := (&FileDigestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, id),
			sqlgraph.To(filedigest.Table, filedigest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.DigestsTable, submittedfile.DigestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWarnings queries the warnings edge of a SubmittedFile.
func (c *SubmittedFileClient) QueryWarnings(_m *SubmittedFile) *FileWarningQuery {
	query := (&FileWarningClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, id),
			sqlgraph.To(filewarning.Table, filewarning.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.WarningsTable, submittedfile.WarningsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOlderComparisons queries the older_comparisons edge of a SubmittedFile.
func (c *SubmittedFileClient) QueryOlderComparisons(_m *SubmittedFile) *FileComparisonQuery {
	query := (&FileComparisonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, id),
			sqlgraph.To(filecomparison.Table, filecomparison.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.OlderComparisonsTable, submittedfile.OlderComparisonsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNewerComparisons queries the newer_comparisons edge of a SubmittedFile.
func (c *SubmittedFileClient) QueryNewerComparisons(_m *SubmittedFile) *FileComparisonQuery {
	query := (&FileComparisonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedfile.Table, submittedfile.FieldID, id),
			sqlgraph.To(filecomparison.Table, filecomparison.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, submittedfile.NewerComparisonsTable, submittedfile.NewerComparisonsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmittedFileClient) Hooks() []Hook {
	return c.hooks.SubmittedFile
}

// Interceptors returns the client interceptors.
func (c *SubmittedFileClient) Interceptors() []Interceptor {
	return c.inters.SubmittedFile
}

func (c *SubmittedFileClient) mutate(ctx context.Context, m *SubmittedFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmittedFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmittedFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmittedFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmittedFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmittedFile mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int64) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int64) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int64) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int64) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipants queries the participants edge of a User.
func (c *UserClient) QueryParticipants(_m *User) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ParticipantsTable, user.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmissions queries the submissions edge of a User.
func (c *UserClient) QuerySubmissions(_m *User) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SubmissionsTable, user.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmittedFiles queries the submitted_files edge of a User.
func (c *UserClient) QuerySubmittedFiles(_m *User) *SubmittedFileQuery {
	query := (&SubmittedFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(submittedfile.Table, submittedfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SubmittedFilesTable, user.SubmittedFilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Assignment, Course, FileComparison, FileDigest, FileWarning, Group, Participant,
		ParticipantGroup, ParticipantRole, Role, Submission, SubmittedFile,
		User []ent.Hook
	}
	inters struct {
		Assignment, Course, FileComparison, FileDigest, FileWarning, Group, Participant,
		ParticipantGroup, ParticipantRole, Role, Submission, SubmittedFile,
		User []ent.Interceptor
	}
)
