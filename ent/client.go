// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/skilldrill/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/gatewaycallevent"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
	"github.com/abhisek/skilldrill/ent/reviewevent"
	"github.com/abhisek/skilldrill/ent/sessionevent"
	"github.com/abhisek/skilldrill/ent/submissionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GatewayCallEvent is the client for interacting with the GatewayCallEvent builders.
	GatewayCallEvent *GatewayCallEventClient
	// ReadingSnapshot is the client for interacting with the ReadingSnapshot builders.
	ReadingSnapshot *ReadingSnapshotClient
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// SubmissionEvent is the client for interacting with the SubmissionEvent builders.
	SubmissionEvent *SubmissionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GatewayCallEvent = NewGatewayCallEventClient(c.config)
	c.ReadingSnapshot = NewReadingSnapshotClient(c.config)
	c.ReviewEvent = NewReviewEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.SubmissionEvent = NewSubmissionEventClient(c.config)
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
		GatewayCallEvent: NewGatewayCallEventClient(cfg),
		ReadingSnapshot:  NewReadingSnapshotClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SessionEvent:     NewSessionEventClient(cfg),
		SubmissionEvent:  NewSubmissionEventClient(cfg),
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
		GatewayCallEvent: NewGatewayCallEventClient(cfg),
		ReadingSnapshot:  NewReadingSnapshotClient(cfg),
		ReviewEvent:      NewReviewEventClient(cfg),
		SessionEvent:     NewSessionEventClient(cfg),
		SubmissionEvent:  NewSubmissionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GatewayCallEvent.
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
	c.GatewayCallEvent.Use(hooks...)
	c.ReadingSnapshot.Use(hooks...)
	c.ReviewEvent.Use(hooks...)
	c.SessionEvent.Use(hooks...)
	c.SubmissionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GatewayCallEvent.Intercept(interceptors...)
	c.ReadingSnapshot.Intercept(interceptors...)
	c.ReviewEvent.Intercept(interceptors...)
	c.SessionEvent.Intercept(interceptors...)
	c.SubmissionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GatewayCallEventMutation:
		return c.GatewayCallEvent.mutate(ctx, m)
	case *ReadingSnapshotMutation:
		return c.ReadingSnapshot.mutate(ctx, m)
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *SubmissionEventMutation:
		return c.SubmissionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GatewayCallEventClient is a client for the GatewayCallEvent schema.
type GatewayCallEventClient struct {
	config
}

// NewGatewayCallEventClient returns a client for the GatewayCallEvent from the given config.
func NewGatewayCallEventClient(c config) *GatewayCallEventClient {
	return &GatewayCallEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gatewaycallevent.Hooks(f(g(h())))`.
func (c *GatewayCallEventClient) Use(hooks ...Hook) {
	c.hooks.GatewayCallEvent = append(c.hooks.GatewayCallEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gatewaycallevent.Intercept(f(g(h())))`.
func (c *GatewayCallEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.GatewayCallEvent = append(c.inters.GatewayCallEvent, interceptors...)
}

// Create returns a builder for creating a GatewayCallEvent entity.
func (c *GatewayCallEventClient) Create() *GatewayCallEventCreate {
	mutation := newGatewayCallEventMutation(c.config, OpCreate)
	return &GatewayCallEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GatewayCallEvent entities.
func (c *GatewayCallEventClient) CreateBulk(builders ...*GatewayCallEventCreate) *GatewayCallEventCreateBulk {
	return &GatewayCallEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GatewayCallEventClient) MapCreateBulk(slice any, setFunc func(*GatewayCallEventCreate, int)) *GatewayCallEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GatewayCallEventCreateBulk{err: fmt.Errorf("calling to GatewayCallEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GatewayCallEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GatewayCallEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GatewayCallEvent.
func (c *GatewayCallEventClient) Update() *GatewayCallEventUpdate {
	mutation := newGatewayCallEventMutation(c.config, OpUpdate)
	return &GatewayCallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GatewayCallEventClient) UpdateOne(_m *GatewayCallEvent) *GatewayCallEventUpdateOne {
	mutation := newGatewayCallEventMutation(c.config, OpUpdateOne, withGatewayCallEvent(_m))
	return &GatewayCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GatewayCallEventClient) UpdateOneID(id int) *GatewayCallEventUpdateOne {
	mutation := newGatewayCallEventMutation(c.config, OpUpdateOne, withGatewayCallEventID(id))
	return &GatewayCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GatewayCallEvent.
func (c *GatewayCallEventClient) Delete() *GatewayCallEventDelete {
	mutation := newGatewayCallEventMutation(c.config, OpDelete)
	return &GatewayCallEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GatewayCallEventClient) DeleteOne(_m *GatewayCallEvent) *GatewayCallEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GatewayCallEventClient) DeleteOneID(id int) *GatewayCallEventDeleteOne {
	builder := c.Delete().Where(gatewaycallevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GatewayCallEventDeleteOne{builder}
}

// Query returns a query builder for GatewayCallEvent.
func (c *GatewayCallEventClient) Query() *GatewayCallEventQuery {
	return &GatewayCallEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGatewayCallEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a GatewayCallEvent entity by its id.
func (c *GatewayCallEventClient) Get(ctx context.Context, id int) (*GatewayCallEvent, error) {
	return c.Query().Where(gatewaycallevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GatewayCallEventClient) GetX(ctx context.Context, id int) *GatewayCallEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GatewayCallEventClient) Hooks() []Hook {
	return c.hooks.GatewayCallEvent
}

// Interceptors returns the client interceptors.
func (c *GatewayCallEventClient) Interceptors() []Interceptor {
	return c.inters.GatewayCallEvent
}

func (c *GatewayCallEventClient) mutate(ctx context.Context, m *GatewayCallEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GatewayCallEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GatewayCallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GatewayCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GatewayCallEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GatewayCallEvent mutation op: %q", m.Op())
	}
}

// ReadingSnapshotClient is a client for the ReadingSnapshot schema.
type ReadingSnapshotClient struct {
	config
}

// NewReadingSnapshotClient returns a client for the ReadingSnapshot from the given config.
func NewReadingSnapshotClient(c config) *ReadingSnapshotClient {
	return &ReadingSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `readingsnapshot.Hooks(f(g(h())))`.
func (c *ReadingSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ReadingSnapshot = append(c.hooks.ReadingSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `readingsnapshot.Intercept(f(g(h())))`.
func (c *ReadingSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReadingSnapshot = append(c.inters.ReadingSnapshot, interceptors...)
}

// Create returns a builder for creating a ReadingSnapshot entity.
func (c *ReadingSnapshotClient) Create() *ReadingSnapshotCreate {
	mutation := newReadingSnapshotMutation(c.config, OpCreate)
	return &ReadingSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReadingSnapshot entities.
func (c *ReadingSnapshotClient) CreateBulk(builders ...*ReadingSnapshotCreate) *ReadingSnapshotCreateBulk {
	return &ReadingSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReadingSnapshotClient) MapCreateBulk(slice any, setFunc func(*ReadingSnapshotCreate, int)) *ReadingSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReadingSnapshotCreateBulk{err: fmt.Errorf("calling to ReadingSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReadingSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReadingSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReadingSnapshot.
func (c *ReadingSnapshotClient) Update() *ReadingSnapshotUpdate {
	mutation := newReadingSnapshotMutation(c.config, OpUpdate)
	return &ReadingSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReadingSnapshotClient) UpdateOne(_m *ReadingSnapshot) *ReadingSnapshotUpdateOne {
	mutation := newReadingSnapshotMutation(c.config, OpUpdateOne, withReadingSnapshot(_m))
	return &ReadingSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReadingSnapshotClient) UpdateOneID(id int) *ReadingSnapshotUpdateOne {
	mutation := newReadingSnapshotMutation(c.config, OpUpdateOne, withReadingSnapshotID(id))
	return &ReadingSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReadingSnapshot.
func (c *ReadingSnapshotClient) Delete() *ReadingSnapshotDelete {
	mutation := newReadingSnapshotMutation(c.config, OpDelete)
	return &ReadingSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReadingSnapshotClient) DeleteOne(_m *ReadingSnapshot) *ReadingSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReadingSnapshotClient) DeleteOneID(id int) *ReadingSnapshotDeleteOne {
	builder := c.Delete().Where(readingsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReadingSnapshotDeleteOne{builder}
}

// Query returns a query builder for ReadingSnapshot.
func (c *ReadingSnapshotClient) Query() *ReadingSnapshotQuery {
	return &ReadingSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReadingSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ReadingSnapshot entity by its id.
func (c *ReadingSnapshotClient) Get(ctx context.Context, id int) (*ReadingSnapshot, error) {
	return c.Query().Where(readingsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReadingSnapshotClient) GetX(ctx context.Context, id int) *ReadingSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReadingSnapshotClient) Hooks() []Hook {
	return c.hooks.ReadingSnapshot
}

// Interceptors returns the client interceptors.
func (c *ReadingSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ReadingSnapshot
}

func (c *ReadingSnapshotClient) mutate(ctx context.Context, m *ReadingSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReadingSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReadingSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReadingSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReadingSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReadingSnapshot mutation op: %q", m.Op())
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// SubmissionEventClient is a client for the SubmissionEvent schema.
type SubmissionEventClient struct {
	config
}

// NewSubmissionEventClient returns a client for the SubmissionEvent from the given config.
func NewSubmissionEventClient(c config) *SubmissionEventClient {
	return &SubmissionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submissionevent.Hooks(f(g(h())))`.
func (c *SubmissionEventClient) Use(hooks ...Hook) {
	c.hooks.SubmissionEvent = append(c.hooks.SubmissionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submissionevent.Intercept(f(g(h())))`.
func (c *SubmissionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmissionEvent = append(c.inters.SubmissionEvent, interceptors...)
}

// Create returns a builder for creating a SubmissionEvent entity.
func (c *SubmissionEventClient) Create() *SubmissionEventCreate {
	mutation := newSubmissionEventMutation(c.config, OpCreate)
	return &SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmissionEvent entities.
func (c *SubmissionEventClient) CreateBulk(builders ...*SubmissionEventCreate) *SubmissionEventCreateBulk {
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionEventClient) MapCreateBulk(slice any, setFunc func(*SubmissionEventCreate, int)) *SubmissionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionEventCreateBulk{err: fmt.Errorf("calling to SubmissionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmissionEvent.
func (c *SubmissionEventClient) Update() *SubmissionEventUpdate {
	mutation := newSubmissionEventMutation(c.config, OpUpdate)
	return &SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionEventClient) UpdateOne(_m *SubmissionEvent) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEvent(_m))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionEventClient) UpdateOneID(id int) *SubmissionEventUpdateOne {
	mutation := newSubmissionEventMutation(c.config, OpUpdateOne, withSubmissionEventID(id))
	return &SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmissionEvent.
func (c *SubmissionEventClient) Delete() *SubmissionEventDelete {
	mutation := newSubmissionEventMutation(c.config, OpDelete)
	return &SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionEventClient) DeleteOne(_m *SubmissionEvent) *SubmissionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionEventClient) DeleteOneID(id int) *SubmissionEventDeleteOne {
	builder := c.Delete().Where(submissionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionEventDeleteOne{builder}
}

// Query returns a query builder for SubmissionEvent.
func (c *SubmissionEventClient) Query() *SubmissionEventQuery {
	return &SubmissionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmissionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmissionEvent entity by its id.
func (c *SubmissionEventClient) Get(ctx context.Context, id int) (*SubmissionEvent, error) {
	return c.Query().Where(submissionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionEventClient) GetX(ctx context.Context, id int) *SubmissionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubmissionEventClient) Hooks() []Hook {
	return c.hooks.SubmissionEvent
}

// Interceptors returns the client interceptors.
func (c *SubmissionEventClient) Interceptors() []Interceptor {
	return c.inters.SubmissionEvent
}

func (c *SubmissionEventClient) mutate(ctx context.Context, m *SubmissionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmissionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GatewayCallEvent, ReadingSnapshot, ReviewEvent, SessionEvent,
		SubmissionEvent []ent.Hook
	}
	inters struct {
		GatewayCallEvent, ReadingSnapshot, ReviewEvent, SessionEvent,
		SubmissionEvent []ent.Interceptor
	}
)
