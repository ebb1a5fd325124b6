// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/verba-app/verba/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/verba-app/verba/ent/attempt"
	"github.com/verba-app/verba/ent/dueitem"
	"github.com/verba-app/verba/ent/explaincache"
	"github.com/verba-app/verba/ent/learner"
	"github.com/verba-app/verba/ent/learnerstate"
	"github.com/verba-app/verba/ent/llmrequestevent"
	"github.com/verba-app/verba/ent/placementitem"
	"github.com/verba-app/verba/ent/rule"
	"github.com/verba-app/verba/ent/unitexercise"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// DueItem is the client for interacting with the DueItem builders.
	DueItem *DueItemClient
	// ExplainCache is the client for interacting with the ExplainCache builders.
	ExplainCache *ExplainCacheClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Learner is the client for interacting with the Learner builders.
	Learner *LearnerClient
	// LearnerState is the client for interacting with the LearnerState builders.
	LearnerState *LearnerStateClient
	// PlacementItem is the client for interacting with the PlacementItem builders.
	PlacementItem *PlacementItemClient
	// Rule is the client for interacting with the Rule builders.
	Rule *RuleClient
	// UnitExercise is the client for interacting with the UnitExercise builders.
	UnitExercise *UnitExerciseClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.DueItem = NewDueItemClient(c.config)
	c.ExplainCache = NewExplainCacheClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Learner = NewLearnerClient(c.config)
	c.LearnerState = NewLearnerStateClient(c.config)
	c.PlacementItem = NewPlacementItemClient(c.config)
	c.Rule = NewRuleClient(c.config)
	c.UnitExercise = NewUnitExerciseClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		DueItem:         NewDueItemClient(cfg),
		ExplainCache:    NewExplainCacheClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
		LearnerState:    NewLearnerStateClient(cfg),
		PlacementItem:   NewPlacementItemClient(cfg),
		Rule:            NewRuleClient(cfg),
		UnitExercise:    NewUnitExerciseClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		DueItem:         NewDueItemClient(cfg),
		ExplainCache:    NewExplainCacheClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		Learner:         NewLearnerClient(cfg),
		LearnerState:    NewLearnerStateClient(cfg),
		PlacementItem:   NewPlacementItemClient(cfg),
		Rule:            NewRuleClient(cfg),
		UnitExercise:    NewUnitExerciseClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
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
		c.Attempt, c.DueItem, c.ExplainCache, c.LLMRequestEvent, c.Learner,
		c.LearnerState, c.PlacementItem, c.Rule, c.UnitExercise,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.DueItem, c.ExplainCache, c.LLMRequestEvent, c.Learner,
		c.LearnerState, c.PlacementItem, c.Rule, c.UnitExercise,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *DueItemMutation:
		return c.DueItem.mutate(ctx, m)
	case *ExplainCacheMutation:
		return c.ExplainCache.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LearnerMutation:
		return c.Learner.mutate(ctx, m)
	case *LearnerStateMutation:
		return c.LearnerState.mutate(ctx, m)
	case *PlacementItemMutation:
		return c.PlacementItem.mutate(ctx, m)
	case *RuleMutation:
		return c.Rule.mutate(ctx, m)
	case *UnitExerciseMutation:
		return c.UnitExercise.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id int) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id int) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id int) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id int) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// DueItemClient is a client for the DueItem schema.
type DueItemClient struct {
	config
}

// NewDueItemClient returns a client for the DueItem from the given config.
func NewDueItemClient(c config) *DueItemClient {
	return &DueItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dueitem.Hooks(f(g(h())))`.
func (c *DueItemClient) Use(hooks ...Hook) {
	c.hooks.DueItem = append(c.hooks.DueItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dueitem.Intercept(f(g(h())))`.
func (c *DueItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.DueItem = append(c.inters.DueItem, interceptors...)
}

// Create returns a builder for creating a DueItem entity.
func (c *DueItemClient) Create() *DueItemCreate {
	mutation := newDueItemMutation(c.config, OpCreate)
	return &DueItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DueItem entities.
func (c *DueItemClient) CreateBulk(builders ...*DueItemCreate) *DueItemCreateBulk {
	return &DueItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DueItemClient) MapCreateBulk(slice any, setFunc func(*DueItemCreate, int)) *DueItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DueItemCreateBulk{err: fmt.Errorf("calling to DueItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DueItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DueItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DueItem.
func (c *DueItemClient) Update() *DueItemUpdate {
	mutation := newDueItemMutation(c.config, OpUpdate)
	return &DueItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DueItemClient) UpdateOne(_m *DueItem) *DueItemUpdateOne {
	mutation := newDueItemMutation(c.config, OpUpdateOne, withDueItem(_m))
	return &DueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DueItemClient) UpdateOneID(id int) *DueItemUpdateOne {
	mutation := newDueItemMutation(c.config, OpUpdateOne, withDueItemID(id))
	return &DueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DueItem.
func (c *DueItemClient) Delete() *DueItemDelete {
	mutation := newDueItemMutation(c.config, OpDelete)
	return &DueItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DueItemClient) DeleteOne(_m *DueItem) *DueItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DueItemClient) DeleteOneID(id int) *DueItemDeleteOne {
	builder := c.Delete().Where(dueitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DueItemDeleteOne{builder}
}

// Query returns a query builder for DueItem.
func (c *DueItemClient) Query() *DueItemQuery {
	return &DueItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDueItem},
		inters: c.Interceptors(),
	}
}

// Get returns a DueItem entity by its id.
func (c *DueItemClient) Get(ctx context.Context, id int) (*DueItem, error) {
	return c.Query().Where(dueitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DueItemClient) GetX(ctx context.Context, id int) *DueItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DueItemClient) Hooks() []Hook {
	return c.hooks.DueItem
}

// Interceptors returns the client interceptors.
func (c *DueItemClient) Interceptors() []Interceptor {
	return c.inters.DueItem
}

func (c *DueItemClient) mutate(ctx context.Context, m *DueItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DueItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DueItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DueItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DueItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DueItem mutation op: %q", m.Op())
	}
}

// ExplainCacheClient is a client for the ExplainCache schema.
type ExplainCacheClient struct {
	config
}

// NewExplainCacheClient returns a client for the ExplainCache from the given config.
func NewExplainCacheClient(c config) *ExplainCacheClient {
	return &ExplainCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `explaincache.Hooks(f(g(h())))`.
func (c *ExplainCacheClient) Use(hooks ...Hook) {
	c.hooks.ExplainCache = append(c.hooks.ExplainCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `explaincache.Intercept(f(g(h())))`.
func (c *ExplainCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExplainCache = append(c.inters.ExplainCache, interceptors...)
}

// Create returns a builder for creating a ExplainCache entity.
func (c *ExplainCacheClient) Create() *ExplainCacheCreate {
	mutation := newExplainCacheMutation(c.config, OpCreate)
	return &ExplainCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExplainCache entities.
func (c *ExplainCacheClient) CreateBulk(builders ...*ExplainCacheCreate) *ExplainCacheCreateBulk {
	return &ExplainCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExplainCacheClient) MapCreateBulk(slice any, setFunc func(*ExplainCacheCreate, int)) *ExplainCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExplainCacheCreateBulk{err: fmt.Errorf("calling to ExplainCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExplainCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExplainCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExplainCache.
func (c *ExplainCacheClient) Update() *ExplainCacheUpdate {
	mutation := newExplainCacheMutation(c.config, OpUpdate)
	return &ExplainCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExplainCacheClient) UpdateOne(_m *ExplainCache) *ExplainCacheUpdateOne {
	mutation := newExplainCacheMutation(c.config, OpUpdateOne, withExplainCache(_m))
	return &ExplainCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExplainCacheClient) UpdateOneID(id int) *ExplainCacheUpdateOne {
	mutation := newExplainCacheMutation(c.config, OpUpdateOne, withExplainCacheID(id))
	return &ExplainCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExplainCache.
func (c *ExplainCacheClient) Delete() *ExplainCacheDelete {
	mutation := newExplainCacheMutation(c.config, OpDelete)
	return &ExplainCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExplainCacheClient) DeleteOne(_m *ExplainCache) *ExplainCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExplainCacheClient) DeleteOneID(id int) *ExplainCacheDeleteOne {
	builder := c.Delete().Where(explaincache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExplainCacheDeleteOne{builder}
}

// Query returns a query builder for ExplainCache.
func (c *ExplainCacheClient) Query() *ExplainCacheQuery {
	return &ExplainCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExplainCache},
		inters: c.Interceptors(),
	}
}

// Get returns a ExplainCache entity by its id.
func (c *ExplainCacheClient) Get(ctx context.Context, id int) (*ExplainCache, error) {
	return c.Query().Where(explaincache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExplainCacheClient) GetX(ctx context.Context, id int) *ExplainCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExplainCacheClient) Hooks() []Hook {
	return c.hooks.ExplainCache
}

// Interceptors returns the client interceptors.
func (c *ExplainCacheClient) Interceptors() []Interceptor {
	return c.inters.ExplainCache
}

func (c *ExplainCacheClient) mutate(ctx context.Context, m *ExplainCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExplainCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExplainCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExplainCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExplainCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExplainCache mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LearnerClient is a client for the Learner schema.
type LearnerClient struct {
	config
}

// NewLearnerClient returns a client for the Learner from the given config.
func NewLearnerClient(c config) *LearnerClient {
	return &LearnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learner.Hooks(f(g(h())))`.
func (c *LearnerClient) Use(hooks ...Hook) {
	c.hooks.Learner = append(c.hooks.Learner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learner.Intercept(f(g(h())))`.
func (c *LearnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Learner = append(c.inters.Learner, interceptors...)
}

// Create returns a builder for creating a Learner entity.
func (c *LearnerClient) Create() *LearnerCreate {
	mutation := newLearnerMutation(c.config, OpCreate)
	return &LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Learner entities.
func (c *LearnerClient) CreateBulk(builders ...*LearnerCreate) *LearnerCreateBulk {
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerClient) MapCreateBulk(slice any, setFunc func(*LearnerCreate, int)) *LearnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerCreateBulk{err: fmt.Errorf("calling to LearnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Learner.
func (c *LearnerClient) Update() *LearnerUpdate {
	mutation := newLearnerMutation(c.config, OpUpdate)
	return &LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerClient) UpdateOne(_m *Learner) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearner(_m))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerClient) UpdateOneID(id int) *LearnerUpdateOne {
	mutation := newLearnerMutation(c.config, OpUpdateOne, withLearnerID(id))
	return &LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Learner.
func (c *LearnerClient) Delete() *LearnerDelete {
	mutation := newLearnerMutation(c.config, OpDelete)
	return &LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerClient) DeleteOne(_m *Learner) *LearnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerClient) DeleteOneID(id int) *LearnerDeleteOne {
	builder := c.Delete().Where(learner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerDeleteOne{builder}
}

// Query returns a query builder for Learner.
func (c *LearnerClient) Query() *LearnerQuery {
	return &LearnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearner},
		inters: c.Interceptors(),
	}
}

// Get returns a Learner entity by its id.
func (c *LearnerClient) Get(ctx context.Context, id int) (*Learner, error) {
	return c.Query().Where(learner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerClient) GetX(ctx context.Context, id int) *Learner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerClient) Hooks() []Hook {
	return c.hooks.Learner
}

// Interceptors returns the client interceptors.
func (c *LearnerClient) Interceptors() []Interceptor {
	return c.inters.Learner
}

func (c *LearnerClient) mutate(ctx context.Context, m *LearnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Learner mutation op: %q", m.Op())
	}
}

// LearnerStateClient is a client for the LearnerState schema.
type LearnerStateClient struct {
	config
}

// NewLearnerStateClient returns a client for the LearnerState from the given config.
func NewLearnerStateClient(c config) *LearnerStateClient {
	return &LearnerStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnerstate.Hooks(f(g(h())))`.
func (c *LearnerStateClient) Use(hooks ...Hook) {
	c.hooks.LearnerState = append(c.hooks.LearnerState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnerstate.Intercept(f(g(h())))`.
func (c *LearnerStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerState = append(c.inters.LearnerState, interceptors...)
}

// Create returns a builder for creating a LearnerState entity.
func (c *LearnerStateClient) Create() *LearnerStateCreate {
	mutation := newLearnerStateMutation(c.config, OpCreate)
	return &LearnerStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerState entities.
func (c *LearnerStateClient) CreateBulk(builders ...*LearnerStateCreate) *LearnerStateCreateBulk {
	return &LearnerStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerStateClient) MapCreateBulk(slice any, setFunc func(*LearnerStateCreate, int)) *LearnerStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerStateCreateBulk{err: fmt.Errorf("calling to LearnerStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerState.
func (c *LearnerStateClient) Update() *LearnerStateUpdate {
	mutation := newLearnerStateMutation(c.config, OpUpdate)
	return &LearnerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerStateClient) UpdateOne(_m *LearnerState) *LearnerStateUpdateOne {
	mutation := newLearnerStateMutation(c.config, OpUpdateOne, withLearnerState(_m))
	return &LearnerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerStateClient) UpdateOneID(id int) *LearnerStateUpdateOne {
	mutation := newLearnerStateMutation(c.config, OpUpdateOne, withLearnerStateID(id))
	return &LearnerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerState.
func (c *LearnerStateClient) Delete() *LearnerStateDelete {
	mutation := newLearnerStateMutation(c.config, OpDelete)
	return &LearnerStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerStateClient) DeleteOne(_m *LearnerState) *LearnerStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerStateClient) DeleteOneID(id int) *LearnerStateDeleteOne {
	builder := c.Delete().Where(learnerstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerStateDeleteOne{builder}
}

// Query returns a query builder for LearnerState.
func (c *LearnerStateClient) Query() *LearnerStateQuery {
	return &LearnerStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerState},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerState entity by its id.
func (c *LearnerStateClient) Get(ctx context.Context, id int) (*LearnerState, error) {
	return c.Query().Where(learnerstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerStateClient) GetX(ctx context.Context, id int) *LearnerState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerStateClient) Hooks() []Hook {
	return c.hooks.LearnerState
}

// Interceptors returns the client interceptors.
func (c *LearnerStateClient) Interceptors() []Interceptor {
	return c.inters.LearnerState
}

func (c *LearnerStateClient) mutate(ctx context.Context, m *LearnerStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerState mutation op: %q", m.Op())
	}
}

// PlacementItemClient is a client for the PlacementItem schema.
type PlacementItemClient struct {
	config
}

// NewPlacementItemClient returns a client for the PlacementItem from the given config.
func NewPlacementItemClient(c config) *PlacementItemClient {
	return &PlacementItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `placementitem.Hooks(f(g(h())))`.
func (c *PlacementItemClient) Use(hooks ...Hook) {
	c.hooks.PlacementItem = append(c.hooks.PlacementItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `placementitem.Intercept(f(g(h())))`.
func (c *PlacementItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlacementItem = append(c.inters.PlacementItem, interceptors...)
}

// Create returns a builder for creating a PlacementItem entity.
func (c *PlacementItemClient) Create() *PlacementItemCreate {
	mutation := newPlacementItemMutation(c.config, OpCreate)
	return &PlacementItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlacementItem entities.
func (c *PlacementItemClient) CreateBulk(builders ...*PlacementItemCreate) *PlacementItemCreateBulk {
	return &PlacementItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlacementItemClient) MapCreateBulk(slice any, setFunc func(*PlacementItemCreate, int)) *PlacementItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlacementItemCreateBulk{err: fmt.Errorf("calling to PlacementItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlacementItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlacementItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlacementItem.
func (c *PlacementItemClient) Update() *PlacementItemUpdate {
	mutation := newPlacementItemMutation(c.config, OpUpdate)
	return &PlacementItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlacementItemClient) UpdateOne(_m *PlacementItem) *PlacementItemUpdateOne {
	mutation := newPlacementItemMutation(c.config, OpUpdateOne, withPlacementItem(_m))
	return &PlacementItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlacementItemClient) UpdateOneID(id int) *PlacementItemUpdateOne {
	mutation := newPlacementItemMutation(c.config, OpUpdateOne, withPlacementItemID(id))
	return &PlacementItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlacementItem.
func (c *PlacementItemClient) Delete() *PlacementItemDelete {
	mutation := newPlacementItemMutation(c.config, OpDelete)
	return &PlacementItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlacementItemClient) DeleteOne(_m *PlacementItem) *PlacementItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlacementItemClient) DeleteOneID(id int) *PlacementItemDeleteOne {
	builder := c.Delete().Where(placementitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlacementItemDeleteOne{builder}
}

// Query returns a query builder for PlacementItem.
func (c *PlacementItemClient) Query() *PlacementItemQuery {
	return &PlacementItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlacementItem},
		inters: c.Interceptors(),
	}
}

// Get returns a PlacementItem entity by its id.
func (c *PlacementItemClient) Get(ctx context.Context, id int) (*PlacementItem, error) {
	return c.Query().Where(placementitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlacementItemClient) GetX(ctx context.Context, id int) *PlacementItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlacementItemClient) Hooks() []Hook {
	return c.hooks.PlacementItem
}

// Interceptors returns the client interceptors.
func (c *PlacementItemClient) Interceptors() []Interceptor {
	return c.inters.PlacementItem
}

func (c *PlacementItemClient) mutate(ctx context.Context, m *PlacementItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlacementItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlacementItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlacementItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlacementItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlacementItem mutation op: %q", m.Op())
	}
}

// RuleClient is a client for the Rule schema.
type RuleClient struct {
	config
}

// NewRuleClient returns a client for the Rule from the given config.
func NewRuleClient(c config) *RuleClient {
	return &RuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rule.Hooks(f(g(h())))`.
func (c *RuleClient) Use(hooks ...Hook) {
	c.hooks.Rule = append(c.hooks.Rule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rule.Intercept(f(g(h())))`.
func (c *RuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Rule = append(c.inters.Rule, interceptors...)
}

// Create returns a builder for creating a Rule entity.
func (c *RuleClient) Create() *RuleCreate {
	mutation := newRuleMutation(c.config, OpCreate)
	return &RuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Rule entities.
func (c *RuleClient) CreateBulk(builders ...*RuleCreate) *RuleCreateBulk {
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleClient) MapCreateBulk(slice any, setFunc func(*RuleCreate, int)) *RuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleCreateBulk{err: fmt.Errorf("calling to RuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Rule.
func (c *RuleClient) Update() *RuleUpdate {
	mutation := newRuleMutation(c.config, OpUpdate)
	return &RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleClient) UpdateOne(_m *Rule) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRule(_m))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleClient) UpdateOneID(id int) *RuleUpdateOne {
	mutation := newRuleMutation(c.config, OpUpdateOne, withRuleID(id))
	return &RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Rule.
func (c *RuleClient) Delete() *RuleDelete {
	mutation := newRuleMutation(c.config, OpDelete)
	return &RuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleClient) DeleteOne(_m *Rule) *RuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleClient) DeleteOneID(id int) *RuleDeleteOne {
	builder := c.Delete().Where(rule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleDeleteOne{builder}
}

// Query returns a query builder for Rule.
func (c *RuleClient) Query() *RuleQuery {
	return &RuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRule},
		inters: c.Interceptors(),
	}
}

// Get returns a Rule entity by its id.
func (c *RuleClient) Get(ctx context.Context, id int) (*Rule, error) {
	return c.Query().Where(rule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleClient) GetX(ctx context.Context, id int) *Rule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RuleClient) Hooks() []Hook {
	return c.hooks.Rule
}

// Interceptors returns the client interceptors.
func (c *RuleClient) Interceptors() []Interceptor {
	return c.inters.Rule
}

func (c *RuleClient) mutate(ctx context.Context, m *RuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Rule mutation op: %q", m.Op())
	}
}

// UnitExerciseClient is a client for the UnitExercise schema.
type UnitExerciseClient struct {
	config
}

// NewUnitExerciseClient returns a client for the UnitExercise from the given config.
func NewUnitExerciseClient(c config) *UnitExerciseClient {
	return &UnitExerciseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unitexercise.Hooks(f(g(h())))`.
func (c *UnitExerciseClient) Use(hooks ...Hook) {
	c.hooks.UnitExercise = append(c.hooks.UnitExercise, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unitexercise.Intercept(f(g(h())))`.
func (c *UnitExerciseClient) Intercept(interceptors ...Interceptor) {
	c.inters.UnitExercise = append(c.inters.UnitExercise, interceptors...)
}

// Create returns a builder for creating a UnitExercise entity.
func (c *UnitExerciseClient) Create() *UnitExerciseCreate {
	mutation := newUnitExerciseMutation(c.config, OpCreate)
	return &UnitExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UnitExercise entities.
func (c *UnitExerciseClient) CreateBulk(builders ...*UnitExerciseCreate) *UnitExerciseCreateBulk {
	return &UnitExerciseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnitExerciseClient) MapCreateBulk(slice any, setFunc func(*UnitExerciseCreate, int)) *UnitExerciseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnitExerciseCreateBulk{err: fmt.Errorf("calling to UnitExerciseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnitExerciseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnitExerciseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UnitExercise.
func (c *UnitExerciseClient) Update() *UnitExerciseUpdate {
	mutation := newUnitExerciseMutation(c.config, OpUpdate)
	return &UnitExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnitExerciseClient) UpdateOne(_m *UnitExercise) *UnitExerciseUpdateOne {
	mutation := newUnitExerciseMutation(c.config, OpUpdateOne, withUnitExercise(_m))
	return &UnitExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnitExerciseClient) UpdateOneID(id int) *UnitExerciseUpdateOne {
	mutation := newUnitExerciseMutation(c.config, OpUpdateOne, withUnitExerciseID(id))
	return &UnitExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UnitExercise.
func (c *UnitExerciseClient) Delete() *UnitExerciseDelete {
	mutation := newUnitExerciseMutation(c.config, OpDelete)
	return &UnitExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnitExerciseClient) DeleteOne(_m *UnitExercise) *UnitExerciseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnitExerciseClient) DeleteOneID(id int) *UnitExerciseDeleteOne {
	builder := c.Delete().Where(unitexercise.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnitExerciseDeleteOne{builder}
}

// Query returns a query builder for UnitExercise.
func (c *UnitExerciseClient) Query() *UnitExerciseQuery {
	return &UnitExerciseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnitExercise},
		inters: c.Interceptors(),
	}
}

// Get returns a UnitExercise entity by its id.
func (c *UnitExerciseClient) Get(ctx context.Context, id int) (*UnitExercise, error) {
	return c.Query().Where(unitexercise.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnitExerciseClient) GetX(ctx context.Context, id int) *UnitExercise {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UnitExerciseClient) Hooks() []Hook {
	return c.hooks.UnitExercise
}

// Interceptors returns the client interceptors.
func (c *UnitExerciseClient) Interceptors() []Interceptor {
	return c.inters.UnitExercise
}

func (c *UnitExerciseClient) mutate(ctx context.Context, m *UnitExerciseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnitExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnitExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnitExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnitExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UnitExercise mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, DueItem, ExplainCache, LLMRequestEvent, Learner, LearnerState,
		PlacementItem, Rule, UnitExercise []ent.Hook
	}
	inters struct {
		Attempt, DueItem, ExplainCache, LLMRequestEvent, Learner, LearnerState,
		PlacementItem, Rule, UnitExercise []ent.Interceptor
	}
)
