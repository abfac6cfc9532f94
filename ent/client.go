// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/gymops/memberpulse/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/gymops/memberpulse/ent/alert"
	"github.com/gymops/memberpulse/ent/attendanceevent"
	"github.com/gymops/memberpulse/ent/feedbackrecord"
	"github.com/gymops/memberpulse/ent/member"
	"github.com/gymops/memberpulse/ent/metricssnapshot"
	"github.com/gymops/memberpulse/ent/paymentrecord"
	"github.com/gymops/memberpulse/ent/retentionaction"
	"github.com/gymops/memberpulse/ent/riskassessment"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Alert is the client for interacting with the Alert builders.
	Alert *AlertClient
	// AttendanceEvent is the client for interacting with the AttendanceEvent builders.
	AttendanceEvent *AttendanceEventClient
	// FeedbackRecord is the client for interacting with the FeedbackRecord builders.
	FeedbackRecord *FeedbackRecordClient
	// Member is the client for interacting with the Member builders.
	Member *MemberClient
	// MetricsSnapshot is the client for interacting with the MetricsSnapshot builders.
	MetricsSnapshot *MetricsSnapshotClient
	// PaymentRecord is the client for interacting with the PaymentRecord builders.
	PaymentRecord *PaymentRecordClient
	// RetentionAction is the client for interacting with the RetentionAction builders.
	RetentionAction *RetentionActionClient
	// RiskAssessment is the client for interacting with the RiskAssessment builders.
	RiskAssessment *RiskAssessmentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Alert = NewAlertClient(c.config)
	c.AttendanceEvent = NewAttendanceEventClient(c.config)
	c.FeedbackRecord = NewFeedbackRecordClient(c.config)
	c.Member = NewMemberClient(c.config)
	c.MetricsSnapshot = NewMetricsSnapshotClient(c.config)
	c.PaymentRecord = NewPaymentRecordClient(c.config)
	c.RetentionAction = NewRetentionActionClient(c.config)
	c.RiskAssessment = NewRiskAssessmentClient(c.config)
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
		Alert:           NewAlertClient(cfg),
		AttendanceEvent: NewAttendanceEventClient(cfg),
		FeedbackRecord:  NewFeedbackRecordClient(cfg),
		Member:          NewMemberClient(cfg),
		MetricsSnapshot: NewMetricsSnapshotClient(cfg),
		PaymentRecord:   NewPaymentRecordClient(cfg),
		RetentionAction: NewRetentionActionClient(cfg),
		RiskAssessment:  NewRiskAssessmentClient(cfg),
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
		Alert:           NewAlertClient(cfg),
		AttendanceEvent: NewAttendanceEventClient(cfg),
		FeedbackRecord:  NewFeedbackRecordClient(cfg),
		Member:          NewMemberClient(cfg),
		MetricsSnapshot: NewMetricsSnapshotClient(cfg),
		PaymentRecord:   NewPaymentRecordClient(cfg),
		RetentionAction: NewRetentionActionClient(cfg),
		RiskAssessment:  NewRiskAssessmentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Alert.
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
		c.Alert, c.AttendanceEvent, c.FeedbackRecord, c.Member, c.MetricsSnapshot,
		c.PaymentRecord, c.RetentionAction, c.RiskAssessment,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Alert, c.AttendanceEvent, c.FeedbackRecord, c.Member, c.MetricsSnapshot,
		c.PaymentRecord, c.RetentionAction, c.RiskAssessment,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertMutation:
		return c.Alert.mutate(ctx, m)
	case *AttendanceEventMutation:
		return c.AttendanceEvent.mutate(ctx, m)
	case *FeedbackRecordMutation:
		return c.FeedbackRecord.mutate(ctx, m)
	case *MemberMutation:
		return c.Member.mutate(ctx, m)
	case *MetricsSnapshotMutation:
		return c.MetricsSnapshot.mutate(ctx, m)
	case *PaymentRecordMutation:
		return c.PaymentRecord.mutate(ctx, m)
	case *RetentionActionMutation:
		return c.RetentionAction.mutate(ctx, m)
	case *RiskAssessmentMutation:
		return c.RiskAssessment.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertClient is a client for the Alert schema.
type AlertClient struct {
	config
}

// NewAlertClient returns a client for the Alert from the given config.
func NewAlertClient(c config) *AlertClient {
	return &AlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alert.Hooks(f(g(h())))`.
func (c *AlertClient) Use(hooks ...Hook) {
	c.hooks.Alert = append(c.hooks.Alert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alert.Intercept(f(g(h())))`.
func (c *AlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.Alert = append(c.inters.Alert, interceptors...)
}

// Create returns a builder for creating a Alert entity.
func (c *AlertClient) Create() *AlertCreate {
	mutation := newAlertMutation(c.config, OpCreate)
	return &AlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Alert entities.
func (c *AlertClient) CreateBulk(builders ...*AlertCreate) *AlertCreateBulk {
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertClient) MapCreateBulk(slice any, setFunc func(*AlertCreate, int)) *AlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertCreateBulk{err: fmt.Errorf("calling to AlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Alert.
func (c *AlertClient) Update() *AlertUpdate {
	mutation := newAlertMutation(c.config, OpUpdate)
	return &AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertClient) UpdateOne(_m *Alert) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlert(_m))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertClient) UpdateOneID(id uuid.UUID) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlertID(id))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Alert.
func (c *AlertClient) Delete() *AlertDelete {
	mutation := newAlertMutation(c.config, OpDelete)
	return &AlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertClient) DeleteOne(_m *Alert) *AlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertClient) DeleteOneID(id uuid.UUID) *AlertDeleteOne {
	builder := c.Delete().Where(alert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertDeleteOne{builder}
}

// Query returns a query builder for Alert.
func (c *AlertClient) Query() *AlertQuery {
	return &AlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a Alert entity by its id.
func (c *AlertClient) Get(ctx context.Context, id uuid.UUID) (*Alert, error) {
	return c.Query().Where(alert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertClient) GetX(ctx context.Context, id uuid.UUID) *Alert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AlertClient) Hooks() []Hook {
	return c.hooks.Alert
}

// Interceptors returns the client interceptors.
func (c *AlertClient) Interceptors() []Interceptor {
	return c.inters.Alert
}

func (c *AlertClient) mutate(ctx context.Context, m *AlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Alert mutation op: %q", m.Op())
	}
}

// AttendanceEventClient is a client for the AttendanceEvent schema.
type AttendanceEventClient struct {
	config
}

// NewAttendanceEventClient returns a client for the AttendanceEvent from the given config.
func NewAttendanceEventClient(c config) *AttendanceEventClient {
	return &AttendanceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attendanceevent.Hooks(f(g(h())))`.
func (c *AttendanceEventClient) Use(hooks ...Hook) {
	c.hooks.AttendanceEvent = append(c.hooks.AttendanceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attendanceevent.Intercept(f(g(h())))`.
func (c *AttendanceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttendanceEvent = append(c.inters.AttendanceEvent, interceptors...)
}

// Create returns a builder for creating a AttendanceEvent entity.
func (c *AttendanceEventClient) Create() *AttendanceEventCreate {
	mutation := newAttendanceEventMutation(c.config, OpCreate)
	return &AttendanceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttendanceEvent entities.
func (c *AttendanceEventClient) CreateBulk(builders ...*AttendanceEventCreate) *AttendanceEventCreateBulk {
	return &AttendanceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttendanceEventClient) MapCreateBulk(slice any, setFunc func(*AttendanceEventCreate, int)) *AttendanceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttendanceEventCreateBulk{err: fmt.Errorf("calling to AttendanceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttendanceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttendanceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttendanceEvent.
func (c *AttendanceEventClient) Update() *AttendanceEventUpdate {
	mutation := newAttendanceEventMutation(c.config, OpUpdate)
	return &AttendanceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttendanceEventClient) UpdateOne(_m *AttendanceEvent) *AttendanceEventUpdateOne {
	mutation := newAttendanceEventMutation(c.config, OpUpdateOne, withAttendanceEvent(_m))
	return &AttendanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttendanceEventClient) UpdateOneID(id uuid.UUID) *AttendanceEventUpdateOne {
	mutation := newAttendanceEventMutation(c.config, OpUpdateOne, withAttendanceEventID(id))
	return &AttendanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttendanceEvent.
func (c *AttendanceEventClient) Delete() *AttendanceEventDelete {
	mutation := newAttendanceEventMutation(c.config, OpDelete)
	return &AttendanceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttendanceEventClient) DeleteOne(_m *AttendanceEvent) *AttendanceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttendanceEventClient) DeleteOneID(id uuid.UUID) *AttendanceEventDeleteOne {
	builder := c.Delete().Where(attendanceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttendanceEventDeleteOne{builder}
}

// Query returns a query builder for AttendanceEvent.
func (c *AttendanceEventClient) Query() *AttendanceEventQuery {
	return &AttendanceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttendanceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttendanceEvent entity by its id.
func (c *AttendanceEventClient) Get(ctx context.Context, id uuid.UUID) (*AttendanceEvent, error) {
	return c.Query().Where(attendanceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttendanceEventClient) GetX(ctx context.Context, id uuid.UUID) *AttendanceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttendanceEventClient) Hooks() []Hook {
	return c.hooks.AttendanceEvent
}

// Interceptors returns the client interceptors.
func (c *AttendanceEventClient) Interceptors() []Interceptor {
	return c.inters.AttendanceEvent
}

func (c *AttendanceEventClient) mutate(ctx context.Context, m *AttendanceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttendanceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttendanceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttendanceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttendanceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttendanceEvent mutation op: %q", m.Op())
	}
}

// FeedbackRecordClient is a client for the FeedbackRecord schema.
type FeedbackRecordClient struct {
	config
}

// NewFeedbackRecordClient returns a client for the FeedbackRecord from the given config.
func NewFeedbackRecordClient(c config) *FeedbackRecordClient {
	return &FeedbackRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedbackrecord.Hooks(f(g(h())))`.
func (c *FeedbackRecordClient) Use(hooks ...Hook) {
	c.hooks.FeedbackRecord = append(c.hooks.FeedbackRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedbackrecord.Intercept(f(g(h())))`.
func (c *FeedbackRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeedbackRecord = append(c.inters.FeedbackRecord, interceptors...)
}

// Create returns a builder for creating a FeedbackRecord entity.
func (c *FeedbackRecordClient) Create() *FeedbackRecordCreate {
	mutation := newFeedbackRecordMutation(c.config, OpCreate)
	return &FeedbackRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeedbackRecord entities.
func (c *FeedbackRecordClient) CreateBulk(builders ...*FeedbackRecordCreate) *FeedbackRecordCreateBulk {
	return &FeedbackRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackRecordClient) MapCreateBulk(slice any, setFunc func(*FeedbackRecordCreate, int)) *FeedbackRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackRecordCreateBulk{err: fmt.Errorf("calling to FeedbackRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeedbackRecord.
func (c *FeedbackRecordClient) Update() *FeedbackRecordUpdate {
	mutation := newFeedbackRecordMutation(c.config, OpUpdate)
	return &FeedbackRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackRecordClient) UpdateOne(_m *FeedbackRecord) *FeedbackRecordUpdateOne {
	mutation := newFeedbackRecordMutation(c.config, OpUpdateOne, withFeedbackRecord(_m))
	return &FeedbackRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackRecordClient) UpdateOneID(id uuid.UUID) *FeedbackRecordUpdateOne {
	mutation := newFeedbackRecordMutation(c.config, OpUpdateOne, withFeedbackRecordID(id))
	return &FeedbackRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeedbackRecord.
func (c *FeedbackRecordClient) Delete() *FeedbackRecordDelete {
	mutation := newFeedbackRecordMutation(c.config, OpDelete)
	return &FeedbackRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackRecordClient) DeleteOne(_m *FeedbackRecord) *FeedbackRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackRecordClient) DeleteOneID(id uuid.UUID) *FeedbackRecordDeleteOne {
	builder := c.Delete().Where(feedbackrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackRecordDeleteOne{builder}
}

// Query returns a query builder for FeedbackRecord.
func (c *FeedbackRecordClient) Query() *FeedbackRecordQuery {
	return &FeedbackRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedbackRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a FeedbackRecord entity by its id.
func (c *FeedbackRecordClient) Get(ctx context.Context, id uuid.UUID) (*FeedbackRecord, error) {
	return c.Query().Where(feedbackrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackRecordClient) GetX(ctx context.Context, id uuid.UUID) *FeedbackRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FeedbackRecordClient) Hooks() []Hook {
	return c.hooks.FeedbackRecord
}

// Interceptors returns the client interceptors.
func (c *FeedbackRecordClient) Interceptors() []Interceptor {
	return c.inters.FeedbackRecord
}

func (c *FeedbackRecordClient) mutate(ctx context.Context, m *FeedbackRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeedbackRecord mutation op: %q", m.Op())
	}
}

// MemberClient is a client for the Member schema.
type MemberClient struct {
	config
}

// NewMemberClient returns a client for the Member from the given config.
func NewMemberClient(c config) *MemberClient {
	return &MemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `member.Hooks(f(g(h())))`.
func (c *MemberClient) Use(hooks ...Hook) {
	c.hooks.Member = append(c.hooks.Member, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `member.Intercept(f(g(h())))`.
func (c *MemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.Member = append(c.inters.Member, interceptors...)
}

// Create returns a builder for creating a Member entity.
func (c *MemberClient) Create() *MemberCreate {
	mutation := newMemberMutation(c.config, OpCreate)
	return &MemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Member entities.
func (c *MemberClient) CreateBulk(builders ...*MemberCreate) *MemberCreateBulk {
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemberClient) MapCreateBulk(slice any, setFunc func(*MemberCreate, int)) *MemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemberCreateBulk{err: fmt.Errorf("calling to MemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Member.
func (c *MemberClient) Update() *MemberUpdate {
	mutation := newMemberMutation(c.config, OpUpdate)
	return &MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemberClient) UpdateOne(_m *Member) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMember(_m))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemberClient) UpdateOneID(id uuid.UUID) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMemberID(id))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Member.
func (c *MemberClient) Delete() *MemberDelete {
	mutation := newMemberMutation(c.config, OpDelete)
	return &MemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemberClient) DeleteOne(_m *Member) *MemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemberClient) DeleteOneID(id uuid.UUID) *MemberDeleteOne {
	builder := c.Delete().Where(member.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemberDeleteOne{builder}
}

// Query returns a query builder for Member.
func (c *MemberClient) Query() *MemberQuery {
	return &MemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMember},
		inters: c.Interceptors(),
	}
}

// Get returns a Member entity by its id.
func (c *MemberClient) Get(ctx context.Context, id uuid.UUID) (*Member, error) {
	return c.Query().Where(member.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemberClient) GetX(ctx context.Context, id uuid.UUID) *Member {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MemberClient) Hooks() []Hook {
	return c.hooks.Member
}

// Interceptors returns the client interceptors.
func (c *MemberClient) Interceptors() []Interceptor {
	return c.inters.Member
}

func (c *MemberClient) mutate(ctx context.Context, m *MemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Member mutation op: %q", m.Op())
	}
}

// MetricsSnapshotClient is a client for the MetricsSnapshot schema.
type MetricsSnapshotClient struct {
	config
}

// NewMetricsSnapshotClient returns a client for the MetricsSnapshot from the given config.
func NewMetricsSnapshotClient(c config) *MetricsSnapshotClient {
	return &MetricsSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `metricssnapshot.Hooks(f(g(h())))`.
func (c *MetricsSnapshotClient) Use(hooks ...Hook) {
	c.hooks.MetricsSnapshot = append(c.hooks.MetricsSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `metricssnapshot.Intercept(f(g(h())))`.
func (c *MetricsSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.MetricsSnapshot = append(c.inters.MetricsSnapshot, interceptors...)
}

// Create returns a builder for creating a MetricsSnapshot entity.
func (c *MetricsSnapshotClient) Create() *MetricsSnapshotCreate {
	mutation := newMetricsSnapshotMutation(c.config, OpCreate)
	return &MetricsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MetricsSnapshot entities.
func (c *MetricsSnapshotClient) CreateBulk(builders ...*MetricsSnapshotCreate) *MetricsSnapshotCreateBulk {
	return &MetricsSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MetricsSnapshotClient) MapCreateBulk(slice any, setFunc func(*MetricsSnapshotCreate, int)) *MetricsSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MetricsSnapshotCreateBulk{err: fmt.Errorf("calling to MetricsSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MetricsSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MetricsSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MetricsSnapshot.
func (c *MetricsSnapshotClient) Update() *MetricsSnapshotUpdate {
	mutation := newMetricsSnapshotMutation(c.config, OpUpdate)
	return &MetricsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MetricsSnapshotClient) UpdateOne(_m *MetricsSnapshot) *MetricsSnapshotUpdateOne {
	mutation := newMetricsSnapshotMutation(c.config, OpUpdateOne, withMetricsSnapshot(_m))
	return &MetricsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MetricsSnapshotClient) UpdateOneID(id uuid.UUID) *MetricsSnapshotUpdateOne {
	mutation := newMetricsSnapshotMutation(c.config, OpUpdateOne, withMetricsSnapshotID(id))
	return &MetricsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MetricsSnapshot.
func (c *MetricsSnapshotClient) Delete() *MetricsSnapshotDelete {
	mutation := newMetricsSnapshotMutation(c.config, OpDelete)
	return &MetricsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MetricsSnapshotClient) DeleteOne(_m *MetricsSnapshot) *MetricsSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MetricsSnapshotClient) DeleteOneID(id uuid.UUID) *MetricsSnapshotDeleteOne {
	builder := c.Delete().Where(metricssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MetricsSnapshotDeleteOne{builder}
}

// Query returns a query builder for MetricsSnapshot.
func (c *MetricsSnapshotClient) Query() *MetricsSnapshotQuery {
	return &MetricsSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMetricsSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a MetricsSnapshot entity by its id.
func (c *MetricsSnapshotClient) Get(ctx context.Context, id uuid.UUID) (*MetricsSnapshot, error) {
	return c.Query().Where(metricssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MetricsSnapshotClient) GetX(ctx context.Context, id uuid.UUID) *MetricsSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MetricsSnapshotClient) Hooks() []Hook {
	return c.hooks.MetricsSnapshot
}

// Interceptors returns the client interceptors.
func (c *MetricsSnapshotClient) Interceptors() []Interceptor {
	return c.inters.MetricsSnapshot
}

func (c *MetricsSnapshotClient) mutate(ctx context.Context, m *MetricsSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MetricsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MetricsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MetricsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MetricsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MetricsSnapshot mutation op: %q", m.Op())
	}
}

// PaymentRecordClient is a client for the PaymentRecord schema.
type PaymentRecordClient struct {
	config
}

// NewPaymentRecordClient returns a client for the PaymentRecord from the given config.
func NewPaymentRecordClient(c config) *PaymentRecordClient {
	return &PaymentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paymentrecord.Hooks(f(g(h())))`.
func (c *PaymentRecordClient) Use(hooks ...Hook) {
	c.hooks.PaymentRecord = append(c.hooks.PaymentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paymentrecord.Intercept(f(g(h())))`.
func (c *PaymentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaymentRecord = append(c.inters.PaymentRecord, interceptors...)
}

// Create returns a builder for creating a PaymentRecord entity.
func (c *PaymentRecordClient) Create() *PaymentRecordCreate {
	mutation := newPaymentRecordMutation(c.config, OpCreate)
	return &PaymentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaymentRecord entities.
func (c *PaymentRecordClient) CreateBulk(builders ...*PaymentRecordCreate) *PaymentRecordCreateBulk {
	return &PaymentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentRecordClient) MapCreateBulk(slice any, setFunc func(*PaymentRecordCreate, int)) *PaymentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentRecordCreateBulk{err: fmt.Errorf("calling to PaymentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaymentRecord.
func (c *PaymentRecordClient) Update() *PaymentRecordUpdate {
	mutation := newPaymentRecordMutation(c.config, OpUpdate)
	return &PaymentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentRecordClient) UpdateOne(_m *PaymentRecord) *PaymentRecordUpdateOne {
	mutation := newPaymentRecordMutation(c.config, OpUpdateOne, withPaymentRecord(_m))
	return &PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentRecordClient) UpdateOneID(id uuid.UUID) *PaymentRecordUpdateOne {
	mutation := newPaymentRecordMutation(c.config, OpUpdateOne, withPaymentRecordID(id))
	return &PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaymentRecord.
func (c *PaymentRecordClient) Delete() *PaymentRecordDelete {
	mutation := newPaymentRecordMutation(c.config, OpDelete)
	return &PaymentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentRecordClient) DeleteOne(_m *PaymentRecord) *PaymentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentRecordClient) DeleteOneID(id uuid.UUID) *PaymentRecordDeleteOne {
	builder := c.Delete().Where(paymentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentRecordDeleteOne{builder}
}

// Query returns a query builder for PaymentRecord.
func (c *PaymentRecordClient) Query() *PaymentRecordQuery {
	return &PaymentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaymentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PaymentRecord entity by its id.
func (c *PaymentRecordClient) Get(ctx context.Context, id uuid.UUID) (*PaymentRecord, error) {
	return c.Query().Where(paymentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentRecordClient) GetX(ctx context.Context, id uuid.UUID) *PaymentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaymentRecordClient) Hooks() []Hook {
	return c.hooks.PaymentRecord
}

// Interceptors returns the client interceptors.
func (c *PaymentRecordClient) Interceptors() []Interceptor {
	return c.inters.PaymentRecord
}

func (c *PaymentRecordClient) mutate(ctx context.Context, m *PaymentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaymentRecord mutation op: %q", m.Op())
	}
}

// RetentionActionClient is a client for the RetentionAction schema.
type RetentionActionClient struct {
	config
}

// NewRetentionActionClient returns a client for the RetentionAction from the given config.
func NewRetentionActionClient(c config) *RetentionActionClient {
	return &RetentionActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `retentionaction.Hooks(f(g(h())))`.
func (c *RetentionActionClient) Use(hooks ...Hook) {
	c.hooks.RetentionAction = append(c.hooks.RetentionAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `retentionaction.Intercept(f(g(h())))`.
func (c *RetentionActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RetentionAction = append(c.inters.RetentionAction, interceptors...)
}

// Create returns a builder for creating a RetentionAction entity.
func (c *RetentionActionClient) Create() *RetentionActionCreate {
	mutation := newRetentionActionMutation(c.config, OpCreate)
	return &RetentionActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RetentionAction entities.
func (c *RetentionActionClient) CreateBulk(builders ...*RetentionActionCreate) *RetentionActionCreateBulk {
	return &RetentionActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RetentionActionClient) MapCreateBulk(slice any, setFunc func(*RetentionActionCreate, int)) *RetentionActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RetentionActionCreateBulk{err: fmt.Errorf("calling to RetentionActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RetentionActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RetentionActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RetentionAction.
func (c *RetentionActionClient) Update() *RetentionActionUpdate {
	mutation := newRetentionActionMutation(c.config, OpUpdate)
	return &RetentionActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RetentionActionClient) UpdateOne(_m *RetentionAction) *RetentionActionUpdateOne {
	mutation := newRetentionActionMutation(c.config, OpUpdateOne, withRetentionAction(_m))
	return &RetentionActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RetentionActionClient) UpdateOneID(id uuid.UUID) *RetentionActionUpdateOne {
	mutation := newRetentionActionMutation(c.config, OpUpdateOne, withRetentionActionID(id))
	return &RetentionActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RetentionAction.
func (c *RetentionActionClient) Delete() *RetentionActionDelete {
	mutation := newRetentionActionMutation(c.config, OpDelete)
	return &RetentionActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RetentionActionClient) DeleteOne(_m *RetentionAction) *RetentionActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RetentionActionClient) DeleteOneID(id uuid.UUID) *RetentionActionDeleteOne {
	builder := c.Delete().Where(retentionaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RetentionActionDeleteOne{builder}
}

// Query returns a query builder for RetentionAction.
func (c *RetentionActionClient) Query() *RetentionActionQuery {
	return &RetentionActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRetentionAction},
		inters: c.Interceptors(),
	}
}

// Get returns a RetentionAction entity by its id.
func (c *RetentionActionClient) Get(ctx context.Context, id uuid.UUID) (*RetentionAction, error) {
	return c.Query().Where(retentionaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RetentionActionClient) GetX(ctx context.Context, id uuid.UUID) *RetentionAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RetentionActionClient) Hooks() []Hook {
	return c.hooks.RetentionAction
}

// Interceptors returns the client interceptors.
func (c *RetentionActionClient) Interceptors() []Interceptor {
	return c.inters.RetentionAction
}

func (c *RetentionActionClient) mutate(ctx context.Context, m *RetentionActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RetentionActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RetentionActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RetentionActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RetentionActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RetentionAction mutation op: %q", m.Op())
	}
}

// RiskAssessmentClient is a client for the RiskAssessment schema.
type RiskAssessmentClient struct {
	config
}

// NewRiskAssessmentClient returns a client for the RiskAssessment from the given config.
func NewRiskAssessmentClient(c config) *RiskAssessmentClient {
	return &RiskAssessmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `riskassessment.Hooks(f(g(h())))`.
func (c *RiskAssessmentClient) Use(hooks ...Hook) {
	c.hooks.RiskAssessment = append(c.hooks.RiskAssessment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `riskassessment.Intercept(f(g(h())))`.
func (c *RiskAssessmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.RiskAssessment = append(c.inters.RiskAssessment, interceptors...)
}

// Create returns a builder for creating a RiskAssessment entity.
func (c *RiskAssessmentClient) Create() *RiskAssessmentCreate {
	mutation := newRiskAssessmentMutation(c.config, OpCreate)
	return &RiskAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RiskAssessment entities.
func (c *RiskAssessmentClient) CreateBulk(builders ...*RiskAssessmentCreate) *RiskAssessmentCreateBulk {
	return &RiskAssessmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RiskAssessmentClient) MapCreateBulk(slice any, setFunc func(*RiskAssessmentCreate, int)) *RiskAssessmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RiskAssessmentCreateBulk{err: fmt.Errorf("calling to RiskAssessmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RiskAssessmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RiskAssessmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RiskAssessment.
func (c *RiskAssessmentClient) Update() *RiskAssessmentUpdate {
	mutation := newRiskAssessmentMutation(c.config, OpUpdate)
	return &RiskAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RiskAssessmentClient) UpdateOne(_m *RiskAssessment) *RiskAssessmentUpdateOne {
	mutation := newRiskAssessmentMutation(c.config, OpUpdateOne, withRiskAssessment(_m))
	return &RiskAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RiskAssessmentClient) UpdateOneID(id uuid.UUID) *RiskAssessmentUpdateOne {
	mutation := newRiskAssessmentMutation(c.config, OpUpdateOne, withRiskAssessmentID(id))
	return &RiskAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RiskAssessment.
func (c *RiskAssessmentClient) Delete() *RiskAssessmentDelete {
	mutation := newRiskAssessmentMutation(c.config, OpDelete)
	return &RiskAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RiskAssessmentClient) DeleteOne(_m *RiskAssessment) *RiskAssessmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RiskAssessmentClient) DeleteOneID(id uuid.UUID) *RiskAssessmentDeleteOne {
	builder := c.Delete().Where(riskassessment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RiskAssessmentDeleteOne{builder}
}

// Query returns a query builder for RiskAssessment.
func (c *RiskAssessmentClient) Query() *RiskAssessmentQuery {
	return &RiskAssessmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRiskAssessment},
		inters: c.Interceptors(),
	}
}

// Get returns a RiskAssessment entity by its id.
func (c *RiskAssessmentClient) Get(ctx context.Context, id uuid.UUID) (*RiskAssessment, error) {
	return c.Query().Where(riskassessment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RiskAssessmentClient) GetX(ctx context.Context, id uuid.UUID) *RiskAssessment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RiskAssessmentClient) Hooks() []Hook {
	return c.hooks.RiskAssessment
}

// Interceptors returns the client interceptors.
func (c *RiskAssessmentClient) Interceptors() []Interceptor {
	return c.inters.RiskAssessment
}

func (c *RiskAssessmentClient) mutate(ctx context.Context, m *RiskAssessmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RiskAssessmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RiskAssessmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RiskAssessmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RiskAssessmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RiskAssessment mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Alert, AttendanceEvent, FeedbackRecord, Member, MetricsSnapshot, PaymentRecord,
		RetentionAction, RiskAssessment []ent.Hook
	}
	inters struct {
		Alert, AttendanceEvent, FeedbackRecord, Member, MetricsSnapshot, PaymentRecord,
		RetentionAction, RiskAssessment []ent.Interceptor
	}
)
