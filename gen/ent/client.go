// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/template"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractedField is the client for interacting with the ExtractedField builders.
	ExtractedField *ExtractedFieldClient
	// Extraction is the client for interacting with the Extraction builders.
	Extraction *ExtractionClient
	// ParseRecord is the client for interacting with the ParseRecord builders.
	ParseRecord *ParseRecordClient
	// PhysicalFile is the client for interacting with the PhysicalFile builders.
	PhysicalFile *PhysicalFileClient
	// Template is the client for interacting with the Template builders.
	Template *TemplateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractedField = NewExtractedFieldClient(c.config)
	c.Extraction = NewExtractionClient(c.config)
	c.ParseRecord = NewParseRecordClient(c.config)
	c.PhysicalFile = NewPhysicalFileClient(c.config)
	c.Template = NewTemplateClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		ExtractedField: NewExtractedFieldClient(cfg),
		Extraction:     NewExtractionClient(cfg),
		ParseRecord:    NewParseRecordClient(cfg),
		PhysicalFile:   NewPhysicalFileClient(cfg),
		Template:       NewTemplateClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		ExtractedField: NewExtractedFieldClient(cfg),
		Extraction:     NewExtractionClient(cfg),
		ParseRecord:    NewParseRecordClient(cfg),
		PhysicalFile:   NewPhysicalFileClient(cfg),
		Template:       NewTemplateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractedField.
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
	c.ExtractedField.Use(hooks...)
	c.Extraction.Use(hooks...)
	c.ParseRecord.Use(hooks...)
	c.PhysicalFile.Use(hooks...)
	c.Template.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractedField.Intercept(interceptors...)
	c.Extraction.Intercept(interceptors...)
	c.ParseRecord.Intercept(interceptors...)
	c.PhysicalFile.Intercept(interceptors...)
	c.Template.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractedFieldMutation:
		return c.ExtractedField.mutate(ctx, m)
	case *ExtractionMutation:
		return c.Extraction.mutate(ctx, m)
	case *ParseRecordMutation:
		return c.ParseRecord.mutate(ctx, m)
	case *PhysicalFileMutation:
		return c.PhysicalFile.mutate(ctx, m)
	case *TemplateMutation:
		return c.Template.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractedFieldClient is a client for the ExtractedField schema.
type ExtractedFieldClient struct {
	config
}

// NewExtractedFieldClient returns a client for the ExtractedField from the given config.
func NewExtractedFieldClient(c config) *ExtractedFieldClient {
	return &ExtractedFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedfield.Hooks(f(g(h())))`.
func (c *ExtractedFieldClient) Use(hooks ...Hook) {
	c.hooks.ExtractedField = append(c.hooks.ExtractedField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedfield.Intercept(f(g(h())))`.
func (c *ExtractedFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedField = append(c.inters.ExtractedField, interceptors...)
}

// Create returns a builder for creating a ExtractedField entity.
func (c *ExtractedFieldClient) Create() *ExtractedFieldCreate {
	mutation := newExtractedFieldMutation(c.config, OpCreate)
	return &ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedField entities.
func (c *ExtractedFieldClient) CreateBulk(builders ...*ExtractedFieldCreate) *ExtractedFieldCreateBulk {
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedFieldClient) MapCreateBulk(slice any, setFunc func(*ExtractedFieldCreate, int)) *ExtractedFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedFieldCreateBulk{err: fmt.Errorf("calling to ExtractedFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedField.
func (c *ExtractedFieldClient) Update() *ExtractedFieldUpdate {
	mutation := newExtractedFieldMutation(c.config, OpUpdate)
	return &ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedFieldClient) UpdateOne(_m *ExtractedField) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedField(_m))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedFieldClient) UpdateOneID(id uuid.UUID) *ExtractedFieldUpdateOne {
	mutation := newExtractedFieldMutation(c.config, OpUpdateOne, withExtractedFieldID(id))
	return &ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedField.
func (c *ExtractedFieldClient) Delete() *ExtractedFieldDelete {
	mutation := newExtractedFieldMutation(c.config, OpDelete)
	return &ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedFieldClient) DeleteOne(_m *ExtractedField) *ExtractedFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedFieldClient) DeleteOneID(id uuid.UUID) *ExtractedFieldDeleteOne {
	builder := c.Delete().Where(extractedfield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedFieldDeleteOne{builder}
}

// Query returns a query builder for ExtractedField.
func (c *ExtractedFieldClient) Query() *ExtractedFieldQuery {
	return &ExtractedFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedField},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedField entity by its id.
func (c *ExtractedFieldClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedField, error) {
	return c.Query().Where(extractedfield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedFieldClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtraction queries the extraction edge of a ExtractedField.
func (c *ExtractedFieldClient) QueryExtraction(_m *ExtractedField) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedfield.Table, extractedfield.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedfield.ExtractionTable, extractedfield.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedFieldClient) Hooks() []Hook {
	return c.hooks.ExtractedField
}

// Interceptors returns the client interceptors.
func (c *ExtractedFieldClient) Interceptors() []Interceptor {
	return c.inters.ExtractedField
}

func (c *ExtractedFieldClient) mutate(ctx context.Context, m *ExtractedFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedField mutation op: %q", m.Op())
	}
}

// ExtractionClient is a client for the Extraction schema.
type ExtractionClient struct {
	config
}

// NewExtractionClient returns a client for the Extraction from the given config.
func NewExtractionClient(c config) *ExtractionClient {
	return &ExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extraction.Hooks(f(g(h())))`.
func (c *ExtractionClient) Use(hooks ...Hook) {
	c.hooks.Extraction = append(c.hooks.Extraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extraction.Intercept(f(g(h())))`.
func (c *ExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Extraction = append(c.inters.Extraction, interceptors...)
}

// Create returns a builder for creating a Extraction entity.
func (c *ExtractionClient) Create() *ExtractionCreate {
	mutation := newExtractionMutation(c.config, OpCreate)
	return &ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Extraction entities.
func (c *ExtractionClient) CreateBulk(builders ...*ExtractionCreate) *ExtractionCreateBulk {
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionClient) MapCreateBulk(slice any, setFunc func(*ExtractionCreate, int)) *ExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionCreateBulk{err: fmt.Errorf("calling to ExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Extraction.
func (c *ExtractionClient) Update() *ExtractionUpdate {
	mutation := newExtractionMutation(c.config, OpUpdate)
	return &ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionClient) UpdateOne(_m *Extraction) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtraction(_m))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionClient) UpdateOneID(id uuid.UUID) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtractionID(id))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Extraction.
func (c *ExtractionClient) Delete() *ExtractionDelete {
	mutation := newExtractionMutation(c.config, OpDelete)
	return &ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionClient) DeleteOne(_m *Extraction) *ExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionClient) DeleteOneID(id uuid.UUID) *ExtractionDeleteOne {
	builder := c.Delete().Where(extraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionDeleteOne{builder}
}

// Query returns a query builder for Extraction.
func (c *ExtractionClient) Query() *ExtractionQuery {
	return &ExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Extraction entity by its id.
func (c *ExtractionClient) Get(ctx context.Context, id uuid.UUID) (*Extraction, error) {
	return c.Query().Where(extraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionClient) GetX(ctx context.Context, id uuid.UUID) *Extraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a Extraction.
func (c *ExtractionClient) QueryFile(_m *Extraction) *PhysicalFileQuery {
	query := (&PhysicalFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(physicalfile.Table, physicalfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extraction.FileTable, extraction.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTemplate queries the template edge of a Extraction.
func (c *ExtractionClient) QueryTemplate(_m *Extraction) *TemplateQuery {
	query := (&TemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(template.Table, template.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extraction.TemplateTable, extraction.TemplateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFields queries the fields edge of a Extraction.
func (c *ExtractionClient) QueryFields(_m *Extraction) *ExtractedFieldQuery {
	query := (&ExtractedFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(extractedfield.Table, extractedfield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extraction.FieldsTable, extraction.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionClient) Hooks() []Hook {
	return c.hooks.Extraction
}

// Interceptors returns the client interceptors.
func (c *ExtractionClient) Interceptors() []Interceptor {
	return c.inters.Extraction
}

func (c *ExtractionClient) mutate(ctx context.Context, m *ExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Extraction mutation op: %q", m.Op())
	}
}

// ParseRecordClient is a client for the ParseRecord schema.
type ParseRecordClient struct {
	config
}

// NewParseRecordClient returns a client for the ParseRecord from the given config.
func NewParseRecordClient(c config) *ParseRecordClient {
	return &ParseRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parserecord.Hooks(f(g(h())))`.
func (c *ParseRecordClient) Use(hooks ...Hook) {
	c.hooks.ParseRecord = append(c.hooks.ParseRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parserecord.Intercept(f(g(h())))`.
func (c *ParseRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseRecord = append(c.inters.ParseRecord, interceptors...)
}

// Create returns a builder for creating a ParseRecord entity.
func (c *ParseRecordClient) Create() *ParseRecordCreate {
	mutation := newParseRecordMutation(c.config, OpCreate)
	return &ParseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseRecord entities.
func (c *ParseRecordClient) CreateBulk(builders ...*ParseRecordCreate) *ParseRecordCreateBulk {
	return &ParseRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseRecordClient) MapCreateBulk(slice any, setFunc func(*ParseRecordCreate, int)) *ParseRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseRecordCreateBulk{err: fmt.Errorf("calling to ParseRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseRecord.
func (c *ParseRecordClient) Update() *ParseRecordUpdate {
	mutation := newParseRecordMutation(c.config, OpUpdate)
	return &ParseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseRecordClient) UpdateOne(_m *ParseRecord) *ParseRecordUpdateOne {
	mutation := newParseRecordMutation(c.config, OpUpdateOne, withParseRecord(_m))
	return &ParseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseRecordClient) UpdateOneID(id uuid.UUID) *ParseRecordUpdateOne {
	mutation := newParseRecordMutation(c.config, OpUpdateOne, withParseRecordID(id))
	return &ParseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseRecord.
func (c *ParseRecordClient) Delete() *ParseRecordDelete {
	mutation := newParseRecordMutation(c.config, OpDelete)
	return &ParseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseRecordClient) DeleteOne(_m *ParseRecord) *ParseRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseRecordClient) DeleteOneID(id uuid.UUID) *ParseRecordDeleteOne {
	builder := c.Delete().Where(parserecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseRecordDeleteOne{builder}
}

// Query returns a query builder for ParseRecord.
func (c *ParseRecordClient) Query() *ParseRecordQuery {
	return &ParseRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseRecord entity by its id.
func (c *ParseRecordClient) Get(ctx context.Context, id uuid.UUID) (*ParseRecord, error) {
	return c.Query().Where(parserecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseRecordClient) GetX(ctx context.Context, id uuid.UUID) *ParseRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ParseRecord.
func (c *ParseRecordClient) QueryFile(_m *ParseRecord) *PhysicalFileQuery {
	query := (&PhysicalFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parserecord.Table, parserecord.FieldID, id),
			sqlgraph.To(physicalfile.Table, physicalfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, parserecord.FileTable, parserecord.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParseRecordClient) Hooks() []Hook {
	return c.hooks.ParseRecord
}

// Interceptors returns the client interceptors.
func (c *ParseRecordClient) Interceptors() []Interceptor {
	return c.inters.ParseRecord
}

func (c *ParseRecordClient) mutate(ctx context.Context, m *ParseRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseRecord mutation op: %q", m.Op())
	}
}

// PhysicalFileClient is a client for the PhysicalFile schema.
type PhysicalFileClient struct {
	config
}

// NewPhysicalFileClient returns a client for the PhysicalFile from the given config.
func NewPhysicalFileClient(c config) *PhysicalFileClient {
	return &PhysicalFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `physicalfile.Hooks(f(g(h())))`.
func (c *PhysicalFileClient) Use(hooks ...Hook) {
	c.hooks.PhysicalFile = append(c.hooks.PhysicalFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `physicalfile.Intercept(f(g(h())))`.
func (c *PhysicalFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhysicalFile = append(c.inters.PhysicalFile, interceptors...)
}

// Create returns a builder for creating a PhysicalFile entity.
func (c *PhysicalFileClient) Create() *PhysicalFileCreate {
	mutation := newPhysicalFileMutation(c.config, OpCreate)
	return &PhysicalFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhysicalFile entities.
func (c *PhysicalFileClient) CreateBulk(builders ...*PhysicalFileCreate) *PhysicalFileCreateBulk {
	return &PhysicalFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhysicalFileClient) MapCreateBulk(slice any, setFunc func(*PhysicalFileCreate, int)) *PhysicalFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhysicalFileCreateBulk{err: fmt.Errorf("calling to PhysicalFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhysicalFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhysicalFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhysicalFile.
func (c *PhysicalFileClient) Update() *PhysicalFileUpdate {
	mutation := newPhysicalFileMutation(c.config, OpUpdate)
	return &PhysicalFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhysicalFileClient) UpdateOne(_m *PhysicalFile) *PhysicalFileUpdateOne {
	mutation := newPhysicalFileMutation(c.config, OpUpdateOne, withPhysicalFile(_m))
	return &PhysicalFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhysicalFileClient) UpdateOneID(id uuid.UUID) *PhysicalFileUpdateOne {
	mutation := newPhysicalFileMutation(c.config, OpUpdateOne, withPhysicalFileID(id))
	return &PhysicalFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhysicalFile.
func (c *PhysicalFileClient) Delete() *PhysicalFileDelete {
	mutation := newPhysicalFileMutation(c.config, OpDelete)
	return &PhysicalFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhysicalFileClient) DeleteOne(_m *PhysicalFile) *PhysicalFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhysicalFileClient) DeleteOneID(id uuid.UUID) *PhysicalFileDeleteOne {
	builder := c.Delete().Where(physicalfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhysicalFileDeleteOne{builder}
}

// Query returns a query builder for PhysicalFile.
func (c *PhysicalFileClient) Query() *PhysicalFileQuery {
	return &PhysicalFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhysicalFile},
		inters: c.Interceptors(),
	}
}

// Get returns a PhysicalFile entity by its id.
func (c *PhysicalFileClient) Get(ctx context.Context, id uuid.UUID) (*PhysicalFile, error) {
	return c.Query().Where(physicalfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhysicalFileClient) GetX(ctx context.Context, id uuid.UUID) *PhysicalFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParseRecord queries the parse_record edge of a PhysicalFile.
func (c *PhysicalFileClient) QueryParseRecord(_m *PhysicalFile) *ParseRecordQuery {
	query := (&ParseRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalfile.Table, physicalfile.FieldID, id),
			sqlgraph.To(parserecord.Table, parserecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, physicalfile.ParseRecordTable, physicalfile.ParseRecordColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtractions queries the extractions edge of a PhysicalFile.
func (c *PhysicalFileClient) QueryExtractions(_m *PhysicalFile) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(physicalfile.Table, physicalfile.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, physicalfile.ExtractionsTable, physicalfile.ExtractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhysicalFileClient) Hooks() []Hook {
	return c.hooks.PhysicalFile
}

// Interceptors returns the client interceptors.
func (c *PhysicalFileClient) Interceptors() []Interceptor {
	return c.inters.PhysicalFile
}

func (c *PhysicalFileClient) mutate(ctx context.Context, m *PhysicalFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhysicalFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhysicalFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhysicalFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhysicalFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhysicalFile mutation op: %q", m.Op())
	}
}

// TemplateClient is a client for the Template schema.
type TemplateClient struct {
	config
}

// NewTemplateClient returns a client for the Template from the given config.
func NewTemplateClient(c config) *TemplateClient {
	return &TemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `template.Hooks(f(g(h())))`.
func (c *TemplateClient) Use(hooks ...Hook) {
	c.hooks.Template = append(c.hooks.Template, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `template.Intercept(f(g(h())))`.
func (c *TemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Template = append(c.inters.Template, interceptors...)
}

// Create returns a builder for creating a Template entity.
func (c *TemplateClient) Create() *TemplateCreate {
	mutation := newTemplateMutation(c.config, OpCreate)
	return &TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Template entities.
func (c *TemplateClient) CreateBulk(builders ...*TemplateCreate) *TemplateCreateBulk {
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TemplateClient) MapCreateBulk(slice any, setFunc func(*TemplateCreate, int)) *TemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TemplateCreateBulk{err: fmt.Errorf("calling to TemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Template.
func (c *TemplateClient) Update() *TemplateUpdate {
	mutation := newTemplateMutation(c.config, OpUpdate)
	return &TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TemplateClient) UpdateOne(_m *Template) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplate(_m))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TemplateClient) UpdateOneID(id uuid.UUID) *TemplateUpdateOne {
	mutation := newTemplateMutation(c.config, OpUpdateOne, withTemplateID(id))
	return &TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Template.
func (c *TemplateClient) Delete() *TemplateDelete {
	mutation := newTemplateMutation(c.config, OpDelete)
	return &TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TemplateClient) DeleteOne(_m *Template) *TemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TemplateClient) DeleteOneID(id uuid.UUID) *TemplateDeleteOne {
	builder := c.Delete().Where(template.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TemplateDeleteOne{builder}
}

// Query returns a query builder for Template.
func (c *TemplateClient) Query() *TemplateQuery {
	return &TemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a Template entity by its id.
func (c *TemplateClient) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	return c.Query().Where(template.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TemplateClient) GetX(ctx context.Context, id uuid.UUID) *Template {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtractions queries the extractions edge of a Template.
func (c *TemplateClient) QueryExtractions(_m *Template) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(template.Table, template.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, template.ExtractionsTable, template.ExtractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TemplateClient) Hooks() []Hook {
	return c.hooks.Template
}

// Interceptors returns the client interceptors.
func (c *TemplateClient) Interceptors() []Interceptor {
	return c.inters.Template
}

func (c *TemplateClient) mutate(ctx context.Context, m *TemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Template mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractedField, Extraction, ParseRecord, PhysicalFile, Template []ent.Hook
	}
	inters struct {
		ExtractedField, Extraction, ParseRecord, PhysicalFile,
		Template []ent.Interceptor
	}
)
