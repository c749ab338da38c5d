// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/mediareap/mediareap/internal/ent/generated/migrate"
	ulid "github.com/oklog/ulid/v2"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/mediareap/mediareap/internal/ent/generated/deletionentry"
	"github.com/mediareap/mediareap/internal/ent/generated/downloadfile"
	"github.com/mediareap/mediareap/internal/ent/generated/scanmark"
	"github.com/mediareap/mediareap/internal/ent/generated/seedlink"
	"github.com/mediareap/mediareap/internal/ent/generated/transferrecord"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeletionEntry is the client for interacting with the DeletionEntry builders.
	DeletionEntry *DeletionEntryClient
	// DownloadFile is the client for interacting with the DownloadFile builders.
	DownloadFile *DownloadFileClient
	// ScanMark is the client for interacting with the ScanMark builders.
	ScanMark *ScanMarkClient
	// SeedLink is the client for interacting with the SeedLink builders.
	SeedLink *SeedLinkClient
	// TransferRecord is the client for interacting with the TransferRecord builders.
	TransferRecord *TransferRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeletionEntry = NewDeletionEntryClient(c.config)
	c.DownloadFile = NewDownloadFileClient(c.config)
	c.ScanMark = NewScanMarkClient(c.config)
	c.SeedLink = NewSeedLinkClient(c.config)
	c.TransferRecord = NewTransferRecordClient(c.config)
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
var ErrTxStarted = errors.New("generated: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("generated: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		DeletionEntry:  NewDeletionEntryClient(cfg),
		DownloadFile:   NewDownloadFileClient(cfg),
		ScanMark:       NewScanMarkClient(cfg),
		SeedLink:       NewSeedLinkClient(cfg),
		TransferRecord: NewTransferRecordClient(cfg),
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
		DeletionEntry:  NewDeletionEntryClient(cfg),
		DownloadFile:   NewDownloadFileClient(cfg),
		ScanMark:       NewScanMarkClient(cfg),
		SeedLink:       NewSeedLinkClient(cfg),
		TransferRecord: NewTransferRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeletionEntry.
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
	c.DeletionEntry.Use(hooks...)
	c.DownloadFile.Use(hooks...)
	c.ScanMark.Use(hooks...)
	c.SeedLink.Use(hooks...)
	c.TransferRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DeletionEntry.Intercept(interceptors...)
	c.DownloadFile.Intercept(interceptors...)
	c.ScanMark.Intercept(interceptors...)
	c.SeedLink.Intercept(interceptors...)
	c.TransferRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeletionEntryMutation:
		return c.DeletionEntry.mutate(ctx, m)
	case *DownloadFileMutation:
		return c.DownloadFile.mutate(ctx, m)
	case *ScanMarkMutation:
		return c.ScanMark.mutate(ctx, m)
	case *SeedLinkMutation:
		return c.SeedLink.mutate(ctx, m)
	case *TransferRecordMutation:
		return c.TransferRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("generated: unknown mutation type %T", m)
	}
}

// DeletionEntryClient is a client for the DeletionEntry schema.
type DeletionEntryClient struct {
	config
}

// NewDeletionEntryClient returns a client for the DeletionEntry from the given config.
func NewDeletionEntryClient(c config) *DeletionEntryClient {
	return &DeletionEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deletionentry.Hooks(f(g(h())))`.
func (c *DeletionEntryClient) Use(hooks ...Hook) {
	c.hooks.DeletionEntry = append(c.hooks.DeletionEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deletionentry.Intercept(f(g(h())))`.
func (c *DeletionEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeletionEntry = append(c.inters.DeletionEntry, interceptors...)
}

// Create returns a builder for creating a DeletionEntry entity.
func (c *DeletionEntryClient) Create() *DeletionEntryCreate {
	mutation := newDeletionEntryMutation(c.config, OpCreate)
	return &DeletionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeletionEntry entities.
func (c *DeletionEntryClient) CreateBulk(builders ...*DeletionEntryCreate) *DeletionEntryCreateBulk {
	return &DeletionEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeletionEntryClient) MapCreateBulk(slice any, setFunc func(*DeletionEntryCreate, int)) *DeletionEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeletionEntryCreateBulk{err: fmt.Errorf("calling to DeletionEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeletionEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeletionEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeletionEntry.
func (c *DeletionEntryClient) Update() *DeletionEntryUpdate {
	mutation := newDeletionEntryMutation(c.config, OpUpdate)
	return &DeletionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeletionEntryClient) UpdateOne(_m *DeletionEntry) *DeletionEntryUpdateOne {
	mutation := newDeletionEntryMutation(c.config, OpUpdateOne, withDeletionEntry(_m))
	return &DeletionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeletionEntryClient) UpdateOneID(id ulid.ULID) *DeletionEntryUpdateOne {
	mutation := newDeletionEntryMutation(c.config, OpUpdateOne, withDeletionEntryID(id))
	return &DeletionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeletionEntry.
func (c *DeletionEntryClient) Delete() *DeletionEntryDelete {
	mutation := newDeletionEntryMutation(c.config, OpDelete)
	return &DeletionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeletionEntryClient) DeleteOne(_m *DeletionEntry) *DeletionEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeletionEntryClient) DeleteOneID(id ulid.ULID) *DeletionEntryDeleteOne {
	builder := c.Delete().Where(deletionentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeletionEntryDeleteOne{builder}
}

// Query returns a query builder for DeletionEntry.
func (c *DeletionEntryClient) Query() *DeletionEntryQuery {
	return &DeletionEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeletionEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a DeletionEntry entity by its id.
func (c *DeletionEntryClient) Get(ctx context.Context, id ulid.ULID) (*DeletionEntry, error) {
	return c.Query().Where(deletionentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeletionEntryClient) GetX(ctx context.Context, id ulid.ULID) *DeletionEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeletionEntryClient) Hooks() []Hook {
	return c.hooks.DeletionEntry
}

// Interceptors returns the client interceptors.
func (c *DeletionEntryClient) Interceptors() []Interceptor {
	return c.inters.DeletionEntry
}

func (c *DeletionEntryClient) mutate(ctx context.Context, m *DeletionEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeletionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeletionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeletionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeletionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown DeletionEntry mutation op: %q", m.Op())
	}
}

// DownloadFileClient is a client for the DownloadFile schema.
type DownloadFileClient struct {
	config
}

// NewDownloadFileClient returns a client for the DownloadFile from the given config.
func NewDownloadFileClient(c config) *DownloadFileClient {
	return &DownloadFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `downloadfile.Hooks(f(g(h())))`.
func (c *DownloadFileClient) Use(hooks ...Hook) {
	c.hooks.DownloadFile = append(c.hooks.DownloadFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `downloadfile.Intercept(f(g(h())))`.
func (c *DownloadFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.DownloadFile = append(c.inters.DownloadFile, interceptors...)
}

// Create returns a builder for creating a DownloadFile entity.
func (c *DownloadFileClient) Create() *DownloadFileCreate {
	mutation := newDownloadFileMutation(c.config, OpCreate)
	return &DownloadFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DownloadFile entities.
func (c *DownloadFileClient) CreateBulk(builders ...*DownloadFileCreate) *DownloadFileCreateBulk {
	return &DownloadFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DownloadFileClient) MapCreateBulk(slice any, setFunc func(*DownloadFileCreate, int)) *DownloadFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DownloadFileCreateBulk{err: fmt.Errorf("calling to DownloadFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DownloadFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DownloadFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DownloadFile.
func (c *DownloadFileClient) Update() *DownloadFileUpdate {
	mutation := newDownloadFileMutation(c.config, OpUpdate)
	return &DownloadFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DownloadFileClient) UpdateOne(_m *DownloadFile) *DownloadFileUpdateOne {
	mutation := newDownloadFileMutation(c.config, OpUpdateOne, withDownloadFile(_m))
	return &DownloadFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DownloadFileClient) UpdateOneID(id ulid.ULID) *DownloadFileUpdateOne {
	mutation := newDownloadFileMutation(c.config, OpUpdateOne, withDownloadFileID(id))
	return &DownloadFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DownloadFile.
func (c *DownloadFileClient) Delete() *DownloadFileDelete {
	mutation := newDownloadFileMutation(c.config, OpDelete)
	return &DownloadFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DownloadFileClient) DeleteOne(_m *DownloadFile) *DownloadFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DownloadFileClient) DeleteOneID(id ulid.ULID) *DownloadFileDeleteOne {
	builder := c.Delete().Where(downloadfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DownloadFileDeleteOne{builder}
}

// Query returns a query builder for DownloadFile.
func (c *DownloadFileClient) Query() *DownloadFileQuery {
	return &DownloadFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDownloadFile},
		inters: c.Interceptors(),
	}
}

// Get returns a DownloadFile entity by its id.
func (c *DownloadFileClient) Get(ctx context.Context, id ulid.ULID) (*DownloadFile, error) {
	return c.Query().Where(downloadfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DownloadFileClient) GetX(ctx context.Context, id ulid.ULID) *DownloadFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DownloadFileClient) Hooks() []Hook {
	return c.hooks.DownloadFile
}

// Interceptors returns the client interceptors.
func (c *DownloadFileClient) Interceptors() []Interceptor {
	return c.inters.DownloadFile
}

func (c *DownloadFileClient) mutate(ctx context.Context, m *DownloadFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DownloadFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DownloadFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DownloadFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DownloadFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown DownloadFile mutation op: %q", m.Op())
	}
}

// ScanMarkClient is a client for the ScanMark schema.
type ScanMarkClient struct {
	config
}

// NewScanMarkClient returns a client for the ScanMark from the given config.
func NewScanMarkClient(c config) *ScanMarkClient {
	return &ScanMarkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scanmark.Hooks(f(g(h())))`.
func (c *ScanMarkClient) Use(hooks ...Hook) {
	c.hooks.ScanMark = append(c.hooks.ScanMark, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scanmark.Intercept(f(g(h())))`.
func (c *ScanMarkClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScanMark = append(c.inters.ScanMark, interceptors...)
}

// Create returns a builder for creating a ScanMark entity.
func (c *ScanMarkClient) Create() *ScanMarkCreate {
	mutation := newScanMarkMutation(c.config, OpCreate)
	return &ScanMarkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScanMark entities.
func (c *ScanMarkClient) CreateBulk(builders ...*ScanMarkCreate) *ScanMarkCreateBulk {
	return &ScanMarkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScanMarkClient) MapCreateBulk(slice any, setFunc func(*ScanMarkCreate, int)) *ScanMarkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScanMarkCreateBulk{err: fmt.Errorf("calling to ScanMarkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScanMarkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScanMarkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScanMark.
func (c *ScanMarkClient) Update() *ScanMarkUpdate {
	mutation := newScanMarkMutation(c.config, OpUpdate)
	return &ScanMarkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScanMarkClient) UpdateOne(_m *ScanMark) *ScanMarkUpdateOne {
	mutation := newScanMarkMutation(c.config, OpUpdateOne, withScanMark(_m))
	return &ScanMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScanMarkClient) UpdateOneID(id ulid.ULID) *ScanMarkUpdateOne {
	mutation := newScanMarkMutation(c.config, OpUpdateOne, withScanMarkID(id))
	return &ScanMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScanMark.
func (c *ScanMarkClient) Delete() *ScanMarkDelete {
	mutation := newScanMarkMutation(c.config, OpDelete)
	return &ScanMarkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScanMarkClient) DeleteOne(_m *ScanMark) *ScanMarkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScanMarkClient) DeleteOneID(id ulid.ULID) *ScanMarkDeleteOne {
	builder := c.Delete().Where(scanmark.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScanMarkDeleteOne{builder}
}

// Query returns a query builder for ScanMark.
func (c *ScanMarkClient) Query() *ScanMarkQuery {
	return &ScanMarkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScanMark},
		inters: c.Interceptors(),
	}
}

// Get returns a ScanMark entity by its id.
func (c *ScanMarkClient) Get(ctx context.Context, id ulid.ULID) (*ScanMark, error) {
	return c.Query().Where(scanmark.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScanMarkClient) GetX(ctx context.Context, id ulid.ULID) *ScanMark {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScanMarkClient) Hooks() []Hook {
	return c.hooks.ScanMark
}

// Interceptors returns the client interceptors.
func (c *ScanMarkClient) Interceptors() []Interceptor {
	return c.inters.ScanMark
}

func (c *ScanMarkClient) mutate(ctx context.Context, m *ScanMarkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScanMarkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScanMarkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScanMarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScanMarkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown ScanMark mutation op: %q", m.Op())
	}
}

// SeedLinkClient is a client for the SeedLink schema.
type SeedLinkClient struct {
	config
}

// NewSeedLinkClient returns a client for the SeedLink from the given config.
func NewSeedLinkClient(c config) *SeedLinkClient {
	return &SeedLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `seedlink.Hooks(f(g(h())))`.
func (c *SeedLinkClient) Use(hooks ...Hook) {
	c.hooks.SeedLink = append(c.hooks.SeedLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `seedlink.Intercept(f(g(h())))`.
func (c *SeedLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.SeedLink = append(c.inters.SeedLink, interceptors...)
}

// Create returns a builder for creating a SeedLink entity.
func (c *SeedLinkClient) Create() *SeedLinkCreate {
	mutation := newSeedLinkMutation(c.config, OpCreate)
	return &SeedLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SeedLink entities.
func (c *SeedLinkClient) CreateBulk(builders ...*SeedLinkCreate) *SeedLinkCreateBulk {
	return &SeedLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SeedLinkClient) MapCreateBulk(slice any, setFunc func(*SeedLinkCreate, int)) *SeedLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SeedLinkCreateBulk{err: fmt.Errorf("calling to SeedLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SeedLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SeedLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SeedLink.
func (c *SeedLinkClient) Update() *SeedLinkUpdate {
	mutation := newSeedLinkMutation(c.config, OpUpdate)
	return &SeedLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SeedLinkClient) UpdateOne(_m *SeedLink) *SeedLinkUpdateOne {
	mutation := newSeedLinkMutation(c.config, OpUpdateOne, withSeedLink(_m))
	return &SeedLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SeedLinkClient) UpdateOneID(id ulid.ULID) *SeedLinkUpdateOne {
	mutation := newSeedLinkMutation(c.config, OpUpdateOne, withSeedLinkID(id))
	return &SeedLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SeedLink.
func (c *SeedLinkClient) Delete() *SeedLinkDelete {
	mutation := newSeedLinkMutation(c.config, OpDelete)
	return &SeedLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SeedLinkClient) DeleteOne(_m *SeedLink) *SeedLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SeedLinkClient) DeleteOneID(id ulid.ULID) *SeedLinkDeleteOne {
	builder := c.Delete().Where(seedlink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SeedLinkDeleteOne{builder}
}

// Query returns a query builder for SeedLink.
func (c *SeedLinkClient) Query() *SeedLinkQuery {
	return &SeedLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSeedLink},
		inters: c.Interceptors(),
	}
}

// Get returns a SeedLink entity by its id.
func (c *SeedLinkClient) Get(ctx context.Context, id ulid.ULID) (*SeedLink, error) {
	return c.Query().Where(seedlink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SeedLinkClient) GetX(ctx context.Context, id ulid.ULID) *SeedLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SeedLinkClient) Hooks() []Hook {
	return c.hooks.SeedLink
}

// Interceptors returns the client interceptors.
func (c *SeedLinkClient) Interceptors() []Interceptor {
	return c.inters.SeedLink
}

func (c *SeedLinkClient) mutate(ctx context.Context, m *SeedLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SeedLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SeedLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SeedLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SeedLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown SeedLink mutation op: %q", m.Op())
	}
}

// TransferRecordClient is a client for the TransferRecord schema.
type TransferRecordClient struct {
	config
}

// NewTransferRecordClient returns a client for the TransferRecord from the given config.
func NewTransferRecordClient(c config) *TransferRecordClient {
	return &TransferRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transferrecord.Hooks(f(g(h())))`.
func (c *TransferRecordClient) Use(hooks ...Hook) {
	c.hooks.TransferRecord = append(c.hooks.TransferRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transferrecord.Intercept(f(g(h())))`.
func (c *TransferRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.TransferRecord = append(c.inters.TransferRecord, interceptors...)
}

// Create returns a builder for creating a TransferRecord entity.
func (c *TransferRecordClient) Create() *TransferRecordCreate {
	mutation := newTransferRecordMutation(c.config, OpCreate)
	return &TransferRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TransferRecord entities.
func (c *TransferRecordClient) CreateBulk(builders ...*TransferRecordCreate) *TransferRecordCreateBulk {
	return &TransferRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransferRecordClient) MapCreateBulk(slice any, setFunc func(*TransferRecordCreate, int)) *TransferRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransferRecordCreateBulk{err: fmt.Errorf("calling to TransferRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransferRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransferRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TransferRecord.
func (c *TransferRecordClient) Update() *TransferRecordUpdate {
	mutation := newTransferRecordMutation(c.config, OpUpdate)
	return &TransferRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransferRecordClient) UpdateOne(_m *TransferRecord) *TransferRecordUpdateOne {
	mutation := newTransferRecordMutation(c.config, OpUpdateOne, withTransferRecord(_m))
	return &TransferRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransferRecordClient) UpdateOneID(id ulid.ULID) *TransferRecordUpdateOne {
	mutation := newTransferRecordMutation(c.config, OpUpdateOne, withTransferRecordID(id))
	return &TransferRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TransferRecord.
func (c *TransferRecordClient) Delete() *TransferRecordDelete {
	mutation := newTransferRecordMutation(c.config, OpDelete)
	return &TransferRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransferRecordClient) DeleteOne(_m *TransferRecord) *TransferRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransferRecordClient) DeleteOneID(id ulid.ULID) *TransferRecordDeleteOne {
	builder := c.Delete().Where(transferrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransferRecordDeleteOne{builder}
}

// Query returns a query builder for TransferRecord.
func (c *TransferRecordClient) Query() *TransferRecordQuery {
	return &TransferRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransferRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a TransferRecord entity by its id.
func (c *TransferRecordClient) Get(ctx context.Context, id ulid.ULID) (*TransferRecord, error) {
	return c.Query().Where(transferrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransferRecordClient) GetX(ctx context.Context, id ulid.ULID) *TransferRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TransferRecordClient) Hooks() []Hook {
	return c.hooks.TransferRecord
}

// Interceptors returns the client interceptors.
func (c *TransferRecordClient) Interceptors() []Interceptor {
	return c.inters.TransferRecord
}

func (c *TransferRecordClient) mutate(ctx context.Context, m *TransferRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransferRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransferRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransferRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransferRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown TransferRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeletionEntry, DownloadFile, ScanMark, SeedLink, TransferRecord []ent.Hook
	}
	inters struct {
		DeletionEntry, DownloadFile, ScanMark, SeedLink,
		TransferRecord []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
