package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rickgao/playerdata-source/internal/database"
	"github.com/rickgao/playerdata-source/internal/metrics"
	"github.com/rickgao/playerdata-source/internal/model"
)

// Querier runs a read query. *database.Pool satisfies it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// DataSource produces every record of one kind.
type DataSource[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// Option configures a Fetcher.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records every fetch on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Fetcher reads one record kind from the playerdata table.
// It holds no state besides the bound Querier and is safe for concurrent use.
type Fetcher[T any] struct {
	db      Querier
	proj    Projection[T]
	query   string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New binds a projection to a database.
func New[T any](db Querier, proj Projection[T], opts ...Option) *Fetcher[T] {
	o := buildOptions(opts)
	return &Fetcher[T]{
		db:      db,
		proj:    proj,
		query:   proj.Query(),
		logger:  o.logger.With("kind", string(proj.Kind)),
		metrics: o.metrics,
	}
}

// NewLastQuitSource returns the data source for last quit times.
func NewLastQuitSource(db Querier, opts ...Option) *Fetcher[model.PlayerLastQuit] {
	return New(db, LastQuit, opts...)
}

// NewBreakCountSource returns the data source for block break counts.
func NewBreakCountSource(db Querier, opts ...Option) *Fetcher[model.PlayerBreakCount] {
	return New(db, BreakCount, opts...)
}

// NewBuildCountSource returns the data source for build counts.
func NewBuildCountSource(db Querier, opts ...Option) *Fetcher[model.PlayerBuildCount] {
	return New(db, BuildCount, opts...)
}

// NewPlayTicksSource returns the data source for play ticks.
func NewPlayTicksSource(db Querier, opts ...Option) *Fetcher[model.PlayerPlayTicks] {
	return New(db, PlayTicks, opts...)
}

// NewVoteCountSource returns the data source for vote counts.
func NewVoteCountSource(db Querier, opts ...Option) *Fetcher[model.PlayerVoteCount] {
	return New(db, VoteCount, opts...)
}

// Kind returns the statistic this fetcher reads.
func (f *Fetcher[T]) Kind() Kind {
	return f.proj.Kind
}

// Fetch runs the query and returns one record per row, in the order the
// database returned them. Any error discards all rows read so far.
func (f *Fetcher[T]) Fetch(ctx context.Context) ([]T, error) {
	start := time.Now()

	records, err := f.fetch(ctx)
	elapsed := time.Since(start)

	if err != nil {
		f.metrics.ObserveFetch(string(f.proj.Kind), database.KindOf(err).String(), 0, elapsed)
		f.logger.Warn("fetch failed", "error", err, "duration", elapsed)
		return nil, err
	}

	f.metrics.ObserveFetch(string(f.proj.Kind), metrics.ResultSuccess, len(records), elapsed)
	f.logger.Debug("fetched records", "rows", len(records), "duration", elapsed)
	return records, nil
}

func (f *Fetcher[T]) fetch(ctx context.Context) ([]T, error) {
	rows, err := f.db.QueryContext(ctx, f.query)
	if err != nil {
		return nil, database.Classify("query "+table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, database.Classify("read columns", err)
	}

	layout, err := f.layout(columns)
	if err != nil {
		return nil, database.NewError(database.KindDecoding, "read columns", err)
	}

	records := make([]T, 0)
	dest := make([]any, len(columns))

	for rows.Next() {
		var player model.Player
		metric, build := f.proj.newRow()

		dest[layout.name] = &player.LastKnownName
		dest[layout.uuid] = &player.UUID
		dest[layout.metric] = metric

		if err := rows.Scan(dest...); err != nil {
			return nil, database.NewError(database.KindDecoding, fmt.Sprintf("scan row %d", len(records)), err)
		}

		records = append(records, build(player))
	}

	if err := rows.Err(); err != nil {
		return nil, database.Classify("read rows", err)
	}

	return records, nil
}

// columnLayout holds the position of each expected column in a result set.
type columnLayout struct {
	name, uuid, metric int
}

var errUnexpectedColumns = errors.New("unexpected result columns")

// layout locates the expected columns by name.
func (f *Fetcher[T]) layout(columns []string) (columnLayout, error) {
	l := columnLayout{name: -1, uuid: -1, metric: -1}

	for i, c := range columns {
		switch c {
		case columnName:
			l.name = i
		case columnUUID:
			l.uuid = i
		case f.proj.Column:
			l.metric = i
		default:
			return l, fmt.Errorf("%w: extra column %q", errUnexpectedColumns, c)
		}
	}

	for _, c := range []struct {
		name string
		pos  int
	}{{columnName, l.name}, {columnUUID, l.uuid}, {f.proj.Column, l.metric}} {
		if c.pos < 0 {
			return l, fmt.Errorf("%w: missing column %q", errUnexpectedColumns, c.name)
		}
	}

	return l, nil
}
