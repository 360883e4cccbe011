package source

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rickgao/playerdata-source/internal/database"
)

// slowDriver serves a fixed vote-count result set after a delay and records
// the peak number of connections that were open at once.
type slowDriver struct {
	delay time.Duration
	rows  [][]driver.Value

	open    atomic.Int32
	maxOpen atomic.Int32
}

func (d *slowDriver) Connect(context.Context) (driver.Conn, error) {
	n := d.open.Add(1)
	for {
		cur := d.maxOpen.Load()
		if n <= cur || d.maxOpen.CompareAndSwap(cur, n) {
			break
		}
	}
	return &slowConn{d: d}, nil
}

func (d *slowDriver) Driver() driver.Driver { return d }

func (d *slowDriver) Open(string) (driver.Conn, error) { return d.Connect(context.Background()) }

type slowConn struct {
	d      *slowDriver
	closed bool
}

func (c *slowConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *slowConn) Close() error {
	if !c.closed {
		c.closed = true
		c.d.open.Add(-1)
	}
	return nil
}

func (c *slowConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *slowConn) QueryContext(ctx context.Context, _ string, _ []driver.NamedValue) (driver.Rows, error) {
	select {
	case <-time.After(c.d.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &slowRows{rows: c.d.rows}, nil
}

type slowRows struct {
	rows [][]driver.Value
	i    int
}

func (r *slowRows) Columns() []string { return []string{"name", "uuid", "p_vote"} }

func (r *slowRows) Close() error { return nil }

func (r *slowRows) Next(dest []driver.Value) error {
	if r.i >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.i])
	r.i++
	return nil
}

func TestFetch_ConcurrentCallsBeyondPoolSize(t *testing.T) {
	drv := &slowDriver{
		delay: 20 * time.Millisecond,
		rows: [][]driver.Value{
			{"a", "uuid-a", int64(1)},
			{"b", "uuid-b", int64(2)},
		},
	}
	pool := database.NewPool(sql.OpenDB(drv))
	defer pool.Close()

	src := NewVoteCountSource(pool)

	const callers = 4 * database.MaxConns
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := src.Fetch(context.Background())
			if err != nil {
				errs <- err
				return
			}
			if len(records) != 2 || records[1].VoteCount != 2 {
				errs <- errors.New("unexpected records")
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Fetch() error = %v", err)
	}
	if got := drv.maxOpen.Load(); got > database.MaxConns {
		t.Errorf("peak open connections = %d, want <= %d", got, database.MaxConns)
	}
	if got := pool.Stats().WaitCount; got == 0 {
		t.Error("WaitCount = 0, want callers to have queued for a connection")
	}
}

func TestFetch_ContextCanceled(t *testing.T) {
	drv := &slowDriver{delay: time.Second}
	pool := database.NewPool(sql.OpenDB(drv))
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := NewVoteCountSource(pool).Fetch(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Fetch() error = %v, want deadline exceeded", err)
	}
	if !errors.Is(err, database.ErrConnection) {
		t.Errorf("Fetch() error = %v, want connection error", err)
	}
}
