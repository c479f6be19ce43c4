//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call records one statement sent to a FakeDB.
type Call struct {
	SQL  string
	Args []any
}

// FakeDB serves canned results in call order. Each Query consumes one entry of QueryResults,
// each QueryRow one entry of RowResults and each Exec one entry of ExecResults.
type FakeDB struct {
	mu           sync.Mutex
	Calls        []Call
	QueryResults []*FakeRows
	QueryErrs    []error
	RowResults   []*FakeRow
	ExecResults  []ExecResult
}

type ExecResult struct {
	RowsAffected int64
	Err          error
}

func (f *FakeDB) record(sql string, args []any) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{SQL: sql, Args: args})
	return len(f.Calls) - 1
}

func (f *FakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.record(sql, args)
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.ExecResults) == 0 {
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	res := f.ExecResults[0]
	f.ExecResults = f.ExecResults[1:]
	if res.Err != nil {
		return pgconn.CommandTag{}, res.Err
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", res.RowsAffected)), nil
}

func (f *FakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.QueryErrs) > 0 {
		err := f.QueryErrs[0]
		f.QueryErrs = f.QueryErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if len(f.QueryResults) == 0 {
		return &FakeRows{}, nil
	}
	rows := f.QueryResults[0]
	f.QueryResults = f.QueryResults[1:]
	return rows, nil
}

func (f *FakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.RowResults) == 0 {
		return &FakeRow{Err: pgx.ErrNoRows}
	}
	row := f.RowResults[0]
	f.RowResults = f.RowResults[1:]
	return row
}

// FakeRows implements pgx.Rows over in-memory values. Each value is assigned to the
// matching Scan destination, so values must have the destination's element type.
type FakeRows struct {
	Data    [][]any
	ScanErr error
	IterErr error
	pos     int
	closed  bool
}

func NewRows(values ...[]any) *FakeRows {
	return &FakeRows{Data: values}
}

func (r *FakeRows) Close()                                       { r.closed = true }
func (r *FakeRows) Err() error                                   { return r.IterErr }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.closed || r.pos >= len(r.Data) {
		return false
	}
	r.pos++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	return assign(r.Data[r.pos-1], dest)
}

func (r *FakeRows) Values() ([]any, error) {
	return r.Data[r.pos-1], nil
}

type FakeRow struct {
	Values []any
	Err    error
}

func (r *FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: have %d values, %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v))
	}
	return nil
}
