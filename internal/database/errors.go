package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
)

// Kind classifies a database failure.
type Kind int

const (
	// KindConnection covers unreachable servers, rejected credentials,
	// unknown databases and broken connections.
	KindConnection Kind = iota + 1
	// KindQuery covers statements the server refused to run.
	KindQuery
	// KindDecoding covers rows that could not be mapped into a record.
	KindDecoding
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *Error's Kind.
var (
	ErrConnection = errors.New("connection error")
	ErrQuery      = errors.New("query error")
	ErrDecoding   = errors.New("decoding error")
)

// Error is a classified database failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError wraps err with a kind and the operation that failed.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrConnection:
		return e.Kind == KindConnection
	case ErrQuery:
		return e.Kind == KindQuery
	case ErrDecoding:
		return e.Kind == KindDecoding
	}
	return false
}

// MySQL server error numbers that mean the session could not be established.
var connectionErrorNumbers = map[uint16]bool{
	1040: true, // ER_CON_COUNT_ERROR
	1044: true, // ER_DBACCESS_DENIED_ERROR
	1045: true, // ER_ACCESS_DENIED_ERROR
	1049: true, // ER_BAD_DB_ERROR
	1129: true, // ER_HOST_IS_BLOCKED
	1130: true, // ER_HOST_NOT_PRIVILEGED
}

// Classify wraps a driver error with its Kind. Errors that are already
// classified are returned unchanged, and nil stays nil.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	return NewError(classifyKind(err), op, err)
}

func classifyKind(err error) Kind {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if connectionErrorNumbers[mysqlErr.Number] {
			return KindConnection
		}
		return KindQuery
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return KindConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnection
	}

	return KindQuery
}

// KindOf returns the Kind of a classified error, or 0 if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
