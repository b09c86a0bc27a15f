package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrStoreUnavailable is returned when the store cannot be reached within the
// bootstrap retry budget.
var ErrStoreUnavailable = errors.New("graph store unavailable")

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// QueryError wraps a query the store rejected, keeping its diagnostic.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query rejected by store: %s", e.Message())
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Message returns the store's own diagnostic message.
func (e *QueryError) Message() string {
	var myErr *mysql.MySQLError
	if errors.As(e.Err, &myErr) {
		return fmt.Sprintf("%d: %s", myErr.Number, myErr.Message)
	}
	return e.Err.Error()
}

func wrapQueryError(query string, err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Query: compactQuery(query), Err: err}
}

// IsDuplicateKey reports whether err is a primary/unique key collision.
func IsDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return false
}

// compactQuery collapses whitespace so queries fit on one log line.
func compactQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
