// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the SQLite and PostgreSQL drivers
// and converts them into one classified *Error, so the rest of the
// application can tell a duplicate key apart from every other storage
// failure without ever looking at error text.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Code is the driver-independent category of a database error.
type Code string

const (
	Other               Code = "OTHER"
	UniqueViolation     Code = "UNIQUE_VIOLATION"
	ForeignKeyViolation Code = "FOREIGN_KEY_VIOLATION"
	NotNullViolation    Code = "NOT_NULL_VIOLATION"
	CheckViolation      Code = "CHECK_VIOLATION"
)

var (
	// ErrDuplicateKey matches any classified error caused by a unique or
	// primary key constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStorageFailure matches every other classified backend error:
	// I/O, corruption, malformed statements, other constraint kinds.
	ErrStorageFailure = errors.New("storage failure")
)

// Error is a classified database error.
//
// Message keeps the driver's original message; the driver error itself is
// reachable through Unwrap.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Is lets callers use errors.Is with ErrDuplicateKey and ErrStorageFailure.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrDuplicateKey:
		return e.Code == UniqueViolation
	case ErrStorageFailure:
		return e.Code != UniqueViolation
	}
	return false
}

// Classify converts any error returned by a driver into *Error.
//
// nil stays nil and an already classified error is returned unchanged, so
// calling Classify more than once is harmless.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return ConvertSQLiteError(liteErr)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}

	return &Error{
		Code:      Other,
		Message:   err.Error(),
		driverErr: err,
	}
}

// MapCode maps a PostgreSQL SQLSTATE onto Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// ConvertSQLiteError converts a sqlite3.Error into *Error.
//
// SQLite does not report table or column as separate fields, so they are
// parsed from messages like
//
//	UNIQUE constraint failed: products.name, products.category
func ConvertSQLiteError(src sqlite3.Error) *Error {
	code := Other
	switch src.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		code = UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		code = ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		code = NotNullViolation
	case sqlite3.ErrConstraintCheck:
		code = CheckViolation
	}

	table, columns := parseSQLiteConstraintTarget(src.Error())

	return &Error{
		Code:         code,
		DatabaseCode: fmt.Sprintf("%d", int(src.ExtendedCode)),
		Message:      src.Error(),
		TableName:    table,
		ColumnName:   strings.Join(columns, ","),
		driverErr:    src,
	}
}

// parseSQLiteConstraintTarget extracts "table" and ["col", ...] from the
// part of a constraint message after the colon. Targets that are not in
// table.column form (e.g. CHECK expressions) yield empty results.
func parseSQLiteConstraintTarget(message string) (string, []string) {
	_, target, found := strings.Cut(message, "constraint failed: ")
	if !found {
		return "", nil
	}

	var table string
	var columns []string
	for _, part := range strings.Split(target, ",") {
		tbl, col, ok := strings.Cut(strings.TrimSpace(part), ".")
		if !ok || strings.ContainsAny(col, " ()") {
			return "", nil
		}
		table = tbl
		columns = append(columns, col)
	}

	return table, columns
}
