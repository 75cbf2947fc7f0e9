package database

import (
	"database/sql"
	"strconv"
	"strings"
)

// Dialect names a supported backend. Values match config.DatabaseConfig.Driver.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Rebind rewrites "?" placeholders into the dialect's bind syntax.
//
// Statements in this repo are written once with "?" and never contain a
// literal question mark.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// snapshotOptions returns the transaction options for a consistent
// multi-statement read.
//
// A SQLite read transaction already sees one snapshot; postgres needs
// repeatable read for that.
func (d Dialect) snapshotOptions() *sql.TxOptions {
	if d == DialectPostgres {
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return &sql.TxOptions{Isolation: sql.LevelDefault}
}
