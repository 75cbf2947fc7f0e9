package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/devanap/fabrismart-full/internal/sqlerr"
)

// Every operation below borrows one connection from the pool for its own
// duration and gives it back on every path, success or failure. Errors
// leave this package already classified by sqlerr.Classify.

// Querier runs read statements. *Database and the handle passed to a
// Snapshot callback both implement it.
type Querier interface {
	Query(ctx context.Context, stmt string, args ...any) ([]Record, error)
}

// Query runs a read statement and returns every row in result order.
// No rows is an empty slice, not an error.
func (db *Database) Query(ctx context.Context, stmt string, args ...any) ([]Record, error) {
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}
	defer conn.Close()

	return db.query(ctx, conn, stmt, args...)
}

// Exec runs one write statement inside its own transaction and returns the
// number of affected rows. On failure the transaction is rolled back.
func (db *Database) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	start := time.Now()
	defer db.observe(stmt, start)

	var affected int64

	err := db.write(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, db.dialect.Rebind(stmt), args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})

	return affected, err
}

// Insert runs one INSERT inside its own transaction and returns the id the
// store assigned to the new row.
func (db *Database) Insert(ctx context.Context, stmt string, args ...any) (int64, error) {
	start := time.Now()
	defer db.observe(stmt, start)

	var id int64

	err := db.write(ctx, func(tx *sql.Tx) error {
		if db.dialect == DialectPostgres {
			return tx.QueryRowContext(ctx, db.dialect.Rebind(stmt)+" RETURNING id", args...).Scan(&id)
		}

		res, err := tx.ExecContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})

	return id, err
}

// Snapshot runs fn inside one read transaction on one connection, so every
// query fn issues observes the same committed state.
func (db *Database) Snapshot(ctx context.Context, fn func(q Querier) error) error {
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return sqlerr.Classify(err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, db.dialect.snapshotOptions())
	if err != nil {
		return sqlerr.Classify(err)
	}
	// Read-only; rollback just releases the snapshot.
	defer tx.Rollback()

	return sqlerr.Classify(fn(&txQuerier{db: db, tx: tx}))
}

func (db *Database) write(ctx context.Context, fn func(tx *sql.Tx) error) error {
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return sqlerr.Classify(err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return sqlerr.Classify(err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}
		return sqlerr.Classify(err)
	}

	return sqlerr.Classify(tx.Commit())
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (db *Database) query(ctx context.Context, q queryer, stmt string, args ...any) ([]Record, error) {
	start := time.Now()
	defer db.observe(stmt, start)

	rows, err := q.QueryContext(ctx, db.dialect.Rebind(stmt), args...)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}

	records, err := scanRecords(rows)
	if err != nil {
		return nil, sqlerr.Classify(err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// observe logs statements slower than the configured threshold.
func (db *Database) observe(stmt string, start time.Time) {
	if db.slowQuery <= 0 {
		return
	}
	if elapsed := time.Since(start); elapsed > db.slowQuery {
		db.log.Warn().
			Str("statement", stmt).
			Dur("duration", elapsed).
			Msg("slow query")
	}
}

type txQuerier struct {
	db *Database
	tx *sql.Tx
}

func (t *txQuerier) Query(ctx context.Context, stmt string, args ...any) ([]Record, error) {
	return t.db.query(ctx, t.tx, stmt, args...)
}
