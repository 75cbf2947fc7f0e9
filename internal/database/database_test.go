package database_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/devanap/fabrismart-full/internal/database"
	"github.com/devanap/fabrismart-full/internal/database/testutil"
	"github.com/devanap/fabrismart-full/internal/sqlerr"
)

const insertProduct = `INSERT INTO products (name, category, quantity) VALUES (?, ?, ?)`

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cfg := testutil.Config(t)
	db := testutil.DBWithConfig(t, cfg)

	if _, err := db.Insert(ctx, insertProduct, "Mouse", "Electronics", 3); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Second and third runs must neither fail nor drop data.
	for i := 0; i < 2; i++ {
		if err := db.EnsureSchema(ctx); err != nil {
			t.Fatalf("EnsureSchema run %d: %v", i+2, err)
		}
	}

	// A new handle on the same file sees the same rows.
	reopened := testutil.DBWithConfig(t, cfg)
	records, err := reopened.Query(ctx, `SELECT COUNT(*) AS total FROM products`)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got := records[0].Int64("total"); got != 1 {
		t.Fatalf("total = %d, want 1", got)
	}
}

func TestInsertAndQuery(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	id, err := db.Insert(ctx, insertProduct, "Keyboard", "Electronics", 0)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}

	records, err := db.Query(ctx, `SELECT id, name, category, quantity, created_at FROM products WHERE id = ?`, id)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("rows = %d, want 1", len(records))
	}

	rec := records[0]
	if rec.Int64("id") != id || rec.String("name") != "Keyboard" || rec.Int("quantity") != 0 {
		t.Fatalf("unexpected record: %v", rec.Columns())
	}
	if created := rec.Time("created_at"); created.IsZero() || time.Since(created) > time.Hour {
		t.Errorf("created_at = %v, want a recent timestamp", created)
	}
	if got := rec.Columns(); len(got) != 5 || got[0] != "id" || got[4] != "created_at" {
		t.Errorf("columns = %v, want query order", got)
	}
}

func TestQueryNoRowsIsEmpty(t *testing.T) {
	db := testutil.DB(t)

	records, err := db.Query(context.Background(), `SELECT id FROM products WHERE id = ?`, 42)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("records = %v, want empty slice", records)
	}
}

func TestDuplicateInsertIsClassified(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	if _, err := db.Insert(ctx, insertProduct, "Mouse", "Electronics", 1); err != nil {
		t.Fatalf("insert: %v", err)
	}

	_, err := db.Insert(ctx, insertProduct, "Mouse", "Electronics", 2)
	if !errors.Is(err, sqlerr.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	// Same name in another category is allowed.
	if _, err := db.Insert(ctx, insertProduct, "Mouse", "Gadgets", 2); err != nil {
		t.Fatalf("insert other category: %v", err)
	}

	// Email uniqueness ignores case.
	insertEmployee := `INSERT INTO employees (name, email, role) VALUES (?, ?, ?)`
	if _, err := db.Insert(ctx, insertEmployee, "Ana", "ana@corp.com", nil); err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	if _, err := db.Insert(ctx, insertEmployee, "Ana B", "ANA@corp.com", nil); !errors.Is(err, sqlerr.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for email, got %v", err)
	}
}

func TestFailedWriteRollsBack(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	_, err := db.Insert(ctx, insertProduct, "Mouse", "Electronics", -5)
	if !errors.Is(err, sqlerr.ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}

	records, err := db.Query(ctx, `SELECT COUNT(*) AS total FROM products`)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if records[0].Int64("total") != 0 {
		t.Fatal("failed insert must leave no row behind")
	}
}

func TestExecReportsAffectedRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	id, err := db.Insert(ctx, insertProduct, "Mouse", "Electronics", 1)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	affected, err := db.Exec(ctx, `UPDATE products SET quantity = ? WHERE id = ?`, 9, id)
	if err != nil || affected != 1 {
		t.Fatalf("update affected = %d, err = %v", affected, err)
	}

	affected, err = db.Exec(ctx, `DELETE FROM products WHERE id = ?`, id+100)
	if err != nil || affected != 0 {
		t.Fatalf("delete missing affected = %d, err = %v", affected, err)
	}
}

func TestMalformedStatementIsStorageFailure(t *testing.T) {
	db := testutil.DB(t)

	_, err := db.Query(context.Background(), `SELECT * FROM nowhere`)
	if !errors.Is(err, sqlerr.ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
}

func TestConcurrentDuplicateCreates(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	const workers = 8

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
		others     []error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := db.Insert(ctx, insertProduct, "Monitor", "Electronics", 4)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, sqlerr.ErrDuplicateKey):
				duplicates++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	if len(others) > 0 {
		t.Fatalf("unexpected errors: %v", others)
	}
	if successes != 1 || duplicates != workers-1 {
		t.Fatalf("successes = %d, duplicates = %d", successes, duplicates)
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)

	for _, name := range []string{"A", "B"} {
		if _, err := db.Insert(ctx, insertProduct, name, "Misc", 1); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	var first, second int64
	err := db.Snapshot(ctx, func(q database.Querier) error {
		records, err := q.Query(ctx, `SELECT COUNT(*) AS total FROM products`)
		if err != nil {
			return err
		}
		first = records[0].Int64("total")

		records, err = q.Query(ctx, `SELECT name FROM products ORDER BY name`)
		if err != nil {
			return err
		}
		second = int64(len(records))
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if first != 2 || second != 2 {
		t.Fatalf("first = %d, second = %d", first, second)
	}

	err = db.Snapshot(ctx, func(q database.Querier) error {
		_, err := q.Query(ctx, `SELECT broken FROM`)
		return err
	})
	if !errors.Is(err, sqlerr.ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
}

func TestDriverAndPing(t *testing.T) {
	db := testutil.DB(t)

	if db.Driver() != database.DialectSQLite {
		t.Fatalf("driver = %s", db.Driver())
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestRebind(t *testing.T) {
	stmt := `UPDATE products SET name = ?, quantity = ? WHERE id = ?`

	if got := database.DialectSQLite.Rebind(stmt); got != stmt {
		t.Errorf("sqlite rebind changed the statement: %q", got)
	}

	want := `UPDATE products SET name = $1, quantity = $2 WHERE id = $3`
	if got := database.DialectPostgres.Rebind(stmt); got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
}

func TestRecordAccessors(t *testing.T) {
	rec := database.NewRecord(
		[]string{"id", "role", "quantity", "created_at"},
		[]any{int64(7), nil, "12", "2024-03-01 10:20:30"},
	)

	if rec.Int64("id") != 7 {
		t.Errorf("id = %d", rec.Int64("id"))
	}
	if rec.NullString("role") != nil {
		t.Error("NULL role should be nil")
	}
	if rec.Int("quantity") != 12 {
		t.Errorf("quantity = %d", rec.Int("quantity"))
	}
	if got := rec.Time("created_at"); got.Year() != 2024 || got.Month() != time.March {
		t.Errorf("created_at = %v", got)
	}
	if rec.Value("missing") != nil || rec.At(10) != nil {
		t.Error("missing columns should read as nil")
	}
}
