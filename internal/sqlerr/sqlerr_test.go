package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/devanap/fabrismart-full/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/mattn/go-sqlite3"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "sqlerr.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		UNIQUE (name, category)
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestClassifySQLiteUniqueViolation(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	insert := `INSERT INTO products (name, category, quantity) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, insert, "Mouse", "Electronics", 3); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	_, err := db.ExecContext(ctx, insert, "Mouse", "Electronics", 4)
	if err == nil {
		t.Fatal("expected duplicate insert to fail")
	}

	classified := Classify(err)
	if !errors.Is(classified, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", classified)
	}
	if errors.Is(classified, ErrStorageFailure) {
		t.Fatal("duplicate key must not match ErrStorageFailure")
	}

	var sqlErr *Error
	if !errors.As(classified, &sqlErr) {
		t.Fatalf("expected *Error, got %T", classified)
	}
	if sqlErr.TableName != "products" {
		t.Errorf("table = %q, want products", sqlErr.TableName)
	}
	if sqlErr.ColumnName != "name,category" {
		t.Errorf("columns = %q, want name,category", sqlErr.ColumnName)
	}
	if sqlErr.Message == "" {
		t.Error("original driver message should be kept")
	}
}

func TestClassifySQLiteCheckViolation(t *testing.T) {
	db := openSQLite(t)

	_, err := db.Exec(`INSERT INTO products (name, category, quantity) VALUES ('Mouse', 'Electronics', -1)`)
	if err == nil {
		t.Fatal("expected check constraint to fail")
	}

	classified := Classify(err)
	if ErrCode(classified) != CheckViolation {
		t.Fatalf("code = %s, want %s", ErrCode(classified), CheckViolation)
	}
	if !errors.Is(classified, ErrStorageFailure) {
		t.Fatal("check violation should match ErrStorageFailure")
	}
}

func TestClassifyMalformedStatement(t *testing.T) {
	db := openSQLite(t)

	_, err := db.Exec(`SELEC nonsense`)
	if err == nil {
		t.Fatal("expected syntax error")
	}

	classified := Classify(err)
	if !errors.Is(classified, ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", classified)
	}
	if errors.Is(classified, ErrDuplicateKey) {
		t.Fatal("syntax error must not match ErrDuplicateKey")
	}
}

func TestClassifyPassThrough(t *testing.T) {
	if Classify(nil) != nil {
		t.Fatal("Classify(nil) should be nil")
	}

	plain := errors.New("disk I/O error")
	once := Classify(plain)
	if !errors.Is(once, ErrStorageFailure) {
		t.Fatal("unknown errors classify as storage failures")
	}
	if !errors.Is(once, plain) {
		t.Fatal("classified error should unwrap to the original")
	}
	if twice := Classify(once); twice != once {
		t.Fatal("classifying twice should return the same error")
	}
	if errors.Is(Classify(context.Canceled), context.Canceled) == false {
		t.Fatal("context errors must stay visible through Classify")
	}
}

func TestConvertPgError(t *testing.T) {
	tests := []struct {
		sqlState string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"42P01", Other},
	}

	for _, tt := range tests {
		err := ConvertPgError(&pgconn.PgError{Code: tt.sqlState, Message: "boom", TableName: "employees"})
		if err.Code != tt.want {
			t.Errorf("ConvertPgError(%s).Code = %s, want %s", tt.sqlState, err.Code, tt.want)
		}
	}

	wrapped := Classify(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})
	if !errors.Is(wrapped, ErrDuplicateKey) {
		t.Fatal("pg unique violation should match ErrDuplicateKey")
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "sqlite composite unique",
			err:        &Error{Code: UniqueViolation, TableName: "products", ColumnName: "name,category"},
			wantStatus: http.StatusConflict,
			wantCode:   "PRODUCT_ALREADY_EXISTS",
		},
		{
			name:       "pg unique by constraint name",
			err:        &pgconn.PgError{Code: "23505", TableName: "employees", ConstraintName: "employees_email_key"},
			wantStatus: http.StatusConflict,
			wantCode:   "EMPLOYEE_ALREADY_EXISTS",
		},
		{
			name:       "not null",
			err:        &Error{Code: NotNullViolation, TableName: "products", ColumnName: "name"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PRODUCT_REQUIRED",
		},
		{
			name:       "check",
			err:        &Error{Code: CheckViolation, TableName: "products"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PRODUCT_INVALID",
		},
		{
			name:       "unknown",
			err:        errors.New("database is locked"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			if !errors.As(HandleError(tt.err), &httpErr) {
				t.Fatal("expected *errs.HTTPError")
			}
			if httpErr.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", httpErr.Status, tt.wantStatus)
			}
			if httpErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", httpErr.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleErrorMessages(t *testing.T) {
	var httpErr *errs.HTTPError

	err := HandleError(&Error{Code: UniqueViolation, TableName: "products", ColumnName: "name,category"})
	if !errors.As(err, &httpErr) {
		t.Fatal("expected *errs.HTTPError")
	}
	if want := "A Product with this Name and Category already exists"; httpErr.Message != want {
		t.Errorf("message = %q, want %q", httpErr.Message, want)
	}

	err = HandleError(errors.New("secret driver detail"))
	if !errors.As(err, &httpErr) {
		t.Fatal("expected *errs.HTTPError")
	}
	if httpErr.Message == "secret driver detail" {
		t.Error("internal errors must not leak driver text")
	}

	original := errs.NewNotFoundError("missing", true, nil)
	if HandleError(original) != error(original) {
		t.Error("HTTP errors should pass through unchanged")
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"employees_email_key":    "email",
		"unique_employees_email": "email",
		"products_pkey":          "",
		"":                       "",
	}
	for in, want := range tests {
		if got := extractColumnForUniqueViolation(in); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", in, got, want)
		}
	}
}
