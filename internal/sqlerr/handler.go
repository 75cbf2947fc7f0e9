package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/devanap/fabrismart-full/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// If err can be unwrapped into *sqlerr.Error its Code is returned,
// otherwise sqlerr.Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError keeps the SQLSTATE and the table, column and constraint
// names of a postgres error so messages can name the offending field.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// errorActions names what went wrong per code, for error codes such as
// PRODUCT_ALREADY_EXISTS or EMPLOYEE_REQUIRED.
var errorActions = map[Code]string{
	ForeignKeyViolation: "NOT_FOUND",
	UniqueViolation:     "ALREADY_EXISTS",
	NotNullViolation:    "REQUIRED",
	CheckViolation:      "INVALID",
}

// generateErrorCode builds <ENTITY>_<ACTION> from the table the error hit.
func generateErrorCode(tableName string, errType Code) string {
	entity := "RECORD"
	if tableName != "" {
		entity = strings.ToUpper(singular(tableName))
	}

	action, ok := errorActions[errType]
	if !ok {
		action = "ERROR"
	}
	return entity + "_" + action
}

// singular drops one trailing "s": "products" -> "product". Both tables
// follow that rule.
func singular(name string) string {
	if len(name) > 1 {
		return strings.TrimSuffix(name, "s")
	}
	return name
}

// formatUserFriendlyMessage produces an end-user-facing error message.
//
// This message is intended for clients / UI, not for logs.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later when the column can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName names the entity in a message: the referenced entity for
// a *_id column, else the singular table name, else "record".
func getEntityName(tableName, columnName string) string {
	if base, ok := strings.CutSuffix(strings.ToLower(columnName), "_id"); ok && base != "" {
		return humanizeText(base)
	}
	if tableName != "" {
		return humanizeText(singular(tableName))
	}
	return "record"
}

// humanizeText converts snake_case identifiers into Title Case.
//
// Example:
//
//	"created_at" -> "Created At"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// humanizeColumns renders a comma separated column list for messages.
//
// Example:
//
//	"name,category" -> "Name and Category"
func humanizeColumns(columns string) string {
	var parts []string
	for _, column := range strings.Split(columns, ",") {
		if column = strings.TrimSpace(column); column != "" {
			parts = append(parts, humanizeText(column))
		}
	}
	return strings.Join(parts, " and ")
}

var uniqueKeySuffix = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation reads the column out of a unique
// constraint name, for "unique_<table>_<column>" and
// "<table>_<column>_key" (employees_email_key -> "email").
func extractColumnForUniqueViolation(constraintName string) string {
	if rest, ok := strings.CutPrefix(constraintName, "unique_"); ok {
		if i := strings.LastIndex(rest, "_"); i >= 0 {
			return rest[i+1:]
		}
	}

	if matches := uniqueKeySuffix.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError converts a database error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - Unique violation: 409 Conflict
//   - Not-null / check / foreign key violation: 400 Bad Request
//   - Otherwise: a generic 500 that never exposes driver text
//
// Services call it for failures they have no domain-specific mapping for.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var sqlErr *Error
	if !errors.As(Classify(err), &sqlErr) {
		return errs.NewInternalServerError()
	}

	errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
	userMessage := formatUserFriendlyMessage(sqlErr)

	switch sqlErr.Code {
	case UniqueViolation:
		columnName := humanizeColumns(sqlErr.ColumnName)
		if columnName == "" {
			columnName = humanizeText(extractColumnForUniqueViolation(sqlErr.ConstraintName))
		}
		if columnName != "" {
			userMessage = strings.ReplaceAll(userMessage, "identifier", columnName)
		}
		return errs.NewConflictError(userMessage, true, &errorCode)

	case NotNullViolation:
		fieldErrors := []errs.FieldError{
			{
				Field: strings.ToLower(sqlErr.ColumnName),
				Error: "is required",
			},
		}
		return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

	case ForeignKeyViolation, CheckViolation:
		return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

	default:
		return errs.NewInternalServerError()
	}
}
