// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Errors that already are [apperr.AppError] pass through untouched so that
// repositories can return domain-specific NotFound / Constraint errors from
// inside a transaction.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE classification
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.ForeignKeyViolation:
			appError := apperr.Constraint("Referenced record does not exist")
			appError.Cause = err
			return appError
		case pgerrcode.UniqueViolation:
			appError := apperr.Conflict("Record already exists")
			appError.Cause = err
			return appError
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			appError := apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   pgError.ColumnName,
				Message: "Value rejected by the store",
			})
			appError.Cause = err
			return appError
		}
	}

	// 3. Everything else is a store-level failure
	return apperr.Persistence(fmt.Errorf("%s: %w", action, err))
}

// NotFound narrows a generic [ErrNotFound] into a resource-specific one.
// Other errors are returned unchanged.
func NotFound(err error, resource string) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(resource)
	}
	return err
}
