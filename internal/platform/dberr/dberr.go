// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bpetkov/modena/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the
// error type. The action tag names the failed operation for the error cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE classification
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			// Duplicate slug, attribute code, or override key.
			return apperr.Conflict("A record with the same identity already exists")
		case pgerrcode.ForeignKeyViolation:
			// Override rows reference catalogue codes; a miss here means the
			// write raced a catalogue change.
			return apperr.Unprocessable("The referenced record does not exist")
		case pgerrcode.CheckViolation:
			return apperr.ValidationError("The value violates a storage constraint")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError keeps the failed operation name attached to the cause for
// server-side logs without leaking it to clients.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string {
	return e.action + ": " + e.cause.Error()
}

func (e *actionError) Unwrap() error {
	return e.cause
}
