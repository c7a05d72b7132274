package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("nope")
	mapped := ToDomainError(original)
	if mapped.HTTPStatus != http.StatusForbidden || mapped.Message != "nope" {
		t.Fatalf("DomainError not passed through: %+v", mapped)
	}
}

func TestToDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNotFound("User"))
	mapped := ToDomainError(wrapped)
	if mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("wrapped DomainError not unwrapped: %+v", mapped)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("ErrNoRows should map to 404, got %d", mapped.HTTPStatus)
	}
}

func TestToDomainErrorUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown error should map to 500, got %d", mapped.HTTPStatus)
	}
	if mapped.Message != "Internal server error" {
		t.Fatalf("internal error leaks cause: %q", mapped.Message)
	}
	if !errors.Is(mapped, mapped.Err) {
		t.Fatal("cause not preserved for logging")
	}
}

func TestConflictIsBadRequest(t *testing.T) {
	mapped := ToDomainError(NewConflict("Email already in use"))
	if mapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("conflicts surface as 400, got %d", mapped.HTTPStatus)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil error should map to nil")
	}
}
