package services

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by the service layer. Controllers map these to
// HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidState = errors.New("invalid state")
	ErrDuplicate    = errors.New("duplicate value")
	ErrValidation   = errors.New("validation failed")
	ErrCollaborator = errors.New("external collaborator failed")
)

// IsUniqueViolation reports whether err is a uniqueness constraint failure
// surfaced by the store (Postgres 23505 or the SQLite equivalent).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
