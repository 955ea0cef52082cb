package repository

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced by repositories so callers can branch without
// inspecting driver-specific error text.
var (
	// ErrDuplicate means an insert violated a UNIQUE constraint.
	ErrDuplicate = errors.New("repository: duplicate entry")
	// ErrConstraint means an insert violated a CHECK/NOT NULL/FK constraint.
	ErrConstraint = errors.New("repository: constraint violation")
)

// classifyConstraintErr maps a SQLite driver error to a sentinel when it is a
// recognizable integrity violation. Other errors pass through unchanged.
func classifyConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrConstraint
	}
	return err
}
