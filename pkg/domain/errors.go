package domain

import (
	"errors"
	"fmt"
)

// RuleViolationError is returned when blocking violations are present. It is
// a business failure: the caller receives the first blocking message intact.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	for _, v := range e.Result.Violations {
		if v.Severity == SeverityBlock {
			return v.Message
		}
	}
	return "transaction blocked by rules"
}

// NotFoundError is returned when a referenced or targeted record does not
// exist. It is a business failure.
type NotFoundError struct {
	Entity EntityType
	ID     int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InvalidActorError is raised on the audit path when the acting user is
// missing or anonymous. It is a business failure.
type InvalidActorError struct{}

func (InvalidActorError) Error() string {
	return "acting user with a username is required"
}

// InvalidIDError is returned for lookups and deletions with a non-positive
// identifier. It is a business failure.
type InvalidIDError struct {
	Entity EntityType
	ID     int64
}

func (e InvalidIDError) Error() string {
	return fmt.Sprintf("invalid %s id %d", e.Entity, e.ID)
}

// SystemError wraps an unexpected lower-layer failure. The caller sees only
// a templated message naming the operation and entity type; the cause stays
// in the log.
type SystemError struct {
	Op     string
	Entity EntityType
	Cause  error
}

func (e SystemError) Error() string {
	return fmt.Sprintf("operation %s failed for %s", e.Op, e.Entity)
}

// Unwrap exposes the cause for logging and tests, not for user display.
func (e SystemError) Unwrap() error { return e.Cause }

// IsBusinessError reports whether err belongs to the expected, user-facing
// failure taxonomy. Business failures propagate unchanged through the
// service; everything else is wrapped into a SystemError.
func IsBusinessError(err error) bool {
	var rv RuleViolationError
	var nf NotFoundError
	var ia InvalidActorError
	var ii InvalidIDError
	return errors.As(err, &rv) || errors.As(err, &nf) || errors.As(err, &ia) || errors.As(err, &ii)
}
