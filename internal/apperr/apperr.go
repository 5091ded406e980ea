// Package apperr defines the error taxonomy shared by services and controllers.
// Controllers map these to HTTP status codes in one place; services only ever
// return wrapped sentinels or a ValidationError.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyAttempted means the candidate already has an exam result,
	// whether detected by the proactive existence check or by the store's
	// uniqueness constraint on insert. Both paths must look identical to callers.
	ErrAlreadyAttempted = errors.New("exam already attempted")

	// ErrDomainNotAssigned means the candidate has no domain and no exam can
	// be generated until an administrator assigns one.
	ErrDomainNotAssigned = errors.New("no domain assigned to this candidate")

	// ErrNoQuestions means the question pool for the candidate's domain is empty.
	ErrNoQuestions = errors.New("no questions available for this domain yet")

	// ErrConflict is a store-level duplicate rejection. On result insert it is
	// remapped to ErrAlreadyAttempted semantics at the HTTP boundary.
	ErrConflict = errors.New("conflicting record already exists")

	// ErrNotFound covers lookups of records that do not exist.
	ErrNotFound = errors.New("record not found")

	// ErrRepository wraps connectivity or query failures from the backing store.
	ErrRepository = errors.New("repository failure")

	// ErrInvalidCredentials covers failed logins without leaking which part failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive means the account exists but has been deactivated.
	ErrAccountInactive = errors.New("account is inactive")
)

// ValidationError reports malformed request content with a message safe to
// return to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Repositoryf wraps a low-level store error so errors.Is(err, ErrRepository) holds
// while the cause stays in the chain.
func Repositoryf(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrRepository, op, cause)
}
