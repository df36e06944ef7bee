package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Partner related errors
var (
	ErrPartnerNotFound = errors.Wrap(NotFoundError, "partner not found")

	ErrPartnerClientIdAlreadyExists = errors.Wrap(ConflictError,
		"a partner is already registered for this client id")
)

// Location related errors
var (
	ErrLocationExternalIdNotUnique = errors.Wrap(ConflictError,
		"not all location external ids are unique")

	// contact sync batch failures, used as sentinels by ContactSyncError
	ErrContactRegistrationFailed = errors.New("creating the contact person data failed")
	ErrContactUpdateFailed       = errors.New("updating the contact person data failed")
)

// ContactSyncError reports the outcome of a whole contact sync batch: the
// batch fails as a unit, but every per-location result is kept for
// diagnostics.
type ContactSyncError struct {
	sentinel error
	Results  []ContactSyncResult
}

func NewContactSyncError(sentinel error, results []ContactSyncResult) ContactSyncError {
	return ContactSyncError{sentinel: sentinel, Results: results}
}

func (e ContactSyncError) Error() string {
	return fmt.Sprintf("%s (%d locations in batch)", e.sentinel.Error(), len(e.Results))
}

func (e ContactSyncError) Unwrap() error {
	return e.sentinel
}
