package domain

import "errors"

var (
	// ErrContactNotFound covers both truly absent contacts and contacts
	// owned by another user; the two cases are indistinguishable on purpose.
	ErrContactNotFound = errors.New("contact not found")

	// ErrInvalidDateFormat is returned when birth_date is not a valid
	// dd.mm.yyyy calendar date.
	ErrInvalidDateFormat = errors.New("invalid date format, use dd.mm.yyyy")

	// ErrMissingSearchCriterion is returned when a search request supplies
	// no criterion at all.
	ErrMissingSearchCriterion = errors.New("at least one query parameter must be provided")
)
