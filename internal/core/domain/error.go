package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound = errors.New("data not found")
	ErrStore        = errors.New("store error")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Pipeline errors.
	ErrValidation      = errors.New("validation error")
	ErrConfiguration   = errors.New("configuration error")
	ErrPersistence     = errors.New("persistence error")
	ErrNotification    = errors.New("notification error")
	ErrNothingToExport = errors.New("no pending payouts to export")
)
