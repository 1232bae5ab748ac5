package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrSessionNotFound indicates that a session with the given ID does not exist.
	ErrSessionNotFound = errors.New("session not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidPeriodType indicates a period type outside daily/weekly/monthly/yearly.
	ErrInvalidPeriodType = errors.New("invalid period type")
)

// Presentation errors represent failures while deriving display output.
var (
	// ErrNothingToChart indicates that no result component is valid, so
	// there is no bar to draw.
	ErrNothingToChart = errors.New("no valid result component to chart")

	// ErrChartRender indicates that the chart library failed to produce an image.
	ErrChartRender = errors.New("failed to render chart")
)
