package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	// ErrNoMarketData marks role-scoped lookups with zero historical
	// records. Most computations absorb sparse data into neutral defaults;
	// the few that cannot (salary ranges, role requirements) surface this
	// sentinel for the caller to map or fall back on.
	ErrNoMarketData = errors.New("no market data for role")
)
