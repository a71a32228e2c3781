package solar

import "errors"

var (
	// ErrUnknownBody indicates an id that is not part of the configured body set.
	ErrUnknownBody = errors.New("solar: unknown body")

	// ErrInvalidCatalog indicates a catalog file that cannot be used.
	ErrInvalidCatalog = errors.New("solar: invalid catalog")
)
