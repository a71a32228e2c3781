package ephemeris

import (
	"errors"

	"github.com/san-kum/orrery/internal/solar"
)

var (
	// ErrDataUnavailable indicates a dataset that is missing, unreadable or malformed.
	ErrDataUnavailable = errors.New("ephemeris: dataset unavailable")

	// ErrUnknownBody is returned by Position for ids outside the dataset.
	ErrUnknownBody = solar.ErrUnknownBody
)
