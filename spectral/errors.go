package spectral

import "errors"

var (
	// ErrInvalidGrid flags coordinate or energy arrays that do not form a
	// valid rectilinear spectrum.
	ErrInvalidGrid = errors.New("spectral: invalid grid")

	// ErrInvalidParameter flags out-of-range arguments such as reversed
	// split cutoffs or non-positive smoothing windows.
	ErrInvalidParameter = errors.New("spectral: invalid parameter")

	// ErrUnknownStat flags a statistic name with no registry entry.
	ErrUnknownStat = errors.New("spectral: unknown statistic")
)
