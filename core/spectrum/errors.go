// core/spectrum/errors.go
package spectrum

import "errors"

var (
	// ErrConfiguration marks invalid fit setup: bad observation lists,
	// unsupported statistic or backend names, missing responses. Raised
	// before any iteration begins, never retried.
	ErrConfiguration = errors.New("spectrum: invalid configuration")

	// ErrUnitMismatch means predicted counts carry a physical unit that is
	// not count-equivalent. Fatal for the fit.
	ErrUnitMismatch = errors.New("spectrum: predicted counts are not count-like")

	// ErrUnsupportedStatistic marks an unknown fit-statistic name.
	ErrUnsupportedStatistic = errors.New("spectrum: unsupported statistic")

	// ErrNotImplemented marks declared but unimplemented operations.
	ErrNotImplemented = errors.New("spectrum: not implemented")

	// ErrEmptyFitRange means no bin of an observation survives fit-range
	// selection.
	ErrEmptyFitRange = errors.New("spectrum: no bins in fit range")
)
