// errors.go — sentinel errors for the builder package.
//
// Only sentinel variables are exposed; callers branch with errors.Is, and
// generators attach context via %w wrapping.
package builder

import "errors"

var (
	// ErrNonPositiveCount indicates a particle or pair count below one.
	ErrNonPositiveCount = errors.New("builder: count must be positive")

	// ErrNonPositiveSpacing indicates a spacing or separation that is zero or negative.
	ErrNonPositiveSpacing = errors.New("builder: spacing must be positive")

	// ErrEmptyBox indicates a gas generator received a box without volume.
	ErrEmptyBox = errors.New("builder: box must have positive extent on every axis")
)
