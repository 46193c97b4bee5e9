package indicator

import "errors"

// Sentinel errors for caller mistakes.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrNegativeCount indicates a negative progress increment or position.
	// The indicator's state is unchanged when this is returned.
	ErrNegativeCount = errors.New("negative progress count")

	// ErrInvalidTotal indicates a negative total passed at construction.
	ErrInvalidTotal = errors.New("invalid total")
)
