// Input errors reported by the converters.
package numwords

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFinite matches any *NotFiniteError through errors.Is.
	ErrNotFinite = errors.New("numwords: not a finite number")

	// ErrUnsafeRange matches any *UnsafeRangeError through errors.Is.
	ErrUnsafeRange = errors.New("numwords: number out of safe range")
)

// NotFiniteError reports input that resolves to NaN or ±Inf, including
// strings without leading digits.
type NotFiniteError struct {
	Value any
}

func (e *NotFiniteError) Error() string {
	return fmt.Sprintf("numwords: not a finite number: %v (%T)", e.Value, e.Value)
}

// Is reports whether target is ErrNotFinite.
func (e *NotFiniteError) Is(target error) bool {
	return target == ErrNotFinite
}

// UnsafeRangeError reports input whose integer part is larger in magnitude
// than MaxSafe.
type UnsafeRangeError struct {
	Value any
}

func (e *UnsafeRangeError) Error() string {
	return fmt.Sprintf("numwords: %v is not a safe number, it is either too large or too small", e.Value)
}

// Is reports whether target is ErrUnsafeRange.
func (e *UnsafeRangeError) Is(target error) bool {
	return target == ErrUnsafeRange
}
