// Package safe provides helpers for safe numeric conversions with range checks.
package safe

import "fmt"

// Uint64 converts signed or unsigned integers to uint64, rejecting negative values.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
