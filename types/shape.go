package types

import (
	"fmt"
	"strings"
)

// Dynamic marks a dimension whose size is only known at run time.
const Dynamic = -1

// Shape is the list of tensor dimensions, outermost first. A nil Shape is
// unranked; an empty non-nil Shape is a scalar.
type Shape []int64

// Make returns a shape with the given dimensions.
func Make(dims ...int64) Shape {
	if dims == nil {
		return Shape{}
	}
	return Shape(dims)
}

// Rank is the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// IsStatic reports whether every dimension is known.
func (s Shape) IsStatic() bool {
	if s == nil {
		return false
	}
	for _, d := range s {
		if d < 0 {
			return false
		}
	}
	return true
}

// Size is the number of elements, or -1 for a shape that is not static.
func (s Shape) Size() int64 {
	if !s.IsStatic() {
		return Dynamic
	}
	size := int64(1)
	for _, d := range s {
		size *= d
	}
	return size
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if (s == nil) != (other == nil) || len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	return append(Shape{}, s...)
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	if s == nil {
		return "(unranked)"
	}
	parts := make([]string, len(s))
	for i, d := range s {
		if d < 0 {
			parts[i] = "?"
		} else {
			parts[i] = fmt.Sprint(d)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
