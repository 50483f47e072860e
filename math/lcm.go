package math

import "golang.org/x/exp/constraints"

// LcmMany finds the least common multiple of all elements.
//
// Corner cases:
//   - an empty slice yields 0
//   - a single-element slice yields that element
//   - an all-zero slice yields 0
//
// Overflow beyond the width of T is not detected.
func LcmMany[T constraints.Unsigned](elems []T) T {
	if len(elems) == 0 {
		return 0
	}
	if len(elems) == 1 {
		return elems[0]
	}

	gcd := GcdMany(elems)

	// GCD is zero only when every element is zero.
	if gcd == 0 {
		return 0
	}

	acc := elems[0] / gcd
	for _, e := range elems[1:] {
		acc *= e
	}
	return acc
}

// Lcm finds the least common multiple of a pair of numbers.
// Lcm(0, 0) is 0.
func Lcm[T constraints.Unsigned](lhs, rhs T) T {
	return LcmMany([]T{lhs, rhs})
}
