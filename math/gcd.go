// Package math provides number-theory helpers for unsigned integers:
// greatest common divisor (pairwise, many-element and extended forms)
// and least common multiple.
package math

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GcdMany finds the greatest common divisor of all elements.
//
// Corner cases:
//   - an empty slice yields 0
//   - a single-element slice yields that element
//
// Stein's binary algorithm is used; time complexity is O(K*N^2) for K
// elements of at most N bits.
func GcdMany[T constraints.Unsigned](elems []T) T {
	if len(elems) == 0 {
		return 0
	}
	if len(elems) == 1 {
		return elems[0]
	}

	var acc T
	for _, e := range elems {
		acc = gcdPair(acc, e)
	}
	return acc
}

// Gcd finds the greatest common divisor of a pair of numbers.
// Gcd(0, 0) is 0.
func Gcd[T constraints.Unsigned](lhs, rhs T) T {
	return GcdMany([]T{lhs, rhs})
}

// gcdPair is one Stein step of the GcdMany fold.
func gcdPair[T constraints.Unsigned](lhs, rhs T) T {
	if lhs == 0 || rhs == 0 {
		return lhs | rhs
	}

	// Common factor of two shared by both operands.
	shift := bits.TrailingZeros64(uint64(lhs | rhs))

	rhs >>= bits.TrailingZeros64(uint64(rhs))
	for lhs > 0 {
		lhs >>= bits.TrailingZeros64(uint64(lhs))
		if rhs > lhs {
			lhs, rhs = rhs, lhs
		}
		lhs -= rhs
	}

	return rhs << shift
}

// ExtendedGcd finds the greatest common divisor g of lhs and rhs together
// with Bézout coefficients x and y such that
//
//	x*lhs + y*rhs = g
//
// ExtendedGcd(0, 0) yields (0, 1, 0). The extended form uses Euclid's
// algorithm rather than Stein's because the coefficient recurrence needs
// the quotient; time complexity is O(log min(lhs, rhs)).
func ExtendedGcd(lhs, rhs uint64) (g uint64, x, y int64) {
	x, y = 1, 0
	x1, y1 := int64(0), int64(1)
	lhs1, rhs1 := lhs, rhs

	for rhs1 > 0 {
		q := lhs1 / rhs1
		x, x1 = x1, x-int64(q)*x1
		y, y1 = y1, y-int64(q)*y1
		lhs1, rhs1 = rhs1, lhs1-q*rhs1
	}

	return lhs1, x, y
}
