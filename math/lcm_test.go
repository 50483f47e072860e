package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLcmMany(t *testing.T) {
	tests := []struct {
		name  string
		elems []uint64
		want  uint64
	}{
		{name: "Empty_Slice", elems: []uint64{}, want: 0},
		{name: "Single_Element", elems: []uint64{223}, want: 223},
		{name: "Relative_Primes", elems: []uint64{1, 2, 3, 4, 5}, want: 120},
		{name: "Regular_Case", elems: []uint64{8, 24, 156, 36}, want: 269568},
		{name: "All_Zeros", elems: []uint64{0, 0, 0, 0}, want: 0},
		{name: "Mixed_Magnitudes", elems: []uint64{42, 8, 144}, want: 24192},
		{name: "Fibonacci_Neighbours", elems: []uint64{89, 144, 233, 377, 610}, want: 686719856160},
		{name: "Common_Factor_Five", elems: []uint64{25, 105, 235, 100}, want: 12337500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LcmMany(tt.elems))
		})
	}
}

func TestLcm(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs uint64
		want     uint64
	}{
		{name: "Regular_Case", lhs: 42, rhs: 144, want: 1008},
		{name: "Relative_Primes", lhs: 377, rhs: 610, want: 229970},
		{name: "Divisor_Pair", lhs: 105, rhs: 25, want: 525},
		{name: "Both_Zero", lhs: 0, rhs: 0, want: 0},
		{name: "Zero_Lhs", lhs: 0, rhs: 7, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lcm(tt.lhs, tt.rhs))
		})
	}
}
