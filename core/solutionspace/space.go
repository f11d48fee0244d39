// Package solutionspace counts the schedules reachable for an instance
// shape: every arrangement of N distinct orders into M labeled ordered
// queues. Used for CLI diagnostics, not by the search itself.
package solutionspace

import (
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

// Compositions returns the number of ways to split N ordered slots over M
// labeled machines, allowing empty queues: C(N+M-1, M-1).
func Compositions(orders, machines int) int {
	if orders < 0 || machines <= 0 {
		return 0
	}
	return combin.Binomial(orders+machines-1, machines-1)
}

// Permutations returns N! as a big integer.
func Permutations(orders int) *big.Int {
	if orders < 0 {
		return big.NewInt(0)
	}
	return new(big.Int).MulRange(1, int64(orders))
}

// Size returns the total number of distinct schedules: N! × C(N+M-1, M-1).
func Size(orders, machines int) *big.Int {
	if orders < 0 || machines <= 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Mul(
		Permutations(orders),
		big.NewInt(int64(Compositions(orders, machines))),
	)
}
