package digamma

import (
	"math/big"
	"sync"
)

// Bernoulli numbers via the Akiyama–Tanigawa recurrence. The working row is
// kept so later calls extend the table instead of starting over.
var (
	bernMu  sync.Mutex
	bernRow []*big.Rat
	bernTab []*big.Rat
)

// bernoulli returns B_n (B_1 = +1/2 in this convention; only even n are used).
func bernoulli(n int) *big.Rat {
	bernMu.Lock()
	defer bernMu.Unlock()
	for m := len(bernTab); m <= n; m++ {
		bernRow = append(bernRow, big.NewRat(1, int64(m+1)))
		for j := m; j >= 1; j-- {
			t := new(big.Rat).Sub(bernRow[j-1], bernRow[j])
			bernRow[j-1] = t.Mul(t, big.NewRat(int64(j), 1))
		}
		bernTab = append(bernTab, new(big.Rat).Set(bernRow[0]))
	}
	return new(big.Rat).Set(bernTab[n])
}

// coefficient is B_2k / (2k), the k-th asymptotic series coefficient.
func coefficient(k int) *big.Rat {
	c := bernoulli(2 * k)
	return c.Quo(c, big.NewRat(int64(2*k), 1))
}
