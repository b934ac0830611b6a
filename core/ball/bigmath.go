// core/ball/bigmath.go
//
// Elementary functions on bare big.Floats. Each routine works with guardBits
// extra bits and returns a value whose error is well below one ulp at the
// requested precision; elem.go turns that into a radius.

package ball

import (
	"math"
	"math/big"
	"sync"
)

const guardBits = 32

var (
	piMu    sync.Mutex
	piCache *big.Float
)

// piFloat returns π rounded to prec bits.
func piFloat(prec uint) *big.Float {
	piMu.Lock()
	defer piMu.Unlock()
	if piCache == nil || piCache.Prec() < prec+guardBits {
		piCache = machinPi(prec + guardBits)
	}
	return newMid(prec).Set(piCache)
}

// machinPi uses π = 16·atan(1/5) - 4·atan(1/239).
func machinPi(prec uint) *big.Float {
	wp := prec + 16
	a := atanInv(5, wp)
	a.Mul(a, big.NewFloat(16))
	b := atanInv(239, wp)
	b.Mul(b, big.NewFloat(4))
	return newMid(prec).Sub(a, b)
}

// atanInv sums atan(1/n) = Σ (-1)^k / ((2k+1)·n^(2k+1)).
func atanInv(n int64, prec uint) *big.Float {
	nf := new(big.Float).SetInt64(n)
	n2 := new(big.Float).SetInt64(n * n)
	p := newMid(prec).Quo(big.NewFloat(1), nf)
	sum := newMid(prec).Set(p)
	t := newMid(prec)
	for k := int64(1); ; k++ {
		p.Quo(p, n2)
		t.Quo(p, new(big.Float).SetInt64(2*k+1))
		if t.Sign() == 0 || t.MantExp(nil) < -int(prec) {
			break
		}
		if k%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
	}
	return sum
}

// expFloat halves x until it is below 2^-8, sums the Taylor series and squares back.
func expFloat(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return newMid(prec).SetInt64(1)
	}
	s := 0
	if e := x.MantExp(nil); e > -8 {
		s = e + 8
	}
	wp := prec + guardBits + uint(s)
	r := newMid(wp).SetMantExp(x, -s)

	sum := newMid(wp).SetInt64(1)
	term := newMid(wp).SetInt64(1)
	for k := int64(1); ; k++ {
		term.Mul(term, r)
		term.Quo(term, new(big.Float).SetInt64(k))
		if term.Sign() == 0 || term.MantExp(nil) < -int(wp) {
			break
		}
		sum.Add(sum, term)
	}
	for i := 0; i < s; i++ {
		sum.Mul(sum, sum)
	}
	return newMid(prec).Set(sum)
}

// logFloat solves e^y = x by Halley iteration; x must be positive.
func logFloat(x *big.Float, prec uint) *big.Float {
	wp := prec + guardBits
	mant := new(big.Float)
	e := x.MantExp(mant)
	mf, _ := mant.Float64()
	y := newMid(wp).SetFloat64(math.Log(mf) + float64(e)*math.Ln2)

	xw := newMid(wp).Set(x)
	num, den := newMid(wp), newMid(wp)
	for i := 0; i < 64; i++ {
		ey := expFloat(y, wp)
		num.Sub(xw, ey)
		den.Add(xw, ey)
		num.Quo(num, den)
		num.Mul(num, big.NewFloat(2))
		y.Add(y, num)
		if num.Sign() == 0 {
			break
		}
		lim := -int(wp)
		if ye := y.MantExp(nil); ye > 0 {
			lim += ye
		}
		if num.MantExp(nil) < lim {
			break
		}
	}
	return newMid(prec).Set(y)
}

// atanFloat reduces |x| <= 1 by reciprocal, halves the angle with
// atan(a) = 2·atan(a / (1 + sqrt(1 + a²))) and sums the Taylor series.
func atanFloat(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return newMid(prec)
	}
	wp := prec + guardBits
	one := big.NewFloat(1)
	a := newMid(wp).Abs(x)
	invert := a.Cmp(one) > 0
	if invert {
		a.Quo(one, a)
	}

	k := 0
	tmp := newMid(wp)
	for a.Sign() != 0 && a.MantExp(nil) > -10 {
		tmp.Mul(a, a)
		tmp.Add(tmp, one)
		tmp.Sqrt(tmp)
		tmp.Add(tmp, one)
		a.Quo(a, tmp)
		k++
	}

	sum := newMid(wp).Set(a)
	p := newMid(wp).Set(a)
	a2 := newMid(wp).Mul(a, a)
	lim := a.MantExp(nil) - int(wp)
	for n := int64(1); ; n++ {
		p.Mul(p, a2)
		tmp.Quo(p, new(big.Float).SetInt64(2*n+1))
		if tmp.Sign() == 0 || tmp.MantExp(nil) < lim {
			break
		}
		if n%2 == 1 {
			sum.Sub(sum, tmp)
		} else {
			sum.Add(sum, tmp)
		}
	}
	sum.SetMantExp(sum, k)

	if invert {
		half := piFloat(wp)
		half.SetMantExp(half, -1)
		sum.Sub(half, sum)
	}
	if x.Sign() < 0 {
		sum.Neg(sum)
	}
	return newMid(prec).Set(sum)
}

// sinCosFloat reduces x modulo 2π, scales by 2^-8, sums both Taylor series
// and applies the double-angle formulas.
func sinCosFloat(x *big.Float, prec uint) (sin, cos *big.Float) {
	const halvings = 8
	extra := 0
	if e := x.MantExp(nil); e > 0 {
		extra = e
	}
	wp := prec + guardBits + uint(extra) + halvings
	one := big.NewFloat(1)

	twoPi := piFloat(wp)
	twoPi.SetMantExp(twoPi, 1)
	q := newMid(wp).Quo(x, twoPi)
	k, _ := q.Int(nil)
	frac := newMid(wp).Sub(q, new(big.Float).SetInt(k))
	if frac.Cmp(big.NewFloat(0.5)) > 0 {
		k.Add(k, big.NewInt(1))
	} else if frac.Cmp(big.NewFloat(-0.5)) < 0 {
		k.Sub(k, big.NewInt(1))
	}
	r := newMid(wp).Mul(twoPi, new(big.Float).SetInt(k))
	r.Sub(x, r)
	r.SetMantExp(r, -halvings)

	s := newMid(wp).Set(r)
	c := newMid(wp).SetInt64(1)
	term := newMid(wp).Set(r)
	for n := int64(1); ; n++ {
		// term holds r^(2n-1)/(2n-1)!; step to r^(2n)/(2n)! for cos, then r^(2n+1)/(2n+1)! for sin.
		term.Mul(term, r)
		term.Quo(term, new(big.Float).SetInt64(2*n))
		if term.Sign() == 0 || term.MantExp(nil) < -int(wp) {
			break
		}
		if n%2 == 1 {
			c.Sub(c, term)
		} else {
			c.Add(c, term)
		}
		term.Mul(term, r)
		term.Quo(term, new(big.Float).SetInt64(2*n+1))
		if n%2 == 1 {
			s.Sub(s, term)
		} else {
			s.Add(s, term)
		}
	}

	for i := 0; i < halvings; i++ {
		// sin 2a = 2 sin a cos a; cos 2a = 1 - 2 sin² a
		s2 := newMid(wp).Mul(s, s)
		s.Mul(s, c)
		s.SetMantExp(s, 1)
		s2.SetMantExp(s2, 1)
		c.Sub(one, s2)
	}
	return newMid(prec).Set(s), newMid(prec).Set(c)
}
