// core/digamma/digamma.go
// Digamma function ψ(z) = Γ'(z)/Γ(z) on real and complex balls.
//
// Steps:
//  1) Poles: an exact non-positive integer gives an indeterminate ball; a ball
//     that merely contains one gives an unbounded ball.
//  2) Far left of the origin (Re z < -1024) use reflection:
//     ψ(z) = ψ(1 - z) - π·cot(πz).
//  3) Otherwise shift right with the recurrence ψ(z) = ψ(z + N) - Σ_{k<N} 1/(z + k)
//     until Re(z + N) passes a precision-dependent threshold.
//  4) Asymptotic series ψ(t) ≈ ln t - 1/(2t) - Σ_{k=1..n} B_2k / (2k·t^2k),
//     truncated once the remainder bound falls under 2^-(wp+4); the bound is
//     added to the radius.
//
// All intermediate work runs with guard bits and the result is rounded to the
// requested precision.

package digamma

import (
	"errors"
	"math"
	"math/big"
	"math/bits"

	"digamma-core/ball"
)

var (
	// ErrPole marks an evaluation whose argument is, or may be, a non-positive integer.
	ErrPole = errors.New("digamma pole at a non-positive integer")
	// ErrNotFinite marks any other non-finite result: an infinite or
	// indeterminate argument, or a bound that overflowed.
	ErrNotFinite = errors.New("digamma result is not finite")
)

// Cause explains a non-finite Real(x): ErrPole when x meets a pole,
// ErrNotFinite otherwise.
func Cause(x *ball.Real) error {
	if x.IsFinite() && x.ContainsNonPositiveInteger() {
		return ErrPole
	}
	return ErrNotFinite
}

// ComplexCause is Cause for Complex(z).
func ComplexCause(z *ball.Complex) error {
	if z.IsFinite() && z.Imag().ContainsZero() && z.Real().ContainsNonPositiveInteger() {
		return ErrPole
	}
	return ErrNotFinite
}

const (
	guardBits    = 24
	reflectBelow = -1024.0
	maxTerms     = 4096
)

// Real returns a ball containing ψ(x) at precision prec (x's precision when 0).
func Real(x *ball.Real, prec uint) *ball.Real {
	if prec == 0 {
		prec = x.Prec()
	}
	switch {
	case x.IsNaN(), x.IsInteger() && x.Sign() <= 0:
		return ball.Indeterminate(prec)
	case x.ContainsNonPositiveInteger():
		return ball.Unbounded(prec)
	}
	wp := prec + guardBits
	var res *ball.Real
	if x.Float64() < reflectBelow {
		res = reflectReal(x, wp+magnitudeBits(x))
	} else {
		res = shiftedReal(x, wp)
	}
	return ball.NewReal(prec).Set(res)
}

// Complex returns a ball containing ψ(z) at precision prec (z's precision when 0).
// Arguments with an exactly zero imaginary part are evaluated on the real line.
func Complex(z *ball.Complex, prec uint) *ball.Complex {
	if prec == 0 {
		prec = z.Prec()
	}
	re, im := z.Real(), z.Imag()
	switch {
	case z.IsNaN():
		return ball.IndeterminateComplex(prec)
	case im.IsZero():
		r := Real(re, prec)
		if !r.IsFinite() {
			return ball.NewComplex(prec).SetParts(r, r)
		}
		return ball.NewComplex(prec).SetParts(r, ball.NewReal(prec))
	case im.ContainsZero() && re.ContainsNonPositiveInteger():
		return ball.UnboundedComplex(prec)
	}
	wp := prec + guardBits
	var res *ball.Complex
	if re.Float64() < reflectBelow {
		res = reflectComplex(z, wp+magnitudeBits(re))
	} else {
		res = shiftedComplex(z, wp)
	}
	return ball.NewComplex(prec).Set(res)
}

// threshold is the real part the argument is shifted past before the
// asymptotic series takes over.
func threshold(wp uint) float64 { return math.Max(10, 0.3*float64(wp)) }

func magnitudeBits(x *ball.Real) uint {
	if e := x.Mid().MantExp(nil); e > 0 {
		return uint(e)
	}
	return 0
}

func shiftCount(re *ball.Real, wp uint) int {
	r := threshold(wp)
	if m := re.Float64(); m < r {
		return int(math.Ceil(r - m))
	}
	return 0
}

func shiftedReal(x *ball.Real, wp uint) *ball.Real {
	n := shiftCount(x, wp)
	wp += uint(bits.Len(uint(n)))
	one := ball.NewRealInt(1, wp)
	t := ball.NewReal(wp).Set(x)
	sum := ball.NewReal(wp)
	for k := 0; k < n; k++ {
		sum = ball.NewReal(wp).Add(sum, ball.NewReal(wp).Inv(t))
		t = ball.NewReal(wp).Add(t, one)
	}
	return ball.NewReal(wp).Sub(asymptoticReal(t, wp), sum)
}

func shiftedComplex(z *ball.Complex, wp uint) *ball.Complex {
	n := shiftCount(z.Real(), wp)
	wp += uint(bits.Len(uint(n)))
	one := ball.NewRealInt(1, wp)
	t := ball.NewComplex(wp).Set(z)
	sum := ball.NewComplex(wp)
	for k := 0; k < n; k++ {
		sum = ball.NewComplex(wp).Add(sum, ball.NewComplex(wp).Inv(t))
		t = ball.NewComplex(wp).AddReal(t, one)
	}
	return ball.NewComplex(wp).Sub(asymptoticComplex(t, wp), sum)
}

func reflectReal(x *ball.Real, wp uint) *ball.Real {
	pi := ball.Pi(wp)
	y := ball.NewReal(wp).Sub(ball.NewRealInt(1, wp), x)
	cot := ball.NewReal(wp).Cot(ball.NewReal(wp).Mul(pi, x))
	return ball.NewReal(wp).Sub(shiftedReal(y, wp), ball.NewReal(wp).Mul(pi, cot))
}

func reflectComplex(z *ball.Complex, wp uint) *ball.Complex {
	pi := ball.Pi(wp)
	y := ball.NewComplex(wp).AddReal(ball.NewComplex(wp).Neg(z), ball.NewRealInt(1, wp))
	cot := ball.NewComplex(wp).Cot(ball.NewComplex(wp).MulReal(z, pi))
	return ball.NewComplex(wp).Sub(shiftedComplex(y, wp), ball.NewComplex(wp).MulReal(cot, pi))
}

func asymptoticReal(t *ball.Real, wp uint) *ball.Real {
	tmin := lowerBound(t)
	if tmin <= 1 {
		return ball.Unbounded(wp)
	}
	// For real t > 0 the series envelops ψ: the remainder is below the first omitted term.
	n, errBound := seriesTerms(tmin, wp, false)

	inv := ball.NewReal(wp).Inv(t)
	inv2 := ball.NewReal(wp).Mul(inv, inv)
	res := ball.NewReal(wp).Sub(ball.NewReal(wp).Log(t), ball.NewReal(wp).Mul2Exp(inv, -1))
	pow := inv2
	for k := 1; k <= n; k++ {
		c := ball.NewReal(wp).SetRat(coefficient(k))
		res = ball.NewReal(wp).Sub(res, ball.NewReal(wp).Mul(c, pow))
		pow = ball.NewReal(wp).Mul(pow, inv2)
	}
	return ball.NewReal(wp).Widen(res, errBound)
}

func asymptoticComplex(t *ball.Complex, wp uint) *ball.Complex {
	re := lowerBound(t.Real())
	if re <= 1 {
		return ball.UnboundedComplex(wp)
	}
	im := lowerBound(ball.NewReal(wp).Abs(t.Imag()))
	if im < 0 {
		im = 0
	}
	n, errBound := seriesTerms(math.Hypot(re, im), wp, true)

	inv := ball.NewComplex(wp).Inv(t)
	inv2 := ball.NewComplex(wp).Mul(inv, inv)
	half := ball.NewReal(wp).Mul2Exp(ball.NewRealInt(1, wp), -1)
	res := ball.NewComplex(wp).Sub(ball.NewComplex(wp).Log(t), ball.NewComplex(wp).MulReal(inv, half))
	pow := inv2
	for k := 1; k <= n; k++ {
		c := ball.NewReal(wp).SetRat(coefficient(k))
		res = ball.NewComplex(wp).Sub(res, ball.NewComplex(wp).MulReal(pow, c))
		pow = ball.NewComplex(wp).Mul(pow, inv2)
	}
	return ball.NewComplex(wp).Widen(res, errBound)
}

// seriesTerms picks how many Bernoulli terms to sum for |t| >= tmin and
// bounds the remainder, |B_2n+2| / ((2n+2)·|t|^(2n+2)). Off the real axis
// (Re t > 0) the bound carries an extra sec^(2n+2)(arg t / 2) <= 2^(n+1)
// factor, rounded up to 2^(n+2).
func seriesTerms(tmin float64, wp uint, offAxis bool) (int, *big.Float) {
	lt := math.Log2(tmin)
	target := -float64(wp) - 4
	best, bestLog := 0, math.Inf(1)
	for n := 0; n <= maxTerms; n++ {
		m := 2*n + 2
		lb := log2Upper(bernoulli(m)) - math.Log2(float64(m)) - float64(m)*lt
		if offAxis {
			lb += float64(n + 2)
		}
		if lb < bestLog {
			best, bestLog = n, lb
		} else if lb > bestLog+8 {
			break
		}
		if lb < target {
			break
		}
	}
	return best, new(big.Float).SetMantExp(big.NewFloat(1), int(math.Ceil(bestLog))+1)
}

// log2Upper returns an upper bound on log2|r|.
func log2Upper(r *big.Rat) float64 {
	return float64(new(big.Float).SetRat(r).MantExp(nil))
}

// lowerBound is a float64 no larger than the ball's lower endpoint.
func lowerBound(x *ball.Real) float64 {
	f, _ := x.Lower().Float64()
	if f > 0 {
		return f * (1 - 1e-12)
	}
	return f * (1 + 1e-12)
}
