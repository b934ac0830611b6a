package ball

import (
	"math"
	"math/big"
)

// fnErr bounds the evaluation error of log, sin and cos results: two ulps
// relative, plus an absolute 2^-(prec+16) for the cancellation left after
// argument reduction near a zero of the function.
func fnErr(f *big.Float, prec uint) *big.Float {
	return radAdd(relErr(f, prec), pow2Rad(-int(prec)-16))
}

// minExp2 caps how small an underflowing exponential's bound gets.
const minExp2 = -(1 << 24)

// Pi returns a ball containing π.
func Pi(prec uint) *Real {
	mid := piFloat(prec)
	return NewReal(prec).setMR(mid, ulpRad(mid, prec))
}

// Mul2Exp sets z to x·2^k. Scaling is exact.
func (z *Real) Mul2Exp(x *Real, k int) *Real {
	z.precFor(x)
	if x.nan {
		return z.setNaN()
	}
	if !x.IsFinite() {
		return z.setUnbounded()
	}
	mid := newMid(z.prec).SetMantExp(x.m(), k)
	rad := newRad().SetMantExp(x.r(), k)
	return z.setMR(mid, radAdd(rad, roundErr(mid)))
}

// Exp sets z to e^x.
func (z *Real) Exp(x *Real) *Real {
	prec := z.precFor(x)
	if x.nan {
		return z.setNaN()
	}
	if !x.IsFinite() {
		return z.setUnbounded()
	}
	if e := x.m().MantExp(nil); e > 30 || (e > 20 && x.Sign() < 0) {
		up, _ := x.Upper().Float64()
		if up >= 0 {
			return z.setUnbounded()
		}
		// e^x <= 2^(x·log2 e) is far below any useful precision; the cap
		// keeps products of such bounds inside big.Float's exponent range.
		k := int(math.Max(math.Ceil(up*math.Log2E)+1, minExp2))
		return z.setMR(newMid(prec), pow2Rad(k))
	}
	mid := expFloat(x.m(), prec)
	rad := relErr(mid, prec)
	if xr := x.r(); xr.Sign() != 0 {
		// |e^(m+t) - e^m| <= e^m·(e^r - 1) for |t| <= r.
		rf, _ := xr.Float64()
		g := 3 * rf
		if rf > 1 {
			g = math.Exp(rf) * 1.001
		}
		if math.IsInf(g, 0) {
			return z.setUnbounded()
		}
		grow := radMul(absUp(mid), newRad().SetFloat64(g))
		rad = radAdd(rad, radMul(grow, newRad().SetFloat64(1.001)))
	}
	return z.setMR(mid, rad)
}

// Log sets z to the natural logarithm of x. Balls reaching zero give an
// unbounded result; negative balls give an indeterminate one.
func (z *Real) Log(x *Real) *Real {
	prec := z.precFor(x)
	switch {
	case x.nan || x.Upper().Sign() <= 0:
		return z.setNaN()
	case x.ContainsZero():
		return z.setUnbounded()
	}
	mid := logFloat(x.m(), prec)
	rad := fnErr(mid, prec)
	if xr := x.r(); xr.Sign() != 0 {
		low := newLow().Sub(absDown(x.m()), xr)
		rad = radAdd(rad, radQuo(xr, low))
	}
	return z.setMR(mid, rad)
}

// Atan sets z to the arctangent of x. The radius grows by r/(1+t²), with t
// the smallest |x| in the ball.
func (z *Real) Atan(x *Real) *Real {
	prec := z.precFor(x)
	if x.nan {
		return z.setNaN()
	}
	if !x.IsFinite() {
		return z.setMR(newMid(prec), radAdd(Pi(prec).r(), newRad().SetInt64(2)))
	}
	mid := atanFloat(x.m(), prec)
	rad := relErr(mid, prec)
	if xr := x.r(); xr.Sign() != 0 {
		t := newLow().Sub(absDown(x.m()), xr)
		if t.Sign() < 0 {
			t.SetInt64(0)
		}
		den := newLow().Mul(t, t)
		den.Add(den, big.NewFloat(1))
		rad = radAdd(rad, radQuo(xr, den))
	}
	return z.setMR(mid, rad)
}

// Sqrt sets z to the square root of x. Negative balls are indeterminate.
func (z *Real) Sqrt(x *Real) *Real {
	prec := z.precFor(x)
	switch {
	case x.nan || x.Upper().Sign() < 0:
		return z.setNaN()
	case !x.IsFinite():
		return z.setUnbounded()
	}
	if x.Lower().Sign() <= 0 {
		// [0, sqrt(upper)] as a ball centred on its half.
		su := newRad().Sqrt(x.Upper())
		su = radAdd(su, ulpRad(su, radPrec))
		half := newRad().SetMantExp(su, -1)
		return z.setMR(newMid(prec).Set(half), radAdd(half, ulpRad(half, prec)))
	}
	mid := newMid(prec).Sqrt(x.m())
	ulp := ulpRad(mid, prec)
	rad := ulp
	if xr := x.r(); xr.Sign() != 0 {
		low := newLow().Sub(absDown(mid), ulp)
		rad = radAdd(rad, radQuo(xr, low))
	}
	return z.setMR(mid, rad)
}

// SinCos returns balls containing sin(x) and cos(x) at precision prec
// (x's precision when prec is 0).
func SinCos(x *Real, prec uint) (sin, cos *Real) {
	if prec == 0 {
		prec = x.prec
	}
	sin, cos = NewReal(prec), NewReal(prec)
	sin.precFor(x)
	cos.precFor(x)
	if x.nan {
		return sin.setNaN(), cos.setNaN()
	}
	if !x.IsFinite() {
		one := newRad().SetInt64(1)
		return sin.setMR(newMid(sin.prec), one), cos.setMR(newMid(cos.prec), one)
	}
	s, c := sinCosFloat(x.m(), sin.prec)
	xr := x.r()
	sin.setMR(s, radAdd(xr, fnErr(s, sin.prec)))
	cos.setMR(c, radAdd(xr, fnErr(c, cos.prec)))
	return sin, cos
}

// Cot sets z to cos(x)/sin(x).
func (z *Real) Cot(x *Real) *Real {
	s, c := SinCos(x, z.precFor(x))
	return z.Div(c, s)
}
