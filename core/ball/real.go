package ball

import (
	"math"
	"math/big"
)

// DefaultPrec applies when neither the receiver nor any operand carries a precision.
const DefaultPrec = 64

// Real is a ball [mid ± rad] enclosing a real number.
//
// A Real is never mutated in place once an operation has returned it: every
// operation allocates a fresh midpoint and radius, so aliasing (z.Add(z, x))
// and copying are both safe.
type Real struct {
	prec uint
	mid  *big.Float
	rad  *big.Float
	nan  bool
}

// NewReal returns an exact zero that rounds operation results to prec bits.
func NewReal(prec uint) *Real { return &Real{prec: prec} }

// NewRealInt returns the ball containing v at precision prec.
func NewRealInt(v int64, prec uint) *Real {
	z := NewReal(prec)
	mid := newMid(z.precFor()).SetInt64(v)
	return z.setMR(mid, roundErr(mid))
}

// Indeterminate returns a ball that carries no information (printed as "nan").
func Indeterminate(prec uint) *Real { return NewReal(prec).setNaN() }

// Unbounded returns the ball [0 ± inf].
func Unbounded(prec uint) *Real { return NewReal(prec).setUnbounded() }

func newMid(prec uint) *big.Float { return new(big.Float).SetPrec(prec) }

func (z *Real) precFor(xs ...*Real) uint {
	if z.prec == 0 {
		for _, x := range xs {
			if x.prec > z.prec {
				z.prec = x.prec
			}
		}
		if z.prec == 0 {
			z.prec = DefaultPrec
		}
	}
	return z.prec
}

func (x *Real) m() *big.Float {
	if x.mid == nil {
		return new(big.Float)
	}
	return x.mid
}

func (x *Real) r() *big.Float {
	if x.rad == nil {
		return newRad()
	}
	return x.rad
}

func (z *Real) setMR(mid, rad *big.Float) *Real {
	z.mid, z.rad, z.nan = mid, rad, false
	if rad.IsInf() {
		z.mid = newMid(z.precFor())
	}
	return z
}

func (z *Real) setNaN() *Real {
	z.precFor()
	z.mid, z.rad, z.nan = nil, nil, true
	return z
}

func (z *Real) setUnbounded() *Real {
	return z.setMR(newMid(z.precFor()), infRad())
}

// Prec reports the precision results are rounded to.
func (x *Real) Prec() uint { return x.prec }

// Mid returns a copy of the midpoint. It is zero for indeterminate balls.
func (x *Real) Mid() *big.Float { return new(big.Float).Set(x.m()) }

// Rad returns a copy of the radius. It is +Inf for indeterminate balls.
func (x *Real) Rad() *big.Float {
	if x.nan {
		return infRad()
	}
	return newRad().Set(x.r())
}

// Lower returns a lower bound of the ball, rounded toward -Inf.
func (x *Real) Lower() *big.Float {
	if x.nan {
		return new(big.Float).SetInf(true)
	}
	m := x.m()
	return new(big.Float).SetPrec(m.Prec() + radPrec).SetMode(big.ToNegativeInf).Sub(m, x.r())
}

// Upper returns an upper bound of the ball, rounded toward +Inf.
func (x *Real) Upper() *big.Float {
	if x.nan {
		return new(big.Float).SetInf(false)
	}
	m := x.m()
	return new(big.Float).SetPrec(m.Prec() + radPrec).SetMode(big.ToPositiveInf).Add(m, x.r())
}

// Sign is the sign of the midpoint (0 for indeterminate balls).
func (x *Real) Sign() int {
	if x.nan {
		return 0
	}
	return x.m().Sign()
}

// Float64 returns the midpoint rounded to float64; NaN for indeterminate balls.
func (x *Real) Float64() float64 {
	if x.nan {
		return math.NaN()
	}
	f, _ := x.m().Float64()
	return f
}

func (x *Real) IsNaN() bool    { return x.nan }
func (x *Real) IsFinite() bool { return !x.nan && !x.r().IsInf() }
func (x *Real) IsExact() bool  { return !x.nan && x.r().Sign() == 0 }
func (x *Real) IsZero() bool   { return x.IsExact() && x.m().Sign() == 0 }

// IsInteger reports whether x is exactly an integer.
func (x *Real) IsInteger() bool { return x.IsExact() && x.m().IsInt() }

// ContainsZero reports whether 0 lies in the ball.
func (x *Real) ContainsZero() bool {
	if !x.IsFinite() {
		return true
	}
	return new(big.Float).Abs(x.m()).Cmp(x.r()) <= 0
}

// ContainsNonPositiveInteger reports whether the ball meets {0, -1, -2, ...}.
func (x *Real) ContainsNonPositiveInteger() bool {
	if !x.IsFinite() {
		return true
	}
	lo := x.Lower()
	if lo.Sign() > 0 {
		return false
	}
	k := ceilInt(lo)
	return new(big.Float).SetInt(k).Cmp(x.Upper()) <= 0
}

// Contains reports whether every point of y lies in x.
func (x *Real) Contains(y *Real) bool {
	if x.nan {
		return true
	}
	if y.nan || !x.IsFinite() {
		return !x.IsFinite()
	}
	if !y.IsFinite() {
		return false
	}
	d := absUp(newRad().Sub(y.m(), x.m()))
	return radAdd(d, y.r()).Cmp(x.r()) <= 0
}

func ceilInt(f *big.Float) *big.Int {
	i, acc := f.Int(nil)
	if acc == big.Below {
		i.Add(i, big.NewInt(1))
	}
	return i
}

// Set sets z to x rounded to z's precision.
func (z *Real) Set(x *Real) *Real {
	prec := z.precFor(x)
	if x.nan {
		return z.setNaN()
	}
	mid := newMid(prec).Set(x.m())
	return z.setMR(mid, radAdd(x.r(), roundErr(mid)))
}

// SetRat sets z to the ball around r rounded to z's precision.
func (z *Real) SetRat(r *big.Rat) *Real {
	mid := newMid(z.precFor()).SetRat(r)
	return z.setMR(mid, roundErr(mid))
}

// SetFloat sets z to the ball around f rounded to z's precision.
func (z *Real) SetFloat(f *big.Float) *Real {
	if f.IsInf() {
		return z.setUnbounded()
	}
	mid := newMid(z.precFor()).Set(f)
	return z.setMR(mid, roundErr(mid))
}

// SetMidRad sets z to [mid ± rad], widening rad by the rounding of mid.
func (z *Real) SetMidRad(mid, rad *big.Float) *Real {
	if mid.IsInf() || rad.IsInf() {
		return z.setUnbounded()
	}
	m := newMid(z.precFor()).Set(mid)
	return z.setMR(m, radAdd(absUp(rad), roundErr(m)))
}

// Widen sets z to x with its radius grown by err.
func (z *Real) Widen(x *Real, err *big.Float) *Real {
	z.Set(x)
	if z.nan {
		return z
	}
	return z.setMR(z.mid, radAdd(z.rad, absUp(err)))
}

func (z *Real) Neg(x *Real) *Real {
	z.precFor(x)
	if x.nan {
		return z.setNaN()
	}
	mid := newMid(z.prec).Neg(x.m())
	return z.setMR(mid, radAdd(x.r(), roundErr(mid)))
}

func (z *Real) Abs(x *Real) *Real {
	z.precFor(x)
	if x.nan {
		return z.setNaN()
	}
	mid := newMid(z.prec).Abs(x.m())
	return z.setMR(mid, radAdd(x.r(), roundErr(mid)))
}

func (z *Real) Add(x, y *Real) *Real {
	prec := z.precFor(x, y)
	if x.nan || y.nan {
		return z.setNaN()
	}
	mid := newMid(prec).Add(x.m(), y.m())
	return z.setMR(mid, radAdd(radAdd(x.r(), y.r()), roundErr(mid)))
}

func (z *Real) Sub(x, y *Real) *Real {
	prec := z.precFor(x, y)
	if x.nan || y.nan {
		return z.setNaN()
	}
	mid := newMid(prec).Sub(x.m(), y.m())
	return z.setMR(mid, radAdd(radAdd(x.r(), y.r()), roundErr(mid)))
}

// Mul uses |xy - xm·ym| <= |xm|·yr + |ym|·xr + xr·yr.
func (z *Real) Mul(x, y *Real) *Real {
	prec := z.precFor(x, y)
	if x.nan || y.nan {
		return z.setNaN()
	}
	xr, yr := x.r(), y.r()
	mid := newMid(prec).Mul(x.m(), y.m())
	rad := roundErr(mid)
	rad = radAdd(rad, radMul(absUp(x.m()), yr))
	rad = radAdd(rad, radMul(absUp(y.m()), xr))
	rad = radAdd(rad, radMul(xr, yr))
	return z.setMR(mid, rad)
}

// Inv sets z to 1/x. A ball containing zero yields an unbounded result.
func (z *Real) Inv(x *Real) *Real {
	prec := z.precFor(x)
	if x.nan {
		return z.setNaN()
	}
	if x.ContainsZero() {
		return z.setUnbounded()
	}
	xr := x.r()
	mid := newMid(prec).Quo(big.NewFloat(1), x.m())
	rad := roundErr(mid)
	if xr.Sign() != 0 {
		m := absDown(x.m())
		low := newLow().Sub(m, xr)
		rad = radAdd(rad, radQuo(xr, newLow().Mul(m, low)))
	}
	return z.setMR(mid, rad)
}

// Div uses |x/y - xm/ym| <= (|xm|·yr + |ym|·xr) / (|ym|·(|ym| - yr)).
func (z *Real) Div(x, y *Real) *Real {
	prec := z.precFor(x, y)
	if x.nan || y.nan {
		return z.setNaN()
	}
	if y.ContainsZero() {
		return z.setUnbounded()
	}
	xr, yr := x.r(), y.r()
	mid := newMid(prec).Quo(x.m(), y.m())
	rad := roundErr(mid)
	if xr.Sign() != 0 || yr.Sign() != 0 {
		num := radAdd(radMul(absUp(x.m()), yr), radMul(absUp(y.m()), xr))
		ym := absDown(y.m())
		den := newLow().Mul(ym, newLow().Sub(ym, yr))
		rad = radAdd(rad, radQuo(num, den))
	}
	return z.setMR(mid, rad)
}

// String formats x with as many digits as its precision supports.
func (x *Real) String() string {
	return x.Text(int(float64(x.prec)*math.Log10(2)) + 1)
}
