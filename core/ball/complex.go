package ball

import "math/big"

// Complex is a pair of real balls: a rectangle enclosing a complex number.
type Complex struct {
	re, im Real
}

// NewComplex returns an exact complex zero at precision prec.
func NewComplex(prec uint) *Complex {
	return &Complex{re: Real{prec: prec}, im: Real{prec: prec}}
}

// IndeterminateComplex has both parts indeterminate.
func IndeterminateComplex(prec uint) *Complex {
	return NewComplex(prec).setParts(Indeterminate(prec), Indeterminate(prec))
}

// UnboundedComplex has both parts unbounded.
func UnboundedComplex(prec uint) *Complex {
	return NewComplex(prec).setParts(Unbounded(prec), Unbounded(prec))
}

func (z *Complex) precFor(xs ...*Complex) uint {
	if z.re.prec == 0 {
		for _, x := range xs {
			if x.re.prec > z.re.prec {
				z.re.prec = x.re.prec
			}
		}
	}
	p := z.re.precFor()
	z.im.prec = p
	return p
}

func (z *Complex) setParts(re, im *Real) *Complex {
	z.re, z.im = *re, *im
	return z
}

// Real returns the real part.
func (x *Complex) Real() *Real { r := x.re; return &r }

// Imag returns the imaginary part.
func (x *Complex) Imag() *Real { i := x.im; return &i }

func (x *Complex) Prec() uint { return x.re.prec }

func (x *Complex) IsNaN() bool    { return x.re.nan || x.im.nan }
func (x *Complex) IsFinite() bool { return x.re.IsFinite() && x.im.IsFinite() }
func (x *Complex) IsExact() bool  { return x.re.IsExact() && x.im.IsExact() }

// IsReal reports whether the imaginary part is exactly zero.
func (x *Complex) IsReal() bool { return x.im.IsZero() }

func (x *Complex) ContainsZero() bool { return x.re.ContainsZero() && x.im.ContainsZero() }

// Contains reports whether y lies entirely within x.
func (x *Complex) Contains(y *Complex) bool {
	return x.re.Contains(&y.re) && x.im.Contains(&y.im)
}

// SetParts sets z to re + i·im rounded to z's precision.
func (z *Complex) SetParts(re, im *Real) *Complex {
	p := z.precFor()
	return z.setParts(NewReal(p).Set(re), NewReal(p).Set(im))
}

// Set sets z to x rounded to z's precision.
func (z *Complex) Set(x *Complex) *Complex {
	p := z.precFor(x)
	return z.setParts(NewReal(p).Set(&x.re), NewReal(p).Set(&x.im))
}

// Widen grows both radii of x by err.
func (z *Complex) Widen(x *Complex, err *big.Float) *Complex {
	p := z.precFor(x)
	return z.setParts(NewReal(p).Widen(&x.re, err), NewReal(p).Widen(&x.im, err))
}

func (z *Complex) Neg(x *Complex) *Complex {
	p := z.precFor(x)
	return z.setParts(NewReal(p).Neg(&x.re), NewReal(p).Neg(&x.im))
}

func (z *Complex) Add(x, y *Complex) *Complex {
	p := z.precFor(x, y)
	return z.setParts(NewReal(p).Add(&x.re, &y.re), NewReal(p).Add(&x.im, &y.im))
}

func (z *Complex) Sub(x, y *Complex) *Complex {
	p := z.precFor(x, y)
	return z.setParts(NewReal(p).Sub(&x.re, &y.re), NewReal(p).Sub(&x.im, &y.im))
}

func (z *Complex) AddReal(x *Complex, y *Real) *Complex {
	p := z.precFor(x)
	return z.setParts(NewReal(p).Add(&x.re, y), NewReal(p).Set(&x.im))
}

func (z *Complex) SubReal(x *Complex, y *Real) *Complex {
	p := z.precFor(x)
	return z.setParts(NewReal(p).Sub(&x.re, y), NewReal(p).Set(&x.im))
}

func (z *Complex) MulReal(x *Complex, y *Real) *Complex {
	p := z.precFor(x)
	return z.setParts(NewReal(p).Mul(&x.re, y), NewReal(p).Mul(&x.im, y))
}

func (z *Complex) DivReal(x *Complex, y *Real) *Complex {
	p := z.precFor(x)
	return z.setParts(NewReal(p).Div(&x.re, y), NewReal(p).Div(&x.im, y))
}

// Mul uses (a+bi)(c+di) = (ac - bd) + (ad + bc)i.
func (z *Complex) Mul(x, y *Complex) *Complex {
	p := z.precFor(x, y)
	a, b, c, d := &x.re, &x.im, &y.re, &y.im
	re := NewReal(p).Sub(NewReal(p).Mul(a, c), NewReal(p).Mul(b, d))
	im := NewReal(p).Add(NewReal(p).Mul(a, d), NewReal(p).Mul(b, c))
	return z.setParts(re, im)
}

// Inv uses 1/(c+di) = (c - di)/(c² + d²).
func (z *Complex) Inv(x *Complex) *Complex {
	p := z.precFor(x)
	if x.IsNaN() {
		return z.setParts(Indeterminate(p), Indeterminate(p))
	}
	if x.IsReal() {
		return z.setParts(NewReal(p).Inv(&x.re), NewReal(p))
	}
	c, d := &x.re, &x.im
	den := NewReal(p).Add(NewReal(p).Mul(c, c), NewReal(p).Mul(d, d))
	if den.ContainsZero() {
		return z.setParts(Unbounded(p), Unbounded(p))
	}
	re := NewReal(p).Div(c, den)
	im := NewReal(p).Neg(NewReal(p).Div(d, den))
	return z.setParts(re, im)
}

func (z *Complex) Div(x, y *Complex) *Complex {
	p := z.precFor(x, y)
	if y.IsReal() {
		return z.DivReal(x, &y.re)
	}
	return z.Mul(x, NewComplex(p).Inv(y))
}

// Log sets z to the principal logarithm ln|x| + i·arg(x). A ball that
// straddles the negative real axis has an unbounded imaginary part.
func (z *Complex) Log(x *Complex) *Complex {
	p := z.precFor(x)
	a, b := &x.re, &x.im
	switch {
	case x.IsNaN():
		return z.setParts(Indeterminate(p), Indeterminate(p))
	case x.ContainsZero():
		return z.setParts(Unbounded(p), Unbounded(p))
	}
	if x.IsReal() && a.Lower().Sign() > 0 {
		return z.setParts(NewReal(p).Log(a), NewReal(p))
	}

	n := NewReal(p).Add(NewReal(p).Mul(a, a), NewReal(p).Mul(b, b))
	re := NewReal(p).Mul2Exp(NewReal(p).Log(n), -1)

	var im *Real
	switch {
	case a.Lower().Sign() > 0:
		im = NewReal(p).Atan(NewReal(p).Div(b, a))
	case b.Lower().Sign() > 0:
		halfPi := NewReal(p).Mul2Exp(Pi(p), -1)
		im = NewReal(p).Sub(halfPi, NewReal(p).Atan(NewReal(p).Div(a, b)))
	case b.Upper().Sign() < 0:
		halfPi := NewReal(p).Mul2Exp(Pi(p), -1)
		im = NewReal(p).Neg(NewReal(p).Add(halfPi, NewReal(p).Atan(NewReal(p).Div(a, b))))
	case b.IsZero():
		im = Pi(p)
	default:
		im = Unbounded(p)
	}
	return z.setParts(re, im)
}

// ComplexSinCos returns sin(x) and cos(x):
//
//	sin(a+bi) = sin a cosh b + i cos a sinh b
//	cos(a+bi) = cos a cosh b - i sin a sinh b
func ComplexSinCos(x *Complex, prec uint) (sin, cos *Complex) {
	if prec == 0 {
		prec = x.Prec()
	}
	sa, ca := SinCos(&x.re, prec)
	if x.IsReal() {
		return NewComplex(prec).setParts(sa, NewReal(prec)), NewComplex(prec).setParts(ca, NewReal(prec))
	}
	eb := NewReal(prec).Exp(&x.im)
	emb := NewReal(prec).Exp(NewReal(prec).Neg(&x.im))
	ch := NewReal(prec).Mul2Exp(NewReal(prec).Add(eb, emb), -1)
	sh := NewReal(prec).Mul2Exp(NewReal(prec).Sub(eb, emb), -1)

	sin = NewComplex(prec).setParts(NewReal(prec).Mul(sa, ch), NewReal(prec).Mul(ca, sh))
	cos = NewComplex(prec).setParts(NewReal(prec).Mul(ca, ch), NewReal(prec).Neg(NewReal(prec).Mul(sa, sh)))
	return sin, cos
}

// Cot sets z to cos(x)/sin(x). Once |Im x| >= 1 it uses
//
//	cot(a+bi) = (2u·sin 2a - i·sgn(b)·(1 - u²)) / (1 + u² - 2u·cos 2a),  u = e^(-2|b|)
//
// which stays finite however large |b| gets.
func (z *Complex) Cot(x *Complex) *Complex {
	p := z.precFor(x)
	b := &x.im
	sign := 0
	if x.IsFinite() {
		switch {
		case b.Lower().Cmp(big.NewFloat(1)) >= 0:
			sign = 1
		case b.Upper().Cmp(big.NewFloat(-1)) <= 0:
			sign = -1
		}
	}
	if sign == 0 {
		s, c := ComplexSinCos(x, p)
		return z.Div(c, s)
	}

	one := NewRealInt(1, p)
	ab := NewReal(p).Abs(b)
	u := NewReal(p).Exp(NewReal(p).Neg(NewReal(p).Mul2Exp(ab, 1)))
	u2 := NewReal(p).Mul(u, u)
	s2, c2 := SinCos(NewReal(p).Mul2Exp(&x.re, 1), p)

	den := NewReal(p).Sub(NewReal(p).Add(one, u2), NewReal(p).Mul2Exp(NewReal(p).Mul(u, c2), 1))
	re := NewReal(p).Div(NewReal(p).Mul2Exp(NewReal(p).Mul(u, s2), 1), den)
	im := NewReal(p).Div(NewReal(p).Sub(one, u2), den)
	if sign > 0 {
		im = NewReal(p).Neg(im)
	}
	return z.setParts(re, im)
}

// String prints both parts at full precision, e.g. "[1.5 +/- 1e-30] + [2 +/- 1e-30]i".
func (x *Complex) String() string {
	return x.re.String() + " + " + x.im.String() + "i"
}
