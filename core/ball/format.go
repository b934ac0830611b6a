// core/ball/format.go
//
// Decimal output in the "[mid +/- rad]" notation:
//   • mid is rounded to nearest with at most n significant digits, and never
//     more digits than the ball's relative accuracy supports;
//   • rad is the radius plus the decimal rounding error, rounded up to three
//     significant digits;
//   • an exact ball whose value fits in n digits prints without brackets.

package ball

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Text formats x with n significant digits.
func (x *Real) Text(n int) string {
	if n < 1 {
		n = 1
	}
	switch {
	case x.nan:
		return "nan"
	case x.r().IsInf():
		return "[+/- inf]"
	}
	mid, rad := x.m(), x.r()
	if mid.Sign() == 0 {
		if rad.Sign() == 0 {
			return "0"
		}
		return "[+/- " + formatRadius(ratOf(rad)) + "]"
	}

	if rad.Sign() != 0 {
		if good := accurateDigits(mid, rad); good < n {
			n = good
		}
		if n < 1 {
			bound := new(big.Rat).Abs(ratOf(mid))
			bound.Add(bound, ratOf(rad))
			return "[+/- " + formatRadius(bound) + "]"
		}
	}

	am := new(big.Rat).Abs(ratOf(mid))
	digits, e := roundDigits(am, n)

	// err = |digits·10^(e-n+1) - |mid|| + rad
	approx := new(big.Rat).SetInt(digits)
	approx.Mul(approx, pow10Rat(e-n+1))
	err := new(big.Rat).Sub(approx, am)
	err.Abs(err)
	err.Add(err, ratOf(rad))

	var sb strings.Builder
	if mid.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(digitsAsFloat(digits.String(), e, -4, max(6, n-1)))
	if err.Sign() == 0 {
		return sb.String()
	}
	return "[" + sb.String() + " +/- " + formatRadius(err) + "]"
}

// accurateDigits is the number of decimal digits the radius leaves intact,
// counted from the leading bits of mid and rad.
func accurateDigits(mid, rad *big.Float) int {
	bits := mid.MantExp(nil) - rad.MantExp(nil) - 1
	return int(float64(bits)*0.30102999566398119521) + 2
}

func ratOf(f *big.Float) *big.Rat {
	r, _ := f.Rat(nil)
	return r
}

func pow10Int(k int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
}

func pow10Rat(k int) *big.Rat {
	if k >= 0 {
		return new(big.Rat).SetInt(pow10Int(k))
	}
	return new(big.Rat).SetFrac(big.NewInt(1), pow10Int(-k))
}

// decimalExponent returns floor(log10(r)) for r > 0.
func decimalExponent(r *big.Rat) int {
	f, _ := new(big.Float).SetPrec(64).SetRat(r).Float64()
	e := 0
	if f != 0 && !math.IsInf(f, 0) {
		e = int(math.Floor(math.Log10(f)))
	} else {
		// Outside float64 range: estimate from the binary exponent.
		be := new(big.Float).SetRat(r).MantExp(nil)
		e = int(math.Floor(float64(be-1) * math.Log10(2)))
	}
	for pow10Rat(e).Cmp(r) > 0 {
		e--
	}
	for pow10Rat(e+1).Cmp(r) <= 0 {
		e++
	}
	return e
}

// roundDigits returns the n-digit integer nearest to r·10^(n-1-e) and the
// decimal exponent e of its leading digit.
func roundDigits(r *big.Rat, n int) (*big.Int, int) {
	e := decimalExponent(r)
	q := new(big.Rat).Mul(r, pow10Rat(n-1-e))
	// floor(q + 1/2) = (2·num + den) div (2·den)
	num := new(big.Int).Lsh(q.Num(), 1)
	num.Add(num, q.Denom())
	den := new(big.Int).Lsh(q.Denom(), 1)
	d := new(big.Int).Quo(num, den)
	if d.Cmp(pow10Int(n)) >= 0 {
		d.Quo(d, big.NewInt(10))
		e++
	}
	return d, e
}

// formatRadius rounds r > 0 up to three significant digits.
func formatRadius(r *big.Rat) string {
	e := decimalExponent(r)
	q := new(big.Rat).Mul(r, pow10Rat(2-e))
	d := new(big.Int).Quo(q.Num(), q.Denom())
	if new(big.Rat).SetInt(d).Cmp(q) < 0 {
		d.Add(d, big.NewInt(1))
	}
	if d.Cmp(big.NewInt(1000)) >= 0 {
		d.Quo(d, big.NewInt(10))
		e++
	}
	return digitsAsFloat(d.String(), e, -2, 2)
}

// digitsAsFloat places the decimal point in d (read as d[0].d[1:]·10^e),
// in fixed notation when minfix <= e <= maxfix and scientific otherwise.
func digitsAsFloat(d string, e, minfix, maxfix int) string {
	n := len(d)
	if e >= minfix && e <= maxfix {
		if e >= 0 {
			if e+1 >= n {
				return d + strings.Repeat("0", e+1-n)
			}
			return d[:e+1] + "." + d[e+1:]
		}
		return "0." + strings.Repeat("0", -e-1) + d
	}
	s := d[:1]
	if n > 1 {
		s += "." + d[1:]
	}
	if e > 0 {
		return s + "e+" + strconv.Itoa(e)
	}
	return s + "e" + strconv.Itoa(e)
}
