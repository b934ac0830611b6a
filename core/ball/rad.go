// core/ball/rad.go
package ball

import "math/big"

// radPrec is the precision of every radius.
const radPrec = 64

func newRad() *big.Float {
	return new(big.Float).SetPrec(radPrec).SetMode(big.AwayFromZero)
}

// newLow rounds toward zero: a lower bound for non-negative quantities.
func newLow() *big.Float {
	return new(big.Float).SetPrec(radPrec).SetMode(big.ToZero)
}

func infRad() *big.Float { return newRad().SetInf(false) }

func radAdd(a, b *big.Float) *big.Float {
	if a.IsInf() || b.IsInf() {
		return infRad()
	}
	return newRad().Add(a, b)
}

func radMul(a, b *big.Float) *big.Float {
	if a.Sign() == 0 || b.Sign() == 0 {
		return newRad()
	}
	if a.IsInf() || b.IsInf() {
		return infRad()
	}
	return newRad().Mul(a, b)
}

// radQuo bounds a/b from above; b must be a positive lower bound.
func radQuo(a, b *big.Float) *big.Float {
	switch {
	case a.Sign() == 0:
		return newRad()
	case a.IsInf() || b.Sign() <= 0:
		return infRad()
	case b.IsInf():
		return newRad()
	}
	return newRad().Quo(a, b)
}

func absUp(f *big.Float) *big.Float   { return newRad().Abs(f) }
func absDown(f *big.Float) *big.Float { return newLow().Abs(f) }

// pow2Rad returns 2^e as a radius.
func pow2Rad(e int) *big.Float {
	return newRad().SetMantExp(big.NewFloat(1), e)
}

// ulpRad is one unit in the last place of f at precision prec.
func ulpRad(f *big.Float, prec uint) *big.Float {
	if f.Sign() == 0 || f.IsInf() {
		return newRad()
	}
	return pow2Rad(f.MantExp(nil) - int(prec))
}

// roundErr is the error left behind by the operation that produced f, which
// must still report its accuracy.
func roundErr(f *big.Float) *big.Float {
	if f.Acc() == big.Exact {
		return newRad()
	}
	return ulpRad(f, f.Prec())
}

// relErr bounds an error of |f|·2^(1-prec), the slack added after an
// elementary function evaluated with guard bits.
func relErr(f *big.Float, prec uint) *big.Float {
	if f.Sign() == 0 {
		return pow2Rad(-int(prec))
	}
	return pow2Rad(f.MantExp(nil) + 1 - int(prec))
}
