package ball

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrSyntax reports a string that is not a decimal number or enclosure.
var ErrSyntax = errors.New("invalid number syntax")

// ParseReal parses s at precision prec. Accepted forms:
//
//	12  -3.5  .25  1e-30  +2.5E+3     decimal numbers
//	[1.25 +/- 0.01]  [+/- 1e-20]      enclosures, as printed by Text
//	nan  inf  -inf                    non-finite values
//
// A decimal that is not exactly representable in prec bits gets a radius of
// two ulps.
func ParseReal(s string, prec uint) (*Real, error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		return parseEnclosure(s, t[1:len(t)-1], prec)
	}
	switch strings.ToLower(t) {
	case "nan", "+nan", "-nan":
		return Indeterminate(prec), nil
	case "inf", "+inf", "-inf":
		return Unbounded(prec), nil
	}
	mid, err := parseDecimal(t, prec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	rad := newRad()
	if mid.Acc() != big.Exact {
		rad = newRad().SetMantExp(ulpRad(mid, prec), 1)
	}
	return NewReal(prec).setMR(mid, rad), nil
}

// MustParseReal is ParseReal for constants known to be valid.
func MustParseReal(s string, prec uint) *Real {
	x, err := ParseReal(s, prec)
	if err != nil {
		panic(err)
	}
	return x
}

func parseDecimal(s string, prec uint) (*big.Float, error) {
	if s == "" || strings.ContainsAny(s, "_xXpP") {
		return nil, ErrSyntax
	}
	f, _, err := newMid(prec).Parse(s, 10)
	if err != nil {
		return nil, err
	}
	if f.IsInf() {
		return nil, ErrSyntax
	}
	return f, nil
}

func parseEnclosure(orig, inner string, prec uint) (*Real, error) {
	midStr, radStr, ok := strings.Cut(inner, "+/-")
	if !ok {
		return nil, fmt.Errorf("%w: %q: missing +/-", ErrSyntax, orig)
	}
	midStr, radStr = strings.TrimSpace(midStr), strings.TrimSpace(radStr)
	if strings.EqualFold(radStr, "inf") {
		return Unbounded(prec), nil
	}

	mid := newMid(prec)
	if midStr != "" {
		m, err := parseDecimal(midStr, prec)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: bad midpoint", ErrSyntax, orig)
		}
		mid = m
	}
	if strings.HasPrefix(radStr, "-") {
		return nil, fmt.Errorf("%w: %q: negative radius", ErrSyntax, orig)
	}
	r, err := parseDecimal(radStr, radPrec)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: bad radius", ErrSyntax, orig)
	}
	rad := radAdd(absUp(r), roundErr(r))
	return NewReal(prec).SetMidRad(mid, radAdd(rad, roundErr(mid))), nil
}
