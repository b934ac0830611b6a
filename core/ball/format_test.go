package ball

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	cases := []struct {
		name string
		x    *Real
		n    int
		want string
	}{
		{"zero", NewReal(64), 20, "0"},
		{"exact integer", NewRealInt(3, 100), 20, "3.0000000000000000000"},
		{"exact negative", NewRealInt(-42, 64), 5, "-42.000"},
		{"exact half", MustParseReal("0.5", 100), 20, "0.50000000000000000000"},
		{"exact large", NewRealInt(1000000000000, 64), 5, "1.0000e+12"},
		{"enclosure", MustParseReal("[1.5 +/- 0.25]", 64), 20, "[1.5 +/- 0.250]"},
		{"rounded away digits", NewRealInt(1234567, 64), 3, "[1230000 +/- 4.57e+3]"},
		{"small fixed", NewReal(64).Mul2Exp(NewRealInt(1, 64), -10), 4, "[0.0009766 +/- 3.75e-8]"},
		{"carry", NewReal(64).Div(NewRealInt(2047, 64), NewRealInt(2048, 64)), 3, "[1.00 +/- 4.89e-4]"},
		{"radius only", MustParseReal("[+/- 0.5]", 64), 20, "[+/- 0.500]"},
		{"no accurate digits", MustParseReal("[1 +/- 100]", 64), 20, "[+/- 101]"},
		{"nan", Indeterminate(64), 20, "nan"},
		{"unbounded", Unbounded(64), 20, "[+/- inf]"},
	}
	for _, c := range cases {
		if got := c.x.Text(c.n); got != c.want {
			t.Errorf("%s: Text(%d) = %q, want %q", c.name, c.n, got, c.want)
		}
	}
}

func TestTextCapsDigitsByAccuracy(t *testing.T) {
	// 1/3 at 100 bits carries about 30 good digits; asking for 50 must not
	// print digits the radius does not support.
	x := NewReal(100).Inv(NewRealInt(3, 100))
	got := x.Text(50)
	mid, _, ok := strings.Cut(strings.TrimPrefix(got, "["), " +/- ")
	if !ok || !strings.HasPrefix(mid, "0.333333333333333333333333") {
		t.Fatalf("Text(50) = %q", got)
	}
	if digits := len(mid) - 2; digits < 28 || digits > 32 {
		t.Fatalf("Text(50) printed %d digits: %q", digits, got)
	}
}

func TestTextScientificMidpoint(t *testing.T) {
	x := MustParseReal("1e-10", 100)
	got := x.Text(5)
	want := "[1.0000e-10 +/- "
	if !strings.HasPrefix(got, want) {
		t.Fatalf("Text(5) = %q, want prefix %q", got, want)
	}
}

func TestTextReparsesToEnclosure(t *testing.T) {
	values := []*Real{
		NewReal(100).Inv(NewRealInt(7, 100)),
		NewReal(100).Div(NewRealInt(-22, 100), NewRealInt(7, 100)),
		Pi(100),
		NewReal(100).Mul2Exp(Pi(100), 80),
		NewReal(100).Mul2Exp(Pi(100), -80),
		MustParseReal("[12.5 +/- 0.003]", 100),
	}
	for _, x := range values {
		for _, n := range []int{1, 3, 20, 50} {
			s := x.Text(n)
			y, err := ParseReal(s, 100)
			if err != nil {
				t.Fatalf("reparse %q: %v", s, err)
			}
			if !y.Contains(x) {
				t.Fatalf("%q does not enclose %v", s, x)
			}
		}
	}
}
