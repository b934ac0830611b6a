package ball

import (
	"strconv"
	"testing"
)

// refPrec is well above any precision the tests evaluate at, so a reference
// parsed from a long decimal string is effectively a point.
const refPrec = 512

// requireEncloses fails unless x contains the value written in ref.
func requireEncloses(t *testing.T, x *Real, ref string) {
	t.Helper()
	want := MustParseReal(ref, refPrec)
	if !x.Contains(want) {
		t.Fatalf("%v does not contain %s", x, ref)
	}
}

// overlap reports whether a and b share a point.
func overlap(a, b *Real) bool {
	return NewReal(0).Sub(a, b).ContainsZero()
}

// strconvFloat prints f with enough digits to round-trip.
func strconvFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
