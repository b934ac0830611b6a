// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gonum.org/v1/gonum/mathext"

	"digamma-core/ball"

	"digamma/internal/generalapp"
	"digamma/internal/riemannapp"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

type result struct {
	code   int
	stdout string
	stderr string
}

func general(argv ...string) result {
	var out, errB bytes.Buffer
	code := generalapp.Run(argv, &out, &errB)
	return result{code, out.String(), errB.String()}
}

func riemann(argv ...string) result {
	var out, errB bytes.Buffer
	code := riemannapp.Run(argv, &out, &errB)
	return result{code, out.String(), errB.String()}
}

// requireEncloses parses a printed value and checks it contains ref.
func requireEncloses(t *testing.T, printed, ref string) {
	t.Helper()
	x, err := ball.ParseReal(printed, 256)
	require.NoErrorf(t, err, "printed value %q", printed)
	want, err := ball.ParseReal(ref, 512)
	require.NoError(t, err)
	require.Truef(t, x.Contains(want), "%q does not contain %s", printed, ref)
}

const (
	psiHalf      = "-1.96351002602142347944097633299875556719315960466043410704713"
	psiOne       = "-0.577215664901532860606512090082402431042159335939923598805767"
	psiTwo       = "0.422784335098467139393487909917597568957840664060076401194233"
	psiHalfMinus = "-0.0517616509944125427926029847120942182994881586883292147963"
	psiHalfMinIm = "-1.56494051781587928263812450495577394800112399677478513003528"
)

func TestGeneralScenarios(t *testing.T) {
	cases := []struct {
		d, m string
		want string
	}{
		{"1", "1", "[-1.9635100260214234794 +/- 4.10e-20]"},
		{"3", "1", "[0.036489973978576520559 +/- 2.37e-23]"},
		{"1", "-1", "[0.036489973978576520559 +/- 2.37e-23]"},
	}
	for _, c := range cases {
		r := general(c.d, c.m)
		require.Equalf(t, 0, r.code, "%s %s: %s", c.d, c.m, r.stderr)
		assert.Equal(t, c.want, r.stdout)
		assert.Empty(t, r.stderr)
	}
	requireEncloses(t, general("1", "1").stdout, psiHalf)
}

func TestGeneralConsumerArguments(t *testing.T) {
	// d = -1 with the m values the verification script passes.
	cases := []struct {
		m, ref string
	}{
		{"0", psiOne},
		{"1", "0.0364899739785765205590236670012444328068403953395658929528727"},
		{"0.5", "-0.227453533376265408089530146096683577367244438708242271655280"},
		{"5.5", "1.18253738861179622864151150558108770509832322906513194758806"},
	}
	for _, c := range cases {
		r := general("-1", c.m)
		require.Equalf(t, 0, r.code, "m=%s: %s", c.m, r.stderr)
		assert.NotContains(t, r.stdout, "\n")
		requireEncloses(t, r.stdout, c.ref)
	}
}

func TestRiemannScenarios(t *testing.T) {
	r := riemann("2", "2")
	require.Equal(t, 0, r.code, r.stderr)
	lines := strings.Split(r.stdout, "\n")
	require.Len(t, lines, 2, "two lines, no trailing newline: %q", r.stdout)
	requireEncloses(t, lines[0], psiHalfMinus)
	requireEncloses(t, lines[1], psiHalfMinIm)

	// The consumer's own call: x = -1, y = 0 gives w = 2.
	r = riemann("-1", "0")
	require.Equal(t, 0, r.code, r.stderr)
	lines = strings.Split(r.stdout, "\n")
	require.Len(t, lines, 2)
	requireEncloses(t, lines[0], psiTwo)
	assert.Equal(t, "0", lines[1])
}

func TestRiemannDigitsAreCappedByAccuracy(t *testing.T) {
	r := riemann("2", "2")
	require.Equal(t, 0, r.code)
	for _, line := range strings.Split(r.stdout, "\n") {
		mid, _, ok := strings.Cut(strings.Trim(line, "[]"), " +/- ")
		require.True(t, ok, line)
		digits := strings.TrimLeft(strings.NewReplacer("-", "", ".", "").Replace(mid), "0")
		assert.LessOrEqual(t, len(digits), 32, "100 bits cannot support 50 digits: %s", line)
		assert.GreaterOrEqual(t, len(digits), 25, line)
	}
}

func TestPoles(t *testing.T) {
	for _, dm := range [][2]string{{"1", "0"}, {"3", "-2"}, {"7", "0"}} {
		r := general(dm[0], dm[1])
		assert.Equalf(t, 1, r.code, "%v", dm)
		assert.Equal(t, "nan", r.stdout)
		assert.Contains(t, r.stderr, "WRN")
		assert.Contains(t, r.stderr, "pole")
	}
	for _, x := range []string{"3", "5"} {
		r := riemann(x, "0")
		assert.Equal(t, 1, r.code)
		assert.Equal(t, "nan\nnan", r.stdout)
		assert.Contains(t, r.stderr, "WRN")
	}
}

func TestFarLeftLargeImaginaryIsFinite(t *testing.T) {
	// w = -1048.5 - 5e8i: regular, although e^|Im πw| overflows.
	r := riemann("2100", "1e9")
	require.Equal(t, 0, r.code, r.stderr)
	lines := strings.Split(r.stdout, "\n")
	require.Len(t, lines, 2)
	requireEncloses(t, lines[0], "20.0301186563886666485780194605071922457639294990417727431557")
	requireEncloses(t, lines[1], "-1.57079842479489661615313399364788081575965691893482693907027")
	assert.Empty(t, r.stderr)
}

func TestInfiniteArgumentIsNotReportedAsPole(t *testing.T) {
	r := general("inf", "1")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "[+/- inf]", r.stdout)
	assert.Contains(t, r.stderr, "not finite")
	assert.NotContains(t, r.stderr, "pole")
}

func TestNearPoleIsFinite(t *testing.T) {
	// Close to, but not at, a pole the enclosure stays finite.
	r := riemann("3", "1e-20")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "nan")
	assert.NotContains(t, r.stdout, "inf")
}

func TestNegativeArgumentsAreNotFlags(t *testing.T) {
	r := general("-0.5", "-3")
	require.Equal(t, 0, r.code, r.stderr)
	// ((1 + 0.5) - 3) / 2 = -0.75
	requireEncloses(t, r.stdout, "-2.89412020004293207475619681276335024403391110537490893832195")

	r = riemann("-1e1", "-2.5")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Len(t, strings.Split(r.stdout, "\n"), 2)
}

func TestUsageErrors(t *testing.T) {
	for _, argv := range [][]string{{"1"}, {"1", "2", "3"}, {"--bogus", "1", "2"}} {
		r := general(argv...)
		assert.Equalf(t, 2, r.code, "%v", argv)
		assert.Contains(t, r.stdout, "Usage:")
		assert.Contains(t, r.stderr, "error:")
	}

	r := riemann("1", "abc")
	assert.Equal(t, 2, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "ERR")
	assert.Contains(t, r.stderr, "abc")
}

func TestHelpAndVersion(t *testing.T) {
	for _, argv := range [][]string{nil, {"-h"}, {"--help"}} {
		r := riemann(argv...)
		assert.Equal(t, 0, r.code)
		assert.Contains(t, r.stdout, "riemann-digamma [flags] x y")
	}
	r := general("--version")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "general-digamma version dev\n", r.stdout)
}

func TestIdempotent(t *testing.T) {
	a, b := riemann("0.25", "-14.134725"), riemann("0.25", "-14.134725")
	require.Equal(t, 0, a.code, a.stderr)
	assert.Equal(t, a.stdout, b.stdout)
}

func TestToolsAgreeOnRealAxis(t *testing.T) {
	// riemann(x, 0) evaluates ψ((3 - x)/2) = general(x - 2, 0).
	for _, x := range []string{"0", "2", "-7", "2.5", "1003.5"} {
		rx, err := ball.ParseReal(x, 100)
		require.NoError(t, err)
		d := ball.NewReal(100).Sub(rx, ball.NewRealInt(2, 100)).Text(30)

		g := general(d, "0")
		r := riemann(x, "0")
		require.Equalf(t, 0, g.code, "general %s 0: %s", d, g.stderr)
		require.Equalf(t, 0, r.code, "riemann %s 0: %s", x, r.stderr)

		gb, err := ball.ParseReal(g.stdout, 256)
		require.NoError(t, err)
		rb, err := ball.ParseReal(strings.Split(r.stdout, "\n")[0], 256)
		require.NoError(t, err)
		assert.Truef(t, ball.NewReal(0).Sub(gb, rb).ContainsZero(), "x=%s: %s vs %s", x, g.stdout, r.stdout)
	}
}

func TestGeneralAgainstFloat64(t *testing.T) {
	for _, d := range []float64{-40, -7.5, -1, 0.25, 3, 18} {
		for _, m := range []float64{-2.5, 0.5, 1, 5.5, 30} {
			x := ((1 - d) + m) / 2
			if x <= 0 && x == math.Trunc(x) {
				continue
			}
			ds, ms := strconv.FormatFloat(d, 'g', -1, 64), strconv.FormatFloat(m, 'g', -1, 64)
			r := general(ds, ms)
			require.Equalf(t, 0, r.code, "%s %s: %s", ds, ms, r.stderr)
			got, err := ball.ParseReal(r.stdout, 128)
			require.NoError(t, err)
			want := mathext.Digamma(x)
			assert.InDeltaf(t, want, got.Float64(), 1e-9*math.Max(1, math.Abs(want)), "ψ(%g)", x)
		}
	}
}
