// Package riemannapp implements riemann-digamma: ψ((x + iy - 3) / (-2)),
// printed as its real and imaginary parts to 50 significant digits each.
package riemannapp

import (
	"context"
	"fmt"
	"io"

	"digamma-core/ball"
	"digamma-core/digamma"

	"digamma/internal/appcore"
	"digamma/internal/cli"
)

const (
	Name   = "riemann-digamma"
	Prec   = 100 // working precision, bits
	Digits = 50
)

// Argument returns (x + iy - 3) / (-2).
func Argument(x, y *ball.Real) *ball.Complex {
	z := ball.NewComplex(Prec).SetParts(x, y)
	z = ball.NewComplex(Prec).SubReal(z, ball.NewRealInt(3, Prec))
	return ball.NewComplex(Prec).DivReal(z, ball.NewRealInt(-2, Prec))
}

// Eval returns ψ(Argument(x, y)). A non-finite result comes with an
// error wrapping digamma.ErrPole or digamma.ErrNotFinite.
func Eval(x, y *ball.Real) (*ball.Complex, error) {
	w := Argument(x, y)
	v := digamma.Complex(w, Prec)
	if !v.IsFinite() {
		return v, fmt.Errorf("ψ(%s + %si): %w", w.Real().Text(Digits), w.Imag().Text(Digits), digamma.ComplexCause(w))
	}
	return v, nil
}

var tool = appcore.Tool{
	Command: cli.Command{
		Name:  Name,
		Title: "digamma along the Riemann-transformed line",
		About: `Prints Re ψ((x + iy - 3) / (-2)) and Im ψ(...) on two lines, evaluated
with 100-bit ball arithmetic, each to 50 significant digits as
"[mid +/- rad]". Poles print "nan" on both lines and exit with status 1.`,
		Args: []cli.Arg{
			{Name: "x", Help: "real part (decimal number)"},
			{Name: "y", Help: "imaginary part (decimal number)"},
		},
		Examples: []string{
			Name + " 2 2",
			Name + " 0.5 -14.134725",
		},
	},
	Prec:   Prec,
	Digits: Digits,
	Eval: func(args []*ball.Real) ([]*ball.Real, error) {
		v, err := Eval(args[0], args[1])
		return []*ball.Real{v.Real(), v.Imag()}, err
	},
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.RunContext(ctx, tool, argv, stdout, stderr)
}
