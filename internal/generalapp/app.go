// Package generalapp implements general-digamma: ψ(((1 - d) + m) / 2) for
// real d and m, printed to 20 significant digits.
package generalapp

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
	Name   = "general-digamma"
	Prec   = 100 // working precision, bits
	Digits = 20
)

// Argument returns ((1 - d) + m) / 2.
func Argument(d, m *ball.Real) *ball.Real {
	t := ball.NewReal(Prec).Sub(ball.NewRealInt(1, Prec), d)
	t = ball.NewReal(Prec).Add(t, m)
	return ball.NewReal(Prec).Div(t, ball.NewRealInt(2, Prec))
}

// Eval returns ψ(Argument(d, m)). A non-finite result comes with an
// error wrapping digamma.ErrPole or digamma.ErrNotFinite.
func Eval(d, m *ball.Real) (*ball.Real, error) {
	x := Argument(d, m)
	y := digamma.Real(x, Prec)
	if !y.IsFinite() {
		return y, fmt.Errorf("ψ(%s): %w", x.Text(Digits), digamma.Cause(x))
	}
	return y, nil
}

var tool = appcore.Tool{
	Command: cli.Command{
		Name:  Name,
		Title: "digamma of a real argument",
		About: `Prints ψ(((1 - d) + m) / 2), evaluated with 100-bit ball arithmetic, to
20 significant digits as "[mid +/- rad]" (an exact result prints without
brackets). Poles print "nan" and exit with status 1.`,
		Args: []cli.Arg{
			{Name: "d", Help: "decimal number (e.g. 1, -0.5, 2.5e-3)"},
			{Name: "m", Help: "decimal number"},
		},
		Examples: []string{
			Name + " 1 1",
			Name + " 3 -1",
		},
	},
	Prec:   Prec,
	Digits: Digits,
	Eval: func(args []*ball.Real) ([]*ball.Real, error) {
		y, err := Eval(args[0], args[1])
		return []*ball.Real{y}, err
	},
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return appcore.RunContext(ctx, tool, argv, stdout, stderr)
}
