// internal/integration/cancel_integration_test.go
package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"digamma/internal/appshell"
	"digamma/internal/generalapp"
	"digamma/internal/riemannapp"
)

func TestCancelledBeforeEvaluation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, run := range map[string]appshell.RunFunc{
		"general": generalapp.RunContext,
		"riemann": riemannapp.RunContext,
	} {
		var out, errB bytes.Buffer
		code := appshell.Run(ctx, run, []string{"2", "2"}, &out, &errB)
		assert.Equalf(t, 130, code, "%s: %s", name, errB.String())
		assert.Emptyf(t, out.String(), "%s printed a result after cancellation", name)
	}
}

func TestCancelDoesNotMaskHelp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var out, errB bytes.Buffer
	assert.Equal(t, 0, appshell.Run(ctx, generalapp.RunContext, []string{"-h"}, &out, &errB))
	assert.Contains(t, out.String(), "general-digamma")
}
