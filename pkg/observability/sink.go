package observability

import (
	"context"

	"github.com/matzehuels/svgkit/pkg/diag"
)

// DiagnosticSink returns a sink that forwards every diagnostic to the
// registered build hooks. The hooks are looked up per report, so the sink
// can be created before SetBuildHooks is called.
func DiagnosticSink(ctx context.Context) diag.Sink {
	return diag.SinkFunc(func(d diag.Diagnostic) {
		Build().OnDiagnostic(ctx, d.Kind.String(), d.Element)
	})
}
