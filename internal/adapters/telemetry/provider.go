package telemetry

import (
	"os"

	"github.com/muesli/termenv"
	progrockadapter "go.trai.ch/slink/internal/adapters/telemetry/progrock"
	"go.trai.ch/slink/internal/core/ports"
)

// NewFromEnvironment selects the tracer implementation. Interactive color
// terminals get the progrock tape recorder; plain pipes, NO_COLOR, and CI
// runs get the no-op tracer.
func NewFromEnvironment() ports.Tracer {
	if os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != "" {
		return NewNoOpTracer()
	}
	if termenv.NewOutput(os.Stderr).EnvColorProfile() == termenv.Ascii {
		return NewNoOpTracer()
	}
	return progrockadapter.New()
}
