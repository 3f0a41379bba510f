package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span wraps one progrock vertex. RecordError is deferred to End so the
// vertex closes exactly once with its final outcome.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// End completes the vertex with the recorded outcome.
func (s *Span) End() {
	s.vertex.Done(s.err)
}

// RecordError stores the error the vertex will be completed with.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute writes the pair to the vertex output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// Write streams log output into the vertex.
func (s *Span) Write(p []byte) (n int, err error) {
	return s.vertex.Stdout().Write(p)
}
