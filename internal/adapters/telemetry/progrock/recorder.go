// Package progrock records scan progress as progrock vertexes.
package progrock

import (
	"context"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/slink/internal/core/ports"
)

// Tracer implements ports.Tracer on a progrock recorder. Every span becomes
// a vertex on the tape, so embedding hosts can stream resolution progress
// into their own progrock UI by supplying a writer.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Tracer recording onto a default tape.
func New() *Tracer {
	return NewTracer(progrock.NewTape())
}

// NewTracer creates a Tracer recording to the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex named after the span.
func (t *Tracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// EmitPlan records the set of plugins about to be scanned as a single
// completed vertex.
func (t *Tracer) EmitPlan(_ context.Context, basenames []string) {
	v := t.rec.Vertex(digest.FromString("plan"), "plan")
	for _, basename := range basenames {
		_, _ = fmt.Fprintln(v.Stdout(), basename)
	}
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
