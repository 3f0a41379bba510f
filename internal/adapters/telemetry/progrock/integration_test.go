package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/slink/internal/adapters/telemetry/progrock"
	"go.trai.ch/zerr"
)

func TestTracer_Integration(t *testing.T) {
	tracer := progrock.New()

	ctx := context.Background()
	_, span := tracer.Start(ctx, "resolve my-plugin/my-plugin.yaml")

	_, err := span.Write([]byte("checking overrides\n"))
	require.NoError(t, err)

	span.SetAttribute("outcome", "menu")
	span.End()

	_, failed := tracer.Start(ctx, "resolve broken/broken.yaml")
	failed.RecordError(zerr.New("no manifest"))
	failed.End()

	tracer.EmitPlan(ctx, []string{"my-plugin/my-plugin.yaml", "broken/broken.yaml"})

	require.NoError(t, tracer.Close())
}
