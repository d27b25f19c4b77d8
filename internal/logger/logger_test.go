package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"console", Options{}},
		{"json", Options{JSON: true}},
		{"verbose", Options{Verbose: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { Use(nil) })

			require.NoError(t, Initialize(tt.opts))
			assert.NotNil(t, Logger)
			assert.Equal(t, tt.opts.JSON, JSONOutput)
		})
	}
}

func TestOptions_Level(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, Options{}.Level())
	assert.Equal(t, zapcore.InfoLevel, Options{JSON: true}.Level())
	assert.Equal(t, zapcore.DebugLevel, Options{Verbose: true}.Level())
	assert.Equal(t, zapcore.ErrorLevel, Options{Quiet: true, Verbose: true}.Level())
}

func TestComponentLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core).Sugar())
	t.Cleanup(func() { Use(nil) })

	ComponentLogger(ComponentPipeline).Named(ComponentRead).Infow("file read", FieldPath, "a.cs")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pipeline.read", entries[0].LoggerName)
	assert.Equal(t, "a.cs", entries[0].ContextMap()[FieldPath])
}

func TestUse_NilFallsBackToNop(t *testing.T) {
	Use(nil)
	assert.NotPanics(t, func() { Logger.Info("ignored") })
}
