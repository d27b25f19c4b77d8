package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/scaffold/internal/config"
	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/utils"
)

const pricedCart = `using System;

namespace Shop
{
    public class Cart
    {
        public Cart(IPricing pricing) { }

        public decimal Total(int count) { return 0; }
    }
}
`

type testOutput struct {
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newTestGenerator(fs afero.Fs) (*Generator, *testOutput) {
	output := &testOutput{}
	diagnostics := utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	diagnostics.SetOutput(&output.out, &output.errOut)
	reporter := NewDiagnosticReporter(false)
	reporter.SetOutput(&output.errOut)
	return NewGenerator(fs, diagnostics, reporter), output
}

func TestGenerator_Generate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.FromSlash("src/Cart.cs"), []byte(pricedCart), 0o644))
	require.NoError(t, afero.WriteFile(fs, filepath.FromSlash("src/notes.txt"), []byte("ignored"), 0o644))

	g, output := newTestGenerator(fs)
	cfg := config.Default()
	cfg.OutputDir = "out"

	summary, err := g.Generate(context.Background(), cfg, []string{"src"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesRead)
	assert.Equal(t, []string{filepath.Join("out", "CartTests.cs")}, summary.Outputs)

	text, err := afero.ReadFile(fs, filepath.Join("out", "CartTests.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "public class CartTests")

	assert.Contains(t, output.out.String(), "Scaffold: Generating test scaffolds")
	assert.Contains(t, output.out.String(), "✓ "+filepath.Join("out", "CartTests.cs"))
	assert.Contains(t, output.out.String(), "Files written: 1")
	assert.Contains(t, output.out.String(), "Scaffold: Generation complete!")
	assert.Empty(t, output.errOut.String())
}

func TestGenerator_UsesConfiguredInputs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "Cart.cs", []byte(pricedCart), 0o644))

	g, _ := newTestGenerator(fs)
	cfg := config.Default()
	cfg.Inputs = []string{"Cart.cs"}

	summary, err := g.Generate(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.UnitsGenerated)
}

func TestGenerator_NoInputs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("empty", 0o755))

	g, output := newTestGenerator(fs)

	_, err := g.Generate(context.Background(), config.Default(), []string{"empty"})
	require.Error(t, err)
	assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
	assert.Contains(t, output.errOut.String(), "no source files to process")
}

func TestGenerator_ReportsFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "Broken.cs", []byte("public class {"), 0o644))

	g, output := newTestGenerator(fs)

	_, err := g.Generate(context.Background(), config.Default(), []string{"Broken.cs", "Missing.cs"})
	require.Error(t, err)

	assert.Contains(t, output.errOut.String(), "ERROR")
	assert.NotContains(t, output.out.String(), "Generation complete")
}

func TestGenerator_WarnsAboutOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.cs", []byte("namespace A { public class Dup { } }"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "b.cs", []byte("namespace B { public class Dup { } }"), 0o644))

	g, output := newTestGenerator(fs)
	cfg := config.Default()
	cfg.OutputDir = "out"

	summary, err := g.Generate(context.Background(), cfg, []string{"a.cs", "b.cs"})
	require.NoError(t, err)

	path := filepath.Join("out", "DupTests.cs")
	assert.Equal(t, []string{path}, summary.Overwrites)
	assert.Contains(t, output.out.String(), "[WARN] "+path+" was generated by more than one class")
}
