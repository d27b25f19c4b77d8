package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newCaptured(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	d := NewDiagnosticSystem(level)
	d.SetOutput(&out, &errOut)
	return d, &out, &errOut
}

func TestDiagnosticSystem_Levels(t *testing.T) {
	d, out, errOut := newCaptured(DiagnosticInfo)

	d.Info("reading %d files", 3)
	d.Verbose("hidden")
	d.Error("failed: %s", "boom")

	assert.Equal(t, "[INFO] reading 3 files\n", out.String())
	assert.Equal(t, "[ERROR] failed: boom\n", errOut.String())
}

func TestDiagnosticSystem_Quiet(t *testing.T) {
	d, out, errOut := newCaptured(DiagnosticError)

	d.Info("hidden")
	d.Success("hidden")
	d.Written("out/FooTests.cs")
	d.Error("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}

func TestDiagnosticSystem_Summary(t *testing.T) {
	d, out, _ := newCaptured(DiagnosticInfo)

	d.Summary("Summary", map[string]interface{}{
		"written": 2,
		"classes": 2,
	})

	assert.Equal(t, "\nSummary\n   classes: 2\n   written: 2\n\n", out.String())
}

func TestDiagnosticSystem_Indent(t *testing.T) {
	d, out, _ := newCaptured(DiagnosticInfo)

	d.Indent()
	d.List("item")
	d.Unindent()
	d.Unindent()
	d.List("top")

	assert.Equal(t, "  - item\n- top\n", out.String())
}
