package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/models"
)

// Template names
const (
	TemplateUnit       = "unit"
	TemplateTestMethod = "test-method"
)

// Renderer turns a synthesized unit into source text
type Renderer interface {
	Render(unit *models.Unit) (string, error)
}

// TemplateRenderer renders units as C# source with text/template.
// Output is deterministic for equal units. Safe for concurrent use.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewRenderer parses the registered unit templates
func NewRenderer() (*TemplateRenderer, error) {
	return NewRendererWithRegistry(NewTemplateRegistry())
}

// NewRendererWithRegistry parses the unit templates of registry
func NewRendererWithRegistry(registry *TemplateRegistry) (*TemplateRenderer, error) {
	unit, ok := registry.Get(TemplateUnit)
	if !ok {
		return nil, fmt.Errorf("template %s is not registered", TemplateUnit)
	}
	method, ok := registry.Get(TemplateTestMethod)
	if !ok {
		return nil, fmt.Errorf("template %s is not registered", TemplateTestMethod)
	}

	tmpl, err := template.New(TemplateUnit).Funcs(funcMap()).Parse(unit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", TemplateUnit, err)
	}
	if _, err := tmpl.New(TemplateTestMethod).Parse(method); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", TemplateTestMethod, err)
	}

	return &TemplateRenderer{tmpl: tmpl}, nil
}

// MustNewRenderer is NewRenderer that panics on template errors
func MustNewRenderer() *TemplateRenderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render renders unit as a complete C# file
func (r *TemplateRenderer) Render(unit *models.Unit) (string, error) {
	if unit == nil {
		return "", errors.WrapRenderError("", TemplateUnit, fmt.Errorf("unit cannot be nil"))
	}
	if unit.ClassName == "" {
		return "", errors.WrapRenderError("", TemplateUnit, fmt.Errorf("unit has no class name"))
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, TemplateUnit, unit); err != nil {
		return "", errors.WrapRenderError(unit.ClassName, TemplateUnit, err)
	}
	return buf.String(), nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"stmt":    RenderStatement,
		"expr":    RenderExpr,
		"typeRef": RenderTypeRef,
	}
}
