package generator

import (
	"context"
	"fmt"

	"github.com/toyz/scaffold/internal/parser"
	"github.com/toyz/scaffold/internal/templates"
)

// Generator implements TestGenerator: it parses a source file, synthesizes one
// unit per class and renders each unit
type Generator struct {
	parser   parser.SourceParser
	renderer templates.Renderer
}

// NewGenerator creates a generator backed by the tree-sitter parser and the
// template renderer
func NewGenerator() (*Generator, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return NewGeneratorWith(parser.NewCSharpParser(), renderer), nil
}

// NewGeneratorWith creates a generator with explicit collaborators
func NewGeneratorWith(p parser.SourceParser, r templates.Renderer) *Generator {
	return &Generator{parser: p, renderer: r}
}

// Generate emits one rendered unit per class in src, in declaration order.
// A file without classes emits nothing.
func (g *Generator) Generate(ctx context.Context, path string, src []byte, emit Emit) error {
	file, err := g.parser.Parse(ctx, path, src)
	if err != nil {
		return err
	}

	for _, class := range file.Classes {
		if err := ctx.Err(); err != nil {
			return err
		}

		unit := Synthesize(file, class)
		text, err := g.renderer.Render(unit)
		if err != nil {
			return err
		}
		if err := emit(unit, text); err != nil {
			return err
		}
	}
	return nil
}
