package generator

import (
	"context"

	"github.com/toyz/scaffold/internal/models"
)

// Emit receives one rendered unit. Returning an error stops generation of the
// remaining classes in the file.
type Emit func(unit *models.Unit, text string) error

// TestGenerator turns the text of one source file into zero or more rendered
// test units
type TestGenerator interface {
	Generate(ctx context.Context, path string, src []byte, emit Emit) error
}
