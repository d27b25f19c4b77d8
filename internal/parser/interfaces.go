package parser

import (
	"context"

	"github.com/toyz/scaffold/internal/models"
)

// SourceParser turns C# source text into the structural model of the file
type SourceParser interface {
	Parse(ctx context.Context, path string, src []byte) (*models.SourceFile, error)
}

// ClassNameExtractor finds the name of the first class declared in C# text
type ClassNameExtractor interface {
	FirstClassName(ctx context.Context, src []byte) (string, error)
}
