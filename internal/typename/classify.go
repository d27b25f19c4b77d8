package typename

import (
	"strings"

	"github.com/toyz/scaffold/internal/models"
)

// ClassifyReturn builds the return-type descriptor for a declared return type.
// Text that does not parse as a type name is treated as a plain value type.
func ClassifyReturn(text string) models.ReturnType {
	text = strings.TrimSpace(text)
	t, err := Parse(text)
	if err != nil {
		return models.ReturnType{Kind: models.ReturnValue, Name: text}
	}

	name := t.String()
	if t.IsVoid() {
		return models.ReturnType{Kind: models.ReturnVoid, Name: name}
	}
	if args, ok := t.TaskArgs(); ok {
		if len(args) == 0 {
			return models.ReturnType{Kind: models.ReturnTask, Name: name}
		}
		return models.ReturnType{Kind: models.ReturnTaskOf, Name: name, Elem: args[0].String()}
	}
	return models.ReturnType{Kind: models.ReturnValue, Name: name}
}

// Normalize returns the canonical spelling of a type name, or the trimmed input
// when it does not parse
func Normalize(text string) string {
	t, err := Parse(text)
	if err != nil {
		return strings.TrimSpace(text)
	}
	return t.String()
}
