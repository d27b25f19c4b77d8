// Package typename parses C# type names such as "Task<Uri>", "int[,]" or
// "global::System.Collections.Generic.List<(int Id, string Name)>?".
package typename

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Type is the root of a parsed type name
type Type struct {
	Alias    string          `parser:"( @Ident '::' )?"`
	Tuple    []*TupleElement `parser:"( '(' @@ ( ',' @@ )+ ')'"`
	Segments []*Segment      `parser:"| @@ ( '.' @@ )* )"`
	Nullable bool            `parser:"@'?'?"`
	Ranks    []*Rank         `parser:"@@*"`
}

// Segment is one dotted part of a qualified name with optional type arguments
type Segment struct {
	Name string  `parser:"@Ident"`
	Args []*Type `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
}

// TupleElement is one element of a tuple type
type TupleElement struct {
	Type *Type  `parser:"@@"`
	Name string `parser:"@Ident?"`
}

// Rank is one array rank specifier
type Rank struct {
	Open   string   `parser:"@'['"`
	Commas []string `parser:"@','* ']'"`
}

var typeParser = participle.MustBuild[Type](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `@?[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "DoubleColon", Pattern: `::`},
		{Name: "Punct", Pattern: `[.,<>?\[\]()]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses a C# type name
func Parse(text string) (*Type, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty type name")
	}
	t, err := typeParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("invalid type name '%s': %w", text, err)
	}
	return t, nil
}

// String renders the type in canonical form
func (t *Type) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	if t.Alias != "" {
		b.WriteString(t.Alias)
		b.WriteString("::")
	}
	if len(t.Tuple) > 0 {
		b.WriteString("(")
		for i, el := range t.Tuple {
			if i > 0 {
				b.WriteString(", ")
			}
			el.Type.write(b)
			if el.Name != "" {
				b.WriteString(" ")
				b.WriteString(el.Name)
			}
		}
		b.WriteString(")")
	}
	for i, seg := range t.Segments {
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(seg.Name)
		if len(seg.Args) > 0 {
			b.WriteString("<")
			for j, arg := range seg.Args {
				if j > 0 {
					b.WriteString(", ")
				}
				arg.write(b)
			}
			b.WriteString(">")
		}
	}
	if t.Nullable {
		b.WriteString("?")
	}
	for _, r := range t.Ranks {
		b.WriteString("[")
		b.WriteString(strings.Repeat(",", len(r.Commas)))
		b.WriteString("]")
	}
}

// Qualifier returns the dotted namespace part, e.g. "System.Threading.Tasks"
func (t *Type) Qualifier() string {
	if len(t.Segments) < 2 {
		return ""
	}
	names := make([]string, 0, len(t.Segments)-1)
	for _, seg := range t.Segments[:len(t.Segments)-1] {
		names = append(names, seg.Name)
	}
	return strings.Join(names, ".")
}

// Last returns the final segment of a named type, or nil for tuples
func (t *Type) Last() *Segment {
	if len(t.Segments) == 0 {
		return nil
	}
	return t.Segments[len(t.Segments)-1]
}

// IsArray reports whether the type has at least one rank specifier
func (t *Type) IsArray() bool {
	return len(t.Ranks) > 0
}

// IsVoid reports whether the type is the void keyword
func (t *Type) IsVoid() bool {
	return t.Alias == "" && len(t.Segments) == 1 && t.Segments[0].Name == "void" &&
		len(t.Segments[0].Args) == 0 && !t.Nullable && !t.IsArray()
}

// TaskArgs reports whether the type is an awaitable task handle and returns its
// type arguments. Task, ValueTask and their System.Threading.Tasks-qualified
// forms are recognized.
func (t *Type) TaskArgs() ([]*Type, bool) {
	last := t.Last()
	if last == nil || t.Nullable || t.IsArray() {
		return nil, false
	}
	if last.Name != "Task" && last.Name != "ValueTask" {
		return nil, false
	}
	if q := t.Qualifier(); q != "" && q != "System.Threading.Tasks" {
		return nil, false
	}
	if len(last.Args) > 1 {
		return nil, false
	}
	return last.Args, true
}
