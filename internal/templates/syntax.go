package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toyz/scaffold/internal/models"
)

// RenderTypeRef renders a field type, wrapping mocks as Mock<T>
func RenderTypeRef(t models.TypeRef) string {
	if t.Mock {
		return "Mock<" + t.Name + ">"
	}
	return t.Name
}

// RenderStatement renders one statement including its terminating semicolon
func RenderStatement(s models.Statement) (string, error) {
	switch st := s.(type) {
	case models.LocalDecl:
		init, err := RenderExpr(st.Init)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s = %s;", st.Type, st.Name, init), nil
	case models.Assign:
		value, err := RenderExpr(st.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %s;", st.Target, value), nil
	case models.ExprStatement:
		e, err := RenderExpr(st.Expr)
		if err != nil {
			return "", err
		}
		return e + ";", nil
	case nil:
		return "", fmt.Errorf("nil statement")
	default:
		return "", fmt.Errorf("unsupported statement %T", s)
	}
}

// RenderExpr renders an expression
func RenderExpr(e models.Expr) (string, error) {
	switch ex := e.(type) {
	case models.Ident:
		if ex.Name == "" {
			return "", fmt.Errorf("empty identifier")
		}
		return ex.Name, nil
	case models.MemberAccess:
		target, err := RenderExpr(ex.Target)
		if err != nil {
			return "", err
		}
		return target + "." + ex.Member, nil
	case models.Call:
		target, err := RenderExpr(ex.Target)
		if err != nil {
			return "", err
		}
		args, err := renderArgs(ex.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s.%s(%s)", target, ex.Method, args), nil
	case models.New:
		args, err := renderArgs(ex.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("new %s(%s)", RenderTypeRef(ex.Type), args), nil
	case models.Default:
		return "default(" + ex.Type + ")", nil
	case models.Await:
		inner, err := RenderExpr(ex.Expr)
		if err != nil {
			return "", err
		}
		return "await " + inner, nil
	case models.BoolLiteral:
		return strconv.FormatBool(ex.Value), nil
	case models.StringLiteral:
		return csharpQuote(ex.Value), nil
	case nil:
		return "", fmt.Errorf("nil expression")
	default:
		return "", fmt.Errorf("unsupported expression %T", e)
	}
}

func renderArgs(args []models.Expr) (string, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		s, err := RenderExpr(arg)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

// csharpQuote renders s as a C# regular string literal. Escapes follow the
// C# lexical grammar rather than Go's, so \a-style and \x escapes are
// never produced.
func csharpQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
