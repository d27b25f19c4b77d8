package generator

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/toyz/scaffold/internal/models"
)

// interfacePattern is the naming convention used to decide that a constructor
// dependency gets a Mock<T> instead of a real instance
var interfacePattern = regexp.MustCompile(`^I[A-Z]\w*`)

const mockObjectMember = "Object"

// IsMockableInterface reports whether a type name follows the interface naming
// convention
func IsMockableInterface(typeName string) bool {
	return interfacePattern.MatchString(typeName)
}

// SystemUnderTestField returns the field name holding the class under test
func SystemUnderTestField(className string) string {
	return "_" + lowerFirst(className)
}

// Injection is the dependency scaffolding for one class
type Injection struct {
	Fields      []models.Field
	Constructor models.GeneratedConstructor
	SUTField    string
}

// SelectConstructor returns the constructor with the most parameters, the
// first one on ties, or false when the class declares none
func SelectConstructor(ctors []models.Constructor) (models.Constructor, bool) {
	if len(ctors) == 0 {
		return models.Constructor{}, false
	}
	biggest := ctors[0]
	for _, c := range ctors[1:] {
		if len(c.Parameters) > len(biggest.Parameters) {
			biggest = c
		}
	}
	return biggest, true
}

// BuildInjection creates the fields and constructor body that set up the
// dependencies of class and construct it
func BuildInjection(class models.Class) Injection {
	fields := make([]models.Field, 0)
	body := make([]models.Statement, 0)
	args := make([]models.Expr, 0)

	if ctor, ok := SelectConstructor(class.Constructors); ok {
		for _, param := range ctor.Parameters {
			fieldName := "_" + param.Name

			var typ models.TypeRef
			var arg models.Expr
			if IsMockableInterface(param.Type) {
				typ = models.MockOf(param.Type)
				arg = models.MemberAccess{Target: models.Ident{Name: fieldName}, Member: mockObjectMember}
			} else {
				typ = models.PlainType(param.Type)
				arg = models.Ident{Name: fieldName}
			}

			fields = append(fields, models.Field{Name: fieldName, Type: typ})
			body = append(body, models.Assign{Target: fieldName, Value: models.New{Type: typ}})
			args = append(args, arg)
		}
	}

	sut := SystemUnderTestField(class.Name)
	fields = append(fields, models.Field{Name: sut, Type: models.PlainType(class.Name)})
	body = append(body, models.Assign{
		Target: sut,
		Value:  models.New{Type: models.PlainType(class.Name), Args: args},
	})

	return Injection{
		Fields:      fields,
		Constructor: models.GeneratedConstructor{Body: body},
		SUTField:    sut,
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
