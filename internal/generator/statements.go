package generator

import "github.com/toyz/scaffold/internal/models"

const (
	assertClass       = "Assert"
	placeholderFailed = "error"
	actualLocal       = "actual"
	expectedLocal     = "expected"
)

// HasReturn reports whether a test for m checks a result. Void methods and
// async methods returning a bare task have nothing to compare.
func HasReturn(m models.Method) bool {
	switch m.Return.Kind {
	case models.ReturnVoid:
		return false
	case models.ReturnTask:
		return !m.Async
	}
	return true
}

// UnwrappedReturn returns the logical result type of m: the task's type
// argument for async task-of methods, the declared type otherwise
func UnwrappedReturn(m models.Method) string {
	if m.Async && m.Return.Kind == models.ReturnTaskOf {
		return m.Return.Elem
	}
	return m.Return.Name
}

// ArrangeStatements declares one placeholder local per parameter, in order
func ArrangeStatements(m models.Method) []models.Statement {
	stmts := make([]models.Statement, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		stmts = append(stmts, models.LocalDecl{
			Type: p.Type,
			Name: p.Name,
			Init: models.Default{Type: p.Type},
		})
	}
	return stmts
}

// ActStatement invokes m on the system under test, forwarding the arranged
// locals by name
func ActStatement(sutField string, m models.Method) models.Statement {
	args := make([]models.Expr, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		args = append(args, models.Ident{Name: p.Name})
	}

	var call models.Expr = models.Call{
		Target: models.Ident{Name: sutField},
		Method: m.Name,
		Args:   args,
	}
	if m.Async {
		call = models.Await{Expr: call}
	}

	if !HasReturn(m) {
		return models.ExprStatement{Expr: call}
	}
	return models.LocalDecl{Type: UnwrappedReturn(m), Name: actualLocal, Init: call}
}

// AssertStatements compares expected and actual results, or emits a failing
// placeholder assertion when the method returns nothing
func AssertStatements(m models.Method) []models.Statement {
	if !HasReturn(m) {
		return []models.Statement{
			models.ExprStatement{Expr: models.Call{
				Target: models.Ident{Name: assertClass},
				Method: "True",
				Args: []models.Expr{
					models.BoolLiteral{Value: false},
					models.StringLiteral{Value: placeholderFailed},
				},
			}},
		}
	}

	typ := UnwrappedReturn(m)
	return []models.Statement{
		models.LocalDecl{Type: typ, Name: expectedLocal, Init: models.Default{Type: typ}},
		models.ExprStatement{Expr: models.Call{
			Target: models.Ident{Name: assertClass},
			Method: "Equal",
			Args: []models.Expr{
				models.Ident{Name: expectedLocal},
				models.Ident{Name: actualLocal},
			},
		}},
	}
}

// MethodBody builds the arrange, act and assert statements for m in that order
func MethodBody(sutField string, m models.Method) []models.Statement {
	body := ArrangeStatements(m)
	body = append(body, ActStatement(sutField, m))
	return append(body, AssertStatements(m)...)
}
