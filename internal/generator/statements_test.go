package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/scaffold/internal/models"
)

func method(name string, ret models.ReturnType, async bool, params ...models.Parameter) models.Method {
	return models.Method{
		Name:       name,
		Parameters: params,
		Return:     ret,
		Async:      async,
		Visibility: models.VisibilityPublic,
	}
}

var (
	voidReturn = models.ReturnType{Kind: models.ReturnVoid, Name: "void"}
	taskReturn = models.ReturnType{Kind: models.ReturnTask, Name: "Task"}
)

func TestHasReturn(t *testing.T) {
	tests := []struct {
		name     string
		method   models.Method
		expected bool
	}{
		{"void", method("M", voidReturn, false), false},
		{"async void", method("M", voidReturn, true), false},
		{"async task", method("M", taskReturn, true), false},
		{"sync task", method("M", taskReturn, false), true},
		{"async task of", method("M", models.ReturnType{Kind: models.ReturnTaskOf, Name: "Task<Uri>", Elem: "Uri"}, true), true},
		{"value", method("M", models.ReturnType{Kind: models.ReturnValue, Name: "Guid"}, false), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasReturn(tt.method))
		})
	}
}

func TestUnwrappedReturn(t *testing.T) {
	taskOf := models.ReturnType{Kind: models.ReturnTaskOf, Name: "Task<Uri>", Elem: "Uri"}

	assert.Equal(t, "Uri", UnwrappedReturn(method("M", taskOf, true)))
	assert.Equal(t, "Task<Uri>", UnwrappedReturn(method("M", taskOf, false)))
	assert.Equal(t, "Task", UnwrappedReturn(method("M", taskReturn, false)))
}

func TestArrangeStatements(t *testing.T) {
	m := method("M", models.ReturnType{Kind: models.ReturnValue, Name: "Guid"}, false,
		models.Parameter{Name: "id", Type: "Guid"},
		models.Parameter{Name: "obj", Type: "object"},
	)

	assert.Equal(t, []models.Statement{
		models.LocalDecl{Type: "Guid", Name: "id", Init: models.Default{Type: "Guid"}},
		models.LocalDecl{Type: "object", Name: "obj", Init: models.Default{Type: "object"}},
	}, ArrangeStatements(m))
}

func TestActStatement_AsyncWithReturn(t *testing.T) {
	m := method("M", models.ReturnType{Kind: models.ReturnTaskOf, Name: "Task<Uri>", Elem: "Uri"}, true,
		models.Parameter{Name: "uri", Type: "Uri"},
	)

	assert.Equal(t, models.LocalDecl{
		Type: "Uri",
		Name: "actual",
		Init: models.Await{Expr: models.Call{
			Target: models.Ident{Name: "_sut"},
			Method: "M",
			Args:   []models.Expr{models.Ident{Name: "uri"}},
		}},
	}, ActStatement("_sut", m))
}

func TestActStatement_NoReturn(t *testing.T) {
	m := method("Run", voidReturn, false, models.Parameter{Name: "a", Type: "int"})

	assert.Equal(t, models.ExprStatement{Expr: models.Call{
		Target: models.Ident{Name: "_sut"},
		Method: "Run",
		Args:   []models.Expr{models.Ident{Name: "a"}},
	}}, ActStatement("_sut", m))
}

func TestActStatement_AsyncTaskIsAwaitedWithoutResult(t *testing.T) {
	stmt := ActStatement("_sut", method("Flush", taskReturn, true))

	exprStmt, ok := stmt.(models.ExprStatement)
	require.True(t, ok)
	assert.IsType(t, models.Await{}, exprStmt.Expr)
}

func TestAssertStatements_NoReturn(t *testing.T) {
	stmts := AssertStatements(method("M", voidReturn, false, models.Parameter{Name: "a", Type: "int"}))

	require.Len(t, stmts, 1)
	assert.Equal(t, models.ExprStatement{Expr: models.Call{
		Target: models.Ident{Name: "Assert"},
		Method: "True",
		Args:   []models.Expr{models.BoolLiteral{Value: false}, models.StringLiteral{Value: "error"}},
	}}, stmts[0])
}

func TestAssertStatements_WithReturn(t *testing.T) {
	m := method("M", models.ReturnType{Kind: models.ReturnTaskOf, Name: "Task<Uri>", Elem: "Uri"}, true)

	assert.Equal(t, []models.Statement{
		models.LocalDecl{Type: "Uri", Name: "expected", Init: models.Default{Type: "Uri"}},
		models.ExprStatement{Expr: models.Call{
			Target: models.Ident{Name: "Assert"},
			Method: "Equal",
			Args:   []models.Expr{models.Ident{Name: "expected"}, models.Ident{Name: "actual"}},
		}},
	}, AssertStatements(m))
}

func TestMethodBody_Order(t *testing.T) {
	m := method("M", models.ReturnType{Kind: models.ReturnValue, Name: "int"}, false,
		models.Parameter{Name: "a", Type: "int"},
	)

	body := MethodBody("_sut", m)

	require.Len(t, body, 4)
	assert.Equal(t, "a", body[0].(models.LocalDecl).Name)
	assert.Equal(t, "actual", body[1].(models.LocalDecl).Name)
	assert.Equal(t, "expected", body[2].(models.LocalDecl).Name)
	assert.IsType(t, models.ExprStatement{}, body[3])
}
