package templates

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/models"
)

const cartTests = `using System;
using Xunit;

namespace Shop.Tests
{
    public class CartTests
    {
        private Mock<IPricing> _pricing;
        private Cart _cart;

        public CartTests()
        {
            _pricing = new Mock<IPricing>();
            _cart = new Cart(_pricing.Object);
        }

        [Fact]
        public void Total()
        {
            int count = default(int);
            decimal actual = _cart.Total(count);
            decimal expected = default(decimal);
            Assert.Equal(expected, actual);
        }
    }
}
`

func cartUnit() *models.Unit {
	return &models.Unit{
		Namespace: "Shop.Tests",
		ClassName: "CartTests",
		Usings:    []models.UsingDirective{{Name: "System"}, {Name: "Xunit"}},
		Fields: []models.Field{
			{Name: "_pricing", Type: models.MockOf("IPricing")},
			{Name: "_cart", Type: models.PlainType("Cart")},
		},
		Constructor: models.GeneratedConstructor{Body: []models.Statement{
			models.Assign{Target: "_pricing", Value: models.New{Type: models.MockOf("IPricing")}},
			models.Assign{Target: "_cart", Value: models.New{
				Type: models.PlainType("Cart"),
				Args: []models.Expr{models.MemberAccess{Target: models.Ident{Name: "_pricing"}, Member: "Object"}},
			}},
		}},
		Methods: []models.TestMethod{{
			Name:      "Total",
			Attribute: "Fact",
			Body: []models.Statement{
				models.LocalDecl{Type: "int", Name: "count", Init: models.Default{Type: "int"}},
				models.LocalDecl{Type: "decimal", Name: "actual", Init: models.Call{
					Target: models.Ident{Name: "_cart"},
					Method: "Total",
					Args:   []models.Expr{models.Ident{Name: "count"}},
				}},
				models.LocalDecl{Type: "decimal", Name: "expected", Init: models.Default{Type: "decimal"}},
				models.ExprStatement{Expr: models.Call{
					Target: models.Ident{Name: "Assert"},
					Method: "Equal",
					Args:   []models.Expr{models.Ident{Name: "expected"}, models.Ident{Name: "actual"}},
				}},
			},
		}},
	}
}

func TestRender_Unit(t *testing.T) {
	r := MustNewRenderer()

	text, err := r.Render(cartUnit())
	require.NoError(t, err)
	assert.Equal(t, cartTests, text)
}

func TestRender_Deterministic(t *testing.T) {
	r := MustNewRenderer()

	first, err := r.Render(cartUnit())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = r.Render(cartUnit())
		}(i)
	}
	wg.Wait()

	for _, text := range results {
		assert.Equal(t, first, text)
	}
}

func TestRender_AsyncMethod(t *testing.T) {
	unit := &models.Unit{
		Namespace: "Tests",
		ClassName: "ClientTests",
		Methods: []models.TestMethod{{
			Name:      "FlushAsync",
			Async:     true,
			Attribute: "Fact",
			Body: []models.Statement{
				models.ExprStatement{Expr: models.Await{Expr: models.Call{
					Target: models.Ident{Name: "_client"},
					Method: "FlushAsync",
				}}},
				models.ExprStatement{Expr: models.Call{
					Target: models.Ident{Name: "Assert"},
					Method: "True",
					Args:   []models.Expr{models.BoolLiteral{Value: false}, models.StringLiteral{Value: "error"}},
				}},
			},
		}},
	}

	text, err := MustNewRenderer().Render(unit)
	require.NoError(t, err)
	assert.Contains(t, text, "        [Fact]\n        public async Task FlushAsync()\n")
	assert.Contains(t, text, "            await _client.FlushAsync();\n")
	assert.Contains(t, text, `            Assert.True(false, "error");`)
}

func TestRender_EmptyUnit(t *testing.T) {
	text, err := MustNewRenderer().Render(&models.Unit{Namespace: "Tests", ClassName: "EmptyTests"})
	require.NoError(t, err)

	expected := `
namespace Tests
{
    public class EmptyTests
    {

        public EmptyTests()
        {
        }
    }
}
`
	assert.Equal(t, expected, text)
}

func TestRender_Errors(t *testing.T) {
	r := MustNewRenderer()

	_, err := r.Render(nil)
	assert.Equal(t, errors.RenderErrorCode, errors.CodeOf(err))

	_, err = r.Render(&models.Unit{Namespace: "Tests"})
	assert.Equal(t, errors.RenderErrorCode, errors.CodeOf(err))

	unit := cartUnit()
	unit.Methods[0].Body = append(unit.Methods[0].Body, models.ExprStatement{})
	_, err = r.Render(unit)
	require.Error(t, err)

	var renderErr *errors.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, "CartTests", renderErr.ClassName)
}

func TestRenderExpr(t *testing.T) {
	tests := []struct {
		name     string
		expr     models.Expr
		expected string
	}{
		{"ident", models.Ident{Name: "x"}, "x"},
		{"member", models.MemberAccess{Target: models.Ident{Name: "_m"}, Member: "Object"}, "_m.Object"},
		{"call without args", models.Call{Target: models.Ident{Name: "_s"}, Method: "Run"}, "_s.Run()"},
		{"new mock", models.New{Type: models.MockOf("IClock")}, "new Mock<IClock>()"},
		{"new with args", models.New{Type: models.PlainType("A"), Args: []models.Expr{models.Ident{Name: "b"}, models.Ident{Name: "c"}}}, "new A(b, c)"},
		{"default", models.Default{Type: "List<int>"}, "default(List<int>)"},
		{"await", models.Await{Expr: models.Ident{Name: "t"}}, "await t"},
		{"bool", models.BoolLiteral{Value: true}, "true"},
		{"string", models.StringLiteral{Value: `say "hi"`}, `"say \"hi\""`},
		{"string escapes", models.StringLiteral{Value: "a\\b\n\t\x00"}, `"a\\b\n\t\0"`},
		{"string control char", models.StringLiteral{Value: "bell\a\x01"}, `"bell\u0007\u0001"`},
		{"string non-ascii", models.StringLiteral{Value: "café ✓"}, `"café ✓"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderExpr(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderExpr_Invalid(t *testing.T) {
	_, err := RenderExpr(nil)
	assert.Error(t, err)

	_, err = RenderExpr(models.Ident{})
	assert.Error(t, err)

	_, err = RenderExpr(models.Call{Target: models.Ident{Name: "a"}, Method: "B", Args: []models.Expr{nil}})
	assert.Error(t, err)

	_, err = RenderStatement(nil)
	assert.Error(t, err)
}

func TestTemplateRegistry(t *testing.T) {
	registry := NewTemplateRegistry()

	names := registry.Names()
	sort.Strings(names)
	assert.Equal(t, []string{TemplateTestMethod, TemplateUnit}, names)

	_, ok := registry.Get("missing")
	assert.False(t, ok)
	assert.Panics(t, func() { registry.MustGet("missing") })
	assert.NotEmpty(t, registry.MustGet(TemplateUnit))
}
