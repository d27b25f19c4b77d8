package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/scaffold/internal/models"
)

func TestIsMockableInterface(t *testing.T) {
	tests := []struct {
		typeName string
		expected bool
	}{
		{"IEnumerable", true},
		{"ICollection<int>", true},
		{"IRepository", true},
		{"Int32", false},
		{"Item", false},
		{"I", false},
		{"int", false},
		{"Guid", false},
		{"System.IDisposable", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMockableInterface(tt.typeName))
		})
	}
}

func TestSystemUnderTestField(t *testing.T) {
	assert.Equal(t, "_orderService", SystemUnderTestField("OrderService"))
	assert.Equal(t, "_c", SystemUnderTestField("C"))
	assert.Equal(t, "_already", SystemUnderTestField("already"))
}

func TestSelectConstructor(t *testing.T) {
	_, ok := SelectConstructor(nil)
	assert.False(t, ok)

	first := models.Constructor{Parameters: []models.Parameter{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}}
	tie := models.Constructor{Parameters: []models.Parameter{{Name: "x", Type: "string"}, {Name: "y", Type: "string"}}}
	small := models.Constructor{Parameters: []models.Parameter{{Name: "a", Type: "int"}}}

	got, ok := SelectConstructor([]models.Constructor{small, first, tie})
	require.True(t, ok)
	assert.Equal(t, first, got)
}

func TestBuildInjection_Mocks(t *testing.T) {
	class := models.Class{
		Name: "C",
		Constructors: []models.Constructor{{
			Parameters: []models.Parameter{
				{Name: "p1", Type: "IEnumerable"},
				{Name: "p2", Type: "ICollection"},
			},
		}},
	}

	inj := BuildInjection(class)

	assert.Equal(t, []models.Field{
		{Name: "_p1", Type: models.MockOf("IEnumerable")},
		{Name: "_p2", Type: models.MockOf("ICollection")},
		{Name: "_c", Type: models.PlainType("C")},
	}, inj.Fields)
	assert.Equal(t, "_c", inj.SUTField)

	assert.Equal(t, []models.Statement{
		models.Assign{Target: "_p1", Value: models.New{Type: models.MockOf("IEnumerable")}},
		models.Assign{Target: "_p2", Value: models.New{Type: models.MockOf("ICollection")}},
		models.Assign{Target: "_c", Value: models.New{
			Type: models.PlainType("C"),
			Args: []models.Expr{
				models.MemberAccess{Target: models.Ident{Name: "_p1"}, Member: "Object"},
				models.MemberAccess{Target: models.Ident{Name: "_p2"}, Member: "Object"},
			},
		}},
	}, inj.Constructor.Body)
}

func TestBuildInjection_ConcreteDependency(t *testing.T) {
	class := models.Class{
		Name: "Billing",
		Constructors: []models.Constructor{{
			Parameters: []models.Parameter{{Name: "clock", Type: "SystemClock"}},
		}},
	}

	inj := BuildInjection(class)

	require.Len(t, inj.Fields, 2)
	assert.Equal(t, models.PlainType("SystemClock"), inj.Fields[0].Type)
	assert.Equal(t, models.Assign{Target: "_clock", Value: models.New{Type: models.PlainType("SystemClock")}}, inj.Constructor.Body[0])

	sut := inj.Constructor.Body[1].(models.Assign)
	assert.Equal(t, []models.Expr{models.Ident{Name: "_clock"}}, sut.Value.(models.New).Args)
}

func TestBuildInjection_NoConstructor(t *testing.T) {
	inj := BuildInjection(models.Class{Name: "Plain"})

	assert.Equal(t, []models.Field{{Name: "_plain", Type: models.PlainType("Plain")}}, inj.Fields)
	require.Len(t, inj.Constructor.Body, 1)
	assert.Equal(t, models.Assign{
		Target: "_plain",
		Value:  models.New{Type: models.PlainType("Plain"), Args: []models.Expr{}},
	}, inj.Constructor.Body[0])
}
