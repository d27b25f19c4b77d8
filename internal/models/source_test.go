package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsingDirective_String(t *testing.T) {
	tests := []struct {
		name     string
		using    UsingDirective
		expected string
	}{
		{"plain", UsingDirective{Name: "System"}, "using System;"},
		{"static", UsingDirective{Name: "System.Math", Static: true}, "using static System.Math;"},
		{"alias", UsingDirective{Name: "System.Text.Json", Alias: "Json"}, "using Json = System.Text.Json;"},
		{"global", UsingDirective{Name: "Xunit", Global: true}, "global using Xunit;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.using.String())
			assert.Equal(t, tt.using.Name, tt.using.Key())
		})
	}
}

func TestVisibility_String(t *testing.T) {
	assert.Equal(t, "private", VisibilityPrivate.String())
	assert.Equal(t, "public", VisibilityPublic.String())
	assert.Equal(t, "protected", VisibilityProtected.String())
	assert.Equal(t, "internal", VisibilityInternal.String())
}

func TestClass_TestableMethods(t *testing.T) {
	class := Class{
		Name: "Cart",
		Methods: []Method{
			{Name: "Add", Visibility: VisibilityPublic},
			{Name: "Reset", Visibility: VisibilityPublic, Static: true},
			{Name: "recalc", Visibility: VisibilityPrivate},
			{Name: "Load", Visibility: VisibilityInternal},
			{Name: "Total", Visibility: VisibilityPublic, Async: true},
		},
	}

	testable := class.TestableMethods()
	assert.Len(t, testable, 2)
	assert.Equal(t, "Add", testable[0].Name)
	assert.Equal(t, "Total", testable[1].Name)
	assert.Empty(t, Class{}.TestableMethods())
}

func TestSourceFile_HasNamespace(t *testing.T) {
	assert.False(t, (&SourceFile{}).HasNamespace())
	assert.True(t, (&SourceFile{Namespace: "Shop"}).HasNamespace())
}

func TestTypeRefs(t *testing.T) {
	assert.Equal(t, TypeRef{Name: "Cart"}, PlainType("Cart"))
	assert.Equal(t, TypeRef{Name: "IClock", Mock: true}, MockOf("IClock"))
}
