package generator

import "github.com/toyz/scaffold/internal/models"

const (
	testsSuffix   = "Tests"
	testAttribute = "Fact"
)

// TestNamespace returns the namespace of the generated unit for a file
// declared in namespace, or "Tests" when the file has none
func TestNamespace(namespace string) string {
	if namespace == "" {
		return testsSuffix
	}
	return namespace + "." + testsSuffix
}

// TestClassName returns the name of the generated test class
func TestClassName(className string) string {
	return className + testsSuffix
}

// Synthesize builds the test unit for one class of file. Each call gets its
// own name scope, so concurrent calls share no state.
func Synthesize(file *models.SourceFile, class models.Class) *models.Unit {
	injection := BuildInjection(class)
	names := NewNameResolver()

	testable := class.TestableMethods()
	methods := make([]models.TestMethod, 0, len(testable))
	for _, m := range testable {
		methods = append(methods, models.TestMethod{
			Name:      names.Resolve(m.Name),
			Async:     m.Async,
			Attribute: testAttribute,
			Body:      MethodBody(injection.SUTField, m),
		})
	}

	return &models.Unit{
		Namespace:   TestNamespace(file.Namespace),
		ClassName:   TestClassName(class.Name),
		Usings:      MergeUsings(file.Namespace, file.Usings),
		Fields:      injection.Fields,
		Constructor: injection.Constructor,
		Methods:     methods,
		SourceClass: class.Name,
		SourcePath:  file.Path,
	}
}
