package models

import "strings"

// Visibility represents the declared accessibility of a member
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
	VisibilityProtected
	VisibilityInternal
)

// String returns the C# keyword for the visibility
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	case VisibilityInternal:
		return "internal"
	default:
		return "private"
	}
}

// ReturnKind classifies a method's declared return type
type ReturnKind int

const (
	ReturnVoid   ReturnKind = iota // void
	ReturnTask                     // Task or ValueTask without a type argument
	ReturnTaskOf                   // Task<T> or ValueTask<T>
	ReturnValue                    // any other type
)

// ReturnType describes a method's declared return type
type ReturnType struct {
	Kind ReturnKind
	Name string // declared type text, e.g. "Task<Uri>"
	Elem string // type argument for ReturnTaskOf, e.g. "Uri"
}

// SourceFile is the structural model of one parsed C# file
type SourceFile struct {
	Path      string
	Namespace string // empty when the file declares no namespace
	Usings    []UsingDirective
	Classes   []Class
}

// HasNamespace reports whether the file declares a namespace
func (f *SourceFile) HasNamespace() bool {
	return f.Namespace != ""
}

// UsingDirective represents a using directive at the top of a file
type UsingDirective struct {
	Name   string // qualified name, e.g. "System.Collections.Generic"
	Alias  string // alias for "using Alias = Name;"
	Static bool   // "using static Name;"
	Global bool   // "global using Name;"
}

// Key returns the deduplication key of the directive
func (u UsingDirective) Key() string {
	return u.Name
}

// String renders the directive as a C# statement
func (u UsingDirective) String() string {
	var b strings.Builder
	if u.Global {
		b.WriteString("global ")
	}
	b.WriteString("using ")
	if u.Static {
		b.WriteString("static ")
	}
	if u.Alias != "" {
		b.WriteString(u.Alias)
		b.WriteString(" = ")
	}
	b.WriteString(u.Name)
	b.WriteString(";")
	return b.String()
}

// Parameter represents a constructor or method parameter
type Parameter struct {
	Name string
	Type string
}

// Constructor represents a class constructor
type Constructor struct {
	Parameters []Parameter
	Visibility Visibility
}

// Method represents a method declared on a class
type Method struct {
	Name       string
	Parameters []Parameter
	Return     ReturnType
	Async      bool
	Static     bool
	Visibility Visibility
	Line       int
}

// IsTestable reports whether the method gets a generated test
func (m Method) IsTestable() bool {
	return m.Visibility == VisibilityPublic && !m.Static
}

// Class represents a class declaration
type Class struct {
	Name         string
	Constructors []Constructor
	Methods      []Method
	Line         int
}

// TestableMethods returns the public, non-static methods in declaration order
func (c Class) TestableMethods() []Method {
	methods := make([]Method, 0, len(c.Methods))
	for _, m := range c.Methods {
		if m.IsTestable() {
			methods = append(methods, m)
		}
	}
	return methods
}
