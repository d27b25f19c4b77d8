package models

// TypeRef is the declared type of a generated field or local
type TypeRef struct {
	Name string
	Mock bool // rendered as Mock<Name>
}

// PlainType returns a reference to the type itself
func PlainType(name string) TypeRef {
	return TypeRef{Name: name}
}

// MockOf returns a reference to the mock wrapper over the type
func MockOf(name string) TypeRef {
	return TypeRef{Name: name, Mock: true}
}

// Field is a private field of the generated test class
type Field struct {
	Name string
	Type TypeRef
}

// Expr is an expression inside a generated statement
type Expr interface {
	isExpr()
}

// Ident references a local, field or type by name
type Ident struct {
	Name string
}

// MemberAccess is Target.Member
type MemberAccess struct {
	Target Expr
	Member string
}

// Call invokes Method on Target with the given arguments
type Call struct {
	Target Expr
	Method string
	Args   []Expr
}

// New constructs Type with the given arguments
type New struct {
	Type TypeRef
	Args []Expr
}

// Default is the placeholder value default(Type)
type Default struct {
	Type string
}

// Await suspends on the wrapped expression
type Await struct {
	Expr Expr
}

// BoolLiteral is true or false
type BoolLiteral struct {
	Value bool
}

// StringLiteral is a quoted string
type StringLiteral struct {
	Value string
}

func (Ident) isExpr()         {}
func (MemberAccess) isExpr()  {}
func (Call) isExpr()          {}
func (New) isExpr()           {}
func (Default) isExpr()       {}
func (Await) isExpr()         {}
func (BoolLiteral) isExpr()   {}
func (StringLiteral) isExpr() {}

// Statement is one line of a generated body
type Statement interface {
	isStatement()
}

// LocalDecl declares and initializes a local variable
type LocalDecl struct {
	Type string
	Name string
	Init Expr
}

// Assign stores Value into Target
type Assign struct {
	Target string
	Value  Expr
}

// ExprStatement evaluates an expression and discards the result
type ExprStatement struct {
	Expr Expr
}

func (LocalDecl) isStatement()     {}
func (Assign) isStatement()        {}
func (ExprStatement) isStatement() {}

// GeneratedConstructor is the parameterless constructor of a test class
type GeneratedConstructor struct {
	Body []Statement
}

// TestMethod is one generated test
type TestMethod struct {
	Name      string
	Async     bool
	Attribute string
	Body      []Statement
}

// Unit is the synthesized test class for one source class
type Unit struct {
	Namespace   string
	ClassName   string
	Usings      []UsingDirective
	Fields      []Field
	Constructor GeneratedConstructor
	Methods     []TestMethod

	// SourceClass and SourcePath identify where the unit came from
	SourceClass string
	SourcePath  string
}
