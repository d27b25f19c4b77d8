package parser

// tree-sitter-c-sharp node types
const (
	nodeUsingDirective         = "using_directive"
	nodeNamespaceDeclaration   = "namespace_declaration"
	nodeFileScopedNamespace    = "file_scoped_namespace_declaration"
	nodeClassDeclaration       = "class_declaration"
	nodeConstructorDeclaration = "constructor_declaration"
	nodeMethodDeclaration      = "method_declaration"
	nodeParameterList          = "parameter_list"
	nodeParameter              = "parameter"
	nodeModifier               = "modifier"
	nodeError                  = "ERROR"
)

// C# modifier keywords
const (
	modifierPublic    = "public"
	modifierPrivate   = "private"
	modifierProtected = "protected"
	modifierInternal  = "internal"
	modifierStatic    = "static"
	modifierAsync     = "async"
)
