package parser

import (
	"context"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/models"
	"github.com/toyz/scaffold/internal/typename"
)

// CSharpParser implements SourceParser and ClassNameExtractor with tree-sitter.
// It is safe for concurrent use: every call creates its own tree-sitter parser.
type CSharpParser struct{}

// NewCSharpParser creates a new C# parser
func NewCSharpParser() *CSharpParser {
	return &CSharpParser{}
}

// Parse extracts namespace, using directives and class declarations from src.
// Text with syntax errors fails with an *errors.ParseError.
func (p *CSharpParser) Parse(ctx context.Context, path string, src []byte) (*models.SourceFile, error) {
	tree, err := p.parseTree(ctx, path, src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	file := &models.SourceFile{
		Path:      path,
		Namespace: findNamespace(root, src),
		Usings:    extractUsings(root, src),
		Classes:   make([]models.Class, 0),
	}

	walk(root, func(n *sitter.Node) bool {
		if n.Type() == nodeClassDeclaration {
			file.Classes = append(file.Classes, extractClass(n, src))
		}
		return true
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return file, nil
}

// FirstClassName returns the identifier of the first class declaration in src
func (p *CSharpParser) FirstClassName(ctx context.Context, src []byte) (string, error) {
	tree, err := p.parseTree(ctx, "", src)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	var name string
	walk(tree.RootNode(), func(n *sitter.Node) bool {
		if name != "" {
			return false
		}
		if n.Type() == nodeClassDeclaration {
			name = fieldContent(n, "name", src)
			return false
		}
		return true
	})

	if name == "" {
		return "", errors.NewParseError("", 0, 0, "no class declaration found")
	}
	return name, nil
}

func (p *CSharpParser) parseTree(ctx context.Context, path string, src []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !utf8.Valid(src) {
		return nil, errors.NewParseError(path, 0, 0, "content is not valid UTF-8")
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.WrapParseError(path, err)
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, errors.NewParseError(path, 0, 0, "tree-sitter returned no root node")
	}
	if root.HasError() {
		line, col := firstErrorPosition(root)
		tree.Close()
		return nil, errors.NewParseError(path, line, col, "source contains syntax errors")
	}
	return tree, nil
}

// walk visits n and its named descendants depth-first in source order.
// Returning false from visit skips the node's children.
func walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), visit)
	}
}

func firstErrorPosition(root *sitter.Node) (int, int) {
	line, col := 0, 0
	found := false
	walkAll(root, func(n *sitter.Node) bool {
		if found {
			return false
		}
		if n.IsMissing() || n.Type() == nodeError {
			pt := n.StartPoint()
			line, col = int(pt.Row)+1, int(pt.Column)+1
			found = true
			return false
		}
		return n.HasError()
	})
	return line, col
}

// walkAll is walk over every child, including anonymous tokens
func walkAll(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		walkAll(n.Child(i), visit)
	}
}

func fieldContent(n *sitter.Node, field string, src []byte) string {
	child := n.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Content(src))
}

func findNamespace(root *sitter.Node, src []byte) string {
	var ns string
	walk(root, func(n *sitter.Node) bool {
		if ns != "" {
			return false
		}
		switch n.Type() {
		case nodeNamespaceDeclaration, nodeFileScopedNamespace:
			ns = fieldContent(n, "name", src)
			return false
		case nodeClassDeclaration:
			return false
		}
		return true
	})
	return ns
}

// extractUsings collects the top-level using directives of the file
func extractUsings(root *sitter.Node, src []byte) []models.UsingDirective {
	usings := make([]models.UsingDirective, 0)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != nodeUsingDirective {
			continue
		}
		if u, ok := parseUsing(child.Content(src)); ok {
			usings = append(usings, u)
		}
	}
	return usings
}

// parseUsing reads "global using static Alias = Some.Name;" style text
func parseUsing(text string) (models.UsingDirective, bool) {
	var u models.UsingDirective

	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ";"))
	if rest, ok := cutKeyword(text, "global"); ok {
		u.Global = true
		text = rest
	}
	rest, ok := cutKeyword(text, "using")
	if !ok {
		return u, false
	}
	text = rest
	if rest, ok := cutKeyword(text, "static"); ok {
		u.Static = true
		text = rest
	}
	if alias, name, found := strings.Cut(text, "="); found {
		u.Alias = strings.TrimSpace(alias)
		text = name
	}

	u.Name = typename.Normalize(text)
	return u, u.Name != ""
}

func cutKeyword(text, keyword string) (string, bool) {
	if !strings.HasPrefix(text, keyword) {
		return text, false
	}
	rest := text[len(keyword):]
	if rest == "" || !isSpace(rest[0]) {
		return text, false
	}
	return strings.TrimSpace(rest), true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func extractClass(n *sitter.Node, src []byte) models.Class {
	class := models.Class{
		Name:         fieldContent(n, "name", src),
		Constructors: make([]models.Constructor, 0),
		Methods:      make([]models.Method, 0),
		Line:         int(n.StartPoint().Row) + 1,
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		return class
	}

	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case nodeConstructorDeclaration:
			mods := collectModifiers(member, src)
			class.Constructors = append(class.Constructors, models.Constructor{
				Parameters: extractParameters(member, src),
				Visibility: mods.visibility(),
			})
		case nodeMethodDeclaration:
			class.Methods = append(class.Methods, extractMethod(member, src))
		}
	}

	return class
}

func extractMethod(n *sitter.Node, src []byte) models.Method {
	mods := collectModifiers(n, src)
	return models.Method{
		Name:       fieldContent(n, "name", src),
		Parameters: extractParameters(n, src),
		Return:     typename.ClassifyReturn(returnTypeText(n, src)),
		Async:      mods.has(modifierAsync),
		Static:     mods.has(modifierStatic),
		Visibility: mods.visibility(),
		Line:       int(n.StartPoint().Row) + 1,
	}
}

// returnTypeText reads the declared return type. Older grammar versions name
// the field "type", newer ones "returns".
func returnTypeText(n *sitter.Node, src []byte) string {
	if text := fieldContent(n, "returns", src); text != "" {
		return text
	}
	return fieldContent(n, "type", src)
}

func extractParameters(n *sitter.Node, src []byte) []models.Parameter {
	params := make([]models.Parameter, 0)

	list := n.ChildByFieldName("parameters")
	if list == nil {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if child := n.NamedChild(i); child.Type() == nodeParameterList {
				list = child
				break
			}
		}
	}
	if list == nil {
		return params
	}

	// "params T[] name" is not wrapped in a parameter node: its type and
	// name fields sit directly on the list
	pendingType := ""
	for i := 0; i < int(list.ChildCount()); i++ {
		child := list.Child(i)
		if child.Type() == nodeParameter {
			params = append(params, models.Parameter{
				Name: fieldContent(child, "name", src),
				Type: typename.Normalize(fieldContent(child, "type", src)),
			})
			continue
		}

		switch list.FieldNameForChild(i) {
		case "type":
			pendingType = typename.Normalize(child.Content(src))
		case "name":
			if pendingType != "" {
				params = append(params, models.Parameter{
					Name: strings.TrimSpace(child.Content(src)),
					Type: pendingType,
				})
				pendingType = ""
			}
		}
	}
	return params
}

type modifiers map[string]bool

func collectModifiers(n *sitter.Node, src []byte) modifiers {
	mods := make(modifiers)
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case nodeModifier:
			mods[strings.TrimSpace(child.Content(src))] = true
		case modifierPublic, modifierPrivate, modifierProtected, modifierInternal, modifierStatic, modifierAsync:
			mods[child.Type()] = true
		}
	}
	return mods
}

func (m modifiers) has(keyword string) bool {
	return m[keyword]
}

func (m modifiers) visibility() models.Visibility {
	switch {
	case m.has(modifierPublic):
		return models.VisibilityPublic
	case m.has(modifierProtected):
		return models.VisibilityProtected
	case m.has(modifierInternal):
		return models.VisibilityInternal
	default:
		return models.VisibilityPrivate
	}
}
