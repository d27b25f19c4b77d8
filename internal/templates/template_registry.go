package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerUnitTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Names returns the registered template names
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	return names
}

// registerUnitTemplates registers the test class templates. Indentation is
// four spaces and members are separated by one blank line.
func (tr *TemplateRegistry) registerUnitTemplates() {
	tr.templates[TemplateUnit] = `{{range .Usings}}{{.String}}
{{end}}
namespace {{.Namespace}}
{
    public class {{.ClassName}}
    {
{{range .Fields}}        private {{typeRef .Type}} {{.Name}};
{{end}}
        public {{.ClassName}}()
        {
{{range .Constructor.Body}}            {{stmt .}}
{{end}}        }
{{range .Methods}}{{template "test-method" .}}{{end}}    }
}
`

	tr.templates[TemplateTestMethod] = `
        [{{.Attribute}}]
        public {{if .Async}}async Task{{else}}void{{end}} {{.Name}}()
        {
{{range .Body}}            {{stmt .}}
{{end}}        }
`
}
