package generation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"github.com/phrazzld/spectrum-api/internal/domain"
)

//go:embed prompts/spectrum.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Idea  string
	Count int
}

// PromptBuilder renders the prompt sent to the model for a generation request.
// The template is configuration, not code: it can be swapped at startup without
// touching the adapter that sends it.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses templateText. An empty string selects the built-in
// template. The template sees .Idea and .Count.
func NewPromptBuilder(templateText string) (*PromptBuilder, error) {
	if templateText == "" {
		templateText = defaultPromptTemplate
	}

	tmpl, err := template.New("spectrum").Option("missingkey=error").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// LoadPromptBuilder reads the template at path. An empty path falls back to
// the built-in template.
func LoadPromptBuilder(path string) (*PromptBuilder, error) {
	if path == "" {
		return NewPromptBuilder("")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	return NewPromptBuilder(string(content))
}

// Build renders the prompt for req.
func (b *PromptBuilder) Build(req domain.GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{Idea: req.Idea, Count: req.Count}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
