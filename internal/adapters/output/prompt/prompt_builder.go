package prompt

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"predictive-keyboard/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// promptData holds the values passed to the prompt templates.
type promptData struct {
	Text       string
	Words      []string
	Sentinel   string
	MaxResults int
}

var promptFuncs = template.FuncMap{
	"quote": func(s string) string {
		b, _ := json.Marshal(s)
		return string(b)
	},
	"jsonList": func(items []string) string {
		if items == nil {
			items = []string{}
		}
		b, _ := json.Marshal(items)
		return string(b)
	},
}

// TemplatePromptBuilder struct - Renders prompts from the embedded templates
type TemplatePromptBuilder struct {
	templates *template.Template
	config    domain.SanitizerConfig
}

// NewTemplatePromptBuilder func - Creates new prompt builder
// The sentinel and caps stated in the prompts come from the same config the sanitizer enforces.
func NewTemplatePromptBuilder(config domain.SanitizerConfig) (*TemplatePromptBuilder, error) {
	t, err := template.New("prompt").Funcs(promptFuncs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	return &TemplatePromptBuilder{
		templates: t,
		config:    domain.NewSanitizer(config).Config(),
	}, nil
}

// CharPrompt renders the character-mode prompt
func (b *TemplatePromptBuilder) CharPrompt(text string) (domain.Prompt, error) {
	return b.render("char", promptData{
		Text:       text,
		Sentinel:   b.config.CharSentinel,
		MaxResults: b.config.MaxChars,
	})
}

// WordPrompt renders the word-mode prompt
func (b *TemplatePromptBuilder) WordPrompt(text string, words []string) (domain.Prompt, error) {
	return b.render("word", promptData{
		Text:       text,
		Words:      words,
		Sentinel:   b.config.WordSentinel,
		MaxResults: b.config.MaxWords,
	})
}

func (b *TemplatePromptBuilder) render(mode string, data promptData) (domain.Prompt, error) {
	system, err := b.execute(mode+"_system.tmpl", data)
	if err != nil {
		return domain.Prompt{}, err
	}
	user, err := b.execute(mode+"_user.tmpl", data)
	if err != nil {
		return domain.Prompt{}, err
	}
	return domain.Prompt{System: system, User: user}, nil
}

func (b *TemplatePromptBuilder) execute(name string, data promptData) (string, error) {
	var buf strings.Builder
	if err := b.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return strings.TrimRight(buf.String(), " \t\n"), nil
}
