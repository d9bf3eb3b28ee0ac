package output

import "predictive-keyboard/internal/domain"

// PromptBuilder interface - Output port
// Formats context text into model instructions. The text itself is opaque to the application.
type PromptBuilder interface {
	CharPrompt(text string) (domain.Prompt, error)
	WordPrompt(text string, words []string) (domain.Prompt, error)
}
