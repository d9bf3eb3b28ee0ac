package prompt

import (
	"strings"
	"testing"

	"predictive-keyboard/internal/domain"
)

func newBuilder(t *testing.T, config domain.SanitizerConfig) *TemplatePromptBuilder {
	t.Helper()
	b, err := NewTemplatePromptBuilder(config)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	return b
}

func TestCharPrompt(t *testing.T) {
	b := newBuilder(t, domain.SanitizerConfig{})

	p, err := b.CharPrompt("I need to go to the sto")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for _, want := range []string{"at most 5 symbols", "BACKSPACE", "SPACE", "answer exactly: NONE", `[["r", 0.8], ["p", 0.1]]`} {
		if !strings.Contains(p.System, want) {
			t.Errorf("expected system prompt to contain %q", want)
		}
	}
	if p.User != `Text typed so far: "I need to go to the sto"` {
		t.Errorf("unexpected user prompt: %q", p.User)
	}
}

func TestWordPrompt(t *testing.T) {
	b := newBuilder(t, domain.SanitizerConfig{WordSentinel: "UNCLEAR", MaxWords: 2})

	p, err := b.WordPrompt("For dessert, I am going to eat a", []string{"cookie", "pizza"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !strings.Contains(p.System, "at most 2 words") {
		t.Error("expected configured word cap in system prompt")
	}
	if !strings.Contains(p.System, "answer exactly: UNCLEAR") {
		t.Error("expected configured sentinel in system prompt")
	}
	if !strings.Contains(p.User, `Words: ["cookie","pizza"]`) {
		t.Errorf("expected JSON word list in user prompt, got: %q", p.User)
	}
}

// TestPromptQuotesUserText tests that quotes and newlines in the typed text cannot break the prompt layout
func TestPromptQuotesUserText(t *testing.T) {
	b := newBuilder(t, domain.SanitizerConfig{})

	p, err := b.CharPrompt("she said \"hi\"\nthen")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if p.User != `Text typed so far: "she said \"hi\"\nthen"` {
		t.Errorf("unexpected user prompt: %q", p.User)
	}

	msgs := p.Messages()
	if len(msgs) != 2 || msgs[0].Role != domain.ChatMessageRoleSystem || msgs[1].Role != domain.ChatMessageRoleUser {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}
