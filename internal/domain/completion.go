package domain

// ChatMessageRole represents the author of a chat message
type ChatMessageRole string

const (
	// ChatMessageRoleSystem - System instruction
	ChatMessageRoleSystem ChatMessageRole = "system"
	// ChatMessageRoleUser - User message
	ChatMessageRoleUser ChatMessageRole = "user"
	// ChatMessageRoleAssistant - Model answer
	ChatMessageRoleAssistant ChatMessageRole = "assistant"
)

// ChatMessage struct - A single message sent to the remote model
type ChatMessage struct {
	Role    ChatMessageRole
	Content string
}

// Prompt struct - Output of the prompt builder
type Prompt struct {
	System string
	User   string
}

// Messages converts the prompt into chat messages, skipping an empty system part
func (p Prompt) Messages() []ChatMessage {
	messages := make([]ChatMessage, 0, 2)
	if p.System != "" {
		messages = append(messages, ChatMessage{Role: ChatMessageRoleSystem, Content: p.System})
	}
	return append(messages, ChatMessage{Role: ChatMessageRoleUser, Content: p.User})
}

type (
	// ChatCompletionRequest struct - Domain request to a completion client
	ChatCompletionRequest struct {
		Messages    []ChatMessage
		Model       *string
		MaxTokens   int
		Temperature *float64
	}

	// ChatCompletionResponse struct - Raw text of the first choice plus usage
	ChatCompletionResponse struct {
		Content          string
		Model            string
		PromptTokens     int
		CompletionTokens int
		TotalTokens      int
	}

	// ModelInfo struct - Model advertised by a provider
	ModelInfo struct {
		ID      string
		Object  string
		OwnedBy string
	}
)
