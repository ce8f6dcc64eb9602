package vision

import "context"

// Provider identifies one of the selectable upstream vision-chat services.
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// Request is one vision-chat call: an inline base64 image, a text prompt,
// and the provider/model selection. Model may be empty or foreign to the
// provider; the router resolves it against the catalog before dispatch.
type Request struct {
	Image    string
	Prompt   string
	Provider Provider
	Model    string
}

// Result carries the generated text along with the provider and the model
// that actually served the call.
type Result struct {
	Text     string
	Provider Provider
	Model    string
}

// Generator is a single provider binding: one model call against one
// upstream API. The image is base64-encoded and the model is already
// resolved against the provider's catalog.
type Generator interface {
	Generate(ctx context.Context, image, prompt, model string) (string, error)
}
