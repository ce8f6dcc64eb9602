package vision

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	lastModel  string
	lastPrompt string
	text       string
	err        error
}

func (g *fakeGenerator) Generate(_ context.Context, _, prompt, model string) (string, error) {
	g.lastModel = model
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRouterGenerate(t *testing.T) {
	gen := &fakeGenerator{text: "a bicycle"}
	router := NewRouter(testLogger())
	router.Register(ProviderClaude, gen)

	res, err := router.Generate(context.Background(), Request{
		Image:    "/9j/AAAA",
		Prompt:   "What is this?",
		Provider: ProviderClaude,
	})
	require.NoError(t, err)
	assert.Equal(t, "a bicycle", res.Text)
	assert.Equal(t, ProviderClaude, res.Provider)
	assert.Equal(t, "claude-sonnet-4-5-20250929", res.Model)
	assert.Equal(t, "claude-sonnet-4-5-20250929", gen.lastModel)
}

func TestRouterResolvesForeignModel(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	router := NewRouter(testLogger())
	router.Register(ProviderOpenAI, gen)

	res, err := router.Generate(context.Background(), Request{
		Image:    "/9j/AAAA",
		Prompt:   "What is this?",
		Provider: ProviderOpenAI,
		Model:    "claude-opus-4-5-20251101",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-5.1", res.Model)
	assert.Equal(t, "gpt-5.1", gen.lastModel)
}

func TestRouterUnknownProvider(t *testing.T) {
	router := NewRouter(testLogger())

	_, err := router.Generate(context.Background(), Request{
		Image:    "/9j/AAAA",
		Prompt:   "What is this?",
		Provider: Provider("mistral"),
	})
	assert.Error(t, err)
}
