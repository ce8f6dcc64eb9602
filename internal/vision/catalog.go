package vision

import "slices"

// ModelSet is one provider's permitted models and its default.
type ModelSet struct {
	Default string
	Models  []string
}

// Catalog is the static provider → model mapping. It is fixed at startup
// and never mutated per-request.
var Catalog = map[Provider]ModelSet{
	ProviderClaude: {
		Default: "claude-sonnet-4-5-20250929",
		Models:  []string{"claude-sonnet-4-5-20250929", "claude-opus-4-5-20251101"},
	},
	ProviderOpenAI: {
		Default: "gpt-5.1",
		Models:  []string{"gpt-5-mini", "gpt-5.1"},
	},
	ProviderGemini: {
		Default: "gemini-3-pro-preview",
		Models:  []string{"gemini-2.5-flash", "gemini-3-pro-preview"},
	},
}

// Known reports whether p is one of the selectable providers.
func Known(p Provider) bool {
	_, ok := Catalog[p]
	return ok
}

// ResolveModel returns requested when it belongs to p's model set, and p's
// default otherwise. A model string belongs to exactly one provider, so a
// foreign model never passes through to the wrong API.
func ResolveModel(p Provider, requested string) string {
	set, ok := Catalog[p]
	if !ok {
		return ""
	}
	if requested != "" && slices.Contains(set.Models, requested) {
		return requested
	}
	return set.Default
}
