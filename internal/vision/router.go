package vision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mbaird/lensgate/internal/metrics"
)

// Router dispatches one logical vision call across the registered provider
// bindings, resolving the model against the catalog first.
type Router struct {
	generators map[Provider]Generator
	logger     *slog.Logger
}

func NewRouter(logger *slog.Logger) *Router {
	return &Router{
		generators: make(map[Provider]Generator),
		logger:     logger,
	}
}

func (r *Router) Register(p Provider, g Generator) {
	r.generators[p] = g
}

func (r *Router) Generate(ctx context.Context, req Request) (*Result, error) {
	g, ok := r.generators[req.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", req.Provider)
	}
	model := ResolveModel(req.Provider, req.Model)

	r.logger.Debug("vision call started", "provider", req.Provider, "model", model)
	start := time.Now()
	text, err := g.Generate(ctx, req.Image, req.Prompt, model)
	metrics.ObserveUpstream(string(req.Provider), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return &Result{Text: text, Provider: req.Provider, Model: model}, nil
}
