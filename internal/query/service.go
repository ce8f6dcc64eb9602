package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mbaird/lensgate/internal/search"
	"github.com/mbaird/lensgate/internal/vision"
)

// DefaultResultsPerQuery is used when a request omits searchResultsPerQuery.
const DefaultResultsPerQuery = 5

const (
	minResultsPerQuery = 1
	maxResultsPerQuery = 10
)

// Request is one vision query as received from a client.
type Request struct {
	Image           string
	Prompt          string
	Provider        vision.Provider
	Model           string
	SearchEnabled   bool
	ResultsPerQuery int
}

// Result is the answer returned to the client. SearchQueries is nil unless
// extraction produced at least one query; SearchPerformed is true only when
// a non-empty context block was folded into the prompt.
type Result struct {
	Response        string
	Provider        vision.Provider
	Model           string
	SearchQueries   []string
	SearchPerformed bool
}

// ValidationError reports a malformed client request. Handlers map it to a
// 400 instead of a 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// visionRouter is the slice of vision.Router the service needs.
type visionRouter interface {
	Generate(ctx context.Context, req vision.Request) (*vision.Result, error)
}

// searchCoordinator is the slice of search.Coordinator the service needs.
type searchCoordinator interface {
	Augment(ctx context.Context, image, prompt string, provider vision.Provider, model string, resultsPerQuery int) search.Augmentation
}

// Service orchestrates one query: validate, optionally augment the prompt
// with web-search context, then call the selected provider.
type Service struct {
	router visionRouter
	search searchCoordinator // nil when no search API key is configured
	logger *slog.Logger
}

func NewService(router visionRouter, search searchCoordinator, logger *slog.Logger) *Service {
	return &Service{
		router: router,
		search: search,
		logger: logger,
	}
}

// Query runs the full pipeline. The search pass can only shrink: any
// failure inside it leaves the prompt unaugmented. The provider call is the
// answer itself, so its error propagates untouched.
func (s *Service) Query(ctx context.Context, req Request) (*Result, error) {
	if req.Image == "" || req.Prompt == "" || req.Provider == "" {
		return nil, &ValidationError{Msg: "Missing required fields: image, prompt, provider"}
	}
	if !vision.Known(req.Provider) {
		return nil, &ValidationError{Msg: fmt.Sprintf("Unknown provider: %s", req.Provider)}
	}

	prompt := req.Prompt
	var queries []string
	searchPerformed := false

	if req.SearchEnabled && s.search != nil {
		aug := s.search.Augment(ctx, req.Image, req.Prompt, req.Provider, req.Model, clampResults(req.ResultsPerQuery))
		queries = aug.Queries
		if aug.Context != "" {
			prompt = req.Prompt + "\n\n" + aug.Context
			searchPerformed = true
		}
	}

	res, err := s.router.Generate(ctx, vision.Request{
		Image:    req.Image,
		Prompt:   prompt,
		Provider: req.Provider,
		Model:    req.Model,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("query complete",
		"provider", res.Provider,
		"model", res.Model,
		"search_performed", searchPerformed,
		"search_queries", len(queries),
	)

	return &Result{
		Response:        res.Text,
		Provider:        res.Provider,
		Model:           res.Model,
		SearchQueries:   queries,
		SearchPerformed: searchPerformed,
	}, nil
}

// clampResults forces the per-query result count into [1,10].
func clampResults(n int) int {
	if n < minResultsPerQuery {
		return minResultsPerQuery
	}
	if n > maxResultsPerQuery {
		return maxResultsPerQuery
	}
	return n
}
