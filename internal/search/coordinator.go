package search

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mbaird/lensgate/internal/vision"
)

// Extractor is the slice of the vision router the coordinator needs for
// query extraction.
type Extractor interface {
	Generate(ctx context.Context, req vision.Request) (*vision.Result, error)
}

// WebSearcher issues one search query.
type WebSearcher interface {
	Search(ctx context.Context, query string, count int) ([]Result, error)
}

// Augmentation is the outcome of one best-effort search pass.
type Augmentation struct {
	Queries []string // extracted queries, in extraction order
	Context string   // formatted context block, empty when nothing was found
}

// Coordinator turns an image and prompt into web-search context. Every
// operation inside it is best-effort: extraction failures, search failures,
// and empty results all degrade to a smaller Augmentation, never an error.
// A broken search provider must not fail the vision query it augments.
type Coordinator struct {
	extractor Extractor
	searcher  WebSearcher
	logger    *slog.Logger
}

func NewCoordinator(extractor Extractor, searcher WebSearcher, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		extractor: extractor,
		searcher:  searcher,
		logger:    logger,
	}
}

// Augment extracts up to three search queries from the image and prompt via
// the same provider/model as the main call, fans them out concurrently, and
// formats the aggregated results.
func (c *Coordinator) Augment(ctx context.Context, image, prompt string, provider vision.Provider, model string, resultsPerQuery int) Augmentation {
	queries := c.extractQueries(ctx, image, prompt, provider, model)
	if len(queries) == 0 {
		return Augmentation{}
	}

	results := c.fanOut(ctx, queries, resultsPerQuery)
	c.logger.Info("search pass complete", "queries", len(queries), "results", len(results))

	return Augmentation{Queries: queries, Context: BuildContext(results)}
}

func (c *Coordinator) extractQueries(ctx context.Context, image, prompt string, provider vision.Provider, model string) []string {
	res, err := c.extractor.Generate(ctx, vision.Request{
		Image:    image,
		Prompt:   fmt.Sprintf(extractionPrompt, prompt),
		Provider: provider,
		Model:    model,
	})
	if err != nil {
		c.logger.Warn("search query extraction failed, continuing without search", "error", err)
		return nil
	}
	return parseQueryList(res.Text)
}

// fanOut runs every query concurrently and joins before returning. A failed
// branch contributes zero results and never cancels its siblings, so the
// goroutines always return nil to the group.
func (c *Coordinator) fanOut(ctx context.Context, queries []string, count int) []Result {
	perQuery := make([][]Result, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		g.Go(func() error {
			results, err := c.searcher.Search(ctx, q, count)
			if err != nil {
				c.logger.Warn("web search failed", "query", q, "error", err)
				return nil
			}
			perQuery[i] = results
			return nil
		})
	}
	_ = g.Wait()

	var flat []Result
	for _, rs := range perQuery {
		flat = append(flat, rs...)
	}
	return flat
}
