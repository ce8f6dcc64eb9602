package search

import (
	"encoding/json"
	"regexp"
	"strings"
)

// extractionPrompt asks the vision model for search queries as a bare JSON
// array. %s is the user's original question.
const extractionPrompt = `Given this image and the user's question, generate 1-3 web search queries that would help provide a more informed answer. Return ONLY a JSON array of search query strings, nothing else.

User's question: %s

Example response format: ["search query 1", "search query 2"]`

// maxQueries caps how many extracted queries are searched.
const maxQueries = 3

// jsonArrayPattern matches the first JSON-array-shaped substring in free text.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// parseQueryList pulls at most maxQueries entries out of the first JSON
// array found in raw, dropping non-string and blank entries. Models wrap
// the array in prose often enough that a strict top-level parse would lose
// most extractions; anything unparseable yields nil, which callers treat as
// "no search".
func parseQueryList(raw string) []string {
	match := jsonArrayPattern.FindString(raw)
	if match == "" {
		return nil
	}

	var entries []any
	if err := json.Unmarshal([]byte(match), &entries); err != nil {
		return nil
	}
	if len(entries) > maxQueries {
		entries = entries[:maxQueries]
	}

	queries := make([]string, 0, len(entries))
	for _, e := range entries {
		s, ok := e.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		queries = append(queries, s)
	}
	if len(queries) == 0 {
		return nil
	}
	return queries
}
