package search

import (
	"fmt"
	"strings"
)

// BuildContext renders the deterministic context block appended to the user
// prompt. Results are grouped by the query that produced them, queries in
// first-encountered order, each group preserving upstream result order.
// Zero results yield an empty string so the prompt stays untouched.
func BuildContext(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	var order []string
	grouped := make(map[string][]Result)
	for _, r := range results {
		if _, ok := grouped[r.Query]; !ok {
			order = append(order, r.Query)
		}
		grouped[r.Query] = append(grouped[r.Query], r)
	}

	var b strings.Builder
	b.WriteString("---\n**Web Search Context:**\n\n")
	for _, q := range order {
		fmt.Fprintf(&b, "Search: \"%s\"\n", q)
		for _, r := range grouped[q] {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", r.Title, r.Snippet, r.URL)
		}
		b.WriteString("\n")
	}
	b.WriteString("---\nPlease answer the question using both the image and the search context above.")

	return b.String()
}
