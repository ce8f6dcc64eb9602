package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mbaird/lensgate/internal/query"
	"github.com/mbaird/lensgate/internal/vision"
)

type queryRequest struct {
	Image                 string `json:"image"`
	Prompt                string `json:"prompt"`
	Provider              string `json:"provider"`
	Model                 string `json:"model"`
	SearchEnabled         *bool  `json:"searchEnabled"`
	SearchResultsPerQuery *int   `json:"searchResultsPerQuery"`
}

type queryResponse struct {
	Response        string   `json:"response"`
	Provider        string   `json:"provider"`
	Model           string   `json:"model"`
	SearchQueries   []string `json:"searchQueries,omitempty"`
	SearchPerformed bool     `json:"searchPerformed"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var body queryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req := query.Request{
		Image:    body.Image,
		Prompt:   body.Prompt,
		Provider: vision.Provider(body.Provider),
		Model:    body.Model,
		// Search is opt-out: only an explicit false disables it.
		SearchEnabled:   body.SearchEnabled == nil || *body.SearchEnabled,
		ResultsPerQuery: query.DefaultResultsPerQuery,
	}
	if body.SearchResultsPerQuery != nil {
		req.ResultsPerQuery = *body.SearchResultsPerQuery
	}

	result, err := s.query.Query(r.Context(), req)
	if err != nil {
		var vErr *query.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		s.logger.Error("query failed", "error", err, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{
		Response:        result.Response,
		Provider:        string(result.Provider),
		Model:           result.Model,
		SearchQueries:   result.SearchQueries,
		SearchPerformed: result.SearchPerformed,
	})
}
