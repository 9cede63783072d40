package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// viewsResponse is the JSON shape of a page-view counter.
type viewsResponse struct {
	Page  string `json:"page"`
	Views int64  `json:"views"`
}

// IncrementViews handles POST /stats/views/{page}.
// Returns the counter value after the increment.
func (s *Server) IncrementViews(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	views, err := s.stats.Increment(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewsResponse{Page: page, Views: views})
}

// GetViews handles GET /stats/views/{page}.
func (s *Server) GetViews(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	views, err := s.stats.Get(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewsResponse{Page: page, Views: views})
}
