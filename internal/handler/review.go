package handler

import (
	"net/http"
	"time"

	"github.com/alpinaconnect/backend/internal/domain"
)

// reviewRequest is the JSON body for posting a guide review.
// The author comes from the X-Client-ID header.
type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// reviewResponse is the JSON shape of a review.
type reviewResponse struct {
	ID         string `json:"id"`
	GuideID    string `json:"guide_id"`
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
}

// CreateReview handles POST /guides/{guideID}/reviews.
func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	guideID, err := pathUUID(r, "guideID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	clientID, err := headerUUID(r, headerClientID)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	var body reviewRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, err.Error())
		return
	}

	created, err := s.reviews.Create(r.Context(), guideID, clientID, body.Rating, body.Comment)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, reviewToResponse(created))
}

// ListReviews handles GET /guides/{guideID}/reviews.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request) {
	guideID, err := pathUUID(r, "guideID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	reviews, err := s.reviews.ListByGuide(r.Context(), guideID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]reviewResponse, len(reviews))
	for i, rv := range reviews {
		out[i] = reviewToResponse(rv)
	}
	writeJSON(w, http.StatusOK, out)
}

func reviewToResponse(rv domain.Review) reviewResponse {
	return reviewResponse{
		ID:         rv.ID.String(),
		GuideID:    rv.GuideID.String(),
		AuthorName: rv.AuthorName,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt.UTC().Format(time.RFC3339),
	}
}
