package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alpinaconnect/backend/internal/domain"
)

// clientResponse is the JSON shape of a client profile.
// Profile is the opaque payload (sports passport, billing, transactions)
// stored verbatim at signup and echoed back for the profile UI.
type clientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Profile   json.RawMessage `json:"profile,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// guideResponse is the JSON shape of a guide's public profile.
type guideResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	AlboNumber string  `json:"albo_number"`
	Bio        string  `json:"bio,omitempty"`
	AvatarURL  string  `json:"avatar_url,omitempty"`
	Rating     float64 `json:"rating"`
}

// GetClient handles GET /clients/{clientID}.
func (s *Server) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathUUID(r, "clientID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	client, err := s.profiles.GetClient(r.Context(), clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clientToResponse(client))
}

// GetGuide handles GET /guides/{guideID}.
func (s *Server) GetGuide(w http.ResponseWriter, r *http.Request) {
	guideID, err := pathUUID(r, "guideID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	guide, err := s.profiles.GetGuide(r.Context(), guideID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, guideToResponse(guide))
}

// ListGuides handles GET /guides.
func (s *Server) ListGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := s.profiles.ListGuides(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]guideResponse, len(guides))
	for i, g := range guides {
		out[i] = guideToResponse(g)
	}
	writeJSON(w, http.StatusOK, out)
}

func clientToResponse(c domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Profile:   c.Profile,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func guideToResponse(g domain.Guide) guideResponse {
	return guideResponse{
		ID:         g.ID.String(),
		Name:       g.Name,
		Email:      g.Email,
		Phone:      g.Phone,
		AlboNumber: g.AlboNumber,
		Bio:        g.Bio,
		AvatarURL:  g.AvatarURL,
		Rating:     g.Rating,
	}
}
