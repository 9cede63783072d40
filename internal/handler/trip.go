package handler

import (
	"net/http"
	"time"

	"github.com/alpinaconnect/backend/internal/domain"
)

// tripRequest is the JSON body for creating or updating a trip.
// The owning guide comes from the X-Guide-ID header, not the body.
type tripRequest struct {
	Title           string   `json:"title"`
	Location        string   `json:"location"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	AvailableFrom   string   `json:"available_from"`
	AvailableTo     string   `json:"available_to"`
	DurationDays    int      `json:"duration_days"`
	Price           int      `json:"price"`
	Difficulty      string   `json:"difficulty"`
	Activity        string   `json:"activity"`
	Description     string   `json:"description"`
	Equipment       []string `json:"equipment"`
	MaxParticipants int      `json:"max_participants"`
	ImageURL        string   `json:"image_url"`
}

// tripResponse is the JSON shape of a trip. The request lists are present
// only on single-trip reads, where the service loads the full aggregate.
type tripResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Location        string            `json:"location"`
	Latitude        float64           `json:"latitude"`
	Longitude       float64           `json:"longitude"`
	AvailableFrom   string            `json:"available_from"`
	AvailableTo     string            `json:"available_to"`
	DurationDays    int               `json:"duration_days"`
	Price           int               `json:"price"`
	Difficulty      string            `json:"difficulty"`
	Activity        string            `json:"activity"`
	Description     string            `json:"description,omitempty"`
	Equipment       []string          `json:"equipment,omitempty"`
	GuideID         string            `json:"guide_id"`
	MaxParticipants int               `json:"max_participants"`
	ImageURL        string            `json:"image_url,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
	Pending         []requestResponse `json:"pending_requests,omitempty"`
	Enrolled        []requestResponse `json:"enrolled_clients,omitempty"`
}

// paginationResponse echoes the applied page parameters alongside the total.
type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type tripListResponse struct {
	Data       []tripResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	guideID, err := headerUUID(r, headerGuideID)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	var body tripRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, err.Error())
		return
	}
	trip, err := requestToTrip(body)
	if err != nil {
		writeRequestError(w, unwrapMessage(err))
		return
	}
	trip.GuideID = guideID

	created, err := s.catalog.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) and an
// optional ?activity= filter.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	activity := r.URL.Query().Get("activity")

	trips, total, err := s.catalog.ListPaged(r.Context(), params, activity)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data: data,
		Pagination: paginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	trip, err := s.catalog.GetByID(r.Context(), tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	guideID, err := headerUUID(r, headerGuideID)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	var body tripRequest
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, err.Error())
		return
	}
	trip, err := requestToTrip(body)
	if err != nil {
		writeRequestError(w, unwrapMessage(err))
		return
	}
	trip.ID = tripID

	updated, err := s.catalog.Update(r.Context(), guideID, trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	guideID, err := headerUUID(r, headerGuideID)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	if err := s.catalog.Delete(r.Context(), guideID, tripID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a tripRequest body into a domain.Trip.
// Date parsing happens here so the service layer only ever sees calendar dates.
func requestToTrip(body tripRequest) (domain.Trip, error) {
	from, err := domain.ParseDate(body.AvailableFrom)
	if err != nil {
		return domain.Trip{}, err
	}
	to, err := domain.ParseDate(body.AvailableTo)
	if err != nil {
		return domain.Trip{}, err
	}
	return domain.Trip{
		Title:           body.Title,
		Location:        body.Location,
		Latitude:        body.Latitude,
		Longitude:       body.Longitude,
		AvailableFrom:   from,
		AvailableTo:     to,
		DurationDays:    body.DurationDays,
		Price:           body.Price,
		Difficulty:      body.Difficulty,
		Activity:        body.Activity,
		Description:     body.Description,
		Equipment:       body.Equipment,
		MaxParticipants: body.MaxParticipants,
		ImageURL:        body.ImageURL,
	}, nil
}

// tripToResponse converts a domain.Trip into its JSON shape.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:              t.ID.String(),
		Title:           t.Title,
		Location:        t.Location,
		Latitude:        t.Latitude,
		Longitude:       t.Longitude,
		AvailableFrom:   domain.FormatDate(t.AvailableFrom),
		AvailableTo:     domain.FormatDate(t.AvailableTo),
		DurationDays:    t.DurationDays,
		Price:           t.Price,
		Difficulty:      t.Difficulty,
		Activity:        t.Activity,
		Description:     t.Description,
		Equipment:       t.Equipment,
		GuideID:         t.GuideID.String(),
		MaxParticipants: t.MaxParticipants,
		ImageURL:        t.ImageURL,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.Pending != nil {
		resp.Pending = requestsToResponse(t.Pending)
	}
	if t.Enrolled != nil {
		resp.Enrolled = requestsToResponse(t.Enrolled)
	}
	return resp
}
