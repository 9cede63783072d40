package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
)

// submitRequestBody is the JSON body for filing a booking request.
type submitRequestBody struct {
	RequestedDate string `json:"requested_date"`
}

// requestResponse is the JSON shape of a booking request.
type requestResponse struct {
	ID            string `json:"id"`
	TripID        string `json:"trip_id"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	RequestedDate string `json:"requested_date"`
	Status        string `json:"status"`
	DecidedAt     string `json:"decided_at,omitempty"`
}

// SubmitRequest handles POST /trips/{tripID}/requests.
// The acting client comes from the X-Client-ID header.
func (s *Server) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	clientID, err := headerUUID(r, headerClientID)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	var body submitRequestBody
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, err.Error())
		return
	}
	date, err := domain.ParseDate(body.RequestedDate)
	if err != nil {
		writeRequestError(w, unwrapMessage(err))
		return
	}

	created, err := s.bookings.Submit(r.Context(), tripID, clientID, date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestToResponse(created))
}

// ListRequests handles GET /trips/{tripID}/requests.
// Guide-facing: requires X-Guide-ID and supports ?status= filtering.
func (s *Server) ListRequests(w http.ResponseWriter, r *http.Request) {
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
	status := domain.RequestStatus(r.URL.Query().Get("status"))
	switch status {
	case "", domain.StatusPending, domain.StatusEnrolled, domain.StatusRejected:
	default:
		writeRequestError(w, "invalid status filter")
		return
	}

	reqs, err := s.bookings.ListRequests(r.Context(), guideID, tripID, status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestsToResponse(reqs))
}

// ApproveRequest handles POST /trips/{tripID}/requests/{clientID}/approve.
func (s *Server) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	s.decideRequest(w, r, s.bookings.Approve)
}

// RejectRequest handles POST /trips/{tripID}/requests/{clientID}/reject.
func (s *Server) RejectRequest(w http.ResponseWriter, r *http.Request) {
	s.decideRequest(w, r, s.bookings.Reject)
}

// decideRequest factors the shared parameter handling of approve and reject.
func (s *Server) decideRequest(w http.ResponseWriter, r *http.Request,
	decide func(ctx context.Context, guideID, tripID, clientID uuid.UUID) (domain.Request, error)) {
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	clientID, err := pathUUID(r, "clientID")
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}
	guideID, err := headerUUID(r, headerGuideID)
	if err != nil {
		writeRequestError(w, err.Error())
		return
	}

	decided, err := decide(r.Context(), guideID, tripID, clientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestToResponse(decided))
}

// --- mapping helpers --------------------------------------------------------

// requestToResponse converts a domain.Request into its JSON shape.
func requestToResponse(req domain.Request) requestResponse {
	resp := requestResponse{
		ID:            req.ID.String(),
		TripID:        req.TripID.String(),
		ClientID:      req.ClientID.String(),
		ClientName:    req.ClientName,
		RequestedDate: domain.FormatDate(req.RequestedDate),
		Status:        string(req.Status),
	}
	if req.DecidedAt != nil {
		resp.DecidedAt = req.DecidedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// requestsToResponse converts a slice of requests, never returning nil.
func requestsToResponse(reqs []domain.Request) []requestResponse {
	out := make([]requestResponse, len(reqs))
	for i, req := range reqs {
		out[i] = requestToResponse(req)
	}
	return out
}
