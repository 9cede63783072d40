package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alpinaconnect/backend/internal/domain"
)

// errorResponse is the JSON error envelope for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Encoding failures at this
// point cannot be reported to the client; the connection is simply dropped.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON parses the request body into dst, rejecting unknown fields so
// typos in client payloads fail loudly instead of being silently dropped.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}

// writeError maps a service error onto the HTTP status and error code the
// API contract promises. Unknown errors become an opaque 500; the request
// logger middleware has already captured the detail.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrForbidden):
		writeErrorBody(w, http.StatusForbidden, "forbidden", "acting guide does not own this trip")
	case errors.Is(err, domain.ErrDuplicateRequest):
		writeErrorBody(w, http.StatusConflict, "duplicate_request", "you already have an active request for this trip")
	case errors.Is(err, domain.ErrOutOfWindow):
		writeErrorBody(w, http.StatusConflict, "out_of_window", "requested date is outside the trip's availability window")
	case errors.Is(err, domain.ErrTripFull):
		writeErrorBody(w, http.StatusConflict, "trip_full", "this trip has no seats left")
	case errors.Is(err, domain.ErrNotPending):
		writeErrorBody(w, http.StatusConflict, "not_pending", "client has no pending request on this trip; refresh and retry")
	case errors.Is(err, domain.ErrCapacityExceeded):
		writeErrorBody(w, http.StatusConflict, "capacity_exceeded", "approving this request would exceed the trip's capacity")
	default:
		writeErrorBody(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// writeRequestError reports a bad request rejected before reaching the
// service layer (missing header, malformed id or body).
func writeRequestError(w http.ResponseWriter, message string) {
	writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", message)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel error.
// e.g. "service.CatalogService.Create: validation error: title is required"
// → "title is required". Falls back to the full error string.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{"validation error: ", "not found: "} {
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	// Strip "pkg.Type.Method: " wrapping prefixes.
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
