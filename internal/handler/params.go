package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Identity headers. Authentication happens upstream; by the time a request
// reaches this API the acting identity has been resolved into one of these.
const (
	headerClientID = "X-Client-ID"
	headerGuideID  = "X-Guide-ID"
)

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// headerUUID parses a required identity header as a UUID.
func headerUUID(r *http.Request, header string) (uuid.UUID, error) {
	raw := r.Header.Get(header)
	if raw == "" {
		return uuid.UUID{}, fmt.Errorf("%s header is required", header)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid %s header", header)
	}
	return id, nil
}

// queryInt returns the named query parameter as *int, or nil when absent
// or unparsable. Pagination treats nil as "use the default".
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
