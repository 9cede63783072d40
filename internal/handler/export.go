package handler

import "net/http"

// exportRowResponse is the JSON shape of one flat export row.
type exportRowResponse struct {
	TripID        string `json:"trip_id"`
	TripTitle     string `json:"trip_title"`
	TripLocation  string `json:"trip_location"`
	GuideID       string `json:"guide_id"`
	AvailableFrom string `json:"available_from"`
	AvailableTo   string `json:"available_to"`
	ClientID      string `json:"client_id,omitempty"`
	ClientName    string `json:"client_name,omitempty"`
	RequestedDate string `json:"requested_date,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Export handles GET /export.
// Returns one row per booking request, trips without requests included.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]exportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = exportRowResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}
