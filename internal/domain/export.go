package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per booking request, with trip
// fields repeated for every request on that trip. Trips with no requests
// yield one row with zero values for all request fields.
type ExportRow struct {
	// Trip fields — repeated for every request on the trip.
	TripID        string
	TripTitle     string
	TripLocation  string
	GuideID       string
	AvailableFrom string // YYYY-MM-DD formatted date
	AvailableTo   string

	// Request fields — zero values when the trip has no requests.
	ClientID      string
	ClientName    string
	RequestedDate string
	Status        string // pending, enrolled or rejected
}
