package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alpinaconnect/backend/internal/domain"
	"github.com/alpinaconnect/backend/internal/repo"
)

// ExportService assembles a full flat export of all trips and their booking
// requests, including decided (rejected) ones — the audit view.
type ExportService struct {
	trips    repo.TripRepo
	requests repo.RequestRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, requests repo.RequestRepo) *ExportService {
	return &ExportService{trips: trips, requests: requests}
}

// Export returns one ExportRow per booking request across all trips.
// Trips with no requests contribute one row with empty request fields.
// Rows follow catalog order; within a trip, submission order.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	reqs, err := s.requests.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	byTrip := make(map[uuid.UUID][]domain.Request, len(trips))
	for _, req := range reqs {
		byTrip[req.TripID] = append(byTrip[req.TripID], req)
	}

	rows := []domain.ExportRow{}
	for _, trip := range trips {
		base := domain.ExportRow{
			TripID:        trip.ID.String(),
			TripTitle:     trip.Title,
			TripLocation:  trip.Location,
			GuideID:       trip.GuideID.String(),
			AvailableFrom: domain.FormatDate(trip.AvailableFrom),
			AvailableTo:   domain.FormatDate(trip.AvailableTo),
		}

		tripReqs := byTrip[trip.ID]
		if len(tripReqs) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, req := range tripReqs {
			row := base
			row.ClientID = req.ClientID.String()
			row.ClientName = req.ClientName
			row.RequestedDate = domain.FormatDate(req.RequestedDate)
			row.Status = string(req.Status)
			rows = append(rows, row)
		}
	}

	return rows, nil
}
