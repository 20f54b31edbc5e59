package usecase

import (
	"context"

	"cotiza/internal/domain/entity"
)

// CityUsecase defines the interface for the normalized city directory.
// Lookups go through an in-process cache keyed by the canonical name.
type CityUsecase interface {
	// ResolveOrCreate normalizes a free-text location and returns the
	// matching city, creating it on first sighting.
	ResolveOrCreate(ctx context.Context, rawName string) (*entity.City, error)

	// ListActive retrieves all active cities ordered by canonical name.
	ListActive(ctx context.Context) ([]*entity.City, error)

	// RecordSolicitudCreated resolves the city and bumps its request counters.
	RecordSolicitudCreated(ctx context.Context, rawName string) (*entity.City, error)

	// RecordSolicitudClosed resolves the city and lowers its active-request
	// counter.
	RecordSolicitudClosed(ctx context.Context, rawName string) (*entity.City, error)
}
