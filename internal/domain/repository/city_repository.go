package repository

import (
	"context"
	"errors"

	"cotiza/internal/domain/entity"
)

// Domain-specific errors for city persistence.
var (
	// ErrCityNotFound is returned when a city is not found.
	ErrCityNotFound = errors.New("city not found")
	// ErrCityExists is returned when inserting a city whose canonical name or
	// code already exists. Callers racing on first sighting read the winner back.
	ErrCityExists = errors.New("city already exists")
)

// CityRepository defines the interface for normalized-city storage.
type CityRepository interface {
	// Create persists a new city. Returns ErrCityExists when the unique index
	// on the canonical name or code rejects the insert.
	Create(ctx context.Context, city *entity.City) error

	// FindByNombre retrieves a city by its canonical name.
	FindByNombre(ctx context.Context, nombre string) (*entity.City, error)

	// FindActive retrieves all active cities ordered by canonical name.
	FindActive(ctx context.Context) ([]*entity.City, error)

	// IncrementSolicitudes atomically increments both request counters.
	IncrementSolicitudes(ctx context.Context, id int64) (*entity.City, error)

	// DecrementSolicitudesActivas atomically decrements the active-request
	// counter, never below zero.
	DecrementSolicitudesActivas(ctx context.Context, id int64) (*entity.City, error)
}
