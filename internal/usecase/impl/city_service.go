package impl

import (
	"context"
	"fmt"
	"log/slog"

	"cotiza/config"
	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/repository"
	"cotiza/internal/errors"
	"cotiza/internal/usecase"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultCityCacheSize = 256
	defaultCityCountry   = "Colombia"
)

type cityService struct {
	cityRepo repository.CityRepository
	cache    *lru.Cache[string, *entity.City]
	logger   *slog.Logger
}

// NewCityService creates the city directory with its bounded lookup cache.
// The cache is keyed by canonical name, so every spelling of a location
// collapses onto one entry.
func NewCityService(cfg *config.Config, logger *slog.Logger, cityRepo repository.CityRepository) (usecase.CityUsecase, error) {
	size := defaultCityCacheSize
	if cfg.CityCache != nil && cfg.CityCache.Size > 0 {
		size = cfg.CityCache.Size
	}

	cache, err := lru.New[string, *entity.City](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create city cache")
	}

	return &cityService{
		cityRepo: cityRepo,
		cache:    cache,
		logger:   logger,
	}, nil
}

// ResolveOrCreate normalizes a free-text location and returns the matching
// city, creating it on first sighting. A lost creation race reads the
// winner back instead of failing.
func (s *cityService) ResolveOrCreate(ctx context.Context, rawName string) (*entity.City, error) {
	canonical := entity.NormalizeCityName(rawName)

	if city, ok := s.cache.Get(canonical); ok {
		return city, nil
	}

	city, err := s.cityRepo.FindByNombre(ctx, canonical)
	if err == nil {
		s.cache.Add(canonical, city)

		return city, nil
	}
	if !errors.Is(err, repository.ErrCityNotFound) {
		return nil, fmt.Errorf("failed to resolve city: %w", err)
	}

	city = &entity.City{
		Nombre: canonical,
		Codigo: entity.CityCode(canonical),
		Pais:   defaultCityCountry,
		Activa: true,
	}

	if createErr := s.cityRepo.Create(ctx, city); createErr != nil {
		if !errors.Is(createErr, repository.ErrCityExists) {
			return nil, fmt.Errorf("failed to create city: %w", createErr)
		}

		// Lost the first-sighting race, the winner's row is authoritative.
		city, err = s.cityRepo.FindByNombre(ctx, canonical)
		if err != nil {
			return nil, fmt.Errorf("failed to read back city: %w", err)
		}
	} else {
		s.logger.Info("City registered",
			slog.String("nombre", city.Nombre),
			slog.String("codigo", city.Codigo),
		)
	}

	s.cache.Add(canonical, city)

	return city, nil
}

// ListActive retrieves all active cities ordered by canonical name.
func (s *cityService) ListActive(ctx context.Context) ([]*entity.City, error) {
	return s.cityRepo.FindActive(ctx)
}

// RecordSolicitudCreated resolves the city and bumps its request counters.
func (s *cityService) RecordSolicitudCreated(ctx context.Context, rawName string) (*entity.City, error) {
	city, err := s.ResolveOrCreate(ctx, rawName)
	if err != nil {
		return nil, err
	}

	fresh, err := s.cityRepo.IncrementSolicitudes(ctx, city.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to increment city counters: %w", err)
	}

	s.cache.Add(fresh.Nombre, fresh)

	return fresh, nil
}

// RecordSolicitudClosed resolves the city and lowers its active-request counter.
func (s *cityService) RecordSolicitudClosed(ctx context.Context, rawName string) (*entity.City, error) {
	city, err := s.ResolveOrCreate(ctx, rawName)
	if err != nil {
		return nil, err
	}

	fresh, err := s.cityRepo.DecrementSolicitudesActivas(ctx, city.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to decrement city active counter: %w", err)
	}

	s.cache.Add(fresh.Nombre, fresh)

	return fresh, nil
}
