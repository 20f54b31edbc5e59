package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cotiza/config"
	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/repository"
	mockRepo "cotiza/internal/mocks/repository"
	"cotiza/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCityService(t *testing.T) (usecase.CityUsecase, *mockRepo.MockCityRepository) {
	cityRepo := mockRepo.NewMockCityRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc, err := NewCityService(&config.Config{}, logger, cityRepo)
	require.NoError(t, err)

	return svc, cityRepo
}

func TestCityService_ResolveOrCreate_FirstSighting(t *testing.T) {
	svc, cityRepo := createTestCityService(t)

	ctx := context.Background()
	cityRepo.EXPECT().FindByNombre(ctx, "bogota").Return(nil, repository.ErrCityNotFound)
	cityRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, city *entity.City) error {
		assert.Equal(t, "bogota", city.Nombre)
		assert.Equal(t, "BOG", city.Codigo)
		assert.Equal(t, "Colombia", city.Pais)
		assert.True(t, city.Activa)
		city.ID = 1

		return nil
	})

	city, err := svc.ResolveOrCreate(ctx, "  Bogotá ")

	require.NoError(t, err)
	assert.Equal(t, int64(1), city.ID)
	assert.Equal(t, "bogota", city.Nombre)
}

func TestCityService_ResolveOrCreate_SpellingsCollapseOntoCache(t *testing.T) {
	svc, cityRepo := createTestCityService(t)

	ctx := context.Background()
	stored := &entity.City{ID: 1, Nombre: "bogota", Codigo: "BOG", Activa: true}
	cityRepo.EXPECT().FindByNombre(ctx, "bogota").Return(stored, nil).Once()

	first, err := svc.ResolveOrCreate(ctx, "Bogotá")
	require.NoError(t, err)

	// Every different spelling resolves from the cache; the store is only
	// hit once.
	for _, spelling := range []string{"BOGOTA", " bogotá ", "Bogota!!"} {
		city, err := svc.ResolveOrCreate(ctx, spelling)
		require.NoError(t, err)
		assert.Same(t, first, city)
	}
}

func TestCityService_ResolveOrCreate_LostRaceReadsWinnerBack(t *testing.T) {
	svc, cityRepo := createTestCityService(t)

	ctx := context.Background()
	winner := &entity.City{ID: 9, Nombre: "medellin", Codigo: "MED", Activa: true}

	cityRepo.EXPECT().FindByNombre(ctx, "medellin").Return(nil, repository.ErrCityNotFound).Once()
	cityRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrCityExists)
	cityRepo.EXPECT().FindByNombre(ctx, "medellin").Return(winner, nil).Once()

	city, err := svc.ResolveOrCreate(ctx, "Medellín")

	require.NoError(t, err)
	assert.Equal(t, int64(9), city.ID)
}

func TestCityService_ResolveOrCreate_BlankFallsBackToSentinel(t *testing.T) {
	svc, cityRepo := createTestCityService(t)

	ctx := context.Background()
	stored := &entity.City{ID: 3, Nombre: entity.UnspecifiedCityName}
	cityRepo.EXPECT().FindByNombre(ctx, entity.UnspecifiedCityName).Return(stored, nil)

	city, err := svc.ResolveOrCreate(ctx, "   ")

	require.NoError(t, err)
	assert.Equal(t, entity.UnspecifiedCityName, city.Nombre)
}

func TestCityService_RecordSolicitudCreated_RefreshesCache(t *testing.T) {
	svc, cityRepo := createTestCityService(t)

	ctx := context.Background()
	stale := &entity.City{ID: 1, Nombre: "cali", TotalSolicitudes: 4, SolicitudesActivas: 2}
	fresh := &entity.City{ID: 1, Nombre: "cali", TotalSolicitudes: 5, SolicitudesActivas: 3}

	cityRepo.EXPECT().FindByNombre(ctx, "cali").Return(stale, nil).Once()
	cityRepo.EXPECT().IncrementSolicitudes(ctx, int64(1)).Return(fresh, nil)

	city, err := svc.RecordSolicitudCreated(ctx, "Cali")
	require.NoError(t, err)
	assert.Equal(t, 5, city.TotalSolicitudes)

	// The next lookup serves the refreshed counters from the cache.
	cached, err := svc.ResolveOrCreate(ctx, "cali")
	require.NoError(t, err)
	assert.Same(t, fresh, cached)
}

func TestCityService_RecordSolicitudClosed(t *testing.T) {
	svc, cityRepo := createTestCityService(t)

	ctx := context.Background()
	stored := &entity.City{ID: 1, Nombre: "cali", SolicitudesActivas: 3}
	fresh := &entity.City{ID: 1, Nombre: "cali", SolicitudesActivas: 2}

	cityRepo.EXPECT().FindByNombre(ctx, "cali").Return(stored, nil).Once()
	cityRepo.EXPECT().DecrementSolicitudesActivas(ctx, int64(1)).Return(fresh, nil)

	city, err := svc.RecordSolicitudClosed(ctx, "Cali")

	require.NoError(t, err)
	assert.Equal(t, 2, city.SolicitudesActivas)
}

func TestCityService_ListActive(t *testing.T) {
	svc, cityRepo := createTestCityService(t)

	ctx := context.Background()
	cityRepo.EXPECT().FindActive(ctx).Return([]*entity.City{
		{Nombre: "bogota"},
		{Nombre: "cali"},
	}, nil)

	cities, err := svc.ListActive(ctx)

	require.NoError(t, err)
	assert.Len(t, cities, 2)
}

func TestNormalizeCityName(t *testing.T) {
	cases := map[string]string{
		"Bogotá":          "bogota",
		"  SANTA MARTA  ": "santa marta",
		"Medellín!!":      "medellin",
		"San   José":      "san jose",
		"":                entity.UnspecifiedCityName,
		"***":             entity.UnspecifiedCityName,
	}

	for input, want := range cases {
		assert.Equal(t, want, entity.NormalizeCityName(input), "input %q", input)
	}
}
