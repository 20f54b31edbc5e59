package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cotiza/internal/domain/entity"
	mockRepo "cotiza/internal/mocks/repository"
	mockUC "cotiza/internal/mocks/usecase"
	"cotiza/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSolicitudService(t *testing.T) (
	usecase.SolicitudUsecase,
	*mockRepo.MockSolicitudRepository,
	*mockUC.MockCityUsecase,
) {
	solicitudRepo := mockRepo.NewMockSolicitudRepository(t)
	cityUsecase := mockUC.NewMockCityUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewSolicitudService(logger, solicitudRepo, cityUsecase)

	return svc, solicitudRepo, cityUsecase
}

func TestSolicitudService_CreateSolicitud_Success(t *testing.T) {
	svc, solicitudRepo, cityUsecase := createTestSolicitudService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, s *entity.Solicitud) error {
		assert.Equal(t, entity.SolicitudStatusPending, s.Estado)
		assert.Len(t, s.Items, 2)
		s.ID = 42

		return nil
	})
	cityUsecase.EXPECT().RecordSolicitudCreated(ctx, "Bogotá").Return(&entity.City{ID: 1}, nil)

	solicitud, err := svc.CreateSolicitud(ctx, &usecase.CreateSolicitudInput{
		UsuarioID:     "cliente-1",
		UsuarioNombre: "Ana Gómez",
		Titulo:        "Mudanza de apartamento",
		Profesion:     "Transporte",
		Ubicacion:     "Bogotá",
		Items: []usecase.SolicitudItemInput{
			{Nombre: "Camión", Cantidad: 1},
			{Nombre: "Cajas", Cantidad: 20},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), solicitud.ID)
	assert.Equal(t, entity.SolicitudStatusPending, solicitud.Estado)
}

func TestSolicitudService_CreateSolicitud_CityFailureIsSwallowed(t *testing.T) {
	svc, solicitudRepo, cityUsecase := createTestSolicitudService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	cityUsecase.EXPECT().RecordSolicitudCreated(ctx, "Bogotá").Return(nil, errors.New("db down"))

	solicitud, err := svc.CreateSolicitud(ctx, &usecase.CreateSolicitudInput{
		UsuarioID: "cliente-1",
		Titulo:    "Mudanza",
		Ubicacion: "Bogotá",
		Items:     []usecase.SolicitudItemInput{{Nombre: "Camión", Cantidad: 1}},
	})

	require.NoError(t, err)
	assert.NotNil(t, solicitud)
}

func TestSolicitudService_CreateSolicitud_StoreFailure(t *testing.T) {
	svc, solicitudRepo, _ := createTestSolicitudService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := svc.CreateSolicitud(ctx, &usecase.CreateSolicitudInput{
		UsuarioID: "cliente-1",
		Titulo:    "Mudanza",
		Ubicacion: "Bogotá",
		Items:     []usecase.SolicitudItemInput{{Nombre: "Camión", Cantidad: 1}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create solicitud")
}

func TestSolicitudService_GetSolicitud(t *testing.T) {
	svc, solicitudRepo, _ := createTestSolicitudService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(&entity.Solicitud{ID: 42}, nil)

	solicitud, err := svc.GetSolicitud(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), solicitud.ID)
}
