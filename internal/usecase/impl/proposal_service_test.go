package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cotiza/internal/domain/entity"
	domainerrors "cotiza/internal/domain/errors"
	"cotiza/internal/domain/repository"
	"cotiza/internal/domain/service"
	mockRepo "cotiza/internal/mocks/repository"
	mockUC "cotiza/internal/mocks/usecase"
	"cotiza/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProposalService(t *testing.T) (
	usecase.ProposalUsecase,
	*mockRepo.MockProposalRepository,
	*mockRepo.MockSolicitudRepository,
	*mockRepo.MockTransactionManager,
	*mockUC.MockCityUsecase,
	*mockUC.MockNotificationDispatcher,
) {
	proposalRepo := mockRepo.NewMockProposalRepository(t)
	solicitudRepo := mockRepo.NewMockSolicitudRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cityUsecase := mockUC.NewMockCityUsecase(t)
	dispatcher := mockUC.NewMockNotificationDispatcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewProposalService(logger, proposalRepo, solicitudRepo, txManager, cityUsecase, dispatcher)

	return svc, proposalRepo, solicitudRepo, txManager, cityUsecase, dispatcher
}

func openSolicitud() *entity.Solicitud {
	return &entity.Solicitud{
		ID:        42,
		UsuarioID: "cliente-1",
		Titulo:    "Mudanza de apartamento",
		Ubicacion: "Bogotá",
		Estado:    entity.SolicitudStatusPending,
	}
}

func TestProposalService_CreateProposal_Success(t *testing.T) {
	svc, proposalRepo, solicitudRepo, _, _, dispatcher := createTestProposalService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(openSolicitud(), nil)
	proposalRepo.EXPECT().ExistsByCompanyAndSolicitud(ctx, "empresa-1", int64(42)).Return(false, nil)
	proposalRepo.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, p *entity.Proposal) error {
		p.ID = 7

		return nil
	})
	solicitudRepo.EXPECT().UpdateEstado(ctx, int64(42), entity.SolicitudStatusQuoted).Return(nil)

	dispatcher.EXPECT().Dispatch(ctx, mock.Anything).RunAndReturn(func(_ context.Context, event *service.ProposalEvent) (*entity.Notification, error) {
		assert.Equal(t, service.EventProposalCreated, event.Type)
		assert.Equal(t, int64(7), event.ProposalID)
		assert.Equal(t, "cliente-1", event.RecipientID)
		assert.Equal(t, "Mudanza de apartamento", event.SolicitudTitulo)
		assert.Equal(t, int64(2*150000+1*80000), event.Total)

		return &entity.Notification{ID: 1}, nil
	})

	proposal, err := svc.CreateProposal(ctx, &usecase.CreateProposalInput{
		CompanyID:   "empresa-1",
		CompanyName: "Transportes Andinos",
		SolicitudID: 42,
		Currency:    "COP",
		Items: []usecase.ProposalItemInput{
			{ProductName: "Camión 3.5t", Quantity: 2, UnitPrice: 150000},
			{ProductName: "Embalaje", Quantity: 1, UnitPrice: 80000},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), proposal.ID)
	assert.Equal(t, entity.ProposalStatusSubmitted, proposal.Status)
	assert.Equal(t, int64(380000), proposal.Total)
	assert.Equal(t, int64(300000), proposal.Items[0].TotalPrice)
	assert.Equal(t, int64(80000), proposal.Items[1].TotalPrice)
}

func TestProposalService_CreateProposal_Duplicate(t *testing.T) {
	svc, proposalRepo, solicitudRepo, _, _, _ := createTestProposalService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(openSolicitud(), nil)
	proposalRepo.EXPECT().ExistsByCompanyAndSolicitud(ctx, "empresa-1", int64(42)).Return(true, nil)

	_, err := svc.CreateProposal(ctx, &usecase.CreateProposalInput{
		CompanyID:   "empresa-1",
		CompanyName: "Transportes Andinos",
		SolicitudID: 42,
		Currency:    "COP",
		Items:       []usecase.ProposalItemInput{{ProductName: "Camión", Quantity: 1, UnitPrice: 100}},
	})

	require.ErrorIs(t, err, repository.ErrDuplicateProposal)
}

func TestProposalService_CreateProposal_RaceLostOnUniqueIndex(t *testing.T) {
	svc, proposalRepo, solicitudRepo, _, _, _ := createTestProposalService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(openSolicitud(), nil)
	proposalRepo.EXPECT().ExistsByCompanyAndSolicitud(ctx, "empresa-1", int64(42)).Return(false, nil)
	proposalRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateProposal)

	_, err := svc.CreateProposal(ctx, &usecase.CreateProposalInput{
		CompanyID:   "empresa-1",
		CompanyName: "Transportes Andinos",
		SolicitudID: 42,
		Currency:    "COP",
		Items:       []usecase.ProposalItemInput{{ProductName: "Camión", Quantity: 1, UnitPrice: 100}},
	})

	require.ErrorIs(t, err, repository.ErrDuplicateProposal)
}

func TestProposalService_CreateProposal_SolicitudClosed(t *testing.T) {
	svc, _, solicitudRepo, _, _, _ := createTestProposalService(t)

	ctx := context.Background()
	closed := openSolicitud()
	closed.Estado = entity.SolicitudStatusConfirmed
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(closed, nil)

	_, err := svc.CreateProposal(ctx, &usecase.CreateProposalInput{
		CompanyID:   "empresa-1",
		CompanyName: "Transportes Andinos",
		SolicitudID: 42,
		Currency:    "COP",
		Items:       []usecase.ProposalItemInput{{ProductName: "Camión", Quantity: 1, UnitPrice: 100}},
	})

	require.ErrorIs(t, err, domainerrors.ErrSolicitudClosed)
}

func TestProposalService_CreateProposal_QuotedBumpFailureIsSwallowed(t *testing.T) {
	svc, proposalRepo, solicitudRepo, _, _, dispatcher := createTestProposalService(t)

	ctx := context.Background()
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(openSolicitud(), nil)
	proposalRepo.EXPECT().ExistsByCompanyAndSolicitud(ctx, "empresa-1", int64(42)).Return(false, nil)
	proposalRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	solicitudRepo.EXPECT().UpdateEstado(ctx, int64(42), entity.SolicitudStatusQuoted).Return(errors.New("db down"))
	dispatcher.EXPECT().Dispatch(ctx, mock.Anything).Return(&entity.Notification{}, nil)

	proposal, err := svc.CreateProposal(ctx, &usecase.CreateProposalInput{
		CompanyID:   "empresa-1",
		CompanyName: "Transportes Andinos",
		SolicitudID: 42,
		Currency:    "COP",
		Items:       []usecase.ProposalItemInput{{ProductName: "Camión", Quantity: 1, UnitPrice: 100}},
	})

	require.NoError(t, err)
	assert.NotNil(t, proposal)
}

func TestProposalService_AcceptProposal_Success(t *testing.T) {
	svc, proposalRepo, solicitudRepo, txManager, cityUsecase, dispatcher := createTestProposalService(t)

	ctx := context.Background()
	proposalRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Proposal{
		ID:          7,
		CompanyID:   "empresa-1",
		CompanyName: "Transportes Andinos",
		SolicitudID: 42,
		Currency:    "COP",
		Total:       380000,
		Status:      entity.ProposalStatusSubmitted,
	}, nil)
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(openSolicitud(), nil)

	txProposalRepo := mockRepo.NewMockProposalRepository(t)
	txSolicitudRepo := mockRepo.NewMockSolicitudRepository(t)
	txProposalRepo.EXPECT().UpdateStatus(ctx, int64(7), entity.ProposalStatusConfirmed).Return(nil)
	txSolicitudRepo.EXPECT().UpdateEstado(ctx, int64(42), entity.SolicitudStatusConfirmed).Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProposalRepository().Return(txProposalRepo)
	factory.EXPECT().NewSolicitudRepository().Return(txSolicitudRepo)

	txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	})

	cityUsecase.EXPECT().RecordSolicitudClosed(ctx, "Bogotá").Return(&entity.City{}, nil)

	dispatcher.EXPECT().Dispatch(ctx, mock.Anything).RunAndReturn(func(_ context.Context, event *service.ProposalEvent) (*entity.Notification, error) {
		assert.Equal(t, service.EventProposalAccepted, event.Type)
		assert.Equal(t, "empresa-1", event.RecipientID)
		assert.Equal(t, "cliente-1", event.RequesterID)

		return &entity.Notification{ID: 2}, nil
	})

	proposal, err := svc.AcceptProposal(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusConfirmed, proposal.Status)
}

func TestProposalService_AcceptProposal_AlreadyConfirmed(t *testing.T) {
	svc, proposalRepo, _, _, _, _ := createTestProposalService(t)

	ctx := context.Background()
	proposalRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Proposal{
		ID:     7,
		Status: entity.ProposalStatusConfirmed,
	}, nil)

	_, err := svc.AcceptProposal(ctx, 7)

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestProposalService_AcceptProposal_TransactionRollsBack(t *testing.T) {
	svc, proposalRepo, solicitudRepo, txManager, _, _ := createTestProposalService(t)

	ctx := context.Background()
	proposalRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Proposal{
		ID:          7,
		SolicitudID: 42,
		Status:      entity.ProposalStatusSubmitted,
	}, nil)
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(openSolicitud(), nil)
	txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("deadlock detected"))

	_, err := svc.AcceptProposal(ctx, 7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to confirm proposal")
}

func TestProposalService_RejectProposal_LeavesSolicitudUntouched(t *testing.T) {
	svc, proposalRepo, solicitudRepo, _, _, dispatcher := createTestProposalService(t)

	ctx := context.Background()
	proposalRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Proposal{
		ID:          7,
		CompanyID:   "empresa-1",
		CompanyName: "Transportes Andinos",
		SolicitudID: 42,
		Status:      entity.ProposalStatusSubmitted,
	}, nil)
	proposalRepo.EXPECT().UpdateStatus(ctx, int64(7), entity.ProposalStatusRejected).Return(nil)
	solicitudRepo.EXPECT().FindByID(ctx, int64(42)).Return(openSolicitud(), nil)

	dispatcher.EXPECT().Dispatch(ctx, mock.Anything).RunAndReturn(func(_ context.Context, event *service.ProposalEvent) (*entity.Notification, error) {
		assert.Equal(t, service.EventProposalRejected, event.Type)
		assert.Equal(t, "empresa-1", event.RecipientID)

		return &entity.Notification{ID: 3}, nil
	})

	proposal, err := svc.RejectProposal(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusRejected, proposal.Status)
	// No UpdateEstado expectation on the solicitud repo: rejecting one
	// proposal keeps the request open for other companies.
	solicitudRepo.AssertNotCalled(t, "UpdateEstado", mock.Anything, mock.Anything, mock.Anything)
}

func TestProposalService_RejectProposal_Terminal(t *testing.T) {
	svc, proposalRepo, _, _, _, _ := createTestProposalService(t)

	ctx := context.Background()
	proposalRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Proposal{
		ID:     7,
		Status: entity.ProposalStatusRejected,
	}, nil)

	_, err := svc.RejectProposal(ctx, 7)

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestProposalService_OverrideStatus(t *testing.T) {
	svc, proposalRepo, _, _, _, _ := createTestProposalService(t)

	ctx := context.Background()
	proposalRepo.EXPECT().UpdateStatus(ctx, int64(7), entity.ProposalStatusRejected).Return(nil)

	require.NoError(t, svc.OverrideStatus(ctx, 7, "rejected"))
}

func TestProposalService_OverrideStatus_UnknownStatus(t *testing.T) {
	svc, _, _, _, _, _ := createTestProposalService(t)

	err := svc.OverrideStatus(context.Background(), 7, "archived")

	require.ErrorIs(t, err, domainerrors.ErrInvalidProposalStatus)
}

func TestProposalService_ListByStatus_UnknownStatus(t *testing.T) {
	svc, _, _, _, _, _ := createTestProposalService(t)

	_, err := svc.ListByStatus(context.Background(), "archived", 0, 20)

	require.ErrorIs(t, err, domainerrors.ErrInvalidProposalStatus)
}

func TestProposalService_ListByCompany(t *testing.T) {
	svc, proposalRepo, _, _, _, _ := createTestProposalService(t)

	ctx := context.Background()
	proposalRepo.EXPECT().FindByCompany(ctx, "empresa-1", 0, 20).Return([]*entity.Proposal{{ID: 7}}, nil)

	proposals, err := svc.ListByCompany(ctx, "empresa-1", 0, 20)

	require.NoError(t, err)
	assert.Len(t, proposals, 1)
}
