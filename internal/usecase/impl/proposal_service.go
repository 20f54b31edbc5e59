package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cotiza/internal/domain/entity"
	domainerrors "cotiza/internal/domain/errors"
	"cotiza/internal/domain/repository"
	"cotiza/internal/domain/service"
	"cotiza/internal/usecase"
)

type proposalService struct {
	proposalRepo  repository.ProposalRepository
	solicitudRepo repository.SolicitudRepository
	txManager     repository.TransactionManager
	cityUsecase   usecase.CityUsecase
	dispatcher    usecase.NotificationDispatcher
	logger        *slog.Logger
}

// NewProposalService creates a new proposal service instance
func NewProposalService(
	logger *slog.Logger,
	proposalRepo repository.ProposalRepository,
	solicitudRepo repository.SolicitudRepository,
	txManager repository.TransactionManager,
	cityUsecase usecase.CityUsecase,
	dispatcher usecase.NotificationDispatcher,
) usecase.ProposalUsecase {
	return &proposalService{
		proposalRepo:  proposalRepo,
		solicitudRepo: solicitudRepo,
		txManager:     txManager,
		cityUsecase:   cityUsecase,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// CreateProposal submits a proposal against an open solicitud. The proposal
// row is authoritative: once it is stored, failures of the solicitud status
// bump or the notification fan-out are logged, never surfaced.
func (s *proposalService) CreateProposal(ctx context.Context, input *usecase.CreateProposalInput) (*entity.Proposal, error) {
	solicitud, err := s.solicitudRepo.FindByID(ctx, input.SolicitudID)
	if err != nil {
		return nil, err
	}
	if !solicitud.OpenForProposals() {
		return nil, domainerrors.ErrSolicitudClosed
	}

	exists, err := s.proposalRepo.ExistsByCompanyAndSolicitud(ctx, input.CompanyID, input.SolicitudID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate proposal: %w", err)
	}
	if exists {
		return nil, repository.ErrDuplicateProposal
	}

	items := make([]entity.ProposalItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.ProposalItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  int64(item.Quantity) * item.UnitPrice,
			Comments:    item.Comments,
		})
	}

	proposal := &entity.Proposal{
		CompanyID:    input.CompanyID,
		CompanyName:  input.CompanyName,
		SolicitudID:  input.SolicitudID,
		Currency:     input.Currency,
		DeliveryTime: input.DeliveryTime,
		Total:        entity.ComputeTotal(items),
		Status:       entity.ProposalStatusSubmitted,
		Items:        items,
	}

	// The pre-check leaves a race window; the unique index closes it.
	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, err
	}

	if solicitud.Estado != entity.SolicitudStatusQuoted {
		if err := s.solicitudRepo.UpdateEstado(ctx, solicitud.ID, entity.SolicitudStatusQuoted); err != nil {
			s.logger.Warn("Failed to move solicitud to quoted",
				slog.Int64("solicitud_id", solicitud.ID),
				slog.Any("error", err),
			)
		}
	}

	s.dispatch(ctx, &service.ProposalEvent{
		Type:            service.EventProposalCreated,
		ProposalID:      proposal.ID,
		SolicitudID:     solicitud.ID,
		RecipientID:     solicitud.UsuarioID,
		CompanyName:     proposal.CompanyName,
		SolicitudTitulo: solicitud.Titulo,
		Total:           proposal.Total,
		Currency:        proposal.Currency,
		DeliveryTime:    proposal.DeliveryTime,
		OccurredAt:      time.Now(),
	})

	return proposal, nil
}

// AcceptProposal confirms a submitted proposal. The proposal and its
// solicitud move to confirmed in one transaction, then the company is
// notified and the city's active-request counter is lowered.
func (s *proposalService) AcceptProposal(ctx context.Context, id int64) (*entity.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !proposal.CanTransition(entity.ProposalStatusConfirmed) {
		return nil, domainerrors.ErrInvalidTransition
	}

	solicitud, err := s.solicitudRepo.FindByID(ctx, proposal.SolicitudID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProposalRepository().UpdateStatus(ctx, proposal.ID, entity.ProposalStatusConfirmed); err != nil {
			return err
		}

		return repoFactory.NewSolicitudRepository().UpdateEstado(ctx, solicitud.ID, entity.SolicitudStatusConfirmed)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to confirm proposal: %w", err)
	}
	proposal.Status = entity.ProposalStatusConfirmed

	if _, err := s.cityUsecase.RecordSolicitudClosed(ctx, solicitud.Ubicacion); err != nil {
		s.logger.Warn("Failed to lower city active counter",
			slog.Int64("solicitud_id", solicitud.ID),
			slog.String("ubicacion", solicitud.Ubicacion),
			slog.Any("error", err),
		)
	}

	s.dispatch(ctx, &service.ProposalEvent{
		Type:            service.EventProposalAccepted,
		ProposalID:      proposal.ID,
		SolicitudID:     solicitud.ID,
		RecipientID:     proposal.CompanyID,
		CompanyName:     proposal.CompanyName,
		SolicitudTitulo: solicitud.Titulo,
		RequesterID:     solicitud.UsuarioID,
		Total:           proposal.Total,
		Currency:        proposal.Currency,
		DeliveryTime:    proposal.DeliveryTime,
		OccurredAt:      time.Now(),
	})

	return proposal, nil
}

// RejectProposal rejects a submitted proposal. The solicitud stays as it
// is so other companies can keep quoting.
func (s *proposalService) RejectProposal(ctx context.Context, id int64) (*entity.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !proposal.CanTransition(entity.ProposalStatusRejected) {
		return nil, domainerrors.ErrInvalidTransition
	}

	if err := s.proposalRepo.UpdateStatus(ctx, proposal.ID, entity.ProposalStatusRejected); err != nil {
		return nil, fmt.Errorf("failed to reject proposal: %w", err)
	}
	proposal.Status = entity.ProposalStatusRejected

	event := &service.ProposalEvent{
		Type:        service.EventProposalRejected,
		ProposalID:  proposal.ID,
		SolicitudID: proposal.SolicitudID,
		RecipientID: proposal.CompanyID,
		CompanyName: proposal.CompanyName,
		OccurredAt:  time.Now(),
	}
	if solicitud, err := s.solicitudRepo.FindByID(ctx, proposal.SolicitudID); err == nil {
		event.SolicitudTitulo = solicitud.Titulo
	}
	s.dispatch(ctx, event)

	return proposal, nil
}

// OverrideStatus sets any valid status directly, without transition checks
// or notifications.
func (s *proposalService) OverrideStatus(ctx context.Context, id int64, status string) error {
	if !entity.ValidProposalStatus(status) {
		return domainerrors.ErrInvalidProposalStatus
	}

	return s.proposalRepo.UpdateStatus(ctx, id, entity.ProposalStatus(status))
}

// GetProposal retrieves a proposal with its items.
func (s *proposalService) GetProposal(ctx context.Context, id int64) (*entity.Proposal, error) {
	return s.proposalRepo.FindByID(ctx, id)
}

// ListByCompany retrieves a company's proposals, newest first, paginated.
func (s *proposalService) ListByCompany(ctx context.Context, companyID string, page, size int) ([]*entity.Proposal, error) {
	return s.proposalRepo.FindByCompany(ctx, companyID, page, size)
}

// ListBySolicitud retrieves every proposal against a solicitud.
func (s *proposalService) ListBySolicitud(ctx context.Context, solicitudID int64) ([]*entity.Proposal, error) {
	return s.proposalRepo.FindBySolicitud(ctx, solicitudID)
}

// ListByStatus retrieves proposals in the given state, newest first, paginated.
func (s *proposalService) ListByStatus(ctx context.Context, status string, page, size int) ([]*entity.Proposal, error) {
	if !entity.ValidProposalStatus(status) {
		return nil, domainerrors.ErrInvalidProposalStatus
	}

	return s.proposalRepo.FindByStatus(ctx, entity.ProposalStatus(status), page, size)
}

// dispatch runs the notification fan-out, logging instead of failing the
// caller when it breaks.
func (s *proposalService) dispatch(ctx context.Context, event *service.ProposalEvent) {
	if _, err := s.dispatcher.Dispatch(ctx, event); err != nil {
		s.logger.Warn("Notification dispatch failed",
			slog.String("event", string(event.Type)),
			slog.Int64("proposal_id", event.ProposalID),
			slog.Any("error", err),
		)
	}
}
