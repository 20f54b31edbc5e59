// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cotiza/internal/domain/entity"
	domainerrors "cotiza/internal/domain/errors"
	"cotiza/internal/domain/repository"
	"cotiza/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// proposalRepository implements the repository.ProposalRepository interface.
type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository is the constructor for proposalRepository.
func NewProposalRepository(db *gorm.DB) repository.ProposalRepository {
	return &proposalRepository{
		db: db,
	}
}

// Create persists a proposal header together with its items. GORM writes the
// header first and the items after it through the association, so an item row
// never exists without its parent. The composite unique index on
// (company_id, solicitud_id) turns a concurrent duplicate submission into
// ErrDuplicateProposal.
func (repo *proposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	proposalM := fromProposalDomain(proposal)

	if err := repo.db.WithContext(ctx).Create(proposalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProposal
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSolicitudNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create proposal")
	}

	// Update the entity with generated values
	proposal.ID = proposalM.ID
	proposal.CreatedAt = proposalM.CreatedAt
	for i := range proposalM.Items {
		proposal.Items[i].ID = proposalM.Items[i].ID
		proposal.Items[i].ProposalID = proposalM.ID
	}

	return nil
}

// ExistsByCompanyAndSolicitud reports whether the company already proposed on the solicitud.
func (repo *proposalRepository) ExistsByCompanyAndSolicitud(ctx context.Context, companyID string, solicitudID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProposalModel{}).
		Where("company_id = ? AND solicitud_id = ?", companyID, solicitudID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check proposal existence")
	}

	return count > 0, nil
}

// FindByID retrieves a proposal by its unique ID with items eagerly loaded.
func (repo *proposalRepository) FindByID(ctx context.Context, id int64) (*entity.Proposal, error) {
	var proposalM model.ProposalModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&proposalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProposalNotFound
		}

		return nil, errors.Wrap(err, "failed to find proposal by ID")
	}

	return toProposalDomain(&proposalM), nil
}

// FindByCompany retrieves proposals of a company, newest first, paginated.
func (repo *proposalRepository) FindByCompany(ctx context.Context, companyID string, page, size int) ([]*entity.Proposal, error) {
	return repo.findPage(ctx, page, size, "company_id = ?", companyID)
}

// FindBySolicitud retrieves every proposal submitted against a solicitud.
func (repo *proposalRepository) FindBySolicitud(ctx context.Context, solicitudID int64) ([]*entity.Proposal, error) {
	var proposalModels []*model.ProposalModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("solicitud_id = ?", solicitudID).
		Order("created_at DESC").
		Find(&proposalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find proposals by solicitud")
	}

	return toProposalDomainSlice(proposalModels), nil
}

// FindByStatus retrieves proposals in the given state, newest first, paginated.
func (repo *proposalRepository) FindByStatus(ctx context.Context, status entity.ProposalStatus, page, size int) ([]*entity.Proposal, error) {
	return repo.findPage(ctx, page, size, "status = ?", string(status))
}

// UpdateStatus sets the proposal status.
func (repo *proposalRepository) UpdateStatus(ctx context.Context, id int64, status entity.ProposalStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProposalModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update proposal status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProposalNotFound
	}

	return nil
}

func (repo *proposalRepository) findPage(ctx context.Context, page, size int, cond string, args ...any) ([]*entity.Proposal, error) {
	var proposalModels []*model.ProposalModel

	page, size = repository.NormalizePage(page, size)

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(cond, args...).
		Order("created_at DESC").
		Limit(size).
		Offset(page * size).
		Find(&proposalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find proposals")
	}

	return toProposalDomainSlice(proposalModels), nil
}

// --- Mapper Functions ---

// toProposalDomain converts a GORM ProposalModel to a domain Proposal entity.
func toProposalDomain(data *model.ProposalModel) *entity.Proposal {
	if data == nil {
		return nil
	}

	items := make([]entity.ProposalItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.ProposalItem{
			ID:          itemM.ID,
			ProposalID:  itemM.ProposalID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
			TotalPrice:  itemM.TotalPrice,
			Comments:    itemM.Comments,
		})
	}

	return &entity.Proposal{
		ID:           data.ID,
		CompanyID:    data.CompanyID,
		CompanyName:  data.CompanyName,
		SolicitudID:  data.SolicitudID,
		Currency:     data.Currency,
		DeliveryTime: data.DeliveryTime,
		Total:        data.Total,
		Status:       entity.ProposalStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		Items:        items,
	}
}

// fromProposalDomain converts a domain Proposal entity to a GORM ProposalModel.
func fromProposalDomain(data *entity.Proposal) *model.ProposalModel {
	if data == nil {
		return nil
	}

	items := make([]model.ProposalItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.ProposalItemModel{
			ID:          item.ID,
			ProposalID:  item.ProposalID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
			Comments:    item.Comments,
		})
	}

	return &model.ProposalModel{
		ID:           data.ID,
		CompanyID:    data.CompanyID,
		CompanyName:  data.CompanyName,
		SolicitudID:  data.SolicitudID,
		Currency:     data.Currency,
		DeliveryTime: data.DeliveryTime,
		Total:        data.Total,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		Items:        items,
	}
}

func toProposalDomainSlice(models []*model.ProposalModel) []*entity.Proposal {
	proposals := make([]*entity.Proposal, 0, len(models))
	for _, proposalM := range models {
		proposals = append(proposals, toProposalDomain(proposalM))
	}

	return proposals
}
