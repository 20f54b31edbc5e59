// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cotiza/internal/domain/entity"
)

// Domain-specific errors for proposal persistence.
var (
	// ErrProposalNotFound is returned when a proposal is not found.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrDuplicateProposal is returned when a company already has a proposal
	// on the same solicitud. Raised both by the existence pre-check and by
	// the backing unique index when concurrent submissions race.
	ErrDuplicateProposal = errors.New("company already proposed on this solicitud")
)

// MaxPageSize caps the page size of paginated proposal listings.
const MaxPageSize = 100

// NormalizePage sanitizes paging inputs: a negative page resets to the
// first page, a non-positive or oversized size falls back to MaxPageSize.
func NormalizePage(page, size int) (int, int) {
	if size <= 0 || size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 0 {
		page = 0
	}

	return page, size
}

// ProposalRepository defines the interface for proposal-related database operations.
type ProposalRepository interface {
	// Create persists a proposal header and its items. Items are only ever
	// written after the header so they are never visible without a parent.
	// Returns ErrDuplicateProposal when the (companyID, solicitudID) unique
	// index rejects the insert.
	Create(ctx context.Context, proposal *entity.Proposal) error

	// ExistsByCompanyAndSolicitud reports whether the company already has a
	// proposal on the given solicitud.
	ExistsByCompanyAndSolicitud(ctx context.Context, companyID string, solicitudID int64) (bool, error)

	// FindByID retrieves a proposal with its items eagerly loaded.
	FindByID(ctx context.Context, id int64) (*entity.Proposal, error)

	// FindByCompany retrieves proposals of a company, newest first, paginated.
	FindByCompany(ctx context.Context, companyID string, page, size int) ([]*entity.Proposal, error)

	// FindBySolicitud retrieves all proposals submitted against a solicitud.
	FindBySolicitud(ctx context.Context, solicitudID int64) ([]*entity.Proposal, error)

	// FindByStatus retrieves proposals in the given state, newest first, paginated.
	FindByStatus(ctx context.Context, status entity.ProposalStatus, page, size int) ([]*entity.Proposal, error)

	// UpdateStatus sets the proposal status.
	UpdateStatus(ctx context.Context, id int64, status entity.ProposalStatus) error
}
