// Package usecase defines the application-facing interfaces of the service.
package usecase

import (
	"context"

	"cotiza/internal/domain/entity"
)

// ProposalItemInput is one quoted line of a proposal submission.
type ProposalItemInput struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice   int64  `json:"unit_price" validate:"gte=0"`
	Comments    string `json:"comments"`
}

// CreateProposalInput carries everything needed to submit a proposal.
// The total is always derived from the items; a client-sent total is ignored.
type CreateProposalInput struct {
	CompanyID    string              `json:"company_id" validate:"required"`
	CompanyName  string              `json:"company_name" validate:"required"`
	SolicitudID  int64               `json:"solicitud_id" validate:"required,gt=0"`
	Currency     string              `json:"currency" validate:"required,len=3"`
	DeliveryTime string              `json:"delivery_time"`
	Items        []ProposalItemInput `json:"items" validate:"required,min=1,dive"`
}

// ProposalUsecase defines the interface for proposal lifecycle use cases
type ProposalUsecase interface {
	// CreateProposal submits a proposal against an open solicitud, moves the
	// solicitud to quoted best-effort and dispatches a created notification
	// to the requester.
	CreateProposal(ctx context.Context, input *CreateProposalInput) (*entity.Proposal, error)

	// AcceptProposal confirms a submitted proposal, confirms its solicitud
	// and dispatches an accepted notification to the company.
	AcceptProposal(ctx context.Context, id int64) (*entity.Proposal, error)

	// RejectProposal rejects a submitted proposal and dispatches a rejected
	// notification to the company. The solicitud is left untouched.
	RejectProposal(ctx context.Context, id int64) (*entity.Proposal, error)

	// OverrideStatus is the administrative escape hatch: it sets any valid
	// status directly, without transition checks or notifications.
	OverrideStatus(ctx context.Context, id int64, status string) error

	// GetProposal retrieves a proposal with its items.
	GetProposal(ctx context.Context, id int64) (*entity.Proposal, error)

	// ListByCompany retrieves a company's proposals, newest first, paginated.
	ListByCompany(ctx context.Context, companyID string, page, size int) ([]*entity.Proposal, error)

	// ListBySolicitud retrieves every proposal against a solicitud.
	ListBySolicitud(ctx context.Context, solicitudID int64) ([]*entity.Proposal, error)

	// ListByStatus retrieves proposals in the given state, newest first, paginated.
	ListByStatus(ctx context.Context, status string, page, size int) ([]*entity.Proposal, error)
}
