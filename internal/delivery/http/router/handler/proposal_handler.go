// Package handler contains the Echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cotiza/internal/delivery/http/response"
	"cotiza/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProposalHandler holds dependencies for proposal-related handlers
type ProposalHandler struct {
	uc     usecase.ProposalUsecase
	logger *slog.Logger
}

// NewProposalHandler is the constructor for ProposalHandler
func NewProposalHandler(uc usecase.ProposalUsecase, logger *slog.Logger) *ProposalHandler {
	return &ProposalHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles submitting a new proposal against a solicitud
func (h *ProposalHandler) Create(c echo.Context) error {
	var req usecase.CreateProposalInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid proposal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	proposal, err := h.uc.CreateProposal(c.Request().Context(), &req)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Created(c, proposal, "Proposal submitted successfully")
}

// Get handles retrieving one proposal with its items
func (h *ProposalHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	proposal, err := h.uc.GetProposal(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, proposal, "")
}

// Accept handles confirming a proposal on behalf of the requester
func (h *ProposalHandler) Accept(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	proposal, err := h.uc.AcceptProposal(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, proposal, "Proposal accepted successfully")
}

// Reject handles rejecting a proposal on behalf of the requester
func (h *ProposalHandler) Reject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	proposal, err := h.uc.RejectProposal(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, proposal, "Proposal rejected successfully")
}

// OverrideStatusRequest represents the request body for the status override
type OverrideStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OverrideStatus handles the administrative status override
func (h *ProposalHandler) OverrideStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req OverrideStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.OverrideStatus(c.Request().Context(), id, req.Status); err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Proposal status updated successfully")
}

// ListByCompany handles retrieving a company's proposals, paginated
func (h *ProposalHandler) ListByCompany(c echo.Context) error {
	companyID := c.Param("companyId")
	if companyID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "companyId is required")
	}

	page, size := parsePagination(c)
	proposals, err := h.uc.ListByCompany(c.Request().Context(), companyID, page, size)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, proposals, "")
}

// ListBySolicitud handles retrieving every proposal against a solicitud
func (h *ProposalHandler) ListBySolicitud(c echo.Context) error {
	solicitudID, err := parseID(c, "solicitudId")
	if err != nil {
		return err
	}

	proposals, err := h.uc.ListBySolicitud(c.Request().Context(), solicitudID)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, proposals, "")
}

// ListByStatus handles retrieving proposals in one lifecycle state, paginated
func (h *ProposalHandler) ListByStatus(c echo.Context) error {
	status := c.Param("status")
	if status == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "status is required")
	}

	page, size := parsePagination(c)
	proposals, err := h.uc.ListByStatus(c.Request().Context(), status, page, size)
	if err != nil {
		return handleDomainError(c, err)
	}

	return response.Success(c, http.StatusOK, proposals, "")
}

// parseID extracts a positive numeric path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.BadRequest(c, "VALIDATION_ERROR", name+" must be a positive integer")
	}

	return id, nil
}

// parsePagination reads page and size query parameters with safe defaults.
// The repository layer clamps the size to its own maximum.
func parsePagination(c echo.Context) (int, int) {
	page := 0
	size := 20

	if pageStr := c.QueryParam("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if sizeStr := c.QueryParam("size"); sizeStr != "" {
		if parsed, err := strconv.Atoi(sizeStr); err == nil && parsed > 0 {
			size = parsed
		}
	}

	return page, size
}
