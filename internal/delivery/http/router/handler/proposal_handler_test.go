package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cotiza/internal/delivery/http/validator"
	"cotiza/internal/domain/entity"
	domainerrors "cotiza/internal/domain/errors"
	"cotiza/internal/domain/repository"
	mockUC "cotiza/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newProposalHandler(t *testing.T) (*ProposalHandler, *mockUC.MockProposalUsecase) {
	uc := mockUC.NewMockProposalUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewProposalHandler(uc, logger), uc
}

func TestProposalHandler_Create(t *testing.T) {
	handler, uc := newProposalHandler(t)

	uc.EXPECT().CreateProposal(mock.Anything, mock.Anything).Return(&entity.Proposal{
		ID:     7,
		Status: entity.ProposalStatusSubmitted,
	}, nil)

	body := `{
		"company_id": "empresa-1",
		"company_name": "Transportes Andinos",
		"solicitud_id": 42,
		"currency": "COP",
		"items": [{"product_name": "Camión", "quantity": 1, "unit_price": 100000}]
	}`
	c, rec := newTestContext(http.MethodPost, "/api/proposals", body)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestProposalHandler_Create_MissingItems(t *testing.T) {
	handler, uc := newProposalHandler(t)

	body := `{
		"company_id": "empresa-1",
		"company_name": "Transportes Andinos",
		"solicitud_id": 42,
		"currency": "COP",
		"items": []
	}`
	c, _ := newTestContext(http.MethodPost, "/api/proposals", body)

	err := handler.Create(c)

	// Validation rejects the empty items list before the usecase runs.
	require.Error(t, err)
	uc.AssertNotCalled(t, "CreateProposal", mock.Anything, mock.Anything)
}

func TestProposalHandler_Create_Duplicate(t *testing.T) {
	handler, uc := newProposalHandler(t)

	uc.EXPECT().CreateProposal(mock.Anything, mock.Anything).Return(nil, repository.ErrDuplicateProposal)

	body := `{
		"company_id": "empresa-1",
		"company_name": "Transportes Andinos",
		"solicitud_id": 42,
		"currency": "COP",
		"items": [{"product_name": "Camión", "quantity": 1, "unit_price": 100000}]
	}`
	c, rec := newTestContext(http.MethodPost, "/api/proposals", body)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_PROPOSAL")
}

func TestProposalHandler_Accept(t *testing.T) {
	handler, uc := newProposalHandler(t)

	uc.EXPECT().AcceptProposal(mock.Anything, int64(7)).Return(&entity.Proposal{
		ID:     7,
		Status: entity.ProposalStatusConfirmed,
	}, nil)

	c, rec := newTestContext(http.MethodPut, "/api/proposals/7/accept", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestProposalHandler_Accept_AlreadyTerminal(t *testing.T) {
	handler, uc := newProposalHandler(t)

	uc.EXPECT().AcceptProposal(mock.Anything, int64(7)).Return(nil, domainerrors.ErrInvalidTransition)

	c, rec := newTestContext(http.MethodPut, "/api/proposals/7/accept", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TRANSITION")
}

func TestProposalHandler_Accept_BadID(t *testing.T) {
	handler, uc := newProposalHandler(t)

	c, rec := newTestContext(http.MethodPut, "/api/proposals/abc/accept", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Accept(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "AcceptProposal", mock.Anything, mock.Anything)
}

func TestProposalHandler_Get_NotFound(t *testing.T) {
	handler, uc := newProposalHandler(t)

	uc.EXPECT().GetProposal(mock.Anything, int64(99)).Return(nil, repository.ErrProposalNotFound)

	c, rec := newTestContext(http.MethodGet, "/api/proposals/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROPOSAL_NOT_FOUND")
}

func TestProposalHandler_ListByCompany_Pagination(t *testing.T) {
	handler, uc := newProposalHandler(t)

	uc.EXPECT().ListByCompany(mock.Anything, "empresa-1", 2, 50).Return([]*entity.Proposal{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/proposals/company/empresa-1?page=2&size=50", "")
	c.SetParamNames("companyId")
	c.SetParamValues("empresa-1")

	require.NoError(t, handler.ListByCompany(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProposalHandler_OverrideStatus(t *testing.T) {
	handler, uc := newProposalHandler(t)

	uc.EXPECT().OverrideStatus(mock.Anything, int64(7), "confirmed").Return(nil)

	c, rec := newTestContext(http.MethodPatch, "/api/proposals/7/status", `{"status":"confirmed"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.OverrideStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
