package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cotiza/config"
	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/service"
	mockRepo "cotiza/internal/mocks/repository"
	mockSvc "cotiza/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockRepo.MockNotificationRepository, *mockSvc.MockRealtimePublisher) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	realtimePub := mockSvc.NewMockRealtimePublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: logger,

		NotificationRepo: notificationRepo,
		RealtimePub:      realtimePub,
	})

	return handler, notificationRepo, realtimePub
}

func pushRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func envelopeBody(t *testing.T, event *service.ProposalEvent) string {
	data, err := event.MarshalEnvelope()
	require.NoError(t, err)

	msg := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(data),
			"messageId": "7",
		},
		"subscription": "projects/local/subscriptions/proposal-events-sub",
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestPushHandler_HandlePush_PersistsAndPushes(t *testing.T) {
	handler, notificationRepo, realtimePub := createTestPushHandler(t)

	event := &service.ProposalEvent{
		Type:        service.EventProposalAccepted,
		ProposalID:  7,
		SolicitudID: 42,
		RecipientID: "empresa-1",
		CompanyName: "Transportes Andinos",
		OccurredAt:  time.Now(),
	}

	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, n *entity.Notification) error {
		assert.Equal(t, "empresa-1", n.UsuarioID)
		assert.Equal(t, entity.NotificationProposalAccepted, n.Tipo)
		assert.Equal(t, "¡Cotización aceptada!", n.Titulo)

		return nil
	})
	realtimePub.EXPECT().PushToUser(mock.Anything, "empresa-1", mock.Anything).Return(nil)

	c, rec := pushRequest(t, envelopeBody(t, event))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StoreFailureTriggersRetry(t *testing.T) {
	handler, notificationRepo, _ := createTestPushHandler(t)

	event := &service.ProposalEvent{
		Type:        service.EventProposalCreated,
		ProposalID:  7,
		SolicitudID: 42,
		RecipientID: "cliente-1",
		OccurredAt:  time.Now(),
	}

	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	c, rec := pushRequest(t, envelopeBody(t, event))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_RealtimeFailureStillAcks(t *testing.T) {
	handler, notificationRepo, realtimePub := createTestPushHandler(t)

	event := &service.ProposalEvent{
		Type:        service.EventProposalRejected,
		ProposalID:  7,
		SolicitudID: 42,
		RecipientID: "empresa-1",
		OccurredAt:  time.Now(),
	}

	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	realtimePub.EXPECT().PushToUser(mock.Anything, "empresa-1", mock.Anything).Return(errors.New("fcm unavailable"))

	c, rec := pushRequest(t, envelopeBody(t, event))

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_UnknownEventIsAcked(t *testing.T) {
	handler, _, _ := createTestPushHandler(t)

	payload := base64.StdEncoding.EncodeToString([]byte(`{"event":"proposal_archived","proposalId":7}`))
	body := `{"message":{"data":"` + payload + `","messageId":"7"},"subscription":"s"}`

	c, rec := pushRequest(t, body)

	// Unknown events are acked so Pub/Sub never redelivers them; no row is
	// written.
	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler, _, _ := createTestPushHandler(t)

	c, rec := pushRequest(t, `{"message":{"data":"!!not-base64!!","messageId":"7"},"subscription":"s"}`)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEnvelopeIsAcked(t *testing.T) {
	handler, _, _ := createTestPushHandler(t)

	payload := base64.StdEncoding.EncodeToString([]byte(`{not json`))
	body := `{"message":{"data":"` + payload + `","messageId":"7"},"subscription":"s"}`

	c, rec := pushRequest(t, body)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
