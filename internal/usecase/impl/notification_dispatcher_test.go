package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cotiza/config"
	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/service"
	"cotiza/internal/infra/async"
	mockRepo "cotiza/internal/mocks/repository"
	mockSvc "cotiza/internal/mocks/service"
	"cotiza/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatcher(t *testing.T) (
	usecase.NotificationDispatcher,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockRealtimePublisher,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockMailSender,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	realtimePub := mockSvc.NewMockRealtimePublisher(t)
	eventPub := mockSvc.NewMockEventPublisher(t)
	mailSender := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pool := async.NewPool(logger, 1, 8)
	t.Cleanup(pool.Close)

	dispatcher := NewNotificationDispatcher(
		&config.Config{},
		logger,
		notificationRepo,
		userRepo,
		realtimePub,
		eventPub,
		mailSender,
		pool,
	)

	return dispatcher, notificationRepo, userRepo, realtimePub, eventPub, mailSender
}

func createdEvent() *service.ProposalEvent {
	return &service.ProposalEvent{
		Type:            service.EventProposalCreated,
		ProposalID:      7,
		SolicitudID:     42,
		RecipientID:     "cliente-1",
		CompanyName:     "Transportes Andinos",
		SolicitudTitulo: "Mudanza de apartamento",
		Total:           1234500,
		Currency:        "COP",
		OccurredAt:      time.Now(),
	}
}

func TestNotificationDispatcher_Dispatch_PersistsAndFansOut(t *testing.T) {
	dispatcher, notificationRepo, userRepo, realtimePub, eventPub, mailSender := createTestDispatcher(t)

	ctx := context.Background()
	event := createdEvent()

	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, n *entity.Notification) error {
		assert.Equal(t, "cliente-1", n.UsuarioID)
		assert.Equal(t, entity.NotificationProposalCreated, n.Tipo)
		assert.Equal(t, "Nueva cotización recibida", n.Titulo)
		assert.Equal(t, "Transportes Andinos te ha enviado una cotización. ¡Revísala ahora!", n.Mensaje)
		n.ID = 11

		return nil
	})
	realtimePub.EXPECT().PushToUser(mock.Anything, "cliente-1", mock.Anything).Return(nil)
	eventPub.EXPECT().PublishProposalEvent(mock.Anything, event).Return(nil)

	mailed := make(chan *service.ProposalReceivedMail, 1)
	userRepo.EXPECT().FindByID(mock.Anything, "cliente-1").Return(&entity.User{
		ID:             "cliente-1",
		Email:          "cliente@example.com",
		NombreCompleto: "Ana Gómez",
	}, nil)
	mailSender.EXPECT().SendProposalReceived(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, mail *service.ProposalReceivedMail) error {
		mailed <- mail

		return nil
	})

	notification, err := dispatcher.Dispatch(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, int64(11), notification.ID)

	select {
	case mail := <-mailed:
		assert.Equal(t, "cliente@example.com", mail.To)
		assert.Equal(t, "Ana Gómez", mail.ClienteNombre)
		assert.Equal(t, "$1.234.500 COP", mail.TotalFormatted)
	case <-time.After(2 * time.Second):
		t.Fatal("mail job never ran")
	}
}

func TestNotificationDispatcher_Dispatch_PersistFailureAborts(t *testing.T) {
	dispatcher, notificationRepo, _, _, _, _ := createTestDispatcher(t)

	ctx := context.Background()
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := dispatcher.Dispatch(ctx, createdEvent())

	// No realtime, bus or mail expectations: a failed persist stops the
	// whole fan-out.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist notification")
}

func TestNotificationDispatcher_Dispatch_ChannelFailuresAreSwallowed(t *testing.T) {
	dispatcher, notificationRepo, userRepo, realtimePub, eventPub, mailSender := createTestDispatcher(t)

	ctx := context.Background()
	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	realtimePub.EXPECT().PushToUser(mock.Anything, "cliente-1", mock.Anything).Return(errors.New("fcm unavailable"))
	eventPub.EXPECT().PublishProposalEvent(mock.Anything, mock.Anything).Return(errors.New("topic gone"))

	// The mail job dies resolving the contact, so the sender is never hit.
	userRepo.EXPECT().FindByID(mock.Anything, "cliente-1").Return(nil, errors.New("user gone"))

	notification, err := dispatcher.Dispatch(ctx, createdEvent())

	require.NoError(t, err)
	assert.NotNil(t, notification)
	mailSender.AssertNotCalled(t, "SendProposalReceived", mock.Anything, mock.Anything)
}

func TestNotificationDispatcher_Dispatch_RejectedSkipsMail(t *testing.T) {
	dispatcher, notificationRepo, _, realtimePub, eventPub, _ := createTestDispatcher(t)

	ctx := context.Background()
	event := &service.ProposalEvent{
		Type:            service.EventProposalRejected,
		ProposalID:      7,
		SolicitudID:     42,
		RecipientID:     "empresa-1",
		SolicitudTitulo: "Mudanza de apartamento",
	}

	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, n *entity.Notification) error {
		assert.Equal(t, entity.NotificationProposalRejected, n.Tipo)
		assert.Equal(t, "Cotización rechazada", n.Titulo)
		assert.Equal(t, "Tu cotización para 'Mudanza de apartamento' ha sido rechazada por el cliente.", n.Mensaje)

		return nil
	})
	realtimePub.EXPECT().PushToUser(mock.Anything, "empresa-1", mock.Anything).Return(nil)
	eventPub.EXPECT().PublishProposalEvent(mock.Anything, event).Return(nil)

	// No mail sender or user repo expectations: rejected events are never
	// mailed.
	_, err := dispatcher.Dispatch(ctx, event)

	require.NoError(t, err)
}

func TestNotificationDispatcher_Dispatch_AcceptedMailsRequesterContact(t *testing.T) {
	dispatcher, notificationRepo, userRepo, realtimePub, eventPub, mailSender := createTestDispatcher(t)

	ctx := context.Background()
	event := &service.ProposalEvent{
		Type:            service.EventProposalAccepted,
		ProposalID:      7,
		SolicitudID:     42,
		RecipientID:     "empresa-1",
		RequesterID:     "cliente-1",
		CompanyName:     "Transportes Andinos",
		SolicitudTitulo: "Mudanza de apartamento",
		Total:           380000,
		Currency:        "COP",
		DeliveryTime:    "3 días",
	}

	notificationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	realtimePub.EXPECT().PushToUser(mock.Anything, "empresa-1", mock.Anything).Return(nil)
	eventPub.EXPECT().PublishProposalEvent(mock.Anything, event).Return(nil)

	userRepo.EXPECT().FindByID(mock.Anything, "empresa-1").Return(&entity.User{
		ID:    "empresa-1",
		Email: "ventas@andinos.co",
	}, nil)
	userRepo.EXPECT().FindByID(mock.Anything, "cliente-1").Return(&entity.User{
		ID:             "cliente-1",
		Email:          "cliente@example.com",
		NombreCompleto: "Ana Gómez",
		Telefono:       "3001234567",
	}, nil)

	mailed := make(chan *service.ProposalAcceptedMail, 1)
	mailSender.EXPECT().SendProposalAccepted(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, mail *service.ProposalAcceptedMail) error {
		mailed <- mail

		return nil
	})

	_, err := dispatcher.Dispatch(ctx, event)
	require.NoError(t, err)

	select {
	case mail := <-mailed:
		assert.Equal(t, "ventas@andinos.co", mail.To)
		assert.Equal(t, "Ana Gómez", mail.ClienteNombre)
		assert.Equal(t, "3001234567", mail.ClienteTelefono)
		assert.Equal(t, "3 días", mail.DeliveryTime)
	case <-time.After(2 * time.Second):
		t.Fatal("mail job never ran")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		total    int64
		currency string
		want     string
	}{
		{1234500, "COP", "$1.234.500 COP"},
		{380000, "COP", "$380.000 COP"},
		{999, "COP", "$999 COP"},
		{0, "COP", "$0 COP"},
		{-234, "COP", "$-234 COP"},
		{1500, "", "$1.500"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatAmount(tc.total, tc.currency), "total %d", tc.total)
	}
}
