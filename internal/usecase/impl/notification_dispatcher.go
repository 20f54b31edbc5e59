package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cotiza/config"
	"cotiza/internal/domain/entity"
	"cotiza/internal/domain/repository"
	"cotiza/internal/domain/service"
	"cotiza/internal/infra/async"
	"cotiza/internal/usecase"
)

const defaultChannelTimeout = 5 * time.Second

type notificationDispatcher struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	realtimePub      service.RealtimePublisher
	eventPub         service.EventPublisher
	mailSender       service.MailSender
	mailPool         *async.Pool
	logger           *slog.Logger
	channelTimeout   time.Duration
}

// NewNotificationDispatcher creates the fan-out pipeline for proposal events.
func NewNotificationDispatcher(
	cfg *config.Config,
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	realtimePub service.RealtimePublisher,
	eventPub service.EventPublisher,
	mailSender service.MailSender,
	mailPool *async.Pool,
) usecase.NotificationDispatcher {
	channelTimeout := defaultChannelTimeout
	if cfg.Dispatch != nil && cfg.Dispatch.ChannelTimeout > 0 {
		channelTimeout = cfg.Dispatch.ChannelTimeout
	}

	return &notificationDispatcher{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		realtimePub:      realtimePub,
		eventPub:         eventPub,
		mailSender:       mailSender,
		mailPool:         mailPool,
		logger:           logger,
		channelTimeout:   channelTimeout,
	}
}

// Dispatch fans one proposal event out over the delivery channels. The
// persisted row is the source of truth: its failure aborts the dispatch,
// every later channel only logs.
func (d *notificationDispatcher) Dispatch(ctx context.Context, event *service.ProposalEvent) (*entity.Notification, error) {
	notification := service.NotificationForEvent(event)

	if err := d.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}

	d.pushRealtime(ctx, event, notification)
	d.publishToBus(ctx, event)
	d.enqueueMail(event)

	return notification, nil
}

func (d *notificationDispatcher) pushRealtime(ctx context.Context, event *service.ProposalEvent, notification *entity.Notification) {
	pushCtx, cancel := context.WithTimeout(ctx, d.channelTimeout)
	defer cancel()

	if err := d.realtimePub.PushToUser(pushCtx, event.RecipientID, notification); err != nil {
		d.logger.Warn("Realtime push failed",
			slog.String("recipient_id", event.RecipientID),
			slog.Int64("proposal_id", event.ProposalID),
			slog.Any("error", err),
		)
	}
}

func (d *notificationDispatcher) publishToBus(ctx context.Context, event *service.ProposalEvent) {
	busCtx, cancel := context.WithTimeout(ctx, d.channelTimeout)
	defer cancel()

	if err := d.eventPub.PublishProposalEvent(busCtx, event); err != nil {
		d.logger.Warn("Event bus publish failed",
			slog.String("event", string(event.Type)),
			slog.Int64("proposal_id", event.ProposalID),
			slog.Any("error", err),
		)
	}
}

// enqueueMail hands the email channel to the bounded pool so a slow SMTP
// relay never blocks a dispatch. Rejected events are an accepted loss.
func (d *notificationDispatcher) enqueueMail(event *service.ProposalEvent) {
	if event.Type == service.EventProposalRejected {
		// The original pipeline mails created and accepted events only.
		return
	}

	job := func(jobCtx context.Context) {
		sendCtx, cancel := context.WithTimeout(jobCtx, d.channelTimeout)
		defer cancel()

		if err := d.sendMail(sendCtx, event); err != nil {
			d.logger.Warn("Email delivery failed",
				slog.String("event", string(event.Type)),
				slog.Int64("proposal_id", event.ProposalID),
				slog.Any("error", err),
			)
		}
	}

	if err := d.mailPool.Submit(job); err != nil {
		d.logger.Warn("Email queue full, dropping mail",
			slog.String("event", string(event.Type)),
			slog.Int64("proposal_id", event.ProposalID),
		)
	}
}

func (d *notificationDispatcher) sendMail(ctx context.Context, event *service.ProposalEvent) error {
	switch event.Type {
	case service.EventProposalCreated:
		cliente, err := d.userRepo.FindByID(ctx, event.RecipientID)
		if err != nil {
			return fmt.Errorf("failed to resolve requester contact: %w", err)
		}

		return d.mailSender.SendProposalReceived(ctx, &service.ProposalReceivedMail{
			To:              cliente.Email,
			ClienteNombre:   cliente.DisplayName(),
			SolicitudTitulo: event.SolicitudTitulo,
			CompanyName:     event.CompanyName,
			TotalFormatted:  formatAmount(event.Total, event.Currency),
			ProposalID:      event.ProposalID,
		})

	case service.EventProposalAccepted:
		empresa, err := d.userRepo.FindByID(ctx, event.RecipientID)
		if err != nil {
			return fmt.Errorf("failed to resolve company contact: %w", err)
		}
		cliente, err := d.userRepo.FindByID(ctx, event.RequesterID)
		if err != nil {
			return fmt.Errorf("failed to resolve requester contact: %w", err)
		}

		return d.mailSender.SendProposalAccepted(ctx, &service.ProposalAcceptedMail{
			To:              empresa.Email,
			CompanyName:     event.CompanyName,
			ClienteNombre:   cliente.DisplayName(),
			ClienteEmail:    cliente.Email,
			ClienteTelefono: cliente.Telefono,
			SolicitudTitulo: event.SolicitudTitulo,
			TotalFormatted:  formatAmount(event.Total, event.Currency),
			DeliveryTime:    event.DeliveryTime,
		})
	}

	return nil
}

// formatAmount renders a minor-unit amount as "$1.234.500 COP".
func formatAmount(total int64, currency string) string {
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}

	digits := fmt.Sprintf("%d", total)
	var grouped []byte
	for i, ch := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, ch)
	}

	formatted := "$" + sign + string(grouped)
	if currency != "" {
		formatted += " " + currency
	}

	return formatted
}
