package mail

import (
	"context"
	"log/slog"

	"cotiza/config"
	"cotiza/internal/domain/service"

	"go.uber.org/fx"
)

// noopSender is used when SMTP is not configured.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendProposalReceived(ctx context.Context, mail *service.ProposalReceivedMail) error {
	s.logger.Debug("[NoopMail] SMTP disabled, skipping",
		slog.String("to", mail.To),
	)

	return nil
}

func (s *noopSender) SendProposalAccepted(ctx context.Context, mail *service.ProposalAcceptedMail) error {
	s.logger.Debug("[NoopMail] SMTP disabled, skipping",
		slog.String("to", mail.To),
	)

	return nil
}

// SenderParams holds dependencies for MailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender creates a MailSender based on configuration. Email is an
// optional channel; without SMTP settings the pipeline runs without it.
func NewMailSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	if cfg == nil || cfg.Host == "" {
		logger.Info("SMTP not configured, using no-op mail sender")

		return &noopSender{logger: logger}, nil
	}

	return NewSMTPSender(cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.From, cfg.Timeout, logger)
}
