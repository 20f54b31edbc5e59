// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cotiza/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

type smtpSender struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPSender creates a MailSender backed by an SMTP relay.
func NewSMTPSender(host string, port int, username, password, from string, timeout time.Duration, logger *slog.Logger) (service.MailSender, error) {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(timeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpSender{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

// SendProposalReceived mails the requester that a company quoted their solicitud.
func (s *smtpSender) SendProposalReceived(ctx context.Context, mail *service.ProposalReceivedMail) error {
	subject := "¡Nueva cotización recibida!"
	body := fmt.Sprintf(
		"Hola %s,\n\n"+
			"Tienes una nueva cotización para tu solicitud.\n\n"+
			"Detalles de la cotización:\n"+
			"- Solicitud: %s\n"+
			"- Empresa: %s\n"+
			"- Valor total: %s\n\n"+
			"Ingresa a la aplicación para ver todos los detalles, comparar precios "+
			"y gestionar tu solicitud.\n\n"+
			"---\n"+
			"Este es un correo automático, por favor no responder.\n"+
			"ID de cotización: #%d",
		mail.ClienteNombre, mail.SolicitudTitulo, mail.CompanyName, mail.TotalFormatted, mail.ProposalID,
	)

	return s.send(ctx, mail.To, subject, body)
}

// SendProposalAccepted mails the company that their quote was accepted,
// including the requester's contact details so they can coordinate directly.
func (s *smtpSender) SendProposalAccepted(ctx context.Context, mail *service.ProposalAcceptedMail) error {
	telefono := mail.ClienteTelefono
	if telefono == "" {
		telefono = "No proporcionado"
	}
	entrega := mail.DeliveryTime
	if entrega == "" {
		entrega = "No especificado"
	}

	subject := "¡Tu cotización ha sido aceptada!"
	body := fmt.Sprintf(
		"¡Excelentes noticias %s!\n\n"+
			"Tu cotización para \"%s\" ha sido aceptada por el cliente.\n\n"+
			"Datos del cliente:\n"+
			"- Nombre: %s\n"+
			"- Email: %s\n"+
			"- Teléfono: %s\n\n"+
			"Detalles de la cotización:\n"+
			"- Precio: %s\n"+
			"- Tiempo de entrega: %s\n\n"+
			"Contacta al cliente lo antes posible para coordinar los detalles.\n\n"+
			"---\n"+
			"Este es un correo automático, por favor no responder.",
		mail.CompanyName, mail.SolicitudTitulo, mail.ClienteNombre, mail.ClienteEmail,
		telefono, mail.TotalFormatted, entrega,
	)

	return s.send(ctx, mail.To, subject, body)
}

func (s *smtpSender) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errors.Wrap(err, "invalid from address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid to address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	s.logger.Info("Email sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}
