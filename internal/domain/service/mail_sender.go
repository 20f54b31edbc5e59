package service

import "context"

// ProposalReceivedMail carries everything needed to mail a requester about
// a newly received quote.
type ProposalReceivedMail struct {
	To              string
	ClienteNombre   string
	SolicitudTitulo string
	CompanyName     string
	TotalFormatted  string
	ProposalID      int64
}

// ProposalAcceptedMail carries everything needed to mail a company whose
// quote was accepted, including the requester's contact details.
type ProposalAcceptedMail struct {
	To              string
	CompanyName     string
	ClienteNombre   string
	ClienteEmail    string
	ClienteTelefono string
	SolicitudTitulo string
	TotalFormatted  string
	DeliveryTime    string
}

// MailSender composes and sends transactional mail. Implementations must
// bound their send time; a slow transport is a channel failure, not a
// pipeline stall.
type MailSender interface {
	// SendProposalReceived mails the requester that a company quoted their solicitud.
	SendProposalReceived(ctx context.Context, mail *ProposalReceivedMail) error

	// SendProposalAccepted mails the company that their quote was accepted.
	SendProposalAccepted(ctx context.Context, mail *ProposalAcceptedMail) error
}
