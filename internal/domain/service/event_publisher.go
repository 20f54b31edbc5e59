// Package service defines interfaces for infrastructure services consumed
// by the use case layer.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// ProposalEventType tags a proposal lifecycle event. The set is closed;
// the dispatcher and the bus consumer switch exhaustively over it.
type ProposalEventType string

// Proposal lifecycle event types, as they appear in the wire envelope.
const (
	EventProposalCreated  ProposalEventType = "proposal_created"
	EventProposalAccepted ProposalEventType = "proposal_accepted"
	EventProposalRejected ProposalEventType = "proposal_rejected"
)

// ErrUnknownEventType is returned when an envelope carries an event tag
// outside the closed set.
var ErrUnknownEventType = errors.New("unknown proposal event type")

// ProposalEvent is a proposal lifecycle event fanned out by the dispatcher.
// RecipientID is the user the notification is addressed to: the requester
// for created events, the company for accepted/rejected events. It doubles
// as the bus ordering key so one recipient's events stay ordered.
type ProposalEvent struct {
	Type            ProposalEventType
	ProposalID      int64
	SolicitudID     int64
	RecipientID     string
	CompanyName     string
	SolicitudTitulo string
	RequesterID     string // Set on accepted events; the company is mailed the requester's contact details.
	Total           int64  // Minor currency units.
	Currency        string
	DeliveryTime    string
	OccurredAt      time.Time
}

// eventEnvelope is the tagged JSON wire format published to the event bus.
type eventEnvelope struct {
	Event       string `json:"event"`
	ProposalID  int64  `json:"proposalId"`
	SolicitudID int64  `json:"solicitudId"`
	UsuarioID   string `json:"usuarioId"`
	CompanyName string `json:"companyName,omitempty"`
	Timestamp   int64  `json:"timestamp"` // Epoch milliseconds.
}

// MarshalEnvelope serializes the event into the bus wire format.
func (e *ProposalEvent) MarshalEnvelope() ([]byte, error) {
	occurred := e.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	data, err := json.Marshal(eventEnvelope{
		Event:       string(e.Type),
		ProposalID:  e.ProposalID,
		SolicitudID: e.SolicitudID,
		UsuarioID:   e.RecipientID,
		CompanyName: e.CompanyName,
		Timestamp:   occurred.UnixMilli(),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// UnmarshalEnvelope parses a bus wire envelope back into an event.
// Envelopes with an unknown event tag fail with ErrUnknownEventType so
// consumers can drop them without retrying.
func UnmarshalEnvelope(data []byte) (*ProposalEvent, error) {
	var env eventEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.WithStack(err)
	}

	eventType := ProposalEventType(env.Event)
	switch eventType {
	case EventProposalCreated, EventProposalAccepted, EventProposalRejected:
	default:
		return nil, errors.Wrapf(ErrUnknownEventType, "event %q", env.Event)
	}

	return &ProposalEvent{
		Type:        eventType,
		ProposalID:  env.ProposalID,
		SolicitudID: env.SolicitudID,
		RecipientID: env.UsuarioID,
		CompanyName: env.CompanyName,
		OccurredAt:  time.UnixMilli(env.Timestamp),
	}, nil
}

// EventPublisher is the pluggable event sink mirroring dispatched events
// onto a durable bus. The no-op implementation keeps the dispatcher logic
// identical when the bus is disabled.
type EventPublisher interface {
	// PublishProposalEvent publishes an event keyed by recipient id.
	PublishProposalEvent(ctx context.Context, event *ProposalEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
