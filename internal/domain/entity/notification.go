package entity

import (
	"encoding/json"
	"time"
)

// NotificationType tags the event that produced a notification.
type NotificationType string

// Known notification types. The set is closed: the dispatcher switches
// exhaustively over it, so adding a type is a compile-visible change.
const (
	NotificationProposalCreated  NotificationType = "proposal_created"
	NotificationProposalAccepted NotificationType = "proposal_accepted"
	NotificationProposalRejected NotificationType = "proposal_rejected"
)

// Notification is a persisted, per-user notification record. It is the
// source of truth for whether a notification happened; realtime push and
// email are best-effort copies of it.
type Notification struct {
	ID           int64            `json:"id"`
	UsuarioID    string           `json:"usuario_id"`              // Recipient identity.
	Tipo         NotificationType `json:"tipo"`                    // Event type tag.
	ReferenciaID string           `json:"referencia_id,omitempty"` // Optional reference, e.g. the proposal id.
	Titulo       string           `json:"titulo"`
	Mensaje      string           `json:"mensaje"`
	Payload      json.RawMessage  `json:"payload,omitempty"` // Opaque payload for client-side deep linking.
	Leida        bool             `json:"leida"`
	CreatedAt    time.Time        `json:"created_at"`
}
