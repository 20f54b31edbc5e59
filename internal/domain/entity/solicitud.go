// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// SolicitudStatus represents the lifecycle state of a service request.
type SolicitudStatus string

// Solicitud lifecycle states.
const (
	SolicitudStatusPending   SolicitudStatus = "pending"
	SolicitudStatusQuoting   SolicitudStatus = "quoting"
	SolicitudStatusQuoted    SolicitudStatus = "quoted"
	SolicitudStatusConfirmed SolicitudStatus = "confirmed"
	SolicitudStatusCompleted SolicitudStatus = "completed"
	SolicitudStatusCancelled SolicitudStatus = "cancelled"
)

// Solicitud represents a buyer's open request for quotes.
type Solicitud struct {
	ID            int64           `json:"id"`             // The unique identifier of the request.
	UsuarioID     string          `json:"usuario_id"`     // The external identity of the requester.
	UsuarioNombre string          `json:"usuario_nombre"` // Display name of the requester.
	Titulo        string          `json:"titulo"`         // Short human-readable title.
	Profesion     string          `json:"profesion"`      // Profession/category the request belongs to.
	Ubicacion     string          `json:"ubicacion"`      // Free-text location as typed by the requester.
	Presupuesto   *int64          `json:"presupuesto"`    // Optional budget in minor currency units.
	Estado        SolicitudStatus `json:"estado"`         // Current lifecycle state.
	CreatedAt     time.Time       `json:"created_at"`     // Timestamp of when the request was created.
	Items         []SolicitudItem `json:"items"`          // Ordered list of requested line items.
}

// SolicitudItem is a single requested product or service line.
type SolicitudItem struct {
	ID          int64  `json:"id"`
	SolicitudID int64  `json:"solicitud_id"`
	Nombre      string `json:"nombre"`
	Cantidad    int    `json:"cantidad"`
	Comentarios string `json:"comentarios,omitempty"`
}

// OpenForProposals reports whether companies may still submit proposals
// against this request.
func (s *Solicitud) OpenForProposals() bool {
	switch s.Estado {
	case SolicitudStatusPending, SolicitudStatusQuoting, SolicitudStatusQuoted:
		return true
	default:
		return false
	}
}
