package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"cotiza/internal/domain/entity"
)

// NotificationForEvent composes the persisted notification for a proposal
// event. Texts fall back to shorter variants when the event arrived over the
// bus and carries only the envelope fields.
func NotificationForEvent(event *ProposalEvent) *entity.Notification {
	notification := &entity.Notification{
		UsuarioID:    event.RecipientID,
		ReferenciaID: strconv.FormatInt(event.ProposalID, 10),
		Payload:      eventPayload(event),
	}

	switch event.Type {
	case EventProposalCreated:
		notification.Tipo = entity.NotificationProposalCreated
		notification.Titulo = "Nueva cotización recibida"
		if event.CompanyName != "" {
			notification.Mensaje = fmt.Sprintf("%s te ha enviado una cotización. ¡Revísala ahora!", event.CompanyName)
		} else {
			notification.Mensaje = "Has recibido una nueva cotización para tu solicitud. ¡Revísala ahora!"
		}
	case EventProposalAccepted:
		notification.Tipo = entity.NotificationProposalAccepted
		notification.Titulo = "¡Cotización aceptada!"
		if event.SolicitudTitulo != "" {
			notification.Mensaje = fmt.Sprintf("¡Felicidades! Tu cotización para '%s' ha sido aceptada. Contacta al cliente para coordinar el servicio.", event.SolicitudTitulo)
		} else {
			notification.Mensaje = "Tu cotización ha sido aceptada. Contacta al cliente para coordinar el servicio."
		}
	case EventProposalRejected:
		notification.Tipo = entity.NotificationProposalRejected
		notification.Titulo = "Cotización rechazada"
		if event.SolicitudTitulo != "" {
			notification.Mensaje = fmt.Sprintf("Tu cotización para '%s' ha sido rechazada por el cliente.", event.SolicitudTitulo)
		} else {
			notification.Mensaje = "Tu cotización ha sido rechazada por el cliente."
		}
	}

	return notification
}

func eventPayload(event *ProposalEvent) []byte {
	payload, err := json.Marshal(map[string]any{
		"proposalId":  event.ProposalID,
		"solicitudId": event.SolicitudID,
	})
	if err != nil {
		return nil
	}

	return payload
}
