package entity

// User is a contact-directory record, consumed read-only to resolve the
// email and phone of a requester or company when composing mail.
type User struct {
	ID             string `json:"id"` // External identity shared with Solicitud.UsuarioID / Proposal.CompanyID.
	Email          string `json:"email"`
	NombreCompleto string `json:"nombre_completo"`
	Nick           string `json:"nick"`
	Telefono       string `json:"telefono"`
}

// DisplayName returns the best available human-readable name.
func (u *User) DisplayName() string {
	if u.NombreCompleto != "" {
		return u.NombreCompleto
	}

	return u.Nick
}
