package model

import (
	"time"
)

// SolicitudModel is the GORM-specific struct for the 'solicitudes' table.
// It represents a quotation request published by a user.
type SolicitudModel struct {
	ID            int64  `gorm:"primary_key;autoIncrement"`
	UsuarioID     string `gorm:"type:text;not null;index"`
	UsuarioNombre string `gorm:"type:text;not null"`
	Titulo        string `gorm:"type:text;not null"`
	Profesion     string `gorm:"type:text"`
	Ubicacion     string `gorm:"type:text"`
	Presupuesto   *int64
	Estado        string `gorm:"type:text;not null;default:'pending';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []SolicitudItemModel `gorm:"foreignKey:SolicitudID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SolicitudModel) TableName() string {
	return "solicitudes"
}

// SolicitudItemModel is the GORM-specific struct for the 'solicitud_items' table.
type SolicitudItemModel struct {
	ID          int64  `gorm:"primary_key;autoIncrement"`
	SolicitudID int64  `gorm:"not null;index"`
	Nombre      string `gorm:"type:text;not null"`
	Cantidad    int    `gorm:"not null;default:1"`
	Comentarios string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SolicitudItemModel) TableName() string {
	return "solicitud_items"
}
