package model

import (
	"time"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It is the durable record behind every realtime push and email.
type NotificationModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	UsuarioID    string    `gorm:"type:text;not null;index;index:idx_notifications_usuario_leida,priority:1;index:idx_notifications_usuario_created,priority:1"`
	Tipo         string    `gorm:"type:text;not null"`
	ReferenciaID string    `gorm:"type:text"`
	Titulo       string    `gorm:"type:text;not null"`
	Mensaje      string    `gorm:"type:text;not null"`
	Payload      []byte    `gorm:"type:jsonb"`
	Leida        bool      `gorm:"not null;default:false;index:idx_notifications_usuario_leida,priority:2"`
	CreatedAt    time.Time `gorm:"index:idx_notifications_usuario_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
