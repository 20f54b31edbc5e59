package model

// UserModel is the GORM-specific struct for the 'users' table. The service
// reads it to resolve contact details; account management lives elsewhere.
type UserModel struct {
	ID             string `gorm:"type:text;primary_key"`
	Email          string `gorm:"type:text;not null"`
	NombreCompleto string `gorm:"type:text"`
	Nick           string `gorm:"type:text"`
	Telefono       string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
