package model

import (
	"time"
)

// CityModel is the GORM-specific struct for the 'cities' table.
// Rows are created lazily when a new normalized location is first seen.
type CityModel struct {
	ID                 int64  `gorm:"primary_key;autoIncrement"`
	Nombre             string `gorm:"type:text;not null;uniqueIndex"`
	Codigo             string `gorm:"type:text;not null;uniqueIndex"`
	Pais               string `gorm:"type:text"`
	Activa             bool   `gorm:"not null;default:true"`
	TotalSolicitudes   int    `gorm:"not null;default:0"`
	SolicitudesActivas int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
