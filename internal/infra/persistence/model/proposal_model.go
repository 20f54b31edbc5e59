package model

import (
	"time"
)

// ProposalModel is the GORM-specific struct for the 'proposals' table.
// The composite unique index closes the race between the duplicate
// pre-check and the insert: concurrent submissions for the same
// (company, solicitud) pair collapse into one row at the database.
type ProposalModel struct {
	ID           int64  `gorm:"primary_key;autoIncrement"`
	CompanyID    string `gorm:"type:text;not null;uniqueIndex:idx_proposals_company_solicitud;index"`
	CompanyName  string `gorm:"type:text;not null"`
	SolicitudID  int64  `gorm:"not null;uniqueIndex:idx_proposals_company_solicitud;index"`
	Currency     string `gorm:"type:text;not null"`
	DeliveryTime string `gorm:"type:text"`
	Total        int64  `gorm:"not null;default:0"`
	Status       string `gorm:"type:text;not null;default:'submitted';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []ProposalItemModel `gorm:"foreignKey:ProposalID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProposalModel) TableName() string {
	return "proposals"
}

// ProposalItemModel is the GORM-specific struct for the 'proposal_items' table.
type ProposalItemModel struct {
	ID          int64  `gorm:"primary_key;autoIncrement"`
	ProposalID  int64  `gorm:"not null;index"`
	ProductName string `gorm:"type:text;not null"`
	Quantity    int    `gorm:"not null;default:1"`
	UnitPrice   int64  `gorm:"not null;default:0"`
	TotalPrice  int64  `gorm:"not null;default:0"`
	Comments    string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ProposalItemModel) TableName() string {
	return "proposal_items"
}
