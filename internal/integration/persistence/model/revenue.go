package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
)

// RevenueModel represents the revenues table in the database.
type RevenueModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PeriodID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time       `gorm:"not null"`

	Period *PeriodModel `gorm:"foreignKey:PeriodID;references:ID"`
}

// TableName returns the table name for the RevenueModel.
func (RevenueModel) TableName() string {
	return "revenues"
}

// ToEntity converts a RevenueModel to a domain Revenue entity.
func (m *RevenueModel) ToEntity() *entity.Revenue {
	return &entity.Revenue{
		ID:          m.ID,
		PeriodID:    m.PeriodID,
		Description: m.Description,
		Amount:      m.Amount,
		Kind:        entity.RevenueKind(m.Kind),
		CreatedAt:   m.CreatedAt,
	}
}

// RevenueFromEntity creates a RevenueModel from a domain Revenue entity.
func RevenueFromEntity(revenue *entity.Revenue) *RevenueModel {
	return &RevenueModel{
		ID:          revenue.ID,
		PeriodID:    revenue.PeriodID,
		Description: revenue.Description,
		Amount:      revenue.Amount,
		Kind:        string(revenue.Kind),
		CreatedAt:   revenue.CreatedAt,
	}
}
