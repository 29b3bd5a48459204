package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
)

// PeriodModel represents the periods table in the database.
// HalfIndex materializes the kind's position within the month (0 for the
// first half, 1 for the second) so the global period order
// (year, month, half_index) is expressible in plain SQL.
type PeriodModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MonthID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind           string          `gorm:"type:varchar(20);not null"`
	HalfIndex      int             `gorm:"not null"`
	CarriedBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Month        *MonthModel        `gorm:"foreignKey:MonthID;references:ID"`
	Revenues     []RevenueModel     `gorm:"foreignKey:PeriodID;references:ID"`
	Installments []InstallmentModel `gorm:"foreignKey:PeriodID;references:ID"`
}

// TableName returns the table name for the PeriodModel.
func (PeriodModel) TableName() string {
	return "periods"
}

// ToEntity converts a PeriodModel to a domain Period entity.
func (m *PeriodModel) ToEntity() *entity.Period {
	period := &entity.Period{
		ID:             m.ID,
		MonthID:        m.MonthID,
		Kind:           entity.PeriodKind(m.Kind),
		CarriedBalance: m.CarriedBalance,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for i := range m.Revenues {
		period.Revenues = append(period.Revenues, m.Revenues[i].ToEntity())
	}
	for i := range m.Installments {
		period.Installments = append(period.Installments, m.Installments[i].ToEntity())
	}
	return period
}

// PeriodFromEntity creates a PeriodModel from a domain Period entity.
func PeriodFromEntity(period *entity.Period) *PeriodModel {
	return &PeriodModel{
		ID:             period.ID,
		MonthID:        period.MonthID,
		Kind:           string(period.Kind),
		HalfIndex:      period.Kind.Ordinal(),
		CarriedBalance: period.CarriedBalance,
		CreatedAt:      period.CreatedAt,
		UpdatedAt:      period.UpdatedAt,
	}
}
