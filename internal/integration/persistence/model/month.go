// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/quinzena/backend/internal/domain/entity"
)

// MonthModel represents the months table in the database.
type MonthModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_months_owner_year_month"`
	Year      int       `gorm:"not null;uniqueIndex:idx_months_owner_year_month"`
	Month     int       `gorm:"not null;uniqueIndex:idx_months_owner_year_month"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Periods []PeriodModel `gorm:"foreignKey:MonthID;references:ID"`
}

// TableName returns the table name for the MonthModel.
func (MonthModel) TableName() string {
	return "months"
}

// ToEntity converts a MonthModel to a domain Month entity.
func (m *MonthModel) ToEntity() *entity.Month {
	month := &entity.Month{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Year:      m.Year,
		Month:     m.Month,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Periods {
		month.Periods = append(month.Periods, m.Periods[i].ToEntity())
	}
	return month
}

// MonthFromEntity creates a MonthModel from a domain Month entity.
func MonthFromEntity(month *entity.Month) *MonthModel {
	m := &MonthModel{
		ID:        month.ID,
		OwnerID:   month.OwnerID,
		Year:      month.Year,
		Month:     month.Month,
		CreatedAt: month.CreatedAt,
		UpdatedAt: month.UpdatedAt,
	}
	for _, p := range month.Periods {
		m.Periods = append(m.Periods, *PeriodFromEntity(p))
	}
	return m
}
