package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PeriodID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description      string          `gorm:"type:varchar(255);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InstallmentCount int             `gorm:"not null"`
	Category         string          `gorm:"type:varchar(100);not null"`
	Note             string          `gorm:"type:varchar(1000)"`
	CreatedAt        time.Time       `gorm:"not null"`

	Installments []InstallmentModel `gorm:"foreignKey:ExpenseID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	expense := &entity.Expense{
		ID:               m.ID,
		PeriodID:         m.PeriodID,
		Description:      m.Description,
		TotalAmount:      m.TotalAmount,
		InstallmentCount: m.InstallmentCount,
		Category:         m.Category,
		Note:             m.Note,
		CreatedAt:        m.CreatedAt,
	}
	for i := range m.Installments {
		expense.Installments = append(expense.Installments, m.Installments[i].ToEntity())
	}
	return expense
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
// The entity's installments are converted along with it so gorm persists
// them in the same insert.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	m := &ExpenseModel{
		ID:               expense.ID,
		PeriodID:         expense.PeriodID,
		Description:      expense.Description,
		TotalAmount:      expense.TotalAmount,
		InstallmentCount: expense.InstallmentCount,
		Category:         expense.Category,
		Note:             expense.Note,
		CreatedAt:        expense.CreatedAt,
	}
	for _, inst := range expense.Installments {
		m.Installments = append(m.Installments, *InstallmentFromEntity(inst))
	}
	return m
}
