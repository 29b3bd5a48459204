package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quinzena/backend/internal/domain/entity"
)

// InstallmentModel represents the installments table in the database.
type InstallmentModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ExpenseID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_installments_expense_sequence"`
	PeriodID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	SequenceNumber   int              `gorm:"not null;uniqueIndex:idx_installments_expense_sequence"`
	ScheduledAmount  decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	DueDate          time.Time        `gorm:"type:date;not null"`
	Paid             bool             `gorm:"not null;default:false"`
	ActualPaidAmount *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PaidDate         *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`

	Expense *ExpenseModel `gorm:"foreignKey:ExpenseID;references:ID"`
	Period  *PeriodModel  `gorm:"foreignKey:PeriodID;references:ID"`
}

// TableName returns the table name for the InstallmentModel.
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToEntity converts an InstallmentModel to a domain Installment entity.
func (m *InstallmentModel) ToEntity() *entity.Installment {
	return &entity.Installment{
		ID:               m.ID,
		ExpenseID:        m.ExpenseID,
		PeriodID:         m.PeriodID,
		SequenceNumber:   m.SequenceNumber,
		ScheduledAmount:  m.ScheduledAmount,
		DueDate:          m.DueDate,
		Paid:             m.Paid,
		ActualPaidAmount: m.ActualPaidAmount,
		PaidDate:         m.PaidDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// InstallmentFromEntity creates an InstallmentModel from a domain Installment entity.
func InstallmentFromEntity(installment *entity.Installment) *InstallmentModel {
	return &InstallmentModel{
		ID:               installment.ID,
		ExpenseID:        installment.ExpenseID,
		PeriodID:         installment.PeriodID,
		SequenceNumber:   installment.SequenceNumber,
		ScheduledAmount:  installment.ScheduledAmount,
		DueDate:          installment.DueDate,
		Paid:             installment.Paid,
		ActualPaidAmount: installment.ActualPaidAmount,
		PaidDate:         installment.PaidDate,
		CreatedAt:        installment.CreatedAt,
		UpdatedAt:        installment.UpdatedAt,
	}
}
