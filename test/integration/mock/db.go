// Package mock provides test doubles for integration tests.
package mock

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quinzena/backend/internal/integration/persistence/model"
)

// Db wraps an in-memory database carrying the ledger schema.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens a fresh in-memory database and migrates the ledger schema.
// Every call returns an isolated database, so scenarios never see each
// other's rows.
func NewDb() *Db {
	dbConn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to open in-memory database: " + err.Error())
	}

	models := []any{
		&model.MonthModel{},
		&model.PeriodModel{},
		&model.RevenueModel{},
		&model.ExpenseModel{},
		&model.InstallmentModel{},
	}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %s", err))
	}

	return &Db{DbConn: dbConn, models: models}
}

// Reset deletes every row while keeping the schema in place.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
