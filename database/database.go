package database

import (
	"fmt"
	"time"

	"github.com/accredia/naac_services/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens a MySQL connection pool. The caller owns the handle and passes
// it to whoever needs it; nothing in this package keeps a global reference.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// DSN builds a MySQL connection string from individual settings.
func DSN(user, password, host, port, name string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Assessment{},
		&models.DemoRequest{},
		&models.ContactMessage{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
