package database

import (
	"fmt"
	"os"
	"time"

	"github.com/pfportal/employer-api/internal/models"
	pkgLogger "github.com/pfportal/employer-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("ENVIRONMENT") != "production" {
		logLevel = logger.Info
	}

	gormLogger := pkgLogger.NewGormLogger(
		logLevel,
		200*time.Millisecond,
	)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate runs schema migrations and seeds the internet-banking
// whitelist used by the payment page.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Employer{},
		&models.ReturnFile{},
		&models.Challan{},
		&models.Member{},
		&models.Bank{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return seedBanks(db)
}

// seedBanks inserts the participating banks when the table is empty
func seedBanks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Bank{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	banks := []models.Bank{
		{Name: "State Bank of India", Active: true},
		{Name: "Punjab National Bank", Active: true},
		{Name: "Bank of Baroda", Active: true},
		{Name: "Canara Bank", Active: true},
		{Name: "Union Bank of India", Active: true},
		{Name: "HDFC Bank", Active: true},
		{Name: "ICICI Bank", Active: true},
		{Name: "Axis Bank", Active: true},
	}
	return db.Create(&banks).Error
}
