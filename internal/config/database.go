package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bonifacengila/cv-portfolio/internal/models"
)

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	var db *gorm.DB
	var err error
	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), gormCfg)
	default:
		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	// Auto migrate
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.CVVersion{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := backfillTimestamps(db); err != nil {
		return nil, fmt.Errorf("failed to backfill timestamps: %w", err)
	}

	log.Println("✅ Database migration completed")

	return db, nil
}

// backfillTimestamps fills missing created_at/updated_at values on rows
// written before those columns existed, so version ordering stays stable.
func backfillTimestamps(db *gorm.DB) error {
	now := time.Now()
	if err := db.Model(&models.Profile{}).
		Where("created_at IS NULL").
		Update("created_at", now).Error; err != nil {
		return err
	}
	if err := db.Model(&models.CVVersion{}).
		Where("created_at IS NULL").
		Update("created_at", now).Error; err != nil {
		return err
	}
	return db.Model(&models.CVVersion{}).
		Where("updated_at IS NULL").
		Update("updated_at", gorm.Expr("created_at")).Error
}
