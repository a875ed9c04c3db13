package postgres

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a gorm session with query logging silenced.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to PostgreSQL DB: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting PostgreSQL connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("checking PostgreSQL DB connection: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables backing the repository.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&userRow{}, &voteRow{}, &matchRow{}, &messageRow{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}
