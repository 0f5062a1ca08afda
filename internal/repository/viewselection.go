package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/innerlog/innerlog-api/internal/models"
)

// OpenViewSelectionDB opens (and migrates) the local SQLite database that
// backs the view-selection store. This is the only state this service owns;
// domain records always live in the records backend.
func OpenViewSelectionDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open view-selection db: %w", err)
	}
	if err := db.AutoMigrate(&models.ViewSelection{}); err != nil {
		return nil, fmt.Errorf("failed to migrate view-selection db: %w", err)
	}
	return db, nil
}

type viewSelectionRepository struct {
	db *gorm.DB
}

// NewViewSelectionRepository creates a view-selection repository over an
// opened gorm database.
func NewViewSelectionRepository(db *gorm.DB) ViewSelectionRepository {
	return &viewSelectionRepository{db: db}
}

func (r *viewSelectionRepository) Get(ctx context.Context, userID string) (*models.ViewSelection, error) {
	var sel models.ViewSelection
	err := r.db.WithContext(ctx).First(&sel, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get view selection: %w", err)
	}
	return &sel, nil
}

func (r *viewSelectionRepository) Set(ctx context.Context, userID, clientID string) error {
	sel := models.ViewSelection{
		UserID:    userID,
		ClientID:  clientID,
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Save(&sel).Error; err != nil {
		return fmt.Errorf("failed to save view selection: %w", err)
	}
	return nil
}

func (r *viewSelectionRepository) Clear(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).Delete(&models.ViewSelection{}, "user_id = ?", userID).Error
	if err != nil {
		return fmt.Errorf("failed to clear view selection: %w", err)
	}
	return nil
}
