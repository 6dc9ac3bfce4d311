package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/config"
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedBootstrapAdmin inserts an admin registry entry when the moderators
// table is empty. The registry must never be empty, and every other entry is
// created through the engine, so this only runs on a fresh database.
func SeedBootstrapAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Moderator{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count moderators: %w", err)
	}
	if count > 0 {
		return nil
	}
	if cfg.BootstrapAdminID == "" {
		return fmt.Errorf("moderator registry is empty and BOOTSTRAP_ADMIN_ID is not set")
	}
	adminID, err := uuid.Parse(cfg.BootstrapAdminID)
	if err != nil {
		return fmt.Errorf("invalid BOOTSTRAP_ADMIN_ID: %w", err)
	}

	now := time.Now()
	admin := models.Moderator{
		ID:           adminID,
		Role:         models.RoleAdmin,
		AssignedDate: now,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}
	slog.Info("seeded bootstrap admin", "admin_id", adminID)
	return nil
}
