package store

import (
	"fmt"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists the moderation collections in a relational database.
// Saves upsert by primary key so the engine can call them for both creates
// and updates.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) LoadReports() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	return reports, nil
}

func (s *GormStore) LoadTickets() ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := s.db.Preload("Responses", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	return tickets, nil
}

func (s *GormStore) LoadModerators() ([]models.Moderator, error) {
	var moderators []models.Moderator
	if err := s.db.Find(&moderators).Error; err != nil {
		return nil, fmt.Errorf("load moderators: %w", err)
	}
	return moderators, nil
}

func (s *GormStore) SaveReport(r *models.Report) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(r).Error
}

func (s *GormStore) SaveTicket(t *models.SupportTicket) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ticket := *t
		responses := ticket.Responses
		ticket.Responses = nil
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&ticket).Error; err != nil {
			return err
		}
		// Responses are append-only; existing rows never change.
		for i := range responses {
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&responses[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) SaveModerator(m *models.Moderator) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(m).Error
}

func (s *GormStore) DeleteModerator(id uuid.UUID) error {
	return s.db.Delete(&models.Moderator{}, "id = ?", id).Error
}
