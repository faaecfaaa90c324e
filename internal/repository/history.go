// Package repository persists rating history and finished matches when a
// relational database is configured. The live queue and in-progress matches
// never touch it.
package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type RatingHistory struct {
	ID        uint   `gorm:"primaryKey"`
	PlayerID  string `gorm:"index"`
	MatchID   string
	OldRating int
	NewRating int
	Tier      string
	Outcome   string
	CreatedAt time.Time
}

type MatchArchive struct {
	ID         string `gorm:"primaryKey"`
	WhiteID    string `gorm:"index"`
	BlackID    string `gorm:"index"`
	Mode       string
	Result     string
	Quality    float64
	MoveCount  int
	FinishedAt time.Time
}

type HistoryRepository struct {
	DB *gorm.DB
}

func NewHistoryRepository(dialector gorm.Dialector) (*HistoryRepository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if err := db.AutoMigrate(&RatingHistory{}, &MatchArchive{}); err != nil {
		return nil, fmt.Errorf("migrate history schema: %w", err)
	}

	return &HistoryRepository{DB: db}, nil
}

func (r *HistoryRepository) SaveRatingChange(change *RatingHistory) error {
	if err := r.DB.Create(change).Error; err != nil {
		return fmt.Errorf("save rating change for %s: %w", change.PlayerID, err)
	}
	return nil
}

func (r *HistoryRepository) ArchiveMatch(archive *MatchArchive) error {
	if err := r.DB.Create(archive).Error; err != nil {
		return fmt.Errorf("archive match %s: %w", archive.ID, err)
	}
	return nil
}

func (r *HistoryRepository) PlayerHistory(playerID string, limit int) ([]RatingHistory, error) {
	var history []RatingHistory
	err := r.DB.Where("player_id = ?", playerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", playerID, err)
	}
	return history, nil
}
