package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PredictionLog struct - Diagnostics record of one prediction request.
// The typed text is never stored, only its length.
type PredictionLog struct {
	ID            *uuid.UUID     `gorm:"type:uuid;primary_key;"`
	Mode          PredictionMode `gorm:"type:varchar(8);not null;index"`
	Provider      string         `gorm:"type:varchar(32)"`
	Model         string         `gorm:"type:varchar(128)"`
	Outcome       Outcome        `gorm:"type:varchar(32);not null;index"`
	InputLength   int            `gorm:"not null;default:0"`
	AllowListSize int            `gorm:"not null;default:0"`
	ResultCount   int            `gorm:"not null;default:0"`
	LatencyMs     int64          `gorm:"not null;default:0"`
	CreatedAt     *time.Time     `gorm:"type:timestamp;index"`
}

// TableName func
func (l *PredictionLog) TableName() string {
	return "prediction_logs"
}

// BeforeCreate hook - generates UUID before creating
func (l *PredictionLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID != nil {
		return nil
	}
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	l.ID = &id
	return nil
}

// NewPredictionLog builds a log entry from a finished prediction
func NewPredictionLog(result *PredictionResult, inputLength, allowListSize int) *PredictionLog {
	now := time.Now()
	return &PredictionLog{
		Mode:          result.Mode,
		Provider:      result.Provider,
		Model:         result.Model,
		Outcome:       result.Outcome,
		InputLength:   inputLength,
		AllowListSize: allowListSize,
		ResultCount:   len(result.Predictions),
		LatencyMs:     result.Latency.Milliseconds(),
		CreatedAt:     &now,
	}
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return ErrDatabaseNotConfigured
	}
	return db.AutoMigrate(&PredictionLog{})
}
