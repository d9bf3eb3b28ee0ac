package gormdb

import (
	"context"

	"predictive-keyboard/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PredictionLogRepository struct - Secondary/Driven adapter for PostgreSQL or SQLite through gorm
type PredictionLogRepository struct {
	dbGorm *gorm.DB
}

// NewPredictionLogRepository func - Creates new gorm repository and migrates its table
func NewPredictionLogRepository(dbGorm *gorm.DB) (*PredictionLogRepository, error) {
	logrus.Info("Migrate database ...")
	if err := domain.MigrateDatabase(dbGorm); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &PredictionLogRepository{
		dbGorm: dbGorm,
	}, nil
}

// CreatePredictionLog func - Inserts one diagnostics record
func (p *PredictionLogRepository) CreatePredictionLog(ctx context.Context, entry *domain.PredictionLog) error {
	if err := p.dbGorm.WithContext(ctx).Create(entry).Error; err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

func (p *PredictionLogRepository) condition(condition domain.QueryPredictionLogRequest) map[string]interface{} {
	expression := make(map[string]interface{})
	if condition.Mode != nil {
		expression["mode"] = *condition.Mode
	}
	if condition.Outcome != nil {
		expression["outcome"] = *condition.Outcome
	}
	return expression
}

// GetPredictionLogs func - Retrieves logs with filtering and pagination
func (p *PredictionLogRepository) GetPredictionLogs(condition domain.QueryPredictionLogRequest) (*domain.PredictionLogListResponse, error) {
	var (
		entry   domain.PredictionLog
		entries []domain.PredictionLog
	)
	// the session lets count and find branch off the same filtered statement
	base := p.dbGorm.Model(&entry).Where(p.condition(condition)).Session(&gorm.Session{})

	var totalItem int64
	if err := base.Count(&totalItem).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	pagination := domain.Pagination{Limit: -1}
	if condition.Pagination != nil {
		pagination = *condition.Pagination
	}
	order := "created_at"
	asc := false
	if condition.SortMethod != nil {
		if condition.SortMethod.OrderBy != "" {
			order = condition.SortMethod.OrderBy
		}
		asc = condition.SortMethod.Asc
	}
	tx := base
	if asc {
		tx = tx.Order(order + " ASC")
	} else {
		tx = tx.Order(order + " DESC")
	}

	if err := tx.Limit(pagination.Limit).Offset(pagination.Offset).Find(&entries).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := domain.PredictionLogListResponse{
		Logs: []domain.PredictionLogResponse{},
	}
	result.CurrentPage = condition.Page
	result.PerPage = &pagination.Limit
	result.TotalItem = &totalItem
	for i := range entries {
		result.Logs = append(result.Logs, entries[i].ToResponse())
	}
	return &result, nil
}
