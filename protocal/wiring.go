package protocal

import (
	"fmt"

	"predictive-keyboard/configs"
	"predictive-keyboard/internal/adapters/output/anthropic"
	"predictive-keyboard/internal/adapters/output/cerebras"
	"predictive-keyboard/internal/adapters/output/gormdb"
	"predictive-keyboard/internal/adapters/output/memory"
	"predictive-keyboard/internal/adapters/output/prompt"
	"predictive-keyboard/internal/application"
	"predictive-keyboard/internal/domain"
	"predictive-keyboard/internal/ports/output"
	"predictive-keyboard/pkg/database_driver/gorm"

	"github.com/sirupsen/logrus"
)

// Dependencies struct - Everything the driving adapters need
type Dependencies struct {
	Predictions *application.PredictionService
	Logs        *application.PredictionLogService
	DB          *gorm.DB
}

// Ping reports database health, nil when logs are kept in memory
func (d *Dependencies) Ping() func() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Ping
}

// Close waits for pending log writes and closes the database
func (d *Dependencies) Close() {
	if d.Predictions != nil {
		d.Predictions.Wait()
	}
	gorm.Disconnect(d.DB)
}

// NewDependencies wires the hexagonal layers from configuration
func NewDependencies(cfg *configs.Config) (*Dependencies, error) {
	// Output adapter (repository)
	repo, db, err := newPredictionLogRepository(cfg)
	if err != nil {
		return nil, err
	}

	// Application service (use case)
	predictions, err := NewPredictionService(cfg, repo)
	if err != nil {
		gorm.Disconnect(db)
		return nil, err
	}

	return &Dependencies{
		Predictions: predictions,
		Logs:        application.NewPredictionLogService(repo),
		DB:          db,
	}, nil
}

// NewPredictionService builds the prediction use case; logs may be nil
func NewPredictionService(cfg *configs.Config, logs output.PredictionLogRepository) (*application.PredictionService, error) {
	sanitizerConfig := domain.SanitizerConfig{
		CharSentinel: cfg.Prediction.Char.Sentinel,
		WordSentinel: cfg.Prediction.Word.Sentinel,
		MaxChars:     cfg.Prediction.Char.MaxResults,
		MaxWords:     cfg.Prediction.Word.MaxResults,
	}
	sanitizer := domain.NewSanitizer(sanitizerConfig)

	prompts, err := prompt.NewTemplatePromptBuilder(sanitizer.Config())
	if err != nil {
		return nil, err
	}

	char, err := newModeSettings(cfg, cfg.Prediction.Char)
	if err != nil {
		return nil, fmt.Errorf("char mode: %w", err)
	}
	word, err := newModeSettings(cfg, cfg.Prediction.Word)
	if err != nil {
		return nil, fmt.Errorf("word mode: %w", err)
	}

	return application.NewPredictionService(application.PredictionServiceConfig{
		Char:    char,
		Word:    word,
		Timeout: cfg.Prediction.TimeoutDuration(),
	}, prompts, sanitizer, logs)
}

func newModeSettings(cfg *configs.Config, mode configs.PredictionMode) (application.ModeSettings, error) {
	client, err := newCompletionClient(cfg, mode.Provider)
	if err != nil {
		return application.ModeSettings{}, err
	}
	temperature := mode.Temperature
	return application.ModeSettings{
		Client:      client,
		MaxTokens:   mode.MaxTokens,
		Temperature: &temperature,
	}, nil
}

func newCompletionClient(cfg *configs.Config, provider string) (output.CompletionClient, error) {
	settings, err := cfg.ProviderConfig(provider)
	if err != nil {
		return nil, err
	}
	switch provider {
	case configs.ProviderAnthropic:
		return anthropic.NewAnthropicClientAdapter(settings)
	default:
		return cerebras.NewCerebrasClientAdapter(settings)
	}
}

func newPredictionLogRepository(cfg *configs.Config) (output.PredictionLogRepository, *gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "", "memory":
		logrus.Infof("Keeping up to %d prediction logs in memory", cfg.Database.LogCapacity)
		return memory.NewMemoryPredictionLogStore(cfg.Database.LogCapacity), nil, nil
	case "sqlite":
		db, err = gorm.ConnectToSQLite(cfg.SQLite.Path)
	case "postgres":
		db, err = gorm.ConnectToPostgreSQL(
			cfg.Postgres.Host,
			cfg.Postgres.Port,
			cfg.Postgres.Username,
			cfg.Postgres.Password,
			cfg.Postgres.DbName,
			cfg.Postgres.SSLMode,
		)
	default:
		return nil, nil, fmt.Errorf("unknown database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	repo, err := gormdb.NewPredictionLogRepository(db.Gorm)
	if err != nil {
		gorm.Disconnect(db)
		return nil, nil, err
	}
	return repo, db, nil
}
