package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setupTestEnv sets up environment variables shared by the config tests
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("CEREBRAS_KEY", "test-cerebras")
	os.Setenv("ANTHROPIC_KEY", "test-anthropic")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("CEREBRAS_KEY")
	os.Unsetenv("ANTHROPIC_KEY")
	os.Unsetenv("PREDICTION_WORD_MAX_RESULTS")
}

// TestPredictionDefaultsUnmarshal tests that the shipped config.yaml yields the expected prediction settings
func TestPredictionDefaultsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")
	cfg := GetViper()

	if cfg.App.Port != "8080" {
		t.Errorf("Expected App.Port to be 8080, got %s", cfg.App.Port)
	}
	if cfg.Prediction.Char.MaxResults != 5 {
		t.Errorf("Expected Char.MaxResults to be 5, got %d", cfg.Prediction.Char.MaxResults)
	}
	if cfg.Prediction.Word.MaxResults != 3 {
		t.Errorf("Expected Word.MaxResults to be 3, got %d", cfg.Prediction.Word.MaxResults)
	}
	if cfg.Prediction.Char.MaxTokens != 5000 {
		t.Errorf("Expected Char.MaxTokens to be 5000, got %d", cfg.Prediction.Char.MaxTokens)
	}
	if cfg.Prediction.Word.MaxTokens != 50 {
		t.Errorf("Expected Word.MaxTokens to be 50, got %d", cfg.Prediction.Word.MaxTokens)
	}
	if cfg.Prediction.Char.Sentinel != "NONE" || cfg.Prediction.Word.Sentinel != "NONE" {
		t.Errorf("Expected NONE sentinels, got %q and %q", cfg.Prediction.Char.Sentinel, cfg.Prediction.Word.Sentinel)
	}
	if cfg.Prediction.Char.Provider != ProviderCerebras {
		t.Errorf("Expected char provider %s, got %s", ProviderCerebras, cfg.Prediction.Char.Provider)
	}
	if cfg.Prediction.Word.Provider != ProviderAnthropic {
		t.Errorf("Expected word provider %s, got %s", ProviderAnthropic, cfg.Prediction.Word.Provider)
	}
	if cfg.Prediction.TimeoutDuration() != 15*time.Second {
		t.Errorf("Expected prediction timeout 15s, got %v", cfg.Prediction.TimeoutDuration())
	}
}

// TestLegacyKeyNames tests that CEREBRAS_KEY and ANTHROPIC_KEY populate the provider secrets
func TestLegacyKeyNames(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	cfg, err := LoadConfig(".", "test")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Cerebras.APIKey != "test-cerebras" {
		t.Errorf("Expected Cerebras.APIKey from CEREBRAS_KEY, got %q", cfg.Cerebras.APIKey)
	}
	if cfg.Anthropic.APIKey != "test-anthropic" {
		t.Errorf("Expected Anthropic.APIKey from ANTHROPIC_KEY, got %q", cfg.Anthropic.APIKey)
	}
}

// TestEnvOverridesNestedKey tests that nested keys can be overridden from the environment
func TestEnvOverridesNestedKey(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()
	os.Setenv("PREDICTION_WORD_MAX_RESULTS", "7")

	cfg, err := LoadConfig(".", "test")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Prediction.Word.MaxResults != 7 {
		t.Errorf("Expected Word.MaxResults to be 7, got %d", cfg.Prediction.Word.MaxResults)
	}
}

// TestEnvironmentOverlay tests that config.<env>.yaml is merged over config.yaml
func TestEnvironmentOverlay(t *testing.T) {
	dir := t.TempDir()
	base := "app:\n  port: \"9000\"\nprediction:\n  char:\n    max_results: 5\n"
	overlay := "prediction:\n  char:\n    max_results: 2\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(base), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.staging.yaml"), []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir, "staging")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.App.Port != "9000" {
		t.Errorf("Expected App.Port from base file, got %s", cfg.App.Port)
	}
	if cfg.Prediction.Char.MaxResults != 2 {
		t.Errorf("Expected overlay Char.MaxResults 2, got %d", cfg.Prediction.Char.MaxResults)
	}
	// untouched keys fall back to defaults
	if cfg.Prediction.Word.MaxResults != 3 {
		t.Errorf("Expected default Word.MaxResults 3, got %d", cfg.Prediction.Word.MaxResults)
	}
	if cfg.App.Env != "staging" {
		t.Errorf("Expected App.Env staging, got %s", cfg.App.Env)
	}
}

// TestMissingConfigFile tests that defaults apply when no config file exists
func TestMissingConfigFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir(), "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Database.Driver != "memory" {
		t.Errorf("Expected default database driver memory, got %s", cfg.Database.Driver)
	}
	if cfg.Cerebras.BaseURL != "https://api.cerebras.ai/v1" {
		t.Errorf("Unexpected Cerebras.BaseURL %s", cfg.Cerebras.BaseURL)
	}
}

func TestProviderConfig(t *testing.T) {
	cfg := Config{Cerebras: Provider{Model: "a"}, Anthropic: Provider{Model: "b"}}

	p, err := cfg.ProviderConfig(ProviderAnthropic)
	if err != nil || p.Model != "b" {
		t.Errorf("Expected anthropic provider, got %+v, %v", p, err)
	}
	if _, err := cfg.ProviderConfig("lmstudio"); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
