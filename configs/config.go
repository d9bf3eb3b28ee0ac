package configs

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App        `mapstructure:"app"`
	Cerebras   Provider `mapstructure:"cerebras"`
	Anthropic  Provider `mapstructure:"anthropic"`
	Prediction `mapstructure:"prediction"`
	Database   `mapstructure:"database"`
	Postgres   `mapstructure:"postgres"`
	SQLite     `mapstructure:"sqlite"`
}

// App struct
type App struct {
	Debug     bool   `mapstructure:"debug"`
	Env       string `mapstructure:"env"`
	Port      string `mapstructure:"port"`
	LogFormat string `mapstructure:"log_format"`
}

// Provider struct - Connection settings for one hosted model API
type Provider struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	Timeout    int    `mapstructure:"timeout"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// Prediction struct
type Prediction struct {
	Timeout int            `mapstructure:"timeout"`
	Char    PredictionMode `mapstructure:"char"`
	Word    PredictionMode `mapstructure:"word"`
}

// PredictionMode struct - Per-mode model call and output contract
type PredictionMode struct {
	Provider    string  `mapstructure:"provider"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	Sentinel    string  `mapstructure:"sentinel"`
	MaxResults  int     `mapstructure:"max_results"`
}

// Database struct - Where prediction logs go: "memory", "sqlite" or "postgres"
type Database struct {
	Driver      string `mapstructure:"driver"`
	LogCapacity int    `mapstructure:"log_capacity"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// SQLite struct
type SQLite struct {
	Path string `mapstructure:"path"`
}

// Provider names
const (
	ProviderCerebras  = "cerebras"
	ProviderAnthropic = "anthropic"
)

// TimeoutDuration returns the HTTP timeout of the provider
func (p Provider) TimeoutDuration() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

// TimeoutDuration returns the per-request deadline applied around the remote call
func (p Prediction) TimeoutDuration() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

// ProviderConfig returns the settings of a named provider
func (c *Config) ProviderConfig(name string) (Provider, error) {
	switch name {
	case ProviderCerebras:
		return c.Cerebras, nil
	case ProviderAnthropic:
		return c.Anthropic, nil
	default:
		return Provider{}, errors.New("unknown provider: " + name)
	}
}

var (
	config    Config
	watchOnce sync.Once
)

// InitViper func
func InitViper(path, env string) {
	cfg, v, err := load(path, env)
	if err != nil {
		panic(err)
	}
	config = *cfg
	watchOnce.Do(func() {
		watch(v)
	})
}

// GetViper func
func GetViper() *Config {
	return &config
}

// LoadConfig reads configuration without touching the package level config
func LoadConfig(path, env string) (*Config, error) {
	cfg, _, err := load(path, env)
	return cfg, err
}

func load(path, env string) (*Config, *viper.Viper, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.AddConfigPath(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindSecrets(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, err
		}
		logrus.Warnf("No config file in %s, using defaults and environment", path)
	}

	if env != "" {
		overlay := viper.New()
		overlay.SetConfigName("config." + env)
		overlay.AddConfigPath(path)
		if err := overlay.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(overlay.AllSettings()); err != nil {
				return nil, nil, err
			}
			logrus.Infof("Merged config overlay: %s", overlay.ConfigFileUsed())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, err
	}
	if cfg.App.Env == "" {
		cfg.App.Env = env
	}
	return &cfg, v, nil
}

func watch(v *viper.Viper) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infoln("Config file has changed: ", e.Name)
		var updated Config
		if err := v.Unmarshal(&updated); err != nil {
			logrus.Errorln(err)
			return
		}
		// only the log level is applied live, everything else needs a restart
		if updated.App.Debug {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	})
	v.WatchConfig()
}

func bindSecrets(v *viper.Viper) {
	// the names the original deployment used are accepted as well
	_ = v.BindEnv("cerebras.api_key", "CEREBRAS_API_KEY", "CEREBRAS_KEY")
	_ = v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY", "ANTHROPIC_KEY")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.debug", false)
	v.SetDefault("app.env", "")
	v.SetDefault("app.port", "8000")
	v.SetDefault("app.log_format", "text")

	v.SetDefault("cerebras.base_url", "https://api.cerebras.ai/v1")
	v.SetDefault("cerebras.api_key", "")
	v.SetDefault("cerebras.model", "gpt-oss-120b")
	v.SetDefault("cerebras.timeout", 10)
	v.SetDefault("cerebras.max_retries", 0)

	v.SetDefault("anthropic.base_url", "")
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "claude-3-haiku-20240307")
	v.SetDefault("anthropic.timeout", 10)
	v.SetDefault("anthropic.max_retries", 0)

	v.SetDefault("prediction.timeout", 15)
	v.SetDefault("prediction.char.provider", ProviderCerebras)
	v.SetDefault("prediction.char.max_tokens", 5000)
	v.SetDefault("prediction.char.temperature", 0.2)
	v.SetDefault("prediction.char.sentinel", "NONE")
	v.SetDefault("prediction.char.max_results", 5)
	v.SetDefault("prediction.word.provider", ProviderAnthropic)
	v.SetDefault("prediction.word.max_tokens", 50)
	v.SetDefault("prediction.word.temperature", 0.2)
	v.SetDefault("prediction.word.sentinel", "NONE")
	v.SetDefault("prediction.word.max_results", 3)

	v.SetDefault("database.driver", "memory")
	v.SetDefault("database.log_capacity", 1000)

	v.SetDefault("postgres.host", "")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.username", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.database", "")
	v.SetDefault("postgres.sslmode", false)

	v.SetDefault("sqlite.path", "predictions.db")
}
