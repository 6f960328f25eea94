package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Session SessionConfig
	Notify  NotifyConfig
}

type AppConfig struct {
	Name    string `validate:"required"`
	Port    string `validate:"required,numeric"`
	Debug   bool
	LogPath string
}

// StoreConfig points at the external REST data store (json-server).
type StoreConfig struct {
	BaseURL string `validate:"required,url"`
	Timeout time.Duration
}

// SessionConfig carries the single hardcoded user the client acts as.
type SessionConfig struct {
	CurrentUserID int `validate:"min=1"`
}

type NotifyConfig struct {
	TTL    time.Duration
	Buffer int `validate:"min=1"`
}

// LoadConfig reads the .env file at path (if present) and the environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "Movie Reviews")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("STORE_BASE_URL", "http://localhost:3001")
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("CURRENT_USER_ID", 1)
	v.SetDefault("TOAST_TTL", "3s")
	v.SetDefault("TOAST_BUFFER", 64)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			BaseURL: v.GetString("STORE_BASE_URL"),
			Timeout: v.GetDuration("STORE_TIMEOUT"),
		},
		Session: SessionConfig{
			CurrentUserID: v.GetInt("CURRENT_USER_ID"),
		},
		Notify: NotifyConfig{
			TTL:    v.GetDuration("TOAST_TTL"),
			Buffer: v.GetInt("TOAST_BUFFER"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
