package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// secretKeys may be supplied through a mounted file named by KEY_FILE.
var secretKeys = []string{"OPENAI_API_KEY"}

// loadSecretFiles copies each KEY_FILE's trimmed content into KEY. A key
// already set in the environment is left alone. Unreadable files are
// reported together and the remaining keys are still loaded.
func loadSecretFiles(keys ...string) error {
	var errs []error
	for _, key := range keys {
		if os.Getenv(key) != "" {
			continue
		}
		path := os.Getenv(key + "_FILE")
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s_FILE: %w", key, err))
			continue
		}
		if err := os.Setenv(key, strings.TrimSpace(string(data))); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	OpenAI OpenAIConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	LogLevel  string
	BodyLimit int // bytes
}

type CORSConfig struct {
	AllowOrigins string
}

// OpenAIConfig configures the completion provider. Any OpenAI-compatible
// endpoint works through BaseURL. An empty APIKey selects the fallback
// generator for every request.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     int // seconds
}

func Load() (*Config, error) {
	// Optional .env for local development; real env vars win
	_ = godotenv.Load()

	// Mounted secrets must land in the environment before Viper binds
	if err := loadSecretFiles(secretKeys...); err != nil {
		log.Printf("Warning: secret file not loaded: %v", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Bind environment variables with underscores to nested config keys
	_ = viper.BindEnv("server.port", "SERVER_PORT")
	_ = viper.BindEnv("server.env", "SERVER_ENV")
	_ = viper.BindEnv("server.log_level", "LOG_LEVEL")
	_ = viper.BindEnv("server.body_limit", "SERVER_BODY_LIMIT")
	_ = viper.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")
	_ = viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	_ = viper.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	_ = viper.BindEnv("openai.model", "OPENAI_MODEL")
	_ = viper.BindEnv("openai.temperature", "OPENAI_TEMPERATURE")
	_ = viper.BindEnv("openai.timeout", "OPENAI_TIMEOUT")

	// Defaults
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("server.body_limit", 64*1024)
	viper.SetDefault("cors.allow_origins", "*")

	// OpenAI defaults
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1/")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.temperature", 0.7)
	viper.SetDefault("openai.timeout", 30)

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:      viper.GetString("server.port"),
			Env:       viper.GetString("server.env"),
			LogLevel:  viper.GetString("server.log_level"),
			BodyLimit: viper.GetInt("server.body_limit"),
		},
		CORS: CORSConfig{
			AllowOrigins: viper.GetString("cors.allow_origins"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      strings.TrimSpace(viper.GetString("openai.api_key")),
			BaseURL:     viper.GetString("openai.base_url"),
			Model:       viper.GetString("openai.model"),
			Temperature: viper.GetFloat64("openai.temperature"),
			Timeout:     viper.GetInt("openai.timeout"),
		},
	}

	return cfg, nil
}
