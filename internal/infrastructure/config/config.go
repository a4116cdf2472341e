package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full application configuration
type Config struct {
	Server ServerConfig
	Ollama OllamaConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Web    WebConfig
	Log    LogConfig
}

// ServerConfig holds the API server configuration
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// OllamaConfig holds the inference service configuration
type OllamaConfig struct {
	URL     string
	Model   string
	Timeout time.Duration
}

// RedisConfig holds the optional cache backend configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig holds the result cache configuration
type CacheConfig struct {
	TTL time.Duration
}

// WebConfig holds the web UI server configuration
type WebConfig struct {
	Host    string
	Port    int
	APIURL  string
	Timeout time.Duration
}

// LogConfig holds the logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with defaults.
// Variables use the SENTIMENT_ prefix, e.g. SENTIMENT_SERVER_PORT.
func Load() (*Config, error) {
	// A .env file in the working directory is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SENTIMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
			Mode: v.GetString("server.mode"),
		},
		Ollama: OllamaConfig{
			URL:     v.GetString("ollama.url"),
			Model:   v.GetString("ollama.model"),
			Timeout: v.GetDuration("ollama.timeout"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			TTL: v.GetDuration("cache.ttl"),
		},
		Web: WebConfig{
			Host:    v.GetString("web.host"),
			Port:    v.GetInt("web.port"),
			APIURL:  v.GetString("web.api_url"),
			Timeout: v.GetDuration("web.timeout"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")

	// Ollama
	v.SetDefault("ollama.url", "http://localhost:11434")
	v.SetDefault("ollama.model", "mistral")
	v.SetDefault("ollama.timeout", 30*time.Second)

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Cache
	v.SetDefault("cache.ttl", 15*time.Minute)

	// Web
	v.SetDefault("web.host", "0.0.0.0")
	v.SetDefault("web.port", 8501)
	v.SetDefault("web.api_url", "http://localhost:8000")
	v.SetDefault("web.timeout", 45*time.Second)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
