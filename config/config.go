package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Campus assistant specifics
	Inference InferenceConfig
	Qdrant    QdrantConfig
	Voyage    VoyageConfig
	Retriever RetrieverConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InferenceConfig holds configuration for the inference provider abstraction layer.
type InferenceConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	RequestTimeout  time.Duration // per-request timeout applied to each provider client
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// ProviderConfig holds configuration for a single inference provider.
type ProviderConfig struct {
	Name           string
	Enabled        bool
	Priority       int
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout time.Duration
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type RetrieverConfig struct {
	Enabled  bool
	TopK     int
	MinScore float64
}

type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
	TTL            time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Inference provider abstraction
	cfg.Inference.FallbackEnabled = viper.GetBool("inference.fallback_enabled")
	cfg.Inference.RetryAttempts = viper.GetInt("inference.retry_attempts")
	cfg.Inference.RetryDelay = parseDuration(viper.GetString("inference.retry_delay"), 2*time.Second)
	cfg.Inference.RequestTimeout = parseDuration(viper.GetString("inference.request_timeout"), 30*time.Second)
	cfg.Inference.MaxTotalTimeout = parseDuration(viper.GetString("inference.max_total_timeout"), 120*time.Second)

	// Load provider configurations
	if viper.IsSet("inference.providers") {
		providersRaw := viper.Get("inference.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:           getStringFromMap(providerMap, "name"),
						Enabled:        getBoolFromMap(providerMap, "enabled"),
						Priority:       getIntFromMap(providerMap, "priority"),
						APIKey:         expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:        getStringFromMap(providerMap, "base_url"),
						Model:          getStringFromMap(providerMap, "model"),
						RequestTimeout: parseDuration(getStringFromMap(providerMap, "timeout"), cfg.Inference.RequestTimeout),
					}
					cfg.Inference.Providers = append(cfg.Inference.Providers, provider)
				}
			}
		}
	}

	if err := validateInferenceConfig(&cfg.Inference); err != nil {
		return nil, err
	}

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Voyage AI
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Retriever
	cfg.Retriever.Enabled = viper.GetBool("retriever.enabled")
	cfg.Retriever.TopK = viper.GetInt("retriever.top_k")
	cfg.Retriever.MinScore = viper.GetFloat64("retriever.min_score")

	// Sessions
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.TTL = parseDuration(viper.GetString("session.ttl"), 30*time.Minute)

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.TTL = parseDuration(viper.GetString("rate_limit.ttl"), 5*time.Minute)

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Inference defaults match the local vLLM deployment
	viper.SetDefault("inference.fallback_enabled", true)
	viper.SetDefault("inference.retry_attempts", 3)
	viper.SetDefault("inference.retry_delay", "2s")
	viper.SetDefault("inference.request_timeout", "30s")
	viper.SetDefault("inference.max_total_timeout", "120s")

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "campus_docs")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("voyage.model", "voyage-3")

	viper.SetDefault("retriever.enabled", false)
	viper.SetDefault("retriever.top_k", 3)
	viper.SetDefault("retriever.min_score", 0.3)

	viper.SetDefault("session.capacity", 1024)
	viper.SetDefault("session.ttl", "30m")

	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.ttl", "5m")
}

// validateInferenceConfig validates the inference configuration.
func validateInferenceConfig(cfg *InferenceConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no inference providers configured - please add inference.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled inference providers")
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
