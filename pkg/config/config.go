package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	AI        AIConfig
	Sanitizer SanitizerConfig
	Location  LocationConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type MongoConfig struct {
	URI      string
	Database string
}

// AIConfig selects the bio provider and carries the settings for the
// external OpenAI-compatible endpoint. Provider is a deployment-time
// choice; only one implementation is active per process.
type AIConfig struct {
	Provider         string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	OpenAIMaxTokens  int
	OpenAITemp       float64
	OpenAITimeoutSec int
}

type SanitizerConfig struct {
	MaxLength int
}

type LocationConfig struct {
	NearbyDefaultLimit int
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 15),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DATABASE", "person_finder"),
		},
		AI: AIConfig{
			Provider:         getEnv("AI_PROVIDER", "mock"),
			OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			OpenAIMaxTokens:  getEnvAsInt("OPENAI_MAX_TOKENS", 100),
			OpenAITemp:       getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
			OpenAITimeoutSec: getEnvAsInt("OPENAI_TIMEOUT_SECONDS", 60),
		},
		Sanitizer: SanitizerConfig{
			MaxLength: getEnvAsInt("SANITIZER_MAX_LENGTH", 500),
		},
		Location: LocationConfig{
			NearbyDefaultLimit: getEnvAsInt("NEARBY_DEFAULT_LIMIT", 1000),
		},
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
