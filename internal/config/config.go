package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Resolver ResolverConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	IndexTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	OllamaBaseURL  string
	EmbeddingModel string
	LLMModel       string
	RequestTimeout time.Duration
}

type ResolverConfig struct {
	CorpusPath     string
	MatchThreshold int
	TopK           int
	CacheTTL       time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "concierge.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			IndexTopic:         getEnv("INDEX_CORPUS_TOPIC_NAME", "INDEX_CORPUS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMModel:       getEnv("LLM_MODEL", "llama3"),
			RequestTimeout: getEnvAsDuration("AI_REQUEST_TIMEOUT", 120*time.Second),
		},
		Resolver: ResolverConfig{
			CorpusPath:     getEnv("CORPUS_PATH", "corpus.jsonl"),
			MatchThreshold: getEnvAsInt("MATCH_THRESHOLD", 80),
			TopK:           getEnvAsInt("RETRIEVAL_TOP_K", 5),
			CacheTTL:       getEnvAsDuration("ANSWER_CACHE_TTL", 15*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
