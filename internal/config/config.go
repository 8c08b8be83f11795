package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// LLM settings
	LLMProvider   LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey  string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string      `env:"OPENAI_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	OpenAIModel   string      `env:"OPENAI_MODEL" envDefault:"llama3-70b-8192"`

	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Per-call budget for classification and response generation.
	LLMTimeout time.Duration `env:"LLM_TIMEOUT" envDefault:"15s"`

	// Storage
	ReviewsFilePath   string `env:"REVIEWS_FILE_PATH" envDefault:"data/reviews.csv"`
	SeedSampleReviews bool   `env:"SEED_SAMPLE_REVIEWS" envDefault:"true"`

	// Reporting
	ChartDir           string `env:"CHART_DIR" envDefault:"charts"`
	DailyReportEnabled bool   `env:"DAILY_REPORT_ENABLED" envDefault:"false"`
	DailyReportRange   string `env:"DAILY_REPORT_RANGE" envDefault:"last 7 days"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
