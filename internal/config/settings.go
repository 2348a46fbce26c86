package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/saulo-duarte/tutor-lambda/internal/quizparser"
)

type OpenAISettings struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiSettings struct {
	APIKey string
	Model  string
}

type OllamaSettings struct {
	URL   string
	Model string
}

type HuggingFaceSettings struct {
	Token   string
	BaseURL string
	Model   string
}

// Settings is built once at startup and passed to whoever needs it.
type Settings struct {
	Port     string
	LogLevel string

	// Providers is the order in which provider factories are tried.
	Providers      []string
	AllowMock      bool
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration

	OpenAI      OpenAISettings
	Gemini      GeminiSettings
	Ollama      OllamaSettings
	HuggingFace HuggingFaceSettings

	QuizStrictness quizparser.Strictness
	AllowedOrigins []string
}

var defaults = map[string]interface{}{
	"port":                     "8080",
	"log_level":                "info",
	"llm_providers":            "openai,gemini,ollama,huggingface",
	"llm_allow_mock":           false,
	"llm_timeout":              "45s",
	"llm_max_retries":          3,
	"llm_retry_base_delay":     "1s",
	"openai_api_key":           "",
	"openai_base_url":          "https://api.openai.com/v1",
	"openai_model":             "gpt-4o-mini",
	"google_api_key":           "",
	"gemini_model":             "gemini-2.0-flash",
	"ollama_url":               "http://localhost:11434",
	"ollama_model":             "tinyllama",
	"huggingfacehub_api_token": "",
	"hf_base_url":              "https://api-inference.huggingface.co",
	"hf_model":                 "google/flan-t5-small",
	"quiz_strictness":          "lenient",
	"cors_allowed_origins":     "*",
}

// Load reads an optional .env file, an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	strictness, err := quizparser.ParseStrictness(v.GetString("quiz_strictness"))
	if err != nil {
		return nil, err
	}

	maxRetries := v.GetInt("llm_max_retries")
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Settings{
		Port:           v.GetString("port"),
		LogLevel:       v.GetString("log_level"),
		Providers:      splitList(v.GetString("llm_providers")),
		AllowMock:      v.GetBool("llm_allow_mock"),
		Timeout:        v.GetDuration("llm_timeout"),
		MaxRetries:     maxRetries,
		RetryBaseDelay: v.GetDuration("llm_retry_base_delay"),
		OpenAI: OpenAISettings{
			APIKey:  v.GetString("openai_api_key"),
			BaseURL: v.GetString("openai_base_url"),
			Model:   v.GetString("openai_model"),
		},
		Gemini: GeminiSettings{
			APIKey: v.GetString("google_api_key"),
			Model:  v.GetString("gemini_model"),
		},
		Ollama: OllamaSettings{
			URL:   v.GetString("ollama_url"),
			Model: v.GetString("ollama_model"),
		},
		HuggingFace: HuggingFaceSettings{
			Token:   v.GetString("huggingfacehub_api_token"),
			BaseURL: v.GetString("hf_base_url"),
			Model:   v.GetString("hf_model"),
		},
		QuizStrictness: strictness,
		AllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
	}, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	return out
}
