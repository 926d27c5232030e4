package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type AppConfig struct {
	Env                Environment `yaml:"env"`
	LogLevel           string      `yaml:"log_level"`
	LogFile            string      `yaml:"log_file"`
	ServerPort         string      `yaml:"server_port"`
	RawBodyLog         bool        `yaml:"raw_body_log"`
	HttpTimeoutSeconds int         `yaml:"http_timeout_seconds"`
	MaxBodyBytes       int64       `yaml:"max_body_bytes"`
	CorsOrigins        []string    `yaml:"cors_origins"`
}

type SummarizerConfig struct {
	Ratio          float64  `yaml:"ratio"`
	MinSentences   int      `yaml:"min_sentences"`
	RequireContent bool     `yaml:"require_content"`
	MaxInputWords  int      `yaml:"max_input_words"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	StopwordsFile  string   `yaml:"stopwords_file"`
	WorkerCount    int      `yaml:"worker_count"`
}

type FetcherConfig struct {
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
	MaxContentLength int    `yaml:"max_content_length"`
	UserAgent        string `yaml:"user_agent"`
}

type Config struct {
	App        AppConfig        `yaml:"app"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Fetcher    FetcherConfig    `yaml:"fetcher"`
}

// Load builds the configuration from, in increasing priority: built-in
// defaults, the YAML file named by APP_CONFIG_FILE, and environment variables
// (a .env file in the working directory is loaded first).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("APP_CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Env:                Development,
			ServerPort:         "8080",
			HttpTimeoutSeconds: 30,
			MaxBodyBytes:       5 << 20,
			CorsOrigins:        []string{"*"},
		},
		Summarizer: SummarizerConfig{
			Ratio:        0.3,
			MinSentences: 1,
			WorkerCount:  calculateDefaultWorkerCount(),
		},
		Fetcher: FetcherConfig{
			TimeoutSeconds:   10,
			MaxContentLength: 1 << 20,
			UserAgent:        "Mozilla/5.0 (compatible; synopsis/1.0)",
		},
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	app := &cfg.App
	app.Env = parseEnvironment(getEnv("APP_ENV", string(app.Env)))
	app.LogLevel = getLogLevel(app.Env, app.LogLevel)
	app.LogFile = getEnv("APP_LOG_FILE", app.LogFile)
	app.ServerPort = getEnv("APP_SERVER_PORT", app.ServerPort)
	app.RawBodyLog = getEnvBool("APP_RAW_BODY_LOG", app.RawBodyLog)
	app.HttpTimeoutSeconds = getEnvInt("APP_HTTP_TIMEOUT_SECONDS", app.HttpTimeoutSeconds)
	app.MaxBodyBytes = int64(getEnvInt("APP_MAX_BODY_BYTES", int(app.MaxBodyBytes)))
	app.CorsOrigins = getEnvList("APP_CORS_ORIGINS", app.CorsOrigins)

	sum := &cfg.Summarizer
	sum.Ratio = getEnvFloat("SUMMARIZER_RATIO", sum.Ratio)
	sum.MinSentences = getEnvInt("SUMMARIZER_MIN_SENTENCES", sum.MinSentences)
	sum.RequireContent = getEnvBool("SUMMARIZER_REQUIRE_CONTENT", sum.RequireContent)
	sum.MaxInputWords = getEnvInt("SUMMARIZER_MAX_INPUT_WORDS", sum.MaxInputWords)
	sum.ExtraStopwords = getEnvList("SUMMARIZER_EXTRA_STOPWORDS", sum.ExtraStopwords)
	sum.StopwordsFile = getEnv("SUMMARIZER_STOPWORDS_FILE", sum.StopwordsFile)
	sum.WorkerCount = getEnvInt("SUMMARIZER_WORKER_COUNT", sum.WorkerCount)

	fetch := &cfg.Fetcher
	fetch.TimeoutSeconds = getEnvInt("FETCHER_TIMEOUT_SECONDS", fetch.TimeoutSeconds)
	fetch.MaxContentLength = getEnvInt("FETCHER_MAX_CONTENT_LENGTH", fetch.MaxContentLength)
	fetch.UserAgent = getEnv("FETCHER_USER_AGENT", fetch.UserAgent)
}

func (c *Config) Validate() error {
	if c.Summarizer.Ratio <= 0 || c.Summarizer.Ratio > 1 {
		return fmt.Errorf("SUMMARIZER_RATIO must be in (0, 1], got %v", c.Summarizer.Ratio)
	}
	if c.Summarizer.MinSentences < 1 {
		return fmt.Errorf("SUMMARIZER_MIN_SENTENCES must be at least 1, got %d", c.Summarizer.MinSentences)
	}
	if c.Summarizer.MaxInputWords < 0 {
		return fmt.Errorf("SUMMARIZER_MAX_INPUT_WORDS must not be negative")
	}
	if c.Summarizer.WorkerCount < 1 {
		return fmt.Errorf("SUMMARIZER_WORKER_COUNT must be at least 1")
	}
	if _, err := strconv.Atoi(c.App.ServerPort); err != nil {
		return fmt.Errorf("APP_SERVER_PORT must be numeric, got %q", c.App.ServerPort)
	}
	if c.App.HttpTimeoutSeconds <= 0 || c.Fetcher.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

// summarization is CPU bound, so one worker per core, capped at 8
func calculateDefaultWorkerCount() int {
	return min(max(runtime.NumCPU(), 1), 8)
}

func getLogLevel(env Environment, current string) string {
	if current != "" {
		return getEnv("APP_LOG_LEVEL", current)
	}
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping empty items.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
