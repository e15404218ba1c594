package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	LogPretty   bool
	CORSOrigins []string

	LLMProvider  string
	LLMModel     string
	GeminiAPIKey string
	OpenAIAPIKey string

	// GenerationTimeout bounds a single generation call. Zero disables it.
	GenerationTimeout time.Duration
	GenerationRPS     float64
	GenerationBurst   int

	SessionTTL       time.Duration
	ClipboardEnabled bool
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, using process environment")
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LLMProvider: strings.ToLower(getenv("LLM_PROVIDER", ProviderGemini)),
		LLMModel:    os.Getenv("LLM_MODEL"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
	}

	var err error
	if cfg.LogPretty, err = getbool("LOG_PRETTY", true); err != nil {
		return nil, err
	}
	if cfg.ClipboardEnabled, err = getbool("CLIPBOARD_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.GenerationTimeout, err = getduration("GENERATION_TIMEOUT", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getduration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if v := os.Getenv("GENERATION_RPS"); v != "" {
		if cfg.GenerationRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("GENERATION_RPS: %w", err)
		}
	} else {
		cfg.GenerationRPS = 1
	}
	if v := os.Getenv("GENERATION_BURST"); v != "" {
		if cfg.GenerationBurst, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("GENERATION_BURST: %w", err)
		}
	} else {
		cfg.GenerationBurst = 5
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.LLMModel == "" {
		switch cfg.LLMProvider {
		case ProviderOpenAI:
			cfg.LLMModel = "gpt-4o-mini"
		default:
			cfg.LLMModel = "gemini-2.5-flash"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required for the openai provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider))
	}
	if c.GenerationRPS < 0 || c.GenerationBurst < 0 {
		errs = append(errs, errors.New("generation rate limit must not be negative"))
	}
	return errors.Join(errs...)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getduration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
