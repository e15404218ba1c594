package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/justsurfingit/job-board/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/time/rate"
)

// maxExtractionInput caps the raw page handed to the model.
const maxExtractionInput = 20000

type LLMService struct {
	Client  llms.Model
	limiter *rate.Limiter
}

// NewLLMService builds the model client for the configured provider.
func NewLLMService(ctx context.Context, cfg *config.Config) (*LLMService, error) {
	var (
		model llms.Model
		err   error
	)
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		model, err = openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(cfg.LLMModel),
		)
	default:
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(cfg.LLMModel),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", cfg.LLMProvider, err)
	}
	log.Info().Str("provider", cfg.LLMProvider).Str("model", cfg.LLMModel).Msg("llm client ready")

	return NewLLMServiceWithModel(model, newLimiter(cfg.GenerationRPS, cfg.GenerationBurst)), nil
}

// NewLLMServiceWithModel wraps an existing model. A nil limiter disables rate limiting.
func NewLLMServiceWithModel(model llms.Model, limiter *rate.Limiter) *LLMService {
	return &LLMService{Client: model, limiter: limiter}
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Generate sends a single prompt and returns the raw reply. One attempt, no retry.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit: %w", err)
		}
	}
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return resp, nil
}

const jobExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "company_name": "Name of the company (e.g., Google, StartupInc)",
    "title": "Job title (e.g., Senior Backend Engineer)",
    "short_description": "One or two sentences summarising the role",
    "description": "A clean summary of the job. Focus on Responsibilities and Requirements. Remove HTML tags.",
    "tags": ["Array", "of", "keywords", "e.g., Go, React, AWS"],
    "work_mode": "remote, hybrid or office",
    "shift_timing": "full-time, part-time or contract",
    "hourly_rate": "The pay string if explicitly mentioned, otherwise null",
    "years_of_experience": "Required experience if mentioned, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractJobDetails takes raw HTML and returns the model's JSON reply.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (string, error) {
	resp, err := s.Generate(ctx, fmt.Sprintf(jobExtractionPrompt, truncateUTF8(rawHTML, maxExtractionInput)))
	if err != nil {
		return "", err
	}
	return stripCodeFence(resp), nil
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripCodeFence drops a ```json ... ``` wrapper some models add anyway.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
