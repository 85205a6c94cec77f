package assist

import (
	"context"
	"fmt"
	"strings"

	"fixster-server/internal/config"
	"fixster-server/internal/infrastructure/logger"
	"fixster-server/internal/infrastructure/metrics"
)

// Service translates user payloads into model prompts and passes the model's
// raw text back. Every failure path still returns renderable text.
type Service struct {
	client  ModelClient
	prompts *config.PromptConfigs
}

// NewService creates the assist service. A nil prompts falls back to the
// built-in templates.
func NewService(client ModelClient, prompts *config.PromptConfigs) *Service {
	if prompts == nil {
		prompts = config.DefaultPromptConfigs()
	}
	return &Service{
		client:  client,
		prompts: prompts,
	}
}

// DebugCode analyzes the given code and returns sectioned Markdown, or a
// canned error string when the model is unreachable or unconfigured.
func (s *Service) DebugCode(ctx context.Context, code string) string {
	if s.client == nil || !s.client.Configured() {
		log := logger.GetLogger()
		log.Error().Msg("Missing Gemini API key")
		return DebugMissingKeyFallback
	}

	prompt := fmt.Sprintf(s.prompts.Debug, code)
	output, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("Gemini API error")
		metrics.RecordModelError("debug")
		msg := err.Error()
		if msg == "" {
			msg = "Unknown error"
		}
		return DebugErrorPrefix + msg
	}

	return output
}

// Chat answers a freeform message conversationally.
func (s *Service) Chat(ctx context.Context, message string) string {
	if s.client == nil || !s.client.Configured() {
		log := logger.GetLogger()
		log.Error().Msg("Missing Gemini API key")
		return ChatMissingKeyFallback
	}

	prompt := fmt.Sprintf(s.prompts.Chat, message)
	output, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("Gemini API error")
		metrics.RecordModelError("chat")
		return ChatErrorFallback
	}

	return output
}

// RunCode asks the model to simulate executing the code and enforces the
// fixed three-section reply format. A reply missing any required section
// header is replaced with the canned execution-error block.
func (s *Service) RunCode(ctx context.Context, code, language string) string {
	if strings.TrimSpace(language) == "" {
		language = DefaultRunCodeLanguage
	}

	if s.client == nil || !s.client.Configured() {
		return RunCodeMissingKeyFallback
	}

	prompt := fmt.Sprintf(s.prompts.RunCode, language, code)
	output, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		log := logger.GetLogger()
		log.Error().Err(err).Msg("Code execution error")
		metrics.RecordModelError("run_code")
		return RunCodeErrorFallback
	}

	if !strings.Contains(output, "Output:") ||
		!strings.Contains(output, "Errors or Warnings:") ||
		!strings.Contains(output, "Explanation:") {
		log := logger.GetLogger()
		log.Error().Msg("Invalid response format from AI")
		metrics.RecordModelError("run_code")
		return RunCodeErrorFallback
	}

	return output
}
