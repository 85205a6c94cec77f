package assist

import "context"

// ModelClient is the outbound boundary to the generative model. Configured
// reports whether a credential is present; GenerateContent submits one prompt
// and returns the model's raw text.
type ModelClient interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Canned fallback strings. Downstream failures never propagate to the chat
// UI as errors; they degrade to these user-visible messages.
const (
	DebugMissingKeyFallback = "Error: Gemini API key is not configured. Please check server settings."
	DebugErrorPrefix        = "Error connecting to Gemini API. Details: "

	ChatMissingKeyFallback = "Error: Gemini API key is not configured. Please check your environment variables."
	ChatErrorFallback      = "I'm sorry, I'm having trouble processing your request right now. Please check your API key configuration and try again."

	RunCodeEmptyFallback      = "Output:\nNo code provided\n\nErrors or Warnings:\nCode cannot be empty\n\nExplanation:\nPlease provide some code to execute."
	RunCodeMissingKeyFallback = "Output:\nError\n\nErrors or Warnings:\nAPI key not configured\n\nExplanation:\nThe server's API key is not properly configured. Please contact support."
	RunCodeErrorFallback      = "Output:\nExecution error\n\nErrors or Warnings:\nFailed to process code execution\n\nExplanation:\nThe system encountered an error while trying to execute your code. This might be due to invalid syntax or unsupported operations."
)

// DefaultRunCodeLanguage is assumed when the caller omits a language hint.
const DefaultRunCodeLanguage = "javascript"
