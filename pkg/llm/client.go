package llm

import (
	"context"
	"fmt"
)

type ReportInput struct {
	Data     []byte
	MIMEType string
	FileName string
}

type AnalysisResult struct {
	BlogPostHTML  string
	ModelUsed     string
	PromptVersion string
}

type AnalysisClient interface {
	AnalyzeReport(ctx context.Context, input ReportInput) (*AnalysisResult, error)
}

const (
	ModelClaudeHaiku = "claude-haiku-4.5"
	ModelGPT4oMini   = "gpt-4o-mini"
)

type ModelInfo struct {
	ID       string
	Provider string
	Label    string
	Default  bool
}

// SupportedModels lists the models a report can be analyzed with.
func SupportedModels() []ModelInfo {
	return []ModelInfo{
		{ID: ModelClaudeHaiku, Provider: "anthropic", Label: "Claude Haiku 4.5", Default: true},
		{ID: ModelGPT4oMini, Provider: "openai", Label: "GPT-4o mini", Default: false},
	}
}

// NewClient builds a provider client for a single analysis call. The API key
// is scoped to the returned client, never stored process-wide. An empty
// modelID selects the default model.
func NewClient(modelID, apiKey string) (AnalysisClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch modelID {
	case "", ModelClaudeHaiku:
		return NewAnthropicClient(apiKey), nil
	case ModelGPT4oMini:
		return NewOpenAIClient(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported model %q", modelID)
	}
}
