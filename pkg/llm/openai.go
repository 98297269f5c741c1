package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/cming401/qrbot/pkg/report"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: ModelGPT4oMini,
	}
}

func (c *OpenAIClient) AnalyzeReport(ctx context.Context, input ReportInput) (*AnalysisResult, error) {
	fileName := input.FileName
	if fileName == "" {
		fileName = "report.pdf"
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
					FileData: openai.String(report.Encode(input.MIMEType, input.Data)),
					Filename: openai.String(fileName),
				}),
				openai.TextContentPart(blogPostPrompt),
			}),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	html := cleanHTMLResponse(resp.Choices[0].Message.Content)
	if html == "" {
		return nil, fmt.Errorf("empty blog post from openai")
	}

	return &AnalysisResult{
		BlogPostHTML:  html,
		ModelUsed:     c.modelName,
		PromptVersion: promptVersion,
	}, nil
}
