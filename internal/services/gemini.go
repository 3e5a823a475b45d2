package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// SummarizerService produces short natural-language assessments via a hosted
// model. Callers must treat every error as non-fatal: a failed or timed-out
// summary only omits the field from the response.
type SummarizerService interface {
	SummarizeFit(ctx context.Context, resumeText, jobDescription string) (string, error)
	SummarizeResume(ctx context.Context, resumeText string) (string, error)
}

type geminiService struct {
	client        *genai.Client
	modelName     string
	promptBuilder *PromptBuilder
}

func NewGeminiService(apiKey, modelName string) (SummarizerService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		modelName:     modelName,
		promptBuilder: NewPromptBuilder(),
	}, nil
}

// SummarizeFit implements SummarizerService.
func (g *geminiService) SummarizeFit(ctx context.Context, resumeText, jobDescription string) (string, error) {
	prompt := g.promptBuilder.BuildFitSummaryPrompt(resumeText, jobDescription)
	return g.generateText(ctx, prompt, 0.3)
}

// SummarizeResume implements SummarizerService.
func (g *geminiService) SummarizeResume(ctx context.Context, resumeText string) (string, error) {
	prompt := g.promptBuilder.BuildResumeSummaryPrompt(resumeText)
	return g.generateText(ctx, prompt, 0.3)
}

func (g *geminiService) generateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 1024,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
