package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiAIProvider(client *genai.Client, model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiProvider{client: client, model: model}
}

func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (Message, error) {
	model := p.client.GenerativeModel(p.model)
	res, err := model.GenerateContent(ctx, extractParts(req.Messages)...)
	if err != nil {
		return Message{}, err
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return Message{}, errors.New("no candidates found")
	}
	return Message{
		Role:    "assistant",
		Content: fmt.Sprintf("%v", res.Candidates[0].Content.Parts[0]),
	}, nil
}

func extractParts(messages []Message) []genai.Part {
	var parts []genai.Part
	for _, msg := range messages {
		parts = append(parts, genai.Text(msg.Content))
	}
	return parts
}
