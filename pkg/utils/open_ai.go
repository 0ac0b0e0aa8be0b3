package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIDestinationClient is the alternative provider behind the same
// interface as the Gemini client. It returns no grounding sources; the chat
// completions API has no citation metadata.
type OpenAIDestinationClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIDestinationClient(apiKey, model string) DestinationGeneratorInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIDestinationClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIDestinationClient) Available() bool {
	return c != nil && c.client != nil
}

func (c *OpenAIDestinationClient) GenerateDestinations(ctx context.Context, query, language string) ([]SuggestedDestination, []GroundingSource, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil, fmt.Errorf("empty query")
	}
	if language == "" {
		language = "es"
	}

	prompt := fmt.Sprintf(`You are a travel guide for Antioquia, Colombia.
List up to %d destinations in Antioquia related to: %q.
Write descriptions in language %q.
Return a JSON array only, each element:
{"title":"","region":"","description":"","image_keyword":"","bus_ticket_cop":0,"avg_meal_cop":0,"travel_time":"","security_status":"safe"}`,
		maxSuggestedDestinations, query, language)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil, fmt.Errorf("no content")
	}

	return ParseSuggestedDestinations(resp.Choices[0].Message.Content), nil, nil
}
