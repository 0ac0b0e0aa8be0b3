package utils

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiDestinationClient implements DestinationGeneratorInterface using
// Google's Gemini models.
type GeminiDestinationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiDestinationClient(apiKey, model string) (DestinationGeneratorInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiDestinationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiDestinationClient) Available() bool {
	return c != nil && c.client != nil
}

func (c *GeminiDestinationClient) GenerateDestinations(ctx context.Context, query, language string) ([]SuggestedDestination, []GroundingSource, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil, fmt.Errorf("empty query")
	}
	if language == "" {
		language = "es"
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so the lenient cleanup rarely has work to do.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(2048)

	prompt := c.buildPrompt(query, language)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, nil, fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	suggestions := ParseSuggestedDestinations(content)

	return suggestions, citationSources(resp.Candidates[0]), nil
}

func (c *GeminiDestinationClient) buildPrompt(query, language string) string {
	schema := `
[
  {
    "title": "string",
    "region": "one of: Valle de Aburrá, Oriente, Occidente, Norte, Nordeste, Suroeste, Bajo Cauca, Magdalena Medio, Urabá",
    "description": "2-3 sentences for a traveler",
    "image_keyword": "short image search phrase",
    "bus_ticket_cop": 25000,
    "avg_meal_cop": 18000,
    "travel_time": "e.g. 2 horas desde Medellín",
    "security_status": "safe | caution | critical"
  }
]`

	return fmt.Sprintf(`You are a travel guide for Antioquia, Colombia.
List up to %d destinations in Antioquia related to: %q.
Write descriptions in language %q. Budget amounts are Colombian pesos.

JSON schema (return exactly this array shape):
%s

Return JSON only. No comments, no markdown.`, maxSuggestedDestinations, query, language, schema)
}

// citationSources extracts grounding citations the model attached, if any.
func citationSources(cand *genai.Candidate) []GroundingSource {
	if cand == nil || cand.CitationMetadata == nil {
		return nil
	}
	sources := make([]GroundingSource, 0, len(cand.CitationMetadata.CitationSources))
	for _, cs := range cand.CitationMetadata.CitationSources {
		if cs == nil || cs.URI == nil || *cs.URI == "" {
			continue
		}
		sources = append(sources, GroundingSource{
			Title: hostOf(*cs.URI),
			URI:   *cs.URI,
		})
	}
	return sources
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
