package utils

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

// SuggestedDestination is the shape the generative provider is asked to
// return. Anything that fails validation after the lenient parse is dropped
// rather than propagated half-formed.
type SuggestedDestination struct {
	Title          string `json:"title"`
	Region         string `json:"region"`
	Description    string `json:"description"`
	ImageKeyword   string `json:"image_keyword"`
	BusTicketCOP   int    `json:"bus_ticket_cop"`
	AvgMealCOP     int    `json:"avg_meal_cop"`
	TravelTime     string `json:"travel_time"`
	SecurityStatus string `json:"security_status"`
}

// GroundingSource is a citation returned by the provider alongside the text.
type GroundingSource struct {
	Title string
	URI   string
}

type DestinationGeneratorInterface interface {
	// Available reports whether the provider was configured with a key.
	Available() bool
	// GenerateDestinations asks for up to maxSuggestedDestinations places
	// related to the query, in the given language.
	GenerateDestinations(ctx context.Context, query, language string) ([]SuggestedDestination, []GroundingSource, error)
}

const maxSuggestedDestinations = 3

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// CleanJSONResponse salvages JSON out of model output: markdown fences are
// stripped, the text is trimmed to the outermost bracket pair, and trailing
// commas are removed.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.IndexAny(content, "[{")
	if start < 0 {
		return ""
	}
	var end int
	if content[start] == '[' {
		end = strings.LastIndex(content, "]")
	} else {
		end = strings.LastIndex(content, "}")
	}
	if end <= start {
		return ""
	}
	content = content[start : end+1]

	return trailingCommaRe.ReplaceAllString(content, "$1")
}

// ParseSuggestedDestinations leniently cleans raw provider output, then
// strictly validates shape. Entries without a title are dropped, negative
// budget figures are zeroed, and the list is capped. A parse failure means
// "no results", never an error the caller has to distinguish.
func ParseSuggestedDestinations(raw string) []SuggestedDestination {
	cleaned := CleanJSONResponse(raw)
	if cleaned == "" {
		return nil
	}

	var suggestions []SuggestedDestination
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		// Some models wrap the array in an object.
		var wrapped struct {
			Destinations []SuggestedDestination `json:"destinations"`
		}
		if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil {
			return nil
		}
		suggestions = wrapped.Destinations
	}

	valid := make([]SuggestedDestination, 0, len(suggestions))
	for _, s := range suggestions {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			continue
		}
		if s.BusTicketCOP < 0 {
			s.BusTicketCOP = 0
		}
		if s.AvgMealCOP < 0 {
			s.AvgMealCOP = 0
		}
		valid = append(valid, s)
		if len(valid) == maxSuggestedDestinations {
			break
		}
	}
	return valid
}

// UnavailableGenerator is wired when no API key is configured; search then
// degrades to local-only results instead of failing.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Available() bool { return false }

func (UnavailableGenerator) GenerateDestinations(context.Context, string, string) ([]SuggestedDestination, []GroundingSource, error) {
	return nil, nil, nil
}
