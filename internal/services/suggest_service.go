package services

import (
	"sort"
	"strings"

	"paisalocal/internal/gazetteer"
	"paisalocal/pkg/utils"
)

const maxSuggestions = 8

type SuggestServiceInterface interface {
	// Suggest returns autocomplete candidates for a partial query, sorted
	// lexicographically and capped. Pure function of the static tables.
	Suggest(partial string) []string
}

type SuggestService struct {
	candidates []string
}

func NewSuggestService() SuggestServiceInterface {
	seen := make(map[string]bool)
	var candidates []string
	for _, e := range gazetteer.Entries() {
		if !seen[e.Title] {
			seen[e.Title] = true
			candidates = append(candidates, e.Title)
		}
	}
	for _, name := range gazetteer.Municipalities() {
		if !seen[name] {
			seen[name] = true
			candidates = append(candidates, name)
		}
	}
	return &SuggestService{candidates: candidates}
}

func (s *SuggestService) Suggest(partial string) []string {
	normalized := utils.Normalize(partial)
	if len(normalized) < 2 {
		return []string{}
	}

	matches := make([]string, 0, maxSuggestions)
	for _, candidate := range s.candidates {
		if strings.Contains(utils.Normalize(candidate), normalized) {
			matches = append(matches, candidate)
		}
	}

	sort.Strings(matches)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return matches
}
