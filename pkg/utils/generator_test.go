package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"markdown fences",
			"```json\n[{\"title\":\"Guatapé\"}]\n```",
			`[{"title":"Guatapé"}]`,
		},
		{
			"surrounding prose",
			"Here are the destinations: [{\"title\":\"Jardín\"}] Hope this helps!",
			`[{"title":"Jardín"}]`,
		},
		{
			"trailing comma",
			`[{"title":"Jericó",}]`,
			`[{"title":"Jericó"}]`,
		},
		{
			"object form",
			"text {\"destinations\":[]} more text",
			`{"destinations":[]}`,
		},
		{"no json at all", "sorry, I cannot help with that", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONResponse(tt.input))
		})
	}
}

func TestParseSuggestedDestinations(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		raw := "```json\n[{\"title\":\"Guatapé\",\"region\":\"Oriente\",\"bus_ticket_cop\":18000}]\n```"
		got := ParseSuggestedDestinations(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "Guatapé", got[0].Title)
		assert.Equal(t, 18000, got[0].BusTicketCOP)
	})

	t.Run("drops entries without title", func(t *testing.T) {
		raw := `[{"title":""},{"title":"  "},{"title":"Jardín"}]`
		got := ParseSuggestedDestinations(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "Jardín", got[0].Title)
	})

	t.Run("zeroes negative budgets", func(t *testing.T) {
		raw := `[{"title":"Jericó","bus_ticket_cop":-5,"avg_meal_cop":-1}]`
		got := ParseSuggestedDestinations(raw)
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].BusTicketCOP)
		assert.Equal(t, 0, got[0].AvgMealCOP)
	})

	t.Run("caps at three", func(t *testing.T) {
		raw := `[{"title":"a"},{"title":"b"},{"title":"c"},{"title":"d"}]`
		assert.Len(t, ParseSuggestedDestinations(raw), 3)
	})

	t.Run("object wrapper", func(t *testing.T) {
		raw := `{"destinations":[{"title":"Urrao"}]}`
		got := ParseSuggestedDestinations(raw)
		require.Len(t, got, 1)
		assert.Equal(t, "Urrao", got[0].Title)
	})

	t.Run("garbage means no results", func(t *testing.T) {
		assert.Empty(t, ParseSuggestedDestinations("not json"))
		assert.Empty(t, ParseSuggestedDestinations(`{"weird":"shape"}`))
	})
}
