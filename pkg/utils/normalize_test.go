package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "guatape", "guatape"},
		{"uppercase", "GUATAPE", "guatape"},
		{"diacritics", "Guatapé", "guatape"},
		{"diacritics and spaces", "Santa Fe de Antioquia", "santafedeantioquia"},
		{"enye", "El Peñol", "elpenol"},
		{"file extension", "guatape.jpg", "guatape"},
		{"jpeg extension", "Jardín.jpeg", "jardin"},
		{"local prefix", "local-guatape", "guatape"},
		{"prefix and extension", "local-Guatapé.png", "guatape"},
		{"punctuation", "  ¡Jericó! ", "jerico"},
		{"digits kept", "ruta 25", "ruta25"},
		{"only punctuation", "¿?!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Guatapé", "local-Jardín.jpg", "Santa Fe de Antioquia",
		"localidad", "foo.jpg.png", "ÁÉÍÓÚ üñ", "already-normal",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", in)
	}
}
