package authentic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guadalupeabrile/authentic"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple lowercase", input: "naturaleza", want: "naturaleza"},
		{name: "uppercase", input: "Retratos", want: "retratos"},
		{name: "spaces become hyphens", input: "street photography", want: "street-photography"},
		{name: "diacritics stripped", input: "Paisajes Únicos!", want: "paisajes-unicos"},
		{name: "run of symbols collapses", input: "a  &&  b", want: "a-b"},
		{name: "leading and trailing trimmed", input: "--hola--", want: "hola"},
		{name: "numbers kept", input: "Sesión 2024", want: "sesion-2024"},
		{name: "ñ decomposes to n", input: "Años Nuevos", want: "anos-nuevos"},
		{name: "empty input", input: "", want: authentic.SlugFallback},
		{name: "only symbols", input: "!!!", want: authentic.SlugFallback},
		{name: "only whitespace", input: "   ", want: authentic.SlugFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authentic.Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Paisajes Únicos!",
		"naturaleza",
		"a  &&  b",
		"",
		"!!!",
		"Sesión 2024",
	}

	for _, input := range inputs {
		once := authentic.Slugify(input)
		assert.Equal(t, once, authentic.Slugify(once), "slugify not idempotent for %q", input)
	}
}

func TestSlugify_NeverEmpty(t *testing.T) {
	inputs := []string{"", "!!!", "---", "¡¿?!", "   ", "\t\n"}
	for _, input := range inputs {
		assert.NotEmpty(t, authentic.Slugify(input))
	}
}
