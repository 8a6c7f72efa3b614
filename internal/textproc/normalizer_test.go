package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips punctuation and stopwords",
			input: "I love this product!!!",
			want:  "love product",
		},
		{
			name:  "lowercases before stemming",
			input: "LOVED It",
			want:  "love",
		},
		{
			name:  "stems suffixes",
			input: "running and amazing things",
			want:  "run amaz thing",
		},
		{
			name:  "contractions split into stopword pieces",
			input: "I don't hate it",
			want:  "hate",
		},
		{
			name:  "digits and symbols become spaces",
			input: "win $100 now!! 24/7",
			want:  "win",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only stopwords",
			input: "this is the and of",
			want:  "",
		},
		{
			name:  "only non-letters",
			input: "1234 !!! @#$",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_Deterministic(t *testing.T) {
	n := NewNormalizer()

	input := "The quick brown fox JUMPED over 2 lazy dogs!"
	first := n.Normalize(input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, n.Normalize(input))
	}
}

func TestNormalizer_IdempotentOnOwnOutput(t *testing.T) {
	n := NewNormalizer()

	// Stems of these inputs are fixed points of the pipeline: no letters to
	// strip, already lowercase, no stopwords, no further suffixes.
	inputs := []string{
		"I love this product!!!",
		"What a great, great product!",
	}
	for _, input := range inputs {
		normalized := n.Normalize(input)
		assert.Equal(t, normalized, n.Normalize(normalized))
	}
}
