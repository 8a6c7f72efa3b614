package textproc

import (
	"regexp"
	"strings"

	"github.com/reiver/go-porterstemmer"
)

var nonLetters = regexp.MustCompile(`[^a-zA-Z]`)

// Normalizer prepares raw text for the vectorizer using the same
// preprocessing the model was trained with: strip non-letters, lowercase,
// drop stopwords, Porter-stem the rest.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer creates a normalizer with the fixed English stopword set
func NewNormalizer() *Normalizer {
	return &Normalizer{stopwords: englishStopwords}
}

// Normalize maps raw input text to a normalized token string. Input that is
// empty or contains only stopwords and non-letters normalizes to "".
func (n *Normalizer) Normalize(text string) string {
	cleaned := nonLetters.ReplaceAllString(text, " ")
	cleaned = strings.ToLower(cleaned)

	words := strings.Fields(cleaned)
	stems := make([]string, 0, len(words))
	for _, word := range words {
		if _, ok := n.stopwords[word]; ok {
			continue
		}
		stems = append(stems, porterstemmer.StemString(word))
	}

	return strings.Join(stems, " ")
}
