package mlmodel

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Vectorizer turns normalized text into a fixed-dimension feature vector
type Vectorizer interface {
	Transform(text string) *mat.VecDense
}

// TFIDFVectorizer reproduces the fitted TF-IDF transform exported by the
// training pipeline: raw term counts over a fixed vocabulary, scaled by
// per-term idf and L2-normalized.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewTFIDFVectorizer builds a vectorizer from a term→index vocabulary and
// per-term idf weights
func NewTFIDFVectorizer(vocabulary map[string]int, idf []float64) *TFIDFVectorizer {
	return &TFIDFVectorizer{vocabulary: vocabulary, idf: idf}
}

// NumFeatures returns the dimension of the feature space
func (v *TFIDFVectorizer) NumFeatures() int {
	return len(v.idf)
}

// Transform vectorizes normalized text. Terms outside the vocabulary are
// ignored, as are single-letter tokens (the training tokenizer keeps words of
// two or more characters). Text with no known terms yields the zero vector.
func (v *TFIDFVectorizer) Transform(text string) *mat.VecDense {
	features := make([]float64, len(v.idf))

	for _, token := range strings.Fields(text) {
		if len(token) < 2 {
			continue
		}
		if idx, ok := v.vocabulary[token]; ok {
			features[idx]++
		}
	}

	var sumSquares float64
	for i, count := range features {
		if count == 0 {
			continue
		}
		features[i] = count * v.idf[i]
		sumSquares += features[i] * features[i]
	}

	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range features {
			features[i] /= norm
		}
	}

	return mat.NewVecDense(len(features), features)
}
