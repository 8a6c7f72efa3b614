package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// vectorizerArtifact mirrors the JSON export of the fitted vectorizer
type vectorizerArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// classifierArtifact mirrors the JSON export of the fitted classifier
type classifierArtifact struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// LoadVectorizer reads a fitted TF-IDF vectorizer from its JSON export
func LoadVectorizer(path string) (*TFIDFVectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vectorizer artifact: %w", err)
	}

	var artifact vectorizerArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse vectorizer artifact: %w", err)
	}

	if len(artifact.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer artifact %s has an empty vocabulary", path)
	}
	if len(artifact.IDF) != len(artifact.Vocabulary) {
		return nil, fmt.Errorf("vectorizer artifact %s: %d idf weights for %d vocabulary terms",
			path, len(artifact.IDF), len(artifact.Vocabulary))
	}
	for term, idx := range artifact.Vocabulary {
		if idx < 0 || idx >= len(artifact.IDF) {
			return nil, fmt.Errorf("vectorizer artifact %s: term %q has index %d outside feature space",
				path, term, idx)
		}
	}

	return &TFIDFVectorizer{
		vocabulary: artifact.Vocabulary,
		idf:        artifact.IDF,
	}, nil
}

// LoadClassifier reads a fitted logistic regression model from its JSON export
func LoadClassifier(path string) (*LogisticClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier artifact: %w", err)
	}

	var artifact classifierArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse classifier artifact: %w", err)
	}

	if len(artifact.Coefficients) == 0 {
		return nil, fmt.Errorf("classifier artifact %s has no coefficients", path)
	}

	return &LogisticClassifier{
		weights:   mat.NewVecDense(len(artifact.Coefficients), artifact.Coefficients),
		intercept: artifact.Intercept,
	}, nil
}
