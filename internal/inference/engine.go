package inference

import (
	"errors"

	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/mlmodel"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/models"
	"github.com/Adil-Mukhtar/Sentiment-Analysis-Twitter/internal/textproc"
)

// ErrModelNotLoaded is returned when the vectorizer or classifier artifacts
// are not available. The request fails, the process keeps serving.
var ErrModelNotLoaded = errors.New("sentiment model not loaded")

// Engine runs the normalize → vectorize → classify pipeline over the
// artifacts loaded at startup. All state is read-only after construction, so
// an Engine is safe for concurrent use.
type Engine struct {
	normalizer *textproc.Normalizer
	vectorizer mlmodel.Vectorizer
	classifier mlmodel.Classifier
}

// NewEngine creates an inference engine over loaded model artifacts
func NewEngine(normalizer *textproc.Normalizer, vectorizer mlmodel.Vectorizer, classifier mlmodel.Classifier) *Engine {
	return &Engine{
		normalizer: normalizer,
		vectorizer: vectorizer,
		classifier: classifier,
	}
}

// Ready reports whether both model artifacts are loaded
func (e *Engine) Ready() bool {
	return e.vectorizer != nil && e.classifier != nil
}

// Predict classifies raw text and returns the sentiment label with the
// winning class's probability as a percentage. For a binary model the
// maximum probability is always at least 50.
func (e *Engine) Predict(text string) (string, float64, error) {
	if !e.Ready() {
		return "", 0, ErrModelNotLoaded
	}

	normalized := e.normalizer.Normalize(text)
	features := e.vectorizer.Transform(normalized)
	class, probabilities := e.classifier.PredictWithProbabilities(features)

	sentiment := models.SentimentNegative
	if class == 1 {
		sentiment = models.SentimentPositive
	}

	confidence := 0.0
	for _, p := range probabilities {
		if p > confidence {
			confidence = p
		}
	}

	return sentiment, confidence * 100, nil
}
