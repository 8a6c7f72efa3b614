package mlmodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Classifier maps a feature vector to a class and a per-class probability
// vector. Class 0 is negative, class 1 is positive.
type Classifier interface {
	PredictWithProbabilities(x *mat.VecDense) (class int, probabilities []float64)
}

// LogisticClassifier is the fitted binary logistic regression model
type LogisticClassifier struct {
	weights   *mat.VecDense
	intercept float64
}

// NewLogisticClassifier builds a classifier from fitted coefficients and
// intercept
func NewLogisticClassifier(coefficients []float64, intercept float64) *LogisticClassifier {
	return &LogisticClassifier{
		weights:   mat.NewVecDense(len(coefficients), coefficients),
		intercept: intercept,
	}
}

// NumFeatures returns the number of coefficients
func (c *LogisticClassifier) NumFeatures() int {
	return c.weights.Len()
}

// PredictWithProbabilities scores x and returns the predicted class along
// with [P(class 0), P(class 1)]. A zero feature vector scores the bare
// intercept, so empty input still classifies deterministically.
func (c *LogisticClassifier) PredictWithProbabilities(x *mat.VecDense) (int, []float64) {
	z := mat.Dot(c.weights, x) + c.intercept
	pPositive := 1 / (1 + math.Exp(-z))

	probabilities := []float64{1 - pPositive, pPositive}
	class := 0
	if pPositive > probabilities[0] {
		class = 1
	}
	return class, probabilities
}
