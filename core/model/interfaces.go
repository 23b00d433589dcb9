// Package model provides the estimator interfaces and shared state types
// used by every learning algorithm in svmgo.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer is the interface for models that can evaluate themselves on
// labeled data. For classifiers the score is mean accuracy.
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Classifier combines the interfaces every classification model in this
// library implements.
type Classifier interface {
	Fitter
	Predictor
	Scorer
}

// ParameterGetter is the interface for models that expose their
// hyperparameters in scikit-learn's get_params style.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow hyperparameter
// modification after construction.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters. Invalid values are
	// rejected without mutating the model.
	SetParams(params map[string]interface{}) error
}
