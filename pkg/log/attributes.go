// Package log defines standard attribute keys for machine learning operations.
//
// Using these keys consistently enables structured log analysis and
// filtering across the library. Keys follow a hierarchical naming
// convention (e.g. "model.name", "data.samples").
package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of machine learning model.
	// Example: "SVC"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "svm", "preprocessing", "metrics"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"
)

// Training progress and results.
const (
	// IterationKey records the current pass number of an iterative solver.
	IterationKey = "training.iteration"

	// ConvergedKey records whether the solver reached its stopping
	// criterion before the iteration cap.
	ConvergedKey = "training.converged"

	// SupportVectorsKey records the number of support vectors retained
	// after training.
	SupportVectorsKey = "training.support_vectors"

	// AccuracyKey records classification accuracy for score operations.
	AccuracyKey = "metrics.accuracy"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Prediction context.
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"

	// ConfidenceKey records prediction confidence in [0, 1).
	ConfidenceKey = "preds.confidence"
)

// Standard attribute values for OperationKey.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
)
