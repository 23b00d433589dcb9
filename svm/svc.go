package svm

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/svmgo/core/model"
	"github.com/YuminosukeSato/svmgo/metrics"
	"github.com/YuminosukeSato/svmgo/pkg/errors"
	"github.com/YuminosukeSato/svmgo/pkg/log"
)

// SVC is a binary soft-margin support vector classifier trained with a
// simplified SMO solver.
//
// The two class labels may be any two distinct float64 values; they are
// recorded in first-seen order and encoded internally to -1 (first seen)
// and +1 (second seen). After Fit only the support vectors, the bias and
// the label pair are retained.
type SVC struct {
	state *model.StateManager

	// Hyperparameters
	kernel         Kernel
	c              float64 // Box constant: 0 ≤ alpha_i ≤ C
	tol            float64 // KKT tolerance and minimum accepted update
	maxIter        int     // Cap on full passes; a soft deadline, not an error
	randomState    int64   // Seed for the pair-selection draw; -1 means unseeded
	precomputeGram bool    // Cache the N×N Gram matrix during training
	logger         log.Logger

	// Fitted state
	supportVectors_ []SupportVector
	bias_           float64
	classes_        [2]float64
	kernel_         Kernel // kernel with auto gamma resolved
	nFeatures_      int
	nSamples_       int
	converged_      bool
	nIter_          int

	rng *rand.Rand
}

// Interface conformance.
var (
	_ model.Classifier      = (*SVC)(nil)
	_ model.DecisionScorer  = (*SVC)(nil)
	_ model.ParameterGetter = (*SVC)(nil)
	_ model.ParameterSetter = (*SVC)(nil)
)

// SupportVector is one retained training example: its feature vector, its
// final Lagrange multiplier and its encoded label.
type SupportVector struct {
	X     []float64
	Alpha float64
	Y     float64 // -1 for the first discovered class, +1 for the second
}

// PredictionDetail is the extended prediction result for a single sample.
type PredictionDetail struct {
	// Label is the predicted class label in the caller's encoding.
	Label float64
	// Decision is the raw decision function value f(x).
	Decision float64
	// Confidence is tanh(|f(x)|) mapped into [0, 1). It is illustrative,
	// not a calibrated probability.
	Confidence float64
	// Distance is the absolute distance |f(x)| from the decision boundary.
	Distance float64
}

// SVCOption is a functional option for SVC.
type SVCOption func(*SVC)

// WithKernel sets the kernel configuration.
func WithKernel(k Kernel) SVCOption {
	return func(s *SVC) { s.kernel = k }
}

// WithC sets the box constant of the soft margin. Must be positive.
func WithC(c float64) SVCOption {
	return func(s *SVC) { s.c = c }
}

// WithTol sets the KKT tolerance. Must be positive.
func WithTol(tol float64) SVCOption {
	return func(s *SVC) { s.tol = tol }
}

// WithMaxIter caps the number of full optimization passes. Hitting the
// cap is not an error; see Converged.
func WithMaxIter(maxIter int) SVCOption {
	return func(s *SVC) { s.maxIter = maxIter }
}

// WithRandomState seeds the random draw that picks the second multiplier
// of each working pair. Two fits on identical data with the same seed
// produce identical support vectors and bias. Convergence speed is
// sensitive to this draw.
func WithRandomState(seed int64) SVCOption {
	return func(s *SVC) { s.randomState = seed }
}

// WithPrecomputedGram caches all pairwise kernel values for the duration
// of one Fit call. This trades O(N²) memory for O(1) lookups and should
// be left off for large datasets.
func WithPrecomputedGram(enabled bool) SVCOption {
	return func(s *SVC) { s.precomputeGram = enabled }
}

// WithLogger attaches an optional training observer. Pass boundaries are
// reported at debug level and fit summaries at info level; the inner
// optimization loop itself never logs.
func WithLogger(logger log.Logger) SVCOption {
	return func(s *SVC) { s.logger = logger }
}

// NewSVC creates a new SVC classifier. Hyperparameters are validated
// immediately: a non-positive C, tol or max_iter, or an invalid kernel
// configuration, is rejected here and no classifier is returned.
func NewSVC(opts ...SVCOption) (*SVC, error) {
	svc := &SVC{
		state:       model.NewStateManager(),
		kernel:      RBFKernel(0),
		c:           1.0,
		tol:         1e-3,
		maxIter:     1000,
		randomState: -1,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.c <= 0 {
		return nil, errors.NewValidationError("C", "must be positive", svc.c)
	}
	if svc.tol <= 0 {
		return nil, errors.NewValidationError("tol", "must be positive", svc.tol)
	}
	if svc.maxIter <= 0 {
		return nil, errors.NewValidationError("max_iter", "must be positive", svc.maxIter)
	}
	if err := svc.kernel.validate(); err != nil {
		return nil, err
	}

	svc.resetRNG()
	return svc, nil
}

func (svc *SVC) resetRNG() {
	if svc.randomState >= 0 {
		svc.rng = rand.New(rand.NewSource(svc.randomState))
	} else {
		svc.rng = rand.New(rand.NewSource(rand.Int63()))
	}
}

// Fit trains the classifier on X (n_samples × n_features) and y
// (n_samples × 1). Exactly two distinct label values must be present;
// otherwise Fit fails before any optimizer state is allocated and the
// classifier remains untrained and reusable.
//
// Non-convergence within max_iter passes is not an error: the best
// multipliers found so far are kept, Converged reports false, and a
// ConvergenceWarning is routed through the pkg/errors warning handler.
func (svc *SVC) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "SVC.Fit")
	start := time.Now()

	// Reseed per fit so identical data and seed give identical models,
	// regardless of what the instance trained on before.
	if svc.randomState >= 0 {
		svc.resetRNG()
	}

	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("SVC.Fit", "empty data", errors.ErrEmptyData)
	}
	yRows, yCols := y.Dims()
	if yRows != nSamples {
		return errors.NewDimensionError("SVC.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("SVC.Fit", "y must be a column vector (n×1 matrix)")
	}
	if err := errors.CheckMatrix("SVC.Fit", X, nSamples, nFeatures, 0); err != nil {
		return err
	}

	// Label discovery happens before anything is allocated, so a bad
	// label set leaves the classifier exactly as it was.
	classes, encoded, err := encodeLabels(y, nSamples)
	if err != nil {
		return err
	}

	rows := make([][]float64, nSamples)
	for i := 0; i < nSamples; i++ {
		rows[i] = mat.Row(nil, i, X)
	}

	kernel := svc.kernel.withResolvedGamma(nFeatures)

	var gram *gramMatrix
	if svc.precomputeGram {
		gram = newGramMatrix(rows, kernel)
	}

	solver := &smoSolver{
		x:       rows,
		y:       encoded,
		kernel:  kernel,
		c:       svc.c,
		tol:     svc.tol,
		maxIter: svc.maxIter,
		rng:     svc.rng,
		gram:    gram,
		logger:  svc.logger,
		state:   optimizerState{alpha: make([]float64, nSamples)},
	}
	if err := solver.solve(); err != nil {
		return err
	}

	// Freeze examples with a material multiplier into the support vector
	// set; everything else is discarded.
	var svs []SupportVector
	for i, a := range solver.state.alpha {
		if a > svc.tol {
			svs = append(svs, SupportVector{X: rows[i], Alpha: a, Y: encoded[i]})
		}
	}

	svc.supportVectors_ = svs
	svc.bias_ = solver.state.bias
	svc.classes_ = classes
	svc.kernel_ = kernel
	svc.nFeatures_ = nFeatures
	svc.nSamples_ = nSamples
	svc.converged_ = solver.state.converged
	svc.nIter_ = solver.state.passes

	svc.state.SetDimensions(nFeatures, nSamples)
	svc.state.SetFitted()

	if !svc.converged_ {
		errors.Warn(errors.NewConvergenceWarning("SVC", svc.nIter_, ""))
	}
	if svc.logger != nil {
		svc.logger.Info("svc fit complete",
			log.ModelNameKey, "SVC",
			log.OperationKey, log.OperationFit,
			log.SamplesKey, nSamples,
			log.FeaturesKey, nFeatures,
			log.ConvergedKey, svc.converged_,
			log.SupportVectorsKey, len(svs),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}
	return nil
}

// encodeLabels scans y once, records the two distinct labels in
// first-seen order, and returns the ±1 encoding. More or fewer than two
// distinct labels is a precondition violation.
func encodeLabels(y mat.Matrix, nSamples int) ([2]float64, []float64, error) {
	var classes [2]float64
	seen := 0
	encoded := make([]float64, nSamples)

	for i := 0; i < nSamples; i++ {
		label := y.At(i, 0)
		switch {
		case seen > 0 && label == classes[0]:
			encoded[i] = -1
		case seen > 1 && label == classes[1]:
			encoded[i] = +1
		case seen == 0:
			classes[0] = label
			encoded[i] = -1
			seen = 1
		case seen == 1:
			classes[1] = label
			encoded[i] = +1
			seen = 2
		default:
			return classes, nil, errors.NewValidationError("y",
				"expected exactly 2 distinct class labels, found more", label)
		}
	}
	if seen != 2 {
		return classes, nil, errors.NewValidationError("y",
			"expected exactly 2 distinct class labels", seen)
	}
	return classes, encoded, nil
}

// decisionValue computes f(x) = bias + Σ alpha_i·y_i·K(sv_i, x) over the
// stored support vectors. With no fitted state it returns the neutral
// value 0.
func (svc *SVC) decisionValue(x []float64) float64 {
	sum := svc.bias_
	for _, sv := range svc.supportVectors_ {
		sum += sv.Alpha * sv.Y * svc.kernel_.eval(sv.X, x)
	}
	return sum
}

// Predict returns the predicted class label for each row of X. A decision
// value of exactly zero maps to the second discovered class: the tie rule
// is sign(f(x)) ≥ 0, a deterministic convention.
func (svc *SVC) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !svc.state.IsFitted() {
		return nil, errors.NewNotFittedError("SVC", "Predict")
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != svc.nFeatures_ {
		return nil, errors.NewDimensionError("SVC.Predict", svc.nFeatures_, nFeatures, 1)
	}

	predictions := mat.NewDense(nSamples, 1, nil)
	row := make([]float64, nFeatures)
	for i := 0; i < nSamples; i++ {
		mat.Row(row, i, X)
		if svc.decisionValue(row) >= 0 {
			predictions.Set(i, 0, svc.classes_[1])
		} else {
			predictions.Set(i, 0, svc.classes_[0])
		}
	}
	return predictions, nil
}

// DecisionFunction returns the raw decision value f(x) for each row of X.
// Before training it returns a zero vector rather than failing; callers
// needing strictness should check IsFitted first.
func (svc *SVC) DecisionFunction(X mat.Matrix) (*mat.VecDense, error) {
	nSamples, nFeatures := X.Dims()
	out := mat.NewVecDense(nSamples, nil)
	if !svc.state.IsFitted() {
		return out, nil
	}
	if nFeatures != svc.nFeatures_ {
		return nil, errors.NewDimensionError("SVC.DecisionFunction", svc.nFeatures_, nFeatures, 1)
	}

	row := make([]float64, nFeatures)
	for i := 0; i < nSamples; i++ {
		mat.Row(row, i, X)
		out.SetVec(i, svc.decisionValue(row))
	}
	return out, nil
}

// PredictDetail returns the extended prediction result for one sample:
// the label, the raw decision value, a confidence in [0, 1) and the
// absolute distance from the decision boundary.
func (svc *SVC) PredictDetail(x []float64) (PredictionDetail, error) {
	if !svc.state.IsFitted() {
		return PredictionDetail{}, errors.NewNotFittedError("SVC", "PredictDetail")
	}
	if len(x) != svc.nFeatures_ {
		return PredictionDetail{}, errors.NewDimensionError("SVC.PredictDetail", svc.nFeatures_, len(x), 1)
	}

	f := svc.decisionValue(x)
	label := svc.classes_[0]
	if f >= 0 {
		label = svc.classes_[1]
	}
	return PredictionDetail{
		Label:      label,
		Decision:   f,
		Confidence: math.Tanh(math.Abs(f)),
		Distance:   math.Abs(f),
	}, nil
}

// Score returns the mean accuracy of Predict on the given test data.
func (svc *SVC) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := svc.Predict(X)
	if err != nil {
		return 0, err
	}
	acc, err := metrics.AccuracyMatrix(y, predictions)
	if err != nil {
		return 0, err
	}
	if svc.logger != nil {
		svc.logger.Info("svc score complete",
			log.ModelNameKey, "SVC",
			log.OperationKey, log.OperationScore,
			log.AccuracyKey, acc,
		)
	}
	return acc, nil
}

// IsFitted returns whether the classifier has been trained.
func (svc *SVC) IsFitted() bool {
	return svc.state.IsFitted()
}

// Classes returns the two class labels in the order they were discovered
// during fitting. The first maps to negative decision values, the second
// to non-negative ones.
func (svc *SVC) Classes() [2]float64 {
	return svc.classes_
}

// Converged reports whether the last Fit reached a clean pass before the
// iteration cap. A capped fit is still usable; see WithMaxIter.
func (svc *SVC) Converged() bool {
	return svc.converged_
}

// NIter returns the number of full optimization passes the last Fit ran.
func (svc *SVC) NIter() int {
	return svc.nIter_
}

// Bias returns the fitted decision function bias.
func (svc *SVC) Bias() float64 {
	return svc.bias_
}

// Kernel returns the kernel in effect after fitting, with any auto gamma
// resolved. Before fitting it returns the configured kernel.
func (svc *SVC) Kernel() Kernel {
	if svc.state.IsFitted() {
		return svc.kernel_
	}
	return svc.kernel
}

// GetParams returns the hyperparameters in scikit-learn's get_params style.
func (svc *SVC) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"kernel":          svc.kernel.Kind().String(),
		"degree":          svc.kernel.Degree(),
		"gamma":           svc.kernel.Gamma(),
		"coef0":           svc.kernel.Coef0(),
		"C":               svc.c,
		"tol":             svc.tol,
		"max_iter":        svc.maxIter,
		"random_state":    svc.randomState,
		"precompute_gram": svc.precomputeGram,
	}
}

// SetParams updates hyperparameters from a map. Values are validated
// before anything is committed, so an invalid map leaves the classifier
// unchanged. Setting "kernel" by name resets that family to its default
// parameters; "degree", "gamma" and "coef0" then adjust it.
func (svc *SVC) SetParams(params map[string]interface{}) error {
	kernel := svc.kernel
	c := svc.c
	tol := svc.tol
	maxIter := svc.maxIter
	randomState := svc.randomState
	precomputeGram := svc.precomputeGram

	for key, value := range params {
		switch key {
		case "kernel":
			name, ok := value.(string)
			if !ok {
				return errors.NewValidationError("kernel", "must be a string", value)
			}
			parsed, err := ParseKernel(name)
			if err != nil {
				return err
			}
			// Preserve the tunable parameters across a family switch.
			parsed.degree, parsed.gamma, parsed.coef0 = kernel.degree, kernel.gamma, kernel.coef0
			if parsed.kind == KernelPoly && parsed.degree < 1 {
				parsed.degree = 3
			}
			kernel = parsed
		case "degree":
			d, ok := value.(int)
			if !ok {
				return errors.NewValidationError("degree", "must be an int", value)
			}
			kernel.degree = d
		case "gamma":
			g, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("gamma", "must be a float64", value)
			}
			kernel.gamma = g
		case "coef0":
			c0, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("coef0", "must be a float64", value)
			}
			kernel.coef0 = c0
		case "C":
			v, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("C", "must be a float64", value)
			}
			c = v
		case "tol":
			v, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("tol", "must be a float64", value)
			}
			tol = v
		case "max_iter":
			v, ok := value.(int)
			if !ok {
				return errors.NewValidationError("max_iter", "must be an int", value)
			}
			maxIter = v
		case "random_state":
			v, ok := value.(int64)
			if !ok {
				return errors.NewValidationError("random_state", "must be an int64", value)
			}
			randomState = v
		case "precompute_gram":
			v, ok := value.(bool)
			if !ok {
				return errors.NewValidationError("precompute_gram", "must be a bool", value)
			}
			precomputeGram = v
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}

	if c <= 0 {
		return errors.NewValidationError("C", "must be positive", c)
	}
	if tol <= 0 {
		return errors.NewValidationError("tol", "must be positive", tol)
	}
	if maxIter <= 0 {
		return errors.NewValidationError("max_iter", "must be positive", maxIter)
	}
	if err := kernel.validate(); err != nil {
		return err
	}

	svc.kernel = kernel
	svc.c = c
	svc.tol = tol
	svc.maxIter = maxIter
	svc.precomputeGram = precomputeGram
	if randomState != svc.randomState {
		svc.randomState = randomState
		svc.resetRNG()
	}
	return nil
}
