package svm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/svmgo/pkg/errors"
)

// KernelKind identifies a kernel family.
type KernelKind int

const (
	// KernelLinear is the plain dot product.
	KernelLinear KernelKind = iota
	// KernelPoly is (a·b + coef0)^degree.
	KernelPoly
	// KernelRBF is exp(-gamma·‖a-b‖²).
	KernelRBF
	// KernelSigmoid is tanh(gamma·a·b + coef0).
	KernelSigmoid
)

// String returns the scikit-learn style name of the kernel family.
func (k KernelKind) String() string {
	switch k {
	case KernelLinear:
		return "linear"
	case KernelPoly:
		return "poly"
	case KernelRBF:
		return "rbf"
	case KernelSigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// Kernel is an immutable kernel configuration. The zero value is the
// linear kernel. A gamma of 0 on the RBF and sigmoid families means
// "auto": it is resolved to 1/n_features when training starts.
type Kernel struct {
	kind   KernelKind
	degree int
	gamma  float64
	coef0  float64
}

// LinearKernel returns the linear (dot product) kernel.
func LinearKernel() Kernel {
	return Kernel{kind: KernelLinear}
}

// PolyKernel returns the polynomial kernel (a·b + coef0)^degree.
func PolyKernel(degree int, coef0 float64) Kernel {
	return Kernel{kind: KernelPoly, degree: degree, coef0: coef0}
}

// RBFKernel returns the Gaussian kernel exp(-gamma·‖a-b‖²).
// Pass gamma of 0 to default to 1/n_features at training time.
func RBFKernel(gamma float64) Kernel {
	return Kernel{kind: KernelRBF, gamma: gamma}
}

// SigmoidKernel returns the kernel tanh(gamma·a·b + coef0).
// Pass gamma of 0 to default to 1/n_features at training time.
func SigmoidKernel(gamma, coef0 float64) Kernel {
	return Kernel{kind: KernelSigmoid, gamma: gamma, coef0: coef0}
}

// ParseKernel returns a kernel of the named family with default
// parameters. Supported names are "linear", "poly", "rbf" and "sigmoid".
func ParseKernel(name string) (Kernel, error) {
	switch name {
	case "linear":
		return LinearKernel(), nil
	case "poly":
		return PolyKernel(3, 0), nil
	case "rbf":
		return RBFKernel(0), nil
	case "sigmoid":
		return SigmoidKernel(0, 0), nil
	default:
		return Kernel{}, errors.NewValidationError("kernel", "unsupported kernel name", name)
	}
}

// Kind returns the kernel family.
func (k Kernel) Kind() KernelKind { return k.kind }

// Degree returns the polynomial degree (meaningful for the poly family).
func (k Kernel) Degree() int { return k.degree }

// Gamma returns the configured gamma; 0 means auto.
func (k Kernel) Gamma() float64 { return k.gamma }

// Coef0 returns the additive constant of the poly and sigmoid families.
func (k Kernel) Coef0() float64 { return k.coef0 }

// String returns a readable description of the kernel configuration.
func (k Kernel) String() string {
	switch k.kind {
	case KernelPoly:
		return fmt.Sprintf("poly(degree=%d, coef0=%g)", k.degree, k.coef0)
	case KernelRBF:
		return fmt.Sprintf("rbf(gamma=%g)", k.gamma)
	case KernelSigmoid:
		return fmt.Sprintf("sigmoid(gamma=%g, coef0=%g)", k.gamma, k.coef0)
	default:
		return "linear"
	}
}

// validate checks the configuration at configure time, before any
// training state exists.
func (k Kernel) validate() error {
	switch k.kind {
	case KernelLinear:
		return nil
	case KernelPoly:
		if k.degree < 1 {
			return errors.NewValidationError("degree", "must be a positive integer", k.degree)
		}
		return nil
	case KernelRBF, KernelSigmoid:
		if k.gamma < 0 {
			return errors.NewValidationError("gamma", "must be positive (0 selects 1/n_features)", k.gamma)
		}
		return nil
	default:
		return errors.NewValidationError("kernel", "unsupported kernel family", int(k.kind))
	}
}

// usesGamma reports whether the family has a gamma parameter.
func (k Kernel) usesGamma() bool {
	return k.kind == KernelRBF || k.kind == KernelSigmoid
}

// withResolvedGamma returns a copy with the auto gamma replaced by
// 1/nFeatures. Called once when training starts; the resolved copy is
// what the fitted model stores.
func (k Kernel) withResolvedGamma(nFeatures int) Kernel {
	if k.usesGamma() && k.gamma == 0 && nFeatures > 0 {
		k.gamma = 1.0 / float64(nFeatures)
	}
	return k
}

// Eval computes the kernel value K(a, b). It fails when the vectors have
// different lengths. Every family is commutative: K(a,b) == K(b,a).
func (k Kernel) Eval(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("Kernel.Eval", len(a), len(b), 1)
	}
	return k.eval(a, b), nil
}

// eval is the unchecked evaluation used on training rows, whose lengths
// are uniform by construction.
func (k Kernel) eval(a, b []float64) float64 {
	switch k.kind {
	case KernelPoly:
		return math.Pow(floats.Dot(a, b)+k.coef0, float64(k.degree))
	case KernelRBF:
		d := floats.Distance(a, b, 2)
		return math.Exp(-k.gamma * d * d)
	case KernelSigmoid:
		return math.Tanh(k.gamma*floats.Dot(a, b) + k.coef0)
	default:
		return floats.Dot(a, b)
	}
}
