package svm

import (
	"math"
	"testing"
)

func TestKernelEvalKnownValues(t *testing.T) {
	a := []float64{1.0, 2.0}
	b := []float64{3.0, 4.0}

	tests := []struct {
		name      string
		kernel    Kernel
		want      float64
		tolerance float64
	}{
		{
			name:      "linear dot product",
			kernel:    LinearKernel(),
			want:      11.0, // 1*3 + 2*4
			tolerance: 1e-12,
		},
		{
			name:      "poly degree 2 coef0 1",
			kernel:    PolyKernel(2, 1.0),
			want:      144.0, // (11 + 1)^2
			tolerance: 1e-9,
		},
		{
			name:      "poly degree 1 equals shifted linear",
			kernel:    PolyKernel(1, 0.5),
			want:      11.5,
			tolerance: 1e-12,
		},
		{
			name:      "rbf gamma 0.5",
			kernel:    RBFKernel(0.5),
			want:      math.Exp(-0.5 * 8.0), // ‖a-b‖² = 4 + 4
			tolerance: 1e-12,
		},
		{
			name:      "sigmoid gamma 0.1 coef0 -1",
			kernel:    SigmoidKernel(0.1, -1.0),
			want:      math.Tanh(0.1*11.0 - 1.0),
			tolerance: 1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.kernel.Eval(a, b)
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRBFOfIdenticalVectorsIsOne(t *testing.T) {
	k := RBFKernel(3.0)
	v := []float64{0.5, -2.0, 7.25}
	got, err := k.Eval(v, v)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("K(v, v) = %v, want 1", got)
	}
}

func TestKernelCommutativity(t *testing.T) {
	kernels := []struct {
		name   string
		kernel Kernel
	}{
		{"linear", LinearKernel()},
		{"poly", PolyKernel(3, 1.0)},
		{"rbf", RBFKernel(0.7)},
		{"sigmoid", SigmoidKernel(0.2, 0.5)},
	}

	pairs := [][2][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{-1.5, 0.25, 3.75}, {2.0, -0.5, 1.0}},
		{{0, 0, 0}, {1, -1, 2}},
	}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for _, pair := range pairs {
				ab, err := k.kernel.Eval(pair[0], pair[1])
				if err != nil {
					t.Fatalf("Eval(a, b) error = %v", err)
				}
				ba, err := k.kernel.Eval(pair[1], pair[0])
				if err != nil {
					t.Fatalf("Eval(b, a) error = %v", err)
				}
				if math.Abs(ab-ba) > 1e-12 {
					t.Errorf("K(a,b) = %v but K(b,a) = %v", ab, ba)
				}
			}
		})
	}
}

func TestKernelEvalDimensionMismatch(t *testing.T) {
	k := RBFKernel(1.0)
	_, err := k.Eval([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Fatal("Eval() with mismatched lengths should fail")
	}
}

func TestKernelValidate(t *testing.T) {
	tests := []struct {
		name    string
		kernel  Kernel
		wantErr bool
	}{
		{"linear is always valid", LinearKernel(), false},
		{"poly with positive degree", PolyKernel(3, 0), false},
		{"poly with zero degree", PolyKernel(0, 0), true},
		{"poly with negative degree", PolyKernel(-1, 0), true},
		{"rbf with auto gamma", RBFKernel(0), false},
		{"rbf with negative gamma", RBFKernel(-0.1), true},
		{"sigmoid with negative gamma", SigmoidKernel(-1, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kernel.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKernelAutoGammaResolution(t *testing.T) {
	k := RBFKernel(0).withResolvedGamma(4)
	if math.Abs(k.Gamma()-0.25) > 1e-12 {
		t.Errorf("auto gamma = %v, want 0.25", k.Gamma())
	}

	// An explicit gamma must survive resolution untouched.
	k = RBFKernel(2.5).withResolvedGamma(4)
	if k.Gamma() != 2.5 {
		t.Errorf("explicit gamma = %v, want 2.5", k.Gamma())
	}

	// The linear kernel has no gamma to resolve.
	k = LinearKernel().withResolvedGamma(4)
	if k.Gamma() != 0 {
		t.Errorf("linear gamma = %v, want 0", k.Gamma())
	}
}

func TestParseKernel(t *testing.T) {
	for _, name := range []string{"linear", "poly", "rbf", "sigmoid"} {
		k, err := ParseKernel(name)
		if err != nil {
			t.Errorf("ParseKernel(%q) error = %v", name, err)
			continue
		}
		if k.Kind().String() != name {
			t.Errorf("ParseKernel(%q).Kind() = %v", name, k.Kind())
		}
	}

	if _, err := ParseKernel("quantum"); err == nil {
		t.Error("ParseKernel with unknown name should fail")
	}
}
