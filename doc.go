// Package svmgo provides a kernel support vector machine library for Go,
// built around a simplified sequential minimal optimization (SMO) solver.
//
// The library offers a scikit-learn-like API that makes it easy for
// engineers familiar with Python's ecosystem to train and use support
// vector classifiers in Go services.
//
// # Features
//
// - Binary soft-margin SVC with linear, polynomial, RBF and sigmoid kernels
// - Simplified SMO training with deterministic seeded runs
// - Margin and support vector analysis for fitted models
// - Robust error handling with structured error types
// - Parallel Gram matrix precomputation for repeated kernel lookups
//
// # Installation
//
// Install svmgo using go get:
//
//	go get github.com/YuminosukeSato/svmgo
//
// # Quick Start
//
// Here's a simple example of training a classifier:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/svmgo/svm"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Create training data
//	    X := mat.NewDense(4, 2, []float64{
//	        -2, -2,
//	        -1, -1,
//	        1, 1,
//	        2, 2,
//	    })
//	    y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
//
//	    // Create and train model
//	    clf, err := svm.NewSVC(svm.WithKernel(svm.LinearKernel()))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := clf.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Make predictions
//	    XTest := mat.NewDense(2, 2, []float64{-1.5, -1.5, 1.5, 1.5})
//	    predictions, err := clf.Predict(XTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("Predictions:", predictions)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - svm: The SVC classifier, kernels and the SMO solver
//   - preprocessing: Feature scalers (StandardScaler, MinMaxScaler)
//   - metrics: Classification metrics (Accuracy, Precision, Recall, F1)
//   - core/model: Shared estimator interfaces and state management
//   - core/parallel: CPU-parallel helpers
//   - pkg/errors: Structured errors and the warning system
//   - pkg/log: Structured logging utilities
package svmgo
