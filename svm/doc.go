// Package svm implements a kernel support vector machine classifier
// trained with a simplified sequential minimal optimization (SMO) solver.
//
// The entry point is SVC, a binary soft-margin classifier in the style of
// scikit-learn's SVC:
//
//	clf, err := svm.NewSVC(
//	    svm.WithKernel(svm.RBFKernel(10)),
//	    svm.WithC(100),
//	    svm.WithRandomState(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := clf.Fit(X, y); err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := clf.Predict(XTest)
//
// Training solves the dual problem by repeatedly optimizing two Lagrange
// multipliers at a time. The solver is a local, greedy coordinate-ascent
// procedure: it stops at a KKT-approximate stationary point within
// tolerance, not at a guaranteed global optimum. Only the support vectors
// (examples with nonzero multiplier) are retained after training; the
// rest of the dataset is discarded.
//
// Kernels are closed configurations rather than user-supplied callbacks:
// linear, polynomial, RBF and sigmoid are supported, all validated at
// configuration time.
package svm
