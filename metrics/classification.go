// Package metrics は分類モデルの評価指標を提供します。
// scikit-learnのmetricsモジュールと同等のAPIを目指しています。
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/svmgo/pkg/errors"
)

// Accuracy は正解率（Accuracy）を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	// Accuracy = (1/n) * Σ 1{yTrue_i == yPred_i}
	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// AccuracyMatrix は行列形式の入力に対して正解率を計算する
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	// 入力検証
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("AccuracyMatrix", "empty matrix")
	}

	if rTrue != rPred || cTrue != cPred {
		return 0, errors.NewDimensionError("AccuracyMatrix", rTrue, rPred, 0)
	}

	if cTrue != 1 {
		return 0, errors.NewValueError("AccuracyMatrix", "must be a column vector (n×1 matrix)")
	}

	// VecDenseに変換してAccuracyを計算
	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)

	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return Accuracy(yTrueVec, yPredVec)
}

// BinaryConfusionMatrix は二値分類の混同行列
type BinaryConfusionMatrix struct {
	TP int // 真陽性
	FP int // 偽陽性
	FN int // 偽陰性
	TN int // 真陰性
}

// ConfusionMatrix はposLabelを陽性クラスとした混同行列を計算する
func ConfusionMatrix(yTrue, yPred *mat.VecDense, posLabel float64) (BinaryConfusionMatrix, error) {
	var cm BinaryConfusionMatrix

	n := yTrue.Len()
	if n == 0 {
		return cm, errors.NewValueError("ConfusionMatrix", "empty vector")
	}
	if yPred.Len() != n {
		return cm, errors.NewDimensionError("ConfusionMatrix", n, yPred.Len(), 0)
	}

	for i := 0; i < n; i++ {
		actual := yTrue.AtVec(i) == posLabel
		predicted := yPred.AtVec(i) == posLabel
		switch {
		case actual && predicted:
			cm.TP++
		case !actual && predicted:
			cm.FP++
		case actual && !predicted:
			cm.FN++
		default:
			cm.TN++
		}
	}
	return cm, nil
}

// Precision は二値分類の適合率（Precision）を計算する。
// 陽性と予測されたサンプルが一つもない場合、UndefinedMetricWarningを発生させて0を返す。
func Precision(yTrue, yPred *mat.VecDense, posLabel float64) (float64, error) {
	cm, err := ConfusionMatrix(yTrue, yPred, posLabel)
	if err != nil {
		return 0, err
	}

	if cm.TP+cm.FP == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted positive samples", 0))
		return 0, nil
	}
	return float64(cm.TP) / float64(cm.TP+cm.FP), nil
}

// Recall は二値分類の再現率（Recall）を計算する。
// 真の陽性サンプルが一つもない場合、UndefinedMetricWarningを発生させて0を返す。
func Recall(yTrue, yPred *mat.VecDense, posLabel float64) (float64, error) {
	cm, err := ConfusionMatrix(yTrue, yPred, posLabel)
	if err != nil {
		return 0, err
	}

	if cm.TP+cm.FN == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall", "no true positive samples", 0))
		return 0, nil
	}
	return float64(cm.TP) / float64(cm.TP+cm.FN), nil
}

// F1Score は二値分類のF1スコア（適合率と再現率の調和平均）を計算する。
// 適合率と再現率がともに0の場合、UndefinedMetricWarningを発生させて0を返す。
func F1Score(yTrue, yPred *mat.VecDense, posLabel float64) (float64, error) {
	precision, err := Precision(yTrue, yPred, posLabel)
	if err != nil {
		return 0, err
	}
	recall, err := Recall(yTrue, yPred, posLabel)
	if err != nil {
		return 0, err
	}

	if precision+recall == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("f1_score", "precision and recall are both zero", 0))
		return 0, nil
	}
	return 2 * precision * recall / (precision + recall), nil
}
