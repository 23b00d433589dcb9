package model

import "gonum.org/v1/gonum/mat"

// Fitter は教師あり学習が可能なモデルのインターフェース
type Fitter interface {
	// Fit は訓練データ X とラベル y でモデルを学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測ラベルを返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// DecisionScorer は決定境界からの生のスコアを公開するモデルのインターフェース
type DecisionScorer interface {
	// DecisionFunction は各サンプルの決定関数値を返す
	DecisionFunction(X mat.Matrix) (*mat.VecDense, error)
}
