package model

import "gonum.org/v1/gonum/mat"

// Transformer はデータ変換のインターフェース
type Transformer interface {
	// Fit は変換に必要な統計量を学習する
	Fit(X mat.Matrix) error

	// Transform は学習済みの統計量でデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitの直後に同じデータをTransformする
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
