// Package preprocessing はSVMの学習前に使う特徴量スケーラーを提供します。
// RBFカーネルなど距離ベースのカーネルはスケールに敏感なため、
// 学習前の標準化を推奨します。
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/svmgo/core/model"
	"github.com/YuminosukeSato/svmgo/pkg/errors"
)

// 両スケーラーはmodel.Transformerを満たす
var (
	_ model.Transformer = (*StandardScaler)(nil)
	_ model.Transformer = (*MinMaxScaler)(nil)
)

// StandardScaler はscikit-learn互換の標準化スケーラー。
// データを平均0、標準偏差1に変換する。
type StandardScaler struct {
	model.BaseEstimator

	// Mean は各特徴量の平均値
	Mean []float64

	// Scale は各特徴量の標準偏差
	Scale []float64

	// NFeatures は特徴量の数
	NFeatures int
}

// NewStandardScaler は新しいStandardScalerを作成する
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit は訓練データから統計情報（平均、標準偏差）を計算する
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		s.Mean[j] = stat.Mean(col, nil)
		s.Scale[j] = stat.PopStdDev(col, nil)

		// 標準偏差が0に近い場合は1に設定（ゼロ除算を避ける）
		if math.Abs(s.Scale[j]) < 1e-8 {
			s.Scale[j] = 1.0
		}
	}

	s.SetFitted()
	return nil
}

// Transform は学習済みの統計情報を使ってデータを標準化する
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return result, nil
}

// FitTransform は学習と変換を一度に行う
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, X.At(i, j)*s.Scale[j]+s.Mean[j])
		}
	}
	return result, nil
}

// MinMaxScaler はscikit-learn互換のMin-Maxスケーラー。
// データを指定した範囲（デフォルト: [0, 1]）に変換する。
type MinMaxScaler struct {
	model.BaseEstimator

	// Min は各特徴量の最小値
	Min []float64

	// Max は各特徴量の最大値
	Max []float64

	// FeatureRange は変換後の範囲 [min, max]
	FeatureRange [2]float64

	// NFeatures は特徴量の数
	NFeatures int
}

// NewMinMaxScaler は新しいMinMaxScalerを作成する。
// featureRangeが空の場合は [0, 1] を使用する。
func NewMinMaxScaler(featureRange ...float64) *MinMaxScaler {
	scaler := &MinMaxScaler{FeatureRange: [2]float64{0, 1}}
	if len(featureRange) == 2 {
		scaler.FeatureRange = [2]float64{featureRange[0], featureRange[1]}
	}
	return scaler
}

// Fit は訓練データから各特徴量の最小値・最大値を計算する
func (s *MinMaxScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("MinMaxScaler.Fit", "empty data", errors.ErrEmptyData)
	}
	if s.FeatureRange[0] >= s.FeatureRange[1] {
		return errors.NewValidationError("feature_range", "min must be less than max", s.FeatureRange)
	}

	s.NFeatures = c
	s.Min = make([]float64, c)
	s.Max = make([]float64, c)

	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		s.Min[j] = col[0]
		s.Max[j] = col[0]
		for _, v := range col[1:] {
			s.Min[j] = math.Min(s.Min[j], v)
			s.Max[j] = math.Max(s.Max[j], v)
		}
	}

	s.SetFitted()
	return nil
}

// Transform は学習済みの最小値・最大値を使ってデータをスケーリングする
func (s *MinMaxScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", s.NFeatures, c, 1)
	}

	lo, hi := s.FeatureRange[0], s.FeatureRange[1]
	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			span := s.Max[j] - s.Min[j]
			if span == 0 {
				// 定数特徴量は範囲の下限に写す
				result.Set(i, j, lo)
				continue
			}
			scaled := (X.At(i, j) - s.Min[j]) / span
			result.Set(i, j, lo+scaled*(hi-lo))
		}
	}
	return result, nil
}

// FitTransform は学習と変換を一度に行う
func (s *MinMaxScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
