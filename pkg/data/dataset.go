package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrShape reports inputs and targets that cannot form a dataset.
var ErrShape = errors.New("invalid dataset shape")

// Dataset holds fixed training samples: one row of X per sample and the
// matching scalar target in Y.
type Dataset struct {
	X *mat.Dense
	Y *mat.VecDense
}

// New copies xs and ys into a Dataset. Every row must have the same
// non-zero length and there must be one target per row.
func New(xs [][]float64, ys []float64) (*Dataset, error) {
	if len(xs) == 0 {
		return nil, errors.Wrap(ErrShape, "no samples")
	}
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrShape, "%d samples but %d targets", len(xs), len(ys))
	}
	cols := len(xs[0])
	if cols == 0 {
		return nil, errors.Wrap(ErrShape, "samples have no features")
	}

	flat := make([]float64, 0, len(xs)*cols)
	for i, row := range xs {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrShape, "sample %d has %d features, want %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return &Dataset{
		X: mat.NewDense(len(xs), cols, flat),
		Y: mat.NewVecDense(len(ys), append([]float64(nil), ys...)),
	}, nil
}

// Reference returns the four 3-feature samples with targets [1, -1, -1, 1].
func Reference() *Dataset {
	d, err := New([][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}, []float64{1.0, -1.0, -1.0, 1.0})
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	r, _ := d.X.Dims()
	return r
}

// Features returns the number of inputs per sample.
func (d *Dataset) Features() int {
	_, c := d.X.Dims()
	return c
}

// Row returns a copy of sample i's features.
func (d *Dataset) Row(i int) []float64 {
	return mat.Row(nil, i, d.X)
}

// Target returns sample i's target.
func (d *Dataset) Target(i int) float64 {
	return d.Y.AtVec(i)
}

// Targets returns a copy of all targets.
func (d *Dataset) Targets() []float64 {
	return mat.Col(nil, 0, d.Y)
}
