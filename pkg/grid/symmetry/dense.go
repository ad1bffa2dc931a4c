package symmetry

import "gonum.org/v1/gonum/mat"

// Dense converts m to a gonum matrix for printing and numeric checks.
func (m Matrix) Dense() *mat.Dense {
	n := m.Dim()
	if n == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, n*n)
	for _, row := range m {
		for _, a := range row {
			data = append(data, float64(a))
		}
	}
	return mat.NewDense(n, n, data)
}
