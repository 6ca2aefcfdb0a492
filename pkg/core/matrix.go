package core

// Matrix is a square matrix of arbitrary order. The tracer works almost
// exclusively with order 4, but determinants are computed by cofactor
// expansion so smaller orders fall out of the same code.
type Matrix [][]float64

// NewMatrix creates a zero matrix of the given order
func NewMatrix(order int) Matrix {
	m := make(Matrix, order)
	for i := range m {
		m[i] = make([]float64, order)
	}
	return m
}

// NewMatrix4 creates an order-4 matrix from 16 row-major values
func NewMatrix4(values ...float64) Matrix {
	m := NewMatrix(4)
	for i, v := range values {
		m[i/4][i%4] = v
	}
	return m
}

// Identity returns the order-4 identity matrix
func Identity() Matrix {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Order returns the number of rows (and columns) of the matrix
func (m Matrix) Order() int {
	return len(m)
}

// Multiply returns the matrix product m * other. Both matrices must have
// the same order.
func (m Matrix) Multiply(other Matrix) Matrix {
	order := m.Order()
	result := NewMatrix(order)
	for row := 0; row < order; row++ {
		for col := 0; col < order; col++ {
			sum := 0.0
			for k := 0; k < order; k++ {
				sum += m[row][k] * other[k][col]
			}
			result[row][col] = sum
		}
	}
	return result
}

// MultiplyTuple applies an order-4 matrix to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	order := m.Order()
	result := NewMatrix(order)
	for row := 0; row < order; row++ {
		for col := 0; col < order; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Submatrix returns the matrix with the given row and column removed
func (m Matrix) Submatrix(skipRow, skipCol int) Matrix {
	order := m.Order()
	result := NewMatrix(order - 1)
	for row, dstRow := 0, 0; row < order; row++ {
		if row == skipRow {
			continue
		}
		for col, dstCol := 0, 0; col < order; col++ {
			if col == skipCol {
				continue
			}
			result[dstRow][dstCol] = m[row][col]
			dstCol++
		}
		dstRow++
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the
// first row
func (m Matrix) Determinant() float64 {
	if m.Order() == 2 {
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}
	det := 0.0
	for col := range m[0] {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the matrix has an inverse
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse of the matrix. The second return value is
// false when the determinant is zero and no inverse exists.
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return nil, false
	}
	order := m.Order()
	result := NewMatrix(order)
	for row := 0; row < order; row++ {
		for col := 0; col < order; col++ {
			// Transposed assignment folds the adjugate transpose into
			// the same loop.
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, true
}

// Equals reports whether two matrices match within Epsilon per cell
func (m Matrix) Equals(other Matrix) bool {
	if m.Order() != other.Order() {
		return false
	}
	for row := range m {
		for col := range m[row] {
			if !floatEquals(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
