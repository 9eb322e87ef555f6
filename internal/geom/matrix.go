package geom

import "math"

// Matrix is a 3x3 homogeneous transform indexed [row][col]. It is applied to
// column vectors, so in a.Mul(b) the transform b acts first.
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translation returns a matrix translating by (tx, ty).
func Translation(tx, ty float64) Matrix {
	m := Identity()
	m[0][2] = tx
	m[1][2] = ty
	return m
}

// Rotation returns a counter-clockwise rotation by r radians about the origin.
func Rotation(r float64) Matrix {
	sin, cos := math.Sincos(r)
	return Matrix{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Scaling returns a matrix scaling by sx and sy.
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// FlipY mirrors the y axis. It is its own inverse.
func FlipY() Matrix {
	return Scaling(1, -1)
}

// Mul returns m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Apply transforms p as the column vector (x, y, 1).
func (m Matrix) Apply(p Point) Point {
	w := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]
	if w != 1 && w != 0 {
		x, y = x/w, y/w
	}
	return Point{x, y}
}

// Compose multiplies ms left to right: Compose(a, b, c) = a·b·c.
func Compose(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}
