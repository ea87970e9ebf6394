package color

// mat3 is a row-major 3×3 matrix.
type mat3 [3][3]float64

func (m mat3) mul(a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// inverse returns the algebraic inverse of m. m must be non-singular.
func (m mat3) inverse() mat3 {
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	if det == 0 {
		panic("color: singular matrix")
	}
	inv := 1 / det
	return mat3{
		{c00 * inv, (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv, (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv},
		{c01 * inv, (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv, (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv},
		{c02 * inv, (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv, (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv},
	}
}

// sRGB primaries, linear RGB → XYZ.
var linearToXYZ = mat3{
	{0.4124, 0.3576, 0.1805},
	{0.2126, 0.7152, 0.0722},
	{0.0193, 0.1192, 0.9505},
}

// sRGB → YUV, chroma rows centered on zero.
var srgbToYUV = mat3{
	{0.299, 0.587, 0.114},
	{-0.169, -0.331, 0.5},
	{0.5, -0.419, -0.081},
}

var (
	xyzToLinear = linearToXYZ.inverse()
	yuvToSRGB   = srgbToYUV.inverse()
)
