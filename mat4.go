package glade

// Mat4 is a column-major 4x4 matrix, used for the camera's view and
// projection matrices. 2D gameplay only ever needs the affine subset of a
// full 4x4 (no perspective divide), but keeping the type 4x4 matches what a
// uniform-buffer-backed GPU pipeline actually uploads.
type Mat4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Orthographic builds a standard 2D orthographic projection mapping
// [left,right]x[bottom,top] to clip space [-1,1]x[-1,1], near/far to [0,1].
func Orthographic(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	m := Identity4()
	m[0] = 2 / rl
	m[5] = 2 / tb
	m[10] = -1 / fn
	m[12] = -(right + left) / rl
	m[13] = -(top + bottom) / tb
	m[14] = -near / fn
	return m
}

// Mul multiplies two column-major matrices, returning a*b (a applied after b).
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// TranslateScale2D builds a 4x4 matrix equivalent to translate(tx,ty) then
// scale(sx,sy) applied to column vectors, the common case for a 2D camera's
// view matrix (translate by -eye, then scale by zoom).
func TranslateScale2D(tx, ty, sx, sy float64) Mat4 {
	m := Identity4()
	m[0] = sx
	m[5] = sy
	m[12] = tx * sx
	m[13] = ty * sy
	return m
}

// AffineFromMat4 extracts the 2D affine subset {a,b,c,d,tx,ty} from a 4x4
// matrix built by TranslateScale2D/Orthographic-style composition, in the
// [6]float64 form Ebitengine's GeoM.SetElement consumes.
func AffineFromMat4(m Mat4) [6]float64 {
	return [6]float64{m[0], m[1], m[4], m[5], m[12], m[13]}
}
