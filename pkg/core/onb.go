package core

import "math"

// Onb is an orthonormal basis built around a surface normal (the W axis)
type Onb struct {
	U, V, W Vec3
}

// NewOnb builds an orthonormal basis whose W axis is aligned with n
func NewOnb(n Vec3) Onb {
	w := n.Normalize()

	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return Onb{U: u, V: v, W: w}
}

// Local transforms a vector from basis-local coordinates to world space
func (o Onb) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
