package material

import (
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// DiffuseLight is a one-sided emitter. It never scatters and emits only when
// the hit lands on the front face, so the back of a light panel stays dark.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates an emitter with a solid emission color
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emit)}
}

// NewTexturedDiffuseLight creates an emitter with a textured emission
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs: lights terminate paths
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// ScatteringPdf is zero for a non-scattering material
func (d *DiffuseLight) ScatteringPdf(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the emission color on the front face and black on the back
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.NewVec3(0, 0, 0)
	}
	return d.Emit.Value(hit.U, hit.V, hit.Point)
}
