package geometry

import (
	"math"
	"testing"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

func TestTriangle_Hit_FrontFace(t *testing.T) {
	// counter-clockwise winding in the z=0 plane gives the normal (0,0,1)
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		nil,
	)

	ray := core.NewRay(core.NewVec3(0.25, 0.25, 5), core.NewVec3(0, 0, -1))
	hit, ok := tri.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit inside the triangle")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("t = %v, want 5", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("normal = %v, want (0,0,1)", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("facing hit should be front face")
	}
}

func TestTriangle_Hit_BackFaceCulled(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		nil,
	)

	// approaching from behind the normal
	ray := core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(0, 0, 1))
	if _, ok := tri.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("back face hit should be culled")
	}
}

func TestTriangle_Hit_OutsideEdges(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		nil,
	)

	outside := []core.Vec3{
		{X: 0.9, Y: 0.9, Z: 5},   // beyond the hypotenuse
		{X: -0.1, Y: 0.2, Z: 5},  // left of the first edge
		{X: 0.2, Y: -0.1, Z: 5},  // below the second edge
		{X: 1.1, Y: 0.05, Z: 5},  // past the far vertex
	}
	for _, origin := range outside {
		ray := core.NewRay(origin, core.NewVec3(0, 0, -1))
		if _, ok := tri.Hit(ray, 0.001, math.Inf(1)); ok {
			t.Errorf("ray through (%v, %v) should miss", origin.X, origin.Y)
		}
	}

	// a parallel ray never crosses the plane
	parallel := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0))
	if _, ok := tri.Hit(parallel, 0.001, math.Inf(1)); ok {
		t.Error("ray parallel to the triangle should miss")
	}
}

func TestTriangle_UVInterpolation(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		nil,
	)
	tri.V0.UV = core.NewVec2(0, 0)
	tri.V1.UV = core.NewVec2(1, 0)
	tri.V2.UV = core.NewVec2(0, 1)

	// at (0.25, 0.25) the barycentric weights of V1 and V2 are both 0.25
	ray := core.NewRay(core.NewVec3(0.25, 0.25, 5), core.NewVec3(0, 0, -1))
	hit, ok := tri.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.U-0.25) > 1e-9 || math.Abs(hit.V-0.25) > 1e-9 {
		t.Errorf("uv = (%v, %v), want (0.25, 0.25)", hit.U, hit.V)
	}
}

func TestTriangle_BoundingBox(t *testing.T) {
	tri := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		nil,
	)

	box, ok := tri.BoundingBox(0, 1)
	if !ok {
		t.Fatal("triangle must have a bounding box")
	}
	// the flat z extent is padded so the box is never degenerate
	if box.Max.Z <= box.Min.Z {
		t.Error("bounding box is degenerate along z")
	}
	if box.Min.X > 0 || box.Max.X < 1 || box.Min.Y > 0 || box.Max.Y < 1 {
		t.Errorf("box %v does not cover the vertices", box)
	}
}

// quadFacingPosZ builds a unit quad of two triangles in the z = offset plane
// with normals toward +z
func quadFacingPosZ(offset float64) ([]MeshVertex, []uint32) {
	normal := core.NewVec3(0, 0, 1)
	vertices := []MeshVertex{
		{Position: core.NewVec3(0, 0, offset), Normal: normal, UV: core.NewVec2(0, 0)},
		{Position: core.NewVec3(1, 0, offset), Normal: normal, UV: core.NewVec2(1, 0)},
		{Position: core.NewVec3(1, 1, offset), Normal: normal, UV: core.NewVec2(1, 1)},
		{Position: core.NewVec3(0, 1, offset), Normal: normal, UV: core.NewVec2(0, 1)},
	}
	return vertices, []uint32{0, 1, 2, 0, 2, 3}
}

func TestMesh_Hit(t *testing.T) {
	vertices, indices := quadFacingPosZ(0)
	mesh := NewMesh(vertices,
		[]MeshNode{{Name: "quad", Indices: indices}},
		core.IdentityMat4(), nil)

	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))
	hit, ok := mesh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the quad")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("t = %v, want 5", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("normal = %v, want (0,0,1)", hit.Normal)
	}
	// uv interpolated from the vertex attributes
	if math.Abs(hit.U-0.5) > 1e-9 || math.Abs(hit.V-0.5) > 1e-9 {
		t.Errorf("uv = (%v, %v), want (0.5, 0.5)", hit.U, hit.V)
	}

	// back side is culled
	back := core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1))
	if _, ok := mesh.Hit(back, 0.001, math.Inf(1)); ok {
		t.Error("back face of the quad should be culled")
	}
}

func TestMesh_NearestAcrossNodes(t *testing.T) {
	nearVerts, nearIndices := quadFacingPosZ(0)
	farVerts, farIndices := quadFacingPosZ(-2)

	vertices := append(nearVerts, farVerts...)
	farShifted := make([]uint32, len(farIndices))
	for i, idx := range farIndices {
		farShifted[i] = idx + uint32(len(nearVerts))
	}

	mesh := NewMesh(vertices,
		[]MeshNode{
			{Name: "far", Indices: farShifted},
			{Name: "near", Indices: nearIndices},
		},
		core.IdentityMat4(), nil)

	// both quads face the ray; the nearer one must win regardless of node order
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))
	hit, ok := mesh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("t = %v, want 5 (the nearer quad)", hit.T)
	}
}

func TestMesh_BakesTransform(t *testing.T) {
	vertices, indices := quadFacingPosZ(0)
	mesh := NewMesh(vertices,
		[]MeshNode{{Name: "quad", Indices: indices}},
		core.TranslationMat4(core.NewVec3(0, 0, -3)), nil)

	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))
	hit, ok := mesh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the translated quad")
	}
	if math.Abs(hit.T-8) > 1e-9 {
		t.Errorf("t = %v, want 8", hit.T)
	}

	box, ok := mesh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("mesh must have a bounding box")
	}
	if box.Min.Z > -3 || box.Max.Z < -3 || box.Max.Z-box.Min.Z > 0.01 {
		t.Errorf("box z extent [%v, %v], want a thin slab around the baked plane z=-3", box.Min.Z, box.Max.Z)
	}
}

func TestMesh_DropsEmptyNodes(t *testing.T) {
	vertices, indices := quadFacingPosZ(0)
	mesh := NewMesh(vertices,
		[]MeshNode{
			{Name: "empty"},
			{Name: "quad", Indices: indices},
		},
		core.IdentityMat4(), nil)

	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))
	if _, ok := mesh.Hit(ray, 0.001, math.Inf(1)); !ok {
		t.Error("expected the non-empty node to still hit")
	}
}
