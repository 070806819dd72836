package geometry

import (
	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

// MeshVertex carries per-vertex attributes. Positions and normals are stored
// in world space; the mesh transforms them once at build time instead of
// transforming every ray into object space per query.
type MeshVertex struct {
	Position core.Vec3
	Normal   core.Vec3
	UV       core.Vec2
}

// MeshNode is a named group of triangles inside a mesh, referencing the
// mesh's shared vertex pool through an index range. Its bounding box gates
// whether the node's triangles are scanned at all.
type MeshNode struct {
	Name    string
	Indices []uint32
	Bounds  core.AABB
}

// Mesh is an indexed triangle mesh. Rays are first tested against the mesh
// box, then against each node box, and only then against that node's
// triangles in index order. Back faces are culled: surfaces are one-sided
// and meshes are not assumed closed or consistently wound.
type Mesh struct {
	vertices []MeshVertex
	nodes    []MeshNode
	bounds   core.AABB
	material core.Material
}

// NewMesh builds a mesh from vertices and nodes given in object space,
// baking objectToWorld into every position and its inverse transpose into
// every normal. Nodes with no indices are dropped. Mesh and node boxes are
// epsilon-padded so planar meshes never get a zero-thickness slab.
func NewMesh(vertices []MeshVertex, nodes []MeshNode, objectToWorld core.Mat4, material core.Material) *Mesh {
	normalsToWorld := objectToWorld.Inverse().Transpose()
	pad := core.NewVec3(rectPad, rectPad, rectPad)

	bounds := core.EmptyAABB()
	transformed := make([]MeshVertex, len(vertices))
	for i, vtx := range vertices {
		pos := objectToWorld.TransformPoint(vtx.Position)
		bounds = bounds.AddPoint(pos)

		transformed[i] = MeshVertex{
			Position: pos,
			Normal:   normalsToWorld.TransformVector(vtx.Normal).Normalize(),
			UV:       vtx.UV,
		}
	}

	kept := make([]MeshNode, 0, len(nodes))
	for _, node := range nodes {
		if len(node.Indices) == 0 {
			continue
		}

		nodeBounds := core.EmptyAABB()
		for _, idx := range node.Indices {
			nodeBounds = nodeBounds.AddPoint(transformed[idx].Position)
		}

		kept = append(kept, MeshNode{
			Name:    node.Name,
			Indices: node.Indices,
			Bounds:  core.NewAABB(nodeBounds.Min.Subtract(pad), nodeBounds.Max.Add(pad)),
		})
	}

	return &Mesh{
		vertices: transformed,
		nodes:    kept,
		bounds:   core.NewAABB(bounds.Min.Subtract(pad), bounds.Max.Add(pad)),
		material: material,
	}
}

// Hit tests the ray against the mesh. Each node contributes its first valid
// triangle hit in index order; the nearest hit across nodes wins.
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !m.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var nearest *core.HitRecord
	for i := range m.nodes {
		node := &m.nodes[i]
		if !node.Bounds.Hit(ray, tMin, tMax) {
			continue
		}

		for j := 0; j+2 < len(node.Indices); j += 3 {
			hit, isHit := m.hitTriangle(node.Indices[j:j+3], ray, tMin, tMax)
			if isHit {
				if nearest == nil || hit.T < nearest.T {
					nearest = hit
				}
				break
			}
		}
	}

	return nearest, nearest != nil
}

// BoundingBox returns the world-space box of all mesh vertices
func (m *Mesh) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.bounds, true
}

// hitTriangle intersects the ray with one indexed triangle using the
// two-edge barycentric formulation, interpolating normal and UV from the
// vertices. Hits facing away from the ray are culled.
func (m *Mesh) hitTriangle(idx []uint32, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	p0 := &m.vertices[idx[0]]
	p1 := &m.vertices[idx[1]]
	p2 := &m.vertices[idx[2]]

	e1 := p1.Position.Subtract(p0.Position)
	e2 := p2.Position.Subtract(p0.Position)

	s1 := ray.Direction.Cross(e2)
	div := s1.Dot(e1)
	if div == 0 {
		return nil, false
	}
	invDiv := 1 / div

	d := ray.Origin.Subtract(p0.Position)
	b1 := d.Dot(s1) * invDiv
	if b1 < 0 || b1 > 1 {
		return nil, false
	}

	s2 := d.Cross(e1)
	b2 := ray.Direction.Dot(s2) * invDiv
	if b2 < 0 || b1+b2 > 1 {
		return nil, false
	}

	t := e2.Dot(s2) * invDiv
	if t < tMin || t > tMax {
		return nil, false
	}

	b0 := 1 - b1 - b2
	normal := p0.Normal.Multiply(b0).
		Add(p1.Normal.Multiply(b1)).
		Add(p2.Normal.Multiply(b2)).
		Normalize()

	if ray.Direction.Dot(normal) > 0 {
		return nil, false
	}

	u := b0*p0.UV.X + b1*p1.UV.X + b2*p2.UV.X
	v := b0*p0.UV.Y + b1*p1.UV.Y + b2*p2.UV.Y

	hit := &core.HitRecord{
		Point:     ray.At(t),
		Normal:    normal,
		T:         t,
		U:         u,
		V:         v,
		FrontFace: true,
		Material:  m.material,
	}
	return hit, true
}

// Triangle is a single one-sided triangle with per-vertex normals and UVs
type Triangle struct {
	V0, V1, V2 MeshVertex
	Material   core.Material
}

// NewTriangle creates a triangle from three positions, deriving a shared
// flat normal from the winding order
func NewTriangle(p0, p1, p2 core.Vec3, material core.Material) *Triangle {
	normal := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	return &Triangle{
		V0:       MeshVertex{Position: p0, Normal: normal},
		V1:       MeshVertex{Position: p1, Normal: normal},
		V2:       MeshVertex{Position: p2, Normal: normal},
		Material: material,
	}
}

// Hit tests if a ray intersects the triangle front face
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	e1 := tr.V1.Position.Subtract(tr.V0.Position)
	e2 := tr.V2.Position.Subtract(tr.V0.Position)

	s1 := ray.Direction.Cross(e2)
	div := s1.Dot(e1)
	if div == 0 {
		return nil, false
	}
	invDiv := 1 / div

	d := ray.Origin.Subtract(tr.V0.Position)
	b1 := d.Dot(s1) * invDiv
	if b1 < 0 || b1 > 1 {
		return nil, false
	}

	s2 := d.Cross(e1)
	b2 := ray.Direction.Dot(s2) * invDiv
	if b2 < 0 || b1+b2 > 1 {
		return nil, false
	}

	t := e2.Dot(s2) * invDiv
	if t < tMin || t > tMax {
		return nil, false
	}

	b0 := 1 - b1 - b2
	normal := tr.V0.Normal.Multiply(b0).
		Add(tr.V1.Normal.Multiply(b1)).
		Add(tr.V2.Normal.Multiply(b2)).
		Normalize()

	if ray.Direction.Dot(normal) > 0 {
		return nil, false
	}

	hit := &core.HitRecord{
		Point:     ray.At(t),
		Normal:    normal,
		T:         t,
		U:         b0*tr.V0.UV.X + b1*tr.V1.UV.X + b2*tr.V2.UV.X,
		V:         b0*tr.V0.UV.Y + b1*tr.V1.UV.Y + b2*tr.V2.UV.Y,
		FrontFace: true,
		Material:  tr.Material,
	}
	return hit, true
}

// BoundingBox returns the epsilon-padded box of the three vertices
func (tr *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.EmptyAABB().
		AddPoint(tr.V0.Position).
		AddPoint(tr.V1.Position).
		AddPoint(tr.V2.Position)

	pad := core.NewVec3(rectPad, rectPad, rectPad)
	return core.NewAABB(box.Min.Subtract(pad), box.Max.Add(pad)), true
}
