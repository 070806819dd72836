package core

import (
	"math"
	"math/rand"
	"testing"
)

// testSphere is a minimal bounded primitive for exercising the BVH without
// depending on the geometry package
type testSphere struct {
	center Vec3
	radius float64
	id     int
}

func (s *testSphere) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	hit := &HitRecord{Point: point, T: root}
	hit.SetFaceNormal(ray, point.Subtract(s.center).Multiply(1/s.radius))
	return hit, true
}

func (s *testSphere) BoundingBox(time0, time1 float64) (AABB, bool) {
	r := NewVec3(s.radius, s.radius, s.radius)
	return NewAABB(s.center.Subtract(r), s.center.Add(r)), true
}

// unboundedPrimitive has no bounding box, so the BVH builder must reject it
type unboundedPrimitive struct{}

func (u *unboundedPrimitive) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return nil, false
}

func (u *unboundedPrimitive) BoundingBox(time0, time1 float64) (AABB, bool) {
	return AABB{}, false
}

func makeTestScene(count int, random *rand.Rand) []Hittable {
	objects := make([]Hittable, count)
	for i := range objects {
		objects[i] = &testSphere{
			center: NewVec3(
				20*random.Float64()-10,
				20*random.Float64()-10,
				20*random.Float64()-10,
			),
			radius: 0.2 + random.Float64(),
			id:     i,
		}
	}
	return objects
}

func TestBVH_MatchesLinearList(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for _, count := range []int{1, 2, 3, 7, 64, 257} {
		objects := makeTestScene(count, random)

		list := &HittableList{Objects: objects}
		bvh := NewBVH(objects, 0, 1, random)

		for i := 0; i < 2000; i++ {
			origin := NewVec3(
				40*random.Float64()-20,
				40*random.Float64()-20,
				40*random.Float64()-20,
			)
			direction := RandomUnitVector(random)
			ray := NewRay(origin, direction)

			listHit, listOk := list.Hit(ray, 0.001, math.Inf(1))
			bvhHit, bvhOk := bvh.Hit(ray, 0.001, math.Inf(1))

			if listOk != bvhOk {
				t.Fatalf("count=%d ray=%d: list hit=%v but bvh hit=%v", count, i, listOk, bvhOk)
			}
			if !listOk {
				continue
			}
			if math.Abs(listHit.T-bvhHit.T) > 1e-9 {
				t.Fatalf("count=%d ray=%d: list t=%v but bvh t=%v", count, i, listHit.T, bvhHit.T)
			}
			if listHit.FrontFace != bvhHit.FrontFace {
				t.Fatalf("count=%d ray=%d: front face disagrees", count, i)
			}
		}
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	random := rand.New(rand.NewSource(5))
	objects := makeTestScene(32, random)

	before := make([]Hittable, len(objects))
	copy(before, objects)

	NewBVH(objects, 0, 1, random)

	for i := range objects {
		if objects[i] != before[i] {
			t.Fatal("builder reordered the caller's slice")
		}
	}
}

func TestBVH_PanicsOnEmptyList(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty primitive list")
		}
	}()
	NewBVH(nil, 0, 1, rand.New(rand.NewSource(1)))
}

func TestBVH_PanicsOnUnboundedPrimitive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for primitive without a bounding box")
		}
	}()
	NewBVH([]Hittable{&unboundedPrimitive{}}, 0, 1, rand.New(rand.NewSource(1)))
}

func TestBVH_SingleElement(t *testing.T) {
	random := rand.New(rand.NewSource(9))
	sphere := &testSphere{center: NewVec3(0, 0, -3), radius: 1}
	bvh := NewBVH([]Hittable{sphere}, 0, 1, random)

	hit, ok := bvh.Hit(NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the single sphere")
	}
	if math.Abs(hit.T-2) > 1e-12 {
		t.Errorf("hit t = %v, want 2", hit.T)
	}

	if _, ok := bvh.Hit(NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)), 0.001, math.Inf(1)); ok {
		t.Error("expected miss for ray pointing away")
	}
}
