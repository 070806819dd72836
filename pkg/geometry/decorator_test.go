package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
)

func vecClose(a, b core.Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}

func TestTranslate_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	moved := NewTranslate(sphere, core.NewVec3(0, 0, -5))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := moved.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the translated sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("t = %v, want 4", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -4)).Length() > 1e-9 {
		t.Errorf("hit point = %v, want (0,0,-4)", hit.Point)
	}
	if !hit.FrontFace {
		t.Error("entry hit should be front face")
	}

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("translated sphere must have a bounding box")
	}
	want := core.NewAABB(core.NewVec3(-1, -1, -6), core.NewVec3(1, 1, -4))
	if box != want {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTranslate_OppositeOffsetsCancel(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 1, -3), 0.75, nil)
	offset := core.NewVec3(4, -2, 7)
	wrapped := NewTranslate(NewTranslate(sphere, offset), offset.Negate())

	random := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		ray := core.NewRay(
			core.NewVec3(6*random.Float64()-3, 6*random.Float64()-3, 2),
			core.RandomUnitVector(random),
		)

		direct, directOk := sphere.Hit(ray, 0.001, math.Inf(1))
		nested, nestedOk := wrapped.Hit(ray, 0.001, math.Inf(1))

		if directOk != nestedOk {
			t.Fatalf("ray %d: direct hit=%v but wrapped hit=%v", i, directOk, nestedOk)
		}
		if !directOk {
			continue
		}
		if math.Abs(direct.T-nested.T) > 1e-9 {
			t.Fatalf("ray %d: direct t=%v but wrapped t=%v", i, direct.T, nested.T)
		}
		if direct.Point.Subtract(nested.Point).Length() > 1e-9 {
			t.Fatalf("ray %d: hit points differ: %v vs %v", i, direct.Point, nested.Point)
		}
	}
}

func TestRotateY_QuarterTurn(t *testing.T) {
	// +90° around Y carries the object-space point (x, y, z) to (z, y, -x),
	// so a sphere at (2, 0, 0) ends up at (0, 0, -2)
	sphere := NewSphere(core.NewVec3(2, 0, 0), 0.5, nil)
	rotated := NewRotateY(sphere, 90)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := rotated.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the rotated sphere")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("t = %v, want 1.5", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("normal = %v, want (0,0,1)", hit.Normal)
	}

	// the original location is now empty
	if _, ok := rotated.Hit(core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)), 0.001, math.Inf(1)); ok {
		t.Error("expected miss at the unrotated location")
	}
}

func TestRotateY_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 0, 0), 0.5, nil)
	rotated := NewRotateY(sphere, 90)

	box, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("rotated sphere must have a bounding box")
	}
	want := core.NewAABB(core.NewVec3(-0.5, -0.5, -2.5), core.NewVec3(0.5, 0.5, -1.5))
	if !vecClose(box.Min, want.Min, 1e-9) || !vecClose(box.Max, want.Max, 1e-9) {
		t.Errorf("box = %v, want %v", box, want)
	}
}

func TestTransform_TranslationMatchesTranslate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	offset := core.NewVec3(3, -1, -6)

	byMatrix := NewTransform(core.TranslationMat4(offset), sphere)
	byOffset := NewTranslate(sphere, offset)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(3, -1, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(3, -1, -6).Normalize()),
		core.NewRay(core.NewVec3(3, 5, -6), core.NewVec3(0, -1, 0)),
	}

	for i, ray := range rays {
		matrixHit, matrixOk := byMatrix.Hit(ray, 0.001, math.Inf(1))
		offsetHit, offsetOk := byOffset.Hit(ray, 0.001, math.Inf(1))

		if matrixOk != offsetOk {
			t.Fatalf("ray %d: matrix hit=%v but offset hit=%v", i, matrixOk, offsetOk)
		}
		if !matrixOk {
			continue
		}
		if math.Abs(matrixHit.T-offsetHit.T) > 1e-9 {
			t.Errorf("ray %d: matrix t=%v but offset t=%v", i, matrixHit.T, offsetHit.T)
		}
		if matrixHit.Normal.Subtract(offsetHit.Normal).Length() > 1e-9 {
			t.Errorf("ray %d: normals differ: %v vs %v", i, matrixHit.Normal, offsetHit.Normal)
		}
	}
}

func TestTransform_NonUniformScaleNormal(t *testing.T) {
	// a unit sphere scaled by (2,1,1) is the ellipsoid x²/4 + y² + z² = 1
	// whose outward normal follows the gradient (x/2, 2y, 2z)
	ellipsoid := NewTransform(
		core.ScaleMat4(core.NewVec3(2, 1, 1)),
		NewSphere(core.NewVec3(0, 0, 0), 1, nil),
	)

	// drop a vertical ray onto the point above x = √2
	x := math.Sqrt2
	ray := core.NewRay(core.NewVec3(x, 5, 0), core.NewVec3(0, -1, 0))

	hit, ok := ellipsoid.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the ellipsoid")
	}

	y := math.Sqrt(1 - x*x/4)
	if math.Abs(hit.T-(5-y)) > 1e-9 {
		t.Errorf("t = %v, want %v", hit.T, 5-y)
	}

	wantNormal := core.NewVec3(x/2, 2*y, 0).Normalize()
	if hit.Normal.Subtract(wantNormal).Length() > 1e-9 {
		t.Errorf("normal = %v, want %v", hit.Normal, wantNormal)
	}
	if !hit.FrontFace {
		t.Error("entry hit should be front face")
	}
}

func TestTransform_InverseCancels(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.5, -1, -4), 1.2, nil)

	m := core.TranslationMat4(core.NewVec3(1, 2, 3)).
		Multiply(core.RotationYMat4(0.6)).
		Multiply(core.ScaleMat4(core.NewVec3(2, 0.5, 1.5)))
	wrapped := NewTransform(m, NewTransform(m.Inverse(), sphere))

	random := rand.New(rand.NewSource(23))
	for i := 0; i < 500; i++ {
		ray := core.NewRay(
			core.NewVec3(4*random.Float64()-2, 4*random.Float64()-2, 2),
			core.RandomUnitVector(random),
		)

		direct, directOk := sphere.Hit(ray, 0.001, math.Inf(1))
		nested, nestedOk := wrapped.Hit(ray, 0.001, math.Inf(1))

		if directOk != nestedOk {
			t.Fatalf("ray %d: direct hit=%v but wrapped hit=%v", i, directOk, nestedOk)
		}
		if !directOk {
			continue
		}
		if math.Abs(direct.T-nested.T) > 1e-6 {
			t.Fatalf("ray %d: direct t=%v but wrapped t=%v", i, direct.T, nested.T)
		}
		if direct.Point.Subtract(nested.Point).Length() > 1e-6 {
			t.Fatalf("ray %d: hit points differ: %v vs %v", i, direct.Point, nested.Point)
		}
	}
}

func TestFlipFace_OnlyOrientationChanges(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	flipped := NewFlipFace(sphere)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	plain, ok := sphere.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the sphere")
	}
	wrapped, ok := flipped.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit on the flipped sphere")
	}

	if wrapped.FrontFace == plain.FrontFace {
		t.Error("face orientation should be inverted")
	}
	if wrapped.T != plain.T {
		t.Errorf("t changed from %v to %v", plain.T, wrapped.T)
	}
	if wrapped.Normal != plain.Normal {
		t.Errorf("normal changed from %v to %v", plain.Normal, wrapped.Normal)
	}
}

func TestConstantMedium_ScattersInsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	// dense enough that nearly every ray scatters within the boundary
	medium := NewConstantMedium(boundary, 10000, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	for i := 0; i < 200; i++ {
		hit, ok := medium.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			continue // astronomically rare pass-through
		}
		// the boundary spans t in [4, 6] along this ray
		if hit.T < 4 || hit.T > 6 {
			t.Fatalf("scatter at t=%v outside the boundary span [4,6]", hit.T)
		}
	}
}

func TestConstantMedium_ThinMediumPassesThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	medium := NewConstantMedium(boundary, 0.0001, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hits := 0
	for i := 0; i < 100; i++ {
		if _, ok := medium.Hit(ray, 0.001, math.Inf(1)); ok {
			hits++
		}
	}
	if hits > 10 {
		t.Errorf("thin medium scattered %d/100 rays, expected nearly none", hits)
	}
}

func TestConstantMedium_MissesOutsideBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	medium := NewConstantMedium(boundary, 10000, nil)

	ray := core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1))
	if _, ok := medium.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("ray missing the boundary should never scatter")
	}
}
