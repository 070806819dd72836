package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/adihodos/raytracing-in-one-weekend/pkg/core"
	"github.com/adihodos/raytracing-in-one-weekend/pkg/geometry"
	"github.com/adihodos/raytracing-in-one-weekend/pkg/material"
	"github.com/adihodos/raytracing-in-one-weekend/pkg/renderer"
)

// Scene bundles everything the renderer needs: the world, the lights list
// for direct sampling, the background, and camera placement
type Scene struct {
	World      core.Hittable
	Lights     *core.LightList
	Background core.Background
	Camera     renderer.CameraConfig
}

// Build constructs a named scene at the given aspect ratio
func Build(name string, aspectRatio float64, random *rand.Rand) (*Scene, error) {
	switch name {
	case "random":
		return RandomWorld(aspectRatio, random, false), nil
	case "random-moving":
		return RandomWorld(aspectRatio, random, true), nil
	case "cornell":
		return CornellBox(aspectRatio, random), nil
	case "quadrics":
		return QuadricGarden(aspectRatio, random), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// RandomWorld is the classic ground sphere, three feature spheres, and a
// grid of small randomized spheres. With moving set, the diffuse small
// spheres sweep upward over the shutter interval for motion blur.
func RandomWorld(aspectRatio float64, random *rand.Rand, moving bool) *Scene {
	world := core.NewHittableList()

	ground := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			switch {
			case chooseMat < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat := material.NewLambertian(albedo)
				if moving {
					center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
					world.Add(geometry.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
				} else {
					world.Add(geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := randomColorInRange(0.5, 1, random)
				fuzz := 0.5 * random.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return &Scene{
		World:      core.NewBVH(world.Objects, 0, 1, random),
		Lights:     core.NewLightList(),
		Background: core.NewSkyBackground(),
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			WorldUp:       core.NewVec3(0, 1, 0),
			VerticalFov:   20,
			AspectRatio:   aspectRatio,
			Aperture:      0.1,
			FocusDistance: 10,
			Time0:         0,
			Time1:         1,
		},
	}
}

// CornellBox is the standard Cornell box: emissive ceiling panel, one
// rotated tall box and one short box filled with smoke
func CornellBox(aspectRatio float64, random *rand.Rand) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	lightPanel := geometry.NewXZRect(213, 343, 227, 332, 554, light)

	world := core.NewHittableList()
	world.Add(geometry.NewYZRect(0, 555, 0, 555, 555, green))
	world.Add(geometry.NewYZRect(0, 555, 0, 555, 0, red))
	world.Add(geometry.NewFlipFace(lightPanel))
	world.Add(geometry.NewXZRect(0, 555, 0, 555, 0, white))
	world.Add(geometry.NewXZRect(0, 555, 0, 555, 555, white))
	world.Add(geometry.NewXYRect(0, 555, 0, 555, 555, white))

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), 15),
		core.NewVec3(265, 0, 295))
	world.Add(tall)

	smoke := geometry.NewConstantMedium(
		geometry.NewTranslate(
			geometry.NewRotateY(
				geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), -18),
			core.NewVec3(130, 0, 65)),
		0.01,
		material.NewIsotropic(core.NewVec3(1, 1, 1)))
	world.Add(smoke)

	return &Scene{
		World:      core.NewBVH(world.Objects, 0, 1, random),
		Lights:     core.NewLightList(lightPanel),
		Background: core.NewSolidBackground(core.NewVec3(0, 0, 0)),
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(278, 278, -800),
			LookAt:        core.NewVec3(278, 278, 0),
			WorldUp:       core.NewVec3(0, 1, 0),
			VerticalFov:   40,
			AspectRatio:   aspectRatio,
			Aperture:      0,
			FocusDistance: 10,
		},
	}
}

// QuadricGarden shows the analytic quadrics placed with affine transforms on
// a checkered ground, lit by an emissive sphere
func QuadricGarden(aspectRatio float64, random *rand.Rand) *Scene {
	world := core.NewHittableList()

	ground := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.8, 0.8, 0.8)))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	upright := core.RotationXMat4(-math.Pi / 2)

	cone := geometry.NewTransform(
		core.TranslationMat4(core.NewVec3(-4.5, 0, 0)).Multiply(upright),
		geometry.NewCone(1, 2, 2*math.Pi, marble))
	world.Add(cone)

	cylinder := geometry.NewTransform(
		core.TranslationMat4(core.NewVec3(-1.5, 1, 0)).Multiply(upright),
		geometry.NewCylinder(1, -1, 1, 2*math.Pi, material.NewMetal(core.NewVec3(0.8, 0.7, 0.4), 0.05)))
	world.Add(cylinder)

	paraboloid := geometry.NewTransform(
		core.TranslationMat4(core.NewVec3(1.5, 0, 0)).Multiply(upright),
		geometry.NewParaboloid(1, 0, 2, 2*math.Pi, material.NewLambertian(core.NewVec3(0.2, 0.3, 0.7))))
	world.Add(paraboloid)

	hyperboloid := geometry.NewTransform(
		core.TranslationMat4(core.NewVec3(4.5, 1, 0)).Multiply(upright),
		geometry.NewHyperboloid(
			core.NewVec3(0.5, 0, -1), core.NewVec3(1, 0, 1), 2*math.Pi,
			material.NewDielectric(1.5)))
	world.Add(hyperboloid)

	mirror := geometry.NewTriangle(
		core.NewVec3(-6, 0, -4),
		core.NewVec3(6, 0, -4),
		core.NewVec3(0, 5, -5),
		material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0))
	world.Add(mirror)

	sun := geometry.NewSphere(core.NewVec3(0, 7, 4), 2,
		material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	world.Add(sun)

	return &Scene{
		World:      core.NewBVH(world.Objects, 0, 1, random),
		Lights:     core.NewLightList(sun),
		Background: core.NewSolidBackground(core.NewVec3(0.02, 0.02, 0.04)),
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(0, 3, 12),
			LookAt:        core.NewVec3(0, 1, 0),
			WorldUp:       core.NewVec3(0, 1, 0),
			VerticalFov:   35,
			AspectRatio:   aspectRatio,
			Aperture:      0,
			FocusDistance: 12,
		},
	}
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorInRange(lo, hi float64, random *rand.Rand) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
