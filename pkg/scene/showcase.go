package scene

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/renderer"
)

// NewShowcaseScene creates an outdoor scene with spheres of every RGB
// material, triangle meshes, a motion-blurred sphere and depth of field
func NewShowcaseScene(opts Options) (*Scene, error) {
	aspectRatio := opts.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
	}
	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // centre sphere
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   aspectRatio,
		VFov:          40,
		Aperture:      0.05,
		FocusDistance: 0, // focus on LookAt
		Time0:         0,
		Time1:         1,
	})

	ground := material.NewTexturedLambertian(material.NewCheckerTexture(
		core.NewVec3(0.48, 0.48, 0.0), core.NewVec3(0.9, 0.9, 0.9), 10))
	red := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	blue := material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8))
	silver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	light := geometry.NewSphere(core.NewVec3(30, 30.5, 15), 10, material.NewDiffuseLight(core.NewVec3(15, 14, 13)))

	objects := []geometry.Hittable{
		geometry.NewXZRect(-100, 100, -100, 100, 0, ground),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, red),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, silver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),
		geometry.NewMovingSphere(core.NewVec3(-0.5, 0.2, -0.4), core.NewVec3(-0.5, 0.3, -0.4), 0, 1, 0.2, blue),
		light,
	}
	objects = append(objects, pyramid(core.NewVec3(-2.2, 0.75, -3), 1.2, 1.5, math.Pi/4, blue)...)
	objects = append(objects, icosahedron(core.NewVec3(2.2, 0.8, -3), 0.8, gold)...)

	return &Scene{
		Camera: camera,
		World: &integrator.World{
			Objects:    geometry.NewBVH(objects, 0, 1, core.NewSeededSampler(opts.Seed)),
			Lights:     light,
			Background: core.NewVec3(0.5, 0.7, 1.0), // sky
		},
		Integrator: integrator.NewPathTracer(opts.Integrator),
	}, nil
}

// meshTriangles turns an indexed face list into triangles
func meshTriangles(vertices []core.Vec3, faces []int, mat material.Material) []geometry.Hittable {
	triangles := make([]geometry.Hittable, 0, len(faces)/3)
	for i := 0; i+2 < len(faces); i += 3 {
		triangles = append(triangles, geometry.NewTriangle(vertices[faces[i]], vertices[faces[i+1]], vertices[faces[i+2]], mat))
	}
	return triangles
}

// pyramid builds a square pyramid centred on center, turned by angle about Y
func pyramid(center core.Vec3, baseSize, height, angle float64, mat material.Material) []geometry.Hittable {
	halfBase := baseSize / 2
	halfHeight := height / 2
	sin, cos := math.Sincos(angle)
	rotate := func(x, y, z float64) core.Vec3 {
		return center.Add(core.NewVec3(cos*x+sin*z, y, -sin*x+cos*z))
	}

	vertices := []core.Vec3{
		rotate(-halfBase, -halfHeight, -halfBase), // 0: left-back
		rotate(+halfBase, -halfHeight, -halfBase), // 1: right-back
		rotate(+halfBase, -halfHeight, +halfBase), // 2: right-front
		rotate(-halfBase, -halfHeight, +halfBase), // 3: left-front
		rotate(0, +halfHeight, 0),                 // 4: apex
	}
	faces := []int{
		0, 2, 1, 0, 3, 2, // base
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}
	return meshTriangles(vertices, faces, mat)
}

// icosahedron builds a regular icosahedron with the given circumradius
func icosahedron(center core.Vec3, radius float64, mat material.Material) []geometry.Hittable {
	phi := math.Phi
	scale := radius / math.Sqrt(1+phi*phi)

	corners := []core.Vec3{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	vertices := make([]core.Vec3, len(corners))
	for i, c := range corners {
		vertices[i] = center.Add(c.Multiply(scale))
	}

	faces := []int{
		// around vertex 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// around vertex 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return meshTriangles(vertices, faces, mat)
}
