package raymarch

// Sphere is a solid ball.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Distance is the signed distance from p to the sphere surface (negative inside).
func (s Sphere) Distance(p Vec3) float64 {
	return Dist(p, s.Center) - s.Radius
}

// Weights scales light intensity into 8-bit channels.
type Weights struct {
	R, G, B uint8
}

// Scene is the fixed set of surfaces plus the light.
//
// The ground is the horizontal plane y = -PlaneOffset. A Scene is read-only once
// handed to a Renderer.
type Scene struct {
	Spheres     []Sphere
	PlaneOffset float64
	Light       Vec3
	Weights     Weights
}

// DefaultScene returns the reference scene.
func DefaultScene() *Scene {
	return &Scene{
		Spheres: []Sphere{
			{Center: V3(0.7, 1.2, 3.7), Radius: 0.5},
			{Center: V3(-0.4, 0.2, 2.4), Radius: 0.5},
		},
		PlaneOffset: 0.4,
		Light:       V3(-3, 2, -2),
		Weights:     Weights{R: 39, G: 150, B: 200},
	}
}

// Distance returns the signed distance from p to the nearest surface.
func (s *Scene) Distance(p Vec3) float64 {
	d := p.Y + s.PlaneOffset
	for _, sp := range s.Spheres {
		if sd := sp.Distance(p); sd < d {
			d = sd
		}
	}
	return d
}

func (s *Scene) clone() *Scene {
	cp := *s
	cp.Spheres = append([]Sphere(nil), s.Spheres...)
	return &cp
}
