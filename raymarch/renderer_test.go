package raymarch

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := CompactConfig().Validate(); err != nil {
		t.Fatalf("compact config invalid: %v", err)
	}

	cases := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "invalid resolution"},
		{"negative height", func(c *Config) { c.Height = -1 }, "invalid resolution"},
		{"too wide", func(c *Config) { c.Width = MaxWidth + 1 }, "exceeds"},
		{"too tall", func(c *Config) { c.Height = MaxHeight + 1 }, "exceeds"},
		{"zero iterations", func(c *Config) { c.MaxIter = 0 }, "max iterations"},
		{"zero boundary", func(c *Config) { c.Boundary = 0 }, "boundary"},
		{"NaN boundary", func(c *Config) { c.Boundary = math.NaN() }, "boundary"},
		{"negative threshold", func(c *Config) { c.Threshold = -0.01 }, "threshold"},
	}
	for _, tc := range cases {
		c := DefaultConfig()
		tc.mod(&c)
		err := c.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: got %v, want error containing %q", tc.name, err, tc.want)
		}
		if _, err := New(c, nil); err == nil {
			t.Fatalf("%s: New accepted invalid config", tc.name)
		}
	}

	c := DefaultConfig()
	c.Width, c.Height = MaxWidth, MaxHeight
	if err := c.Validate(); err != nil {
		t.Fatalf("hardware ceiling rejected: %v", err)
	}
}

func TestNewCopiesScene(t *testing.T) {
	s := DefaultScene()
	r, err := New(DefaultConfig(), s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := r.Distance(V3(0, 0.5, 0))
	s.Spheres[1].Radius = 2
	s.PlaneOffset = 10
	if got := r.Distance(V3(0, 0.5, 0)); got != before {
		t.Fatalf("renderer observed caller mutation: %v != %v", got, before)
	}
}

func TestMarchHitsSphere(t *testing.T) {
	r := newTestRenderer(t)
	center := r.Scene().Spheres[0].Center
	dir := Normalize(center.Sub(CameraOrigin))

	dist := r.March(CameraOrigin, dir)
	if dist >= r.Config().Boundary {
		t.Fatalf("expected hit, got distance %v", dist)
	}
	hit := CameraOrigin.Add(dir.Mul(dist))
	if got := Dist(hit, center); math.Abs(got-0.5) > r.Config().Threshold {
		t.Fatalf("hit point %v is %v from center, want 0.5", hit, got)
	}
}

func TestMarchMiss(t *testing.T) {
	r := newTestRenderer(t)
	dist, steps := r.MarchSteps(CameraOrigin, V3(0, 1, 0))
	if dist < r.Config().Boundary {
		t.Fatalf("expected miss, got distance %v", dist)
	}
	if steps > r.Config().MaxIter {
		t.Fatalf("steps = %d > max %d", steps, r.Config().MaxIter)
	}
}

func TestMarchMonotonicAndBounded(t *testing.T) {
	r := newTestRenderer(t)
	for y := 0; y <= r.cfg.Height; y += 7 {
		for x := 0; x < r.cfg.Width; x += 7 {
			o, d := r.CameraRay(x, y)
			prev := 0.0
			count := 0
			decreased := false
			got, steps := r.march(o, d, func(step int, dist float64) {
				count = step
				if dist < prev {
					decreased = true
				}
				prev = dist
			})
			if decreased {
				t.Fatalf("pixel (%d, %d): march distance decreased", x, y)
			}
			if got < 0 {
				t.Fatalf("pixel (%d, %d): negative distance %v", x, y, got)
			}
			if steps != count || steps > r.cfg.MaxIter {
				t.Fatalf("pixel (%d, %d): steps %d, visited %d", x, y, steps, count)
			}
			if steps < r.cfg.MaxIter && got < r.cfg.Boundary {
				p := o.Add(d.Mul(got))
				if sd := r.Distance(p); math.Abs(sd) > 2*r.cfg.Threshold+1e-12 {
					t.Fatalf("pixel (%d, %d): stopped early with SDF %v", x, y, sd)
				}
			}
		}
	}
}

func TestMarchRespectsIterationLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIter = 1
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dist, steps := r.MarchSteps(CameraOrigin, V3(0, 0, 1))
	if steps != 1 {
		t.Fatalf("steps = %d, want 1", steps)
	}
	if want := r.Distance(CameraOrigin); dist != want {
		t.Fatalf("dist = %v, want first SDF sample %v", dist, want)
	}
}

func TestNormalUnitNearSpheres(t *testing.T) {
	r := newTestRenderer(t)
	for _, sp := range r.Scene().Spheres {
		for _, d := range []Vec3{V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1), V3(-1, 0.3, -0.2)} {
			p := sp.Center.Add(Normalize(d).Mul(sp.Radius + 0.001))
			n, err := r.Normal(p)
			if err != nil {
				t.Fatalf("Normal(%v): %v", p, err)
			}
			if l := Len(n); math.Abs(l-1) > 1e-6 {
				t.Fatalf("Normal(%v) length %v", p, l)
			}
			if Dot(n, Normalize(d)) < 0.99 {
				t.Fatalf("Normal(%v) = %v, want close to %v", p, n, Normalize(d))
			}
		}
	}
}

func TestNormalPlane(t *testing.T) {
	r := newTestRenderer(t)
	n, err := r.Normal(V3(-3, -0.4, -2))
	if err != nil {
		t.Fatalf("Normal: %v", err)
	}
	if n != V3(0, 1, 0) {
		t.Fatalf("plane normal = %v, want (0, 1, 0)", n)
	}
}

func TestNormalDegenerate(t *testing.T) {
	s := DefaultScene()
	s.Spheres = nil
	s.PlaneOffset = math.Inf(1)
	r, err := New(DefaultConfig(), s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := r.Normal(V3(0, 0, 0)); !errors.Is(err, ErrDegenerateNormal) {
		t.Fatalf("expected ErrDegenerateNormal, got %v", err)
	}
	c, err := r.Pixel(10, 10)
	if !errors.Is(err, ErrDegenerateNormal) {
		t.Fatalf("Pixel: expected ErrDegenerateNormal, got %v", err)
	}
	if c != Background {
		t.Fatalf("Pixel = %v, want background", c)
	}
}

func TestLightUnderLight(t *testing.T) {
	r := newTestRenderer(t)
	light := r.Scene().Light
	p := V3(light.X, -0.4, light.Z)

	occluded, err := r.Occluded(p)
	if err != nil {
		t.Fatalf("Occluded: %v", err)
	}
	if occluded {
		t.Fatalf("point under the light reported as shadowed")
	}
	got, err := r.Light(p)
	if err != nil {
		t.Fatalf("Light: %v", err)
	}
	if got <= 0.99 {
		t.Fatalf("Light = %v, want full diffuse", got)
	}
}

func TestLightShadowedBySphere(t *testing.T) {
	r := newTestRenderer(t)
	s := r.Scene()
	light := s.Light
	center := s.Spheres[0].Center

	// Extend the light→center line down to the ground.
	dir := center.Sub(light)
	k := (-s.PlaneOffset - light.Y) / dir.Y
	p := light.Add(dir.Mul(k))
	p.Y = -s.PlaneOffset

	occluded, err := r.Occluded(p)
	if err != nil {
		t.Fatalf("Occluded: %v", err)
	}
	if !occluded {
		t.Fatalf("point %v behind sphere is lit", p)
	}

	n, err := r.Normal(p)
	if err != nil {
		t.Fatalf("Normal: %v", err)
	}
	diffuse := Clamp01(Dot(Normalize(light.Sub(p)), n))
	got, err := r.Light(p)
	if err != nil {
		t.Fatalf("Light: %v", err)
	}
	if math.Abs(got-diffuse*0.1) > 1e-12 {
		t.Fatalf("Light = %v, want %v (attenuated)", got, diffuse*0.1)
	}
	if got <= 0 {
		t.Fatalf("shadowed point should keep ambient light, got %v", got)
	}
}

func TestLightRange(t *testing.T) {
	r := newTestRenderer(t)
	for y := 0; y <= r.cfg.Height; y += 5 {
		for x := 0; x < r.cfg.Width; x += 5 {
			o, d := r.CameraRay(x, y)
			l, err := r.Light(o.Add(d.Mul(r.March(o, d))))
			if err != nil {
				t.Fatalf("Light: %v", err)
			}
			if l < 0 || l > 1 {
				t.Fatalf("pixel (%d, %d): light %v out of range", x, y, l)
			}
		}
	}
}
