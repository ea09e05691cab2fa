package raymarch

import "fmt"

// Normal estimates the outward unit normal at p, which should lie on or very
// near a surface.
//
// Each axis uses the one-sided difference SDF(p) - SDF(p - eps*axis).
func (r *Renderer) Normal(p Vec3) (Vec3, error) {
	d := r.scene.Distance(p)
	g := Vec3{
		X: d - r.scene.Distance(Vec3{p.X - normalEpsilon, p.Y, p.Z}),
		Y: d - r.scene.Distance(Vec3{p.X, p.Y - normalEpsilon, p.Z}),
		Z: d - r.scene.Distance(Vec3{p.X, p.Y, p.Z - normalEpsilon}),
	}
	n, ok := NormalizeChecked(g)
	if !ok {
		return Vec3{}, fmt.Errorf("%w at (%g, %g, %g)", ErrDegenerateNormal, p.X, p.Y, p.Z)
	}
	return n, nil
}
