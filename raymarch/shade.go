package raymarch

// Light returns the diffuse intensity at surface point p, in [0, 1].
//
// Points whose shadow ray is blocked before reaching the light keep a tenth of
// their diffuse term.
func (r *Renderer) Light(p Vec3) (float64, error) {
	l := Normalize(r.scene.Light.Sub(p))
	n, err := r.Normal(p)
	if err != nil {
		return 0, err
	}
	diffuse := Clamp01(Dot(l, n))
	if r.shadowed(p, n, l) {
		diffuse *= shadowFactor
	}
	return diffuse, nil
}

// Occluded reports whether the shadow ray from p toward the light is blocked.
func (r *Renderer) Occluded(p Vec3) (bool, error) {
	n, err := r.Normal(p)
	if err != nil {
		return false, err
	}
	return r.shadowed(p, n, Normalize(r.scene.Light.Sub(p))), nil
}

// shadowed marches from just above the surface so the ray does not stop on p itself.
func (r *Renderer) shadowed(p, n, l Vec3) bool {
	start := p.Add(n.Mul(r.cfg.Threshold * 2))
	return r.March(start, l) < Dist(r.scene.Light, p)
}
