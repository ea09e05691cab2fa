package raymarch

// March sphere-traces from origin along the unit vector dir.
//
// The returned distance is >= Boundary when the ray escaped; anything shorter
// is a hit (or a ray that ran out of iterations close to a surface).
func (r *Renderer) March(origin, dir Vec3) float64 {
	t, _ := r.MarchSteps(origin, dir)
	return t
}

// MarchSteps is March that also reports how many SDF samples were taken.
func (r *Renderer) MarchSteps(origin, dir Vec3) (t float64, steps int) {
	return r.march(origin, dir, nil)
}

func (r *Renderer) march(origin, dir Vec3, visit func(step int, t float64)) (float64, int) {
	var t float64
	steps := 0
	for steps < r.cfg.MaxIter {
		p := origin.Add(dir.Mul(t))
		d := r.scene.Distance(p)
		t += d
		steps++
		if visit != nil {
			visit(steps, t)
		}
		if t >= r.cfg.Boundary || d <= r.cfg.Threshold {
			break
		}
	}
	return t, steps
}
