package raymarch

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// CameraRay returns the primary ray for the sample position (x, y), with y
// growing upward.
//
// Both axes are divided by the height so pixels stay square for any aspect.
func (r *Renderer) CameraRay(x, y int) (origin, dir Vec3) {
	w := float64(r.cfg.Width)
	h := float64(r.cfg.Height)
	u := (float64(x) - w/2) / h
	v := (float64(y) - h/2) / h
	return CameraOrigin, Normalize(V3(u, v, 1))
}

// Pixel computes the color for sample position (x, y), with y growing upward.
//
// On ErrDegenerateNormal the pixel is Background.
func (r *Renderer) Pixel(x, y int) (Color, error) {
	o, d := r.CameraRay(x, y)
	t := r.March(o, d)
	light, err := r.Light(o.Add(d.Mul(t)))
	if err != nil {
		return Background, err
	}
	return r.tint(light), nil
}

// tint truncates light*weight per channel; light is in [0, 1] so no channel
// exceeds its weight.
func (r *Renderer) tint(light float64) Color {
	w := r.scene.Weights
	return Color{
		R: channel(light, w.R),
		G: channel(light, w.G),
		B: channel(light, w.B),
	}
}

func channel(light float64, weight uint8) uint8 {
	v := int(light * float64(weight))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
