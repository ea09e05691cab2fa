package raymarch

import "errors"

// ErrDegenerateNormal is returned when the SDF gradient at a point vanishes.
var ErrDegenerateNormal = errors.New("raymarch: degenerate surface normal")

const (
	normalEpsilon = 0.005
	shadowFactor  = 0.1
)

// CameraOrigin is the fixed pinhole position; the camera looks down +Z.
var CameraOrigin = V3(0, 0.5, 0)

// Background is the color used for pixels that could not be shaded.
var Background = Color{}

// Renderer computes pixel colors for a Scene.
//
// It is safe for concurrent use: every method reads only the immutable scene
// and config.
type Renderer struct {
	cfg   Config
	scene *Scene
}

// New validates cfg and returns a renderer over a private copy of scene.
// A nil scene selects DefaultScene.
func New(cfg Config, scene *Scene) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scene == nil {
		scene = DefaultScene()
	}
	return &Renderer{cfg: cfg, scene: scene.clone()}, nil
}

func (r *Renderer) Config() Config { return r.cfg }

// Scene returns a copy of the scene.
func (r *Renderer) Scene() *Scene { return r.scene.clone() }

// Distance is the scene SDF.
func (r *Renderer) Distance(p Vec3) float64 { return r.scene.Distance(p) }
