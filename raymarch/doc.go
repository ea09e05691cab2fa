// Package raymarch renders a fixed signed-distance-field scene by sphere tracing.
//
// The scene is two spheres over an infinite ground plane, lit by one point light
// with hard shadows. Rendering is a pure function of the pixel coordinate, the
// Scene and the Config; the Renderer holds no per-pixel state.
//
// Pipeline (fixed):
//
//	Pixel → Camera ray → March → Normal → Shade (+ shadow ray) → Color → PixelSink.
//
// Normals use a one-sided difference per axis, both screen axes are divided by
// the height and channel values are truncated. Frames are bit-exact across
// runs and across the sequential and parallel frame loops.
//
// All math is float64.
package raymarch
