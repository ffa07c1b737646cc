package scene

// Surface is a rendering target that may lack a graphics context.
type Surface interface {
	GraphicsAvailable() bool
}

// Fallback is the static backdrop shown when the scene cannot render.
type Fallback struct {
	Gradient string  `json:"gradient"`
	Opacity  float64 `json:"opacity"`
}

// DefaultFallback mirrors the scene's palette.
var DefaultFallback = Fallback{
	Gradient: "radial-gradient(circle at 30% 30%, #8b5cf6 0%, #6366f1 40%, #06b6d4 100%)",
	Opacity:  0.2,
}

// View is what the hero background shows: the live scene, or the
// fallback when Scene is nil.
type View struct {
	Scene    *Scene   `json:"scene,omitempty"`
	Fallback Fallback `json:"fallback"`
}

// Live reports whether the view renders the 3D scene.
func (v View) Live() bool { return v.Scene != nil }

// Choose returns the live scene when surface can render it and the static
// fallback otherwise. A nil surface counts as unavailable.
func Choose(surface Surface, s Scene) View {
	if surface == nil || !surface.GraphicsAvailable() {
		return View{Fallback: DefaultFallback}
	}
	return View{Scene: &s, Fallback: DefaultFallback}
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func() bool

func (f SurfaceFunc) GraphicsAvailable() bool { return f() }
