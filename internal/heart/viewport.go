package heart

// Viewport maps world coordinates (origin at the center, y up) onto a
// Width×Height surface with the origin at the top left.
type Viewport struct {
	Width, Height float64
}

func (v Viewport) Project(x, y float64) (sx, sy float64) {
	return v.Width/2 + x, v.Height/2 - y
}
