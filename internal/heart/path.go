package heart

import "math"

// Position returns the unscaled point of the heart curve at angle t (radians).
// The curve is periodic over [0, 2π) and finite for every real t: the square
// root sees |cos t| and sin t + 7/5 never reaches zero.
func Position(t float64) (x, y float64) {
	sin, cos := math.Sincos(t)
	r := sin*math.Sqrt(math.Abs(cos))/(sin+7.0/5) - 2*sin + 2
	return r * cos, r * sin
}

// Path places the heart curve in world space.
type Path struct {
	Radius  float64
	CenterX float64
	CenterY float64
}

// At returns the world position of the curve at angle t (radians).
func (p Path) At(t float64) (x, y float64) {
	x, y = Position(t)
	return p.CenterX + x*p.Radius, p.CenterY + y*p.Radius
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
