// Package rect provides a rectangle value object.
package rect

// Rectangle is an axis-aligned rectangle described by its size.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// New returns a rectangle of the given size.
func New(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width * Height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
