// Package shape has simple geometric value objects.
package shape

// Rectangle is axis aligned rectangle defined by its sides.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width" ion:"width" mapstructure:"width"`
	Height float64 `json:"height" yaml:"height" ion:"height" mapstructure:"height"`
}

// NewRectangle returns rectangle with given sides. Values are stored as is.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
