package tools

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape is a shape supported by the area calculator.
type Shape string

// Supported shapes.
const (
	Square    Shape = "square"
	Rectangle Shape = "rectangle"
	Circle    Shape = "circle"
	Triangle  Shape = "triangle"
)

// Shapes lists the supported shapes in display order.
var Shapes = []Shape{Square, Rectangle, Circle, Triangle}

// Area calculator errors.
var (
	ErrMissingSide          = errors.New("missing side length")
	ErrMissingLengthWidth   = errors.New("missing length or width")
	ErrMissingRadius        = errors.New("missing radius")
	ErrMissingBaseHeight    = errors.New("missing base or height")
	ErrInvalidNumericValues = errors.New("invalid numeric value")
	ErrUnknownShape         = errors.New("unknown shape")
)

// Dimensions are the raw text inputs of the area form. Only the fields a
// shape needs are read.
type Dimensions struct {
	Length string
	Width  string
	Radius string
	Base   string
	Height string
}

// AreaResult is a computed area.
type AreaResult struct {
	Shape      string  `json:"shape"`
	Formula    string  `json:"formula"`
	Dimensions string  `json:"dimensions"`
	Area       float64 `json:"area"`
}

// Fields returns the dimension names a shape requires.
func (s Shape) Fields() []string {
	switch s {
	case Square:
		return []string{"length"}
	case Rectangle:
		return []string{"length", "width"}
	case Circle:
		return []string{"radius"}
	case Triangle:
		return []string{"base", "height"}
	default:
		return nil
	}
}

// ParseShape converts user input into a Shape.
func ParseShape(s string) (Shape, error) {
	shape := Shape(strings.ToLower(strings.TrimSpace(s)))
	if shape.Fields() == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
	return shape, nil
}

// CalculateArea validates the dimensions required by shape and computes
// its area.
func CalculateArea(shape Shape, d Dimensions) (AreaResult, error) {
	d = Dimensions{
		Length: strings.TrimSpace(d.Length),
		Width:  strings.TrimSpace(d.Width),
		Radius: strings.TrimSpace(d.Radius),
		Base:   strings.TrimSpace(d.Base),
		Height: strings.TrimSpace(d.Height),
	}

	var (
		area       float64
		formula    string
		dimensions string
		err        error
	)

	switch shape {
	case Square:
		if d.Length == "" {
			return AreaResult{}, ErrMissingSide
		}
		var side float64
		if side, err = parseDimension(d.Length); err != nil {
			return AreaResult{}, err
		}
		area = side * side
		formula = "A = side²"
		dimensions = "side = " + d.Length
	case Rectangle:
		if d.Length == "" || d.Width == "" {
			return AreaResult{}, ErrMissingLengthWidth
		}
		var l, w float64
		if l, err = parseDimension(d.Length); err != nil {
			return AreaResult{}, err
		}
		if w, err = parseDimension(d.Width); err != nil {
			return AreaResult{}, err
		}
		area = l * w
		formula = "A = length × width"
		dimensions = fmt.Sprintf("length = %s, width = %s", d.Length, d.Width)
	case Circle:
		if d.Radius == "" {
			return AreaResult{}, ErrMissingRadius
		}
		var r float64
		if r, err = parseDimension(d.Radius); err != nil {
			return AreaResult{}, err
		}
		area = math.Pi * r * r
		formula = "A = πr²"
		dimensions = "radius = " + d.Radius
	case Triangle:
		if d.Base == "" || d.Height == "" {
			return AreaResult{}, ErrMissingBaseHeight
		}
		var b, h float64
		if b, err = parseDimension(d.Base); err != nil {
			return AreaResult{}, err
		}
		if h, err = parseDimension(d.Height); err != nil {
			return AreaResult{}, err
		}
		area = b * h / 2
		formula = "A = (base × height) ÷ 2"
		dimensions = fmt.Sprintf("base = %s, height = %s", d.Base, d.Height)
	default:
		return AreaResult{}, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}

	return AreaResult{
		Area:       area,
		Formula:    formula,
		Dimensions: dimensions,
		Shape:      strings.ToUpper(string(shape[:1])) + string(shape[1:]),
	}, nil
}

// FormatArea renders an area the way the result pane shows it.
func FormatArea(area float64) string {
	return fmt.Sprintf("%.2f square units", area)
}

func parseDimension(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumericValues
	}
	return v, nil
}
