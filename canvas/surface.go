package canvas

// Surface is the drawing boundary consumed by the scene painter.
//
// Coordinates are in pixels with the origin at the top-left corner.
// Implementations should clip anything outside their bounds.
type Surface interface {
	Size() (w, h int)

	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, p Paint)

	StrokeCircle(cx, cy, r, width float64, c Color)
	// StrokeEllipse strokes an ellipse with radii rx, ry rotated by rotation
	// radians around its center.
	StrokeEllipse(cx, cy, rx, ry, rotation, width float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// StrokeArc strokes the circle arc from start to end radians, clockwise on
	// screen (y grows downward).
	StrokeArc(cx, cy, r, start, end, width float64, c Color)

	// Text draws s with its baseline at y.
	Text(x, y float64, s string, c Color)
}
