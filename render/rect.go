package render

// Rect is a destination rectangle in integer screen pixels
type Rect struct {
	X, Y int // top-left corner
	W, H int
}
