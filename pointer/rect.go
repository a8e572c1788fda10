package pointer

// Rect is a screen area in terminal cells. X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Local translates screen coordinates into r-relative ones.
func (r Rect) Local(x, y int) (int, int) { return x - r.X, y - r.Y }
