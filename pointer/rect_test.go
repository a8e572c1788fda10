package pointer

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 3, Height: 2}
	cases := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{4, 2, true},
		{5, 1, false},
		{2, 3, false},
		{1, 1, false},
		{3, 0, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d,%d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRect_EmptyContainsNothing(t *testing.T) {
	if (Rect{Width: 0, Height: 5}).Contains(0, 0) {
		t.Fatalf("zero-width rect must not contain points")
	}
	if !(Rect{}).Empty() {
		t.Fatalf("zero rect must be empty")
	}
}

func TestRect_Local(t *testing.T) {
	x, y := Rect{X: 10, Y: 4, Width: 5, Height: 5}.Local(12, 7)
	if x != 2 || y != 3 {
		t.Fatalf("local: got (%d,%d), want (2,3)", x, y)
	}
}
