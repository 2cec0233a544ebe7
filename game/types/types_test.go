package types

import "testing"

func TestGridContains(t *testing.T) {
	g := Grid{Width: 5, Height: 4}

	cases := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, true},
		{Point{5, 4}, true},
		{Point{3, 2}, true},
		{Point{0, 2}, false},
		{Point{6, 2}, false},
		{Point{3, 0}, false},
		{Point{3, 5}, false},
	}
	for _, c := range cases {
		if got := g.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %t, want %t", c.p, got, c.want)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 5, Height: 4}

	cases := []struct {
		p, want Point
	}{
		{Point{3, 2}, Point{3, 2}},
		{Point{6, 2}, Point{1, 2}},
		{Point{0, 2}, Point{5, 2}},
		{Point{3, 5}, Point{3, 1}},
		{Point{3, 0}, Point{3, 4}},
		{Point{0, 0}, Point{5, 4}},
	}
	for _, c := range cases {
		if got := g.Wrap(c.p); got != c.want {
			t.Errorf("Wrap(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestGridClamp(t *testing.T) {
	g := Grid{Width: 5, Height: 4}

	cases := []struct {
		p, want Point
	}{
		{Point{3, 2}, Point{3, 2}},
		{Point{6, 3}, Point{5, 3}},
		{Point{0, 3}, Point{1, 3}},
		{Point{2, 0}, Point{2, 1}},
		{Point{2, 9}, Point{2, 4}},
	}
	for _, c := range cases {
		if got := g.Clamp(c.p); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestDirectionToPointIsUnit(t *testing.T) {
	for _, d := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		p := d.ToPoint()
		if p.X*p.X+p.Y*p.Y != 1 {
			t.Errorf("%v.ToPoint() = %v, not a unit vector", d, p)
		}
	}
}

func TestPowerupKindTimed(t *testing.T) {
	if PowerupShield.Timed() {
		t.Error("shield must not be a timed effect")
	}
	for _, k := range []PowerupKind{PowerupGhost, PowerupDouble, PowerupSlow} {
		if !k.Timed() {
			t.Errorf("%v must be a timed effect", k)
		}
	}
}
