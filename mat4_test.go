package glade

import "testing"

func TestTranslateScale2D(t *testing.T) {
	m := TranslateScale2D(10, 20, 2, 2)
	p := Vec2{X: 1, Y: 1}
	x := m[0]*p.X + m[4]*p.Y + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[13]
	// translate (1,1) by (10,20) to (11,21), then scale by 2.
	if x != 22 || y != 42 {
		t.Fatalf("expected (22,42), got (%v,%v)", x, y)
	}
}

func TestIdentity4IsNoop(t *testing.T) {
	m := Identity4()
	p := Vec2{X: 5, Y: -3}
	x := m[0]*p.X + m[4]*p.Y + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[13]
	if x != p.X || y != p.Y {
		t.Fatalf("identity matrix should not move a point, got (%v,%v)", x, y)
	}
}

func TestMat4Mul(t *testing.T) {
	a := TranslateScale2D(10, 0, 1, 1)
	b := TranslateScale2D(0, 0, 2, 2)
	combined := a.Mul(b)
	p := Vec2{X: 1, Y: 1}
	x := combined[0]*p.X + combined[4]*p.Y + combined[12]
	if x != 12 {
		t.Fatalf("expected scale-then-translate composition to give x=12, got %v", x)
	}
}
