package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestBodyUpdateIntegratesMotion(t *testing.T) {
	b := NewBody(100, 100, 1, 10)
	b.VX = 3
	b.VY = -4
	b.Spin = 1

	b.Update(0.5, Bounds{Width: 800, Height: 600})

	if !almostEqual(b.X, 101.5) || !almostEqual(b.Y, 98) {
		t.Fatalf("position = (%f, %f), want (101.5, 98)", b.X, b.Y)
	}
	if !almostEqual(b.Angle, 0.5) {
		t.Fatalf("angle = %f, want 0.5", b.Angle)
	}
}

func TestBodyUpdateNormalizesAngle(t *testing.T) {
	tests := []struct {
		name string
		spin float64
		want float64
	}{
		{name: "past_full_turn", spin: TwoPi + 1, want: 1},
		{name: "negative", spin: -1, want: TwoPi - 1},
		{name: "exact_turn", spin: TwoPi, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(0, 0, 1, 1)
			b.Spin = tt.spin
			b.Update(1, Bounds{Width: 100, Height: 100})
			if !almostEqual(b.Angle, tt.want) {
				t.Errorf("angle = %f, want %f", b.Angle, tt.want)
			}
			if b.Angle < 0 || b.Angle >= TwoPi {
				t.Errorf("angle %f outside [0, 2π)", b.Angle)
			}
		})
	}
}

func TestBodyUpdateWraps(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	const r = 20.0

	tests := []struct {
		name         string
		x, y, vx, vy float64
		wantX, wantY float64
	}{
		{name: "right_edge", x: 819, y: 300, vx: 1.5, wantX: -r + 0.5, wantY: 300},
		{name: "left_edge", x: -19, y: 300, vx: -1.5, wantX: 800 + r - 0.5, wantY: 300},
		{name: "bottom_edge", x: 400, y: 619, vy: 2, wantX: 400, wantY: -r + 1},
		{name: "top_edge", x: 400, y: -20, vy: -1, wantX: 400, wantY: 600 + r - 1},
		{name: "exactly_at_bound", x: 819, y: 300, vx: 1, wantX: -r, wantY: 300},
		{name: "inside", x: 400, y: 300, vx: 10, wantX: 410, wantY: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(tt.x, tt.y, 1, r)
			b.VX, b.VY = tt.vx, tt.vy
			b.Update(1, bounds)
			if !almostEqual(b.X, tt.wantX) || !almostEqual(b.Y, tt.wantY) {
				t.Fatalf("position = (%f, %f), want (%f, %f)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.X < -r || b.X >= bounds.Width+r || b.Y < -r || b.Y >= bounds.Height+r {
				t.Fatalf("position (%f, %f) outside wrapped range", b.X, b.Y)
			}
		})
	}
}

func TestBodyPush(t *testing.T) {
	b := NewBody(0, 0, 2, 1)
	b.Push(0, 4)
	if !almostEqual(b.VX, 2) || !almostEqual(b.VY, 0) {
		t.Fatalf("velocity = (%f, %f), want (2, 0)", b.VX, b.VY)
	}

	b.Push(math.Pi/2, 2)
	if !almostEqual(b.VX, 2) || !almostEqual(b.VY, 1) {
		t.Fatalf("velocity = (%f, %f), want (2, 1)", b.VX, b.VY)
	}
	if !almostEqual(b.Speed(), math.Sqrt(5)) {
		t.Fatalf("speed = %f, want %f", b.Speed(), math.Sqrt(5))
	}
}

func TestBodyTwistBypassesSpin(t *testing.T) {
	b := NewBody(0, 0, 1, 1)
	b.Twist(3, 0.1)
	if !almostEqual(b.Angle, 0.3) {
		t.Fatalf("angle = %f, want 0.3", b.Angle)
	}
	if b.Spin != 0 {
		t.Fatalf("spin = %f, want 0", b.Spin)
	}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Body
		want bool
	}{
		{name: "touching", a: NewBody(0, 0, 1, 5), b: NewBody(10, 0, 1, 5), want: false},
		{name: "overlapping", a: NewBody(0, 0, 1, 5), b: NewBody(5, 0, 1, 5), want: true},
		{name: "apart", a: NewBody(0, 0, 1, 5), b: NewBody(15, 0, 1, 5), want: false},
		{name: "same_position", a: NewBody(3, 3, 1, 3), b: NewBody(3, 3, 1, 2), want: true},
		{name: "diagonal", a: NewBody(0, 0, 1, 5), b: NewBody(3, 4, 1, 0.5), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(&tt.a, &tt.b); got != tt.want {
				t.Errorf("Collides(a, b) = %v, want %v", got, tt.want)
			}
			if got := Collides(&tt.b, &tt.a); got != tt.want {
				t.Errorf("Collides(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}
