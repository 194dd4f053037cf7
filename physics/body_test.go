package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/vmath"
)

const tolerance = 1e-9

var testFrame = Frame{Width: 1080, Height: 1920}

func activeBoundary() *Boundary {
	return &Boundary{
		Center:   r2.Vec{X: 540, Y: 960},
		Radius:   528,
		Lifetime: 5,
		Active:   true,
	}
}

func TestMoveUpdatesActive(t *testing.T) {
	tests := []struct {
		name    string
		pos     r2.Vec
		heading float64
		speed   float64
		want    bool
	}{
		{"inside", r2.Vec{X: 100, Y: 100}, 0, 4.8, true},
		{"exits left", r2.Vec{X: 2, Y: 100}, math.Pi, 4.8, false},
		{"lands on zero edge", r2.Vec{X: 4, Y: 100}, math.Pi, 4, false},
		{"lands on width edge", r2.Vec{X: 1070, Y: 100}, 0, 10, false},
		{"exits bottom", r2.Vec{X: 500, Y: 1918}, math.Pi / 2, 4.8, false},
		{"stationary inside", r2.Vec{X: 500, Y: 500}, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Body{Pos: tc.pos, Heading: tc.heading, Speed: tc.speed, Radius: 5, Active: true}
			b.Move(testFrame)
			want := testFrame.Contains(b.Pos)
			if b.Active != want {
				t.Errorf("Expected Active to mirror containment %v, got %v at %v", want, b.Active, b.Pos)
			}
			if b.Active != tc.want {
				t.Errorf("Expected Active=%v, got %v at %v", tc.want, b.Active, b.Pos)
			}
		})
	}
}

func TestMoveDisplacement(t *testing.T) {
	b := &Body{Pos: r2.Vec{X: 10, Y: 10}, Heading: math.Pi / 4, Speed: math.Sqrt2}
	b.Move(testFrame)
	if math.Abs(b.Pos.X-11) > tolerance || math.Abs(b.Pos.Y-11) > tolerance {
		t.Errorf("Expected (11, 11), got %v", b.Pos)
	}
}

func TestNewRandomBodyDrawOrder(t *testing.T) {
	rng := vmath.NewFastRand(3)
	ref := vmath.NewFastRand(3)

	b := NewRandomBody(rng, r2.Vec{X: 1, Y: 2}, RadiusRange{Min: 4.8, Max: 24}, 4.8, true)

	radius := ref.Uniform(4.8, 24)
	color := ref.Color()
	heading := ref.Angle()

	if b.Radius != radius || b.Color != color || b.Heading != heading {
		t.Errorf("Expected radius, color, heading drawn in order; got %+v", b)
	}
	if !b.OnTop || !b.Active || b.Speed != 4.8 {
		t.Errorf("Expected OnTop active body at speed 4.8, got %+v", b)
	}
}

func TestBoundaryHitPlacesOnRim(t *testing.T) {
	bd := activeBoundary()
	rng := vmath.NewFastRand(1)

	b := &Body{Pos: r2.Vec{X: 540 + 530, Y: 960}, Radius: 10, Heading: 0}
	if !b.ResolveBoundaryHit(bd, rng) {
		t.Fatal("Expected collision for body past the rim")
	}

	dist := vmath.Distance(b.Pos, bd.Center)
	if math.Abs(dist-(bd.Radius-b.Radius)) > tolerance {
		t.Errorf("Expected distance %f from center, got %f", bd.Radius-b.Radius, dist)
	}
	if math.Abs(b.Pos.Y-960) > tolerance {
		t.Errorf("Expected relocation along the center-to-body line, got %v", b.Pos)
	}
	if b.Heading == 0 {
		t.Error("Expected a fresh heading after boundary hit")
	}
	if b.Heading < 0 || b.Heading >= 2*math.Pi {
		t.Errorf("Expected heading in [0, 2π), got %f", b.Heading)
	}
}

func TestBoundaryHitDiagonal(t *testing.T) {
	bd := activeBoundary()
	rng := vmath.NewFastRand(1)

	b := &Body{Pos: r2.Vec{X: 540 - 400, Y: 960 - 400}, Radius: 20}
	if !b.ResolveBoundaryHit(bd, rng) {
		t.Fatal("Expected collision")
	}
	dist := vmath.Distance(b.Pos, bd.Center)
	if math.Abs(dist-508) > tolerance {
		t.Errorf("Expected distance 508, got %f", dist)
	}
	if math.Abs((b.Pos.X-540)-(b.Pos.Y-960)) > tolerance {
		t.Errorf("Expected body kept on the diagonal, got %v", b.Pos)
	}
}

func TestBoundaryNoHit(t *testing.T) {
	bd := activeBoundary()
	rng := vmath.NewFastRand(1)
	state := rng.State()

	// edge exactly on the rim is not a collision
	b := &Body{Pos: r2.Vec{X: 540 + 518, Y: 960}, Radius: 10, Heading: 1}
	if b.ResolveBoundaryHit(bd, rng) {
		t.Error("Expected no collision when edge touches the rim exactly")
	}
	if b.Pos.X != 540+518 || b.Heading != 1 {
		t.Errorf("Expected no mutation, got %+v", b)
	}
	if rng.State() != state {
		t.Error("Expected no random draw without a collision")
	}
}

func TestBoundaryInactiveIgnoresOverlap(t *testing.T) {
	bd := activeBoundary()
	bd.Active = false
	b := &Body{Pos: r2.Vec{X: 2000, Y: 960}, Radius: 10}
	if b.ResolveBoundaryHit(bd, vmath.NewFastRand(1)) {
		t.Error("Expected inactive boundary to never collide")
	}
	if b.Pos.X != 2000 {
		t.Error("Expected position untouched")
	}
}

func TestBoundaryHitAtCenter(t *testing.T) {
	bd := activeBoundary()
	bd.Radius = 5

	// coincident with the center: separation axis falls back to +X
	b := &Body{Pos: bd.Center, Radius: 10}
	if !b.ResolveBoundaryHit(bd, vmath.NewFastRand(1)) {
		t.Fatal("Expected collision when radius exceeds boundary radius")
	}
	want := r2.Vec{X: bd.Center.X - 5, Y: bd.Center.Y}
	if math.Abs(b.Pos.X-want.X) > tolerance || math.Abs(b.Pos.Y-want.Y) > tolerance {
		t.Errorf("Expected %v, got %v", want, b.Pos)
	}
}

func TestBodyCollisionSeparates(t *testing.T) {
	rng := vmath.NewFastRand(2)
	a := &Body{Pos: r2.Vec{X: 100, Y: 100}, Radius: 10, Active: true}
	b := &Body{Pos: r2.Vec{X: 112, Y: 105}, Radius: 8, Active: true}

	if !ResolveBodyCollision(a, b, rng) {
		t.Fatal("Expected overlapping bodies to collide")
	}
	if d := vmath.Distance(a.Pos, b.Pos); d < a.Radius+b.Radius-tolerance {
		t.Errorf("Expected separation >= %f, got %f", a.Radius+b.Radius, d)
	}
	mid := r2.Scale(0.5, r2.Add(a.Pos, b.Pos))
	if math.Abs(mid.X-106) > tolerance || math.Abs(mid.Y-102.5) > tolerance {
		t.Errorf("Expected correction split evenly around midpoint (106, 102.5), got %v", mid)
	}
}

func TestBodyCollisionDrawOrder(t *testing.T) {
	rng := vmath.NewFastRand(8)
	ref := vmath.NewFastRand(8)
	a := &Body{Pos: r2.Vec{X: 100, Y: 100}, Radius: 10, Active: true}
	b := &Body{Pos: r2.Vec{X: 105, Y: 100}, Radius: 10, Active: true}

	ResolveBodyCollision(a, b, rng)
	if a.Heading != ref.Angle() || b.Heading != ref.Angle() {
		t.Error("Expected headings drawn for a then b")
	}
}

func TestBodyCollisionOnTopSkipsCorrection(t *testing.T) {
	tests := []struct {
		name       string
		aTop, bTop bool
		bPos       r2.Vec
		collides   bool
	}{
		{"both on top apart", true, true, r2.Vec{X: 400, Y: 400}, true},
		{"one on top overlapping", true, false, r2.Vec{X: 105, Y: 100}, true},
		{"one on top apart", false, true, r2.Vec{X: 400, Y: 400}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := vmath.NewFastRand(4)
			a := &Body{Pos: r2.Vec{X: 100, Y: 100}, Radius: 10, Active: true, OnTop: tc.aTop}
			b := &Body{Pos: tc.bPos, Radius: 10, Active: true, OnTop: tc.bTop}
			aPos, bPos := a.Pos, b.Pos

			got := ResolveBodyCollision(a, b, rng)
			if got != tc.collides {
				t.Fatalf("Expected collided=%v, got %v", tc.collides, got)
			}
			if a.Pos != aPos || b.Pos != bPos {
				t.Errorf("Expected no positional correction, got a=%v b=%v", a.Pos, b.Pos)
			}
			if got && (a.OnTop || b.OnTop) {
				t.Error("Expected OnTop cleared on both after collision")
			}
			if !got && (a.OnTop != tc.aTop || b.OnTop != tc.bTop) {
				t.Error("Expected OnTop untouched without collision")
			}
		})
	}
}

func TestBodyCollisionInactiveSkipped(t *testing.T) {
	rng := vmath.NewFastRand(4)
	state := rng.State()

	// geometric overlap outside the frame
	a := &Body{Pos: r2.Vec{X: -50, Y: -50}, Radius: 10, Active: false, OnTop: true}
	b := &Body{Pos: r2.Vec{X: -45, Y: -50}, Radius: 10, Active: false, OnTop: true}

	if ResolveBodyCollision(a, b, rng) {
		t.Error("Expected no collision between inactive bodies")
	}
	if !a.OnTop || !b.OnTop || a.Pos.X != -50 || b.Pos.X != -45 {
		t.Error("Expected inactive bodies untouched")
	}
	if rng.State() != state {
		t.Error("Expected no random draw")
	}

	c := &Body{Pos: r2.Vec{X: -40, Y: -50}, Radius: 10, Active: true}
	if ResolveBodyCollision(a, c, rng) {
		t.Error("Expected no collision when one participant is inactive")
	}
}

func TestBodyCollisionCoincident(t *testing.T) {
	rng := vmath.NewFastRand(6)
	a := &Body{Pos: r2.Vec{X: 300, Y: 300}, Radius: 6, Active: true}
	b := &Body{Pos: r2.Vec{X: 300, Y: 300}, Radius: 4, Active: true}

	if !ResolveBodyCollision(a, b, rng) {
		t.Fatal("Expected coincident bodies to collide")
	}
	if a.Pos.X != 305 || b.Pos.X != 295 || a.Pos.Y != 300 || b.Pos.Y != 300 {
		t.Errorf("Expected separation along X to 305/295, got a=%v b=%v", a.Pos, b.Pos)
	}
}

func TestFrameContains(t *testing.T) {
	f := Frame{Width: 10, Height: 20}
	cases := map[r2.Vec]bool{
		{X: 5, Y: 5}:   true,
		{X: 0, Y: 5}:   false,
		{X: 10, Y: 5}:  false,
		{X: 5, Y: 0}:   false,
		{X: 5, Y: 20}:  false,
		{X: -1, Y: 25}: false,
	}
	for p, want := range cases {
		if got := f.Contains(p); got != want {
			t.Errorf("Contains(%v): expected %v, got %v", p, want, got)
		}
	}
}

func TestBodyColorKept(t *testing.T) {
	b := &Body{Color: core.RGB{R: 1, G: 2, B: 3}, Active: true, Speed: 1}
	b.Move(testFrame)
	if b.Color != (core.RGB{R: 1, G: 2, B: 3}) {
		t.Error("Expected Move to leave color untouched")
	}
}
