package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := newFixedStep(10, clock.now)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v", fs.Interval())
	}

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time passed, should not step")
	}
	clock.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("60ms is less than one tick")
	}
	clock.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("120ms should allow one tick")
	}

	// A long stall is paid back one tick per call.
	clock.advance(300 * time.Millisecond)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 3 {
		t.Fatalf("steps after 300ms stall = %d, want 3", steps)
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want 60 TPS", fs.Interval())
	}
	fs.SetTPS(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("interval = %v after SetTPS(20)", fs.Interval())
	}
}

func TestRegistry(t *testing.T) {
	Register("", nil)
	if _, ok := Lookup(""); ok {
		t.Fatal("empty registration should be ignored")
	}
	if _, ok := Lookup("missing"); ok {
		t.Fatal("unexpected sim")
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Fill(4)
	g.Set(2, 1, 9)
	g.Set(3, 0, 7)
	g.Set(-1, 0, 7)
	cells := g.Cells()
	if cells[g.Index(2, 1)] != 9 || cells[g.Index(0, 0)] != 4 {
		t.Fatal("unexpected values")
	}
	for _, v := range g.Cells() {
		if v == 7 {
			t.Fatal("out of range write landed in the grid")
		}
	}
}
