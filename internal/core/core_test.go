package core

import (
	"testing"
	"time"
)

func TestByteGridRows(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.SetRow(1, 3, func(x int) uint8 { return uint8(x + 1) })
	if got := g.Row(1); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("row 1 = %v", got)
	}
	if g.Row(2) != nil || g.Row(-1) != nil {
		t.Fatal("out of range rows must be nil")
	}
	g.SetRow(5, 3, func(int) uint8 { return 9 })
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear", i, v)
		}
	}
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected step after one interval")
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %s", fs.Interval())
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 3, Max: 201, HasMin: true, HasMax: true}
	if c.Clamp(1) != 3 || c.Clamp(500) != 201 || c.Clamp(81) != 81 {
		t.Fatal("clamp out of bounds")
	}
}
