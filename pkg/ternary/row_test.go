package ternary

import (
	"errors"
	"slices"
	"testing"

	"ternary369/pkg/core"
)

func TestCreateInitialRowCentered(t *testing.T) {
	row, err := CreateInitialRow(7, false)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(row, Row{0, 0, 0, 1, 0, 0, 0}) {
		t.Fatalf("got %v", row)
	}

	even, err := CreateInitialRow(6, false)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(even, Row{0, 0, 0, 1, 0, 0}) {
		t.Fatalf("even width: got %v", even)
	}

	one, err := CreateInitialRow(1, false)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(one, Row{1}) {
		t.Fatalf("width 1: got %v", one)
	}
}

func TestCreateInitialRowRandom(t *testing.T) {
	row, err := CreateInitialRow(81, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(row) != 81 {
		t.Fatalf("expected 81 cells, got %d", len(row))
	}
	for i, c := range row {
		if !c.Valid() {
			t.Fatalf("cell %d has state %d", i, c)
		}
	}
}

func TestCreateInitialRowRandSeeded(t *testing.T) {
	a, err := CreateInitialRowRand(201, true, core.NewRNG(42).Source())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := CreateInitialRowRand(201, true, core.NewRNG(42).Source())
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different rows")
	}

	seen := [NumStates]int{}
	for _, c := range a {
		seen[c]++
	}
	for state, n := range seen {
		if n == 0 {
			t.Fatalf("state %d never drawn in 201 cells", state)
		}
	}
}

func TestCreateInitialRowRejectsWidth(t *testing.T) {
	for _, w := range []int{0, -3} {
		if _, err := CreateInitialRow(w, false); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("width %d: expected ErrInvalidArgument, got %v", w, err)
		}
	}
}
