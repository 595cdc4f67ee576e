package route

import (
	"testing"

	"github.com/decker502/bubbletd/pkg/utils"
)

func TestBuildSegments(t *testing.T) {
	waypoints := []utils.Cell{
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 1},
		{Row: 1, Col: 0},
		{Row: 0, Col: 0},
	}
	r := Build(waypoints, 120, 100)

	want := []Segment{
		{Direction: Right, Distance: 120},
		{Direction: Down, Distance: 100},
		{Direction: Left, Distance: 120},
		{Direction: Up, Distance: 100},
	}
	if r.Len() != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), r.Len())
	}
	for i, s := range want {
		if got := r.Segment(i); got != s {
			t.Errorf("Segment %d: expected %+v, got %+v", i, s, got)
		}
	}
	if total := r.TotalDistance(); total != 440 {
		t.Errorf("Expected total distance 440, got %f", total)
	}
}

func TestBuildDegenerateRoute(t *testing.T) {
	tests := []struct {
		name      string
		waypoints []utils.Cell
	}{
		{"nil", nil},
		{"single", []utils.Cell{{Row: 2, Col: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Build(tt.waypoints, 120, 100)
			if r.Len() != 0 {
				t.Errorf("Expected empty route, got %d segments", r.Len())
			}
			if r.TotalDistance() != 0 {
				t.Errorf("Expected zero distance, got %f", r.TotalDistance())
			}
		})
	}
}

func TestSpawnPositionsQueueBehindEntry(t *testing.T) {
	r := Build([]utils.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, 120, 100)

	positions := r.SpawnPositions(3, 50, 45)
	if len(positions) != 3 {
		t.Fatalf("Expected 3 positions, got %d", len(positions))
	}

	// 入口居中坐标为 (35, 27.5)，向左每次后退一格
	wantX := []float64{35 - 120, 35 - 240, 35 - 360}
	for i, p := range positions {
		if p.X != wantX[i] || p.Y != 27.5 {
			t.Errorf("Position %d: expected (%f, 27.5), got (%f, %f)", i, wantX[i], p.X, p.Y)
		}
	}
}

func TestSpawnPositionsVerticalEntry(t *testing.T) {
	r := Build([]utils.Cell{{Row: 2, Col: 1}, {Row: 1, Col: 1}}, 120, 100)

	positions := r.SpawnPositions(2, 50, 45)
	// 第一段向上，因此向下排队
	entryX, entryY := r.EntryPosition(50, 45)
	if positions[0].X != entryX || positions[0].Y != entryY+100 {
		t.Errorf("Expected first position one row below entry, got (%f, %f)", positions[0].X, positions[0].Y)
	}
	if positions[1].Y != entryY+200 {
		t.Errorf("Expected second position two rows below entry, got %f", positions[1].Y)
	}
}

func TestRouteContains(t *testing.T) {
	r := Build([]utils.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, 120, 100)
	if !r.Contains(utils.Cell{Row: 0, Col: 1}) {
		t.Error("Expected waypoint cell to be on route")
	}
	if r.Contains(utils.Cell{Row: 1, Col: 1}) {
		t.Error("Expected off-route cell not to be on route")
	}
}

func TestDirectionInverse(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.Inverse().Inverse() != d {
			t.Errorf("Inverse of inverse should be %s", d)
		}
		dx, dy := d.Delta(1)
		ix, iy := d.Inverse().Delta(1)
		if dx != -ix || dy != -iy {
			t.Errorf("Inverse delta of %s should cancel out", d)
		}
	}
}
