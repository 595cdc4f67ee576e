package utils

import "testing"

func TestCellAt(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Cell
	}{
		{"origin", 0, 0, Cell{Row: 0, Col: 0}},
		{"inside first cell", 119.9, 99.9, Cell{Row: 0, Col: 0}},
		{"second column", 120, 50, Cell{Row: 0, Col: 1}},
		{"third row", 250, 210, Cell{Row: 2, Col: 2}},
		{"negative", -1, -1, Cell{Row: -1, Col: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellAt(tt.x, tt.y, 120, 100); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCenterIn(t *testing.T) {
	x, y := CenterIn(Cell{Row: 1, Col: 2}, 120, 100, 50, 45)
	if x != 240+35 || y != 100+27.5 {
		t.Errorf("Expected (275, 127.5), got (%f, %f)", x, y)
	}
}

func TestCellInBounds(t *testing.T) {
	if !(Cell{Row: 0, Col: 0}).InBounds(10, 6) {
		t.Error("Expected (0,0) in bounds")
	}
	if (Cell{Row: 6, Col: 0}).InBounds(10, 6) {
		t.Error("Expected row 6 out of bounds")
	}
	if (Cell{Row: 0, Col: -1}).InBounds(10, 6) {
		t.Error("Expected negative col out of bounds")
	}
}
