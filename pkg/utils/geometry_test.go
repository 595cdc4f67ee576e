package utils

import "testing"

func TestIsRectCollide(t *testing.T) {
	tests := []struct {
		name string
		a    [4]float64
		b    [4]float64
		want bool
	}{
		{"overlap", [4]float64{0, 0, 10, 10}, [4]float64{5, 5, 10, 10}, true},
		{"contained", [4]float64{0, 0, 100, 100}, [4]float64{10, 10, 5, 5}, true},
		{"touching edge", [4]float64{0, 0, 10, 10}, [4]float64{10, 0, 10, 10}, false},
		{"apart horizontally", [4]float64{0, 0, 10, 10}, [4]float64{20, 0, 10, 10}, false},
		{"apart vertically", [4]float64{0, 0, 10, 10}, [4]float64{0, 20, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a, tt.b
			got := IsRectCollide(a[0], a[1], a[2], a[3], b[0], b[1], b[2], b[3])
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			// 交换参数结果应相同
			if rev := IsRectCollide(b[0], b[1], b[2], b[3], a[0], a[1], a[2], a[3]); rev != got {
				t.Errorf("Collision should be symmetric")
			}
		})
	}
}

func TestIsPointInRect(t *testing.T) {
	if !IsPointInRect(5, 5, 0, 0, 10, 10) {
		t.Error("Expected center point to be inside")
	}
	// 边界上的点不算在内部
	if IsPointInRect(0, 5, 0, 0, 10, 10) || IsPointInRect(10, 5, 0, 0, 10, 10) {
		t.Error("Expected edge points to be outside")
	}
	if IsPointInRect(11, 5, 0, 0, 10, 10) {
		t.Error("Expected outside point to be outside")
	}
}

func TestCenter(t *testing.T) {
	c := Center(10, 20, 30, 40)
	if c.X != 25 || c.Y != 40 {
		t.Errorf("Expected (25, 40), got (%f, %f)", c.X, c.Y)
	}
}
