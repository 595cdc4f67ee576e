package utils

import "math"

// IsRectCollide 检测两个轴对齐矩形是否重叠
// 仅接触边缘不算重叠
func IsRectCollide(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	left := math.Max(x1, x2)
	right := math.Min(x1+w1, x2+w2)
	top := math.Max(y1, y2)
	bottom := math.Min(y1+h1, y2+h2)
	return left < right && top < bottom
}

// IsPointInRect 检测点是否严格位于矩形内部
func IsPointInRect(px, py, x, y, w, h float64) bool {
	return px > x && px < x+w && py > y && py < y+h
}

// Center 返回矩形中心点
func Center(x, y, w, h float64) Vector {
	return Vector{X: x + w/2, Y: y + h/2}
}
