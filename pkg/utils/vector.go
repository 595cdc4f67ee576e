package utils

import "math"

// Vector 二维向量，屏幕坐标系（y 轴向下）
type Vector struct {
	X, Y float64
}

// Distance 返回两点之间的欧氏距离
func (v Vector) Distance(other Vector) float64 {
	dx := other.X - v.X
	dy := other.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Angle 返回向量相对正上方的顺时针角度（度）
// 正上方为 0，正右方为 90，正下方为 180，正左方为 -90
func (v Vector) Angle() float64 {
	return math.Atan2(v.X, -v.Y) * 180 / math.Pi
}

// Sub 返回 v - other
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Heading 返回给定角度（度）方向上长度为 distance 的位移
// 与 Angle 互为逆运算：x = d·sin(θ)，y = -d·cos(θ)
func Heading(degrees, distance float64) Vector {
	rad := degrees * math.Pi / 180
	return Vector{X: distance * math.Sin(rad), Y: -distance * math.Cos(rad)}
}
