package components

// PositionComponent 存储实体左上角的画布坐标
type PositionComponent struct {
	X float64
	Y float64
}
