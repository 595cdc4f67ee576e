package utils

import "math"

// Cell 网格坐标
type Cell struct {
	Row int
	Col int
}

// CellAt 将画布坐标向下取整到所在格子
// 参数:
//   - x, y: 画布坐标
//   - cellW, cellH: 单格宽高
//
// 返回:
//   - Cell: 格子坐标（负坐标会落到负数格子上，由调用方判定越界）
func CellAt(x, y, cellW, cellH float64) Cell {
	return Cell{
		Col: int(math.Floor(x / cellW)),
		Row: int(math.Floor(y / cellH)),
	}
}

// CellOrigin 返回格子左上角的画布坐标
func CellOrigin(c Cell, cellW, cellH float64) (x, y float64) {
	return float64(c.Col) * cellW, float64(c.Row) * cellH
}

// CenterIn 返回使尺寸为 (w, h) 的贴图在格子内居中时的左上角坐标
func CenterIn(c Cell, cellW, cellH, w, h float64) (x, y float64) {
	ox, oy := CellOrigin(c, cellW, cellH)
	return ox + (cellW-w)/2, oy + (cellH-h)/2
}

// InBounds 检查格子是否位于 columns x rows 的场地内
func (c Cell) InBounds(columns, rows int) bool {
	return c.Col >= 0 && c.Col < columns && c.Row >= 0 && c.Row < rows
}
