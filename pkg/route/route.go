// Package route 将任务的格子路径点转换为敌人行进的路段序列
package route

import "github.com/decker502/bubbletd/pkg/utils"

// Direction 路段方向
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta 返回沿该方向移动 distance 的位移
func (d Direction) Delta(distance float64) (dx, dy float64) {
	switch d {
	case Up:
		return 0, -distance
	case Down:
		return 0, distance
	case Left:
		return -distance, 0
	case Right:
		return distance, 0
	}
	return 0, 0
}

// Inverse 返回相反方向
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Horizontal 是否为水平方向
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Segment 一段路线：方向和长度
type Segment struct {
	Direction Direction
	Distance  float64
}

// Route 由任务路径点生成的只读路段序列
// 同一波的所有敌人共享同一个 Route
type Route struct {
	segments   []Segment
	waypoints  []utils.Cell
	cellWidth  float64
	cellHeight float64
}

// Build 由路径点生成路线
// 相邻路径点列相同则为竖直路段（长度为格高），否则为水平路段（长度为格宽）。
// 少于 2 个路径点时得到空路线，敌人永远不会到达终点。
func Build(waypoints []utils.Cell, cellW, cellH float64) *Route {
	r := &Route{
		waypoints:  append([]utils.Cell(nil), waypoints...),
		cellWidth:  cellW,
		cellHeight: cellH,
	}
	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]
		if from.Col == to.Col {
			dir := Down
			if to.Row < from.Row {
				dir = Up
			}
			r.segments = append(r.segments, Segment{Direction: dir, Distance: cellH})
		} else {
			dir := Right
			if to.Col < from.Col {
				dir = Left
			}
			r.segments = append(r.segments, Segment{Direction: dir, Distance: cellW})
		}
	}
	return r
}

// Len 路段数量
func (r *Route) Len() int {
	return len(r.segments)
}

// Segment 返回第 i 段
func (r *Route) Segment(i int) Segment {
	return r.segments[i]
}

// Segments 返回路段副本
func (r *Route) Segments() []Segment {
	return append([]Segment(nil), r.segments...)
}

// TotalDistance 路线总长度
func (r *Route) TotalDistance() float64 {
	total := 0.0
	for _, s := range r.segments {
		total += s.Distance
	}
	return total
}

// Cells 返回路线经过的格子，用于放置校验和背景绘制
func (r *Route) Cells() []utils.Cell {
	return append([]utils.Cell(nil), r.waypoints...)
}

// Contains 检查格子是否在路线上
func (r *Route) Contains(c utils.Cell) bool {
	for _, w := range r.waypoints {
		if w == c {
			return true
		}
	}
	return false
}

// EntryPosition 返回尺寸为 (w, h) 的敌人在入口格子中居中时的坐标
func (r *Route) EntryPosition(w, h float64) (x, y float64) {
	if len(r.waypoints) == 0 {
		return 0, 0
	}
	return utils.CenterIn(r.waypoints[0], r.cellWidth, r.cellHeight, w, h)
}

// SpawnPositions 计算一波 count 个敌人的排队生成坐标
// 从入口格子居中位置出发，沿第一段的反方向每次后退一格，
// 第一个敌人已经位于入口之后一格。
// 空路线没有方向可退，所有敌人都生成在入口处。
func (r *Route) SpawnPositions(count int, w, h float64) []utils.Vector {
	if count <= 0 {
		return nil
	}
	x, y := r.EntryPosition(w, h)
	positions := make([]utils.Vector, 0, count)

	if len(r.segments) == 0 {
		for i := 0; i < count; i++ {
			positions = append(positions, utils.Vector{X: x, Y: y})
		}
		return positions
	}

	back := r.segments[0].Direction.Inverse()
	step := r.cellHeight
	if back.Horizontal() {
		step = r.cellWidth
	}
	dx, dy := back.Delta(step)
	for i := 0; i < count; i++ {
		x += dx
		y += dy
		positions = append(positions, utils.Vector{X: x, Y: y})
	}
	return positions
}
