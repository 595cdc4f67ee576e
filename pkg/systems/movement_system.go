package systems

import (
	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/route"
)

// MovementSystem 让敌人沿路线前进
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// Update 推进所有存活敌人一个 tick
//
// 返回:
//   - []ecs.EntityID: 本 tick 走完路线的敌人（按创建顺序），由调用方决定如何处理
func (s *MovementSystem) Update() []ecs.EntityID {
	var finished []ecs.EntityID

	entities := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if enemy.Finished {
			continue
		}
		if MoveOnRoute(enemy, pos) {
			enemy.Finished = true
			finished = append(finished, id)
		}
	}

	return finished
}

// MoveOnRoute 按路线移动敌人一个 tick
//
// 规则：
//   - 走完最后一段时返回 true，不再移动
//   - 位于第一段且尚未到达入口时，先朝入口移动，这段距离不计入路段
//   - 当前路段未走完时沿方向移动 speed 并累计距离
//   - 当前路段走完时切换到下一段，并在同一 tick 内继续处理
//
// 空路线上的敌人停在原地，永远不会完成。
func MoveOnRoute(enemy *components.EnemyComponent, pos *components.PositionComponent) bool {
	r := enemy.Route
	if r == nil || r.Len() == 0 {
		return false
	}

	for {
		if enemy.RouteIndex >= r.Len() {
			return true
		}

		seg := r.Segment(enemy.RouteIndex)

		if enemy.RouteIndex == 0 && enemy.SegmentTraveled == 0 {
			if remaining := distanceToEntry(seg.Direction, enemy, pos); remaining > 0 {
				step := enemy.Speed
				if step > remaining {
					step = remaining
				}
				dx, dy := seg.Direction.Delta(step)
				pos.X += dx
				pos.Y += dy
				return false
			}
		}

		if enemy.SegmentTraveled < seg.Distance {
			dx, dy := seg.Direction.Delta(enemy.Speed)
			pos.X += dx
			pos.Y += dy
			enemy.SegmentTraveled += enemy.Speed
			return false
		}

		enemy.RouteIndex++
		enemy.SegmentTraveled = 0
	}
}

// distanceToEntry 沿第一段方向到入口位置的剩余距离，已到达或越过时 <= 0
func distanceToEntry(dir route.Direction, enemy *components.EnemyComponent, pos *components.PositionComponent) float64 {
	switch dir {
	case route.Right:
		return enemy.EntryX - pos.X
	case route.Left:
		return pos.X - enemy.EntryX
	case route.Down:
		return enemy.EntryY - pos.Y
	case route.Up:
		return pos.Y - enemy.EntryY
	}
	return 0
}
