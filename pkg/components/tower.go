package components

import (
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/types"
)

// TowerComponent 存储已放置炮塔的战斗数据
type TowerComponent struct {
	Kind   types.TowerKind
	Attack int
	Range  float64

	// Rotation 炮口朝向（度），0 为正上方，顺时针为正
	Rotation float64

	// Target 当前目标敌人的弱引用，每 tick 重新校验
	Target ecs.EntityID

	// Weapon 开火冷却
	Weapon Cooldown

	ShowRange bool
}
