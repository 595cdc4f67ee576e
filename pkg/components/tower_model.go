package components

import "github.com/decker502/bubbletd/pkg/types"

// TowerModelComponent 商店栏中的炮塔模板
// 本身不参与战斗，只负责按自身属性生成炮塔
type TowerModelComponent struct {
	Kind         types.TowerKind
	Price        int
	Attack       int
	Range        float64
	FireCooldown int // 生成炮塔的开火间隔（tick）

	// BuildCooldown 建造冷却，CreateTower 时重置
	BuildCooldown Cooldown

	// Active 冷却结束且金钱足够（每 tick 由系统刷新，用于渲染）
	Active bool
	// Hovered 鼠标悬停，用于显示提示
	Hovered bool
}
