package components

import "github.com/decker502/bubbletd/pkg/route"

// EnemyComponent 存储敌人沿路线行进的状态
type EnemyComponent struct {
	Route           *route.Route // 整波敌人共享的只读路线
	RouteIndex      int          // 当前所在路段
	SegmentTraveled float64      // 当前路段已走距离
	Speed           float64      // 每 tick 移动距离
	Reward          int          // 击杀奖励金钱

	// EntryX/EntryY 是敌人在入口格子中居中时的坐标。
	// 排队生成的敌人先走到入口，这段路程不计入第一段路线。
	EntryX float64
	EntryY float64

	Finished bool // 已走完全部路线
	Rewarded bool // 已发放击杀奖励
}
