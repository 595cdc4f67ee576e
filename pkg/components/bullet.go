package components

import "github.com/decker502/bubbletd/pkg/ecs"

// BulletComponent 存储子弹的飞行状态
// 位置每 tick 由起点和累计飞行距离重新计算
type BulletComponent struct {
	Owner    ecs.EntityID // 发射该子弹的炮塔
	OriginX  float64      // 发射时的左上角坐标
	OriginY  float64
	Rotation float64 // 飞行方向（度），发射时确定
	Range    float64 // 最大飞行距离
	Traveled float64 // 累计飞行距离
	Speed    float64 // 每 tick 飞行距离
}
