package systems

import (
	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/utils"
)

// ProjectileSystem 子弹飞行
// 位置由起点和累计飞行距离计算，超出射程的子弹被标记删除
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建子弹飞行系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{entityManager: em}
}

// Update 推进所有子弹一个 tick
func (s *ProjectileSystem) Update() {
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.PositionComponent](s.entityManager)
	for _, id := range bullets {
		b, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		b.Traveled += b.Speed
		offset := utils.Heading(b.Rotation, b.Traveled)
		pos.X = b.OriginX + offset.X
		pos.Y = b.OriginY + offset.Y

		if b.Traveled > b.Range {
			s.entityManager.DestroyEntity(id)
		}
	}
}
