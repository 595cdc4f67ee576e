package entities

import (
	"fmt"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/route"
)

// NewEnemy 创建敌人实体
// 敌人从排队位置出发，先走到入口格子，再沿路线前进
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图注册表（用于确定碰撞盒尺寸）
//   - sprite: 敌人贴图名
//   - r: 整波共享的路线
//   - stats: 生命、速度与奖励
//   - x, y: 生成坐标（左上角）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID
//   - error: 贴图未注册时返回错误
func NewEnemy(em *ecs.EntityManager, images render.ImageRegistry, sprite string, r *route.Route, stats config.EnemyStats, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	w, h, ok := images.ImageSize(sprite)
	if !ok {
		return 0, fmt.Errorf("enemy sprite %q is not registered", sprite)
	}

	entryX, entryY := r.EntryPosition(w, h)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: w, Height: h})
	em.AddComponent(id, &components.SpriteComponent{Name: sprite})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: stats.Life,
		MaxHealth:     stats.Life,
	})
	em.AddComponent(id, &components.EnemyComponent{
		Route:  r,
		Speed:  stats.Speed,
		Reward: stats.Reward,
		EntryX: entryX,
		EntryY: entryY,
	})
	return id, nil
}
