package entities

import (
	"fmt"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/types"
)

// NewTowerModel 创建商店栏中的炮塔模板实体
// 模板的建造冷却从满值开始
func NewTowerModel(em *ecs.EntityManager, images render.ImageRegistry, kind types.TowerKind, stats config.TowerStats, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	w, h, ok := images.ImageSize(string(kind))
	if !ok {
		return 0, fmt.Errorf("tower sprite %q is not registered", kind)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: w, Height: h})
	em.AddComponent(id, &components.SpriteComponent{Name: string(kind)})
	em.AddComponent(id, &components.TowerModelComponent{
		Kind:          kind,
		Price:         stats.Price,
		Attack:        stats.Attack,
		Range:         stats.Range,
		FireCooldown:  stats.CoolDownTime,
		BuildCooldown: components.NewCooldown(stats.BuildCoolDown),
	})
	return id, nil
}
