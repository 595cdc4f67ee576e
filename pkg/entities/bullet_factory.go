package entities

import (
	"fmt"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/render"
)

// BulletSpec 子弹发射参数
type BulletSpec struct {
	Sprite   string
	Owner    ecs.EntityID
	CenterX  float64 // 发射点（子弹中心）
	CenterY  float64
	Rotation float64
	Range    float64
	Speed    float64
}

// NewBullet 创建子弹实体
// 子弹中心与发射点重合
func NewBullet(em *ecs.EntityManager, images render.ImageRegistry, spec BulletSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	w, h, ok := images.ImageSize(spec.Sprite)
	if !ok {
		return 0, fmt.Errorf("bullet sprite %q is not registered", spec.Sprite)
	}

	originX := spec.CenterX - w/2
	originY := spec.CenterY - h/2

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: originX, Y: originY})
	em.AddComponent(id, &components.CollisionComponent{Width: w, Height: h})
	em.AddComponent(id, &components.SpriteComponent{Name: spec.Sprite})
	em.AddComponent(id, &components.BulletComponent{
		Owner:    spec.Owner,
		OriginX:  originX,
		OriginY:  originY,
		Rotation: spec.Rotation,
		Range:    spec.Range,
		Speed:    spec.Speed,
	})
	return id, nil
}
