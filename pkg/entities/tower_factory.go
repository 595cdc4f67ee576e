package entities

import (
	"fmt"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/types"
)

// TowerCandidate 拖动中的候选炮塔
// 由炮塔模板生成，放置成功前不进入实体管理器
type TowerCandidate struct {
	Kind         types.TowerKind
	Price        int
	Attack       int
	Range        float64
	FireCooldown int

	X, Y          float64 // 左上角
	Width, Height float64

	// OffsetX/OffsetY 按下时鼠标相对模板左上角的偏移
	OffsetX, OffsetY float64
}

// MoveTo 让候选炮塔跟随鼠标
func (c *TowerCandidate) MoveTo(pointerX, pointerY float64) {
	c.X = pointerX - c.OffsetX
	c.Y = pointerY - c.OffsetY
}

// NewTower 将候选炮塔提交为实体
//
// 参数:
//   - em: 实体管理器
//   - c: 已吸附到格子中心的候选炮塔
//
// 返回:
//   - ecs.EntityID: 炮塔实体ID
//   - error: 参数无效时返回错误
func NewTower(em *ecs.EntityManager, c *TowerCandidate) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if c == nil {
		return 0, fmt.Errorf("tower candidate cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: c.X, Y: c.Y})
	em.AddComponent(id, &components.CollisionComponent{Width: c.Width, Height: c.Height})
	em.AddComponent(id, &components.SpriteComponent{Name: string(c.Kind)})
	em.AddComponent(id, &components.TowerComponent{
		Kind:   c.Kind,
		Attack: c.Attack,
		Range:  c.Range,
		Weapon: components.NewCooldown(c.FireCooldown),
	})
	return id, nil
}
