package systems

import (
	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/entities"
	"github.com/decker502/bubbletd/pkg/utils"
)

// Spender 放置炮塔时使用的金钱接口
type Spender interface {
	CanAfford(amount int) bool
	Decrease(amount int) bool
}

// TowerModelSystem 管理商店栏中的炮塔模板
// 每 tick 推进建造冷却，并刷新模板是否可用
type TowerModelSystem struct {
	entityManager *ecs.EntityManager
	funds         Spender
}

// NewTowerModelSystem 创建炮塔模板系统
func NewTowerModelSystem(em *ecs.EntityManager, funds Spender) *TowerModelSystem {
	return &TowerModelSystem{
		entityManager: em,
		funds:         funds,
	}
}

// Update 推进所有模板的建造冷却
func (s *TowerModelSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.TowerModelComponent](s.entityManager) {
		model, _ := ecs.GetComponent[*components.TowerModelComponent](s.entityManager, id)
		model.BuildCooldown.Update()
		model.Active = s.IsActive(model)
	}
}

// IsActive 模板是否可以开始建造：冷却结束且金钱足够
func (s *TowerModelSystem) IsActive(model *components.TowerModelComponent) bool {
	return model.BuildCooldown.IsActive() && s.funds.CanAfford(model.Price)
}

// CreateTower 从模板生成候选炮塔并重置建造冷却
// 不扣除金钱，价格在放置成功时扣除
//
// 返回:
//   - *entities.TowerCandidate: 位于模板当前位置的候选炮塔
//   - bool: 实体不是炮塔模板时返回 false
func (s *TowerModelSystem) CreateTower(modelID ecs.EntityID) (*entities.TowerCandidate, bool) {
	model, ok := ecs.GetComponent[*components.TowerModelComponent](s.entityManager, modelID)
	if !ok {
		return nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, modelID)
	if !ok {
		return nil, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, modelID)
	if !ok {
		return nil, false
	}

	model.BuildCooldown.Reset()
	model.Active = false

	return &entities.TowerCandidate{
		Kind:         model.Kind,
		Price:        model.Price,
		Attack:       model.Attack,
		Range:        model.Range,
		FireCooldown: model.FireCooldown,
		X:            pos.X,
		Y:            pos.Y,
		Width:        col.Width,
		Height:       col.Height,
	}, true
}

// ModelAt 返回严格包含该点的模板
func (s *TowerModelSystem) ModelAt(x, y float64) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith3[*components.TowerModelComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if pointInEntity(x, y, pos, col) {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

func pointInEntity(x, y float64, pos *components.PositionComponent, col *components.CollisionComponent) bool {
	return utils.IsPointInRect(x, y, pos.X, pos.Y, col.Width, col.Height)
}
