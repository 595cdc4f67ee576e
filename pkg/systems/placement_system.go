package systems

import (
	"log"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/entities"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/route"
	"github.com/decker502/bubbletd/pkg/utils"
)

// 放置被拒绝的原因
const (
	RejectInvalidCell       = "invalid cell"
	RejectInsufficientFunds = "insufficient funds"
	RejectCancelled         = "cancelled"
)

// dragSession 一次从模板拖出炮塔的过程
type dragSession struct {
	model     ecs.EntityID
	candidate *entities.TowerCandidate
	cell      utils.Cell
	eligible  bool
}

// PlacementSystem 管理场地网格的占用状态和拖放建造
// 路线格子、已占用格子和场地外的格子都不能放置炮塔
type PlacementSystem struct {
	entityManager *ecs.EntityManager
	models        *TowerModelSystem
	funds         Spender
	events        *event.EventBus
	grid          config.GridConfig
	route         *route.Route

	occupied map[utils.Cell]ecs.EntityID
	drag     *dragSession
}

// NewPlacementSystem 创建放置系统
//
// 参数:
//   - em: 实体管理器
//   - models: 炮塔模板系统，用于判断模板是否可用并生成候选炮塔
//   - funds: 金钱，放置成功时扣除价格
//   - events: 事件总线
//   - grid: 网格参数
//   - r: 当前任务路线，路线上的格子不可放置
func NewPlacementSystem(em *ecs.EntityManager, models *TowerModelSystem, funds Spender, events *event.EventBus, grid config.GridConfig, r *route.Route) *PlacementSystem {
	return &PlacementSystem{
		entityManager: em,
		models:        models,
		funds:         funds,
		events:        events,
		grid:          grid,
		route:         r,
		occupied:      make(map[utils.Cell]ecs.EntityID),
	}
}

// Begin 在模板上按下时开始拖动
// 返回: 是否开始了新的拖动（已有拖动、未按在模板上或模板不可用时返回 false）
func (s *PlacementSystem) Begin(x, y float64) bool {
	if s.drag != nil {
		return false
	}
	modelID, ok := s.models.ModelAt(x, y)
	if !ok {
		return false
	}
	model, _ := ecs.GetComponent[*components.TowerModelComponent](s.entityManager, modelID)
	if !s.models.IsActive(model) {
		return false
	}
	candidate, ok := s.models.CreateTower(modelID)
	if !ok {
		return false
	}
	candidate.OffsetX = x - candidate.X
	candidate.OffsetY = y - candidate.Y

	s.drag = &dragSession{model: modelID, candidate: candidate}
	s.Drag(x, y)
	log.Printf("[Placement] 开始拖动: %s", candidate.Kind)
	return true
}

// Drag 候选炮塔跟随指针，并重新计算指针下的格子
func (s *PlacementSystem) Drag(x, y float64) {
	if s.drag == nil {
		return
	}
	s.drag.candidate.MoveTo(x, y)
	s.drag.cell = utils.CellAt(x, y, s.grid.CellWidth, s.grid.CellHeight)
	s.drag.eligible = s.IsEligible(s.drag.cell)
}

// End 松开指针时尝试提交候选炮塔
//
// 返回:
//   - ecs.EntityID: 新炮塔实体ID
//   - bool: 是否放置成功；失败时候选炮塔被丢弃，网格和金钱不变
func (s *PlacementSystem) End(x, y float64) (ecs.EntityID, bool) {
	if s.drag == nil {
		return ecs.InvalidEntity, false
	}
	s.Drag(x, y)
	session := s.drag
	s.drag = nil
	c := session.candidate

	if !session.eligible {
		s.reject(c, RejectInvalidCell)
		return ecs.InvalidEntity, false
	}
	if !s.funds.Decrease(c.Price) {
		s.reject(c, RejectInsufficientFunds)
		return ecs.InvalidEntity, false
	}

	c.X, c.Y = utils.CenterIn(session.cell, s.grid.CellWidth, s.grid.CellHeight, c.Width, c.Height)
	id, err := entities.NewTower(s.entityManager, c)
	if err != nil {
		log.Printf("[Placement] 创建炮塔失败: %v", err)
		return ecs.InvalidEntity, false
	}
	s.occupied[session.cell] = id

	s.events.Emit(event.Event{
		Type: event.EvtTowerPlaced,
		Payload: event.TowerPlaced{
			Tower: id,
			Kind:  c.Kind,
			Row:   session.cell.Row,
			Col:   session.cell.Col,
			Price: c.Price,
		},
	})
	log.Printf("[Placement] 放置 %s 于 (%d, %d)，花费 %d", c.Kind, session.cell.Row, session.cell.Col, c.Price)
	return id, true
}

// Cancel 丢弃正在进行的拖动，网格和金钱不变
// 没有拖动时什么也不做
func (s *PlacementSystem) Cancel() {
	if s.drag == nil {
		return
	}
	c := s.drag.candidate
	s.drag = nil
	s.reject(c, RejectCancelled)
}

func (s *PlacementSystem) reject(c *entities.TowerCandidate, reason string) {
	s.events.Emit(event.Event{
		Type:    event.EvtPlacementRejected,
		Payload: event.PlacementRejected{Kind: c.Kind, Reason: reason},
	})
	log.Printf("[Placement] 放置 %s 被拒绝: %s", c.Kind, reason)
}

// Hover 更新模板提示和炮塔射程显示
func (s *PlacementSystem) Hover(x, y float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.TowerModelComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager) {
		model, _ := ecs.GetComponent[*components.TowerModelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		model.Hovered = pointInEntity(x, y, pos, col)
	}
	for _, id := range ecs.GetEntitiesWith3[*components.TowerComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager) {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		tower.ShowRange = pointInEntity(x, y, pos, col)
	}
}

// IsEligible 格子是否可以放置炮塔
func (s *PlacementSystem) IsEligible(cell utils.Cell) bool {
	if !cell.InBounds(s.grid.Columns, s.grid.Rows) {
		return false
	}
	if s.route != nil && s.route.Contains(cell) {
		return false
	}
	_, taken := s.occupied[cell]
	return !taken
}

// IsOccupied 格子上是否已有炮塔
func (s *PlacementSystem) IsOccupied(cell utils.Cell) bool {
	_, taken := s.occupied[cell]
	return taken
}

// OccupiedCount 已放置的炮塔数量
func (s *PlacementSystem) OccupiedCount() int {
	return len(s.occupied)
}

// Dragging 是否正在拖动
func (s *PlacementSystem) Dragging() bool {
	return s.drag != nil
}

// Candidate 正在拖动的候选炮塔，没有拖动时返回 nil
func (s *PlacementSystem) Candidate() *entities.TowerCandidate {
	if s.drag == nil {
		return nil
	}
	return s.drag.candidate
}

// HighlightCell 指针下的格子及其是否可放置
// 指针位于场地外时 ok 为 false
func (s *PlacementSystem) HighlightCell() (cell utils.Cell, eligible bool, ok bool) {
	if s.drag == nil || !s.drag.cell.InBounds(s.grid.Columns, s.grid.Rows) {
		return utils.Cell{}, false, false
	}
	return s.drag.cell, s.drag.eligible, true
}
