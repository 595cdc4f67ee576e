package systems

import (
	"fmt"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/route"
	"github.com/decker502/bubbletd/pkg/utils"
)

const (
	lifeBarHeight   = 5.0
	lifeBarGap      = 3.0
	tooltipWidth    = 130.0
	tooltipHeight   = 88.0
	tooltipFontSize = 14.0
)

// RenderSystem 提交游戏世界的绘制请求
//
// 绘制顺序：
//   - 背景格子与静态装饰
//   - 商店栏模板（不可用时为灰色）
//   - 炮塔、敌人、子弹
//   - 拖动中的候选炮塔与格子高亮
//   - 模板提示
//
// 血条、射程圈、格子高亮和提示只在渲染器支持 render.Overlay 时绘制。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	placement     *PlacementSystem
	cellWidth     float64
	cellHeight    float64
}

// NewRenderSystem 创建渲染系统
// placement 可以为 nil，此时不绘制拖动状态
func NewRenderSystem(em *ecs.EntityManager, placement *PlacementSystem, cellWidth, cellHeight float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		placement:     placement,
		cellWidth:     cellWidth,
		cellHeight:    cellHeight,
	}
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(r render.Renderer) {
	overlay, hasOverlay := render.AsOverlay(r)

	s.drawTiles(r)
	s.drawModels(r)
	s.drawTowers(r, overlay, hasOverlay)
	s.drawEnemies(r, overlay, hasOverlay)
	s.drawBullets(r)
	s.drawCandidate(r, overlay, hasOverlay)
	if hasOverlay {
		s.drawTooltips(overlay)
	}
}

func (s *RenderSystem) drawTiles(r render.Renderer) {
	for _, id := range ecs.GetEntitiesWith3[*components.TileComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		s.drawStatic(r, id)
	}
	for _, id := range ecs.GetEntitiesWith3[*components.DecorComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		s.drawStatic(r, id)
	}
}

func (s *RenderSystem) drawStatic(r render.Renderer, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	r.DrawSprite(sprite.Name, pos.X, pos.Y, 0, sprite.FlipX, sprite.FlipY)
}

func (s *RenderSystem) drawModels(r render.Renderer) {
	for _, id := range ecs.GetEntitiesWith2[*components.TowerModelComponent, *components.PositionComponent](s.entityManager) {
		model, _ := ecs.GetComponent[*components.TowerModelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		name := string(model.Kind)
		if !model.Active {
			name = model.Kind.GreySprite()
		}
		r.DrawSprite(name, pos.X, pos.Y, 0, false, false)
	}
}

func (s *RenderSystem) drawTowers(r render.Renderer, overlay render.Overlay, hasOverlay bool) {
	for _, id := range ecs.GetEntitiesWith3[*components.TowerComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if hasOverlay && tower.ShowRange {
			c := entityCenter(s.entityManager, id)
			overlay.FillCircle(c.X, c.Y, tower.Range, render.ColorRange)
		}
		r.DrawSprite(sprite.Name, pos.X, pos.Y, tower.Rotation, sprite.FlipX, sprite.FlipY)
	}
}

func (s *RenderSystem) drawEnemies(r render.Renderer, overlay render.Overlay, hasOverlay bool) {
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		// 向左走时水平翻转
		flipX := sprite.FlipX
		if rt := enemy.Route; rt != nil && enemy.RouteIndex < rt.Len() {
			flipX = rt.Segment(enemy.RouteIndex).Direction == route.Left
		}
		r.DrawSprite(sprite.Name, pos.X, pos.Y, 0, flipX, sprite.FlipY)

		if !hasOverlay {
			continue
		}
		health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		col, ok2 := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if !ok || !ok2 {
			continue
		}
		barY := pos.Y - lifeBarGap - lifeBarHeight
		overlay.FillRect(pos.X, barY, col.Width, lifeBarHeight, render.ColorLifeBack)
		overlay.FillRect(pos.X, barY, col.Width*health.Proportion(), lifeBarHeight, render.ColorLifeFront)
	}
}

func (s *RenderSystem) drawBullets(r render.Renderer) {
	for _, id := range ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		b, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		r.DrawSprite(sprite.Name, pos.X, pos.Y, b.Rotation, false, false)
	}
}

func (s *RenderSystem) drawCandidate(r render.Renderer, overlay render.Overlay, hasOverlay bool) {
	if s.placement == nil {
		return
	}
	c := s.placement.Candidate()
	if c == nil {
		return
	}
	if hasOverlay {
		if cell, eligible, ok := s.placement.HighlightCell(); ok {
			x, y := utils.CellOrigin(cell, s.cellWidth, s.cellHeight)
			clr := render.ColorGridInvalid
			if eligible {
				clr = render.ColorGridValid
			}
			overlay.StrokeRect(x, y, s.cellWidth, s.cellHeight, clr)
		}
		center := utils.Center(c.X, c.Y, c.Width, c.Height)
		overlay.FillCircle(center.X, center.Y, c.Range, render.ColorRange)
	}
	r.DrawSprite(string(c.Kind), c.X, c.Y, 0, false, false)
}

func (s *RenderSystem) drawTooltips(overlay render.Overlay) {
	for _, id := range ecs.GetEntitiesWith2[*components.TowerModelComponent, *components.PositionComponent](s.entityManager) {
		model, _ := ecs.GetComponent[*components.TowerModelComponent](s.entityManager, id)
		if !model.Hovered {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		x := pos.X - 20
		y := pos.Y - tooltipHeight - 10
		overlay.FillRect(x, y, tooltipWidth, tooltipHeight, render.ColorTooltip)

		lines := []string{
			model.Kind.DisplayName(),
			fmt.Sprintf("价格: %d", model.Price),
			fmt.Sprintf("攻击: %d", model.Attack),
			fmt.Sprintf("射程: %.0f", model.Range),
		}
		for i, line := range lines {
			overlay.DrawText(line, x+8, y+6+float64(i)*20, tooltipFontSize, render.ColorText)
		}
	}
}
