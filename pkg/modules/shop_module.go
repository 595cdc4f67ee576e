package modules

import (
	"fmt"
	"log"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/entities"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/types"
)

const (
	moneyBoxSprite  = "moneyBox"
	towerBaseSprite = "towerBase"
	hudMargin       = 20.0
	hudFontSize     = 24.0
)

// ShopModule 底部商店栏
// 负责创建炮塔模板、商店底座和金钱框实体，并绘制金钱与得分
type ShopModule struct {
	entityManager *ecs.EntityManager
	models        []ecs.EntityID

	moneyBoxX, moneyBoxY float64
	moneyBoxH            float64
}

// NewShopModule 按任务配置创建商店栏
//
// 参数:
//   - em: 实体管理器
//   - cfg: 任务配置（画布尺寸、商店布局、炮塔属性、贴图表）
//   - missionIndex: 当前任务，用于合并任务内的炮塔属性覆盖
//
// 返回:
//   - *ShopModule: 商店栏模块
//   - error: 贴图缺失或炮塔属性缺失时返回错误
func NewShopModule(em *ecs.EntityManager, cfg *config.MissionConfig, missionIndex int) (*ShopModule, error) {
	canvasW := float64(cfg.Canvas.Width)
	canvasH := float64(cfg.Canvas.Height)
	m := &ShopModule{entityManager: em}

	if w, h, ok := cfg.Sprites.ImageSize(towerBaseSprite); ok {
		addDecor(em, towerBaseSprite, canvasW-w, canvasH-h)
	}
	if _, h, ok := cfg.Sprites.ImageSize(moneyBoxSprite); ok {
		m.moneyBoxX = hudMargin
		m.moneyBoxY = canvasH - h - hudMargin
		m.moneyBoxH = h
		addDecor(em, moneyBoxSprite, m.moneyBoxX, m.moneyBoxY)
	}

	for i, kind := range types.AllTowerKinds() {
		stats, ok := cfg.TowerStats(missionIndex, kind)
		if !ok {
			return nil, fmt.Errorf("no stats for tower %q", kind)
		}
		_, h, ok := cfg.Sprites.ImageSize(string(kind))
		if !ok {
			return nil, fmt.Errorf("tower sprite %q is not registered", kind)
		}
		x := canvasW - float64(i+1)*cfg.Shop.Spacing
		y := canvasH - h + cfg.Shop.OffsetY
		id, err := entities.NewTowerModel(em, cfg.Sprites, kind, stats, x, y)
		if err != nil {
			return nil, fmt.Errorf("failed to create tower model: %w", err)
		}
		m.models = append(m.models, id)
	}

	log.Printf("[ShopModule] 创建 %d 个炮塔模板", len(m.models))
	return m, nil
}

func addDecor(em *ecs.EntityManager, sprite string, x, y float64) {
	id := em.CreateEntity()
	em.AddComponent(id, &components.DecorComponent{})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteComponent{Name: sprite})
}

// Models 返回模板实体，顺序与 types.AllTowerKinds 一致
func (m *ShopModule) Models() []ecs.EntityID {
	return append([]ecs.EntityID(nil), m.models...)
}

// ModelFor 返回指定种类的模板实体
func (m *ShopModule) ModelFor(kind types.TowerKind) (ecs.EntityID, bool) {
	for _, id := range m.models {
		if model, ok := ecs.GetComponent[*components.TowerModelComponent](m.entityManager, id); ok && model.Kind == kind {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

// DrawHUD 在金钱框上绘制金钱，在其右侧绘制得分
func (m *ShopModule) DrawHUD(r render.Renderer, money, score int) {
	o, ok := render.AsOverlay(r)
	if !ok {
		return
	}
	textY := m.moneyBoxY + (m.moneyBoxH-hudFontSize)/2
	o.DrawText(MoneyText(money), m.moneyBoxX+hudMargin, textY, hudFontSize, render.ColorText)
	o.DrawText(ScoreText(score), m.moneyBoxX+220, textY, hudFontSize, render.ColorTextLight)
}

// MoneyText 金钱文字
func MoneyText(money int) string {
	return fmt.Sprintf("金钱: %d", money)
}

// ScoreText 得分文字
func ScoreText(score int) string {
	return fmt.Sprintf("得分: %d", score)
}
