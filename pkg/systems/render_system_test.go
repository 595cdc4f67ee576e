package systems

import (
	"testing"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/utils"
)

// spriteOnly 只实现 Renderer，不支持 Overlay
type spriteOnly struct {
	names []string
}

func (s *spriteOnly) DrawSprite(name string, x, y, rotation float64, flipX, flipY bool) {
	s.names = append(s.names, name)
}

func TestRenderSystemDrawOrder(t *testing.T) {
	w := newTestWorld(t, 50)
	tile := w.em.CreateEntity()
	w.em.AddComponent(tile, &components.TileComponent{Cell: utils.Cell{Row: 0, Col: 0}, Road: true})
	w.em.AddComponent(tile, &components.PositionComponent{})
	w.em.AddComponent(tile, &components.SpriteComponent{Name: "road0"})

	towerID := w.addTower(t, 5, 150, 10, 300, 300)
	towerOf(t, w.em, towerID).Rotation = 45
	w.addEnemy(t, config.EnemyStats{Life: 10}, 100, 100)
	newModel(t, w.em, 40, 10)

	rec := render.NewRecorder()
	NewRenderSystem(w.em, nil, 120, 100).Draw(rec)

	var order []string
	for _, op := range rec.Ops {
		if op.Kind == render.OpSprite {
			order = append(order, op.Name)
		}
	}
	want := []string{"road0", "grey_light", "light", "enemy0"}
	if len(order) != len(want) {
		t.Fatalf("Expected sprites %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Sprite %d: expected %s, got %s", i, want[i], order[i])
		}
	}
	if towers := rec.Sprites("light"); towers[0].Rotation != 45 {
		t.Errorf("Expected tower rotation 45, got %f", towers[0].Rotation)
	}
	// 敌人血条：底色与前景各一个
	if n := rec.Count(render.OpFillRect); n != 2 {
		t.Errorf("Expected 2 life bar rects, got %d", n)
	}
}

func TestRenderSystemWithoutOverlay(t *testing.T) {
	w := newTestWorld(t, 50)
	w.addEnemy(t, config.EnemyStats{Life: 10}, 100, 100)

	r := &spriteOnly{}
	NewRenderSystem(w.em, nil, 120, 100).Draw(r)

	if len(r.names) != 1 || r.names[0] != "enemy0" {
		t.Errorf("Expected only the enemy sprite, got %v", r.names)
	}
}

func TestRenderSystemDragAndTooltip(t *testing.T) {
	f := newPlacementFixture(t, 50, 0, nil)
	f.models.Update()
	f.placement.Hover(830, 650)
	f.placement.Begin(830, 650)
	f.placement.Drag(130, 50) // 路线格子

	rec := render.NewRecorder()
	NewRenderSystem(f.em, f.placement, 120, 100).Draw(rec)

	var highlight *render.Op
	for i := range rec.Ops {
		if rec.Ops[i].Kind == render.OpStrokeRect {
			highlight = &rec.Ops[i]
		}
	}
	if highlight == nil {
		t.Fatal("Expected a grid highlight while dragging")
	}
	if highlight.X != 120 || highlight.Y != 0 || highlight.Color != render.ColorGridInvalid {
		t.Errorf("Expected red highlight at (120, 0), got %+v", highlight)
	}
	if rec.Count(render.OpFillCircle) != 1 {
		t.Error("Expected candidate range circle")
	}
	if len(rec.Sprites("light")) != 1 {
		t.Error("Expected the candidate sprite")
	}
	// 拖动开始后模板立即显示为灰色
	if len(rec.Sprites("grey_light")) != 1 {
		t.Error("Expected the model to turn grey once the drag starts")
	}
	if !rec.HasText("小炮") || !rec.HasText("价格: 40") {
		t.Error("Expected tooltip for the hovered model")
	}
}
