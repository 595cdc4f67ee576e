package entities

import (
	"testing"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/route"
	"github.com/decker502/bubbletd/pkg/types"
	"github.com/decker502/bubbletd/pkg/utils"
)

func testRoute() *route.Route {
	return route.Build([]utils.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, 120, 100)
}

func TestNewEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	sprites := config.Default().Sprites

	id, err := NewEnemy(em, sprites, "enemy0", testRoute(), config.EnemyStats{Life: 10, Speed: 2, Reward: 20}, -85, 27.5)
	if err != nil {
		t.Fatalf("NewEnemy() failed: %v", err)
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok || health.CurrentHealth != 10 || health.MaxHealth != 10 {
		t.Errorf("Unexpected health %+v", health)
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok {
		t.Fatal("Expected EnemyComponent")
	}
	if enemy.EntryX != 35 || enemy.EntryY != 27.5 {
		t.Errorf("Expected entry (35, 27.5), got (%f, %f)", enemy.EntryX, enemy.EntryY)
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Width != 50 || col.Height != 45 {
		t.Errorf("Expected 50x45 collision box, got %vx%v", col.Width, col.Height)
	}
}

func TestNewEnemyUnknownSprite(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, err := NewEnemy(em, config.Default().Sprites, "ghost", testRoute(), config.EnemyStats{Life: 1}, 0, 0); err == nil {
		t.Error("Expected error for unknown sprite")
	}
	if em.Count() != 0 {
		t.Error("Failed creation must not leave an entity behind")
	}
}

func TestNewTowerFromCandidate(t *testing.T) {
	em := ecs.NewEntityManager()
	c := &TowerCandidate{Kind: types.TowerLight, Attack: 5, Range: 150, FireCooldown: 10, X: 30, Y: 20, Width: 60, Height: 60}

	id, err := NewTower(em, c)
	if err != nil {
		t.Fatalf("NewTower() failed: %v", err)
	}
	tower, ok := ecs.GetComponent[*components.TowerComponent](em, id)
	if !ok {
		t.Fatal("Expected TowerComponent")
	}
	if tower.Attack != 5 || tower.Range != 150 || tower.Weapon.Max != 10 || tower.Weapon.Current != 10 {
		t.Errorf("Unexpected tower %+v", tower)
	}
	if tower.Target != ecs.InvalidEntity {
		t.Error("New tower must not hold a target")
	}
}

func TestCandidateMoveTo(t *testing.T) {
	c := &TowerCandidate{OffsetX: 10, OffsetY: 5}
	c.MoveTo(100, 100)
	if c.X != 90 || c.Y != 95 {
		t.Errorf("Expected (90, 95), got (%f, %f)", c.X, c.Y)
	}
}

func TestNewBulletCentersOnMuzzle(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewBullet(em, config.Default().Sprites, BulletSpec{
		Sprite: "bullet", CenterX: 100, CenterY: 50, Rotation: 90, Range: 150, Speed: 10,
	})
	if err != nil {
		t.Fatalf("NewBullet() failed: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 95 || pos.Y != 45 {
		t.Errorf("Expected bullet at (95, 45), got (%f, %f)", pos.X, pos.Y)
	}
	b, _ := ecs.GetComponent[*components.BulletComponent](em, id)
	if b.OriginX != 95 || b.OriginY != 45 || b.Traveled != 0 {
		t.Errorf("Unexpected bullet %+v", b)
	}
}

func TestNewTowerModel(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := config.TowerStats{Price: 40, Attack: 5, Range: 150, CoolDownTime: 10, BuildCoolDown: 50}
	id, err := NewTowerModel(em, config.Default().Sprites, types.TowerLight, stats, 800, 620)
	if err != nil {
		t.Fatalf("NewTowerModel() failed: %v", err)
	}
	m, _ := ecs.GetComponent[*components.TowerModelComponent](em, id)
	if m.BuildCooldown.Current != 50 || m.Price != 40 || m.FireCooldown != 10 {
		t.Errorf("Unexpected model %+v", m)
	}
}
