package systems

import (
	"testing"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/entities"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/route"
	"github.com/decker502/bubbletd/pkg/types"
	"github.com/decker502/bubbletd/pkg/utils"
)

// testWorld 按游戏场景的顺序组装所有战斗系统
type testWorld struct {
	cfg      *config.MissionConfig
	em       *ecs.EntityManager
	events   *event.EventBus
	economy  *game.Economy
	route    *route.Route
	movement *MovementSystem
	target   *TargetingSystem
	bullets  *ProjectileSystem
	physics  *PhysicsSystem
	reward   *RewardSystem
}

func newTestWorld(t *testing.T, money int, waypoints ...utils.Cell) *testWorld {
	t.Helper()
	cfg := config.Default()
	em := ecs.NewEntityManager()
	events := event.NewEventBus()
	economy := game.NewEconomy(money)
	if len(waypoints) == 0 {
		waypoints = []utils.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	}
	r := route.Build(waypoints, cfg.Grid.CellWidth, cfg.Grid.CellHeight)
	return &testWorld{
		cfg:      cfg,
		em:       em,
		events:   events,
		economy:  economy,
		route:    r,
		movement: NewMovementSystem(em),
		target:   NewTargetingSystem(em, cfg.Sprites, cfg.Bullet, events),
		bullets:  NewProjectileSystem(em),
		physics:  NewPhysicsSystem(em, events),
		reward:   NewRewardSystem(em, economy, events),
	}
}

// tick 执行一个完整的战斗 tick，返回本 tick 走完路线的敌人
func (w *testWorld) tick() []ecs.EntityID {
	finished := w.movement.Update()
	w.target.Update()
	w.bullets.Update()
	w.physics.Update()
	w.reward.Update()
	w.em.RemoveMarkedEntities()
	w.events.Dispatch()
	return finished
}

func (w *testWorld) addEnemy(t *testing.T, stats config.EnemyStats, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(w.em, w.cfg.Sprites, "enemy0", w.route, stats, x, y)
	if err != nil {
		t.Fatalf("NewEnemy() failed: %v", err)
	}
	return id
}

func (w *testWorld) addTower(t *testing.T, attack int, rng float64, fireCooldown int, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewTower(w.em, &entities.TowerCandidate{
		Kind:         types.TowerLight,
		Attack:       attack,
		Range:        rng,
		FireCooldown: fireCooldown,
		X:            x,
		Y:            y,
		Width:        60,
		Height:       60,
	})
	if err != nil {
		t.Fatalf("NewTower() failed: %v", err)
	}
	return id
}

func towerOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TowerComponent {
	t.Helper()
	tower, ok := ecs.GetComponent[*components.TowerComponent](em, id)
	if !ok {
		t.Fatalf("Entity %d has no TowerComponent", id)
	}
	return tower
}

func healthOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatalf("Entity %d has no HealthComponent", id)
	}
	return health
}

func countEvents(bus *event.EventBus, typ event.EventType) *int {
	n := new(int)
	bus.On(typ, func(event.Event) { *n++ })
	return n
}
