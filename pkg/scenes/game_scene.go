package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/entities"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/modules"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/route"
	"github.com/decker502/bubbletd/pkg/systems"
	"github.com/decker502/bubbletd/pkg/utils"
)

const tileVariants = 3

// GameScene 一个任务的游戏过程
// 拥有本任务的全部实体、金钱、路线和各个系统。
// 任务开始前有一段过场，期间不处理放置也不推进模拟。
type GameScene struct {
	sceneManager *game.SceneManager
	session      *game.Session
	cfg          *config.MissionConfig

	missionIndex int
	mission      config.Mission

	entityManager *ecs.EntityManager
	economy       *game.Economy
	route         *route.Route
	shop          *modules.ShopModule

	towerModelSystem *systems.TowerModelSystem
	placementSystem  *systems.PlacementSystem
	movementSystem   *systems.MovementSystem
	targetingSystem  *systems.TargetingSystem
	projectileSystem *systems.ProjectileSystem
	physicsSystem    *systems.PhysicsSystem
	rewardSystem     *systems.RewardSystem
	renderSystem     *systems.RenderSystem

	interlude components.Cooldown
	pending   []input.Event
	tick      uint64
	over      bool // 已请求切换场景，后续 tick 不再推进
}

// NewGameScene 按会话的当前任务创建游戏场景
// 金钱取自会话（第一关为初始金钱，之后为上一关结束时的金钱）
func NewGameScene(sm *game.SceneManager, session *game.Session) (*GameScene, error) {
	cfg := session.Config
	mission, ok := session.CurrentMission()
	if !ok {
		return nil, fmt.Errorf("mission %d does not exist", session.MissionIndex()+1)
	}

	s := &GameScene{
		sceneManager:  sm,
		session:       session,
		cfg:           cfg,
		missionIndex:  session.MissionIndex(),
		mission:       mission,
		entityManager: ecs.NewEntityManager(),
		economy:       game.NewEconomy(session.Money()),
		interlude:     components.NewCooldown(cfg.Wave.InterludeTicks),
	}
	s.route = route.Build(mission.Waypoints(), cfg.Grid.CellWidth, cfg.Grid.CellHeight)

	s.createTiles()

	shop, err := modules.NewShopModule(s.entityManager, cfg, s.missionIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	s.shop = shop

	if err := s.spawnWave(cfg.EnemyCount(s.missionIndex)); err != nil {
		return nil, err
	}

	events := session.Events
	events.SetTick(0)
	s.towerModelSystem = systems.NewTowerModelSystem(s.entityManager, s.economy)
	s.placementSystem = systems.NewPlacementSystem(s.entityManager, s.towerModelSystem, s.economy, events, cfg.Grid, s.route)
	s.movementSystem = systems.NewMovementSystem(s.entityManager)
	s.targetingSystem = systems.NewTargetingSystem(s.entityManager, cfg.Sprites, cfg.Bullet, events)
	s.projectileSystem = systems.NewProjectileSystem(s.entityManager)
	s.physicsSystem = systems.NewPhysicsSystem(s.entityManager, events)
	s.rewardSystem = systems.NewRewardSystem(s.entityManager, s.economy, events)
	s.renderSystem = systems.NewRenderSystem(s.entityManager, s.placementSystem, cfg.Grid.CellWidth, cfg.Grid.CellHeight)

	log.Printf("[GameScene] 任务 %d (%s): %d 个敌人, 金钱 %d",
		s.missionIndex+1, mission.Name, cfg.EnemyCount(s.missionIndex), s.economy.Money())
	return s, nil
}

// createTiles 创建背景格子，路线格子使用道路贴图，其余为草地，样式随机
func (s *GameScene) createTiles() {
	rng := s.session.Rand()
	grid := s.cfg.Grid
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			cell := utils.Cell{Row: row, Col: col}
			road := s.route.Contains(cell)
			prefix := "grass"
			if road {
				prefix = "road"
			}
			x, y := utils.CellOrigin(cell, grid.CellWidth, grid.CellHeight)

			id := s.entityManager.CreateEntity()
			s.entityManager.AddComponent(id, &components.TileComponent{Cell: cell, Road: road})
			s.entityManager.AddComponent(id, &components.PositionComponent{X: x, Y: y})
			s.entityManager.AddComponent(id, &components.SpriteComponent{
				Name: fmt.Sprintf("%s%d", prefix, utils.RangeBetween(rng, 0, tileVariants)),
			})
		}
	}
}

// spawnWave 在入口之后排队生成本任务的敌人
func (s *GameScene) spawnWave(count int) error {
	rng := s.session.Rand()
	sprites := s.cfg.Wave.EnemySprites
	queues := make(map[string][]utils.Vector)

	for i := 0; i < count; i++ {
		name := sprites[utils.RangeBetween(rng, 0, len(sprites))]
		positions, ok := queues[name]
		if !ok {
			w, h, found := s.cfg.Sprites.ImageSize(name)
			if !found {
				return fmt.Errorf("enemy sprite %q is not registered", name)
			}
			positions = s.route.SpawnPositions(count, w, h)
			queues[name] = positions
		}
		p := positions[i]
		if _, err := entities.NewEnemy(s.entityManager, s.cfg.Sprites, name, s.route, s.mission.Enemy, p.X, p.Y); err != nil {
			return fmt.Errorf("failed to spawn enemy %d: %w", i, err)
		}
	}
	return nil
}

// Kind 实现 game.Scene
func (s *GameScene) Kind() game.SceneKind {
	return game.SceneGame
}

// HandleInput 收集本 tick 的输入，在 Update 开始时统一处理
func (s *GameScene) HandleInput(ev input.Event) {
	s.pending = append(s.pending, ev)
}

// Update 推进一个 tick
//
// 顺序：输入、模板冷却、移动、索敌开火、子弹飞行、碰撞、结算奖励、
// 突破判定、回收实体、分发事件、检查本波是否清空。
func (s *GameScene) Update() {
	if s.over {
		return
	}
	pending := s.pending
	s.pending = nil

	if !s.interlude.IsActive() {
		for _, ev := range pending {
			if isPauseKey(ev) {
				s.pause()
			}
		}
		s.interlude.Update()
		if s.interlude.IsActive() {
			s.session.Events.Emit(event.Event{
				Type:    event.EvtMissionStarted,
				Payload: event.MissionStarted{Mission: s.missionIndex, Money: s.economy.Money()},
			})
			s.session.Events.Dispatch()
			log.Printf("[GameScene] 任务 %d 开始", s.missionIndex+1)
		}
		return
	}

	s.tick++
	events := s.session.Events
	events.SetTick(s.tick)

	for _, ev := range pending {
		s.handleEvent(ev)
	}

	s.towerModelSystem.Update()
	finished := s.movementSystem.Update()
	s.targetingSystem.Update()
	s.projectileSystem.Update()
	s.physicsSystem.Update()
	s.rewardSystem.Update()

	// 同一 tick 内先被击杀的敌人不算突破
	breached := false
	for _, id := range finished {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		s.entityManager.DestroyEntity(id)
		events.Emit(event.Event{Type: event.EvtEnemyBreached, Payload: event.EnemyBreached{Enemy: id}})
		breached = true
	}

	s.entityManager.RemoveMarkedEntities()
	events.Dispatch()

	if breached {
		log.Printf("[GameScene] 敌人突破防线 (tick %d)", s.tick)
		s.finish(game.OutcomeDefeat)
		return
	}
	if s.LiveEnemies() == 0 {
		s.advance()
	}
}

func (s *GameScene) handleEvent(ev input.Event) {
	switch ev.Kind {
	case input.KeyDown:
		if isPauseKey(ev) {
			s.pause()
		}
	case input.PointerDown:
		s.placementSystem.Begin(ev.X, ev.Y)
	case input.PointerDrag:
		s.placementSystem.Drag(ev.X, ev.Y)
	case input.PointerUp:
		s.placementSystem.End(ev.X, ev.Y)
	case input.PointerHover:
		s.placementSystem.Hover(ev.X, ev.Y)
	}
}

// pause 暂停前丢弃未完成的拖动，暂停期间的松开不会送到这里
func (s *GameScene) pause() {
	s.placementSystem.Cancel()
	s.sceneManager.Pause()
}

func isPauseKey(ev input.Event) bool {
	return ev.Kind == input.KeyDown && (ev.Key == input.KeyP || ev.Key == input.KeyEscape)
}

// advance 本波清空：进入下一关或以胜利结束
func (s *GameScene) advance() {
	s.session.Events.Emit(event.Event{
		Type:    event.EvtWaveCleared,
		Payload: event.WaveCleared{Mission: s.missionIndex, Money: s.economy.Money()},
	})
	if !s.session.Advance(s.economy.Money()) {
		s.finish(game.OutcomeVictory)
		return
	}
	s.over = true
	s.session.Events.Dispatch()
	s.sceneManager.RequestTransition(game.SceneGame)
}

func (s *GameScene) finish(outcome game.Outcome) {
	s.over = true
	s.session.Finish(outcome)
	s.session.Events.Dispatch()
	s.sceneManager.RequestTransition(game.SceneEnd)
}

// Draw 绘制场地、实体、金钱得分和过场文字
func (s *GameScene) Draw(r render.Renderer) {
	s.renderSystem.Draw(r)
	s.shop.DrawHUD(r, s.economy.Money(), s.session.Score())

	if s.interlude.IsActive() {
		return
	}
	if o, ok := render.AsOverlay(r); ok {
		w := float64(s.cfg.Canvas.Width)
		h := float64(s.cfg.Canvas.Height)
		o.FillRect(0, h/2-70, w, 140, render.ColorShade)
		o.DrawText(s.InterludeText(), w/2-90, h/2-40, 48, render.ColorTextLight)
		if s.mission.Name != "" {
			o.DrawText(s.mission.Name, w/2-60, h/2+20, 24, render.ColorTextLight)
		}
	}
}

// InterludeText 过场显示的文字
func (s *GameScene) InterludeText() string {
	return fmt.Sprintf("第 %d 关", s.missionIndex+1)
}

// InInterlude 是否处于任务开始前的过场
func (s *GameScene) InInterlude() bool {
	return !s.interlude.IsActive()
}

// Tick 过场结束后经过的 tick 数
func (s *GameScene) Tick() uint64 {
	return s.tick
}

// MissionIndex 当前任务序号（从 0 开始）
func (s *GameScene) MissionIndex() int {
	return s.missionIndex
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Economy 返回本任务的金钱
func (s *GameScene) Economy() *game.Economy {
	return s.economy
}

// Placement 返回放置系统
func (s *GameScene) Placement() *systems.PlacementSystem {
	return s.placementSystem
}

// Shop 返回商店栏
func (s *GameScene) Shop() *modules.ShopModule {
	return s.shop
}

// Route 返回本任务的路线
func (s *GameScene) Route() *route.Route {
	return s.route
}

// LiveEnemies 存活敌人数量
func (s *GameScene) LiveEnemies() int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager))
}
