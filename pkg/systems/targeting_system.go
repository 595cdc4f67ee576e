package systems

import (
	"log"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/entities"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/utils"
)

// TargetingSystem 炮塔索敌、转向与开火
type TargetingSystem struct {
	entityManager *ecs.EntityManager
	images        render.ImageRegistry
	bullet        config.BulletConfig
	events        *event.EventBus
}

// NewTargetingSystem 创建索敌系统
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图注册表（子弹尺寸）
//   - bullet: 子弹贴图与速度
//   - events: 事件总线，开火时发出 BulletFired
func NewTargetingSystem(em *ecs.EntityManager, images render.ImageRegistry, bullet config.BulletConfig, events *event.EventBus) *TargetingSystem {
	return &TargetingSystem{
		entityManager: em,
		images:        images,
		bullet:        bullet,
		events:        events,
	}
}

// Update 按创建顺序处理每座炮塔
func (s *TargetingSystem) Update() {
	towers := ecs.GetEntitiesWith3[*components.TowerComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	for _, id := range towers {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		center := entityCenter(s.entityManager, id)

		s.acquire(tower, center)

		if tower.Target != ecs.InvalidEntity {
			targetCenter := entityCenter(s.entityManager, tower.Target)
			tower.Rotation = targetCenter.Sub(center).Angle()
		}

		tower.Weapon.Update()
		if tower.Weapon.IsActive() && tower.Target != ecs.InvalidEntity {
			tower.Weapon.Reset()
			s.fire(id, tower, center)
		}
	}
}

// acquire 选择第一个位于射程内的存活敌人
// 按迭代顺序取第一个满足条件的，不取最近的
func (s *TargetingSystem) acquire(tower *components.TowerComponent, center utils.Vector) {
	tower.Target = ecs.InvalidEntity
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager)
	for _, enemyID := range enemies {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
		if health.IsDepleted() {
			continue
		}
		if entityCenter(s.entityManager, enemyID).Distance(center) < tower.Range {
			tower.Target = enemyID
			return
		}
	}
}

func (s *TargetingSystem) fire(towerID ecs.EntityID, tower *components.TowerComponent, center utils.Vector) {
	bulletID, err := entities.NewBullet(s.entityManager, s.images, entities.BulletSpec{
		Sprite:   s.bullet.Sprite,
		Owner:    towerID,
		CenterX:  center.X,
		CenterY:  center.Y,
		Rotation: tower.Rotation,
		Range:    tower.Range,
		Speed:    s.bullet.Speed,
	})
	if err != nil {
		log.Printf("[Targeting] 创建子弹失败: %v", err)
		return
	}
	s.events.Emit(event.Event{
		Type:    event.EvtBulletFired,
		Payload: event.BulletFired{Tower: towerID, Bullet: bulletID, Target: tower.Target},
	})
}

// entityCenter 返回实体碰撞盒的中心
func entityCenter(em *ecs.EntityManager, id ecs.EntityID) utils.Vector {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Vector{}
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return utils.Vector{X: pos.X, Y: pos.Y}
	}
	return utils.Center(pos.X, pos.Y, col.Width, col.Height)
}
