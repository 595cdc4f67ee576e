package systems

import (
	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/utils"
)

// PhysicsSystem 处理子弹与敌人的碰撞
type PhysicsSystem struct {
	entityManager *ecs.EntityManager
	events        *event.EventBus
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - events: 事件总线，命中时发出 BulletHit
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, events *event.EventBus) *PhysicsSystem {
	return &PhysicsSystem{
		entityManager: em,
		events:        events,
	}
}

// checkAABBCollision 检查两个实体的轴对齐包围盒是否重叠
// 位置为左上角
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {
	return utils.IsRectCollide(
		pos1.X, pos1.Y, col1.Width, col1.Height,
		pos2.X, pos2.Y, col2.Width, col2.Height,
	)
}

// Update 按炮塔、子弹、敌人的顺序检测碰撞
// 子弹命中第一个重叠的敌人后立即被标记删除，同一颗子弹不会造成第二次伤害。
// 生命已归零的敌人不再参与碰撞。
func (s *PhysicsSystem) Update() {
	towers := ecs.GetEntitiesWith1[*components.TowerComponent](s.entityManager)
	if len(towers) == 0 {
		return
	}
	bullets := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager)
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](s.entityManager)

	for _, towerID := range towers {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, towerID)

		for _, bulletID := range bullets {
			if !s.entityManager.IsAlive(bulletID) {
				continue
			}
			b, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, bulletID)
			if b.Owner != towerID {
				continue
			}
			bulletPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, bulletID)
			bulletCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, bulletID)

			for _, enemyID := range enemies {
				health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
				if health.IsDepleted() || !s.entityManager.IsAlive(enemyID) {
					continue
				}
				enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
				enemyCol, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemyID)
				if !ok {
					continue
				}
				if !checkAABBCollision(bulletPos, bulletCol, enemyPos, enemyCol) {
					continue
				}

				damage := health.ApplyDamage(tower.Attack)
				s.entityManager.DestroyEntity(bulletID)
				s.events.Emit(event.Event{
					Type:    event.EvtBulletHit,
					Payload: event.BulletHit{Tower: towerID, Enemy: enemyID, Damage: damage},
				})
				break
			}
		}
	}
}
