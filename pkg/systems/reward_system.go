package systems

import (
	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/event"
)

// Wallet 接收击杀奖励
type Wallet interface {
	Increase(amount int)
}

// RewardSystem 结算生命归零的敌人
// 每个敌人的奖励只发放一次，随后敌人被标记删除，引用它的炮塔目标被清空
type RewardSystem struct {
	entityManager *ecs.EntityManager
	wallet        Wallet
	events        *event.EventBus
}

// NewRewardSystem 创建奖励系统
func NewRewardSystem(em *ecs.EntityManager, wallet Wallet, events *event.EventBus) *RewardSystem {
	return &RewardSystem{
		entityManager: em,
		wallet:        wallet,
		events:        events,
	}
}

// Update 结算本 tick 死亡的敌人
// 返回: 本次结算的敌人数量
func (s *RewardSystem) Update() int {
	killed := 0
	enemies := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager)
	for _, id := range enemies {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if !health.IsDepleted() || enemy.Rewarded {
			continue
		}

		enemy.Rewarded = true
		s.wallet.Increase(enemy.Reward)
		s.events.Emit(event.Event{
			Type:    event.EvtEnemyKilled,
			Payload: event.EnemyKilled{Enemy: id, Reward: enemy.Reward},
		})
		s.entityManager.DestroyEntity(id)
		s.clearTargets(id)
		killed++
	}
	return killed
}

func (s *RewardSystem) clearTargets(enemyID ecs.EntityID) {
	for _, towerID := range ecs.GetEntitiesWith1[*components.TowerComponent](s.entityManager) {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, towerID)
		if tower.Target == enemyID {
			tower.Target = ecs.InvalidEntity
		}
	}
}
