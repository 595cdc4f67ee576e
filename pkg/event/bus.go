// Package event 提供按 tick 排队分发的游戏事件总线
package event

import (
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/types"
)

// EventType 事件类型
type EventType uint16

const (
	EvtMissionStarted EventType = iota
	EvtTowerPlaced
	EvtPlacementRejected
	EvtBulletFired
	EvtBulletHit
	EvtEnemyKilled
	EvtEnemyBreached
	EvtWaveCleared
	EvtGameOver
)

// Event 游戏事件
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

// MissionStarted 任务开始（过场结束）
type MissionStarted struct {
	Mission int // 从 0 开始
	Money   int
}

// TowerPlaced 炮塔放置成功
type TowerPlaced struct {
	Tower    ecs.EntityID
	Kind     types.TowerKind
	Row, Col int
	Price    int
}

// PlacementRejected 放置被拒绝
type PlacementRejected struct {
	Kind   types.TowerKind
	Reason string
}

// BulletFired 炮塔开火
type BulletFired struct {
	Tower  ecs.EntityID
	Bullet ecs.EntityID
	Target ecs.EntityID
}

// BulletHit 子弹命中敌人
type BulletHit struct {
	Tower  ecs.EntityID
	Enemy  ecs.EntityID
	Damage int
}

// EnemyKilled 敌人被击杀
type EnemyKilled struct {
	Enemy  ecs.EntityID
	Reward int
}

// EnemyBreached 敌人走完路线
type EnemyBreached struct {
	Enemy ecs.EntityID
}

// WaveCleared 本波敌人全部清除
type WaveCleared struct {
	Mission int
	Money   int
}

// GameOver 游戏结束
type GameOver struct {
	Victory bool
	Score   int
}

// EventHandler 事件处理函数
type EventHandler func(e Event)

// EventBus 事件总线
// Emit 只入队，Dispatch 按入队顺序分发；处理函数中再次 Emit 的事件在同一次 Dispatch 中送达
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
	tick      uint64
}

// NewEventBus 创建事件总线
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On 注册事件处理函数
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// SetTick 设置当前 tick，之后 Emit 的事件未指定 Tick 时使用该值
func (eb *EventBus) SetTick(tick uint64) {
	eb.tick = tick
}

// Emit 将事件加入队列
func (eb *EventBus) Emit(e Event) {
	if e.Tick == 0 {
		e.Tick = eb.tick
	}
	eb.queue = append(eb.queue, e)
}

// Pending 队列中尚未分发的事件数量
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch 分发所有排队事件
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}

// Clear 丢弃所有未分发事件
func (eb *EventBus) Clear() {
	eb.queue = eb.queue[:0]
}
