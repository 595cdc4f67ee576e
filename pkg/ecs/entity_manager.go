package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 低 32 位为槽位序号(从1开始)，高 32 位为槽位代数。
// 槽位被回收复用后代数递增，旧 ID 不会再解析到新实体上。
type EntityID uint64

// InvalidEntity 表示空引用
const InvalidEntity EntityID = 0

func makeID(slot uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(slot+1))
}

// Slot 返回 ID 对应的槽位下标；无效 ID 返回 -1
func (id EntityID) Slot() int {
	return int(uint32(id)) - 1
}

// Generation 返回 ID 的代数
func (id EntityID) Generation() uint32 {
	return uint32(uint64(id) >> 32)
}

type slot struct {
	generation uint32
	used       bool
	doomed     bool // 已调用 DestroyEntity，等待本帧末尾回收
	components map[reflect.Type]interface{}
}

// EntityManager 管理所有实体和组件
// 实体存放在带空闲链表的槽位数组中，order 记录创建顺序，
// 查询结果按创建顺序返回，保证同一帧内迭代顺序稳定。
type EntityManager struct {
	slots []slot
	free  []uint32
	order []EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		slots:             make([]slot, 0, 64),
		free:              make([]uint32, 0),
		order:             make([]EntityID, 0, 64),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
// 优先复用空闲槽位
func (em *EntityManager) CreateEntity() EntityID {
	var index uint32
	if n := len(em.free); n > 0 {
		index = em.free[n-1]
		em.free = em.free[:n-1]
	} else {
		em.slots = append(em.slots, slot{})
		index = uint32(len(em.slots) - 1)
	}

	s := &em.slots[index]
	s.used = true
	s.doomed = false
	s.components = make(map[reflect.Type]interface{})

	id := makeID(index, s.generation)
	em.order = append(em.order, id)
	return id
}

func (em *EntityManager) lookup(id EntityID) *slot {
	index := id.Slot()
	if index < 0 || index >= len(em.slots) {
		return nil
	}
	s := &em.slots[index]
	if !s.used || s.generation != id.Generation() {
		return nil
	}
	return s
}

// Exists 检查实体是否仍在管理器中（未被回收）
// 已标记删除但尚未回收的实体仍然返回 true
func (em *EntityManager) Exists(id EntityID) bool {
	return em.lookup(id) != nil
}

// IsAlive 检查实体是否存活
// 标记删除后立即返回 false，即使组件在本帧内仍可读取
func (em *EntityManager) IsAlive(id EntityID) bool {
	s := em.lookup(id)
	return s != nil && !s.doomed
}

// DestroyEntity 标记实体待删除(不立即删除)
// 重复标记同一实体只记录一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	s := em.lookup(id)
	if s == nil || s.doomed {
		return
	}
	s.doomed = true
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if s := em.lookup(id); s != nil {
		s.components[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if s := em.lookup(id); s != nil {
		delete(s.components, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if s := em.lookup(id); s != nil {
		if comp, found := s.components[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if s := em.lookup(id); s != nil {
		_, found := s.components[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 返回本次回收的实体数量
func (em *EntityManager) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	removed := 0
	for _, id := range em.entitiesToDestroy {
		s := em.lookup(id)
		if s == nil {
			continue
		}
		s.used = false
		s.doomed = false
		s.components = nil
		s.generation++
		em.free = append(em.free, uint32(id.Slot()))
		removed++
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	// 稳定压缩创建顺序
	kept := em.order[:0]
	for _, id := range em.order {
		if em.lookup(id) != nil {
			kept = append(kept, id)
		}
	}
	em.order = kept

	return removed
}

// Count 返回存活实体数量
func (em *EntityManager) Count() int {
	n := 0
	for _, id := range em.order {
		if em.IsAlive(id) {
			n++
		}
	}
	return n
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有存活实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按创建顺序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		s := em.lookup(id)
		if s == nil || s.doomed {
			continue
		}
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := s.components[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
