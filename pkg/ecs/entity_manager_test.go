package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testLifeComponent struct {
	Life int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 首代实体的ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if id1 == InvalidEntity {
		t.Error("Created entity must not equal InvalidEntity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}

	typed, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || typed != pos {
		t.Error("Generic GetComponent should return the same pointer")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testPositionComponent{})

	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testLifeComponent{Life: 3})

	em.DestroyEntity(id)

	// 标记后立即不再存活，但本帧内组件仍可读取
	if em.IsAlive(id) {
		t.Error("Entity should not be alive after DestroyEntity")
	}
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}
	life, ok := GetComponent[*testLifeComponent](em, id)
	if !ok || life.Life != 3 {
		t.Error("Components should stay readable until RemoveMarkedEntities")
	}
	if n := len(GetEntitiesWith1[*testLifeComponent](em)); n != 0 {
		t.Errorf("Expected doomed entity to be skipped by queries, got %d results", n)
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testLifeComponent{})) {
		t.Error("Components should be gone after cleanup")
	}
}

func TestDestroyEntityTwiceRemovesOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
}

func TestStaleIDAfterSlotReuse(t *testing.T) {
	em := NewEntityManager()
	old := em.CreateEntity()
	em.AddComponent(old, &testLifeComponent{Life: 1})
	em.DestroyEntity(old)
	em.RemoveMarkedEntities()

	reused := em.CreateEntity()
	em.AddComponent(reused, &testLifeComponent{Life: 99})

	if reused.Slot() != old.Slot() {
		t.Fatalf("Expected slot %d to be reused, got %d", old.Slot(), reused.Slot())
	}
	if reused.Generation() != old.Generation()+1 {
		t.Errorf("Expected generation %d, got %d", old.Generation()+1, reused.Generation())
	}
	if em.IsAlive(old) {
		t.Error("Stale ID must not be alive after its slot is reused")
	}
	if _, ok := GetComponent[*testLifeComponent](em, old); ok {
		t.Error("Stale ID must not resolve to the new entity's component")
	}
	if life, ok := GetComponent[*testLifeComponent](em, reused); !ok || life.Life != 99 {
		t.Error("Reused ID should resolve to its own component")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	entities := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity with both components, got %d", len(entities))
	}
	if entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestQueryOrderIsCreationOrder(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 5)
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testLifeComponent{Life: i})
		ids = append(ids, id)
	}

	// 删除中间实体并复用其槽位，新实体必须排在最后
	em.DestroyEntity(ids[1])
	em.RemoveMarkedEntities()
	late := em.CreateEntity()
	em.AddComponent(late, &testLifeComponent{Life: 5})

	want := []EntityID{ids[0], ids[2], ids[3], ids[4], late}
	got := GetEntitiesWith1[*testLifeComponent](em)
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
	if em.Count() != 5 {
		t.Errorf("Expected Count 5, got %d", em.Count())
	}
}

func TestGetEntitiesWith3(t *testing.T) {
	em := NewEntityManager()

	full := em.CreateEntity()
	em.AddComponent(full, &testPositionComponent{})
	em.AddComponent(full, &testVelocityComponent{})
	em.AddComponent(full, &testLifeComponent{})

	partial := em.CreateEntity()
	em.AddComponent(partial, &testPositionComponent{})
	em.AddComponent(partial, &testLifeComponent{})

	got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testLifeComponent](em)
	if len(got) != 1 || got[0] != full {
		t.Errorf("Expected only the full entity, got %v", got)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.HasComponent(id1, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id3 should be removed")
	}
}

func TestInvalidEntityLookups(t *testing.T) {
	em := NewEntityManager()
	if em.IsAlive(InvalidEntity) || em.Exists(InvalidEntity) {
		t.Error("InvalidEntity should never resolve")
	}
	if _, ok := GetComponent[*testLifeComponent](em, EntityID(12345)); ok {
		t.Error("Out-of-range ID should not resolve")
	}
	// 对无效实体的操作应被安全忽略
	em.DestroyEntity(InvalidEntity)
	em.AddComponent(InvalidEntity, &testLifeComponent{})
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("Expected 0 removed entities, got %d", removed)
	}
}
