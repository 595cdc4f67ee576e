package game

import (
	"testing"

	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/render"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	kind        SceneKind
	updateCount int
	drawCalled  bool
	events      []input.Event
	onUpdate    func()
}

func (m *MockScene) Kind() SceneKind { return m.kind }

func (m *MockScene) HandleInput(ev input.Event) {
	m.events = append(m.events, ev)
}

// Update records that Update was called.
func (m *MockScene) Update() {
	m.updateCount++
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

// Draw records that Draw was called.
func (m *MockScene) Draw(r render.Renderer) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	// 没有场景时 Update/Draw 不应崩溃
	sm.Update(nil)
	sm.Draw(render.NewRecorder())
}

// TestSceneManagerUpdateDeliversEventsFirst verifies input is handled before Update.
func TestSceneManagerUpdateDeliversEventsFirst(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{kind: SceneGame}
	scene.onUpdate = func() {
		if len(scene.events) != 2 {
			t.Errorf("Expected 2 events before Update, got %d", len(scene.events))
		}
	}
	sm.SwitchTo(scene)

	sm.Update([]input.Event{input.Pointer(input.PointerDown, 1, 1), input.Keyboard(input.KeyP, true)})

	if scene.updateCount != 1 {
		t.Errorf("Expected 1 update, got %d", scene.updateCount)
	}
	sm.Draw(render.NewRecorder())
	if !scene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestTransitionIsDeferred verifies a transition requested mid-tick applies after the tick.
func TestTransitionIsDeferred(t *testing.T) {
	sm := NewSceneManager()
	created := make(map[SceneKind]*MockScene)
	sm.SetSceneFactory(func(kind SceneKind) Scene {
		s := &MockScene{kind: kind}
		created[kind] = s
		return s
	})

	start := &MockScene{kind: SceneStart}
	start.onUpdate = func() {
		sm.RequestTransition(SceneGame)
		if sm.GetCurrentScene() != start {
			t.Error("Transition must not apply during Update")
		}
	}
	sm.SwitchTo(start)
	sm.Update(nil)

	if sm.GetCurrentScene() != created[SceneGame] {
		t.Fatal("Expected game scene after the tick")
	}
	if created[SceneGame].updateCount != 0 {
		t.Error("New scene must not be updated in the tick it was created")
	}
}

// TestPauseAndResumeKeepsScene verifies the paused scene instance is restored.
func TestPauseAndResumeKeepsScene(t *testing.T) {
	sm := NewSceneManager()
	sm.SetSceneFactory(func(kind SceneKind) Scene {
		return &MockScene{kind: kind}
	})

	gameScene := &MockScene{kind: SceneGame}
	sm.SwitchTo(gameScene)

	sm.RequestTransition(ScenePause)
	sm.Update(nil)
	if sm.GetCurrentScene().Kind() != ScenePause {
		t.Fatalf("Expected pause scene, got %s", sm.GetCurrentScene().Kind())
	}
	if sm.Suspended() != gameScene {
		t.Fatal("Expected game scene to be suspended")
	}

	updatesBefore := gameScene.updateCount
	sm.Update(nil)
	if gameScene.updateCount != updatesBefore {
		t.Error("Suspended scene must not be updated while paused")
	}

	sm.RequestResume()
	sm.Update(nil)
	if sm.GetCurrentScene() != gameScene {
		t.Error("Expected the same game scene instance after resume")
	}
	if sm.Suspended() != nil {
		t.Error("Expected no suspended scene after resume")
	}
}

// TestTransitionDiscardsSuspended verifies leaving pause for another scene drops the old game.
func TestTransitionDiscardsSuspended(t *testing.T) {
	sm := NewSceneManager()
	sm.SetSceneFactory(func(kind SceneKind) Scene {
		return &MockScene{kind: kind}
	})
	sm.SwitchTo(&MockScene{kind: SceneGame})

	sm.RequestTransition(ScenePause)
	sm.Update(nil)
	sm.RequestTransition(SceneEnd)
	sm.Update(nil)

	if sm.GetCurrentScene().Kind() != SceneEnd {
		t.Errorf("Expected end scene, got %s", sm.GetCurrentScene().Kind())
	}
	if sm.Suspended() != nil {
		t.Error("Expected suspended scene to be discarded")
	}
}

// TestResumeWithoutSuspendedScene verifies resume is a no-op without a paused scene.
func TestResumeWithoutSuspendedScene(t *testing.T) {
	sm := NewSceneManager()
	start := &MockScene{kind: SceneStart}
	sm.SwitchTo(start)
	sm.RequestResume()
	sm.Update(nil)
	if sm.GetCurrentScene() != start {
		t.Error("Expected current scene to be unchanged")
	}
}
