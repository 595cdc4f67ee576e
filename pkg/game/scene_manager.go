package game

import (
	"log"

	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/render"
)

// SceneFactory 场景工厂函数类型
// 用于按种类创建新场景，避免 game 包依赖 scenes 包
type SceneFactory func(kind SceneKind) Scene

type transition struct {
	kind   SceneKind
	resume bool
}

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// Transitions requested during a tick are applied after that tick completes,
// so a scene never observes itself being replaced mid-update.
type SceneManager struct {
	currentScene Scene
	suspended    Scene // 暂停时保留的游戏场景
	sceneFactory SceneFactory
	pending      *transition
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or RequestTransition to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene immediately.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Suspended 返回暂停期间保留的场景
func (sm *SceneManager) Suspended() Scene {
	return sm.suspended
}

// RequestTransition 请求在本 tick 结束后切换到指定种类的新场景
// 切换到暂停场景时，当前场景被保留以便恢复
func (sm *SceneManager) RequestTransition(kind SceneKind) {
	sm.pending = &transition{kind: kind}
}

// RequestResume 请求在本 tick 结束后恢复被暂停的场景
func (sm *SceneManager) RequestResume() {
	sm.pending = &transition{resume: true}
}

// Pause 请求暂停当前场景
func (sm *SceneManager) Pause() {
	sm.RequestTransition(ScenePause)
}

// Resume 请求恢复被暂停的场景
func (sm *SceneManager) Resume() {
	sm.RequestResume()
}

// applyPending 执行挂起的场景切换
func (sm *SceneManager) applyPending() {
	if sm.pending == nil {
		return
	}
	t := *sm.pending
	sm.pending = nil

	if t.resume {
		if sm.suspended == nil {
			log.Printf("[SceneManager] 没有可恢复的场景")
			return
		}
		sm.currentScene = sm.suspended
		sm.suspended = nil
		log.Printf("[SceneManager] 恢复场景: %s", sm.currentScene.Kind())
		return
	}

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	if t.kind == ScenePause {
		sm.suspended = sm.currentScene
	} else {
		// 其余切换丢弃旧场景及其全部实体
		sm.suspended = nil
	}

	newScene := sm.sceneFactory(t.kind)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", t.kind)
		return
	}
	sm.currentScene = newScene
	log.Printf("[SceneManager] 切换到场景: %s", t.kind)
}

// Update delivers the queued events to the active scene, advances it by one tick,
// then applies any transition requested during the tick.
func (sm *SceneManager) Update(events []input.Event) {
	if sm.currentScene == nil {
		sm.applyPending()
		return
	}
	scene := sm.currentScene
	for _, ev := range events {
		scene.HandleInput(ev)
	}
	scene.Update()
	sm.applyPending()
}

// Draw renders the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(r render.Renderer) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(r)
	}
}
