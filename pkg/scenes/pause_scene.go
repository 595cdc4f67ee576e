package scenes

import (
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/modules"
	"github.com/decker502/bubbletd/pkg/render"
)

// PauseScene 暂停界面
// 被暂停的游戏场景由 SceneManager 保留，这里只负责绘制和恢复
type PauseScene struct {
	sceneManager *game.SceneManager
	menu         *modules.PauseMenuModule
}

// NewPauseScene 创建暂停界面
func NewPauseScene(sm *game.SceneManager, session *game.Session) *PauseScene {
	canvas := session.Config.Canvas
	return &PauseScene{
		sceneManager: sm,
		menu:         modules.NewPauseMenuModule(float64(canvas.Width), float64(canvas.Height)),
	}
}

// Kind 实现 game.Scene
func (s *PauseScene) Kind() game.SceneKind {
	return game.ScenePause
}

// HandleInput P、Esc 或点击恢复游戏
func (s *PauseScene) HandleInput(ev input.Event) {
	switch {
	case ev.Kind == input.KeyDown && (ev.Key == input.KeyP || ev.Key == input.KeyEscape):
		s.sceneManager.Resume()
	case ev.Kind == input.PointerClick:
		s.sceneManager.Resume()
	}
}

// Update 暂停期间不推进任何状态
func (s *PauseScene) Update() {}

// Draw 先绘制被暂停的游戏画面，再覆盖遮罩
func (s *PauseScene) Draw(r render.Renderer) {
	if suspended := s.sceneManager.Suspended(); suspended != nil {
		suspended.Draw(r)
	}
	s.menu.Draw(r)
}
