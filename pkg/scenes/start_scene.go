package scenes

import (
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/modules"
	"github.com/decker502/bubbletd/pkg/render"
)

// GameTitle 开始界面标题
const GameTitle = "泡泡塔防"

// StartScene 开始界面
// 点击开始按钮或按 Enter/Space 进入游戏
type StartScene struct {
	sceneManager *game.SceneManager
	session      *game.Session
	startButton  *modules.ButtonModule
	started      bool
	width        float64
	height       float64
}

// NewStartScene 创建开始界面
func NewStartScene(sm *game.SceneManager, session *game.Session) *StartScene {
	s := &StartScene{
		sceneManager: sm,
		session:      session,
		width:        float64(session.Config.Canvas.Width),
		height:       float64(session.Config.Canvas.Height),
	}
	s.startButton = modules.NewButtonModule(session.Config.Sprites, "startButton", "startButtonLight", "开始游戏",
		s.width/2, s.height/2+40, s.start)
	return s
}

func (s *StartScene) start() {
	if s.started {
		return
	}
	s.started = true
	s.sceneManager.RequestTransition(game.SceneGame)
}

// Kind 实现 game.Scene
func (s *StartScene) Kind() game.SceneKind {
	return game.SceneStart
}

// HandleInput 处理按钮与快捷键
func (s *StartScene) HandleInput(ev input.Event) {
	if ev.Kind == input.KeyDown && (ev.Key == input.KeyEnter || ev.Key == input.KeySpace) {
		s.start()
		return
	}
	s.startButton.HandleInput(ev)
}

// Update 开始界面没有需要推进的状态
func (s *StartScene) Update() {}

// Draw 绘制背景、标题和开始按钮
func (s *StartScene) Draw(r render.Renderer) {
	r.DrawSprite("startBg", 0, 0, 0, false, false)
	if o, ok := render.AsOverlay(r); ok {
		o.DrawText(GameTitle, s.width/2-128, s.height/2-140, 64, render.ColorTextLight)
	}
	s.startButton.Draw(r)
}
