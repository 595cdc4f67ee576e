package scenes

import (
	"log"

	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/modules"
	"github.com/decker502/bubbletd/pkg/render"
)

// 结束界面文字
const (
	VictoryText = "胜利！"
	DefeatText  = "敌人突破了防线"
)

// EndScene 结束界面
// 胜利时显示奖杯，失败时显示突破提示；返回按钮重新开始
type EndScene struct {
	sceneManager *game.SceneManager
	session      *game.Session
	outcome      game.Outcome
	score        int
	backButton   *modules.ButtonModule
	restarting   bool
	width        float64
	height       float64
}

// NewEndScene 创建结束界面，结局和得分取自会话
func NewEndScene(sm *game.SceneManager, session *game.Session) *EndScene {
	s := &EndScene{
		sceneManager: sm,
		session:      session,
		outcome:      session.Outcome(),
		score:        session.Score(),
		width:        float64(session.Config.Canvas.Width),
		height:       float64(session.Config.Canvas.Height),
	}
	s.backButton = modules.NewButtonModule(session.Config.Sprites, "backButton", "backButtonLight", "返回",
		s.width/2, s.height-160, s.restart)
	return s
}

// restart 重置会话并回到开始界面
func (s *EndScene) restart() {
	if s.restarting {
		return
	}
	s.restarting = true
	log.Printf("[EndScene] 重新开始")
	s.session.Reset()
	s.sceneManager.RequestTransition(game.SceneStart)
}

// Kind 实现 game.Scene
func (s *EndScene) Kind() game.SceneKind {
	return game.SceneEnd
}

// HandleInput 返回按钮或 Enter 重新开始
func (s *EndScene) HandleInput(ev input.Event) {
	if ev.Kind == input.KeyDown && ev.Key == input.KeyEnter {
		s.restart()
		return
	}
	s.backButton.HandleInput(ev)
}

// Update 结束界面没有需要推进的状态
func (s *EndScene) Update() {}

// Outcome 结局
func (s *EndScene) Outcome() game.Outcome {
	return s.outcome
}

// Draw 绘制结局、得分和返回按钮
func (s *EndScene) Draw(r render.Renderer) {
	r.DrawSprite("startBg", 0, 0, 0, false, false)
	if s.outcome == game.OutcomeVictory {
		if w, _, ok := s.session.Config.Sprites.ImageSize("trophy"); ok {
			r.DrawSprite("trophy", (s.width-w)/2, 120, 0, false, false)
		}
	}
	if o, ok := render.AsOverlay(r); ok {
		text := DefeatText
		if s.outcome == game.OutcomeVictory {
			text = VictoryText
		}
		o.DrawText(text, s.width/2-150, 300, 48, render.ColorTextLight)
		o.DrawText(modules.ScoreText(s.score), s.width/2-70, 380, 32, render.ColorTextLight)
	}
	s.backButton.Draw(r)
}
