package game

import (
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/render"
)

// SceneKind 场景种类
type SceneKind int

const (
	SceneStart SceneKind = iota
	SceneGame
	ScenePause
	SceneEnd
)

// String 返回场景名称
func (k SceneKind) String() string {
	switch k {
	case SceneStart:
		return "start"
	case SceneGame:
		return "game"
	case ScenePause:
		return "pause"
	case SceneEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Scene represents a game mode (start menu, gameplay, pause, end).
// Each scene has its own input handling, update and rendering logic.
type Scene interface {
	// Kind reports which mode the scene implements.
	Kind() SceneKind

	// HandleInput receives one queued input event.
	// Events are delivered at the start of the tick, before Update.
	HandleInput(ev input.Event)

	// Update advances the scene by one fixed tick.
	Update()

	// Draw submits draw requests for the current state.
	Draw(r render.Renderer)
}
