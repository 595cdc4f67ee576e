// Package headless 在没有窗口和终端的情况下运行游戏
// 按脚本在每一关开始后建造炮塔，直到游戏结束或超出 tick 上限
package headless

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/decker502/bubbletd/pkg/components"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/ecs"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/render"
	"github.com/decker502/bubbletd/pkg/scenes"
	"github.com/decker502/bubbletd/pkg/types"
	"github.com/decker502/bubbletd/pkg/utils"
)

// Placement 脚本中的一次建造
type Placement struct {
	Kind types.TowerKind
	Cell utils.Cell
}

// String 返回 "kind:row:col" 形式
func (p Placement) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Kind, p.Cell.Row, p.Cell.Col)
}

// ParsePlacements 解析逗号分隔的 "kind:row:col" 列表
func ParsePlacements(s string) ([]Placement, error) {
	var out []Placement
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid placement %q: expected kind:row:col", item)
		}
		kind := types.TowerKind(parts[0])
		if !kind.IsValid() {
			return nil, fmt.Errorf("invalid placement %q: unknown tower kind %q", item, parts[0])
		}
		row, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid placement %q: %w", item, err)
		}
		col, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid placement %q: %w", item, err)
		}
		out = append(out, Placement{Kind: kind, Cell: utils.Cell{Row: row, Col: col}})
	}
	return out, nil
}

// MissionResult 一关的结果
type MissionResult struct {
	Mission  int // 从 0 开始
	Ticks    uint64
	Placed   int
	Rejected int
	Money    int // 本关结束时的金钱
}

// Result 整局结果
type Result struct {
	Outcome  game.Outcome
	Score    int
	Missions []MissionResult
	// TimedOut 超出 tick 上限仍未结束
	TimedOut bool
}

// Runner 无界面运行器
type Runner struct {
	sceneManager *game.SceneManager
	session      *game.Session
	placements   []Placement
	maxTicks     int

	scene    *scenes.GameScene
	pending  []Placement
	current  MissionResult
	result   Result
	recorder *render.Recorder
}

// NewRunner 创建运行器
//
// 参数:
//   - cfg: 任务配置
//   - seed: 随机种子
//   - startMission: 起始任务（从 0 开始）
//   - placements: 每关都执行的建造脚本，按顺序尝试
//   - maxTicks: 总 tick 上限
func NewRunner(cfg *config.MissionConfig, seed int64, startMission int, placements []Placement, maxTicks int) *Runner {
	sm, session := scenes.NewGame(cfg, seed, startMission)
	r := &Runner{
		sceneManager: sm,
		session:      session,
		placements:   placements,
		maxTicks:     maxTicks,
		recorder:     render.NewRecorder(),
	}
	session.Events.On(event.EvtTowerPlaced, func(event.Event) {
		r.current.Placed++
		r.popPlacement()
	})
	session.Events.On(event.EvtPlacementRejected, func(e event.Event) {
		r.current.Rejected++
		r.popPlacement()
	})
	return r
}

func (r *Runner) popPlacement() {
	if len(r.pending) > 0 {
		log.Printf("[Headless] 完成建造 %s", r.pending[0])
		r.pending = r.pending[1:]
	}
}

// Run 从开始界面进入游戏并运行到结束
func (r *Runner) Run() Result {
	r.sceneManager.Update([]input.Event{input.Keyboard(input.KeyEnter, true)})

	for tick := 0; tick < r.maxTicks; tick++ {
		current := r.sceneManager.GetCurrentScene()
		if current.Kind() == game.SceneEnd {
			r.closeMission()
			r.result.Outcome = r.session.Outcome()
			r.result.Score = r.session.Score()
			return r.result
		}
		if gs, ok := current.(*scenes.GameScene); ok && gs != r.scene {
			r.closeMission()
			r.scene = gs
			r.pending = append([]Placement(nil), r.placements...)
			r.current = MissionResult{Mission: gs.MissionIndex()}
		}
		r.sceneManager.Update(r.nextInput())
		// 绘制到记录器，保证无界面运行也走一遍绘制路径
		r.recorder.Reset()
		r.sceneManager.Draw(r.recorder)
	}

	r.closeMission()
	r.result.Outcome = r.session.Outcome()
	r.result.Score = r.session.Score()
	r.result.TimedOut = true
	return r.result
}

func (r *Runner) closeMission() {
	if r.scene == nil {
		return
	}
	r.current.Ticks = r.scene.Tick()
	r.current.Money = r.scene.Economy().Money()
	r.result.Missions = append(r.result.Missions, r.current)
	r.scene = nil
}

// nextInput 模板可用时把下一个待建炮塔从商店栏拖到目标格子
func (r *Runner) nextInput() []input.Event {
	if r.scene == nil || r.scene.InInterlude() || len(r.pending) == 0 {
		return nil
	}
	p := r.pending[0]
	em := r.scene.EntityManager()
	modelID, ok := r.scene.Shop().ModelFor(p.Kind)
	if !ok {
		r.pending = r.pending[1:]
		return nil
	}
	model, _ := ecs.GetComponent[*components.TowerModelComponent](em, modelID)
	if !model.Active {
		return nil
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, modelID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, modelID)
	from := utils.Center(pos.X, pos.Y, col.Width, col.Height)

	grid := r.session.Config.Grid
	x, y := utils.CellOrigin(p.Cell, grid.CellWidth, grid.CellHeight)
	return []input.Event{
		input.Pointer(input.PointerDown, from.X, from.Y),
		input.Pointer(input.PointerUp, x+grid.CellWidth/2, y+grid.CellHeight/2),
	}
}
