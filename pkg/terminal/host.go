// Package terminal 提供终端宿主
//
// 画布按终端尺寸缩放到字符格上绘制，鼠标驱动拖放建造，
// 键盘 P/Esc 暂停，Enter/Space 确认，Q 或 Ctrl-C 退出。
package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/scenes"
	"github.com/gdamore/tcell/v2"
)

// Options 终端宿主参数
type Options struct {
	Missions     *config.MissionConfig
	StartMission int
	Seed         int64
	// Sound 为 nil 时不播放提示音
	Sound *Sound
}

// Host 在 tcell 屏幕上运行游戏
type Host struct {
	screen       tcell.Screen
	missions     *config.MissionConfig
	sceneManager *game.SceneManager
	session      *game.Session
	renderer     *cellRenderer
	queue        *input.Queue
	tracker      *input.Tracker
	sound        *Sound
	quit         bool
}

// NewHost 创建终端宿主
// screen 必须已经 Init
func NewHost(screen tcell.Screen, opts Options) (*Host, error) {
	if opts.Missions == nil || opts.Missions.MissionCount() == 0 {
		return nil, fmt.Errorf("mission config has no missions")
	}
	sm, session := scenes.NewGame(opts.Missions, opts.Seed, opts.StartMission)
	h := &Host{
		screen:       screen,
		missions:     opts.Missions,
		sceneManager: sm,
		session:      session,
		renderer:     newCellRenderer(screen, opts.Missions.Sprites),
		queue:        input.NewQueue(),
		tracker:      input.NewTracker(),
		sound:        opts.Sound,
	}
	h.resize()
	if h.sound != nil {
		session.Events.On(event.EvtEnemyKilled, func(event.Event) {
			h.sound.PlayKill()
		})
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	return h, nil
}

func (h *Host) resize() {
	h.renderer.resize(float64(h.missions.Canvas.Width), float64(h.missions.Canvas.Height))
}

// SceneManager 返回场景管理器
func (h *Host) SceneManager() *game.SceneManager {
	return h.sceneManager
}

// Session 返回游戏会话
func (h *Host) Session() *game.Session {
	return h.session
}

// HandleEvent 把 tcell 事件转换为输入事件放入队列
// 返回: 是否请求退出
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			h.quit = true
			return true
		}
		if key, ok := keyFor(ev.Key(), ev.Rune()); ok {
			// 终端没有按键抬起事件，按下后立即补一个抬起
			h.queue.Push(input.Keyboard(key, true), input.Keyboard(key, false))
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		h.PushPointer(col, row, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return h.quit
}

// PushPointer 输入字符格位置和左键状态
func (h *Host) PushPointer(col, row int, pressed bool) {
	x, y := h.renderer.toCanvas(col, row)
	h.queue.Push(h.tracker.Update(x, y, pressed)...)
}

// keyFor 终端按键 -> 游戏按键
func keyFor(k tcell.Key, r rune) (input.Key, bool) {
	switch k {
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyRune:
		switch r {
		case ' ':
			return input.KeySpace, true
		case 'p', 'P':
			return input.KeyP, true
		}
	}
	return "", false
}

// Step 推进一个 tick 并重绘
func (h *Host) Step() {
	h.sceneManager.Update(h.queue.Drain())
	h.screen.Clear()
	h.sceneManager.Draw(h.renderer)
	h.screen.Show()
}

// pollEvents 把终端事件转发到 out，屏幕关闭或 ctx 取消后关闭 out 并返回
func (h *Host) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Run 以配置的 tick 频率运行，直到退出或 ctx 取消
func (h *Host) Run(ctx context.Context) error {
	rate := h.missions.TickRate
	if rate <= 0 {
		rate = config.DefaultTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eventChan := make(chan tcell.Event, 100)
	go h.pollEvents(ctx, eventChan)

	log.Printf("[Terminal] 开始运行, %d tick/s", rate)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				log.Printf("[Terminal] 退出")
				return nil
			}
		case <-ticker.C:
			h.Step()
		}
	}
}
