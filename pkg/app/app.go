// Package app 提供图形窗口宿主
//
// 该包把 ebiten 的游戏循环接到场景管理器上：每个 tick 采集鼠标和键盘输入，
// 转换为输入事件后推进一次模拟，每帧调用场景的绘制。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"image/color"
	"io"
	"log"

	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/event"
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/input"
	"github.com/decker502/bubbletd/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrQuit 玩家按 Q 退出
var ErrQuit = errors.New("quit")

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Missions 任务配置
	Missions *config.MissionConfig
	// StartMission 起始任务（从 0 开始）
	StartMission int
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Mute 关闭击杀提示音
	Mute bool
}

// 需要转发给场景的按键，按顺序检查
var trackedKeys = []struct {
	key  ebiten.Key
	name input.Key
}{
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyP, input.KeyP},
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	session      *game.Session
	missions     *config.MissionConfig
	queue        *input.Queue
	tracker      *input.Tracker
	renderer     *screenRenderer
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Missions == nil {
		return nil, errors.New("mission config is required")
	}
	if cfg.Missions.MissionCount() == 0 {
		return nil, errors.New("mission config has no missions")
	}

	// 每个 ebiten tick 推进一次模拟
	ebiten.SetTPS(cfg.Missions.TickRate)

	sceneManager, session := scenes.NewGame(cfg.Missions, cfg.Seed, cfg.StartMission)
	log.Printf("[App] 共 %d 个任务, 从任务 %d 开始", cfg.Missions.MissionCount(), session.MissionIndex()+1)

	if !cfg.Mute {
		sound := newKillSound()
		session.Events.On(event.EvtEnemyKilled, func(event.Event) {
			sound.Play()
		})
		log.Printf("[App] Kill sound initialized")
	}

	return &App{
		sceneManager: sceneManager,
		session:      session,
		missions:     cfg.Missions,
		queue:        input.NewQueue(),
		tracker:      input.NewTracker(),
		renderer:     newScreenRenderer(cfg.Missions.Sprites),
		verbose:      cfg.Verbose,
	}, nil
}

// Run 设置窗口并进入 ebiten 游戏循环
func (a *App) Run() error {
	canvas := a.missions.Canvas
	ebiten.SetWindowSize(canvas.Width, canvas.Height)
	ebiten.SetWindowTitle("泡泡塔防")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(a)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Update 采集输入并推进一个 tick
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.missions.Canvas.Width, a.missions.Canvas.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Printf("[App] 退出")
		return ErrQuit
	}

	for _, k := range trackedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			a.queue.Push(input.Keyboard(k.name, true))
		}
		if inpututil.IsKeyJustReleased(k.key) {
			a.queue.Push(input.Keyboard(k.name, false))
		}
	}
	cx, cy := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	a.queue.Push(a.tracker.Update(float64(cx), float64(cy), pressed)...)

	a.sceneManager.Update(a.queue.Drain())
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.renderer.screen = screen
	a.sceneManager.Draw(a.renderer)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.missions.Canvas.Width, a.missions.Canvas.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Session 返回游戏会话
func (a *App) Session() *game.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
