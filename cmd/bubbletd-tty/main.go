// bubbletd-tty 在终端中运行游戏
//
// 鼠标拖动商店栏中的炮塔到场地上建造，P/Esc 暂停，Q 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/bubbletd/data"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/embedded"
	"github.com/decker502/bubbletd/pkg/game"
	"github.com/decker502/bubbletd/pkg/terminal"
	"github.com/gdamore/tcell/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "将调试日志写入 bubbletd-tty.log")
	mission    = flag.Int("mission", 1, "起始任务（从 1 开始）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	configPath = flag.String("config", "", "外部任务配置文件，为空时使用内置配置")
	mute       = flag.Bool("mute", false, "关闭提示音")
)

func main() {
	flag.Parse()

	// 终端被游戏占用，日志只能写文件
	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.Create("bubbletd-tty.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	embedded.Init(data.FS)
	cfg, err := config.LoadMissions(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "任务配置加载失败: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	var sound *terminal.Sound
	if !*mute {
		sound = terminal.NewSound()
	}

	host, err := terminal.NewHost(screen, terminal.Options{
		Missions:     cfg,
		StartMission: *mission - 1,
		Seed:         *seed,
		Sound:        sound,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	runErr := host.Run(context.Background())
	if sound != nil {
		sound.Close()
	}
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
	if session := host.Session(); session.Outcome() != game.OutcomeNone {
		fmt.Printf("%s, score %d\n", session.Outcome(), session.Score())
	}
}
