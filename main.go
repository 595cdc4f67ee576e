package main

import (
	"flag"
	"log"

	"github.com/decker502/bubbletd/data"
	"github.com/decker502/bubbletd/pkg/app"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	mission    = flag.Int("mission", 1, "起始任务（从 1 开始）")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示使用当前时间")
	configPath = flag.String("config", "", "外部任务配置文件，为空时使用内置配置")
	mute       = flag.Bool("mute", false, "关闭提示音")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（data.FS 在 data/embed.go 中声明）
	embedded.Init(data.FS)

	missions, err := config.LoadMissions(*configPath)
	if err != nil {
		log.Fatalf("任务配置加载失败: %v", err)
	}

	game, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		Missions:     missions,
		StartMission: *mission - 1,
		Seed:         *seed,
		Mute:         *mute,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
