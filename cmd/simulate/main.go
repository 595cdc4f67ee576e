// simulate 无界面运行任务并打印结果
//
// 用法:
//
//	go run ./cmd/simulate --place light:1:1,heavy:2:3 --seed 7
//
// 每一关开始后按顺序尝试建造 --place 中的炮塔，模板不可用时等待。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/bubbletd/data"
	"github.com/decker502/bubbletd/pkg/config"
	"github.com/decker502/bubbletd/pkg/embedded"
	"github.com/decker502/bubbletd/pkg/headless"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	mission    = flag.Int("mission", 1, "起始任务（从 1 开始）")
	seed       = flag.Int64("seed", 1, "随机种子")
	configPath = flag.String("config", "", "外部任务配置文件，为空时使用内置配置")
	place      = flag.String("place", "", "建造脚本，逗号分隔的 kind:row:col")
	maxTicks   = flag.Int("max-ticks", 200000, "总 tick 上限")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(data.FS)
	cfg, err := config.LoadMissions(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "任务配置加载失败: %v\n", err)
		os.Exit(1)
	}
	placements, err := headless.ParsePlacements(*place)
	if err != nil {
		fmt.Fprintf(os.Stderr, "建造脚本错误: %v\n", err)
		os.Exit(2)
	}

	result := headless.NewRunner(cfg, *seed, *mission-1, placements, *maxTicks).Run()

	for _, m := range result.Missions {
		fmt.Printf("mission %d: ticks=%d placed=%d rejected=%d money=%d\n",
			m.Mission+1, m.Ticks, m.Placed, m.Rejected, m.Money)
	}
	if result.TimedOut {
		fmt.Printf("timed out after %d ticks\n", *maxTicks)
		os.Exit(3)
	}
	fmt.Printf("outcome=%s score=%d\n", result.Outcome, result.Score)
}
