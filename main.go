package main

import (
	"errors"
	"flag"
	"os"

	"github.com/decker502/dodgebomb/pkg/app"
	"github.com/decker502/dodgebomb/pkg/embedded"
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "调参文件路径（默认使用内置 data/dodgebomb.yaml）")
	ruleset    = flag.String("ruleset", "", "规则集: v1 (移动+反弹), v2 (+碰撞), v3 (+档位/追踪/朝向)")
	seed       = flag.Int64("seed", 0, "炸弹初始位置随机种子（0 表示使用配置或当前时间）")
	restart    = flag.Bool("restart", false, "结束画面后重新开始而不是退出")
)

func main() {
	flag.Parse()

	logger.Init(*verbose)
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		Ruleset:    *ruleset,
		Seed:       *seed,
		Restart:    *restart,
	})
	if err != nil {
		logger.Log.Errorf("游戏初始化失败: %v", err)
		os.Exit(1)
	}

	gameApp.ConfigureWindow()

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
}
