// simulate 在无窗口模式下跑一局躲炸弹，输出档位变化和被击中的帧
//
// 用法:
//
//	go run ./cmd/simulate -ruleset v3 -seed 7 -frames 6000 -keys left,up
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/decker502/dodgebomb/pkg/scenes"
	"github.com/decker502/dodgebomb/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

var (
	// 命令行参数
	configPath = flag.String("config", "", "调参文件路径（默认使用代码内置默认值）")
	ruleset    = flag.String("ruleset", config.RulesetV3, "规则集: v1, v2, v3")
	seed       = flag.Int64("seed", 1, "炸弹初始位置随机种子")
	frames     = flag.Int("frames", 6000, "最多模拟的帧数")
	keys       = flag.String("keys", "", "全程按住的方向，逗号分隔（up,down,left,right）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// keyNames 方向名到按键的映射
var keyNames = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
}

// parseKeys 解析 -keys 参数
func parseKeys(spec string) ([]ebiten.Key, error) {
	var held []ebiten.Key
	for _, name := range strings.Split(spec, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		key, ok := keyNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown direction %q (want up, down, left or right)", name)
		}
		held = append(held, key)
	}
	return held, nil
}

// Result 一次模拟的结果
type Result struct {
	Frames      int   // 实际运行的 Playing 帧数
	Caught      bool  // 是否被炸弹击中
	CaughtTick  int   // 被击中时的帧计数
	StageTicks  []int // 每次进入新档位时的帧计数，下标为档位
	FinalStage  int
	FinalPlayer [2]float64
	FinalBomb   [2]float64
}

// simulate 运行最多 maxFrames 帧，被击中即停止
func simulate(tuning *config.Tuning, held []ebiten.Key, maxFrames int) (*Result, error) {
	scene, err := scenes.NewGameScene(scenes.Options{
		Tuning: tuning,
		Keys:   systems.HeldKeys(held...),
	})
	if err != nil {
		return nil, err
	}

	deltaTime := 1.0 / float64(tuning.TPS)
	result := &Result{StageTicks: []int{0}}
	lastStage := 0

	for result.Frames < maxFrames {
		tick := scene.State().Tick
		scene.Update(deltaTime)
		snap := scene.Snapshot()

		if snap.BombStage != lastStage {
			lastStage = snap.BombStage
			result.StageTicks = append(result.StageTicks, tick)
			logger.Log.WithFields(logrus.Fields{
				"stage":  snap.BombStage,
				"tick":   tick,
				"radius": snap.BombRadius,
			}).Info("[Simulate] Stage up")
		}

		if scene.State().JustLost() {
			result.Caught = true
			result.CaughtTick = snap.Tick
			logger.Log.WithFields(logrus.Fields{
				"tick":   snap.Tick,
				"stage":  snap.BombStage,
				"player": fmt.Sprintf("(%.1f, %.1f)", snap.PlayerX, snap.PlayerY),
				"bomb":   fmt.Sprintf("(%.1f, %.1f)", snap.BombX, snap.BombY),
			}).Info("[Simulate] Caught")
			break
		}
		result.Frames++
	}

	snap := scene.Snapshot()
	result.FinalStage = snap.BombStage
	result.FinalPlayer = [2]float64{snap.PlayerX, snap.PlayerY}
	result.FinalBomb = [2]float64{snap.BombX, snap.BombY}
	return result, nil
}

func loadTuning() (*config.Tuning, error) {
	tuning := config.DefaultTuning()
	if *configPath != "" {
		loaded, err := config.LoadTuning(*configPath)
		if err != nil {
			return nil, err
		}
		tuning = loaded
	}

	tuning.Ruleset = *ruleset
	tuning.Bomb.Seed = *seed
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation settings: %w", err)
	}
	return tuning, nil
}

func main() {
	flag.Parse()

	logger.Init(*verbose)
	if !*verbose {
		logger.Log.SetLevel(logrus.InfoLevel)
	}

	tuning, err := loadTuning()
	if err != nil {
		logger.Log.Errorf("[Simulate] %v", err)
		os.Exit(1)
	}

	held, err := parseKeys(*keys)
	if err != nil {
		logger.Log.Errorf("[Simulate] %v", err)
		os.Exit(1)
	}

	result, err := simulate(tuning, held, *frames)
	if err != nil {
		logger.Log.Errorf("[Simulate] %v", err)
		os.Exit(1)
	}

	if result.Caught {
		fmt.Printf("caught at tick %d (stage %d)\n", result.CaughtTick, result.FinalStage)
	} else {
		fmt.Printf("survived %d frames (stage %d)\n", result.Frames, result.FinalStage)
	}
}
