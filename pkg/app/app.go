// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载调参、打开设置存储、
// 创建场景并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/embedded"
	"github.com/decker502/dodgebomb/pkg/game"
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/decker502/dodgebomb/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 设置存储使用的应用名
const AppName = "dodgebomb"

// WindowTitle 窗口标题
const WindowTitle = "Dodge the Bomb"

// DefaultTuningPath 嵌入的默认调参文件
const DefaultTuningPath = "data/dodgebomb.yaml"

// windowScaleStep -/= 热键每次调整的窗口缩放量
const windowScaleStep = 0.25

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 磁盘上的调参文件，为空则使用嵌入的默认文件
	ConfigPath string
	// Ruleset 覆盖调参文件中的规则集（v1 / v2 / v3），为空不覆盖
	Ruleset string
	// Seed 覆盖炸弹初始位置随机种子，0 不覆盖
	Seed int64
	// Restart 为 true 时结束画面后重开一局
	Restart bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	tuning          *config.Tuning
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	deltaTime       float64
}

// LoadTuning 按启动配置加载调参并应用命令行覆盖
//
// 调用此函数前，如果 ConfigPath 为空，必须先调用 embedded.Init()。
func LoadTuning(cfg Config) (*config.Tuning, error) {
	var (
		tuning *config.Tuning
		err    error
	)

	if cfg.ConfigPath != "" {
		tuning, err = config.LoadTuning(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		logger.Log.Infof("[Config] Loaded tuning from %s", cfg.ConfigPath)
	} else {
		data, err := embedded.ReadFile(DefaultTuningPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded tuning: %w", err)
		}
		tuning, err = config.ParseTuning(data)
		if err != nil {
			return nil, err
		}
		logger.Log.Infof("[Config] Loaded embedded tuning %s", DefaultTuningPath)
	}

	if cfg.Ruleset != "" {
		tuning.Ruleset = cfg.Ruleset
	}
	if cfg.Seed != 0 {
		tuning.Bomb.Seed = cfg.Seed
	}
	if cfg.Restart {
		tuning.GameOver.Restart = true
	}

	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command line override: %w", err)
	}

	return tuning, nil
}

// openSettings 打开设置存储，失败时降级为仅内存设置
func openSettings() *game.SettingsManager {
	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		logger.Log.Warnf("[App] Settings storage unavailable: %v (settings will not persist)", err)
		return game.NewSettingsManager(nil)
	}
	return game.NewSettingsManager(manager)
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	tuning, err := LoadTuning(cfg)
	if err != nil {
		return nil, err
	}

	resourceManager, err := game.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("字体资源加载失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	newScene := func() (game.Scene, error) {
		scene, err := scenes.NewGameScene(scenes.Options{
			Tuning:    tuning,
			Resources: resourceManager,
		})
		if err != nil {
			return nil, err
		}
		return scene, nil
	}

	first, err := newScene()
	if err != nil {
		return nil, err
	}
	sceneManager.SwitchTo(first)

	if tuning.GameOver.Restart {
		sceneManager.SetSceneFactory(func() game.Scene {
			scene, err := newScene()
			if err != nil {
				logger.Log.Errorf("[App] Failed to start a new round: %v", err)
				return nil
			}
			return scene
		})
	}

	logger.Log.Infof("[App] Started with ruleset %s at %d TPS", tuning.Ruleset, tuning.TPS)

	return &App{
		tuning:          tuning,
		sceneManager:    sceneManager,
		settingsManager: openSettings(),
		deltaTime:       1.0 / float64(tuning.TPS),
	}, nil
}

// ConfigureWindow 应用窗口相关设置，在 ebiten.RunGame 之前调用
func (a *App) ConfigureWindow() {
	settings := a.settingsManager.GetSettings()

	ebiten.SetTPS(a.tuning.TPS)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowSize(
		int(a.tuning.Field.Width*settings.WindowScale),
		int(a.tuning.Field.Height*settings.WindowScale),
	)
	ebiten.SetFullscreen(settings.Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 50 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		logger.Log.Infof("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	// 窗口热键只在对局进行中响应，结束画面期间只保留 Escape
	if a.acceptsInput() {
		// F11 切换全屏并保存
		if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
			fullscreen := !ebiten.IsFullscreen()
			ebiten.SetFullscreen(fullscreen)
			a.settingsManager.SetFullscreen(fullscreen)
			a.saveSettings()
		}

		// -/= 缩小、放大窗口并保存
		step := 0.0
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
			step -= windowScaleStep
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
			step += windowScaleStep
		}
		if step != 0 {
			scale := a.adjustWindowScale(step)
			ebiten.SetWindowSize(int(a.tuning.Field.Width*scale), int(a.tuning.Field.Height*scale))
		}
	}

	if a.sceneManager.Update(a.deltaTime) {
		logger.Log.Infof("[App] Round finished, quitting")
		return ebiten.Termination
	}
	return nil
}

// acceptsInput 当前场景是否处于 Playing 阶段
func (a *App) acceptsInput() bool {
	scene, ok := a.sceneManager.GetCurrentScene().(*scenes.GameScene)
	return ok && scene.State().IsPlaying()
}

// adjustWindowScale 调整窗口缩放并保存，返回限制后的缩放
func (a *App) adjustWindowScale(step float64) float64 {
	a.settingsManager.SetWindowScale(a.settingsManager.GetSettings().WindowScale + step)
	a.saveSettings()

	scale := a.settingsManager.GetSettings().WindowScale
	logger.Log.Debugf("[App] Window scale %.2f", scale)
	return scale
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		logger.Log.Warnf("[App] Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
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

// Layout 返回游戏的逻辑屏幕尺寸，即场地尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.tuning.Field.Width), int(a.tuning.Field.Height)
}
