package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// 默认数值
// 场地尺寸和每档帧数共同决定了难度曲线，修改任何一个都会改变手感
const (
	// DefaultFieldWidth 场地逻辑宽度
	DefaultFieldWidth = 1100.0
	// DefaultFieldHeight 场地逻辑高度
	DefaultFieldHeight = 650.0

	// DefaultTPS 每秒逻辑帧数
	DefaultTPS = 50

	// DefaultPlayerStep 单个方向键每帧位移
	DefaultPlayerStep = 5.0

	// DefaultBombBaseRadius 第 0 档炸弹半径，第 i 档半径为 BaseRadius*(i+1)
	DefaultBombBaseRadius = 10.0

	// DefaultHomingThreshold 追踪距离阈值，小于该距离时炸弹保持惯性
	DefaultHomingThreshold = 300.0

	// DefaultFramesPerStage 每档持续的帧数
	DefaultFramesPerStage = 500

	// DefaultMaxStage 最高档位（含）
	DefaultMaxStage = 9

	// DefaultGameOverSeconds 游戏结束画面显示时长（秒）
	DefaultGameOverSeconds = 5.0
)

// DefaultHomingSpeed 追踪速度（倍率前），即 √50
var DefaultHomingSpeed = math.Sqrt(50)

// Tuning 游戏调参配置
//
// 配置文件位置: data/dodgebomb.yaml
// 文件中缺省的字段保留 DefaultTuning() 的值
type Tuning struct {
	// Ruleset 规则集名称（v1 / v2 / v3）
	Ruleset string `yaml:"ruleset"`

	// TPS 每秒逻辑帧数
	TPS int `yaml:"tps"`

	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Bomb     BombConfig     `yaml:"bomb"`
	GameOver GameOverConfig `yaml:"gameOver"`
}

// FieldConfig 场地尺寸
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	StartX float64 `yaml:"startX"` // 初始中心X
	StartY float64 `yaml:"startY"` // 初始中心Y
	Width  float64 `yaml:"width"`  // 碰撞盒宽度
	Height float64 `yaml:"height"` // 碰撞盒高度
	Step   float64 `yaml:"step"`   // 单键每帧位移
}

// BombConfig 炸弹配置
type BombConfig struct {
	BaseRadius      float64 `yaml:"baseRadius"`
	InitialVX       float64 `yaml:"initialVX"`
	InitialVY       float64 `yaml:"initialVY"`
	HomingThreshold float64 `yaml:"homingThreshold"`
	HomingSpeed     float64 `yaml:"homingSpeed"`
	FramesPerStage  int     `yaml:"framesPerStage"`
	MaxStage        int     `yaml:"maxStage"`

	// Seed 初始位置随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// GameOverConfig 游戏结束画面配置
type GameOverConfig struct {
	DisplaySeconds float64 `yaml:"displaySeconds"`

	// Restart 为 true 时结束画面后开始新一局，否则退出程序
	Restart bool `yaml:"restart"`
}

// DefaultTuning 返回默认调参
func DefaultTuning() *Tuning {
	return &Tuning{
		Ruleset: RulesetV3,
		TPS:     DefaultTPS,
		Field: FieldConfig{
			Width:  DefaultFieldWidth,
			Height: DefaultFieldHeight,
		},
		Player: PlayerConfig{
			StartX: 300,
			StartY: 200,
			Width:  80,
			Height: 80,
			Step:   DefaultPlayerStep,
		},
		Bomb: BombConfig{
			BaseRadius:      DefaultBombBaseRadius,
			InitialVX:       5,
			InitialVY:       5,
			HomingThreshold: DefaultHomingThreshold,
			HomingSpeed:     DefaultHomingSpeed,
			FramesPerStage:  DefaultFramesPerStage,
			MaxStage:        DefaultMaxStage,
		},
		GameOver: GameOverConfig{
			DisplaySeconds: DefaultGameOverSeconds,
		},
	}
}

// LoadTuning 从磁盘加载调参文件
//
// 参数:
//   - path: 配置文件路径（如 "data/dodgebomb.yaml"）
//
// 返回:
//   - *Tuning: 合并默认值并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning 解析 YAML 数据并与默认值合并
func ParseTuning(data []byte) (*Tuning, error) {
	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return tuning, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 场地、玩家尺寸为正，且玩家初始位置完全在场地内
//   - 炸弹最大直径不超过场地
//   - 档位参数和结束画面时长合法
//   - 规则集名称可识别
func (t *Tuning) Validate() error {
	if t.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", t.TPS)
	}
	if t.Field.Width <= 0 || t.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.1fx%.1f", t.Field.Width, t.Field.Height)
	}

	p := t.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %.1fx%.1f", p.Width, p.Height)
	}
	if p.Step <= 0 {
		return fmt.Errorf("player step must be positive, got %.1f", p.Step)
	}
	if p.StartX-p.Width/2 < 0 || p.StartX+p.Width/2 > t.Field.Width ||
		p.StartY-p.Height/2 < 0 || p.StartY+p.Height/2 > t.Field.Height {
		return fmt.Errorf("player start (%.1f, %.1f) puts its box outside the field", p.StartX, p.StartY)
	}

	b := t.Bomb
	if b.BaseRadius <= 0 {
		return fmt.Errorf("bomb baseRadius must be positive, got %.1f", b.BaseRadius)
	}
	if b.FramesPerStage <= 0 {
		return fmt.Errorf("bomb framesPerStage must be positive, got %d", b.FramesPerStage)
	}
	if b.MaxStage < 0 {
		return fmt.Errorf("bomb maxStage must be >= 0, got %d", b.MaxStage)
	}
	maxDiameter := 2 * b.BaseRadius * float64(b.MaxStage+1)
	if maxDiameter > t.Field.Width || maxDiameter > t.Field.Height {
		return fmt.Errorf("bomb diameter at stage %d (%.1f) exceeds the field", b.MaxStage, maxDiameter)
	}
	if b.HomingThreshold < 0 {
		return fmt.Errorf("bomb homingThreshold must be >= 0, got %.1f", b.HomingThreshold)
	}
	if b.HomingSpeed <= 0 {
		return fmt.Errorf("bomb homingSpeed must be positive, got %.3f", b.HomingSpeed)
	}

	if t.GameOver.DisplaySeconds < 0 {
		return fmt.Errorf("gameOver displaySeconds must be >= 0, got %.1f", t.GameOver.DisplaySeconds)
	}

	if _, err := RulesFor(t.Ruleset); err != nil {
		return err
	}

	return nil
}

// Rules 返回当前规则集的特性开关
// 调用前应已通过 Validate；未知规则集退回 v3
func (t *Tuning) Rules() Rules {
	rules, err := RulesFor(t.Ruleset)
	if err != nil {
		return rulesets[RulesetV3]
	}
	return rules
}

// StageRadius 返回指定档位的炸弹半径
func (t *Tuning) StageRadius(stage int) float64 {
	return t.Bomb.BaseRadius * float64(stage+1)
}
