package game

import (
	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/config"
)

// RoundPhase 一局游戏所处的阶段
type RoundPhase int

const (
	// PhasePlaying 正常游戏中，每帧处理输入和移动
	PhasePlaying RoundPhase = iota
	// PhaseGameOver 已被炸弹击中，显示结束画面，不处理任何输入
	PhaseGameOver
	// PhaseFinished 结束画面显示完毕，由上层决定退出或重开
	PhaseFinished
)

func (p RoundPhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// GameState 存储一局游戏的全局状态
//
// 不再是全局单例：每个 GameScene 持有自己的 GameState，
// 系统通过参数拿到它，测试可以直接构造。
type GameState struct {
	Tuning *config.Tuning
	Rules  config.Rules

	// Tick 帧计数器，只在 Playing 阶段递增
	Tick int

	Phase        RoundPhase
	PhaseElapsed float64 // 当前阶段已持续时间（秒）

	justLost bool
}

// NewGameState 基于调参创建新的一局
func NewGameState(tuning *config.Tuning) *GameState {
	return &GameState{
		Tuning: tuning,
		Rules:  tuning.Rules(),
		Phase:  PhasePlaying,
	}
}

// StageForTick 根据帧计数计算档位：min(tick / framesPerStage, maxStage)
func StageForTick(tick, framesPerStage, maxStage int) int {
	if tick < 0 || framesPerStage <= 0 {
		return 0
	}
	stage := tick / framesPerStage
	if stage > maxStage {
		return maxStage
	}
	return stage
}

// Stage 返回当前档位
// 规则集未启用档位时恒为 0
func (gs *GameState) Stage() int {
	if !gs.Rules.Stages {
		return 0
	}
	return StageForTick(gs.Tick, gs.Tuning.Bomb.FramesPerStage, gs.Tuning.Bomb.MaxStage)
}

// IsPlaying 是否处于 Playing 阶段
func (gs *GameState) IsPlaying() bool {
	return gs.Phase == PhasePlaying
}

// BeginFrame 在每帧开始时调用，清除上一帧的一次性事件
func (gs *GameState) BeginFrame() {
	gs.justLost = false
}

// AdvanceTick 帧计数 +1（仅 Playing 阶段有效）
func (gs *GameState) AdvanceTick() {
	if gs.Phase == PhasePlaying {
		gs.Tick++
	}
}

// EnterGameOver 从 Playing 进入 GameOver
//
// 返回：
//   - bool: 本次调用是否真正发生了阶段切换
func (gs *GameState) EnterGameOver() bool {
	if gs.Phase != PhasePlaying {
		return false
	}
	gs.Phase = PhaseGameOver
	gs.PhaseElapsed = 0
	gs.justLost = true
	return true
}

// JustLost 本帧是否刚刚输掉（"you lost" 事件）
func (gs *GameState) JustLost() bool {
	return gs.justLost
}

// UpdatePhase 推进阶段计时器
// GameOver 持续 Tuning.GameOver.DisplaySeconds 后切换到 Finished
func (gs *GameState) UpdatePhase(deltaTime float64) {
	if gs.Phase != PhaseGameOver {
		return
	}
	gs.PhaseElapsed += deltaTime
	if gs.PhaseElapsed >= gs.Tuning.GameOver.DisplaySeconds {
		gs.Phase = PhaseFinished
		gs.PhaseElapsed = 0
	}
}

// Snapshot 每帧输出给渲染层的只读数据
type Snapshot struct {
	Tick         int
	Phase        RoundPhase
	PhaseElapsed float64

	PlayerX, PlayerY float64
	PlayerFacing     components.Direction

	BombX, BombY float64
	BombStage    int
	BombRadius   float64
}
