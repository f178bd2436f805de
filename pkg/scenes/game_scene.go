package scenes

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/ecs"
	"github.com/decker502/dodgebomb/pkg/entities"
	"github.com/decker502/dodgebomb/pkg/game"
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/decker502/dodgebomb/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options GameScene 的构造参数
type Options struct {
	// Tuning 调参配置，必须已通过 Validate
	Tuning *config.Tuning

	// Keys 按键状态来源，为 nil 时读取真实键盘
	Keys systems.KeyStateFunc

	// Rand 炸弹初始位置的随机源，为 nil 时按 Tuning.Bomb.Seed 创建
	Rand *rand.Rand

	// Resources 渲染用资源，为 nil 时场景以无界面模式运行，Draw 不做任何事
	Resources *game.ResourceManager
}

// GameScene 一局躲炸弹游戏
//
// 每帧顺序（Playing 阶段）：
//  1. 读取方向输入并换算成位移
//  2. 移动玩家（越界整体回退），更新朝向
//  3. 炸弹：档位、追踪、移动、反弹
//  4. 碰撞检测，命中则进入 GameOver
//  5. 帧计数 +1
//
// GameOver 阶段不处理输入，只推进结束画面计时。
type GameScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	player ecs.EntityID
	bomb   ecs.EntityID

	inputSystem          *systems.InputSystem
	playerMovementSystem *systems.PlayerMovementSystem
	facingSystem         *systems.FacingSystem
	bombMotionSystem     *systems.BombMotionSystem
	physicsSystem        *systems.PhysicsSystem
	renderSystem         *systems.RenderSystem // 无界面模式下为 nil
}

// NewGameScene 创建一局新游戏
func NewGameScene(opts Options) (*GameScene, error) {
	if opts.Tuning == nil {
		return nil, fmt.Errorf("game scene requires tuning config")
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning for game scene: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = NewRand(opts.Tuning.Bomb.Seed)
	}

	em := ecs.NewEntityManager()
	state := game.NewGameState(opts.Tuning)

	s := &GameScene{
		entityManager: em,
		gameState:     state,
	}

	s.player = entities.NewPlayerEntity(em, opts.Tuning)
	s.bomb = entities.NewBombEntity(em, opts.Tuning, rng)

	s.inputSystem = systems.NewInputSystem(opts.Keys)
	s.playerMovementSystem = systems.NewPlayerMovementSystem(em, state)
	s.facingSystem = systems.NewFacingSystem(em, state)
	s.bombMotionSystem = systems.NewBombMotionSystem(em, state)
	s.physicsSystem = systems.NewPhysicsSystem(em, state)

	if opts.Resources != nil {
		s.renderSystem = systems.NewRenderSystem(opts.Resources, opts.Tuning)
	}

	snap := s.Snapshot()
	logger.Log.Infof("[GameScene] New round (ruleset %s): player (%.0f, %.0f), bomb (%.0f, %.0f)",
		opts.Tuning.Ruleset, snap.PlayerX, snap.PlayerY, snap.BombX, snap.BombY)

	return s, nil
}

// NewRand 按种子创建随机源，种子为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
}

// Update 推进一帧
// deltaTime 为本帧时长（秒），只用于结束画面计时
func (s *GameScene) Update(deltaTime float64) {
	s.gameState.BeginFrame()

	if s.gameState.IsPlaying() {
		s.updatePlaying()
		return
	}

	if s.gameState.Phase == game.PhaseGameOver {
		s.gameState.UpdatePhase(deltaTime)
		if s.gameState.Phase == game.PhaseFinished {
			logger.Log.Infof("[GameScene] Game over display finished")
		}
	}
}

func (s *GameScene) updatePlaying() {
	dx, dy := systems.Displacement(s.inputSystem.Poll(), s.gameState.Tuning.Player.Step)

	s.playerMovementSystem.Update(dx, dy)
	s.facingSystem.Update(dx, dy)
	s.bombMotionSystem.Update()

	if s.physicsSystem.Update() && s.gameState.EnterGameOver() {
		logger.Log.Warnf("[GameScene] You lost at tick %d (stage %d)", s.gameState.Tick, s.gameState.Stage())
		return
	}

	s.gameState.AdvanceTick()
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.renderSystem == nil {
		return
	}
	s.renderSystem.Draw(screen, s.Snapshot())
}

// Finished 结束画面是否已显示完毕
func (s *GameScene) Finished() bool {
	return s.gameState.Phase == game.PhaseFinished
}

// State 返回本局游戏状态
func (s *GameScene) State() *game.GameState {
	return s.gameState
}

// Snapshot 返回本帧的只读快照
func (s *GameScene) Snapshot() game.Snapshot {
	snap := game.Snapshot{
		Tick:         s.gameState.Tick,
		Phase:        s.gameState.Phase,
		PhaseElapsed: s.gameState.PhaseElapsed,
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player); ok {
		snap.PlayerX, snap.PlayerY = pos.X, pos.Y
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player); ok {
		snap.PlayerFacing = player.Facing
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.bomb); ok {
		snap.BombX, snap.BombY = pos.X, pos.Y
	}
	if bomb, ok := ecs.GetComponent[*components.BombComponent](s.entityManager, s.bomb); ok {
		snap.BombStage = bomb.Stage
		snap.BombRadius = bomb.Radius
	}

	return snap
}

// placeBomb 把炸弹移到指定中心并设置速度，供测试构造确定局面
func (s *GameScene) placeBomb(x, y, vx, vy float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.bomb); ok {
		pos.X, pos.Y = x, y
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, s.bomb); ok {
		vel.VX, vel.VY = vx, vy
	}
}

// placePlayer 把玩家移到指定中心
func (s *GameScene) placePlayer(x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player); ok {
		pos.X, pos.Y = x, y
	}
}
