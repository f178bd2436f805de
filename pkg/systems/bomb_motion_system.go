package systems

import (
	"math"

	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/ecs"
	"github.com/decker502/dodgebomb/pkg/game"
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/decker502/dodgebomb/pkg/utils"
)

// BombMotionSystem 处理炸弹的档位、追踪、移动和反弹
//
// 每帧顺序：
//  1. 根据帧计数确定档位，更新半径和碰撞盒；换档时把中心推回场内，保证变大的碰撞盒不越界
//  2. 距离玩家 >= 阈值时，速度方向指向玩家，大小为 HomingSpeed；否则保持惯性
//  3. 位移 = 速度 * (档位+1)
//  4. 碰撞盒越过左右边界则 VX 取反，越过上下边界则 VY 取反
//
// 除换档外位置不做钳制，所以炸弹可能越界一帧。
type BombMotionSystem struct {
	em    *ecs.EntityManager
	state *game.GameState
}

// NewBombMotionSystem 创建炸弹运动系统
func NewBombMotionSystem(em *ecs.EntityManager, state *game.GameState) *BombMotionSystem {
	return &BombMotionSystem{
		em:    em,
		state: state,
	}
}

// HomingVelocity 计算追踪后的速度
//
// 参数:
//   - bx, by: 炸弹中心
//   - px, py: 玩家中心
//   - vx, vy: 当前速度
//   - threshold: 追踪距离阈值
//   - speed: 追踪速度
//
// 返回:
//   - 距离 >= threshold 时返回指向玩家、长度为 speed 的速度
//   - 距离 < threshold 或距离为 0 时原样返回当前速度
func HomingVelocity(bx, by, px, py, vx, vy, threshold, speed float64) (float64, float64) {
	dx := px - bx
	dy := py - by
	norm := math.Hypot(dx, dy)

	if norm == 0 || norm < threshold {
		return vx, vy
	}

	return dx / norm * speed, dy / norm * speed
}

// Update 推进一帧
func (s *BombMotionSystem) Update() {
	tuning := s.state.Tuning
	stage := s.state.Stage()

	playerPos, hasPlayer := s.playerPosition()

	for _, id := range ecs.GetEntitiesWith3[*components.BombComponent, *components.PositionComponent, *components.VelocityComponent](s.em) {
		bomb, _ := ecs.GetComponent[*components.BombComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		col, hasCol := ecs.GetComponent[*components.CollisionComponent](s.em, id)

		staged := bomb.Stage != stage
		if staged {
			logger.Log.Infof("[BombMotionSystem] Stage %d -> %d at tick %d", bomb.Stage, stage, s.state.Tick)
		}
		bomb.Stage = stage
		bomb.Radius = tuning.StageRadius(stage)
		if hasCol {
			col.Width = 2 * bomb.Radius
			col.Height = 2 * bomb.Radius
			if staged {
				pos.X = utils.ClampCenter(pos.X, bomb.Radius, tuning.Field.Width)
				pos.Y = utils.ClampCenter(pos.Y, bomb.Radius, tuning.Field.Height)
			}
		}

		if s.state.Rules.Homing && hasPlayer {
			vel.VX, vel.VY = HomingVelocity(pos.X, pos.Y, playerPos.X, playerPos.Y,
				vel.VX, vel.VY, tuning.Bomb.HomingThreshold, tuning.Bomb.HomingSpeed)
		}

		multiplier := bomb.SpeedMultiplier()
		pos.X += vel.VX * multiplier
		pos.Y += vel.VY * multiplier

		if !hasCol {
			continue
		}
		left, top, right, bottom := col.Bounds(pos.X, pos.Y)
		xInside, yInside := utils.CheckBound(left, top, right, bottom, tuning.Field.Width, tuning.Field.Height)
		if !xInside {
			vel.VX = -vel.VX
		}
		if !yInside {
			vel.VY = -vel.VY
		}
	}
}

// playerPosition 返回玩家中心（取第一个玩家实体）
func (s *BombMotionSystem) playerPosition() (components.PositionComponent, bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em)
	if len(players) == 0 {
		return components.PositionComponent{}, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, players[0])
	return *pos, true
}
