package systems

import (
	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/ecs"
	"github.com/decker502/dodgebomb/pkg/game"
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/decker502/dodgebomb/pkg/utils"
)

// PlayerMovementSystem 移动玩家并保证碰撞盒留在场地内
//
// 越界处理是整体回退：任一轴越界时两个轴的位移都撤销，
// 而不是把位置钳制到边界上。
type PlayerMovementSystem struct {
	em    *ecs.EntityManager
	state *game.GameState
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, state *game.GameState) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		em:    em,
		state: state,
	}
}

// Update 应用本帧位移
func (s *PlayerMovementSystem) Update(dx, dy float64) {
	field := s.state.Tuning.Field

	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)

		pos.X += dx
		pos.Y += dy

		left, top, right, bottom := col.Bounds(pos.X, pos.Y)
		xInside, yInside := utils.CheckBound(left, top, right, bottom, field.Width, field.Height)
		if !xInside || !yInside {
			pos.X -= dx
			pos.Y -= dy
			logger.Log.Debugf("[PlayerMovementSystem] Move (%.0f, %.0f) reverted at (%.1f, %.1f), tick %d",
				dx, dy, pos.X, pos.Y, s.state.Tick)
		}
	}
}
