package systems

import (
	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/ecs"
	"github.com/decker502/dodgebomb/pkg/game"
)

// FacingSystem 根据本帧位移选择玩家朝向
// 规则集未启用朝向时始终保持 DirectionIdle
type FacingSystem struct {
	em    *ecs.EntityManager
	state *game.GameState
}

// NewFacingSystem 创建朝向系统
func NewFacingSystem(em *ecs.EntityManager, state *game.GameState) *FacingSystem {
	return &FacingSystem{
		em:    em,
		state: state,
	}
}

// Update 用位移（越界回退前）更新朝向
func (s *FacingSystem) Update(dx, dy float64) {
	facing := components.DirectionIdle
	if s.state.Rules.Facing {
		facing = components.DirectionFromDisplacement(dx, dy, s.state.Tuning.Player.Step)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		player.Facing = facing
	}
}
