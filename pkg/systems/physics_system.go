package systems

import (
	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/ecs"
	"github.com/decker502/dodgebomb/pkg/game"
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/decker502/dodgebomb/pkg/utils"
)

// PhysicsSystem 处理玩家与炸弹的碰撞检测
// 没有碰撞响应：一旦重叠，本局立即结束
type PhysicsSystem struct {
	em    *ecs.EntityManager
	state *game.GameState
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager, state *game.GameState) *PhysicsSystem {
	return &PhysicsSystem{
		em:    em,
		state: state,
	}
}

// checkAABBCollision 检查两个实体的AABB（轴对齐边界框）是否发生碰撞
// 边界刚好接触也算碰撞
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	l1, t1, r1, b1 := col1.Bounds(pos1.X, pos1.Y)
	l2, t2, r2, b2 := col2.Bounds(pos2.X, pos2.Y)
	return utils.RectsOverlap(l1, t1, r1, b1, l2, t2, r2, b2)
}

// Update 检测玩家与所有炸弹的碰撞
//
// 返回:
//   - bool: 本帧是否发生碰撞（规则集未启用碰撞时恒为 false）
func (s *PhysicsSystem) Update() bool {
	if !s.state.Rules.Collision {
		return false
	}

	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	bombs := ecs.GetEntitiesWith3[*components.BombComponent, *components.PositionComponent, *components.CollisionComponent](s.em)

	for _, playerID := range players {
		playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
		playerCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, playerID)

		for _, bombID := range bombs {
			bombPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bombID)
			bombCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, bombID)

			if checkAABBCollision(playerPos, playerCol, bombPos, bombCol) {
				logger.Log.Infof("[PhysicsSystem] Player hit at tick %d (player %.1f,%.1f bomb %.1f,%.1f)",
					s.state.Tick, playerPos.X, playerPos.Y, bombPos.X, bombPos.Y)
				return true
			}
		}
	}

	return false
}
