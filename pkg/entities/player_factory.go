package entities

import (
	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
// 参数:
//   - manager: EntityManager 实例
//   - tuning: 调参配置，提供初始位置和碰撞盒尺寸
//
// 返回: 创建的实体ID
func NewPlayerEntity(manager *ecs.EntityManager, tuning *config.Tuning) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: tuning.Player.StartX,
		Y: tuning.Player.StartY,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  tuning.Player.Width,
		Height: tuning.Player.Height,
	})

	manager.AddComponent(id, &components.PlayerComponent{
		Facing: components.DirectionIdle,
	})

	return id
}
