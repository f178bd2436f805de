package entities

import (
	"math/rand/v2"

	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/ecs"
)

// NewBombEntity 创建炸弹实体
//
// 初始档位为 0，碰撞盒为 2*BaseRadius 的正方形，
// 左上角在场地内均匀随机（整数坐标），保证碰撞盒完全在场地内。
//
// 参数:
//   - manager: EntityManager 实例
//   - tuning: 调参配置
//   - rng: 随机数源，测试时传入固定种子
//
// 返回: 创建的实体ID
func NewBombEntity(manager *ecs.EntityManager, tuning *config.Tuning, rng *rand.Rand) ecs.EntityID {
	radius := tuning.StageRadius(0)
	size := 2 * radius

	left := float64(rng.IntN(int(tuning.Field.Width-size) + 1))
	top := float64(rng.IntN(int(tuning.Field.Height-size) + 1))

	return NewBombEntityAt(manager, tuning, left+radius, top+radius)
}

// NewBombEntityAt 在指定中心位置创建炸弹实体
func NewBombEntityAt(manager *ecs.EntityManager, tuning *config.Tuning, x, y float64) ecs.EntityID {
	id := manager.CreateEntity()
	radius := tuning.StageRadius(0)

	manager.AddComponent(id, &components.PositionComponent{X: x, Y: y})

	manager.AddComponent(id, &components.VelocityComponent{
		VX: tuning.Bomb.InitialVX,
		VY: tuning.Bomb.InitialVY,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  2 * radius,
		Height: 2 * radius,
	})

	manager.AddComponent(id, &components.BombComponent{
		Stage:  0,
		Radius: radius,
	})

	return id
}
