package systems

import (
	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/ecs"
	"github.com/decker502/dodgebomb/pkg/entities"
	"github.com/decker502/dodgebomb/pkg/game"
)

// testWorld 测试用的实体管理器 + 游戏状态
type testWorld struct {
	em     *ecs.EntityManager
	state  *game.GameState
	player ecs.EntityID
	bomb   ecs.EntityID
}

// newTestWorld 创建包含一个玩家和一个炸弹的世界
// 玩家位于 (px, py)，炸弹中心位于 (bx, by)
func newTestWorld(ruleset string, px, py, bx, by float64) *testWorld {
	tuning := config.DefaultTuning()
	tuning.Ruleset = ruleset

	em := ecs.NewEntityManager()
	state := game.NewGameState(tuning)

	player := entities.NewPlayerEntity(em, tuning)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, player)
	pos.X, pos.Y = px, py

	bomb := entities.NewBombEntityAt(em, tuning, bx, by)

	return &testWorld{em: em, state: state, player: player, bomb: bomb}
}

func (w *testWorld) playerPos() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.player)
	return pos
}

func (w *testWorld) bombPos() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.bomb)
	return pos
}

func (w *testWorld) bombVel() *components.VelocityComponent {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.em, w.bomb)
	return vel
}

func (w *testWorld) bombComp() *components.BombComponent {
	bomb, _ := ecs.GetComponent[*components.BombComponent](w.em, w.bomb)
	return bomb
}
