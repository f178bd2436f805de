package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Finisher 是一个可选接口，场景用它告诉 SceneManager 自己已经结束
//
// 实现此接口的场景在 Finished() 返回 true 后：
//   - 如果设置了场景工厂，SceneManager 会创建新场景替换它
//   - 否则应用退出
type Finisher interface {
	Finished() bool
}
