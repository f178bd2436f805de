package scenes

import (
	"github.com/decker502/dodgebomb/pkg/game"
)

// 场景接口定义在 game 包，SceneManager 依赖它而不依赖本包
var (
	_ game.Scene    = (*GameScene)(nil)
	_ game.Finisher = (*GameScene)(nil)
)
