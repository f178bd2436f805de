package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyStateFunc 报告某个键当前是否按住
// 运行时使用 ebiten.IsKeyPressed，测试和模拟器传入脚本化实现
type KeyStateFunc func(key ebiten.Key) bool

// DirectionalInput 本帧按住的方向信号
type DirectionalInput struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// KeyBindings 逻辑信号到物理按键的绑定，任一按键按住即视为信号按住
type KeyBindings struct {
	Up    []ebiten.Key
	Down  []ebiten.Key
	Left  []ebiten.Key
	Right []ebiten.Key
}

// DefaultKeyBindings 方向键 + WASD
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:  []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	}
}

// InputSystem 读取每帧的方向输入
type InputSystem struct {
	pressed  KeyStateFunc
	bindings KeyBindings
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - pressed: 按键状态来源，为 nil 时使用 ebiten.IsKeyPressed
func NewInputSystem(pressed KeyStateFunc) *InputSystem {
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}
	return &InputSystem{
		pressed:  pressed,
		bindings: DefaultKeyBindings(),
	}
}

// Poll 读取本帧方向输入，每帧调用一次
func (s *InputSystem) Poll() DirectionalInput {
	return DirectionalInput{
		Up:    s.anyPressed(s.bindings.Up),
		Down:  s.anyPressed(s.bindings.Down),
		Left:  s.anyPressed(s.bindings.Left),
		Right: s.anyPressed(s.bindings.Right),
	}
}

func (s *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if s.pressed(key) {
			return true
		}
	}
	return false
}

// HeldKeys 返回一个始终报告给定按键按住的 KeyStateFunc
func HeldKeys(keys ...ebiten.Key) KeyStateFunc {
	held := make(map[ebiten.Key]bool, len(keys))
	for _, key := range keys {
		held[key] = true
	}
	return func(key ebiten.Key) bool {
		return held[key]
	}
}
