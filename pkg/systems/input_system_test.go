package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInputSystemPoll(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want DirectionalInput
	}{
		{"无按键", nil, DirectionalInput{}},
		{"方向键上", []ebiten.Key{ebiten.KeyArrowUp}, DirectionalInput{Up: true}},
		{"WASD 别名", []ebiten.Key{ebiten.KeyA, ebiten.KeyS}, DirectionalInput{Left: true, Down: true}},
		{"同一信号两个按键只算一次", []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, DirectionalInput{Right: true}},
		{"无关按键被忽略", []ebiten.Key{ebiten.KeySpace, ebiten.KeyQ}, DirectionalInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputSystem(HeldKeys(tt.keys...))
			if got := s.Poll(); got != tt.want {
				t.Errorf("Poll() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputSystemAliasDoesNotDoubleStep(t *testing.T) {
	s := NewInputSystem(HeldKeys(ebiten.KeyArrowRight, ebiten.KeyD))
	dx, _ := Displacement(s.Poll(), 5)
	if dx != 5 {
		t.Errorf("aliased keys must produce a single step, got dx=%v", dx)
	}
}
