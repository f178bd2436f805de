package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/dodgebomb/pkg/config"
)

func TestPlayerMovementSystem(t *testing.T) {
	tests := []struct {
		name         string
		startX       float64
		startY       float64
		dx, dy       float64
		wantX, wantY float64
	}{
		{"场地内正常移动", 300, 200, 5, 5, 305, 205},
		{"移动到刚好贴左边", 45, 200, -5, 0, 40, 200},
		{"左侧越界整体回退", 40, 200, -5, -5, 40, 200},
		{"下方越界整体回退", 300, 610, 5, 5, 300, 610},
		{"右侧越界整体回退", 1060, 300, 5, -5, 1060, 300},
		{"上方越界整体回退", 500, 40, -5, -5, 500, 40},
		{"零位移", 550, 325, 0, 0, 550, 325},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(config.RulesetV3, tt.startX, tt.startY, 900, 500)
			s := NewPlayerMovementSystem(w.em, w.state)

			s.Update(tt.dx, tt.dy)

			pos := w.playerPos()
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestPlayerMovementFullRevertProperty 随机起点和位移：要么完整移动且仍在场地内，要么原地不动
func TestPlayerMovementFullRevertProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	steps := []float64{-5, 0, 5}

	for i := 0; i < 2000; i++ {
		// 碰撞盒 80x80，中心在 [40, W-40] x [40, H-40] 内即在场地内
		startX := 40 + float64(rng.IntN(1100-80+1))
		startY := 40 + float64(rng.IntN(650-80+1))
		dx := steps[rng.IntN(3)]
		dy := steps[rng.IntN(3)]

		w := newTestWorld(config.RulesetV3, startX, startY, 900, 500)
		NewPlayerMovementSystem(w.em, w.state).Update(dx, dy)
		pos := w.playerPos()

		moved := pos.X == startX+dx && pos.Y == startY+dy
		stayed := pos.X == startX && pos.Y == startY
		if !moved && !stayed {
			t.Fatalf("start (%v, %v) d (%v, %v): partial move to (%v, %v)", startX, startY, dx, dy, pos.X, pos.Y)
		}
		if pos.X-40 < 0 || pos.X+40 > 1100 || pos.Y-40 < 0 || pos.Y+40 > 650 {
			t.Fatalf("player left the field: (%v, %v)", pos.X, pos.Y)
		}

		// 只有在会越界时才允许原地不动
		if stayed && (dx != 0 || dy != 0) {
			nx, ny := startX+dx, startY+dy
			if nx-40 >= 0 && nx+40 <= 1100 && ny-40 >= 0 && ny+40 <= 650 {
				t.Fatalf("legal move from (%v, %v) by (%v, %v) was rejected", startX, startY, dx, dy)
			}
		}
	}
}

func TestPlayerMovementRevertDropsLegalAxis(t *testing.T) {
	// x 越界、y 合法：两个轴都撤销
	w := newTestWorld(config.RulesetV3, 40, 200, 900, 500)
	NewPlayerMovementSystem(w.em, w.state).Update(-5, 5)

	pos := w.playerPos()
	if pos.X != 40 || pos.Y != 200 {
		t.Errorf("player should stay at (40, 200), got (%v, %v)", pos.X, pos.Y)
	}
}
