package systems

import (
	"math"
	"testing"

	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestFacingUnit(t *testing.T) {
	tests := []struct {
		name   string
		facing components.Direction
		wantX  float64
		wantY  float64
	}{
		{"静止时朝左", components.DirectionIdle, -1, 0},
		{"向右", components.DirectionRight, 1, 0},
		{"向上", components.DirectionUp, 0, -1},
		{"右下", components.DirectionDownRight, math.Sqrt2 / 2, math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := facingUnit(tt.facing)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("facingUnit(%s) = (%v, %v), want (%v, %v)", tt.facing, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestGameOverAlpha(t *testing.T) {
	tests := []struct {
		name string
		snap game.Snapshot
		want float64
	}{
		{"刚输掉", game.Snapshot{Phase: game.PhaseGameOver, PhaseElapsed: 0}, 0},
		{"淡入中", game.Snapshot{Phase: game.PhaseGameOver, PhaseElapsed: 0.25}, 0.75},
		{"淡入完成", game.Snapshot{Phase: game.PhaseGameOver, PhaseElapsed: 4}, 1},
		{"结束后保持", game.Snapshot{Phase: game.PhaseFinished}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gameOverAlpha(tt.snap); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("gameOverAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderSystemDraw(t *testing.T) {
	rm, err := game.NewResourceManager()
	if err != nil {
		t.Fatalf("NewResourceManager failed: %v", err)
	}
	tuning := config.DefaultTuning()
	system := NewRenderSystem(rm, tuning)

	screen := ebiten.NewImage(int(tuning.Field.Width), int(tuning.Field.Height))
	snaps := []game.Snapshot{
		{Phase: game.PhasePlaying, PlayerX: 300, PlayerY: 200, BombX: 600, BombY: 400, BombRadius: 10},
		{Phase: game.PhaseGameOver, PhaseElapsed: 1, PlayerX: 300, PlayerY: 200, BombX: 300, BombY: 200, BombRadius: 50,
			PlayerFacing: components.DirectionUpLeft},
	}
	for _, snap := range snaps {
		system.Draw(screen, snap)
	}
}
