package main

import (
	"testing"

	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []ebiten.Key
		wantErr bool
	}{
		{"空字符串", "", nil, false},
		{"单个方向", "left", []ebiten.Key{ebiten.KeyArrowLeft}, false},
		{"多个方向带空格", " Up , right ", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowRight}, false},
		{"未知方向", "jump", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseKeys(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseKeys(%q) = %v, want %v", tt.spec, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSimulateStageTicks(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Ruleset = config.RulesetV1
	tuning.Bomb.Seed = 3

	result, err := simulate(tuning, nil, 1200)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if result.Caught {
		t.Error("v1 has no collision, the player can never be caught")
	}
	if result.Frames != 1200 {
		t.Errorf("frames = %d, want 1200", result.Frames)
	}
	if len(result.StageTicks) != 1 || result.FinalStage != 0 {
		t.Errorf("v1 has no stages, got ticks %v final %d", result.StageTicks, result.FinalStage)
	}
}

func TestSimulateHomingBombCatchesIdlePlayer(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.Bomb.Seed = 3
	tuning.Bomb.FramesPerStage = 10

	result, err := simulate(tuning, nil, 20000)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if !result.Caught {
		t.Fatalf("a homing bomb should eventually catch a player that never moves, final bomb %v", result.FinalBomb)
	}
	for stage, tick := range result.StageTicks {
		if tick != stage*10 {
			t.Errorf("stage %d entered at tick %d, want %d", stage, tick, stage*10)
		}
	}
}
