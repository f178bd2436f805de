package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录调用情况的场景
type mockScene struct {
	updateCalls int
	deltaTime   float64
	finished    bool
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCalls++
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {}

func (m *mockScene) Finished() bool {
	return m.finished
}

// plainScene 不实现 Finisher
type plainScene struct{}

func (plainScene) Update(deltaTime float64)  {}
func (plainScene) Draw(screen *ebiten.Image) {}

func TestSceneManagerUpdateForwardsDeltaTime(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	if quit := sm.Update(0.02); quit {
		t.Error("running scene should not request quit")
	}
	if scene.updateCalls != 1 || scene.deltaTime != 0.02 {
		t.Errorf("Update not forwarded correctly: calls=%d dt=%v", scene.updateCalls, scene.deltaTime)
	}
	if sm.GetCurrentScene() != scene {
		t.Error("GetCurrentScene should return the active scene")
	}
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.Update(0.02) {
		t.Error("empty manager should not request quit")
	}
	sm.Draw(nil)
}

func TestSceneManagerFinishedWithoutFactoryQuits(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&mockScene{finished: true})

	if !sm.Update(0.02) {
		t.Error("finished scene without factory should request quit")
	}
}

func TestSceneManagerFinishedWithFactoryReloads(t *testing.T) {
	sm := NewSceneManager()
	created := 0
	var latest *mockScene
	sm.SetSceneFactory(func() Scene {
		created++
		latest = &mockScene{}
		return latest
	})

	sm.SwitchTo(&mockScene{finished: true})
	if sm.Update(0.02) {
		t.Error("factory should replace the finished scene instead of quitting")
	}
	if created != 1 || sm.GetCurrentScene() != latest {
		t.Errorf("expected one new scene to be active, created=%d", created)
	}
}

func TestSceneManagerNonFinisherNeverQuits(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(plainScene{})
	for i := 0; i < 10; i++ {
		if sm.Update(0.02) {
			t.Fatal("scene without Finisher must never request quit")
		}
	}
}

func TestSceneManagerReloadNilFactoryResult(t *testing.T) {
	sm := NewSceneManager()
	sm.SetSceneFactory(func() Scene { return nil })
	original := &mockScene{finished: true}
	sm.SwitchTo(original)

	if !sm.Update(0.02) {
		t.Error("factory returning nil should fall back to quitting")
	}
	if sm.GetCurrentScene() != original {
		t.Error("scene must not change when the factory fails")
	}
}
