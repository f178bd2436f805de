package game

import (
	"github.com/decker502/dodgebomb/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于重开一局时创建新场景
type SceneFactory func() Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 为 nil 时场景结束即退出
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 用场景工厂创建新场景并切换
//
// 返回：
//   - bool: 是否成功切换（未设置工厂时返回 false）
func (sm *SceneManager) Reload() bool {
	if sm.sceneFactory == nil {
		return false
	}

	newScene := sm.sceneFactory()
	if newScene == nil {
		logger.Log.Errorf("[SceneManager] 错误: 场景工厂返回 nil")
		return false
	}

	sm.SwitchTo(newScene)
	logger.Log.Infof("[SceneManager] 已重新开始")
	return true
}

// Update updates the currently active scene.
//
// 返回：
//   - bool: 为 true 表示当前场景已结束且没有后续场景，应用应退出
func (sm *SceneManager) Update(deltaTime float64) bool {
	if sm.currentScene == nil {
		return false
	}

	sm.currentScene.Update(deltaTime)

	finisher, ok := sm.currentScene.(Finisher)
	if !ok || !finisher.Finished() {
		return false
	}

	return !sm.Reload()
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
