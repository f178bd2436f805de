package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata，测试结束后随临时目录一起删除
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowScale != 1.0 {
		t.Errorf("WindowScale: got %v, want 1.0", settings.WindowScale)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试保存后由新的管理器重新加载
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestGdata(t, "dodgebomb_test_settings")

	sm1 := NewSettingsManager(manager)
	sm1.SetFullscreen(true)
	sm1.SetWindowScale(1.5)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(manager)
	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.WindowScale != 1.5 {
		t.Errorf("Loaded WindowScale: got %v, want 1.5", settings.WindowScale)
	}
}

// TestSettingsLoadCorrupted 存储内容损坏时退回默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	manager := openTestGdata(t, "dodgebomb_test_corrupted")
	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [")); err != nil {
		t.Fatalf("failed to seed corrupted settings: %v", err)
	}

	sm := NewSettingsManager(manager)
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the unmarshal error")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupted settings should fall back to defaults, got %+v", *sm.GetSettings())
	}
}

func TestSetWindowScaleClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{1.0, 1.0},
		{0.5, 0.5},
		{2.0, 2.0},
		{0.1, MinWindowScale},
		{3.0, MaxWindowScale},
		{-1, MinWindowScale},
	}

	for _, tt := range tests {
		sm.SetWindowScale(tt.input)
		if got := sm.GetSettings().WindowScale; got != tt.expected {
			t.Errorf("SetWindowScale(%v): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}
