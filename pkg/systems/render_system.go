package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/dodgebomb/pkg/components"
	"github.com/decker502/dodgebomb/pkg/config"
	"github.com/decker502/dodgebomb/pkg/game"
	"github.com/decker502/dodgebomb/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染颜色
var (
	backgroundColor = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	playerColor     = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	playerEyeColor  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	bombColor       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	hudColor        = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// 字号
const (
	hudFontSize      = 18
	gameOverFontSize = 64
)

// gameOverFadeSeconds 结束画面淡入时长
const gameOverFadeSeconds = 0.5

// RenderSystem 把每帧的 Snapshot 画到屏幕上
// 只读取快照，不接触实体和组件
type RenderSystem struct {
	tuning   *config.Tuning
	hudFace  *text.GoTextFace
	overFace *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(rm *game.ResourceManager, tuning *config.Tuning) *RenderSystem {
	return &RenderSystem{
		tuning:   tuning,
		hudFace:  rm.LoadFont(hudFontSize),
		overFace: rm.LoadFont(gameOverFontSize),
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)

	s.drawBomb(screen, snap)
	s.drawPlayer(screen, snap)
	s.drawHUD(screen, snap)

	if snap.Phase != game.PhasePlaying {
		s.drawGameOver(screen, snap)
	}
}

func (s *RenderSystem) drawBomb(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledCircle(screen,
		float32(snap.BombX), float32(snap.BombY), float32(snap.BombRadius),
		bombColor, true)
}

// drawPlayer 画玩家身体和朝向
// 静止时沿用默认朝向（向左）
func (s *RenderSystem) drawPlayer(screen *ebiten.Image, snap game.Snapshot) {
	radius := math.Min(s.tuning.Player.Width, s.tuning.Player.Height) / 2
	cx, cy := float32(snap.PlayerX), float32(snap.PlayerY)

	vector.DrawFilledCircle(screen, cx, cy, float32(radius), playerColor, true)

	dx, dy := facingUnit(snap.PlayerFacing)
	eyeX := cx + float32(dx*radius*0.55)
	eyeY := cy + float32(dy*radius*0.55)
	vector.DrawFilledCircle(screen, eyeX, eyeY, float32(radius*0.15), playerEyeColor, true)

	tipX := cx + float32(dx*radius*1.2)
	tipY := cy + float32(dy*radius*1.2)
	vector.StrokeLine(screen, cx+float32(dx*radius), cy+float32(dy*radius), tipX, tipY, 4, playerColor, true)
}

// facingUnit 返回朝向的单位向量
func facingUnit(d components.Direction) (float64, float64) {
	if d == components.DirectionIdle {
		return -1, 0
	}
	vx, vy := d.Vector()
	length := math.Hypot(float64(vx), float64(vy))
	return float64(vx) / length, float64(vy) / length
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	msg := fmt.Sprintf("Stage %d  Tick %d", snap.BombStage, snap.Tick)

	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 8)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, msg, s.hudFace, op)
}

// drawGameOver 画结束画面，遮罩和文字一起淡入
func (s *RenderSystem) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	field := s.tuning.Field
	alpha := gameOverAlpha(snap)

	overlay := overlayColor
	overlay.A = uint8(float64(overlayColor.A) * alpha)
	vector.DrawFilledRect(screen, 0, 0, float32(field.Width), float32(field.Height), overlay, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(field.Width/2, field.Height/2)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, "Game Over", s.overFace, op)
}

// gameOverAlpha 结束画面当前不透明度
// Finished 阶段保持完全不透明，直到场景被替换或应用退出
func gameOverAlpha(snap game.Snapshot) float64 {
	if snap.Phase == game.PhaseFinished {
		return 1
	}
	return utils.FadeProgress(snap.PhaseElapsed, gameOverFadeSeconds)
}
