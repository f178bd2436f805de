package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager 管理渲染用的字体资源
//
// 游戏没有图片素材：炸弹和玩家都用矢量图形绘制，
// 这里只负责从内置的 Go Regular 字体创建并缓存字号。
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
}

// NewResourceManager 创建资源管理器并解析内置字体
func NewResourceManager() (*ResourceManager, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &ResourceManager{
		fontSource:    source,
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}, nil
}

// LoadFont 返回指定字号的字体，同一字号只创建一次
func (rm *ResourceManager) LoadFont(size float64) *text.GoTextFace {
	if cached, ok := rm.fontFaceCache[size]; ok {
		return cached
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}
