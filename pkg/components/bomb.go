package components

// BombComponent 标识炸弹实体
type BombComponent struct {
	Stage  int     // 当前档位 [0, MaxStage]
	Radius float64 // 当前半径，随档位变化
}

// SpeedMultiplier 返回当前档位的速度倍率（档位+1）
func (b *BombComponent) SpeedMultiplier() float64 {
	return float64(b.Stage + 1)
}
