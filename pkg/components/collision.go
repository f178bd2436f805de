package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心，Offset 用于微调
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度
	Height  float64 // 碰撞盒高度
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量，正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量，正值向下偏移
}

// Bounds 返回以 (x, y) 为中心时碰撞盒的 left, top, right, bottom
func (c *CollisionComponent) Bounds(x, y float64) (left, top, right, bottom float64) {
	cx := x + c.OffsetX
	cy := y + c.OffsetY
	return cx - c.Width/2, cy - c.Height/2, cx + c.Width/2, cy + c.Height/2
}
