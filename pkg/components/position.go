package components

// PositionComponent 实体中心点坐标（场地坐标系，原点在左上角）
type PositionComponent struct {
	X float64
	Y float64
}
