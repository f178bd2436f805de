package components

// VelocityComponent 每帧位移（倍率前）
type VelocityComponent struct {
	VX float64
	VY float64
}
