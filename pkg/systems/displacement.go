package systems

// Displacement 将方向输入映射为位移
// 每个按住的方向贡献 step 的位移，两轴独立累加，相反方向相互抵消
func Displacement(in DirectionalInput, step float64) (dx, dy float64) {
	if in.Up {
		dy -= step
	}
	if in.Down {
		dy += step
	}
	if in.Left {
		dx -= step
	}
	if in.Right {
		dx += step
	}
	return dx, dy
}
