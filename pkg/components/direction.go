package components

// Direction 玩家朝向，共 9 种（含静止）
type Direction int

const (
	// DirectionIdle 静止，使用默认朝向
	DirectionIdle Direction = iota
	DirectionUp
	DirectionUpRight
	DirectionRight
	DirectionDownRight
	DirectionDown
	DirectionDownLeft
	DirectionLeft
	DirectionUpLeft
)

var directionNames = [...]string{
	DirectionIdle:      "idle",
	DirectionUp:        "up",
	DirectionUpRight:   "up-right",
	DirectionRight:     "right",
	DirectionDownRight: "down-right",
	DirectionDown:      "down",
	DirectionDownLeft:  "down-left",
	DirectionLeft:      "left",
	DirectionUpLeft:    "up-left",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// DirectionFromDisplacement 将位移映射为朝向
//
// 只接受每个轴为 {-step, 0, +step} 的位移（方向键映射只会产生这 9 种）。
// 其他任何位移都退回 DirectionIdle。
func DirectionFromDisplacement(dx, dy, step float64) Direction {
	sx, okX := axisSign(dx, step)
	sy, okY := axisSign(dy, step)
	if !okX || !okY {
		return DirectionIdle
	}

	switch {
	case sx == 0 && sy == 0:
		return DirectionIdle
	case sx == 0 && sy < 0:
		return DirectionUp
	case sx > 0 && sy < 0:
		return DirectionUpRight
	case sx > 0 && sy == 0:
		return DirectionRight
	case sx > 0 && sy > 0:
		return DirectionDownRight
	case sx == 0 && sy > 0:
		return DirectionDown
	case sx < 0 && sy > 0:
		return DirectionDownLeft
	case sx < 0 && sy == 0:
		return DirectionLeft
	default:
		return DirectionUpLeft
	}
}

// axisSign 返回 v 是 -step / 0 / +step 中的哪一个
func axisSign(v, step float64) (int, bool) {
	switch v {
	case 0:
		return 0, true
	case step:
		return 1, true
	case -step:
		return -1, true
	}
	return 0, false
}

// Vector 返回朝向的单位方向（x 向右、y 向下，未归一化的 -1/0/1 分量）
// 静止返回 (0, 0)
func (d Direction) Vector() (int, int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionUpRight:
		return 1, -1
	case DirectionRight:
		return 1, 0
	case DirectionDownRight:
		return 1, 1
	case DirectionDown:
		return 0, 1
	case DirectionDownLeft:
		return -1, 1
	case DirectionLeft:
		return -1, 0
	case DirectionUpLeft:
		return -1, -1
	}
	return 0, 0
}
