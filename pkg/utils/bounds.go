package utils

// CheckBound 判断矩形是否在 [0, width] x [0, height] 场地内
//
// 返回:
//   - xInside: 横向是否在场地内（left >= 0 且 right <= width）
//   - yInside: 纵向是否在场地内（top >= 0 且 bottom <= height）
func CheckBound(left, top, right, bottom, width, height float64) (xInside, yInside bool) {
	xInside = left >= 0 && right <= width
	yInside = top >= 0 && bottom <= height
	return xInside, yInside
}

// RectsOverlap 判断两个轴对齐矩形是否重叠
// 边界包含在内：刚好接触也算重叠
func RectsOverlap(l1, t1, r1, b1, l2, t2, r2, b2 float64) bool {
	return r1 >= l2 &&
		l1 <= r2 &&
		b1 >= t2 &&
		t1 <= b2
}

// ClampCenter 把中心坐标限制在 [half, size-half]，使宽 2*half 的盒子落在 [0, size] 内
// 盒子比场地还宽时原样返回
func ClampCenter(c, half, size float64) float64 {
	if 2*half > size {
		return c
	}
	if c < half {
		return half
	}
	if c > size-half {
		return size - half
	}
	return c
}
