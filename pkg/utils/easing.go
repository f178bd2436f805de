package utils

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 超出范围的输入先被截断。

// clamp01 把值限制在 [0, 1]
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// FadeProgress 计算淡入进度
//
// 参数:
//   - elapsed: 已经过的时间（秒）
//   - duration: 淡入总时长（秒），<= 0 表示立即完成
//
// 返回: EaseOutQuad 缓动后的进度 ∈ [0, 1]
func FadeProgress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return EaseOutQuad(elapsed / duration)
}
