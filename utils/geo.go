package utils

import "math"

// DegreesToRadians 角度转弧度
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// Clamp 把 v 限制在 [lo, hi] 区间内
// 用于浮点误差可能把 acos 的参数推出定义域的场合
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
