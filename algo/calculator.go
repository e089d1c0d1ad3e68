package algo

import (
	"fmt"

	"airport-distance/model"
)

// DistanceCalculator 距离计算策略
// 球面公式永远不会失败，但为了和 Vincenty 统一返回类型，同样返回 error
type DistanceCalculator interface {
	CalculateDistance(from, to model.Coordinates) (float64, error)
}

// ConvergenceError Vincenty 迭代达到上限仍未收敛 (通常是接近对跖点的两点)
// 同样的输入结果是确定的，重试没有意义，可以改用非迭代公式
type ConvergenceError struct {
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("距离计算失败: 迭代 %d 次后仍未收敛", e.Iterations)
}
