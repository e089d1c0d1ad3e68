package algo

import "airport-distance/model"

// NewCalculator 根据公式和大地基准创建计算器
// 两个枚举都是封闭的，不存在失败的情况；构造开销很小，不做缓存
func NewCalculator(formula model.Formula, datum model.Datum) DistanceCalculator {
	e := datum.Ellipsoid()

	switch formula {
	case model.Haversine:
		return NewHaversineCalculator(e.RadiusKm)
	case model.Vincenty:
		return NewVincentyCalculator(e.RadiusKm, e.SemiMinorAxisKm, e.InverseFlattening)
	default:
		return NewGreatCircleCalculator(e.RadiusKm)
	}
}
