package algo

import (
	"math"

	"airport-distance/model"
	"airport-distance/utils"
)

// GreatCircleCalculator 球面余弦定理
type GreatCircleCalculator struct {
	radiusKm float64
}

func NewGreatCircleCalculator(radiusKm float64) *GreatCircleCalculator {
	return &GreatCircleCalculator{radiusKm: radiusKm}
}

// CalculateDistance 计算两点间的大圆距离 (公里)
func (c *GreatCircleCalculator) CalculateDistance(from, to model.Coordinates) (float64, error) {
	// 同一个点时 acos 的参数可能因为舍入略小于 1，直接返回 0
	if from == to {
		return 0, nil
	}

	lat1 := utils.DegreesToRadians(from.Latitude)
	lon1 := utils.DegreesToRadians(from.Longitude)
	lat2 := utils.DegreesToRadians(to.Latitude)
	lon2 := utils.DegreesToRadians(to.Longitude)

	dLon := math.Abs(lon2 - lon1)

	cosAngle := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon)
	centralAngle := math.Acos(utils.Clamp(cosAngle, -1, 1))

	return c.radiusKm * centralAngle, nil
}
