package algo

import (
	"math"

	"airport-distance/model"
	"airport-distance/utils"
)

// HaversineCalculator Haversine 公式，小距离时比球面余弦定理数值更稳定
type HaversineCalculator struct {
	radiusKm float64
}

func NewHaversineCalculator(radiusKm float64) *HaversineCalculator {
	return &HaversineCalculator{radiusKm: radiusKm}
}

// CalculateDistance 计算两点间球面距离 (公里)
func (c *HaversineCalculator) CalculateDistance(from, to model.Coordinates) (float64, error) {
	lat1 := utils.DegreesToRadians(from.Latitude)
	lon1 := utils.DegreesToRadians(from.Longitude)
	lat2 := utils.DegreesToRadians(to.Latitude)
	lon2 := utils.DegreesToRadians(to.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	// a = sin²(Δlat/2) + cos(lat1) * cos(lat2) * sin²(Δlon/2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// c = 2 * asin(√a)
	centralAngle := 2 * math.Asin(math.Sqrt(utils.Clamp(a, 0, 1)))

	return c.radiusKm * centralAngle, nil
}
