package algo

import (
	"errors"
	"fmt"

	"airport-distance/model"
)

// ErrInvalidRoute 路线至少需要两个点才能构成一段
var ErrInvalidRoute = errors.New("路线至少需要两个点")

// RoutePoint 路线上的一个点，Code 为空表示直接给出的坐标
type RoutePoint struct {
	Code        string            `json:"iata_code,omitempty"`
	Coordinates model.Coordinates `json:"coordinates"`
}

// Leg 路线中相邻两点之间的一段
type Leg struct {
	From     RoutePoint `json:"from"`
	To       RoutePoint `json:"to"`
	Distance float64    `json:"distance"` // 公里
}

// RouteResult 路线计算结果
type RouteResult struct {
	Legs          []Leg   // 按点的顺序排列
	TotalDistance float64 // 总距离 (公里)
}

// PointsFromCoordinates 把坐标序列转换为路线点
func PointsFromCoordinates(coords []model.Coordinates) []RoutePoint {
	points := make([]RoutePoint, len(coords))
	for i, c := range coords {
		points[i] = RoutePoint{Coordinates: c}
	}
	return points
}

// PointsFromAirports 把机场序列转换为带代码的路线点
func PointsFromAirports(airports []*model.Airport) []RoutePoint {
	points := make([]RoutePoint, len(airports))
	for i, a := range airports {
		points[i] = RoutePoint{Code: a.IATACode, Coordinates: a.Coordinates()}
	}
	return points
}

// CalculateRoute 依次计算每一段的距离并求和
// 任何一段失败都会原样返回该错误，不返回部分结果
func CalculateRoute(points []RoutePoint, calculator DistanceCalculator) (RouteResult, error) {
	if len(points) < 2 {
		return RouteResult{}, ErrInvalidRoute
	}

	legs := make([]Leg, 0, len(points)-1)
	var total float64

	for i := 0; i < len(points)-1; i++ {
		from, to := points[i], points[i+1]

		distance, err := calculator.CalculateDistance(from.Coordinates, to.Coordinates)
		if err != nil {
			return RouteResult{}, err
		}

		legs = append(legs, Leg{From: from, To: to, Distance: distance})
		total += distance
	}

	return RouteResult{Legs: legs, TotalDistance: total}, nil
}

// FormatRoute 格式化路线结果为可读字符串
func FormatRoute(result RouteResult) string {
	if len(result.Legs) == 0 {
		return "空路线"
	}

	output := fmt.Sprintf("总距离: %.3f 公里, 共 %d 段\n", result.TotalDistance, len(result.Legs))
	for i, leg := range result.Legs {
		output += fmt.Sprintf("%d. %s -> %s: %.3f 公里\n", i+1, describePoint(leg.From), describePoint(leg.To), leg.Distance)
	}

	return output
}

func describePoint(p RoutePoint) string {
	if p.Code != "" {
		return fmt.Sprintf("%s (%.4f, %.4f)", p.Code, p.Coordinates.Latitude, p.Coordinates.Longitude)
	}
	return fmt.Sprintf("(%.4f, %.4f)", p.Coordinates.Latitude, p.Coordinates.Longitude)
}
