package model

// Coordinates 代表一个经纬度点 (十进制度)
// 不校验范围，超出范围的值由具体的计算公式自行处理
type Coordinates struct {
	Latitude  float64 `json:"latitude"`  // 纬度
	Longitude float64 `json:"longitude"` // 经度
}

// NewCoordinates 创建一个坐标点
func NewCoordinates(latitude, longitude float64) Coordinates {
	return Coordinates{Latitude: latitude, Longitude: longitude}
}
