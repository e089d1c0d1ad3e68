package model

// UnusableAirportName 数据集中表示"不可用"记录的名称，查询时一律排除
const UnusableAirportName = "N/A"

// Airport 对应机场数据表中的一条记录 (只读)
// 度分秒字段只保留来源信息，距离计算使用十进制坐标
type Airport struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	ICAOCode   string  `json:"icao_code" gorm:"column:icao_code"`
	IATACode   string  `json:"iata_code" gorm:"column:iata_code;index"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	LatDeg     int64   `json:"lat_deg"`
	LatMin     int64   `json:"lat_min"`
	LatSec     int64   `json:"lat_sec"`
	LatDir     string  `json:"lat_dir"`
	LonDeg     int64   `json:"lon_deg"`
	LonMin     int64   `json:"lon_min"`
	LonSec     int64   `json:"lon_sec"`
	LonDir     string  `json:"lon_dir"`
	Altitude   int64   `json:"altitude"`
	LatDecimal float64 `json:"lat_decimal"`
	LonDecimal float64 `json:"lon_decimal"`
}

// TableName 表名固定为 airports
func (Airport) TableName() string {
	return "airports"
}

// Coordinates 机场的十进制坐标
func (a *Airport) Coordinates() Coordinates {
	return Coordinates{Latitude: a.LatDecimal, Longitude: a.LonDecimal}
}
