package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Datum 参考椭球 (大地基准)
type Datum int

const (
	WGS84 Datum = iota // 默认值
	NAD27
	NAD83
)

// Ellipsoid 参考椭球的三个物理常数
type Ellipsoid struct {
	RadiusKm          float64 // 长半轴 (公里)，球面公式也用它作为地球半径
	SemiMinorAxisKm   float64 // 短半轴 (公里)
	InverseFlattening float64 // 扁率 f = 1/反扁率
}

// ellipsoids 进程内只读常量表
var ellipsoids = [...]Ellipsoid{
	WGS84: {RadiusKm: 6378.137, SemiMinorAxisKm: 6356.752314245, InverseFlattening: 1 / 298.257223563},
	NAD27: {RadiusKm: 6378.2064, SemiMinorAxisKm: 6356.5838, InverseFlattening: 1 / 294.9786982},
	NAD83: {RadiusKm: 6378.137, SemiMinorAxisKm: 6356.752314140347, InverseFlattening: 1 / 298.257222101},
}

var datumNames = [...]string{
	WGS84: "wgs84",
	NAD27: "nad27",
	NAD83: "nad83",
}

// Ellipsoid 查表获取椭球常数
func (d Datum) Ellipsoid() Ellipsoid {
	return ellipsoids[d]
}

func (d Datum) String() string {
	if d < 0 || int(d) >= len(datumNames) {
		return fmt.Sprintf("Datum(%d)", int(d))
	}
	return datumNames[d]
}

// ParseDatum 解析基准名称 (不区分大小写)
func ParseDatum(s string) (Datum, error) {
	for i, name := range datumNames {
		if strings.EqualFold(s, name) {
			return Datum(i), nil
		}
	}
	return WGS84, fmt.Errorf("未知的大地基准: %q", s)
}

func (d Datum) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Datum) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDatum(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
