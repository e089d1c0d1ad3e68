package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formula 距离计算公式
type Formula int

const (
	GreatCircle Formula = iota // 默认值
	Haversine
	Vincenty
)

var formulaNames = [...]string{
	GreatCircle: "great_circle",
	Haversine:   "haversine",
	Vincenty:    "vincenty",
}

func (f Formula) String() string {
	if f < 0 || int(f) >= len(formulaNames) {
		return fmt.Sprintf("Formula(%d)", int(f))
	}
	return formulaNames[f]
}

// ParseFormula 解析公式名称 (不区分大小写)
func ParseFormula(s string) (Formula, error) {
	for i, name := range formulaNames {
		if strings.EqualFold(s, name) {
			return Formula(i), nil
		}
	}
	return GreatCircle, fmt.Errorf("未知的计算公式: %q", s)
}

func (f Formula) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Formula) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFormula(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
