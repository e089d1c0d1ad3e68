package db

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"airport-distance/model"
)

// airportFields Global Airport Database 每行的字段数
// ICAO:IATA:名称:城市:国家:纬度度:分:秒:方向:经度度:分:秒:方向:海拔:十进制纬度:十进制经度
const airportFields = 16

// ParseAirportDatabase 解析冒号分隔的 Global Airport Database 文件
// 格式错误的行不会中断解析，而是作为 skipped 返回
func ParseAirportDatabase(r io.Reader) (airports []model.Airport, skipped []error, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		airport, parseErr := parseAirportLine(line)
		if parseErr != nil {
			skipped = append(skipped, fmt.Errorf("第 %d 行: %w", lineNo, parseErr))
			continue
		}
		airports = append(airports, airport)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return airports, skipped, nil
}

func parseAirportLine(line string) (model.Airport, error) {
	fields := strings.Split(line, ":")
	if len(fields) != airportFields {
		return model.Airport{}, fmt.Errorf("字段数应为 %d，实际为 %d", airportFields, len(fields))
	}

	p := fieldParser{fields: fields}
	airport := model.Airport{
		ICAOCode:   fields[0],
		IATACode:   fields[1],
		Name:       fields[2],
		City:       fields[3],
		Country:    fields[4],
		LatDeg:     p.parseInt(5),
		LatMin:     p.parseInt(6),
		LatSec:     p.parseInt(7),
		LatDir:     fields[8],
		LonDeg:     p.parseInt(9),
		LonMin:     p.parseInt(10),
		LonSec:     p.parseInt(11),
		LonDir:     fields[12],
		Altitude:   p.parseInt(13),
		LatDecimal: p.parseFloat(14),
		LonDecimal: p.parseFloat(15),
	}
	if p.err != nil {
		return model.Airport{}, p.err
	}
	return airport, nil
}

// fieldParser 记录第一个解析错误，后续调用直接返回零值
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) parseInt(i int) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(p.fields[i]), 10, 64)
	if err != nil {
		p.err = fmt.Errorf("第 %d 个字段: %w", i+1, err)
	}
	return v
}

func (p *fieldParser) parseFloat(i int) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.fields[i]), 64)
	if err != nil {
		p.err = fmt.Errorf("第 %d 个字段: %w", i+1, err)
	}
	return v
}
