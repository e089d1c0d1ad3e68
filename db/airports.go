package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"airport-distance/model"
)

// AirportStore 基于 gorm 的只读机场数据源
type AirportStore struct {
	db *gorm.DB
}

func NewAirportStore(db *gorm.DB) *AirportStore {
	return &AirportStore{db: db}
}

// FindByCode 按 IATA 代码查询，不存在时返回 (nil, nil)
func (s *AirportStore) FindByCode(ctx context.Context, code string) (*model.Airport, error) {
	var airport model.Airport
	err := s.db.WithContext(ctx).
		Where("iata_code = ? AND name <> ?", code, model.UnusableAirportName).
		Take(&airport).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

// ListDistinctCodes 返回去重后的全部 IATA 代码
func (s *AirportStore) ListDistinctCodes(ctx context.Context) ([]string, error) {
	var codes []string
	err := s.db.WithContext(ctx).
		Model(&model.Airport{}).
		Where("name <> ?", model.UnusableAirportName).
		Distinct("iata_code").
		Pluck("iata_code", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}
