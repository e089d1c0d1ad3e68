// Package service 对外暴露的距离计算与机场查询操作，供 HTTP 层调用
package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"airport-distance/algo"
	"airport-distance/model"
	"airport-distance/repository"
)

// MissingAirportsError 路线中有机场代码在数据集中不存在
type MissingAirportsError struct {
	Codes []string
}

func (e *MissingAirportsError) Error() string {
	return fmt.Sprintf("以下机场不存在: %s", strings.Join(e.Codes, ", "))
}

// DistanceService 距离计算服务
// 计算器是无状态的，每次请求现建；唯一共享的可变状态是仓库里的缓存
type DistanceService struct {
	airports repository.AirportsRepository
}

func NewDistanceService(airports repository.AirportsRepository) *DistanceService {
	return &DistanceService{airports: airports}
}

// CalculateRoute 计算坐标路线的各段距离和总距离
func (s *DistanceService) CalculateRoute(points []model.Coordinates, formula model.Formula, datum model.Datum) (algo.RouteResult, error) {
	if len(points) < 2 {
		return algo.RouteResult{}, algo.ErrInvalidRoute
	}
	return algo.CalculateRoute(algo.PointsFromCoordinates(points), algo.NewCalculator(formula, datum))
}

// CalculateAirportRoute 先把机场代码解析为坐标，再计算路线
// 所有缺失的代码会一起在 *MissingAirportsError 中返回
func (s *DistanceService) CalculateAirportRoute(ctx context.Context, codes []string, formula model.Formula, datum model.Datum) (algo.RouteResult, error) {
	if len(codes) < 2 {
		return algo.RouteResult{}, algo.ErrInvalidRoute
	}

	airports, err := s.resolveAll(ctx, codes)
	if err != nil {
		return algo.RouteResult{}, err
	}

	var missing []string
	for i, airport := range airports {
		if airport == nil {
			missing = append(missing, codes[i])
		}
	}
	if len(missing) > 0 {
		return algo.RouteResult{}, &MissingAirportsError{Codes: missing}
	}

	return algo.CalculateRoute(algo.PointsFromAirports(airports), algo.NewCalculator(formula, datum))
}

// resolveAll 并发解析全部机场代码，结果顺序与 codes 一致
func (s *DistanceService) resolveAll(ctx context.Context, codes []string) ([]*model.Airport, error) {
	airports := make([]*model.Airport, len(codes))

	g, ctx := errgroup.WithContext(ctx)
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			airport, err := s.airports.FetchAirport(ctx, code)
			if err != nil {
				return err
			}
			airports[i] = airport
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return airports, nil
}

// ResolveAirport 按代码查询机场，不存在时返回 (nil, nil)
func (s *DistanceService) ResolveAirport(ctx context.Context, code string) (*model.Airport, error) {
	return s.airports.FetchAirport(ctx, code)
}

// ListKnownCodes 返回全部已知的机场代码
func (s *DistanceService) ListKnownCodes(ctx context.Context) ([]string, error) {
	return s.airports.UniqueCodes(ctx)
}
