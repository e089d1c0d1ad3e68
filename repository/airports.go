package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"

	"airport-distance/cache"
	"airport-distance/model"
)

// ErrStoreFault 底层存储访问失败，属于暂时性错误，调用方可以重试
var ErrStoreFault = errors.New("机场数据存储访问失败")

// DefaultAirportsCapacity 机场缓存默认容量 (略大于数据集的记录数)
const DefaultAirportsCapacity = 9300

// allCodesKey 代码列表缓存的唯一 key
const allCodesKey = "*"

// AirportStore 只读的机场数据源
// 两个查询都必须排除名称为 model.UnusableAirportName 的记录
type AirportStore interface {
	// FindByCode 按 IATA 代码查询，不存在时返回 (nil, nil)
	FindByCode(ctx context.Context, code string) (*model.Airport, error)
	// ListDistinctCodes 返回去重后的全部 IATA 代码
	ListDistinctCodes(ctx context.Context) ([]string, error)
}

// AirportsRepository 机场查询接口
type AirportsRepository interface {
	FetchAirport(ctx context.Context, code string) (*model.Airport, error)
	UniqueCodes(ctx context.Context) ([]string, error)
}

// CachedAirports 在只读存储前面加一层旁路缓存
// 数据集在进程生命周期内视为不变，缓存条目写入后不会失效
type CachedAirports struct {
	store    AirportStore
	airports *cache.Sharded[*model.Airport]
	codes    *cache.Sharded[[]string]
}

// NewCachedAirports 创建带缓存的仓库，capacity <= 0 时使用默认容量
func NewCachedAirports(store AirportStore, capacity, shards int) *CachedAirports {
	if capacity <= 0 {
		capacity = DefaultAirportsCapacity
	}
	return &CachedAirports{
		store:    store,
		airports: cache.NewSharded[*model.Airport](capacity, shards),
		codes:    cache.NewSharded[[]string](1, 1),
	}
}

// FetchAirport 按代码获取机场，不存在时返回 (nil, nil)
// "不存在" 同样会被缓存，避免重复查询存储
func (r *CachedAirports) FetchAirport(ctx context.Context, code string) (*model.Airport, error) {
	if airport, ok := r.airports.Get(code); ok {
		return airport, nil
	}

	airport, err := r.store.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: 查询机场 %s: %w", ErrStoreFault, code, err)
	}

	r.airports.Set(code, airport)
	log.WithFields(log.Fields{"code": code, "found": airport != nil}).Debug("机场缓存未命中，已回源")

	return airport, nil
}

// UniqueCodes 获取去重后的全部机场代码，顺序与存储返回的一致
func (r *CachedAirports) UniqueCodes(ctx context.Context) ([]string, error) {
	if codes, ok := r.codes.Get(allCodesKey); ok {
		return slices.Clone(codes), nil
	}

	codes, err := r.store.ListDistinctCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: 查询机场代码列表: %w", ErrStoreFault, err)
	}
	codes = dedupe(codes)

	r.codes.Set(allCodesKey, codes)
	log.WithField("count", len(codes)).Debug("机场代码列表已缓存")

	return slices.Clone(codes), nil
}

// dedupe 去重并保持原有顺序
func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
