// Package cache 提供分片的并发安全内存缓存
//
// 每个分片有自己的读写锁，不相关的 key 之间互不阻塞。
// 条目写入后不会过期，只有分片写满时才会淘汰任意一个已有条目。
// 不做 single-flight：同一个 key 的并发未命中可能各自回源并各自写入，
// 缓存的值必须是可重复计算的。
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultShards 默认分片数
const DefaultShards = 16

type shard[V any] struct {
	mu       sync.RWMutex
	items    map[string]V
	capacity int
}

// Sharded 按 key 的哈希值分片的缓存
type Sharded[V any] struct {
	shards []*shard[V]
}

// NewSharded 创建缓存，capacity 是总条目上限，会平均分到各个分片
func NewSharded[V any](capacity, shards int) *Sharded[V] {
	if shards <= 0 {
		shards = DefaultShards
	}
	if capacity < shards {
		shards = max(capacity, 1)
	}
	perShard := (max(capacity, 1) + shards - 1) / shards

	c := &Sharded[V]{shards: make([]*shard[V], shards)}
	for i := range c.shards {
		c.shards[i] = &shard[V]{
			items:    make(map[string]V, perShard),
			capacity: perShard,
		}
	}
	return c
}

func (c *Sharded[V]) shardFor(key string) *shard[V] {
	return c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

// Get 读取缓存
func (c *Sharded[V]) Get(key string) (V, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// Set 写入缓存，同一个 key 后写覆盖先写
func (c *Sharded[V]) Set(key string, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; !exists && len(s.items) >= s.capacity {
		// map 的遍历顺序是随机的，淘汰第一个即可
		for victim := range s.items {
			delete(s.items, victim)
			break
		}
	}
	s.items[key] = value
}

// Len 当前条目总数
func (c *Sharded[V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}
