package utility

import (
	"sync"
	"time"
)

// cacheEntry một giá trị trong cache kèm thời điểm hết hạn
type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache quản lý cache theo TTL, có giới hạn số lượng entries.
// Mỗi entry có thời điểm hết hạn riêng, kiểm tra khi đọc; vòng dọn dẹp
// định kỳ xóa entries đã hết hạn. Khi đầy, entry gần hết hạn nhất bị loại.
type Cache struct {
	items      map[string]cacheEntry
	mu         sync.RWMutex
	ttl        time.Duration
	cleanup    time.Duration
	maxEntries int
	stopChan   chan struct{}
	stopOnce   sync.Once
}

// NewCache tạo một instance mới của Cache.
// maxEntries <= 0 nghĩa là mặc định 10000.
func NewCache(ttl, cleanup time.Duration, maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = 10000
	}
	cache := &Cache{
		items:      make(map[string]cacheEntry),
		ttl:        ttl,
		cleanup:    cleanup,
		maxEntries: maxEntries,
		stopChan:   make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với TTL mặc định
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
		c.evictLocked()
	}
	c.items[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get lấy giá trị từ cache. Entry đã hết hạn coi như không tồn tại.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

// Delete xóa một key khỏi cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len trả về số entries hiện có (kể cả entries đã hết hạn chưa dọn)
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// evictLocked giải phóng chỗ: xóa hết entries hết hạn, nếu vẫn đầy
// thì loại entry gần hết hạn nhất. Caller phải giữ lock.
func (c *Cache) evictLocked() {
	now := time.Now()
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
	if len(c.items) < c.maxEntries {
		return
	}
	var oldestKey string
	var oldestAt time.Time
	for k, e := range c.items {
		if oldestKey == "" || e.expiresAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}

// cleanupLoop dọn entries hết hạn định kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, e := range c.items {
				if now.After(e.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}

// Stop dừng vòng dọn dẹp. Gọi khi shutdown.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}
