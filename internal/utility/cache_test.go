// Package utility - Test cache TTL và giới hạn entries.
package utility

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour, 10)
	defer cache.Stop()

	cache.Set("key", 42)
	value, found := cache.Get("key")
	if !found {
		t.Fatal("key vừa set phải tồn tại")
	}
	if value.(int) != 42 {
		t.Errorf("giá trị sai: %v", value)
	}

	if _, found := cache.Get("missing"); found {
		t.Error("key chưa set không được tồn tại")
	}
}

func TestCache_HetHanTheoTTL(t *testing.T) {
	cache := NewCache(30*time.Millisecond, time.Hour, 10)
	defer cache.Stop()

	cache.Set("key", "value")
	time.Sleep(60 * time.Millisecond)

	if _, found := cache.Get("key"); found {
		t.Error("entry quá TTL phải coi như không tồn tại")
	}
	// Get trên entry hết hạn phải dọn luôn entry đó
	if cache.Len() != 0 {
		t.Errorf("entry hết hạn phải bị xóa khi đọc, còn %d entries", cache.Len())
	}
}

func TestCache_GioiHanSoEntries(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour, 2)
	defer cache.Stop()

	cache.Set("a", 1)
	time.Sleep(5 * time.Millisecond)
	cache.Set("b", 2)
	time.Sleep(5 * time.Millisecond)
	cache.Set("c", 3)

	if cache.Len() != 2 {
		t.Fatalf("cache đầy phải giữ đúng maxEntries (2), còn %d", cache.Len())
	}
	// "a" hết hạn sớm nhất nên bị loại
	if _, found := cache.Get("a"); found {
		t.Error("entry gần hết hạn nhất phải bị loại khi cache đầy")
	}
	if _, found := cache.Get("c"); !found {
		t.Error("entry mới nhất phải còn trong cache")
	}
}

func TestCache_GhiDeKhongTonThemCho(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour, 2)
	defer cache.Stop()

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("a", 10)

	if cache.Len() != 2 {
		t.Errorf("ghi đè key có sẵn không được tăng số entries, còn %d", cache.Len())
	}
	value, _ := cache.Get("a")
	if value.(int) != 10 {
		t.Errorf("ghi đè phải cập nhật giá trị, nhận %v", value)
	}
}

func TestCache_Delete(t *testing.T) {
	cache := NewCache(time.Minute, time.Hour, 10)
	defer cache.Stop()

	cache.Set("key", 1)
	cache.Delete("key")
	if _, found := cache.Get("key"); found {
		t.Error("key đã xóa không được tồn tại")
	}
	// Xóa key không tồn tại không được panic
	cache.Delete("missing")
}

func TestCache_StopGoiNhieuLan(t *testing.T) {
	cache := NewCache(time.Minute, time.Millisecond, 10)
	cache.Stop()
	cache.Stop() // lần hai không được panic
}
