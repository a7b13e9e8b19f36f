// Package models - Test ngưỡng cảnh báo tồn kho.
package models

import "testing"

func TestProductIsLowStock(t *testing.T) {
	cases := []struct {
		name  string
		stock int
		min   int
		want  bool
	}{
		{"dưới ngưỡng", 2, 5, true},
		{"bằng ngưỡng", 5, 5, true},
		{"trên ngưỡng", 6, 5, false},
		{"hết hàng", 0, 5, true},
		{"ngưỡng 0 còn hàng", 1, 0, false},
		{"ngưỡng 0 hết hàng", 0, 0, true},
	}
	for _, tc := range cases {
		product := Product{Stock: tc.stock, MinStock: tc.min}
		if got := product.IsLowStock(); got != tc.want {
			t.Errorf("%s: stock=%d minStock=%d kỳ vọng %v, nhận %v",
				tc.name, tc.stock, tc.min, tc.want, got)
		}
	}
}
