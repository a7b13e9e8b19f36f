// Package commissionvc - Báo cáo hiệu suất chuyên viên theo tháng.
package commissionvc

import (
	"context"
	"fmt"
	"time"

	commissionmodels "bioma_system/internal/api/commission/models"
	"bioma_system/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthlyPerformance hiệu suất một tháng của một người trong sổ hoa hồng.
type MonthlyPerformance struct {
	Month           string  `json:"month"` // YYYY-MM
	OrderCount      int     `json:"orderCount"`
	TotalCommission float64 `json:"totalCommission"`
}

// GetMonthlyPerformance tổng hợp hoa hồng theo tháng cho một người, gồm cả
// vai chuyên viên lẫn vai trợ lý. Trả về đúng `months` bucket liên tục kết
// thúc ở tháng hiện tại — tháng không có hoa hồng vẫn xuất hiện với giá trị 0.
// Bucket hóa phía ứng dụng thay vì aggregation pipeline: dữ liệu một người
// trong vài tháng đủ nhỏ, và zero-fill trên pipeline phức tạp hơn nhiều.
func (s *CommissionService) GetMonthlyPerformance(ctx context.Context, professionalID primitive.ObjectID, months int) ([]MonthlyPerformance, error) {
	if months < 1 {
		months = 1
	}
	if months > 36 {
		months = 36
	}

	now := time.Now()
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -(months - 1), 0)

	records, err := s.Find(ctx, bson.M{
		"professionalId": professionalID,
		"createdAt":      bson.M{"$gte": firstMonth.UnixMilli()},
	}, nil)
	if err != nil {
		return nil, err
	}

	return BucketMonthlyPerformance(records, firstMonth, months), nil
}

// BucketMonthlyPerformance gom các bản ghi vào `months` bucket tháng liên
// tục bắt đầu từ firstMonth (pure function). Mỗi đơn đếm một lần cho
// OrderCount kể cả khi người đó có cả bản ghi chuyên viên và trợ lý trong
// cùng đơn.
func BucketMonthlyPerformance(records []commissionmodels.CommissionRecord, firstMonth time.Time, months int) []MonthlyPerformance {
	buckets := make([]MonthlyPerformance, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		month := firstMonth.AddDate(0, i, 0)
		key := fmt.Sprintf("%04d-%02d", month.Year(), int(month.Month()))
		buckets[i] = MonthlyPerformance{Month: key}
		index[key] = i
	}

	seenOrders := make(map[string]map[int64]bool, months)
	for _, record := range records {
		createdAt := time.UnixMilli(record.CreatedAt).In(firstMonth.Location())
		key := fmt.Sprintf("%04d-%02d", createdAt.Year(), int(createdAt.Month()))
		i, ok := index[key]
		if !ok {
			continue
		}
		buckets[i].TotalCommission += record.CommissionValue
		if seenOrders[key] == nil {
			seenOrders[key] = make(map[int64]bool)
		}
		if !seenOrders[key][record.OrderNumber] {
			seenOrders[key][record.OrderNumber] = true
			buckets[i].OrderCount++
		}
	}

	for i := range buckets {
		buckets[i].TotalCommission = utility.Round2(buckets[i].TotalCommission)
	}
	return buckets
}
