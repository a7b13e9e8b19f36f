// Package commissionvc - Test bucket hóa hiệu suất theo tháng.
package commissionvc

import (
	"testing"
	"time"

	commissionmodels "bioma_system/internal/api/commission/models"
)

func TestBucketMonthlyPerformance_ZeroFillDuThang(t *testing.T) {
	firstMonth := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	buckets := BucketMonthlyPerformance(nil, firstMonth, 3)
	if len(buckets) != 3 {
		t.Fatalf("kỳ vọng 3 bucket, nhận %d", len(buckets))
	}

	wantMonths := []string{"2026-01", "2026-02", "2026-03"}
	for i, want := range wantMonths {
		if buckets[i].Month != want {
			t.Errorf("bucket %d: kỳ vọng tháng %s, nhận %s", i, want, buckets[i].Month)
		}
		if buckets[i].OrderCount != 0 || buckets[i].TotalCommission != 0 {
			t.Errorf("bucket %s không có dữ liệu phải là 0, nhận %+v", want, buckets[i])
		}
	}
}

func TestBucketMonthlyPerformance_GomDungThangVaBoNgoaiKhoang(t *testing.T) {
	firstMonth := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	records := []commissionmodels.CommissionRecord{
		performanceRecord(201, 60, time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)),
		performanceRecord(202, 40, time.Date(2026, 2, 3, 9, 0, 0, 0, time.Local)),
		// Trước firstMonth, phải bị bỏ qua
		performanceRecord(200, 99, time.Date(2025, 12, 31, 23, 0, 0, 0, time.Local)),
	}

	buckets := BucketMonthlyPerformance(records, firstMonth, 2)
	if buckets[0].TotalCommission != 60 || buckets[0].OrderCount != 1 {
		t.Errorf("tháng 2026-01 kỳ vọng 60 / 1 đơn, nhận %+v", buckets[0])
	}
	if buckets[1].TotalCommission != 40 || buckets[1].OrderCount != 1 {
		t.Errorf("tháng 2026-02 kỳ vọng 40 / 1 đơn, nhận %+v", buckets[1])
	}
}

func TestBucketMonthlyPerformance_DemDonMotLanKhiCoHaiVai(t *testing.T) {
	firstMonth := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	createdAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	// Cùng một đơn: người này vừa là chuyên viên (60) vừa là trợ lý (15)
	professional := performanceRecord(301, 60, createdAt)
	professional.Role = commissionmodels.CommissionRoleProfessional
	assistant := performanceRecord(301, 15, createdAt)
	assistant.Role = commissionmodels.CommissionRoleAssistant

	buckets := BucketMonthlyPerformance([]commissionmodels.CommissionRecord{professional, assistant}, firstMonth, 1)
	if buckets[0].OrderCount != 1 {
		t.Errorf("hai vai trong cùng đơn vẫn đếm 1 đơn, nhận %d", buckets[0].OrderCount)
	}
	if buckets[0].TotalCommission != 75 {
		t.Errorf("tổng hoa hồng phải cộng cả hai vai (75), nhận %v", buckets[0].TotalCommission)
	}
}

func TestBucketMonthlyPerformance_LamTronHaiChuSo(t *testing.T) {
	firstMonth := time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)
	createdAt := time.Date(2026, 5, 5, 8, 0, 0, 0, time.Local)

	buckets := BucketMonthlyPerformance([]commissionmodels.CommissionRecord{
		performanceRecord(401, 0.1, createdAt),
		performanceRecord(402, 0.2, createdAt),
	}, firstMonth, 1)

	if buckets[0].TotalCommission != 0.3 {
		t.Errorf("tổng hoa hồng phải được làm tròn 2 chữ số (0.3), nhận %v", buckets[0].TotalCommission)
	}
}

// performanceRecord tạo một bản ghi hoa hồng tối thiểu cho test bucket.
func performanceRecord(orderNumber int64, commission float64, createdAt time.Time) commissionmodels.CommissionRecord {
	return commissionmodels.CommissionRecord{
		OrderNumber:     orderNumber,
		Role:            commissionmodels.CommissionRoleProfessional,
		CommissionValue: commission,
		CreatedAt:       createdAt.UnixMilli(),
	}
}
