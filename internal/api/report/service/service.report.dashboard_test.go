// Package reportvc - Test bucket hóa heatmap và báo cáo tháng.
package reportvc

import (
	"testing"
	"time"

	ordermodels "bioma_system/internal/api/order/models"
	schedulemodels "bioma_system/internal/api/schedule/models"
)

func TestBucketHeatmap_ZeroFillVaCongThucIntensity(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local)

	appointments := []schedulemodels.Appointment{
		{Date: "2026-03-01"},
		{Date: "2026-03-01"},
		{Date: "2026-03-02"},
		// Ngoài khoảng, phải bị bỏ qua
		{Date: "2026-03-05"},
	}
	orders := []ordermodels.OrderContract{
		approvedOrderAt(time.Date(2026, 3, 2, 14, 30, 0, 0, time.Local)),
		// Đơn chưa duyệt không tính vào heatmap
		{Status: ordermodels.OrderStatusPending, CreatedAt: time.Date(2026, 3, 2, 15, 0, 0, 0, time.Local).UnixMilli()},
		// Ngoài khoảng
		approvedOrderAt(time.Date(2026, 3, 4, 9, 0, 0, 0, time.Local)),
	}

	days := BucketHeatmap(from, to, orders, appointments)
	if len(days) != 3 {
		t.Fatalf("kỳ vọng 3 ngày liên tục, nhận %d", len(days))
	}

	if days[0].Date != "2026-03-01" || days[0].Appointments != 2 || days[0].ApprovedOrders != 0 {
		t.Errorf("ngày 01 sai: %+v", days[0])
	}
	if days[0].Intensity != 2 {
		t.Errorf("intensity ngày 01 = 2 lịch hẹn, nhận %d", days[0].Intensity)
	}

	if days[1].Appointments != 1 || days[1].ApprovedOrders != 1 {
		t.Errorf("ngày 02 sai: %+v", days[1])
	}
	// intensity = appointments + 2×approvedOrders
	if days[1].Intensity != 3 {
		t.Errorf("intensity ngày 02 kỳ vọng 3 (1 + 2×1), nhận %d", days[1].Intensity)
	}

	if days[2].Intensity != 0 {
		t.Errorf("ngày 03 không hoạt động phải có intensity 0, nhận %d", days[2].Intensity)
	}
}

func TestBucketHeatmap_MotNgayDuyNhat(t *testing.T) {
	day := time.Date(2026, 7, 10, 0, 0, 0, 0, time.Local)
	days := BucketHeatmap(day, day, nil, []schedulemodels.Appointment{{Date: "2026-07-10"}})
	if len(days) != 1 {
		t.Fatalf("from = to phải trả về đúng 1 bucket, nhận %d", len(days))
	}
	if days[0].Appointments != 1 {
		t.Errorf("lịch hẹn trong ngày phải được đếm, nhận %+v", days[0])
	}
}

func TestBucketMonthlySummary_DoanhThuChiTinhDonApproved(t *testing.T) {
	orders := []ordermodels.OrderContract{
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 100, CreatedAt: monthMs(2026, 1)},
		{Status: ordermodels.OrderStatusPending, TotalFinal: 50, CreatedAt: monthMs(2026, 1)},
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 200.5, CreatedAt: monthMs(2026, 3)},
		// Năm khác phải bị bỏ qua
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 999, CreatedAt: monthMs(2025, 12)},
	}
	clientCreatedAts := []int64{
		monthMs(2026, 1),
		monthMs(2026, 2),
		monthMs(2026, 2),
		monthMs(2025, 6),
	}

	months := BucketMonthlySummary(2026, orders, clientCreatedAts)
	if len(months) != 12 {
		t.Fatalf("báo cáo năm phải có đủ 12 tháng, nhận %d", len(months))
	}
	if months[0].Month != "2026-01" || months[11].Month != "2026-12" {
		t.Errorf("nhãn tháng sai: %s ... %s", months[0].Month, months[11].Month)
	}

	if months[0].Revenue != 100 {
		t.Errorf("doanh thu tháng 1 chỉ tính đơn approved (100), nhận %v", months[0].Revenue)
	}
	if months[0].OrderCount != 2 {
		t.Errorf("orderCount tháng 1 tính mọi trạng thái (2), nhận %d", months[0].OrderCount)
	}
	if months[2].Revenue != 200.5 {
		t.Errorf("doanh thu tháng 3 kỳ vọng 200.5, nhận %v", months[2].Revenue)
	}

	if months[0].NewClients != 1 || months[1].NewClients != 2 {
		t.Errorf("newClients kỳ vọng tháng 1 = 1, tháng 2 = 2, nhận %d / %d",
			months[0].NewClients, months[1].NewClients)
	}

	for i := 3; i < 12; i++ {
		if months[i].Revenue != 0 || months[i].OrderCount != 0 || months[i].NewClients != 0 {
			t.Errorf("tháng %s không có dữ liệu phải là 0, nhận %+v", months[i].Month, months[i])
		}
	}
}

func TestBucketMonthlySummary_LamTronDoanhThu(t *testing.T) {
	orders := []ordermodels.OrderContract{
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 0.1, CreatedAt: monthMs(2026, 4)},
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 0.2, CreatedAt: monthMs(2026, 4)},
	}

	months := BucketMonthlySummary(2026, orders, nil)
	if months[3].Revenue != 0.3 {
		t.Errorf("doanh thu phải được làm tròn 2 chữ số (0.3), nhận %v", months[3].Revenue)
	}
}

// approvedOrderAt tạo đơn approved với createdAt tại thời điểm cho trước.
func approvedOrderAt(at time.Time) ordermodels.OrderContract {
	return ordermodels.OrderContract{
		Status:    ordermodels.OrderStatusApproved,
		CreatedAt: at.UnixMilli(),
	}
}

// monthMs trả về một thời điểm giữa tháng dạng Unix ms.
func monthMs(year, month int) int64 {
	return time.Date(year, time.Month(month), 15, 12, 0, 0, 0, time.Local).UnixMilli()
}
