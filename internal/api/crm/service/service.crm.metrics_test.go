// Package crmvc - Test tính metrics khách hàng từ danh sách đơn.
package crmvc

import (
	"testing"
	"time"

	ordermodels "bioma_system/internal/api/order/models"
)

func TestComputeClientMetrics_ChiDonApprovedVaoTotalBilled(t *testing.T) {
	t1 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local).UnixMilli()
	t2 := time.Date(2026, 2, 5, 15, 0, 0, 0, time.Local).UnixMilli()
	t3 := time.Date(2026, 3, 1, 11, 0, 0, 0, time.Local).UnixMilli()

	orders := []ordermodels.OrderContract{
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 100, CreatedAt: t1},
		{Status: ordermodels.OrderStatusCancelled, TotalFinal: 30, CreatedAt: t2},
		{Status: ordermodels.OrderStatusPending, TotalFinal: 50, CreatedAt: t3},
	}

	metrics := ComputeClientMetrics(orders)
	if metrics.TotalBilled != 100 {
		t.Errorf("totalBilled chỉ tính đơn approved: kỳ vọng 100, nhận %v", metrics.TotalBilled)
	}
	if metrics.VisitCount != 3 {
		t.Errorf("visitCount tính mọi trạng thái: kỳ vọng 3, nhận %d", metrics.VisitCount)
	}
	if metrics.LastVisitAt != t3 {
		t.Errorf("lastVisitAt phải là đơn gần nhất (%d), nhận %d", t3, metrics.LastVisitAt)
	}
}

func TestComputeClientMetrics_KhachChuaCoDon(t *testing.T) {
	metrics := ComputeClientMetrics(nil)
	if metrics.TotalBilled != 0 || metrics.VisitCount != 0 || metrics.LastVisitAt != 0 {
		t.Errorf("khách chưa có đơn phải là zero metrics, nhận %+v", metrics)
	}
}

func TestComputeClientMetrics_LastVisitKhongPhuThuocThuTu(t *testing.T) {
	newest := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	orders := []ordermodels.OrderContract{
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 10, CreatedAt: newest},
		{Status: ordermodels.OrderStatusApproved, TotalFinal: 20, CreatedAt: newest - 1000},
	}

	metrics := ComputeClientMetrics(orders)
	if metrics.LastVisitAt != newest {
		t.Errorf("lastVisitAt phải là max(createdAt) bất kể thứ tự, nhận %d", metrics.LastVisitAt)
	}
	if metrics.TotalBilled != 30 {
		t.Errorf("totalBilled phải cộng mọi đơn approved (30), nhận %v", metrics.TotalBilled)
	}
}
