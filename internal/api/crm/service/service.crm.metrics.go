// Package crmvc - Metrics denormalized của khách hàng.
//
// totalBilled, visitCount, lastVisitAt là cache tính từ order_contracts:
//   - totalBilled: tổng totalFinal của các đơn approved
//   - visitCount:  tổng số đơn mọi trạng thái
//   - lastVisitAt: createdAt của đơn gần nhất, mọi trạng thái
//
// Cập nhật best-effort sau mỗi thao tác đơn hàng; worker định kỳ và lazy
// backfill khi đọc đảm bảo hội tụ kể cả khi cập nhật trực tiếp thất bại.
package crmvc

import (
	"context"
	"time"

	basesvc "bioma_system/internal/api/base/service"
	crmmodels "bioma_system/internal/api/crm/models"
	ordermodels "bioma_system/internal/api/order/models"
	"bioma_system/internal/global"
	"bioma_system/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// ClientMetrics kết quả tính metrics từ danh sách đơn hàng của một khách.
type ClientMetrics struct {
	TotalBilled float64
	VisitCount  int
	LastVisitAt int64
}

// ComputeClientMetrics tính metrics từ danh sách đơn hàng (pure function).
// Chỉ đơn approved đóng góp vào TotalBilled; VisitCount và LastVisitAt
// tính trên mọi trạng thái, kể cả cancelled.
func ComputeClientMetrics(orders []ordermodels.OrderContract) ClientMetrics {
	var metrics ClientMetrics
	for _, order := range orders {
		metrics.VisitCount++
		if order.CreatedAt > metrics.LastVisitAt {
			metrics.LastVisitAt = order.CreatedAt
		}
		if order.Status == ordermodels.OrderStatusApproved {
			metrics.TotalBilled += order.TotalFinal
		}
	}
	return metrics
}

// RecalculateClientMetrics tính lại metrics của một khách từ order_contracts
// và ghi đè vào crm_clients. Trả về client sau khi cập nhật.
func (s *ClientService) RecalculateClientMetrics(ctx context.Context, cpf string) (crmmodels.Client, error) {
	cpf = global.NormalizeCPF(cpf)

	orders, err := s.findClientOrders(ctx, cpf)
	if err != nil {
		return crmmodels.Client{}, err
	}

	metrics := ComputeClientMetrics(orders)
	return s.UpdateOne(ctx, bson.M{"cpf": cpf}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"totalBilled":      metrics.TotalBilled,
			"visitCount":       metrics.VisitCount,
			"lastVisitAt":      metrics.LastVisitAt,
			"metricsUpdatedAt": time.Now().UnixMilli(),
		},
	}, nil)
}

// UpdateClientMetricsBestEffort tính lại metrics sau một thao tác đơn hàng.
// Thất bại chỉ được log, không trả lỗi — đơn hàng đã ghi thành công là
// nguồn sự thật, metrics sẽ hội tụ qua worker hoặc lazy backfill.
func (s *ClientService) UpdateClientMetricsBestEffort(ctx context.Context, cpf string) {
	if _, err := s.RecalculateClientMetrics(ctx, cpf); err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"cpf":   global.NormalizeCPF(cpf),
			"error": err.Error(),
		}).Warn("Cập nhật metrics khách hàng thất bại, chờ worker đồng bộ lại")
	}
}

// findClientOrders đọc toàn bộ đơn hàng của khách từ order_contracts.
func (s *ClientService) findClientOrders(ctx context.Context, cpf string) ([]ordermodels.OrderContract, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.OrderContracts)
	if !exist {
		return []ordermodels.OrderContract{}, nil
	}

	cursor, err := coll.Find(ctx, bson.M{"clientCpf": cpf})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []ordermodels.OrderContract
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
