package worker

import (
	"context"
	"time"

	crmmodels "bioma_system/internal/api/crm/models"
	crmvc "bioma_system/internal/api/crm/service"
	"bioma_system/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClientMetricsWorker đồng bộ metrics khách hàng định kỳ.
// Bắt các khách bị lỡ cập nhật best-effort: metrics chưa từng tính
// (metricsUpdatedAt = 0) hoặc đã cũ hơn staleAfter. Mỗi lần chạy xử lý
// tối đa batchSize khách, khách cũ nhất trước.
type ClientMetricsWorker struct {
	clientService *crmvc.ClientService
	interval      time.Duration
	staleAfter    time.Duration
	batchSize     int
}

// NewClientMetricsWorker tạo mới ClientMetricsWorker.
func NewClientMetricsWorker(interval time.Duration, batchSize int) (*ClientMetricsWorker, error) {
	clientService, err := crmvc.NewClientService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 10 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &ClientMetricsWorker{
		clientService: clientService,
		interval:      interval,
		staleAfter:    24 * time.Hour,
		batchSize:     batchSize,
	}, nil
}

// Start chạy worker cho đến khi ctx bị hủy.
func (w *ClientMetricsWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("📈 [CLIENT_METRICS] Starting Client Metrics Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📈 [CLIENT_METRICS] Client Metrics Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📈 [CLIENT_METRICS] Panic khi đồng bộ metrics, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				w.runOnce(ctx)
			}()
		}
	}
}

// runOnce xử lý một batch khách có metrics thiếu hoặc cũ.
// Filter $lt staleBefore bắt cả metricsUpdatedAt = 0 (chưa từng tính).
func (w *ClientMetricsWorker) runOnce(ctx context.Context) {
	staleBefore := time.Now().Add(-w.staleAfter).UnixMilli()

	clients, err := w.clientService.Find(ctx, bson.M{
		"metricsUpdatedAt": bson.M{"$lt": staleBefore},
	}, options.Find().
		SetSort(bson.D{{Key: "metricsUpdatedAt", Value: 1}}).
		SetLimit(int64(w.batchSize)))
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("📈 [CLIENT_METRICS] Lỗi đọc danh sách khách cần đồng bộ")
		return
	}

	for _, client := range clients {
		w.recalculate(ctx, client)
	}
}

func (w *ClientMetricsWorker) recalculate(ctx context.Context, client crmmodels.Client) {
	if _, err := w.clientService.RecalculateClientMetrics(ctx, client.Cpf); err != nil {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"cpf":   client.Cpf,
			"error": err.Error(),
		}).Warn("📈 [CLIENT_METRICS] Tính lại metrics thất bại, sẽ thử lại lần sau")
	}
}
