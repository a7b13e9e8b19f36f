package worker

import (
	"context"
	"time"

	catalogvc "bioma_system/internal/api/catalog/service"
	"bioma_system/internal/logger"
	"bioma_system/internal/notification"
)

// LowStockWorker kiểm tra tồn kho định kỳ và gửi email digest cho người
// phụ trách khi có sản phẩm chạm ngưỡng cảnh báo.
// Không gửi lại khi danh sách không đổi so với lần trước — mỗi thay đổi
// chỉ báo một lần.
type LowStockWorker struct {
	productService *catalogvc.ProductService
	mailer         *notification.Mailer
	interval       time.Duration
	lastDigest     string
}

// NewLowStockWorker tạo mới LowStockWorker.
func NewLowStockWorker(interval time.Duration, mailer *notification.Mailer) (*LowStockWorker, error) {
	productService, err := catalogvc.NewProductService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = time.Hour
	}
	return &LowStockWorker{
		productService: productService,
		mailer:         mailer,
		interval:       interval,
	}, nil
}

// Start chạy worker cho đến khi ctx bị hủy.
func (w *LowStockWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	if !w.mailer.Enabled() {
		log.Info("📦 [LOW_STOCK] SMTP chưa cấu hình, Low Stock Worker không chạy")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📦 [LOW_STOCK] Starting Low Stock Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📦 [LOW_STOCK] Low Stock Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📦 [LOW_STOCK] Panic khi kiểm tra tồn kho, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				w.runOnce(ctx)
			}()
		}
	}
}

// runOnce kiểm tra tồn kho một lần và gửi digest nếu danh sách thay đổi.
func (w *LowStockWorker) runOnce(ctx context.Context) {
	log := logger.GetAppLogger()

	products, err := w.productService.FindLowStock(ctx)
	if err != nil {
		log.WithError(err).Warn("📦 [LOW_STOCK] Lỗi đọc danh sách sản phẩm sắp hết")
		return
	}
	if len(products) == 0 {
		w.lastDigest = ""
		return
	}

	digest := ""
	for _, p := range products {
		digest += p.ID.Hex() + ":" + p.Name + ";"
	}
	if digest == w.lastDigest {
		return
	}

	if err := w.mailer.SendLowStockDigest(products); err != nil {
		log.WithError(err).Warn("📦 [LOW_STOCK] Gửi email digest thất bại, sẽ thử lại lần sau")
		return
	}

	w.lastDigest = digest
	log.WithFields(map[string]interface{}{
		"products": len(products),
	}).Info("📦 [LOW_STOCK] Đã gửi email cảnh báo tồn kho")
}
