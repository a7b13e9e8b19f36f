// Package ordervc - Cấp phát số đơn hàng.
package ordervc

import (
	"context"
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	ordermodels "bioma_system/internal/api/order/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderCounterService cấp phát số đơn tuần tự từ order_counters.
type OrderCounterService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.OrderCounter]
}

// NewOrderCounterService tạo OrderCounterService mới.
func NewOrderCounterService() (*OrderCounterService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.OrderCounters)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.OrderCounters, common.ErrNotFound)
	}
	return &OrderCounterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.OrderCounter](coll),
	}, nil
}

// NextOrderNumber cấp số đơn kế tiếp bằng $inc atomic trên document counter.
// Upsert nên lần gọi đầu tiên tự tạo counter và trả về 1; hai request song
// song không bao giờ nhận cùng một số. Đọc max(number)+1 thì có — đó là
// lý do counter tồn tại.
func (s *OrderCounterService) NextOrderNumber(ctx context.Context) (int64, error) {
	counter, err := s.FindOneAndUpdate(ctx,
		bson.M{"_id": ordermodels.OrderCounterID},
		&basesvc.UpdateData{
			Inc: map[string]interface{}{"seq": int64(1)},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
