// Package ordervc - Service đơn hàng (order_contracts).
//
// Vòng đời đơn: tạo ở pending → approved hoặc cancelled.
// Duyệt đơn là transaction: đổi trạng thái và ghi sổ hoa hồng phải cùng
// commit. Metrics khách hàng cập nhật best-effort sau mỗi thao tác —
// thất bại không chặn đơn, worker và lazy backfill sẽ đồng bộ lại.
package ordervc

import (
	"context"
	"fmt"
	"time"

	basesvc "bioma_system/internal/api/base/service"
	commissionvc "bioma_system/internal/api/commission/service"
	crmvc "bioma_system/internal/api/crm/service"
	orderdto "bioma_system/internal/api/order/dto"
	ordermodels "bioma_system/internal/api/order/models"
	"bioma_system/internal/common"
	"bioma_system/internal/database"
	"bioma_system/internal/global"
	"bioma_system/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService xử lý logic đơn hàng.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.OrderContract]
	CounterService    *OrderCounterService
	ClientService     *crmvc.ClientService
	CommissionService *commissionvc.CommissionService
}

// NewOrderService tạo OrderService mới.
func NewOrderService() (*OrderService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.OrderContracts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.OrderContracts, common.ErrNotFound)
	}
	counterSvc, err := NewOrderCounterService()
	if err != nil {
		return nil, err
	}
	clientSvc, err := crmvc.NewClientService()
	if err != nil {
		return nil, err
	}
	commissionSvc, err := commissionvc.NewCommissionService()
	if err != nil {
		return nil, err
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.OrderContract](coll),
		CounterService:       counterSvc,
		ClientService:        clientSvc,
		CommissionService:    commissionSvc,
	}, nil
}

// BuildOrderItems chuyển input thành line items, tính lineTotal và tổng
// theo loại phía server (pure function). Giá trị client gửi trong
// lineTotal (nếu có) bị bỏ qua.
func BuildOrderItems(inputs []orderdto.OrderItemInput) (items []ordermodels.OrderItem, totalServices, totalProducts float64) {
	items = make([]ordermodels.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		item := ordermodels.OrderItem{
			Kind:           in.Kind,
			RefID:          utility.String2ObjectID(in.RefID),
			Name:           in.Name,
			Quantity:       in.Quantity,
			UnitPrice:      in.UnitPrice,
			LineTotal:      float64(in.Quantity) * in.UnitPrice,
			ProfessionalID: utility.String2ObjectID(in.ProfessionalID),
		}
		switch item.Kind {
		case ordermodels.OrderItemKindService:
			totalServices += item.LineTotal
		case ordermodels.OrderItemKindProduct:
			totalProducts += item.LineTotal
		}
		items = append(items, item)
	}
	return items, totalServices, totalProducts
}

// CreateOrder tạo đơn hàng mới ở trạng thái pending.
// Khách phải tồn tại trong crm_clients; số đơn cấp atomic từ counter.
func (s *OrderService) CreateOrder(ctx context.Context, input orderdto.OrderCreateInput) (ordermodels.OrderContract, error) {
	var zero ordermodels.OrderContract

	cpf := global.NormalizeCPF(input.ClientCpf)
	client, err := s.ClientService.FindOne(ctx, bson.M{"cpf": cpf}, nil)
	if err != nil {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Khách hàng CPF %s chưa có trong hệ thống, tạo hồ sơ trước khi lập đơn", cpf),
			common.StatusNotFound,
			err,
		)
	}

	items, totalServices, totalProducts := BuildOrderItems(input.Items)
	totalFinal := totalServices + totalProducts - input.Discount
	if totalFinal < 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Giảm giá %.2f vượt quá tổng đơn %.2f", input.Discount, totalServices+totalProducts),
			common.StatusBadRequest,
			nil,
		)
	}

	number, err := s.CounterService.NextOrderNumber(ctx)
	if err != nil {
		return zero, err
	}

	order := ordermodels.OrderContract{
		Number:        number,
		ClientCpf:     cpf,
		ClientName:    client.Name,
		Items:         items,
		TotalServices: totalServices,
		TotalProducts: totalProducts,
		Discount:      input.Discount,
		TotalFinal:    totalFinal,
		Status:        ordermodels.OrderStatusPending,
		Notes:         input.Notes,
	}

	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return zero, err
	}

	s.ClientService.UpdateClientMetricsBestEffort(ctx, cpf)
	return created, nil
}

// FindByNumber đọc đơn theo số đơn.
func (s *OrderService) FindByNumber(ctx context.Context, number int64) (ordermodels.OrderContract, error) {
	return s.FindOne(ctx, bson.M{"number": number}, nil)
}

// FindByClient đọc toàn bộ đơn của một khách, mới nhất trước.
func (s *OrderService) FindByClient(ctx context.Context, cpf string) ([]ordermodels.OrderContract, error) {
	return s.Find(ctx, bson.M{"clientCpf": global.NormalizeCPF(cpf)},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// UpdateStatus đổi trạng thái đơn theo số đơn.
//
//   - → approved: transaction ghi status + approvedAt và sinh sổ hoa hồng.
//     Duyệt đơn đã approved bị từ chối để sổ không bị ghi đôi.
//   - approved → cancelled/pending: transaction gỡ sổ hoa hồng của đơn
//     cùng lúc với đổi trạng thái.
//   - Các chuyển còn lại là update thường.
//
// Mọi nhánh thành công đều cập nhật metrics khách best-effort.
func (s *OrderService) UpdateStatus(ctx context.Context, number int64, newStatus string) (ordermodels.OrderContract, error) {
	var zero ordermodels.OrderContract

	if !ordermodels.IsValidOrderStatus(newStatus) {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái '%s' không hợp lệ (pending | approved | cancelled)", newStatus),
			common.StatusBadRequest,
			nil,
		)
	}

	order, err := s.FindByNumber(ctx, number)
	if err != nil {
		return zero, err
	}
	if order.Status == newStatus {
		return order, nil
	}

	var updated ordermodels.OrderContract
	switch {
	case newStatus == ordermodels.OrderStatusApproved:
		updated, err = s.approveOrder(ctx, order)
	case order.Status == ordermodels.OrderStatusApproved:
		updated, err = s.revertApprovedOrder(ctx, order, newStatus)
	default:
		updated, err = s.UpdateOne(ctx, bson.M{"_id": order.ID}, &basesvc.UpdateData{
			Set: map[string]interface{}{"status": newStatus},
		}, nil)
	}
	if err != nil {
		return zero, err
	}

	s.ClientService.UpdateClientMetricsBestEffort(ctx, order.ClientCpf)
	return updated, nil
}

// approveOrder duyệt đơn trong một transaction: status + approvedAt + sổ hoa hồng.
func (s *OrderService) approveOrder(ctx context.Context, order ordermodels.OrderContract) (ordermodels.OrderContract, error) {
	var zero ordermodels.OrderContract

	result, err := database.WithTransaction(ctx, global.MongoDB_Session, func(sessCtx mongo.SessionContext) (interface{}, error) {
		updated, err := s.UpdateOne(sessCtx, bson.M{"_id": order.ID, "status": order.Status}, &basesvc.UpdateData{
			Set: map[string]interface{}{
				"status":     ordermodels.OrderStatusApproved,
				"approvedAt": time.Now().UnixMilli(),
			},
		}, nil)
		if err != nil {
			return nil, err
		}

		if _, err := s.CommissionService.CreateForOrder(sessCtx, updated); err != nil {
			return nil, err
		}
		return updated, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(ordermodels.OrderContract), nil
}

// revertApprovedOrder đưa đơn approved về trạng thái khác và gỡ sổ hoa hồng.
func (s *OrderService) revertApprovedOrder(ctx context.Context, order ordermodels.OrderContract, newStatus string) (ordermodels.OrderContract, error) {
	var zero ordermodels.OrderContract

	result, err := database.WithTransaction(ctx, global.MongoDB_Session, func(sessCtx mongo.SessionContext) (interface{}, error) {
		updated, err := s.UpdateOne(sessCtx, bson.M{"_id": order.ID, "status": ordermodels.OrderStatusApproved}, &basesvc.UpdateData{
			Set:   map[string]interface{}{"status": newStatus},
			Unset: map[string]interface{}{"approvedAt": ""},
		}, nil)
		if err != nil {
			return nil, err
		}

		if _, err := s.CommissionService.DeleteForOrder(sessCtx, order.ID); err != nil {
			return nil, err
		}
		return updated, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(ordermodels.OrderContract), nil
}
