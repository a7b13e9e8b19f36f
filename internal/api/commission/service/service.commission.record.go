// Package commissionvc - Service sổ hoa hồng (commission_records).
package commissionvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	commissionmodels "bioma_system/internal/api/commission/models"
	crmmodels "bioma_system/internal/api/crm/models"
	crmvc "bioma_system/internal/api/crm/service"
	ordermodels "bioma_system/internal/api/order/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommissionService xử lý sổ hoa hồng.
type CommissionService struct {
	*basesvc.BaseServiceMongoImpl[commissionmodels.CommissionRecord]
}

// NewCommissionService tạo CommissionService mới.
func NewCommissionService() (*CommissionService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.CommissionRecords)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.CommissionRecords, common.ErrNotFound)
	}
	return &CommissionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commissionmodels.CommissionRecord](coll),
	}, nil
}

// CreateForOrder sinh và ghi các bản ghi hoa hồng cho đơn hàng vừa duyệt.
// ctx là session context khi gọi trong transaction duyệt đơn — ghi sổ và
// đổi trạng thái đơn phải cùng commit hoặc cùng rollback.
func (s *CommissionService) CreateForOrder(ctx context.Context, order ordermodels.OrderContract) ([]commissionmodels.CommissionRecord, error) {
	professionals, err := s.loadProfessionals(ctx, order)
	if err != nil {
		return nil, err
	}

	records := CalculateOrderCommissions(order, professionals)
	if len(records) == 0 {
		return []commissionmodels.CommissionRecord{}, nil
	}

	// Bản ghi trợ lý refType=assistant cần tra tên từ crm_assistants
	for i := range records {
		if records[i].Role != commissionmodels.CommissionRoleAssistant || records[i].ProfessionalName != "" {
			continue
		}
		resolved, err := crmvc.ResolveAssistantRef(ctx, &crmmodels.AssistantRef{
			RefID:   records[i].ProfessionalID,
			RefType: crmmodels.AssistantRefTypeAssistant,
		})
		if err != nil {
			// Trợ lý đã bị xóa khỏi danh mục: giữ bản ghi với tên rỗng,
			// không chặn việc duyệt đơn
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if resolved != nil {
			records[i].ProfessionalName = resolved.Name
		}
	}

	return s.InsertMany(ctx, records)
}

// loadProfessionals nạp snapshot các chuyên viên xuất hiện trong đơn.
func (s *CommissionService) loadProfessionals(ctx context.Context, order ordermodels.OrderContract) (map[primitive.ObjectID]crmmodels.Professional, error) {
	ids := make([]primitive.ObjectID, 0, len(order.Items))
	seen := make(map[primitive.ObjectID]bool)
	for _, item := range order.Items {
		if item.Kind != ordermodels.OrderItemKindService || item.ProfessionalID.IsZero() || seen[item.ProfessionalID] {
			continue
		}
		seen[item.ProfessionalID] = true
		ids = append(ids, item.ProfessionalID)
	}

	professionals := make(map[primitive.ObjectID]crmmodels.Professional, len(ids))
	if len(ids) == 0 {
		return professionals, nil
	}

	coll, exist := global.RegistryCollections.Get(global.ColNames.Professionals)
	if !exist {
		return professionals, nil
	}
	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var found []crmmodels.Professional
	if err := cursor.All(ctx, &found); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	for _, prof := range found {
		professionals[prof.ID] = prof
	}
	return professionals, nil
}

// DeleteForOrder xóa sổ hoa hồng của một đơn (dùng khi đơn approved bị hủy).
func (s *CommissionService) DeleteForOrder(ctx context.Context, orderID primitive.ObjectID) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"orderId": orderID})
}

// FindByOrderNumber đọc các bản ghi hoa hồng của một đơn theo số đơn.
func (s *CommissionService) FindByOrderNumber(ctx context.Context, orderNumber int64) ([]commissionmodels.CommissionRecord, error) {
	return s.Find(ctx, bson.M{"orderNumber": orderNumber}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

// FindByProfessional đọc sổ hoa hồng của một người (cả vai chuyên viên lẫn trợ lý).
func (s *CommissionService) FindByProfessional(ctx context.Context, professionalID primitive.ObjectID) ([]commissionmodels.CommissionRecord, error) {
	return s.Find(ctx, bson.M{"professionalId": professionalID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}
