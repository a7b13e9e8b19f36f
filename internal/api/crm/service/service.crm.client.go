// Package crmvc - Service khách hàng (crm_clients).
// CRUD + metrics denormalized từ order_contracts.
package crmvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	crmmodels "bioma_system/internal/api/crm/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"

	"go.mongodb.org/mongo-driver/bson"
)

// ClientService xử lý logic khách hàng.
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Client]
}

// NewClientService tạo ClientService mới.
func NewClientService() (*ClientService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Clients, common.ErrNotFound)
	}
	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Client](coll),
	}, nil
}

// FindByCpf tìm khách hàng theo CPF (đã normalize).
// Nếu metrics chưa từng được tính (metricsUpdatedAt == 0), backfill ngay trước khi trả về.
func (s *ClientService) FindByCpf(ctx context.Context, cpf string) (crmmodels.Client, error) {
	cpf = global.NormalizeCPF(cpf)
	client, err := s.FindOne(ctx, bson.M{"cpf": cpf}, nil)
	if err != nil {
		return client, err
	}

	// Lazy backfill: client tạo trước khi có metrics hoặc chưa từng có đơn
	if client.MetricsUpdatedAt == 0 {
		if recalculated, recalcErr := s.RecalculateClientMetrics(ctx, cpf); recalcErr == nil {
			return recalculated, nil
		}
		// Backfill thất bại không chặn việc đọc — trả về bản hiện có
	}

	return client, nil
}

// CreateClient tạo khách hàng mới. CPF được normalize trước khi lưu;
// trùng CPF trả về lỗi duplicate (409) từ unique index.
func (s *ClientService) CreateClient(ctx context.Context, client crmmodels.Client) (crmmodels.Client, error) {
	client.Cpf = global.NormalizeCPF(client.Cpf)
	if client.Cpf == "" {
		return crmmodels.Client{}, common.ErrRequiredField
	}
	return s.InsertOne(ctx, client)
}

// UpdateByCpf cập nhật thông tin khách hàng theo CPF.
// updateFields chỉ chứa các field hồ sơ — metrics không đi qua đường này.
func (s *ClientService) UpdateByCpf(ctx context.Context, cpf string, updateFields map[string]interface{}) (crmmodels.Client, error) {
	cpf = global.NormalizeCPF(cpf)
	return s.UpdateOne(ctx, bson.M{"cpf": cpf}, &basesvc.UpdateData{Set: updateFields}, nil)
}

// DeleteByCpf xóa khách hàng theo CPF.
func (s *ClientService) DeleteByCpf(ctx context.Context, cpf string) error {
	cpf = global.NormalizeCPF(cpf)
	return s.DeleteOne(ctx, bson.M{"cpf": cpf})
}

// ClientExists kiểm tra khách hàng có tồn tại theo CPF.
func (s *ClientService) ClientExists(ctx context.Context, cpf string) (bool, error) {
	cpf = global.NormalizeCPF(cpf)
	return s.DocumentExists(ctx, bson.M{"cpf": cpf})
}

// ErrClientNotFound kiểm tra err có phải là không tìm thấy khách hàng
func ErrClientNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}
