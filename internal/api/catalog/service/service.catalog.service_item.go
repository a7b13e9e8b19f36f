// Package catalogvc - Service bảng giá dịch vụ (catalog_services).
package catalogvc

import (
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	catalogmodels "bioma_system/internal/api/catalog/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"
)

// ServiceItemService xử lý logic bảng giá dịch vụ.
type ServiceItemService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.ServiceItem]
}

// NewServiceItemService tạo ServiceItemService mới.
func NewServiceItemService() (*ServiceItemService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.CatalogServices)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.CatalogServices, common.ErrNotFound)
	}
	return &ServiceItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.ServiceItem](coll),
	}, nil
}
