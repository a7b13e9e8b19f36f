// Package crmvc - Service chuyên viên (crm_professionals).
package crmvc

import (
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	crmmodels "bioma_system/internal/api/crm/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"
)

// ProfessionalService xử lý logic chuyên viên.
type ProfessionalService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Professional]
}

// NewProfessionalService tạo ProfessionalService mới.
func NewProfessionalService() (*ProfessionalService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Professionals)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Professionals, common.ErrNotFound)
	}
	return &ProfessionalService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Professional](coll),
	}, nil
}
