// Package crmvc - Service trợ lý (crm_assistants).
package crmvc

import (
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	crmmodels "bioma_system/internal/api/crm/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"
)

// AssistantService xử lý logic trợ lý.
type AssistantService struct {
	*basesvc.BaseServiceMongoImpl[crmmodels.Assistant]
}

// NewAssistantService tạo AssistantService mới.
func NewAssistantService() (*AssistantService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Assistants)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Assistants, common.ErrNotFound)
	}
	return &AssistantService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[crmmodels.Assistant](coll),
	}, nil
}
