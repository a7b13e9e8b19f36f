// Package crmvc - Resolve tham chiếu trợ lý (tagged union theo refType).
package crmvc

import (
	"context"
	"fmt"

	crmmodels "bioma_system/internal/api/crm/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolvedAssistant kết quả resolve một AssistantRef: tên thực của người
// nhận cùng thông tin phần trăm từ ref.
type ResolvedAssistant struct {
	RefID   primitive.ObjectID
	RefType string
	Name    string
	Percent float64
}

// ResolveAssistantRef tra tên người trợ lý theo refType:
//   - "assistant":    tra trong crm_assistants
//   - "professional": tra trong crm_professionals (chuyên viên khác làm trợ lý ca này)
//
// ref nil trả về nil (chuyên viên làm việc không có trợ lý).
// refType ngoài hai giá trị trên là lỗi dữ liệu.
func ResolveAssistantRef(ctx context.Context, ref *crmmodels.AssistantRef) (*ResolvedAssistant, error) {
	if ref == nil {
		return nil, nil
	}

	resolved := &ResolvedAssistant{
		RefID:   ref.RefID,
		RefType: ref.RefType,
		Percent: ref.Percent,
	}

	switch ref.RefType {
	case crmmodels.AssistantRefTypeAssistant:
		coll, exist := global.RegistryCollections.Get(global.ColNames.Assistants)
		if !exist {
			return nil, common.ErrNotFound
		}
		var assistant crmmodels.Assistant
		if err := coll.FindOne(ctx, bson.M{"_id": ref.RefID}).Decode(&assistant); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		resolved.Name = assistant.Name

	case crmmodels.AssistantRefTypeProfessional:
		coll, exist := global.RegistryCollections.Get(global.ColNames.Professionals)
		if !exist {
			return nil, common.ErrNotFound
		}
		var professional crmmodels.Professional
		if err := coll.FindOne(ctx, bson.M{"_id": ref.RefID}).Decode(&professional); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		resolved.Name = professional.Name

	default:
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("refType không hợp lệ: %q (chỉ chấp nhận assistant hoặc professional)", ref.RefType),
			common.StatusBadRequest,
			nil,
		)
	}

	return resolved, nil
}
