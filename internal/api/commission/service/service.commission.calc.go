// Package commissionvc - Tính hoa hồng từ đơn hàng (pure function).
//
// Quy tắc:
//   - Hoa hồng chuyên viên: lineTotal × commissionPercent / 100, cộng dồn
//     trên các line dịch vụ chuyên viên đó thực hiện. Line sản phẩm không
//     sinh hoa hồng.
//   - Hoa hồng trợ lý: phần trăm trên HOA HỒNG của chuyên viên, không phải
//     trên giá trị line. Trợ lý 50% của chuyên viên 30% nhận 15% line.
//   - Chuyên viên không có trong danh mục hoặc percent = 0 → hoa hồng 0,
//     bản ghi vẫn được tạo để sổ khớp với đơn.
package commissionvc

import (
	commissionmodels "bioma_system/internal/api/commission/models"
	crmmodels "bioma_system/internal/api/crm/models"
	ordermodels "bioma_system/internal/api/order/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CalculateOrderCommissions sinh các bản ghi hoa hồng cho một đơn hàng.
// professionals là snapshot danh mục chuyên viên (id → model) do caller nạp.
// Bản ghi trợ lý có ProfessionalName rỗng khi refType = assistant —
// caller resolve tên trước khi ghi sổ.
func CalculateOrderCommissions(
	order ordermodels.OrderContract,
	professionals map[primitive.ObjectID]crmmodels.Professional,
) []commissionmodels.CommissionRecord {
	// Cộng dồn lineTotal theo chuyên viên, giữ thứ tự xuất hiện trong đơn
	serviceTotals := make(map[primitive.ObjectID]float64)
	var profOrder []primitive.ObjectID
	for _, item := range order.Items {
		if item.Kind != ordermodels.OrderItemKindService || item.ProfessionalID.IsZero() {
			continue
		}
		if _, seen := serviceTotals[item.ProfessionalID]; !seen {
			profOrder = append(profOrder, item.ProfessionalID)
		}
		serviceTotals[item.ProfessionalID] += item.LineTotal
	}

	var records []commissionmodels.CommissionRecord
	for _, profID := range profOrder {
		prof, known := professionals[profID]

		percent := 0.0
		if known {
			percent = prof.CommissionPercent
		}
		commission := serviceTotals[profID] * percent / 100

		records = append(records, commissionmodels.CommissionRecord{
			OrderID:          order.ID,
			OrderNumber:      order.Number,
			ProfessionalID:   profID,
			ProfessionalName: prof.Name,
			Role:             commissionmodels.CommissionRoleProfessional,
			BaseValue:        order.TotalServices,
			Percent:          percent,
			CommissionValue:  commission,
		})

		if known && prof.Assistant != nil {
			ref := prof.Assistant
			assistantName := ""
			if ref.RefType == crmmodels.AssistantRefTypeProfessional {
				if assistantProf, ok := professionals[ref.RefID]; ok {
					assistantName = assistantProf.Name
				}
			}
			records = append(records, commissionmodels.CommissionRecord{
				OrderID:          order.ID,
				OrderNumber:      order.Number,
				ProfessionalID:   ref.RefID,
				ProfessionalName: assistantName,
				Role:             commissionmodels.CommissionRoleAssistant,
				BaseValue:        order.TotalServices,
				Percent:          ref.Percent,
				CommissionValue:  commission * ref.Percent / 100,
			})
		}
	}

	return records
}
