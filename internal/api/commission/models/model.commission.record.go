// Package models - CommissionRecord thuộc domain commission (commission_records).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Vai trò của người nhận hoa hồng trong một bản ghi.
const (
	CommissionRoleProfessional = "professional"
	CommissionRoleAssistant    = "assistant"
)

// CommissionRecord một dòng sổ hoa hồng, sinh ra khi đơn hàng được duyệt.
// BaseValue là snapshot totalServices của đơn tại thời điểm duyệt —
// báo cáo hoa hồng không đổi nếu đơn bị sửa sau này.
type CommissionRecord struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID          primitive.ObjectID `json:"orderId" bson:"orderId"`
	OrderNumber      int64              `json:"orderNumber" bson:"orderNumber"`
	ProfessionalID   primitive.ObjectID `json:"professionalId" bson:"professionalId"`
	ProfessionalName string             `json:"professionalName" bson:"professionalName"`
	Role             string             `json:"role" bson:"role"`
	BaseValue        float64            `json:"baseValue" bson:"baseValue"`
	Percent          float64            `json:"percent" bson:"percent"`
	CommissionValue  float64            `json:"commissionValue" bson:"commissionValue"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
