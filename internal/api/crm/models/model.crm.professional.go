// Package models - Professional thuộc domain CRM (crm_professionals).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại tham chiếu trợ lý. AssistantRef có thể trỏ đến một trợ lý chuyên trách
// hoặc một chuyên viên khác làm trợ lý cho ca này.
const (
	AssistantRefTypeAssistant    = "assistant"
	AssistantRefTypeProfessional = "professional"
)

// AssistantRef tham chiếu trợ lý của chuyên viên (tagged union theo RefType).
type AssistantRef struct {
	RefID   primitive.ObjectID `json:"refId" bson:"refId"`     // ID trong crm_assistants hoặc crm_professionals tùy RefType
	RefType string             `json:"refType" bson:"refType"` // assistant | professional
	Percent float64            `json:"percent" bson:"percent"` // % trích từ hoa hồng của chuyên viên (không phải của line total)
}

// Professional lưu chuyên viên thực hiện dịch vụ (crm_professionals).
type Professional struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Name      string `json:"name" bson:"name"`
	Specialty string `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`

	// CommissionPercent = % hoa hồng trên line total của dịch vụ. 0 = không hoa hồng.
	CommissionPercent float64 `json:"commissionPercent" bson:"commissionPercent"`

	// Assistant nil = chuyên viên làm việc không có trợ lý
	Assistant *AssistantRef `json:"assistant,omitempty" bson:"assistant,omitempty"`

	Active bool `json:"active" bson:"active"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
