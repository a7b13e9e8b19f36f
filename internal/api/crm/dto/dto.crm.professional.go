package dto

// AssistantRefInput tham chiếu trợ lý trong payload chuyên viên.
type AssistantRefInput struct {
	RefID   string  `json:"refId" bson:"refId" validate:"required,len=24,hexadecimal"`
	RefType string  `json:"refType" bson:"refType" validate:"required,oneof=assistant professional"`
	Percent float64 `json:"percent" bson:"percent" validate:"gte=0,lte=100"`
}

// ProfessionalCreateInput dữ liệu tạo mới chuyên viên.
type ProfessionalCreateInput struct {
	Name              string             `json:"name" bson:"name" validate:"required,no_xss"`
	Specialty         string             `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Phone             string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email             string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	CommissionPercent float64            `json:"commissionPercent" bson:"commissionPercent" validate:"gte=0,lte=100"`
	Assistant         *AssistantRefInput `json:"assistant,omitempty" bson:"assistant,omitempty"`
	Active            bool               `json:"active" bson:"active"`
}

// ProfessionalUpdateInput dữ liệu cập nhật chuyên viên.
type ProfessionalUpdateInput struct {
	Name              string             `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Specialty         string             `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Phone             string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email             string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	CommissionPercent *float64           `json:"commissionPercent,omitempty" bson:"commissionPercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	Assistant         *AssistantRefInput `json:"assistant,omitempty" bson:"assistant,omitempty"`
	Active            *bool              `json:"active,omitempty" bson:"active,omitempty"`
}

// AssistantCreateInput dữ liệu tạo mới trợ lý.
type AssistantCreateInput struct {
	Name   string `json:"name" bson:"name" validate:"required,no_xss"`
	Phone  string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email  string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Active bool   `json:"active" bson:"active"`
}

// AssistantUpdateInput dữ liệu cập nhật trợ lý.
type AssistantUpdateInput struct {
	Name   string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Phone  string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email  string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Active *bool  `json:"active,omitempty" bson:"active,omitempty"`
}
