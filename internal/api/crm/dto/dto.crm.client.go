// Package dto - DTO cho domain CRM (client, professional, assistant).
package dto

// ClientCreateInput dữ liệu tạo mới khách hàng.
type ClientCreateInput struct {
	Cpf       string `json:"cpf" bson:"cpf" validate:"required,cpf"`
	Name      string `json:"name" bson:"name" validate:"required,no_xss"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	BirthDate string `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,no_xss"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
}

// ClientUpdateInput dữ liệu cập nhật khách hàng.
// Không cho đổi CPF — định danh nghiệp vụ cố định; metrics chỉ do hệ thống ghi.
type ClientUpdateInput struct {
	Name      string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	BirthDate string `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,no_xss"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
}
