package dto

// UserLoginInput dữ liệu đăng nhập.
type UserLoginInput struct {
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Password string `json:"password" bson:"password" validate:"required"`
}

// UserCreateInput dữ liệu tạo tài khoản nhân viên.
type UserCreateInput struct {
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Password string `json:"password" bson:"password" validate:"required,strong_password"`
	Name     string `json:"name" bson:"name" validate:"required,no_xss"`
	Role     string `json:"role" bson:"role" validate:"required,oneof=admin staff"`
}

// UserUpdateInput dữ liệu cập nhật tài khoản (không đổi password qua đây).
type UserUpdateInput struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Role    string `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=admin staff"`
	IsBlock *bool  `json:"isBlock,omitempty" bson:"isBlock,omitempty"`
}
