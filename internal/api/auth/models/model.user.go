// Package models - User thuộc domain auth (auth_users).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Vai trò người dùng nội bộ
const (
	UserRoleAdmin = "admin"
	UserRoleStaff = "staff"
)

// User tài khoản nhân viên đăng nhập hệ thống.
// Password là bcrypt hash, không bao giờ serialize ra JSON.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"` // unique
	Password string             `json:"-" bson:"password"`
	Name     string             `json:"name" bson:"name"`
	Role     string             `json:"role" bson:"role"` // admin | staff
	Token    string             `json:"token,omitempty" bson:"token,omitempty"`
	IsBlock  bool               `json:"isBlock" bson:"isBlock"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
