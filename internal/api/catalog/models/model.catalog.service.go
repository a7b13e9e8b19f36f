// Package models - ServiceItem thuộc domain catalog (catalog_services).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceItem một dịch vụ trong bảng giá của phòng khám.
// Giá ở đây chỉ là giá đề xuất — đơn hàng snapshot unitPrice tại thời
// điểm tạo, đổi giá dịch vụ không ảnh hưởng đơn cũ.
type ServiceItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	DurationMin int                `json:"durationMin,omitempty" bson:"durationMin,omitempty"` // Thời lượng dự kiến (phút)
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt   int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
