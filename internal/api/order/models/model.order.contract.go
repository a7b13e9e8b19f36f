// Package models - OrderContract thuộc domain order (order_contracts).
// Một đơn hàng / hợp đồng dịch vụ gồm các line items dịch vụ và sản phẩm.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng. Đơn mới luôn ở pending; chỉ đơn approved mới
// được tính vào totalBilled của khách và sinh bản ghi hoa hồng.
const (
	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusCancelled = "cancelled"
)

// Loại line item trong đơn hàng
const (
	OrderItemKindService = "service"
	OrderItemKindProduct = "product"
)

// IsValidOrderStatus kiểm tra status có nằm trong tập trạng thái hợp lệ
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusApproved, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem một dòng trong đơn hàng (dịch vụ hoặc sản phẩm).
type OrderItem struct {
	Kind     string             `json:"kind" bson:"kind"` // service | product
	RefID    primitive.ObjectID `json:"refId,omitempty" bson:"refId,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Quantity int                `json:"quantity" bson:"quantity"`
	UnitPrice float64           `json:"unitPrice" bson:"unitPrice"`
	LineTotal float64           `json:"lineTotal" bson:"lineTotal"` // Quantity × UnitPrice, tính phía server

	// ProfessionalID chỉ có nghĩa với line dịch vụ — chuyên viên thực hiện, nhận hoa hồng
	ProfessionalID primitive.ObjectID `json:"professionalId,omitempty" bson:"professionalId,omitempty"`
}

// OrderContract lưu đơn hàng (order_contracts).
type OrderContract struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Number cấp phát atomic từ order_counters, unique
	Number int64 `json:"number" bson:"number"`

	ClientCpf  string `json:"clientCpf" bson:"clientCpf"`
	ClientName string `json:"clientName" bson:"clientName"`

	Items []OrderItem `json:"items" bson:"items"`

	// Tổng tiền tách theo loại line; TotalFinal = TotalServices + TotalProducts - Discount
	TotalServices float64 `json:"totalServices" bson:"totalServices"`
	TotalProducts float64 `json:"totalProducts" bson:"totalProducts"`
	Discount      float64 `json:"discount" bson:"discount"`
	TotalFinal    float64 `json:"totalFinal" bson:"totalFinal"`

	Status string `json:"status" bson:"status"` // pending | approved | cancelled
	Notes  string `json:"notes,omitempty" bson:"notes,omitempty"`

	ApprovedAt int64 `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"` // Unix ms
	CreatedAt  int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`   // Unix ms
	UpdatedAt  int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`   // Unix ms
}
