// Package models - Client thuộc domain CRM (crm_clients).
// Lưu khách hàng của phòng khám kèm các metrics denormalized từ order_contracts.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client lưu khách hàng (crm_clients). Định danh nghiệp vụ là CPF.
type Client struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	Cpf   string `json:"cpf" bson:"cpf"` // CPF đã normalize (chỉ chữ số), unique
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`

	// Profile
	BirthDate string `json:"birthDate,omitempty" bson:"birthDate,omitempty"` // YYYY-MM-DD
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
	Notes     string `json:"notes,omitempty" bson:"notes,omitempty"`

	// Cached metrics (denormalized từ order_contracts, cập nhật best-effort sau mỗi thao tác đơn hàng)
	TotalBilled float64 `json:"totalBilled" bson:"totalBilled"`                   // Tổng totalFinal của các đơn approved
	VisitCount  int     `json:"visitCount" bson:"visitCount"`                     // Tổng số đơn mọi trạng thái
	LastVisitAt int64   `json:"lastVisitAt,omitempty" bson:"lastVisitAt,omitempty"` // Unix ms — createdAt đơn gần nhất, mọi trạng thái

	// MetricsUpdatedAt = 0 nghĩa là metrics chưa từng được tính (backfill khi đọc)
	MetricsUpdatedAt int64 `json:"metricsUpdatedAt" bson:"metricsUpdatedAt"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
