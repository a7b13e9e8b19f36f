// Package models - Product thuộc domain catalog (catalog_products).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product một sản phẩm bán kèm (mỹ phẩm, thực phẩm chức năng...).
// Stock không bao giờ âm — mọi điều chỉnh đi qua AdjustStock.
type Product struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Stock     int                `json:"stock" bson:"stock"`
	MinStock  int                `json:"minStock" bson:"minStock"` // Ngưỡng cảnh báo: stock <= minStock là sắp hết
	Active    bool               `json:"active" bson:"active"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}

// IsLowStock kiểm tra sản phẩm có đang ở mức tồn kho cảnh báo
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
