package dto

// ServiceItemCreateInput dữ liệu tạo mới dịch vụ.
type ServiceItemCreateInput struct {
	Name        string  `json:"name" bson:"name" validate:"required,no_xss"`
	Description string  `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	DurationMin int     `json:"durationMin,omitempty" bson:"durationMin,omitempty" validate:"omitempty,gte=0"`
	Active      bool    `json:"active" bson:"active"`
}

// ServiceItemUpdateInput dữ liệu cập nhật dịch vụ.
type ServiceItemUpdateInput struct {
	Name        string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Description string   `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,no_xss"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gte=0"`
	DurationMin *int     `json:"durationMin,omitempty" bson:"durationMin,omitempty" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active,omitempty" bson:"active,omitempty"`
}

// ProductCreateInput dữ liệu tạo mới sản phẩm.
type ProductCreateInput struct {
	Name     string  `json:"name" bson:"name" validate:"required,no_xss"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"`
	Stock    int     `json:"stock" bson:"stock" validate:"gte=0"`
	MinStock int     `json:"minStock" bson:"minStock" validate:"gte=0"`
	Active   bool    `json:"active" bson:"active"`
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm.
// Stock không cập nhật qua đây — đi qua POST /products/:id/stock để
// không bao giờ ghi đè mất các điều chỉnh song song.
type ProductUpdateInput struct {
	Name     string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,no_xss"`
	Price    *float64 `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gte=0"`
	MinStock *int     `json:"minStock,omitempty" bson:"minStock,omitempty" validate:"omitempty,gte=0"`
	Active   *bool    `json:"active,omitempty" bson:"active,omitempty"`
}

// StockAdjustInput dữ liệu điều chỉnh tồn kho (delta âm là xuất, dương là nhập).
type StockAdjustInput struct {
	Delta  int    `json:"delta" bson:"delta" validate:"required"`
	Reason string `json:"reason,omitempty" bson:"reason,omitempty" validate:"omitempty,no_xss"`
}
