package dto

// OrderItemInput một line trong payload tạo đơn. UnitPrice là giá snapshot
// tại thời điểm tạo đơn — client gửi lên, server chỉ tính lineTotal.
type OrderItemInput struct {
	Kind           string  `json:"kind" bson:"kind" validate:"required,oneof=service product"`
	RefID          string  `json:"refId,omitempty" bson:"refId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	Name           string  `json:"name" bson:"name" validate:"required,no_xss"`
	Quantity       int     `json:"quantity" bson:"quantity" validate:"required,gte=1"`
	UnitPrice      float64 `json:"unitPrice" bson:"unitPrice" validate:"gte=0"`
	ProfessionalID string  `json:"professionalId,omitempty" bson:"professionalId,omitempty" validate:"omitempty,len=24,hexadecimal"`
}

// OrderCreateInput dữ liệu tạo đơn hàng. Đơn mới luôn ở trạng thái pending.
type OrderCreateInput struct {
	ClientCpf string           `json:"clientCpf" bson:"clientCpf" validate:"required,cpf"`
	Items     []OrderItemInput `json:"items" bson:"items" validate:"required,min=1,dive"`
	Discount  float64          `json:"discount" bson:"discount" validate:"gte=0"`
	Notes     string           `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
}

// OrderStatusUpdateInput dữ liệu đổi trạng thái đơn.
type OrderStatusUpdateInput struct {
	Status string `json:"status" bson:"status" validate:"required,oneof=pending approved cancelled"`
}
