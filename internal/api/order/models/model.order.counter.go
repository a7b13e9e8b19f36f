package models

// OrderCounter bộ đếm số đơn hàng (order_counters).
// Một document duy nhất với _id = "order_number"; Seq tăng atomic qua $inc.
type OrderCounter struct {
	ID  string `json:"id" bson:"_id"`
	Seq int64  `json:"seq" bson:"seq"`
}

// OrderCounterID là _id của document bộ đếm số đơn hàng
const OrderCounterID = "order_number"
