package utility

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển string thành primitive.ObjectID.
// Trả về NilObjectID nếu string không hợp lệ.
func String2ObjectID(id string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}

// ObjectID2String chuyển primitive.ObjectID thành string hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// Round2 làm tròn số thập phân đến 2 chữ số.
// Chỉ dùng ở tầng serialization; giá trị lưu trữ và tính toán giữ nguyên float64.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// CurrentTimeMs trả về thời gian hiện tại dạng Unix milliseconds
func CurrentTimeMs() int64 {
	return time.Now().UnixMilli()
}

// StartOfDayMs trả về mốc 00:00:00 của ngày chứa timestamp (Unix ms, local time)
func StartOfDayMs(ms int64) int64 {
	t := time.UnixMilli(ms)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start.UnixMilli()
}
