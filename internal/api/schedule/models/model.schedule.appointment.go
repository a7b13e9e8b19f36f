// Package models - Appointment thuộc domain schedule (schedule_appointments).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Trạng thái lịch hẹn
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusDone      = "done"
	AppointmentStatusCancelled = "cancelled"
)

// IsValidAppointmentStatus kiểm tra status có nằm trong tập trạng thái hợp lệ
func IsValidAppointmentStatus(status string) bool {
	switch status {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusDone, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment một lịch hẹn (schedule_appointments).
// (professionalId, date, timeSlot) là unique — một chuyên viên không thể
// có hai lịch cùng slot; đụng slot trả về 409.
type Appointment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ClientCpf  string `json:"clientCpf" bson:"clientCpf"`
	ClientName string `json:"clientName" bson:"clientName"`

	ProfessionalID primitive.ObjectID `json:"professionalId" bson:"professionalId"`

	Date     string `json:"date" bson:"date"`         // YYYY-MM-DD
	TimeSlot string `json:"timeSlot" bson:"timeSlot"` // HH:MM

	ServiceName string `json:"serviceName,omitempty" bson:"serviceName,omitempty"`
	Status      string `json:"status" bson:"status"`
	Notes       string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Unix ms
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Unix ms
}
