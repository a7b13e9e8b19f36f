package dto

// AppointmentCreateInput dữ liệu đặt lịch hẹn mới.
type AppointmentCreateInput struct {
	ClientCpf      string `json:"clientCpf" bson:"clientCpf" validate:"required,cpf"`
	ProfessionalID string `json:"professionalId" bson:"professionalId" validate:"required,len=24,hexadecimal"`
	Date           string `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot       string `json:"timeSlot" bson:"timeSlot" validate:"required,datetime=15:04"`
	ServiceName    string `json:"serviceName,omitempty" bson:"serviceName,omitempty" validate:"omitempty,no_xss"`
	Notes          string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
}

// AppointmentUpdateInput dữ liệu cập nhật lịch hẹn. Đổi chuyên viên, ngày
// hoặc slot đều phải qua kiểm tra đụng lịch như lúc tạo.
type AppointmentUpdateInput struct {
	ProfessionalID string `json:"professionalId,omitempty" bson:"professionalId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	Date           string `json:"date,omitempty" bson:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot       string `json:"timeSlot,omitempty" bson:"timeSlot,omitempty" validate:"omitempty,datetime=15:04"`
	ServiceName    string `json:"serviceName,omitempty" bson:"serviceName,omitempty" validate:"omitempty,no_xss"`
	Status         string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=scheduled confirmed done cancelled"`
	Notes          string `json:"notes,omitempty" bson:"notes,omitempty" validate:"omitempty,no_xss"`
}
