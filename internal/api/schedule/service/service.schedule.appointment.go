// Package schedulevc - Service lịch hẹn (schedule_appointments).
package schedulevc

import (
	"context"
	"errors"
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	crmvc "bioma_system/internal/api/crm/service"
	scheduledto "bioma_system/internal/api/schedule/dto"
	schedulemodels "bioma_system/internal/api/schedule/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"
	"bioma_system/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppointmentService xử lý logic lịch hẹn.
type AppointmentService struct {
	*basesvc.BaseServiceMongoImpl[schedulemodels.Appointment]
	ClientService       *crmvc.ClientService
	ProfessionalService *crmvc.ProfessionalService
}

// NewAppointmentService tạo AppointmentService mới.
func NewAppointmentService() (*AppointmentService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Appointments)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Appointments, common.ErrNotFound)
	}
	clientSvc, err := crmvc.NewClientService()
	if err != nil {
		return nil, err
	}
	professionalSvc, err := crmvc.NewProfessionalService()
	if err != nil {
		return nil, err
	}
	return &AppointmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[schedulemodels.Appointment](coll),
		ClientService:        clientSvc,
		ProfessionalService:  professionalSvc,
	}, nil
}

// checkSlotFree kiểm tra slot (professionalId, date, timeSlot) còn trống.
// excludeID loại chính lịch hẹn đang sửa khỏi phép kiểm.
// Unique index trên bộ ba là chốt chặn cuối cho race giữa check và ghi.
func (s *AppointmentService) checkSlotFree(ctx context.Context, professionalID primitive.ObjectID, date, timeSlot string, excludeID primitive.ObjectID) error {
	filter := bson.M{
		"professionalId": professionalID,
		"date":           date,
		"timeSlot":       timeSlot,
	}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	taken, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if taken {
		return common.ErrScheduleConflict
	}
	return nil
}

// CreateAppointment đặt lịch hẹn mới ở trạng thái scheduled.
// Khách và chuyên viên phải tồn tại; đụng slot trả về 409.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input scheduledto.AppointmentCreateInput) (schedulemodels.Appointment, error) {
	var zero schedulemodels.Appointment

	cpf := global.NormalizeCPF(input.ClientCpf)
	client, err := s.ClientService.FindOne(ctx, bson.M{"cpf": cpf}, nil)
	if err != nil {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Khách hàng CPF %s chưa có trong hệ thống", cpf),
			common.StatusNotFound,
			err,
		)
	}

	professionalID := utility.String2ObjectID(input.ProfessionalID)
	if _, err := s.ProfessionalService.FindOneById(ctx, professionalID); err != nil {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Chuyên viên %s không tồn tại", input.ProfessionalID),
			common.StatusNotFound,
			err,
		)
	}

	if err := s.checkSlotFree(ctx, professionalID, input.Date, input.TimeSlot, primitive.NilObjectID); err != nil {
		return zero, err
	}

	appointment := schedulemodels.Appointment{
		ClientCpf:      cpf,
		ClientName:     client.Name,
		ProfessionalID: professionalID,
		Date:           input.Date,
		TimeSlot:       input.TimeSlot,
		ServiceName:    input.ServiceName,
		Status:         schedulemodels.AppointmentStatusScheduled,
		Notes:          input.Notes,
	}

	created, err := s.InsertOne(ctx, appointment)
	if err != nil {
		// Race giữa check và insert: unique index bắt được, trả 409 thay vì lỗi duplicate chung
		if errors.Is(err, common.ErrDuplicate) {
			return zero, common.ErrScheduleConflict
		}
		return zero, err
	}
	return created, nil
}

// UpdateAppointment cập nhật lịch hẹn. Đổi chuyên viên, ngày hoặc slot
// kiểm tra đụng lịch lại với bộ ba mới.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id primitive.ObjectID, input scheduledto.AppointmentUpdateInput) (schedulemodels.Appointment, error) {
	var zero schedulemodels.Appointment

	current, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	updateFields := map[string]interface{}{}

	professionalID := current.ProfessionalID
	if input.ProfessionalID != "" {
		professionalID = utility.String2ObjectID(input.ProfessionalID)
		if _, err := s.ProfessionalService.FindOneById(ctx, professionalID); err != nil {
			return zero, common.NewError(
				common.ErrCodeBusinessState,
				fmt.Sprintf("Chuyên viên %s không tồn tại", input.ProfessionalID),
				common.StatusNotFound,
				err,
			)
		}
		updateFields["professionalId"] = professionalID
	}

	date := current.Date
	if input.Date != "" {
		date = input.Date
		updateFields["date"] = date
	}
	timeSlot := current.TimeSlot
	if input.TimeSlot != "" {
		timeSlot = input.TimeSlot
		updateFields["timeSlot"] = timeSlot
	}

	slotChanged := professionalID != current.ProfessionalID || date != current.Date || timeSlot != current.TimeSlot
	if slotChanged {
		if err := s.checkSlotFree(ctx, professionalID, date, timeSlot, id); err != nil {
			return zero, err
		}
	}

	if input.ServiceName != "" {
		updateFields["serviceName"] = input.ServiceName
	}
	if input.Status != "" {
		updateFields["status"] = input.Status
	}
	if input.Notes != "" {
		updateFields["notes"] = input.Notes
	}
	if len(updateFields) == 0 {
		return current, nil
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: updateFields})
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return zero, common.ErrScheduleConflict
		}
		return zero, err
	}
	return updated, nil
}

// FindByDate liệt kê lịch hẹn của một ngày, sắp theo slot.
func (s *AppointmentService) FindByDate(ctx context.Context, date string) ([]schedulemodels.Appointment, error) {
	return s.Find(ctx, bson.M{"date": date},
		options.Find().SetSort(bson.D{{Key: "timeSlot", Value: 1}}))
}
