// Package schedulehdl - Handler lịch hẹn.
package schedulehdl

import (
	"fmt"

	basehdl "bioma_system/internal/api/base/handler"
	scheduledto "bioma_system/internal/api/schedule/dto"
	schedulemodels "bioma_system/internal/api/schedule/models"
	schedulevc "bioma_system/internal/api/schedule/service"
	"bioma_system/internal/common"
	"bioma_system/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// AppointmentHandler xử lý API lịch hẹn.
type AppointmentHandler struct {
	*basehdl.BaseHandler[schedulemodels.Appointment, scheduledto.AppointmentCreateInput, scheduledto.AppointmentUpdateInput]
	AppointmentService *schedulevc.AppointmentService
}

// NewAppointmentHandler tạo AppointmentHandler mới.
func NewAppointmentHandler() (*AppointmentHandler, error) {
	svc, err := schedulevc.NewAppointmentService()
	if err != nil {
		return nil, fmt.Errorf("tạo AppointmentService: %w", err)
	}
	return &AppointmentHandler{
		BaseHandler:        basehdl.NewBaseHandler[schedulemodels.Appointment, scheduledto.AppointmentCreateInput, scheduledto.AppointmentUpdateInput](svc.BaseServiceMongoImpl),
		AppointmentService: svc,
	}, nil
}

// HandleCreateAppointment xử lý POST /appointments — đụng slot trả về 409.
func (h *AppointmentHandler) HandleCreateAppointment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input scheduledto.AppointmentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
		}
		if err := h.ValidateInput(&input); err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		created, err := h.AppointmentService.CreateAppointment(c.Context(), input)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusCreated, created)
	})
}

// HandleUpdateAppointment xử lý PUT /appointments/:id.
func (h *AppointmentHandler) HandleUpdateAppointment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id := utility.String2ObjectID(c.Params("id"))
		if id.IsZero() {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("ID '%s' không phải ObjectID hợp lệ", c.Params("id")),
				common.StatusBadRequest,
				nil,
			))
		}

		var input scheduledto.AppointmentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
		}
		if err := h.ValidateInput(&input); err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		updated, err := h.AppointmentService.UpdateAppointment(c.Context(), id, input)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, updated)
	})
}

// HandleListAppointments xử lý GET /appointments?date=YYYY-MM-DD.
// Có date thì trả lịch của ngày đó; không có thì phân trang như các list khác.
func (h *AppointmentHandler) HandleListAppointments(c fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return h.FindWithPagination(c)
	}
	return basehdl.SafeHandlerWrapper(c, func() error {
		appointments, err := h.AppointmentService.FindByDate(c.Context(), date)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, appointments)
	})
}
