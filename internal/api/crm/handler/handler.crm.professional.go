// Package crmhdl - Handler chuyên viên và trợ lý.
package crmhdl

import (
	"fmt"
	"strconv"

	basehdl "bioma_system/internal/api/base/handler"
	basesvc "bioma_system/internal/api/base/service"
	commissionvc "bioma_system/internal/api/commission/service"
	crmdto "bioma_system/internal/api/crm/dto"
	crmmodels "bioma_system/internal/api/crm/models"
	crmvc "bioma_system/internal/api/crm/service"
	"bioma_system/internal/common"
	"bioma_system/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// ProfessionalHandler xử lý API chuyên viên.
// Create/Update cần transform riêng vì AssistantRefInput mang RefID dạng
// hex string còn model lưu ObjectID — không đi qua transform bson chung được.
type ProfessionalHandler struct {
	*basehdl.BaseHandler[crmmodels.Professional, crmdto.ProfessionalCreateInput, crmdto.ProfessionalUpdateInput]
	ProfessionalService *crmvc.ProfessionalService
	CommissionService   *commissionvc.CommissionService
}

// NewProfessionalHandler tạo ProfessionalHandler mới.
func NewProfessionalHandler() (*ProfessionalHandler, error) {
	svc, err := crmvc.NewProfessionalService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProfessionalService: %w", err)
	}
	commissionSvc, err := commissionvc.NewCommissionService()
	if err != nil {
		return nil, fmt.Errorf("tạo CommissionService: %w", err)
	}
	return &ProfessionalHandler{
		BaseHandler:         basehdl.NewBaseHandler[crmmodels.Professional, crmdto.ProfessionalCreateInput, crmdto.ProfessionalUpdateInput](svc.BaseServiceMongoImpl),
		ProfessionalService: svc,
		CommissionService:   commissionSvc,
	}, nil
}

// buildAssistantRef chuyển AssistantRefInput thành AssistantRef, validate
// tham chiếu tồn tại trong collection tương ứng.
func buildAssistantRef(c fiber.Ctx, input *crmdto.AssistantRefInput) (*crmmodels.AssistantRef, error) {
	if input == nil {
		return nil, nil
	}

	refID := utility.String2ObjectID(input.RefID)
	if refID.IsZero() {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("refId '%s' không phải ObjectID hợp lệ", input.RefID),
			common.StatusBadRequest,
			nil,
		)
	}

	ref := &crmmodels.AssistantRef{
		RefID:   refID,
		RefType: input.RefType,
		Percent: input.Percent,
	}
	if _, err := crmvc.ResolveAssistantRef(c.Context(), ref); err != nil {
		return nil, err
	}
	return ref, nil
}

// HandleCreateProfessional xử lý POST /professionals.
func (h *ProfessionalHandler) HandleCreateProfessional(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input crmdto.ProfessionalCreateInput
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

		assistantRef, err := buildAssistantRef(c, input.Assistant)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		professional := crmmodels.Professional{
			Name:              input.Name,
			Specialty:         input.Specialty,
			Phone:             input.Phone,
			Email:             input.Email,
			CommissionPercent: input.CommissionPercent,
			Assistant:         assistantRef,
			Active:            true,
		}

		created, err := h.ProfessionalService.InsertOne(c.Context(), professional)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusCreated, created)
	})
}

// HandleUpdateProfessional xử lý PUT /professionals/:id — cập nhật một phần.
func (h *ProfessionalHandler) HandleUpdateProfessional(c fiber.Ctx) error {
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

		var input crmdto.ProfessionalUpdateInput
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

		updateFields := map[string]interface{}{}
		if input.Name != "" {
			updateFields["name"] = input.Name
		}
		if input.Specialty != "" {
			updateFields["specialty"] = input.Specialty
		}
		if input.Phone != "" {
			updateFields["phone"] = input.Phone
		}
		if input.Email != "" {
			updateFields["email"] = input.Email
		}
		if input.CommissionPercent != nil {
			updateFields["commissionPercent"] = *input.CommissionPercent
		}
		if input.Active != nil {
			updateFields["active"] = *input.Active
		}
		if input.Assistant != nil {
			assistantRef, err := buildAssistantRef(c, input.Assistant)
			if err != nil {
				return basehdl.ErrorResponse(c, err)
			}
			updateFields["assistant"] = assistantRef
		}
		if len(updateFields) == 0 {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				"Không có trường nào để cập nhật",
				common.StatusBadRequest,
				nil,
			))
		}

		updated, err := h.ProfessionalService.UpdateById(c.Context(), id, &basesvc.UpdateData{Set: updateFields})
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, updated)
	})
}

// HandleGetPerformance xử lý GET /professionals/:id/performance?months=N.
// Mặc định 6 tháng; luôn trả về đủ bucket kể cả tháng không có hoa hồng.
func (h *ProfessionalHandler) HandleGetPerformance(c fiber.Ctx) error {
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

		// Xác nhận chuyên viên tồn tại trước khi tổng hợp
		professional, err := h.ProfessionalService.FindOneById(c.Context(), id)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		months := 6
		if raw := c.Query("months"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return basehdl.ErrorResponse(c, common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("months '%s' không hợp lệ, cần số nguyên dương", raw),
					common.StatusBadRequest,
					nil,
				))
			}
			months = parsed
		}

		performance, err := h.CommissionService.GetMonthlyPerformance(c.Context(), id, months)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, fiber.Map{
			"professionalId":   professional.ID,
			"professionalName": professional.Name,
			"months":           performance,
		})
	})
}

// AssistantHandler xử lý API trợ lý — CRUD thuần qua BaseHandler.
type AssistantHandler struct {
	*basehdl.BaseHandler[crmmodels.Assistant, crmdto.AssistantCreateInput, crmdto.AssistantUpdateInput]
	AssistantService *crmvc.AssistantService
}

// NewAssistantHandler tạo AssistantHandler mới.
func NewAssistantHandler() (*AssistantHandler, error) {
	svc, err := crmvc.NewAssistantService()
	if err != nil {
		return nil, fmt.Errorf("tạo AssistantService: %w", err)
	}
	return &AssistantHandler{
		BaseHandler:      basehdl.NewBaseHandler[crmmodels.Assistant, crmdto.AssistantCreateInput, crmdto.AssistantUpdateInput](svc.BaseServiceMongoImpl),
		AssistantService: svc,
	}, nil
}

