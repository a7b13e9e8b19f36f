// Package crmhdl - Handler khách hàng CRM.
package crmhdl

import (
	"fmt"

	basehdl "bioma_system/internal/api/base/handler"
	crmdto "bioma_system/internal/api/crm/dto"
	crmmodels "bioma_system/internal/api/crm/models"
	crmvc "bioma_system/internal/api/crm/service"
	"bioma_system/internal/common"
	"bioma_system/internal/global"
	"bioma_system/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// ClientHandler xử lý API khách hàng.
// Embed BaseHandler cho list/pagination; các thao tác theo CPF là handler riêng.
type ClientHandler struct {
	*basehdl.BaseHandler[crmmodels.Client, crmdto.ClientCreateInput, crmdto.ClientUpdateInput]
	ClientService *crmvc.ClientService
}

// NewClientHandler tạo ClientHandler mới.
func NewClientHandler() (*ClientHandler, error) {
	svc, err := crmvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("tạo ClientService: %w", err)
	}
	return &ClientHandler{
		BaseHandler:   basehdl.NewBaseHandler[crmmodels.Client, crmdto.ClientCreateInput, crmdto.ClientUpdateInput](svc.BaseServiceMongoImpl),
		ClientService: svc,
	}, nil
}

// HandleCreateClient xử lý POST /clients — tạo khách hàng mới.
// CPF được validate checksum và normalize; trùng CPF trả về 409.
func (h *ClientHandler) HandleCreateClient(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input crmdto.ClientCreateInput
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

		client := crmmodels.Client{
			Cpf:       input.Cpf,
			Name:      input.Name,
			Phone:     input.Phone,
			Email:     input.Email,
			BirthDate: input.BirthDate,
			Address:   input.Address,
			Notes:     input.Notes,
		}

		created, err := h.ClientService.CreateClient(c.Context(), client)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusCreated, created)
	})
}

// HandleGetClient xử lý GET /clients/:cpf — đọc khách hàng theo CPF.
// Nếu metrics chưa từng được tính, backfill ngay trong lần đọc này.
func (h *ClientHandler) HandleGetClient(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		cpf := c.Params("cpf")
		if !global.IsValidCPF(cpf) {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("CPF '%s' không hợp lệ", cpf),
				common.StatusBadRequest,
				nil,
			))
		}

		client, err := h.ClientService.FindByCpf(c.Context(), cpf)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, roundClientMoney(client))
	})
}

// HandleUpdateClient xử lý PUT /clients/:cpf — cập nhật hồ sơ khách hàng.
func (h *ClientHandler) HandleUpdateClient(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		cpf := c.Params("cpf")
		if !global.IsValidCPF(cpf) {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("CPF '%s' không hợp lệ", cpf),
				common.StatusBadRequest,
				nil,
			))
		}

		var input crmdto.ClientUpdateInput
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

		updateFields, err := utility.ToMap(&input)
		if err != nil {
			return basehdl.ErrorResponse(c, common.ErrInvalidFormat)
		}

		updated, err := h.ClientService.UpdateByCpf(c.Context(), cpf, updateFields)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, updated)
	})
}

// HandleDeleteClient xử lý DELETE /clients/:cpf.
func (h *ClientHandler) HandleDeleteClient(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		cpf := c.Params("cpf")
		if !global.IsValidCPF(cpf) {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("CPF '%s' không hợp lệ", cpf),
				common.StatusBadRequest,
				nil,
			))
		}

		if err := h.ClientService.DeleteByCpf(c.Context(), cpf); err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, nil)
	})
}

// HandleRecalculateClient xử lý POST /clients/:cpf/recalculate — tính lại metrics từ order_contracts.
func (h *ClientHandler) HandleRecalculateClient(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		cpf := c.Params("cpf")
		if !global.IsValidCPF(cpf) {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("CPF '%s' không hợp lệ", cpf),
				common.StatusBadRequest,
				nil,
			))
		}

		client, err := h.ClientService.RecalculateClientMetrics(c.Context(), cpf)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, roundClientMoney(client))
	})
}

// roundClientMoney làm tròn các field tiền tệ khi trả về (giá trị lưu trữ giữ nguyên)
func roundClientMoney(client crmmodels.Client) crmmodels.Client {
	client.TotalBilled = utility.Round2(client.TotalBilled)
	return client
}
