// Package orderhdl - Handler đơn hàng.
package orderhdl

import (
	"fmt"
	"strconv"

	basehdl "bioma_system/internal/api/base/handler"
	orderdto "bioma_system/internal/api/order/dto"
	ordermodels "bioma_system/internal/api/order/models"
	ordervc "bioma_system/internal/api/order/service"
	"bioma_system/internal/common"
	"bioma_system/internal/global"

	"github.com/gofiber/fiber/v3"
)

// OrderHandler xử lý API đơn hàng. Đơn định danh theo số đơn (number),
// không theo ObjectID — số đơn là thứ in trên hóa đơn giấy.
type OrderHandler struct {
	*basehdl.BaseHandler[ordermodels.OrderContract, orderdto.OrderCreateInput, orderdto.OrderStatusUpdateInput]
	OrderService *ordervc.OrderService
}

// NewOrderHandler tạo OrderHandler mới.
func NewOrderHandler() (*OrderHandler, error) {
	svc, err := ordervc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("tạo OrderService: %w", err)
	}
	return &OrderHandler{
		BaseHandler:  basehdl.NewBaseHandler[ordermodels.OrderContract, orderdto.OrderCreateInput, orderdto.OrderStatusUpdateInput](svc.BaseServiceMongoImpl),
		OrderService: svc,
	}, nil
}

// parseOrderNumber đọc param :number.
func parseOrderNumber(c fiber.Ctx) (int64, error) {
	number, err := strconv.ParseInt(c.Params("number"), 10, 64)
	if err != nil || number < 1 {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Số đơn '%s' không hợp lệ", c.Params("number")),
			common.StatusBadRequest,
			nil,
		)
	}
	return number, nil
}

// HandleCreateOrder xử lý POST /orders — tạo đơn pending mới.
func (h *OrderHandler) HandleCreateOrder(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input orderdto.OrderCreateInput
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

		created, err := h.OrderService.CreateOrder(c.Context(), input)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusCreated, created)
	})
}

// HandleGetOrder xử lý GET /orders/:number.
func (h *OrderHandler) HandleGetOrder(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		number, err := parseOrderNumber(c)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		order, err := h.OrderService.FindByNumber(c.Context(), number)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, order)
	})
}

// HandleUpdateStatus xử lý PUT /orders/:number/status.
// Duyệt đơn chạy trong transaction cùng với ghi sổ hoa hồng.
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		number, err := parseOrderNumber(c)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		var input orderdto.OrderStatusUpdateInput
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

		updated, err := h.OrderService.UpdateStatus(c.Context(), number, input.Status)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, updated)
	})
}

// HandleListByClient xử lý GET /orders/client/:cpf.
func (h *OrderHandler) HandleListByClient(c fiber.Ctx) error {
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

		orders, err := h.OrderService.FindByClient(c.Context(), cpf)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, orders)
	})
}
