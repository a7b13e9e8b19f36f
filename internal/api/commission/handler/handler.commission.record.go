// Package commissionhdl - Handler sổ hoa hồng (chỉ đọc).
// Bản ghi hoa hồng chỉ được sinh/gỡ bởi vòng đời đơn hàng, không có API ghi.
package commissionhdl

import (
	"fmt"
	"strconv"

	basehdl "bioma_system/internal/api/base/handler"
	commissionvc "bioma_system/internal/api/commission/service"
	"bioma_system/internal/common"
	"bioma_system/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// CommissionHandler xử lý API tra cứu sổ hoa hồng.
type CommissionHandler struct {
	CommissionService *commissionvc.CommissionService
}

// NewCommissionHandler tạo CommissionHandler mới.
func NewCommissionHandler() (*CommissionHandler, error) {
	svc, err := commissionvc.NewCommissionService()
	if err != nil {
		return nil, fmt.Errorf("tạo CommissionService: %w", err)
	}
	return &CommissionHandler{CommissionService: svc}, nil
}

// HandleGetByOrder xử lý GET /commissions/order/:number.
func (h *CommissionHandler) HandleGetByOrder(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		number, err := strconv.ParseInt(c.Params("number"), 10, 64)
		if err != nil || number < 1 {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Số đơn '%s' không hợp lệ", c.Params("number")),
				common.StatusBadRequest,
				nil,
			))
		}

		records, err := h.CommissionService.FindByOrderNumber(c.Context(), number)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, records)
	})
}

// HandleGetByProfessional xử lý GET /commissions/professional/:id.
func (h *CommissionHandler) HandleGetByProfessional(c fiber.Ctx) error {
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

		records, err := h.CommissionService.FindByProfessional(c.Context(), id)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, records)
	})
}
