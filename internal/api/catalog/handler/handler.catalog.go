// Package cataloghdl - Handler bảng giá dịch vụ và sản phẩm.
package cataloghdl

import (
	"fmt"

	basehdl "bioma_system/internal/api/base/handler"
	catalogdto "bioma_system/internal/api/catalog/dto"
	catalogmodels "bioma_system/internal/api/catalog/models"
	catalogvc "bioma_system/internal/api/catalog/service"
	"bioma_system/internal/common"
	"bioma_system/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// ServiceItemHandler xử lý API dịch vụ — CRUD thuần qua BaseHandler.
type ServiceItemHandler struct {
	*basehdl.BaseHandler[catalogmodels.ServiceItem, catalogdto.ServiceItemCreateInput, catalogdto.ServiceItemUpdateInput]
	ServiceItemService *catalogvc.ServiceItemService
}

// NewServiceItemHandler tạo ServiceItemHandler mới.
func NewServiceItemHandler() (*ServiceItemHandler, error) {
	svc, err := catalogvc.NewServiceItemService()
	if err != nil {
		return nil, fmt.Errorf("tạo ServiceItemService: %w", err)
	}
	return &ServiceItemHandler{
		BaseHandler:        basehdl.NewBaseHandler[catalogmodels.ServiceItem, catalogdto.ServiceItemCreateInput, catalogdto.ServiceItemUpdateInput](svc.BaseServiceMongoImpl),
		ServiceItemService: svc,
	}, nil
}

// ProductHandler xử lý API sản phẩm, gồm điều chỉnh tồn kho.
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogvc.ProductService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	svc, err := catalogvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](svc.BaseServiceMongoImpl),
		ProductService: svc,
	}, nil
}

// HandleAdjustStock xử lý POST /products/:id/stock — điều chỉnh tồn kho atomic.
// Xuất quá số lượng tồn trả về 400, không bao giờ để stock âm.
func (h *ProductHandler) HandleAdjustStock(c fiber.Ctx) error {
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

		var input catalogdto.StockAdjustInput
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

		product, err := h.ProductService.AdjustStock(c.Context(), id, input.Delta)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, product)
	})
}

// HandleListLowStock xử lý GET /products/low-stock.
func (h *ProductHandler) HandleListLowStock(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		products, err := h.ProductService.FindLowStock(c.Context())
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, products)
	})
}
