// Package authhdl - Handler người dùng và đăng nhập.
package authhdl

import (
	"fmt"

	authdto "bioma_system/internal/api/auth/dto"
	authmodels "bioma_system/internal/api/auth/models"
	authsvc "bioma_system/internal/api/auth/service"
	basehdl "bioma_system/internal/api/base/handler"
	"bioma_system/internal/common"
	"bioma_system/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// UserHandler xử lý API tài khoản người dùng.
type UserHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	UserService *authsvc.UserService
}

// NewUserHandler tạo UserHandler mới.
func NewUserHandler() (*UserHandler, error) {
	svc, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("tạo UserService: %w", err)
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput](svc.BaseServiceMongoImpl),
		UserService: svc,
	}, nil
}

// HandleLogin xử lý POST /auth/login (route công khai duy nhất).
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.UserLoginInput
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

		user, err := h.UserService.Login(c.Context(), &input)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, user)
	})
}

// HandleCreateUser xử lý POST /auth/users — tạo tài khoản nhân viên.
func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.UserCreateInput
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

		user, err := h.UserService.CreateUser(c.Context(), &input)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusCreated, user)
	})
}

// HandleGetMe xử lý GET /auth/me — đọc profile của user từ token.
func (h *UserHandler) HandleGetMe(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userID, _ := c.Locals("user_id").(string)
		id := utility.String2ObjectID(userID)
		if id.IsZero() {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		user, err := h.UserService.FindOneById(c.Context(), id)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, user)
	})
}
